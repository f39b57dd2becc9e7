package cmd

import (
	"errors"
	"fmt"

	"github.com/pshev/chat2md/internal/picker"
	"github.com/spf13/cobra"
)

var pickDir string

// pickCmd represents the pick command
var pickCmd = &cobra.Command{
	Use:   "pick",
	Short: "Pick an export file interactively and convert it",
	Long: `Browse a directory with the arrow keys, pick a chat export
(.json or .zip), and convert it with the same options as the convert
command.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := picker.Pick(pickDir)
		if err != nil {
			if errors.Is(err, picker.ErrCanceled) {
				fmt.Println("Nothing selected.")
				return nil
			}
			return err
		}
		return runConversion(path)
	},
}

func init() {
	rootCmd.AddCommand(pickCmd)
	pickCmd.Flags().StringVarP(&pickDir, "dir", "d", ".", "Directory to browse for export files")
	pickCmd.Flags().StringVarP(&source, "source", "s", "", "Source format (chatbox, chatlog); auto-detected when omitted")
	pickCmd.Flags().StringVarP(&format, "format", "f", "", "Output format (md, json, yaml, jsonl)")
	pickCmd.Flags().StringVarP(&outputDir, "out", "o", "", "Output directory")
	pickCmd.Flags().IntVar(&maxName, "max-name", 0, "Maximum length of the title part of file names")
	pickCmd.Flags().BoolVar(&noHistory, "no-history", false, "Skip recording the run in the history catalog")
}
