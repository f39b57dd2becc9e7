package cmd

import (
	"fmt"
	"os"

	"github.com/pshev/chat2md/internal"
	"github.com/spf13/cobra"
)

var (
	verbose bool
	version string = "dev"
	commit  string = "unknown"
	date    string = "unknown"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "chat2md",
	Short: "Convert chat exports to Markdown notes",
	Long: `A CLI tool that converts chat-export JSON (and zipped JSON) archives
into per-conversation Markdown files for note-taking tools.

Supported sources:
  • chatbox — multi-session JSON exports ("chat-sessions" array)
  • chatlog — single-session log exports (.json or .zip)

Each conversation becomes one Markdown file named
YYYY-MM-DD_HHMM_<title>.md, with date headings, per-message role
headings, and placeholders for attachments the exports omit.

Quick Start:
  chat2md convert export.json            # convert with auto-detected source
  chat2md pick                           # pick a file interactively
  chat2md history                        # review past conversions`,
	Version: fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date),
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		internal.SetVerbose(verbose)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")

	// Set version template to ensure --version flag works
	rootCmd.SetVersionTemplate(`{{printf "%s\n" .Version}}`)
}
