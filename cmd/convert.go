package cmd

import (
	"fmt"
	"time"

	"github.com/pshev/chat2md/internal"
	"github.com/pshev/chat2md/internal/catalog"
	"github.com/pshev/chat2md/internal/config"
	"github.com/pshev/chat2md/internal/convert"
	"github.com/pshev/chat2md/internal/parse"
	"github.com/spf13/cobra"
)

var (
	source    string
	format    string
	outputDir string
	maxName   int
	noHistory bool
)

// convertCmd represents the convert command
var convertCmd = &cobra.Command{
	Use:   "convert <file>",
	Short: "Convert a chat export file to Markdown",
	Long: `Convert one chat export file into per-conversation Markdown files.

The source format is detected from the file when --source is omitted:
zip archives are chatlog exports, JSON files are inspected by their
top-level keys.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runConversion(args[0])
	},
}

// runConversion is the shared path behind convert and pick.
func runConversion(inputPath string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	src := source
	if src == "" {
		src, err = parse.DetectSource(inputPath)
		if err != nil {
			return err
		}
		internal.LogDebug("detected source %q for %s", src, inputPath)
	}

	fmtTag := format
	if fmtTag == "" {
		fmtTag = cfg.DefaultFormat
	}
	out := outputDir
	if out == "" {
		out = cfg.OutputDir
	}
	max := maxName
	if max <= 0 {
		max = cfg.MaxNameLength
	}

	opts := convert.Options{
		Source:     src,
		Format:     fmtTag,
		MaxNameLen: max,
	}

	result, err := convert.Run(inputPath, opts, convert.NewDirWriter(out))
	if err != nil {
		return err
	}

	for _, w := range result.Warnings {
		internal.PrintWarning(w)
	}

	summary := fmt.Sprintf("Converted %d document(s) to %s", result.Documents, out)
	if result.Failures > 0 {
		summary += fmt.Sprintf(" (%d failed)", result.Failures)
	}
	internal.PrintSuccess(summary)

	if !noHistory {
		recordRun(cfg.CatalogPath, catalog.Run{
			ConvertedAt: time.Now(),
			InputPath:   inputPath,
			Source:      src,
			Format:      fmtTag,
			Documents:   result.Documents,
			Warnings:    len(result.Warnings),
		})
	}

	return nil
}

// recordRun appends the run to the history catalog. History is a
// convenience, so failures only warn.
func recordRun(path string, run catalog.Run) {
	cat, err := catalog.Open(path)
	if err != nil {
		internal.LogWarn("Failed to open history catalog: %v", err)
		return
	}
	defer func() { _ = cat.Close() }()

	if err := cat.RecordRun(run); err != nil {
		internal.LogWarn("Failed to record run: %v", err)
	}
}

func init() {
	rootCmd.AddCommand(convertCmd)
	convertCmd.Flags().StringVarP(&source, "source", "s", "", "Source format (chatbox, chatlog); auto-detected when omitted")
	convertCmd.Flags().StringVarP(&format, "format", "f", "", "Output format (md, json, yaml, jsonl)")
	convertCmd.Flags().StringVarP(&outputDir, "out", "o", "", "Output directory")
	convertCmd.Flags().IntVar(&maxName, "max-name", 0, "Maximum length of the title part of file names")
	convertCmd.Flags().BoolVar(&noHistory, "no-history", false, "Skip recording the run in the history catalog")
}
