package cmd

import (
	"fmt"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"github.com/pshev/chat2md/internal/catalog"
	"github.com/pshev/chat2md/internal/config"
	"github.com/spf13/cobra"
)

var historyLimit int

var (
	// Styles
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("62")).
			Padding(0, 1)

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("212"))

	countStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42")).
			Bold(true)

	dateStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("243"))

	warnStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214"))
)

// historyCmd represents the history command
var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show past conversion runs",
	Long:  `List recent conversion runs recorded in the local history catalog.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		cat, err := catalog.Open(cfg.CatalogPath)
		if err != nil {
			return fmt.Errorf("failed to open history catalog: %w", err)
		}
		defer func() { _ = cat.Close() }()

		runs, err := cat.ListRuns(historyLimit)
		if err != nil {
			return fmt.Errorf("failed to list runs: %w", err)
		}

		displayRuns(runs)
		return nil
	},
}

func displayRuns(runs []catalog.Run) {
	if len(runs) == 0 {
		fmt.Println(headerStyle.Render("No conversions recorded yet"))
		return
	}

	header := headerStyle.Render(fmt.Sprintf("Last %d conversion(s)", len(runs)))
	fmt.Println(header)
	fmt.Println()

	w := tabwriter.NewWriter(lipgloss.DefaultRenderer().Output(), 0, 0, 3, ' ', 0)

	_, _ = fmt.Fprintln(w, titleStyle.Render("When")+"\t"+titleStyle.Render("Input")+"\t"+titleStyle.Render("Source")+"\t"+titleStyle.Render("Format")+"\t"+titleStyle.Render("Docs")+"\t"+titleStyle.Render("Warnings")+"\t")
	_, _ = fmt.Fprintln(w, strings.Repeat("─", 100))

	for _, r := range runs {
		when := formatWhen(r.ConvertedAt)

		input := r.InputPath
		if runewidth.StringWidth(input) > 40 {
			input = runewidth.Truncate(input, 40, "...")
		}

		docs := countStyle.Render(strconv.Itoa(r.Documents))

		warnings := "0"
		if r.Warnings > 0 {
			warnings = warnStyle.Render(strconv.Itoa(r.Warnings))
		}

		_, _ = fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\t\n",
			dateStyle.Render(when), input, r.Source, r.Format, docs, warnings)
	}

	_ = w.Flush()
}

func formatWhen(t time.Time) string {
	if t.IsZero() {
		return "—"
	}
	diff := time.Since(t)
	switch {
	case diff < 24*time.Hour:
		return t.Format("Today 15:04")
	case diff < 7*24*time.Hour:
		return t.Format("Mon 15:04")
	default:
		return t.Format("2006-01-02 15:04")
	}
}

func init() {
	rootCmd.AddCommand(historyCmd)
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 20, "Number of runs to show")
}
