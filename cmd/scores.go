package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"charm.land/lipgloss/v2"
	"charm.land/lipgloss/v2/table"
	"github.com/spf13/cobra"

	"github.com/zhubert/guess/internal/clipboard"
	"github.com/zhubert/guess/internal/config"
	"github.com/zhubert/guess/internal/scores"
	"github.com/zhubert/guess/internal/ui"
)

var (
	scoresTop   int
	scoresClear bool
	scoresCopy  bool
	scoresYes   bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Print the leaderboard",
	Long: `Print the leaderboard ranked by number of guesses.

Use --copy to also put the listing on the clipboard, or --clear to remove
every recorded score.`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVarP(&scoresTop, "top", "n", scores.TopN, "Number of scores to show (0 for all)")
	scoresCmd.Flags().BoolVar(&scoresClear, "clear", false, "Remove all recorded scores")
	scoresCmd.Flags().BoolVar(&scoresCopy, "copy", false, "Copy the listing to the clipboard")
	scoresCmd.Flags().BoolVarP(&scoresYes, "yes", "y", false, "Skip confirmation prompt")
	scoresCmd.Flags().StringVar(&storeFlag, "store", "", "Leaderboard backend: json or sqlite")
	scoresCmd.Flags().StringVar(&scoresFlag, "scores", "", "Leaderboard file")
	rootCmd.AddCommand(scoresCmd)
}

func runScores(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("error loading config: %w", err)
	}

	store, err := openStore(cfg, storeFlag, scoresFlag)
	if err != nil {
		return err
	}
	defer store.Close()

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	if scoresClear {
		return clearScores(ctx, cmd.OutOrStdout(), os.Stdin, store, scoresYes)
	}
	return printScores(ctx, cmd.OutOrStdout(), cmd.ErrOrStderr(), store, scoresTop, scoresCopy)
}

// printScores writes the leaderboard table to out.
func printScores(ctx context.Context, out, errOut io.Writer, store scores.Store, top int, copyText bool) error {
	res := store.Load(ctx)
	switch res.Status {
	case scores.StatusIOFailure:
		return fmt.Errorf("error reading leaderboard: %w", res.Err)
	case scores.StatusCorrupt:
		fmt.Fprintf(errOut, "Warning: %s is unreadable and will be replaced on the next save\n", store.Location())
	}

	records := res.Records
	scores.Rank(records)
	if top > 0 {
		records = scores.Top(records, top)
	}

	if len(records) == 0 {
		fmt.Fprintln(out, "No scores yet. Win a round to get on the board.")
		return nil
	}

	fmt.Fprintln(out, renderScoresTable(records))

	if copyText {
		if err := clipboard.WriteText(plainScores(records)); err != nil {
			return fmt.Errorf("error copying to clipboard: %w", err)
		}
		fmt.Fprintf(out, "Copied %d score(s) to the clipboard.\n", len(records))
	}
	return nil
}

// renderScoresTable draws ranked records with the active theme.
func renderScoresTable(records []scores.Record) string {
	rows := make([][]string, len(records))
	for i, r := range records {
		rows[i] = ui.LeaderboardRow(i+1, r)
	}

	headerStyle := ui.LeaderboardHeaderStyle
	cellStyle := ui.LeaderboardCellStyle

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(ui.ColorBorder)).
		Headers(ui.LeaderboardHeaders()...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})
	return t.String()
}

// plainScores formats records as tab-separated lines for pasting elsewhere.
func plainScores(records []scores.Record) string {
	var b strings.Builder
	b.WriteString(strings.Join(ui.LeaderboardHeaders(), "\t"))
	b.WriteByte('\n')
	for i, r := range records {
		b.WriteString(strings.Join(ui.LeaderboardRow(i+1, r), "\t"))
		b.WriteByte('\n')
	}
	return b.String()
}

// clearScores removes every record after confirmation.
func clearScores(ctx context.Context, out io.Writer, input io.Reader, store scores.Store, skip bool) error {
	if !skip && !confirm(input, fmt.Sprintf("Remove all scores from %s?", store.Location())) {
		fmt.Fprintln(out, "Aborted.")
		return nil
	}
	if err := store.Clear(ctx); err != nil {
		return fmt.Errorf("error clearing leaderboard: %w", err)
	}
	fmt.Fprintln(out, "Leaderboard cleared.")
	return nil
}
