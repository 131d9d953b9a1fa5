package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/zhubert/guess/internal/changelog"
)

var changelogSince string

var changelogCmd = &cobra.Command{
	Use:   "changelog",
	Short: "Show release notes",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		printChangelog(cmd.OutOrStdout(), changelogSince)
	},
}

func init() {
	changelogCmd.Flags().StringVar(&changelogSince, "since", "", "Only show releases newer than this version")
	rootCmd.AddCommand(changelogCmd)
}

// printChangelog writes the embedded release notes newest first.
func printChangelog(out io.Writer, since string) {
	entries := changelog.Parse(changelog.Content)
	if since != "" {
		entries = changelog.GetChangesSince(since, entries)
	}
	if len(entries) == 0 {
		fmt.Fprintln(out, "No changes.")
		return
	}

	for i, e := range entries {
		if i > 0 {
			fmt.Fprintln(out)
		}
		if e.Date != "" {
			fmt.Fprintf(out, "v%s (%s)\n", e.Version, e.Date)
		} else {
			fmt.Fprintf(out, "v%s\n", e.Version)
		}
		for _, c := range e.Changes {
			fmt.Fprintf(out, "  - %s\n", c)
		}
	}
}
