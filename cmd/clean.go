package cmd

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/zhubert/guess/internal/config"
	"github.com/zhubert/guess/internal/logger"
	"github.com/zhubert/guess/internal/scores"
)

var skipConfirm bool

var cleanCmd = &cobra.Command{
	Use:   "clean",
	Short: "Remove the leaderboard and debug log",
	Long: `Clears every recorded score and removes the debug log file. Settings in
~/.guess/config.json are kept.

It will prompt for confirmation before proceeding unless the --yes flag is used.`,
	Args: cobra.NoArgs,
	RunE: runClean,
}

func init() {
	cleanCmd.Flags().BoolVarP(&skipConfirm, "yes", "y", false, "Skip confirmation prompt")
	rootCmd.AddCommand(cleanCmd)
}

func runClean(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("error loading config: %w", err)
	}

	store, err := openStore(cfg, "", "")
	if err != nil {
		return err
	}
	defer store.Close()

	logPath := debugLogPath()
	clearLogs := func() (int, error) { return logger.RemoveLog(logPath) }
	return runCleanWithReader(context.Background(), cmd.OutOrStdout(), os.Stdin, store, logPath, clearLogs)
}

// debugLogPath is the log file this run writes to, or the default one when
// logging goes nowhere real.
func debugLogPath() string {
	if p := logger.Path(); p != "" && p != os.DevNull {
		return p
	}
	return logger.DefaultLogPath
}

// runCleanWithReader allows injecting a reader, store and log remover for testing
func runCleanWithReader(ctx context.Context, out io.Writer, input io.Reader, store scores.Store, logPath string, clearLogs func() (int, error)) error {
	res := store.Load(ctx)
	scoreCount := len(res.Records)

	if scoreCount == 0 && res.Status != scores.StatusCorrupt && !fileExists(logPath) {
		fmt.Fprintln(out, "Nothing to clean.")
		return nil
	}

	// Print summary of what will be cleaned
	fmt.Fprintln(out, "This will clean:")
	switch {
	case res.Status == scores.StatusCorrupt:
		fmt.Fprintf(out, "  - the unreadable leaderboard at %s\n", store.Location())
	case scoreCount > 0:
		fmt.Fprintf(out, "  - %d score(s) in %s\n", scoreCount, store.Location())
	}
	fmt.Fprintf(out, "  - the debug log at %s\n", logPath)

	// Confirm unless --yes flag is set
	if !skipConfirm {
		if !confirm(input, "Continue?") {
			fmt.Fprintln(out, "Aborted.")
			return nil
		}
	}

	logger.Info("clean: clearing %d score(s) from %s and log %s", scoreCount, store.Location(), logPath)
	if err := store.Clear(ctx); err != nil {
		logger.Error("clean: clearing %s failed: %v", store.Location(), err)
		return fmt.Errorf("error clearing leaderboard: %w", err)
	}

	logsCleared, err := clearLogs()
	if err != nil {
		logger.Warn("clean: removing %s failed: %v", logPath, err)
		fmt.Fprintf(os.Stderr, "Warning: error clearing logs: %v\n", err)
	}

	// Print results
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Cleaned:")
	if scoreCount > 0 || res.Status == scores.StatusCorrupt {
		fmt.Fprintf(out, "  - leaderboard cleared (%d score(s))\n", scoreCount)
	}
	if logsCleared > 0 {
		fmt.Fprintf(out, "  - %d log file(s) removed\n", logsCleared)
	}

	return nil
}

// fileExists reports whether path is present
func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// confirm prompts the user for y/n confirmation
func confirm(input io.Reader, prompt string) bool {
	reader := bufio.NewReader(input)
	fmt.Printf("%s [y/N]: ", prompt)
	response, err := reader.ReadString('\n')
	if err != nil {
		return false
	}
	response = strings.ToLower(strings.TrimSpace(response))
	return response == "y" || response == "yes"
}
