package cmd

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"github.com/spf13/cobra"

	"github.com/zhubert/guess/internal/app"
	"github.com/zhubert/guess/internal/config"
	"github.com/zhubert/guess/internal/logger"
	"github.com/zhubert/guess/internal/scores"
	"github.com/zhubert/guess/internal/ui"
)

var (
	debugMode             bool
	quietMode             bool
	logPath               string
	version, commit, date string
)

// Per-run overrides for the TUI; none of them are saved to the config
var (
	themeFlag  string
	storeFlag  string
	scoresFlag string
)

// SetVersionInfo sets version information from ldflags
func SetVersionInfo(v, c, d string) {
	version, commit, date = v, c, d
}

var rootCmd = &cobra.Command{
	Use:   "guess",
	Short: "Terminal number-guessing game",
	Long: `Guess is a terminal number-guessing game. Pick a range, narrow in on the
secret number with the hints you get, and put your name on the leaderboard.`,
	RunE:          runTUI,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().BoolVar(&debugMode, "debug", true, "Enable debug logging (on by default)")
	rootCmd.PersistentFlags().BoolVarP(&quietMode, "quiet", "q", false, "Reduce logging to info level only")
	rootCmd.PersistentFlags().StringVar(&logPath, "log", logger.DefaultLogPath, "Debug log file")

	rootCmd.Flags().StringVar(&themeFlag, "theme", "", "Theme for this run (see 'guess config')")
	rootCmd.Flags().StringVar(&storeFlag, "store", "", "Leaderboard backend for this run: json or sqlite")
	rootCmd.Flags().StringVar(&scoresFlag, "scores", "", "Leaderboard file for this run")
}

func initConfig() {
	if quietMode {
		logger.SetDebug(false)
	} else if debugMode {
		logger.SetDebug(true)
	}
	if logPath != "" && logPath != logger.DefaultLogPath {
		if err := logger.Init(logPath); err != nil {
			fmt.Fprintf(rootCmd.ErrOrStderr(), "Warning: %v\n", err)
		}
	}
	logger.Debug("starting guess %s (debug=%v, quiet=%v)", version, debugMode, quietMode)
}

// Execute runs the root command
func Execute() error {
	// Set version dynamically
	rootCmd.Version = version
	rootCmd.SetVersionTemplate(versionTemplate())
	if err := rootCmd.Execute(); err != nil {
		logger.Error("command failed: %v", err)
		return err
	}
	return nil
}

func versionTemplate() string {
	if commit != "none" && commit != "" {
		return fmt.Sprintf("guess %s\n  commit: %s\n  built:  %s\n", version, commit, date)
	}
	return fmt.Sprintf("guess %s\n", version)
}

// openStore opens the leaderboard named by the flags, falling back to the
// config. A --store without --scores uses that backend's default file.
func openStore(cfg *config.Config, kind, path string) (scores.Store, error) {
	if kind == "" {
		kind = cfg.GetScoresStore()
		if path == "" {
			p, err := cfg.GetScoresPath()
			if err != nil {
				return nil, fmt.Errorf("error locating leaderboard: %w", err)
			}
			path = p
		}
	}
	if path == "" {
		p, err := config.DefaultScoresPath(kind)
		if err != nil {
			return nil, fmt.Errorf("error locating leaderboard: %w", err)
		}
		path = p
	}

	store, err := scores.Open(kind, path)
	if err != nil {
		return nil, err
	}
	logger.WithComponent("cmd").Info("leaderboard opened", "kind", kind, "location", store.Location())
	return store, nil
}

func runTUI(cmd *cobra.Command, args []string) error {
	if themeFlag != "" && !ui.IsValidTheme(themeFlag) {
		return fmt.Errorf("unknown theme %q (available: %v)", themeFlag, ui.ThemeNames())
	}

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("error loading config: %w", err)
	}

	store, err := openStore(cfg, storeFlag, scoresFlag)
	if err != nil {
		return err
	}
	defer store.Close()

	// Ensure logger is closed on exit
	defer logger.Close()

	// Create and run the app
	m := app.New(cfg, store, version)
	if themeFlag != "" {
		ui.SetThemeByName(themeFlag)
	}
	p := tea.NewProgram(m)

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running app: %w", err)
	}
	return nil
}
