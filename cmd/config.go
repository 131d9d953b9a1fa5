package cmd

import (
	"errors"
	"fmt"
	"io"

	huh "charm.land/huh/v2"
	"github.com/spf13/cobra"

	"github.com/zhubert/guess/internal/config"
	"github.com/zhubert/guess/internal/logger"
	"github.com/zhubert/guess/internal/ui"
)

var configShow bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Change settings",
	Long: `Open an interactive form for the theme, desktop notifications and the
leaderboard backend. Use --show to print the current settings instead.`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&configShow, "show", false, "Print the current settings and exit")
	rootCmd.AddCommand(configCmd)
}

// settings holds the form values before they are written to the config
type settings struct {
	Theme         string
	Notifications bool
	Store         string
	ScoresPath    string
}

func settingsFromConfig(cfg *config.Config) settings {
	theme := cfg.GetTheme()
	if theme == "" {
		theme = string(ui.DefaultTheme)
	}
	return settings{
		Theme:         theme,
		Notifications: cfg.GetNotificationsEnabled(),
		Store:         cfg.GetScoresStore(),
		ScoresPath:    cfg.ScoresPath,
	}
}

// apply copies the form values into cfg.
func (s settings) apply(cfg *config.Config) error {
	if !ui.IsValidTheme(s.Theme) {
		return fmt.Errorf("unknown theme %q", s.Theme)
	}
	if err := cfg.SetScoresStore(s.Store); err != nil {
		return err
	}
	cfg.SetTheme(s.Theme)
	cfg.SetNotificationsEnabled(s.Notifications)
	cfg.SetScoresPath(s.ScoresPath)
	return nil
}

// newSettingsForm builds the settings form bound to s.
func newSettingsForm(s *settings) *huh.Form {
	names := ui.ThemeNames()
	themeOptions := make([]huh.Option[string], len(names))
	for i, name := range names {
		themeOptions[i] = huh.NewOption(ui.GetTheme(name).Name, string(name))
	}

	storeOptions := []huh.Option[string]{
		huh.NewOption("JSON file", config.StoreJSON),
		huh.NewOption("SQLite database", config.StoreSQLite),
	}

	group := huh.NewGroup(
		huh.NewSelect[string]().
			Title("Theme").
			Options(themeOptions...).
			Value(&s.Theme),
		huh.NewConfirm().
			Title("Desktop notifications").
			Description("Announce each won round").
			Affirmative("On").
			Negative("Off").
			Value(&s.Notifications),
		huh.NewSelect[string]().
			Title("Leaderboard backend").
			Options(storeOptions...).
			Value(&s.Store),
		huh.NewInput().
			Title("Leaderboard file").
			Description("Leave empty for the backend's default location").
			Placeholder("~/.guess/data.rom").
			Value(&s.ScoresPath),
	)

	return huh.NewForm(group).
		WithTheme(ui.FormTheme()).
		WithShowHelp(true)
}

func runConfig(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("error loading config: %w", err)
	}

	if configShow {
		return printSettings(cmd.OutOrStdout(), cfg)
	}

	if theme := cfg.GetTheme(); theme != "" {
		ui.SetThemeByName(theme)
	}

	s := settingsFromConfig(cfg)
	if err := newSettingsForm(&s).Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			fmt.Fprintln(cmd.OutOrStdout(), "Aborted.")
			return nil
		}
		return fmt.Errorf("error running settings form: %w", err)
	}

	if err := s.apply(cfg); err != nil {
		return err
	}
	if err := cfg.Save(); err != nil {
		return fmt.Errorf("error saving config: %w", err)
	}
	logger.WithComponent("cmd").Info("settings saved", "theme", s.Theme, "store", s.Store)
	fmt.Fprintf(cmd.OutOrStdout(), "Saved settings to %s\n", cfg.Path())
	return nil
}

// printSettings writes the effective settings, one per line.
func printSettings(out io.Writer, cfg *config.Config) error {
	s := settingsFromConfig(cfg)
	path, err := cfg.GetScoresPath()
	if err != nil {
		return fmt.Errorf("error locating leaderboard: %w", err)
	}
	notifications := "off"
	if s.Notifications {
		notifications = "on"
	}
	fmt.Fprintf(out, "config:        %s\n", cfg.Path())
	fmt.Fprintf(out, "theme:         %s\n", s.Theme)
	fmt.Fprintf(out, "notifications: %s\n", notifications)
	fmt.Fprintf(out, "store:         %s\n", s.Store)
	fmt.Fprintf(out, "scores:        %s\n", path)
	if name := cfg.GetLastPlayerName(); name != "" {
		fmt.Fprintf(out, "last player:   %s\n", name)
	}
	return nil
}
