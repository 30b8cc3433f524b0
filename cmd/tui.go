package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/HugoBiegas/Veille-technologique/internal/article"
	"github.com/HugoBiegas/Veille-technologique/internal/config"
	"github.com/HugoBiegas/Veille-technologique/internal/filter"
	"github.com/HugoBiegas/Veille-technologique/internal/prefs"
	"github.com/HugoBiegas/Veille-technologique/internal/tui"
)

func runTUI(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	// The TUI owns the terminal; diagnostics go to a log file instead.
	if f := openLogFile(); f != nil {
		defer f.Close()
		log.SetOutput(f)
	}

	store, err := prefs.Open(config.PrefsPath())
	if err != nil {
		return fmt.Errorf("opening preference store: %w", err)
	}
	defer store.Close()

	// Theme: explicit stored value wins, else the terminal's dark/light
	// signal, else light.
	dark, explicit := store.Theme()
	if explicit {
		lipgloss.SetHasDarkBackground(dark)
	} else {
		dark = lipgloss.HasDarkBackground()
	}

	opts := tui.RunOpts{Cfg: cfg, Store: store, Dark: dark}

	if flagNiche != "" {
		n, err := article.ParseNiche(flagNiche)
		if err != nil {
			return fmt.Errorf("invalid --niche value: %w", err)
		}
		opts.Niche = n
	}
	if flagSort != "" {
		switch filter.SortKey(flagSort) {
		case filter.SortDate, filter.SortRelevance, filter.SortSource:
			opts.SortBy = filter.SortKey(flagSort)
		default:
			return fmt.Errorf("invalid --sort value %q (valid: date, relevance, source)", flagSort)
		}
	}
	opts.FavoritesOnly = flagFavorites

	return tui.Run(opts)
}

func openLogFile() *os.File {
	path := config.LogPath()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil
	}
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return nil
	}
	return f
}
