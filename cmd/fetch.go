package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/HugoBiegas/Veille-technologique/internal/article"
	"github.com/HugoBiegas/Veille-technologique/internal/config"
	"github.com/HugoBiegas/Veille-technologique/internal/feed"
)

var fetchCmd = &cobra.Command{
	Use:   "fetch",
	Short: "Aggregate all sources once and print a summary",
	Long: `Run one aggregation cycle outside the TUI and report per-niche article
counts. Useful as a connectivity check; failures are diagnostics, never
a non-zero exit.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(flagConfig)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		result := feed.FetchAll(ctx, feed.NewHTTPFetcher(), cfg.EnabledSources())

		counts := make(map[article.Niche]int)
		for _, a := range result.Articles {
			counts[a.Niche]++
		}
		for _, n := range cfg.NicheTabs() {
			fmt.Printf("%-10s %d article(s)\n", n, counts[n])
		}
		fmt.Printf("total      %d article(s), %d source(s) failed\n",
			len(result.Articles), len(result.Failures))
		return nil
	},
}

var sourcesCmd = &cobra.Command{
	Use:   "sources",
	Short: "List configured niche sources",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(flagConfig)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		for _, s := range cfg.Sources {
			state := "enabled"
			if !s.Enabled {
				state = "disabled"
			}
			fmt.Printf("%-10s %-8s %s\n", s.Niche, state, s.URL)
		}
		return nil
	},
}
