package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var (
	flagConfig    string
	flagNiche     string
	flagSort      string
	flagFavorites bool
)

var rootCmd = &cobra.Command{
	Use:   "veille",
	Short: "TUI tech news aggregator",
	Long:  "veille aggregates curated news documents per niche (ai, security, dev, finance) into a filterable, sortable terminal dashboard.",
	RunE:  runTUI,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "path to config file")
	rootCmd.Flags().StringVar(&flagNiche, "niche", "", "start filtered to one niche (ai, security, dev, finance)")
	rootCmd.Flags().StringVar(&flagSort, "sort", "", "initial sort key (date, relevance, source)")
	rootCmd.Flags().BoolVar(&flagFavorites, "favorites", false, "start with the favorites-only filter on")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(fetchCmd)
	rootCmd.AddCommand(sourcesCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("veille %s (commit: %s, built: %s)\n", version, commit, date)
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func SetVersionInfo(v, c, d string) {
	version = v
	commit = c
	date = d
}
