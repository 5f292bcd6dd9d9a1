package cmd

import (
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/pable/go-cricket-metrics/internal/config"
	"github.com/pable/go-cricket-metrics/internal/loader"
	"github.com/pable/go-cricket-metrics/internal/logging"
	"github.com/pable/go-cricket-metrics/internal/report"
)

var (
	dataDir    string
	configPath string
	verbose    bool

	cfg *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "cricmetrics",
	Short: "Cricket ball-by-ball batting metrics",
	Long: `Read a directory of ball-by-ball match records (one JSON file per match)
and compute batting leaderboards, death-overs and position splits, and
"true" batting figures benchmarked against each team's top order.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(configPath)
		if err != nil {
			return err
		}
		if cmd.Flags().Changed("data") {
			cfg.DataDir = dataDir
		}
		if err := logging.Init(verbose, cfg.LogDir); err != nil {
			return err
		}
		log.Debug().
			Str("source", cfg.Source).
			Bool("dotenv", cfg.DotEnv).
			Str("data", cfg.DataDir).
			Int("workers", cfg.Workers).
			Msg("configuration resolved")
		return nil
	},
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dataDir, "data", "data", "directory of match JSON files")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file (default "+config.DefaultFile+" if present)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(matchCmd)
	rootCmd.AddCommand(battingCmd)
	rootCmd.AddCommand(trueCmd)
	rootCmd.AddCommand(dismissalsCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(sqlCmd)
}

// loadCorpus reads the data directory and applies the match filter flags.
func loadCorpus(cmd *cobra.Command) (*loader.Result, error) {
	res, err := loader.LoadDir(cmd.Context(), cfg.DataDir, cfg.Workers)
	if err != nil {
		return nil, fmt.Errorf("load matches: %w", err)
	}
	report.PrintSkipped(os.Stderr, res.Skipped)

	filtered := matchFilter().Apply(res)
	if len(filtered.Matches) == 0 {
		return nil, fmt.Errorf("no matches left after filtering %d loaded", len(res.Matches))
	}
	log.Debug().Int("matches", len(filtered.Matches)).Msg("matches selected")
	return filtered, nil
}
