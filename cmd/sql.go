package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pable/go-cricket-metrics/internal/reducer"
	"github.com/pable/go-cricket-metrics/internal/report"
	"github.com/pable/go-cricket-metrics/internal/storage"
)

var sqlCmd = &cobra.Command{
	Use:   "sql <query>",
	Short: "Run a SQL query over the computed stats",
	Long: `Load the selected matches into an in-memory SQLite database and run an
arbitrary query against it. Nothing is written to disk.

Schema overview:
  matches(id, name, year, team1, team2, tournament, match_number, match_date, venue, city, result)
  batting(player, matches, innings, not_outs, dismissals, runs, balls, strike_rate,
    average, fours, sixes, balls_per_boundary, dot_balls, dot_pct, thirties, fifties,
    hundreds, death_runs, death_balls, death_strike_rate, death_average, ...)
  positions(player, position, innings, runs, balls, fours, sixes, dismissals,
    strike_rate, average, thirties, fifties, hundreds)
  true_batting(player, true_average, true_strike_rate, matches_counted, runs, balls,
    outs, avg_position, quadrant)
  dismissals(match_id, player, kind, fielders, bowler, over_number, batter,
    non_striker, score)

Undefined ratios (no dismissals, no boundaries) are NULL.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runSQL,
}

func init() {
	addFilterFlags(sqlCmd)
}

func runSQL(cmd *cobra.Command, args []string) error {
	query := strings.Join(args, " ")
	res, err := loadCorpus(cmd)
	if err != nil {
		return err
	}

	db, err := storage.OpenMemory()
	if err != nil {
		return fmt.Errorf("open storage: %w", err)
	}
	defer db.Close()

	agg := reducer.Fold(res.Matches, "")
	if err := db.InsertMatches(res.Summaries); err != nil {
		return fmt.Errorf("insert matches: %w", err)
	}
	if err := db.InsertBatting(reducer.Rows(agg)); err != nil {
		return fmt.Errorf("insert batting: %w", err)
	}
	if err := db.InsertTrueBatting(reducer.TrueBatting(res.Matches, 0)); err != nil {
		return fmt.Errorf("insert true batting: %w", err)
	}
	if err := db.InsertDismissals(agg.Dismissals()); err != nil {
		return fmt.Errorf("insert dismissals: %w", err)
	}

	cols, rows, err := db.QueryRaw(query)
	if err != nil {
		return err
	}
	report.PrintQueryTable(os.Stdout, cols, rows)
	return nil
}
