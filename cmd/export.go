package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/pable/go-cricket-metrics/internal/reducer"
	"github.com/pable/go-cricket-metrics/internal/report"
)

var (
	exportTable  string
	exportFormat string
	exportOut    string
	exportMatch  string
	exportFilter string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export a stats table as CSV or JSON",
	Long: `Export one of the computed tables:

  batting    cross-match leaderboard (totals, death overs, milestones)
  positions  leaderboard split by starting position, one row per player and position
  true       corpus true batting
  match      one match's benchmarked batting (requires --match)

Undefined ratios are written as "-" in CSV and null in JSON.`,
	Args: cobra.NoArgs,
	RunE: runExport,
}

func init() {
	addFilterFlags(exportCmd)
	exportCmd.Flags().StringVar(&exportTable, "table", "batting", "batting|positions|true|match")
	exportCmd.Flags().StringVar(&exportFormat, "format", "csv", "csv|json")
	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "", "output file (default stdout)")
	exportCmd.Flags().StringVar(&exportMatch, "match", "", "match id for --table match")
	exportCmd.Flags().StringVar(&exportFilter, "filter", "", "count only players whose name contains this")
}

func runExport(cmd *cobra.Command, args []string) error {
	if exportFormat != "csv" && exportFormat != "json" {
		return fmt.Errorf("unknown format %q (want csv or json)", exportFormat)
	}
	res, err := loadCorpus(cmd)
	if err != nil {
		return err
	}

	var (
		cols    []string
		records []map[string]any
	)
	switch exportTable {
	case "batting":
		cols, records = report.BattingColumns, report.BattingRecords(reducer.Leaderboard(res.Matches, exportFilter))
	case "positions":
		cols, records = report.PositionColumns, report.PositionRecords(reducer.Leaderboard(res.Matches, exportFilter))
	case "true":
		cols, records = report.TrueColumns, report.TrueRecords(reducer.TrueBatting(res.Matches, 0))
	case "match":
		m, ok := res.Match(exportMatch)
		if !ok {
			return fmt.Errorf("match not found: %q", exportMatch)
		}
		cols, records = report.MatchColumns, report.MatchRecords(reducer.MatchTrueBatting(m))
	default:
		return fmt.Errorf("unknown table %q", exportTable)
	}

	var w io.Writer = os.Stdout
	if exportOut != "" {
		f, err := os.Create(exportOut)
		if err != nil {
			return fmt.Errorf("create output: %w", err)
		}
		defer f.Close()
		w = f
	}

	if exportFormat == "json" {
		err = report.WriteJSON(w, cols, records)
	} else {
		err = report.WriteCSV(w, cols, records)
	}
	if err != nil {
		return err
	}
	if exportOut != "" {
		fmt.Fprintf(os.Stderr, "Wrote %d %s rows to %s\n", len(records), exportTable, exportOut)
	}
	return nil
}
