package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/pable/go-cricket-metrics/internal/reducer"
	"github.com/pable/go-cricket-metrics/internal/report"
)

var (
	trueTopN  int
	trueFocus string
)

var trueCmd = &cobra.Command{
	Use:   "true",
	Short: "True batting: average and strike rate against each match's top-order benchmark",
	Long: `For every match and batting team, the first six names of the playing XI
form the benchmark. Each of those players' average and strike rate in that
match is expressed as a percentage above or below the benchmark, and the
per-match values are averaged across the corpus.`,
	Args: cobra.NoArgs,
	RunE: runTrue,
}

func init() {
	addFilterFlags(trueCmd)
	trueCmd.Flags().IntVar(&trueTopN, "top", -1, "rows to show, 0 = all (default from config)")
	trueCmd.Flags().StringVar(&trueFocus, "focus", "", "mark this player's row")
}

func runTrue(cmd *cobra.Command, args []string) error {
	res, err := loadCorpus(cmd)
	if err != nil {
		return err
	}
	topN := cfg.TopN
	if trueTopN >= 0 {
		topN = trueTopN
	}
	report.Heading(os.Stdout, "True batting")
	report.PrintTrueBatting(os.Stdout, reducer.TrueBatting(res.Matches, topN), trueFocus)
	return nil
}
