package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/pable/go-cricket-metrics/internal/reducer"
	"github.com/pable/go-cricket-metrics/internal/report"
)

var (
	matchFocus  string
	matchTeam   string
	matchPlayer string
	matchBasic  bool
)

var matchCmd = &cobra.Command{
	Use:   "match <id>",
	Short: "Show one match: true batting and per-innings figures",
	Long: `Show batting for one match, benchmarked against the first six names of
each team's playing XI. <id> is the match file name without .json.`,
	Args: cobra.ExactArgs(1),
	RunE: runMatch,
}

func init() {
	matchCmd.Flags().StringVar(&matchFocus, "focus", "", "mark this player's row")
	matchCmd.Flags().BoolVar(&matchBasic, "basic", false, "also print per-innings batting and bowling")
	matchCmd.Flags().StringVar(&matchTeam, "team", "", "basic figures: only innings batted by this team")
	matchCmd.Flags().StringVar(&matchPlayer, "player", "", "basic figures: only players whose name contains this")
}

func runMatch(cmd *cobra.Command, args []string) error {
	res, err := loadCorpus(cmd)
	if err != nil {
		return err
	}
	m, err := res.Lookup(args[0])
	if err != nil {
		return err
	}
	summary, _ := res.Summary(m.ID)

	report.PrintMatchSummary(os.Stdout, summary)
	report.PrintMatchBatting(os.Stdout, reducer.MatchTrueBatting(m), matchFocus)

	if matchBasic {
		bat, bowl := reducer.BasicStats(m, matchTeam, matchPlayer)
		report.Heading(os.Stdout, "Batting by innings")
		report.PrintBasicBatting(os.Stdout, bat)
		report.Heading(os.Stdout, "Bowling by innings")
		report.PrintBasicBowling(os.Stdout, bowl)
	}
	return nil
}
