package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/pable/go-cricket-metrics/internal/model"
	"github.com/pable/go-cricket-metrics/internal/reducer"
	"github.com/pable/go-cricket-metrics/internal/report"
)

var (
	battingPlayers string
	battingFilter  string
	battingMin     int
)

var battingCmd = &cobra.Command{
	Use:   "batting",
	Short: "Cross-match batting leaderboard with death-overs and position splits",
	Args:  cobra.NoArgs,
	RunE:  runBatting,
}

func init() {
	addFilterFlags(battingCmd)
	battingCmd.Flags().StringVar(&battingPlayers, "players", "", "comma-separated player search (exact name first, else substring)")
	battingCmd.Flags().StringVar(&battingFilter, "filter", "", "count only players whose name contains this")
	battingCmd.Flags().IntVar(&battingMin, "min-innings", 0, "hide players with fewer innings")
}

func runBatting(cmd *cobra.Command, args []string) error {
	res, err := loadCorpus(cmd)
	if err != nil {
		return err
	}
	rows := selectBatting(reducer.Leaderboard(res.Matches, battingFilter), battingPlayers)

	var shown []model.BattingAggregate
	for _, r := range rows {
		if r.Innings >= battingMin {
			shown = append(shown, r)
		}
	}

	report.Heading(os.Stdout, "Batting")
	report.PrintLeaderboard(os.Stdout, shown, "")
	report.Heading(os.Stdout, "Death overs (16-20)")
	report.PrintDeathTable(os.Stdout, shown, "")

	// Position splits only make sense for a short, explicit selection.
	if battingPlayers != "" {
		for _, r := range shown {
			report.Heading(os.Stdout, "By starting position: "+r.Player)
			report.PrintPositionTable(os.Stdout, r)
		}
	}
	return nil
}

// selectBatting keeps the rows named by a player search, in search order.
func selectBatting(rows []model.BattingAggregate, search string) []model.BattingAggregate {
	if search == "" {
		return rows
	}
	byName := make(map[string]model.BattingAggregate, len(rows))
	names := make([]string, 0, len(rows))
	for _, r := range rows {
		byName[r.Player] = r
		names = append(names, r.Player)
	}
	var out []model.BattingAggregate
	for _, n := range reducer.SelectPlayers(names, search) {
		out = append(out, byName[n])
	}
	return out
}
