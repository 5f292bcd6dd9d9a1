package reducer

import (
	"sort"

	"gonum.org/v1/gonum/stat"

	"github.com/pable/go-cricket-metrics/internal/aggregator"
	"github.com/pable/go-cricket-metrics/internal/benchmark"
	"github.com/pable/go-cricket-metrics/internal/model"
)

// trueTally collects one player's per-match true stats.
type trueTally struct {
	trueAvg []float64
	trueSR  []float64
}

// TrueBatting computes the corpus-wide true batting metric.
//
// For each match and each batting team, the benchmark is the combined line of
// the first six names in that team's playing XI list, from that match alone.
// Each of those six players gets a true average and true strike rate for the
// match; the reported value is the mean of those per-match values. This is
// not the same as normalizing summed totals against a summed benchmark.
//
// Rows are ordered by total runs descending and truncated to topN (0 = all).
func TrueBatting(matches []model.Match, topN int) []model.TrueBattingRow {
	tallies := make(map[string]*trueTally)
	totals := aggregator.New("")

	for _, m := range matches {
		if m.Doc == nil {
			continue
		}
		agg := aggregator.Aggregate(m, "")
		totals.Merge(agg)

		for _, team := range battingTeams(m.Doc) {
			xi := m.Doc.Info.TeamPlayers(team)
			bench := topOrderLine(agg, xi)
			for _, name := range benchmark.TopOrder(xi) {
				ta, ts := lineOf(agg, name).Against(bench)
				t := tallies[name]
				if t == nil {
					t = &trueTally{}
					tallies[name] = t
				}
				t.trueAvg = append(t.trueAvg, ta)
				t.trueSR = append(t.trueSR, ts)
			}
		}
	}

	rows := make([]model.TrueBattingRow, 0, len(tallies))
	for name, t := range tallies {
		row := model.TrueBattingRow{
			Player:         name,
			TrueAverage:    stat.Mean(t.trueAvg, nil),
			TrueStrikeRate: stat.Mean(t.trueSR, nil),
			MatchesCounted: len(t.trueAvg),
			AvgPosition:    model.Undefined,
		}
		if p, ok := totals.Player(name); ok {
			row.Runs = p.Total.Runs
			row.Balls = p.Total.Balls
			row.Outs = p.Total.Dismissals
			row.AvgPosition = avgPosition(p)
		}
		rows = append(rows, row)
	}

	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Runs != rows[j].Runs {
			return rows[i].Runs > rows[j].Runs
		}
		return rows[i].Player < rows[j].Player
	})
	if topN > 0 && len(rows) > topN {
		rows = rows[:topN]
	}
	return rows
}

// battingTeams returns each team that batted, in first-innings order,
// once even if it batted twice.
func battingTeams(doc *model.MatchDocument) []string {
	var teams []string
	seen := make(map[string]struct{})
	for _, inn := range doc.Innings {
		if inn.Team == "" {
			continue
		}
		if _, ok := seen[inn.Team]; ok {
			continue
		}
		seen[inn.Team] = struct{}{}
		teams = append(teams, inn.Team)
	}
	return teams
}
