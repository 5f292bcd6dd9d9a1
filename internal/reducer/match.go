package reducer

import (
	"github.com/pable/go-cricket-metrics/internal/aggregator"
	"github.com/pable/go-cricket-metrics/internal/benchmark"
	"github.com/pable/go-cricket-metrics/internal/model"
)

// MatchTrueBatting returns one row per player who faced at least one legal
// ball in the match, each benchmarked against the first six names of their
// own team's playing XI list in this match. Rows follow batting order.
func MatchTrueBatting(m model.Match) []model.MatchBattingRow {
	if m.Doc == nil {
		return nil
	}
	agg := aggregator.Aggregate(m, "")

	benches := make(map[string]benchmark.Line, len(m.Doc.Info.Players))
	for team, xi := range m.Doc.Info.Players {
		benches[team] = topOrderLine(agg, xi)
	}

	var rows []model.MatchBattingRow
	for _, name := range battingOrder(m.Doc) {
		p, ok := agg.Player(name)
		if !ok || p.Total.Balls == 0 {
			continue
		}
		runs, balls, outs := p.Total.Runs, p.Total.Balls, p.Total.Dismissals

		avg := float64(runs)
		if outs > 0 {
			avg = float64(runs) / float64(outs)
		}
		sr := float64(runs) / float64(balls) * 100

		bench := benches[p.Team]
		ta, ts := benchmark.Normalize(avg, sr, bench.Average(), bench.StrikeRate())
		rows = append(rows, model.MatchBattingRow{
			Player:         name,
			Team:           p.Team,
			Runs:           runs,
			Balls:          balls,
			Dismissals:     outs,
			Average:        avg,
			StrikeRate:     sr,
			TrueAverage:    ta,
			TrueStrikeRate: ts,
			IsTop6:         benchmark.InTopOrder(m.Doc.Info.TeamPlayers(p.Team), name),
		})
	}
	return rows
}

// battingOrder lists batters in the order they first appear on strike.
func battingOrder(doc *model.MatchDocument) []string {
	var order []string
	seen := make(map[string]struct{})
	for _, inn := range doc.Innings {
		for _, over := range inn.Overs {
			for _, d := range over.Deliveries {
				if d.Batter == "" {
					continue
				}
				if _, ok := seen[d.Batter]; ok {
					continue
				}
				seen[d.Batter] = struct{}{}
				order = append(order, d.Batter)
			}
		}
	}
	return order
}
