// Package reducer turns aggregator output into row sets: per-match benchmarked
// batting, per-innings basic figures, and cross-match leaderboards.
package reducer

import (
	"sort"

	"github.com/pable/go-cricket-metrics/internal/aggregator"
	"github.com/pable/go-cricket-metrics/internal/benchmark"
	"github.com/pable/go-cricket-metrics/internal/model"
)

// Fold aggregates every match into one Aggregator, in order.
func Fold(matches []model.Match, playerFilter string) *aggregator.Aggregator {
	agg := aggregator.New(playerFilter)
	for _, m := range matches {
		agg.Add(m)
	}
	return agg
}

// Leaderboard folds matches and returns the cross-match batting table.
func Leaderboard(matches []model.Match, playerFilter string) []model.BattingAggregate {
	return Rows(Fold(matches, playerFilter))
}

// Rows returns one row per player who batted (or was dismissed) in any
// folded match, ordered by runs descending then name.
func Rows(agg *aggregator.Aggregator) []model.BattingAggregate {
	var rows []model.BattingAggregate
	for _, p := range agg.Players() {
		if p.Innings() == 0 {
			continue
		}
		rows = append(rows, BattingRow(p))
	}
	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].Runs != rows[j].Runs {
			return rows[i].Runs > rows[j].Runs
		}
		return rows[i].Player < rows[j].Player
	})
	return rows
}

// BattingRow converts an accumulator into an immutable leaderboard row.
func BattingRow(p *aggregator.PlayerAccumulator) model.BattingAggregate {
	row := model.BattingAggregate{
		Player:     p.Name,
		Matches:    p.Matches,
		Innings:    p.Innings(),
		Runs:       p.Total.Runs,
		Balls:      p.Total.Balls,
		Fours:      p.Total.Fours,
		Sixes:      p.Total.Sixes,
		DotBalls:   p.Total.DotBalls,
		Dismissals: p.Total.Dismissals,

		DeathRuns:       p.Death.Runs,
		DeathBalls:      p.Death.Balls,
		DeathFours:      p.Death.Fours,
		DeathSixes:      p.Death.Sixes,
		DeathDotBalls:   p.Death.DotBalls,
		DeathDismissals: p.Death.Dismissals,

		Thirties: p.Milestones.Thirties,
		Fifties:  p.Milestones.Fifties,
		Hundreds: p.Milestones.Hundreds,
	}
	for _, pos := range p.SortedPositions() {
		pc := p.Positions[pos]
		row.Positions = append(row.Positions, model.PositionSplit{
			Position:   pos,
			Innings:    pc.Innings,
			Runs:       pc.Runs,
			Balls:      pc.Balls,
			Fours:      pc.Fours,
			Sixes:      pc.Sixes,
			Dismissals: pc.Dismissals,
			Thirties:   pc.Thirties,
			Fifties:    pc.Fifties,
			Hundreds:   pc.Hundreds,
		})
	}
	return row
}

// lineOf returns a player's raw batting line, zero if the player never batted.
func lineOf(agg *aggregator.Aggregator, name string) benchmark.Line {
	p, ok := agg.Player(name)
	if !ok {
		return benchmark.Line{}
	}
	return benchmark.Line{Runs: p.Total.Runs, Balls: p.Total.Balls, Dismissals: p.Total.Dismissals}
}

// topOrderLine sums the lines of the first six names of xi.
func topOrderLine(agg *aggregator.Aggregator, xi []string) benchmark.Line {
	top := benchmark.TopOrder(xi)
	lines := make([]benchmark.Line, 0, len(top))
	for _, name := range top {
		lines = append(lines, lineOf(agg, name))
	}
	return benchmark.Group(lines...)
}

// avgPosition is the innings-weighted mean starting position, Undefined when
// no starting position was ever recorded.
func avgPosition(p *aggregator.PlayerAccumulator) float64 {
	innings, sum := 0, 0
	for pos, pc := range p.Positions {
		innings += pc.Innings
		sum += pos * pc.Innings
	}
	if innings == 0 {
		return model.Undefined
	}
	return float64(sum) / float64(innings)
}
