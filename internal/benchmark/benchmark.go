// Package benchmark compares a batter against a reference group, usually the
// top order of their own team, and expresses the difference as a percentage.
package benchmark

import "github.com/pable/go-cricket-metrics/internal/model"

// Line is a batting line: raw totals for one player or a group of players.
type Line struct {
	Runs       int
	Balls      int
	Dismissals int
}

// Average is runs per dismissal, 0 when never dismissed. Benchmarks use 0 here
// rather than model.Undefined so that Normalize falls back to 0.
func (l Line) Average() float64 {
	if l.Dismissals == 0 {
		return 0
	}
	return float64(l.Runs) / float64(l.Dismissals)
}

// StrikeRate is runs per 100 balls, 0 when no balls were faced.
func (l Line) StrikeRate() float64 {
	if l.Balls == 0 {
		return 0
	}
	return float64(l.Runs) / float64(l.Balls) * 100
}

// Group sums lines into a single benchmark line.
func Group(lines ...Line) Line {
	var g Line
	for _, l := range lines {
		g.Runs += l.Runs
		g.Balls += l.Balls
		g.Dismissals += l.Dismissals
	}
	return g
}

// TopOrder returns the first model.TopOrderSize names of a playing XI list.
// List order is used, not the order in which players actually batted.
func TopOrder(xi []string) []string {
	if len(xi) > model.TopOrderSize {
		xi = xi[:model.TopOrderSize]
	}
	out := make([]string, len(xi))
	copy(out, xi)
	return out
}

// InTopOrder reports whether name is among the first model.TopOrderSize
// entries of xi.
func InTopOrder(xi []string, name string) bool {
	for _, n := range TopOrder(xi) {
		if n == name {
			return true
		}
	}
	return false
}

// Normalize returns the percentage by which a player's average and strike rate
// differ from the benchmark's. 0 means level with the benchmark, 100 means
// double it. Each result is 0 when the corresponding benchmark value is not
// positive.
func Normalize(playerAvg, playerSR, benchAvg, benchSR float64) (trueAvg, trueSR float64) {
	if benchAvg > 0 {
		trueAvg = (playerAvg/benchAvg - 1) * 100
	}
	if benchSR > 0 {
		trueSR = (playerSR/benchSR - 1) * 100
	}
	return trueAvg, trueSR
}

// Against normalizes l against bench using Line's zero-dismissal policy.
func (l Line) Against(bench Line) (trueAvg, trueSR float64) {
	return Normalize(l.Average(), l.StrikeRate(), bench.Average(), bench.StrikeRate())
}
