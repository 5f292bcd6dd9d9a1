package model

import (
	"fmt"
	"math"
)

// Undefined is the sentinel for a ratio whose denominator is zero
// (an average with no dismissals, balls per boundary with no boundaries).
var Undefined = math.Inf(1)

// IsUndefined reports whether v is the Undefined sentinel.
func IsUndefined(v float64) bool {
	return math.IsInf(v, 1)
}

// Column keys used by Fields() on every row type.
const (
	ColPlayer           = "player"
	ColTeam             = "team"
	ColMatches          = "matches"
	ColInnings          = "innings"
	ColNotOuts          = "not_outs"
	ColDismissals       = "dismissals"
	ColRuns             = "runs"
	ColBalls            = "balls"
	ColStrikeRate       = "strike_rate"
	ColAverage          = "average"
	ColFours            = "fours"
	ColSixes            = "sixes"
	ColBallsPerBoundary = "balls_per_boundary"
	ColDots             = "dot_balls"
	ColDotPct           = "dot_pct"
	ColThirties         = "thirties"
	ColFifties          = "fifties"
	ColHundreds         = "hundreds"

	ColDeathRuns             = "death_runs"
	ColDeathBalls            = "death_balls"
	ColDeathStrikeRate       = "death_strike_rate"
	ColDeathAverage          = "death_average"
	ColDeathFours            = "death_fours"
	ColDeathSixes            = "death_sixes"
	ColDeathBallsPerBoundary = "death_balls_per_boundary"
	ColDeathDots             = "death_dot_balls"
	ColDeathDotPct           = "death_dot_pct"
	ColDeathDismissals       = "death_dismissals"
	ColDeathSharePct         = "death_share_pct"

	ColPosition       = "position"
	ColTrueAverage    = "true_average"
	ColTrueStrikeRate = "true_strike_rate"
	ColIsTop6         = "is_top6"
	ColMatchesCounted = "matches_counted"
	ColOuts           = "outs"
	ColAvgPosition    = "avg_position"
	ColQuadrant       = "quadrant"

	ColRole         = "role"
	ColOvers        = "overs"
	ColRunsConceded = "runs_conceded"
	ColWickets      = "wickets"
	ColEconomy      = "economy"
)

// ---- Ratio helpers ----

// StrikeRate is runs per 100 balls. The denominator is floored at one ball, so
// a player with no recorded balls reports 0 rather than an undefined value.
func StrikeRate(runs, balls int) float64 {
	return float64(runs) / float64(max(balls, 1)) * 100
}

// Average is runs per dismissal, Undefined when never dismissed.
func Average(runs, dismissals int) float64 {
	if dismissals == 0 {
		return Undefined
	}
	return float64(runs) / float64(dismissals)
}

// BallsPerBoundary is Undefined when no fours or sixes were hit.
func BallsPerBoundary(balls, fours, sixes int) float64 {
	if fours+sixes == 0 {
		return Undefined
	}
	return float64(balls) / float64(fours+sixes)
}

// Pct returns n/d*100, or 0 when d is zero.
func Pct(n, d int) float64 {
	if d == 0 {
		return 0
	}
	return float64(n) / float64(d) * 100
}

// ---- Cross-match leaderboard ----

// PositionSplit is a player's batting record from one starting wicket
// position (0 = opened, or came in before any wicket fell).
type PositionSplit struct {
	Position   int
	Innings    int
	Runs       int
	Balls      int
	Fours      int
	Sixes      int
	Dismissals int
	Thirties   int
	Fifties    int
	Hundreds   int
}

func (s *PositionSplit) StrikeRate() float64 { return StrikeRate(s.Runs, s.Balls) }
func (s *PositionSplit) Average() float64    { return Average(s.Runs, s.Dismissals) }

// Fields returns the split keyed by column name.
func (s *PositionSplit) Fields() map[string]any {
	return map[string]any{
		ColPosition:   s.Position,
		ColInnings:    s.Innings,
		ColRuns:       s.Runs,
		ColBalls:      s.Balls,
		ColFours:      s.Fours,
		ColSixes:      s.Sixes,
		ColDismissals: s.Dismissals,
		ColStrikeRate: s.StrikeRate(),
		ColAverage:    s.Average(),
		ColThirties:   s.Thirties,
		ColFifties:    s.Fifties,
		ColHundreds:   s.Hundreds,
	}
}

// BattingAggregate holds one player's batting stats folded across matches.
type BattingAggregate struct {
	Player  string
	Matches int // playing-XI appearances
	Innings int // matches in which the player batted or was dismissed

	Runs, Balls  int
	Fours, Sixes int
	DotBalls     int
	Dismissals   int

	// Death overs only.
	DeathRuns, DeathBalls  int
	DeathFours, DeathSixes int
	DeathDotBalls          int
	DeathDismissals        int

	Thirties, Fifties, Hundreds int

	Positions []PositionSplit // ascending by Position
}

// NotOuts is innings minus dismissals, floored at 0. Innings are counted once
// per match, so a batter out twice in a two-innings match has none.
func (a *BattingAggregate) NotOuts() int {
	if a.Dismissals >= a.Innings {
		return 0
	}
	return a.Innings - a.Dismissals
}

func (a *BattingAggregate) StrikeRate() float64 { return StrikeRate(a.Runs, a.Balls) }

func (a *BattingAggregate) Average() float64 { return Average(a.Runs, a.Dismissals) }

func (a *BattingAggregate) BallsPerBoundary() float64 {
	return BallsPerBoundary(a.Balls, a.Fours, a.Sixes)
}

func (a *BattingAggregate) DotPct() float64 { return Pct(a.DotBalls, a.Balls) }

func (a *BattingAggregate) DeathStrikeRate() float64 { return StrikeRate(a.DeathRuns, a.DeathBalls) }

// DeathAverage divides death-overs runs by all dismissals, not only those
// that fell in the death overs.
func (a *BattingAggregate) DeathAverage() float64 { return Average(a.DeathRuns, a.Dismissals) }

func (a *BattingAggregate) DeathBallsPerBoundary() float64 {
	if a.DeathBalls == 0 {
		return Undefined
	}
	return BallsPerBoundary(a.DeathBalls, a.DeathFours, a.DeathSixes)
}

func (a *BattingAggregate) DeathDotPct() float64 { return Pct(a.DeathDotBalls, a.DeathBalls) }

// DeathSharePct is the share of the player's runs scored in the death overs.
func (a *BattingAggregate) DeathSharePct() float64 { return Pct(a.DeathRuns, a.Runs) }

// Fields returns the aggregate keyed by column name. Position splits are not
// included; use Positions[i].Fields().
func (a *BattingAggregate) Fields() map[string]any {
	return map[string]any{
		ColPlayer:           a.Player,
		ColMatches:          a.Matches,
		ColInnings:          a.Innings,
		ColNotOuts:          a.NotOuts(),
		ColDismissals:       a.Dismissals,
		ColRuns:             a.Runs,
		ColBalls:            a.Balls,
		ColStrikeRate:       a.StrikeRate(),
		ColAverage:          a.Average(),
		ColFours:            a.Fours,
		ColSixes:            a.Sixes,
		ColBallsPerBoundary: a.BallsPerBoundary(),
		ColDots:             a.DotBalls,
		ColDotPct:           a.DotPct(),
		ColThirties:         a.Thirties,
		ColFifties:          a.Fifties,
		ColHundreds:         a.Hundreds,

		ColDeathRuns:             a.DeathRuns,
		ColDeathBalls:            a.DeathBalls,
		ColDeathStrikeRate:       a.DeathStrikeRate(),
		ColDeathAverage:          a.DeathAverage(),
		ColDeathFours:            a.DeathFours,
		ColDeathSixes:            a.DeathSixes,
		ColDeathBallsPerBoundary: a.DeathBallsPerBoundary(),
		ColDeathDots:             a.DeathDotBalls,
		ColDeathDotPct:           a.DeathDotPct(),
		ColDeathDismissals:       a.DeathDismissals,
		ColDeathSharePct:         a.DeathSharePct(),
	}
}

// ---- True batting ----

// Quadrant classifies a player by the signs of their true average and true
// strike rate.
type Quadrant string

const (
	QuadrantElite      Quadrant = "Elite"      // high average, high strike rate
	QuadrantAnchor     Quadrant = "Anchor"     // high average, low strike rate
	QuadrantAggressive Quadrant = "Aggressive" // low average, high strike rate
	QuadrantStruggling Quadrant = "Struggling" // low average, low strike rate
)

// QuadrantOf places a (true average, true strike rate) pair. Zero counts as high.
func QuadrantOf(trueAvg, trueSR float64) Quadrant {
	switch {
	case trueAvg >= 0 && trueSR >= 0:
		return QuadrantElite
	case trueAvg >= 0:
		return QuadrantAnchor
	case trueSR >= 0:
		return QuadrantAggressive
	default:
		return QuadrantStruggling
	}
}

// MatchBattingRow is one batter's line in a single match, benchmarked against
// the top order of their own team in that match.
type MatchBattingRow struct {
	Player     string
	Team       string
	Runs       int
	Balls      int
	Dismissals int

	// Average is runs per dismissal, or the runs total itself when the player
	// was not dismissed. The cross-match leaderboard uses Undefined instead.
	Average        float64
	StrikeRate     float64
	TrueAverage    float64
	TrueStrikeRate float64
	IsTop6         bool
}

func (r *MatchBattingRow) Fields() map[string]any {
	return map[string]any{
		ColPlayer:         r.Player,
		ColTeam:           r.Team,
		ColRuns:           r.Runs,
		ColBalls:          r.Balls,
		ColDismissals:     r.Dismissals,
		ColAverage:        r.Average,
		ColStrikeRate:     r.StrikeRate,
		ColTrueAverage:    r.TrueAverage,
		ColTrueStrikeRate: r.TrueStrikeRate,
		ColIsTop6:         r.IsTop6,
	}
}

// TrueBattingRow is a player's corpus-wide true batting record: the mean of
// their per-match true stats over every match in which they were in their
// team's top-order group.
type TrueBattingRow struct {
	Player         string
	TrueAverage    float64
	TrueStrikeRate float64
	MatchesCounted int
	Runs           int
	Balls          int
	Outs           int
	AvgPosition    float64 // mean starting wicket position, Undefined if never batted
}

func (r *TrueBattingRow) Quadrant() Quadrant {
	return QuadrantOf(r.TrueAverage, r.TrueStrikeRate)
}

func (r *TrueBattingRow) Fields() map[string]any {
	return map[string]any{
		ColPlayer:         r.Player,
		ColTrueAverage:    r.TrueAverage,
		ColTrueStrikeRate: r.TrueStrikeRate,
		ColMatchesCounted: r.MatchesCounted,
		ColRuns:           r.Runs,
		ColBalls:          r.Balls,
		ColOuts:           r.Outs,
		ColAvgPosition:    r.AvgPosition,
		ColQuadrant:       string(r.Quadrant()),
	}
}

// ---- Per-innings basic stats ----

type BasicBattingRow struct {
	Team   string
	Player string
	Runs   int
	Balls  int
	Fours  int
	Sixes  int
}

// StrikeRate is 0 when the batter faced no legal ball.
func (r *BasicBattingRow) StrikeRate() float64 {
	if r.Balls == 0 {
		return 0
	}
	return StrikeRate(r.Runs, r.Balls)
}

func (r *BasicBattingRow) Fields() map[string]any {
	return map[string]any{
		ColRole:       "batter",
		ColTeam:       r.Team,
		ColPlayer:     r.Player,
		ColRuns:       r.Runs,
		ColBalls:      r.Balls,
		ColFours:      r.Fours,
		ColSixes:      r.Sixes,
		ColStrikeRate: r.StrikeRate(),
	}
}

// BasicBowlingRow is one bowler's figures in one innings. Team is the batting
// team of that innings.
type BasicBowlingRow struct {
	Team         string
	Player       string
	Balls        int // excludes wides and no-balls
	RunsConceded int // excludes byes and leg-byes
	Wickets      int // excludes run outs and retirements
}

// Overs renders the ball count in cricket notation, e.g. 22 balls → "3.4".
func (r *BasicBowlingRow) Overs() string {
	return fmt.Sprintf("%d.%d", r.Balls/6, r.Balls%6)
}

// Economy is runs conceded per six balls, 0 when no legal ball was bowled.
func (r *BasicBowlingRow) Economy() float64 {
	if r.Balls == 0 {
		return 0
	}
	return float64(r.RunsConceded) / (float64(r.Balls) / 6)
}

func (r *BasicBowlingRow) Fields() map[string]any {
	return map[string]any{
		ColRole:         "bowler",
		ColTeam:         r.Team,
		ColPlayer:       r.Player,
		ColBalls:        r.Balls,
		ColOvers:        r.Overs(),
		ColRunsConceded: r.RunsConceded,
		ColWickets:      r.Wickets,
		ColEconomy:      r.Economy(),
	}
}
