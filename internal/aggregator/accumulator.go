package aggregator

import (
	"sort"

	"github.com/pable/go-cricket-metrics/internal/model"
)

// Counters are the per-scope batting tallies. The same bundle is kept for all
// overs, for death overs only, and per starting position.
type Counters struct {
	Runs, Balls  int
	Fours, Sixes int
	DotBalls     int
	Dismissals   int
}

// addBall credits one delivery faced. Runs always count; the ball and dot
// ball only when the delivery is legal.
func (c *Counters) addBall(legal bool, runs int) {
	if legal {
		c.Balls++
		if runs == 0 {
			c.DotBalls++
		}
	}
	c.Runs += runs
	switch runs {
	case 4:
		c.Fours++
	case 6:
		c.Sixes++
	}
}

func (c *Counters) add(o Counters) {
	c.Runs += o.Runs
	c.Balls += o.Balls
	c.Fours += o.Fours
	c.Sixes += o.Sixes
	c.DotBalls += o.DotBalls
	c.Dismissals += o.Dismissals
}

// Milestones count innings reaching each threshold. Thresholds are
// cumulative: a 75 counts as a thirty and a fifty.
type Milestones struct {
	Thirties, Fifties, Hundreds int
}

func (m *Milestones) record(inningsRuns int) {
	if inningsRuns >= model.MilestoneThirty {
		m.Thirties++
	}
	if inningsRuns >= model.MilestoneFifty {
		m.Fifties++
	}
	if inningsRuns >= model.MilestoneHundred {
		m.Hundreds++
	}
}

func (m *Milestones) add(o Milestones) {
	m.Thirties += o.Thirties
	m.Fifties += o.Fifties
	m.Hundreds += o.Hundreds
}

// PositionCounters is the batting record from one starting wicket position.
type PositionCounters struct {
	Counters
	Milestones
	Innings int
}

func (p *PositionCounters) add(o *PositionCounters) {
	p.Counters.add(o.Counters)
	p.Milestones.add(o.Milestones)
	p.Innings += o.Innings
}

// PlayerAccumulator holds everything the aggregator tracks for one player.
type PlayerAccumulator struct {
	Name string
	Team string // batting team of the most recent innings the player appeared in

	Total Counters
	Death Counters

	Matches    int // playing-XI appearances
	Milestones Milestones
	Positions  map[int]*PositionCounters

	inningsMatches map[string]struct{}
}

func newPlayer(name string) *PlayerAccumulator {
	return &PlayerAccumulator{
		Name:           name,
		Positions:      make(map[int]*PositionCounters),
		inningsMatches: make(map[string]struct{}),
	}
}

// Innings is the number of distinct matches in which the player batted or was
// dismissed.
func (p *PlayerAccumulator) Innings() int {
	return len(p.inningsMatches)
}

// BattedIn reports whether the player's innings count was credited for matchID.
func (p *PlayerAccumulator) BattedIn(matchID string) bool {
	_, ok := p.inningsMatches[matchID]
	return ok
}

func (p *PlayerAccumulator) creditInnings(matchID string) {
	p.inningsMatches[matchID] = struct{}{}
}

func (p *PlayerAccumulator) position(pos int) *PositionCounters {
	pc := p.Positions[pos]
	if pc == nil {
		pc = &PositionCounters{}
		p.Positions[pos] = pc
	}
	return pc
}

// SortedPositions returns the known starting positions in ascending order.
func (p *PlayerAccumulator) SortedPositions() []int {
	out := make([]int, 0, len(p.Positions))
	for pos := range p.Positions {
		out = append(out, pos)
	}
	sort.Ints(out)
	return out
}

func (p *PlayerAccumulator) merge(o *PlayerAccumulator) {
	if o.Team != "" {
		p.Team = o.Team
	}
	p.Total.add(o.Total)
	p.Death.add(o.Death)
	p.Matches += o.Matches
	p.Milestones.add(o.Milestones)
	for pos, pc := range o.Positions {
		p.position(pos).add(pc)
	}
	for id := range o.inningsMatches {
		p.inningsMatches[id] = struct{}{}
	}
}
