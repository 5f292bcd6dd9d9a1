// Package aggregator walks ball-by-ball match records and keeps running
// per-player batting counters across every tracked dimension: all overs,
// death overs, starting wicket position and innings milestones.
package aggregator

import (
	"fmt"
	"sort"
	"strings"

	"github.com/pable/go-cricket-metrics/internal/model"
)

// Aggregator folds matches into per-player accumulators. It is not safe for
// concurrent use; aggregate matches separately and Merge the results instead.
type Aggregator struct {
	filter     string // lower-cased player-name substring, "" = everyone
	players    map[string]*PlayerAccumulator
	dismissals []model.Dismissal
	matches    int
}

// New returns an empty Aggregator. A non-empty filter restricts counting to
// players whose name contains it, case-insensitively.
func New(filter string) *Aggregator {
	return &Aggregator{
		filter:  strings.ToLower(strings.TrimSpace(filter)),
		players: make(map[string]*PlayerAccumulator),
	}
}

// Aggregate runs a fresh Aggregator over a single match.
func Aggregate(m model.Match, filter string) *Aggregator {
	a := New(filter)
	a.Add(m)
	return a
}

// Matches returns how many matches have been added.
func (a *Aggregator) Matches() int { return a.matches }

// Player returns the accumulator for name, if any.
func (a *Aggregator) Player(name string) (*PlayerAccumulator, bool) {
	p, ok := a.players[name]
	return p, ok
}

// Players returns every accumulator ordered by name.
func (a *Aggregator) Players() []*PlayerAccumulator {
	out := make([]*PlayerAccumulator, 0, len(a.players))
	for _, p := range a.players {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Dismissals returns the dismissal log in the order the wickets fell.
func (a *Aggregator) Dismissals() []model.Dismissal {
	out := make([]model.Dismissal, len(a.dismissals))
	copy(out, a.dismissals)
	return out
}

// DismissalsOf returns the logged dismissals of one player.
func (a *Aggregator) DismissalsOf(player string) []model.Dismissal {
	var out []model.Dismissal
	for _, d := range a.dismissals {
		if d.Player == player {
			out = append(out, d)
		}
	}
	return out
}

// Merge adds other's counters into a. Counter addition is commutative, so
// merging per-match aggregators in any order gives the same totals as one
// combined pass. Both aggregators should use the same filter.
func (a *Aggregator) Merge(other *Aggregator) {
	for name, op := range other.players {
		a.getPlayer(name).merge(op)
	}
	a.dismissals = append(a.dismissals, other.dismissals...)
	a.matches += other.matches
}

func (a *Aggregator) getPlayer(name string) *PlayerAccumulator {
	p := a.players[name]
	if p == nil {
		p = newPlayer(name)
		a.players[name] = p
	}
	return p
}

func (a *Aggregator) wants(name string) bool {
	if name == "" {
		return false
	}
	return a.filter == "" || strings.Contains(strings.ToLower(name), a.filter)
}

// Add folds one match into the accumulators. Missing fields are treated as
// zero values; a nil document is ignored.
func (a *Aggregator) Add(m model.Match) {
	if m.Doc == nil {
		return
	}
	a.matches++

	// Playing-XI appearances, once per player per match even if a name is
	// listed under both teams.
	seen := make(map[string]struct{})
	for _, team := range sortedTeams(m.Doc.Info.Players) {
		for _, name := range m.Doc.Info.Players[team] {
			if _, dup := seen[name]; dup || !a.wants(name) {
				continue
			}
			seen[name] = struct{}{}
			a.getPlayer(name).Matches++
		}
	}

	for i := range m.Doc.Innings {
		a.addInnings(m, &m.Doc.Innings[i])
	}
}

// inningsCursor is the state threaded through one innings in delivery order.
type inningsCursor struct {
	wickets  int            // wickets fallen so far
	startPos map[string]int // player → wickets fallen at their first legal ball
	runs     map[string]int // player → runs this innings
}

func (a *Aggregator) addInnings(m model.Match, inn *model.Innings) {
	cur := inningsCursor{
		startPos: make(map[string]int),
		runs:     make(map[string]int),
	}

	for oi := range inn.Overs {
		over := &inn.Overs[oi]
		death := over.IsDeathOver()
		for di := range over.Deliveries {
			d := &over.Deliveries[di]
			if a.wants(d.Batter) {
				a.addBall(m, inn, d, death, &cur)
			}
			for _, w := range d.Wickets {
				a.addWicket(m, inn, over, d, w, death, &cur)
				cur.wickets++
			}
		}
	}

	for name, runs := range cur.runs {
		p := a.players[name]
		p.Milestones.record(runs)
		if pos, ok := cur.startPos[name]; ok {
			p.position(pos).Milestones.record(runs)
		}
	}
}

func (a *Aggregator) addBall(m model.Match, inn *model.Innings, d *model.Delivery, death bool, cur *inningsCursor) {
	p := a.getPlayer(d.Batter)
	p.Team = inn.Team
	p.creditInnings(m.ID)

	legal := d.IsLegal()
	pos, known := cur.startPos[d.Batter]
	if !known && legal {
		pos, known = cur.wickets, true
		cur.startPos[d.Batter] = pos
		p.position(pos).Innings++
	}

	runs := d.Runs.Batter
	cur.runs[d.Batter] += runs
	p.Total.addBall(legal, runs)
	if death {
		p.Death.addBall(legal, runs)
	}
	if known {
		p.position(pos).addBall(legal, runs)
	}
}

func (a *Aggregator) addWicket(m model.Match, inn *model.Innings, over *model.Over, d *model.Delivery, w model.Wicket, death bool, cur *inningsCursor) {
	if !a.wants(w.PlayerOut) {
		return
	}
	p := a.getPlayer(w.PlayerOut)
	if p.Team == "" {
		p.Team = inn.Team
	}
	p.Total.Dismissals++
	if death {
		p.Death.Dismissals++
	}
	if pos, ok := cur.startPos[w.PlayerOut]; ok {
		p.position(pos).Dismissals++
	}

	kind := w.Kind
	if kind == "" {
		kind = "unknown"
	}
	a.dismissals = append(a.dismissals, model.Dismissal{
		Player:         w.PlayerOut,
		Kind:           kind,
		Fielders:       append([]string(nil), w.Fielders...),
		Bowler:         d.Bowler,
		Over:           over.Number,
		BatterOnStrike: d.Batter,
		NonStriker:     d.NonStriker,
		Score:          scoreThrough(inn, over.Number),
		MatchID:        m.ID,
		MatchName:      m.Name,
	})

	// A non-striker run out before facing a ball still batted.
	p.creditInnings(m.ID)
}

// scoreThrough renders the batting side's total and wickets over every over
// numbered up to and including overNumber, e.g. "India 143-4".
func scoreThrough(inn *model.Innings, overNumber int) string {
	runs, wickets := 0, 0
	for _, o := range inn.Overs {
		if o.Number > overNumber {
			continue
		}
		for _, d := range o.Deliveries {
			runs += d.Runs.Total
			wickets += len(d.Wickets)
		}
	}
	return fmt.Sprintf("%s %d-%d", inn.Team, runs, wickets)
}

func sortedTeams(players map[string][]string) []string {
	teams := make([]string, 0, len(players))
	for t := range players {
		teams = append(teams, t)
	}
	sort.Strings(teams)
	return teams
}
