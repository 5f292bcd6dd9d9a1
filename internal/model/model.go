package model

import "strings"

// DeathOverStart is the first 0-based over number treated as a death over
// (the 16th over of a 20-over innings).
const DeathOverStart = 15

// TopOrderSize is how many names at the head of a playing XI list form the
// top-order benchmark group.
const TopOrderSize = 6

// Milestone thresholds. An innings counts toward every threshold it reaches.
const (
	MilestoneThirty  = 30
	MilestoneFifty   = 50
	MilestoneHundred = 100
)

// ---- Match document (one parsed match record) ----

type Event struct {
	Name        string
	MatchNumber string
}

// Info is the header block of a match record.
type Info struct {
	Event   Event
	Season  string
	Venue   string
	City    string
	Teams   []string
	Dates   []string
	Winner  string
	Players map[string][]string // team name → playing XI in batting order
}

// TeamPlayers returns the playing XI listed for team, or nil.
func (i *Info) TeamPlayers(team string) []string {
	if i.Players == nil {
		return nil
	}
	return i.Players[team]
}

type MatchDocument struct {
	Info    Info
	Innings []Innings
}

type Innings struct {
	Team  string // batting team
	Overs []Over
}

// Over holds the deliveries of one over. Number is the stored 0-based over
// number; it need not match the over's index in Innings.Overs.
type Over struct {
	Number     int
	Deliveries []Delivery
}

// IsDeathOver reports whether the over falls in the death phase.
func (o Over) IsDeathOver() bool {
	return o.Number >= DeathOverStart
}

type Runs struct {
	Batter int
	Extras int
	Total  int
}

type Wicket struct {
	PlayerOut string
	Kind      string   // "caught", "bowled", "run out", ...
	Fielders  []string // in listed order, may be empty
}

// IsRunOut reports whether the dismissal was a run out.
func (w Wicket) IsRunOut() bool {
	return strings.EqualFold(w.Kind, "run out")
}

type Delivery struct {
	Batter     string
	NonStriker string
	Bowler     string
	Runs       Runs
	Extras     map[string]int // "wides", "noballs", "byes", "legbyes", "penalty"
	Wickets    []Wicket
}

// IsLegal reports whether the delivery counts as a ball faced by the batter.
// Any delivery carrying an extras entry is excluded, whatever the extra type.
func (d Delivery) IsLegal() bool {
	return len(d.Extras) == 0
}

// IsBowlerLegal reports whether the delivery counts toward the bowler's over.
// Only wides and no-balls are re-bowled.
func (d Delivery) IsBowlerLegal() bool {
	return d.Extras["wides"] == 0 && d.Extras["noballs"] == 0
}

// Match is a parsed document plus the identity the loader assigned to it.
type Match struct {
	ID   string // stable identifier, usually the file stem
	Name string // human-readable label, see MatchSummary.Name
	Hash string // sha256 of the source bytes
	Doc  *MatchDocument
}

// SkippedMatch records an input excluded from aggregation.
type SkippedMatch struct {
	ID     string
	Reason string
}

// MatchSummary is a lightweight catalogue record for list/filter commands.
type MatchSummary struct {
	ID          string
	Name        string // "<team1> vs <team2> - Match <n> (<date>)"
	Year        int    // 0 when neither season nor date yields a year
	Teams       []string
	Team1       string
	Team2       string
	Tournament  string
	MatchNumber string
	Date        string // first listed date
	Venue       string
	City        string
	Result      string // winner or "No Result"
	Path        string
}

// HasTeam reports whether team played in the match.
func (s *MatchSummary) HasTeam(team string) bool {
	for _, t := range s.Teams {
		if t == team {
			return true
		}
	}
	return false
}

// Dismissal is one entry of the dismissal log kept by the aggregator.
type Dismissal struct {
	Player         string
	Kind           string
	Fielders       []string
	Bowler         string
	Over           int
	BatterOnStrike string
	NonStriker     string
	Score          string // "<team> <runs>-<wickets>" through the end of the over
	MatchID        string
	MatchName      string
}

// IsRunOut reports whether the dismissal was a run out.
func (d Dismissal) IsRunOut() bool {
	return strings.EqualFold(d.Kind, "run out")
}

// End describes which end the dismissed player was at for a run out:
// "on strike", "at non-striker's end", or "" when unknown or not a run out.
func (d Dismissal) End() string {
	if !d.IsRunOut() {
		return ""
	}
	switch d.Player {
	case d.BatterOnStrike:
		return "on strike"
	case d.NonStriker:
		return "at non-striker's end"
	}
	return ""
}
