package loader

import (
	"slices"

	"github.com/pable/go-cricket-metrics/internal/model"
)

// Filter narrows the corpus by match attributes. Zero fields do not filter.
// Team1 and Team2 match either side of a fixture.
type Filter struct {
	Tournament string
	Years      []int
	Team1      string
	Team2      string
	Venue      string
	Date       string
	Names      []string // display names, see model.MatchSummary.Name
}

// Keep reports whether s passes every set criterion.
func (f Filter) Keep(s model.MatchSummary) bool {
	if f.Tournament != "" && s.Tournament != f.Tournament {
		return false
	}
	if len(f.Years) > 0 && !slices.Contains(f.Years, s.Year) {
		return false
	}
	if f.Team1 != "" && !s.HasTeam(f.Team1) {
		return false
	}
	if f.Team2 != "" && !s.HasTeam(f.Team2) {
		return false
	}
	if f.Venue != "" && s.Venue != f.Venue {
		return false
	}
	if f.Date != "" && s.Date != f.Date {
		return false
	}
	if len(f.Names) > 0 && !slices.Contains(f.Names, s.Name) {
		return false
	}
	return true
}

// Apply returns a Result holding only the matches f keeps. Skipped inputs are
// carried over unchanged.
func (f Filter) Apply(r *Result) *Result {
	out := &Result{Skipped: r.Skipped}
	for i, s := range r.Summaries {
		if f.Keep(s) {
			out.Matches = append(out.Matches, r.Matches[i])
			out.Summaries = append(out.Summaries, s)
		}
	}
	return out
}
