package loader

import (
	"fmt"
	"strconv"

	"github.com/pable/go-cricket-metrics/internal/model"
)

// Summarize builds the catalogue record for a decoded match.
func Summarize(id, path string, doc *model.MatchDocument) model.MatchSummary {
	info := doc.Info
	s := model.MatchSummary{
		ID:          id,
		Teams:       append([]string(nil), info.Teams...),
		Tournament:  info.Event.Name,
		MatchNumber: info.Event.MatchNumber,
		Venue:       info.Venue,
		City:        info.City,
		Result:      info.Winner,
		Path:        path,
	}
	if len(info.Teams) > 0 {
		s.Team1 = info.Teams[0]
	}
	if len(info.Teams) > 1 {
		s.Team2 = info.Teams[1]
	}
	if len(info.Dates) > 0 {
		s.Date = info.Dates[0]
	}
	if s.Result == "" {
		s.Result = "No Result"
	}

	s.Name = fmt.Sprintf("%s vs %s - Match %s", s.Team1, s.Team2, s.MatchNumber)
	if s.Date != "" {
		s.Name += fmt.Sprintf(" (%s)", s.Date)
	}
	s.Year = yearOf(info.Season, s.Date)
	return s
}

// yearOf reads the season as an integer year. Without a season the first
// four characters of the date are used. Anything unparseable, such as a
// split season "2007/08", gives 0.
func yearOf(season, date string) int {
	src := season
	if src == "" {
		if len(date) < 4 {
			return 0
		}
		src = date[:4]
	}
	y, err := strconv.Atoi(src)
	if err != nil {
		return 0
	}
	return y
}
