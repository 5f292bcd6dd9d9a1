package reducer

import (
	"strings"

	"github.com/pable/go-cricket-metrics/internal/model"
)

// Dismissal kinds not credited to the bowler.
var nonBowlerWickets = map[string]bool{
	"run out":               true,
	"retired hurt":          true,
	"retired out":           true,
	"retired not out":       true,
	"obstructing the field": true,
	"timed out":             true,
}

// BasicStats returns per-innings batting and bowling figures for one match.
// team, when non-empty, keeps only innings batted by that exact team; player,
// when non-empty, keeps rows whose player name contains it case-insensitively.
// Rows follow innings order, then order of first appearance.
func BasicStats(m model.Match, team, player string) ([]model.BasicBattingRow, []model.BasicBowlingRow) {
	if m.Doc == nil {
		return nil, nil
	}
	needle := strings.ToLower(strings.TrimSpace(player))
	keep := func(name string) bool {
		return needle == "" || strings.Contains(strings.ToLower(name), needle)
	}

	var batting []model.BasicBattingRow
	var bowling []model.BasicBowlingRow
	for _, inn := range m.Doc.Innings {
		if team != "" && inn.Team != team {
			continue
		}
		bat, bowl := basicInnings(inn)
		for _, r := range bat {
			if keep(r.Player) {
				batting = append(batting, r)
			}
		}
		for _, r := range bowl {
			if keep(r.Player) {
				bowling = append(bowling, r)
			}
		}
	}
	return batting, bowling
}

func basicInnings(inn model.Innings) ([]model.BasicBattingRow, []model.BasicBowlingRow) {
	batIdx := make(map[string]int)
	bowlIdx := make(map[string]int)
	var bat []model.BasicBattingRow
	var bowl []model.BasicBowlingRow

	for _, over := range inn.Overs {
		for _, d := range over.Deliveries {
			if d.Batter != "" {
				i, ok := batIdx[d.Batter]
				if !ok {
					i = len(bat)
					batIdx[d.Batter] = i
					bat = append(bat, model.BasicBattingRow{Team: inn.Team, Player: d.Batter})
				}
				r := &bat[i]
				r.Runs += d.Runs.Batter
				if d.IsLegal() {
					r.Balls++
				}
				switch d.Runs.Batter {
				case 4:
					r.Fours++
				case 6:
					r.Sixes++
				}
			}

			if d.Bowler != "" {
				i, ok := bowlIdx[d.Bowler]
				if !ok {
					i = len(bowl)
					bowlIdx[d.Bowler] = i
					bowl = append(bowl, model.BasicBowlingRow{Team: inn.Team, Player: d.Bowler})
				}
				r := &bowl[i]
				if d.IsBowlerLegal() {
					r.Balls++
				}
				r.RunsConceded += d.Runs.Total - d.Extras["byes"] - d.Extras["legbyes"]
				for _, w := range d.Wickets {
					if !nonBowlerWickets[strings.ToLower(w.Kind)] {
						r.Wickets++
					}
				}
			}
		}
	}
	return bat, bowl
}
