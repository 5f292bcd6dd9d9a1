package report

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"strconv"

	"github.com/pable/go-cricket-metrics/internal/model"
)

// Column orders for exported tables.
var (
	BattingColumns = []string{
		model.ColPlayer, model.ColMatches, model.ColInnings, model.ColNotOuts, model.ColDismissals,
		model.ColRuns, model.ColBalls, model.ColStrikeRate, model.ColAverage,
		model.ColFours, model.ColSixes, model.ColBallsPerBoundary, model.ColDots, model.ColDotPct,
		model.ColThirties, model.ColFifties, model.ColHundreds,
		model.ColDeathRuns, model.ColDeathBalls, model.ColDeathStrikeRate, model.ColDeathAverage,
		model.ColDeathFours, model.ColDeathSixes, model.ColDeathBallsPerBoundary,
		model.ColDeathDots, model.ColDeathDotPct, model.ColDeathDismissals, model.ColDeathSharePct,
	}
	PositionColumns = []string{
		model.ColPlayer, model.ColPosition, model.ColInnings, model.ColRuns, model.ColBalls,
		model.ColStrikeRate, model.ColAverage, model.ColFours, model.ColSixes, model.ColDismissals,
		model.ColThirties, model.ColFifties, model.ColHundreds,
	}
	TrueColumns = []string{
		model.ColPlayer, model.ColTrueAverage, model.ColTrueStrikeRate, model.ColMatchesCounted,
		model.ColRuns, model.ColBalls, model.ColOuts, model.ColAvgPosition, model.ColQuadrant,
	}
	MatchColumns = []string{
		model.ColPlayer, model.ColTeam, model.ColRuns, model.ColBalls, model.ColDismissals,
		model.ColAverage, model.ColStrikeRate, model.ColTrueAverage, model.ColTrueStrikeRate,
		model.ColIsTop6,
	}
)

// BattingRecords flattens leaderboard rows.
func BattingRecords(rows []model.BattingAggregate) []map[string]any {
	out := make([]map[string]any, 0, len(rows))
	for i := range rows {
		out = append(out, rows[i].Fields())
	}
	return out
}

// PositionRecords flattens every player's position splits, one record per
// player and position.
func PositionRecords(rows []model.BattingAggregate) []map[string]any {
	var out []map[string]any
	for _, r := range rows {
		for i := range r.Positions {
			f := r.Positions[i].Fields()
			f[model.ColPlayer] = r.Player
			out = append(out, f)
		}
	}
	return out
}

// TrueRecords flattens true batting rows.
func TrueRecords(rows []model.TrueBattingRow) []map[string]any {
	out := make([]map[string]any, 0, len(rows))
	for i := range rows {
		out = append(out, rows[i].Fields())
	}
	return out
}

// MatchRecords flattens one match's batting rows.
func MatchRecords(rows []model.MatchBattingRow) []map[string]any {
	out := make([]map[string]any, 0, len(rows))
	for i := range rows {
		out = append(out, rows[i].Fields())
	}
	return out
}

// WriteCSV writes records with a header row in column order. Floats are
// rounded to two decimals; undefined ratios are written as "-".
func WriteCSV(w io.Writer, cols []string, records []map[string]any) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(cols); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}
	line := make([]string, len(cols))
	for _, rec := range records {
		for i, c := range cols {
			line[i] = csvCell(rec[c])
		}
		if err := cw.Write(line); err != nil {
			return fmt.Errorf("write csv row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

func csvCell(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case float64:
		return Ratio(x)
	case bool:
		return strconv.FormatBool(x)
	default:
		return fmt.Sprint(x)
	}
}

// WriteJSON writes records as an indented JSON array. Floats are rounded to
// two decimals; undefined ratios become null.
func WriteJSON(w io.Writer, cols []string, records []map[string]any) error {
	out := make([]map[string]any, 0, len(records))
	for _, rec := range records {
		row := make(map[string]any, len(cols))
		for _, c := range cols {
			row[c] = jsonValue(rec[c])
		}
		out = append(out, row)
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("encode json: %w", err)
	}
	return nil
}

func jsonValue(v any) any {
	f, ok := v.(float64)
	if !ok {
		return v
	}
	if math.IsInf(f, 0) || math.IsNaN(f) {
		return nil
	}
	return math.Round(f*100) / 100
}
