package report

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/fatih/color"

	"github.com/pable/go-cricket-metrics/internal/model"
)

func init() {
	color.NoColor = true
}

func TestRatio(t *testing.T) {
	if got := Ratio(model.Undefined); got != "-" {
		t.Errorf("undefined: expected -, got %q", got)
	}
	if got := Ratio(133.3333); got != "133.33" {
		t.Errorf("expected 133.33, got %q", got)
	}
}

func TestDescribeDismissal(t *testing.T) {
	tests := []struct {
		d    model.Dismissal
		want string
	}{
		{
			model.Dismissal{Player: "A", Kind: "caught", Fielders: []string{"F"}, Bowler: "B",
				Over: 13, Score: "Home 98-3", MatchName: "Home vs Away - Match 1"},
			"caught by F b B, over 14, Home 98-3 (Home vs Away - Match 1)",
		},
		{
			model.Dismissal{Player: "N", Kind: "run out", Fielders: []string{"F", "K"}, Bowler: "B",
				BatterOnStrike: "A", NonStriker: "N", Over: 0, Score: "Home 1-1"},
			"run out (at non-striker's end) by F, K, over 1, Home 1-1",
		},
	}
	for _, tc := range tests {
		if got := DescribeDismissal(tc.d); got != tc.want {
			t.Errorf("expected %q, got %q", tc.want, got)
		}
	}
}

func TestWriteCSV(t *testing.T) {
	rows := []model.BattingAggregate{
		{Player: "A", Matches: 2, Innings: 2, Runs: 90, Balls: 60, Dismissals: 1, Fours: 6},
		{Player: "B", Matches: 1, Innings: 1, Runs: 5, Balls: 8},
	}
	var buf bytes.Buffer
	cols := []string{model.ColPlayer, model.ColRuns, model.ColStrikeRate, model.ColAverage}
	if err := WriteCSV(&buf, cols, BattingRecords(rows)); err != nil {
		t.Fatalf("WriteCSV: %v", err)
	}
	want := "player,runs,strike_rate,average\nA,90,150.00,90.00\nB,5,62.50,-\n"
	if buf.String() != want {
		t.Errorf("expected\n%s\ngot\n%s", want, buf.String())
	}
}

func TestWriteJSON(t *testing.T) {
	rows := []model.TrueBattingRow{
		{Player: "A", TrueAverage: 12.3456, TrueStrikeRate: -1, MatchesCounted: 3, AvgPosition: model.Undefined},
	}
	var buf bytes.Buffer
	if err := WriteJSON(&buf, TrueColumns, TrueRecords(rows)); err != nil {
		t.Fatalf("WriteJSON: %v", err)
	}
	var got []map[string]any
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("decode output: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("expected 1 record, got %d", len(got))
	}
	rec := got[0]
	if rec[model.ColTrueAverage] != 12.35 {
		t.Errorf("expected rounded 12.35, got %v", rec[model.ColTrueAverage])
	}
	if v, ok := rec[model.ColAvgPosition]; !ok || v != nil {
		t.Errorf("undefined avg position should be null, got %v", v)
	}
	if rec[model.ColQuadrant] != "Anchor" {
		t.Errorf("expected Anchor, got %v", rec[model.ColQuadrant])
	}
}

func TestPositionRecords(t *testing.T) {
	rows := []model.BattingAggregate{{
		Player: "A",
		Positions: []model.PositionSplit{
			{Position: 0, Innings: 1, Runs: 10, Balls: 8},
			{Position: 3, Innings: 1, Runs: 40, Balls: 30, Dismissals: 1},
		},
	}}
	recs := PositionRecords(rows)
	if len(recs) != 2 || recs[1][model.ColPlayer] != "A" || recs[1][model.ColPosition] != 3 {
		t.Errorf("unexpected position records %v", recs)
	}
}

func TestPrintMatchBattingMarksFocus(t *testing.T) {
	rows := []model.MatchBattingRow{
		{Player: "A", Team: "Home", Runs: 10, Balls: 8, Average: 10, StrikeRate: 125, IsTop6: true},
		{Player: "B", Team: "Home", Runs: 2, Balls: 4, Average: 2, StrikeRate: 50},
	}
	var buf bytes.Buffer
	PrintMatchBatting(&buf, rows, "B")
	out := buf.String()
	if !strings.Contains(out, ">") {
		t.Error("focus player should be marked with >")
	}
	if !strings.Contains(out, "125.00") {
		t.Errorf("expected formatted strike rate in output:\n%s", out)
	}
}

func TestPrintSkipped(t *testing.T) {
	var buf bytes.Buffer
	PrintSkipped(&buf, []model.SkippedMatch{{ID: "x", Reason: "invalid JSON"}})
	if !strings.Contains(buf.String(), "x: invalid JSON") {
		t.Errorf("unexpected output %q", buf.String())
	}
}
