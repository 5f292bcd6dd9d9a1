package storage

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/pable/go-cricket-metrics/internal/model"
)

func openMemDB(t *testing.T) *DB {
	t.Helper()
	db, err := OpenMemory()
	if err != nil {
		t.Fatalf("open in-memory db: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func TestMatchesInsertAndList(t *testing.T) {
	db := openMemDB(t)

	summaries := []model.MatchSummary{
		{ID: "m1", Name: "A vs B - Match 1 (2023-04-01)", Year: 2023, Team1: "A", Team2: "B", Date: "2023-04-01", Result: "A"},
		{ID: "m2", Name: "B vs C - Match 2 (2023-04-05)", Year: 2023, Team1: "B", Team2: "C", Date: "2023-04-05", Result: "No Result"},
	}
	if err := db.InsertMatches(summaries); err != nil {
		t.Fatalf("InsertMatches: %v", err)
	}
	// Second insert should not error (INSERT OR REPLACE).
	if err := db.InsertMatches(summaries); err != nil {
		t.Errorf("second InsertMatches should succeed (idempotent): %v", err)
	}

	_, got, err := db.QueryRaw("SELECT id, team1, team2, year FROM matches ORDER BY match_date DESC")
	if err != nil {
		t.Fatalf("QueryRaw: %v", err)
	}
	want := [][]string{{"m2", "B", "C", "2023"}, {"m1", "A", "B", "2023"}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestOpenFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "stats.db")
	db, err := Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer db.Close()
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("database file not created: %v", err)
	}
	if _, _, err := db.QueryRaw("SELECT count(*) FROM batting"); err != nil {
		t.Errorf("schema not applied: %v", err)
	}
}

func TestBattingUndefinedRatiosAreNull(t *testing.T) {
	db := openMemDB(t)

	rows := []model.BattingAggregate{{
		Player: "A", Matches: 1, Innings: 1, Runs: 12, Balls: 10, DotBalls: 4,
		Positions: []model.PositionSplit{{Position: 0, Innings: 1, Runs: 12, Balls: 10}},
	}}
	if err := db.InsertBatting(rows); err != nil {
		t.Fatalf("InsertBatting: %v", err)
	}

	cols, got, err := db.QueryRaw("SELECT player, average, strike_rate, balls_per_boundary, not_outs FROM batting")
	if err != nil {
		t.Fatalf("QueryRaw: %v", err)
	}
	if len(cols) != 5 || len(got) != 1 {
		t.Fatalf("unexpected shape: cols=%v rows=%v", cols, got)
	}
	want := []string{"A", "-", "120.00", "-", "1"}
	if !reflect.DeepEqual(got[0], want) {
		t.Errorf("expected %v, got %v", want, got[0])
	}

	_, pos, err := db.QueryRaw("SELECT position, runs FROM positions WHERE player = 'A'")
	if err != nil {
		t.Fatalf("QueryRaw positions: %v", err)
	}
	if len(pos) != 1 || pos[0][1] != "12" {
		t.Errorf("unexpected positions %v", pos)
	}
}

func TestTrueBattingInsert(t *testing.T) {
	db := openMemDB(t)

	rows := []model.TrueBattingRow{
		{Player: "A", TrueAverage: 12.5, TrueStrikeRate: -3, MatchesCounted: 2, Runs: 80, AvgPosition: 1},
		{Player: "B", TrueAverage: -10, TrueStrikeRate: -10, MatchesCounted: 1, AvgPosition: model.Undefined},
	}
	if err := db.InsertTrueBatting(rows); err != nil {
		t.Fatalf("InsertTrueBatting: %v", err)
	}
	_, got, err := db.QueryRaw("SELECT player, quadrant, avg_position FROM true_batting ORDER BY player")
	if err != nil {
		t.Fatalf("QueryRaw: %v", err)
	}
	want := [][]string{{"A", "Anchor", "1.00"}, {"B", "Struggling", "-"}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestDismissalKinds(t *testing.T) {
	db := openMemDB(t)

	log := []model.Dismissal{
		{MatchID: "m1", Player: "A", Kind: "caught", Fielders: []string{"X"}, Bowler: "B1"},
		{MatchID: "m2", Player: "A", Kind: "bowled", Bowler: "B2"},
		{MatchID: "m3", Player: "A", Kind: "caught", Fielders: []string{"Y", "Z"}, Bowler: "B1"},
		{MatchID: "m3", Player: "C", Kind: "run out"},
	}
	if err := db.InsertDismissals(log); err != nil {
		t.Fatalf("InsertDismissals: %v", err)
	}

	kinds, err := db.DismissalKinds("A")
	if err != nil {
		t.Fatalf("DismissalKinds: %v", err)
	}
	want := []KindCount{{Kind: "caught", Count: 2}, {Kind: "bowled", Count: 1}}
	if !reflect.DeepEqual(kinds, want) {
		t.Errorf("expected %v, got %v", want, kinds)
	}

	_, rows, err := db.QueryRaw("SELECT fielders FROM dismissals WHERE match_id = 'm3' AND player = 'A'")
	if err != nil {
		t.Fatalf("QueryRaw: %v", err)
	}
	if len(rows) != 1 || rows[0][0] != "Y, Z" {
		t.Errorf("unexpected fielders %v", rows)
	}
}

func TestQueryRawError(t *testing.T) {
	db := openMemDB(t)
	if _, _, err := db.QueryRaw("SELECT * FROM no_such_table"); err == nil {
		t.Error("expected error for unknown table")
	}
}
