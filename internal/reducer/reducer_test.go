package reducer

import (
	"math"
	"reflect"
	"testing"

	"github.com/pable/go-cricket-metrics/internal/benchmark"
	"github.com/pable/go-cricket-metrics/internal/model"
)

func approx(a, b float64) bool { return math.Abs(a-b) < 1e-6 }

// stint builds balls legal deliveries for batter: dots, then every run on the
// final ball, which also dismisses the batter when out is set.
func stint(batter string, runs, balls int, out bool) []model.Delivery {
	ds := make([]model.Delivery, balls)
	for i := range ds {
		ds[i] = model.Delivery{Batter: batter, NonStriker: "ns", Bowler: "bowler"}
	}
	last := &ds[balls-1]
	last.Runs = model.Runs{Batter: runs, Total: runs}
	if out {
		last.Wickets = []model.Wicket{{PlayerOut: batter, Kind: "caught"}}
	}
	return ds
}

// makeMatch builds a match where team bats once, in stint order, with the
// given playing XI.
func makeMatch(id, team string, xi []string, stints ...[]model.Delivery) model.Match {
	var ds []model.Delivery
	for _, s := range stints {
		ds = append(ds, s...)
	}
	return model.Match{
		ID:   id,
		Name: id,
		Doc: &model.MatchDocument{
			Info: model.Info{
				Teams:   []string{team, "Away"},
				Players: map[string][]string{team: xi, "Away": {"bowler"}},
			},
			Innings: []model.Innings{{Team: team, Overs: []model.Over{{Number: 0, Deliveries: ds}}}},
		},
	}
}

// ---- Corpus true batting ----

func divergenceMatches() []model.Match {
	xi := []string{"P", "Q"}
	return []model.Match{
		// bench 40/20/2 → avg 20, sr 200; P avg 10, sr 100
		makeMatch("m1", "Home", xi, stint("P", 10, 10, true), stint("Q", 30, 10, true)),
		// bench 80/40/2 → avg 40, sr 200; P avg 60, sr 300
		makeMatch("m2", "Home", xi, stint("P", 60, 20, true), stint("Q", 20, 20, true)),
	}
}

func findTrue(t *testing.T, rows []model.TrueBattingRow, name string) model.TrueBattingRow {
	t.Helper()
	for _, r := range rows {
		if r.Player == name {
			return r
		}
	}
	t.Fatalf("no true batting row for %q", name)
	return model.TrueBattingRow{}
}

func TestTrueBatting_MeanOfPerMatchValues(t *testing.T) {
	rows := TrueBatting(divergenceMatches(), 0)
	p := findTrue(t, rows, "P")

	// -50 in m1, +50 in m2.
	if !approx(p.TrueAverage, 0) || !approx(p.TrueStrikeRate, 0) {
		t.Errorf("expected mean (0, 0), got (%v, %v)", p.TrueAverage, p.TrueStrikeRate)
	}
	if p.MatchesCounted != 2 || p.Runs != 70 || p.Balls != 30 || p.Outs != 2 {
		t.Errorf("unexpected totals %+v", p)
	}

	// Normalizing the pooled totals against the pooled benchmark gives a
	// different answer when the per-match benchmarks differ.
	pooledAvg, pooledSR := benchmark.Line{Runs: 70, Balls: 30, Dismissals: 2}.
		Against(benchmark.Line{Runs: 120, Balls: 60, Dismissals: 4})
	if approx(pooledAvg, p.TrueAverage) || approx(pooledSR, p.TrueStrikeRate) {
		t.Errorf("per-match mean (%v, %v) should differ from pooled (%v, %v)",
			p.TrueAverage, p.TrueStrikeRate, pooledAvg, pooledSR)
	}
}

func TestTrueBatting_OrderAndTopN(t *testing.T) {
	rows := TrueBatting(divergenceMatches(), 0)
	if len(rows) != 2 || rows[0].Player != "P" || rows[1].Player != "Q" {
		t.Fatalf("expected P (70 runs) before Q (50 runs), got %+v", rows)
	}
	if q := rows[1]; !approx(q.AvgPosition, 1) {
		t.Errorf("Q always came in at one down, got avg position %v", q.AvgPosition)
	}
	if got := TrueBatting(divergenceMatches(), 1); len(got) != 1 || got[0].Player != "P" {
		t.Errorf("topN=1: expected only P, got %+v", got)
	}
}

func TestTrueBatting_OnlyTopSixOfXI(t *testing.T) {
	xi := []string{"a", "b", "c", "d", "e", "f", "seventh"}
	m := makeMatch("m1", "Home", xi, stint("a", 20, 10, true), stint("seventh", 50, 10, false))
	rows := TrueBatting([]model.Match{m}, 0)
	for _, r := range rows {
		if r.Player == "seventh" {
			t.Errorf("seventh name in XI list should not be counted: %+v", r)
		}
	}
	// Listed in the top six but never batted: counted with zero true stats
	// and no starting position.
	b := findTrue(t, rows, "b")
	if b.MatchesCounted != 1 || b.TrueAverage != -100 || !model.IsUndefined(b.AvgPosition) {
		t.Errorf("unexpected row for non-batting top-six player: %+v", b)
	}
}

// ---- Match-level ----

func TestMatchTrueBatting(t *testing.T) {
	xi := []string{"A", "B", "C", "D", "E", "F", "G"}
	m := makeMatch("m1", "Home", xi,
		stint("A", 40, 20, true),
		stint("B", 20, 10, false),
		stint("G", 10, 5, true),
	)
	rows := MatchTrueBatting(m)
	if len(rows) != 3 || rows[0].Player != "A" || rows[1].Player != "B" || rows[2].Player != "G" {
		t.Fatalf("unexpected rows %+v", rows)
	}

	// Benchmark is A..F only: 60 runs, 30 balls, 1 out → avg 60, sr 200.
	a, b, g := rows[0], rows[1], rows[2]
	if !approx(a.TrueAverage, -100.0/3) || !approx(a.TrueStrikeRate, 0) {
		t.Errorf("A: got (%v, %v)", a.TrueAverage, a.TrueStrikeRate)
	}
	if b.Average != 20 {
		t.Errorf("not-out average should be the runs total, got %v", b.Average)
	}
	if !approx(b.TrueAverage, -200.0/3) {
		t.Errorf("B true average: got %v", b.TrueAverage)
	}
	if !a.IsTop6 || g.IsTop6 {
		t.Errorf("IsTop6: A=%v G=%v", a.IsTop6, g.IsTop6)
	}
	if g.Team != "Home" || g.StrikeRate != 200 {
		t.Errorf("unexpected G row %+v", g)
	}
}

func TestMatchTrueBatting_SkipsBatterWithNoLegalBall(t *testing.T) {
	wide := model.Delivery{Batter: "B", Bowler: "bowler", Extras: map[string]int{"wides": 1},
		Runs: model.Runs{Extras: 1, Total: 1}}
	m := makeMatch("m1", "Home", []string{"A", "B"}, stint("A", 4, 2, false), []model.Delivery{wide})
	rows := MatchTrueBatting(m)
	if len(rows) != 1 || rows[0].Player != "A" {
		t.Errorf("expected only A, got %+v", rows)
	}
}

// ---- Leaderboard ----

func TestLeaderboard(t *testing.T) {
	rows := Leaderboard(divergenceMatches(), "")
	if len(rows) != 2 {
		t.Fatalf("expected 2 batters, got %+v", rows)
	}
	p := rows[0]
	if p.Player != "P" || p.Runs != 70 || p.Innings != 2 || p.Matches != 2 || p.Dismissals != 2 {
		t.Errorf("unexpected P row %+v", p)
	}
	if !reflect.DeepEqual(p.Positions, []model.PositionSplit{{
		Position: 0, Innings: 2, Runs: 70, Balls: 30, Dismissals: 2, Thirties: 1, Fifties: 1,
	}}) {
		t.Errorf("unexpected position splits %+v", p.Positions)
	}
	if p.Thirties != 1 || p.Fifties != 1 || p.Hundreds != 0 {
		t.Errorf("unexpected milestones %+v", p)
	}

	filtered := Leaderboard(divergenceMatches(), "q")
	if len(filtered) != 1 || filtered[0].Player != "Q" {
		t.Errorf("filter q: expected only Q, got %+v", filtered)
	}
}

func TestLeaderboard_ExcludesNonBatters(t *testing.T) {
	m := makeMatch("m1", "Home", []string{"A", "B"}, stint("A", 12, 6, false))
	rows := Leaderboard([]model.Match{m}, "")
	if len(rows) != 1 || rows[0].Player != "A" {
		t.Errorf("expected only A, got %+v", rows)
	}
	if !model.IsUndefined(rows[0].Average()) {
		t.Errorf("not-out leaderboard average should be undefined, got %v", rows[0].Average())
	}
}

// ---- Basic stats ----

func TestBasicStats(t *testing.T) {
	bye := model.Delivery{Batter: "A", Bowler: "X", Extras: map[string]int{"byes": 4},
		Runs: model.Runs{Extras: 4, Total: 4}}
	wide := model.Delivery{Batter: "A", Bowler: "X", Extras: map[string]int{"wides": 1},
		Runs: model.Runs{Extras: 1, Total: 1}}
	six := model.Delivery{Batter: "A", Bowler: "X", Runs: model.Runs{Batter: 6, Total: 6}}
	runOut := model.Delivery{Batter: "A", NonStriker: "B", Bowler: "Y",
		Wickets: []model.Wicket{{PlayerOut: "B", Kind: "run out"}}}
	bowled := model.Delivery{Batter: "A", Bowler: "Y",
		Wickets: []model.Wicket{{PlayerOut: "A", Kind: "bowled"}}}

	m := makeMatch("m1", "Home", []string{"A", "B"},
		[]model.Delivery{bye, wide, six, runOut, bowled})

	bat, bowl := BasicStats(m, "", "")
	if len(bat) != 1 {
		t.Fatalf("expected one batter row, got %+v", bat)
	}
	if a := bat[0]; a.Runs != 6 || a.Balls != 3 || a.Sixes != 1 || a.Team != "Home" {
		t.Errorf("unexpected batter row %+v", a)
	}
	if len(bowl) != 2 {
		t.Fatalf("expected two bowler rows, got %+v", bowl)
	}
	x, y := bowl[0], bowl[1]
	if x.Player != "X" || x.Balls != 2 || x.RunsConceded != 7 || x.Overs() != "0.2" {
		t.Errorf("unexpected X row %+v", x)
	}
	if y.Wickets != 1 {
		t.Errorf("run out should not be credited to the bowler, got %d wickets", y.Wickets)
	}
	if !approx(x.Economy(), 21) {
		t.Errorf("X economy: expected 21, got %v", x.Economy())
	}

	if bat, bowl := BasicStats(m, "Away", ""); len(bat)+len(bowl) != 0 {
		t.Error("team filter should drop innings batted by Home")
	}
	if _, bowl := BasicStats(m, "", "y"); len(bowl) != 1 || bowl[0].Player != "Y" {
		t.Errorf("player filter y: got %+v", bowl)
	}
}

// ---- Player search ----

func TestSelectPlayers(t *testing.T) {
	names := []string{"V Kohli", "KL Rahul", "R Sharma", "RG Sharma", "Rahul Tewatia"}

	tests := []struct {
		search string
		want   []string
	}{
		{"", []string{"KL Rahul", "R Sharma", "RG Sharma", "Rahul Tewatia", "V Kohli"}},
		{"r sharma", []string{"R Sharma"}},
		{"sharma", []string{"R Sharma", "RG Sharma"}},
		{"rahul, kohli, KL Rahul", []string{"KL Rahul", "Rahul Tewatia", "V Kohli"}},
		{" , nobody", nil},
	}
	for _, tc := range tests {
		if got := SelectPlayers(names, tc.search); !reflect.DeepEqual(got, tc.want) {
			t.Errorf("SelectPlayers(%q): expected %v, got %v", tc.search, tc.want, got)
		}
	}
}
