package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"

	"github.com/pable/go-cricket-metrics/internal/model"
)

var (
	cHeading = color.New(color.FgCyan, color.Bold)
	cWarn    = color.New(color.FgYellow)
	cMuted   = color.New(color.Faint)
)

func newTable(w io.Writer) *tablewriter.Table {
	return tablewriter.NewTable(w, tablewriter.WithConfig(tablewriter.Config{
		Row: tw.CellConfig{
			Alignment: tw.CellAlignment{Global: tw.AlignRight},
		},
		Header: tw.CellConfig{
			Alignment: tw.CellAlignment{Global: tw.AlignCenter},
		},
	}))
}

// Ratio formats a ratio to two decimals, or "-" when undefined.
func Ratio(v float64) string {
	if model.IsUndefined(v) {
		return "-"
	}
	return fmt.Sprintf("%.2f", v)
}

func pct(v float64) string {
	return fmt.Sprintf("%.1f%%", v)
}

func marker(name, focus string) string {
	if focus != "" && name == focus {
		return ">"
	}
	return " "
}

// Heading prints a section title.
func Heading(w io.Writer, title string) {
	cHeading.Fprintf(w, "\n%s\n", title)
}

// PrintSkipped lists inputs excluded from the run.
func PrintSkipped(w io.Writer, skipped []model.SkippedMatch) {
	if len(skipped) == 0 {
		return
	}
	cWarn.Fprintf(w, "Skipped %d match file(s):\n", len(skipped))
	for _, s := range skipped {
		cMuted.Fprintf(w, "  %s: %s\n", s.ID, s.Reason)
	}
}

// PrintMatchSummary prints a one-line summary header for the match.
func PrintMatchSummary(w io.Writer, s model.MatchSummary) {
	fmt.Fprintf(w, "\n%s  |  %s  |  Venue: %s  |  Result: %s  |  ID: %s\n\n",
		s.Name, s.Tournament, s.Venue, s.Result, s.ID)
}

// PrintMatchList prints the match catalogue.
func PrintMatchList(w io.Writer, summaries []model.MatchSummary) {
	table := newTable(w)
	table.Header("ID", "DATE", "YEAR", "TOURNAMENT", "MATCH", "VENUE", "RESULT")
	for _, s := range summaries {
		year := "-"
		if s.Year > 0 {
			year = strconv.Itoa(s.Year)
		}
		table.Append(s.ID, s.Date, year, s.Tournament,
			fmt.Sprintf("%s vs %s", s.Team1, s.Team2), s.Venue, s.Result)
	}
	table.Render()
}

// PrintMatchBatting prints one match's benchmarked batting rows.
// If focus is non-empty, that player's row is marked with ">".
func PrintMatchBatting(w io.Writer, rows []model.MatchBattingRow, focus string) {
	table := newTable(w)
	table.Header(" ", "PLAYER", "TEAM", "R", "B", "OUT", "AVG", "SR", "TRUE_AVG", "TRUE_SR", "TOP6")
	for _, r := range rows {
		top6 := ""
		if r.IsTop6 {
			top6 = "*"
		}
		table.Append(
			marker(r.Player, focus),
			r.Player,
			r.Team,
			strconv.Itoa(r.Runs),
			strconv.Itoa(r.Balls),
			strconv.Itoa(r.Dismissals),
			Ratio(r.Average),
			Ratio(r.StrikeRate),
			fmt.Sprintf("%+.1f", r.TrueAverage),
			fmt.Sprintf("%+.1f", r.TrueStrikeRate),
			top6,
		)
	}
	table.Render()
}

// PrintBasicBatting prints per-innings batter figures.
func PrintBasicBatting(w io.Writer, rows []model.BasicBattingRow) {
	table := newTable(w)
	table.Header("TEAM", "BATTER", "R", "B", "4s", "6s", "SR")
	for _, r := range rows {
		table.Append(r.Team, r.Player,
			strconv.Itoa(r.Runs), strconv.Itoa(r.Balls),
			strconv.Itoa(r.Fours), strconv.Itoa(r.Sixes),
			Ratio(r.StrikeRate()))
	}
	table.Render()
}

// PrintBasicBowling prints per-innings bowler figures.
func PrintBasicBowling(w io.Writer, rows []model.BasicBowlingRow) {
	table := newTable(w)
	table.Header("BATTING", "BOWLER", "O", "R", "W", "ECON")
	for _, r := range rows {
		table.Append(r.Team, r.Player, r.Overs(),
			strconv.Itoa(r.RunsConceded), strconv.Itoa(r.Wickets),
			Ratio(r.Economy()))
	}
	table.Render()
}

// PrintLeaderboard prints the cross-match batting overview.
func PrintLeaderboard(w io.Writer, rows []model.BattingAggregate, focus string) {
	table := newTable(w)
	table.Header(" ", "PLAYER", "M", "INN", "NO", "R", "B", "SR", "AVG",
		"4s", "6s", "BpB", "DOT%", "30s", "50s", "100s")
	for _, r := range rows {
		table.Append(
			marker(r.Player, focus),
			r.Player,
			strconv.Itoa(r.Matches),
			strconv.Itoa(r.Innings),
			strconv.Itoa(r.NotOuts()),
			strconv.Itoa(r.Runs),
			strconv.Itoa(r.Balls),
			Ratio(r.StrikeRate()),
			Ratio(r.Average()),
			strconv.Itoa(r.Fours),
			strconv.Itoa(r.Sixes),
			Ratio(r.BallsPerBoundary()),
			pct(r.DotPct()),
			strconv.Itoa(r.Thirties),
			strconv.Itoa(r.Fifties),
			strconv.Itoa(r.Hundreds),
		)
	}
	table.Render()
}

// PrintDeathTable prints death-overs batting (over 16 onward).
func PrintDeathTable(w io.Writer, rows []model.BattingAggregate, focus string) {
	table := newTable(w)
	table.Header(" ", "PLAYER", "DO_R", "DO_B", "DO_SR", "DO_AVG", "DO_4s", "DO_6s",
		"DO_BpB", "DO_DOT%", "DO_OUT", "DO%")
	for _, r := range rows {
		if r.DeathRuns == 0 && r.DeathBalls == 0 {
			continue
		}
		table.Append(
			marker(r.Player, focus),
			r.Player,
			strconv.Itoa(r.DeathRuns),
			strconv.Itoa(r.DeathBalls),
			Ratio(r.DeathStrikeRate()),
			Ratio(r.DeathAverage()),
			strconv.Itoa(r.DeathFours),
			strconv.Itoa(r.DeathSixes),
			Ratio(r.DeathBallsPerBoundary()),
			pct(r.DeathDotPct()),
			strconv.Itoa(r.DeathDismissals),
			pct(r.DeathSharePct()),
		)
	}
	table.Render()
}

// PrintPositionTable prints one player's record by starting position.
// Position 0 is shown as "open/0 down".
func PrintPositionTable(w io.Writer, r model.BattingAggregate) {
	table := newTable(w)
	table.Header("POS", "INN", "R", "B", "SR", "AVG", "4s", "6s", "30s", "50s", "100s")
	for _, p := range r.Positions {
		pos := fmt.Sprintf("%d down", p.Position)
		if p.Position == 0 {
			pos = "open/0 down"
		}
		table.Append(
			pos,
			strconv.Itoa(p.Innings),
			strconv.Itoa(p.Runs),
			strconv.Itoa(p.Balls),
			Ratio(p.StrikeRate()),
			Ratio(p.Average()),
			strconv.Itoa(p.Fours),
			strconv.Itoa(p.Sixes),
			strconv.Itoa(p.Thirties),
			strconv.Itoa(p.Fifties),
			strconv.Itoa(p.Hundreds),
		)
	}
	table.Render()
}

// PrintTrueBatting prints the corpus true batting table.
func PrintTrueBatting(w io.Writer, rows []model.TrueBattingRow, focus string) {
	table := newTable(w)
	table.Header(" ", "PLAYER", "TRUE_AVG", "TRUE_SR", "MATCHES", "R", "B", "OUT", "AVG_POS", "QUADRANT")
	for _, r := range rows {
		table.Append(
			marker(r.Player, focus),
			r.Player,
			fmt.Sprintf("%+.2f", r.TrueAverage),
			fmt.Sprintf("%+.2f", r.TrueStrikeRate),
			strconv.Itoa(r.MatchesCounted),
			strconv.Itoa(r.Runs),
			strconv.Itoa(r.Balls),
			strconv.Itoa(r.Outs),
			Ratio(r.AvgPosition),
			string(r.Quadrant()),
		)
	}
	table.Render()
}

// DescribeDismissal renders one dismissal as a single line, e.g.
// "caught by X b Y, over 14, Team 120-4 (match name)".
func DescribeDismissal(d model.Dismissal) string {
	var b strings.Builder
	b.WriteString(d.Kind)
	if end := d.End(); end != "" {
		fmt.Fprintf(&b, " (%s)", end)
	}
	if len(d.Fielders) > 0 {
		fmt.Fprintf(&b, " by %s", strings.Join(d.Fielders, ", "))
	}
	if !d.IsRunOut() && d.Bowler != "" {
		fmt.Fprintf(&b, " b %s", d.Bowler)
	}
	fmt.Fprintf(&b, ", over %d, %s", d.Over+1, d.Score)
	if d.MatchName != "" {
		fmt.Fprintf(&b, " (%s)", d.MatchName)
	}
	return b.String()
}

// PrintDismissals lists a player's dismissals, one per line.
func PrintDismissals(w io.Writer, log []model.Dismissal) {
	if len(log) == 0 {
		cMuted.Fprintln(w, "(no dismissals)")
		return
	}
	for i, d := range log {
		fmt.Fprintf(w, "%3d. %s\n", i+1, DescribeDismissal(d))
	}
}

// PrintQueryTable prints the result of a raw query.
func PrintQueryTable(w io.Writer, cols []string, rows [][]string) {
	if len(rows) == 0 {
		fmt.Fprintln(w, "(no rows)")
		return
	}
	table := newTable(w)
	colsAny := make([]any, len(cols))
	for i, c := range cols {
		colsAny[i] = c
	}
	table.Header(colsAny...)
	for _, row := range rows {
		rowAny := make([]any, len(row))
		for i, v := range row {
			rowAny[i] = v
		}
		table.Append(rowAny...)
	}
	table.Render()
	fmt.Fprintf(w, "\n(%d rows)\n", len(rows))
}
