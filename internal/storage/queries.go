package storage

import (
	"database/sql"
	"fmt"
	"strconv"
	"strings"

	"github.com/pable/go-cricket-metrics/internal/model"
)

// InsertMatches stores catalogue records. Uses INSERT OR REPLACE for idempotency.
func (db *DB) InsertMatches(summaries []model.MatchSummary) error {
	tx, err := db.conn.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(`
		INSERT OR REPLACE INTO matches(id, name, year, team1, team2, tournament, match_number, match_date, venue, city, result)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, s := range summaries {
		_, err = stmt.Exec(s.ID, s.Name, s.Year, s.Team1, s.Team2, s.Tournament,
			s.MatchNumber, s.Date, s.Venue, s.City, s.Result)
		if err != nil {
			return fmt.Errorf("insert match %s: %w", s.ID, err)
		}
	}
	return tx.Commit()
}

// InsertBatting stores leaderboard rows and their position splits.
func (db *DB) InsertBatting(rows []model.BattingAggregate) error {
	tx, err := db.conn.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(`
		INSERT OR REPLACE INTO batting(
			player, matches, innings, not_outs, dismissals, runs, balls,
			strike_rate, average, fours, sixes, balls_per_boundary,
			dot_balls, dot_pct, thirties, fifties, hundreds,
			death_runs, death_balls, death_strike_rate, death_average,
			death_fours, death_sixes, death_balls_per_boundary,
			death_dot_balls, death_dot_pct, death_dismissals, death_share_pct
		) VALUES (?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	posStmt, err := tx.Prepare(`
		INSERT OR REPLACE INTO positions(
			player, position, innings, runs, balls, fours, sixes, dismissals,
			strike_rate, average, thirties, fifties, hundreds
		) VALUES (?,?,?,?,?,?,?,?,?,?,?,?,?)`)
	if err != nil {
		return err
	}
	defer posStmt.Close()

	for _, r := range rows {
		_, err = stmt.Exec(
			r.Player, r.Matches, r.Innings, r.NotOuts(), r.Dismissals, r.Runs, r.Balls,
			ratio(r.StrikeRate()), ratio(r.Average()), r.Fours, r.Sixes, ratio(r.BallsPerBoundary()),
			r.DotBalls, ratio(r.DotPct()), r.Thirties, r.Fifties, r.Hundreds,
			r.DeathRuns, r.DeathBalls, ratio(r.DeathStrikeRate()), ratio(r.DeathAverage()),
			r.DeathFours, r.DeathSixes, ratio(r.DeathBallsPerBoundary()),
			r.DeathDotBalls, ratio(r.DeathDotPct()), r.DeathDismissals, ratio(r.DeathSharePct()),
		)
		if err != nil {
			return fmt.Errorf("insert batting for %s: %w", r.Player, err)
		}
		for _, p := range r.Positions {
			_, err = posStmt.Exec(
				r.Player, p.Position, p.Innings, p.Runs, p.Balls, p.Fours, p.Sixes, p.Dismissals,
				ratio(p.StrikeRate()), ratio(p.Average()), p.Thirties, p.Fifties, p.Hundreds,
			)
			if err != nil {
				return fmt.Errorf("insert position %d for %s: %w", p.Position, r.Player, err)
			}
		}
	}
	return tx.Commit()
}

// InsertTrueBatting stores corpus true batting rows.
func (db *DB) InsertTrueBatting(rows []model.TrueBattingRow) error {
	tx, err := db.conn.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(`
		INSERT OR REPLACE INTO true_batting(
			player, true_average, true_strike_rate, matches_counted,
			runs, balls, outs, avg_position, quadrant
		) VALUES (?,?,?,?,?,?,?,?,?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, r := range rows {
		_, err = stmt.Exec(r.Player, r.TrueAverage, r.TrueStrikeRate, r.MatchesCounted,
			r.Runs, r.Balls, r.Outs, ratio(r.AvgPosition), string(r.Quadrant()))
		if err != nil {
			return fmt.Errorf("insert true batting for %s: %w", r.Player, err)
		}
	}
	return tx.Commit()
}

// InsertDismissals stores the dismissal log.
func (db *DB) InsertDismissals(log []model.Dismissal) error {
	tx, err := db.conn.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(`
		INSERT INTO dismissals(match_id, player, kind, fielders, bowler, over_number, batter, non_striker, score)
		VALUES (?,?,?,?,?,?,?,?,?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, d := range log {
		_, err = stmt.Exec(d.MatchID, d.Player, d.Kind, strings.Join(d.Fielders, ", "),
			d.Bowler, d.Over, d.BatterOnStrike, d.NonStriker, d.Score)
		if err != nil {
			return fmt.Errorf("insert dismissal of %s in %s: %w", d.Player, d.MatchID, err)
		}
	}
	return tx.Commit()
}

// KindCount is the number of dismissals of one kind.
type KindCount struct {
	Kind  string
	Count int
}

// DismissalKinds breaks a player's dismissals down by kind, most frequent first.
func (db *DB) DismissalKinds(player string) ([]KindCount, error) {
	rows, err := db.conn.Query(`
		SELECT kind, COUNT(1) AS n FROM dismissals
		WHERE player = ? GROUP BY kind ORDER BY n DESC, kind`, player)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []KindCount
	for rows.Next() {
		var k KindCount
		if err := rows.Scan(&k.Kind, &k.Count); err != nil {
			return nil, err
		}
		out = append(out, k)
	}
	return out, rows.Err()
}

// QueryRaw runs an arbitrary read query and renders every value as text.
// NULL becomes "-" and reals are rounded to two decimals.
func (db *DB) QueryRaw(query string) ([]string, [][]string, error) {
	rows, err := db.conn.Query(query)
	if err != nil {
		return nil, nil, fmt.Errorf("run query: %w", err)
	}
	defer rows.Close()

	cols, err := rows.Columns()
	if err != nil {
		return nil, nil, err
	}

	var out [][]string
	for rows.Next() {
		vals := make([]any, len(cols))
		ptrs := make([]any, len(cols))
		for i := range vals {
			ptrs[i] = &vals[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return nil, nil, err
		}
		row := make([]string, len(cols))
		for i, v := range vals {
			row[i] = cellText(v)
		}
		out = append(out, row)
	}
	return cols, out, rows.Err()
}

func cellText(v any) string {
	switch x := v.(type) {
	case nil:
		return "-"
	case []byte:
		return string(x)
	case float64:
		return strconv.FormatFloat(x, 'f', 2, 64)
	default:
		return fmt.Sprint(x)
	}
}

// ratio maps the Undefined sentinel to NULL.
func ratio(v float64) sql.NullFloat64 {
	if model.IsUndefined(v) {
		return sql.NullFloat64{}
	}
	return sql.NullFloat64{Float64: v, Valid: true}
}
