// Package store keeps a history of solved positions in a SQLite database.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	_ "modernc.org/sqlite"

	"github.com/domino14/lettersinarow/board"
	"github.com/domino14/lettersinarow/move"
)

const schema = `
CREATE TABLE IF NOT EXISTS solves (
	id          INTEGER PRIMARY KEY AUTOINCREMENT,
	created     INTEGER NOT NULL,
	fingerprint TEXT NOT NULL,
	board       TEXT NOT NULL,
	rack        TEXT NOT NULL,
	scheme      TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS solves_fingerprint ON solves (fingerprint);
CREATE TABLE IF NOT EXISTS results (
	solve_id INTEGER NOT NULL REFERENCES solves (id),
	rank     INTEGER NOT NULL,
	word     TEXT NOT NULL,
	row      INTEGER NOT NULL,
	col      INTEGER NOT NULL,
	vertical INTEGER NOT NULL,
	score    INTEGER NOT NULL,
	PRIMARY KEY (solve_id, rank)
);
`

// Solve is one recorded call to the solver.
type Solve struct {
	ID          int64
	Created     time.Time
	Fingerprint uint64
	// Board is the position as TSV, rack line included.
	Board   string
	Rack    string
	Scheme  string
	Results []move.Scored
}

func (s Solve) String() string {
	best := "no moves"
	if len(s.Results) > 0 {
		best = s.Results[0].String()
	}
	return fmt.Sprintf("#%d %s rack=%s scheme=%s %016x best: %s",
		s.ID, s.Created.Format(time.DateTime), s.Rack, s.Scheme, s.Fingerprint, best)
}

// History is safe for concurrent use.
type History struct {
	db *sql.DB
}

// Open opens or creates the history database at path.
func Open(ctx context.Context, path string) (*History, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	if _, err := db.ExecContext(ctx, schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating history schema in %s: %w", path, err)
	}
	log.Debug().Str("path", path).Msg("opened-history")
	return &History{db: db}, nil
}

func (h *History) Close() error {
	return h.db.Close()
}

func fingerprintKey(f uint64) string {
	return fmt.Sprintf("%016x", f)
}

// Record stores a solve of st under the named scheme and returns its id.
func (h *History) Record(ctx context.Context, st *board.State, scheme string,
	results []move.Scored) (int64, error) {

	var sb strings.Builder
	if err := st.WriteTSV(&sb); err != nil {
		return 0, err
	}
	tx, err := h.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, err
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx,
		`INSERT INTO solves (created, fingerprint, board, rack, scheme) VALUES (?, ?, ?, ?, ?)`,
		time.Now().UnixNano(), fingerprintKey(st.Fingerprint()), sb.String(),
		st.Rack().String(), scheme)
	if err != nil {
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	for rank, r := range results {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO results (solve_id, rank, word, row, col, vertical, score) VALUES (?, ?, ?, ?, ?, ?, ?)`,
			id, rank, r.Word, r.Row, r.Col, r.Dir == move.Vertical, r.Score)
		if err != nil {
			return 0, err
		}
	}
	if err := tx.Commit(); err != nil {
		return 0, err
	}
	log.Debug().Int64("id", id).Int("results", len(results)).Msg("recorded-solve")
	return id, nil
}

// Recent returns up to n solves, newest first.
func (h *History) Recent(ctx context.Context, n int) ([]Solve, error) {
	return h.query(ctx,
		`SELECT id, created, fingerprint, board, rack, scheme FROM solves ORDER BY id DESC LIMIT ?`, n)
}

// ForBoard returns every solve of the position with the given fingerprint,
// newest first.
func (h *History) ForBoard(ctx context.Context, fingerprint uint64) ([]Solve, error) {
	return h.query(ctx,
		`SELECT id, created, fingerprint, board, rack, scheme FROM solves WHERE fingerprint = ? ORDER BY id DESC`,
		fingerprintKey(fingerprint))
}

func (h *History) query(ctx context.Context, q string, args ...any) ([]Solve, error) {
	rows, err := h.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	var solves []Solve
	for rows.Next() {
		var s Solve
		var created int64
		var fp string
		if err := rows.Scan(&s.ID, &created, &fp, &s.Board, &s.Rack, &s.Scheme); err != nil {
			rows.Close()
			return nil, err
		}
		s.Created = time.Unix(0, created)
		if s.Fingerprint, err = strconv.ParseUint(fp, 16, 64); err != nil {
			rows.Close()
			return nil, fmt.Errorf("solve %d: bad fingerprint %q: %w", s.ID, fp, err)
		}
		solves = append(solves, s)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, err
	}
	for i := range solves {
		if solves[i].Results, err = h.results(ctx, solves[i].ID); err != nil {
			return nil, err
		}
	}
	return solves, nil
}

func (h *History) results(ctx context.Context, id int64) ([]move.Scored, error) {
	rows, err := h.db.QueryContext(ctx,
		`SELECT word, row, col, vertical, score FROM results WHERE solve_id = ? ORDER BY rank`, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var res []move.Scored
	for rows.Next() {
		var s move.Scored
		var vertical bool
		if err := rows.Scan(&s.Word, &s.Row, &s.Col, &vertical, &s.Score); err != nil {
			return nil, err
		}
		if vertical {
			s.Dir = move.Vertical
		}
		res = append(res, s)
	}
	return res, rows.Err()
}
