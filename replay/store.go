// Package replay persists finished matches to SQLite for later audit
// and analysis. The engine itself performs no I/O; the store consumes
// its round log after the fact.
package replay

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/HannahHughes30/cambio.ai/engine"

	_ "modernc.org/sqlite"
)

// ErrNotFound is returned when a match ID has no stored record.
var ErrNotFound = errors.New("replay: match not found")

// MatchRecord is one finished match as stored: enough to replay it
// (seed + rules + actions) and enough to analyze it without replaying
// (scores, winners, final hash).
type MatchRecord struct {
	ID        uuid.UUID       `json:"id"`
	Seed      uint64          `json:"seed"`
	Rules     engine.Rules    `json:"rules"`
	Turns     uint16          `json:"turns"`
	Aborted   bool            `json:"aborted"`
	Scores    []int           `json:"scores"`
	Winners   []uint8         `json:"winners"`
	StateHash uint64          `json:"stateHash"`
	Log       engine.RoundLog `json:"log"`
	CreatedAt time.Time       `json:"createdAt"`
}

// RecordOf snapshots a terminal match into a storable record.
func RecordOf(id uuid.UUID, g *engine.GameState) MatchRecord {
	return MatchRecord{
		ID:        id,
		Seed:      g.Seed,
		Rules:     g.Rules,
		Turns:     g.TurnNumber,
		Aborted:   g.Phase == engine.PhaseAborted,
		Scores:    g.Scores(),
		Winners:   g.Winners(),
		StateHash: g.StateHash(),
		Log:       g.Log,
		CreatedAt: time.Now().UTC(),
	}
}

// Store is a SQLite-backed match archive. Safe for concurrent use; the
// single-connection pool serializes writers.
type Store struct {
	db *sql.DB
}

// Open creates or opens the archive at dbPath (":memory:" for tests).
func Open(ctx context.Context, dbPath string) (*Store, error) {
	if dbPath == "" {
		return nil, fmt.Errorf("replay: empty database path")
	}
	if dbPath != ":memory:" {
		if parent := filepath.Dir(dbPath); parent != "" && parent != "." {
			if err := os.MkdirAll(parent, 0o755); err != nil {
				return nil, err
			}
		}
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	for _, pragma := range []string{
		`PRAGMA busy_timeout = 5000;`,
		`PRAGMA journal_mode = WAL;`,
	} {
		if _, err := db.ExecContext(ctx, pragma); err != nil {
			_ = db.Close()
			return nil, err
		}
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}
	if err := ensureSchema(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}
	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

func ensureSchema(ctx context.Context, db *sql.DB) error {
	statements := []string{
		`
CREATE TABLE IF NOT EXISTS matches (
    id           TEXT PRIMARY KEY,
    seed         INTEGER NOT NULL,
    rules_json   TEXT NOT NULL,
    turns        INTEGER NOT NULL,
    aborted      INTEGER NOT NULL,
    scores_json  TEXT NOT NULL,
    winners_json TEXT NOT NULL,
    state_hash   INTEGER NOT NULL,
    log_json     TEXT NOT NULL,
    created_ms   INTEGER NOT NULL
)`,
		`CREATE INDEX IF NOT EXISTS idx_matches_created ON matches (created_ms DESC)`,
	}
	for _, stmt := range statements {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}

// Save inserts one finished match. Saving the same ID twice is a no-op,
// which makes retries after partial failures safe.
func (s *Store) Save(ctx context.Context, rec MatchRecord) error {
	rules, err := json.Marshal(rec.Rules)
	if err != nil {
		return fmt.Errorf("replay: marshal rules: %w", err)
	}
	scores, err := json.Marshal(rec.Scores)
	if err != nil {
		return fmt.Errorf("replay: marshal scores: %w", err)
	}
	winners, err := json.Marshal(rec.Winners)
	if err != nil {
		return fmt.Errorf("replay: marshal winners: %w", err)
	}
	log, err := json.Marshal(rec.Log)
	if err != nil {
		return fmt.Errorf("replay: marshal round log: %w", err)
	}

	_, err = s.db.ExecContext(ctx, `
INSERT INTO matches (id, seed, rules_json, turns, aborted, scores_json, winners_json, state_hash, log_json, created_ms)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
ON CONFLICT (id) DO NOTHING
`, rec.ID.String(), int64(rec.Seed), string(rules), rec.Turns, boolToInt(rec.Aborted),
		string(scores), string(winners), int64(rec.StateHash), string(log),
		rec.CreatedAt.UnixMilli())
	return err
}

// Get loads one match by ID.
func (s *Store) Get(ctx context.Context, id uuid.UUID) (MatchRecord, error) {
	row := s.db.QueryRowContext(ctx, `
SELECT id, seed, rules_json, turns, aborted, scores_json, winners_json, state_hash, log_json, created_ms
FROM matches WHERE id = ?
`, id.String())
	return scanRecord(row)
}

// Recent returns up to limit matches, newest first.
func (s *Store) Recent(ctx context.Context, limit int) ([]MatchRecord, error) {
	rows, err := s.db.QueryContext(ctx, `
SELECT id, seed, rules_json, turns, aborted, scores_json, winners_json, state_hash, log_json, created_ms
FROM matches ORDER BY created_ms DESC, id LIMIT ?
`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var recs []MatchRecord
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		recs = append(recs, rec)
	}
	return recs, rows.Err()
}

// Count returns the number of archived matches.
func (s *Store) Count(ctx context.Context) (int64, error) {
	var n int64
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM matches`).Scan(&n)
	return n, err
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRecord(row rowScanner) (MatchRecord, error) {
	var (
		rec       MatchRecord
		idStr     string
		seed      int64
		rules     string
		aborted   int
		scores    string
		winners   string
		stateHash int64
		logJSON   string
		createdMs int64
	)
	err := row.Scan(&idStr, &seed, &rules, &rec.Turns, &aborted,
		&scores, &winners, &stateHash, &logJSON, &createdMs)
	if errors.Is(err, sql.ErrNoRows) {
		return rec, ErrNotFound
	}
	if err != nil {
		return rec, err
	}

	rec.ID, err = uuid.Parse(idStr)
	if err != nil {
		return rec, fmt.Errorf("replay: bad match id %q: %w", idStr, err)
	}
	rec.Seed = uint64(seed)
	rec.Aborted = aborted != 0
	rec.StateHash = uint64(stateHash)
	rec.CreatedAt = time.UnixMilli(createdMs).UTC()

	if err := json.Unmarshal([]byte(rules), &rec.Rules); err != nil {
		return rec, fmt.Errorf("replay: decode rules: %w", err)
	}
	if err := json.Unmarshal([]byte(scores), &rec.Scores); err != nil {
		return rec, fmt.Errorf("replay: decode scores: %w", err)
	}
	if err := json.Unmarshal([]byte(winners), &rec.Winners); err != nil {
		return rec, fmt.Errorf("replay: decode winners: %w", err)
	}
	if err := json.Unmarshal([]byte(logJSON), &rec.Log); err != nil {
		return rec, fmt.Errorf("replay: decode round log: %w", err)
	}
	return rec, nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
