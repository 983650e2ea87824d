// Package store persists served computations in a local SQLite
// database. The record is an audit trail, not a cache: every entry
// was computed fresh and failures to record never surface to the
// client.
package store

import (
	"context"
	"database/sql"
	"time"

	"github.com/ansel1/merry"
	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
)

const schema = `
CREATE TABLE IF NOT EXISTS computation (
	computation_id INTEGER PRIMARY KEY,
	created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
	civil_date TEXT NOT NULL,
	civil_time TEXT NOT NULL,
	utc_offset_minutes INTEGER NOT NULL,
	julian_day REAL NOT NULL,
	tithi TEXT NOT NULL,
	paksha TEXT NOT NULL,
	nakshatra TEXT NOT NULL,
	yoga TEXT NOT NULL,
	karana TEXT NOT NULL,
	rashi TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS computation_created_at ON computation (created_at);
`

const insertComputation = `
INSERT INTO computation (
	civil_date, civil_time, utc_offset_minutes, julian_day,
	tithi, paksha, nakshatra, yoga, karana, rashi
) VALUES (
	:civil_date, :civil_time, :utc_offset_minutes, :julian_day,
	:tithi, :paksha, :nakshatra, :yoga, :karana, :rashi
)`

// Computation is one served Panchanga computation. The civil input
// is kept in its request form so records can be replayed against the
// engine for regression comparison.
type Computation struct {
	ComputationID    int64     `db:"computation_id"`
	CreatedAt        time.Time `db:"created_at"`
	CivilDate        string    `db:"civil_date"`
	CivilTime        string    `db:"civil_time"`
	UTCOffsetMinutes int       `db:"utc_offset_minutes"`
	JulianDay        float64   `db:"julian_day"`
	Tithi            string    `db:"tithi"`
	Paksha           string    `db:"paksha"`
	Nakshatra        string    `db:"nakshatra"`
	Yoga             string    `db:"yoga"`
	Karana           string    `db:"karana"`
	Rashi            string    `db:"rashi"`
}

type Store struct {
	db *sqlx.DB
}

// Open opens (creating if necessary) the SQLite database at
// filename and ensures the schema exists. A single connection is
// kept; SQLite serializes writers anyway.
func Open(filename string) (*Store, error) {
	conn, err := sql.Open("sqlite3", filename)
	if err != nil {
		return nil, merry.Wrap(err)
	}
	conn.SetMaxIdleConns(1)
	conn.SetMaxOpenConns(1)
	conn.SetConnMaxLifetime(0)

	db := sqlx.NewDb(conn, "sqlite3")
	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, merry.Prepend(err, "create schema")
	}

	return &Store{db: db}, nil
}

func (s *Store) Save(ctx context.Context, c Computation) (int64, error) {
	r, err := s.db.NamedExecContext(ctx, insertComputation, c)
	if err != nil {
		return 0, merry.Prepend(err, "insert computation")
	}
	id, err := r.LastInsertId()
	if err != nil {
		return 0, merry.Wrap(err)
	}
	if id <= 0 {
		return 0, merry.New("computation was not inserted")
	}
	return id, nil
}

// ListRecent returns the most recently recorded computations, newest
// first.
func (s *Store) ListRecent(ctx context.Context, limit int) ([]Computation, error) {
	var records []Computation
	err := s.db.SelectContext(ctx, &records,
		`SELECT * FROM computation ORDER BY computation_id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, merry.Prepend(err, "select computations")
	}
	return records, nil
}

func (s *Store) Count(ctx context.Context) (int64, error) {
	var n int64
	err := s.db.GetContext(ctx, &n, `SELECT COUNT(*) FROM computation`)
	if err != nil {
		return 0, merry.Prepend(err, "count computations")
	}
	return n, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}
