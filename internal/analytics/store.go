// Package analytics records page visits and outbound project link clicks
// in sqlite. Client IPs are stored only as salted hashes.
package analytics

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"fmt"
	"sync"
	"time"

	_ "modernc.org/sqlite"
)

var schema = []string{
	`CREATE TABLE IF NOT EXISTS visits (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		hashed_ip TEXT NOT NULL,
		user_agent TEXT,
		path TEXT,
		timestamp TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS link_clicks (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		project_index INTEGER NOT NULL,
		project_slug TEXT NOT NULL,
		kind TEXT NOT NULL,
		target TEXT NOT NULL,
		hashed_ip TEXT NOT NULL,
		timestamp TEXT NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_link_clicks_slug ON link_clicks(project_slug, kind)`,
	`CREATE INDEX IF NOT EXISTS idx_visits_timestamp ON visits(timestamp)`,
}

// timestamps are stored as fixed width UTC text so they sort lexically
const timeLayout = "2006-01-02 15:04:05.000000"

// Visit is one tracked page view
type Visit struct {
	IP        string
	UserAgent string
	Path      string
	Timestamp time.Time
}

// Click is one followed project link
type Click struct {
	ProjectIndex int
	ProjectSlug  string
	Kind         string // "demo" or "repo"
	Target       string
	IP           string
	Timestamp    time.Time
}

// ClickStat aggregates clicks per project link
type ClickStat struct {
	ProjectSlug string `json:"project_slug"`
	Kind        string `json:"kind"`
	Clicks      int64  `json:"clicks"`
}

// Stats summarises stored data
type Stats struct {
	TotalVisits    int64       `json:"total_visits"`
	UniqueVisitors int64       `json:"unique_visitors"`
	TotalClicks    int64       `json:"total_clicks"`
	Clicks         []ClickStat `json:"clicks"`
}

// Store is a sqlite backed analytics store
type Store struct {
	db      *sql.DB
	salt    string
	pending sync.WaitGroup // background writes
}

// Open opens (creating if needed) the database at dsn and applies the schema
func Open(ctx context.Context, dsn string) (*Store, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("opening analytics database: %w", err)
	}
	// sqlite allows a single writer
	db.SetMaxOpenConns(1)

	for _, stmt := range schema {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			db.Close()
			return nil, fmt.Errorf("applying analytics schema: %w", err)
		}
	}

	salt, err := newSalt()
	if err != nil {
		db.Close()
		return nil, err
	}
	return &Store{db: db, salt: salt}, nil
}

// Close waits for background writes, then closes the database
func (s *Store) Close() error {
	s.pending.Wait()
	return s.db.Close()
}

// HashIP returns the salted, truncated hash stored in place of an address
func (s *Store) HashIP(ip string) string {
	sum := sha256.Sum256([]byte(ip + s.salt))
	return hex.EncodeToString(sum[:])[:16]
}

// RecordVisit stores a page view
func (s *Store) RecordVisit(ctx context.Context, v Visit) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO visits (hashed_ip, user_agent, path, timestamp) VALUES (?, ?, ?, ?)`,
		s.HashIP(v.IP), v.UserAgent, v.Path, stamp(v.Timestamp))
	if err != nil {
		return fmt.Errorf("recording visit: %w", err)
	}
	return nil
}

// RecordClick stores a followed project link
func (s *Store) RecordClick(ctx context.Context, c Click) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO link_clicks (project_index, project_slug, kind, target, hashed_ip, timestamp)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		c.ProjectIndex, c.ProjectSlug, c.Kind, c.Target, s.HashIP(c.IP), stamp(c.Timestamp))
	if err != nil {
		return fmt.Errorf("recording click: %w", err)
	}
	return nil
}

// Stats returns visit totals and per-link click counts, most clicked first
func (s *Store) Stats(ctx context.Context) (*Stats, error) {
	stats := &Stats{Clicks: []ClickStat{}}

	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM visits`).Scan(&stats.TotalVisits); err != nil {
		return nil, fmt.Errorf("counting visits: %w", err)
	}
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(DISTINCT hashed_ip) FROM visits`).Scan(&stats.UniqueVisitors); err != nil {
		return nil, fmt.Errorf("counting visitors: %w", err)
	}
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM link_clicks`).Scan(&stats.TotalClicks); err != nil {
		return nil, fmt.Errorf("counting clicks: %w", err)
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT project_slug, kind, COUNT(*) AS clicks
		FROM link_clicks
		GROUP BY project_slug, kind
		ORDER BY clicks DESC, project_slug, kind`)
	if err != nil {
		return nil, fmt.Errorf("loading click counts: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var c ClickStat
		if err := rows.Scan(&c.ProjectSlug, &c.Kind, &c.Clicks); err != nil {
			return nil, fmt.Errorf("scanning click count: %w", err)
		}
		stats.Clicks = append(stats.Clicks, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("loading click counts: %w", err)
	}
	return stats, nil
}

// Cleanup deletes rows older than the given number of months and returns
// how many were removed. Zero months keeps everything.
func (s *Store) Cleanup(ctx context.Context, months int, now time.Time) (int64, error) {
	if months <= 0 {
		return 0, nil
	}
	cutoff := stamp(now.AddDate(0, -months, 0))

	var removed int64
	for _, table := range []string{"visits", "link_clicks"} {
		res, err := s.db.ExecContext(ctx, `DELETE FROM `+table+` WHERE timestamp < ?`, cutoff)
		if err != nil {
			return removed, fmt.Errorf("cleaning %s: %w", table, err)
		}
		n, _ := res.RowsAffected()
		removed += n
	}
	return removed, nil
}

func stamp(t time.Time) string {
	if t.IsZero() {
		t = time.Now()
	}
	return t.UTC().Format(timeLayout)
}

func newSalt() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("generating hash salt: %w", err)
	}
	return hex.EncodeToString(b), nil
}
