// Package metrics records planning executions so usage and dataset
// health can be inspected later.
package metrics

import (
	"context"
	"database/sql"
	"strings"
	"time"
)

// PlanningMetric records metadata for a single planning request.
type PlanningMetric struct {
	RadiusKM    float64
	Themes      []string
	SlotsTotal  int
	SlotsPlaced int
	RowsScanned int
	LatencyMS   int64
	Timestamp   time.Time
}

// Store handles persistence of metrics to SQLite.
type Store struct {
	db *sql.DB
}

// NewStore initializes the Store with an existing database connection.
func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

// Record saves a metric to the database.
func (s *Store) Record(ctx context.Context, m PlanningMetric) error {
	ts := m.Timestamp
	if ts.IsZero() {
		ts = time.Now().UTC()
	}
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO plan_metrics (
			radius_km, themes, slots_total, slots_placed,
			rows_scanned, latency_ms, timestamp
		) VALUES (?, ?, ?, ?, ?, ?, ?)`,
		m.RadiusKM, strings.Join(m.Themes, ","), m.SlotsTotal,
		m.SlotsPlaced, m.RowsScanned, m.LatencyMS, ts,
	)
	return err
}

// DailyUsage represents planning totals for a single day.
type DailyUsage struct {
	Date        string
	Requests    int
	SlotsPlaced int
}

// GetDailyUsage retrieves usage for the last N days.
func (s *Store) GetDailyUsage(ctx context.Context, days int) ([]DailyUsage, error) {
	since := time.Now().AddDate(0, 0, -days).UTC()
	rows, err := s.db.QueryContext(ctx, `
		SELECT date(timestamp) AS day, COUNT(*), COALESCE(SUM(slots_placed), 0)
		FROM plan_metrics
		WHERE timestamp >= ?
		GROUP BY day
		ORDER BY day DESC`, since)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []DailyUsage
	for rows.Next() {
		var u DailyUsage
		if err := rows.Scan(&u.Date, &u.Requests, &u.SlotsPlaced); err != nil {
			return nil, err
		}
		results = append(results, u)
	}
	return results, rows.Err()
}

// Cleanup removes records older than the specified number of days and
// returns how many were deleted.
func (s *Store) Cleanup(ctx context.Context, olderThanDays int) (int64, error) {
	threshold := time.Now().AddDate(0, 0, -olderThanDays).UTC()
	res, err := s.db.ExecContext(ctx,
		`DELETE FROM plan_metrics WHERE timestamp < ?`, threshold)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
