package venue

import (
	"context"
	"database/sql"
	"fmt"
	"log"
)

// Repository loads and stores venue rows in SQLite. The engine itself
// only ever sees the parsed, in-memory dataset; the repository is the
// data-loading collaborator in front of it.
type Repository struct {
	db *sql.DB
}

// NewRepository creates a Repository on an existing database connection.
func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

// Save inserts or replaces a raw row.
func (r *Repository) Save(ctx context.Context, row Row) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO venues (
			id, name, address, phone, rating, opening_hours,
			latitude, longitude, price_range, menu, taste, description, image
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			name=excluded.name, address=excluded.address,
			phone=excluded.phone, rating=excluded.rating,
			opening_hours=excluded.opening_hours,
			latitude=excluded.latitude, longitude=excluded.longitude,
			price_range=excluded.price_range, menu=excluded.menu,
			taste=excluded.taste, description=excluded.description,
			image=excluded.image`,
		row.ID, row.Name, row.Address, row.Phone, row.Rating,
		row.OpeningHours, row.Latitude, row.Longitude, row.PriceRange,
		row.Menu, row.Taste, row.Description, row.Image,
	)
	if err != nil {
		return fmt.Errorf("failed to save venue %q: %w", row.ID, err)
	}
	return nil
}

// LoadAll reads every stored row and parses it into the in-memory
// dataset. Rows that fail validation are skipped and counted, never
// surfaced as errors.
func (r *Repository) LoadAll(ctx context.Context) ([]Venue, map[SkipReason]int, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, name, address, phone, rating, opening_hours,
		       latitude, longitude, price_range, menu, taste, description, image
		FROM venues`)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to query venues: %w", err)
	}
	defer rows.Close()

	var dataset []Venue
	skipped := make(map[SkipReason]int)
	for rows.Next() {
		var raw Row
		if err := rows.Scan(
			&raw.ID, &raw.Name, &raw.Address, &raw.Phone, &raw.Rating,
			&raw.OpeningHours, &raw.Latitude, &raw.Longitude,
			&raw.PriceRange, &raw.Menu, &raw.Taste, &raw.Description,
			&raw.Image,
		); err != nil {
			return nil, nil, fmt.Errorf("failed to scan venue row: %w", err)
		}
		v, reason := raw.Parse()
		if reason != SkipNone {
			skipped[reason]++
			continue
		}
		dataset = append(dataset, v)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, fmt.Errorf("failed to iterate venues: %w", err)
	}

	if len(skipped) > 0 {
		log.Printf("Venue dataset loaded: %d usable, %v skipped", len(dataset), skipped)
	}
	return dataset, skipped, nil
}

// Count returns the number of stored rows, valid or not.
func (r *Repository) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM venues`).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count venues: %w", err)
	}
	return n, nil
}
