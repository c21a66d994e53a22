// Package ingest loads venue rows into the database from exported
// listing files. It deals in raw rows only; validation happens when the
// dataset is loaded for planning.
package ingest

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"saigon-foodtour/internal/venue"
)

// Ingester writes parsed rows through the venue repository.
type Ingester struct {
	repo *venue.Repository
}

// NewIngester creates an Ingester.
func NewIngester(repo *venue.Repository) *Ingester {
	return &Ingester{repo: repo}
}

// IngestFile parses one exported listing file (.html or .csv) and stores
// its rows. It returns how many rows were stored.
func (in *Ingester) IngestFile(ctx context.Context, path string) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	var rows []venue.Row
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".html", ".htm":
		rows, err = ParseListingHTML(f)
	case ".csv":
		rows, err = ParseCSV(f)
	default:
		return 0, fmt.Errorf("unsupported dataset file type %q", ext)
	}
	if err != nil {
		return 0, err
	}

	stored := 0
	for _, row := range rows {
		if row.ID == "" || row.Name == "" {
			log.Printf("Skipping row with missing id/name in %s", path)
			continue
		}
		if err := in.repo.Save(ctx, row); err != nil {
			return stored, err
		}
		stored++
	}
	return stored, nil
}

// ParseListingHTML extracts venue rows from a saved listing page. Each
// venue is a ".venue-card" element carrying coordinates as data
// attributes and the text fields as classed children.
func ParseListingHTML(r io.Reader) ([]venue.Row, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to parse listing HTML: %w", err)
	}

	var rows []venue.Row
	doc.Find(".venue-card").Each(func(_ int, sel *goquery.Selection) {
		row := venue.Row{
			ID:           sel.AttrOr("data-id", ""),
			Latitude:     sel.AttrOr("data-lat", ""),
			Longitude:    sel.AttrOr("data-lng", ""),
			Name:         text(sel, ".name"),
			Address:      text(sel, ".address"),
			Phone:        text(sel, ".phone"),
			Rating:       text(sel, ".rating"),
			OpeningHours: text(sel, ".hours"),
			PriceRange:   text(sel, ".price"),
			Menu:         text(sel, ".menu"),
			Taste:        text(sel, ".taste"),
			Description:  text(sel, ".description"),
		}
		if img := sel.Find("img").First(); img.Length() > 0 {
			row.Image = img.AttrOr("src", "")
		}
		rows = append(rows, row)
	})
	return rows, nil
}

func text(sel *goquery.Selection, selector string) string {
	return strings.TrimSpace(sel.Find(selector).First().Text())
}

// csvColumns maps header names to row fields. Unknown columns are
// ignored so exports with extra fields still load.
var csvColumns = map[string]func(*venue.Row, string){
	"id":            func(r *venue.Row, v string) { r.ID = v },
	"name":          func(r *venue.Row, v string) { r.Name = v },
	"address":       func(r *venue.Row, v string) { r.Address = v },
	"phone":         func(r *venue.Row, v string) { r.Phone = v },
	"rating":        func(r *venue.Row, v string) { r.Rating = v },
	"opening_hours": func(r *venue.Row, v string) { r.OpeningHours = v },
	"latitude":      func(r *venue.Row, v string) { r.Latitude = v },
	"longitude":     func(r *venue.Row, v string) { r.Longitude = v },
	"price_range":   func(r *venue.Row, v string) { r.PriceRange = v },
	"menu":          func(r *venue.Row, v string) { r.Menu = v },
	"taste":         func(r *venue.Row, v string) { r.Taste = v },
	"description":   func(r *venue.Row, v string) { r.Description = v },
	"image":         func(r *venue.Row, v string) { r.Image = v },
}

// ParseCSV extracts venue rows from a CSV export with a header row.
func ParseCSV(r io.Reader) ([]venue.Row, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV header: %w", err)
	}
	setters := make([]func(*venue.Row, string), len(header))
	for i, col := range header {
		setters[i] = csvColumns[strings.ToLower(strings.TrimSpace(col))]
	}

	var rows []venue.Row
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read CSV record: %w", err)
		}
		var row venue.Row
		for i, val := range record {
			if i < len(setters) && setters[i] != nil {
				setters[i](&row, strings.TrimSpace(val))
			}
		}
		rows = append(rows, row)
	}
	return rows, nil
}
