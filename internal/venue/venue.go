// Package venue models the read-only venue dataset the engine plans over.
package venue

import (
	"strconv"
	"strings"
)

// Venue is one usable dataset record. Coordinates are guaranteed valid;
// rows that fail coordinate parsing never become a Venue.
type Venue struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Address      string  `json:"address"`
	Phone        string  `json:"phone,omitempty"`
	Rating       float64 `json:"rating"`
	OpeningHours string  `json:"opening_hours,omitempty"`
	Latitude     float64 `json:"latitude"`
	Longitude    float64 `json:"longitude"`
	PriceRange   string  `json:"price_range,omitempty"`
	Menu         string  `json:"menu,omitempty"`
	Taste        string  `json:"taste,omitempty"`
	Description  string  `json:"description,omitempty"`
	Image        string  `json:"image,omitempty"`
}

// Row is a raw dataset row before validation. Numeric fields are still
// strings, exactly as they arrive from ingestion.
type Row struct {
	ID           string
	Name         string
	Address      string
	Phone        string
	Rating       string
	OpeningHours string
	Latitude     string
	Longitude    string
	PriceRange   string
	Menu         string
	Taste        string
	Description  string
	Image        string
}

// SkipReason explains why a raw row was excluded from the dataset.
type SkipReason int

const (
	SkipNone SkipReason = iota
	SkipMissingCoordinates
	SkipInvalidCoordinates
)

func (r SkipReason) String() string {
	switch r {
	case SkipNone:
		return "none"
	case SkipMissingCoordinates:
		return "missing coordinates"
	case SkipInvalidCoordinates:
		return "invalid coordinates"
	}
	return "unknown"
}

// Parse validates a raw row. A missing or unparseable coordinate excludes
// the row; an unparseable rating does not, it defaults to 0.
func (r Row) Parse() (Venue, SkipReason) {
	latStr := strings.TrimSpace(r.Latitude)
	lonStr := strings.TrimSpace(r.Longitude)
	if latStr == "" || lonStr == "" {
		return Venue{}, SkipMissingCoordinates
	}
	lat, err := strconv.ParseFloat(latStr, 64)
	if err != nil {
		return Venue{}, SkipInvalidCoordinates
	}
	lon, err := strconv.ParseFloat(lonStr, 64)
	if err != nil {
		return Venue{}, SkipInvalidCoordinates
	}

	rating := 0.0
	if s := strings.TrimSpace(r.Rating); s != "" {
		if v, err := strconv.ParseFloat(s, 64); err == nil && v >= 0 && v <= 5 {
			rating = v
		}
	}

	return Venue{
		ID:           r.ID,
		Name:         r.Name,
		Address:      r.Address,
		Phone:        r.Phone,
		Rating:       rating,
		OpeningHours: r.OpeningHours,
		Latitude:     lat,
		Longitude:    lon,
		PriceRange:   r.PriceRange,
		Menu:         r.Menu,
		Taste:        r.Taste,
		Description:  r.Description,
		Image:        r.Image,
	}, SkipNone
}
