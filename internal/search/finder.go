// Package search scans the venue dataset and turns a location plus
// per-request constraints into a ranked candidate list.
package search

import (
	"log"
	"sort"
	"time"

	"saigon-foodtour/internal/geo"
	"saigon-foodtour/internal/hours"
	"saigon-foodtour/internal/shared"
	"saigon-foodtour/internal/theme"
	"saigon-foodtour/internal/venue"
)

// Filters is the per-request search configuration.
type Filters struct {
	// RadiusKM bounds the great-circle distance from the origin. The
	// orchestrator validates it; FindPlaces treats a non-positive radius
	// as matching nothing.
	RadiusKM float64
	// Themes restricts results to venues matching at least one theme.
	// Empty means any venue.
	Themes []string
	// TimeOfDay is the "HH:MM" clock time at which opening hours are
	// evaluated. Empty means the current wall-clock time.
	TimeOfDay string
	// Tastes is advisory only; it is carried for the presentation layer
	// and not enforced as a hard filter.
	Tastes []string
	// Excluded lists venue identifiers already used in this plan.
	Excluded map[string]struct{}
}

// Candidate is a venue enriched with its distance from the search origin.
type Candidate struct {
	venue.Venue
	DistanceKM float64 `json:"distance_km"`
}

// SkipCause classifies why a dataset row was passed over during a scan.
type SkipCause int

const (
	SkipExcludedID SkipCause = iota
	SkipOutOfRadius
	SkipClosed
	SkipNoThemeMatch
	SkipBeverageLeak
	SkipBreadMeal
)

func (s SkipCause) String() string {
	switch s {
	case SkipExcludedID:
		return "excluded id"
	case SkipOutOfRadius:
		return "out of radius"
	case SkipClosed:
		return "closed"
	case SkipNoThemeMatch:
		return "no theme match"
	case SkipBeverageLeak:
		return "beverage leak"
	case SkipBreadMeal:
		return "bread meal"
	}
	return "unknown"
}

// ScanStats counts the outcome of one FindPlaces call.
type ScanStats struct {
	Scanned int
	Matched int
	Skipped map[SkipCause]int
}

// Finder filters and ranks venues. It holds only immutable collaborators
// and is safe for concurrent use.
type Finder struct {
	catalog *theme.Catalog
	hours   *hours.Evaluator
	now     func() time.Time
}

// NewFinder creates a Finder. The hours evaluator decides open/closed at
// the requested time of day.
func NewFinder(catalog *theme.Catalog, hoursEval *hours.Evaluator) *Finder {
	return &Finder{catalog: catalog, hours: hoursEval, now: time.Now}
}

// WithClock overrides the wall clock used when Filters.TimeOfDay is
// empty. For tests.
func (f *Finder) WithClock(now func() time.Time) *Finder {
	f.now = now
	return f
}

// FindPlaces scans the dataset and returns up to topN candidates within
// filters.RadiusKM of origin, ordered by distance ascending then rating
// descending. It is total: malformed inputs skip rows, they never abort
// the scan.
func (f *Finder) FindPlaces(origin geo.Point, dataset []venue.Venue, filters Filters, topN int) ([]Candidate, ScanStats) {
	stats := ScanStats{Skipped: make(map[SkipCause]int)}

	checkAt := f.resolveCheckTime(filters.TimeOfDay)
	hasThemes := len(filters.Themes) > 0
	wantsDrinks := containsTheme(filters.Themes, theme.Drinks)
	wantsDessert := containsTheme(filters.Themes, theme.Dessert)

	var out []Candidate
	for _, v := range dataset {
		stats.Scanned++
		if _, used := filters.Excluded[v.ID]; used {
			stats.Skipped[SkipExcludedID]++
			continue
		}

		dist := geo.HaversineKM(origin, geo.Point{Lat: v.Latitude, Lon: v.Longitude})
		if filters.RadiusKM <= 0 || dist > filters.RadiusKM {
			stats.Skipped[SkipOutOfRadius]++
			continue
		}

		if !f.hours.IsOpenAt(v.OpeningHours, checkAt) {
			stats.Skipped[SkipClosed]++
			continue
		}

		if hasThemes {
			text := theme.VenueText{Name: v.Name, Taste: v.Taste, Description: v.Description}
			if !f.catalog.MatchesAny(filters.Themes, text) {
				stats.Skipped[SkipNoThemeMatch]++
				continue
			}
			if !wantsDrinks && f.catalog.IsBeverageName(v.Name) {
				stats.Skipped[SkipBeverageLeak]++
				continue
			}
			if wantsDessert && f.catalog.IsBreadMealName(v.Name) {
				stats.Skipped[SkipBreadMeal]++
				continue
			}
		}

		out = append(out, Candidate{Venue: v, DistanceKM: dist})
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].DistanceKM != out[j].DistanceKM {
			return out[i].DistanceKM < out[j].DistanceKM
		}
		return out[i].Rating > out[j].Rating
	})
	if topN > 0 && len(out) > topN {
		out = out[:topN]
	}
	stats.Matched = len(out)
	return out, stats
}

func (f *Finder) resolveCheckTime(timeOfDay string) shared.TimeOfDay {
	if timeOfDay == "" {
		return shared.FromTime(f.now())
	}
	t, err := shared.ParseTimeOfDay(timeOfDay)
	if err != nil {
		log.Printf("Invalid time-of-day filter %q, using current time: %v", timeOfDay, err)
		return shared.FromTime(f.now())
	}
	return t
}

func containsTheme(themes []string, id string) bool {
	for _, t := range themes {
		if t == id {
			return true
		}
	}
	return false
}
