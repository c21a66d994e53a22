// Package planner assembles a day itinerary: it resolves a theme per
// slot, searches the venue dataset while walking from stop to stop, and
// attaches one venue to every slot it can fill.
package planner

import (
	"log"
	"math"
	"strings"

	"saigon-foodtour/internal/geo"
	"saigon-foodtour/internal/schedule"
	"saigon-foodtour/internal/search"
	"saigon-foodtour/internal/shared"
	"saigon-foodtour/internal/textnorm"
	"saigon-foodtour/internal/theme"
	"saigon-foodtour/internal/venue"
)

const (
	// candidatesPerSlot is how many ranked venues a slot draws from.
	candidatesPerSlot = 20
	// travelSpeedKMH is the assumed average travel speed between stops.
	travelSpeedKMH = 25.0

	defaultStart = "07:00"
	defaultEnd   = "21:00"
)

// Request is one planning request, already past the transport layer.
type Request struct {
	Origin   geo.Point
	RadiusKM float64
	Themes   []string
	Tastes   []string
	Start    string // "HH:MM", defaults to 07:00
	End      string // "HH:MM", defaults to 21:00
}

// ParseThemeSelection splits a comma-separated theme string into a clean
// identifier list.
func ParseThemeSelection(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if t := strings.TrimSpace(part); t != "" {
			out = append(out, t)
		}
	}
	return out
}

// Planner is the orchestrator. It is stateless across requests; the
// dataset and catalog it reads are never mutated.
type Planner struct {
	finder  *search.Finder
	newRand func() Rand
}

// NewPlanner creates a Planner over the given finder.
func NewPlanner(finder *search.Finder) *Planner {
	return &Planner{finder: finder, newRand: NewRequestRand}
}

// WithRand overrides the request-scoped randomness factory. For tests.
func (p *Planner) WithRand(f func() Rand) *Planner {
	p.newRand = f
	return p
}

// slotKeywords narrows a slot's candidates beyond the theme match: the
// venue name must read like the kind of food the slot serves. Keyed by
// slot key; missing keys mean no extra filtering.
var slotKeywords = map[string][]string{
	schedule.KeyBreakfast: {
		"phở", "bánh mì", "xôi", "bún", "bánh cuốn", "cháo", "hủ tiếu",
		"cơm tấm", "bánh bao",
	},
	schedule.KeyLunch: {
		"cơm", "bún", "phở", "quán ăn", "lẩu", "mì", "hủ tiếu", "gà",
		"cơm tấm",
	},
	schedule.KeyDinner: {
		"nhà hàng", "lẩu", "nướng", "quán ăn", "hải sản", "bbq", "cơm",
		"bún",
	},
	schedule.KeyMeal: {
		"cơm", "bún", "phở", "quán ăn", "mì", "bánh mì", "hủ tiếu",
	},
	schedule.KeyMorningDrink:   drinkKeywords,
	schedule.KeyAfternoonDrink: drinkKeywords,
	schedule.KeyDrink:          drinkKeywords,
	schedule.KeyDessert: {
		"chè", "kem", "bánh ngọt", "tiệm bánh", "bakery", "tráng miệng",
		"bánh kem",
	},
}

var drinkKeywords = []string{
	"cà phê", "cafe", "coffee", "trà", "trà sữa", "nước", "sinh tố",
	"juice",
}

// atmosphereThemes bypass slot keyword re-filtering entirely: their
// venues are chosen for the place, not the dish name.
var atmosphereThemes = map[string]bool{
	theme.FoodZone: true,
	theme.Michelin: true,
	theme.Luxury:   true,
}

// GeneratePlan builds the itinerary for one request. It returns a
// *UserError for conditions the user can fix (no radius, nothing found);
// single slots that find no venue are dropped silently.
func (p *Planner) GeneratePlan(req Request, dataset []venue.Venue) (*schedule.Plan, error) {
	if req.RadiusKM <= 0 {
		return nil, ErrNoRadius
	}

	start := parseOrDefault(req.Start, defaultStart)
	end := parseOrDefault(req.End, defaultEnd)

	plan := schedule.GenerateSchedule(start, end, req.Themes)
	plan = schedule.AdjustForThemes(plan, req.Themes)

	if specials := SpecialThemes(req.Themes); len(specials) > 0 {
		log.Printf("Special themes in selection, tracked for suggestions: %v", specials)
	}

	rng := p.newRand()
	chain := req.Origin
	used := make(map[string]struct{})
	var empty []string
	placed := 0

	for _, slot := range plan.Ordered() {
		resolved := ResolveThemeForSlot(slot.Key, req.Themes)
		slot.Theme = resolved

		candidates, stats := p.finder.FindPlaces(chain, dataset, search.Filters{
			RadiusKM:  req.RadiusKM,
			Themes:    []string{resolved},
			TimeOfDay: slot.Time.Format(),
			Tastes:    req.Tastes,
			Excluded:  used,
		}, candidatesPerSlot)
		candidates = filterForSlot(slot.Key, resolved, candidates)

		if len(candidates) == 0 {
			log.Printf("Slot %s (%s, theme %s): no candidates among %d rows, dropping slot",
				slot.Key, slot.Time.Format(), resolved, stats.Scanned)
			empty = append(empty, slot.Key)
			continue
		}

		pick := candidates[weightedPick(rng, len(candidates))]
		used[pick.ID] = struct{}{}

		travelMin := int(math.Round(pick.DistanceKM / travelSpeedKMH * 60))
		slot.Venue = &schedule.PlacedVenue{
			ID:            pick.ID,
			Name:          pick.Name,
			Address:       pick.Address,
			Rating:        pick.Rating,
			Latitude:      pick.Latitude,
			Longitude:     pick.Longitude,
			PriceRange:    pick.PriceRange,
			Image:         pick.Image,
			DistanceKM:    pick.DistanceKM,
			TravelMinutes: travelMin,
			DepartAt:      slot.Time.AddMinutes(-travelMin),
		}
		chain = geo.Point{Lat: pick.Latitude, Lon: pick.Longitude}
		placed++
	}

	for _, key := range empty {
		plan.Remove(key)
	}

	if placed == 0 {
		return nil, errNoMatch(req.RadiusKM)
	}
	return plan, nil
}

// filterForSlot applies the slot keyword table. Atmosphere themes skip
// it; the dessert slot additionally rejects bánh mì variants.
func filterForSlot(slotKey, resolvedTheme string, candidates []search.Candidate) []search.Candidate {
	if atmosphereThemes[resolvedTheme] {
		return candidates
	}
	keywords, ok := slotKeywords[slotKey]
	if !ok {
		return candidates
	}

	out := candidates[:0]
	for _, c := range candidates {
		if slotKey == schedule.KeyDessert && textnorm.ContainsWord(c.Name, "bánh mì") {
			continue
		}
		if containsAnyWord(c.Name, keywords) {
			out = append(out, c)
		}
	}
	return out
}

func containsAnyWord(name string, keywords []string) bool {
	for _, kw := range keywords {
		if textnorm.ContainsWord(name, kw) {
			return true
		}
	}
	return false
}

func parseOrDefault(s, fallback string) shared.TimeOfDay {
	if s != "" {
		if t, err := shared.ParseTimeOfDay(s); err == nil {
			return t
		}
		log.Printf("Invalid time %q in request, using %s", s, fallback)
	}
	t, _ := shared.ParseTimeOfDay(fallback)
	return t
}
