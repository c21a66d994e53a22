package schedule

import (
	"saigon-foodtour/internal/shared"
	"saigon-foodtour/internal/theme"
)

// foodThemes are the selections that imply a full eating day. The special
// description-driven themes count as food intent.
var foodThemes = map[string]bool{
	theme.StreetFood: true,
	theme.Seafood:    true,
	theme.Vegetarian: true,
	theme.Luxury:     true,
	theme.Asian:      true,
	theme.Spicy:      true,
	theme.FoodZone:   true,
	theme.Michelin:   true,
}

// AdjustForThemes collapses the generated schedule when the theme
// selection implies a narrower intent than a full eating day. Any food
// theme preserves the schedule untouched.
func AdjustForThemes(plan *Plan, userThemes []string) *Plan {
	if len(userThemes) == 0 {
		return plan
	}
	for _, t := range userThemes {
		if foodThemes[t] {
			return plan
		}
	}

	wantsDrinks := hasTheme(userThemes, theme.Drinks)
	wantsDessert := hasTheme(userThemes, theme.Dessert)

	switch {
	case wantsDrinks && !wantsDessert:
		collapseToDrinks(plan, false)
	case wantsDessert && !wantsDrinks:
		collapseToDessert(plan)
	case wantsDrinks && wantsDessert:
		collapseToDrinks(plan, true)
		ensureDessertAfterDrinks(plan)
	default:
		return plan
	}

	plan.ResortOrder()
	return plan
}

// collapseToDrinks keeps only drink-category slots (and, when
// keepDessert is set, dessert slots) and guarantees exactly two drink
// slots, one morning and one afternoon.
func collapseToDrinks(plan *Plan, keepDessert bool) {
	for _, s := range plan.Ordered() {
		if s.Category == CategoryDrink || (keepDessert && s.Category == CategoryDessert) {
			continue
		}
		plan.Remove(s.Key)
	}

	switch countCategory(plan, CategoryDrink) {
	case 0:
		plan.Add(newSlot(KeyMorningDrink, shared.FromClock(9, 30)))
		plan.Add(newSlot(KeyAfternoonDrink, shared.FromClock(14, 30)))
	case 1:
		var existing *Slot
		for _, s := range plan.Slots {
			if s.Category == CategoryDrink {
				existing = s
				break
			}
		}
		missing := KeyAfternoonDrink
		if plan.Get(KeyMorningDrink) == nil {
			missing = KeyMorningDrink
		}
		plan.Add(newSlot(missing, existing.Time.AddMinutes(180)))
	}
}

func countCategory(plan *Plan, category string) int {
	n := 0
	for _, s := range plan.Slots {
		if s.Category == category {
			n++
		}
	}
	return n
}

// collapseToDessert keeps a single dessert slot, synthesizing the default
// evening one if the schedule had none.
func collapseToDessert(plan *Plan) {
	var kept *Slot
	for _, s := range plan.Ordered() {
		if s.Category == CategoryDessert && kept == nil {
			kept = s
			continue
		}
		plan.Remove(s.Key)
	}
	if kept == nil {
		plan.Add(newSlot(KeyDessert, shared.FromClock(20, 0)))
	}
}

// ensureDessertAfterDrinks appends a dessert slot two hours after the
// later drink slot unless one already survived.
func ensureDessertAfterDrinks(plan *Plan) {
	var latest shared.TimeOfDay
	for _, s := range plan.Slots {
		if s.Category == CategoryDessert {
			return
		}
		if s.Time > latest {
			latest = s.Time
		}
	}
	plan.Add(newSlot(KeyDessert, latest.AddMinutes(120)))
}
