package planner

import (
	"saigon-foodtour/internal/schedule"
	"saigon-foodtour/internal/theme"
)

// Slot classification by key. Custom slots count as main meals.
var (
	drinkSlotKeys = map[string]bool{
		schedule.KeyMorningDrink:   true,
		schedule.KeyAfternoonDrink: true,
		schedule.KeyDrink:          true,
	}
	dessertSlotKeys = map[string]bool{
		schedule.KeyDessert: true,
	}
)

// foodCategoryThemes are the themes a main-meal slot may use. Beverage
// and dessert themes are deliberately absent.
var foodCategoryThemes = map[string]bool{
	theme.StreetFood: true,
	theme.Seafood:    true,
	theme.Vegetarian: true,
	theme.Luxury:     true,
	theme.Asian:      true,
	theme.Spicy:      true,
}

// restrictedThemes forbids certain themes for certain slot keys. A
// user-selected theme on the forbidden list is ignored for that slot.
var restrictedThemes = map[string]map[string]bool{
	schedule.KeyDessert: {
		theme.Spicy:    true,
		theme.Seafood:  true,
		theme.Luxury:   true,
		theme.FoodZone: true,
		theme.Michelin: true,
	},
	schedule.KeyMorningDrink:   drinkRestrictions,
	schedule.KeyAfternoonDrink: drinkRestrictions,
	schedule.KeyDrink:          drinkRestrictions,
}

var drinkRestrictions = map[string]bool{
	theme.StreetFood: true,
	theme.Seafood:    true,
	theme.Asian:      true,
	theme.Spicy:      true,
	theme.Luxury:     true,
	theme.Vegetarian: true,
}

// SpecialThemes returns the description-driven themes present in the
// user's selection. The orchestrator tracks them separately for the
// suggestion-card flow even when they cannot drive slot resolution.
func SpecialThemes(userThemes []string) []string {
	var out []string
	for _, t := range userThemes {
		if theme.IsSpecial(t) {
			out = append(out, t)
		}
	}
	return out
}

// ResolveThemeForSlot decides the single theme a slot searches for.
func ResolveThemeForSlot(slotKey string, userThemes []string) string {
	// A lone special theme drives every slot directly; it is never
	// diluted into per-slot category logic.
	if len(userThemes) == 1 && theme.IsSpecial(userThemes[0]) {
		return userThemes[0]
	}

	def := schedule.DefForKey(slotKey)
	if len(userThemes) == 0 {
		return def.DefaultTheme
	}

	// Special themes mixed with others are set aside, then the slot's
	// restriction table prunes the rest.
	restricted := restrictedThemes[slotKey]
	var pool []string
	for _, t := range userThemes {
		if theme.IsSpecial(t) {
			continue
		}
		if restricted != nil && restricted[t] {
			continue
		}
		pool = append(pool, t)
	}

	switch {
	case drinkSlotKeys[slotKey]:
		return resolveDrink(pool)
	case dessertSlotKeys[slotKey]:
		return resolveDessert(pool)
	default:
		return resolveMainMeal(pool, def.DefaultTheme)
	}
}

// resolveMainMeal returns the first selected theme that belongs to the
// food category list, preserving the user's order.
func resolveMainMeal(pool []string, fallback string) string {
	for _, t := range pool {
		if foodCategoryThemes[t] {
			return t
		}
	}
	return fallback
}

func resolveDrink(pool []string) string {
	for _, want := range []string{theme.Drinks, theme.Dessert} {
		if hasTheme(pool, want) {
			return want
		}
	}
	if len(pool) > 0 {
		return pool[0]
	}
	return theme.Drinks
}

// resolveDessert never falls back to luxury dining.
func resolveDessert(pool []string) string {
	for _, want := range []string{theme.Dessert, theme.StreetFood, theme.Asian, theme.Drinks} {
		if hasTheme(pool, want) {
			return want
		}
	}
	return theme.Dessert
}

func hasTheme(themes []string, id string) bool {
	for _, t := range themes {
		if t == id {
			return true
		}
	}
	return false
}
