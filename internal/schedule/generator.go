package schedule

import (
	"saigon-foodtour/internal/shared"
	"saigon-foodtour/internal/theme"
)

// Canonical slot keys.
const (
	KeyBreakfast      = "breakfast"
	KeyMorningDrink   = "morning_drink"
	KeyLunch          = "lunch"
	KeyAfternoonDrink = "afternoon_drink"
	KeyDinner         = "dinner"
	KeyDessert        = "dessert"
	KeyMeal           = "meal"
	KeyDrink          = "drink"
)

// SlotDef is the static template for one canonical slot.
type SlotDef struct {
	Key          string
	Title        string
	Icon         string
	Category     string
	Categories   []string
	DefaultTheme string
}

var slotDefs = map[string]SlotDef{
	KeyBreakfast: {
		Key: KeyBreakfast, Title: "Bữa sáng", Icon: "🍳",
		Category:     CategoryMeal,
		Categories:   []string{theme.StreetFood, theme.Asian},
		DefaultTheme: theme.StreetFood,
	},
	KeyMorningDrink: {
		Key: KeyMorningDrink, Title: "Cà phê sáng", Icon: "☕",
		Category:     CategoryDrink,
		Categories:   []string{theme.Drinks},
		DefaultTheme: theme.Drinks,
	},
	KeyLunch: {
		Key: KeyLunch, Title: "Bữa trưa", Icon: "🍜",
		Category:     CategoryMeal,
		Categories:   []string{theme.Asian, theme.StreetFood},
		DefaultTheme: theme.Asian,
	},
	KeyAfternoonDrink: {
		Key: KeyAfternoonDrink, Title: "Cà phê chiều", Icon: "🧋",
		Category:     CategoryDrink,
		Categories:   []string{theme.Drinks},
		DefaultTheme: theme.Drinks,
	},
	KeyDinner: {
		Key: KeyDinner, Title: "Bữa tối", Icon: "🍽️",
		Category:     CategoryMeal,
		Categories:   []string{theme.Luxury, theme.Seafood},
		DefaultTheme: theme.Luxury,
	},
	KeyDessert: {
		Key: KeyDessert, Title: "Tráng miệng", Icon: "🍰",
		Category:     CategoryDessert,
		Categories:   []string{theme.Dessert},
		DefaultTheme: theme.Dessert,
	},
	KeyMeal: {
		Key: KeyMeal, Title: "Bữa ăn", Icon: "🍚",
		Category:     CategoryMeal,
		Categories:   []string{theme.StreetFood, theme.Asian},
		DefaultTheme: theme.StreetFood,
	},
	KeyDrink: {
		Key: KeyDrink, Title: "Nước uống", Icon: "🥤",
		Category:     CategoryDrink,
		Categories:   []string{theme.Drinks},
		DefaultTheme: theme.Drinks,
	},
}

// DefForKey returns the static template for a canonical slot key. Custom
// slot keys fall back to the generic meal template.
func DefForKey(key string) SlotDef {
	if d, ok := slotDefs[key]; ok {
		return d
	}
	return slotDefs[KeyMeal]
}

func newSlot(key string, at shared.TimeOfDay) *Slot {
	def := DefForKey(key)
	return &Slot{
		Key:        key,
		Time:       at,
		Title:      def.Title,
		Icon:       def.Icon,
		Category:   def.Category,
		Categories: append([]string(nil), def.Categories...),
	}
}

const minutesPerDay = 24 * 60

// GenerateSchedule lays the canonical slots into the user's time window.
// When end <= start the window spans midnight into the next day. Venues
// are not chosen here; every produced slot is empty.
func GenerateSchedule(start, end shared.TimeOfDay, userThemes []string) *Plan {
	s := shared.TimeOfDay(start.Minutes())
	e := shared.TimeOfDay(end.Minutes())
	if e <= s {
		e += minutesPerDay
	}

	// Compatibility flags come from the initial theme selection and
	// default to true when nothing was selected.
	beverageOK := len(userThemes) == 0 || hasTheme(userThemes, theme.Drinks)
	dessertOK := len(userThemes) == 0 || hasTheme(userThemes, theme.Dessert)

	plan := NewPlan()

	// Each canonical window may be pushed to the next day when the whole
	// window lies before the start of an overnight interval.
	window := func(lo, hi shared.TimeOfDay) (shared.TimeOfDay, shared.TimeOfDay) {
		if hi < s {
			lo += minutesPerDay
			hi += minutesPerDay
		}
		return lo, hi
	}
	place := func(key string, target, winLo, winHi shared.TimeOfDay) *Slot {
		if target < winLo || target > winHi || target < s || target > e {
			return nil
		}
		slot := newSlot(key, target)
		plan.Add(slot)
		return slot
	}

	// Breakfast: 07:00–10:00.
	lo, hi := window(shared.FromClock(7, 0), shared.FromClock(10, 0))
	breakfast := place(KeyBreakfast, maxTime(lo, s), lo, hi)

	// Morning drink: 09:30–11:30, at least 1.5h into the window and 1.5h
	// after breakfast.
	if beverageOK {
		lo, hi = window(shared.FromClock(9, 30), shared.FromClock(11, 30))
		target := maxTime(lo, s.AddMinutes(90))
		if breakfast != nil {
			target = maxTime(target, breakfast.Time.AddMinutes(90))
		}
		place(KeyMorningDrink, target, lo, hi)
	}

	// Lunch: 11:00–14:00, from 11:30, 3h after breakfast.
	lo, hi = window(shared.FromClock(11, 0), shared.FromClock(14, 0))
	target := maxTime(lo.AddMinutes(30), s)
	if breakfast != nil {
		target = maxTime(target, breakfast.Time.AddMinutes(180))
	}
	lunch := place(KeyLunch, target, lo, hi)

	// Afternoon drink: 14:00–17:00, 1.5h after lunch.
	if beverageOK {
		lo, hi = window(shared.FromClock(14, 0), shared.FromClock(17, 0))
		target = maxTime(lo.AddMinutes(30), s)
		if lunch != nil {
			target = maxTime(target, lunch.Time.AddMinutes(90))
		}
		place(KeyAfternoonDrink, target, lo, hi)
	}

	// Dinner: 17:00–21:00 from 18:00, 4h after lunch or 6h after breakfast.
	lo, hi = window(shared.FromClock(17, 0), shared.FromClock(21, 0))
	target = maxTime(lo.AddMinutes(60), s)
	if lunch != nil {
		target = maxTime(target, lunch.Time.AddMinutes(240))
	} else if breakfast != nil {
		target = maxTime(target, breakfast.Time.AddMinutes(360))
	}
	dinner := place(KeyDinner, target, lo, hi)

	// Dessert: 19:00–24:00 from 20:00, 1.5h after dinner.
	if dessertOK {
		lo, hi = window(shared.FromClock(19, 0), shared.FromClock(24, 0))
		target = maxTime(lo.AddMinutes(60), s)
		if dinner != nil {
			target = maxTime(target, dinner.Time.AddMinutes(90))
		}
		place(KeyDessert, target, lo, hi)
	}

	// Very short windows get a generic meal slot, plus a drink stop at
	// 70% of the way through when there is room for one.
	if len(plan.Slots) == 0 {
		plan.Add(newSlot(KeyMeal, s))
		if span := e.Minutes() - s.Minutes(); span >= 90 && beverageOK {
			plan.Add(newSlot(KeyDrink, s.AddMinutes(span*7/10)))
		}
	}

	plan.ResortOrder()
	return plan
}

func maxTime(a shared.TimeOfDay, rest ...shared.TimeOfDay) shared.TimeOfDay {
	out := a
	for _, t := range rest {
		if t > out {
			out = t
		}
	}
	return out
}

func hasTheme(themes []string, id string) bool {
	for _, t := range themes {
		if t == id {
			return true
		}
	}
	return false
}
