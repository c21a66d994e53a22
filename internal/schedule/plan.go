// Package schedule lays out the day's itinerary: which meal and drink
// slots exist, at what target times, and which venue (if any) has been
// placed into each.
package schedule

import (
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"

	"saigon-foodtour/internal/shared"
)

// Slot categories. These drive the adjuster's collapse rules and the
// resolver's restriction tables.
const (
	CategoryMeal    = "meal"
	CategoryDrink   = "drink"
	CategoryDessert = "dessert"
)

// PlacedVenue is the venue chosen for a slot, with travel figures
// computed from the previous point in the chain. Immutable once attached;
// only an explicit edit replaces it.
type PlacedVenue struct {
	ID            string           `json:"id"`
	Name          string           `json:"name"`
	Address       string           `json:"address"`
	Rating        float64          `json:"rating"`
	Latitude      float64          `json:"latitude"`
	Longitude     float64          `json:"longitude"`
	PriceRange    string           `json:"price_range,omitempty"`
	Image         string           `json:"image,omitempty"`
	DistanceKM    float64          `json:"distance_km"`
	TravelMinutes int              `json:"travel_minutes"`
	DepartAt      shared.TimeOfDay `json:"depart_at"`
}

// Slot is one named position in the itinerary.
type Slot struct {
	Key        string           `json:"key"`
	Time       shared.TimeOfDay `json:"time"`
	Title      string           `json:"title"`
	Icon       string           `json:"icon"`
	Category   string           `json:"category"`
	Categories []string         `json:"categories,omitempty"`
	Theme      string           `json:"theme,omitempty"`
	Venue      *PlacedVenue     `json:"venue,omitempty"`
}

// NewCustomSlot creates a user-added slot with a generated key.
func NewCustomSlot(t shared.TimeOfDay, title string) *Slot {
	return &Slot{
		Key:      fmt.Sprintf("custom_%d", time.Now().UnixMilli()),
		Time:     t,
		Title:    title,
		Icon:     "📍",
		Category: CategoryMeal,
	}
}

// Plan is the ordered slot collection for one itinerary. The explicit
// Order list, when non-empty, is authoritative for display and chaining;
// otherwise slots run in ascending target time.
type Plan struct {
	ID    string
	Slots []*Slot
	Order []string
}

// NewPlan creates an empty plan with a fresh identifier.
func NewPlan() *Plan {
	return &Plan{ID: uuid.NewString()}
}

// Get returns the slot with the given key, or nil.
func (p *Plan) Get(key string) *Slot {
	for _, s := range p.Slots {
		if s.Key == key {
			return s
		}
	}
	return nil
}

// Add appends a slot. A slot with a duplicate key replaces the original.
func (p *Plan) Add(s *Slot) {
	for i, old := range p.Slots {
		if old.Key == s.Key {
			p.Slots[i] = s
			return
		}
	}
	p.Slots = append(p.Slots, s)
}

// Remove deletes the slot with the given key, including its Order entry.
func (p *Plan) Remove(key string) {
	for i, s := range p.Slots {
		if s.Key == key {
			p.Slots = append(p.Slots[:i], p.Slots[i+1:]...)
			break
		}
	}
	for i, k := range p.Order {
		if k == key {
			p.Order = append(p.Order[:i], p.Order[i+1:]...)
			break
		}
	}
}

// Ordered returns the slots in display order: the Order list when
// present, ascending target time otherwise. Keys in Order with no
// matching slot are skipped.
func (p *Plan) Ordered() []*Slot {
	if len(p.Order) > 0 {
		out := make([]*Slot, 0, len(p.Order))
		for _, key := range p.Order {
			if s := p.Get(key); s != nil {
				out = append(out, s)
			}
		}
		return out
	}
	out := make([]*Slot, len(p.Slots))
	copy(out, p.Slots)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Time < out[j].Time })
	return out
}

// ResortOrder recomputes the explicit Order list sorted by slot time.
func (p *Plan) ResortOrder() {
	sorted := make([]*Slot, len(p.Slots))
	copy(sorted, p.Slots)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Time < sorted[j].Time })
	p.Order = p.Order[:0]
	for _, s := range sorted {
		p.Order = append(p.Order, s.Key)
	}
}

// The wire shape is a map of slot key to slot, plus the reserved "order"
// and "id" keys. A plan reloaded from this shape round-trips unchanged so
// external edit flows can hand plans back.
const (
	orderKey = "order"
	idKey    = "id"
)

// MarshalJSON implements json.Marshaler.
func (p *Plan) MarshalJSON() ([]byte, error) {
	m := make(map[string]json.RawMessage, len(p.Slots)+2)
	for _, s := range p.Slots {
		raw, err := json.Marshal(s)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal slot %q: %w", s.Key, err)
		}
		m[s.Key] = raw
	}
	order := p.Order
	if order == nil {
		order = []string{}
	}
	rawOrder, err := json.Marshal(order)
	if err != nil {
		return nil, err
	}
	m[orderKey] = rawOrder
	if p.ID != "" {
		rawID, err := json.Marshal(p.ID)
		if err != nil {
			return nil, err
		}
		m[idKey] = rawID
	}
	return json.Marshal(m)
}

// UnmarshalJSON implements json.Unmarshaler.
func (p *Plan) UnmarshalJSON(data []byte) error {
	var m map[string]json.RawMessage
	if err := json.Unmarshal(data, &m); err != nil {
		return err
	}
	p.Slots = nil
	p.Order = nil
	p.ID = ""

	if raw, ok := m[idKey]; ok {
		if err := json.Unmarshal(raw, &p.ID); err != nil {
			return fmt.Errorf("failed to unmarshal plan id: %w", err)
		}
		delete(m, idKey)
	}
	var order []string
	if raw, ok := m[orderKey]; ok {
		if err := json.Unmarshal(raw, &order); err != nil {
			return fmt.Errorf("failed to unmarshal plan order: %w", err)
		}
		delete(m, orderKey)
	}

	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, key := range keys {
		var s Slot
		if err := json.Unmarshal(m[key], &s); err != nil {
			return fmt.Errorf("failed to unmarshal slot %q: %w", key, err)
		}
		if s.Key == "" {
			s.Key = key
		}
		p.Slots = append(p.Slots, &s)
	}
	if len(order) > 0 {
		p.Order = order
	}
	return nil
}
