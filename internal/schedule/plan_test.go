package schedule

import (
	"encoding/json"
	"testing"
)

func TestPlanAddRemoveGet(t *testing.T) {
	plan := NewPlan()
	plan.Add(newSlot(KeyBreakfast, at(7, 0)))
	plan.Add(newSlot(KeyLunch, at(12, 0)))
	plan.ResortOrder()

	if plan.Get(KeyLunch) == nil {
		t.Fatal("lunch not found")
	}

	// Re-adding a key replaces the slot in place.
	replacement := newSlot(KeyLunch, at(13, 0))
	plan.Add(replacement)
	if len(plan.Slots) != 2 {
		t.Fatalf("duplicate key grew the plan: %d slots", len(plan.Slots))
	}
	if plan.Get(KeyLunch) != replacement {
		t.Error("replacement slot not stored")
	}

	plan.Remove(KeyBreakfast)
	if plan.Get(KeyBreakfast) != nil {
		t.Error("removed slot still present")
	}
	for _, k := range plan.Order {
		if k == KeyBreakfast {
			t.Error("removed slot still in order")
		}
	}
}

func TestPlanOrderedFallsBackToTime(t *testing.T) {
	plan := NewPlan()
	plan.Add(newSlot(KeyDinner, at(18, 0)))
	plan.Add(newSlot(KeyBreakfast, at(7, 0)))

	// No explicit order: ascending time.
	ordered := plan.Ordered()
	if ordered[0].Key != KeyBreakfast || ordered[1].Key != KeyDinner {
		t.Errorf("time fallback order wrong: %s, %s", ordered[0].Key, ordered[1].Key)
	}

	// An explicit order wins even when it contradicts the times.
	plan.Order = []string{KeyDinner, KeyBreakfast, "missing"}
	ordered = plan.Ordered()
	if len(ordered) != 2 || ordered[0].Key != KeyDinner {
		t.Errorf("explicit order not honored: %v", ordered)
	}
}

func TestPlanJSONRoundTrip(t *testing.T) {
	plan := GenerateSchedule(at(7, 0), at(21, 0), nil)
	plan.Get(KeyLunch).Venue = &PlacedVenue{
		ID:            "v1",
		Name:          "Phở Lệ",
		Rating:        4.5,
		Latitude:      10.7546,
		Longitude:     106.6650,
		DistanceKM:    1.2,
		TravelMinutes: 3,
		DepartAt:      at(11, 27),
	}

	data, err := json.Marshal(plan)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	// The wire shape is a flat map with the reserved pseudo-keys.
	var wire map[string]json.RawMessage
	if err := json.Unmarshal(data, &wire); err != nil {
		t.Fatalf("wire decode: %v", err)
	}
	if _, ok := wire["order"]; !ok {
		t.Error("wire shape missing order key")
	}
	if _, ok := wire["id"]; !ok {
		t.Error("wire shape missing id key")
	}
	if _, ok := wire[KeyLunch]; !ok {
		t.Error("wire shape missing lunch slot")
	}

	var back Plan
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if back.ID != plan.ID {
		t.Errorf("id changed: %q vs %q", back.ID, plan.ID)
	}
	if len(back.Slots) != len(plan.Slots) {
		t.Fatalf("slot count changed: %d vs %d", len(back.Slots), len(plan.Slots))
	}
	wantOrder := plan.Ordered()
	gotOrder := back.Ordered()
	for i := range wantOrder {
		if gotOrder[i].Key != wantOrder[i].Key {
			t.Errorf("order position %d: %s vs %s", i, gotOrder[i].Key, wantOrder[i].Key)
		}
	}
	lunch := back.Get(KeyLunch)
	if lunch == nil || lunch.Venue == nil {
		t.Fatal("placed venue lost in round trip")
	}
	if lunch.Venue.Name != "Phở Lệ" || lunch.Venue.DepartAt != at(11, 27) {
		t.Errorf("venue fields changed: %+v", lunch.Venue)
	}
}
