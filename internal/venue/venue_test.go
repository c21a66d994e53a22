package venue

import "testing"

func TestRowParse(t *testing.T) {
	base := Row{
		ID:        "v1",
		Name:      "Phở Lệ",
		Rating:    "4.5",
		Latitude:  "10.7546",
		Longitude: "106.6650",
	}

	t.Run("valid row", func(t *testing.T) {
		v, skip := base.Parse()
		if skip != SkipNone {
			t.Fatalf("unexpected skip: %s", skip)
		}
		if v.Rating != 4.5 || v.Latitude != 10.7546 || v.Longitude != 106.6650 {
			t.Errorf("parsed values wrong: %+v", v)
		}
	})

	t.Run("missing coordinates", func(t *testing.T) {
		r := base
		r.Latitude = "  "
		if _, skip := r.Parse(); skip != SkipMissingCoordinates {
			t.Errorf("skip = %s, want missing coordinates", skip)
		}
	})

	t.Run("invalid coordinates", func(t *testing.T) {
		r := base
		r.Longitude = "east-ish"
		if _, skip := r.Parse(); skip != SkipInvalidCoordinates {
			t.Errorf("skip = %s, want invalid coordinates", skip)
		}
	})

	t.Run("bad rating defaults to zero", func(t *testing.T) {
		for _, rating := range []string{"", "n/a", "7.2", "-1"} {
			r := base
			r.Rating = rating
			v, skip := r.Parse()
			if skip != SkipNone {
				t.Fatalf("rating %q should not exclude the row", rating)
			}
			if v.Rating != 0 {
				t.Errorf("rating %q parsed as %f, want 0", rating, v.Rating)
			}
		}
	})
}
