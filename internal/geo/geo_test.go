package geo

import (
	"math"
	"testing"
)

func TestHaversineKM(t *testing.T) {
	benThanh := Point{Lat: 10.7725, Lon: 106.6980}
	notreDame := Point{Lat: 10.7798, Lon: 106.6990}

	d := HaversineKM(benThanh, notreDame)
	// Roughly 800m between the two landmarks.
	if d < 0.7 || d > 0.95 {
		t.Errorf("distance = %.3f km, expected around 0.8", d)
	}

	if got := HaversineKM(benThanh, benThanh); got != 0 {
		t.Errorf("distance to self = %f, want 0", got)
	}

	// Symmetry.
	if back := HaversineKM(notreDame, benThanh); math.Abs(back-d) > 1e-9 {
		t.Errorf("asymmetric distance: %f vs %f", d, back)
	}
}
