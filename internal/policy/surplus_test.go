package policy

import (
	"math"
	"testing"

	"acequia/internal/sim"
)

func TestSafeSurplus(t *testing.T) {
	tests := []struct {
		name                  string
		level, need, capacity float64
		want                  float64
	}{
		// minLevel = max(0.8*50, 0.3*200) = 60, keep = max(60, 50) = 60
		{"north above keep level", 100, 50, 200, 40},
		{"at the floor", 60, 50, 200, 0},
		{"below the floor", 30, 50, 200, 0},
		{"empty region", 0, 50, 200, 0},
		// minLevel = max(0.8*100, 0.3*100) = 80, keep = max(80, 100) = 100:
		// need dominates the margin floor, the region never gives below it
		{"need above margin floor", 90, 100, 100, 0},
		{"just above need", 101, 100, 100, 1},
		// minLevel = max(0, 0.3*100) = 30, keep = max(30, 0) = 30
		{"zero need keeps capacity floor", 50, 0, 100, 20},
		{"at capacity floor", 30, 0, 100, 0},
		// malformed band (need > capacity) must still behave
		{"need above capacity", 200, 150, 100, 50},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := &sim.Region{Name: "R", Level: tt.level, Need: tt.need, Capacity: tt.capacity}
			got := SafeSurplus(r)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("SafeSurplus(level=%g need=%g cap=%g) = %g, want %g",
					tt.level, tt.need, tt.capacity, got, tt.want)
			}
			if got < 0 {
				t.Errorf("SafeSurplus must never be negative, got %g", got)
			}
		})
	}
}

func TestSafeSurplus_ZeroAtOrBelowKeepLevel(t *testing.T) {
	// Surplus must be zero whenever level <= max(0.8*need, 0.3*cap, need).
	regions := []struct{ need, capacity float64 }{
		{50, 200}, {80, 100}, {0, 100}, {100, 100}, {150, 100},
	}
	for _, rc := range regions {
		keep := math.Max(math.Max(0.8*rc.need, 0.3*rc.capacity), rc.need)
		for _, level := range []float64{0, keep / 2, keep - 1e-6, keep} {
			r := &sim.Region{Level: level, Need: rc.need, Capacity: rc.capacity}
			if got := SafeSurplus(r); got != 0 {
				t.Errorf("SafeSurplus(level=%g need=%g cap=%g) = %g, want 0",
					level, rc.need, rc.capacity, got)
			}
		}
	}
}

func TestSafeSurplus_NilRegion(t *testing.T) {
	if got := SafeSurplus(nil); got != 0 {
		t.Errorf("SafeSurplus(nil) = %g, want 0", got)
	}
}

func TestDeficit(t *testing.T) {
	tests := []struct {
		name        string
		level, need float64
		want        float64
	}{
		{"deep shortfall", 10, 80, 70},
		{"exactly at need", 80, 80, 0},
		{"above need", 100, 80, 0},
		{"empty with need", 0, 50, 50},
		{"zero need", 10, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := &sim.Region{Level: tt.level, Need: tt.need, Capacity: 1000}
			got := Deficit(r)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("Deficit(level=%g need=%g) = %g, want %g", tt.level, tt.need, got, tt.want)
			}
			if got < 0 {
				t.Errorf("Deficit must never be negative, got %g", got)
			}
		})
	}
}

func TestDeficit_NilRegion(t *testing.T) {
	if got := Deficit(nil); got != 0 {
		t.Errorf("Deficit(nil) = %g, want 0", got)
	}
}
