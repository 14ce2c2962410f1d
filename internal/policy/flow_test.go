package policy

import (
	"math"
	"testing"

	"acequia/internal/sim"
)

func TestRateFor(t *testing.T) {
	tests := []struct {
		name   string
		amount float64
		want   float64
	}{
		{"small amount", 0.36, 0.1},
		{"half capacity", 1.8, 0.5},
		{"exactly one hour of max flow", 3.6, 1.0},
		{"above hourly capacity clamps", 7.2, 1.0},
		{"far above hourly capacity clamps", 1000, 1.0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := rateFor(tt.amount)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("rateFor(%g) = %g, want %g", tt.amount, got, tt.want)
			}
			if got > 1.0 {
				t.Errorf("rateFor(%g) = %g exceeds the engine maximum", tt.amount, got)
			}
		})
	}
}

func TestScheduleTransfer(t *testing.T) {
	t.Run("positive amount opens canal", func(t *testing.T) {
		var c sim.Canal
		rate, ok := scheduleTransfer(&c, 1.8)
		if !ok {
			t.Fatal("scheduleTransfer(1.8) should schedule")
		}
		if math.Abs(rate-0.5) > 1e-9 || math.Abs(c.FlowRate()-0.5) > 1e-9 {
			t.Errorf("rate = %g / canal rate = %g, want 0.5", rate, c.FlowRate())
		}
		if !c.IsOpen() {
			t.Error("canal should be open after scheduling")
		}
	})

	t.Run("non-positive amounts leave canal closed", func(t *testing.T) {
		for _, amount := range []float64{0, -1, -0.0001} {
			var c sim.Canal
			if _, ok := scheduleTransfer(&c, amount); ok {
				t.Errorf("scheduleTransfer(%g) should not schedule", amount)
			}
			if c.IsOpen() || c.FlowRate() != 0 {
				t.Errorf("canal touched for amount %g: open=%v rate=%g", amount, c.IsOpen(), c.FlowRate())
			}
		}
	})

	t.Run("nil canal is a no-op", func(t *testing.T) {
		if _, ok := scheduleTransfer(nil, 1); ok {
			t.Error("scheduleTransfer(nil, 1) should not schedule")
		}
	})
}

func TestCloseAll_Idempotent(t *testing.T) {
	canals := []*sim.Canal{{Name: "A"}, {Name: "B"}, {Name: "C"}}
	for _, c := range canals {
		c.SetFlowRate(0.7)
		c.ToggleOpen(true)
	}

	assertAllClosed := func() {
		t.Helper()
		for _, c := range canals {
			if c.IsOpen() || c.FlowRate() != 0 {
				t.Errorf("canal %s: open=%v rate=%g, want closed and zero", c.Name, c.IsOpen(), c.FlowRate())
			}
		}
	}

	closeAll(canals)
	assertAllClosed()
	closeAll(canals)
	assertAllClosed()
}
