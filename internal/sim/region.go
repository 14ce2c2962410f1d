// Package sim implements the simulation engine: the physical state of the
// water network and its advancement in one-hour steps. The allocation policy
// only reads region state and sets canal flow; everything else in here is
// engine-owned.
package sim

// Region is a node in the network holding a water volume, the volume it
// needs for normal operation, and a capacity ceiling before overflow.
type Region struct {
	Name     string
	Level    float64
	Need     float64
	Capacity float64

	// Status flags, engine-owned, refreshed each hour.
	InDrought bool
	InFlood   bool
}

// Satisfied reports whether the region sits inside its safe band.
func (r *Region) Satisfied() bool {
	return r.Level >= r.Need && r.Level <= r.Capacity
}

func (r *Region) updateStatus() {
	r.InDrought = r.Level < r.Need
	r.InFlood = r.Level > r.Capacity
}
