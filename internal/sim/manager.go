package sim

import "acequia/internal/config"

// Manager owns a scenario's physical state and advances simulated time. It
// is the sole writer of region levels, status flags, the penalty score and
// the solved flag; callers drive it strictly alternately with their own
// decision pass.
type Manager struct {
	regions []*Region
	canals  []*Canal

	hour      int
	hourLimit int
	solved    bool
	penalty   int
}

// NewManager builds the network from a validated scenario.
func NewManager(sc *config.Scenario) *Manager {
	m := &Manager{hourLimit: sc.HourLimit}
	byName := make(map[string]*Region, len(sc.Regions))
	for _, rs := range sc.Regions {
		r := &Region{Name: rs.Name, Level: rs.Level, Need: rs.Need, Capacity: rs.Capacity}
		r.updateStatus()
		m.regions = append(m.regions, r)
		byName[r.Name] = r
	}
	for _, cs := range sc.Canals {
		m.canals = append(m.canals, &Canal{
			Name:        cs.Name,
			Source:      byName[cs.Source],
			Destination: byName[cs.Destination],
		})
	}
	m.solved = m.allSatisfied()
	return m
}

// Regions returns the region handles. Callers must not rely on order.
func (m *Manager) Regions() []*Region { return m.regions }

// Canals returns the canal handles. Callers must not rely on order.
func (m *Manager) Canals() []*Canal { return m.canals }

// Hour returns the current simulated hour counter.
func (m *Manager) Hour() int { return m.hour }

// HourLimit returns the configured maximum hour count.
func (m *Manager) HourLimit() int { return m.hourLimit }

// IsSolved reports whether every region is inside its safe band.
func (m *Manager) IsSolved() bool { return m.solved }

// Penalty returns the accumulated score: one point per region-hour spent in
// drought or flood.
func (m *Manager) Penalty() int { return m.penalty }

// AdvanceOneHour applies the current canal settings, refreshes region
// status and scoring, and advances the clock. Called exactly once per
// decision pass, after all transfer settings for the hour are in place.
func (m *Manager) AdvanceOneHour() {
	for _, c := range m.canals {
		c.updateWater()
	}
	for _, r := range m.regions {
		r.updateStatus()
		if r.InDrought || r.InFlood {
			m.penalty++
		}
	}
	m.hour++
	m.solved = m.allSatisfied()
}

func (m *Manager) allSatisfied() bool {
	for _, r := range m.regions {
		if !r.Satisfied() {
			return false
		}
	}
	return true
}
