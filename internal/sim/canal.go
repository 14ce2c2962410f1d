package sim

const (
	secondsPerHour = 3600
	// The engine accumulates flowRate once per second, then divides the
	// total by 1000 to get the volume moved. One hour at rate r therefore
	// moves 3.6*r units.
	volumeDivisor = 1000.0

	maxFlowRate = 1.0
)

// Canal is a directed connection between two regions with a controllable
// flow rate and an open/closed gate. Source and Destination are fixed at
// scenario setup.
type Canal struct {
	Name        string
	Source      *Region
	Destination *Region

	flowRate float64
	open     bool
}

// SetFlowRate sets the per-second flow intensity, clamped to [0, 1].
func (c *Canal) SetFlowRate(rate float64) {
	if rate < 0 {
		rate = 0
	}
	if rate > maxFlowRate {
		rate = maxFlowRate
	}
	c.flowRate = rate
}

// ToggleOpen opens or closes the gate. A closed canal moves nothing
// regardless of its flow rate.
func (c *Canal) ToggleOpen(open bool) { c.open = open }

// FlowRate returns the current flow-rate setting.
func (c *Canal) FlowRate() float64 { return c.flowRate }

// IsOpen returns the gate state.
func (c *Canal) IsOpen() bool { return c.open }

// updateWater moves one hour's worth of water from Source to Destination
// and returns the volume moved. The source never goes negative: the move is
// capped at whatever the source still holds.
func (c *Canal) updateWater() float64 {
	if !c.open || c.flowRate <= 0 {
		return 0
	}
	var accumulated float64
	for s := 0; s < secondsPerHour; s++ {
		accumulated += c.flowRate
	}
	amount := accumulated / volumeDivisor
	if amount > c.Source.Level {
		amount = c.Source.Level
	}
	c.Source.Level -= amount
	c.Destination.Level += amount
	return amount
}
