package policy

import "acequia/internal/sim"

const (
	// The engine accumulates flowRate per second for 3600 seconds and
	// divides by 1000, so one hour at rate r moves 3.6*r volume units.
	hourlyVolumePerRate = 3.6
	maxFlowRate         = 1.0
)

// rateFor converts a one-hour target volume into a flow-rate setting,
// capped at the engine's maximum. A capped rate under-delivers for the
// hour; the shortfall is picked up when deficits are recomputed next hour.
func rateFor(amount float64) float64 {
	rate := amount / hourlyVolumePerRate
	if rate > maxFlowRate {
		rate = maxFlowRate
	}
	return rate
}

// scheduleTransfer configures canal to move amount over the coming hour:
// sets the rate and opens the gate. Non-positive amounts leave the canal
// closed and untouched.
func scheduleTransfer(canal *sim.Canal, amount float64) (rate float64, ok bool) {
	if canal == nil || amount <= 0 {
		return 0, false
	}
	rate = rateFor(amount)
	if rate <= 0 {
		return 0, false
	}
	canal.SetFlowRate(rate)
	canal.ToggleOpen(true)
	return rate, true
}

// closeAll force-closes every canal and zeroes its rate so each hour's plan
// starts from a clean slate. Idempotent.
func closeAll(canals []*sim.Canal) {
	for _, c := range canals {
		c.SetFlowRate(0)
		c.ToggleOpen(false)
	}
}
