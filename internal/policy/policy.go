package policy

import (
	"fmt"

	"acequia/internal/logger"
	"acequia/internal/sim"
)

// Destinations may receive at most 80% of their remaining headroom in a
// single hour, so one transfer cannot overshoot into flood.
const headroomMargin = 0.8

// Policy is the hourly greedy allocation controller. It is re-evaluated
// from scratch every simulated hour and carries no state between hours
// beyond the resolved topology.
type Policy struct {
	topo *Topology
}

// New resolves and validates the topology against the manager's
// collections. An incomplete network fails here, before any hour runs.
func New(m *sim.Manager) (*Policy, error) {
	topo, err := ResolveTopology(m.Regions(), m.Canals())
	if err != nil {
		return nil, fmt.Errorf("build policy: %w", err)
	}
	return &Policy{topo: topo}, nil
}

// RunResult summarizes one full simulation run.
type RunResult struct {
	Scenario  string
	Solved    bool
	Winnable  bool
	Hours     int
	Penalty   int
	Decisions []Decision
}

// AppliedCount returns how many decisions scheduled a transfer.
func (r *RunResult) AppliedCount() int {
	n := 0
	for _, d := range r.Decisions {
		if d.Applied() {
			n++
		}
	}
	return n
}

// pair is one directed transfer attempt. Order in the returned slice is the
// fixed priority order of the hourly pass.
type pair struct {
	role Role
	src  *sim.Region
	dst  *sim.Region
}

func (p *Policy) pairs() [4]pair {
	t := p.topo
	return [4]pair{
		{NorthToSouth, t.North, t.South},
		{NorthToEast, t.North, t.East},
		{SouthToEast, t.South, t.East},
		{EastToNorth, t.East, t.North},
	}
}

// evaluate decides whether and how much to move from src to dst through
// canal, and schedules the transfer when it decides to. It reads region
// state only and scheduling mutates canal state only, so all four attempts
// within an hour see the same start-of-hour levels.
func evaluate(hour int, src, dst *sim.Region, canal *sim.Canal) Decision {
	d := Decision{
		Hour:        hour,
		Canal:       canal.Name,
		Source:      src.Name,
		Destination: dst.Name,
		Outcome:     OutcomeSkipped,
	}

	need := Deficit(dst)
	if need <= 0 {
		d.Reason = ReasonNoDeficit
		return d
	}
	surplus := SafeSurplus(src)
	if surplus <= 0 {
		d.Reason = ReasonNoSurplus
		return d
	}
	headroom := dst.Capacity - dst.Level
	if headroom <= 0 {
		d.Reason = ReasonDestinationFull
		return d
	}

	// Bounded by what dst needs, what src can spare, and 80% of the room
	// left before dst floods.
	amount := need
	if surplus < amount {
		amount = surplus
	}
	if margin := headroomMargin * headroom; margin < amount {
		amount = margin
	}

	rate, ok := scheduleTransfer(canal, amount)
	if !ok {
		d.Reason = ReasonAmountTooSmall
		return d
	}

	d.Outcome = OutcomeApplied
	d.Reason = ReasonNone
	d.Amount = amount
	d.Rate = rate
	d.Delivered = hourlyVolumePerRate * rate
	if d.Delivered > amount {
		d.Delivered = amount
	}
	return d
}

// Run drives the hourly decision cycle until the engine reports the
// scenario solved or the hour limit is reached.
func (p *Policy) Run(m *sim.Manager) *RunResult {
	res := &RunResult{Winnable: true}

	// One-shot precondition: with less total water than total need, no
	// allocation can fully succeed. Advisory only; we still mitigate.
	var totalWater, totalNeed float64
	for _, r := range m.Regions() {
		totalWater += r.Level
		totalNeed += r.Need
	}
	if totalWater < totalNeed {
		res.Winnable = false
		logger.Warn("Policy", fmt.Sprintf(
			"Total water %.1f is below total need %.1f; a perfect solution is impossible, running best-effort",
			totalWater, totalNeed))
	}

	for !m.IsSolved() && m.Hour() < m.HourLimit() {
		closeAll(m.Canals())
		hour := m.Hour()
		for _, pr := range p.pairs() {
			res.Decisions = append(res.Decisions,
				evaluate(hour, pr.src, pr.dst, p.topo.Canal(pr.role)))
		}
		m.AdvanceOneHour()
	}

	res.Solved = m.IsSolved()
	res.Hours = m.Hour()
	res.Penalty = m.Penalty()
	return res
}
