// Package policy implements the hourly greedy allocation controller: per
// region safe-surplus and deficit computation, flow-rate conversion, and a
// fixed-priority pass of pairwise transfers over the three-region network.
package policy

import "acequia/internal/sim"

const (
	// A region keeps at least 80% of its need and 30% of its capacity in
	// reserve before it is allowed to give water away.
	needFloorRatio = 0.8
	capFloorRatio  = 0.3
)

// SafeSurplus returns the volume r can give up this hour without dropping
// below its protective floor or below its own need. A nil region has no
// surplus.
func SafeSurplus(r *sim.Region) float64 {
	if r == nil {
		return 0
	}
	minLevel := needFloorRatio * r.Need
	if byCap := capFloorRatio * r.Capacity; byCap > minLevel {
		minLevel = byCap
	}
	if r.Level <= minLevel {
		return 0
	}
	keep := minLevel
	if r.Need > keep {
		keep = r.Need
	}
	if r.Level <= keep {
		return 0
	}
	return r.Level - keep
}

// Deficit returns how much water r is short of its need. A nil region has
// no deficit.
func Deficit(r *sim.Region) float64 {
	if r == nil {
		return 0
	}
	if r.Level >= r.Need {
		return 0
	}
	return r.Need - r.Level
}
