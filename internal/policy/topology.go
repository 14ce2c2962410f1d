package policy

import (
	"errors"
	"fmt"

	"acequia/internal/sim"
)

// Role identifies a canal by its fixed logical direction in the
// three-region network, independent of collection order or naming.
type Role int

const (
	NorthToSouth Role = iota
	NorthToEast
	SouthToEast
	EastToNorth
)

func (r Role) String() string {
	switch r {
	case NorthToSouth:
		return "North->South"
	case NorthToEast:
		return "North->East"
	case SouthToEast:
		return "South->East"
	case EastToNorth:
		return "East->North"
	}
	return fmt.Sprintf("Role(%d)", int(r))
}

// Region names the policy resolves by exact match.
const (
	RegionNorth = "North"
	RegionSouth = "South"
	RegionEast  = "East"
)

var roleEndpoints = map[Role][2]string{
	NorthToSouth: {RegionNorth, RegionSouth},
	NorthToEast:  {RegionNorth, RegionEast},
	SouthToEast:  {RegionSouth, RegionEast},
	EastToNorth:  {RegionEast, RegionNorth},
}

// ErrIncompleteTopology means the scenario does not contain the full
// three-region, four-canal network the policy is written for.
var ErrIncompleteTopology = errors.New("incomplete topology")

// Topology binds the fixed network: the three named regions and one canal
// per role.
type Topology struct {
	North *sim.Region
	South *sim.Region
	East  *sim.Region

	canals map[Role]*sim.Canal
}

// Canal returns the canal serving role. Always non-nil on a resolved
// topology.
func (t *Topology) Canal(role Role) *sim.Canal { return t.canals[role] }

// ResolveTopology looks regions up by exact name and canals by their fixed
// source/destination pair, making no assumption about collection order. Any
// missing region or role is a hard configuration error, not a silent skip.
func ResolveTopology(regions []*sim.Region, canals []*sim.Canal) (*Topology, error) {
	t := &Topology{canals: make(map[Role]*sim.Canal, len(roleEndpoints))}
	for _, r := range regions {
		switch r.Name {
		case RegionNorth:
			t.North = r
		case RegionSouth:
			t.South = r
		case RegionEast:
			t.East = r
		}
	}
	if t.North == nil {
		return nil, fmt.Errorf("%w: region %q not found", ErrIncompleteTopology, RegionNorth)
	}
	if t.South == nil {
		return nil, fmt.Errorf("%w: region %q not found", ErrIncompleteTopology, RegionSouth)
	}
	if t.East == nil {
		return nil, fmt.Errorf("%w: region %q not found", ErrIncompleteTopology, RegionEast)
	}

	for _, c := range canals {
		if c.Source == nil || c.Destination == nil {
			continue
		}
		for role, ends := range roleEndpoints {
			if c.Source.Name == ends[0] && c.Destination.Name == ends[1] {
				t.canals[role] = c
			}
		}
	}
	for role := NorthToSouth; role <= EastToNorth; role++ {
		if t.canals[role] == nil {
			return nil, fmt.Errorf("%w: no canal for %s", ErrIncompleteTopology, role)
		}
	}
	return t, nil
}
