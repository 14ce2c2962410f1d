package policy

import (
	"errors"
	"strings"
	"testing"

	"acequia/internal/config"
	"acequia/internal/sim"
)

func TestResolveTopology_Default(t *testing.T) {
	m := sim.NewManager(config.Default())
	topo, err := ResolveTopology(m.Regions(), m.Canals())
	if err != nil {
		t.Fatalf("ResolveTopology: %v", err)
	}
	if topo.North.Name != RegionNorth || topo.South.Name != RegionSouth || topo.East.Name != RegionEast {
		t.Error("regions bound to wrong names")
	}
	wantCanal := map[Role]string{
		NorthToSouth: "CanalA",
		SouthToEast:  "CanalB",
		NorthToEast:  "CanalC",
		EastToNorth:  "CanalD",
	}
	for role, name := range wantCanal {
		c := topo.Canal(role)
		if c == nil || c.Name != name {
			t.Errorf("Canal(%s) = %v, want %s", role, c, name)
		}
	}
}

func TestResolveTopology_OrderIndependent(t *testing.T) {
	sc := config.Default()
	// Reverse both collections; resolution must not depend on position.
	for i, j := 0, len(sc.Regions)-1; i < j; i, j = i+1, j-1 {
		sc.Regions[i], sc.Regions[j] = sc.Regions[j], sc.Regions[i]
	}
	for i, j := 0, len(sc.Canals)-1; i < j; i, j = i+1, j-1 {
		sc.Canals[i], sc.Canals[j] = sc.Canals[j], sc.Canals[i]
	}

	m := sim.NewManager(sc)
	topo, err := ResolveTopology(m.Regions(), m.Canals())
	if err != nil {
		t.Fatalf("ResolveTopology: %v", err)
	}
	c := topo.Canal(NorthToSouth)
	if c.Source.Name != RegionNorth || c.Destination.Name != RegionSouth {
		t.Errorf("NorthToSouth bound to %s->%s", c.Source.Name, c.Destination.Name)
	}
}

func TestResolveTopology_MissingRegion(t *testing.T) {
	sc := config.Default()
	// Rename East away and drop the canals that referenced it.
	sc.Regions[2].Name = "West"
	sc.Canals = sc.Canals[:1] // keep only North->South

	m := sim.NewManager(sc)
	_, err := ResolveTopology(m.Regions(), m.Canals())
	if !errors.Is(err, ErrIncompleteTopology) {
		t.Fatalf("err = %v, want ErrIncompleteTopology", err)
	}
	if !strings.Contains(err.Error(), "East") {
		t.Errorf("error should name the missing region: %v", err)
	}
}

func TestResolveTopology_MissingCanalRole(t *testing.T) {
	sc := config.Default()
	sc.Canals = sc.Canals[:3] // drop CanalD (East->North)

	m := sim.NewManager(sc)
	_, err := ResolveTopology(m.Regions(), m.Canals())
	if !errors.Is(err, ErrIncompleteTopology) {
		t.Fatalf("err = %v, want ErrIncompleteTopology", err)
	}
	if !strings.Contains(err.Error(), "East->North") {
		t.Errorf("error should name the missing role: %v", err)
	}
}

func TestRoleString(t *testing.T) {
	if NorthToSouth.String() != "North->South" || EastToNorth.String() != "East->North" {
		t.Error("role names wrong")
	}
	if !strings.Contains(Role(99).String(), "99") {
		t.Error("unknown role should print its numeric value")
	}
}
