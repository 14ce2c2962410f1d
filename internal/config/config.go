// Package config defines the scenario model: the regions, canals and hour
// limit a simulation run is built from.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// RegionSpec describes one region's starting state.
type RegionSpec struct {
	Name     string  `yaml:"name"`
	Level    float64 `yaml:"level"`
	Need     float64 `yaml:"need"`
	Capacity float64 `yaml:"capacity"`
}

// CanalSpec describes one directed canal. Source and Destination are fixed
// at scenario setup and never change during a run.
type CanalSpec struct {
	Name        string `yaml:"name"`
	Source      string `yaml:"source"`
	Destination string `yaml:"destination"`
}

// Scenario is a complete simulation setup.
type Scenario struct {
	Name      string       `yaml:"name"`
	HourLimit int          `yaml:"hourLimit"`
	Regions   []RegionSpec `yaml:"regions"`
	Canals    []CanalSpec  `yaml:"canals"`
}

// Default returns the canonical three-region, four-canal scenario the
// simulator runs when no file is given.
func Default() *Scenario {
	return &Scenario{
		Name:      "baseline",
		HourLimit: 48,
		Regions: []RegionSpec{
			{Name: "North", Level: 150, Need: 50, Capacity: 200},
			{Name: "South", Level: 10, Need: 80, Capacity: 100},
			{Name: "East", Level: 50, Need: 50, Capacity: 100},
		},
		Canals: []CanalSpec{
			{Name: "CanalA", Source: "North", Destination: "South"},
			{Name: "CanalB", Source: "South", Destination: "East"},
			{Name: "CanalC", Source: "North", Destination: "East"},
			{Name: "CanalD", Source: "East", Destination: "North"},
		},
	}
}

// Load reads and validates a scenario YAML file.
func Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scenario: %w", err)
	}
	var sc Scenario
	if err := yaml.Unmarshal(data, &sc); err != nil {
		return nil, fmt.Errorf("parse scenario %s: %w", path, err)
	}
	if err := sc.Validate(); err != nil {
		return nil, fmt.Errorf("scenario %s: %w", path, err)
	}
	return &sc, nil
}

// Validate checks structural consistency. It does not require need <=
// capacity: a malformed band is the policy's problem to survive, not a load
// error.
func (s *Scenario) Validate() error {
	if s.Name == "" {
		return fmt.Errorf("scenario name is empty")
	}
	if s.HourLimit <= 0 {
		return fmt.Errorf("hourLimit must be positive, got %d", s.HourLimit)
	}
	if len(s.Regions) == 0 {
		return fmt.Errorf("no regions defined")
	}
	regionNames := make(map[string]bool, len(s.Regions))
	for _, r := range s.Regions {
		if r.Name == "" {
			return fmt.Errorf("region with empty name")
		}
		if regionNames[r.Name] {
			return fmt.Errorf("duplicate region %q", r.Name)
		}
		regionNames[r.Name] = true
		if r.Level < 0 {
			return fmt.Errorf("region %q: negative water level %g", r.Name, r.Level)
		}
		if r.Need < 0 {
			return fmt.Errorf("region %q: negative water need %g", r.Name, r.Need)
		}
		if r.Capacity <= 0 {
			return fmt.Errorf("region %q: capacity must be positive, got %g", r.Name, r.Capacity)
		}
	}
	canalNames := make(map[string]bool, len(s.Canals))
	for _, c := range s.Canals {
		if c.Name == "" {
			return fmt.Errorf("canal with empty name")
		}
		if canalNames[c.Name] {
			return fmt.Errorf("duplicate canal %q", c.Name)
		}
		canalNames[c.Name] = true
		if !regionNames[c.Source] {
			return fmt.Errorf("canal %q: unknown source region %q", c.Name, c.Source)
		}
		if !regionNames[c.Destination] {
			return fmt.Errorf("canal %q: unknown destination region %q", c.Name, c.Destination)
		}
		if c.Source == c.Destination {
			return fmt.Errorf("canal %q: source and destination are both %q", c.Name, c.Source)
		}
	}
	return nil
}
