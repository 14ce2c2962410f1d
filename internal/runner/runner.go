// Package runner executes scenarios end to end: build the engine, run the
// policy, persist the ledger, print the report.
package runner

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"acequia/internal/config"
	"acequia/internal/db"
	"acequia/internal/logger"
	"acequia/internal/policy"
	"acequia/internal/sim"
)

// RunScenario runs one scenario. A nil store means a dry run with no
// persistence. Topology problems surface here, before any hour executes; an
// unsolved run is a normal result, not an error.
func RunScenario(sc *config.Scenario, store *db.Store) (*policy.RunResult, error) {
	m := sim.NewManager(sc)
	p, err := policy.New(m)
	if err != nil {
		return nil, fmt.Errorf("scenario %s: %w", sc.Name, err)
	}

	initial := snapshotLevels(m)
	started := time.Now()
	res := p.Run(m)
	res.Scenario = sc.Name

	if store != nil {
		runID := db.NewRunID()
		if err := store.SaveRun(runID, started, res); err != nil {
			return nil, fmt.Errorf("scenario %s: save run: %w", sc.Name, err)
		}
		if err := store.SaveLevels(runID, 0, initial); err != nil {
			return nil, fmt.Errorf("scenario %s: save initial levels: %w", sc.Name, err)
		}
		if err := store.SaveLevels(runID, res.Hours, snapshotLevels(m)); err != nil {
			return nil, fmt.Errorf("scenario %s: save final levels: %w", sc.Name, err)
		}
	}

	report(m, res)
	return res, nil
}

// RunDir runs every scenario file (*.yaml, *.yml) in dir concurrently. The
// first failure cancels nothing already running but is the error returned.
func RunDir(dir string, store *db.Store) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("read scenario dir: %w", err)
	}

	var paths []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		switch strings.ToLower(filepath.Ext(e.Name())) {
		case ".yaml", ".yml":
			paths = append(paths, filepath.Join(dir, e.Name()))
		}
	}
	if len(paths) == 0 {
		return fmt.Errorf("no scenario files in %s", dir)
	}
	sort.Strings(paths)
	logger.Info("Runner", fmt.Sprintf("Running %d scenarios from %s", len(paths), dir))

	var g errgroup.Group
	for _, path := range paths {
		path := path
		g.Go(func() error {
			sc, err := config.Load(path)
			if err != nil {
				return err
			}
			_, err = RunScenario(sc, store)
			return err
		})
	}
	return g.Wait()
}

func snapshotLevels(m *sim.Manager) []db.RegionLevel {
	levels := make([]db.RegionLevel, 0, len(m.Regions()))
	for _, r := range m.Regions() {
		levels = append(levels, db.RegionLevel{Region: r.Name, Level: r.Level})
	}
	return levels
}

func report(m *sim.Manager, res *policy.RunResult) {
	logger.Section(res.Scenario)
	if res.Solved {
		logger.Success("Run", fmt.Sprintf("Solved in %d hours", res.Hours))
	} else {
		logger.Warn("Run", fmt.Sprintf("Hour limit reached after %d hours", res.Hours))
	}
	logger.Stats("penalty", res.Penalty)
	logger.Stats("transfers", res.AppliedCount())
	for _, r := range m.Regions() {
		status := "ok"
		switch {
		case r.InDrought:
			status = "drought"
		case r.InFlood:
			status = "flood"
		}
		logger.Stats(r.Name, fmt.Sprintf("%.1f (need %.0f, cap %.0f, %s)", r.Level, r.Need, r.Capacity, status))
	}
}
