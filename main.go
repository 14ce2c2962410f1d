package main

import (
	"flag"
	"fmt"
	"os"

	"acequia/internal/config"
	"acequia/internal/db"
	"acequia/internal/logger"
	"acequia/internal/runner"
)

var version = "dev"

func main() {
	scenarioPath := flag.String("scenario", "", "scenario YAML file (empty = built-in default)")
	scenarioDir := flag.String("scenarios", "", "directory of scenario files to run as a batch")
	dbPath := flag.String("db", "acequia.db", "run-history database path (empty = no persistence)")
	hours := flag.Int("hours", 0, "override the scenario hour limit (0 = scenario value)")
	history := flag.Int("history", 0, "print the N most recent runs and exit")
	flag.Parse()

	logger.Banner(version)

	var store *db.Store
	if *dbPath != "" {
		var err error
		store, err = db.Open(*dbPath)
		if err != nil {
			logger.Error("DB", fmt.Sprintf("Failed to open database: %v", err))
			os.Exit(1)
		}
		defer store.Close()
	}

	if *history > 0 {
		if store == nil {
			logger.Error("DB", "History needs a database; do not pass -db \"\"")
			os.Exit(1)
		}
		printHistory(store, *history)
		return
	}

	if *scenarioDir != "" {
		if err := runner.RunDir(*scenarioDir, store); err != nil {
			logger.Error("Runner", fmt.Sprintf("Batch failed: %v", err))
			os.Exit(1)
		}
		return
	}

	sc := config.Default()
	if *scenarioPath != "" {
		loaded, err := config.Load(*scenarioPath)
		if err != nil {
			logger.Error("Config", fmt.Sprintf("Failed to load scenario: %v", err))
			os.Exit(1)
		}
		sc = loaded
	}
	if *hours > 0 {
		sc.HourLimit = *hours
	}

	if _, err := runner.RunScenario(sc, store); err != nil {
		logger.Error("Runner", fmt.Sprintf("Run failed: %v", err))
		os.Exit(1)
	}
}

func printHistory(store *db.Store, limit int) {
	runs, err := store.RecentRuns(limit)
	if err != nil {
		logger.Error("DB", fmt.Sprintf("Failed to read history: %v", err))
		os.Exit(1)
	}
	logger.Section("Recent runs")
	if len(runs) == 0 {
		logger.Info("History", "No runs recorded yet")
		return
	}
	for _, r := range runs {
		outcome := "unsolved"
		if r.Solved {
			outcome = "solved"
		}
		note := ""
		if !r.Winnable {
			note = ", unwinnable"
		}
		logger.Stats(r.Scenario, fmt.Sprintf("%s in %d hours (penalty %d%s) at %s",
			outcome, r.Hours, r.Penalty, note, r.StartedAt))
	}
}
