package storage

import (
	"os"
	"path/filepath"
	"testing"
)

func TestStoreOpenClose(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreOpenNestedPath(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	runs := []RunRecord{
		{Scenario: "classic", Width: 80, Height: 22, Seed: 1, Steps: 500, DayCount: 900, NightCount: 860, DurationSecs: 17},
		{Scenario: "classic", Width: 80, Height: 22, Seed: 2, Steps: 1200, DayCount: 850, NightCount: 910, DurationSecs: 40},
		{Scenario: "swarm", Width: 40, Height: 20, Seed: 3, Steps: 300, DayCount: 400, NightCount: 400, DurationSecs: 10},
	}
	for _, r := range runs {
		if _, err := store.SaveRun(r); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	classic, err := store.RunsForScenario("classic", 10)
	if err != nil {
		t.Fatalf("RunsForScenario() failed: %v", err)
	}
	if len(classic) != 2 {
		t.Errorf("Expected 2 classic runs, got %d", len(classic))
	}
	// Newest first
	if len(classic) == 2 && classic[0].Seed != 2 {
		t.Errorf("Expected newest run first (seed 2), got seed %d", classic[0].Seed)
	}

	all, err := store.RecentRuns(10)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(all) != 3 {
		t.Errorf("Expected 3 runs total, got %d", len(all))
	}
}

func TestStoreRecentRunsLimit(t *testing.T) {
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	for i := 0; i < 5; i++ {
		store.SaveRun(RunRecord{Scenario: "classic", Width: 10, Height: 10, Steps: int64(i * 100)})
	}

	runs, err := store.RecentRuns(3)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(runs) != 3 {
		t.Errorf("Expected 3 runs with limit, got %d", len(runs))
	}
}

func TestStoreScenarioStats(t *testing.T) {
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Empty scenario
	stats, err := store.GetScenarioStats("classic")
	if err != nil {
		t.Fatalf("GetScenarioStats() failed: %v", err)
	}
	if stats.RunsCount != 0 || stats.MaxSteps != 0 {
		t.Errorf("Expected empty stats, got %+v", stats)
	}

	store.SaveRun(RunRecord{Scenario: "classic", Steps: 100})
	store.SaveRun(RunRecord{Scenario: "classic", Steps: 300})
	store.SaveRun(RunRecord{Scenario: "quad", Steps: 50})

	stats, err = store.GetScenarioStats("classic")
	if err != nil {
		t.Fatalf("GetScenarioStats() failed: %v", err)
	}
	if stats.RunsCount != 2 {
		t.Errorf("Expected 2 runs, got %d", stats.RunsCount)
	}
	if stats.MaxSteps != 300 {
		t.Errorf("Expected max steps 300, got %d", stats.MaxSteps)
	}
	if stats.AvgSteps != 200 {
		t.Errorf("Expected avg steps 200, got %f", stats.AvgSteps)
	}
	if stats.TotalSteps != 400 {
		t.Errorf("Expected total steps 400, got %d", stats.TotalSteps)
	}

	all, err := store.GetAllScenarioStats()
	if err != nil {
		t.Fatalf("GetAllScenarioStats() failed: %v", err)
	}
	if len(all) != 2 {
		t.Errorf("Expected stats for 2 scenarios, got %d", len(all))
	}
	if all["quad"] == nil || all["quad"].RunsCount != 1 {
		t.Errorf("Quad stats wrong: %+v", all["quad"])
	}
}

func TestStoreClearRuns(t *testing.T) {
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	store.SaveRun(RunRecord{Scenario: "classic", Steps: 100})
	store.SaveRun(RunRecord{Scenario: "classic", Steps: 200})
	store.SaveRun(RunRecord{Scenario: "swarm", Steps: 300})

	if err := store.ClearRuns("classic"); err != nil {
		t.Fatalf("ClearRuns() failed: %v", err)
	}

	classic, _ := store.RunsForScenario("classic", 10)
	if len(classic) != 0 {
		t.Errorf("Expected 0 classic runs after clear, got %d", len(classic))
	}

	swarm, _ := store.RunsForScenario("swarm", 10)
	if len(swarm) != 1 {
		t.Errorf("Swarm runs should not be affected by clearing classic")
	}
}
