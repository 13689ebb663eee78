package main

import (
	"testing"

	"github.com/pkoval/daynight/internal/storage"
)

func TestSortedStatKeys(t *testing.T) {
	all := map[string]storage.ScenarioStats{
		"swarm":   {Scenario: "swarm"},
		"classic": {Scenario: "classic"},
		"retired": {Scenario: "retired"},
	}

	got := sortedStatKeys(all)
	want := []string{"classic", "retired", "swarm"}
	if len(got) != len(want) {
		t.Fatalf("got %d keys, expected %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("key %d = %q, expected %q", i, got[i], want[i])
		}
	}
}
