package main

import (
	"errors"
	"math/rand"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/pkoval/daynight/internal/scenario"
	"github.com/pkoval/daynight/internal/sim"
	"github.com/pkoval/daynight/internal/storage"
)

// benchSimulation scatters n orbs per side over their starting halves,
// like the swarm scenario but with a configurable count.
func benchSimulation(w, h, n int, seed int64) *sim.Simulation {
	rng := rand.New(rand.NewSource(seed))
	nightStart := (w + 1) / 2

	entities := make([]*sim.Entity, 0, 2*n)
	if h > 0 && nightStart > 0 {
		for i := 0; i < n; i++ {
			entities = append(entities, sim.NewEntity(rng.Intn(nightStart), rng.Intn(h), sim.Night))
		}
	}
	if h > 0 && w > nightStart {
		for i := 0; i < n; i++ {
			entities = append(entities, sim.NewEntity(nightStart+rng.Intn(w-nightStart), rng.Intn(h), sim.Day))
		}
	}
	return sim.NewWithEntities(sim.NewGrid(w, h), entities, seed)
}

var (
	flagBenchSteps    int
	flagBenchWidth    int
	flagBenchHeight   int
	flagBenchEntities int
	flagBenchSave     bool
)

var benchCmd = &cobra.Command{
	Use:   "bench <scenario>",
	Short: "Run a headless benchmark",
	Long: `Run a scenario without any display and report stepping throughput.

With --entities the scenario argument is ignored and N orbs per side are
scattered over their starting halves instead.

Examples:
  daynight bench classic
  daynight bench swarm --steps 100000 --width 200 --height 100
  daynight bench swarm --entities 32
  daynight bench classic --seed 42 --save`,
	Args: cobra.ExactArgs(1),
	Run:  runBench,
}

func init() {
	benchCmd.Flags().IntVar(&flagBenchSteps, "steps", 10000, "Number of simulation steps")
	benchCmd.Flags().IntVar(&flagBenchWidth, "width", 80, "Grid width")
	benchCmd.Flags().IntVar(&flagBenchHeight, "height", 40, "Grid height")
	benchCmd.Flags().IntVar(&flagBenchEntities, "entities", 0, "Orbs per side (0 = use the scenario's own setup)")
	benchCmd.Flags().BoolVar(&flagBenchSave, "save", false, "Record the result in the runs database")
}

func runBench(cmd *cobra.Command, args []string) {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "daynight-bench",
	})

	if flagBenchWidth < 2 || flagBenchHeight < 1 {
		logger.Error("grid must be at least 2x1", "width", flagBenchWidth, "height", flagBenchHeight)
		os.Exit(1)
	}

	scenarioID := args[0]
	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	var s *sim.Simulation
	var err error
	if flagBenchEntities > 0 {
		s = benchSimulation(flagBenchWidth, flagBenchHeight, flagBenchEntities, seed)
	} else {
		s, err = scenario.Create(scenarioID, flagBenchWidth, flagBenchHeight, seed)
		if err != nil {
			logger.Error("cannot create scenario", "error", err)
			os.Exit(1)
		}
	}

	logger.Info("starting benchmark",
		"scenario", scenarioID,
		"grid", flagBenchWidth*flagBenchHeight,
		"entities", len(s.Entities()),
		"steps", flagBenchSteps,
		"seed", seed,
	)

	start := time.Now()
	completed := 0
	for i := 0; i < flagBenchSteps; i++ {
		if err := s.Step(); err != nil {
			if errors.Is(err, sim.ErrRetryLimit) {
				logger.Warn("simulation stalled", "step", completed)
				break
			}
			logger.Error("step failed", "error", err)
			os.Exit(1)
		}
		completed++
	}
	elapsed := time.Since(start)

	day, night := s.Counts()
	stepsPerSec := float64(completed) / elapsed.Seconds()

	logger.Info("benchmark finished",
		"steps", completed,
		"elapsed", elapsed.Round(time.Millisecond),
		"steps_per_sec", int(stepsPerSec),
		"day", day,
		"night", night,
	)

	if flagBenchSave {
		store, err := storage.Open(flagDBPath)
		if err != nil {
			logger.Warn("could not open runs database", "error", err)
			return
		}
		defer store.Close()

		if _, err := store.SaveRun(storage.RunRecord{
			Scenario:     scenarioID,
			Width:        flagBenchWidth,
			Height:       flagBenchHeight,
			Seed:         seed,
			Steps:        int64(completed),
			DayCount:     day,
			NightCount:   night,
			DurationSecs: int(elapsed.Seconds()),
		}); err != nil {
			logger.Warn("could not save run", "error", err)
		}
	}
}
