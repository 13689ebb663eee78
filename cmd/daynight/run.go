package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/pkoval/daynight/internal/config"
	"github.com/pkoval/daynight/internal/core"
	"github.com/pkoval/daynight/internal/platform/tui"
	"github.com/pkoval/daynight/internal/scenario"
	"github.com/pkoval/daynight/internal/sim"
	"github.com/pkoval/daynight/internal/storage"
)

var (
	flagConfig    string
	flagWidth     int
	flagHeight    int
	flagSteps     int
	flagGridLines bool
	flagTrails    bool
)

var runCmd = &cobra.Command{
	Use:   "run [scenario]",
	Short: "Run a scenario",
	Long: `Run the given scenario in the terminal. Without an argument the
scenario from the configuration file is used.

Controls:
  Space/P    - Pause/unpause
  N          - Advance one step while paused
  R          - Restart with a fresh seed
  +/-        - More/fewer steps per frame
  G          - Toggle grid border
  T          - Toggle movement trails
  Q/Ctrl+C   - Quit

Examples:
  daynight run
  daynight run classic
  daynight run swarm --seed 42 --trails
  daynight run quad --width 60 --height 30
  daynight run classic --config ./my-daynight.yaml`,
	Args: cobra.MaximumNArgs(1),
	Run:  runRun,
}

func init() {
	runCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	runCmd.Flags().IntVar(&flagWidth, "width", 0, "Grid width (0 = fit terminal)")
	runCmd.Flags().IntVar(&flagHeight, "height", 0, "Grid height (0 = fit terminal)")
	runCmd.Flags().IntVar(&flagSteps, "steps-per-tick", 0, "Simulation steps per display frame")
	runCmd.Flags().BoolVar(&flagGridLines, "gridlines", false, "Draw a border around the grid")
	runCmd.Flags().BoolVar(&flagTrails, "trails", false, "Show previous-position trails")
}

func runRun(cmd *cobra.Command, args []string) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	scenarioID := cfg.Sim.Scenario
	if len(args) > 0 {
		scenarioID = args[0]
	}

	if !scenario.Exists(scenarioID) {
		fmt.Fprintf(os.Stderr, "Error: unknown scenario %q\n", scenarioID)
		fmt.Fprintln(os.Stderr, "Run 'daynight list' to see available scenarios.")
		os.Exit(1)
	}

	// Flags override the config file, then the result is validated
	// again so flag values obey the same bounds as the file.
	if cmd.Flags().Changed("width") {
		cfg.Grid.Width = flagWidth
	}
	if cmd.Flags().Changed("height") {
		cfg.Grid.Height = flagHeight
	}
	if flagSteps > 0 {
		cfg.Sim.StepsPerTick = flagSteps
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	gridW, gridH := cfg.Grid.Width, cfg.Grid.Height
	stepsPerTick := cfg.Sim.StepsPerTick
	opts := sim.RenderOptions{
		GridLines: cfg.Display.GridLines || flagGridLines,
		Trails:    cfg.Display.Trails || flagTrails,
	}

	rc := core.DefaultConfig()
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		rc.ScreenW = w
		rc.ScreenH = h
	}
	rc.TickRate = cfg.Sim.TickRate
	if cmd.Flags().Changed("fps") {
		rc.TickRate = flagFPS
	}
	rc.Seed = flagSeed

	// Open run storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open runs database: %v\n", err)
		// Continue without storage - the simulation still works
		store = nil
	}

	runErr := tui.Run(scenarioID, store, rc, gridW, gridH, stepsPerTick, opts)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running simulation: %v\n", runErr)
		os.Exit(1)
	}
}
