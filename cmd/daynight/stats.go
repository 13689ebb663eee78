package main

import (
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/pkoval/daynight/internal/platform/tui"
	"github.com/pkoval/daynight/internal/scenario"
	"github.com/pkoval/daynight/internal/storage"
)

var flagInteractive bool

var statsCmd = &cobra.Command{
	Use:   "stats [scenario]",
	Short: "Show recorded run statistics",
	Long: `Display statistics for recorded runs. With a scenario argument,
shows that scenario's recent runs; without, shows a summary per scenario.

Examples:
  daynight stats
  daynight stats classic
  daynight stats -i`,
	Args: cobra.MaximumNArgs(1),
	Run:  runStats,
}

func init() {
	statsCmd.Flags().BoolVarP(&flagInteractive, "interactive", "i", false, "Browse run history interactively")
}

func runStats(cmd *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening runs database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagInteractive {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width = w
			height = h
		}
		if _, err := tui.RunStatsboard(store, width, height); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if len(args) > 0 {
		printScenarioRuns(store, args[0])
		return
	}

	printSummary(store)
}

// printScenarioRuns prints the recent runs of one scenario.
func printScenarioRuns(store *storage.Store, scenarioID string) {
	if !scenario.Exists(scenarioID) {
		fmt.Fprintf(os.Stderr, "Error: unknown scenario %q\n", scenarioID)
		fmt.Fprintln(os.Stderr, "Run 'daynight list' to see available scenarios.")
		os.Exit(1)
	}

	runs, err := store.RunsForScenario(scenarioID, 10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving runs: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Recent runs - %s\n", scenarioID)
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Printf("Run 'daynight run %s' to record the first one!\n", scenarioID)
		return
	}

	fmt.Printf("  %-8s  %-8s  %-8s  %-8s  %s\n", "Steps", "Day", "Night", "Grid", "Date")
	fmt.Printf("  %-8s  %-8s  %-8s  %-8s  %s\n", "-----", "---", "-----", "----", "----")

	for _, r := range runs {
		grid := fmt.Sprintf("%dx%d", r.Width, r.Height)
		dateStr := r.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-8d  %-8d  %-8d  %-8s  %s\n", r.Steps, r.DayCount, r.NightCount, grid, dateStr)
	}

	stats, err := store.GetScenarioStats(scenarioID)
	if err == nil {
		fmt.Println()
		fmt.Printf("Longest run: %d steps over %d runs\n", stats.MaxSteps, stats.RunsCount)
	}
}

// printSummary prints one line per scenario that has runs.
func printSummary(store *storage.Store) {
	all, err := store.GetAllScenarioStats()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving stats: %v\n", err)
		os.Exit(1)
	}

	if len(all) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Run 'daynight run' to record the first one!")
		return
	}

	fmt.Println("Run statistics:")
	fmt.Println()
	fmt.Printf("  %-12s  %-6s  %-10s  %-10s  %s\n", "Scenario", "Runs", "Max steps", "Avg steps", "Last run")
	fmt.Printf("  %-12s  %-6s  %-10s  %-10s  %s\n", "--------", "----", "---------", "---------", "--------")

	// Keep the output ordered the way 'list' orders scenarios
	for _, info := range scenario.List() {
		st, ok := all[info.ID]
		if !ok {
			continue
		}
		fmt.Printf("  %-12s  %-6d  %-10d  %-10.0f  %s\n",
			st.Scenario, st.RunsCount, st.MaxSteps, st.AvgSteps, st.LastRun.Format("2006-01-02 15:04"))
		delete(all, info.ID)
	}
	// Scenarios recorded under names no longer registered
	for _, id := range sortedStatKeys(all) {
		st := all[id]
		fmt.Printf("  %-12s  %-6d  %-10d  %-10.0f  %s\n",
			st.Scenario, st.RunsCount, st.MaxSteps, st.AvgSteps, st.LastRun.Format("2006-01-02 15:04"))
	}
}

// sortedStatKeys returns the map's scenario names in lexical order so
// the summary prints the same way on every invocation.
func sortedStatKeys[V any](all map[string]V) []string {
	keys := make([]string, 0, len(all))
	for id := range all {
		keys = append(keys, id)
	}
	sort.Strings(keys)
	return keys
}
