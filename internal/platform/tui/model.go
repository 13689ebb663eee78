package tui

import (
	"errors"
	"fmt"
	"time"
	"unicode/utf8"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/pkoval/daynight/internal/core"
	"github.com/pkoval/daynight/internal/scenario"
	"github.com/pkoval/daynight/internal/sim"
	"github.com/pkoval/daynight/internal/storage"
)

// Pacing limits for the +/- keys.
const (
	minStepsPerTick = 1
	maxStepsPerTick = 64
)

// Model is the Bubble Tea model driving a single simulation run.
type Model struct {
	scenarioID string
	simulation *sim.Simulation
	screen     *core.Screen
	store      *storage.Store
	config     core.RuntimeConfig
	keyMapper  *KeyMapper
	inputFrame core.InputFrame

	// Requested grid size; zero means fit to the terminal.
	gridW, gridH int

	stepsPerTick int
	opts         sim.RenderOptions
	paused       bool
	stalled      bool
	started      time.Time
	runSaved     bool
	backAllowed  bool // Esc returns to the picker (SSH sessions)
	backToMenu   bool
	quitting     bool
}

// NewModel creates a new run model for the given scenario.
func NewModel(scenarioID string, store *storage.Store, cfg core.RuntimeConfig, gridW, gridH, stepsPerTick int, opts sim.RenderOptions) (Model, error) {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if stepsPerTick < minStepsPerTick {
		stepsPerTick = minStepsPerTick
	}

	m := Model{
		scenarioID:   scenarioID,
		screen:       core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:        store,
		config:       cfg,
		keyMapper:    NewKeyMapper(),
		inputFrame:   core.NewInputFrame(),
		gridW:        gridW,
		gridH:        gridH,
		stepsPerTick: stepsPerTick,
		opts:         opts,
		started:      time.Now(),
	}

	s, err := m.createSim()
	if err != nil {
		return Model{}, err
	}
	m.simulation = s
	return m, nil
}

// createSim builds the simulation for the current config and scenario.
func (m *Model) createSim() (*sim.Simulation, error) {
	w, h := m.gridW, m.gridH
	if w == 0 {
		w = core.Max(m.config.ScreenW-4, 2)
	}
	if h == 0 {
		h = core.Max(m.config.ScreenH-4, 1)
	}
	return scenario.Create(m.scenarioID, w, h, m.config.Seed)
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey records keyboard input into the frame; actions are processed
// at the next tick. Quit is immediate.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.keyMapper.MapKeyToFrame(msg, &m.inputFrame) {
		m.saveRun()
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

// applyInput consumes the actions collected since the last tick.
func (m *Model) applyInput() {
	if m.inputFrame.Has(core.ActionPause) {
		m.paused = !m.paused
		if !m.paused {
			m.stalled = false
		}
	}
	if m.inputFrame.Has(core.ActionStep) && m.paused {
		m.step(1)
	}
	if m.inputFrame.Has(core.ActionRestart) {
		m.saveRun()
		m.config.Seed = time.Now().UnixNano()
		if s, err := m.createSim(); err == nil {
			m.simulation = s
			m.started = time.Now()
			m.runSaved = false
			m.paused = false
			m.stalled = false
		}
	}
	if m.inputFrame.Has(core.ActionFaster) {
		m.stepsPerTick = core.Clamp(m.stepsPerTick*2, minStepsPerTick, maxStepsPerTick)
	}
	if m.inputFrame.Has(core.ActionSlower) {
		m.stepsPerTick = core.Clamp(m.stepsPerTick/2, minStepsPerTick, maxStepsPerTick)
	}
	if m.inputFrame.Has(core.ActionGridLines) {
		m.opts.GridLines = !m.opts.GridLines
	}
	if m.inputFrame.Has(core.ActionTrails) {
		m.opts.Trails = !m.opts.Trails
	}
	if m.inputFrame.Has(core.ActionBack) && m.backAllowed {
		m.saveRun()
		m.backToMenu = true
	}
	m.inputFrame.Clear()
}

// handleResize processes window resize events. When the grid is fitted to
// the terminal, resizing restarts the run at the new dimensions.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)

	if m.gridW == 0 || m.gridH == 0 {
		if s, err := m.createSim(); err == nil {
			m.simulation = s
			m.started = time.Now()
			m.runSaved = false
			m.stalled = false
		}
	}

	return m, nil
}

// handleTick consumes the collected input and advances the simulation.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	m.applyInput()
	if !m.paused && !m.stalled {
		m.step(m.stepsPerTick)
	}
	return m, tickCmd(m.config.TickRate)
}

// step advances the simulation by n steps, stopping early on a stall.
func (m *Model) step(n int) {
	for i := 0; i < n; i++ {
		if err := m.simulation.Step(); err != nil {
			if errors.Is(err, sim.ErrRetryLimit) {
				m.stalled = true
				m.paused = true
			}
			return
		}
	}
}

// saveRun persists the finished run once. Best-effort, the UI continues
// regardless.
func (m *Model) saveRun() {
	if m.runSaved || m.store == nil || m.simulation.Tick() == 0 {
		return
	}
	day, night := m.simulation.Counts()
	//nolint:errcheck
	m.store.SaveRun(storage.RunRecord{
		Scenario:     m.scenarioID,
		Width:        m.simulation.Width(),
		Height:       m.simulation.Height(),
		Seed:         m.config.Seed,
		Steps:        int64(m.simulation.Tick()),
		DayCount:     day,
		NightCount:   night,
		DurationSecs: int(time.Since(m.started).Seconds()),
	})
	m.runSaved = true
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.simulation.Render(m.screen, m.opts)
	m.drawOverlays()

	return RenderScreen(m.screen)
}

// drawOverlays draws the pause and stall banners over the rendered grid.
func (m *Model) drawOverlays() {
	cy := m.screen.Height() / 2
	switch {
	case m.stalled:
		m.drawBanner(cy, " simulation stalled, press r to restart ", core.ColorAlert)
	case m.paused:
		m.drawBanner(cy, fmt.Sprintf(" paused · %d steps/frame · n to step ", m.stepsPerTick), core.ColorFrame)
	}
}

func (m *Model) drawBanner(cy int, msg string, c core.Color) {
	w := utf8.RuneCountInString(msg) + 2
	box := core.NewRect((m.screen.Width()-w)/2, cy-1, w, 3)
	m.screen.DrawRect(box, ' ', core.ColorDefault)
	m.screen.DrawBox(box, c)
	m.screen.DrawTextCentered(cy, msg, c)
}

// IsQuitting reports whether the user requested to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu reports whether the user requested to return to the picker.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// Run starts a standalone Bubble Tea program for one scenario.
func Run(scenarioID string, store *storage.Store, cfg core.RuntimeConfig, gridW, gridH, stepsPerTick int, opts sim.RenderOptions) error {
	model, err := NewModel(scenarioID, store, cfg, gridW, gridH, stepsPerTick, opts)
	if err != nil {
		return err
	}

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err = p.Run()
	return err
}
