package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/pkoval/daynight/internal/core"
	"github.com/pkoval/daynight/internal/sim"
	"github.com/pkoval/daynight/internal/storage"
)

// SessionModel manages the full session flow for SSH clients:
// picker -> run -> picker.
type SessionModel struct {
	store    *storage.Store
	config   core.RuntimeConfig
	username string
	menu     MenuModel
	run      *Model
	inRun    bool
	quitting bool
}

// NewSessionModel creates a new session model.
func NewSessionModel(store *storage.Store, cfg core.RuntimeConfig, username string) SessionModel {
	return SessionModel{
		store:    store,
		config:   cfg,
		username: username,
		menu:     NewMenuModel(cfg),
	}
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	return m.menu.Init()
}

// Update handles messages for the session.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Track window size globally so a new run starts at the right dimensions
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.config.ScreenW = wsm.Width
		m.config.ScreenH = wsm.Height
	}

	if m.inRun && m.run != nil {
		return m.updateRun(msg)
	}
	return m.updateMenu(msg)
}

// updateMenu handles updates while the picker is showing.
func (m SessionModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	newMenu, cmd := m.menu.Update(msg)
	if menuModel, ok := newMenu.(MenuModel); ok {
		m.menu = menuModel
	}

	if m.menu.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	if selected := m.menu.Selected(); selected != nil {
		m.config = m.menu.Config()
		m.config.Seed = time.Now().UnixNano()

		run, err := NewModel(selected.ID, m.store, m.config, 0, 0, 1, sim.RenderOptions{})
		if err != nil {
			// Shouldn't happen since the picker only shows registered scenarios
			return m, nil
		}
		run.backAllowed = true

		m.run = &run
		m.inRun = true
		return m, m.run.Init()
	}

	return m, cmd
}

// updateRun handles updates while a run is active.
func (m SessionModel) updateRun(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.run.Update(msg)
	if runModel, ok := newModel.(Model); ok {
		m.run = &runModel
	}

	if m.run.BackToMenu() {
		m.inRun = false
		m.run = nil
		m.menu = NewMenuModel(m.config)
		return m, m.menu.Init()
	}

	if m.run.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	return m, cmd
}

// View renders the current view.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}

	if m.inRun && m.run != nil {
		return m.run.View()
	}

	return m.menu.View()
}
