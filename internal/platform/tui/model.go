package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-barrage/internal/core"
	"github.com/vovakirdan/tui-barrage/internal/registry"
	"github.com/vovakirdan/tui-barrage/internal/storage"
)

// Model is the Bubble Tea model for running arcade games.
//
// Terminals report key presses only, so the model synthesizes the release
// events games rely on: a held aim key emits a press once, then a release
// when its auto-repeat stream goes quiet; one-shot keys (fire) emit press
// and release in the same tick.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	store      *storage.Store
	config     core.RuntimeConfig
	keys       KeyMap
	help       help.Model
	inputFrame core.InputFrame
	held       map[core.Action]int // held action -> tick of last repeat
	tickCount  int
	tanks      int
	startedAt  time.Time
	gameState  core.GameState
	runErr     error
	quitting   bool
	saved      bool
}

// releaseTicks returns how many quiet ticks end a held key. The window must
// exceed the terminal's initial auto-repeat delay (~500ms) or held keys
// stutter.
func releaseTicks(tickRate int) int {
	n := tickRate * 2 / 3
	if n < 1 {
		n = 1
	}
	return n
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, tanks int) Model {
	return Model{
		game:      game,
		screen:    core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:     store,
		config:    cfg,
		keys:      DefaultKeyMap(),
		help:      help.New(),
		held:      make(map[core.Action]int),
		tanks:     tanks,
		startedAt: time.Now(),
	}
}

// Init starts the tick loop. The game is already Reset by Run, which lets
// setup failures surface before the terminal is put into the alt screen.
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

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action, isQuit := m.keys.MapKey(msg)
	if isQuit {
		m.saveSession("quit")
		m.quitting = true
		return m, tea.Quit
	}

	switch action {
	case core.ActionAimLeft, core.ActionAimRight:
		if _, holding := m.held[action]; !holding {
			m.inputFrame.Press(action)
		}
		m.held[action] = m.tickCount
	case core.ActionFire:
		m.inputFrame.Press(action)
		m.inputFrame.Release(action)
	case core.ActionPause, core.ActionRestart:
		m.inputFrame.Press(action)
	}

	return m, nil
}

// handleResize processes window resize events.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)
	m.help.Width = msg.Width

	// Rebuild the playfield at the new dimensions.
	if err := m.game.Reset(m.config); err != nil {
		m.runErr = err
		m.quitting = true
		return m, tea.Quit
	}

	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	// Check for restart
	if m.inputFrame.Has(core.ActionRestart) {
		m.saveSession("restart")
		if err := m.game.Reset(m.config); err != nil {
			m.runErr = err
			m.quitting = true
			return m, tea.Quit
		}
		m.gameState = m.game.State()
		m.inputFrame.Clear()
		m.held = make(map[core.Action]int)
		m.startedAt = time.Now()
		m.saved = false
		m.tickCount++
		return m, tickCmd(m.config.TickRate)
	}

	// Synthesize releases for held keys whose repeat stream went quiet.
	for action, lastSeen := range m.held {
		if m.tickCount-lastSeen >= releaseTicks(m.config.TickRate) {
			m.inputFrame.Release(action)
			delete(m.held, action)
		}
	}

	// Run game simulation
	result := m.game.Step(m.inputFrame)
	m.gameState = result.State
	if result.Err != nil {
		m.runErr = result.Err
		m.quitting = true
		return m, tea.Quit
	}

	// Clear input for next frame
	m.inputFrame.Clear()
	m.tickCount++

	// Continue ticking
	return m, tickCmd(m.config.TickRate)
}

// saveSession persists the session's shot count and match record.
// Best effort; failures are logged and the exit continues.
func (m *Model) saveSession(reason string) {
	if m.saved || m.store == nil {
		return
	}
	m.saved = true

	state := m.game.State()
	if state.Score > 0 {
		if _, err := m.store.SaveScore(m.game.ID(), state.Score); err != nil {
			log.Warn("could not save score", "err", err)
		}
	}
	_, err := m.store.SaveMatch(storage.MatchRecord{
		GameID:       m.game.ID(),
		Tanks:        m.tanks,
		Shots:        state.Score,
		DurationSecs: int(time.Since(m.startedAt).Seconds()),
		EndReason:    reason,
	})
	if err != nil {
		log.Warn("could not save match record", "err", err)
	}
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	// Render game to screen buffer
	m.game.Render(m.screen)

	return RenderScreen(m.screen) + "\n" + m.help.View(m.keys)
}

// Run starts the Bubble Tea program with the given model.
// The game is reset first so configuration errors fail at startup.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, tanks int) error {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}

	if err := game.Reset(cfg); err != nil {
		return err
	}

	model := NewModel(game, store, cfg, tanks)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	final, err := p.Run()
	if err != nil {
		return err
	}
	if m, ok := final.(Model); ok && m.runErr != nil {
		return m.runErr
	}
	return nil
}
