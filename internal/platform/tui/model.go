package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/neko-runner/internal/config"
	"github.com/vovakirdan/neko-runner/internal/core"
	"github.com/vovakirdan/neko-runner/internal/games/neko"
	"github.com/vovakirdan/neko-runner/internal/storage"
)

// Options configures a game session.
type Options struct {
	Config  config.NekoConfig
	Runtime core.RuntimeConfig
	Store   *storage.Store // Optional
	Logger  *log.Logger    // Optional, discards when nil
	Player  string         // Recorded with each run, "local" when empty
}

// Model is the Bubble Tea model for one Neko Runner session.
type Model struct {
	game     *neko.Game
	screen   *core.Screen
	view     *Viewport
	store    *storage.Store
	logger   *log.Logger
	player   string
	runtime  core.RuntimeConfig
	keys     KeyMap
	help     help.Model
	hold     *HoldTracker
	state    core.GameState
	paused   bool
	quitting bool
}

// NewModel creates a session model. The best score is seeded from the
// store when one is available.
func NewModel(opts Options) *Model {
	rt := opts.Runtime
	if rt.Seed == 0 {
		rt.Seed = time.Now().UnixNano()
	}
	if rt.TickRate <= 0 {
		rt.TickRate = 60
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	player := opts.Player
	if player == "" {
		player = "local"
	}

	game := neko.New(opts.Config, rt.Seed)
	if opts.Store != nil {
		best, err := opts.Store.BestScore()
		if err != nil {
			logger.Warn("could not read best score", "error", err)
		}
		game.SetBest(best)
	}

	rows := core.Max(rt.ScreenH-1, 1)
	field := game.Config().Field
	return &Model{
		game:    game,
		screen:  core.NewScreen(rt.ScreenW, rows),
		view:    NewViewport(rt.ScreenW, rows, field.Width, field.Height),
		store:   opts.Store,
		logger:  logger,
		player:  player,
		runtime: rt,
		keys:    DefaultKeyMap(),
		help:    help.New(),
		hold:    NewHoldTracker(DefaultHoldInitialGap, DefaultHoldRepeatGap),
		state:   game.State(),
	}
}

// Init starts the tick loop.
func (m *Model) Init() tea.Cmd {
	m.logger.Debug("session started", "player", m.player, "seed", m.runtime.Seed)
	return tickCmd(m.runtime.TickRate)
}

// Update handles messages and updates the model state.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg, time.Now())
	case tea.MouseMsg:
		m.handleMouse(msg)
		return m, nil
	case tea.WindowSizeMsg:
		m.handleResize(msg.Width, msg.Height)
		return m, nil
	case TickMsg:
		m.handleTick(time.Time(msg))
		return m, tickCmd(m.runtime.TickRate)
	}
	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg, now time.Time) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Screenshot):
		m.saveScreenshot()
	case key.Matches(msg, m.keys.Pause):
		if m.game.Phase() == neko.PhasePlaying {
			m.paused = !m.paused
			m.hold.Reset()
			m.apply(core.PrimaryRelease())
		}
	case m.paused:
		// Everything else waits while paused.
	case key.Matches(msg, m.keys.Jump):
		if m.hold.Press(now) {
			m.apply(core.PrimaryPress())
		}
	case key.Matches(msg, m.keys.Hop), key.Matches(msg, m.keys.Confirm):
		m.apply(core.PrimaryPress())
		m.apply(core.PrimaryRelease())
	case key.Matches(msg, m.keys.Perk1):
		m.apply(core.PerkSelect(0))
	case key.Matches(msg, m.keys.Perk2):
		m.apply(core.PerkSelect(1))
	case key.Matches(msg, m.keys.Perk3):
		m.apply(core.PerkSelect(2))
	case key.Matches(msg, m.keys.Reroll):
		m.apply(core.PerkReroll())
	}
	return m, nil
}

func (m *Model) handleMouse(msg tea.MouseMsg) {
	if m.paused {
		return
	}
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return
		}
		if m.game.Phase() == neko.PhaseLevelUp {
			x, y := m.view.ToField(msg.X, msg.Y)
			m.apply(core.PerkSelectAt(x, y))
			return
		}
		m.apply(core.PrimaryPress())
	case tea.MouseActionRelease:
		m.apply(core.PrimaryRelease())
	}
}

func (m *Model) handleResize(width, height int) {
	m.runtime.ScreenW = width
	m.runtime.ScreenH = height
	rows := core.Max(height-1, 1)
	m.screen.Resize(width, rows)
	m.view.Resize(width, rows)
	m.help.Width = width
}

func (m *Model) handleTick(now time.Time) {
	if m.hold.Expired(now) {
		m.apply(core.PrimaryRelease())
	}
	if m.paused {
		return
	}
	m.record(m.game.Tick())
}

// apply forwards one command to the kernel.
func (m *Model) apply(cmd core.Command) {
	m.record(m.game.Apply(cmd))
}

// record keeps the latest state and reacts to kernel events.
func (m *Model) record(res neko.Result) {
	m.state = res.State
	for _, ev := range res.Events {
		switch ev.Kind {
		case neko.EventGameOver:
			m.saveRun()
		case neko.EventNewBest:
			m.logger.Info("new best score", "player", m.player, "score", ev.Value)
		case neko.EventPerkApplied:
			m.logger.Debug("perk applied", "perk", ev.Perk, "rank", ev.Value)
		default:
			m.logger.Debug("event", "kind", ev.Kind, "value", ev.Value)
		}
	}
}

// saveRun persists a finished run. Best effort: the game continues when
// the store is unavailable.
func (m *Model) saveRun() {
	snap := m.game.Snapshot()
	m.logger.Info("run ended", "player", m.player, "score", snap.Score, "level", snap.Level, "ticks", snap.Tick)
	if m.store == nil || snap.Score <= 0 {
		return
	}
	_, err := m.store.SaveRun(storage.Run{
		Player: m.player,
		Score:  snap.Score,
		Level:  snap.Level,
		Ticks:  snap.Tick,
		Perks:  neko.FormatRanks(snap.Ranks),
	})
	if err != nil {
		m.logger.Error("could not save run", "error", err)
	}
}

// saveScreenshot writes the current screen to ~/.neko/screenshots.
func (m *Model) saveScreenshot() {
	DrawSnapshot(m.screen, m.view, m.game.Snapshot(), m.paused)

	home, err := os.UserHomeDir()
	if err != nil {
		m.logger.Warn("screenshot failed", "error", err)
		return
	}
	dir := filepath.Join(home, ".neko", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("screenshot failed", "error", err)
		return
	}

	name := fmt.Sprintf("neko_%s.txt", time.Now().Format("20060102_150405"))
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("screenshot failed", "error", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m *Model) View() string {
	if m.quitting {
		return ""
	}
	DrawSnapshot(m.screen, m.view, m.game.Snapshot(), m.paused)
	return RenderScreen(m.screen) + "\n" + m.help.View(m.keys)
}

// State returns the latest compact game state.
func (m *Model) State() core.GameState {
	return m.state
}

// Run starts the Bubble Tea program for a local session.
func Run(opts Options) error {
	p := tea.NewProgram(
		NewModel(opts),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)
	_, err := p.Run()
	return err
}
