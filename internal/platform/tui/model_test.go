package tui

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/neko-runner/internal/config"
	"github.com/vovakirdan/neko-runner/internal/core"
	"github.com/vovakirdan/neko-runner/internal/games/neko"
	"github.com/vovakirdan/neko-runner/internal/storage"
)

func newTestModel(t *testing.T, store *storage.Store) *Model {
	t.Helper()
	rt := core.DefaultConfig()
	rt.Seed = 7
	return NewModel(Options{
		Config:  config.DefaultNekoConfig(),
		Runtime: rt,
		Store:   store,
	})
}

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

var spaceKey = tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}

func TestModelSpaceStartsRun(t *testing.T) {
	m := newTestModel(t, nil)
	if m.game.Phase() != neko.PhaseTitle {
		t.Fatalf("phase = %v, want title", m.game.Phase())
	}

	m.Update(spaceKey)
	if m.game.Phase() != neko.PhasePlaying {
		t.Fatalf("phase = %v, want playing", m.game.Phase())
	}
	if m.State().Phase != "playing" {
		t.Errorf("state phase = %q", m.State().Phase)
	}
}

func TestModelHeldJumpReleasesAfterGap(t *testing.T) {
	m := newTestModel(t, nil)
	m.game.Apply(core.PrimaryPress())

	now := time.Unix(100, 0)
	m.handleKey(spaceKey, now)
	if !m.game.Snapshot().Player.Pressing {
		t.Fatal("space should press")
	}

	m.handleTick(now.Add(10 * time.Millisecond))
	if !m.game.Snapshot().Player.Pressing {
		t.Fatal("released too early")
	}
	m.handleTick(now.Add(DefaultHoldInitialGap))
	if m.game.Snapshot().Player.Pressing {
		t.Error("expected synthesized release")
	}
}

func TestModelPauseStopsSimulation(t *testing.T) {
	m := newTestModel(t, nil)
	m.Update(spaceKey)
	m.Update(runeKey('p'))
	if !m.paused {
		t.Fatal("p should pause")
	}

	before := m.game.Snapshot().Tick
	for i := 0; i < 10; i++ {
		m.Update(TickMsg(time.Now()))
	}
	if got := m.game.Snapshot().Tick; got != before {
		t.Errorf("tick advanced while paused: %d -> %d", before, got)
	}

	m.Update(runeKey('p'))
	m.Update(TickMsg(time.Now()))
	if got := m.game.Snapshot().Tick; got != before+1 {
		t.Errorf("tick = %d, want %d", got, before+1)
	}
}

func TestModelPauseIgnoredOnTitle(t *testing.T) {
	m := newTestModel(t, nil)
	m.Update(runeKey('p'))
	if m.paused {
		t.Error("pause should only apply while playing")
	}
}

func TestModelQuit(t *testing.T) {
	m := newTestModel(t, nil)
	_, cmd := m.Update(runeKey('q'))
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("expected tea.QuitMsg")
	}
	if m.View() != "" {
		t.Error("view should be empty after quit")
	}
}

func TestModelResize(t *testing.T) {
	m := newTestModel(t, nil)
	m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	if m.screen.Width() != 120 || m.screen.Height() != 39 {
		t.Errorf("screen = %dx%d, want 120x39", m.screen.Width(), m.screen.Height())
	}
	if !strings.Contains(m.View(), "\n") {
		t.Error("view should include the help line")
	}
}

func TestModelSavesFinishedRun(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "runs.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	m := newTestModel(t, store)
	m.player = "tester"
	m.Update(spaceKey)

	// Stand still until the run ends.
	for i := 0; i < 200000 && m.game.Phase() != neko.PhaseGameOver; i++ {
		if m.game.Phase() == neko.PhaseLevelUp {
			m.apply(core.PerkSelect(0))
			continue
		}
		m.handleTick(time.Now())
	}
	if m.game.Phase() != neko.PhaseGameOver {
		t.Fatal("run never ended")
	}

	runs, err := store.PlayerRuns("tester", 10)
	if err != nil {
		t.Fatalf("PlayerRuns: %v", err)
	}
	if len(runs) != 1 {
		t.Fatalf("saved %d runs, want 1", len(runs))
	}
	if runs[0].Score != m.game.Snapshot().Score {
		t.Errorf("saved score %d, want %d", runs[0].Score, m.game.Snapshot().Score)
	}

	best, err := store.BestScore()
	if err != nil {
		t.Fatal(err)
	}
	if best != runs[0].Score {
		t.Errorf("best = %d, want %d", best, runs[0].Score)
	}
}
