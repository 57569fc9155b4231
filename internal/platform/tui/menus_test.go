package tui

import (
	"strings"
	"sync"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"

	"github.com/vovakirdan/tui-tubes/internal/config"
	"github.com/vovakirdan/tui-tubes/internal/core"
	"github.com/vovakirdan/tui-tubes/internal/registry"
)

var registerOnce sync.Once

// registerStub makes the stub game the only entry in the test registry.
func registerStub() {
	registerOnce.Do(func() {
		registry.Register("stub", func() registry.Game { return newStubGame() })
	})
}

var (
	keyEnter = tea.KeyMsg{Type: tea.KeyEnter}
	keyEsc   = tea.KeyMsg{Type: tea.KeyEsc}
	keyDown  = tea.KeyMsg{Type: tea.KeyDown}
	keyRight = tea.KeyMsg{Type: tea.KeyRight}
)

func TestLevelMenuDifficultyAndPlay(t *testing.T) {
	m := NewLevelMenuModel("stub", "Stub", nil, LevelSelection{Level: 4, Difficulty: config.DifficultyEasy}, 80, 24)

	if !strings.Contains(m.View(), "Play from level 5") {
		t.Errorf("view should offer the initial level:\n%s", m.View())
	}

	steps := []tea.Msg{keyDown, keyRight, keyRight, keyRight, keyRight} // easy -> normal -> hard -> easy -> normal
	var model tea.Model = m
	for _, msg := range steps {
		model, _ = model.Update(msg)
	}
	m = model.(LevelMenuModel)
	if got := difficulties[m.difficulty]; got != config.DifficultyNormal {
		t.Fatalf("difficulty = %s, want normal", got)
	}

	model, _ = m.Update(tea.KeyMsg{Type: tea.KeyUp})
	model, cmd := model.Update(keyEnter)
	m = model.(LevelMenuModel)

	sel := m.Selected()
	if sel == nil || cmd == nil {
		t.Fatal("enter on Play should finish with a selection")
	}
	if *sel != (LevelSelection{Level: 4, Difficulty: config.DifficultyNormal}) {
		t.Errorf("selection = %+v", *sel)
	}
}

func TestLevelMenuSelectLevel(t *testing.T) {
	var model tea.Model = NewLevelMenuModel("stub", "Stub", nil, LevelSelection{}, 80, 12)

	for _, msg := range []tea.Msg{keyDown, keyDown, keyEnter} {
		model, _ = model.Update(msg)
	}
	if !model.(LevelMenuModel).inLevelSelect {
		t.Fatal("third option should open the level list")
	}

	// Walk past the visible window to force scrolling.
	for range 10 {
		model, _ = model.Update(keyDown)
	}
	m := model.(LevelMenuModel)
	if m.scrollOffset == 0 {
		t.Error("list should scroll to keep the cursor visible")
	}
	if !strings.Contains(m.View(), "Level 11") {
		t.Errorf("view should show the cursor level:\n%s", m.View())
	}

	model, _ = model.Update(keyEnter)
	sel := model.(LevelMenuModel).Selected()
	if sel == nil || sel.Level != 10 {
		t.Errorf("selection = %+v, want level index 10", sel)
	}
}

func TestLevelMenuBack(t *testing.T) {
	var model tea.Model = NewLevelMenuModel("stub", "Stub", nil, LevelSelection{}, 80, 24)
	model, _ = model.Update(keyEsc)

	m := model.(LevelMenuModel)
	if !m.WantsBack() || m.Selected() != nil {
		t.Error("esc should go back without a selection")
	}
}

func TestMenuListsRegisteredGames(t *testing.T) {
	registerStub()

	m := NewMenuModel(nil, core.RuntimeConfig{ScreenW: 80, ScreenH: 24})
	if !strings.Contains(m.View(), "Stub") {
		t.Errorf("menu should list the stub game:\n%s", m.View())
	}

	tests := []struct {
		name string
		key  tea.KeyMsg
		want MenuChoice
	}{
		{"tab opens scores", tea.KeyMsg{Type: tea.KeyTab}, MenuChoiceScores},
		{"enter plays", keyEnter, MenuChoicePlay},
		{"esc quits", keyEsc, MenuChoiceQuit},
		{"q quits", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}}, MenuChoiceQuit},
		{"navigation keeps browsing", keyDown, MenuChoiceNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			model, cmd := m.Update(tt.key)
			got := model.(MenuModel)
			if got.Choice() != tt.want {
				t.Errorf("Choice() = %v, want %v", got.Choice(), tt.want)
			}
			if (cmd != nil) != (tt.want != MenuChoiceNone) {
				t.Errorf("cmd = %v, want a quit command only for a choice", cmd)
			}
			item, ok := got.Selected()
			if ok != (tt.want == MenuChoicePlay) {
				t.Errorf("Selected() ok = %v for choice %v", ok, tt.want)
			}
			if ok && item.GameID != "stub" {
				t.Errorf("Selected() = %q, want stub", item.GameID)
			}
		})
	}
}

func TestSessionFlow(t *testing.T) {
	registerStub()

	s := NewSessionModel(nil, core.RuntimeConfig{ScreenW: 80, ScreenH: 24, Seed: 1}, "alice", config.DifficultyHard)
	if _, err := uuid.Parse(s.SessionID()); err != nil {
		t.Errorf("SessionID() = %q is not a UUID: %v", s.SessionID(), err)
	}

	var model tea.Model = s
	step := func(msg tea.Msg) {
		t.Helper()
		model, _ = model.Update(msg)
	}

	step(keyEnter) // Pick the only game
	if got := model.(SessionModel).screen; got != screenLevels {
		t.Fatalf("screen = %v, want level menu", got)
	}
	if !strings.Contains(model.View(), "hard") {
		t.Errorf("level menu should preselect the server difficulty:\n%s", model.View())
	}

	step(keyEnter) // Play
	sm := model.(SessionModel)
	if sm.screen != screenGame {
		t.Fatalf("screen = %v, want game", sm.screen)
	}
	if !strings.Contains(model.View(), "stub board") {
		t.Errorf("game view missing board:\n%s", model.View())
	}

	step(keyEsc)
	if got := model.(SessionModel).screen; got != screenMenu {
		t.Fatalf("screen = %v, want menu after back", got)
	}

	step(tea.KeyMsg{Type: tea.KeyTab})
	if got := model.(SessionModel).screen; got != screenScores {
		t.Fatalf("screen = %v, want scoreboard", got)
	}
	step(keyEsc)
	if got := model.(SessionModel).screen; got != screenMenu {
		t.Fatalf("screen = %v, want menu after scoreboard", got)
	}

	var cmd tea.Cmd
	model, cmd = model.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	if !model.(SessionModel).quitting || cmd == nil {
		t.Error("q in the menu should end the session")
	}
}
