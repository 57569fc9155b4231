package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-tubes/internal/core"
	"github.com/vovakirdan/tui-tubes/internal/registry"
)

// KeyMapper translates Bubble Tea key messages to game actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message to an action.
// Printable letters and digits are left to tube shortcuts, so every other
// binding uses arrows, function keys or control chords.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	switch msg.String() {
	case "ctrl+c":
		return core.ActionQuit, true
	case "left":
		return core.ActionLeft, false
	case "right":
		return core.ActionRight, false
	case "up":
		return core.ActionUp, false
	case "down":
		return core.ActionDown, false
	case "enter", " ", "space":
		return core.ActionActivate, false
	case "f5", "ctrl+r":
		return core.ActionRestart, false
	case "f6":
		return core.ActionSkip, false
	case "tab", "ctrl+n":
		return core.ActionNext, false
	case "f11", "ctrl+f":
		return core.ActionFullscreen, false
	case "p", "P":
		return core.ActionPause, false
	case "esc":
		return core.ActionBack, false
	}

	return core.ActionNone, false
}

// MapKeyToFrame builds the input frame for a key message.
// Shortcut keys resolve to a tube activation through the game's bindings.
// Returns ok=false when the key means nothing to the game.
func (km *KeyMapper) MapKeyToFrame(msg tea.KeyMsg, game registry.Game) (frame core.InputFrame, isQuit, ok bool) {
	action, isQuit := km.MapKey(msg)
	if action != core.ActionNone {
		frame = core.NewInputFrame()
		frame.Set(action)
		return frame, isQuit, true
	}

	sc, hasShortcuts := game.(registry.Shortcuts)
	if !hasShortcuts || msg.Type != tea.KeyRunes || len(msg.Runes) != 1 {
		return core.InputFrame{}, false, false
	}
	tube, found := sc.ShortcutTube(msg.Runes[0])
	if !found {
		return core.InputFrame{}, false, false
	}
	return core.TubeFrame(tube), false, true
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionLeft
	MenuActionRight
	MenuActionSelect
	MenuActionBack
	MenuActionScoreboard
	MenuActionQuit
)

// MapKeyToMenuAction translates a key to a menu action.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	switch msg.String() {
	case "ctrl+c", "q":
		return MenuActionQuit
	case "w", "up", "k": // vim-style k for up
		return MenuActionUp
	case "s", "down", "j": // vim-style j for down
		return MenuActionDown
	case "a", "left", "h":
		return MenuActionLeft
	case "d", "right", "l":
		return MenuActionRight
	case "enter", " ", "space":
		return MenuActionSelect
	case "b", "esc":
		return MenuActionBack
	case "tab":
		return MenuActionScoreboard
	}

	return MenuActionNone
}
