package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-tubes/internal/core"
	"github.com/vovakirdan/tui-tubes/internal/registry"
	"github.com/vovakirdan/tui-tubes/internal/storage"
)

// MenuItem represents a selectable variant in the menu.
type MenuItem struct {
	GameID string
	Title  string
	Best   int // Best session score, 0 when unknown
}

// MenuChoice is what the player asked the menu for.
type MenuChoice int

const (
	MenuChoiceNone MenuChoice = iota
	MenuChoicePlay
	MenuChoiceScores
	MenuChoiceQuit
)

// MenuModel is the Bubble Tea model for the variant picker menu.
type MenuModel struct {
	items     []MenuItem
	cursor    int
	width     int
	height    int
	config    core.RuntimeConfig
	keyMapper *KeyMapper
	choice    MenuChoice
}

// NewMenuModel creates a new menu model.
func NewMenuModel(store *storage.Store, cfg core.RuntimeConfig) MenuModel {
	games := registry.List()
	items := make([]MenuItem, 0, len(games))

	for _, g := range games {
		item := MenuItem{GameID: g.ID, Title: g.Title}
		if store != nil {
			if best, err := store.HighScore(g.ID); err == nil {
				item.Best = best
			}
		}
		items = append(items, item)
	}

	return MenuModel{
		items:     items,
		width:     cfg.ScreenW,
		height:    cfg.ScreenH,
		config:    cfg,
		keyMapper: NewKeyMapper(),
	}
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input for menu navigation.
// Any choice ends the menu program; the caller reads it with Choice.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit, MenuActionBack:
		m.choice = MenuChoiceQuit
	case MenuActionUp:
		m.cursor = (m.cursor - 1 + len(m.items)) % max(1, len(m.items))
		return m, nil
	case MenuActionDown:
		m.cursor = (m.cursor + 1) % max(1, len(m.items))
		return m, nil
	case MenuActionSelect:
		if len(m.items) == 0 {
			return m, nil
		}
		m.choice = MenuChoicePlay
	case MenuActionScoreboard:
		m.choice = MenuChoiceScores
	default:
		return m, nil
	}
	return m, tea.Quit
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.choice == MenuChoiceQuit {
		return ""
	}

	t := GetTheme()
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText(t.MenuTitle.Render("  C O L O R   T U B E S  "), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText(t.MenuDescription.Render("Select a puzzle"), m.width))
	b.WriteString("\n\n")

	for i, item := range m.items {
		cursor := "  "
		style := t.MenuItemNormal
		if i == m.cursor {
			cursor = "> "
			style = t.MenuItemActive
		}

		best := ""
		if item.Best > 0 {
			best = fmt.Sprintf("  (best: %d solved)", item.Best)
		}

		line := style.Render(cursor+item.Title) + t.MenuDescription.Render(best)
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	controls := "Up/Down: Navigate  |  Enter: Select  |  Tab: Scores  |  Q: Quit"
	b.WriteString(centerText(t.Dim.Render(controls), m.width))
	b.WriteString("\n")

	return b.String()
}

// Choice returns what the player picked, MenuChoiceNone while browsing.
func (m MenuModel) Choice() MenuChoice {
	return m.choice
}

// Selected returns the highlighted item once the player chose to play it.
func (m MenuModel) Selected() (MenuItem, bool) {
	if m.choice != MenuChoicePlay || len(m.items) == 0 {
		return MenuItem{}, false
	}
	return m.items[m.cursor], true
}

// Config returns the current runtime config (may have been updated by resize).
func (m MenuModel) Config() core.RuntimeConfig {
	return m.config
}

// MenuResult holds the result of running the menu.
type MenuResult struct {
	Choice MenuChoice
	GameID string // Set for MenuChoicePlay
	Config core.RuntimeConfig
}

// RunMenu runs the menu and returns the player's choice.
func RunMenu(store *storage.Store, cfg core.RuntimeConfig) (MenuResult, error) {
	p := tea.NewProgram(NewMenuModel(store, cfg), tea.WithAltScreen())

	finalModel, err := p.Run()
	if err != nil {
		return MenuResult{Choice: MenuChoiceQuit, Config: cfg}, err
	}

	m, ok := finalModel.(MenuModel)
	if !ok {
		return MenuResult{Choice: MenuChoiceQuit, Config: cfg}, nil
	}

	result := MenuResult{Choice: m.Choice(), Config: m.Config()}
	if item, ok := m.Selected(); ok {
		result.GameID = item.GameID
	}
	if result.Choice == MenuChoiceNone {
		result.Choice = MenuChoiceQuit
	}
	return result, nil
}
