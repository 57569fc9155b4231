package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-tubes/internal/games/tubes"
	"github.com/vovakirdan/tui-tubes/internal/platform/tui"
	"github.com/vovakirdan/tui-tubes/internal/registry"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start with a puzzle picker menu",
	Long: `Start in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select a puzzle, then pick a
difficulty and starting level. Leaving a puzzle returns to the menu.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select
  Tab          - Leaderboard
  Q            - Quit

Examples:
  tubes menu
  tubes menu --theme pastel
  tubes menu --db ./scores.db`,
	Run: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) {
	store := openStore()
	defer closeStore(store)

	cfg := runtimeConfig()
	choice := tui.LevelSelection{Level: tubes.GetStartLevel(), Difficulty: difficulty}

	for {
		menuResult, err := tui.RunMenu(store, cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return
		}
		cfg = menuResult.Config

		if menuResult.Choice == tui.MenuChoiceScores {
			goBack, sbErr := tui.RunScoreboard(store, cfg.ScreenW, cfg.ScreenH)
			if sbErr != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", sbErr)
			}
			if goBack {
				continue // Back to menu
			}
			return // User quit from scoreboard
		}
		if menuResult.Choice != tui.MenuChoicePlay {
			return
		}

		gameID := menuResult.GameID
		game, err := registry.Create(gameID)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
			continue
		}

		selection, updatedCfg, selErr := tui.RunLevelSelector(gameID, game.Title(), store, choice, cfg)
		if selErr != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", selErr)
			continue
		}
		cfg = updatedCfg

		// User pressed back or quit
		if selection == nil {
			continue
		}
		choice = *selection

		if g, ok := game.(*tubes.Game); ok {
			g.Configure(choice.Level, choice.Difficulty)
		}

		if err := tui.Run(game, store, cfg); err != nil {
			fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		}
		if g, ok := game.(*tubes.Game); ok && g.Err() != nil {
			logger.Error("puzzle could not start", "puzzle", gameID, "error", g.Err())
		}

		// Loop back to menu
	}
}
