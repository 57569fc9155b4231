package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-tubes/internal/games/tubes"
	"github.com/vovakirdan/tui-tubes/internal/platform/tui"
	"github.com/vovakirdan/tui-tubes/internal/registry"
)

var flagPick bool

var playCmd = &cobra.Command{
	Use:   "play <variant>",
	Short: "Play a puzzle variant",
	Long: `Start playing the specified variant.

Controls:
  Arrows         - Move the cursor between tubes
  Enter/Space    - Pick up from / pour into the cursor tube
  1-7, Q-U, A-J  - Pick up from / pour into the tube with that key
  Mouse click    - Pick up from / pour into the clicked tube
  Enter/Tab      - Next level, once the level is complete
  F5 / Ctrl+R    - Restart the level
  F6             - Skip to the next level
  F11 / Ctrl+F   - Toggle fullscreen
  P              - Pause
  Ctrl+S         - Save a screenshot
  Esc / Ctrl+C   - Quit

Difficulty options:
  easy   - Three spare tubes
  normal - Two spare tubes
  hard   - One spare tube

Examples:
  tubes play tubes
  tubes play tubes_mini --difficulty easy
  tubes play tubes_deep --level 12 --seed 42
  tubes play tubes --pick
  tubes play tubes --config ./my-tubes.yaml`,
	Args: cobra.ExactArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagPick, "pick", false, "Choose difficulty and level in a menu first")
}

func runPlay(cmd *cobra.Command, args []string) {
	gameID := args[0]

	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown puzzle %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'tubes list' to see available puzzles.")
		os.Exit(1)
	}

	cfg := runtimeConfig()
	store := openStore()

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	if flagPick {
		initial := tui.LevelSelection{Level: tubes.GetStartLevel(), Difficulty: difficulty}
		selection, updatedCfg, selErr := tui.RunLevelSelector(gameID, game.Title(), store, initial, cfg)
		if selErr != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", selErr)
			os.Exit(1)
		}
		cfg = updatedCfg

		// User pressed back or quit
		if selection == nil {
			closeStore(store)
			return
		}
		if g, ok := game.(*tubes.Game); ok {
			g.Configure(selection.Level, selection.Difficulty)
		}
	}

	runErr := tui.Run(game, store, cfg)

	// Close store before potential exit
	closeStore(store)

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
	g, ok := game.(*tubes.Game)
	if !ok {
		return
	}
	if g.Warning() != nil {
		logger.Warn("puzzle config fell back to defaults", "puzzle", gameID, "error", g.Warning())
	}
	if g.Err() != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", g.Err())
		os.Exit(1)
	}
}
