package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-tubes/internal/core"
	"github.com/vovakirdan/tui-tubes/internal/games/tubes"
	"github.com/vovakirdan/tui-tubes/internal/platform/tui"
	"github.com/vovakirdan/tui-tubes/internal/registry"
)

var flagPlain bool

var showCmd = &cobra.Command{
	Use:   "show <variant>",
	Short: "Print a level layout",
	Long: `Generate a level and print it without starting the game.
The same --seed and --level always print the same layout.

Examples:
  tubes show tubes --seed 7
  tubes show tubes_deep --level 3 --plain`,
	Args: cobra.ExactArgs(1),
	Run:  runShow,
}

func init() {
	showCmd.Flags().BoolVar(&flagPlain, "plain", false, "Print without colors")
}

func runShow(_ *cobra.Command, args []string) {
	game, err := registry.Create(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		fmt.Fprintln(os.Stderr, "Run 'tubes list' to see available puzzles.")
		os.Exit(1)
	}

	cfg := runtimeConfig()
	game.Reset(cfg)
	if g, ok := game.(*tubes.Game); ok && g.Err() != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", g.Err())
		os.Exit(1)
	}

	screen := core.NewScreen(cfg.ScreenW, cfg.ScreenH)
	game.Render(screen)

	if flagPlain {
		fmt.Println(screen.String())
	} else {
		fmt.Println(tui.RenderScreen(screen))
	}

	if g, ok := game.(*tubes.Game); ok {
		fmt.Printf("seed %d\n", g.Seed())
	}
}
