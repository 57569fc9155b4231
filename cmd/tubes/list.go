package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-tubes/internal/config"
	"github.com/vovakirdan/tui-tubes/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all puzzle variants",
	Long:  `Shows every registered puzzle variant with its palette size and tube capacity.`,
	Run:   runList,
}

func runList(cmd *cobra.Command, args []string) {
	games := registry.List()

	if len(games) == 0 {
		fmt.Println("No puzzles available.")
		return
	}

	tc, err := config.LoadTubes(flagConfig)
	if err != nil {
		tc = config.DefaultTubesConfig()
	}

	fmt.Println("Available puzzles:")
	fmt.Println()

	maxIDLen := 2 // "ID" header
	for _, g := range games {
		maxIDLen = max(maxIDLen, len(g.ID))
	}

	fmt.Printf("  %-*s  %-18s  %6s  %8s\n", maxIDLen, "ID", "Title", "Colors", "Capacity")
	fmt.Printf("  %-*s  %-18s  %6s  %8s\n", maxIDLen, "--", "-----", "------", "--------")

	for _, g := range games {
		colors, capacity := "?", "?"
		if v, ok := tc.Variant(g.ID); ok {
			colors = fmt.Sprintf("%d", v.ColorCount())
			capacity = fmt.Sprintf("%d", v.Capacity)
		}
		fmt.Printf("  %-*s  %-18s  %6s  %8s\n", maxIDLen, g.ID, g.Title, colors, capacity)
	}

	fmt.Println()
	fmt.Println("Run 'tubes play <id>' to play.")
}
