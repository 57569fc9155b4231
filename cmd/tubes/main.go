// tubes is a color sorting puzzle for the terminal: pour liquid between
// tubes until every tube holds a single color.
//
// Usage:
//
//	tubes list              - List available puzzle variants
//	tubes play <variant>    - Play a variant
//	tubes menu              - Start menu to pick variants interactively
//	tubes show <variant>    - Print a level without starting the game
//	tubes serve             - Start SSH server for remote play
//	tubes scores <variant>  - Show the leaderboard for a variant
//
// Global flags:
//
//	--seed <value>       - Seed base for level generation (0 = time based)
//	--db <path>          - Database path (default: ~/.tubes/scores.db)
//	--config <path>      - Custom variant config YAML
//	--difficulty <name>  - easy, normal or hard
//	--level <n>          - One-based level to start from
//	--theme <name>       - default, pastel or basic
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-tubes/internal/config"
	"github.com/vovakirdan/tui-tubes/internal/core"
	"github.com/vovakirdan/tui-tubes/internal/games/tubes"
	"github.com/vovakirdan/tui-tubes/internal/platform/tui"
	"github.com/vovakirdan/tui-tubes/internal/storage"
)

var (
	// Global flags
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagLevel      int
	flagTheme      string

	// difficulty is the parsed --difficulty, empty when not given
	difficulty config.DifficultyPreset
)

var logger = log.NewWithOptions(os.Stderr, log.Options{
	ReportTimestamp: false,
	Prefix:          "tubes",
})

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "tubes",
	Short: "Color Tubes - a liquid sorting puzzle in your terminal",
	Long: `Color Tubes is a terminal puzzle: pour liquid between tubes until
every tube holds a single color.

Available commands:
  list     - Show all puzzle variants
  play     - Play a variant directly
  menu     - Interactive variant picker menu
  show     - Print a level layout
  serve    - Start SSH server for remote play
  scores   - View the leaderboard

Examples:
  tubes list
  tubes play tubes
  tubes play tubes_mini --difficulty easy --level 5
  tubes menu
  tubes serve --ssh :2222
  tubes scores tubes`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return applySettings()
	},
}

func init() {
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "Seed base for level generation (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.tubes/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom variant config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	rootCmd.PersistentFlags().IntVar(&flagLevel, "level", 1, "Level to start from (1-based)")
	rootCmd.PersistentFlags().StringVar(&flagTheme, "theme", "default", "Color theme: default, pastel, basic")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}

// applySettings validates the global flags and hands them to the game package.
func applySettings() error {
	// Without --difficulty the config file's spare count stands.
	if flagDifficulty != "" {
		p, err := config.ParsePreset(flagDifficulty)
		if err != nil {
			return err
		}
		difficulty = p
	}
	if flagLevel < 1 {
		return fmt.Errorf("--level must be at least 1, got %d", flagLevel)
	}
	theme, err := tui.ThemeByName(flagTheme)
	if err != nil {
		return err
	}

	// Surface config problems now; the game would silently fall back to defaults.
	if _, err := config.LoadTubes(flagConfig); err != nil {
		logger.Warn("using default puzzle config", "error", err)
	}

	tubes.SetConfigPath(flagConfig)
	tubes.SetDifficultyPreset(difficulty)
	tubes.SetStartLevel(flagLevel - 1)
	tui.SetTheme(theme)
	return nil
}

// runtimeConfig builds a runtime config sized to the current terminal.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.Seed = flagSeed
	return cfg
}

// openStore opens the scores database, or returns nil with a warning.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database, scores will not be saved", "error", err)
		return nil
	}
	return store
}

func closeStore(store *storage.Store) {
	if store != nil {
		store.Close()
	}
}
