// Package tubes adapts the tube sorting engine to the platform's Game
// interface: variants, cursor and shortcut input, and screen rendering.
package tubes

import (
	"fmt"

	"github.com/vovakirdan/tui-tubes/internal/config"
	"github.com/vovakirdan/tui-tubes/internal/core"
	"github.com/vovakirdan/tui-tubes/internal/games/tubes/engine"
	"github.com/vovakirdan/tui-tubes/internal/registry"
)

// Game implements one tube puzzle variant.
type Game struct {
	id      string
	title   string
	variant config.TubesVariant

	session *engine.Session
	err     error // Config or generation failure from the last Reset
	warn    error // Non-fatal config problem; defaults were used

	cursor     int
	cleared    bool // Current level solved; waiting for Next
	paused     bool
	fullscreen bool // Survives Reset; copied into the session flags

	// Per-instance overrides of the package settings, set by Configure
	configured bool
	preset     config.DifficultyPreset
	level      int

	screenW  int
	screenH  int
	tooSmall bool
	cells    []core.Rect // Tube areas from the last layout, for hit testing
}

// Package-level variables for config
var (
	configPath       string
	difficultyPreset config.DifficultyPreset
	startLevel       int
)

// SetConfigPath sets a custom config file path.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset.
func SetDifficultyPreset(preset config.DifficultyPreset) {
	difficultyPreset = preset
}

// SetStartLevel sets the zero-based level a new session starts from.
func SetStartLevel(level int) {
	startLevel = max(0, level)
}

// GetStartLevel returns the currently selected start level.
func GetStartLevel() int {
	return startLevel
}

// New creates a game for the given variant ID.
func New(id string) *Game {
	g := &Game{id: id, fullscreen: true}
	if v, ok := config.DefaultTubesConfig().Variant(id); ok {
		g.title = v.Title
	}
	return g
}

func init() {
	for _, id := range []string{config.VariantClassic, config.VariantMini, config.VariantDeep} {
		registry.Register(id, func() registry.Game {
			return New(id)
		})
	}
}

// Configure overrides the package-level difficulty and start level for
// this instance. Concurrent sessions use it instead of the package setters.
func (g *Game) Configure(startLevel int, preset config.DifficultyPreset) {
	g.configured = true
	g.level = max(0, startLevel)
	g.preset = preset
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return g.id
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.title == "" {
		return g.id
	}
	return g.title
}

// Err returns the error that prevented the last Reset from building a level.
func (g *Game) Err() error {
	return g.err
}

// Warning returns a config problem that Reset worked around, if any.
func (g *Game) Warning() error {
	return g.warn
}

// Reset loads the variant configuration and builds the starting level.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.session = nil
	g.err = nil
	g.warn = nil
	g.cursor = 0
	g.cleared = false
	g.paused = false

	tc, err := config.LoadTubes(configPath)
	if err != nil {
		g.warn = err
		tc = config.DefaultTubesConfig()
	}
	preset, level := difficultyPreset, startLevel
	if g.configured {
		preset, level = g.preset, g.level
	}
	config.ApplyTubesPreset(&tc, preset)

	variant, ok := tc.Variant(g.id)
	if !ok {
		g.err = fmt.Errorf("tubes: unknown variant %q", g.id)
		return
	}
	g.variant = variant
	if variant.Title != "" {
		g.title = variant.Title
	}

	palette, err := paletteFor(variant)
	if err != nil {
		g.err = err
		return
	}

	session, err := engine.NewSession(engine.SessionParams{
		Gen: engine.GenParams{
			Palette:  palette,
			Capacity: variant.Capacity,
			Spare:    tc.Spare,
		},
		SeedBase:   tc.SeedBase + cfg.Seed,
		StartLevel: level,
	})
	if err != nil {
		g.err = fmt.Errorf("tubes: %w", err)
		return
	}
	g.session = session
	g.session.Flags.Fullscreen = g.fullscreen
	g.onLevelLoaded()
}

// paletteFor resolves a variant's colors.
func paletteFor(v config.TubesVariant) ([]engine.Color, error) {
	if len(v.Colors) == 0 {
		if v.PaletteSize <= 0 || v.PaletteSize > int(engine.ColorCount) {
			return nil, fmt.Errorf("tubes: palette size %d out of range 1..%d", v.PaletteSize, engine.ColorCount)
		}
		return engine.Palette(v.PaletteSize), nil
	}

	palette := make([]engine.Color, 0, len(v.Colors))
	for _, name := range v.Colors {
		c, ok := engine.ParseColor(name)
		if !ok {
			return nil, fmt.Errorf("tubes: unknown color %q", name)
		}
		palette = append(palette, c)
	}
	return palette, nil
}

// onLevelLoaded refreshes per-level UI state after the engine rebuilt the level.
func (g *Game) onLevelLoaded() {
	level := g.session.Level()
	g.cursor = core.Clamp(g.cursor, 0, max(0, level.Len()-1))
	g.cleared = g.session.Won()

	cols := level.Columns()
	for i := 0; i < level.Len(); i++ {
		t := level.Tube(i)
		t.Shortcut, _ = Shortcut(i/cols, i%cols)
	}
	g.syncHover()
	g.layout()
}

// syncHover mirrors the cursor into the tubes' hover flags.
func (g *Game) syncHover() {
	level := g.session.Level()
	for i := 0; i < level.Len(); i++ {
		level.Tube(i).Hovered = i == g.cursor
	}
}

// Step processes one input event.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if in.Has(core.ActionPause) {
		g.paused = !g.paused
		return core.StepResult{State: g.State(), Changed: true}
	}
	if g.paused || g.tooSmall || g.session == nil {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionFullscreen) {
		g.fullscreen = !g.fullscreen
		g.session.Flags.Fullscreen = g.fullscreen
		return core.StepResult{State: g.State(), Changed: true}
	}

	switch {
	case in.Has(core.ActionRestart):
		g.session.Flags.Restart = true
		return g.rebuild(g.session.Restart)
	case in.Has(core.ActionSkip):
		g.session.Flags.Skip = true
		return g.rebuild(g.session.Skip)
	case in.Has(core.ActionNext):
		if !g.cleared {
			return core.StepResult{State: g.State()}
		}
		return g.rebuild(g.session.Next)
	}

	if g.cleared {
		// The level is done; activation continues to the next one.
		if in.Has(core.ActionActivate) {
			return g.rebuild(g.session.Next)
		}
		return core.StepResult{State: g.State()}
	}

	if g.moveCursor(in) {
		return core.StepResult{State: g.State(), Changed: true}
	}

	if in.Has(core.ActionActivate) {
		return g.activate(in.Tube)
	}

	return core.StepResult{State: g.State()}
}

// rebuild replaces the level through one of the session's level operations.
func (g *Game) rebuild(op func() error) core.StepResult {
	if err := op(); err != nil {
		g.err = err
		g.session = nil
		return core.StepResult{State: g.State(), Changed: true}
	}
	g.onLevelLoaded()
	return core.StepResult{State: g.State(), Changed: true}
}

// moveCursor handles arrow navigation over the tube grid.
func (g *Game) moveCursor(in core.InputFrame) bool {
	level := g.session.Level()
	cols := level.Columns()
	n := level.Len()
	if n == 0 {
		return false
	}

	next := g.cursor
	switch {
	case in.Has(core.ActionLeft):
		next = (g.cursor - 1 + n) % n
	case in.Has(core.ActionRight):
		next = (g.cursor + 1) % n
	case in.Has(core.ActionUp):
		if g.cursor-cols >= 0 {
			next = g.cursor - cols
		}
	case in.Has(core.ActionDown):
		if g.cursor+cols < n {
			next = g.cursor + cols
		}
	default:
		return false
	}

	g.cursor = next
	g.syncHover()
	return true
}

// activate feeds one tube activation into the engine.
func (g *Game) activate(tube int) core.StepResult {
	if tube == core.NoTube {
		tube = g.cursor
	}

	level := g.session.Level()
	for i := 0; i < level.Len(); i++ {
		level.Tube(i).Pressed = false
	}

	out := g.session.Activate(tube)
	if out.Kind == engine.OutcomeIgnored {
		return core.StepResult{State: g.State()}
	}

	g.cursor = tube
	g.syncHover()

	result := core.StepResult{Changed: true}
	if out.Kind == engine.OutcomeTransferred && g.session.Won() {
		g.cleared = true
		result.LevelCleared = true
	}
	result.State = g.State()
	return result
}

// HitTest maps a screen position to the tube drawn there.
func (g *Game) HitTest(x, y int) (int, bool) {
	for i, r := range g.cells {
		if r.Contains(x, y) {
			return i, true
		}
	}
	return 0, false
}

// Hover moves the cursor to a tube under the pointer.
func (g *Game) Hover(tube int) {
	if g.session == nil || g.session.Level().Tube(tube) == nil {
		return
	}
	g.cursor = tube
	g.syncHover()
}

// Press marks a tube as held down by the pointer until the next activation.
func (g *Game) Press(tube int) {
	if g.session == nil {
		return
	}
	if t := g.session.Level().Tube(tube); t != nil {
		t.Pressed = true
	}
}

// ShortcutTube maps a shortcut key to a tube of the current level.
func (g *Game) ShortcutTube(r rune) (int, bool) {
	if g.session == nil {
		return 0, false
	}
	level := g.session.Level()
	i, ok := ShortcutIndex(r, level.Columns())
	if !ok || i >= level.Len() {
		return 0, false
	}
	return i, true
}

// Flags returns the session's UI flags.
func (g *Game) Flags() engine.Flags {
	if g.session == nil {
		return engine.Flags{}
	}
	return g.session.Flags
}

// Fullscreen reports whether the player wants the alternate screen.
func (g *Game) Fullscreen() bool {
	return g.fullscreen
}

// Seed returns the seed of the current level.
func (g *Game) Seed() int64 {
	if g.session == nil {
		return 0
	}
	return g.session.Seed()
}

// Cleared reports whether the current level is solved.
func (g *Game) Cleared() bool {
	return g.cleared
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.session == nil {
		return core.GameState{GameOver: true}
	}
	return core.GameState{
		Score:      g.session.Solved(),
		Level:      g.session.LevelIndex(),
		Moves:      g.session.Moves(),
		Completion: g.session.Completion(),
		Paused:     g.paused || g.tooSmall,
	}
}
