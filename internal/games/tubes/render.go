package tubes

import (
	"fmt"
	"math"

	"github.com/vovakirdan/tui-tubes/internal/core"
	"github.com/vovakirdan/tui-tubes/internal/games/tubes/engine"
)

const (
	tubeWidth = 6 // Border, four liquid columns, border
	tubeGap   = 1 // Columns between neighboring tubes
	hudHeight = 2
	footerH   = 1
)

// Resize updates the screen dimensions without touching the level.
func (g *Game) Resize(width, height int) {
	g.screenW = width
	g.screenH = height
	if g.session != nil {
		g.layout()
	}
}

// cellHeight is one tube box plus its label row.
func (g *Game) cellHeight() int {
	return g.variant.Capacity + 2 + 1
}

// layout places the tube grid on screen and records the tube areas.
func (g *Game) layout() {
	level := g.session.Level()
	rows, cols := level.Rows(), level.Columns()

	needW := cols*tubeWidth + (cols-1)*tubeGap
	needH := hudHeight + rows*g.cellHeight() + footerH
	g.tooSmall = g.screenW < needW || g.screenH < needH
	if g.tooSmall {
		g.cells = nil
		return
	}

	area := core.NewRect(0, hudHeight, g.screenW, g.screenH-hudHeight-footerH)
	g.cells = core.GridCells(area, rows, cols, tubeWidth, g.cellHeight(), tubeGap)
}

// Render draws the game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.session == nil {
		g.renderError(dst)
		return
	}
	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}

	g.renderHUD(dst)

	level := g.session.Level()
	for i, cell := range g.cells {
		if t := level.Tube(i); t != nil {
			renderTube(dst, t, cell)
		}
	}

	dst.DrawTextCentered(dst.Height()-1, "arrows move  enter/keys pour  F5 restart  F6 skip  p pause  esc menu", core.ColorDim)

	switch {
	case g.paused:
		g.renderBanner(dst, "PAUSED", "p to resume")
	case g.cleared:
		g.renderBanner(dst, "LEVEL COMPLETE", fmt.Sprintf("%d moves  -  enter for next level", g.session.Moves()))
	}
}

// renderHUD draws the title, level and progress lines.
func (g *Game) renderHUD(dst *core.Screen) {
	dst.DrawTextWithColor(1, 0, g.Title(), core.ColorHighlight)

	levelStr := fmt.Sprintf("Level %d", g.session.LevelIndex()+1)
	dst.DrawText(dst.Width()-len(levelStr)-1, 0, levelStr)

	pct := int(math.Floor(g.session.Completion() * 100))
	status := fmt.Sprintf("Moves: %d   Complete: %d%%   Solved: %d", g.session.Moves(), pct, g.session.Solved())
	dst.DrawTextWithColor(1, 1, status, core.ColorDim)
}

// renderTube draws one tube box, its liquid and its label.
func renderTube(dst *core.Screen, t *engine.Tube, cell core.Rect) {
	box := core.NewRect(cell.X, cell.Y, cell.W, cell.H-1)

	frame, heavy := core.ColorFrame, false
	switch {
	case t.Selected:
		frame, heavy = core.ColorHighlight, true
	case t.Pressed:
		frame, heavy = core.ColorFrame, true
	case t.Hovered:
		frame = core.ColorHighlight
	}
	dst.DrawBox(box, frame, heavy)

	inner := box.Inset(1)
	segments := t.Segments()
	total := t.Amount()
	for k := 0; k < inner.H; k++ {
		y := inner.Bottom() - 1 - k
		mid := float64(k) + 0.5

		if c, ok := colorAt(segments, mid); ok {
			dst.DrawHLine(inner.X, y, inner.W, '█', core.LiquidColor(int(c)))
		} else if total > float64(k) {
			top, _ := t.Top()
			dst.DrawHLine(inner.X, y, inner.W, '▄', core.LiquidColor(int(top.Color)))
		}
	}

	label := " "
	if t.Shortcut != 0 {
		label = string(t.Shortcut)
	}
	if !t.IsEmpty() {
		label += fmt.Sprintf("%4d%%", int(math.Floor(t.CompletionFraction()*100)))
	}
	labelColor := core.ColorDim
	if t.Hovered || t.Selected {
		labelColor = core.ColorHighlight
	}
	dst.DrawTextWithColor(cell.X, box.Bottom(), label, labelColor)
}

// colorAt returns the color of the segment covering height h.
func colorAt(segments []engine.Segment, h float64) (engine.Color, bool) {
	acc := 0.0
	for _, s := range segments {
		acc += s.Amount
		if h < acc {
			return s.Color, true
		}
	}
	return 0, false
}

// renderBanner draws a centered two-line message box.
func (g *Game) renderBanner(dst *core.Screen, title, hint string) {
	w := max(len(title), len(hint)) + 4
	h := 4
	r := core.NewRect((dst.Width()-w)/2, (dst.Height()-h)/2, w, h)

	dst.DrawRect(r, ' ', core.ColorDefault)
	dst.DrawBox(r, core.ColorSuccess, true)
	dst.DrawTextCentered(r.Y+1, title, core.ColorSuccess)
	dst.DrawTextCentered(r.Y+2, hint, core.ColorDefault)
}

// renderTooSmall shows a "window too small" message.
func (g *Game) renderTooSmall(dst *core.Screen) {
	y := g.screenH / 2
	dst.DrawTextCentered(y, "Window too small", core.ColorDefault)
	dst.DrawTextCentered(y+1, "Please resize terminal", core.ColorDim)
}

// renderError shows why no level could be built.
func (g *Game) renderError(dst *core.Screen) {
	y := dst.Height() / 2
	dst.DrawTextCentered(y, "Cannot start level", core.ColorRed)
	if g.err != nil {
		dst.DrawTextCentered(y+1, g.err.Error(), core.ColorDim)
	}
	dst.DrawTextCentered(y+3, "esc to go back", core.ColorDim)
}
