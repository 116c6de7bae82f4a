package simon

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/tui-simon/internal/core"
)

const (
	hudHeight    = 3 // title, status/score line, spacer
	footerHeight = 2 // phase hint, spacer
)

// gaps returns the horizontal and vertical spacing between pads.
// Terminal cells are about twice as tall as wide, so rows get half the gap.
func (g *Game) gaps() (int, int) {
	gx := g.cfg.Board.Gap
	return gx, gx / 2
}

// minSize returns the smallest screen that fits the board and HUD.
func (g *Game) minSize() (int, int) {
	gx, gy := g.gaps()
	w := 2*g.cfg.Board.PadWidth + gx
	h := hudHeight + 2*g.cfg.Board.PadHeight + gy + footerHeight
	return core.Max(w, 30), h
}

// padRects lays out the 2x2 grid: green/red on top, yellow/blue below.
func (g *Game) padRects() [SignalCount]core.Rect {
	pw, ph := g.cfg.Board.PadWidth, g.cfg.Board.PadHeight
	gx, gy := g.gaps()

	boardW := 2*pw + gx
	x0 := (g.screenW - boardW) / 2
	y0 := hudHeight

	return [SignalCount]core.Rect{
		Green:  core.NewRect(x0, y0, pw, ph),
		Red:    core.NewRect(x0+pw+gx, y0, pw, ph),
		Yellow: core.NewRect(x0, y0+ph+gy, pw, ph),
		Blue:   core.NewRect(x0+pw+gx, y0+ph+gy, pw, ph),
	}
}

// Render draws the game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}

	g.renderHUD(dst)

	rects := g.padRects()
	for _, sig := range Signals() {
		g.renderPad(dst, sig, rects[sig])
	}

	hintY := rects[Blue].Bottom() + 1
	dst.DrawTextCentered(hintY, g.hint(), core.ColorWhite)
	if controls := g.Controls(); hintY+1 < g.screenH && len(controls) <= g.screenW {
		dst.DrawTextCentered(hintY+1, controls, core.ColorGray)
	}

	switch {
	case g.paused:
		g.drawOverlay(dst, "PAUSED", fmt.Sprintf("Press %s to resume", keyLabel(g.cfg.Keys.Pause)))
	case g.board.Flashing():
		g.drawOverlay(dst, "GAME OVER", "Score "+g.board.Score(ScoreCurrent))
	}
}

// renderTooSmall shows a "window too small" message.
func (g *Game) renderTooSmall(dst *core.Screen) {
	y := g.screenH / 2
	dst.DrawTextCentered(y, "Window too small", core.ColorDefault)
	minW, minH := g.minSize()
	dst.DrawTextCentered(y+1, fmt.Sprintf("Need at least %dx%d", minW, minH), core.ColorGray)
}

// renderHUD draws the title, status lamp and scores.
func (g *Game) renderHUD(dst *core.Screen) {
	dst.DrawTextCentered(0, "S I M O N", core.ColorBrightWhite)

	lamp, lampColor := "● STOP", core.ColorBrightRed
	if g.board.Status() == StatusGo {
		lamp, lampColor = "● GO", core.ColorBrightGreen
	}
	scores := fmt.Sprintf("SCORE %s   BEST %s", g.board.Score(ScoreCurrent), g.board.Score(ScoreHigh))

	line := len([]rune(lamp)) + 4 + len(scores)
	x := (g.screenW - line) / 2
	dst.DrawTextColored(x, 1, lamp, lampColor)
	dst.DrawTextColored(x+len([]rune(lamp))+4, 1, scores, core.ColorWhite)
}

// renderPad draws one pad, filled bright while lit.
func (g *Game) renderPad(dst *core.Screen, sig Signal, r core.Rect) {
	lit := g.board.Lit(sig)

	color := sig.Color()
	fill := g.cfg.Board.DimRune()
	if lit {
		color = color.Bright()
		fill = g.cfg.Board.LitRune()
	}

	dst.DrawBox(r, color)
	dst.DrawRect(r.Inset(1), fill, color)

	label := keyLabel(g.cfg.Keys.Pads()[sig])
	if label == "" {
		return
	}
	cx, cy := r.Center()
	labelColor := core.ColorBrightWhite
	if lit {
		labelColor = core.ColorDefault
	}
	dst.DrawTextColored(cx-len([]rune(label))/2, cy, label, labelColor)
}

// hint describes what the operator should do right now.
func (g *Game) hint() string {
	switch g.engine.Phase() {
	case PhaseIdle:
		return fmt.Sprintf("Press %s to start", keyLabel(g.cfg.Keys.Start))
	case PhaseArmed:
		return "Get ready..."
	case PhasePlayback:
		return "Watch..."
	case PhaseAwaitingInput:
		return fmt.Sprintf("Your turn  %d/%d", len(g.engine.Progress()), len(g.engine.Sequence()))
	case PhaseEvaluating:
		return "Well done!"
	case PhaseGameOver:
		return fmt.Sprintf("Press %s to play again", keyLabel(g.cfg.Keys.Start))
	default:
		return ""
	}
}

// drawOverlay draws a centered text box over the board.
func (g *Game) drawOverlay(dst *core.Screen, lines ...string) {
	maxLen := 0
	for _, line := range lines {
		maxLen = core.Max(maxLen, len([]rune(line)))
	}

	boxW := maxLen + 4
	boxH := len(lines) + 2
	box := core.NewRect((g.screenW-boxW)/2, (g.screenH-boxH)/2, boxW, boxH)

	dst.DrawRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box, core.ColorBrightWhite)
	for i, line := range lines {
		dst.DrawTextCentered(box.Y+1+i, line, core.ColorBrightWhite)
	}
}

// Controls returns a one-line summary of the configured keys.
func (g *Game) Controls() string {
	var pads []string
	for _, keys := range g.cfg.Keys.Pads() {
		if label := keyLabel(keys); label != "" {
			pads = append(pads, label)
		}
	}

	parts := []string{strings.Join(pads, "/") + ": Pads"}
	for _, c := range []struct {
		keys []string
		name string
	}{
		{g.cfg.Keys.Start, "Start"},
		{g.cfg.Keys.Pause, "Pause"},
		{g.cfg.Keys.Back, "Back"},
		{g.cfg.Keys.Quit, "Quit"},
	} {
		if label := keyLabel(c.keys); label != "" {
			parts = append(parts, label+": "+c.name)
		}
	}
	return strings.Join(parts, " | ")
}

// keyLabel renders the first key of a binding for on-screen hints.
func keyLabel(keys []string) string {
	if len(keys) == 0 {
		return ""
	}
	k := keys[0]
	switch k {
	case "enter":
		return "Enter"
	case "esc":
		return "Esc"
	case " ":
		return "Space"
	}
	return strings.ToUpper(k)
}
