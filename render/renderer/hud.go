package renderer

import (
	"fmt"

	colorful "github.com/lucasb-eyer/go-colorful"
	"github.com/mattn/go-runewidth"

	"github.com/lixenwraith/hero-motion/parameter"
	"github.com/lixenwraith/hero-motion/parameter/visual"
	"github.com/lixenwraith/hero-motion/render"
)

// HUDRenderer draws key help on the left and live stats on the right of the bottom row
type HUDRenderer struct {
	text    colorful.Color
	accent  colorful.Color
	bg      colorful.Color
	visible bool
}

// NewHUDRenderer creates a visible HUD
func NewHUDRenderer() *HUDRenderer {
	return &HUDRenderer{
		text:    render.MustHex(visual.Zinc400),
		accent:  render.MustHex(visual.NobelGold),
		bg:      render.MustHex(visual.Background),
		visible: true,
	}
}

// SetVisible toggles the HUD
func (r *HUDRenderer) SetVisible(v bool) {
	r.visible = v
}

// IsVisible implements render.VisibilityToggle
func (r *HUDRenderer) IsVisible() bool {
	return r.visible
}

// StatusLine formats the right-hand stats segment
func StatusLine(ctx render.RenderContext) string {
	s := fmt.Sprintf("t=%.1fs  %3.0f%%  %.0f fps", ctx.Stats.Elapsed, ctx.Stats.Progress*100, ctx.Stats.FPS)
	if ctx.Paused {
		s = parameter.HUDPausedText + "  " + s
	}
	return s
}

// Render implements render.SystemRenderer
func (r *HUDRenderer) Render(ctx render.RenderContext, canvas *render.Canvas) {
	y := ctx.ScreenHeight - 1
	if y < parameter.TopMargin {
		return
	}
	for x := 0; x < ctx.ScreenWidth; x++ {
		canvas.Fill(x, y, ' ', r.text, r.bg)
	}

	status := StatusLine(ctx)
	statusX := ctx.ScreenWidth - runewidth.StringWidth(status)

	help := parameter.HUDHelpText
	// Help yields to stats on narrow screens
	if runewidth.StringWidth(help)+1 > statusX {
		help = runewidth.Truncate(help, max(statusX-1, 0), "…")
	}
	r.write(canvas, 0, y, help, r.text)

	fg := r.text
	if ctx.Paused {
		fg = r.accent
	}
	r.write(canvas, max(statusX, 0), y, status, fg)
}

func (r *HUDRenderer) write(canvas *render.Canvas, x, y int, s string, fg colorful.Color) {
	for _, ch := range s {
		canvas.Fill(x, y, ch, fg, r.bg)
		x += runewidth.RuneWidth(ch)
	}
}
