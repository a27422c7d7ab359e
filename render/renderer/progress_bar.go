package renderer

import (
	"math"

	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/lixenwraith/hero-motion/parameter/visual"
	"github.com/lixenwraith/hero-motion/render"
)

// ProgressBarRenderer draws the scroll indicator across the top row
type ProgressBarRenderer struct {
	fill  colorful.Color
	track colorful.Color
}

// NewProgressBarRenderer creates the bar with the accent palette
func NewProgressBarRenderer() *ProgressBarRenderer {
	bg := render.MustHex(visual.Background)
	return &ProgressBarRenderer{
		fill:  render.MustHex(visual.NobelGold),
		track: bg.BlendRgb(render.MustHex(visual.Zinc500), visual.BarTrackAlpha),
	}
}

// Render implements render.SystemRenderer
func (r *ProgressBarRenderer) Render(ctx render.RenderContext, canvas *render.Canvas) {
	start, end := ctx.Indicator.Span(float64(ctx.ScreenWidth))
	for x := 0; x < ctx.ScreenWidth; x++ {
		// Share of this cell inside [start, end)
		cover := math.Min(end, float64(x+1)) - math.Max(start, float64(x))
		switch {
		case cover >= 1:
			canvas.Fill(x, 0, visual.BarEighths[8], r.fill, r.fill)
		case cover > 0:
			eighths := int(math.Round(cover * 8))
			canvas.Fill(x, 0, visual.BarEighths[eighths], r.fill, r.track)
		default:
			canvas.Fill(x, 0, ' ', r.track, r.track)
		}
	}
}
