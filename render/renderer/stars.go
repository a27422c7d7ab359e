package renderer

import (
	"math"
	"math/rand/v2"

	"github.com/go-gl/mathgl/mgl64"
	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/lixenwraith/hero-motion/parameter/visual"
	"github.com/lixenwraith/hero-motion/render"
	"github.com/lixenwraith/hero-motion/scene"
)

// Twinkle rate in radians per second and the brightness swing around 1
const (
	starTwinkleRate  = 1.0
	starTwinkleDepth = 0.35
)

type star struct {
	pos   mgl64.Vec3
	phase float64
	size  float64 // 0..1, picks the glyph
}

// StarsRenderer draws a fixed point field in a spherical shell around the origin
type StarsRenderer struct {
	stars   []star
	color   colorful.Color
	bg      colorful.Color
	opacity float64
}

// NewStarsRenderer generates the field once; equal seeds give equal fields
func NewStarsRenderer(cfg scene.Stars, layerOpacity float64) *StarsRenderer {
	seed := uint64(cfg.Seed)
	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))

	r := &StarsRenderer{
		stars:   make([]star, cfg.Count),
		color:   render.MustHex(visual.Stone200),
		bg:      render.MustHex(visual.Background),
		opacity: layerOpacity,
	}
	for i := range r.stars {
		// Normalised gaussian gives a uniform direction
		dir := mgl64.Vec3{rng.NormFloat64(), rng.NormFloat64(), rng.NormFloat64()}
		if dir.Len() == 0 {
			dir = mgl64.Vec3{0, 0, -1}
		}
		radius := cfg.Radius + cfg.Depth*rng.Float64()
		r.stars[i] = star{
			pos:   dir.Normalize().Mul(radius),
			phase: rng.Float64() * 2 * math.Pi,
			size:  rng.Float64(),
		}
	}
	return r
}

// Len returns the number of generated stars
func (r *StarsRenderer) Len() int {
	return len(r.stars)
}

// Render implements render.SystemRenderer
func (r *StarsRenderer) Render(ctx render.RenderContext, canvas *render.Canvas) {
	bottom := float64(ctx.SceneTop + ctx.SceneHeight)
	for _, s := range r.stars {
		x, y, depth, ok := ctx.Projector.Project(s.pos)
		if !ok || y < float64(ctx.SceneTop) || y >= bottom {
			continue
		}

		twinkle := 1 + starTwinkleDepth*math.Sin(ctx.Elapsed*starTwinkleRate+s.phase)
		level := math.Min(1, twinkle*(0.4+0.6*s.size))
		glyph := visual.StarGlyphs[min(int(level*float64(len(visual.StarGlyphs))), len(visual.StarGlyphs)-1)]

		fg := r.bg.BlendRgb(render.ScaleColor(r.color, level), r.opacity)
		canvas.Plot(int(math.Floor(x)), int(math.Floor(y)), depth, glyph, fg)
	}
}
