package render

import (
	"math"

	"github.com/gdamore/tcell/v2"
	"github.com/go-gl/mathgl/mgl64"
	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/lixenwraith/hero-motion/scene"
)

// Lighting is a flattened light list with parsed colours
type Lighting struct {
	ambient   float64
	positions []mgl64.Vec3
	levels    []float64
	tints     []colorful.Color
}

// NewLighting parses a scene's lights; invalid colours fall back to white
func NewLighting(lights []scene.Light) Lighting {
	var l Lighting
	white := colorful.Color{R: 1, G: 1, B: 1}
	for _, light := range lights {
		if light.Kind == scene.LightAmbient {
			l.ambient += light.Intensity
			continue
		}
		tint := white
		if light.Color != "" {
			if c, err := colorful.Hex(light.Color); err == nil {
				tint = c
			}
		}
		l.positions = append(l.positions, light.Position)
		l.levels = append(l.levels, light.Intensity)
		l.tints = append(l.tints, tint)
	}
	return l
}

// At returns brightness and a tint colour for a surface point
// Positional lights fall off with distance; tint weight is the positional share
func (l Lighting) At(p mgl64.Vec3) (level float64, tint colorful.Color, tintWeight float64) {
	level = l.ambient
	var positional float64
	for i, pos := range l.positions {
		d := pos.Sub(p).Len()
		contrib := l.levels[i] / (1 + d*d/400)
		if positional == 0 {
			tint = l.tints[i]
		} else {
			tint = tint.BlendRgb(l.tints[i], contrib/(positional+contrib))
		}
		positional += contrib
	}
	level += positional * 0.5
	if level > 0 {
		tintWeight = math.Min(0.35, positional*0.5/level*0.35)
	}
	return level, tint, tintWeight
}

// SurfaceColor combines base, light, emission and opacity over bg
func SurfaceColor(m scene.Material, level float64, tint colorful.Color, tintWeight, layerOpacity float64, bg colorful.Color) colorful.Color {
	base, emissive, err := m.Colors()
	if err != nil {
		// Unvalidated material; draw nothing visible
		return bg
	}

	lit := base
	if tintWeight > 0 {
		lit = lit.BlendRgb(tint, tintWeight)
	}

	// Metals reflect less diffuse light, rough surfaces spread it
	diffuse := level * (1 - 0.5*m.Metalness) * (0.6 + 0.4*m.Roughness)
	if !m.Wireframe {
		diffuse += 0.2
	}

	c := colorful.Color{
		R: lit.R*diffuse + emissive.R*m.EmissiveIntensity,
		G: lit.G*diffuse + emissive.G*m.EmissiveIntensity,
		B: lit.B*diffuse + emissive.B*m.EmissiveIntensity,
	}.Clamped()

	alpha := m.Opacity * layerOpacity
	return bg.BlendRgb(c, alpha)
}

// ToTcell converts to a 24-bit tcell colour; tcell downsamples for 256-colour terminals
func ToTcell(c colorful.Color) tcell.Color {
	r, g, b := c.Clamped().RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}

// ScaleColor multiplies each channel by k and clamps
func ScaleColor(c colorful.Color, k float64) colorful.Color {
	return colorful.Color{R: c.R * k, G: c.G * k, B: c.B * k}.Clamped()
}

func MustHex(s string) colorful.Color {
	c, err := colorful.Hex(s)
	if err != nil {
		panic(err)
	}
	return c
}
