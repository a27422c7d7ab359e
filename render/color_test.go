package render

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/lixenwraith/hero-motion/parameter/visual"
	"github.com/lixenwraith/hero-motion/scene"
)

func TestLightingAmbientOnly(t *testing.T) {
	l := NewLighting([]scene.Light{
		{Kind: scene.LightAmbient, Intensity: 0.4},
		{Kind: scene.LightAmbient, Intensity: 0.2},
	})
	level, _, weight := l.At(mgl64.Vec3{1, 2, 3})
	if math.Abs(level-0.6) > 1e-12 || weight != 0 {
		t.Errorf("level %v weight %v", level, weight)
	}
}

func TestLightingFalloff(t *testing.T) {
	l := NewLighting([]scene.Light{
		{Kind: scene.LightPoint, Position: mgl64.Vec3{10, 10, 10}, Intensity: 1.5, Color: visual.NobelGold},
	})
	near, tint, weight := l.At(mgl64.Vec3{9, 9, 9})
	far, _, _ := l.At(mgl64.Vec3{-30, -30, -30})
	if near <= far {
		t.Errorf("near %v not brighter than far %v", near, far)
	}
	if weight <= 0 || weight > 0.35 {
		t.Errorf("tint weight %v out of range", weight)
	}
	if tint.Hex() != MustHex(visual.NobelGold).Hex() {
		t.Errorf("tint = %s", tint.Hex())
	}
}

func TestLightingBadColorFallsBack(t *testing.T) {
	l := NewLighting([]scene.Light{{Kind: scene.LightPoint, Intensity: 1, Color: "gold"}})
	_, tint, _ := l.At(mgl64.Vec3{})
	if tint.Hex() != "#ffffff" {
		t.Errorf("tint = %s, want white", tint.Hex())
	}
}

func TestSurfaceColor(t *testing.T) {
	bg := MustHex(visual.Background)
	wire := scene.Wire(visual.NobelGold, 0.5)

	lit := SurfaceColor(wire, 1, colorful.Color{}, 0, 1, bg)
	if lit.Hex() == bg.Hex() {
		t.Error("opaque material drew as background")
	}

	if c := SurfaceColor(wire, 1, colorful.Color{}, 0, 0, bg); c.Hex() != bg.Hex() {
		t.Errorf("zero layer opacity = %s, want background", c.Hex())
	}

	dark := SurfaceColor(wire, 0, colorful.Color{}, 0, 1, bg)
	plain := wire
	plain.EmissiveIntensity = 0
	black := SurfaceColor(plain, 0, colorful.Color{}, 0, 1, bg)
	if dark.R <= black.R {
		t.Error("emission added nothing in darkness")
	}

	bad := scene.Material{Color: "nope", Opacity: 1}
	if c := SurfaceColor(bad, 1, colorful.Color{}, 0, 1, bg); c != bg {
		t.Errorf("invalid material = %s, want background", c.Hex())
	}
}

func TestScaleColorClamps(t *testing.T) {
	c := ScaleColor(colorful.Color{R: 0.8, G: 0.5, B: 0.1}, 2)
	if c.R != 1 || c.G != 1 || math.Abs(c.B-0.2) > 1e-12 {
		t.Errorf("ScaleColor = %+v", c)
	}
}
