package scene

import (
	"math"
	"sort"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/pkg/errors"

	"github.com/lixenwraith/hero-motion/motion"
	"github.com/lixenwraith/hero-motion/parameter"
	"github.com/lixenwraith/hero-motion/parameter/visual"
	"github.com/lixenwraith/hero-motion/vmath"
)

// Preset names
const (
	PresetHero      = "hero"
	PresetTechStack = "techstack"
)

var presets = map[string]func() Scene{
	PresetHero:      Hero,
	PresetTechStack: TechStack,
}

// Preset returns a built-in scene by name
func Preset(name string) (Scene, error) {
	fn, ok := presets[name]
	if !ok {
		return Scene{}, errors.Errorf("unknown scene preset %q (have %v)", name, PresetNames())
	}
	return fn(), nil
}

// PresetNames lists built-in scenes, sorted
func PresetNames() []string {
	names := make([]string, 0, len(presets))
	for n := range presets {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

func techNode(name string, pos mgl64.Vec3, color string, scale float64) Body {
	m := Wire(color, 0.5)
	m.Metalness = 0.9
	m.Roughness = 0.1
	return Body{
		Name:          name,
		Kind:          KindNode,
		Shape:         ShapeOctahedron,
		Size:          1,
		Base:          pos,
		Scale:         scale,
		RotationSpeed: 1,
		Material:      m,
	}
}

func connectionRing(name string) Body {
	m := Material{
		Color:             visual.NobelGold,
		Emissive:          visual.NobelGold,
		EmissiveIntensity: 0.8,
		Opacity:           0.4,
		Transparent:       true,
	}
	return Body{
		Name:     name,
		Kind:     KindRing,
		Shape:    ShapeTorus,
		Size:     4,
		Tube:     0.02,
		Segments: 100,
		Rotation: vmath.Euler{X: parameter.RingBaseTilt},
		Scale:    1,
		Material: m,
	}
}

func sway(speed, rotationIntensity, floatIntensity float64) *motion.Float {
	f := motion.NewFloat(speed, rotationIntensity, floatIntensity)
	return &f
}

// Hero is the landing-page background: a central tech-node with two
// connection rings, and three satellite nodes on a faster sway
func Hero() Scene {
	return Scene{
		Name: PresetHero,
		Camera: Camera{
			Position: mgl64.Vec3{0, 0, parameter.HeroCameraZ},
			FOV:      parameter.HeroCameraFOV,
			Near:     parameter.CameraNear,
			Far:      parameter.CameraFar,
		},
		Lights: []Light{
			{Kind: LightAmbient, Intensity: 0.4},
			{Kind: LightPoint, Position: mgl64.Vec3{10, 10, 10}, Intensity: 1.5, Color: visual.NobelGold},
		},
		Groups: []Group{
			{
				Name:  "core",
				Float: sway(1.5, 0.2, 0.5),
				Bodies: []Body{
					techNode("hub", mgl64.Vec3{0, 0, 0}, visual.NobelGold, 1.2),
					connectionRing("ring-a"),
					connectionRing("ring-b"),
				},
			},
			{
				Name:  "satellites",
				Float: sway(2, 0.5, 1),
				Bodies: []Body{
					techNode("north-west", mgl64.Vec3{-4, 2, -3}, visual.Zinc500, 0.5),
					techNode("east", mgl64.Vec3{4, -1, -4}, visual.NobelGold, 0.7),
					techNode("south-west", mgl64.Vec3{-2, -3, -2}, visual.Zinc400, 0.4),
				},
			},
		},
		Stars:   Stars{Count: 800, Radius: 100, Depth: 50, Seed: 1},
		Opacity: 0.4,
	}
}

// TechStack is the skills-section scene: a wire cube with four orbiting
// spheres and a distorting inner cube, all on one sway
func TechStack() Scene {
	sphere := func(name string, pos mgl64.Vec3) Body {
		m := Solid(visual.NobelGold)
		m.Emissive = visual.NobelGold
		m.EmissiveIntensity = 1
		return Body{Name: name, Kind: KindStatic, Shape: ShapeSphere, Size: 0.2, Base: pos, Scale: 1, Material: m}
	}

	frame := Wire(visual.Charcoal, 0)
	frame.Emissive = ""
	frame.Metalness = 0.8
	frame.Roughness = 0.2

	data := Solid(visual.NobelGold)
	data.Metalness = 0.5
	data.Distort = 0.4
	data.DistortSpeed = 2

	return Scene{
		Name: PresetTechStack,
		Camera: Camera{
			Position: mgl64.Vec3{0, 0, parameter.TechStackCameraZ},
			FOV:      parameter.TechStackCameraFOV,
			Near:     parameter.CameraNear,
			Far:      parameter.CameraFar,
		},
		Lights: []Light{
			{Kind: LightAmbient, Intensity: 1.2},
			{Kind: LightSpot, Position: mgl64.Vec3{5, 5, 5}, Intensity: 1.5, Color: visual.NobelGold},
			{Kind: LightPoint, Position: mgl64.Vec3{-5, -5, -5}, Intensity: 0.5, Color: visual.White},
		},
		Groups: []Group{
			{
				Name:  "stack",
				Float: sway(2, 1, 0.5),
				Groups: []Group{
					{
						Name:     "tilt",
						Rotation: vmath.Euler{X: math.Pi / 6, Y: math.Pi / 6},
						Bodies: []Body{
							{Name: "backend", Kind: KindStatic, Shape: ShapeBox, Size: 1.5, Scale: 1, Material: frame},
							sphere("right", mgl64.Vec3{1.5, 0, 0}),
							sphere("left", mgl64.Vec3{-1.5, 0, 0}),
							sphere("top", mgl64.Vec3{0, 1.5, 0}),
							sphere("bottom", mgl64.Vec3{0, -1.5, 0}),
							{Name: "data", Kind: KindStatic, Shape: ShapeBox, Size: 0.8, Scale: 1, Material: data},
						},
					},
				},
			},
		},
		Opacity: 1,
	}
}
