package scene

import (
	colorful "github.com/lucasb-eyer/go-colorful"
	"github.com/pkg/errors"
)

// Material is the colour description handed to the render boundary
// Color is the body's colour tag; motion never reads it
type Material struct {
	Color             string
	Emissive          string
	EmissiveIntensity float64
	Metalness         float64
	Roughness         float64
	Opacity           float64
	Transparent       bool
	Wireframe         bool

	// Distort displaces surface vertices radially, DistortSpeed in rad/s
	Distort      float64
	DistortSpeed float64
}

// Wire returns a wireframe material glowing in its own colour
func Wire(color string, emissiveIntensity float64) Material {
	return Material{
		Color:             color,
		Emissive:          color,
		EmissiveIntensity: emissiveIntensity,
		Opacity:           1,
		Wireframe:         true,
	}
}

// Solid returns an opaque shaded material
func Solid(color string) Material {
	return Material{Color: color, Opacity: 1}
}

// Colors parses the base and emissive colours
// Empty Emissive means no emission (black)
func (m Material) Colors() (base, emissive colorful.Color, err error) {
	base, err = colorful.Hex(m.Color)
	if err != nil {
		return base, emissive, errors.Wrapf(err, "color %q", m.Color)
	}
	if m.Emissive == "" {
		return base, colorful.Color{}, nil
	}
	emissive, err = colorful.Hex(m.Emissive)
	if err != nil {
		return base, emissive, errors.Wrapf(err, "emissive %q", m.Emissive)
	}
	return base, emissive, nil
}
