package scene

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"
	colorful "github.com/lucasb-eyer/go-colorful"
	"github.com/pkg/errors"

	"github.com/lixenwraith/hero-motion/vmath"
)

// Camera is a perspective camera looking at the scene origin
type Camera struct {
	Position mgl64.Vec3
	FOV      float64 // vertical, degrees
	Near     float64
	Far      float64
}

// LightKind distinguishes ambient from positional lights
type LightKind uint8

const (
	LightAmbient LightKind = iota
	LightPoint
	LightSpot
)

// Light contributes brightness to materials
type Light struct {
	Kind      LightKind
	Position  mgl64.Vec3
	Intensity float64
	Color     string
}

// Stars is a deterministic background point field in a spherical shell
type Stars struct {
	Count  int
	Radius float64 // inner radius
	Depth  float64 // shell thickness
	Seed   int64
}

// Scene is the full static configuration of one animated layer
type Scene struct {
	Name    string
	Camera  Camera
	Lights  []Light
	Groups  []Group
	Stars   Stars
	Opacity float64 // layer opacity over the page background
}

// Count returns the number of bodies in the scene
func (s Scene) Count() int {
	n := 0
	for _, g := range s.Groups {
		n += g.Count()
	}
	return n
}

// Validate checks the configuration once at assembly time
// The animation path assumes a scene that passed Validate
func (s Scene) Validate() error {
	if err := s.validate(); err != nil {
		return errors.Wrapf(err, "scene %q", s.Name)
	}
	return nil
}

func (s Scene) validate() error {
	c := s.Camera
	if !vmath.Finite(c.Position.X(), c.Position.Y(), c.Position.Z(), c.FOV, c.Near, c.Far) {
		return errors.New("camera: non-finite parameter")
	}
	if c.FOV <= 0 || c.FOV >= 180 {
		return errors.Errorf("camera: fov %v outside (0, 180)", c.FOV)
	}
	if c.Near <= 0 || c.Near >= c.Far {
		return errors.Errorf("camera: need 0 < near < far, got near=%v far=%v", c.Near, c.Far)
	}
	if !vmath.Finite(s.Opacity) || s.Opacity < 0 || s.Opacity > 1 {
		return errors.Errorf("opacity %v outside [0, 1]", s.Opacity)
	}

	for i, l := range s.Lights {
		if !vmath.Finite(l.Intensity, l.Position.X(), l.Position.Y(), l.Position.Z()) || l.Intensity < 0 {
			return errors.Errorf("light %d: invalid intensity %v", i, l.Intensity)
		}
		if l.Color != "" {
			if _, err := colorful.Hex(l.Color); err != nil {
				return errors.Wrapf(err, "light %d: color %q", i, l.Color)
			}
		}
	}

	if s.Stars.Count < 0 {
		return errors.Errorf("stars: negative count %d", s.Stars.Count)
	}
	if s.Stars.Count > 0 && (!(s.Stars.Radius > 0) || s.Stars.Depth < 0) {
		return errors.Errorf("stars: need radius > 0 and depth >= 0, got %v/%v", s.Stars.Radius, s.Stars.Depth)
	}

	if s.Count() == 0 {
		return errors.New("no bodies")
	}
	for i, g := range s.Groups {
		if err := validateGroup(g, groupPath("", g, i)); err != nil {
			return err
		}
	}
	return nil
}

func validateGroup(g Group, path string) error {
	if !vmath.Finite(g.Position.X(), g.Position.Y(), g.Position.Z(), g.Rotation.X, g.Rotation.Y, g.Rotation.Z) {
		return errors.Errorf("%s: non-finite rest transform", path)
	}
	if f := g.Float; f != nil {
		if !vmath.Finite(f.Speed, f.RotationIntensity, f.FloatIntensity, f.FloatingRange[0], f.FloatingRange[1], f.Offset) {
			return errors.Errorf("%s: non-finite float parameter", path)
		}
	}
	for i, b := range g.Bodies {
		if err := validateBody(b, bodyPath(path, b, i)); err != nil {
			return err
		}
	}
	for i, sub := range g.Groups {
		if err := validateGroup(sub, groupPath(path, sub, i)); err != nil {
			return err
		}
	}
	return nil
}

func validateBody(b Body, path string) error {
	if !b.Shape.Valid() {
		return errors.Errorf("%s: unknown shape %d", path, b.Shape)
	}
	if b.Kind > KindStatic {
		return errors.Errorf("%s: unknown kind %d", path, b.Kind)
	}
	if !vmath.Finite(b.Base.X(), b.Base.Y(), b.Base.Z(), b.Rotation.X, b.Rotation.Y, b.Rotation.Z,
		b.Scale, b.RotationSpeed, b.Size, b.Tube) {
		return errors.Errorf("%s: non-finite parameter", path)
	}
	if b.Scale <= 0 {
		return errors.Errorf("%s: scale must be positive, got %v", path, b.Scale)
	}
	if b.Size <= 0 {
		return errors.Errorf("%s: size must be positive, got %v", path, b.Size)
	}
	if b.Shape == ShapeTorus {
		if b.Tube <= 0 || b.Tube >= b.Size {
			return errors.Errorf("%s: torus tube %v must be in (0, %v)", path, b.Tube, b.Size)
		}
		if b.Segments < 3 {
			return errors.Errorf("%s: torus needs at least 3 segments, got %d", path, b.Segments)
		}
	}

	m := b.Material
	if _, _, err := m.Colors(); err != nil {
		return errors.Wrap(err, path)
	}
	if !vmath.Finite(m.Opacity, m.EmissiveIntensity, m.Metalness, m.Roughness, m.Distort, m.DistortSpeed) {
		return errors.Errorf("%s: non-finite material parameter", path)
	}
	if m.Opacity < 0 || m.Opacity > 1 {
		return errors.Errorf("%s: opacity %v outside [0, 1]", path, m.Opacity)
	}
	if m.EmissiveIntensity < 0 || math.Abs(m.Distort) > 1 {
		return errors.Errorf("%s: emissive intensity must be >= 0 and |distort| <= 1", path)
	}
	return nil
}

func groupPath(parent string, g Group, i int) string {
	name := g.Name
	if name == "" {
		name = fmt.Sprintf("group[%d]", i)
	}
	if parent == "" {
		return name
	}
	return parent + "/" + name
}

func bodyPath(parent string, b Body, i int) string {
	name := b.Name
	if name == "" {
		name = fmt.Sprintf("%s[%d]", b.Shape, i)
	}
	return parent + "/" + name
}
