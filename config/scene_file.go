package config

import (
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/pkg/errors"

	"github.com/lixenwraith/hero-motion/motion"
	"github.com/lixenwraith/hero-motion/parameter"
	"github.com/lixenwraith/hero-motion/scene"
	"github.com/lixenwraith/hero-motion/vmath"
)

// Scene file defaults for omitted keys
const (
	defaultBodySize      = 1.0
	defaultTorusTube     = 0.02
	defaultTorusSegments = 100
)

type sceneFile struct {
	Name    string      `toml:"name"`
	Opacity *float64    `toml:"opacity"`
	Camera  cameraFile  `toml:"camera"`
	Lights  []lightFile `toml:"lights"`
	Stars   starsFile   `toml:"stars"`
	Groups  []groupFile `toml:"groups"`
}

type cameraFile struct {
	Position []float64 `toml:"position"`
	FOV      *float64  `toml:"fov"`
	Near     *float64  `toml:"near"`
	Far      *float64  `toml:"far"`
}

type lightFile struct {
	Kind      string    `toml:"kind"`
	Position  []float64 `toml:"position"`
	Intensity float64   `toml:"intensity"`
	Color     string    `toml:"color"`
}

type starsFile struct {
	Count  int     `toml:"count"`
	Radius float64 `toml:"radius"`
	Depth  float64 `toml:"depth"`
	Seed   int64   `toml:"seed"`
}

type floatFile struct {
	Speed             *float64  `toml:"speed"`
	RotationIntensity *float64  `toml:"rotation_intensity"`
	FloatIntensity    *float64  `toml:"float_intensity"`
	FloatingRange     []float64 `toml:"floating_range"`
	Offset            float64   `toml:"offset"`
}

type groupFile struct {
	Name     string      `toml:"name"`
	Float    *floatFile  `toml:"float"`
	Position []float64   `toml:"position"`
	Rotation []float64   `toml:"rotation"`
	Bodies   []bodyFile  `toml:"bodies"`
	Groups   []groupFile `toml:"groups"`
}

type bodyFile struct {
	Name          string    `toml:"name"`
	Kind          string    `toml:"kind"`
	Shape         string    `toml:"shape"`
	Size          *float64  `toml:"size"`
	Tube          *float64  `toml:"tube"`
	Segments      *int      `toml:"segments"`
	Position      []float64 `toml:"position"`
	Rotation      []float64 `toml:"rotation"`
	Scale         *float64  `toml:"scale"`
	RotationSpeed *float64  `toml:"rotation_speed"`

	Color             string   `toml:"color"`
	Emissive          string   `toml:"emissive"`
	EmissiveIntensity float64  `toml:"emissive_intensity"`
	Metalness         float64  `toml:"metalness"`
	Roughness         float64  `toml:"roughness"`
	Opacity           *float64 `toml:"opacity"`
	Transparent       bool     `toml:"transparent"`
	Wireframe         bool     `toml:"wireframe"`
	Distort           float64  `toml:"distort"`
	DistortSpeed      float64  `toml:"distort_speed"`
}

// LoadScene reads and validates a TOML scene description
func LoadScene(path string) (scene.Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return scene.Scene{}, errors.Wrap(err, "read scene file")
	}
	s, err := ParseScene(string(data))
	if err != nil {
		return scene.Scene{}, errors.Wrapf(err, "scene file %s", path)
	}
	return s, nil
}

// ParseScene decodes TOML text into a validated scene
// Omitted scale and rotation_speed default to 1, as in the source page
func ParseScene(data string) (scene.Scene, error) {
	var f sceneFile
	md, err := toml.Decode(data, &f)
	if err != nil {
		return scene.Scene{}, errors.Wrap(err, "decode")
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return scene.Scene{}, errors.Errorf("unknown key %q", undecoded[0].String())
	}

	s, err := f.build()
	if err != nil {
		return scene.Scene{}, err
	}
	if err := s.Validate(); err != nil {
		return scene.Scene{}, err
	}
	return s, nil
}

func (f sceneFile) build() (scene.Scene, error) {
	s := scene.Scene{
		Name:    f.Name,
		Opacity: orDefault(f.Opacity, 1),
		Stars: scene.Stars{
			Count:  f.Stars.Count,
			Radius: f.Stars.Radius,
			Depth:  f.Stars.Depth,
			Seed:   f.Stars.Seed,
		},
	}
	if s.Name == "" {
		s.Name = "custom"
	}

	camPos, err := vec3(f.Camera.Position, mgl64.Vec3{0, 0, parameter.HeroCameraZ}, "camera.position")
	if err != nil {
		return s, err
	}
	s.Camera = scene.Camera{
		Position: camPos,
		FOV:      orDefault(f.Camera.FOV, parameter.HeroCameraFOV),
		Near:     orDefault(f.Camera.Near, parameter.CameraNear),
		Far:      orDefault(f.Camera.Far, parameter.CameraFar),
	}

	for i, lf := range f.Lights {
		l, err := lf.build()
		if err != nil {
			return s, errors.Wrapf(err, "lights[%d]", i)
		}
		s.Lights = append(s.Lights, l)
	}

	for i, gf := range f.Groups {
		g, err := gf.build()
		if err != nil {
			return s, errors.Wrapf(err, "groups[%d]", i)
		}
		s.Groups = append(s.Groups, g)
	}
	return s, nil
}

func (lf lightFile) build() (scene.Light, error) {
	l := scene.Light{Intensity: lf.Intensity, Color: lf.Color}
	switch strings.ToLower(lf.Kind) {
	case "", "ambient":
		l.Kind = scene.LightAmbient
	case "point":
		l.Kind = scene.LightPoint
	case "spot":
		l.Kind = scene.LightSpot
	default:
		return l, errors.Errorf("unknown light kind %q", lf.Kind)
	}
	pos, err := vec3(lf.Position, mgl64.Vec3{}, "position")
	if err != nil {
		return l, err
	}
	l.Position = pos
	return l, nil
}

func (gf groupFile) build() (scene.Group, error) {
	g := scene.Group{Name: gf.Name}

	pos, err := vec3(gf.Position, mgl64.Vec3{}, "position")
	if err != nil {
		return g, err
	}
	rot, err := vec3(gf.Rotation, mgl64.Vec3{}, "rotation")
	if err != nil {
		return g, err
	}
	g.Position = pos
	g.Rotation = vmath.Euler{X: rot.X(), Y: rot.Y(), Z: rot.Z()}

	if ff := gf.Float; ff != nil {
		fl := motion.NewFloat(
			orDefault(ff.Speed, parameter.DefaultFloatSpeed),
			orDefault(ff.RotationIntensity, parameter.DefaultFloatRotationIntensity),
			orDefault(ff.FloatIntensity, parameter.DefaultFloatIntensity),
		)
		fl.Offset = ff.Offset
		switch len(ff.FloatingRange) {
		case 0:
		case 2:
			fl.FloatingRange = [2]float64{ff.FloatingRange[0], ff.FloatingRange[1]}
		default:
			return g, errors.Errorf("float.floating_range needs 2 values, got %d", len(ff.FloatingRange))
		}
		g.Float = &fl
	}

	for i, bf := range gf.Bodies {
		b, err := bf.build()
		if err != nil {
			return g, errors.Wrapf(err, "bodies[%d]", i)
		}
		g.Bodies = append(g.Bodies, b)
	}
	for i, sub := range gf.Groups {
		sg, err := sub.build()
		if err != nil {
			return g, errors.Wrapf(err, "groups[%d]", i)
		}
		g.Groups = append(g.Groups, sg)
	}
	return g, nil
}

func (bf bodyFile) build() (scene.Body, error) {
	b := scene.Body{
		Name:          bf.Name,
		Size:          orDefault(bf.Size, defaultBodySize),
		Scale:         orDefault(bf.Scale, 1),
		RotationSpeed: orDefault(bf.RotationSpeed, 1),
		Material: scene.Material{
			Color:             bf.Color,
			Emissive:          bf.Emissive,
			EmissiveIntensity: bf.EmissiveIntensity,
			Metalness:         bf.Metalness,
			Roughness:         bf.Roughness,
			Opacity:           orDefault(bf.Opacity, 1),
			Transparent:       bf.Transparent,
			Wireframe:         bf.Wireframe,
			Distort:           bf.Distort,
			DistortSpeed:      bf.DistortSpeed,
		},
	}

	var err error
	kind := bf.Kind
	if kind == "" {
		kind = scene.KindNode.String()
	}
	if b.Kind, err = scene.ParseKind(kind); err != nil {
		return b, err
	}

	shape := bf.Shape
	if shape == "" {
		shape = defaultShape(b.Kind).String()
	}
	if b.Shape, err = scene.ParseShape(shape); err != nil {
		return b, err
	}
	if b.Shape == scene.ShapeTorus {
		b.Tube = orDefault(bf.Tube, defaultTorusTube)
		b.Segments = defaultTorusSegments
		if bf.Segments != nil {
			b.Segments = *bf.Segments
		}
	}

	if b.Base, err = vec3(bf.Position, mgl64.Vec3{}, "position"); err != nil {
		return b, err
	}
	rot, err := vec3(bf.Rotation, mgl64.Vec3{}, "rotation")
	if err != nil {
		return b, err
	}
	b.Rotation = vmath.Euler{X: rot.X(), Y: rot.Y(), Z: rot.Z()}
	return b, nil
}

func defaultShape(k scene.BodyKind) scene.Shape {
	switch k {
	case scene.KindRing:
		return scene.ShapeTorus
	case scene.KindStatic:
		return scene.ShapeBox
	default:
		return scene.ShapeOctahedron
	}
}

func vec3(v []float64, def mgl64.Vec3, key string) (mgl64.Vec3, error) {
	switch len(v) {
	case 0:
		return def, nil
	case 3:
		return mgl64.Vec3{v[0], v[1], v[2]}, nil
	default:
		return def, errors.Errorf("%s needs 3 values, got %d", key, len(v))
	}
}

func orDefault[T any](p *T, def T) T {
	if p == nil {
		return def
	}
	return *p
}
