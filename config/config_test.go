package config

import (
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/hero-motion/parameter"
	"github.com/lixenwraith/hero-motion/scene"
)

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
	if cfg.FPS != parameter.DefaultFPS || cfg.Scene != scene.PresetHero {
		t.Errorf("unexpected defaults: %+v", cfg)
	}
}

func TestLoadEmptyPath(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatal(err)
	}
	if cfg != Default() {
		t.Errorf("Load(\"\") = %+v, want defaults", cfg)
	}
}

func TestLoadOverridesDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "hero.toml")
	data := `
fps = 30
scene = "techstack"
color = "256"

[document]
rows = 120

[log]
max_size_mb = 2
`
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.FPS != 30 || cfg.Scene != scene.PresetTechStack || cfg.ColorMode != Color256 {
		t.Errorf("top-level overrides not applied: %+v", cfg)
	}
	if cfg.Document.Rows != 120 || cfg.Log.MaxSizeMB != 2 {
		t.Errorf("table overrides not applied: %+v", cfg)
	}
	// Untouched keys keep defaults
	if cfg.Log.Dir != parameter.DefaultLogDir || cfg.Log.File != parameter.DefaultLogFileName {
		t.Errorf("log defaults lost: %+v", cfg.Log)
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	if err == nil || !strings.Contains(err.Error(), "read config") {
		t.Errorf("err = %v", err)
	}
}

func TestParseRejects(t *testing.T) {
	tests := []struct {
		name string
		data string
		want string
	}{
		{"unknown key", `frames = 3`, "unknown key"},
		{"fps zero", `fps = 0`, "fps"},
		{"fps huge", `fps = 100000`, "fps"},
		{"preset", `scene = "about"`, "unknown scene preset"},
		{"color", `color = "cga"`, "color mode"},
		{"rows", "[document]\nrows = 0", "document rows"},
		{"syntax", `fps = `, "decode"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			err := Parse(tt.data, &cfg)
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error %q does not mention %q", err, tt.want)
			}
		})
	}
}

const heroSceneTOML = `
name = "file-hero"
opacity = 0.4

[camera]
position = [0.0, 0.0, 8.0]
fov = 45.0

[[lights]]
kind = "ambient"
intensity = 0.4

[[lights]]
kind = "point"
position = [10.0, 10.0, 10.0]
intensity = 1.5
color = "#C5A059"

[stars]
count = 200
radius = 100.0
depth = 50.0
seed = 7

[[groups]]
name = "core"
[groups.float]
speed = 1.5
rotation_intensity = 0.2
float_intensity = 0.5

[[groups.bodies]]
name = "hub"
position = [0.0, 0.0, 0.0]
color = "#C5A059"
emissive = "#C5A059"
emissive_intensity = 0.5
scale = 1.2
wireframe = true

[[groups.bodies]]
name = "ring"
kind = "ring"
color = "#C5A059"
opacity = 0.4
transparent = true
size = 4.0

[[groups]]
name = "satellites"
[groups.float]
speed = 2.0
offset = 3.0

[[groups.bodies]]
name = "east"
position = [4.0, -1.0, -4.0]
color = "#71717a"
scale = 0.7
rotation_speed = 1.5

[[groups.groups]]
name = "tilt"
rotation = [0.5, 0.5, 0.0]

[[groups.groups.bodies]]
name = "cube"
kind = "static"
color = "#1a1a1a"
size = 1.5
`

func TestParseScene(t *testing.T) {
	s, err := ParseScene(heroSceneTOML)
	if err != nil {
		t.Fatalf("ParseScene: %v", err)
	}

	if s.Name != "file-hero" || s.Opacity != 0.4 || s.Count() != 4 {
		t.Errorf("scene header = %q opacity %v count %d", s.Name, s.Opacity, s.Count())
	}
	if s.Camera.Near != parameter.CameraNear || s.Camera.Far != parameter.CameraFar {
		t.Errorf("camera defaults not applied: %+v", s.Camera)
	}
	if len(s.Lights) != 2 || s.Lights[1].Kind != scene.LightPoint || s.Lights[1].Position != (mgl64.Vec3{10, 10, 10}) {
		t.Errorf("lights = %+v", s.Lights)
	}
	if s.Stars.Count != 200 || s.Stars.Seed != 7 {
		t.Errorf("stars = %+v", s.Stars)
	}

	core := s.Groups[0]
	if core.Float == nil || core.Float.Speed != 1.5 || core.Float.RotationIntensity != 0.2 || core.Float.FloatIntensity != 0.5 {
		t.Fatalf("core float = %+v", core.Float)
	}
	hub := core.Bodies[0]
	if hub.Kind != scene.KindNode || hub.Shape != scene.ShapeOctahedron || hub.Scale != 1.2 || hub.RotationSpeed != 1 {
		t.Errorf("hub = %+v", hub)
	}
	if hub.Material.Opacity != 1 || !hub.Material.Wireframe {
		t.Errorf("hub material = %+v", hub.Material)
	}

	ring := core.Bodies[1]
	if ring.Shape != scene.ShapeTorus || ring.Tube != defaultTorusTube || ring.Segments != defaultTorusSegments {
		t.Errorf("ring defaults = %+v", ring)
	}

	sat := s.Groups[1]
	if sat.Float.Offset != 3 || sat.Float.RotationIntensity != parameter.DefaultFloatRotationIntensity {
		t.Errorf("satellite float = %+v", sat.Float)
	}
	if sat.Bodies[0].RotationSpeed != 1.5 {
		t.Errorf("rotation_speed = %v", sat.Bodies[0].RotationSpeed)
	}

	tilt := sat.Groups[0]
	if tilt.Rotation.X != 0.5 || tilt.Float != nil {
		t.Errorf("nested group = %+v", tilt)
	}
	if cube := tilt.Bodies[0]; cube.Kind != scene.KindStatic || cube.Shape != scene.ShapeBox || cube.Size != 1.5 {
		t.Errorf("cube = %+v", cube)
	}

	if _, err := scene.Mount(s); err != nil {
		t.Errorf("parsed scene does not mount: %v", err)
	}
}

func TestParseSceneMatchesSceneMotion(t *testing.T) {
	s, err := ParseScene(heroSceneTOML)
	if err != nil {
		t.Fatal(err)
	}
	m, err := scene.Mount(s)
	if err != nil {
		t.Fatal(err)
	}
	cmds := m.Frame(math.Pi / 3)
	if len(cmds) != 4 || cmds[0].Path != "core/hub" || cmds[3].Path != "satellites/tilt/cube" {
		t.Errorf("unexpected draw list: %d commands", len(cmds))
	}
}

func TestParseSceneFloatingRange(t *testing.T) {
	body := "[[groups.bodies]]\ncolor = \"#ffffff\"\n"
	tests := []struct {
		name string
		rng  string
		want [2]float64
		peak float64
	}{
		{"omitted", "", [2]float64{parameter.FloatRangeMin, parameter.FloatRangeMax}, 0.1},
		{"explicit zero", "floating_range = [0.0, 0.0]\n", [2]float64{0, 0}, 0},
		{"explicit", "floating_range = [0.0, 0.5]\n", [2]float64{0, 0.5}, 0.5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := ParseScene("[[groups]]\n[groups.float]\nspeed = 1.0\n" + tt.rng + body)
			if err != nil {
				t.Fatalf("ParseScene: %v", err)
			}
			fl := s.Groups[0].Float
			if fl == nil || fl.FloatingRange != tt.want {
				t.Fatalf("float = %+v, want range %v", fl, tt.want)
			}
			// τ = π/2 puts the raw swing at its peak
			if got := fl.Transform(2 * math.Pi).Position.Y(); math.Abs(got-tt.peak) > 1e-9 {
				t.Errorf("peak height = %v, want %v", got, tt.peak)
			}
		})
	}
}

func TestParseSceneRejects(t *testing.T) {
	base := "[camera]\nfov = 45.0\n"
	tests := []struct {
		name string
		data string
		want string
	}{
		{"unknown key", base + "[[groups]]\nname = \"g\"\nspin = 1\n", "unknown key"},
		{"no bodies", base, "no bodies"},
		{"bad shape", base + "[[groups]]\n[[groups.bodies]]\nshape = \"cone\"\ncolor = \"#ffffff\"\n", "groups[0]: bodies[0]: unknown shape"},
		{"bad kind", base + "[[groups]]\n[[groups.bodies]]\nkind = \"orbit\"\ncolor = \"#ffffff\"\n", "unknown body kind"},
		{"short vector", base + "[[groups]]\n[[groups.bodies]]\nposition = [1.0, 2.0]\ncolor = \"#ffffff\"\n", "position needs 3 values"},
		{"bad light", base + "[[lights]]\nkind = \"laser\"\n", "unknown light kind"},
		{"bad range", base + "[[groups]]\n[groups.float]\nfloating_range = [1.0]\n[[groups.bodies]]\ncolor = \"#ffffff\"\n", "floating_range"},
		{"negative scale", base + "[[groups]]\n[[groups.bodies]]\nscale = -1.0\ncolor = \"#ffffff\"\n", "scale must be positive"},
		{"missing color", base + "[[groups]]\n[[groups.bodies]]\nname = \"x\"\n", "color"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseScene(tt.data)
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error %q does not mention %q", err, tt.want)
			}
		})
	}
}

func TestResolveScene(t *testing.T) {
	cfg := Default()
	s, err := cfg.ResolveScene()
	if err != nil || s.Name != scene.PresetHero {
		t.Fatalf("preset resolve = %q, %v", s.Name, err)
	}

	path := filepath.Join(t.TempDir(), "scene.toml")
	if err := os.WriteFile(path, []byte(heroSceneTOML), 0644); err != nil {
		t.Fatal(err)
	}
	cfg.SceneFile = path
	cfg.Scene = "ignored-when-file-set"
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate with scene file: %v", err)
	}
	s, err = cfg.ResolveScene()
	if err != nil || s.Name != "file-hero" {
		t.Fatalf("file resolve = %q, %v", s.Name, err)
	}

	cfg.SceneFile = filepath.Join(t.TempDir(), "missing.toml")
	if _, err := cfg.ResolveScene(); err == nil {
		t.Error("missing scene file accepted")
	}
}

func TestShippedConfigs(t *testing.T) {
	cfg, err := Load(filepath.Join("..", "configs", "hero.toml"))
	if err != nil {
		t.Fatalf("hero.toml: %v", err)
	}
	if cfg != Default() {
		t.Errorf("hero.toml drifted from defaults: %+v", cfg)
	}

	s, err := LoadScene(filepath.Join("..", "configs", "orbit.toml"))
	if err != nil {
		t.Fatalf("orbit.toml: %v", err)
	}
	m, err := scene.Mount(s)
	if err != nil {
		t.Fatalf("orbit.toml does not mount: %v", err)
	}
	if m.Bodies() != 4 {
		t.Errorf("orbit bodies = %d, want 4", m.Bodies())
	}
}
