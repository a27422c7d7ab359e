package config

import (
	"os"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"

	"github.com/lixenwraith/hero-motion/parameter"
	"github.com/lixenwraith/hero-motion/scene"
)

// Color modes accepted by the terminal host
const (
	ColorAuto      = "auto"
	ColorTrueColor = "truecolor"
	Color256       = "256"
)

// Config is the host program configuration
type Config struct {
	FPS       int            `toml:"fps"`
	Scene     string         `toml:"scene"`
	SceneFile string         `toml:"scene_file"`
	ColorMode string         `toml:"color"`
	Debug     bool           `toml:"debug"`
	Document  DocumentConfig `toml:"document"`
	Log       LogConfig      `toml:"log"`
}

// DocumentConfig sizes the virtual page the host scrolls through
type DocumentConfig struct {
	Rows int `toml:"rows"`
}

// LogConfig controls the debug log file
type LogConfig struct {
	Dir       string `toml:"dir"`
	File      string `toml:"file"`
	MaxSizeMB int    `toml:"max_size_mb"`
}

// Default returns the built-in configuration
func Default() Config {
	return Config{
		FPS:       parameter.DefaultFPS,
		Scene:     scene.PresetHero,
		ColorMode: ColorAuto,
		Document:  DocumentConfig{Rows: parameter.DefaultDocumentRows},
		Log: LogConfig{
			Dir:       parameter.DefaultLogDir,
			File:      parameter.DefaultLogFileName,
			MaxSizeMB: parameter.DefaultLogMaxSizeMB,
		},
	}
}

// Load reads a TOML file over the defaults
// Missing file at path is an error; an empty path returns defaults
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, errors.Wrap(err, "read config")
	}
	if err := Parse(string(data), &cfg); err != nil {
		return cfg, errors.Wrapf(err, "config %s", path)
	}
	return cfg, nil
}

// Parse decodes TOML text into cfg, keeping fields the text does not set
func Parse(data string, cfg *Config) error {
	md, err := toml.Decode(data, cfg)
	if err != nil {
		return errors.Wrap(err, "decode")
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return errors.Errorf("unknown key %q", undecoded[0].String())
	}
	return cfg.Validate()
}

// Validate checks ranges and enumerations
func (c Config) Validate() error {
	if c.FPS <= 0 || c.FPS > parameter.MaxFPS {
		return errors.Errorf("fps %d outside [1, %d]", c.FPS, parameter.MaxFPS)
	}
	if c.SceneFile == "" {
		if _, err := scene.Preset(c.Scene); err != nil {
			return err
		}
	}
	switch c.ColorMode {
	case ColorAuto, ColorTrueColor, Color256:
	default:
		return errors.Errorf("color mode %q not one of auto, truecolor, 256", c.ColorMode)
	}
	if c.Document.Rows <= 0 {
		return errors.Errorf("document rows must be positive, got %d", c.Document.Rows)
	}
	if c.Log.MaxSizeMB <= 0 {
		return errors.Errorf("log max_size_mb must be positive, got %d", c.Log.MaxSizeMB)
	}
	return nil
}

// ResolveScene returns the configured scene: the scene file when set,
// otherwise the named preset
func (c Config) ResolveScene() (scene.Scene, error) {
	if c.SceneFile != "" {
		return LoadScene(c.SceneFile)
	}
	return scene.Preset(c.Scene)
}
