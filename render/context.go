package render

import (
	"github.com/lixenwraith/hero-motion/engine"
	"github.com/lixenwraith/hero-motion/parameter"
	"github.com/lixenwraith/hero-motion/scene"
	"github.com/lixenwraith/hero-motion/scroll"
	"github.com/lixenwraith/hero-motion/status"
)

// RenderContext provides frame state for renderers, passed by value
type RenderContext struct {
	// Time state
	Elapsed float64
	Delta   float64
	Paused  bool

	// Screen dimensions (terminal size)
	ScreenWidth  int
	ScreenHeight int

	// Scene viewport between the progress bar and the HUD
	SceneTop    int
	SceneHeight int

	Projector Projector
	Commands  []scene.DrawCommand
	Indicator scroll.Indicator
	Stats     status.Snapshot
}

// NewRenderContext lays out the screen and builds the projector for one frame
func NewRenderContext(frame engine.Frame, cam scene.Camera, width, height int, cmds []scene.DrawCommand, ind scroll.Indicator, stats status.Snapshot) RenderContext {
	top := parameter.TopMargin
	sceneHeight := max(height-parameter.TopMargin-parameter.BottomMargin, 1)

	return RenderContext{
		Elapsed: frame.Elapsed,
		Delta:   frame.Delta,
		Paused:  stats.Paused,

		ScreenWidth:  width,
		ScreenHeight: height,

		SceneTop:    top,
		SceneHeight: sceneHeight,

		Projector: NewProjector(cam, top, width, sceneHeight),
		Commands:  cmds,
		Indicator: ind,
		Stats:     stats,
	}
}
