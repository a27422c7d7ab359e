package main

import (
	"context"
	"log"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/hero-motion/engine"
	"github.com/lixenwraith/hero-motion/parameter"
	"github.com/lixenwraith/hero-motion/render"
	"github.com/lixenwraith/hero-motion/render/renderer"
	"github.com/lixenwraith/hero-motion/scene"
	"github.com/lixenwraith/hero-motion/scroll"
	"github.com/lixenwraith/hero-motion/status"
)

// host owns one mounted scene on a terminal screen
// Every field is touched only from the frame loop goroutine
type host struct {
	screen       tcell.Screen
	scene        scene.Scene
	mounted      *scene.Mounted
	loop         *engine.FrameLoop
	orchestrator *render.RenderOrchestrator
	hud          *renderer.HUDRenderer
	page         *scroll.Page
	sampler      *scroll.Sampler
	stats        *status.SceneStats
	wall         engine.TimeProvider
	lastWall     time.Time
	cancel       context.CancelFunc
}

func newHost(screen tcell.Screen, s scene.Scene, documentRows, fps int, wall engine.TimeProvider) (*host, error) {
	mounted, err := scene.Mount(s)
	if err != nil {
		return nil, err
	}
	if wall == nil {
		wall = engine.NewMonotonicTimeProvider()
	}

	width, height := screen.Size()
	h := &host{
		screen:       screen,
		scene:        s,
		mounted:      mounted,
		loop:         engine.NewFrameLoop(engine.NewSceneClock(wall), fps),
		orchestrator: render.NewRenderOrchestrator(screen, width, height),
		hud:          renderer.NewHUDRenderer(),
		page:         scroll.NewPage(float64(documentRows), float64(height)),
		sampler:      scroll.NewSampler(),
		stats:        status.NewSceneStats(),
		wall:         wall,
		cancel:       func() {},
	}
	h.stats.Bodies.Store(int64(mounted.Bodies()))

	if s.Stars.Count > 0 {
		h.orchestrator.Register(renderer.NewStarsRenderer(s.Stars, s.Opacity), render.PriorityStars)
	}
	h.orchestrator.Register(renderer.NewBodiesRenderer(s), render.PriorityBodies)
	h.orchestrator.Register(renderer.NewProgressBarRenderer(), render.PriorityUI)
	h.orchestrator.Register(h.hud, render.PriorityUI)

	h.page.SampleInto(h.sampler)
	h.loop.OnFrame(h.frame)
	return h, nil
}

// run drives frames and input until quit or ctx ends, then unmounts
func (h *host) run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	h.cancel = cancel
	defer cancel()

	go h.pollEvents()

	err := h.loop.Run(ctx)
	h.mounted.Unmount()
	log.Printf("unmounted %q after %d frames", h.scene.Name, h.stats.Frames.Load())
	if err == context.Canceled {
		return nil
	}
	return err
}

// pollEvents forwards terminal events into the frame loop
// Returns once the screen is finalised or the loop stops accepting work
func (h *host) pollEvents() {
	for {
		ev := h.screen.PollEvent()
		if ev == nil {
			return
		}
		if !h.loop.Post(func() { h.handleEvent(ev) }) {
			return
		}
	}
}

// handleEvent applies one input event; quitting cancels the loop
func (h *host) handleEvent(ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		h.handleKey(ev)

	case *tcell.EventMouse:
		buttons := ev.Buttons()
		if buttons&tcell.WheelUp != 0 {
			h.scroll(-parameter.ScrollStepRows)
		}
		if buttons&tcell.WheelDown != 0 {
			h.scroll(parameter.ScrollStepRows)
		}

	case *tcell.EventResize:
		width, height := ev.Size()
		h.orchestrator.Resize(width, height)
		h.page.Resize(float64(height))
		h.page.SampleInto(h.sampler)
		log.Printf("resize %dx%d", width, height)
	}
}

func (h *host) handleKey(ev *tcell.EventKey) {
	viewport := h.page.ViewportHeight
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		h.cancel()
	case tcell.KeyUp:
		h.scroll(-parameter.ScrollStepRows)
	case tcell.KeyDown:
		h.scroll(parameter.ScrollStepRows)
	case tcell.KeyPgUp:
		h.scroll(-viewport)
	case tcell.KeyPgDn:
		h.scroll(viewport)
	case tcell.KeyHome:
		h.page.Home()
		h.page.SampleInto(h.sampler)
	case tcell.KeyEnd:
		h.page.End()
		h.page.SampleInto(h.sampler)
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q':
			h.cancel()
		case 'p':
			paused := h.loop.Clock().Toggle()
			h.stats.Paused.Store(paused)
			log.Printf("paused=%v at t=%.3f", paused, h.loop.Clock().Elapsed())
		case 'h':
			h.hud.SetVisible(!h.hud.IsVisible())
		case 'k':
			h.scroll(-parameter.ScrollStepRows)
		case 'j':
			h.scroll(parameter.ScrollStepRows)
		}
	}
}

func (h *host) scroll(delta float64) {
	h.page.ScrollBy(delta)
	h.page.SampleInto(h.sampler)
}

// frame samples scroll, animates every body and renders one frame
func (h *host) frame(f engine.Frame) {
	cmds := h.mounted.Frame(f.Elapsed)
	if cmds == nil {
		return
	}
	h.page.SampleInto(h.sampler)

	now := h.wall.Now()
	if !h.lastWall.IsZero() {
		if dt := now.Sub(h.lastWall).Seconds(); dt > 0 {
			fps := h.stats.FPS.Get()
			inst := 1 / dt
			if fps == 0 {
				fps = inst
			} else {
				fps += (inst - fps) * parameter.FPSSmoothing
			}
			h.stats.FPS.Set(fps)
		}
	}
	h.lastWall = now

	h.stats.Frames.Add(1)
	h.stats.Elapsed.Set(f.Elapsed)
	h.stats.Progress.Set(h.sampler.Progress())
	h.stats.Paused.Store(h.loop.Clock().IsPaused())

	width, height := h.orchestrator.Size()
	ctx := render.NewRenderContext(f, h.scene.Camera, width, height, cmds,
		scroll.IndicatorFor(h.sampler.Progress()), h.stats.Snapshot())
	h.orchestrator.RenderFrame(ctx)
}
