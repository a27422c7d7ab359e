package main

import (
	"context"
	"math"
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/hero-motion/engine"
	"github.com/lixenwraith/hero-motion/parameter/visual"
	"github.com/lixenwraith/hero-motion/scene"
)

func newTestHost(t *testing.T, w, h int) (*host, tcell.SimulationScreen, *engine.MockTimeProvider) {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("Failed to init screen: %v", err)
	}
	t.Cleanup(screen.Fini)
	screen.SetSize(w, h)

	s, err := scene.Preset(scene.PresetHero)
	if err != nil {
		t.Fatal(err)
	}
	mock := engine.NewMockTimeProvider(time.Unix(1000, 0))
	hst, err := newHost(screen, s, 200, 60, mock)
	if err != nil {
		t.Fatalf("newHost: %v", err)
	}
	return hst, screen, mock
}

func key(r rune) *tcell.EventKey {
	return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone)
}

func TestHostFrameUpdatesStats(t *testing.T) {
	h, _, mock := newTestHost(t, 80, 24)

	h.loop.Step()
	mock.Advance(50 * time.Millisecond)
	h.loop.Step()

	snap := h.stats.Snapshot()
	if snap.Frames != 2 || snap.Bodies != 6 {
		t.Errorf("frames %d bodies %d", snap.Frames, snap.Bodies)
	}
	if math.Abs(snap.Elapsed-0.05) > 1e-9 {
		t.Errorf("elapsed = %v, want 0.05", snap.Elapsed)
	}
	if math.Abs(snap.FPS-20) > 1e-9 {
		t.Errorf("fps = %v, want 20", snap.FPS)
	}
}

func TestHostScrollDrivesProgressBar(t *testing.T) {
	h, screen, _ := newTestHost(t, 40, 20)

	h.loop.Step()
	if mainc, _, _, _ := screen.GetContent(0, 0); mainc != ' ' {
		t.Errorf("bar at top of page = %q, want empty", mainc)
	}

	h.handleEvent(tcell.NewEventKey(tcell.KeyEnd, 0, tcell.ModNone))
	if p := h.sampler.Progress(); p != 1 {
		t.Fatalf("progress after End = %v", p)
	}
	h.loop.Step()
	if mainc, _, _, _ := screen.GetContent(39, 0); mainc != visual.BarEighths[8] {
		t.Errorf("bar at end of page = %q, want full", mainc)
	}

	h.handleEvent(tcell.NewEventKey(tcell.KeyHome, 0, tcell.ModNone))
	h.handleEvent(tcell.NewEventMouse(5, 5, tcell.WheelDown, tcell.ModNone))
	want := 3.0 / h.page.MaxOffset()
	if p := h.sampler.Progress(); math.Abs(p-want) > 1e-12 {
		t.Errorf("progress after one wheel notch = %v, want %v", p, want)
	}

	h.handleEvent(tcell.NewEventMouse(5, 5, tcell.WheelUp, tcell.ModNone))
	h.handleEvent(tcell.NewEventMouse(5, 5, tcell.WheelUp, tcell.ModNone))
	if p := h.sampler.Progress(); p != 0 {
		t.Errorf("overscroll above top = %v, want 0", p)
	}
}

func TestHostPauseFreezesScene(t *testing.T) {
	h, _, mock := newTestHost(t, 80, 24)

	mock.Advance(time.Second)
	h.handleEvent(key('p'))
	if !h.loop.Clock().IsPaused() || !h.stats.Paused.Load() {
		t.Fatal("p did not pause")
	}

	mock.Advance(5 * time.Second)
	f := h.loop.Step()
	if math.Abs(f.Elapsed-1) > 1e-9 {
		t.Errorf("elapsed while paused = %v, want 1", f.Elapsed)
	}

	h.handleEvent(key('p'))
	mock.Advance(time.Second)
	if f := h.loop.Step(); math.Abs(f.Elapsed-2) > 1e-9 {
		t.Errorf("elapsed after resume = %v, want 2", f.Elapsed)
	}
}

func bottomRow(screen tcell.SimulationScreen) string {
	w, h := screen.Size()
	var b strings.Builder
	for x := 0; x < w; x++ {
		mainc, _, _, _ := screen.GetContent(x, h-1)
		b.WriteRune(mainc)
	}
	return b.String()
}

func TestHostHUDToggle(t *testing.T) {
	h, screen, _ := newTestHost(t, 80, 24)

	h.loop.Step()
	if row := bottomRow(screen); !strings.Contains(row, "p:pause") {
		t.Fatalf("help not drawn on bottom row: %q", row)
	}

	h.handleEvent(key('h'))
	h.loop.Step()
	if h.hud.IsVisible() {
		t.Fatal("h did not hide the HUD")
	}
	if row := bottomRow(screen); strings.Contains(row, "p:pause") || strings.Contains(row, "fps") {
		t.Errorf("HUD still drawn after hide: %q", row)
	}

	h.handleEvent(key('h'))
	h.loop.Step()
	if row := bottomRow(screen); !strings.Contains(row, "p:pause") {
		t.Errorf("help not restored: %q", row)
	}
}

func TestHostQuitKeys(t *testing.T) {
	events := []tcell.Event{
		key('q'),
		tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone),
		tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModNone),
	}
	for _, ev := range events {
		h, _, _ := newTestHost(t, 80, 24)
		quit := false
		h.cancel = func() { quit = true }
		h.handleEvent(ev)
		if !quit {
			t.Errorf("event %T did not quit", ev)
		}
	}
}

func TestHostResize(t *testing.T) {
	h, _, _ := newTestHost(t, 80, 24)
	h.handleEvent(tcell.NewEventResize(100, 40))
	if w, hh := h.orchestrator.Size(); w != 100 || hh != 40 {
		t.Errorf("canvas %dx%d after resize", w, hh)
	}
	if h.page.ViewportHeight != 40 {
		t.Errorf("viewport = %v", h.page.ViewportHeight)
	}
}

func TestHostRunUnmountsOnQuit(t *testing.T) {
	h, screen, _ := newTestHost(t, 80, 24)

	done := make(chan error, 1)
	go func() { done <- h.run(context.Background()) }()

	screen.InjectKey(tcell.KeyRune, 'q', tcell.ModNone)

	select {
	case err := <-done:
		if err != nil {
			t.Errorf("run returned %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("run did not return after q")
	}
	if h.mounted.Active() {
		t.Error("scene still mounted after quit")
	}
	if h.mounted.Frame(1) != nil {
		t.Error("unmounted scene produced a frame")
	}
}
