package engine

import (
	"context"
	"sync"
	"time"
)

// DefaultFPS is used when a loop is created with a non-positive rate
const DefaultFPS = 60

// Frame is the per-refresh input passed to every frame handler
type Frame struct {
	Number  uint64
	Elapsed float64 // scene seconds from the clock, not Number/FPS
	Delta   float64 // Elapsed minus previous frame's Elapsed
}

// FrameFunc is invoked once per display refresh on the loop goroutine
type FrameFunc func(Frame)

// FrameLoop is the host refresh loop: a fixed ticker that samples the clock
// and calls handlers in registration order
// Posted work runs on the same goroutine between frames, so handlers and
// posted closures never interleave
type FrameLoop struct {
	clock    *SceneClock
	interval time.Duration

	handlers []FrameFunc
	inbox    chan func()

	number      uint64
	lastElapsed float64

	done     chan struct{}
	doneOnce sync.Once
}

// NewFrameLoop creates a loop ticking fps times per second
func NewFrameLoop(clock *SceneClock, fps int) *FrameLoop {
	if fps <= 0 {
		fps = DefaultFPS
	}
	return &FrameLoop{
		clock:    clock,
		interval: time.Second / time.Duration(fps),
		inbox:    make(chan func(), 256),
		done:     make(chan struct{}),
	}
}

// Interval returns the tick period
func (l *FrameLoop) Interval() time.Duration {
	return l.interval
}

// Clock returns the loop's scene clock
func (l *FrameLoop) Clock() *SceneClock {
	return l.clock
}

// OnFrame registers a handler, must be called before Run
func (l *FrameLoop) OnFrame(fn FrameFunc) {
	l.handlers = append(l.handlers, fn)
}

// Post queues fn to run on the loop goroutine before the next frame
// Returns false when the loop has stopped
func (l *FrameLoop) Post(fn func()) bool {
	select {
	case <-l.done:
		return false
	default:
	}

	select {
	case l.inbox <- fn:
		return true
	case <-l.done:
		return false
	}
}

// Step drains posted work and runs exactly one frame synchronously
func (l *FrameLoop) Step() Frame {
	l.drain()

	elapsed := l.clock.Elapsed()
	f := Frame{Number: l.number, Elapsed: elapsed}
	if l.number > 0 {
		f.Delta = elapsed - l.lastElapsed
	}
	l.number++
	l.lastElapsed = elapsed

	for _, h := range l.handlers {
		h(f)
	}
	return f
}

// Run ticks until ctx is cancelled and returns ctx.Err()
// Cancelling is unmount: no frame is in flight once Run returns
func (l *FrameLoop) Run(ctx context.Context) error {
	defer l.doneOnce.Do(func() { close(l.done) })

	ticker := time.NewTicker(l.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case fn := <-l.inbox:
			fn()
		case <-ticker.C:
			l.Step()
		}
	}
}

func (l *FrameLoop) drain() {
	for {
		select {
		case fn := <-l.inbox:
			fn()
		default:
			return
		}
	}
}
