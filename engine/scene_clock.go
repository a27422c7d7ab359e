package engine

import (
	"sync"
	"time"
)

// SceneClock measures elapsed scene time from mount, excluding pauses
// Elapsed is read once per frame by the loop; motion is a function of it
type SceneClock struct {
	mu sync.RWMutex

	provider  TimeProvider
	mountTime time.Time

	paused          bool
	pauseStartTime  time.Time
	totalPausedTime time.Duration
}

// NewSceneClock mounts a clock on provider; elapsed starts at 0 now
func NewSceneClock(provider TimeProvider) *SceneClock {
	if provider == nil {
		provider = NewMonotonicTimeProvider()
	}
	return &SceneClock{
		provider:  provider,
		mountTime: provider.Now(),
	}
}

// Elapsed returns scene seconds since mount; frozen while paused
func (c *SceneClock) Elapsed() float64 {
	return c.ElapsedDuration().Seconds()
}

// ElapsedDuration is Elapsed as a time.Duration
func (c *SceneClock) ElapsedDuration() time.Duration {
	c.mu.RLock()
	defer c.mu.RUnlock()

	now := c.provider.Now()
	if c.paused {
		now = c.pauseStartTime
	}

	d := now.Sub(c.mountTime) - c.totalPausedTime
	if d < 0 {
		// Provider went backwards; elapsed never does
		return 0
	}
	return d
}

// Pause freezes elapsed time; no-op when already paused
func (c *SceneClock) Pause() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.paused {
		return
	}
	c.paused = true
	c.pauseStartTime = c.provider.Now()
}

// Resume continues from the frozen value; no-op when running
func (c *SceneClock) Resume() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.paused {
		return
	}
	c.totalPausedTime += c.provider.Now().Sub(c.pauseStartTime)
	c.pauseStartTime = time.Time{}
	c.paused = false
}

// Toggle flips pause state and returns the new state
func (c *SceneClock) Toggle() bool {
	if c.IsPaused() {
		c.Resume()
		return false
	}
	c.Pause()
	return true
}

// IsPaused returns current pause state
func (c *SceneClock) IsPaused() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.paused
}

// TotalPaused returns cumulative pause time including an ongoing pause
func (c *SceneClock) TotalPaused() time.Duration {
	c.mu.RLock()
	defer c.mu.RUnlock()

	total := c.totalPausedTime
	if c.paused {
		total += c.provider.Now().Sub(c.pauseStartTime)
	}
	return total
}
