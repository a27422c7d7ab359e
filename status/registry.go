package status

import "sync/atomic"

// SceneStats is the per-mount metrics facade
// The frame loop is the only writer; HUD and logging read
type SceneStats struct {
	Frames   atomic.Uint64
	Bodies   atomic.Int64
	Paused   atomic.Bool
	Elapsed  AtomicFloat
	Progress AtomicFloat
	FPS      AtomicFloat
}

// Snapshot is a plain copy of SceneStats at one instant
type Snapshot struct {
	Frames   uint64
	Bodies   int64
	Paused   bool
	Elapsed  float64
	Progress float64
	FPS      float64
}

// NewSceneStats creates zeroed stats
func NewSceneStats() *SceneStats {
	return &SceneStats{}
}

// Snapshot copies every field; fields are read independently
func (s *SceneStats) Snapshot() Snapshot {
	return Snapshot{
		Frames:   s.Frames.Load(),
		Bodies:   s.Bodies.Load(),
		Paused:   s.Paused.Load(),
		Elapsed:  s.Elapsed.Get(),
		Progress: s.Progress.Get(),
		FPS:      s.FPS.Get(),
	}
}
