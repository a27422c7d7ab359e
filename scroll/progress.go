package scroll

import (
	"sync/atomic"

	"github.com/lixenwraith/hero-motion/status"
	"github.com/lixenwraith/hero-motion/vmath"
)

// MaxOffset returns the scrollable extent; zero or negative when content fits
func MaxOffset(documentHeight, viewportHeight float64) float64 {
	return documentHeight - viewportHeight
}

// Progress maps a scroll offset to [0, 1]
// maxOffset <= 0 (content shorter than viewport) is 0 regardless of offset
func Progress(offset, maxOffset float64) float64 {
	if !(maxOffset > 0) {
		return 0
	}
	return vmath.Clamp01(offset / maxOffset)
}

// Sampler publishes the latest progress for any number of readers
// Exactly one goroutine may call Sample; every sample is used verbatim
type Sampler struct {
	progress status.AtomicFloat
	samples  atomic.Uint64
}

// NewSampler creates a sampler reporting 0 until the first sample
func NewSampler() *Sampler {
	return &Sampler{}
}

// Sample recomputes progress from the host's scroll state and publishes it
func (s *Sampler) Sample(offset, documentHeight, viewportHeight float64) float64 {
	p := Progress(offset, MaxOffset(documentHeight, viewportHeight))
	s.progress.Set(p)
	s.samples.Add(1)
	return p
}

// Progress returns the last published value
func (s *Sampler) Progress() float64 {
	return s.progress.Get()
}

// Samples returns the number of samples taken since creation
func (s *Sampler) Samples() uint64 {
	return s.samples.Load()
}
