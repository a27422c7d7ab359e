package status

import (
	"math"
	"sync/atomic"
)

// AtomicFloat holds one published scene gauge as raw bits
// so the frame loop can write it while input and HUD goroutines read it
// The zero value reads 0
type AtomicFloat struct {
	v atomic.Uint64
}

// Set publishes val
func (f *AtomicFloat) Set(val float64) {
	f.v.Store(math.Float64bits(val))
}

// Get returns the last published value
func (f *AtomicFloat) Get() float64 {
	return math.Float64frombits(f.v.Load())
}
