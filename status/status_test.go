package status

import (
	"sync"
	"testing"
)

func TestAtomicFloatZeroValue(t *testing.T) {
	var f AtomicFloat
	if f.Get() != 0 {
		t.Errorf("zero value = %v, want 0", f.Get())
	}
	f.Set(0.625)
	if f.Get() != 0.625 {
		t.Errorf("Get = %v, want 0.625", f.Get())
	}
}

func TestAtomicFloatSingleWriterManyReaders(t *testing.T) {
	var f AtomicFloat
	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		for i := 0; i <= 1000; i++ {
			f.Set(float64(i) / 1000)
		}
	}()

	for r := 0; r < 4; r++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 1000; i++ {
				if v := f.Get(); v < 0 || v > 1 {
					t.Errorf("torn read %v", v)
					return
				}
			}
		}()
	}
	wg.Wait()

	if f.Get() != 1 {
		t.Errorf("final value = %v, want 1", f.Get())
	}
}

func TestSceneStatsSnapshot(t *testing.T) {
	s := NewSceneStats()
	s.Frames.Add(3)
	s.Bodies.Store(6)
	s.Paused.Store(true)
	s.Elapsed.Set(1.5)
	s.Progress.Set(0.5)
	s.FPS.Set(60)

	want := Snapshot{Frames: 3, Bodies: 6, Paused: true, Elapsed: 1.5, Progress: 0.5, FPS: 60}
	if got := s.Snapshot(); got != want {
		t.Errorf("Snapshot = %+v, want %+v", got, want)
	}
}
