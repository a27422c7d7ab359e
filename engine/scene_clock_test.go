package engine

import (
	"testing"
	"time"
)

func newMockClock() (*SceneClock, *MockTimeProvider) {
	mock := NewMockTimeProvider(time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC))
	return NewSceneClock(mock), mock
}

func TestSceneClockStartsAtZero(t *testing.T) {
	clock, mock := newMockClock()
	if clock.Elapsed() != 0 {
		t.Errorf("elapsed at mount = %v, want 0", clock.Elapsed())
	}

	mock.Advance(1500 * time.Millisecond)
	if clock.Elapsed() != 1.5 {
		t.Errorf("elapsed = %v, want 1.5", clock.Elapsed())
	}
}

func TestSceneClockPauseResume(t *testing.T) {
	clock, mock := newMockClock()

	mock.Advance(2 * time.Second)
	clock.Pause()
	if !clock.IsPaused() {
		t.Fatal("expected paused")
	}

	mock.Advance(10 * time.Second)
	if clock.Elapsed() != 2 {
		t.Errorf("elapsed while paused = %v, want 2", clock.Elapsed())
	}
	if clock.TotalPaused() != 10*time.Second {
		t.Errorf("ongoing pause = %v, want 10s", clock.TotalPaused())
	}

	// Double pause is a no-op
	clock.Pause()
	mock.Advance(time.Second)

	clock.Resume()
	if clock.IsPaused() {
		t.Fatal("expected running")
	}
	if clock.Elapsed() != 2 {
		t.Errorf("elapsed right after resume = %v, want 2 (no discontinuity)", clock.Elapsed())
	}

	mock.Advance(500 * time.Millisecond)
	if clock.Elapsed() != 2.5 {
		t.Errorf("elapsed after resume = %v, want 2.5", clock.Elapsed())
	}
	if clock.TotalPaused() != 11*time.Second {
		t.Errorf("total paused = %v, want 11s", clock.TotalPaused())
	}

	// Resume when running is a no-op
	clock.Resume()
	if clock.Elapsed() != 2.5 {
		t.Errorf("elapsed after redundant resume = %v", clock.Elapsed())
	}
}

func TestSceneClockToggle(t *testing.T) {
	clock, _ := newMockClock()
	if !clock.Toggle() || !clock.IsPaused() {
		t.Error("first toggle should pause")
	}
	if clock.Toggle() || clock.IsPaused() {
		t.Error("second toggle should resume")
	}
}

func TestSceneClockNeverNegative(t *testing.T) {
	clock, mock := newMockClock()
	mock.Advance(-time.Minute)
	if clock.Elapsed() != 0 {
		t.Errorf("elapsed after provider rewind = %v, want 0", clock.Elapsed())
	}
}

func TestSceneClockDefaultProvider(t *testing.T) {
	clock := NewSceneClock(nil)
	time.Sleep(5 * time.Millisecond)
	if clock.Elapsed() <= 0 {
		t.Errorf("real clock did not advance: %v", clock.Elapsed())
	}
}
