package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/lixenwraith/hero-motion/scene"
)

func TestParseTimes(t *testing.T) {
	got, err := parseTimes(" 0, 1.5,,3 ")
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 3 || got[0] != 0 || got[1] != 1.5 || got[2] != 3 {
		t.Errorf("parseTimes = %v", got)
	}

	for _, bad := range []string{"", ",", "x", "-1", "NaN", "Inf"} {
		if _, err := parseTimes(bad); err == nil {
			t.Errorf("parseTimes(%q) accepted", bad)
		}
	}
}

func TestWriteSamplesReplayable(t *testing.T) {
	s, err := scene.Preset(scene.PresetHero)
	if err != nil {
		t.Fatal(err)
	}
	m, err := scene.Mount(s)
	if err != nil {
		t.Fatal(err)
	}

	var first, second bytes.Buffer
	if err := writeSamples(&first, m, []float64{0, 1.047, 10}); err != nil {
		t.Fatal(err)
	}
	// Sampling out of order does not change later output
	if err := writeSamples(&bytes.Buffer{}, m, []float64{99}); err != nil {
		t.Fatal(err)
	}
	if err := writeSamples(&second, m, []float64{0, 1.047, 10}); err != nil {
		t.Fatal(err)
	}
	if first.String() != second.String() {
		t.Error("sample output differs between identical runs")
	}

	out := first.String()
	headers := 0
	for _, line := range strings.Split(out, "\n") {
		if strings.HasPrefix(line, "t=") {
			headers++
		}
	}
	if headers != 3 || !strings.Contains(out, "core/hub") {
		t.Errorf("got %d time headers, want 3:\n%s", headers, out)
	}
	// Hub at mount sits on the origin with its rest scale; only the float tilt rotates it
	var hub string
	for _, line := range strings.Split(out, "\n") {
		if strings.Contains(line, "core/hub") {
			hub = line
			break
		}
	}
	for _, want := range []string{"pos=(0.0000, 0.0000, 0.0000)", "rot=(0.0250,", "scale=1.2000"} {
		if !strings.Contains(hub, want) {
			t.Errorf("hub line %q missing %q", hub, want)
		}
	}
}
