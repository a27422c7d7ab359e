package main

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/lixenwraith/hero-motion/scene"
	"github.com/lixenwraith/hero-motion/vmath"
)

// parseTimes reads a comma-separated list of non-negative elapsed seconds
func parseTimes(s string) ([]float64, error) {
	var times []float64
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		t, err := strconv.ParseFloat(part, 64)
		if err != nil {
			return nil, errors.Wrapf(err, "sample time %q", part)
		}
		if t < 0 || math.IsInf(t, 0) || math.IsNaN(t) {
			return nil, errors.Errorf("sample time %q must be a finite non-negative number", part)
		}
		times = append(times, t)
	}
	if len(times) == 0 {
		return nil, errors.New("no sample times given")
	}
	return times, nil
}

// writeSamples prints every body's world transform at each time
// Output depends only on the scene and the times, never on wall clock
func writeSamples(w io.Writer, m *scene.Mounted, times []float64) error {
	for _, t := range times {
		if _, err := fmt.Fprintf(w, "t=%.3f\n", t); err != nil {
			return err
		}
		for _, cmd := range m.Frame(t) {
			tr := vmath.Decompose(cmd.World)
			p, r, s := tr.Position, tr.Rotation, tr.Scale
			if _, err := fmt.Fprintf(w, "  %-24s pos=(%.4f, %.4f, %.4f) rot=(%.4f, %.4f, %.4f) scale=%.4f\n",
				cmd.Path, p.X(), p.Y(), p.Z(), r.X, r.Y, r.Z, s.X()); err != nil {
				return err
			}
		}
	}
	return nil
}
