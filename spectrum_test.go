package radiance

import (
	"math"
	"testing"
)

func TestConstantSpectrum(t *testing.T) {
	s := ConstantSpectrum(0.75)
	for _, lambda := range []float64{-100, 0, 380, 555, 780, 1e6} {
		if got := s.Sample(lambda); got != 0.75 {
			t.Errorf("Sample(%v) = %v, want 0.75", lambda, got)
		}
	}
}

func TestRegularSpectrum(t *testing.T) {
	s, err := NewRegularSpectrum(400, 700, []float64{0, 1, 0.5, 0.25})
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		lambda, want float64
	}{
		{400, 0},
		{500, 1},    // second sample
		{450, 0.5},  // midway between samples 0 and 1
		{600, 0.5},  // third sample
		{700, 0.25}, // last sample, upper index clamped
		{399.9, 0},  // outside the domain
		{700.1, 0},
	}
	for _, tt := range tests {
		if got := s.Sample(tt.lambda); math.Abs(got-tt.want) > 1e-12 {
			t.Errorf("Sample(%v) = %v, want %v", tt.lambda, got, tt.want)
		}
	}
}

func TestRegularSpectrumBounded(t *testing.T) {
	samples := []float64{0.2, 0.9, 0.1, 0.6, 0.4}
	s, err := NewRegularSpectrum(380, 780, samples)
	if err != nil {
		t.Fatal(err)
	}

	// interpolation never leaves the range of the tabulated samples
	for lambda := 380.0; lambda <= 780; lambda += 1.0 {
		v := s.Sample(lambda)
		if v < 0.1 || v > 0.9 {
			t.Fatalf("Sample(%v) = %v outside sample range", lambda, v)
		}
	}
}

func TestRegularSpectrumErrors(t *testing.T) {
	if _, err := NewRegularSpectrum(400, 700, []float64{1}); err != errTooFewSamples {
		t.Errorf("one sample: err = %v", err)
	}
	if _, err := NewRegularSpectrum(700, 400, []float64{1, 2}); err != errEmptyDomain {
		t.Errorf("inverted domain: err = %v", err)
	}
}

func TestIrregularSpectrum(t *testing.T) {
	// pairs given out of order; the constructor sorts them
	s, err := NewIrregularSpectrum(
		[]float64{600, 400, 500},
		[]float64{0.3, 0.1, 0.2},
	)
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		lambda, want float64
	}{
		{400, 0.1},
		{500, 0.2},
		{600, 0.3},
		{450, 0.15},
		{575, 0.275},
		{399, 0},
		{601, 0},
	}
	for _, tt := range tests {
		if got := s.Sample(tt.lambda); math.Abs(got-tt.want) > 1e-12 {
			t.Errorf("Sample(%v) = %v, want %v", tt.lambda, got, tt.want)
		}
	}
}

func TestIrregularSpectrumErrors(t *testing.T) {
	if _, err := NewIrregularSpectrum([]float64{1, 2}, []float64{1}); err != errLengthMismatch {
		t.Errorf("mismatched lengths: err = %v", err)
	}
	if _, err := NewIrregularSpectrum(nil, nil); err != errEmptyDomain {
		t.Errorf("empty tables: err = %v", err)
	}
}

func TestIrregularSpectrumCopies(t *testing.T) {
	w := []float64{400, 500}
	a := []float64{1, 2}
	s, err := NewIrregularSpectrum(w, a)
	if err != nil {
		t.Fatal(err)
	}
	a[0] = 99
	if got := s.Sample(400); got != 1 {
		t.Errorf("spectrum aliases caller data: Sample(400) = %v", got)
	}
}

func TestToXYZ(t *testing.T) {
	// three-sample matching tables, easy to integrate by hand
	m := &MatchingFunctions{
		Min:  500,
		Step: 10,
		X:    []float64{1, 2, 1},
		Y:    []float64{0, 1, 0},
		Z:    []float64{2, 0, 2},
	}

	got, err := ToXYZ(ConstantSpectrum(0.5), m)
	if err != nil {
		t.Fatal(err)
	}
	// rectangle rule: sum(s * weight) * step
	want := XYZ{0.5 * 4 * 10, 0.5 * 1 * 10, 0.5 * 4 * 10}
	if got != want {
		t.Errorf("ToXYZ = %v, want %v", got, want)
	}
}

func TestToXYZBadTables(t *testing.T) {
	bad := []*MatchingFunctions{
		{Min: 400, Step: 0, X: []float64{1}, Y: []float64{1}, Z: []float64{1}},
		{Min: 400, Step: 10},
		{Min: 400, Step: 10, X: []float64{1, 2}, Y: []float64{1}, Z: []float64{1, 2}},
	}
	for i, m := range bad {
		if _, err := ToXYZ(ConstantSpectrum(1), m); err != errBadMatching {
			t.Errorf("table %d: err = %v, want errBadMatching", i, err)
		}
	}
}

func TestXYZArithmetic(t *testing.T) {
	c := XYZ{1, 2, 3}

	if got := c.Add(XYZ{1, 1, 1}); got != (XYZ{2, 3, 4}) {
		t.Errorf("Add = %v", got)
	}
	if got := c.Scale(2); got != (XYZ{2, 4, 6}) {
		t.Errorf("Scale = %v", got)
	}

	n := c.Normalized()
	if math.Abs(n.X+n.Y+n.Z-1) > 1e-12 {
		t.Errorf("Normalized components sum to %v", n.X+n.Y+n.Z)
	}
	if got := (XYZ{}).Normalized(); got != (XYZ{}) {
		t.Errorf("Normalized black = %v, want black", got)
	}
}
