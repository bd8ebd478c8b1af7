package radiance

import (
	"math"
	"testing"
)

func TestToneMapperBounds(t *testing.T) {
	mappers := []struct {
		name string
		m    ToneMapper[float64]
	}{
		{"reinhard", Reinhard[float64]{}},
		{"reinhard-ext", ReinhardExtended[float64]{White: 4}},
		{"filmic", NewFilmic[float64]()},
		{"aces", ACES[float64]{}},
		{"unreal", Unreal[float64]{}},
	}
	inputs := []RGB[float64]{
		{},
		{0.18, 0.18, 0.18},
		{1, 1, 1},
		{100, 50, 0.01},
		{1e6, 1e6, 1e6},
	}

	for _, tt := range mappers {
		t.Run(tt.name, func(t *testing.T) {
			for _, c := range inputs {
				for _, exposure := range []float64{0.5, 1, 4} {
					got := tt.m.Map(c, exposure)
					if !got.InRange(0, 1) {
						t.Errorf("Map(%v, %v) = %v out of range",
							c, exposure, got)
					}
				}
			}
		})
	}
}

func TestReinhard(t *testing.T) {
	var m Reinhard[float64]

	got := m.Map(NewRGB(1.0, 3.0, 0.0), 1)
	want := NewRGB(0.5, 0.75, 0.0)
	if !got.AlmostEqual(want) {
		t.Errorf("Map = %v, want %v", got, want)
	}

	// exposure scales the input before the curve
	got = m.Map(NewRGB(0.5, 0.5, 0.5), 2)
	if !got.AlmostEqual(Gray(0.5)) {
		t.Errorf("exposure-scaled Map = %v, want all 0.5", got)
	}
}

func TestReinhardExtendedWhitePoint(t *testing.T) {
	m := ReinhardExtended[float64]{White: 4}

	// the white point maps to exactly 1
	got := m.Map(Gray(4.0), 1)
	if !got.AlmostEqual(Gray(1.0)) {
		t.Errorf("Map(white) = %v, want all 1", got)
	}

	// below the white point the curve stays below the input's value
	// relative to plain Reinhard
	plain := Reinhard[float64]{}.Map(Gray(1.0), 1)
	ext := m.Map(Gray(1.0), 1)
	if ext.R <= plain.R {
		t.Errorf("extended curve %v not above plain %v", ext.R, plain.R)
	}
}

func TestFilmic(t *testing.T) {
	m := NewFilmic[float64]()

	// black stays black and the white point maps to 1
	if got := m.Map(RGB[float64]{}, 1); !got.AlmostEqual(RGB[float64]{}) {
		t.Errorf("Map(black) = %v", got)
	}
	if got := m.Map(Gray(m.LinearWhite), 1); !got.AlmostEqual(Gray(1.0)) {
		t.Errorf("Map(linear white) = %v, want all 1", got)
	}

	// the curve is monotone on the working range
	prev := -1.0
	for x := 0.0; x <= 20; x += 0.25 {
		y := m.Map(Gray(x), 1).R
		if y < prev {
			t.Fatalf("curve not monotone at %v: %v < %v", x, y, prev)
		}
		prev = y
	}
}

func TestACES(t *testing.T) {
	var m ACES[float64]

	// spot value of the Narkowicz fit at x = 1
	want := 1.0 * (2.51 + 0.03) / (2.43 + 0.59 + 0.14)
	got := m.Map(Gray(1.0), 1).R
	if math.Abs(got-want) > 1e-12 {
		t.Errorf("Map(1) = %v, want %v", got, want)
	}

	// large inputs saturate at 1
	if got := m.Map(Gray(1000.0), 1); got != Gray(1.0) {
		t.Errorf("Map(1000) = %v, want clamped white", got)
	}
}

func TestUnreal(t *testing.T) {
	var m Unreal[float64]

	want := 0.5 / (0.5 + 0.155) * 1.019
	got := m.Map(Gray(0.5), 1).R
	if math.Abs(got-want) > 1e-12 {
		t.Errorf("Map(0.5) = %v, want %v", got, want)
	}

	// the 1.019 factor would push bright inputs past 1 without the clamp
	if got := m.Map(Gray(100.0), 1); got != Gray(1.0) {
		t.Errorf("Map(100) = %v, want clamped white", got)
	}
}
