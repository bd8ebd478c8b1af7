// seehuhn.de/go/radiance - colour representation and encoding for rendering
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package radiance

// A ToneMapper compresses unbounded linear radiance into a
// displayable range.  Implementations are pure functions of the
// colour and the exposure scale; each published curve is a separate
// implementation rather than a mode of a shared one.
//
// All operators clamp their output to [0, 1] except the Reinhard
// variants, whose curves are bounded by construction.
type ToneMapper[T Float] interface {
	// Map applies the operator to the exposure-scaled colour.
	Map(c RGB[T], exposure T) RGB[T]
}

// Reinhard is the basic tone curve x/(1+x).  Its output is in [0, 1)
// for non-negative input without clamping.
type Reinhard[T Float] struct{}

// Map implements [ToneMapper].
func (Reinhard[T]) Map(c RGB[T], exposure T) RGB[T] {
	x := c.Scale(exposure)
	return RGB[T]{
		x.R / (1 + x.R),
		x.G / (1 + x.G),
		x.B / (1 + x.B),
	}
}

// ReinhardExtended is the white-point-parameterised Reinhard curve
// x(1+x/W^2)/(1+x).  Inputs at the white point map to exactly 1.
type ReinhardExtended[T Float] struct {
	// White is the smallest input that maps to full white.
	White T
}

// Map implements [ToneMapper].
func (m ReinhardExtended[T]) Map(c RGB[T], exposure T) RGB[T] {
	x := c.Scale(exposure)
	w2 := m.White * m.White
	f := func(v T) T {
		return v * (1 + v/w2) / (1 + v)
	}
	return RGB[T]{f(x.R), f(x.G), f(x.B)}
}

// Filmic is the six-coefficient rational tone curve
//
//	f(x) = (x(Ax+CB)+DE)/(x(Ax+B)+DF) - E/F
//
// with the output normalised by f(LinearWhite) and clamped to [0, 1].
// The E and F coefficients set the toe floor that is subtracted from
// the curve so that f(0) = 0.
type Filmic[T Float] struct {
	ShoulderStrength T // A
	LinearStrength   T // B
	LinearAngle      T // C
	ToeStrength      T // D
	ToeNumerator     T // E
	ToeDenominator   T // F

	// LinearWhite is the curve input that maps to display white.
	LinearWhite T
}

// NewFilmic returns the filmic operator with the widely used default
// coefficients (A=0.15, B=0.50, C=0.10, D=0.20, E=0.02, F=0.30,
// white point 11.2).
func NewFilmic[T Float]() Filmic[T] {
	return Filmic[T]{
		ShoulderStrength: 0.15,
		LinearStrength:   0.50,
		LinearAngle:      0.10,
		ToeStrength:      0.20,
		ToeNumerator:     0.02,
		ToeDenominator:   0.30,
		LinearWhite:      11.2,
	}
}

func (m Filmic[T]) curve(x T) T {
	a := m.ShoulderStrength
	b := m.LinearStrength
	c := m.LinearAngle
	d := m.ToeStrength
	e := m.ToeNumerator
	f := m.ToeDenominator
	return (x*(a*x+c*b)+d*e)/(x*(a*x+b)+d*f) - e/f
}

// Map implements [ToneMapper].
func (m Filmic[T]) Map(c RGB[T], exposure T) RGB[T] {
	x := c.Scale(exposure)
	white := m.curve(m.LinearWhite)
	return RGB[T]{
		clamp01(safeDiv(m.curve(x.R), white)),
		clamp01(safeDiv(m.curve(x.G), white)),
		clamp01(safeDiv(m.curve(x.B), white)),
	}
}

// ACES is the fixed-coefficient rational fit of the ACES filmic
// response curve.
type ACES[T Float] struct{}

// Map implements [ToneMapper].
func (ACES[T]) Map(c RGB[T], exposure T) RGB[T] {
	x := c.Scale(exposure)
	f := func(v T) T {
		return clamp01(v * (2.51*v + 0.03) / (v*(2.43*v+0.59) + 0.14))
	}
	return RGB[T]{f(x.R), f(x.G), f(x.B)}
}

// Unreal is the fixed-coefficient curve x/(x+0.155)*1.019 used by the
// Unreal 3 engine.  Its output is display-ready; no further gamma
// encoding should be applied.
type Unreal[T Float] struct{}

// Map implements [ToneMapper].
func (Unreal[T]) Map(c RGB[T], exposure T) RGB[T] {
	x := c.Scale(exposure)
	f := func(v T) T {
		return clamp01(v / (v + 0.155) * 1.019)
	}
	return RGB[T]{f(x.R), f(x.G), f(x.B)}
}
