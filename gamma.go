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

// DefaultBreakPoint is the linear-segment breakpoint used by
// [NewGamma].  It is close to the sRGB value of 0.0031308 but matches
// the constant traditionally used by rendering pipelines.
const DefaultBreakPoint = 0.00304

// Gamma is a two-segment transfer function between linear light and
// display-encoded values: linear with a fixed slope below the
// breakpoint, a power law with exponent 1/gamma above it.  The slope,
// scale and offset of the two segments are solved at construction so
// that the curve is continuous in value and derivative at the
// breakpoint; they are never recomputed per call.
//
// A Gamma value is immutable and safe for concurrent use.
type Gamma[T Float] struct {
	gamma         T
	breakPoint    T
	slope         T
	slopeMatch    T
	segmentOffset T
}

// NewGamma returns the transfer function with the given exponent and
// the default breakpoint.
func NewGamma[T Float](gamma T) Gamma[T] {
	return NewGammaBreak(gamma, T(DefaultBreakPoint))
}

// NewGammaBreak returns the transfer function with the given exponent
// and breakpoint.  A gamma of 1 or a non-positive breakpoint yields
// the identity curve.
func NewGammaBreak[T Float](gamma, breakPoint T) Gamma[T] {
	g := Gamma[T]{gamma: gamma}
	if gamma == 1 || breakPoint <= 0 {
		g.slope = 1
		g.slopeMatch = 1
		return g
	}

	// Solve for the slope of the linear segment and the scale and
	// offset of the power segment so that value and derivative agree
	// at the breakpoint.
	k := pow(breakPoint, 1/gamma-1)
	g.breakPoint = breakPoint
	g.slope = 1 / (gamma/k - gamma*breakPoint + breakPoint)
	g.slopeMatch = gamma * g.slope / k
	g.segmentOffset = g.slopeMatch*pow(breakPoint, 1/gamma) - g.slope*breakPoint
	return g
}

// DefaultGamma returns the sRGB-like transfer function with gamma 2.4
// and the default breakpoint.
func DefaultGamma[T Float]() Gamma[T] {
	return NewGamma[T](2.4)
}

// Gamma returns the exponent of the power segment.
func (g Gamma[T]) Gamma() T {
	return g.gamma
}

// BreakPoint returns the input value below which the curve is linear.
func (g Gamma[T]) BreakPoint() T {
	return g.breakPoint
}

// Encode maps a linear value in [0, 1] to its display encoding.
// Inputs outside [0, 1] are clamped.
func (g Gamma[T]) Encode(x T) T {
	if x <= 0 {
		return 0
	}
	if x >= 1 {
		return 1
	}
	if x <= g.breakPoint {
		return g.slope * x
	}
	return g.slopeMatch*pow(x, 1/g.gamma) - g.segmentOffset
}

// Decode maps a display-encoded value in [0, 1] back to linear light.
// Inputs outside [0, 1] are clamped.
func (g Gamma[T]) Decode(y T) T {
	if y <= 0 {
		return 0
	}
	if y >= 1 {
		return 1
	}
	if y <= g.breakPoint*g.slope {
		return y / g.slope
	}
	return pow((y+g.segmentOffset)/g.slopeMatch, g.gamma)
}

// EncodeRGB applies [Gamma.Encode] to every colour channel.
func (g Gamma[T]) EncodeRGB(c RGB[T]) RGB[T] {
	return RGB[T]{g.Encode(c.R), g.Encode(c.G), g.Encode(c.B)}
}

// DecodeRGB applies [Gamma.Decode] to every colour channel.
func (g Gamma[T]) DecodeRGB(c RGB[T]) RGB[T] {
	return RGB[T]{g.Decode(c.R), g.Decode(c.G), g.Decode(c.B)}
}
