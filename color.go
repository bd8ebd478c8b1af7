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

// RGB is an immutable three-channel colour value.  Channels are
// linear unless stated otherwise and are not clamped on construction;
// use the classification predicates to detect out-of-range values.
//
// All methods return a new value and never modify the receiver or
// their arguments, so RGB values can be shared freely between
// goroutines.
type RGB[T Float] struct {
	R, G, B T
}

// RGBA is an immutable four-channel colour value with an alpha
// channel.  The colour channels behave exactly as in [RGB]; alpha
// takes part in arithmetic but not in the derived scalars.
type RGBA[T Float] struct {
	R, G, B, A T
}

// NewRGB returns the colour with the given channel values.
func NewRGB[T Float](r, g, b T) RGB[T] {
	return RGB[T]{r, g, b}
}

// NewRGBA returns the colour with the given channel values.
func NewRGBA[T Float](r, g, b, a T) RGBA[T] {
	return RGBA[T]{r, g, b, a}
}

// Gray returns the grayscale colour with all channels set to v.
func Gray[T Float](v T) RGB[T] {
	return RGB[T]{v, v, v}
}

// RGBFrom8Bit converts 8-bit channel values to the range [0, 1].
func RGBFrom8Bit[T Float](r, g, b uint8) RGB[T] {
	return RGB[T]{T(r) / 255, T(g) / 255, T(b) / 255}
}

// RGBAFrom8Bit converts 8-bit channel values to the range [0, 1].
func RGBAFrom8Bit[T Float](r, g, b, a uint8) RGBA[T] {
	return RGBA[T]{T(r) / 255, T(g) / 255, T(b) / 255, T(a) / 255}
}

// RGBTo converts a colour to a different channel precision.
func RGBTo[U, T Float](c RGB[T]) RGB[U] {
	return RGB[U]{U(c.R), U(c.G), U(c.B)}
}

// RGBATo converts a colour to a different channel precision.
func RGBATo[U, T Float](c RGBA[T]) RGBA[U] {
	return RGBA[U]{U(c.R), U(c.G), U(c.B), U(c.A)}
}

// WithAlpha extends c by an alpha channel.
func (c RGB[T]) WithAlpha(a T) RGBA[T] {
	return RGBA[T]{c.R, c.G, c.B, a}
}

// Opaque extends c by a full-scale alpha channel.
func (c RGB[T]) Opaque() RGBA[T] {
	return RGBA[T]{c.R, c.G, c.B, 1}
}

// RGB drops the alpha channel.
func (c RGBA[T]) RGB() RGB[T] {
	return RGB[T]{c.R, c.G, c.B}
}

// Add returns the channel-wise sum of c and d.
func (c RGB[T]) Add(d RGB[T]) RGB[T] {
	return RGB[T]{c.R + d.R, c.G + d.G, c.B + d.B}
}

// Sub returns the channel-wise difference of c and d.
func (c RGB[T]) Sub(d RGB[T]) RGB[T] {
	return RGB[T]{c.R - d.R, c.G - d.G, c.B - d.B}
}

// Mul returns the channel-wise product of c and d.
func (c RGB[T]) Mul(d RGB[T]) RGB[T] {
	return RGB[T]{c.R * d.R, c.G * d.G, c.B * d.B}
}

// Div returns the channel-wise quotient of c and d.  Channels whose
// quotient is not finite are set to 0, so the operation is total.
func (c RGB[T]) Div(d RGB[T]) RGB[T] {
	return RGB[T]{safeDiv(c.R, d.R), safeDiv(c.G, d.G), safeDiv(c.B, d.B)}
}

// Scale multiplies every channel by s.
func (c RGB[T]) Scale(s T) RGB[T] {
	return RGB[T]{c.R * s, c.G * s, c.B * s}
}

// Neg negates every channel.
func (c RGB[T]) Neg() RGB[T] {
	return RGB[T]{-c.R, -c.G, -c.B}
}

// Lerp blends between c (t=0) and d (t=1).
func (c RGB[T]) Lerp(d RGB[T], t T) RGB[T] {
	return RGB[T]{
		c.R + (d.R-c.R)*t,
		c.G + (d.G-c.G)*t,
		c.B + (d.B-c.B)*t,
	}
}

// Min returns the channel-wise minimum of c and d.
func (c RGB[T]) Min(d RGB[T]) RGB[T] {
	return RGB[T]{min2(c.R, d.R), min2(c.G, d.G), min2(c.B, d.B)}
}

// Max returns the channel-wise maximum of c and d.
func (c RGB[T]) Max(d RGB[T]) RGB[T] {
	return RGB[T]{max2(c.R, d.R), max2(c.G, d.G), max2(c.B, d.B)}
}

// Clamp01 restricts every channel to [0, 1].
func (c RGB[T]) Clamp01() RGB[T] {
	return RGB[T]{clamp01(c.R), clamp01(c.G), clamp01(c.B)}
}

// AddSample updates the moving average c with the n-th sample.  The
// incremental form c + (sample-c)/n is used instead of a running sum,
// which keeps the average stable for large n.  AddSample panics if n
// is not positive.
func (c RGB[T]) AddSample(sample RGB[T], n int) RGB[T] {
	if n < 1 {
		panic("radiance: AddSample called with non-positive sample count")
	}
	inv := 1 / T(n)
	return RGB[T]{
		c.R + (sample.R-c.R)*inv,
		c.G + (sample.G-c.G)*inv,
		c.B + (sample.B-c.B)*inv,
	}
}

// Average returns the mean of the colour channels.
func (c RGB[T]) Average() T {
	return (c.R + c.G + c.B) / 3
}

// Lightness returns the mean of the largest and smallest channel.
func (c RGB[T]) Lightness() T {
	return (c.MaxChannel() + c.MinChannel()) / 2
}

// Luminance returns the Rec. 709 relative luminance of c.  The
// coefficients are fixed; downstream constants depend on these exact
// values.
func (c RGB[T]) Luminance() T {
	return 0.212671*c.R + 0.715160*c.G + 0.072169*c.B
}

// MaxChannel returns the largest colour channel.
func (c RGB[T]) MaxChannel() T {
	return max2(c.R, max2(c.G, c.B))
}

// MinChannel returns the smallest colour channel.
func (c RGB[T]) MinChannel() T {
	return min2(c.R, min2(c.G, c.B))
}

// AlmostEqual reports whether all channels of c and d agree within
// the default tolerance for the precision T.
func (c RGB[T]) AlmostEqual(d RGB[T]) bool {
	return c.AlmostEqualTol(d, eps[T]())
}

// AlmostEqualTol reports whether all channels of c and d agree within
// the given tolerance.
func (c RGB[T]) AlmostEqualTol(d RGB[T], tol T) bool {
	return abs(c.R-d.R) <= tol && abs(c.G-d.G) <= tol && abs(c.B-d.B) <= tol
}

// IsNaN reports whether any channel is NaN.
func (c RGB[T]) IsNaN() bool {
	return isNaN(c.R) || isNaN(c.G) || isNaN(c.B)
}

// IsInf reports whether any channel is infinite.
func (c RGB[T]) IsInf() bool {
	return isInf(c.R) || isInf(c.G) || isInf(c.B)
}

// HasNegative reports whether any channel is negative.
func (c RGB[T]) HasNegative() bool {
	return c.R < 0 || c.G < 0 || c.B < 0
}

// InRange reports whether all channels lie in [lo, hi].
func (c RGB[T]) InRange(lo, hi T) bool {
	return c.R >= lo && c.R <= hi &&
		c.G >= lo && c.G <= hi &&
		c.B >= lo && c.B <= hi
}

// Add returns the channel-wise sum of c and d.
func (c RGBA[T]) Add(d RGBA[T]) RGBA[T] {
	return RGBA[T]{c.R + d.R, c.G + d.G, c.B + d.B, c.A + d.A}
}

// Sub returns the channel-wise difference of c and d.
func (c RGBA[T]) Sub(d RGBA[T]) RGBA[T] {
	return RGBA[T]{c.R - d.R, c.G - d.G, c.B - d.B, c.A - d.A}
}

// Mul returns the channel-wise product of c and d.
func (c RGBA[T]) Mul(d RGBA[T]) RGBA[T] {
	return RGBA[T]{c.R * d.R, c.G * d.G, c.B * d.B, c.A * d.A}
}

// Div returns the channel-wise quotient of c and d.  Channels whose
// quotient is not finite are set to 0, so the operation is total.
func (c RGBA[T]) Div(d RGBA[T]) RGBA[T] {
	return RGBA[T]{
		safeDiv(c.R, d.R), safeDiv(c.G, d.G),
		safeDiv(c.B, d.B), safeDiv(c.A, d.A),
	}
}

// Scale multiplies every channel by s.
func (c RGBA[T]) Scale(s T) RGBA[T] {
	return RGBA[T]{c.R * s, c.G * s, c.B * s, c.A * s}
}

// Neg negates every channel.
func (c RGBA[T]) Neg() RGBA[T] {
	return RGBA[T]{-c.R, -c.G, -c.B, -c.A}
}

// Lerp blends between c (t=0) and d (t=1).
func (c RGBA[T]) Lerp(d RGBA[T], t T) RGBA[T] {
	return RGBA[T]{
		c.R + (d.R-c.R)*t,
		c.G + (d.G-c.G)*t,
		c.B + (d.B-c.B)*t,
		c.A + (d.A-c.A)*t,
	}
}

// Min returns the channel-wise minimum of c and d.
func (c RGBA[T]) Min(d RGBA[T]) RGBA[T] {
	return RGBA[T]{min2(c.R, d.R), min2(c.G, d.G), min2(c.B, d.B), min2(c.A, d.A)}
}

// Max returns the channel-wise maximum of c and d.
func (c RGBA[T]) Max(d RGBA[T]) RGBA[T] {
	return RGBA[T]{max2(c.R, d.R), max2(c.G, d.G), max2(c.B, d.B), max2(c.A, d.A)}
}

// Clamp01 restricts every channel to [0, 1].
func (c RGBA[T]) Clamp01() RGBA[T] {
	return RGBA[T]{clamp01(c.R), clamp01(c.G), clamp01(c.B), clamp01(c.A)}
}

// AddSample updates the moving average c with the n-th sample, using
// the same incremental form as [RGB.AddSample].
func (c RGBA[T]) AddSample(sample RGBA[T], n int) RGBA[T] {
	if n < 1 {
		panic("radiance: AddSample called with non-positive sample count")
	}
	inv := 1 / T(n)
	return RGBA[T]{
		c.R + (sample.R-c.R)*inv,
		c.G + (sample.G-c.G)*inv,
		c.B + (sample.B-c.B)*inv,
		c.A + (sample.A-c.A)*inv,
	}
}

// Average returns the mean of the colour channels.  Alpha is not
// included.
func (c RGBA[T]) Average() T {
	return (c.R + c.G + c.B) / 3
}

// Lightness returns the mean of the largest and smallest colour
// channel.  Alpha is not included.
func (c RGBA[T]) Lightness() T {
	return c.RGB().Lightness()
}

// Luminance returns the Rec. 709 relative luminance of the colour
// channels.
func (c RGBA[T]) Luminance() T {
	return c.RGB().Luminance()
}

// AlmostEqual reports whether all channels of c and d agree within
// the default tolerance for the precision T.
func (c RGBA[T]) AlmostEqual(d RGBA[T]) bool {
	return c.AlmostEqualTol(d, eps[T]())
}

// AlmostEqualTol reports whether all channels of c and d agree within
// the given tolerance.
func (c RGBA[T]) AlmostEqualTol(d RGBA[T], tol T) bool {
	return abs(c.R-d.R) <= tol && abs(c.G-d.G) <= tol &&
		abs(c.B-d.B) <= tol && abs(c.A-d.A) <= tol
}

// IsNaN reports whether any channel is NaN.
func (c RGBA[T]) IsNaN() bool {
	return isNaN(c.R) || isNaN(c.G) || isNaN(c.B) || isNaN(c.A)
}

// IsInf reports whether any channel is infinite.
func (c RGBA[T]) IsInf() bool {
	return isInf(c.R) || isInf(c.G) || isInf(c.B) || isInf(c.A)
}

// HasNegative reports whether any channel is negative.
func (c RGBA[T]) HasNegative() bool {
	return c.R < 0 || c.G < 0 || c.B < 0 || c.A < 0
}

// InRange reports whether all channels lie in [lo, hi].
func (c RGBA[T]) InRange(lo, hi T) bool {
	return c.R >= lo && c.R <= hi &&
		c.G >= lo && c.G <= hi &&
		c.B >= lo && c.B <= hi &&
		c.A >= lo && c.A <= hi
}
