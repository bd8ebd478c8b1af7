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

// rgbeTiny is the smallest channel magnitude that EncodeRGBE can
// represent; colours with a smaller maximum channel encode to the
// all-zero word.
const rgbeTiny = 1e-32

// rgbeSaturated is the brightest representable word: full mantissas
// with the largest exponent.
const rgbeSaturated = 0xFFFFFFFF

// EncodeRGBE encodes a linear colour into a 32-bit word holding three
// 8-bit channel mantissas and a shared 8-bit exponent (bias 128), in
// the layout R<<24 | G<<16 | B<<8 | E.
//
// The mantissa and exponent are derived by repeated halving or
// doubling rather than by logarithm/power functions, so the result is
// identical across platforms.  The encoding is lossy (about 1/256
// relative error) and loses further precision on every
// encode/decode round trip; the channel multiplier is 255, matching
// the original Radiance-style encoding.
//
// Colours with a NaN channel encode to the all-zero word.  An
// infinite largest channel, or a finite one too large for the shared
// exponent (above 2^127), saturates to the all-ones word.
func EncodeRGBE[T Float](c RGB[T]) uint32 {
	r := float64(c.R)
	g := float64(c.G)
	b := float64(c.B)

	if isNaN(r) || isNaN(g) || isNaN(b) {
		return 0
	}

	v := r
	if g > v {
		v = g
	}
	if b > v {
		v = b
	}
	if v < rgbeTiny {
		return 0
	}
	if isInf(v) {
		return rgbeSaturated
	}

	// bring the largest channel into (0.5, 1] by repeated halving or
	// doubling, counting the exponent
	m := v
	e := 0
	if v > 1 {
		for m > 1 {
			m *= 0.5
			e++
		}
	} else if v <= 0.5 {
		for m <= 0.5 {
			m *= 2
			e--
		}
	}
	if e > 127 {
		return rgbeSaturated
	}

	scale := m * 255.0 / v
	w := uint32(e + 128)
	w |= uint32(r*scale) << 24
	w |= uint32(g*scale) << 16
	w |= uint32(b*scale) << 8
	return w
}

// DecodeRGBE decodes a word produced by [EncodeRGBE].  The all-zero
// word decodes to black.
func DecodeRGBE[T Float](w uint32) RGB[T] {
	f := rgbeScale[w&0xFF]
	if f == 0 {
		return RGB[T]{}
	}
	return RGB[T]{
		T(f * (float64(w>>24) + 0.5)),
		T(f * (float64(w>>16&0xFF) + 0.5)),
		T(f * (float64(w>>8&0xFF) + 0.5)),
	}
}

// rgbeScale maps the exponent byte to the factor applied to the
// channel mantissas.  Entry 0 is reserved for black; entry i holds
// 2^(i-136), the extra 8 undoing the 8-bit mantissa scale.  The table
// is built once at start-up.
var rgbeScale = func() [256]float64 {
	var t [256]float64
	for i := 1; i < 256; i++ {
		f := 1.0
		e := i - (128 + 8)
		if e > 0 {
			for j := 0; j < e; j++ {
				f *= 2
			}
		} else {
			for j := 0; j < -e; j++ {
				f *= 0.5
			}
		}
		t[i] = f
	}
	return t
}()
