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

import "errors"

// Space is an RGB working space: a set of primaries and a white
// point, expressed as XYZ conversion matrices, together with the
// transfer function used for display encoding.
//
// A Space is immutable and safe for concurrent use.
type Space struct {
	// Gamma is the transfer function of the space.
	Gamma Gamma[float64]

	rgb2xyz [9]float64
	xyz2rgb [9]float64
}

var errBadPrimaries = errors.New("radiance: primaries and white point are degenerate")

// NewSpace derives a working space from the CIE xy chromaticities of
// the red, green and blue primaries and of the white point.  The
// white point is normalised to luminance 1.
func NewSpace(xr, yr, xg, yg, xb, yb, xw, yw float64, gamma Gamma[float64]) (*Space, error) {
	// XYZ coordinates of the primaries, assuming unit luminance:
	// X = x/y, Y = 1, Z = (1-x-y)/y.
	m := [9]float64{
		xr / yr, xg / yg, xb / yb,
		1, 1, 1,
		(1 - xr - yr) / yr, (1 - xg - yg) / yg, (1 - xb - yb) / yb,
	}
	mInv, ok := invertMatrix3(m)
	if !ok {
		return nil, errBadPrimaries
	}

	// scale the primary columns so that the white point maps to RGB(1,1,1)
	wx := xw / yw
	wz := (1 - xw - yw) / yw
	sr := mInv[0]*wx + mInv[1] + mInv[2]*wz
	sg := mInv[3]*wx + mInv[4] + mInv[5]*wz
	sb := mInv[6]*wx + mInv[7] + mInv[8]*wz

	s := &Space{Gamma: gamma}
	s.rgb2xyz = [9]float64{
		sr * m[0], sg * m[1], sb * m[2],
		sr * m[3], sg * m[4], sb * m[5],
		sr * m[6], sg * m[7], sb * m[8],
	}
	inv, ok := invertMatrix3(s.rgb2xyz)
	if !ok {
		return nil, errBadPrimaries
	}
	s.xyz2rgb = inv
	return s, nil
}

// HDTV is the Rec. 709 working space (sRGB primaries, D65 white
// point) with the default gamma 2.4 transfer function.  Its luminance
// row matches the coefficients used by [RGB.Luminance].
var HDTV = mustSpace(0.640, 0.330, 0.300, 0.600, 0.150, 0.060, 0.3127, 0.3290,
	DefaultGamma[float64]())

func mustSpace(xr, yr, xg, yg, xb, yb, xw, yw float64, gamma Gamma[float64]) *Space {
	s, err := NewSpace(xr, yr, xg, yg, xb, yb, xw, yw, gamma)
	if err != nil {
		panic(err)
	}
	return s
}

// XYZToRGB converts a tristimulus value to linear RGB in this space.
// The result is not clamped; out-of-gamut values have channels
// outside [0, 1].
func (s *Space) XYZToRGB(c XYZ) RGB[float64] {
	m := &s.xyz2rgb
	return RGB[float64]{
		m[0]*c.X + m[1]*c.Y + m[2]*c.Z,
		m[3]*c.X + m[4]*c.Y + m[5]*c.Z,
		m[6]*c.X + m[7]*c.Y + m[8]*c.Z,
	}
}

// RGBToXYZ converts linear RGB in this space to a tristimulus value.
func (s *Space) RGBToXYZ(c RGB[float64]) XYZ {
	m := &s.rgb2xyz
	return XYZ{
		m[0]*c.R + m[1]*c.G + m[2]*c.B,
		m[3]*c.R + m[4]*c.G + m[5]*c.B,
		m[6]*c.R + m[7]*c.G + m[8]*c.B,
	}
}

// ToRGB converts the tristimulus value to linear RGB in the given
// space.
func (c XYZ) ToRGB(s *Space) RGB[float64] {
	return s.XYZToRGB(c)
}

// EncodeRGB converts a linear colour to its display encoding using
// the space's transfer function.
func (s *Space) EncodeRGB(c RGB[float64]) RGB[float64] {
	return s.Gamma.EncodeRGB(c)
}

// DecodeRGB converts a display-encoded colour back to linear light
// using the space's transfer function.
func (s *Space) DecodeRGB(c RGB[float64]) RGB[float64] {
	return s.Gamma.DecodeRGB(c)
}

// SpectrumToRGB converts a spectrum to linear RGB in the given space
// by integrating it against the colour-matching tables.
func SpectrumToRGB(c SpectralCurve, m *MatchingFunctions, s *Space) (RGB[float64], error) {
	xyz, err := ToXYZ(c, m)
	if err != nil {
		return RGB[float64]{}, err
	}
	return s.XYZToRGB(xyz), nil
}

// invertMatrix3 returns the inverse of a row-major 3x3 matrix.
func invertMatrix3(m [9]float64) ([9]float64, bool) {
	a, b, c := m[0], m[1], m[2]
	d, e, f := m[3], m[4], m[5]
	g, h, i := m[6], m[7], m[8]

	det := a*(e*i-f*h) - b*(d*i-f*g) + c*(d*h-e*g)
	if det == 0 {
		return [9]float64{}, false
	}

	invDet := 1.0 / det

	return [9]float64{
		(e*i - f*h) * invDet, (c*h - b*i) * invDet, (b*f - c*e) * invDet,
		(f*g - d*i) * invDet, (a*i - c*g) * invDet, (c*d - a*f) * invDet,
		(d*h - e*g) * invDet, (b*g - a*h) * invDet, (a*e - b*d) * invDet,
	}, true
}
