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

// Package radiance implements the colour core of a rendering pipeline.
//
// The package provides immutable colour values, channel packing,
// transfer functions, tone mapping, spectral sampling and a
// shared-exponent HDR encoding.  All types are immutable and all
// operations return new values, so everything except [Cache] can be
// used from multiple goroutines without synchronisation.
//
// # Colour Values
//
// [RGB] and [RGBA] are immutable colour tuples, generic over the
// scalar precision:
//
//	c := radiance.NewRGB[float64](0.2, 0.4, 0.8)
//	d := c.Scale(2).Clamp01()
//
// Channel arithmetic never mutates its operands.  Division forces
// non-finite results to zero; see [RGB.Div].
//
// # Packing
//
// [PackedOrder] and [ArrayOrder] describe how 8-bit channels are laid
// out in a 32-bit word or a flat byte buffer:
//
//	w := radiance.PackedARGB.Pack(255, 128, 0, 255)
//	r, g, b, a := radiance.PackedARGB.Unpack(w)
//
// [ConvertArray] converts whole buffers between array layouts.
//
// # Spectra and Tristimulus Values
//
// A [SpectralCurve] maps wavelength to amplitude.  [ToXYZ] integrates
// a curve against caller-supplied colour-matching data, and a [Space]
// converts the resulting [XYZ] value to linear RGB:
//
//	xyz, err := radiance.ToXYZ(curve, cie)
//	rgb := radiance.HDTV.XYZToRGB(xyz)
//
// # HDR Encoding
//
// [EncodeRGBE] and [DecodeRGBE] convert between a linear colour and a
// 32-bit word holding three 8-bit mantissas and a shared exponent.
package radiance
