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

import "fmt"

// absent marks a channel that an order does not store.  Reading an
// absent channel yields its default value: 0 for colour channels and
// 255 for alpha.
const absent = -1

// PackedOrder describes how 8-bit channels are arranged within a
// 32-bit word.  Each channel has a bit shift, or is absent.  The set
// of orders is fixed at process start; all values are immutable.
type PackedOrder struct {
	name       string
	r, g, b, a int8
}

// The packed channel orders.
var (
	PackedRGB  = PackedOrder{name: "RGB", r: 16, g: 8, b: 0, a: absent}
	PackedBGR  = PackedOrder{name: "BGR", r: 0, g: 8, b: 16, a: absent}
	PackedRGBA = PackedOrder{name: "RGBA", r: 24, g: 16, b: 8, a: 0}
	PackedARGB = PackedOrder{name: "ARGB", r: 16, g: 8, b: 0, a: 24}
	PackedABGR = PackedOrder{name: "ABGR", r: 0, g: 8, b: 16, a: 24}
)

func (o PackedOrder) String() string {
	return o.name
}

// HasAlpha reports whether the order stores an alpha channel.
func (o PackedOrder) HasAlpha() bool {
	return o.a != absent
}

// Pack combines the given 8-bit channels into a single word.
// Channels the order does not store are dropped.
func (o PackedOrder) Pack(r, g, b, a uint8) uint32 {
	var w uint32
	w |= packChannel(r, o.r)
	w |= packChannel(g, o.g)
	w |= packChannel(b, o.b)
	w |= packChannel(a, o.a)
	return w
}

// Unpack extracts the 8-bit channels from a word.  Channels the order
// does not store take their default values.
func (o PackedOrder) Unpack(w uint32) (r, g, b, a uint8) {
	r = unpackChannel(w, o.r, 0)
	g = unpackChannel(w, o.g, 0)
	b = unpackChannel(w, o.b, 0)
	a = unpackChannel(w, o.a, 255)
	return r, g, b, a
}

func packChannel(v uint8, shift int8) uint32 {
	if shift == absent {
		return 0
	}
	return uint32(v) << uint(shift)
}

func unpackChannel(w uint32, shift int8, def uint8) uint8 {
	if shift == absent {
		return def
	}
	return uint8(w >> uint(shift))
}

// PackRGBA converts c to 8-bit channels (clamping to [0, 1] and
// truncating) and packs them using the order o.
func PackRGBA[T Float](o PackedOrder, c RGBA[T]) uint32 {
	return o.Pack(channel8(c.R), channel8(c.G), channel8(c.B), channel8(c.A))
}

// PackRGB packs c like [PackRGBA], with full-scale alpha.
func PackRGB[T Float](o PackedOrder, c RGB[T]) uint32 {
	return o.Pack(channel8(c.R), channel8(c.G), channel8(c.B), 255)
}

// UnpackRGBA decodes a packed word into a colour with channels in
// [0, 1].
func UnpackRGBA[T Float](o PackedOrder, w uint32) RGBA[T] {
	r, g, b, a := o.Unpack(w)
	return RGBAFrom8Bit[T](r, g, b, a)
}

// UnpackRGB decodes a packed word into a colour with channels in
// [0, 1], dropping alpha.
func UnpackRGB[T Float](o PackedOrder, w uint32) RGB[T] {
	r, g, b, _ := o.Unpack(w)
	return RGBFrom8Bit[T](r, g, b)
}

func channel8[T Float](v T) uint8 {
	return uint8(clamp01(v) * 255)
}

// ArrayOrder describes how 8-bit channels are arranged within a flat
// byte buffer.  Each colour occupies a fixed number of consecutive
// elements; each channel has an element offset, or is absent.
type ArrayOrder struct {
	name       string
	channels   int
	r, g, b, a int8
}

// The array channel orders.
var (
	ArrayRGB  = ArrayOrder{name: "RGB", channels: 3, r: 0, g: 1, b: 2, a: absent}
	ArrayRGBA = ArrayOrder{name: "RGBA", channels: 4, r: 0, g: 1, b: 2, a: 3}
	ArrayBGR  = ArrayOrder{name: "BGR", channels: 3, r: 2, g: 1, b: 0, a: absent}
	ArrayBGRA = ArrayOrder{name: "BGRA", channels: 4, r: 2, g: 1, b: 0, a: 3}
	ArrayARGB = ArrayOrder{name: "ARGB", channels: 4, r: 1, g: 2, b: 3, a: 0}
)

func (o ArrayOrder) String() string {
	return o.name
}

// Channels returns the number of buffer elements per colour.
func (o ArrayOrder) Channels() int {
	return o.channels
}

// HasAlpha reports whether the order stores an alpha channel.
func (o ArrayOrder) HasAlpha() bool {
	return o.a != absent
}

// Get reads one colour from buf starting at base.  Channels the order
// does not store take their default values.  Access beyond the buffer
// bounds panics.
func (o ArrayOrder) Get(buf []uint8, base int) (r, g, b, a uint8) {
	r = getElement(buf, base, o.r, 0)
	g = getElement(buf, base, o.g, 0)
	b = getElement(buf, base, o.b, 0)
	a = getElement(buf, base, o.a, 255)
	return r, g, b, a
}

// Put writes one colour to buf starting at base.  Channels the order
// does not store are dropped.  Access beyond the buffer bounds
// panics.
func (o ArrayOrder) Put(buf []uint8, base int, r, g, b, a uint8) {
	putElement(buf, base, o.r, r)
	putElement(buf, base, o.g, g)
	putElement(buf, base, o.b, b)
	putElement(buf, base, o.a, a)
}

func getElement(buf []uint8, base int, offset int8, def uint8) uint8 {
	if offset == absent {
		return def
	}
	return buf[base+int(offset)]
}

func putElement(buf []uint8, base int, offset int8, v uint8) {
	if offset == absent {
		return
	}
	buf[base+int(offset)] = v
}

// LengthError indicates that a buffer length is not a multiple of an
// array order's channel count.
type LengthError struct {
	Order string
	Len   int
}

func (e *LengthError) Error() string {
	return fmt.Sprintf("radiance: buffer length %d is not a multiple of the %s channel count",
		e.Len, e.Order)
}

// ConvertArray re-arranges a buffer of colours from the src order to
// the dst order.  All channels present in src are read before the
// destination element is written; defaults are substituted only for
// channels dst stores and src lacks.  The length of data must be a
// multiple of src's channel count.
func ConvertArray(dst, src ArrayOrder, data []uint8) ([]uint8, error) {
	if len(data)%src.channels != 0 {
		return nil, &LengthError{Order: src.name, Len: len(data)}
	}
	n := len(data) / src.channels

	out := make([]uint8, n*dst.channels)
	for i := 0; i < n; i++ {
		r, g, b, a := src.Get(data, i*src.channels)
		dst.Put(out, i*dst.channels, r, g, b, a)
	}
	return out, nil
}

// GetRGBA reads one colour from buf at base, scaled to [0, 1].
func GetRGBA[T Float](o ArrayOrder, buf []uint8, base int) RGBA[T] {
	r, g, b, a := o.Get(buf, base)
	return RGBAFrom8Bit[T](r, g, b, a)
}

// PutRGBA writes c to buf at base, converting channels to 8 bits by
// clamping to [0, 1] and truncating.
func PutRGBA[T Float](o ArrayOrder, buf []uint8, base int, c RGBA[T]) {
	o.Put(buf, base, channel8(c.R), channel8(c.G), channel8(c.B), channel8(c.A))
}
