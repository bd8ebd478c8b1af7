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

import (
	"io"
	"math"
)

// Colour records are stored as consecutive big-endian IEEE 754
// fields in channel order, 4 bytes per channel for float32 and
// 8 bytes for float64.  There is no header, length prefix or version
// field.  The stream is owned by the caller; this package never
// opens or closes it.

// WriteRGB writes the three channels of c to w.
func WriteRGB[T Float](w io.Writer, c RGB[T]) error {
	n := fieldSize[T]()
	buf := make([]byte, 3*n)
	putFloat(buf, 0, c.R)
	putFloat(buf, n, c.G)
	putFloat(buf, 2*n, c.B)
	_, err := w.Write(buf)
	return err
}

// ReadRGB reads a colour written by [WriteRGB].
func ReadRGB[T Float](r io.Reader) (RGB[T], error) {
	n := fieldSize[T]()
	buf := make([]byte, 3*n)
	if _, err := io.ReadFull(r, buf); err != nil {
		return RGB[T]{}, err
	}
	return RGB[T]{
		getFloat[T](buf, 0),
		getFloat[T](buf, n),
		getFloat[T](buf, 2*n),
	}, nil
}

// WriteRGBA writes the four channels of c to w.
func WriteRGBA[T Float](w io.Writer, c RGBA[T]) error {
	n := fieldSize[T]()
	buf := make([]byte, 4*n)
	putFloat(buf, 0, c.R)
	putFloat(buf, n, c.G)
	putFloat(buf, 2*n, c.B)
	putFloat(buf, 3*n, c.A)
	_, err := w.Write(buf)
	return err
}

// ReadRGBA reads a colour written by [WriteRGBA].
func ReadRGBA[T Float](r io.Reader) (RGBA[T], error) {
	n := fieldSize[T]()
	buf := make([]byte, 4*n)
	if _, err := io.ReadFull(r, buf); err != nil {
		return RGBA[T]{}, err
	}
	return RGBA[T]{
		getFloat[T](buf, 0),
		getFloat[T](buf, n),
		getFloat[T](buf, 2*n),
		getFloat[T](buf, 3*n),
	}, nil
}

// fieldSize returns the number of bytes per channel for the
// precision T.
func fieldSize[T Float]() int {
	var zero T
	if _, ok := any(zero).(float32); ok {
		return 4
	}
	return 8
}

func putFloat[T Float](data []byte, offset int, v T) {
	if v, ok := any(v).(float32); ok {
		putUint32(data, offset, math.Float32bits(v))
		return
	}
	putUint64(data, offset, math.Float64bits(float64(v)))
}

func getFloat[T Float](data []byte, offset int) T {
	var zero T
	if _, ok := any(zero).(float32); ok {
		return T(math.Float32frombits(getUint32(data, offset)))
	}
	return T(math.Float64frombits(getUint64(data, offset)))
}

func putUint32(data []byte, offset int, value uint32) {
	data[offset] = byte(value >> 24)
	data[offset+1] = byte(value >> 16)
	data[offset+2] = byte(value >> 8)
	data[offset+3] = byte(value)
}

func putUint64(data []byte, offset int, value uint64) {
	data[offset] = byte(value >> 56)
	data[offset+1] = byte(value >> 48)
	data[offset+2] = byte(value >> 40)
	data[offset+3] = byte(value >> 32)
	data[offset+4] = byte(value >> 24)
	data[offset+5] = byte(value >> 16)
	data[offset+6] = byte(value >> 8)
	data[offset+7] = byte(value)
}

func getUint32(data []byte, offset int) uint32 {
	return uint32(data[offset])<<24 | uint32(data[offset+1])<<16 |
		uint32(data[offset+2])<<8 | uint32(data[offset+3])
}

func getUint64(data []byte, offset int) uint64 {
	return uint64(data[offset])<<56 | uint64(data[offset+1])<<48 |
		uint64(data[offset+2])<<40 | uint64(data[offset+3])<<32 |
		uint64(data[offset+4])<<24 | uint64(data[offset+5])<<16 |
		uint64(data[offset+6])<<8 | uint64(data[offset+7])
}
