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
	"math"

	"github.com/chewxy/math32"
	"golang.org/x/exp/constraints"
)

// Float is the scalar constraint for colour channel values.
// Single-precision values use single-precision arithmetic throughout,
// so the two instantiations keep their distinct rounding behaviour.
type Float = constraints.Float

// eps returns the default comparison tolerance for the precision T.
func eps[T Float]() T {
	var zero T
	if _, ok := any(zero).(float32); ok {
		return 1e-5
	}
	return 1e-9
}

func pow[T Float](x, y T) T {
	if x, ok := any(x).(float32); ok {
		return T(math32.Pow(x, float32(y)))
	}
	return T(math.Pow(float64(x), float64(y)))
}

func abs[T Float](x T) T {
	if x, ok := any(x).(float32); ok {
		return T(math32.Abs(x))
	}
	return T(math.Abs(float64(x)))
}

func isNaN[T Float](x T) bool {
	return x != x
}

func isInf[T Float](x T) bool {
	if x, ok := any(x).(float32); ok {
		return math32.IsInf(x, 0)
	}
	return math.IsInf(float64(x), 0)
}

// safeDiv divides a by b, forcing non-finite results to zero.  The
// renderer relies on this when normalising by possibly-zero weights.
func safeDiv[T Float](a, b T) T {
	q := a / b
	if isNaN(q) || isInf(q) {
		return 0
	}
	return q
}

func clamp01[T Float](x T) T {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}

func min2[T Float](a, b T) T {
	if a < b {
		return a
	}
	return b
}

func max2[T Float](a, b T) T {
	if a > b {
		return a
	}
	return b
}
