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

// DominanceThreshold is the default margin used by the hue
// predicates: a primary predicate holds when the channel exceeds both
// other channels by at least this margin.
const DominanceThreshold = 0.5

// IsRed reports whether red dominates, using [DominanceThreshold].
func (c RGB[T]) IsRed() bool {
	return c.IsRedThreshold(DominanceThreshold)
}

// IsRedThreshold reports whether r-t >= g and r-t >= b.
func (c RGB[T]) IsRedThreshold(t T) bool {
	return c.R-t >= c.G && c.R-t >= c.B
}

// IsGreen reports whether green dominates, using [DominanceThreshold].
func (c RGB[T]) IsGreen() bool {
	return c.IsGreenThreshold(DominanceThreshold)
}

// IsGreenThreshold reports whether g-t >= r and g-t >= b.
func (c RGB[T]) IsGreenThreshold(t T) bool {
	return c.G-t >= c.R && c.G-t >= c.B
}

// IsBlue reports whether blue dominates, using [DominanceThreshold].
func (c RGB[T]) IsBlue() bool {
	return c.IsBlueThreshold(DominanceThreshold)
}

// IsBlueThreshold reports whether b-t >= r and b-t >= g.
func (c RGB[T]) IsBlueThreshold(t T) bool {
	return c.B-t >= c.R && c.B-t >= c.G
}

// IsCyan reports whether green and blue both dominate red, using
// [DominanceThreshold].
func (c RGB[T]) IsCyan() bool {
	return c.IsCyanThreshold(DominanceThreshold)
}

// IsCyanThreshold reports whether g-t >= r and b-t >= r.
func (c RGB[T]) IsCyanThreshold(t T) bool {
	return c.G-t >= c.R && c.B-t >= c.R
}

// IsMagenta reports whether red and blue both dominate green, using
// [DominanceThreshold].
func (c RGB[T]) IsMagenta() bool {
	return c.IsMagentaThreshold(DominanceThreshold)
}

// IsMagentaThreshold reports whether r-t >= g and b-t >= g.
func (c RGB[T]) IsMagentaThreshold(t T) bool {
	return c.R-t >= c.G && c.B-t >= c.G
}

// IsYellow reports whether red and green both dominate blue, using
// [DominanceThreshold].
func (c RGB[T]) IsYellow() bool {
	return c.IsYellowThreshold(DominanceThreshold)
}

// IsYellowThreshold reports whether r-t >= b and g-t >= b.
func (c RGB[T]) IsYellowThreshold(t T) bool {
	return c.R-t >= c.B && c.G-t >= c.B
}

// IsGrayscale reports whether all channels agree within the default
// tolerance for the precision T.
func (c RGB[T]) IsGrayscale() bool {
	return c.IsGrayscaleThreshold(eps[T]())
}

// IsGrayscaleThreshold reports whether all pairwise channel
// differences are at most t.
func (c RGB[T]) IsGrayscaleThreshold(t T) bool {
	return abs(c.R-c.G) <= t && abs(c.G-c.B) <= t && abs(c.R-c.B) <= t
}

// IsBlack reports whether all channels are zero within the default
// tolerance for the precision T.
func (c RGB[T]) IsBlack() bool {
	return c.IsBlackThreshold(eps[T]())
}

// IsBlackThreshold reports whether all channels are at most t.
func (c RGB[T]) IsBlackThreshold(t T) bool {
	return c.R <= t && c.G <= t && c.B <= t
}

// IsWhite reports whether all channels are one within the default
// tolerance for the precision T.
func (c RGB[T]) IsWhite() bool {
	return c.IsWhiteThreshold(eps[T]())
}

// IsWhiteThreshold reports whether all channels are at least 1-t.
func (c RGB[T]) IsWhiteThreshold(t T) bool {
	return c.R >= 1-t && c.G >= 1-t && c.B >= 1-t
}
