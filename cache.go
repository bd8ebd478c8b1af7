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

import "sync"

// A Cache deduplicates equal immutable values, keeping one canonical
// instance per distinct value.  It is unbounded and never evicts;
// entries are removed only by [Cache.Clear].
//
// The zero value is ready to use.  A Cache is safe for concurrent
// use; concurrent first inserts of the same value return the same
// canonical instance.
//
// Values are compared by exact channel equality, not by the tolerance
// used by AlmostEqual.
type Cache[C comparable] struct {
	mu sync.Mutex
	m  map[C]*C
}

// Intern returns the canonical instance equal to c, storing c first
// if the cache does not yet contain an equal value.
func (ca *Cache[C]) Intern(c C) *C {
	ca.mu.Lock()
	defer ca.mu.Unlock()

	if p, ok := ca.m[c]; ok {
		return p
	}
	if ca.m == nil {
		ca.m = make(map[C]*C)
	}
	p := &c
	ca.m[c] = p
	return p
}

// Len returns the number of distinct values in the cache.
func (ca *Cache[C]) Len() int {
	ca.mu.Lock()
	defer ca.mu.Unlock()
	return len(ca.m)
}

// Clear removes all values from the cache.
func (ca *Cache[C]) Clear() {
	ca.mu.Lock()
	defer ca.mu.Unlock()
	ca.m = nil
}
