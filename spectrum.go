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
	"errors"
	"sort"
)

// A SpectralCurve maps wavelength (in nanometres) to radiometric
// amplitude.  Sampling outside a curve's domain yields 0.
//
// The set of implementations is closed: [ConstantSpectrum],
// [RegularSpectrum] and [IrregularSpectrum].  Curves are built once
// from tabulated data and are immutable afterwards.
type SpectralCurve interface {
	// Sample returns the amplitude at the given wavelength.
	Sample(lambda float64) float64

	isSpectralCurve()
}

// Errors returned by the spectrum constructors.
var (
	errTooFewSamples  = errors.New("radiance: spectrum needs at least two samples")
	errEmptyDomain    = errors.New("radiance: spectrum domain is empty")
	errLengthMismatch = errors.New("radiance: wavelength and amplitude counts differ")
)

// ConstantSpectrum is a spectrum with the same amplitude at every
// wavelength.
type ConstantSpectrum float64

// Sample implements [SpectralCurve].  The wavelength is ignored.
func (s ConstantSpectrum) Sample(lambda float64) float64 {
	return float64(s)
}

func (ConstantSpectrum) isSpectralCurve() {}

// RegularSpectrum is a spectrum sampled at uniform wavelength steps
// over a closed domain.
type RegularSpectrum struct {
	min, max float64
	delta    float64
	samples  []float64
}

// NewRegularSpectrum returns the spectrum with the given samples
// spaced uniformly over [min, max].  At least two samples are
// required.  The sample slice is copied.
func NewRegularSpectrum(min, max float64, samples []float64) (*RegularSpectrum, error) {
	if len(samples) < 2 {
		return nil, errTooFewSamples
	}
	if max <= min {
		return nil, errEmptyDomain
	}
	s := &RegularSpectrum{
		min:     min,
		max:     max,
		delta:   (max - min) / float64(len(samples)-1),
		samples: make([]float64, len(samples)),
	}
	copy(s.samples, samples)
	return s, nil
}

// Sample implements [SpectralCurve].  Inside [min, max] the value is
// linearly interpolated between the two bracketing samples, with the
// upper index clamped to the last sample; outside the domain the
// value is 0.
func (s *RegularSpectrum) Sample(lambda float64) float64 {
	if lambda < s.min || lambda > s.max {
		return 0
	}
	x := (lambda - s.min) / s.delta
	b0 := int(x)
	b1 := b0 + 1
	if b1 > len(s.samples)-1 {
		b1 = len(s.samples) - 1
	}
	dx := x - float64(b0)
	return (1-dx)*s.samples[b0] + dx*s.samples[b1]
}

func (*RegularSpectrum) isSpectralCurve() {}

// IrregularSpectrum is a spectrum given by explicit, not necessarily
// uniformly spaced (wavelength, amplitude) pairs.
type IrregularSpectrum struct {
	wavelengths []float64
	amplitudes  []float64
}

// NewIrregularSpectrum returns the spectrum through the given pairs.
// Both slices are copied, then sorted together by wavelength.
func NewIrregularSpectrum(wavelengths, amplitudes []float64) (*IrregularSpectrum, error) {
	if len(wavelengths) != len(amplitudes) {
		return nil, errLengthMismatch
	}
	if len(wavelengths) == 0 {
		return nil, errEmptyDomain
	}

	s := &IrregularSpectrum{
		wavelengths: make([]float64, len(wavelengths)),
		amplitudes:  make([]float64, len(amplitudes)),
	}
	copy(s.wavelengths, wavelengths)
	copy(s.amplitudes, amplitudes)
	sort.Sort(byWavelength{s})
	return s, nil
}

type byWavelength struct{ s *IrregularSpectrum }

func (b byWavelength) Len() int { return len(b.s.wavelengths) }
func (b byWavelength) Less(i, j int) bool {
	return b.s.wavelengths[i] < b.s.wavelengths[j]
}
func (b byWavelength) Swap(i, j int) {
	s := b.s
	s.wavelengths[i], s.wavelengths[j] = s.wavelengths[j], s.wavelengths[i]
	s.amplitudes[i], s.amplitudes[j] = s.amplitudes[j], s.amplitudes[i]
}

// Sample implements [SpectralCurve].  Inside the domain the value is
// linearly interpolated between the bracketing pairs; outside the
// domain the value is 0.
func (s *IrregularSpectrum) Sample(lambda float64) float64 {
	n := len(s.wavelengths)
	if lambda < s.wavelengths[0] || lambda > s.wavelengths[n-1] {
		return 0
	}

	// find the smallest index with wavelengths[idx] >= lambda
	idx := sort.SearchFloat64s(s.wavelengths, lambda)
	if idx == 0 {
		return s.amplitudes[0]
	}

	w0 := s.wavelengths[idx-1]
	w1 := s.wavelengths[idx]
	if w1 == w0 {
		return s.amplitudes[idx]
	}
	dx := (lambda - w0) / (w1 - w0)
	return (1-dx)*s.amplitudes[idx-1] + dx*s.amplitudes[idx]
}

func (*IrregularSpectrum) isSpectralCurve() {}

// MatchingFunctions holds colour-matching curves sampled at uniform
// wavelength steps.  The tables are an external data dependency; this
// package only consumes them.  All three weight tables must have the
// same length.
type MatchingFunctions struct {
	Min  float64 // wavelength of the first sample, in nanometres
	Step float64 // sampling interval, in nanometres

	X, Y, Z []float64
}

// Errors returned by [ToXYZ].
var (
	errBadMatching = errors.New("radiance: malformed colour-matching tables")
)

func (m *MatchingFunctions) check() error {
	if m.Step <= 0 || len(m.X) == 0 ||
		len(m.Y) != len(m.X) || len(m.Z) != len(m.X) {
		return errBadMatching
	}
	return nil
}

// ToXYZ integrates the curve against the colour-matching tables,
// yielding the tristimulus value of the spectrum.
//
// The quadrature is a rectangle rule evaluated strictly at the
// tables' native sampling.  Physical constants derived from measured
// spectra are computed through this function, so the quadrature must
// not change: any modification silently shifts every such constant.
func ToXYZ(c SpectralCurve, m *MatchingFunctions) (XYZ, error) {
	if err := m.check(); err != nil {
		return XYZ{}, err
	}

	var x, y, z float64
	for i := range m.X {
		lambda := m.Min + float64(i)*m.Step
		s := c.Sample(lambda)
		x += s * m.X[i]
		y += s * m.Y[i]
		z += s * m.Z[i]
	}
	return XYZ{x * m.Step, y * m.Step, z * m.Step}, nil
}

// XYZ is a CIE tristimulus value.
type XYZ struct {
	X, Y, Z float64
}

// Add returns the component-wise sum of c and d.
func (c XYZ) Add(d XYZ) XYZ {
	return XYZ{c.X + d.X, c.Y + d.Y, c.Z + d.Z}
}

// Scale multiplies every component by s.
func (c XYZ) Scale(s float64) XYZ {
	return XYZ{c.X * s, c.Y * s, c.Z * s}
}

// Normalized scales c so that X+Y+Z = 1.  A black value is returned
// unchanged.
func (c XYZ) Normalized() XYZ {
	sum := c.X + c.Y + c.Z
	return XYZ{safeDiv(c.X, sum), safeDiv(c.Y, sum), safeDiv(c.Z, sum)}
}
