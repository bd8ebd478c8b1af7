package radiance

import (
	"math"
	"testing"
)

func TestHDTVWhitePoint(t *testing.T) {
	// RGB(1,1,1) must map to the D65 white point with luminance 1
	w := HDTV.RGBToXYZ(Gray(1.0))
	if math.Abs(w.Y-1) > 1e-9 {
		t.Errorf("white luminance = %v, want 1", w.Y)
	}
	n := w.Normalized()
	if math.Abs(n.X-0.3127) > 1e-4 || math.Abs(n.Y-0.3290) > 1e-4 {
		t.Errorf("white chromaticity = (%v, %v), want (0.3127, 0.3290)", n.X, n.Y)
	}
}

func TestHDTVLuminanceRow(t *testing.T) {
	// the Y row of the Rec. 709 matrix is the source of the
	// luminance coefficients
	weights := []float64{0.212671, 0.715160, 0.072169}
	colours := []RGB[float64]{
		NewRGB(1.0, 0.0, 0.0),
		NewRGB(0.0, 1.0, 0.0),
		NewRGB(0.0, 0.0, 1.0),
	}
	for i, c := range colours {
		y := HDTV.RGBToXYZ(c).Y
		if math.Abs(y-weights[i]) > 1e-4 {
			t.Errorf("primary %d: Y = %v, want %v", i, y, weights[i])
		}
	}
}

func TestSpaceRoundTrip(t *testing.T) {
	colours := []RGB[float64]{
		{},
		{1, 1, 1},
		{0.2, 0.4, 0.6},
		{1.5, 0.01, 0.7}, // out of gamut is fine, the matrices are linear
	}
	for _, c := range colours {
		back := HDTV.XYZToRGB(HDTV.RGBToXYZ(c))
		if !back.AlmostEqualTol(c, 1e-9) {
			t.Errorf("round trip %v -> %v", c, back)
		}
	}
}

func TestXYZToRGBNotClamped(t *testing.T) {
	// a saturated spectral-locus colour lies outside the Rec. 709 gamut
	c := HDTV.XYZToRGB(XYZ{0.2, 0.8, 0.1})
	if !c.HasNegative() {
		t.Errorf("out-of-gamut conversion %v has no negative channel", c)
	}
}

func TestNewSpaceDegenerate(t *testing.T) {
	// three identical primaries give a singular matrix
	_, err := NewSpace(0.3, 0.3, 0.3, 0.3, 0.3, 0.3, 0.3127, 0.3290,
		DefaultGamma[float64]())
	if err != errBadPrimaries {
		t.Errorf("err = %v, want errBadPrimaries", err)
	}
}

func TestSpaceTransfer(t *testing.T) {
	c := NewRGB(0.1, 0.4, 0.9)
	enc := HDTV.EncodeRGB(c)
	if enc == c {
		t.Error("display encoding is a no-op")
	}
	back := HDTV.DecodeRGB(enc)
	if !back.AlmostEqualTol(c, 1e-9) {
		t.Errorf("transfer round trip %v -> %v", c, back)
	}
}

func TestSpectrumToRGB(t *testing.T) {
	m := &MatchingFunctions{
		Min:  500,
		Step: 10,
		X:    []float64{1, 2, 1},
		Y:    []float64{0, 1, 0},
		Z:    []float64{2, 0, 2},
	}

	got, err := SpectrumToRGB(ConstantSpectrum(0.5), m, HDTV)
	if err != nil {
		t.Fatal(err)
	}
	xyz, _ := ToXYZ(ConstantSpectrum(0.5), m)
	want := HDTV.XYZToRGB(xyz)
	if got != want {
		t.Errorf("SpectrumToRGB = %v, want %v", got, want)
	}

	if _, err := SpectrumToRGB(ConstantSpectrum(1), &MatchingFunctions{}, HDTV); err == nil {
		t.Error("malformed tables gave no error")
	}
}

func TestInvertMatrix3(t *testing.T) {
	m := [9]float64{
		2, 0, 1,
		1, 1, 0,
		0, 3, 1,
	}
	inv, ok := invertMatrix3(m)
	if !ok {
		t.Fatal("invertible matrix reported singular")
	}

	// m * inv must be the identity
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			var sum float64
			for k := 0; k < 3; k++ {
				sum += m[3*i+k] * inv[3*k+j]
			}
			want := 0.0
			if i == j {
				want = 1
			}
			if math.Abs(sum-want) > 1e-12 {
				t.Errorf("(m*inv)[%d][%d] = %v, want %v", i, j, sum, want)
			}
		}
	}

	if _, ok := invertMatrix3([9]float64{1, 2, 3, 2, 4, 6, 0, 0, 1}); ok {
		t.Error("singular matrix reported invertible")
	}
}
