package radiance

import (
	"bytes"
	"io"
	"testing"
)

func TestRecordRoundTrip(t *testing.T) {
	buf := &bytes.Buffer{}

	c64 := NewRGB(0.25, -1.5, 1e10)
	if err := WriteRGB(buf, c64); err != nil {
		t.Fatal(err)
	}
	if buf.Len() != 24 {
		t.Errorf("float64 record length = %d, want 24", buf.Len())
	}
	got64, err := ReadRGB[float64](buf)
	if err != nil {
		t.Fatal(err)
	}
	if got64 != c64 {
		t.Errorf("round trip %v -> %v", c64, got64)
	}

	buf.Reset()
	c32 := NewRGBA[float32](0.1, 0.2, 0.3, 1)
	if err := WriteRGBA(buf, c32); err != nil {
		t.Fatal(err)
	}
	if buf.Len() != 16 {
		t.Errorf("float32 record length = %d, want 16", buf.Len())
	}
	got32, err := ReadRGBA[float32](buf)
	if err != nil {
		t.Fatal(err)
	}
	if got32 != c32 {
		t.Errorf("round trip %v -> %v", c32, got32)
	}
}

func TestRecordLayout(t *testing.T) {
	// channels are stored big-endian in R, G, B order
	buf := &bytes.Buffer{}
	if err := WriteRGB(buf, NewRGB[float32](1, 0, 0)); err != nil {
		t.Fatal(err)
	}
	want := []byte{
		0x3F, 0x80, 0x00, 0x00, // 1.0
		0x00, 0x00, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x00,
	}
	if !bytes.Equal(buf.Bytes(), want) {
		t.Errorf("encoding = % X, want % X", buf.Bytes(), want)
	}
}

func TestRecordShortRead(t *testing.T) {
	_, err := ReadRGB[float64](bytes.NewReader(make([]byte, 10)))
	if err != io.ErrUnexpectedEOF {
		t.Errorf("short read: err = %v, want unexpected EOF", err)
	}
	_, err = ReadRGBA[float32](bytes.NewReader(nil))
	if err != io.EOF {
		t.Errorf("empty read: err = %v, want EOF", err)
	}
}
