package testutils

import (
	"bytes"
	"encoding/binary"
	"image"
	"image/color"
	"testing"

	"github.com/disintegration/imaging"
)

// JPEG encodes a solid w×h JPEG image.
func JPEG(t *testing.T, w, h int) []byte {
	t.Helper()
	return encode(t, w, h, imaging.JPEG)
}

// PNG encodes a solid w×h PNG image.
func PNG(t *testing.T, w, h int) []byte {
	t.Helper()
	return encode(t, w, h, imaging.PNG)
}

// JPEGWithOrientation encodes a w×h JPEG carrying an EXIF orientation tag.
func JPEGWithOrientation(t *testing.T, w, h int, orientation uint16) []byte {
	t.Helper()

	raw := JPEG(t, w, h)

	var exif bytes.Buffer
	exif.WriteString("Exif\x00\x00")
	exif.WriteString("MM\x00*")
	_ = binary.Write(&exif, binary.BigEndian, uint32(8)) // IFD0 offset
	_ = binary.Write(&exif, binary.BigEndian, uint16(1)) // entry count
	_ = binary.Write(&exif, binary.BigEndian, uint16(0x0112))
	_ = binary.Write(&exif, binary.BigEndian, uint16(3)) // SHORT
	_ = binary.Write(&exif, binary.BigEndian, uint32(1))
	_ = binary.Write(&exif, binary.BigEndian, orientation)
	_ = binary.Write(&exif, binary.BigEndian, uint16(0))
	_ = binary.Write(&exif, binary.BigEndian, uint32(0)) // next IFD

	var out bytes.Buffer
	out.Write(raw[:2]) // SOI
	out.Write([]byte{0xFF, 0xE1})
	_ = binary.Write(&out, binary.BigEndian, uint16(exif.Len()+2))
	out.Write(exif.Bytes())
	out.Write(raw[2:])
	return out.Bytes()
}

func encode(t *testing.T, w, h int, format imaging.Format) []byte {
	t.Helper()

	img := imaging.New(w, h, color.NRGBA{R: 200, G: 120, B: 40, A: 255})
	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, format); err != nil {
		t.Fatalf("encode fixture: %v", err)
	}
	return buf.Bytes()
}

// DecodeSize returns the pixel dimensions of an encoded image.
func DecodeSize(t *testing.T, data []byte) (int, int) {
	t.Helper()

	cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("decode config: %v", err)
	}
	return cfg.Width, cfg.Height
}
