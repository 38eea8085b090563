package texture

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"golang.org/x/image/bmp"
)

func testImage() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, 4, 2))
	for y := 0; y < 2; y++ {
		for x := 0; x < 4; x++ {
			img.Set(x, y, color.NRGBA{R: 255, G: 255, B: 255, A: 255})
		}
	}
	img.Set(0, 0, color.NRGBA{R: 255, A: 255})
	img.Set(3, 1, color.NRGBA{B: 255, A: 255})
	return img
}

func TestDecodeFormats(t *testing.T) {
	tests := []struct {
		name   string
		encode func(*bytes.Buffer) error
		format string
	}{
		{"png", func(b *bytes.Buffer) error { return png.Encode(b, testImage()) }, "png"},
		{"bmp", func(b *bytes.Buffer) error { return bmp.Encode(b, testImage()) }, "bmp"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			if err := tt.encode(&buf); err != nil {
				t.Fatalf("encode: %v", err)
			}

			img, format, err := Decode(&buf)
			if err != nil {
				t.Fatalf("Decode: %v", err)
			}
			if format != tt.format {
				t.Errorf("format = %q, want %q", format, tt.format)
			}
			if img.Bounds().Dx() != 4 || img.Bounds().Dy() != 2 {
				t.Errorf("size = %v, want 4x2", img.Bounds())
			}
			if got := img.RGBAAt(0, 0); got.R != 255 || got.G != 0 || got.B != 0 {
				t.Errorf("pixel (0,0) = %v, want red", got)
			}
			if got := img.RGBAAt(3, 1); got.B != 255 || got.R != 0 {
				t.Errorf("pixel (3,1) = %v, want blue", got)
			}
		})
	}
}

func TestDecodeFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tex.png")

	var buf bytes.Buffer
	if err := png.Encode(&buf, testImage()); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		t.Fatal(err)
	}

	img, err := DecodeFile(path)
	if err != nil {
		t.Fatalf("DecodeFile: %v", err)
	}
	if len(img.Pix) != 4*2*4 {
		t.Errorf("pixel buffer = %d bytes, want 32", len(img.Pix))
	}
}

func TestDecodeFileErrors(t *testing.T) {
	if _, err := DecodeFile("/nonexistent/texture.jpg"); err == nil {
		t.Error("expected error for missing file")
	}

	path := filepath.Join(t.TempDir(), "garbage.jpg")
	if err := os.WriteFile(path, []byte("not an image"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := DecodeFile(path); err == nil {
		t.Error("expected error for undecodable file")
	}
}

func TestToRGBAOffsetBounds(t *testing.T) {
	src := image.NewRGBA(image.Rect(10, 10, 13, 12))
	src.SetRGBA(10, 10, color.RGBA{G: 200, A: 255})

	got := ToRGBA(src)
	if got == src {
		t.Fatal("offset image should be copied")
	}
	if got.Bounds().Min != (image.Point{}) {
		t.Errorf("bounds min = %v, want origin", got.Bounds().Min)
	}
	if c := got.RGBAAt(0, 0); c.G != 200 {
		t.Errorf("pixel (0,0) = %v, want green 200", c)
	}

	packed := image.NewRGBA(image.Rect(0, 0, 2, 2))
	if ToRGBA(packed) != packed {
		t.Error("packed RGBA should be returned unchanged")
	}
}
