package texture

import (
	"image/color"
	"os"
	"path/filepath"
	"testing"
)

func tgaHeader(imageType byte, width, height int, bpp, descriptor byte) []byte {
	h := make([]byte, 18)
	h[2] = imageType
	h[12], h[13] = byte(width), byte(width>>8)
	h[14], h[15] = byte(height), byte(height>>8)
	h[16] = bpp
	h[17] = descriptor
	return h
}

// uncompressedTGA is a 2x2 24-bit bottom-up image: red, green on the
// bottom row and blue, white on the top row.
func uncompressedTGA() []byte {
	data := tgaHeader(tgaUncompressed, 2, 2, 24, 0)
	return append(data,
		0, 0, 255, 0, 255, 0, // bottom row (BGR)
		255, 0, 0, 255, 255, 255, // top row
	)
}

func TestDecodeTGAUncompressed(t *testing.T) {
	img, err := DecodeTGA(uncompressedTGA())
	if err != nil {
		t.Fatalf("DecodeTGA: %v", err)
	}

	tests := []struct {
		x, y int
		want color.RGBA
	}{
		{0, 1, color.RGBA{R: 255, A: 255}},
		{1, 1, color.RGBA{G: 255, A: 255}},
		{0, 0, color.RGBA{B: 255, A: 255}},
		{1, 0, color.RGBA{R: 255, G: 255, B: 255, A: 255}},
	}
	for _, tt := range tests {
		if got := img.RGBAAt(tt.x, tt.y); got != tt.want {
			t.Errorf("pixel (%d,%d) = %v, want %v", tt.x, tt.y, got, tt.want)
		}
	}
}

func TestDecodeTGARLE(t *testing.T) {
	data := tgaHeader(tgaRLE, 3, 1, 32, 0x20)
	data = append(data,
		0x81, 10, 20, 30, 40, // run of 2
		0x00, 1, 2, 3, 4, // one raw pixel
	)

	img, err := DecodeTGA(data)
	if err != nil {
		t.Fatalf("DecodeTGA: %v", err)
	}

	want := []color.RGBA{
		{R: 30, G: 20, B: 10, A: 40},
		{R: 30, G: 20, B: 10, A: 40},
		{R: 3, G: 2, B: 1, A: 4},
	}
	for x, w := range want {
		if got := img.RGBAAt(x, 0); got != w {
			t.Errorf("pixel %d = %v, want %v", x, got, w)
		}
	}
}

func TestDecodeTGAInvalid(t *testing.T) {
	tests := []struct {
		name string
		data []byte
	}{
		{"short header", make([]byte, 10)},
		{"color mapped", func() []byte {
			h := tgaHeader(tgaUncompressed, 1, 1, 24, 0)
			h[1] = 1
			return append(h, 0, 0, 0)
		}()},
		{"grayscale type", append(tgaHeader(3, 1, 1, 24, 0), 0, 0, 0)},
		{"16 bit", append(tgaHeader(tgaUncompressed, 1, 1, 16, 0), 0, 0)},
		{"empty", tgaHeader(tgaUncompressed, 0, 0, 24, 0)},
		{"truncated pixels", append(tgaHeader(tgaUncompressed, 2, 2, 24, 0), 1, 2, 3)},
		{"truncated run", append(tgaHeader(tgaRLE, 4, 1, 24, 0), 0x83, 1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := DecodeTGA(tt.data); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestDecodeFileTGA(t *testing.T) {
	path := filepath.Join(t.TempDir(), "face.TGA")
	if err := os.WriteFile(path, uncompressedTGA(), 0644); err != nil {
		t.Fatal(err)
	}

	img, err := DecodeFile(path)
	if err != nil {
		t.Fatalf("DecodeFile: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 2 || b.Dy() != 2 {
		t.Errorf("size = %v, want 2x2", b)
	}
}
