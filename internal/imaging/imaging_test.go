package imaging

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"
)

// testPNG encodes a solid-color PNG of the given dimensions.
func testPNG(t *testing.T, width, height int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for x := 0; x < width; x++ {
		for y := 0; y < height; y++ {
			img.Set(x, y, color.RGBA{R: 200, G: 120, B: 40, A: 255})
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encode png: %v", err)
	}
	return buf.Bytes()
}

func TestThumbnailScalesDown(t *testing.T) {
	data := testPNG(t, 800, 600)

	out, err := Thumbnail(data, 400)
	if err != nil {
		t.Fatalf("Thumbnail: %v", err)
	}

	cfg, format, err := image.DecodeConfig(bytes.NewReader(out))
	if err != nil {
		t.Fatalf("decode thumbnail: %v", err)
	}
	if format != "jpeg" {
		t.Errorf("format: got %q, want jpeg", format)
	}
	if cfg.Width != 400 {
		t.Errorf("width: got %d, want 400", cfg.Width)
	}
	if cfg.Height != 300 {
		t.Errorf("height: got %d, want 300 (aspect preserved)", cfg.Height)
	}
}

func TestThumbnailKeepsSmallImages(t *testing.T) {
	data := testPNG(t, 200, 100)

	out, err := Thumbnail(data, 400)
	if err != nil {
		t.Fatalf("Thumbnail: %v", err)
	}

	cfg, _, err := image.DecodeConfig(bytes.NewReader(out))
	if err != nil {
		t.Fatalf("decode thumbnail: %v", err)
	}
	if cfg.Width != 200 || cfg.Height != 100 {
		t.Errorf("small image should keep its size, got %dx%d", cfg.Width, cfg.Height)
	}
}

func TestThumbnailDefaultWidth(t *testing.T) {
	data := testPNG(t, 1000, 500)

	out, err := Thumbnail(data, 0)
	if err != nil {
		t.Fatalf("Thumbnail: %v", err)
	}

	cfg, _, err := image.DecodeConfig(bytes.NewReader(out))
	if err != nil {
		t.Fatalf("decode thumbnail: %v", err)
	}
	if cfg.Width != DefaultThumbWidth {
		t.Errorf("width: got %d, want %d", cfg.Width, DefaultThumbWidth)
	}
}

func TestThumbnailRejectsGarbage(t *testing.T) {
	if _, err := Thumbnail([]byte("not an image"), 400); err == nil {
		t.Error("expected an error for non-image data")
	}
}
