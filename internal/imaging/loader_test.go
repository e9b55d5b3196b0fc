package imaging

import (
	"errors"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func writeTestPNG(t *testing.T, path string, width, height int, c color.Color) {
	t.Helper()
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("failed to create %s: %v", path, err)
	}
	defer f.Close()
	if err := png.Encode(f, solidImage(width, height, c)); err != nil {
		t.Fatalf("failed to encode test image: %v", err)
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.png")
	writeTestPNG(t, path, 40, 30, color.RGBA{10, 20, 30, 255})

	img, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	bounds := img.Bounds()
	if bounds.Dx() != 40 || bounds.Dy() != 30 {
		t.Errorf("dimensions: got %dx%d, want 40x30", bounds.Dx(), bounds.Dy())
	}
}

func TestLoad_NonexistentPath(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.png"))
	if !errors.Is(err, ErrImageLoad) {
		t.Errorf("got %v, want ErrImageLoad", err)
	}
}

func TestLoad_UndecodableContent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "not-an-image.png")
	if err := os.WriteFile(path, []byte("this is not image data"), 0o644); err != nil {
		t.Fatalf("failed to write file: %v", err)
	}

	_, err := Load(path)
	if !errors.Is(err, ErrImageLoad) {
		t.Errorf("got %v, want ErrImageLoad", err)
	}
}

func TestResizeTo(t *testing.T) {
	img := solidImage(50, 50, color.RGBA{200, 100, 50, 255})

	resized := ResizeTo(img, 100, 80)
	bounds := resized.Bounds()
	if bounds.Dx() != 100 || bounds.Dy() != 80 {
		t.Errorf("dimensions: got %dx%d, want 100x80", bounds.Dx(), bounds.Dy())
	}
}

func TestResizeTo_SameDimensionsReturnsInput(t *testing.T) {
	img := solidImage(50, 50, color.RGBA{200, 100, 50, 255})

	if resized := ResizeTo(img, 50, 50); resized != img {
		t.Error("expected the input image back when dimensions already match")
	}
}

func TestResizeTo_UniformImageStaysUniform(t *testing.T) {
	img := solidImage(50, 50, color.RGBA{200, 100, 50, 255})

	resized := ResizeTo(img, 25, 25)
	r, g, b, _ := resized.At(12, 12).RGBA()
	r8, g8, b8 := uint8(r>>8), uint8(g>>8), uint8(b>>8)
	if absInt(int(r8)-200) > 1 || absInt(int(g8)-100) > 1 || absInt(int(b8)-50) > 1 {
		t.Errorf("resized pixel: got (%d,%d,%d), want near (200,100,50)", r8, g8, b8)
	}
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
