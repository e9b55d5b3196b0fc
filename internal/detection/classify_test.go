package detection

import (
	"errors"
	"image"
	"image/color"
	"math"
	"testing"
)

func fullMask(width, height int) *image.Gray {
	mask := image.NewGray(image.Rect(0, 0, width, height))
	fillMask(mask, mask.Rect, 255)
	return mask
}

func TestClassify_RedVsBlueIsColorChange(t *testing.T) {
	red := solidImage(100, 100, color.RGBA{255, 0, 0, 255})
	blue := solidImage(100, 100, color.RGBA{0, 0, 255, 255})

	results, err := Classify(red, blue, fullMask(100, 100), DefaultMinRegionArea)
	if err != nil {
		t.Fatalf("Classify failed: %v", err)
	}
	if len(results) != 1 {
		t.Fatalf("got %d regions, want 1", len(results))
	}

	r := results[0]
	if r.Region.Bounds != image.Rect(0, 0, 100, 100) {
		t.Errorf("bounds: got %v, want (0,0)-(100,100)", r.Region.Bounds)
	}
	if r.Category != ColorChange {
		t.Errorf("category: got %v, want %v", r.Category, ColorChange)
	}
	// Red sits at hue 0, blue at hue 120 on the halved scale; both are at
	// full value.
	if math.Abs(r.Stats.HueDiff-120) > 1 {
		t.Errorf("HueDiff: got %.2f, want ~120", r.Stats.HueDiff)
	}
	if r.Stats.ValDiff > 1 {
		t.Errorf("ValDiff: got %.2f, want ~0", r.Stats.ValDiff)
	}
}

// When both the value and hue checks would fire, the value check must win.
func TestClassify_ValueCheckTakesPriority(t *testing.T) {
	// (255,0,0) -> H=0, V=255. (220,183,0) -> H~25, V=220.
	// ValDiff=35 > 30 and HueDiff~25 > 20: Major, not ColorChange.
	imgA := solidImage(50, 50, color.RGBA{255, 0, 0, 255})
	imgB := solidImage(50, 50, color.RGBA{220, 183, 0, 255})

	results, err := Classify(imgA, imgB, fullMask(50, 50), DefaultMinRegionArea)
	if err != nil {
		t.Fatalf("Classify failed: %v", err)
	}
	if len(results) != 1 {
		t.Fatalf("got %d regions, want 1", len(results))
	}

	r := results[0]
	if r.Stats.ValDiff <= MajorValueDiff {
		t.Fatalf("test setup: ValDiff %.2f does not exceed %d", r.Stats.ValDiff, MajorValueDiff)
	}
	if r.Stats.HueDiff <= ColorHueDiff {
		t.Fatalf("test setup: HueDiff %.2f does not exceed %d", r.Stats.HueDiff, ColorHueDiff)
	}
	if r.Category != Major {
		t.Errorf("category: got %v, want %v", r.Category, Major)
	}
}

func TestClassify_SmallDifferencesAreSubtle(t *testing.T) {
	imgA := solidImage(40, 40, color.RGBA{128, 128, 128, 255})
	imgB := solidImage(40, 40, color.RGBA{140, 140, 140, 255})

	results, err := Classify(imgA, imgB, fullMask(40, 40), DefaultMinRegionArea)
	if err != nil {
		t.Fatalf("Classify failed: %v", err)
	}
	if len(results) != 1 {
		t.Fatalf("got %d regions, want 1", len(results))
	}
	if results[0].Category != Subtle {
		t.Errorf("category: got %v, want %v", results[0].Category, Subtle)
	}
}

// Saturation differences are reported in the stats but never drive the
// category.
func TestClassify_SaturationReportedButNotUsed(t *testing.T) {
	imgA := solidImage(40, 40, color.RGBA{255, 0, 0, 255})     // saturated red
	imgB := solidImage(40, 40, color.RGBA{255, 128, 128, 255}) // washed-out red

	results, err := Classify(imgA, imgB, fullMask(40, 40), DefaultMinRegionArea)
	if err != nil {
		t.Fatalf("Classify failed: %v", err)
	}
	if len(results) != 1 {
		t.Fatalf("got %d regions, want 1", len(results))
	}

	r := results[0]
	if r.Stats.SatDiff < 100 {
		t.Errorf("SatDiff: got %.2f, want a large difference", r.Stats.SatDiff)
	}
	if r.Category != Subtle {
		t.Errorf("category: got %v, want %v (saturation must not reclassify)", r.Category, Subtle)
	}
}

// Regions below the minimum area never appear, whatever their color
// statistics.
func TestClassify_MinAreaSuppressesNoise(t *testing.T) {
	imgA := solidImage(100, 100, color.RGBA{255, 0, 0, 255})
	imgB := solidImage(100, 100, color.RGBA{0, 0, 255, 255})

	mask := image.NewGray(image.Rect(0, 0, 100, 100))
	fillMask(mask, image.Rect(10, 10, 17, 17), 255) // 49 px

	results, err := Classify(imgA, imgB, mask, DefaultMinRegionArea)
	if err != nil {
		t.Fatalf("Classify failed: %v", err)
	}
	if len(results) != 0 {
		t.Errorf("got %d regions, want 0", len(results))
	}
}

func TestClassify_DimensionMismatch(t *testing.T) {
	imgA := solidImage(100, 100, color.RGBA{255, 0, 0, 255})
	imgB := solidImage(100, 100, color.RGBA{0, 0, 255, 255})

	_, err := Classify(imgA, imgB, fullMask(50, 50), DefaultMinRegionArea)
	if !errors.Is(err, ErrDimensionMismatch) {
		t.Errorf("got %v, want ErrDimensionMismatch", err)
	}
}

func TestCategory_Table(t *testing.T) {
	tests := []struct {
		cat    Category
		label  string
		swatch color.RGBA
	}{
		{Major, "Major Change", color.RGBA{255, 255, 0, 255}},
		{ColorChange, "Color Change", color.RGBA{255, 165, 0, 255}},
		{Subtle, "Subtle Change", color.RGBA{0, 255, 0, 255}},
	}

	for _, tt := range tests {
		t.Run(tt.label, func(t *testing.T) {
			if got := tt.cat.Label(); got != tt.label {
				t.Errorf("Label: got %q, want %q", got, tt.label)
			}
			if got := tt.cat.Color(); got != tt.swatch {
				t.Errorf("Color: got %v, want %v", got, tt.swatch)
			}
		})
	}

	if len(Categories) != 3 {
		t.Errorf("Categories size: got %d, want 3", len(Categories))
	}
}
