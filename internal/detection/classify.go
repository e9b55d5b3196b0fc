package detection

import (
	"fmt"
	"image"
	"image/color"

	"github.com/landwatch/landchange/internal/imaging"
)

// Classification thresholds, on the same 8-bit-compatible scales the HSV
// conversion produces (hue 0-180, value 0-255).
const (
	// MajorValueDiff: a regional mean-value difference above this classifies
	// the region as Major, regardless of hue.
	MajorValueDiff = 30

	// ColorHueDiff: a regional mean-hue difference above this classifies the
	// region as ColorChange when the value check did not fire.
	ColorHueDiff = 20
)

// Category tags the nature of a detected change. The set is fixed; each
// category carries a display color and a legend label.
type Category int

const (
	// Major marks a strong brightness change, typically construction,
	// clearing, or new paving.
	Major Category = iota

	// ColorChange marks a hue shift at similar brightness, typically
	// vegetation or surface-cover change.
	ColorChange

	// Subtle marks a region that changed enough to survive masking but
	// shows neither a strong value nor hue shift.
	Subtle
)

// Categories lists all categories in legend order.
var Categories = []Category{Major, ColorChange, Subtle}

func (c Category) String() string {
	switch c {
	case Major:
		return "major"
	case ColorChange:
		return "color"
	case Subtle:
		return "subtle"
	}
	return fmt.Sprintf("category(%d)", int(c))
}

// Label returns the human-readable legend label for the category.
func (c Category) Label() string {
	switch c {
	case Major:
		return "Major Change"
	case ColorChange:
		return "Color Change"
	default:
		return "Subtle Change"
	}
}

// Color returns the fixed display color used to outline regions of this
// category.
func (c Category) Color() color.RGBA {
	switch c {
	case Major:
		return color.RGBA{R: 255, G: 255, B: 0, A: 255} // yellow
	case ColorChange:
		return color.RGBA{R: 255, G: 165, B: 0, A: 255} // orange
	default:
		return color.RGBA{R: 0, G: 255, B: 0, A: 255} // green
	}
}

// Stats holds the regional mean HSV differences a classification was based
// on. Hue means are plain arithmetic means; hue wrap-around is not handled.
type Stats struct {
	HueDiff float64
	// SatDiff is reported but takes no part in categorization. Whether
	// saturation should gate a category is an open product question; it is
	// surfaced here rather than silently folded into the rules.
	SatDiff float64
	ValDiff float64
}

// Classified pairs a region with its assigned category and the statistics
// that produced it.
type Classified struct {
	Region   Region
	Category Category
	Stats    Stats
}

// Classify extracts the change regions of a mask and assigns each a
// category by comparing regional average color statistics between the two
// source images.
//
// Both source images are converted to HSV. For every connected foreground
// component of the mask with at least minArea pixels, the mean hue,
// saturation, and value are computed over the component's bounding
// rectangle in each image. The category follows a fixed tie-break priority:
//
//	valDiff > MajorValueDiff  -> Major
//	hueDiff > ColorHueDiff    -> ColorChange
//	otherwise                 -> Subtle
//
// Results are sorted by bounding-box top-left coordinate (see FindRegions).
// Classify holds no state between calls; inputs are never modified.
//
// Returns an error wrapping ErrDimensionMismatch if the images and mask do
// not all share the same dimensions, or an imaging conversion error for
// malformed inputs.
func Classify(imgA, imgB image.Image, mask *image.Gray, minArea int) ([]Classified, error) {
	hsvA, err := imaging.ToHSV(imgA)
	if err != nil {
		return nil, err
	}
	hsvB, err := imaging.ToHSV(imgB)
	if err != nil {
		return nil, err
	}

	w, h := mask.Rect.Dx(), mask.Rect.Dy()
	if hsvA.Width != w || hsvA.Height != h || hsvB.Width != w || hsvB.Height != h {
		return nil, fmt.Errorf("%w: images %dx%d/%dx%d vs mask %dx%d",
			ErrDimensionMismatch, hsvA.Width, hsvA.Height, hsvB.Width, hsvB.Height, w, h)
	}

	regions := FindRegions(mask, minArea)
	classified := make([]Classified, 0, len(regions))

	for _, region := range regions {
		hA, sA, vA := meanHSV(hsvA, region.Bounds)
		hB, sB, vB := meanHSV(hsvB, region.Bounds)

		stats := Stats{
			HueDiff: absF(hA - hB),
			SatDiff: absF(sA - sB),
			ValDiff: absF(vA - vB),
		}

		category := Subtle
		switch {
		case stats.ValDiff > MajorValueDiff:
			category = Major
		case stats.HueDiff > ColorHueDiff:
			category = ColorChange
		}

		classified = append(classified, Classified{
			Region:   region,
			Category: category,
			Stats:    stats,
		})
	}

	return classified, nil
}

// meanHSV computes the mean hue, saturation, and value over a rectangular
// sub-region of an HSV image.
func meanHSV(img *imaging.HSVImage, rect image.Rectangle) (h, s, v float64) {
	n := float64(rect.Dx() * rect.Dy())
	for y := rect.Min.Y; y < rect.Max.Y; y++ {
		for x := rect.Min.X; x < rect.Max.X; x++ {
			ph, ps, pv := img.At(x, y)
			h += ph
			s += ps
			v += pv
		}
	}
	return h / n, s / n, v / n
}

func absF(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
