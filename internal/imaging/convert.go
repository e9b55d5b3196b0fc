package imaging

import (
	"errors"
	"fmt"
	"image"

	"github.com/lucasb-eyer/go-colorful"
)

// ErrInvalidFormat indicates that an image handed to a color-space converter
// is malformed: nil, or with empty bounds. Go's image model erases the
// channel count of the source file, so this is the Go-visible equivalent of
// a wrong-channel-count input. Test with errors.Is.
var ErrInvalidFormat = errors.New("invalid image format")

// LabImage holds an image converted to CIE Lab, stored as three dense
// row-major float64 planes.
//
// Values are scaled to 8-bit-compatible ranges: L in 0-255 (CIE L* times
// 2.55), a and b in 0-255 (CIE a*/b* offset by +128). This keeps difference
// thresholds expressed on the 0-255 scale meaningful.
type LabImage struct {
	Width  int
	Height int
	L      []float64
	A      []float64
	B      []float64
}

// At returns the L, a, b values at pixel (x, y).
// No bounds checking is performed; caller must ensure coordinates are valid.
func (p *LabImage) At(x, y int) (l, a, b float64) {
	i := y*p.Width + x
	return p.L[i], p.A[i], p.B[i]
}

// HSVImage holds an image converted to HSV, stored as three dense row-major
// float64 planes.
//
// Values use 8-bit-compatible ranges: H in 0-180 (degrees halved so the full
// hue circle fits an 8-bit scale), S and V in 0-255.
type HSVImage struct {
	Width  int
	Height int
	H      []float64
	S      []float64
	V      []float64
}

// At returns the H, S, V values at pixel (x, y).
// No bounds checking is performed; caller must ensure coordinates are valid.
func (p *HSVImage) At(x, y int) (h, s, v float64) {
	i := y*p.Width + x
	return p.H[i], p.S[i], p.V[i]
}

// ToLab converts an image to the CIE Lab analysis space.
//
// The conversion is pure and deterministic: the input is never modified and
// the same input always produces the same planes. sRGB linearization and the
// Lab transform come from go-colorful.
//
// Returns an error wrapping ErrInvalidFormat if img is nil or has empty
// bounds.
func ToLab(img image.Image) (*LabImage, error) {
	w, h, err := validate(img)
	if err != nil {
		return nil, err
	}

	out := &LabImage{
		Width:  w,
		Height: h,
		L:      make([]float64, w*h),
		A:      make([]float64, w*h),
		B:      make([]float64, w*h),
	}

	bounds := img.Bounds()
	i := 0
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			l, a, b := pixelColor(img, x, y).Lab()
			// go-colorful scales L to 0-1 and a/b to roughly -1..1.
			out.L[i] = clamp255(l * 255)
			out.A[i] = clamp255(a*100 + 128)
			out.B[i] = clamp255(b*100 + 128)
			i++
		}
	}

	return out, nil
}

// ToHSV converts an image to the HSV analysis space.
//
// The conversion is pure and deterministic. Hue is stored halved (0-180) and
// saturation/value scaled to 0-255, matching the ranges the classification
// thresholds are expressed in.
//
// Returns an error wrapping ErrInvalidFormat if img is nil or has empty
// bounds.
func ToHSV(img image.Image) (*HSVImage, error) {
	w, h, err := validate(img)
	if err != nil {
		return nil, err
	}

	out := &HSVImage{
		Width:  w,
		Height: h,
		H:      make([]float64, w*h),
		S:      make([]float64, w*h),
		V:      make([]float64, w*h),
	}

	bounds := img.Bounds()
	i := 0
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			hue, s, v := pixelColor(img, x, y).Hsv()
			out.H[i] = hue / 2
			out.S[i] = s * 255
			out.V[i] = v * 255
			i++
		}
	}

	return out, nil
}

// validate checks that an image is usable as converter input and returns its
// dimensions.
func validate(img image.Image) (width, height int, err error) {
	if img == nil {
		return 0, 0, fmt.Errorf("%w: nil image", ErrInvalidFormat)
	}
	bounds := img.Bounds()
	if bounds.Dx() <= 0 || bounds.Dy() <= 0 {
		return 0, 0, fmt.Errorf("%w: empty bounds %v", ErrInvalidFormat, bounds)
	}
	return bounds.Dx(), bounds.Dy(), nil
}

// pixelColor reads a pixel as a go-colorful color with 0-1 components.
func pixelColor(img image.Image, x, y int) colorful.Color {
	r, g, b, _ := img.At(x, y).RGBA()
	// Convert from 16-bit to 8-bit, then to 0-1.
	return colorful.Color{
		R: float64(uint8(r>>8)) / 255.0,
		G: float64(uint8(g>>8)) / 255.0,
		B: float64(uint8(b>>8)) / 255.0,
	}
}

// clamp255 constrains a value to the range [0, 255].
func clamp255(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return v
}
