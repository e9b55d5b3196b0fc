package detection

import (
	"errors"
	"fmt"
	"image"
	"math"

	"github.com/landwatch/landchange/internal/imaging"
)

// Fixed policy values of the detector. Exposed as named constants so the
// defaults are documented and tunable in one place.
const (
	// DefaultThreshold is the binarization threshold applied to the combined
	// Lab difference map. A pixel is foreground iff its combined difference
	// strictly exceeds the threshold.
	DefaultThreshold = 30

	// MorphKernelSize is the side length of the square neighborhood used by
	// the morphological opening and closing passes.
	MorphKernelSize = 5

	// DefaultMinRegionArea is the minimum pixel area a connected component
	// must have to be reported as a region. Smaller components are treated
	// as mask noise surviving morphological cleanup.
	DefaultMinRegionArea = 100
)

// Channel weights for combining the per-channel Lab differences. Lightness
// is weighted twice each chroma channel.
const (
	weightL = 0.5
	weightA = 0.25
	weightB = 0.25
)

// ErrDimensionMismatch indicates that two images fed to the difference
// engine have unequal dimensions. The orchestrator prevents this by
// resizing, so it only surfaces when the engine is called directly.
// Test with errors.Is.
var ErrDimensionMismatch = errors.New("image dimensions do not match")

// Options configures the difference engine.
type Options struct {
	// Threshold is the binarization threshold for the combined difference
	// map, on the 0-255 scale. See DefaultThreshold.
	Threshold float64
}

// DefaultOptions returns the documented default detector configuration.
func DefaultOptions() Options {
	return Options{Threshold: DefaultThreshold}
}

// DetectChanges computes a binary change mask between two images of equal
// dimensions.
//
// Both inputs are converted to CIE Lab. The absolute per-pixel difference is
// computed independently on each channel and combined as
//
//	0.5*diffL + 0.25*diffA + 0.25*diffB
//
// then binarized: a pixel is foreground (255) iff the combined value
// strictly exceeds opts.Threshold. One morphological opening pass removes
// isolated noise pixels and one closing pass fills small gaps inside change
// blobs, both over a 5x5 neighborhood.
//
// Returns:
//   - *image.Gray: the change mask, values restricted to {0, 255}, with the
//     same dimensions as the inputs.
//   - error: wraps ErrDimensionMismatch if the inputs differ in size, or an
//     imaging conversion error for malformed inputs.
//
// The inputs are never modified.
func DetectChanges(imgA, imgB image.Image, opts Options) (*image.Gray, error) {
	if imgA == nil || imgB == nil {
		return nil, fmt.Errorf("%w: nil image", imaging.ErrInvalidFormat)
	}

	ba, bb := imgA.Bounds(), imgB.Bounds()
	if ba.Dx() != bb.Dx() || ba.Dy() != bb.Dy() {
		return nil, fmt.Errorf("%w: %dx%d vs %dx%d",
			ErrDimensionMismatch, ba.Dx(), ba.Dy(), bb.Dx(), bb.Dy())
	}

	labA, err := imaging.ToLab(imgA)
	if err != nil {
		return nil, err
	}
	labB, err := imaging.ToLab(imgB)
	if err != nil {
		return nil, err
	}

	w, h := labA.Width, labA.Height
	mask := image.NewGray(image.Rect(0, 0, w, h))
	for i := range labA.L {
		combined := weightL*math.Abs(labA.L[i]-labB.L[i]) +
			weightA*math.Abs(labA.A[i]-labB.A[i]) +
			weightB*math.Abs(labA.B[i]-labB.B[i])
		if combined > opts.Threshold {
			mask.Pix[i] = 255
		}
	}

	mask = dilate(erode(mask)) // opening: remove isolated noise pixels
	mask = erode(dilate(mask)) // closing: fill small gaps inside blobs
	return mask, nil
}

// erode sets a pixel to foreground only if every in-bounds pixel of its
// MorphKernelSize x MorphKernelSize neighborhood is foreground.
// Out-of-bounds neighbors are ignored, so a uniform mask stays uniform.
func erode(m *image.Gray) *image.Gray {
	return spread(m, func(all, _ bool) bool { return all })
}

// dilate sets a pixel to foreground if any in-bounds pixel of its
// MorphKernelSize x MorphKernelSize neighborhood is foreground.
func dilate(m *image.Gray) *image.Gray {
	return spread(m, func(_, any bool) bool { return any })
}

// spread applies a 5x5 min/max filter to a binary mask. The pick function
// receives whether all neighbors are foreground and whether any neighbor is
// foreground, and decides the output pixel.
func spread(m *image.Gray, pick func(all, any bool) bool) *image.Gray {
	w, h := m.Rect.Dx(), m.Rect.Dy()
	r := MorphKernelSize / 2
	out := image.NewGray(m.Rect)

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			all, any := true, false
			for dy := -r; dy <= r; dy++ {
				for dx := -r; dx <= r; dx++ {
					nx, ny := x+dx, y+dy
					if nx < 0 || nx >= w || ny < 0 || ny >= h {
						continue
					}
					if m.Pix[ny*m.Stride+nx] != 0 {
						any = true
					} else {
						all = false
					}
				}
			}
			if pick(all, any) {
				out.Pix[y*out.Stride+x] = 255
			}
		}
	}

	return out
}
