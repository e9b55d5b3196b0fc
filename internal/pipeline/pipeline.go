package pipeline

import (
	"github.com/landwatch/landchange/internal/annotate"
	"github.com/landwatch/landchange/internal/detection"
	"github.com/landwatch/landchange/internal/imaging"
)

// Options configures one pipeline run.
type Options struct {
	// Threshold is the difference-engine binarization threshold.
	// See detection.DefaultThreshold.
	Threshold float64

	// MinRegionArea is the minimum pixel area for a change region to be
	// reported. See detection.DefaultMinRegionArea.
	MinRegionArea int
}

// DefaultOptions returns the documented default pipeline configuration.
func DefaultOptions() Options {
	return Options{
		Threshold:     detection.DefaultThreshold,
		MinRegionArea: detection.DefaultMinRegionArea,
	}
}

// Process runs the full change-detection pipeline over two image files and
// returns the annotated figure.
//
// Both paths are loaded first; an unreadable or undecodable path fails with
// an error wrapping imaging.ErrImageLoad before any processing occurs. The
// second image is resized to exactly the first image's dimensions
// (deterministic Lanczos resampling, see imaging.ResizeTo), then the stages
// run in strict sequence: difference engine, region classifier, annotator.
// Any stage failure propagates to the caller unchanged; there is no partial
// result and no retry.
func Process(pathA, pathB string, opts Options) (*annotate.Result, error) {
	imgA, err := imaging.Load(pathA)
	if err != nil {
		return nil, err
	}
	imgB, err := imaging.Load(pathB)
	if err != nil {
		return nil, err
	}

	boundsA := imgA.Bounds()
	imgB = imaging.ResizeTo(imgB, boundsA.Dx(), boundsA.Dy())

	mask, err := detection.DetectChanges(imgA, imgB, detection.Options{Threshold: opts.Threshold})
	if err != nil {
		return nil, err
	}

	regions, err := detection.Classify(imgA, imgB, mask, opts.MinRegionArea)
	if err != nil {
		return nil, err
	}

	return annotate.Annotate(imgB, regions)
}
