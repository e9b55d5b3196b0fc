// Package imaging provides image loading, resizing, and color-space
// conversion for the change-detection pipeline.
//
// This package implements the input boundary of the pipeline: decoding
// raster files from disk, resizing one image to match another, and mapping
// decoded RGB images into the two analysis spaces the detection stages work
// in (CIE Lab and HSV). All operations work with standard Go image.Image
// types and use a coordinate system where (0,0) is at the top-left corner,
// X increases rightward, and Y increases downward.
//
// # Analysis Spaces
//
// Conversions produce dense float64 planes scaled to 8-bit-compatible
// ranges so difference thresholds stay meaningful across implementations:
//
//   - LabImage: L in 0-255, a and b in 0-255 (chroma offset by +128)
//   - HSVImage: H in 0-180 (degrees halved), S and V in 0-255
//
// The conversion math itself comes from github.com/lucasb-eyer/go-colorful,
// which linearizes sRGB before computing Lab under D65.
//
// # Error Handling
//
// Functions return errors for invalid inputs:
//
//   - ErrImageLoad: a path cannot be opened or its content cannot be
//     decoded as an image
//   - ErrInvalidFormat: a conversion input is nil or has empty bounds
//
// Errors are wrapped with fmt.Errorf and %w so callers can test them with
// errors.Is.
//
// # Thread Safety
//
// All functions are stateless and safe to call concurrently on different
// images. LabImage and HSVImage values are never mutated after creation.
package imaging
