package imaging

import (
	"errors"
	"fmt"
	"image"
	_ "image/gif"  // Register GIF format decoder
	_ "image/jpeg" // Register JPEG format decoder
	_ "image/png"  // Register PNG format decoder
	"os"

	"github.com/disintegration/imaging"
)

// ErrImageLoad indicates that an image path could not be opened or that its
// content could not be decoded as an image. Test with errors.Is.
var ErrImageLoad = errors.New("image load failed")

// Load reads and decodes an image from a file path.
//
// Parameters:
//   - path: Absolute or relative file path to the image. Supported formats
//     are PNG, JPEG, and GIF.
//
// Returns:
//   - image.Image: The decoded image. The concrete type depends on the image
//     format and color model (e.g., *image.RGBA, *image.NRGBA, *image.YCbCr).
//   - error: Wraps ErrImageLoad if the file cannot be opened or decoded.
//
// Every call reads from disk. The pipeline holds no state between
// invocations, so there is deliberately no caching layer here.
func Load(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: open %q: %v", ErrImageLoad, path, err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%w: decode %q: %v", ErrImageLoad, path, err)
	}

	return img, nil
}

// ResizeTo scales an image to exactly width x height pixels using Lanczos
// resampling.
//
// Lanczos is deterministic: the same input always produces the same output,
// which keeps pipeline results reproducible. The source image is never
// modified; a new image is returned. If the image already has the requested
// dimensions it is returned unchanged.
func ResizeTo(img image.Image, width, height int) image.Image {
	bounds := img.Bounds()
	if bounds.Dx() == width && bounds.Dy() == height {
		return img
	}
	return imaging.Resize(img, width, height, imaging.Lanczos)
}
