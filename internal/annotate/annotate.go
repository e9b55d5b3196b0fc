package annotate

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"

	"github.com/anthonynsimon/bild/clone"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/landwatch/landchange/internal/detection"
)

// Title is the fixed caption rendered above the annotated photograph.
const Title = "Land Use Change Detection"

// Figure layout, in pixels.
const (
	strokeWidth = 2  // contour outline thickness
	margin      = 16 // canvas border around the photograph
	titleBand   = 28 // height of the title strip above the photograph
	legendBand  = 30 // height of the legend strip below the photograph
	swatchSize  = 10 // side length of a legend color swatch
	entryGap    = 18 // horizontal gap between legend entries
)

// Result is the final rendered figure, serialized for transport to a
// display layer.
type Result struct {
	// PNG holds the losslessly encoded figure.
	PNG []byte `json:"-"`

	// Base64 is PNG encoded as standard base64, for embedding in text
	// payloads.
	Base64 string `json:"image_base64"`

	// MimeType is always "image/png".
	MimeType string `json:"mime_type"`

	// Width and Height are the full canvas dimensions.
	Width  int `json:"width"`
	Height int `json:"height"`

	// PhotoRect is where the annotated photograph sits on the canvas. The
	// photograph is embedded 1:1, never scaled or cropped, so decoding PNG
	// and reading PhotoRect recovers it exactly.
	PhotoRect image.Rectangle `json:"photo_rect"`
}

// Annotate draws the classified regions onto a copy of img and composes the
// final figure.
//
// The caller's image is never mutated: drawing happens on a fresh RGBA
// copy. Each region's outer contour is stroked strokeWidth pixels wide in
// its category's display color, in slice order. The figure carries the
// fixed title centered in the top band and a legend strip anchored at the
// bottom-left corner with one swatch per category; all three entries are
// always shown, whether or not a region of that category occurs.
//
// The only side effect is writing to an in-memory buffer; rendering or
// encoding failures are returned unchanged.
func Annotate(img image.Image, regions []detection.Classified) (*Result, error) {
	photo := clone.AsRGBA(img)
	for _, cr := range regions {
		strokeContour(photo, cr.Region.Contour, cr.Category.Color())
	}

	pw, ph := photo.Bounds().Dx(), photo.Bounds().Dy()
	canvasW := pw + 2*margin
	if lw := legendWidth() + 2*margin; lw > canvasW {
		canvasW = lw
	}
	canvasH := titleBand + ph + legendBand + margin

	canvas := image.NewRGBA(image.Rect(0, 0, canvasW, canvasH))
	draw.Draw(canvas, canvas.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)

	photoRect := image.Rect(margin, titleBand, margin+pw, titleBand+ph)
	draw.Draw(canvas, photoRect, photo, photo.Bounds().Min, draw.Src)

	drawTitle(canvas, canvasW)
	drawLegend(canvas, margin, titleBand+ph+(legendBand-swatchSize)/2)

	var buf bytes.Buffer
	if err := png.Encode(&buf, canvas); err != nil {
		return nil, fmt.Errorf("failed to encode figure: %w", err)
	}

	return &Result{
		PNG:       buf.Bytes(),
		Base64:    base64.StdEncoding.EncodeToString(buf.Bytes()),
		MimeType:  "image/png",
		Width:     canvasW,
		Height:    canvasH,
		PhotoRect: photoRect,
	}, nil
}

// strokeContour paints each contour pixel as a strokeWidth x strokeWidth
// block, clipped to the image.
func strokeContour(img *image.RGBA, contour []image.Point, c color.RGBA) {
	b := img.Bounds()
	for _, p := range contour {
		for dy := 0; dy < strokeWidth; dy++ {
			for dx := 0; dx < strokeWidth; dx++ {
				x, y := b.Min.X+p.X+dx, b.Min.Y+p.Y+dy
				if x < b.Max.X && y < b.Max.Y {
					img.SetRGBA(x, y, c)
				}
			}
		}
	}
}

// drawTitle centers the fixed title in the top band.
func drawTitle(canvas *image.RGBA, canvasW int) {
	w := textWidth(Title)
	x := (canvasW - w) / 2
	if x < margin {
		x = margin
	}
	drawText(canvas, x, (titleBand+basicfont.Face7x13.Ascent)/2, Title, color.Black)
}

// drawLegend renders one swatch-and-label entry per category, left to
// right, anchored at (x, y).
func drawLegend(canvas *image.RGBA, x, y int) {
	for _, cat := range detection.Categories {
		swatch := image.Rect(x, y, x+swatchSize, y+swatchSize)
		draw.Draw(canvas, swatch, image.NewUniform(cat.Color()), image.Point{}, draw.Src)

		labelX := x + swatchSize + 5
		drawText(canvas, labelX, y+swatchSize-1, cat.Label(), color.Black)
		x = labelX + textWidth(cat.Label()) + entryGap
	}
}

// legendWidth returns the total width of the legend strip.
func legendWidth() int {
	w := 0
	for _, cat := range detection.Categories {
		w += swatchSize + 5 + textWidth(cat.Label()) + entryGap
	}
	return w - entryGap
}

func drawText(dst *image.RGBA, x, y int, s string, c color.Color) {
	d := font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(c),
		Face: basicfont.Face7x13,
		Dot:  fixed.P(x, y),
	}
	d.DrawString(s)
}

func textWidth(s string) int {
	return font.MeasureString(basicfont.Face7x13, s).Ceil()
}
