package detection

import (
	"image"
	"sort"
)

// Region is one connected component of the change mask that survived the
// minimum-area filter.
type Region struct {
	// Contour holds the outer boundary pixels of the component: foreground
	// pixels with at least one 4-connected background (or out-of-image)
	// neighbor. Inner hole boundaries are not included.
	Contour []image.Point

	// Bounds is the axis-aligned bounding box of the component, with
	// inclusive top-left and exclusive bottom-right.
	Bounds image.Rectangle

	// Area is the number of foreground pixels in the component.
	Area int
}

// FindRegions extracts the connected foreground components of a binary
// change mask.
//
// Connectivity is 8-connected (includes diagonals). Components with fewer
// than minArea pixels are discarded as noise. The surviving regions are
// returned sorted by bounding-box top-left coordinate (Y first, then X) so
// the order is deterministic regardless of scan order.
//
// The mask is read-only; any non-zero pixel counts as foreground.
func FindRegions(mask *image.Gray, minArea int) []Region {
	w, h := mask.Rect.Dx(), mask.Rect.Dy()
	visited := make([]bool, w*h)
	outside := outsideBackground(mask)

	var regions []Region
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if mask.Pix[y*mask.Stride+x] == 0 || visited[y*w+x] {
				continue
			}
			region := traceComponent(mask, visited, outside, x, y)
			if region.Area >= minArea {
				regions = append(regions, region)
			}
		}
	}

	sort.Slice(regions, func(i, j int) bool {
		if regions[i].Bounds.Min.Y != regions[j].Bounds.Min.Y {
			return regions[i].Bounds.Min.Y < regions[j].Bounds.Min.Y
		}
		return regions[i].Bounds.Min.X < regions[j].Bounds.Min.X
	})

	return regions
}

// outsideBackground marks the background pixels reachable from the image
// border (4-connected). Background enclosed by a component (a hole) is not
// marked, which is what lets contour extraction skip inner boundaries.
func outsideBackground(mask *image.Gray) []bool {
	w, h := mask.Rect.Dx(), mask.Rect.Dy()
	outside := make([]bool, w*h)

	var stack []image.Point
	seed := func(x, y int) {
		if mask.Pix[y*mask.Stride+x] == 0 && !outside[y*w+x] {
			outside[y*w+x] = true
			stack = append(stack, image.Point{X: x, Y: y})
		}
	}
	for x := 0; x < w; x++ {
		seed(x, 0)
		seed(x, h-1)
	}
	for y := 0; y < h; y++ {
		seed(0, y)
		seed(w-1, y)
	}

	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, d := range [4]image.Point{{1, 0}, {-1, 0}, {0, 1}, {0, -1}} {
			nx, ny := p.X+d.X, p.Y+d.Y
			if nx < 0 || nx >= w || ny < 0 || ny >= h {
				continue
			}
			seed(nx, ny)
		}
	}

	return outside
}

// traceComponent flood-fills one connected component starting at (startX,
// startY), collecting its area, bounding box, and outer boundary contour.
//
// Uses an explicit stack rather than recursion to avoid stack overflow on
// large components.
func traceComponent(mask *image.Gray, visited, outside []bool, startX, startY int) Region {
	w, h := mask.Rect.Dx(), mask.Rect.Dy()

	minX, minY := startX, startY
	maxX, maxY := startX, startY
	area := 0
	var contour []image.Point

	stack := []image.Point{{X: startX, Y: startY}}
	visited[startY*w+startX] = true

	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		area++

		if p.X < minX {
			minX = p.X
		}
		if p.X > maxX {
			maxX = p.X
		}
		if p.Y < minY {
			minY = p.Y
		}
		if p.Y > maxY {
			maxY = p.Y
		}

		if isOuterBoundary(mask, outside, p.X, p.Y) {
			contour = append(contour, p)
		}

		// 8-connected neighbors
		for dy := -1; dy <= 1; dy++ {
			for dx := -1; dx <= 1; dx++ {
				if dx == 0 && dy == 0 {
					continue
				}
				nx, ny := p.X+dx, p.Y+dy
				if nx < 0 || nx >= w || ny < 0 || ny >= h {
					continue
				}
				if visited[ny*w+nx] || mask.Pix[ny*mask.Stride+nx] == 0 {
					continue
				}
				visited[ny*w+nx] = true
				stack = append(stack, image.Point{X: nx, Y: ny})
			}
		}
	}

	return Region{
		Contour: contour,
		Bounds:  image.Rect(minX, minY, maxX+1, maxY+1),
		Area:    area,
	}
}

// isOuterBoundary reports whether a foreground pixel sits on the external
// boundary of its component: it touches the image edge or an outside
// background pixel (4-connected). Pixels that only border holes are not
// outer boundary.
func isOuterBoundary(mask *image.Gray, outside []bool, x, y int) bool {
	w, h := mask.Rect.Dx(), mask.Rect.Dy()
	for _, d := range [4]image.Point{{1, 0}, {-1, 0}, {0, 1}, {0, -1}} {
		nx, ny := x+d.X, y+d.Y
		if nx < 0 || nx >= w || ny < 0 || ny >= h {
			return true
		}
		if mask.Pix[ny*mask.Stride+nx] == 0 && outside[ny*w+nx] {
			return true
		}
	}
	return false
}
