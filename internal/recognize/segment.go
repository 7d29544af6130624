package recognize

import (
	"github.com/GustaPeruci/CistercianNumberVision/internal/glyph"
	"github.com/GustaPeruci/CistercianNumberVision/internal/raster"
	"github.com/GustaPeruci/CistercianNumberVision/pkg/geometry"
)

// Segmentation locates the glyph structure inside a binary raster: the
// overall bounding box, the stem position, and the four quadrant regions.
// The stem itself belongs to no quadrant; each quadrant box is tightened to
// the foreground it actually contains, so an empty quadrant has an empty
// box and a stem-only glyph has four empty quadrants.
type Segmentation struct {
	Bounds  geometry.RectInt
	StemX   int
	CenterY int

	Quadrants map[glyph.QuadrantRole]geometry.RectInt

	// WholeRaster is set when no usable structure was found and the whole
	// raster was used as the bounding box instead.
	WholeRaster bool
}

// Segment splits the glyph into quadrants. The bounding box is the union of
// all component boxes; when there are none, or the union is degenerate
// (smaller than MinGlyphSize), the entire raster is used so that decoding
// never aborts for lack of structure. Segment has no failure path.
//
// The stem column is found by vertical projection (tallest foreground
// column in the box), and a band of StemHalfWidth either side of it is
// excluded from every quadrant. Marks attach to the stem, so each quadrant
// box is then shrunk to the bounding box of its own foreground; that keeps
// fill ratios and area fractions relative to the marks rather than to the
// stem-height slabs.
func Segment(bin *raster.Bitmap, comps []raster.Component, p Params) Segmentation {
	var box geometry.RectInt
	for _, c := range comps {
		box = box.Union(c.Bounds)
	}

	whole := false
	if box.Empty() || box.Width < p.MinGlyphSize || box.Height < p.MinGlyphSize {
		box = bin.Bounds()
		whole = true
	}

	stemX := stemColumn(bin, box)
	centerY := box.Center().Y

	quadrants := make(map[glyph.QuadrantRole]geometry.RectInt, len(glyph.PlaceRoles))
	for _, role := range glyph.PlaceRoles {
		slab := quadrantSlab(box, role, stemX, centerY, p.StemHalfWidth)
		quadrants[role] = contentBox(bin, slab)
	}

	return Segmentation{
		Bounds:      box,
		StemX:       stemX,
		CenterY:     centerY,
		WholeRaster: whole,
		Quadrants:   quadrants,
	}
}

// stemColumn returns the column with the most foreground inside the box.
// The stem is the tallest structure in any well-formed glyph; on a blank
// raster the pick is arbitrary and harmless.
func stemColumn(bin *raster.Bitmap, box geometry.RectInt) int {
	best := box.Center().X
	bestCount := -1
	for x := box.X; x < box.X+box.Width; x++ {
		col := geometry.RectInt{X: x, Y: box.Y, Width: 1, Height: box.Height}
		if n := bin.CountNonZero(col); n > bestCount {
			best, bestCount = x, n
		}
	}
	return best
}

// quadrantSlab carves one quarter of the box, leaving out the stem band.
// A slab squeezed to nothing by the band comes back empty.
func quadrantSlab(box geometry.RectInt, role glyph.QuadrantRole, stemX, centerY, band int) geometry.RectInt {
	x1, x2 := box.X, stemX-band
	if role.XDir() > 0 {
		x1, x2 = stemX+band+1, box.X+box.Width
	}
	y1, y2 := box.Y, centerY
	if role.YDir() > 0 {
		y1, y2 = centerY, box.Y+box.Height
	}
	if x2 < x1 {
		x2 = x1
	}
	if y2 < y1 {
		y2 = y1
	}
	return geometry.RectInt{X: x1, Y: y1, Width: x2 - x1, Height: y2 - y1}
}

// contentBox shrinks a region to the bounding box of its foreground,
// returning the empty rectangle when there is none.
func contentBox(bin *raster.Bitmap, region geometry.RectInt) geometry.RectInt {
	r := region.Intersect(bin.Bounds())
	if r.Empty() {
		return geometry.RectInt{}
	}

	minX, minY := r.X+r.Width, r.Y+r.Height
	maxX, maxY := r.X-1, r.Y-1
	for y := r.Y; y < r.Y+r.Height; y++ {
		for x := r.X; x < r.X+r.Width; x++ {
			if bin.At(x, y) == 0 {
				continue
			}
			minX, minY = min(minX, x), min(minY, y)
			maxX, maxY = max(maxX, x), max(maxY, y)
		}
	}
	if maxX < minX {
		return geometry.RectInt{}
	}
	return geometry.RectInt{X: minX, Y: minY, Width: maxX - minX + 1, Height: maxY - minY + 1}
}
