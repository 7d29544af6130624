package recognize

import (
	"github.com/GustaPeruci/CistercianNumberVision/internal/glyph"
	"github.com/GustaPeruci/CistercianNumberVision/internal/raster"
)

// FeatureCascade is the canonical recognizer: quadrant segmentation,
// per-quadrant geometric feature extraction, and the ordered-rule digit
// classifier.
type FeatureCascade struct {
	Finder ComponentFinder
	Params Params
}

// NewFeatureCascade creates the cascade strategy over a component finder.
func NewFeatureCascade(finder ComponentFinder, p Params) *FeatureCascade {
	return &FeatureCascade{Finder: finder, Params: p}
}

// Name implements Recognizer.
func (c *FeatureCascade) Name() string { return "feature-cascade" }

// Recognize implements Recognizer.
func (c *FeatureCascade) Recognize(bin *raster.Bitmap, tr *Trace) int {
	comps := c.Finder.Components(bin, bin.Bounds())
	seg := Segment(bin, comps, c.Params)
	tr.Addf("segment", "%d components, bounds=%+v stem_x=%d whole_raster=%v",
		len(comps), seg.Bounds, seg.StemX, seg.WholeRaster)

	ex := &Extractor{Finder: c.Finder, Params: c.Params}
	return combineDigits(func(role glyph.QuadrantRole) int {
		v := ex.Extract(bin, seg.Quadrants[role])
		digit := Classify(v, role, c.Params)
		tr.Addf("quadrant", "%s: %+v -> %d", role, v, digit)
		return digit
	}, tr)
}
