package recognize

import (
	"github.com/GustaPeruci/CistercianNumberVision/internal/raster"
	"github.com/GustaPeruci/CistercianNumberVision/pkg/geometry"
)

// FeatureVector summarizes the marks found in one quadrant. It is lossy by
// design: several visually distinct stroke sets can share a vector, and the
// classifier resolves those ties with quadrant identity and rule order.
type FeatureVector struct {
	Horizontal int     `json:"horizontal"`
	Vertical   int     `json:"vertical"`
	Diagonal   int     `json:"diagonal"`
	Rectangles int     `json:"rectangles"`
	Components int     `json:"components"`
	FillRatio  float64 `json:"fill_ratio"`
}

// IsZero reports whether the vector carries no evidence of marks.
func (v FeatureVector) IsZero() bool {
	return v == FeatureVector{}
}

// ComponentFinder lists connected components of a binary bitmap region.
// Implemented by raster.Finder.
type ComponentFinder interface {
	Components(bin *raster.Bitmap, region geometry.RectInt) []raster.Component
}

// Extractor derives feature vectors from quadrant regions of a binary raster.
type Extractor struct {
	Finder ComponentFinder
	Params Params
}

// Extract computes the feature vector for one region. The region is clamped
// to the raster; an empty or near-empty region yields the all-zero vector,
// which downstream reads as digit 0.
func (e *Extractor) Extract(bin *raster.Bitmap, region geometry.RectInt) FeatureVector {
	r := region.Intersect(bin.Bounds())
	if r.Empty() {
		return FeatureVector{}
	}

	foreground := bin.CountNonZero(r)
	if foreground < e.Params.MinQuadrantPixels {
		return FeatureVector{}
	}

	comps := e.Finder.Components(bin, r)
	return e.Classify(bin, r, comps, foreground)
}

// Classify builds the vector from already-extracted components. Split out
// from Extract so each rule can be exercised with synthetic components.
func (e *Extractor) Classify(bin *raster.Bitmap, region geometry.RectInt, comps []raster.Component, foreground int) FeatureVector {
	p := e.Params
	regionArea := float64(region.Area())

	v := FeatureVector{Components: len(comps)}
	if regionArea > 0 {
		v.FillRatio = float64(foreground) / regionArea
	}

	for _, c := range comps {
		w := float64(c.Bounds.Width)
		h := float64(c.Bounds.Height)

		switch {
		case w > p.HorizontalAspect*h:
			v.Horizontal++
		case h > p.VerticalAspect*w:
			v.Vertical++
		default:
			aspect := c.Bounds.AspectRatio()
			if aspect > p.SquareAspectLow && aspect < p.SquareAspectHigh &&
				c.Area > p.RectAreaFraction*regionArea {
				v.Rectangles++
			}
		}

		// Diagonal test is independent of the aspect classification.
		if e.isDiagonal(bin, c) {
			v.Diagonal++
		}
	}

	return v
}

// isDiagonal reports whether a component is a diagonal stroke: either its
// contour reduces to a two-point polyline at a diagonal angle, or, for the
// common case of a thick stroke whose outline keeps four corners, its
// principal axis is strongly elongated at a diagonal angle.
func (e *Extractor) isDiagonal(bin *raster.Bitmap, c raster.Component) bool {
	p := e.Params

	if len(c.Approx) == 2 {
		angle := c.Approx[0].ToFloat().AngleDeg(c.Approx[1].ToFloat())
		return p.diagonalAngle(angle)
	}

	angle, elongation := principalAxis(bin, c.Bounds)
	return elongation >= p.MinElongation && p.diagonalAngle(angle)
}
