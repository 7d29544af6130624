package recognize

import (
	"math"

	"github.com/GustaPeruci/CistercianNumberVision/internal/glyph"
	"github.com/GustaPeruci/CistercianNumberVision/internal/raster"
	"github.com/GustaPeruci/CistercianNumberVision/pkg/geometry"
)

// SegmentFinder detects straight line segments in a binary bitmap region.
// Implemented by raster.Finder via the probabilistic Hough transform.
type SegmentFinder interface {
	LineSegments(bin *raster.Bitmap, region geometry.RectInt, opts raster.HoughOptions) []raster.LineSegment
}

// SegmentPattern classifies quadrants from detected line segments instead of
// contour shapes. Strokes that merge into one connected component, such as
// the V of digit 8, still produce separate segments here, which the contour
// cascade cannot tell apart. It feeds the same FeatureVector and classifier
// as the cascade.
type SegmentPattern struct {
	Lines  SegmentFinder
	Finder ComponentFinder // used for segmentation only
	Params Params
}

// NewSegmentPattern creates the segment-pattern strategy. The raster.Finder
// satisfies both finder roles.
func NewSegmentPattern(lines SegmentFinder, finder ComponentFinder, p Params) *SegmentPattern {
	return &SegmentPattern{Lines: lines, Finder: finder, Params: p}
}

// Name implements Recognizer.
func (s *SegmentPattern) Name() string { return "segment-pattern" }

// Recognize implements Recognizer.
func (s *SegmentPattern) Recognize(bin *raster.Bitmap, tr *Trace) int {
	comps := s.Finder.Components(bin, bin.Bounds())
	seg := Segment(bin, comps, s.Params)
	tr.Addf("segment", "%d components, bounds=%+v", len(comps), seg.Bounds)

	return combineDigits(func(role glyph.QuadrantRole) int {
		region := seg.Quadrants[role].Intersect(bin.Bounds())
		if region.Empty() {
			return 0
		}
		foreground := bin.CountNonZero(region)
		if foreground < s.Params.MinQuadrantPixels {
			return 0
		}

		segs := mergeSegments(s.Lines.LineSegments(bin, region, s.Params.Hough))
		v := s.vectorFromSegments(segs, region, foreground)
		digit := Classify(v, role, s.Params)
		tr.Addf("quadrant", "%s: %d segments %+v -> %d", role, len(segs), v, digit)
		return digit
	}, tr)
}

// vectorFromSegments buckets segments by orientation. Two or more
// horizontals crossed with two or more verticals read as a closed box, not
// as crossing lines.
func (s *SegmentPattern) vectorFromSegments(segs []raster.LineSegment, region geometry.RectInt, foreground int) FeatureVector {
	p := s.Params

	v := FeatureVector{Components: len(segs)}
	if area := region.Area(); area > 0 {
		v.FillRatio = float64(foreground) / float64(area)
	}
	if len(segs) == 0 && foreground > 0 {
		// Marks too short or too blobby for Hough; leave counts zero and
		// let the fill-based rules decide.
		v.Components = 1
		return v
	}

	for _, seg := range segs {
		angle := seg.AngleDeg()
		switch {
		case p.diagonalAngle(angle):
			v.Diagonal++
		case angle < p.DiagonalAngleLow || angle > 180-p.DiagonalAngleLow:
			v.Horizontal++
		case angle > p.DiagonalAngleHigh && angle < 180-p.DiagonalAngleHigh:
			v.Vertical++
		}
	}

	if v.Horizontal >= 2 && v.Vertical >= 2 {
		v.Rectangles++
		v.Horizontal = 0
		v.Vertical = 0
	}

	return v
}

// mergeSegments collapses near-collinear duplicates: a thick stroke yields
// one Hough segment per edge, which would double every orientation count.
func mergeSegments(segs []raster.LineSegment) []raster.LineSegment {
	const (
		angleTol = 12.0 // degrees
		distTol  = 10.0 // pixels between midpoints
	)

	var merged []raster.LineSegment
	for _, s := range segs {
		dup := false
		for _, m := range merged {
			if angleDiff(s.AngleDeg(), m.AngleDeg()) < angleTol &&
				midpoint(s).Distance(midpoint(m)) < distTol {
				dup = true
				break
			}
		}
		if !dup {
			merged = append(merged, s)
		}
	}
	return merged
}

func midpoint(s raster.LineSegment) geometry.Point2D {
	return geometry.Point2D{
		X: float64(s.From.X+s.To.X) / 2,
		Y: float64(s.From.Y+s.To.Y) / 2,
	}
}

// angleDiff returns the distance between two orientations in [0,180),
// accounting for wraparound.
func angleDiff(a, b float64) float64 {
	d := math.Abs(a - b)
	if d > 90 {
		d = 180 - d
	}
	return d
}
