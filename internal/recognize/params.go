// Package recognize recovers a numeral value from a raster rendering of a
// Cistercian glyph: quadrant segmentation, per-quadrant geometric features,
// a heuristic digit classifier, and an exact-hash fast path for canonical
// renders.
package recognize

import (
	"github.com/GustaPeruci/CistercianNumberVision/internal/raster"
)

// Params collects every tuning constant of the recognition pipeline so the
// classifier cascade can be unit-tested rule by rule instead of hiding
// thresholds in the code.
type Params struct {
	// MinGlyphSize is the smallest bounding-box edge accepted during
	// segmentation; a smaller or absent box falls back to the whole raster.
	MinGlyphSize int

	// MinQuadrantPixels is the foreground count below which a quadrant is
	// treated as empty (digit 0).
	MinQuadrantPixels int

	// StemHalfWidth is the half-width of the vertical band carved out
	// around the detected stem column. The stem belongs to no quadrant;
	// without the band a stem sliver lands in every quadrant region and
	// reads as a vertical mark.
	StemHalfWidth int

	// EmptyFillEpsilon is the fill ratio below which a feature vector
	// classifies as empty.
	EmptyFillEpsilon float64

	// HorizontalAspect: a component wider than this multiple of its height
	// counts as a horizontal line. VerticalAspect mirrors it for height.
	HorizontalAspect float64
	VerticalAspect   float64

	// SquareAspectLow/High bound the aspect ratio of a rectangle candidate.
	SquareAspectLow  float64
	SquareAspectHigh float64

	// RectAreaFraction is the minimum contour area, as a fraction of the
	// quadrant area, for a squarish component to count as a rectangle.
	RectAreaFraction float64

	// DiagonalAngleLow/High bound the first diagonal window in degrees;
	// the mirrored window is (180-High, 180-Low).
	DiagonalAngleLow  float64
	DiagonalAngleHigh float64

	// MinElongation is the major/minor axis ratio for the principal-axis
	// diagonal test applied when the contour does not reduce to two points.
	MinElongation float64

	// FilledRatio triggers the filled-quadrant rule (digit 5).
	// LooseFilledRatio is the second, looser pass (digit 9).
	// FallbackFillRatio is the high-fill case of the final fallback.
	FilledRatio       float64
	LooseFilledRatio  float64
	FallbackFillRatio float64

	// ManyComponents triggers the filled-quadrant rule by component count.
	ManyComponents int

	Binarize raster.BinarizeOptions
	Hough    raster.HoughOptions
}

// DefaultParams returns the tuning matched to the encoder's contract
// constants (300x400 canvas, symbol scale 50, stroke thickness 3).
func DefaultParams() Params {
	return Params{
		MinGlyphSize:      20,
		MinQuadrantPixels: 20,
		StemHalfWidth:     3,
		EmptyFillEpsilon:  0.002,
		HorizontalAspect:  2.5,
		VerticalAspect:    2.5,
		SquareAspectLow:   0.8,
		SquareAspectHigh:  1.2,
		RectAreaFraction:  0.10,
		DiagonalAngleLow:  30,
		DiagonalAngleHigh: 60,
		MinElongation:     4,
		FilledRatio:       0.30,
		LooseFilledRatio:  0.25,
		FallbackFillRatio: 0.15,
		ManyComponents:    3,
		Binarize:          raster.DefaultBinarizeOptions(),
		Hough:             raster.DefaultHoughOptions(),
	}
}

// diagonalAngle reports whether an orientation in [0,180) falls in either
// diagonal window.
func (p Params) diagonalAngle(deg float64) bool {
	if deg > p.DiagonalAngleLow && deg < p.DiagonalAngleHigh {
		return true
	}
	return deg > 180-p.DiagonalAngleHigh && deg < 180-p.DiagonalAngleLow
}
