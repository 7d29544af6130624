package raster

import (
	"math"

	"github.com/GustaPeruci/CistercianNumberVision/pkg/geometry"

	"gocv.io/x/gocv"
)

// LineSegment is a straight stroke candidate found by the probabilistic
// Hough transform, in full-bitmap coordinates.
type LineSegment struct {
	From, To geometry.PointInt
}

// AngleDeg returns the segment orientation in [0,180) degrees.
func (s LineSegment) AngleDeg() float64 {
	return s.From.ToFloat().AngleDeg(s.To.ToFloat())
}

// Length returns the segment length in pixels.
func (s LineSegment) Length() float64 {
	return s.From.ToFloat().Distance(s.To.ToFloat())
}

// HoughOptions configures probabilistic Hough line detection.
type HoughOptions struct {
	Threshold     int     // Minimum accumulator votes
	MinLineLength float32 // Shortest segment to report, pixels
	MaxLineGap    float32 // Largest gap bridged within one segment
}

// DefaultHoughOptions returns detection tuning suited to strokes of
// symbol scale (tens of pixels).
func DefaultHoughOptions() HoughOptions {
	return HoughOptions{
		Threshold:     20,
		MinLineLength: 25,
		MaxLineGap:    6,
	}
}

// LineSegments detects straight segments in the binary bitmap inside the
// region (clamped to bounds).
func (f *Finder) LineSegments(bin *Bitmap, region geometry.RectInt, opts HoughOptions) []LineSegment {
	r := region.Intersect(bin.Bounds())
	if r.Empty() {
		return nil
	}

	crop := bin.Crop(r)
	mat := ToMat(crop)
	defer mat.Close()

	lines := gocv.NewMat()
	defer lines.Close()
	gocv.HoughLinesPWithParams(mat, &lines, 1, math.Pi/180,
		opts.Threshold, opts.MinLineLength, opts.MaxLineGap)

	var segs []LineSegment
	for i := 0; i < lines.Rows(); i++ {
		v := lines.GetVeciAt(i, 0)
		segs = append(segs, LineSegment{
			From: geometry.Pt(int(v[0])+r.X, int(v[1])+r.Y),
			To:   geometry.Pt(int(v[2])+r.X, int(v[3])+r.Y),
		})
	}

	return segs
}
