package raster

import (
	"github.com/GustaPeruci/CistercianNumberVision/pkg/geometry"

	"gocv.io/x/gocv"
)

// Component is one connected foreground region. Coordinates are in the
// full-bitmap frame, not the cropped region the component was found in.
type Component struct {
	Bounds     geometry.RectInt
	Area       float64             // Enclosed contour area in pixels
	ContourLen float64             // Contour perimeter
	Approx     []geometry.PointInt // Polygon approximation of the contour
}

// Finder extracts connected components and line segments using OpenCV
// contours. The zero value is not usable; call NewFinder.
type Finder struct {
	// ApproxEpsilon is the polygon approximation tolerance as a fraction
	// of the contour perimeter.
	ApproxEpsilon float64
}

// NewFinder returns a Finder with the standard approximation tolerance.
func NewFinder() *Finder {
	return &Finder{ApproxEpsilon: 0.02}
}

// Components finds the external connected components of the binary bitmap
// inside the region (clamped to bounds). An empty region yields nil.
func (f *Finder) Components(bin *Bitmap, region geometry.RectInt) []Component {
	r := region.Intersect(bin.Bounds())
	if r.Empty() {
		return nil
	}

	crop := bin.Crop(r)
	mat := ToMat(crop)
	defer mat.Close()

	contours := gocv.FindContours(mat, gocv.RetrievalExternal, gocv.ChainApproxSimple)
	defer contours.Close()

	var comps []Component
	for i := 0; i < contours.Size(); i++ {
		contour := contours.At(i)

		box := gocv.BoundingRect(contour)
		arc := gocv.ArcLength(contour, true)

		approx := gocv.ApproxPolyDP(contour, f.ApproxEpsilon*arc, true)
		pts := make([]geometry.PointInt, approx.Size())
		for j := 0; j < approx.Size(); j++ {
			p := approx.At(j)
			pts[j] = geometry.Pt(p.X+r.X, p.Y+r.Y)
		}
		approx.Close()

		comps = append(comps, Component{
			Bounds: geometry.RectInt{
				X:      box.Min.X + r.X,
				Y:      box.Min.Y + r.Y,
				Width:  box.Dx(),
				Height: box.Dy(),
			},
			Area:       gocv.ContourArea(contour),
			ContourLen: arc,
			Approx:     pts,
		})
	}

	return comps
}
