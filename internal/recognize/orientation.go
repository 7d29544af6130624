package recognize

import (
	"math"

	"github.com/GustaPeruci/CistercianNumberVision/internal/raster"
	"github.com/GustaPeruci/CistercianNumberVision/pkg/geometry"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

// principalAxis returns the dominant orientation in degrees [0,180) and the
// elongation (major/minor axis length ratio) of the foreground pixels inside
// the bounds. Orientation comes from the eigenvectors of the 2x2 pixel
// covariance; a straight stroke of any thickness shows up as a strongly
// elongated distribution along its direction.
func principalAxis(bin *raster.Bitmap, bounds geometry.RectInt) (angleDeg, elongation float64) {
	r := bounds.Intersect(bin.Bounds())

	var xs, ys []float64
	for y := r.Y; y < r.Y+r.Height; y++ {
		for x := r.X; x < r.X+r.Width; x++ {
			if bin.At(x, y) != 0 {
				xs = append(xs, float64(x))
				ys = append(ys, float64(y))
			}
		}
	}
	if len(xs) < 3 {
		return 0, 1
	}

	varX := stat.Variance(xs, nil)
	varY := stat.Variance(ys, nil)
	cov := stat.Covariance(xs, ys, nil)

	sym := mat.NewSymDense(2, []float64{varX, cov, cov, varY})
	var eig mat.EigenSym
	if !eig.Factorize(sym, true) {
		return 0, 1
	}

	vals := eig.Values(nil) // ascending
	var vecs mat.Dense
	eig.VectorsTo(&vecs)

	// Major axis direction from the eigenvector of the larger eigenvalue.
	vx, vy := vecs.At(0, 1), vecs.At(1, 1)
	angleDeg = math.Atan2(vy, vx) * 180 / math.Pi
	if angleDeg < 0 {
		angleDeg += 180
	}
	if angleDeg >= 180 {
		angleDeg -= 180
	}

	minor, major := vals[0], vals[1]
	if major <= 0 {
		return angleDeg, 1
	}
	if minor < 1e-9 {
		minor = 1e-9
	}
	elongation = math.Sqrt(major / minor)

	return angleDeg, elongation
}
