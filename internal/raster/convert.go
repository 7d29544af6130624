package raster

import (
	"image"

	"gocv.io/x/gocv"
)

// ToMat converts a bitmap to a single-channel 8-bit Mat.
// The caller owns the returned Mat and must Close it.
func ToMat(b *Bitmap) gocv.Mat {
	mat := gocv.NewMatWithSize(b.Height, b.Width, gocv.MatTypeCV8U)
	for y := 0; y < b.Height; y++ {
		for x := 0; x < b.Width; x++ {
			mat.SetUCharAt(y, x, b.Pix[y*b.Width+x])
		}
	}
	return mat
}

// FromMat converts a single-channel Mat back to a bitmap.
func FromMat(mat gocv.Mat) *Bitmap {
	h, w := mat.Rows(), mat.Cols()
	b := New(w, h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			b.Pix[y*w+x] = mat.GetUCharAt(y, x)
		}
	}
	return b
}

// Resize scales the bitmap to the given size using area interpolation.
func Resize(b *Bitmap, width, height int) *Bitmap {
	if b.Width == width && b.Height == height {
		return b.Clone()
	}

	src := ToMat(b)
	defer src.Close()

	dst := gocv.NewMat()
	defer dst.Close()
	gocv.Resize(src, &dst, image.Point{X: width, Y: height}, 0, 0, gocv.InterpolationArea)

	return FromMat(dst)
}
