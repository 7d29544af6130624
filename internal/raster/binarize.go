package raster

import (
	"image"

	"gocv.io/x/gocv"
)

// BinarizeOptions configures grayscale-to-binary preprocessing.
type BinarizeOptions struct {
	BlockSize      int     // Adaptive threshold neighborhood size (odd)
	C              float32 // Constant subtracted from the local mean
	OpenIterations int     // Morphological open passes for noise removal
	KernelSize     int     // Morphology kernel edge length
}

// DefaultBinarizeOptions returns the preprocessing used for glyph renders
// and scans alike: Gaussian adaptive threshold plus a light open.
func DefaultBinarizeOptions() BinarizeOptions {
	return BinarizeOptions{
		BlockSize:      11,
		C:              2,
		OpenIterations: 1,
		KernelSize:     3,
	}
}

// Binarize converts a grayscale bitmap to binary (foreground 255) with
// dark-ink-on-light-background polarity inverted.
func Binarize(b *Bitmap, opts BinarizeOptions) *Bitmap {
	src := ToMat(b)
	defer src.Close()

	bin := gocv.NewMat()
	defer bin.Close()
	gocv.AdaptiveThreshold(src, &bin, 255, gocv.AdaptiveThresholdGaussian,
		gocv.ThresholdBinaryInv, opts.BlockSize, opts.C)

	if opts.OpenIterations > 0 {
		kernel := gocv.GetStructuringElement(gocv.MorphRect,
			image.Point{X: opts.KernelSize, Y: opts.KernelSize})
		defer kernel.Close()

		for i := 0; i < opts.OpenIterations; i++ {
			gocv.MorphologyEx(bin, &bin, gocv.MorphOpen, kernel)
		}
	}

	return FromMat(bin)
}
