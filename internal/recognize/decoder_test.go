package recognize_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/GustaPeruci/CistercianNumberVision/internal/glyph"
	"github.com/GustaPeruci/CistercianNumberVision/internal/raster"
	"github.com/GustaPeruci/CistercianNumberVision/internal/recognize"
)

// stubStrategy records whether it ran and returns a fixed value.
type stubStrategy struct {
	value  int
	called bool
}

func (s *stubStrategy) Name() string { return "stub" }

func (s *stubStrategy) Recognize(*raster.Bitmap, *recognize.Trace) int {
	s.called = true
	return s.value
}

// passthroughBinarize keeps decoder tests off the OpenCV path: canonical
// renders are already bilevel, so mid-gray thresholding is exact.
func passthroughBinarize(b *raster.Bitmap) *raster.Bitmap {
	return b.ThresholdInv(128)
}

func TestDecodeNilAndEmptyInput(t *testing.T) {
	strategy := &stubStrategy{value: 42}
	d := &recognize.Decoder{
		Params:   recognize.DefaultParams(),
		Strategy: strategy,
		Binarize: passthroughBinarize,
	}

	require.Equal(t, 0, d.Decode(nil, nil))
	require.Equal(t, 0, d.Decode(&raster.Bitmap{}, nil))
	require.False(t, strategy.called, "empty input must not reach the strategy")
}

func TestDecodeExactHitSkipsStrategy(t *testing.T) {
	bm, err := glyph.Encode(1993)
	require.NoError(t, err)

	strategy := &stubStrategy{value: -1}
	d := &recognize.Decoder{
		Params:   recognize.DefaultParams(),
		Strategy: strategy,
		Binarize: passthroughBinarize,
	}
	d.WithIndex(recognize.BuildExactIndex(map[int]*raster.Bitmap{1993: bm}))

	tr := &recognize.Trace{}
	require.Equal(t, 1993, d.Decode(bm, tr))
	require.False(t, strategy.called)
	require.NotEmpty(t, tr.Steps)
}

func TestDecodeIndexMissFallsThrough(t *testing.T) {
	bm, err := glyph.Encode(7)
	require.NoError(t, err)

	strategy := &stubStrategy{value: 7}
	d := &recognize.Decoder{
		Params:   recognize.DefaultParams(),
		Strategy: strategy,
		Binarize: passthroughBinarize,
	}
	d.WithIndex(recognize.NewExactIndex(glyph.CanvasWidth, glyph.CanvasHeight))

	require.Equal(t, 7, d.Decode(bm, nil))
	require.True(t, strategy.called, "an empty index must fall through to the strategy")
}

func TestDecodeBlankCanvasIsZero(t *testing.T) {
	// A blank page has no components: segmentation falls back to the whole
	// raster and every quadrant reads as digit 0.
	blank := raster.NewCanvas(glyph.CanvasWidth, glyph.CanvasHeight, glyph.Background)

	d := &recognize.Decoder{
		Params:   recognize.DefaultParams(),
		Strategy: recognize.NewFeatureCascade(&stubFinder{}, recognize.DefaultParams()),
		Binarize: passthroughBinarize,
	}

	require.Equal(t, 0, d.Decode(blank, nil))
}

func TestDecodeWithStrategySwap(t *testing.T) {
	d := recognize.NewDecoder()
	swapped := &stubStrategy{value: 11}
	d.WithStrategy(swapped)
	d.Binarize = passthroughBinarize

	bm, err := glyph.Encode(11)
	require.NoError(t, err)
	require.Equal(t, 11, d.Decode(bm, nil))
	require.True(t, swapped.called)
}
