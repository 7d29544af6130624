package recognize_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/GustaPeruci/CistercianNumberVision/internal/glyph"
	"github.com/GustaPeruci/CistercianNumberVision/internal/raster"
	"github.com/GustaPeruci/CistercianNumberVision/internal/recognize"
)

func TestReferenceIndexRoundTrip(t *testing.T) {
	ix := recognize.BuildReferenceIndex()

	// Every representable value hashes distinctly; no two renders collide.
	require.Equal(t, 10000, ix.Len())

	for n := 0; n <= 9999; n++ {
		bm, err := glyph.Encode(n)
		require.NoError(t, err)

		got, ok := ix.Lookup(bm)
		require.True(t, ok, "value %d should hit its own reference render", n)
		require.Equal(t, n, got)
	}
}

func TestExactIndexLookup(t *testing.T) {
	renders := make(map[int]*raster.Bitmap)
	for _, n := range []int{0, 5, 1234, 9999} {
		bm, err := glyph.Encode(n)
		require.NoError(t, err)
		renders[n] = bm
	}

	ix := recognize.BuildExactIndex(renders)
	require.Equal(t, len(renders), ix.Len())

	for n, bm := range renders {
		got, ok := ix.Lookup(bm.Clone())
		require.True(t, ok)
		require.Equal(t, n, got)
	}
}

func TestExactIndexMisses(t *testing.T) {
	bm, err := glyph.Encode(1234)
	require.NoError(t, err)

	ix := recognize.BuildExactIndex(map[int]*raster.Bitmap{1234: bm})

	_, ok := ix.Lookup(raster.NewCanvas(glyph.CanvasWidth, glyph.CanvasHeight, glyph.Background))
	require.False(t, ok, "blank canvas must not hit")

	// One flipped pixel changes the hash.
	perturbed := bm.Clone()
	perturbed.Set(0, 0, glyph.Ink)
	_, ok = ix.Lookup(perturbed)
	require.False(t, ok)
}

// fallbackStub lets the strategy tests observe delegation.
type fallbackStub struct {
	value  int
	called bool
}

func (f *fallbackStub) Name() string { return "fallback" }

func (f *fallbackStub) Recognize(*raster.Bitmap, *recognize.Trace) int {
	f.called = true
	return f.value
}

func TestExactMatchStrategy(t *testing.T) {
	bm, err := glyph.Encode(4321)
	require.NoError(t, err)

	// The strategy sees binarized input: bright foreground, dark
	// background. References are registered through the same mask form.
	ix := recognize.NewExactIndex(glyph.CanvasWidth, glyph.CanvasHeight)
	ix.AddBinary(bm.ThresholdInv(128), 4321)

	fb := &fallbackStub{value: 99}
	strat := &recognize.ExactMatch{Index: ix, Fallback: fb}

	require.Equal(t, 4321, strat.Recognize(bm.ThresholdInv(128), nil))
	require.False(t, fb.called)

	blank := raster.New(glyph.CanvasWidth, glyph.CanvasHeight)
	require.Equal(t, 99, strat.Recognize(blank, nil))
	require.True(t, fb.called)
}

// A binarizer that reshapes strokes, standing in for adaptive threshold
// plus morphological open: the mask differs from plain mid-gray
// thresholding of the render.
func reshapingBinarize(b *raster.Bitmap) *raster.Bitmap {
	bin := b.ThresholdInv(128)
	// Erode the topmost foreground pixel of every column, the way an open
	// rounds stroke ends.
	for x := 0; x < bin.Width; x++ {
		for y := 0; y < bin.Height; y++ {
			if bin.At(x, y) != 0 {
				bin.Set(x, y, 0)
				break
			}
		}
	}
	return bin
}

func TestBinarizedIndexMatchesPipelineOutput(t *testing.T) {
	bm, err := glyph.Encode(808)
	require.NoError(t, err)

	// References hashed from the raw render never match a reshaped mask.
	raw := recognize.BuildExactIndex(map[int]*raster.Bitmap{808: bm})
	_, ok := raw.LookupBinary(reshapingBinarize(bm))
	require.False(t, ok, "raw-render references cannot match pipeline masks")

	// Built through the same binarizer, the lookup hits.
	ix := recognize.NewExactIndex(glyph.CanvasWidth, glyph.CanvasHeight)
	ix.AddBinary(reshapingBinarize(bm), 808)

	strat := &recognize.ExactMatch{Index: ix}
	require.Equal(t, 808, strat.Recognize(reshapingBinarize(bm), nil))
}

func TestBuildBinarizedIndexRoundTrip(t *testing.T) {
	binarize := func(b *raster.Bitmap) *raster.Bitmap { return b.ThresholdInv(128) }
	ix := recognize.BuildBinarizedIndex(binarize)
	require.Equal(t, 10000, ix.Len())

	for _, n := range []int{0, 5, 1234, 9999} {
		bm, err := glyph.Encode(n)
		require.NoError(t, err)
		got, ok := ix.LookupBinary(binarize(bm))
		require.True(t, ok)
		require.Equal(t, n, got)
	}
}

func TestExactMatchNoFallback(t *testing.T) {
	strat := &recognize.ExactMatch{Index: recognize.NewExactIndex(glyph.CanvasWidth, glyph.CanvasHeight)}
	require.Equal(t, 0, strat.Recognize(raster.New(glyph.CanvasWidth, glyph.CanvasHeight), nil))
}
