package recognize

import (
	"github.com/GustaPeruci/CistercianNumberVision/internal/glyph"
	"github.com/GustaPeruci/CistercianNumberVision/internal/raster"
)

// Recognizer recovers a numeral value from a binarized glyph raster.
// Implementations are interchangeable strategies sharing the segmentation
// and feature contracts.
type Recognizer interface {
	// Name identifies the strategy in diagnostics.
	Name() string
	// Recognize returns a value in [0,9999]. It never fails: missing
	// structure degrades to 0 per quadrant.
	Recognize(bin *raster.Bitmap, tr *Trace) int
}

// Decoder orchestrates a full decode call: the optional exact-index fast
// path on the raw grayscale input, then binarization and the configured
// strategy. Decode always reaches a value and never returns an error; as a
// consequence, callers cannot distinguish "the glyph encodes 0" from
// "recognition failed". That ambiguity is a deliberate availability
// trade-off, not a bug to fix silently.
//
// A Decoder holds no per-call state and is safe for concurrent Decode calls.
type Decoder struct {
	Params   Params
	Strategy Recognizer
	Index    *ExactIndex // optional; hit only by canonical renders

	// Binarize converts grayscale input to binary foreground. Defaults to
	// adaptive thresholding with Params.Binarize.
	Binarize func(*raster.Bitmap) *raster.Bitmap
}

// NewDecoder returns a decoder running the feature cascade over a
// contour-based component finder.
func NewDecoder() *Decoder {
	p := DefaultParams()
	return &Decoder{
		Params:   p,
		Strategy: NewFeatureCascade(raster.NewFinder(), p),
		Binarize: func(b *raster.Bitmap) *raster.Bitmap {
			return raster.Binarize(b, p.Binarize)
		},
	}
}

// WithIndex enables the exact-match fast path.
func (d *Decoder) WithIndex(ix *ExactIndex) *Decoder {
	d.Index = ix
	return d
}

// WithStrategy swaps the heuristic recognizer.
func (d *Decoder) WithStrategy(r Recognizer) *Decoder {
	d.Strategy = r
	return d
}

// Decode recovers the value encoded in a grayscale raster. tr may be nil.
func (d *Decoder) Decode(gray *raster.Bitmap, tr *Trace) int {
	if gray == nil || len(gray.Pix) == 0 {
		tr.Addf("input", "empty raster, defaulting to 0")
		return 0
	}

	if d.Index != nil {
		if v, ok := d.Index.Lookup(gray); ok {
			tr.Addf("exact", "canonical hash hit: %d", v)
			return v
		}
		tr.Addf("exact", "hash miss, falling back to %s", d.Strategy.Name())
	}

	binarize := d.Binarize
	if binarize == nil {
		binarize = func(b *raster.Bitmap) *raster.Bitmap {
			return raster.Binarize(b, d.Params.Binarize)
		}
	}
	bin := binarize(gray)
	tr.Addf("binarize", "%d foreground pixels", bin.CountNonZero(bin.Bounds()))

	return d.Strategy.Recognize(bin, tr)
}

// combineDigits assembles per-quadrant digits into a value, walking the
// places least significant first.
func combineDigits(digitFor func(glyph.QuadrantRole) int, tr *Trace) int {
	value := 0
	mult := 1
	for _, role := range glyph.PlaceRoles {
		d := digitFor(role)
		value += d * mult
		mult *= 10
	}
	tr.Addf("combine", "value=%d", value)
	return value
}
