package recognize

import (
	"crypto/sha256"

	"github.com/GustaPeruci/CistercianNumberVision/internal/glyph"
	"github.com/GustaPeruci/CistercianNumberVision/internal/raster"
)

// ExactIndex is the exact-match fast path: a content hash of a canonicalized
// render mapped to its value. It only ever hits on noiseless, canonically
// produced renders; any perturbation misses and the caller falls back to a
// heuristic strategy. Read-only after construction and safe for concurrent
// lookups without locking.
type ExactIndex struct {
	width  int
	height int
	byHash map[[sha256.Size]byte]int
}

// NewExactIndex creates an empty index that canonicalizes inputs to the
// given size before hashing.
func NewExactIndex(width, height int) *ExactIndex {
	return &ExactIndex{
		width:  width,
		height: height,
		byHash: make(map[[sha256.Size]byte]int),
	}
}

// BuildExactIndex indexes a reference set of renders keyed by value.
func BuildExactIndex(renders map[int]*raster.Bitmap) *ExactIndex {
	ix := NewExactIndex(glyph.CanvasWidth, glyph.CanvasHeight)
	for value, bm := range renders {
		ix.Add(bm, value)
	}
	return ix
}

// BuildReferenceIndex renders every representable value once and indexes the
// results. The build is O(value range); lookups afterwards are O(1).
func BuildReferenceIndex() *ExactIndex {
	ix := NewExactIndex(glyph.CanvasWidth, glyph.CanvasHeight)
	for n := 0; n <= 9999; n++ {
		bm, err := glyph.Encode(n)
		if err != nil {
			continue
		}
		ix.Add(bm, n)
	}
	return ix
}

// Add registers a reference render for a value. Must not be called
// concurrently with Lookup.
func (ix *ExactIndex) Add(bm *raster.Bitmap, value int) {
	ix.byHash[ix.canonicalHash(bm)] = value
}

// Len returns the number of distinct reference hashes.
func (ix *ExactIndex) Len() int {
	return len(ix.byHash)
}

// Lookup hashes the raster the same way the references were hashed and
// returns the matching value, if any.
func (ix *ExactIndex) Lookup(bm *raster.Bitmap) (int, bool) {
	v, ok := ix.byHash[ix.canonicalHash(bm)]
	return v, ok
}

// canonicalHash resizes off-size inputs to the reference size, binarizes at
// mid-gray, and hashes the packed pixel buffer. Order-sensitive, so two
// renders match only when every pixel agrees.
func (ix *ExactIndex) canonicalHash(bm *raster.Bitmap) [sha256.Size]byte {
	if bm.Width != ix.width || bm.Height != ix.height {
		bm = raster.Resize(bm, ix.width, ix.height)
	}
	bin := bm.ThresholdInv(128)
	return sha256.Sum256(bin.Pix)
}

// AddBinary registers an already-binarized reference mask, where foreground
// is bright instead of inked.
func (ix *ExactIndex) AddBinary(bin *raster.Bitmap, value int) {
	ix.byHash[ix.binaryHash(bin)] = value
}

// LookupBinary looks up an already-binarized raster. Only meaningful
// against references registered with AddBinary through the same
// binarization pipeline: preprocessing such as a morphological open
// reshapes stroke edges, so a mask will never match a reference hashed
// from the raw render.
func (ix *ExactIndex) LookupBinary(bin *raster.Bitmap) (int, bool) {
	v, ok := ix.byHash[ix.binaryHash(bin)]
	return v, ok
}

// binaryHash canonicalizes a mask like canonicalHash does a render, without
// the polarity flip.
func (ix *ExactIndex) binaryHash(bin *raster.Bitmap) [sha256.Size]byte {
	if bin.Width != ix.width || bin.Height != ix.height {
		bin = raster.Resize(bin, ix.width, ix.height)
	}
	return sha256.Sum256(bin.Threshold(128).Pix)
}

// BuildBinarizedIndex renders every representable value, runs each render
// through the supplied binarizer, and indexes the resulting masks. This is
// the index to pair with an ExactMatch strategy: the strategy sees
// post-binarize input, so the reference masks must come out of the same
// pipeline for the hashes to line up.
func BuildBinarizedIndex(binarize func(*raster.Bitmap) *raster.Bitmap) *ExactIndex {
	ix := NewExactIndex(glyph.CanvasWidth, glyph.CanvasHeight)
	for n := 0; n <= 9999; n++ {
		bm, err := glyph.Encode(n)
		if err != nil {
			continue
		}
		ix.AddBinary(binarize(bm), n)
	}
	return ix
}

// ExactMatch wraps the index as a Recognizer so it can slot in wherever a
// heuristic strategy can, deferring misses to an optional fallback.
type ExactMatch struct {
	Index    *ExactIndex
	Fallback Recognizer
}

// Name implements Recognizer.
func (e *ExactMatch) Name() string { return "exact-match" }

// Recognize implements Recognizer.
func (e *ExactMatch) Recognize(bin *raster.Bitmap, tr *Trace) int {
	if v, ok := e.Index.LookupBinary(bin); ok {
		tr.Addf("exact", "canonical hash hit: %d", v)
		return v
	}
	if e.Fallback != nil {
		tr.Addf("exact", "hash miss, deferring to %s", e.Fallback.Name())
		return e.Fallback.Recognize(bin, tr)
	}
	tr.Addf("exact", "hash miss with no fallback, defaulting to 0")
	return 0
}
