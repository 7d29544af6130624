package recognize

import (
	"github.com/GustaPeruci/CistercianNumberVision/internal/glyph"
)

// Classify maps a quadrant feature vector to a digit in [0,9] using a
// deterministic ordered rule cascade: rules are evaluated top to bottom and
// the first match wins, with later rules acting as fallbacks when earlier
// ones are structurally inapplicable.
//
// The cascade trades classification purity for robustness: every non-empty
// quadrant resolves to some digit rather than an error. The cost is
// occasional confusion between visually similar digit pairs, notably 2/6 and
// 3/7 (told apart only by which quadrant they appear in) and 5/9 (both keyed
// off fill ratio).
func Classify(v FeatureVector, role glyph.QuadrantRole, p Params) int {
	// 1. Empty or near-empty quadrant.
	if v.Components == 0 || v.FillRatio < p.EmptyFillEpsilon {
		return 0
	}

	// 2. A lone horizontal bar.
	if v.Horizontal == 1 && v.Vertical == 0 && v.Diagonal == 0 {
		return 1
	}

	// 3. A lone diagonal: 2 and 6 share one mirror orientation across the
	// role pairs, so the quadrant decides.
	if v.Diagonal == 1 && v.Horizontal == 0 && v.Vertical == 0 {
		if upSlantRole(role) {
			return 2
		}
		return 6
	}

	// 4. Diagonal with a horizontal: 3 or 7, again split by role.
	if v.Horizontal >= 1 && v.Diagonal >= 1 && v.Vertical == 0 {
		if upSlantRole(role) {
			return 3
		}
		return 7
	}

	// 5. Horizontal plus vertical.
	if v.Horizontal >= 1 && v.Vertical >= 1 {
		return 4
	}

	// 6. Filled or boxy quadrant.
	if v.Rectangles >= 1 || v.FillRatio > p.FilledRatio || v.Components >= p.ManyComponents {
		return 5
	}

	// 7. Two diagonals.
	if v.Diagonal >= 2 {
		return 8
	}

	// 8. Looser second pass over the boxy case for what rule 6 missed.
	if v.Rectangles >= 1 || v.FillRatio > p.LooseFilledRatio {
		return 9
	}

	// 9. Final fallback ordering for a non-empty region nothing above
	// claimed.
	switch {
	case v.Vertical >= 1:
		return 1
	case v.Diagonal >= 1:
		return 2
	case v.Horizontal >= 1:
		return 1
	case v.FillRatio > p.FallbackFillRatio:
		return 5
	case v.FillRatio > 0:
		return 1
	}
	return 0
}

// upSlantRole reports the quadrants whose lone-diagonal mark reads as 2
// (and diagonal-plus-horizontal as 3); the mirrored pair reads 6 and 7.
func upSlantRole(role glyph.QuadrantRole) bool {
	return role == glyph.TopRight || role == glyph.BottomLeft
}
