package glyph_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/GustaPeruci/CistercianNumberVision/internal/glyph"
)

func TestDigits(t *testing.T) {
	require.Equal(t, [4]int{4, 3, 2, 1}, glyph.Digits(1234))
	require.Equal(t, [4]int{0, 0, 0, 0}, glyph.Digits(0))
	require.Equal(t, [4]int{9, 9, 9, 9}, glyph.Digits(9999))
	require.Equal(t, [4]int{5, 0, 0, 0}, glyph.Digits(5))
}

func TestPlaceRoles(t *testing.T) {
	// Canonical place mapping: units, tens, hundreds, thousands.
	require.Equal(t, glyph.TopRight, glyph.PlaceRoles[0])
	require.Equal(t, glyph.TopLeft, glyph.PlaceRoles[1])
	require.Equal(t, glyph.BottomRight, glyph.PlaceRoles[2])
	require.Equal(t, glyph.BottomLeft, glyph.PlaceRoles[3])
}

func TestDirectionSigns(t *testing.T) {
	require.Equal(t, 1, glyph.TopRight.XDir())
	require.Equal(t, 1, glyph.BottomRight.XDir())
	require.Equal(t, -1, glyph.TopLeft.XDir())
	require.Equal(t, -1, glyph.BottomLeft.XDir())

	require.Equal(t, -1, glyph.TopRight.YDir())
	require.Equal(t, -1, glyph.TopLeft.YDir())
	require.Equal(t, 1, glyph.BottomRight.YDir())
	require.Equal(t, 1, glyph.BottomLeft.YDir())
}

func TestDigitStrokes(t *testing.T) {
	require.Nil(t, glyph.DigitStrokes(0), "digit 0 is the empty mark set")
	require.Nil(t, glyph.DigitStrokes(-1))
	require.Nil(t, glyph.DigitStrokes(10))

	for d := 1; d <= 9; d++ {
		require.NotEmpty(t, glyph.DigitStrokes(d), "digit %d", d)
	}
}

// TestHorizontalMirrorLaw: the placed strokes for a digit on the right side
// are the reflection of the left side across the stem.
func TestHorizontalMirrorLaw(t *testing.T) {
	const w, h = glyph.CanvasWidth, glyph.CanvasHeight
	cx := w / 2

	pairs := []struct{ left, right glyph.QuadrantRole }{
		{glyph.TopLeft, glyph.TopRight},
		{glyph.BottomLeft, glyph.BottomRight},
	}

	for _, pair := range pairs {
		for d := 1; d <= 9; d++ {
			left := glyph.PlaceStrokes(d, pair.left, w, h)
			right := glyph.PlaceStrokes(d, pair.right, w, h)
			require.Len(t, left, len(right))

			for i := range right {
				require.Equal(t, right[i].Kind, left[i].Kind)
				require.Equal(t, 2*cx-right[i].From.X, left[i].From.X,
					"digit %d stroke %d (%s vs %s)", d, i, pair.left, pair.right)
				require.Equal(t, 2*cx-right[i].To.X, left[i].To.X)
				require.Equal(t, right[i].From.Y, left[i].From.Y)
				require.Equal(t, right[i].To.Y, left[i].To.Y)
			}
		}
	}
}

// TestVerticalMirrorLaw: top strokes reflect bottom strokes across the
// canvas midline, since the anchors are symmetric and y offsets negate.
func TestVerticalMirrorLaw(t *testing.T) {
	const w, h = glyph.CanvasWidth, glyph.CanvasHeight
	cy := h / 2

	for d := 1; d <= 9; d++ {
		top := glyph.PlaceStrokes(d, glyph.TopRight, w, h)
		bottom := glyph.PlaceStrokes(d, glyph.BottomRight, w, h)
		require.Len(t, top, len(bottom))

		for i := range top {
			require.Equal(t, bottom[i].From.X, top[i].From.X)
			require.Equal(t, bottom[i].To.X, top[i].To.X)
			require.Equal(t, 2*cy-bottom[i].From.Y, top[i].From.Y, "digit %d stroke %d", d, i)
			require.Equal(t, 2*cy-bottom[i].To.Y, top[i].To.Y)
		}
	}
}

func TestPlaceStrokesStayOnCanvas(t *testing.T) {
	const w, h = glyph.CanvasWidth, glyph.CanvasHeight

	for _, role := range glyph.Roles() {
		for d := 1; d <= 9; d++ {
			for _, s := range glyph.PlaceStrokes(d, role, w, h) {
				for _, p := range []struct{ x, y int }{
					{s.From.X, s.From.Y},
					{s.To.X, s.To.Y},
				} {
					require.GreaterOrEqual(t, p.x, 0, "digit %d at %s", d, role)
					require.Less(t, p.x, w)
					require.GreaterOrEqual(t, p.y, 0)
					require.Less(t, p.y, h)
				}
			}
		}
	}
}

func TestStem(t *testing.T) {
	top, bottom := glyph.Stem(glyph.CanvasWidth, glyph.CanvasHeight)
	require.Equal(t, glyph.CanvasWidth/2, top.X)
	require.Equal(t, top.X, bottom.X)
	require.Equal(t, glyph.StemLength(glyph.CanvasHeight), bottom.Y-top.Y)
}
