// Package glyph encodes decimal values in [0,9999] as Cistercian numeral
// renders: a vertical stem with one mark set per decimal place, one place per
// quadrant.
package glyph

import (
	"math"

	"github.com/GustaPeruci/CistercianNumberVision/pkg/geometry"
)

// QuadrantRole identifies one of the four mark regions around the stem.
type QuadrantRole int

const (
	TopLeft QuadrantRole = iota
	TopRight
	BottomLeft
	BottomRight
)

func (r QuadrantRole) String() string {
	switch r {
	case TopLeft:
		return "top-left"
	case TopRight:
		return "top-right"
	case BottomLeft:
		return "bottom-left"
	case BottomRight:
		return "bottom-right"
	default:
		return "unknown"
	}
}

// XDir returns +1 for right-side quadrants, -1 for left-side.
func (r QuadrantRole) XDir() int {
	if r == TopRight || r == BottomRight {
		return 1
	}
	return -1
}

// YDir returns +1 for bottom quadrants, -1 for top.
func (r QuadrantRole) YDir() int {
	if r == BottomLeft || r == BottomRight {
		return 1
	}
	return -1
}

// Top reports whether the quadrant anchors at the stem top.
func (r QuadrantRole) Top() bool {
	return r == TopLeft || r == TopRight
}

// PlaceRoles maps decimal places, least significant first, to quadrants:
// units, tens, hundreds, thousands. Earlier revisions of the notation put
// units at bottom-right; that mapping is superseded and not round-trip
// compatible with this one.
var PlaceRoles = [4]QuadrantRole{TopRight, TopLeft, BottomRight, BottomLeft}

// Roles lists all quadrants in place order (units first).
func Roles() [4]QuadrantRole {
	return PlaceRoles
}

// StrokeKind discriminates stroke primitives.
type StrokeKind int

const (
	StrokeLine StrokeKind = iota
	StrokeRect
)

// UnitPoint is a stroke endpoint in symbol units, relative to the quadrant
// anchor on the stem. The canonical frame is x toward the marks side,
// y in the bottom-right sense; direction signs reflect it per quadrant.
type UnitPoint struct {
	X, Y float64
}

// Stroke is one primitive of a digit's mark set, in the canonical frame.
// For StrokeRect, From and To are opposite corners.
type Stroke struct {
	Kind     StrokeKind
	From, To UnitPoint
}

func line(x1, y1, x2, y2 float64) Stroke {
	return Stroke{Kind: StrokeLine, From: UnitPoint{x1, y1}, To: UnitPoint{x2, y2}}
}

func rect(x1, y1, x2, y2 float64) Stroke {
	return Stroke{Kind: StrokeRect, From: UnitPoint{x1, y1}, To: UnitPoint{x2, y2}}
}

// digitStrokes is the digit-to-stroke table in the canonical frame.
// Digit 0 is the empty set: absence of marks encodes zero.
var digitStrokes = [10][]Stroke{
	0: nil,
	1: {line(0, 0, 1, 0)},
	2: {line(0, 0, 1, -1)},
	3: {line(0, 0, 1, -1), line(0, 0, 1, 0)},
	4: {line(0, 0, 1, 0), line(1, 0, 1, 1)},
	5: {line(0, 0, 1, 0), line(1, 0, 1, 1), line(1, 1, 0, 1)},
	6: {line(0, 0, 1, 1)},
	7: {line(0, 0, 1, 1), line(0, 0, 1, 0)},
	8: {line(0, 0, 0.5, 1), line(0.5, 1, 1, 0)},
	9: {rect(0, -0.5, 1, 0.5)},
}

// DigitStrokes returns the canonical stroke set for a digit in [0,9].
// The returned slice is shared and must not be modified.
func DigitStrokes(digit int) []Stroke {
	if digit < 0 || digit > 9 {
		return nil
	}
	return digitStrokes[digit]
}

// PlacedStroke is a stroke resolved to canvas pixel coordinates.
type PlacedStroke struct {
	Kind     StrokeKind
	From, To geometry.PointInt
}

// PlaceStrokes resolves a digit's strokes for a quadrant onto a canvas of the
// given size, applying the quadrant's anchor and direction signs. Reflection
// happens here, so the mark set for a digit at top-right is the horizontal
// mirror of the same digit at top-left, and top mirrors bottom vertically.
func PlaceStrokes(digit int, role QuadrantRole, canvasW, canvasH int) []PlacedStroke {
	strokes := DigitStrokes(digit)
	if len(strokes) == 0 {
		return nil
	}

	cx := canvasW / 2
	cy := canvasH / 2
	halfStem := StemLength(canvasH) / 2

	anchorY := cy + halfStem
	if role.Top() {
		anchorY = cy - halfStem
	}

	xd, yd := role.XDir(), role.YDir()
	place := func(u UnitPoint) geometry.PointInt {
		return geometry.Pt(
			cx+xd*int(math.Round(u.X*SymbolSize)),
			anchorY+yd*int(math.Round(u.Y*SymbolSize)),
		)
	}

	placed := make([]PlacedStroke, len(strokes))
	for i, s := range strokes {
		placed[i] = PlacedStroke{Kind: s.Kind, From: place(s.From), To: place(s.To)}
	}
	return placed
}

// Stem returns the stem endpoints for a canvas of the given size.
func Stem(canvasW, canvasH int) (top, bottom geometry.PointInt) {
	cx := canvasW / 2
	cy := canvasH / 2
	halfStem := StemLength(canvasH) / 2
	return geometry.Pt(cx, cy-halfStem), geometry.Pt(cx, cy+halfStem)
}

// Digits splits a value into its four place digits, units first.
func Digits(n int) [4]int {
	var d [4]int
	for i := 0; i < 4; i++ {
		d[i] = n % 10
		n /= 10
	}
	return d
}
