package glyph

// Canvas geometry and stroke constants. These are part of the wire contract:
// a decoder tuned to this encoder depends on every one of them.
const (
	// CanvasWidth and CanvasHeight are the fixed render size in pixels.
	CanvasWidth  = 300
	CanvasHeight = 400

	// SymbolSize scales every quadrant stroke, in pixels.
	SymbolSize = 50

	// LineThickness is the stroke width in pixels.
	LineThickness = 3

	// Background and Ink are the canvas gray levels.
	Background uint8 = 255
	Ink        uint8 = 0
)

// StemLength returns the stem length for a canvas of the given height.
// The stem spans two thirds of the canvas, centered vertically.
func StemLength(canvasHeight int) int {
	return int(float64(canvasHeight) / 1.5)
}
