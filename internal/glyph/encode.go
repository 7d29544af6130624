package glyph

import (
	"errors"
	"fmt"

	"github.com/GustaPeruci/CistercianNumberVision/internal/raster"
)

// ErrOutOfRange is returned when a value cannot be represented as a single
// Cistercian glyph. It is the codec's only hard error.
var ErrOutOfRange = errors.New("number must be between 0 and 9999")

// Encode renders the value as a Cistercian glyph on a fresh white canvas of
// the fixed contract size.
func Encode(number int) (*raster.Bitmap, error) {
	canvas := raster.NewCanvas(CanvasWidth, CanvasHeight, Background)
	if err := EncodeTo(canvas, number); err != nil {
		return nil, err
	}
	return canvas, nil
}

// EncodeTo renders the value onto a supplied canvas. The stem is drawn
// first, then each place digit's marks in its quadrant; digit 0 draws
// nothing. Apart from writing to the canvas the function is pure.
func EncodeTo(canvas *raster.Bitmap, number int) error {
	if number < 0 || number > 9999 {
		return fmt.Errorf("%w: got %d", ErrOutOfRange, number)
	}

	top, bottom := Stem(canvas.Width, canvas.Height)
	canvas.DrawLine(top, bottom, Ink, LineThickness)

	digits := Digits(number)
	for place, digit := range digits {
		role := PlaceRoles[place]
		for _, s := range PlaceStrokes(digit, role, canvas.Width, canvas.Height) {
			switch s.Kind {
			case StrokeRect:
				canvas.DrawRect(s.From, s.To, Ink, LineThickness)
			default:
				canvas.DrawLine(s.From, s.To, Ink, LineThickness)
			}
		}
	}

	return nil
}
