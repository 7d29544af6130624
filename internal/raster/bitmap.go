// Package raster provides the pixel-level operations the codec builds on:
// a single-channel bitmap with drawing primitives, binarization, connected
// component extraction, and line segment detection.
package raster

import (
	"image"
	"image/color"

	"github.com/GustaPeruci/CistercianNumberVision/pkg/geometry"
)

// Bitmap is a single-channel 8-bit raster. Pixels are row-major with no
// stride padding. Binary bitmaps use 255 for foreground, 0 for background.
type Bitmap struct {
	Width  int
	Height int
	Pix    []uint8
}

// New creates a zero-filled bitmap.
func New(width, height int) *Bitmap {
	return &Bitmap{Width: width, Height: height, Pix: make([]uint8, width*height)}
}

// NewCanvas creates a bitmap filled with the given background value.
func NewCanvas(width, height int, background uint8) *Bitmap {
	b := New(width, height)
	b.Fill(background)
	return b
}

// Fill sets every pixel to v.
func (b *Bitmap) Fill(v uint8) {
	for i := range b.Pix {
		b.Pix[i] = v
	}
}

// Bounds returns the bitmap rectangle at origin.
func (b *Bitmap) Bounds() geometry.RectInt {
	return geometry.RectInt{Width: b.Width, Height: b.Height}
}

// At returns the pixel value, or 0 outside the bitmap.
func (b *Bitmap) At(x, y int) uint8 {
	if x < 0 || x >= b.Width || y < 0 || y >= b.Height {
		return 0
	}
	return b.Pix[y*b.Width+x]
}

// Set writes a pixel, ignoring coordinates outside the bitmap.
func (b *Bitmap) Set(x, y int, v uint8) {
	if x < 0 || x >= b.Width || y < 0 || y >= b.Height {
		return
	}
	b.Pix[y*b.Width+x] = v
}

// Clone returns a deep copy.
func (b *Bitmap) Clone() *Bitmap {
	out := New(b.Width, b.Height)
	copy(out.Pix, b.Pix)
	return out
}

// Crop returns a copy of the region clamped to the bitmap bounds.
// A fully out-of-bounds region yields an empty bitmap.
func (b *Bitmap) Crop(region geometry.RectInt) *Bitmap {
	r := region.Intersect(b.Bounds())
	out := New(r.Width, r.Height)
	for y := 0; y < r.Height; y++ {
		src := (r.Y+y)*b.Width + r.X
		copy(out.Pix[y*r.Width:(y+1)*r.Width], b.Pix[src:src+r.Width])
	}
	return out
}

// CountNonZero counts foreground pixels inside the region, clamped to bounds.
func (b *Bitmap) CountNonZero(region geometry.RectInt) int {
	r := region.Intersect(b.Bounds())
	n := 0
	for y := r.Y; y < r.Y+r.Height; y++ {
		row := b.Pix[y*b.Width : (y+1)*b.Width]
		for x := r.X; x < r.X+r.Width; x++ {
			if row[x] != 0 {
				n++
			}
		}
	}
	return n
}

// stampDisc paints a filled disc, the brush for thick strokes.
func (b *Bitmap) stampDisc(cx, cy, radius int, v uint8) {
	if radius <= 0 {
		b.Set(cx, cy, v)
		return
	}
	for dy := -radius; dy <= radius; dy++ {
		for dx := -radius; dx <= radius; dx++ {
			if dx*dx+dy*dy <= radius*radius {
				b.Set(cx+dx, cy+dy, v)
			}
		}
	}
}

// DrawLine draws a straight segment of the given thickness by stamping a
// round brush along it.
func (b *Bitmap) DrawLine(from, to geometry.PointInt, v uint8, thickness int) {
	radius := thickness / 2

	dx := to.X - from.X
	dy := to.Y - from.Y
	steps := max(abs(dx), abs(dy))
	if steps == 0 {
		b.stampDisc(from.X, from.Y, radius, v)
		return
	}

	for i := 0; i <= steps; i++ {
		x := from.X + dx*i/steps
		y := from.Y + dy*i/steps
		b.stampDisc(x, y, radius, v)
	}
}

// DrawRect outlines the rectangle spanned by two opposite corners.
func (b *Bitmap) DrawRect(corner1, corner2 geometry.PointInt, v uint8, thickness int) {
	r := geometry.RectFromCorners(corner1.X, corner1.Y, corner2.X, corner2.Y)
	tl := geometry.Pt(r.X, r.Y)
	tr := geometry.Pt(r.X+r.Width, r.Y)
	bl := geometry.Pt(r.X, r.Y+r.Height)
	br := geometry.Pt(r.X+r.Width, r.Y+r.Height)
	b.DrawLine(tl, tr, v, thickness)
	b.DrawLine(tr, br, v, thickness)
	b.DrawLine(br, bl, v, thickness)
	b.DrawLine(bl, tl, v, thickness)
}

// ThresholdInv returns a binary bitmap with 255 wherever the source is
// darker than the cutoff. Ink on a light background becomes foreground.
func (b *Bitmap) ThresholdInv(cutoff uint8) *Bitmap {
	out := New(b.Width, b.Height)
	for i, p := range b.Pix {
		if p < cutoff {
			out.Pix[i] = 255
		}
	}
	return out
}

// Threshold returns a binary bitmap with 255 wherever the source is at
// least the cutoff. The counterpart of ThresholdInv for inputs that are
// already foreground-on-dark.
func (b *Bitmap) Threshold(cutoff uint8) *Bitmap {
	out := New(b.Width, b.Height)
	for i, p := range b.Pix {
		if p >= cutoff {
			out.Pix[i] = 255
		}
	}
	return out
}

// FromImage converts any image to a grayscale bitmap using BT.601 luma.
func FromImage(img image.Image) *Bitmap {
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	b := New(w, h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			r, g, bl, _ := img.At(bounds.Min.X+x, bounds.Min.Y+y).RGBA()
			luma := (299*(r>>8) + 587*(g>>8) + 114*(bl>>8)) / 1000
			b.Pix[y*w+x] = uint8(luma)
		}
	}
	return b
}

// ToImage converts the bitmap to an image.Gray sharing no storage.
func (b *Bitmap) ToImage() *image.Gray {
	img := image.NewGray(image.Rect(0, 0, b.Width, b.Height))
	for y := 0; y < b.Height; y++ {
		for x := 0; x < b.Width; x++ {
			img.SetGray(x, y, color.Gray{Y: b.Pix[y*b.Width+x]})
		}
	}
	return img
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
