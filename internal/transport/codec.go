// Package transport converts between the codec's grayscale bitmaps and the
// formats the outside world speaks: image files and base64 data URLs.
package transport

import (
	"bytes"
	"encoding/base64"
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	"image/png"
	"path/filepath"
	"strings"

	"github.com/GustaPeruci/CistercianNumberVision/internal/raster"

	_ "golang.org/x/image/tiff"
)

// ErrEmptyImage is returned when the payload decodes to no pixels.
var ErrEmptyImage = errors.New("image payload is empty")

// allowedExtensions matches the upload types the original service accepted,
// plus TIFF which the decoder registration supports anyway.
var allowedExtensions = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".gif":  true,
	".tif":  true,
	".tiff": true,
}

// AllowedExtension reports whether the filename carries a supported image
// extension.
func AllowedExtension(filename string) bool {
	return allowedExtensions[strings.ToLower(filepath.Ext(filename))]
}

// DecodeImageBytes decodes an encoded image (PNG, JPEG, GIF, or TIFF) to a
// grayscale bitmap.
func DecodeImageBytes(data []byte) (*raster.Bitmap, error) {
	if len(data) == 0 {
		return nil, ErrEmptyImage
	}
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode image: %w", err)
	}
	return raster.FromImage(img), nil
}

// DecodeBase64Image decodes a base64 image string, with or without a
// data-URL header, to a grayscale bitmap.
func DecodeBase64Image(s string) (*raster.Bitmap, error) {
	// Strip a "data:image/png;base64," style header if present.
	if i := strings.IndexByte(s, ','); i >= 0 {
		s = s[i+1:]
	}
	data, err := base64.StdEncoding.DecodeString(strings.TrimSpace(s))
	if err != nil {
		return nil, fmt.Errorf("decode base64: %w", err)
	}
	return DecodeImageBytes(data)
}

// EncodeBitmapPNG encodes a bitmap as a PNG file.
func EncodeBitmapPNG(b *raster.Bitmap) ([]byte, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, b.ToImage()); err != nil {
		return nil, fmt.Errorf("encode png: %w", err)
	}
	return buf.Bytes(), nil
}

// EncodeBitmapBase64 encodes a bitmap as a PNG data URL.
func EncodeBitmapBase64(b *raster.Bitmap) (string, error) {
	data, err := EncodeBitmapPNG(b)
	if err != nil {
		return "", err
	}
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(data), nil
}
