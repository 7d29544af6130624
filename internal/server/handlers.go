package server

import (
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/GustaPeruci/CistercianNumberVision/internal/glyph"
	"github.com/GustaPeruci/CistercianNumberVision/internal/raster"
	"github.com/GustaPeruci/CistercianNumberVision/internal/recognize"
	"github.com/GustaPeruci/CistercianNumberVision/internal/transport"
)

type convertRequest struct {
	Number int `json:"number"`
}

type convertResponse struct {
	Image  string `json:"image"`
	Number int    `json:"number"`
}

type recognizeResponse struct {
	Number int             `json:"number"`
	Trace  []recognize.Step `json:"trace,omitempty"`
}

// handleConvert renders a number in [0,9999] as a glyph and returns it as a
// PNG data URL.
func (s *Server) handleConvert(c *gin.Context) {
	var req convertRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid number format"})
		return
	}

	bm, err := glyph.Encode(req.Number)
	if err != nil {
		if errors.Is(err, glyph.ErrOutOfRange) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Number must be between 0 and 9999"})
			return
		}
		slog.Error("encode failed", "number", req.Number, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "An error occurred during conversion"})
		return
	}

	dataURL, err := transport.EncodeBitmapBase64(bm)
	if err != nil {
		slog.Error("png encoding failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "An error occurred during conversion"})
		return
	}

	c.JSON(http.StatusOK, convertResponse{Image: dataURL, Number: req.Number})
}

// handleRecognize recovers the number from a glyph image supplied either as
// a multipart "file" upload or as a base64 "imageData" form field.
// Recognition itself never fails; only missing or undecodable input is an
// error. Pass ?trace=1 to receive the decode diagnostics.
func (s *Server) handleRecognize(c *gin.Context) {
	bm, ok := s.imageFromRequest(c)
	if !ok {
		return
	}

	var tr *recognize.Trace
	if c.Query("trace") != "" {
		tr = &recognize.Trace{}
	}

	number := s.decoder.Decode(bm, tr)

	resp := recognizeResponse{Number: number}
	if tr != nil {
		resp.Trace = tr.Steps
	}
	c.JSON(http.StatusOK, resp)
}

// imageFromRequest extracts the glyph image from either upload form. On
// failure it writes the error response and returns ok=false.
func (s *Server) imageFromRequest(c *gin.Context) (*raster.Bitmap, bool) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, s.opts.MaxUploadBytes)

	if file, err := c.FormFile("file"); err == nil {
		if file.Filename == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "No file selected"})
			return nil, false
		}
		if !transport.AllowedExtension(file.Filename) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Unsupported file type"})
			return nil, false
		}

		f, err := file.Open()
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Could not process the image"})
			return nil, false
		}
		defer f.Close()

		data, err := io.ReadAll(f)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Could not process the image"})
			return nil, false
		}

		bm, err := transport.DecodeImageBytes(data)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Could not process the image"})
			return nil, false
		}
		return bm, true
	}

	if data := c.PostForm("imageData"); data != "" {
		bm, err := transport.DecodeBase64Image(data)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Could not process the image"})
			return nil, false
		}
		return bm, true
	}

	c.JSON(http.StatusBadRequest, gin.H{"error": "No file or image data provided"})
	return nil, false
}
