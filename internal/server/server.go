// Package server exposes the Cistercian codec over HTTP: one endpoint to
// render a number as a glyph image, one to recognize a glyph from an
// uploaded or base64-encoded image.
package server

import (
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/GustaPeruci/CistercianNumberVision/internal/recognize"
)

// Options configures the HTTP server.
type Options struct {
	Addr           string
	MaxUploadBytes int64
}

// DefaultOptions returns the standard listen address and the 5 MiB upload
// cap the original service enforced.
func DefaultOptions() Options {
	return Options{
		Addr:           ":5000",
		MaxUploadBytes: 5 << 20,
	}
}

// Server wires the codec behind HTTP endpoints.
type Server struct {
	opts    Options
	decoder *recognize.Decoder
	engine  *gin.Engine
}

// New creates a server around a decoder.
func New(opts Options, decoder *recognize.Decoder) *Server {
	s := &Server{
		opts:    opts,
		decoder: decoder,
		engine:  gin.New(),
	}

	s.engine.Use(gin.Recovery(), requestLogger())
	s.engine.MaxMultipartMemory = opts.MaxUploadBytes

	s.engine.POST("/convert-to-cistercian", s.handleConvert)
	s.engine.POST("/recognize-cistercian", s.handleRecognize)

	return s
}

// Engine exposes the router, mainly for tests.
func (s *Server) Engine() *gin.Engine {
	return s.engine
}

// Run serves until the listener fails.
func (s *Server) Run() error {
	slog.Info("listening", "addr", s.opts.Addr)
	return s.engine.Run(s.opts.Addr)
}

// requestLogger tags each request with an ID and logs its outcome.
func requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := uuid.NewString()
		c.Set("request_id", id)

		start := time.Now()
		c.Next()

		slog.Info("request",
			"id", id,
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"duration", time.Since(start),
		)
	}
}
