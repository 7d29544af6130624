// Command cistercian-server serves the Cistercian numeral codec over HTTP.
package main

import (
	"flag"
	"log/slog"
	"os"

	"github.com/GustaPeruci/CistercianNumberVision/internal/recognize"
	"github.com/GustaPeruci/CistercianNumberVision/internal/server"
	"github.com/GustaPeruci/CistercianNumberVision/internal/version"
)

func main() {
	addr := flag.String("addr", ":5000", "Listen address")
	exact := flag.Bool("exact-index", true, "Build the exact-match reference index at startup")
	flag.Parse()

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, nil)))
	slog.Info("starting cistercian-server", "version", version.String())

	decoder := recognize.NewDecoder()
	if *exact {
		ix := recognize.BuildReferenceIndex()
		decoder.WithIndex(ix)
		slog.Info("reference index ready", "entries", ix.Len())
	}

	opts := server.DefaultOptions()
	opts.Addr = *addr

	if err := server.New(opts, decoder).Run(); err != nil {
		slog.Error("server exited", "error", err)
		os.Exit(1)
	}
}
