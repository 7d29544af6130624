// Command refindex builds the exact-match reference index over a value range
// and validates that every render round-trips through it.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/GustaPeruci/CistercianNumberVision/internal/glyph"
	"github.com/GustaPeruci/CistercianNumberVision/internal/raster"
	"github.com/GustaPeruci/CistercianNumberVision/internal/recognize"
)

func main() {
	from := flag.Int("from", 0, "First value to index")
	to := flag.Int("to", 9999, "Last value to index")
	flag.Parse()

	if *from < 0 || *to > 9999 || *from > *to {
		log.Fatalf("Invalid range %d-%d", *from, *to)
	}

	fmt.Printf("Rendering reference set %d-%d...\n", *from, *to)
	start := time.Now()

	renders := make(map[int]*raster.Bitmap, *to-*from+1)
	for n := *from; n <= *to; n++ {
		bm, err := glyph.Encode(n)
		if err != nil {
			log.Fatalf("Encode %d failed: %v", n, err)
		}
		renders[n] = bm
	}
	fmt.Printf("Rendered %d glyphs in %v\n", len(renders), time.Since(start))

	ix := recognize.BuildExactIndex(renders)
	collisions := len(renders) - ix.Len()
	fmt.Printf("Index holds %d entries (%d hash collisions)\n", ix.Len(), collisions)

	mismatches := 0
	for n, bm := range renders {
		got, ok := ix.Lookup(bm)
		if !ok || got != n {
			mismatches++
			if mismatches <= 10 {
				fmt.Printf("  MISMATCH %d -> %d (found=%v)\n", n, got, ok)
			}
		}
	}

	fmt.Printf("Round trips: %d/%d OK\n", len(renders)-mismatches, len(renders))
	if collisions > 0 || mismatches > 0 {
		os.Exit(1)
	}
}
