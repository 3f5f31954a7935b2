// Command piececatalog prints every standard piece with the number of
// orientations that fit on a board when anchored at a given cell.
//
// Usage:
//
//	piececatalog -board 20 -x 0 -y 0
//	piececatalog -board 14 -profile cpu -v
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/pkg/profile"
	log "github.com/sirupsen/logrus"

	"github.com/katalvlaran/blokus/piece"
	"github.com/katalvlaran/blokus/point"
)

var (
	boardFlag   = flag.Int("board", 20, "board edge length in cells")
	xFlag       = flag.Int("x", -1, "anchor column (default: board centre)")
	yFlag       = flag.Int("y", -1, "anchor row (default: board centre)")
	workersFlag = flag.Int("workers", 0, "pieces processed concurrently (0: one per CPU)")
	verboseFlag = flag.Bool("v", false, "debug logging")
	profileFlag = flag.String("profile", "off", "write a profile to the working directory: cpu, mem or off")
)

func main() {
	flag.Parse()

	if *verboseFlag {
		log.SetLevel(log.DebugLevel)
	}
	if *boardFlag < 1 {
		fmt.Printf("board must be at least 1\n")
		os.Exit(1)
	}

	switch *profileFlag {
	case "cpu":
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()
	case "mem":
		defer profile.Start(profile.MemProfile, profile.ProfilePath(".")).Stop()
	case "off":
	default:
		log.Fatalf("unknown profile mode %q", *profileFlag)
	}

	anchor := point.Pt(*boardFlag/2, *boardFlag/2)
	if *xFlag >= 0 {
		anchor.X = *xFlag
	}
	if *yFlag >= 0 {
		anchor.Y = *yFlag
	}

	opts := []piece.CatalogOption{piece.WithBoard(*boardFlag)}
	if *workersFlag > 0 {
		opts = append(opts, piece.WithWorkers(*workersFlag))
	}

	log.WithFields(log.Fields{
		"board":  *boardFlag,
		"anchor": anchor,
	}).Debug("building catalog")

	start := time.Now()
	cat, err := piece.Catalog(context.Background(), anchor, opts...)
	if err != nil {
		log.Fatalf("catalog failed: %v", err)
	}
	log.Debugf("catalog took %s", time.Since(start))

	total := 0
	for _, id := range piece.IDs() {
		arr := cat[id]
		total += len(arr)
		fmt.Printf("%-3s size=%d orientations=%d\n", id, piece.Size(id), len(arr))
		for _, a := range arr {
			log.WithField("piece", id).Debug(a)
		}
	}
	log.WithField("total", total).Info("orientations on board")
}
