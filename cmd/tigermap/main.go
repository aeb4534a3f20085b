// Command tigermap renders the Southern California county and highway map
// from TIGER/Line shapefiles and writes it as PNG and PDF.
//
// The run is fully determined by the defaults in the tigermap package; the
// command takes no arguments.
package main

import (
	"fmt"
	"os"

	"github.com/beetlebugorg/tigermap/internal/logging"
	"github.com/beetlebugorg/tigermap/pkg/tigermap"
)

func main() {
	logger := logging.Setup(os.Getenv("TIGERMAP_LOG_LEVEL"), os.Getenv("TIGERMAP_LOG_FORMAT"))

	cfg := tigermap.DefaultConfig()
	cfg.Logger = logger

	result, err := tigermap.Generate(cfg)
	if err != nil {
		logger.Error("map generation failed", "error", err)
		os.Exit(1)
	}

	fmt.Println(result.PNGPath)
	fmt.Println(result.PDFPath)
}
