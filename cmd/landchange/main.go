package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/landwatch/landchange/internal/detection"
	"github.com/landwatch/landchange/internal/pipeline"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

var (
	pathA     = flag.String("a", "", "Path to the first (earlier) aerial image")
	pathB     = flag.String("b", "", "Path to the second (later) aerial image")
	output    = flag.String("o", "changes.png", "Output path for the annotated figure")
	threshold = flag.Float64("threshold", detection.DefaultThreshold, "Change-mask binarization threshold (0-255)")
	minArea   = flag.Int("min-area", detection.DefaultMinRegionArea, "Minimum region area in pixels")
	asBase64  = flag.Bool("base64", false, "Write the figure as base64 to stdout instead of a file")
	version   = flag.Bool("version", false, "Print version information and exit")
)

func main() {
	flag.Parse()

	if *version {
		fmt.Printf("landchange %s\n", Version)
		fmt.Printf("  Build time: %s\n", BuildTime)
		fmt.Printf("  Git commit: %s\n", GitCommit)
		return
	}

	// Results may go to stdout, so all logging goes to stderr.
	log.SetOutput(os.Stderr)
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)

	if *pathA == "" || *pathB == "" {
		flag.Usage()
		os.Exit(2)
	}

	opts := pipeline.Options{
		Threshold:     *threshold,
		MinRegionArea: *minArea,
	}

	result, err := pipeline.Process(*pathA, *pathB, opts)
	if err != nil {
		log.Fatalf("change detection failed: %v", err)
	}

	if os.Getenv("LANDCHANGE_LOG_LEVEL") == "debug" {
		log.Printf("rendered %dx%d figure, photo region %v, %d bytes",
			result.Width, result.Height, result.PhotoRect, len(result.PNG))
	}

	if *asBase64 {
		fmt.Println(result.Base64)
		return
	}

	if err := os.WriteFile(*output, result.PNG, 0o644); err != nil {
		log.Fatalf("failed to write %s: %v", *output, err)
	}
	log.Printf("wrote %s", *output)
}
