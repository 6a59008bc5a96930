package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"sprite-bgclear/internal/assets"
	"sprite-bgclear/internal/batch"
	"sprite-bgclear/internal/config"
)

func main() {
	// CLI flags
	configFile := flag.String("config", "", "Path to config.json file")
	tolerance := flag.Float64("tolerance", -1, "Max RGB distance to a seed color (default: 100)")
	seeds := flag.String("seeds", "", `Seed points "x,y;x,y", negative counts from the far edge (default: corners)`)
	assetDir := flag.String("dir", "", "Directory holding the default sprites (default: assets)")
	outputDir := flag.String("output", "", "Write results here instead of overwriting the inputs")
	reportPath := flag.String("report", "", "Write a JSON run report to this path")
	trim := flag.Bool("trim", false, "Crop each result to its non-transparent pixels")
	despeckle := flag.Float64("despeckle", 0, "Clear opaque islands smaller than this fraction of the sprite (0 = off)")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [flags] [file|dir ...]\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	// Load config
	var cfg config.Config
	if *configFile != "" {
		var err error
		cfg, err = config.Load(*configFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
	}

	// CLI flags override config file
	err := cfg.Resolve(config.Flags{
		AssetDir:  *assetDir,
		Files:     flag.Args(),
		Tolerance: *tolerance,
		Seeds:     *seeds,
		OutputDir: *outputDir,
		Report:    *reportPath,
		Trim:      *trim,
		Despeckle: *despeckle,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	files, err := assets.Collect(cfg.Files)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error collecting inputs: %v\n", err)
		os.Exit(1)
	}
	if len(files) == 0 {
		fmt.Println("No images to process.")
		os.Exit(0)
	}

	start := time.Now()

	results := batch.Run(batch.Config{
		Remove:    cfg.RemoveOptions(),
		OutputDir: cfg.OutputDir,
		Trim:      cfg.Trim,
		Despeckle: cfg.Despeckle,
	}, files)

	success, failed := batch.Summary(results)
	fmt.Printf("Done: %d/%d processed in %.1fs\n", success, len(files), time.Since(start).Seconds())

	if cfg.Report != "" {
		if err := batch.WriteReport(cfg.Report, results); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: report write failed: %v\n", err)
		} else {
			fmt.Printf("Report: %s\n", cfg.Report)
		}
	}

	if failed > 0 {
		os.Exit(1)
	}
}
