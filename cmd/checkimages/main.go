package main

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"

	"sprite-bgclear/internal/assets"
	"sprite-bgclear/internal/imageio"
	"sprite-bgclear/internal/report"
)

func main() {
	assetDir := flag.String("dir", "assets", "Directory holding the default sprites")
	paletteK := flag.Int("palette", 0, "Print the top N remaining colors (0 = off)")
	method := flag.String("method", "dominant", "Palette method: dominant or kmeans")
	flag.Parse()

	pm, err := report.ParsePaletteMethod(*method)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	paths := flag.Args()
	if len(paths) == 0 {
		paths = assets.Defaults(*assetDir)
	}
	files, err := assets.Collect(paths)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error collecting inputs: %v\n", err)
		os.Exit(1)
	}

	var stats []report.Stats
	for _, f := range files {
		img, _, err := imageio.Load(f)
		if errors.Is(err, fs.ErrNotExist) {
			fmt.Printf("File not found: %s\n", f)
			continue
		}
		if err != nil {
			fmt.Printf("Error checking %s: %v\n", f, err)
			continue
		}

		s := report.Inspect(f, img)
		s.Palette = report.Palette(img, *paletteK, pm)
		fmt.Println(s)
		stats = append(stats, s)
	}

	if len(stats) > 1 {
		fmt.Println(report.Summarize(stats))
	}
}
