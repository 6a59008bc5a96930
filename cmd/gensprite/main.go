package main

import (
	"flag"
	"fmt"
	"os"

	"sprite-bgclear/internal/imageio"
	"sprite-bgclear/internal/sprite"
)

func main() {
	out := flag.String("out", "assets/mothership.png", "Output image path; the extension picks the format")
	sheetPath := flag.String("sheet", "", "JSON shape sheet to draw (default: built-in mothership)")
	flag.Parse()

	sheet := sprite.Mothership()
	if *sheetPath != "" {
		var err error
		sheet, err = sprite.LoadSheet(*sheetPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}

	img, err := sprite.Render(sheet)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	format, err := imageio.FormatFromPath(*out)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if err := imageio.Save(*out, img, format); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("%s created (%dx%d, %d shapes)\n", *out, sheet.Width, sheet.Height, len(sheet.Shapes))
}
