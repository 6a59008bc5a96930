package batch

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"

	"sprite-bgclear/internal/bgclear"
	"sprite-bgclear/internal/imageio"
	"sprite-bgclear/internal/postprocess"
	"sprite-bgclear/internal/raster"
)

// Config holds the settings shared by every file in a run.
type Config struct {
	Remove    bgclear.Options
	OutputDir string // empty = overwrite each input in place
	Trim      bool
	Despeckle float64 // 0 = off
}

// Result holds the outcome of processing one file.
type Result struct {
	Path       string `json:"path"`
	Output     string `json:"output,omitempty"`
	Width      int    `json:"width"`
	Height     int    `json:"height"`
	Cleared    int    `json:"cleared"`
	Despeckled int    `json:"despeckled,omitempty"`
	Success    bool   `json:"success"`
	Error      string `json:"error,omitempty"`
	Missing    bool   `json:"missing,omitempty"`
}

// Run processes files one after another. A failing file is reported and
// skipped; it never stops the run.
func Run(cfg Config, files []string) []Result {
	results := make([]Result, 0, len(files))

	for _, path := range files {
		r := processFile(cfg, path)
		switch {
		case r.Success:
			fmt.Printf("Processed %s with tolerance %g (%d pixels cleared)\n", path, cfg.Remove.Tolerance, r.Cleared)
		case r.Missing:
			fmt.Printf("File not found: %s\n", path)
		default:
			fmt.Printf("Error processing %s: %s\n", path, r.Error)
		}
		results = append(results, r)
	}
	return results
}

func processFile(cfg Config, path string) Result {
	res := Result{Path: path}

	img, format, err := imageio.Load(path)
	if err != nil {
		res.Missing = errors.Is(err, fs.ErrNotExist)
		res.Error = err.Error()
		return res
	}
	b := img.Bounds()
	res.Width, res.Height = b.Dx(), b.Dy()

	grid := raster.FromNRGBA(img)
	cleared, err := bgclear.Remove(grid, cfg.Remove)
	if err != nil {
		res.Error = err.Error()
		return res
	}
	res.Cleared = cleared.Len()

	if cfg.Despeckle > 0 {
		res.Despeckled = postprocess.RemoveSmallClusters(grid, cfg.Despeckle)
	}
	if cfg.Trim {
		img = postprocess.Trim(img)
	}

	out := OutputPath(cfg.OutputDir, path)
	if err := imageio.Save(out, img, format); err != nil {
		res.Error = err.Error()
		return res
	}
	res.Output = out
	res.Success = true
	return res
}

// OutputPath returns where the processed copy of path is written.
func OutputPath(outputDir, path string) string {
	if outputDir == "" {
		return path
	}
	return filepath.Join(outputDir, filepath.Base(path))
}
