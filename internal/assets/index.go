package assets

import (
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"sprite-bgclear/internal/imageio"
)

// DefaultSprites are the game sprites processed when no files are given.
var DefaultSprites = []string{
	"spaceship.png",
	"alien1.png",
	"alien2.png",
	"alien3.png",
	"alien4.png",
	"alien5.png",
}

// Defaults returns DefaultSprites joined onto dir.
func Defaults(dir string) []string {
	files := make([]string, len(DefaultSprites))
	for i, name := range DefaultSprites {
		files[i] = filepath.Join(dir, name)
	}
	return files
}

// Collect expands paths into an ordered list of image files.
// Directories are walked recursively for supported image extensions,
// sorted by path. Anything else, including paths that do not exist, is
// kept as given so the caller can report it. Duplicates are dropped,
// first occurrence wins.
func Collect(paths []string) ([]string, error) {
	var files []string
	seen := make(map[string]bool)
	add := func(p string) {
		key := filepath.Clean(p)
		if seen[key] {
			return
		}
		seen[key] = true
		files = append(files, p)
	}

	for _, p := range paths {
		info, err := os.Stat(p)
		if err != nil || !info.IsDir() {
			add(p)
			continue
		}

		var found []string
		err = filepath.WalkDir(p, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() || !imageio.Supported(path) {
				return nil
			}
			found = append(found, path)
			return nil
		})
		if err != nil {
			return nil, err
		}
		sort.Strings(found)
		for _, f := range found {
			add(f)
		}
	}
	return files, nil
}
