package batch

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// Summary counts successes and failures.
func Summary(results []Result) (success, failed int) {
	for _, r := range results {
		if r.Success {
			success++
		} else {
			failed++
		}
	}
	return success, failed
}

// WriteReport writes the per-file results as a JSON array.
func WriteReport(path string, results []Result) error {
	data, err := json.MarshalIndent(results, "", "  ")
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
