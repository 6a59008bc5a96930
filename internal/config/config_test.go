package config

import (
	"image"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `{
		"asset_dir": "sprites",
		"files": ["a.png", "b.png"],
		"tolerance": 0,
		"seeds": [[0, 0], [-1, -1]],
		"trim": true
	}`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.AssetDir != "sprites" || len(cfg.Files) != 2 || !cfg.Trim {
		t.Errorf("unexpected config: %+v", cfg)
	}
	if cfg.Tolerance == nil || *cfg.Tolerance != 0 {
		t.Errorf("explicit zero tolerance lost: %v", cfg.Tolerance)
	}
	if want := [][2]int{{0, 0}, {-1, -1}}; !reflect.DeepEqual(cfg.Seeds, want) {
		t.Errorf("seeds = %v, want %v", cfg.Seeds, want)
	}
}

func TestLoadErrors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Error("expected error for missing file")
	}
	if _, err := Load(writeConfig(t, `{"tolerance": "high"}`)); err == nil {
		t.Error("expected error for bad JSON")
	}
}

func TestResolveDefaults(t *testing.T) {
	var cfg Config
	if err := cfg.Resolve(Flags{Tolerance: -1}); err != nil {
		t.Fatal(err)
	}
	if cfg.AssetDir != "assets" {
		t.Errorf("AssetDir = %q", cfg.AssetDir)
	}
	if len(cfg.Files) != 6 || cfg.Files[0] != filepath.Join("assets", "spaceship.png") {
		t.Errorf("Files = %v", cfg.Files)
	}
	if *cfg.Tolerance != 100 {
		t.Errorf("Tolerance = %v, want 100", *cfg.Tolerance)
	}

	opts := cfg.RemoveOptions()
	if opts.Tolerance != 100 || opts.Seeds != nil {
		t.Errorf("RemoveOptions = %+v", opts)
	}
}

func TestResolveFlagsOverride(t *testing.T) {
	tol := 40.0
	cfg := Config{
		Files:     []string{"from-config.png"},
		Tolerance: &tol,
		Seeds:     [][2]int{{1, 1}},
	}
	err := cfg.Resolve(Flags{
		Files:     []string{"cli.png"},
		Tolerance: 0,
		Seeds:     "0,0; -1,0",
		OutputDir: "out",
	})
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(cfg.Files, []string{"cli.png"}) {
		t.Errorf("Files = %v", cfg.Files)
	}
	if *cfg.Tolerance != 0 {
		t.Errorf("Tolerance = %v, want 0", *cfg.Tolerance)
	}
	if cfg.OutputDir != "out" {
		t.Errorf("OutputDir = %q", cfg.OutputDir)
	}

	opts := cfg.RemoveOptions()
	want := []image.Point{{0, 0}, {-1, 0}}
	if !reflect.DeepEqual(opts.Seeds, want) {
		t.Errorf("Seeds = %v, want %v", opts.Seeds, want)
	}
}

func TestResolveRejectsBadValues(t *testing.T) {
	neg := -5.0
	cfg := Config{Tolerance: &neg}
	if err := cfg.Resolve(Flags{Tolerance: -1}); err == nil {
		t.Error("expected error for negative tolerance")
	}

	cfg = Config{Despeckle: 1.5}
	if err := cfg.Resolve(Flags{Tolerance: -1}); err == nil {
		t.Error("expected error for despeckle >= 1")
	}

	cfg = Config{}
	if err := cfg.Resolve(Flags{Tolerance: -1, Seeds: "1;2"}); err == nil {
		t.Error("expected error for malformed seeds")
	}
}

func TestParseSeeds(t *testing.T) {
	got, err := ParseSeeds("0,0;-1, 0; 3,4;")
	if err != nil {
		t.Fatal(err)
	}
	want := [][2]int{{0, 0}, {-1, 0}, {3, 4}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}

	for _, bad := range []string{"", ";", "1", "a,b", "1,2,3"} {
		if _, err := ParseSeeds(bad); err == nil {
			t.Errorf("ParseSeeds(%q) succeeded", bad)
		}
	}
}
