package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/df07/go-pathtracer/pkg/output"
	"github.com/df07/go-pathtracer/pkg/renderer"
	"github.com/df07/go-pathtracer/pkg/scene"
)

func TestCreateScene(t *testing.T) {
	tests := []struct {
		name        string
		sceneType   string
		overrides   scene.Overrides
		expectError error
	}{
		{"basic scene", "basic", scene.Overrides{}, nil},
		{"materials scene", "materials", scene.Overrides{}, nil},
		{"defocus scene", "defocus", scene.Overrides{}, nil},
		{"random scene", "random", scene.Overrides{Seed: int64Ptr(42)}, nil},
		{"overridden size", "basic", scene.Overrides{Width: 64, AspectRatio: 2}, nil},

		{"unknown scene", "nonexistent", scene.Overrides{}, scene.ErrUnknownScene},
		{"empty scene name", "", scene.Overrides{}, scene.ErrUnknownScene},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := createScene(tt.sceneType, tt.overrides)
			if tt.expectError != nil {
				if !errors.Is(err, tt.expectError) {
					t.Errorf("Expected %v, got %v", tt.expectError, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if s.Name != tt.sceneType {
				t.Errorf("Expected scene %q, got %q", tt.sceneType, s.Name)
			}
		})
	}

	s, err := createScene("basic", scene.Overrides{Width: 64, AspectRatio: 2})
	if err != nil {
		t.Fatal(err)
	}
	if s.SamplingConfig.Width != 64 || s.SamplingConfig.Height != 32 {
		t.Errorf("Expected 64x32, got %dx%d", s.SamplingConfig.Width, s.SamplingConfig.Height)
	}
}

func TestCreateScene_ZeroSeed(t *testing.T) {
	s, err := createScene("random", scene.Overrides{Seed: int64Ptr(0)})
	if err != nil {
		t.Fatal(err)
	}
	if s.SamplingConfig.Seed != 0 {
		t.Errorf("Expected sampling seed 0, got %d", s.SamplingConfig.Seed)
	}

	layout := scene.NewRandomScene(0)
	if s.World.Len() != layout.World.Len() {
		t.Errorf("Expected the seed 0 layout with %d objects, got %d", layout.World.Len(), s.World.Len())
	}
}

func int64Ptr(v int64) *int64 { return &v }

func TestRenderCommand(t *testing.T) {
	out := filepath.Join(t.TempDir(), "basic.ppm")
	args := []string{"pathtracer", "render", "--scene", "basic", "--width", "20", "--aspect", "2",
		"--spp", "1", "--depth", "2", "--workers", "2", "--out", out}

	if err := newApp().Run(args); err != nil {
		t.Fatalf("render failed: %v", err)
	}

	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(string(data), "P3\n20 10\n255\n") {
		t.Errorf("Unexpected PPM header %q", data[:min(len(data), 16)])
	}
	if lines := strings.Count(string(data), "\n"); lines != 3+10 {
		t.Errorf("Expected 13 lines, got %d", lines)
	}
}

func TestRenderCommand_Errors(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name   string
		args   []string
		target error
	}{
		{"unknown scene", []string{"--scene", "nope"}, scene.ErrUnknownScene},
		{"unsupported format", []string{"--out", filepath.Join(dir, "out.jpg")}, output.ErrUnsupportedFormat},
		{"negative workers", []string{"--workers", "-1"}, renderer.ErrInvalidSampling},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			args := append([]string{"pathtracer", "render", "--width", "8", "--spp", "1"}, tt.args...)
			if err := newApp().Run(args); !errors.Is(err, tt.target) {
				t.Errorf("Expected %v, got %v", tt.target, err)
			}
		})
	}
}

func TestScenesCommand(t *testing.T) {
	var buf bytes.Buffer
	app := newApp()
	app.Writer = &buf

	if err := app.Run([]string{"pathtracer", "scenes"}); err != nil {
		t.Fatalf("scenes failed: %v", err)
	}
	for _, name := range scene.Names() {
		if !strings.Contains(buf.String(), name) {
			t.Errorf("Expected scene %q in listing:\n%s", name, buf.String())
		}
	}
	if !strings.Contains(buf.String(), "1200x800") {
		t.Errorf("Expected the random scene size in listing:\n%s", buf.String())
	}
}

func TestFormatRenderStats(t *testing.T) {
	stats := renderer.RenderStats{
		TotalPixels:     90000,
		TotalSamples:    9000000,
		NonFinitePixels: 2,
		Duration:        3 * time.Second,
		Workers: []renderer.WorkerStats{
			{ID: 0, Rows: 120, Samples: 4800000, Busy: 3 * time.Second},
			{ID: 1, Rows: 105, Samples: 4200000, Busy: 2 * time.Second},
		},
	}

	table := formatRenderStats(stats)
	for _, want := range []string{"Worker", "TOTAL", "4,800,000", "9,000,000", "90,000 px", "samples/s", "2 non-finite pixels"} {
		if !strings.Contains(table, want) {
			t.Errorf("Expected %q in stats table:\n%s", want, table)
		}
	}
}
