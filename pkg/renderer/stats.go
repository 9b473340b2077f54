package renderer

import (
	"time"

	"github.com/df07/go-pathtracer/pkg/core"
)

// RenderStats contains statistics about the rendering process
type RenderStats struct {
	TotalPixels     int           // Total number of pixels rendered
	TotalSamples    int           // Total number of samples taken
	NonFinitePixels int           // Pixels whose average color was NaN or infinite
	Duration        time.Duration // Wall time of the whole render
	Workers         []WorkerStats // Per-worker breakdown, indexed by worker ID
}

// WorkerStats tracks what a single worker did during a render
type WorkerStats struct {
	ID      int
	Rows    int
	Samples int
	Busy    time.Duration
}

// SamplesPerSecond returns the overall sampling throughput
func (s RenderStats) SamplesPerSecond() float64 {
	if s.Duration <= 0 {
		return 0
	}
	return float64(s.TotalSamples) / s.Duration.Seconds()
}

// PixelStats accumulates the samples of a single pixel
type PixelStats struct {
	ColorAccum  core.Color // RGB sum of all samples
	SampleCount int        // Number of samples taken
}

// AddSample adds a new color sample to the pixel statistics
func (ps *PixelStats) AddSample(color core.Color) {
	ps.ColorAccum = ps.ColorAccum.Add(color)
	ps.SampleCount++
}

// GetColor returns the current average color for this pixel
func (ps *PixelStats) GetColor() core.Color {
	if ps.SampleCount == 0 {
		return core.Color{}
	}
	return ps.ColorAccum.Divide(float64(ps.SampleCount))
}
