package renderer

import "fmt"

// SamplingConfig contains rendering configuration
type SamplingConfig struct {
	Width           int   // Image width in pixels
	Height          int   // Image height in pixels
	SamplesPerPixel int   // Number of rays per pixel
	MaxDepth        int   // Maximum ray bounce depth
	NumWorkers      int   // Number of parallel workers (0 = use CPU count)
	Seed            int64 // Base seed; each row derives its own stream from it
	UseBVH          bool  // Intersect through a BVH instead of a linear scan
}

// DefaultSamplingConfig returns sensible default values
func DefaultSamplingConfig() SamplingConfig {
	return SamplingConfig{
		Width:           400,
		Height:          225,
		SamplesPerPixel: 100,
		MaxDepth:        50,
		NumWorkers:      0,
		Seed:            42,
	}
}

// Validate rejects empty images and non-positive sample or depth counts
func (c SamplingConfig) Validate() error {
	if c.Width < 1 || c.Height < 1 {
		return fmt.Errorf("%w: image size %dx%d must be at least 1x1", ErrInvalidSampling, c.Width, c.Height)
	}
	if c.SamplesPerPixel < 1 {
		return fmt.Errorf("%w: samples per pixel %d must be at least 1", ErrInvalidSampling, c.SamplesPerPixel)
	}
	if c.MaxDepth < 1 {
		return fmt.Errorf("%w: max depth %d must be at least 1", ErrInvalidSampling, c.MaxDepth)
	}
	if c.NumWorkers < 0 {
		return fmt.Errorf("%w: worker count %d must not be negative", ErrInvalidSampling, c.NumWorkers)
	}
	return nil
}

// MergeSamplingConfig returns base with every non-zero field of override applied.
// UseBVH can only be switched on by an override.
func MergeSamplingConfig(base, override SamplingConfig) SamplingConfig {
	result := base
	if override.Width != 0 {
		result.Width = override.Width
	}
	if override.Height != 0 {
		result.Height = override.Height
	}
	if override.SamplesPerPixel != 0 {
		result.SamplesPerPixel = override.SamplesPerPixel
	}
	if override.MaxDepth != 0 {
		result.MaxDepth = override.MaxDepth
	}
	if override.NumWorkers != 0 {
		result.NumWorkers = override.NumWorkers
	}
	if override.Seed != 0 {
		result.Seed = override.Seed
	}
	result.UseBVH = result.UseBVH || override.UseBVH
	return result
}
