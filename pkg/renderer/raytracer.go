package renderer

import (
	"context"
	"fmt"
	"time"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/integrator"
	"github.com/df07/go-pathtracer/pkg/output"
)

// Scene interface to avoid circular imports
type Scene interface {
	GetCamera() *Camera
	GetWorld() geometry.Hittable
	GetBackground() integrator.Background
}

// Validator is implemented by scenes that can check their own configuration.
// Render runs it before any work is scheduled.
type Validator interface {
	Validate() error
}

// Raytracer renders a scene into a frame. Everything it reads during a
// render (scene, camera, materials) is shared read-only between workers.
type Raytracer struct {
	scene      Scene
	camera     *Camera
	world      geometry.Hittable
	config     SamplingConfig
	integrator integrator.Integrator
	logger     core.Logger
}

// NewRaytracer creates a new raytracer with a path tracing integrator
func NewRaytracer(scene Scene, config SamplingConfig, logger core.Logger) *Raytracer {
	if logger == nil {
		logger = core.NopLogger{}
	}
	rt := &Raytracer{
		scene:  scene,
		config: config,
		logger: logger,
	}
	if scene != nil {
		rt.camera = scene.GetCamera()
		rt.world = scene.GetWorld()
		rt.integrator = integrator.NewPathTracer(config.MaxDepth, scene.GetBackground())
	}
	return rt
}

// SetIntegrator replaces the light transport algorithm
func (rt *Raytracer) SetIntegrator(integratorInst integrator.Integrator) {
	rt.integrator = integratorInst
}

// Config returns the sampling configuration
func (rt *Raytracer) Config() SamplingConfig {
	return rt.config
}

// Render renders the full image in parallel, one row per task. The context is
// checked between rows; a cancelled render returns ErrInterrupted.
func (rt *Raytracer) Render(ctx context.Context) (*output.Frame, RenderStats, error) {
	if rt.scene == nil {
		return nil, RenderStats{}, ErrNoScene
	}
	if v, ok := rt.scene.(Validator); ok {
		if err := v.Validate(); err != nil {
			return nil, RenderStats{}, err
		}
	}
	if err := rt.config.Validate(); err != nil {
		return nil, RenderStats{}, err
	}

	start := time.Now()
	frame := output.NewFrame(rt.config.Width, rt.config.Height)

	pool := NewWorkerPool(rt, frame, rt.config.NumWorkers)
	rt.logger.Printf("Rendering %dx%d at %d samples per pixel, max depth %d (using %d workers)...\n",
		rt.config.Width, rt.config.Height, rt.config.SamplesPerPixel, rt.config.MaxDepth, pool.GetNumWorkers())

	pool.Start(ctx)
	for row := 0; row < frame.Height; row++ {
		pool.SubmitTask(RowTask{Row: row, Seed: core.RowSeed(rt.config.Seed, row)})
	}

	stats := RenderStats{
		TotalPixels: frame.Width * frame.Height,
		Workers:     make([]WorkerStats, pool.GetNumWorkers()),
	}
	for i := range stats.Workers {
		stats.Workers[i].ID = i
	}

	var renderErr error
	for i := 0; i < frame.Height; i++ {
		result, ok := pool.GetResult()
		if !ok {
			renderErr = fmt.Errorf("renderer: worker pool closed unexpectedly")
			break
		}
		if result.Error != nil {
			if renderErr == nil {
				renderErr = fmt.Errorf("%w: %v", ErrInterrupted, result.Error)
			}
			continue
		}

		ws := &stats.Workers[result.WorkerID]
		ws.Rows++
		ws.Samples += result.Samples
		ws.Busy += result.Duration
		stats.TotalSamples += result.Samples
		stats.NonFinitePixels += result.NonFinite
	}
	pool.Stop()

	stats.Duration = time.Since(start)
	if renderErr != nil {
		return nil, stats, renderErr
	}
	if stats.NonFinitePixels > 0 {
		rt.logger.Printf("Warning: %d pixels averaged to a non-finite color; check the camera configuration\n", stats.NonFinitePixels)
	}

	return frame, stats, nil
}

// RenderRow renders image row `row` (0 is the top) into dst. It returns the
// number of samples taken and how many pixels averaged to a non-finite color.
func (rt *Raytracer) RenderRow(row int, dst []output.RGB, sampler core.Sampler) (samples, nonFinite int) {
	for col := range dst {
		var ps PixelStats
		rt.SamplePixel(col, row, sampler, &ps)

		average := ps.GetColor()
		if !average.IsFinite() {
			nonFinite++
		}
		dst[col] = ToRGB(average)
		samples += ps.SampleCount
	}
	return samples, nonFinite
}

// SamplePixel accumulates SamplesPerPixel jittered samples for pixel (col, row)
func (rt *Raytracer) SamplePixel(col, row int, sampler core.Sampler, ps *PixelStats) {
	// Scanlines count up from the bottom of the viewport
	j := rt.config.Height - 1 - row
	sDenom := float64(max(rt.config.Width-1, 1))
	tDenom := float64(max(rt.config.Height-1, 1))

	for sample := 0; sample < rt.config.SamplesPerPixel; sample++ {
		s := (float64(col) + sampler.Get1D()) / sDenom
		t := (float64(j) + sampler.Get1D()) / tDenom

		ray := rt.camera.GetRay(s, t, sampler)
		ps.AddSample(rt.integrator.RayColor(ray, rt.world, sampler))
	}
}
