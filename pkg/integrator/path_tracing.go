package integrator

import (
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
)

// DefaultTMin keeps scattered rays from re-hitting the surface they left
const DefaultTMin = 0.001

// PathTracer implements recursive unidirectional path tracing
type PathTracer struct {
	MaxDepth   int
	TMin       float64
	Background Background
}

// NewPathTracer creates a path tracer with the default shadow-acne epsilon
func NewPathTracer(maxDepth int, background Background) *PathTracer {
	return &PathTracer{
		MaxDepth:   maxDepth,
		TMin:       DefaultTMin,
		Background: background,
	}
}

// RayColor computes the color carried back along the ray
func (pt *PathTracer) RayColor(ray core.Ray, world geometry.Hittable, sampler core.Sampler) core.Color {
	return pt.Trace(ray, world, sampler, pt.MaxDepth)
}

// Trace follows the ray for at most depth bounces
func (pt *PathTracer) Trace(ray core.Ray, world geometry.Hittable, sampler core.Sampler, depth int) core.Color {
	// Out of bounces: no more light is gathered
	if depth <= 0 {
		return core.Color{}
	}

	hit, isHit := world.Hit(ray, pt.TMin, math.Inf(1))
	if !isHit {
		return pt.Background.Color(ray)
	}

	scatter, didScatter := hit.Material.Scatter(ray, *hit, sampler)
	if !didScatter {
		return core.Color{}
	}

	return scatter.Attenuation.MultiplyVec(pt.Trace(scatter.Scattered, world, sampler, depth-1))
}
