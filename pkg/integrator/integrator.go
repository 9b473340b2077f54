package integrator

import (
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
)

// Integrator defines the interface for light transport algorithms.
// Implementations must be safe for concurrent use with distinct samplers.
type Integrator interface {
	RayColor(ray core.Ray, world geometry.Hittable, sampler core.Sampler) core.Color
}

// Background is the environment seen by rays that escape the scene: a
// vertical gradient from Bottom (looking down) to Top (looking up).
type Background struct {
	Bottom core.Color
	Top    core.Color
}

// DefaultBackground returns the white to sky-blue gradient
func DefaultBackground() Background {
	return Background{
		Bottom: core.NewColor(1.0, 1.0, 1.0),
		Top:    core.NewColor(0.5, 0.7, 1.0),
	}
}

// Color returns the gradient color for the ray's direction
func (b Background) Color(ray core.Ray) core.Color {
	unitDirection := ray.Direction.Normalize()
	t := 0.5 * (unitDirection.Y + 1.0)
	return b.Bottom.Multiply(1.0 - t).Add(b.Top.Multiply(t))
}
