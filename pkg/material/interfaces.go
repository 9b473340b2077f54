package material

import (
	"github.com/df07/go-pathtracer/pkg/core"
)

// Material interface for objects that can scatter rays.
// Implementations must be immutable once built: the same instance is shared
// by every primitive that references it and read from many render goroutines.
type Material interface {
	// Scatter returns the outgoing ray and its attenuation, or false when
	// the incoming ray is absorbed.
	Scatter(rayIn core.Ray, hit HitRecord, sampler core.Sampler) (ScatterResult, bool)
}

// ScatterResult contains the result of material scattering
type ScatterResult struct {
	Scattered   core.Ray   // The scattered ray
	Attenuation core.Color // Color attenuation
}

// HitRecord contains information about a ray-object intersection
type HitRecord struct {
	Point     core.Point3 // Point of intersection
	Normal    core.Vec3   // Surface normal, always facing against the incoming ray
	T         float64     // Parameter t along the ray
	FrontFace bool        // Whether the ray arrived from outside the surface
	Material  Material    // Material of the hit object
}

// SetFaceNormal sets the normal vector and determines front/back face
func (h *HitRecord) SetFaceNormal(ray core.Ray, outwardNormal core.Vec3) {
	h.FrontFace = ray.Direction.Dot(outwardNormal) < 0
	if h.FrontFace {
		h.Normal = outwardNormal
	} else {
		h.Normal = outwardNormal.Negate()
	}
}
