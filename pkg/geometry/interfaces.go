package geometry

import (
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
)

// Hittable is anything that can report its nearest intersection with a ray
// inside the parametric interval [tMin, tMax].
type Hittable interface {
	Hit(ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool)
	BoundingBox() core.AABB
}
