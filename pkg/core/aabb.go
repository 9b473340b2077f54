package core

import "math"

// AABB represents an axis-aligned bounding box
type AABB struct {
	Min Point3
	Max Point3
}

// NewAABB creates a new AABB from min and max points
func NewAABB(min, max Point3) AABB {
	return AABB{Min: min, Max: max}
}

// Hit tests the ray against the box with the slab method over [tMin, tMax]
func (box AABB) Hit(ray Ray, tMin, tMax float64) bool {
	for axis := 0; axis < 3; axis++ {
		lo := box.Min.Axis(axis)
		hi := box.Max.Axis(axis)
		origin := ray.Origin.Axis(axis)
		direction := ray.Direction.Axis(axis)

		// Exactly parallel to the slab: inside or never. Tiny non-zero
		// components still reach the slab at a large t.
		if direction == 0 {
			if origin < lo || origin > hi {
				return false
			}
			continue
		}

		invDirection := 1.0 / direction
		t0 := (lo - origin) * invDirection
		t1 := (hi - origin) * invDirection
		if t0 > t1 {
			t0, t1 = t1, t0
		}

		tMin = math.Max(tMin, t0)
		tMax = math.Min(tMax, t1)
		if tMin > tMax {
			return false
		}
	}
	return true
}

// Union returns an AABB that bounds both boxes
func (box AABB) Union(other AABB) AABB {
	return AABB{
		Min: NewVec3(math.Min(box.Min.X, other.Min.X), math.Min(box.Min.Y, other.Min.Y), math.Min(box.Min.Z, other.Min.Z)),
		Max: NewVec3(math.Max(box.Max.X, other.Max.X), math.Max(box.Max.Y, other.Max.Y), math.Max(box.Max.Z, other.Max.Z)),
	}
}

// Center returns the center point of the AABB
func (box AABB) Center() Point3 {
	return box.Min.Add(box.Max).Multiply(0.5)
}

// LongestAxis returns the axis (0=X, 1=Y, 2=Z) with the longest extent
func (box AABB) LongestAxis() int {
	size := box.Max.Subtract(box.Min)
	if size.X > size.Y && size.X > size.Z {
		return 0
	}
	if size.Y > size.Z {
		return 1
	}
	return 2
}
