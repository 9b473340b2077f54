package geometry

import (
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
)

// HittableList is an aggregate of hittables answered by a linear scan.
// It must not be modified once rendering has started.
type HittableList struct {
	objects []Hittable
}

// NewHittableList creates a list holding the given objects
func NewHittableList(objects ...Hittable) *HittableList {
	return &HittableList{objects: append([]Hittable(nil), objects...)}
}

// Add appends an object to the list
func (l *HittableList) Add(object Hittable) {
	l.objects = append(l.objects, object)
}

// Clear removes all objects
func (l *HittableList) Clear() {
	l.objects = nil
}

// Len returns the number of objects
func (l *HittableList) Len() int {
	return len(l.objects)
}

// Objects returns the members of the list
func (l *HittableList) Objects() []Hittable {
	return l.objects
}

// Hit returns the closest intersection among all members
func (l *HittableList) Hit(ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool) {
	var closestHit *material.HitRecord
	closestSoFar := tMax

	for _, object := range l.objects {
		if hit, isHit := object.Hit(ray, tMin, closestSoFar); isHit {
			closestSoFar = hit.T
			closestHit = hit
		}
	}

	return closestHit, closestHit != nil
}

// BoundingBox returns the union of all member boxes
func (l *HittableList) BoundingBox() core.AABB {
	if len(l.objects) == 0 {
		return core.AABB{}
	}
	box := l.objects[0].BoundingBox()
	for _, object := range l.objects[1:] {
		box = box.Union(object.BoundingBox())
	}
	return box
}
