package geometry

import (
	"math"
	"testing"

	"github.com/df07/go-pathtracer/pkg/core"
)

func randomSpheres(count int, seed int64) []Hittable {
	sampler := core.NewSeededSampler(seed)
	objects := make([]Hittable, 0, count)
	for i := 0; i < count; i++ {
		center := core.RandomVec3Range(sampler, -10, 10)
		radius := sampler.GetRange(0.1, 1.0)
		objects = append(objects, NewSphere(center, radius, nil))
	}
	return objects
}

func TestBVH_LeafThresholdBoundary(t *testing.T) {
	stats := NewBVH(randomSpheres(leafThreshold, 1)).Stats()
	if stats.Nodes != 1 || stats.Leaves != 1 {
		t.Errorf("Expected a single leaf for %d objects, got %+v", leafThreshold, stats)
	}

	stats = NewBVH(randomSpheres(leafThreshold+1, 1)).Stats()
	if stats.Nodes == 1 {
		t.Errorf("Expected split for %d objects, but got single node", leafThreshold+1)
	}
	if stats.Objects != leafThreshold+1 {
		t.Errorf("Expected %d objects in leaves, got %d", leafThreshold+1, stats.Objects)
	}
}

func TestBVH_MatchesHittableList(t *testing.T) {
	objects := randomSpheres(200, 42)
	list := NewHittableList(objects...)
	bvh := NewBVH(objects)
	sampler := core.NewSeededSampler(7)

	for i := 0; i < 5000; i++ {
		ray := core.NewRay(
			core.RandomVec3Range(sampler, -15, 15),
			core.RandomVec3Range(sampler, -1, 1),
		)

		listHit, listOK := list.Hit(ray, 0.001, math.Inf(1))
		bvhHit, bvhOK := bvh.Hit(ray, 0.001, math.Inf(1))

		if listOK != bvhOK {
			t.Fatalf("ray %d: list hit=%t, bvh hit=%t", i, listOK, bvhOK)
		}
		if listOK && listHit.T != bvhHit.T {
			t.Fatalf("ray %d: list t=%f, bvh t=%f", i, listHit.T, bvhHit.T)
		}
	}
}

func TestBVH_MatchesHittableList_NearParallelRays(t *testing.T) {
	objects := randomSpheres(20, 5)
	objects = append(objects, NewSphere(core.NewVec3(0, 0, -1.5e6), 1, nil))
	list := NewHittableList(objects...)
	bvh := NewBVH(objects)

	tests := []struct {
		name      string
		origin    core.Vec3
		direction core.Vec3
	}{
		{"x component below epsilon", core.NewVec3(-1.005, 0, 0), core.NewVec3(9e-9, 0, -1)},
		{"y component below epsilon", core.NewVec3(0, -1.005, 0), core.NewVec3(0, 9e-9, -1)},
		{"negative tiny component", core.NewVec3(1.005, 0, 0), core.NewVec3(-9e-9, 0, -1)},
		{"exactly parallel inside slab", core.NewVec3(0.5, 0, 0), core.NewVec3(0, 0, -1)},
		{"exactly parallel outside slab", core.NewVec3(2, 0, 0), core.NewVec3(0, 0, -1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ray := core.NewRay(tt.origin, tt.direction)
			listHit, listOK := list.Hit(ray, 0.001, math.Inf(1))
			bvhHit, bvhOK := bvh.Hit(ray, 0.001, math.Inf(1))

			if listOK != bvhOK {
				t.Fatalf("list hit=%t, bvh hit=%t", listOK, bvhOK)
			}
			if listOK && listHit.T != bvhHit.T {
				t.Fatalf("list t=%f, bvh t=%f", listHit.T, bvhHit.T)
			}
		})
	}

	// The far sphere is only reachable through the tiny x component
	if _, ok := bvh.Hit(core.NewRay(core.NewVec3(-1.005, 0, 0), core.NewVec3(9e-9, 0, -1)), 0.001, math.Inf(1)); !ok {
		t.Error("Expected the BVH to find the distant sphere")
	}
}

func TestBVH_Empty(t *testing.T) {
	bvh := NewBVH(nil)
	if _, isHit := bvh.Hit(core.NewRay(core.Vec3{}, core.NewVec3(0, 0, -1)), 0.001, math.Inf(1)); isHit {
		t.Error("Empty BVH should never report a hit")
	}
	if stats := bvh.Stats(); stats.Nodes != 0 {
		t.Errorf("Expected no nodes, got %+v", stats)
	}
}

func TestBVH_DoesNotReorderInput(t *testing.T) {
	objects := randomSpheres(50, 3)
	original := append([]Hittable(nil), objects...)
	NewBVH(objects)
	for i := range objects {
		if objects[i] != original[i] {
			t.Fatal("NewBVH reordered the caller's slice")
		}
	}
}
