package core

import (
	"math"
	"math/rand"
	"testing"
)

const tolerance = 1e-9

func vecNear(a, b Vec3, eps float64) bool {
	return a.Subtract(b).Length() <= eps
}

func TestVec3_Arithmetic(t *testing.T) {
	a := NewVec3(1, -2, 3)
	b := NewVec3(0.5, 4, -1)

	tests := []struct {
		name     string
		got      Vec3
		expected Vec3
	}{
		{"add", a.Add(b), NewVec3(1.5, 2, 2)},
		{"subtract", a.Subtract(b), NewVec3(0.5, -6, 4)},
		{"multiply", a.Multiply(2), NewVec3(2, -4, 6)},
		{"scale", Scale(2, a), NewVec3(2, -4, 6)},
		{"divide", a.Divide(2), NewVec3(0.5, -1, 1.5)},
		{"multiply vec", a.MultiplyVec(b), NewVec3(0.5, -8, -3)},
		{"divide vec", a.DivideVec(b), NewVec3(2, -0.5, -3)},
		{"negate", a.Negate(), NewVec3(-1, 2, -3)},
		{"cross", NewVec3(1, 0, 0).Cross(NewVec3(0, 1, 0)), NewVec3(0, 0, 1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.expected {
				t.Errorf("Expected %v, got %v", tt.expected, tt.got)
			}
		})
	}
}

func TestVec3_NoImplicitClamping(t *testing.T) {
	c := NewColor(0.9, 0.9, 0.9).Add(NewColor(0.9, 0.9, 0.9))
	if c.X != 1.8 {
		t.Errorf("Expected 1.8 without clamping, got %f", c.X)
	}
}

func TestVec3_AlgebraicProperties(t *testing.T) {
	random := rand.New(rand.NewSource(42))
	sampler := NewRandomSampler(random)

	for i := 0; i < 1000; i++ {
		a := RandomVec3Range(sampler, -10, 10)
		b := RandomVec3Range(sampler, -10, 10)

		if !vecNear(a.Add(b).Subtract(b), a, 1e-12) {
			t.Fatalf("(a+b)-b != a for a=%v b=%v", a, b)
		}
		if a.Dot(b) != b.Dot(a) {
			t.Fatalf("dot not symmetric for a=%v b=%v", a, b)
		}
		if got := a.Normalize().Length(); math.Abs(got-1) > tolerance {
			t.Fatalf("|unit(a)| = %f, want 1", got)
		}
		if cross := a.Cross(a); cross != (Vec3{}) {
			t.Fatalf("a x a = %v, want zero", cross)
		}
	}
}

func TestVec3_NormalizeZeroIsNaN(t *testing.T) {
	n := Vec3{}.Normalize()
	if !math.IsNaN(n.X) || !math.IsNaN(n.Y) || !math.IsNaN(n.Z) {
		t.Errorf("Expected NaN components for the zero vector, got %v", n)
	}
	if n.IsFinite() {
		t.Error("Expected IsFinite to be false for NaN vector")
	}
}

func TestVec3_NearZero(t *testing.T) {
	tests := []struct {
		name     string
		v        Vec3
		expected bool
	}{
		{"zero", Vec3{}, true},
		{"tiny", NewVec3(1e-9, -1e-9, 5e-9), true},
		{"one component at epsilon", NewVec3(1e-8, 0, 0), false},
		{"unit", NewVec3(0, 1, 0), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.v.NearZero(); got != tt.expected {
				t.Errorf("NearZero(%v) = %t, want %t", tt.v, got, tt.expected)
			}
		})
	}
}

func TestReflect(t *testing.T) {
	v := NewVec3(1, -1, 0)
	n := NewVec3(0, 1, 0)
	if got := Reflect(v, n); got != NewVec3(1, 1, 0) {
		t.Errorf("Expected (1,1,0), got %v", got)
	}
}

func TestRefract_NormalIncidencePassesStraight(t *testing.T) {
	uv := NewVec3(0, -1, 0)
	n := NewVec3(0, 1, 0)
	got := Refract(uv, n, 1.0/1.5)
	if !vecNear(got, uv, tolerance) {
		t.Errorf("Expected %v, got %v", uv, got)
	}
}

func TestRefract_SnellsLaw(t *testing.T) {
	uv := NewVec3(1, -1, 0).Normalize()
	n := NewVec3(0, 1, 0)
	ratio := 1.0 / 1.5
	out := Refract(uv, n, ratio)

	sinIn := math.Sqrt(1 - math.Pow(uv.Negate().Dot(n), 2))
	sinOut := math.Sqrt(1 - math.Pow(out.Normalize().Negate().Dot(n), 2))
	if math.Abs(sinOut-ratio*sinIn) > 1e-9 {
		t.Errorf("Snell's law violated: sinOut=%f, ratio*sinIn=%f", sinOut, ratio*sinIn)
	}
}

func TestRay_At(t *testing.T) {
	ray := NewRay(NewVec3(1, 2, 3), NewVec3(0, 0, -2))
	if got := ray.At(1.5); got != NewVec3(1, 2, 0) {
		t.Errorf("Expected (1,2,0), got %v", got)
	}
}

func TestClamp(t *testing.T) {
	if Clamp(-1, 0, 0.999) != 0 || Clamp(2, 0, 0.999) != 0.999 || Clamp(0.5, 0, 0.999) != 0.5 {
		t.Error("Clamp returned an out-of-range value")
	}
}

func TestAABB_Hit(t *testing.T) {
	box := NewAABB(NewVec3(-1, -1, -1), NewVec3(1, 1, 1))

	tests := []struct {
		name     string
		ray      Ray
		expected bool
	}{
		{"through center", NewRay(NewVec3(0, 0, 5), NewVec3(0, 0, -1)), true},
		{"miss to the side", NewRay(NewVec3(3, 0, 5), NewVec3(0, 0, -1)), false},
		{"parallel inside slab", NewRay(NewVec3(0.5, 0, 5), NewVec3(0, 0, -1)), true},
		{"pointing away", NewRay(NewVec3(0, 0, 5), NewVec3(0, 0, 1)), false},
		{"tiny component reaches slab far away", NewRay(NewVec3(-1.005, 0, 1e6), NewVec3(9e-9, 0, -1)), true},
		{"tiny component drifts away from slab", NewRay(NewVec3(-1.005, 0, 1e6), NewVec3(-9e-9, 0, -1)), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := box.Hit(tt.ray, 0.001, math.Inf(1)); got != tt.expected {
				t.Errorf("Hit = %t, want %t", got, tt.expected)
			}
		})
	}
}
