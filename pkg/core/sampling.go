package core

import (
	"math/rand"
)

// Sampler provides uniform random numbers for rendering algorithms.
// Implementations are not required to be safe for concurrent use; every
// goroutine that renders must own its own Sampler.
type Sampler interface {
	// Get1D returns a uniform value in [0, 1)
	Get1D() float64
	// GetRange returns a uniform value in [min, max)
	GetRange(min, max float64) float64
}

// RandomSampler wraps a standard Go random generator
type RandomSampler struct {
	random *rand.Rand
}

// NewRandomSampler creates a sampler from a Go random generator
func NewRandomSampler(random *rand.Rand) *RandomSampler {
	return &RandomSampler{random: random}
}

// NewSeededSampler creates a sampler with its own generator seeded by seed
func NewSeededSampler(seed int64) *RandomSampler {
	return NewRandomSampler(rand.New(rand.NewSource(seed)))
}

// Get1D returns a random float64 in [0, 1)
func (r *RandomSampler) Get1D() float64 {
	return r.random.Float64()
}

// GetRange returns a random float64 in [min, max)
func (r *RandomSampler) GetRange(min, max float64) float64 {
	return min + (max-min)*r.random.Float64()
}

// RowSeed derives an independent seed for one image row from a base seed.
// The mix is a splitmix64 finalizer so neighbouring rows get unrelated streams.
func RowSeed(base int64, row int) int64 {
	z := uint64(base) + uint64(row+1)*0x9e3779b97f4a7c15
	z = (z ^ (z >> 30)) * 0xbf58476d1ce4e5b9
	z = (z ^ (z >> 27)) * 0x94d049bb133111eb
	z ^= z >> 31
	return int64(z & (1<<63 - 1))
}

// RandomVec3 returns a vector with each component uniform in [0, 1)
func RandomVec3(sampler Sampler) Vec3 {
	return NewVec3(sampler.Get1D(), sampler.Get1D(), sampler.Get1D())
}

// RandomVec3Range returns a vector with each component uniform in [min, max)
func RandomVec3Range(sampler Sampler, min, max float64) Vec3 {
	return NewVec3(
		sampler.GetRange(min, max),
		sampler.GetRange(min, max),
		sampler.GetRange(min, max),
	)
}

// RandomInUnitSphere rejection-samples a uniform point inside the unit ball
func RandomInUnitSphere(sampler Sampler) Vec3 {
	for {
		p := RandomVec3Range(sampler, -1, 1)
		if p.LengthSquared() < 1 {
			return p
		}
	}
}

// RandomUnitVector returns a random direction on the unit sphere
func RandomUnitVector(sampler Sampler) Vec3 {
	return RandomInUnitSphere(sampler).Normalize()
}

// RandomInUnitDisk generates a random point in the z=0 unit disk (for depth of field)
func RandomInUnitDisk(sampler Sampler) Vec3 {
	for {
		p := NewVec3(sampler.GetRange(-1, 1), sampler.GetRange(-1, 1), 0)
		if p.LengthSquared() < 1 {
			return p
		}
	}
}
