package scene

import (
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/integrator"
	"github.com/df07/go-pathtracer/pkg/material"
	"github.com/df07/go-pathtracer/pkg/renderer"
)

const defaultAspectRatio = 16.0 / 9.0

func defaultSampling(width int, aspectRatio float64) renderer.SamplingConfig {
	config := renderer.DefaultSamplingConfig()
	config.Width = width
	config.Height = imageHeight(width, aspectRatio)
	return config
}

// NewBasicScene creates a diffuse sphere resting on a large ground sphere
func NewBasicScene() *Scene {
	ground := material.NewLambertian(core.NewColor(0.8, 0.8, 0.0))
	center := material.NewLambertian(core.NewColor(0.7, 0.3, 0.3))

	return &Scene{
		Name: "basic",
		World: geometry.NewHittableList(
			geometry.NewSphere(core.NewVec3(0, -100.5, -1), 100, ground),
			geometry.NewSphere(core.NewVec3(0, 0, -1), 0.5, center),
		),
		CameraConfig: renderer.CameraConfig{
			LookFrom:    core.NewVec3(0, 0, 0),
			LookAt:      core.NewVec3(0, 0, -1),
			Up:          core.NewVec3(0, 1, 0),
			VFov:        90.0,
			AspectRatio: defaultAspectRatio,
		},
		SamplingConfig: defaultSampling(400, defaultAspectRatio),
		Background:     integrator.DefaultBackground(),
	}
}

// materialsWorld is ground, a diffuse center, a hollow glass shell on the
// left and fuzzed gold metal on the right
func materialsWorld() *geometry.HittableList {
	ground := material.NewLambertian(core.NewColor(0.8, 0.8, 0.0))
	center := material.NewLambertian(core.NewColor(0.1, 0.2, 0.5))
	glass := material.NewDielectric(1.5)
	gold := material.NewMetal(core.NewColor(0.8, 0.6, 0.2), 0.0)

	return geometry.NewHittableList(
		geometry.NewSphere(core.NewVec3(0, -100.5, -1), 100, ground),
		geometry.NewSphere(core.NewVec3(0, 0, -1), 0.5, center),
		geometry.NewSphere(core.NewVec3(-1, 0, -1), 0.5, glass),
		geometry.NewSphere(core.NewVec3(-1, 0, -1), -0.4, glass), // Inner wall of the shell
		geometry.NewSphere(core.NewVec3(1, 0, -1), 0.5, gold),
	)
}

// NewMaterialsScene shows every material side by side from a raised viewpoint
func NewMaterialsScene() *Scene {
	return &Scene{
		Name:  "materials",
		World: materialsWorld(),
		CameraConfig: renderer.CameraConfig{
			LookFrom:    core.NewVec3(-2, 2, 1),
			LookAt:      core.NewVec3(0, 0, -1),
			Up:          core.NewVec3(0, 1, 0),
			VFov:        20.0,
			AspectRatio: defaultAspectRatio,
		},
		SamplingConfig: defaultSampling(400, defaultAspectRatio),
		Background:     integrator.DefaultBackground(),
	}
}

// NewDefocusScene is the materials scene through a wide aperture, focused on
// the center sphere
func NewDefocusScene() *Scene {
	return &Scene{
		Name:  "defocus",
		World: materialsWorld(),
		CameraConfig: renderer.CameraConfig{
			LookFrom:      core.NewVec3(3, 3, 2),
			LookAt:        core.NewVec3(0, 0, -1),
			Up:            core.NewVec3(0, 1, 0),
			VFov:          20.0,
			AspectRatio:   defaultAspectRatio,
			Aperture:      2.0,
			FocusDistance: 0.0, // Auto-calculate focus distance
		},
		SamplingConfig: defaultSampling(400, defaultAspectRatio),
		Background:     integrator.DefaultBackground(),
	}
}

// NewRandomScene creates a large ground, a 22x22 grid of small randomized
// spheres and three large feature spheres. The layout depends only on seed.
func NewRandomScene(seed int64) *Scene {
	sampler := core.NewSeededSampler(seed)
	world := geometry.NewHittableList()

	ground := material.NewLambertian(core.NewColor(0.5, 0.5, 0.5))
	world.Add(geometry.NewSphere(core.NewVec3(0, -1000, 0), 1000, ground))

	glass := material.NewDielectric(1.5)
	clearing := core.NewVec3(4, 0.2, 0)

	for a := -11; a < 11; a++ {
		for b := -11; b < 11; b++ {
			chooseMat := sampler.Get1D()
			center := core.NewVec3(float64(a)+0.9*sampler.Get1D(), 0.2, float64(b)+0.9*sampler.Get1D())

			// Keep the area in front of the metal sphere clear
			if center.Subtract(clearing).Length() <= 0.9 {
				continue
			}

			var mat material.Material
			switch {
			case chooseMat < 0.8:
				albedo := core.RandomVec3(sampler).MultiplyVec(core.RandomVec3(sampler))
				mat = material.NewLambertian(albedo)
			case chooseMat < 0.95:
				albedo := core.RandomVec3Range(sampler, 0.5, 1)
				mat = material.NewMetal(albedo, sampler.GetRange(0, 0.5))
			default:
				mat = glass
			}
			world.Add(geometry.NewSphere(center, 0.2, mat))
		}
	}

	world.Add(geometry.NewSphere(core.NewVec3(0, 1, 0), 1.0, glass))
	world.Add(geometry.NewSphere(core.NewVec3(-4, 1, 0), 1.0, material.NewLambertian(core.NewColor(0.4, 0.2, 0.1))))
	world.Add(geometry.NewSphere(core.NewVec3(4, 1, 0), 1.0, material.NewMetal(core.NewColor(0.7, 0.6, 0.5), 0.0)))

	sampling := defaultSampling(1200, 3.0/2.0)
	sampling.SamplesPerPixel = 500
	sampling.UseBVH = true

	return &Scene{
		Name:  "random",
		World: world,
		CameraConfig: renderer.CameraConfig{
			LookFrom:      core.NewVec3(13, 2, 3),
			LookAt:        core.NewVec3(0, 0, 0),
			Up:            core.NewVec3(0, 1, 0),
			VFov:          20.0,
			AspectRatio:   3.0 / 2.0,
			Aperture:      0.1,
			FocusDistance: 10.0,
		},
		SamplingConfig: sampling,
		Background:     integrator.DefaultBackground(),
	}
}
