package scene

import (
	"errors"
	"fmt"

	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/integrator"
	"github.com/df07/go-pathtracer/pkg/renderer"
)

var (
	ErrEmptyWorld   = errors.New("scene: world is empty")
	ErrZeroRadius   = errors.New("scene: sphere has zero radius")
	ErrUnknownScene = errors.New("scene: unknown scene")
)

// Scene contains all the elements needed for rendering
type Scene struct {
	Name           string
	World          *geometry.HittableList
	CameraConfig   renderer.CameraConfig
	SamplingConfig renderer.SamplingConfig
	Background     integrator.Background
}

// Overrides are command line adjustments applied over a scene's defaults.
// Zero values leave the scene default in place. Seed is a pointer so that an
// explicit zero seed is still applied.
type Overrides struct {
	Width           int
	AspectRatio     float64
	SamplesPerPixel int
	MaxDepth        int
	NumWorkers      int
	Seed            *int64
	UseBVH          bool
}

// GetCamera builds the camera from the scene's camera configuration
func (s *Scene) GetCamera() *renderer.Camera {
	return renderer.NewCamera(s.CameraConfig)
}

// GetWorld returns the object list, or a BVH over it when enabled
func (s *Scene) GetWorld() geometry.Hittable {
	if s.SamplingConfig.UseBVH {
		return geometry.NewBVH(s.World.Objects())
	}
	return s.World
}

// GetBackground returns the color seen by escaping rays
func (s *Scene) GetBackground() integrator.Background {
	return s.Background
}

// Apply merges overrides into the scene. A new width or aspect ratio
// recomputes the image height as width / aspect, truncated.
func (s *Scene) Apply(o Overrides) {
	s.CameraConfig = renderer.MergeCameraConfig(s.CameraConfig, renderer.CameraConfig{AspectRatio: o.AspectRatio})
	s.SamplingConfig = renderer.MergeSamplingConfig(s.SamplingConfig, renderer.SamplingConfig{
		Width:           o.Width,
		SamplesPerPixel: o.SamplesPerPixel,
		MaxDepth:        o.MaxDepth,
		NumWorkers:      o.NumWorkers,
		UseBVH:          o.UseBVH,
	})
	if o.Seed != nil {
		s.SamplingConfig.Seed = *o.Seed
	}
	if o.Width != 0 || o.AspectRatio != 0 {
		s.SamplingConfig.Height = imageHeight(s.SamplingConfig.Width, s.CameraConfig.AspectRatio)
	}
}

// Validate checks the camera, the sampling configuration and every sphere
func (s *Scene) Validate() error {
	if s.World == nil || s.World.Len() == 0 {
		return fmt.Errorf("%w: %q", ErrEmptyWorld, s.Name)
	}
	for i, object := range s.World.Objects() {
		if sphere, ok := object.(*geometry.Sphere); ok && sphere.Radius == 0 {
			return fmt.Errorf("%w: object %d at %v", ErrZeroRadius, i, sphere.Center)
		}
	}
	if err := s.CameraConfig.Validate(); err != nil {
		return err
	}
	return s.SamplingConfig.Validate()
}

func imageHeight(width int, aspectRatio float64) int {
	if aspectRatio <= 0 {
		return 0
	}
	return max(int(float64(width)/aspectRatio), 1)
}
