package renderer

import (
	"fmt"
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
)

// CameraConfig contains all parameters needed to create a camera
type CameraConfig struct {
	LookFrom      core.Point3 // Camera position
	LookAt        core.Point3 // Point the camera is looking at
	Up            core.Vec3   // Up direction (usually 0,1,0)
	VFov          float64     // Vertical field of view in degrees
	AspectRatio   float64     // Width / height
	Aperture      float64     // Lens diameter; 0 disables depth of field
	FocusDistance float64     // Distance to the focal plane; 0 means |LookFrom - LookAt|
}

// Resolve fills in derived defaults (auto focus distance)
func (c CameraConfig) Resolve() CameraConfig {
	if c.FocusDistance == 0 {
		c.FocusDistance = c.LookFrom.Subtract(c.LookAt).Length()
	}
	return c
}

// Validate rejects configurations whose basis or viewport would be degenerate.
// NewCamera itself does not validate; a degenerate camera produces NaN rays.
func (c CameraConfig) Validate() error {
	view := c.LookFrom.Subtract(c.LookAt)
	if view.NearZero() {
		return fmt.Errorf("%w: look-from %v equals look-at", ErrInvalidCamera, c.LookFrom)
	}
	if c.Up.Cross(view).NearZero() {
		return fmt.Errorf("%w: up vector %v is parallel to the view direction", ErrInvalidCamera, c.Up)
	}
	if c.VFov <= 0 || c.VFov >= 180 {
		return fmt.Errorf("%w: vertical fov %g not in (0, 180)", ErrInvalidCamera, c.VFov)
	}
	if c.AspectRatio <= 0 {
		return fmt.Errorf("%w: aspect ratio %g must be positive", ErrInvalidCamera, c.AspectRatio)
	}
	if c.Aperture < 0 {
		return fmt.Errorf("%w: aperture %g must not be negative", ErrInvalidCamera, c.Aperture)
	}
	if c.FocusDistance < 0 {
		return fmt.Errorf("%w: focus distance %g must not be negative", ErrInvalidCamera, c.FocusDistance)
	}
	return nil
}

// MergeCameraConfig returns base with every non-zero field of override applied
func MergeCameraConfig(base, override CameraConfig) CameraConfig {
	result := base
	if override.LookFrom != (core.Vec3{}) {
		result.LookFrom = override.LookFrom
	}
	if override.LookAt != (core.Vec3{}) {
		result.LookAt = override.LookAt
	}
	if override.Up != (core.Vec3{}) {
		result.Up = override.Up
	}
	if override.VFov != 0 {
		result.VFov = override.VFov
	}
	if override.AspectRatio != 0 {
		result.AspectRatio = override.AspectRatio
	}
	if override.Aperture != 0 {
		result.Aperture = override.Aperture
	}
	if override.FocusDistance != 0 {
		result.FocusDistance = override.FocusDistance
	}
	return result
}

// Camera generates rays for rendering. It is immutable once built.
type Camera struct {
	origin          core.Point3
	lowerLeftCorner core.Point3
	horizontal      core.Vec3
	vertical        core.Vec3
	u, v, w         core.Vec3
	lensRadius      float64
}

// NewCamera creates a thin-lens camera from the given configuration
func NewCamera(config CameraConfig) *Camera {
	config = config.Resolve()

	theta := core.DegreesToRadians(config.VFov)
	viewportHeight := 2.0 * math.Tan(theta/2)
	viewportWidth := viewportHeight * config.AspectRatio

	w := config.LookFrom.Subtract(config.LookAt).Normalize()
	u := config.Up.Cross(w).Normalize()
	v := w.Cross(u)

	origin := config.LookFrom
	horizontal := u.Multiply(config.FocusDistance * viewportWidth)
	vertical := v.Multiply(config.FocusDistance * viewportHeight)
	lowerLeftCorner := origin.
		Subtract(horizontal.Divide(2)).
		Subtract(vertical.Divide(2)).
		Subtract(w.Multiply(config.FocusDistance))

	return &Camera{
		origin:          origin,
		lowerLeftCorner: lowerLeftCorner,
		horizontal:      horizontal,
		vertical:        vertical,
		u:               u,
		v:               v,
		w:               w,
		lensRadius:      config.Aperture / 2,
	}
}

// GetRay generates a ray for viewport coordinates (s, t); [0,1] spans the
// viewport and values outside extrapolate. The sampler is only consulted when
// the lens has a non-zero radius and may be nil otherwise.
func (c *Camera) GetRay(s, t float64, sampler core.Sampler) core.Ray {
	origin := c.origin
	if c.lensRadius > 0 {
		rd := core.RandomInUnitDisk(sampler).Multiply(c.lensRadius)
		origin = origin.Add(c.u.Multiply(rd.X)).Add(c.v.Multiply(rd.Y))
	}

	direction := c.lowerLeftCorner.
		Add(c.horizontal.Multiply(s)).
		Add(c.vertical.Multiply(t)).
		Subtract(origin)

	return core.NewRay(origin, direction)
}

// Forward returns the unit direction the camera looks along
func (c *Camera) Forward() core.Vec3 {
	return c.w.Negate()
}

// LensRadius returns the aperture radius
func (c *Camera) LensRadius() float64 {
	return c.lensRadius
}
