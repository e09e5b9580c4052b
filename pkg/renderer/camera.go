package renderer

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

// Camera generates primary rays through a near plane positioned along the
// gaze direction. The basis (u right, v up, w backward) is orthonormalized
// at construction so a slightly off-axis Up vector is corrected.
type Camera struct {
	origin       core.Vec3
	u, v, w      core.Vec3
	left, right  float64
	bottom, top  float64
	nearDistance float64
	width        int
	height       int
	samples      int
}

// NewCamera builds a camera from the scene's camera description.
// When LookAt is set the gaze derives from the target point; when FovY is
// positive the near-plane extents derive from the field of view and the
// image aspect ratio.
func NewCamera(cfg scene.CameraConfig) (*Camera, error) {
	gaze := cfg.Gaze
	if cfg.LookAt != nil {
		gaze = cfg.LookAt.Subtract(cfg.Position)
	}
	if gaze.LengthSquared() == 0 {
		return nil, fmt.Errorf("camera: gaze direction is zero")
	}

	w := gaze.Normalize().Negate()
	u := cfg.Up.Cross(w)
	if u.LengthSquared() == 0 {
		return nil, fmt.Errorf("camera: up vector %v is parallel to the gaze direction", cfg.Up)
	}
	u = u.Normalize()
	v := w.Cross(u)

	left, right := cfg.Left, cfg.Right
	bottom, top := cfg.Bottom, cfg.Top
	if cfg.FovY > 0 {
		aspect := float64(cfg.Width) / float64(cfg.Height)
		top = cfg.NearDistance * math.Tan(cfg.FovY*math.Pi/360.0)
		bottom = -top
		right = top * aspect
		left = -right
	}
	if left >= right || bottom >= top {
		return nil, fmt.Errorf("camera: degenerate near plane [%g,%g]x[%g,%g]", left, right, bottom, top)
	}

	samples := cfg.NumSamples
	if samples < 1 {
		samples = 1
	}

	return &Camera{
		origin:       cfg.Position,
		u:            u,
		v:            v,
		w:            w,
		left:         left,
		right:        right,
		bottom:       bottom,
		top:          top,
		nearDistance: cfg.NearDistance,
		width:        cfg.Width,
		height:       cfg.Height,
		samples:      samples,
	}, nil
}

// GetRay generates a primary ray through pixel (i, j) with a sub-pixel
// offset (dx, dy) in [0,1). (0.5, 0.5) is the pixel center. Row 0 is the
// top of the image. Directions are unit length.
func (c *Camera) GetRay(i, j int, dx, dy float64) core.Ray {
	su := (float64(i) + dx) / float64(c.width)
	sv := (float64(j) + dy) / float64(c.height)

	planeCenter := c.origin.Subtract(c.w.Multiply(c.nearDistance))
	point := planeCenter.
		Add(c.u.Multiply(c.left + (c.right-c.left)*su)).
		Add(c.v.Multiply(c.top - (c.top-c.bottom)*sv))

	return core.NewRay(c.origin, point.Subtract(c.origin).Normalize())
}

// SampleRay returns a primary ray for pixel (i, j): the pixel center with
// one sample per pixel, a jittered sub-pixel position otherwise.
func (c *Camera) SampleRay(i, j int, random *rand.Rand) core.Ray {
	if c.samples == 1 {
		return c.GetRay(i, j, 0.5, 0.5)
	}
	return c.GetRay(i, j, random.Float64(), random.Float64())
}

// Samples returns the configured rays per pixel
func (c *Camera) Samples() int {
	return c.samples
}

// Resolution returns the image width and height in pixels
func (c *Camera) Resolution() (int, int) {
	return c.width, c.height
}
