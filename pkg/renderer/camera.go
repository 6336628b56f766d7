package renderer

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/softray/go-raytracer/pkg/core"
)

// CameraConfig holds the externally supplied camera parameters
type CameraConfig struct {
	AspectRatio     float64     // Ratio of image width over height
	ImageWidth      int         // Rendered image width in pixels
	SamplesPerPixel int         // Random samples per pixel
	MaxDepth        int         // Maximum ray bounce depth
	VFov            float64     // Vertical field of view in degrees
	LookFrom        core.Point3 // Camera position
	LookAt          core.Point3 // Point the camera looks at
	VUp             core.Vec3   // Camera-relative up direction
	DefocusAngle    float64     // Cone angle of rays through the lens, in degrees
	FocusDist       float64     // Distance to the plane of perfect focus
}

// DefaultCameraConfig returns the standard starting parameters
func DefaultCameraConfig() CameraConfig {
	return CameraConfig{
		AspectRatio:     1.0,
		ImageWidth:      100,
		SamplesPerPixel: 10,
		MaxDepth:        10,
		VFov:            90.0,
		LookFrom:        core.NewVec3(0, 0, 0),
		LookAt:          core.NewVec3(0, 0, -1),
		VUp:             core.NewVec3(0, 1, 0),
		DefocusAngle:    0.0,
		FocusDist:       10.0,
	}
}

// Camera generates per-pixel sample rays and integrates path color.
// Derived state is computed by Initialize and must be recomputed
// whenever the configuration changes.
type Camera struct {
	Config CameraConfig

	imageHeight       int         // Rendered image height
	pixelSamplesScale float64     // Color scale factor for a sum of pixel samples
	center            core.Point3 // Camera center
	pixel00Loc        core.Point3 // Location of pixel 0, 0
	pixelDeltaU       core.Vec3   // Offset to pixel to the right
	pixelDeltaV       core.Vec3   // Offset to pixel below
	u, v, w           core.Vec3   // Camera frame basis vectors
	defocusDiskU      core.Vec3   // Defocus disk horizontal radius
	defocusDiskV      core.Vec3   // Defocus disk vertical radius
	initialized       bool
}

// NewCamera creates a camera and computes its derived state, rejecting
// configurations that would produce NaNs during rendering
func NewCamera(config CameraConfig) (*Camera, error) {
	c := &Camera{Config: config}
	if err := c.Initialize(); err != nil {
		return nil, err
	}
	return c, nil
}

// validate rejects configurations with no sane derived state
func (c *Camera) validate() error {
	cfg := c.Config
	if cfg.ImageWidth < 1 {
		return fmt.Errorf("camera: image width must be >= 1, got %d", cfg.ImageWidth)
	}
	if cfg.AspectRatio <= 0 {
		return fmt.Errorf("camera: aspect ratio must be positive, got %g", cfg.AspectRatio)
	}
	if cfg.SamplesPerPixel < 1 {
		return fmt.Errorf("camera: samples per pixel must be >= 1, got %d", cfg.SamplesPerPixel)
	}
	if cfg.MaxDepth < 1 {
		return fmt.Errorf("camera: max depth must be >= 1, got %d", cfg.MaxDepth)
	}
	if cfg.FocusDist <= 0 {
		return fmt.Errorf("camera: focus distance must be positive, got %g", cfg.FocusDist)
	}
	if cfg.VFov <= 0 || cfg.VFov >= 180 {
		return fmt.Errorf("camera: vertical fov must be in (0, 180), got %g", cfg.VFov)
	}
	lookDir := cfg.LookFrom.Subtract(cfg.LookAt)
	if lookDir.NearZero() {
		return fmt.Errorf("camera: look-from and look-at coincide, basis is undefined")
	}
	if cfg.VUp.NearZero() {
		return fmt.Errorf("camera: up vector has zero length")
	}
	if cfg.VUp.Cross(lookDir).NearZero() {
		return fmt.Errorf("camera: up vector is parallel to the view direction")
	}
	return nil
}

// Initialize computes the derived state from the configuration. Calling
// it again with an unchanged configuration reproduces identical state.
func (c *Camera) Initialize() error {
	if err := c.validate(); err != nil {
		return err
	}
	cfg := c.Config

	c.imageHeight = int(float64(cfg.ImageWidth) / cfg.AspectRatio)
	if c.imageHeight < 1 {
		c.imageHeight = 1
	}

	c.pixelSamplesScale = 1.0 / float64(cfg.SamplesPerPixel)
	c.center = cfg.LookFrom

	// Viewport dimensions from the vertical field of view at the focus
	// plane
	theta := degreesToRadians(cfg.VFov)
	h := math.Tan(theta / 2)
	viewportHeight := 2 * h * cfg.FocusDist
	viewportWidth := viewportHeight * (float64(cfg.ImageWidth) / float64(c.imageHeight))

	// Orthonormal camera frame: w points back, u right, v up
	c.w = cfg.LookFrom.Subtract(cfg.LookAt).Normalize()
	c.u = cfg.VUp.Cross(c.w).Normalize()
	c.v = c.w.Cross(c.u)

	// Vectors across the horizontal and down the vertical viewport edges
	viewportU := c.u.Multiply(viewportWidth)
	viewportV := c.v.Negate().Multiply(viewportHeight)

	c.pixelDeltaU = viewportU.Divide(float64(cfg.ImageWidth))
	c.pixelDeltaV = viewportV.Divide(float64(c.imageHeight))

	// Pixel (0,0) sits half a delta in from the viewport's upper left
	// corner, so zero jitter lands on the cell center
	viewportUpperLeft := c.center.
		Subtract(c.w.Multiply(cfg.FocusDist)).
		Subtract(viewportU.Divide(2)).
		Subtract(viewportV.Divide(2))
	c.pixel00Loc = viewportUpperLeft.Add(c.pixelDeltaU.Add(c.pixelDeltaV).Multiply(0.5))

	defocusRadius := cfg.FocusDist * math.Tan(degreesToRadians(cfg.DefocusAngle/2))
	c.defocusDiskU = c.u.Multiply(defocusRadius)
	c.defocusDiskV = c.v.Multiply(defocusRadius)

	c.initialized = true
	return nil
}

// ImageWidth returns the configured image width in pixels
func (c *Camera) ImageWidth() int {
	return c.Config.ImageWidth
}

// ImageHeight returns the derived image height in pixels
func (c *Camera) ImageHeight() int {
	return c.imageHeight
}

// PixelSamplesScale returns 1 / samples-per-pixel
func (c *Camera) PixelSamplesScale() float64 {
	return c.pixelSamplesScale
}

// GetRay builds a sample ray for pixel (i, j): jittered within the
// pixel cell for antialiasing and, when the defocus angle is positive,
// originating from a random point on the defocus disk
func (c *Camera) GetRay(i, j int, random *rand.Rand) core.Ray {
	offsetX := random.Float64() - 0.5
	offsetY := random.Float64() - 0.5
	pixelSample := c.pixel00Loc.
		Add(c.pixelDeltaU.Multiply(float64(i) + offsetX)).
		Add(c.pixelDeltaV.Multiply(float64(j) + offsetY))

	rayOrigin := c.center
	if c.Config.DefocusAngle > 0 {
		rayOrigin = c.defocusDiskSample(random)
	}

	return core.NewRay(rayOrigin, pixelSample.Subtract(rayOrigin))
}

// defocusDiskSample returns a random origin on the camera defocus disk
func (c *Camera) defocusDiskSample(random *rand.Rand) core.Point3 {
	p := core.RandomInUnitDisk(random)
	return c.center.
		Add(c.defocusDiskU.Multiply(p.X)).
		Add(c.defocusDiskV.Multiply(p.Y))
}

// RayColor evaluates the path color of a ray recursively: bounce off
// the scene until absorption, the depth budget runs out, or the ray
// escapes to the background gradient
func (c *Camera) RayColor(r core.Ray, depth int, world core.Hittable, random *rand.Rand) core.Color {
	// Bounce budget exhausted, no more light is gathered
	if depth <= 0 {
		return core.NewVec3(0, 0, 0)
	}

	// The 0.001 lower bound keeps a bounced ray from re-hitting the
	// surface it just left (shadow acne)
	hit, isHit := world.Hit(r, core.NewInterval(0.001, math.Inf(1)))
	if !isHit {
		return BackgroundGradient(r)
	}

	scatter, didScatter := hit.Material.Scatter(r, hit, random)
	if !didScatter {
		return core.NewVec3(0, 0, 0)
	}

	return scatter.Attenuation.MultiplyVec(c.RayColor(scatter.Scattered, depth-1, world, random))
}

// BackgroundGradient is the fixed white-to-sky-blue vertical gradient
// used as ambient illumination on a miss
func BackgroundGradient(r core.Ray) core.Color {
	unitDirection := r.Direction.Normalize()
	a := 0.5 * (unitDirection.Y + 1.0)
	white := core.NewVec3(1.0, 1.0, 1.0)
	skyBlue := core.NewVec3(0.5, 0.7, 1.0)
	return white.Multiply(1.0 - a).Add(skyBlue.Multiply(a))
}

// degreesToRadians converts an angle in degrees to radians
func degreesToRadians(degrees float64) float64 {
	return degrees * math.Pi / 180.0
}
