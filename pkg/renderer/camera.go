package renderer

import (
	"math"

	"github.com/samber/lo"

	"github.com/df07/go-bvh-raytracer/pkg/core"
)

// CameraConfig contains the user-facing camera and sampling parameters.
// Zero values are replaced by DefaultCameraConfig when merged.
type CameraConfig struct {
	Center          core.Vec3 // Camera position (look-from)
	LookAt          core.Vec3 // Point the camera looks at
	Up              core.Vec3 // Camera-relative up direction
	Width           int       // Image width in pixels
	AspectRatio     float64   // Width over height
	VFov            float64   // Vertical field of view in degrees
	SamplesPerPixel int       // Number of rays per pixel
	MaxDepth        int       // Maximum ray bounce depth
	DefocusAngle    float64   // Cone angle in degrees from the focus plane to the lens; 0 disables depth of field
	FocusDistance   float64   // Distance to the plane in perfect focus; 0 uses |LookAt - Center|
	MotionBlur      bool      // Sample a ray time in [0,1) for every camera ray
}

// DefaultCameraConfig returns the default camera: a 100px square image looking
// down -Z from the origin with a 90° field of view
func DefaultCameraConfig() CameraConfig {
	return CameraConfig{
		Center:          core.NewVec3(0, 0, 0),
		LookAt:          core.NewVec3(0, 0, -1),
		Up:              core.NewVec3(0, 1, 0),
		Width:           100,
		AspectRatio:     1.0,
		VFov:            90.0,
		SamplesPerPixel: 10,
		MaxDepth:        10,
		DefocusAngle:    0.0,
		FocusDistance:   0.0,
	}
}

// MergeCameraConfig returns base with every non-zero field of override applied
func MergeCameraConfig(base, override CameraConfig) CameraConfig {
	result := base
	zero := core.Vec3{}

	if override.Center != zero {
		result.Center = override.Center
	}
	if override.LookAt != zero {
		result.LookAt = override.LookAt
	}
	if override.Up != zero {
		result.Up = override.Up
	}
	if override.Width != 0 {
		result.Width = override.Width
	}
	if override.AspectRatio != 0 {
		result.AspectRatio = override.AspectRatio
	}
	if override.VFov != 0 {
		result.VFov = override.VFov
	}
	if override.SamplesPerPixel != 0 {
		result.SamplesPerPixel = override.SamplesPerPixel
	}
	if override.MaxDepth != 0 {
		result.MaxDepth = override.MaxDepth
	}
	if override.DefocusAngle != 0 {
		result.DefocusAngle = override.DefocusAngle
	}
	if override.FocusDistance != 0 {
		result.FocusDistance = override.FocusDistance
	}
	if override.MotionBlur {
		result.MotionBlur = true
	}

	return result
}

// normalizeConfig clamps out-of-range values instead of rejecting them
func normalizeConfig(config CameraConfig) CameraConfig {
	config.Width = max(1, config.Width)
	config.SamplesPerPixel = max(1, config.SamplesPerPixel)
	config.MaxDepth = max(0, config.MaxDepth)
	if !(config.AspectRatio > 0) {
		config.AspectRatio = 1.0
	}
	if !(config.VFov > 0 && config.VFov < 180) {
		config.VFov = 90.0
	}
	if config.Center == config.LookAt {
		config.LookAt = config.Center.Add(core.NewVec3(0, 0, -1))
	}
	if config.Up == (core.Vec3{}) {
		config.Up = core.NewVec3(0, 1, 0)
	}
	w := config.Center.Subtract(config.LookAt).Normalize()
	if config.Up.Normalize().Cross(w).NearZero() {
		config.Up = leastAlignedAxis(w)
	}
	config.DefocusAngle = math.Max(0, config.DefocusAngle)
	return config
}

// leastAlignedAxis returns the world axis most nearly perpendicular to dir
func leastAlignedAxis(dir core.Vec3) core.Vec3 {
	axes := []core.Vec3{core.NewVec3(0, 1, 0), core.NewVec3(0, 0, 1), core.NewVec3(1, 0, 0)}
	return lo.MinBy(axes, func(a, b core.Vec3) bool {
		return math.Abs(a.Dot(dir)) < math.Abs(b.Dot(dir))
	})
}

// Camera generates primary rays. It is derived once from a CameraConfig and
// is read-only afterwards.
type Camera struct {
	config           CameraConfig
	imageHeight      int
	center           core.Vec3
	pixel00          core.Vec3 // Center of the top-left pixel
	pixelDeltaU      core.Vec3 // Offset to the pixel on the right
	pixelDeltaV      core.Vec3 // Offset to the pixel below
	u, v, w          core.Vec3 // Orthonormal basis: right, up, back toward the viewer
	defocusDiskU     core.Vec3
	defocusDiskV     core.Vec3
	pixelSampleScale float64
}

// NewCamera creates a camera from the given configuration
func NewCamera(config CameraConfig) *Camera {
	config = normalizeConfig(config)

	// The raster is truncated to whole rows; the viewport keeps the exact ratio
	imageHeightF := math.Max(float64(config.Width)/config.AspectRatio, 1)
	imageHeight := int(imageHeightF)

	focusDistance := config.FocusDistance
	if focusDistance <= 0 {
		focusDistance = config.Center.Subtract(config.LookAt).Length()
	}

	// Viewport dimensions from the vertical field of view at the focus plane
	theta := config.VFov * math.Pi / 180.0
	h := math.Tan(theta / 2)
	viewportHeight := 2 * h * focusDistance
	viewportWidth := viewportHeight * float64(config.Width) / imageHeightF

	w := config.Center.Subtract(config.LookAt).Normalize()
	u := config.Up.Cross(w).Normalize()
	v := w.Cross(u)

	// Viewport edges: across the top, and down the left side
	viewportU := u.Multiply(viewportWidth)
	viewportV := v.Negate().Multiply(viewportHeight)

	pixelDeltaU := viewportU.Divide(float64(config.Width))
	pixelDeltaV := viewportV.Divide(imageHeightF)

	viewportUpperLeft := config.Center.
		Subtract(w.Multiply(focusDistance)).
		Subtract(viewportU.Multiply(0.5)).
		Subtract(viewportV.Multiply(0.5))
	pixel00 := viewportUpperLeft.Add(pixelDeltaU.Add(pixelDeltaV).Multiply(0.5))

	defocusRadius := focusDistance * math.Tan(config.DefocusAngle/2*math.Pi/180.0)

	return &Camera{
		config:           config,
		imageHeight:      imageHeight,
		center:           config.Center,
		pixel00:          pixel00,
		pixelDeltaU:      pixelDeltaU,
		pixelDeltaV:      pixelDeltaV,
		u:                u,
		v:                v,
		w:                w,
		defocusDiskU:     u.Multiply(defocusRadius),
		defocusDiskV:     v.Multiply(defocusRadius),
		pixelSampleScale: 1.0 / float64(config.SamplesPerPixel),
	}
}

// GetRay returns a randomly sampled ray through pixel (i, j), where (0, 0) is
// the top-left pixel. The sample point is jittered over the pixel square, the
// origin over the defocus disk and, with motion blur, the time over [0, 1).
func (c *Camera) GetRay(i, j int, sampler core.Sampler) core.Ray {
	offset := core.SampleSquare(sampler)
	pixelSample := c.pixel00.
		Add(c.pixelDeltaU.Multiply(float64(i) + offset.X)).
		Add(c.pixelDeltaV.Multiply(float64(j) + offset.Y))

	origin := c.center
	if c.config.DefocusAngle > 0 {
		origin = c.defocusDiskSample(sampler)
	}

	time := 0.0
	if c.config.MotionBlur {
		time = sampler.Get1D()
	}

	return core.NewRayWithTime(origin, pixelSample.Subtract(origin), time)
}

// CenterRay returns the ray from the camera center through the middle of pixel (i, j)
func (c *Camera) CenterRay(i, j int) core.Ray {
	pixelCenter := c.pixel00.
		Add(c.pixelDeltaU.Multiply(float64(i))).
		Add(c.pixelDeltaV.Multiply(float64(j)))
	return core.NewRay(c.center, pixelCenter.Subtract(c.center))
}

// defocusDiskSample returns a random point on the camera's defocus disk
func (c *Camera) defocusDiskSample(sampler core.Sampler) core.Vec3 {
	p := core.RandomInUnitDisk(sampler)
	return c.center.Add(c.defocusDiskU.Multiply(p.X)).Add(c.defocusDiskV.Multiply(p.Y))
}

// Config returns the normalized configuration the camera was built from
func (c *Camera) Config() CameraConfig {
	return c.config
}

// Width returns the image width in pixels
func (c *Camera) Width() int {
	return c.config.Width
}

// Height returns the image height in pixels
func (c *Camera) Height() int {
	return c.imageHeight
}

// SamplesPerPixel returns the number of samples averaged per pixel
func (c *Camera) SamplesPerPixel() int {
	return c.config.SamplesPerPixel
}

// MaxDepth returns the bounce budget for each camera ray
func (c *Camera) MaxDepth() int {
	return c.config.MaxDepth
}

// SampleScale returns the weight of one sample, 1/SamplesPerPixel
func (c *Camera) SampleScale() float64 {
	return c.pixelSampleScale
}

// GetCameraForward returns the unit view direction
func (c *Camera) GetCameraForward() core.Vec3 {
	return c.w.Negate()
}

// Basis returns the camera's right, up and backward unit vectors
func (c *Camera) Basis() (u, v, w core.Vec3) {
	return c.u, c.v, c.w
}
