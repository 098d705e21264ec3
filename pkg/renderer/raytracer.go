package renderer

import (
	"context"
	"image"
	"time"

	"github.com/pkg/errors"

	"github.com/df07/go-bvh-raytracer/pkg/core"
	"github.com/df07/go-bvh-raytracer/pkg/geometry"
	"github.com/df07/go-bvh-raytracer/pkg/integrator"
)

// Raytracer renders a world through a camera, one scanline at a time
type Raytracer struct {
	camera     *Camera
	world      geometry.Hittable
	integrator integrator.Integrator
	logger     core.Logger
}

// NewRaytracer creates a new raytracer. A nil logger discards all output.
func NewRaytracer(camera *Camera, world geometry.Hittable, integ integrator.Integrator, logger core.Logger) *Raytracer {
	if logger == nil {
		logger = core.NopLogger{}
	}
	return &Raytracer{
		camera:     camera,
		world:      world,
		integrator: integ,
		logger:     logger,
	}
}

// Camera returns the camera the raytracer renders through
func (rt *Raytracer) Camera() *Camera {
	return rt.camera
}

// PixelColor returns the averaged linear color of pixel (i, j)
func (rt *Raytracer) PixelColor(i, j int, sampler core.Sampler) core.Vec3 {
	colorAccum := core.Vec3{}
	for sample := 0; sample < rt.camera.SamplesPerPixel(); sample++ {
		ray := rt.camera.GetRay(i, j, sampler)
		colorAccum = colorAccum.Add(rt.integrator.RayColor(ray, rt.world, rt.camera.MaxDepth(), sampler))
	}
	return colorAccum.Multiply(rt.camera.SampleScale())
}

// Render traces every pixel, top row first and left to right within a row.
// Cancellation is checked between scanlines; a cancelled render returns the
// context error and no image.
func (rt *Raytracer) Render(ctx context.Context, sampler core.Sampler) (*image.RGBA, RenderStats, error) {
	defer core.TimeScope(rt.logger, "Raytracer::Render")()

	start := time.Now()
	width, height := rt.camera.Width(), rt.camera.Height()
	img := image.NewRGBA(image.Rect(0, 0, width, height))

	for j := 0; j < height; j++ {
		select {
		case <-ctx.Done():
			return nil, RenderStats{}, errors.Wrapf(ctx.Err(), "render stopped with %d scanlines remaining", height-j)
		default:
		}

		rt.logger.Debugf("Scanlines remaining: %d", height-j)

		for i := 0; i < width; i++ {
			img.SetRGBA(i, j, ToRGBA(rt.PixelColor(i, j, sampler)))
		}
	}

	rt.logger.Infof("Image rendering complete")

	totalPixels := width * height
	stats := RenderStats{
		Width:          width,
		Height:         height,
		TotalPixels:    totalPixels,
		TotalSamples:   totalPixels * rt.camera.SamplesPerPixel(),
		AverageSamples: float64(rt.camera.SamplesPerPixel()),
		MaxDepth:       rt.camera.MaxDepth(),
		Duration:       time.Since(start),
	}
	return img, stats, nil
}
