package renderer

import (
	"image/color"
	"math"

	"github.com/df07/go-bvh-raytracer/pkg/core"
)

// intensity is the clamp range applied before quantizing to 8 bits
var intensity = core.NewInterval(0.000, 0.999)

// linearToGamma applies gamma 2. Non-positive and NaN components map to 0.
func linearToGamma(linear float64) float64 {
	if linear > 0 {
		return math.Sqrt(linear)
	}
	return 0
}

// quantize maps a gamma-encoded component to a byte
func quantize(c float64) uint8 {
	return uint8(256 * intensity.Clamp(c))
}

// ToRGBA converts a linear color to an 8-bit RGBA pixel with gamma correction
func ToRGBA(c core.Vec3) color.RGBA {
	return color.RGBA{
		R: quantize(linearToGamma(c.X)),
		G: quantize(linearToGamma(c.Y)),
		B: quantize(linearToGamma(c.Z)),
		A: 255,
	}
}
