package integrator

import (
	"math"
	"testing"

	"github.com/df07/go-bvh-raytracer/pkg/core"
	"github.com/df07/go-bvh-raytracer/pkg/geometry"
	"github.com/df07/go-bvh-raytracer/pkg/material"
)

// MockMaterial implements material.Material for testing
type MockMaterial struct {
	scatterFn func(rayIn core.Ray, hit *material.HitRecord, sampler core.Sampler) (material.ScatterResult, bool)
}

func (m *MockMaterial) Scatter(rayIn core.Ray, hit *material.HitRecord, sampler core.Sampler) (material.ScatterResult, bool) {
	return m.scatterFn(rayIn, hit, sampler)
}

// absorbing never scatters
var absorbing = &MockMaterial{
	scatterFn: func(core.Ray, *material.HitRecord, core.Sampler) (material.ScatterResult, bool) {
		return material.ScatterResult{}, false
	},
}

// skyward sends every ray straight up with the given attenuation
func skyward(attenuation core.Vec3) *MockMaterial {
	return &MockMaterial{
		scatterFn: func(_ core.Ray, hit *material.HitRecord, _ core.Sampler) (material.ScatterResult, bool) {
			return material.ScatterResult{
				Scattered:   core.NewRay(hit.Point, core.NewVec3(0, 1, 0)),
				Attenuation: attenuation,
			}, true
		},
	}
}

func TestSkyGradient(t *testing.T) {
	sky := DefaultSky()

	tests := []struct {
		name      string
		direction core.Vec3
		expected  core.Vec3
	}{
		{"Straight up", core.NewVec3(0, 1, 0), core.NewVec3(0.5, 0.7, 1.0)},
		{"Straight down", core.NewVec3(0, -5, 0), core.NewVec3(1, 1, 1)},
		{"Horizon", core.NewVec3(-1, 0, -1), core.NewVec3(0.75, 0.85, 1.0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := sky.Color(core.NewRay(core.Vec3{}, tt.direction))
			if !got.ApproxEquals(tt.expected, 1e-12) {
				t.Errorf("Expected %v, got %v", tt.expected, got)
			}
		})
	}
}

func TestPathTracingIntegrator(t *testing.T) {
	sky := DefaultSky()
	sampler := core.NewSeededSampler(42)
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))
	attenuation := core.NewVec3(0.5, 0.25, 1)

	tests := []struct {
		name     string
		world    geometry.Hittable
		depth    int
		expected core.Vec3
	}{
		{
			name:     "Miss returns sky",
			world:    geometry.NewCollection(),
			depth:    5,
			expected: sky.Color(ray),
		},
		{
			name:     "Zero depth is black",
			world:    geometry.NewCollection(),
			depth:    0,
			expected: core.Vec3{},
		},
		{
			name:     "Absorbed is black",
			world:    geometry.NewCollection(geometry.NewSphere(core.NewVec3(0, 0, -2), 0.5, absorbing)),
			depth:    5,
			expected: core.Vec3{},
		},
		{
			name:     "One bounce to the zenith",
			world:    geometry.NewCollection(geometry.NewSphere(core.NewVec3(0, 0, -2), 0.5, skyward(attenuation))),
			depth:    5,
			expected: attenuation.MultiplyVec(core.NewVec3(0.5, 0.7, 1.0)),
		},
		{
			name:     "Budget runs out before the sky",
			world:    geometry.NewCollection(geometry.NewSphere(core.NewVec3(0, 0, -2), 0.5, skyward(attenuation))),
			depth:    1,
			expected: core.Vec3{},
		},
	}

	integrator := NewPathTracingIntegrator(sky)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := integrator.RayColor(ray, tt.world, tt.depth, sampler)
			if !got.ApproxEquals(tt.expected, 1e-12) {
				t.Errorf("Expected %v, got %v", tt.expected, got)
			}
		})
	}
}

func TestPathTracingIgnoresSelfIntersection(t *testing.T) {
	var seenMin float64
	probe := &MockMaterial{
		scatterFn: func(_ core.Ray, hit *material.HitRecord, _ core.Sampler) (material.ScatterResult, bool) {
			return material.ScatterResult{}, false
		},
	}
	world := &rangeRecorder{Hittable: geometry.NewSphere(core.NewVec3(0, 0, -2), 0.5, probe), min: &seenMin}

	NewPathTracingIntegrator(DefaultSky()).RayColor(core.NewRay(core.Vec3{}, core.NewVec3(0, 0, -1)), world, 3, core.NewSeededSampler(1))
	if seenMin != HitEpsilon {
		t.Errorf("Expected search to start at %f, got %f", HitEpsilon, seenMin)
	}
}

// rangeRecorder records the interval it is queried with
type rangeRecorder struct {
	geometry.Hittable
	min *float64
}

func (r *rangeRecorder) Hit(ray core.Ray, rayT core.Interval) (*material.HitRecord, bool) {
	*r.min = rayT.Min
	return r.Hittable.Hit(ray, rayT)
}

func TestPathTracingLambertianConverges(t *testing.T) {
	// A white diffuse floor under the sky: all light eventually escapes upward,
	// so the estimate is bounded by the brightest sky color
	floor := geometry.NewSphere(core.NewVec3(0, -1000, 0), 1000, material.NewLambertian(core.NewVec3(1, 1, 1)))
	world := geometry.NewCollection(floor)
	integrator := NewPathTracingIntegrator(DefaultSky())
	sampler := core.NewSeededSampler(42)
	ray := core.NewRay(core.NewVec3(0, 1, 0), core.NewVec3(0, -1, 0))

	sum := core.Vec3{}
	const n = 500
	for i := 0; i < n; i++ {
		c := integrator.RayColor(ray, world, 10, sampler)
		if math.IsNaN(c.X) || c.X < 0 || c.X > 1 {
			t.Fatalf("Sample out of range: %v", c)
		}
		sum = sum.Add(c)
	}
	mean := sum.Divide(n)
	if mean.Z < 0.9 || mean.X < 0.5 {
		t.Errorf("Expected a bright bluish estimate, got %v", mean)
	}
}

func TestNormalIntegrator(t *testing.T) {
	sky := DefaultSky()
	world := geometry.NewCollection(geometry.NewSphere(core.NewVec3(0, 0, -1), 0.5, absorbing))
	integrator := NewNormalIntegrator(sky)

	tests := []struct {
		name     string
		ray      core.Ray
		depth    int
		expected core.Vec3
	}{
		{"Head on", core.NewRay(core.Vec3{}, core.NewVec3(0, 0, -1)), 1, core.NewVec3(0.5, 0.5, 1)},
		{"Miss", core.NewRay(core.Vec3{}, core.NewVec3(0, 1, 0)), 1, core.NewVec3(0.5, 0.7, 1.0)},
		{"Zero depth", core.NewRay(core.Vec3{}, core.NewVec3(0, 0, -1)), 0, core.Vec3{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := integrator.RayColor(tt.ray, world, tt.depth, nil)
			if !got.ApproxEquals(tt.expected, 1e-12) {
				t.Errorf("Expected %v, got %v", tt.expected, got)
			}
		})
	}
}
