package geometry

import (
	"math"
	"testing"

	"github.com/df07/go-bvh-raytracer/pkg/core"
	"github.com/df07/go-bvh-raytracer/pkg/material"
)

var allT = core.NewInterval(0.001, math.Inf(1))

func TestSphere_Hit_Miss(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 0), 1.0, nil)
	ray := core.NewRay(core.NewVec3(2, 0, 0), core.NewVec3(0, 1, 0))

	hit, isHit := sphere.Hit(ray, allT)
	if isHit {
		t.Errorf("Expected miss, but got hit at t=%f", hit.T)
	}
}

func TestSphere_Hit_FrontAndBackFace(t *testing.T) {
	mat := material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5))
	sphere := NewSphere(core.NewVec3(0, 0, 0), 1.0, mat)

	tests := []struct {
		name           string
		rayOrigin      core.Vec3
		rayDirection   core.Vec3
		expectedT      float64
		expectedFront  bool
		expectedNormal core.Vec3
	}{
		{
			name:           "front face hit",
			rayOrigin:      core.NewVec3(0, 0, 2),
			rayDirection:   core.NewVec3(0, 0, -1),
			expectedT:      1.0,
			expectedFront:  true,
			expectedNormal: core.NewVec3(0, 0, 1),
		},
		{
			name:           "back face hit",
			rayOrigin:      core.NewVec3(0, 0, 0),
			rayDirection:   core.NewVec3(0, 0, 1),
			expectedT:      1.0,
			expectedFront:  false,
			expectedNormal: core.NewVec3(0, 0, -1),
		},
		{
			name:           "unnormalized direction",
			rayOrigin:      core.NewVec3(0, 0, 3),
			rayDirection:   core.NewVec3(0, 0, -2),
			expectedT:      1.0,
			expectedFront:  true,
			expectedNormal: core.NewVec3(0, 0, 1),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ray := core.NewRay(tt.rayOrigin, tt.rayDirection)
			hit, isHit := sphere.Hit(ray, allT)

			if !isHit {
				t.Fatal("Expected hit, but got miss")
			}
			if math.Abs(hit.T-tt.expectedT) > 1e-9 {
				t.Errorf("Expected t=%f, got t=%f", tt.expectedT, hit.T)
			}
			if hit.FrontFace != tt.expectedFront {
				t.Errorf("Expected front face %v, got %v", tt.expectedFront, hit.FrontFace)
			}
			if !hit.Normal.ApproxEquals(tt.expectedNormal, 1e-9) {
				t.Errorf("Expected normal %v, got %v", tt.expectedNormal, hit.Normal)
			}
			if hit.Material != mat {
				t.Error("Expected hit to carry the sphere's material")
			}
		})
	}
}

func TestSphere_Hit_OpenInterval(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 0), 1.0, nil)
	ray := core.NewRay(core.NewVec3(0, 0, 2), core.NewVec3(0, 0, -1))

	// Roots at t=1 and t=3: a bound equal to a root excludes it
	if _, isHit := sphere.Hit(ray, core.NewInterval(1, 3)); isHit {
		t.Error("Expected roots on the interval bounds to be rejected")
	}

	hit, isHit := sphere.Hit(ray, core.NewInterval(1.5, 10))
	if !isHit || math.Abs(hit.T-3) > 1e-9 {
		t.Errorf("Expected far root t=3 when the near root is excluded, got %v", hit)
	}
}

func TestSphere_Hit_FusedQuadratic(t *testing.T) {
	center := core.NewVec3(0.1, 0.2, -3)
	radius := 0.7
	sphere := NewSphere(center, radius, nil)
	ray := core.NewRay(core.NewVec3(0.3, -0.1, 0.2), core.NewVec3(-0.05, 0.13, -1.1))

	hit, isHit := sphere.Hit(ray, allT)
	if !isHit {
		t.Fatal("Expected hit")
	}

	oc := center.Subtract(ray.Origin)
	a := ray.Direction.LengthSquared()
	h := oc.Dot(ray.Direction)
	c := math.FMA(-radius, radius, oc.LengthSquared())
	expected := (h - math.Sqrt(math.FMA(h, h, -(a*c)))) / a

	if hit.T != expected {
		t.Errorf("Expected t=%v, got %v", expected, hit.T)
	}
}

func TestSphere_BoundingBox(t *testing.T) {
	sphere := NewSphere(core.NewVec3(1, 2, 3), 0.5, nil)
	box := sphere.BoundingBox()

	if !box.Min().Equals(core.NewVec3(0.5, 1.5, 2.5)) || !box.Max().Equals(core.NewVec3(1.5, 2.5, 3.5)) {
		t.Errorf("Unexpected bounding box %v to %v", box.Min(), box.Max())
	}
}

func TestSphere_NegativeRadiusClamped(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 0), -1, nil)
	if sphere.Radius != 0 {
		t.Errorf("Expected radius 0, got %f", sphere.Radius)
	}
}

func TestMovingSphere(t *testing.T) {
	sphere := NewMovingSphere(core.NewVec3(0, 0, 0), core.NewVec3(0, 2, 0), 0.5, nil)

	if !sphere.IsMoving() {
		t.Error("Expected sphere to be moving")
	}
	if !sphere.CenterAt(0.5).Equals(core.NewVec3(0, 1, 0)) {
		t.Errorf("Expected center (0, 1, 0) at time 0.5, got %v", sphere.CenterAt(0.5))
	}

	box := sphere.BoundingBox()
	if !box.Min().Equals(core.NewVec3(-0.5, -0.5, -0.5)) || !box.Max().Equals(core.NewVec3(0.5, 2.5, 0.5)) {
		t.Errorf("Expected box covering both endpoints, got %v to %v", box.Min(), box.Max())
	}

	// A horizontal ray at y=2 only meets the sphere late in the shutter interval
	origin := core.NewVec3(-5, 2, 0)
	direction := core.NewVec3(1, 0, 0)
	if _, isHit := sphere.Hit(core.NewRayWithTime(origin, direction, 0), allT); isHit {
		t.Error("Expected miss at time 0")
	}
	if _, isHit := sphere.Hit(core.NewRayWithTime(origin, direction, 1), allT); !isHit {
		t.Error("Expected hit at time 1")
	}
}
