package core

import (
	"math"
	"testing"
)

// fixedSampler replays the given 3D samples in order
type fixedSampler struct {
	samples []Vec3
	next    int
}

func (f *fixedSampler) Get1D() float64 { return f.Get3D().X }
func (f *fixedSampler) Get2D() Vec2 {
	s := f.Get3D()
	return NewVec2(s.X, s.Y)
}
func (f *fixedSampler) Get3D() Vec3 {
	s := f.samples[f.next%len(f.samples)]
	f.next++
	return s
}

func TestRandomUnitVector(t *testing.T) {
	sampler := NewSeededSampler(42)
	var mean Vec3
	const n = 2000
	for i := 0; i < n; i++ {
		v := RandomUnitVector(sampler)
		if math.Abs(v.Length()-1) > 1e-12 {
			t.Fatalf("Expected unit length, got %f", v.Length())
		}
		mean = mean.Add(v)
	}

	// Uniform on the sphere: the mean tends to the origin
	mean = mean.Divide(n)
	if mean.Length() > 0.1 {
		t.Errorf("Expected mean near origin, got %v", mean)
	}
}

func TestRandomUnitVectorRejectsOutsideAndDegenerate(t *testing.T) {
	sampler := &fixedSampler{samples: []Vec3{
		NewVec3(1, 1, 1),       // corner of the cube, outside the sphere
		NewVec3(0.5, 0.5, 0.5), // the center, too short to normalize
		NewVec3(0.5, 1, 0.5),   // (0, 1, 0)
	}}

	v := RandomUnitVector(sampler)
	if !v.Equals(NewVec3(0, 1, 0)) {
		t.Errorf("Expected (0, 1, 0), got %v", v)
	}
	if sampler.next != 3 {
		t.Errorf("Expected 3 draws, got %d", sampler.next)
	}
}

func TestRandomInUnitDisk(t *testing.T) {
	sampler := NewSeededSampler(7)
	for i := 0; i < 1000; i++ {
		p := RandomInUnitDisk(sampler)
		if p.Z != 0 {
			t.Fatalf("Expected point on z=0, got %v", p)
		}
		if p.LengthSquared() >= 1 {
			t.Fatalf("Expected point inside unit disk, got %v", p)
		}
	}
}

func TestSampleSquare(t *testing.T) {
	sampler := NewSeededSampler(3)
	for i := 0; i < 1000; i++ {
		p := SampleSquare(sampler)
		if p.X < -0.5 || p.X >= 0.5 || p.Y < -0.5 || p.Y >= 0.5 || p.Z != 0 {
			t.Fatalf("Expected offset in [-0.5, 0.5)², got %v", p)
		}
	}
}

func TestSeededSamplerIsDeterministic(t *testing.T) {
	a := NewSeededSampler(42)
	b := NewSeededSampler(42)
	for i := 0; i < 10; i++ {
		if a.Get3D() != b.Get3D() {
			t.Fatal("Expected equal sequences for equal seeds")
		}
	}
}
