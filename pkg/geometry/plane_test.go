package geometry

import (
	"math"
	"testing"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

func TestPlane_Hit(t *testing.T) {
	plane := NewPlane(core.NewVec3(0, 0, 0), core.NewVec3(0, 1, 0), 0)

	tests := []struct {
		name      string
		origin    core.Vec3
		direction core.Vec3
		expectHit bool
		expectedT float64
	}{
		{"straight down", core.NewVec3(0, 5, 0), core.NewVec3(0, -1, 0), true, 5},
		{"at an angle", core.NewVec3(0, 1, 0), core.NewVec3(1, -1, 0).Normalize(), true, math.Sqrt2},
		{"pointing away", core.NewVec3(0, 5, 0), core.NewVec3(0, 1, 0), false, 0},
		{"parallel above", core.NewVec3(0, 1, 0), core.NewVec3(1, 0, 0), false, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ray := core.NewRay(tt.origin, tt.direction)
			hit, isHit := plane.Hit(ray, 0.001, math.Inf(1))

			if isHit != tt.expectHit {
				t.Fatalf("Expected hit=%v, got %v", tt.expectHit, isHit)
			}
			if isHit && math.Abs(hit.T-tt.expectedT) > 1e-9 {
				t.Errorf("Expected t=%f, got t=%f", tt.expectedT, hit.T)
			}
		})
	}
}

func TestPlane_NormalFacesRay(t *testing.T) {
	plane := NewPlane(core.NewVec3(0, 0, 0), core.NewVec3(0, 1, 0), 0)

	fromAbove := core.NewRay(core.NewVec3(0, 5, 0), core.NewVec3(0, -1, 0))
	hit, isHit := plane.Hit(fromAbove, 0.001, math.Inf(1))
	if !isHit {
		t.Fatal("Expected hit from above")
	}
	if !hit.FrontFace || !vecsClose(hit.Normal, core.NewVec3(0, 1, 0), 1e-12) {
		t.Errorf("Expected front face with normal (0,1,0), got front=%v normal=%v",
			hit.FrontFace, hit.Normal)
	}

	fromBelow := core.NewRay(core.NewVec3(0, -5, 0), core.NewVec3(0, 1, 0))
	hit, isHit = plane.Hit(fromBelow, 0.001, math.Inf(1))
	if !isHit {
		t.Fatal("Expected hit from below")
	}
	if hit.FrontFace || !vecsClose(hit.Normal, core.NewVec3(0, -1, 0), 1e-12) {
		t.Errorf("Expected back face with normal (0,-1,0), got front=%v normal=%v",
			hit.FrontFace, hit.Normal)
	}
}

func TestPlane_BoundingBoxUnbounded(t *testing.T) {
	plane := NewPlane(core.NewVec3(0, 0, 0), core.NewVec3(0, 1, 0), 0)
	box := plane.BoundingBox()

	if !math.IsInf(box.Min.X, -1) || !math.IsInf(box.Max.X, 1) {
		t.Errorf("Expected unbounded box, got [%v, %v]", box.Min, box.Max)
	}
}
