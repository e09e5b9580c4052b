package core

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func vecsClose(a, b Vec3, tolerance float64) bool {
	return math.Abs(a.X-b.X) < tolerance &&
		math.Abs(a.Y-b.Y) < tolerance &&
		math.Abs(a.Z-b.Z) < tolerance
}

func TestTransform_PointVsVector(t *testing.T) {
	translate := Translate(10, 20, 30)

	point := translate.ApplyPoint(NewVec3(1, 2, 3))
	if !vecsClose(point, NewVec3(11, 22, 33), 1e-12) {
		t.Errorf("Expected translated point (11,22,33), got %v", point)
	}

	// Directions must ignore translation
	vector := translate.ApplyVector(NewVec3(1, 2, 3))
	if !vecsClose(vector, NewVec3(1, 2, 3), 1e-12) {
		t.Errorf("Expected direction unchanged by translation, got %v", vector)
	}
}

func TestTransform_InverseRoundTrip(t *testing.T) {
	transform := Translate(1, 2, 3).
		Compose(RotateDegrees(37, NewVec3(0, 1, 0))).
		Compose(Scale(2, 3, 4))

	points := []Vec3{
		NewVec3(0, 0, 0),
		NewVec3(1, -2, 3),
		NewVec3(-5, 0.5, 12),
	}

	for _, p := range points {
		back := transform.InversePoint(transform.ApplyPoint(p))
		if !vecsClose(back, p, 1e-9) {
			t.Errorf("Point %v round-tripped to %v", p, back)
		}
	}
}

func TestTransform_InverseVector_KeepsScaledLength(t *testing.T) {
	scale := Scale(2, 2, 2)

	// A unit world direction maps to a half-length object direction, so t
	// values measured in object space match world space
	objDir := scale.InverseVector(NewVec3(1, 0, 0))
	if math.Abs(objDir.Length()-0.5) > 1e-12 {
		t.Errorf("Expected object-space length 0.5, got %f", objDir.Length())
	}
}

func TestTransform_NormalUnderNonUniformScale(t *testing.T) {
	// Scaling a surface by (1, 2, 1) tilts its normals; the inverse-transpose
	// keeps them perpendicular where naive vector transforms would not.
	scale := Scale(1, 2, 1)

	// Surface with tangent (1,1,0) and normal (1,-1,0)/sqrt(2)
	tangent := NewVec3(1, 1, 0)
	normal := NewVec3(1, -1, 0).Normalize()

	worldTangent := scale.ApplyVector(tangent)
	worldNormal := scale.ApplyNormal(normal)

	if dot := worldTangent.Dot(worldNormal); math.Abs(dot) > 1e-12 {
		t.Errorf("Transformed normal not perpendicular to surface, dot=%g", dot)
	}
	if math.Abs(worldNormal.Length()-1) > 1e-12 {
		t.Errorf("Transformed normal not unit length: %f", worldNormal.Length())
	}
}

func TestTransform_Compose_Order(t *testing.T) {
	// Compose applies the right factor first: scale then translate
	transform := Translate(10, 0, 0).Compose(Scale(2, 2, 2))

	point := transform.ApplyPoint(NewVec3(1, 0, 0))
	if !vecsClose(point, NewVec3(12, 0, 0), 1e-12) {
		t.Errorf("Expected (12,0,0), got %v", point)
	}
}

func TestNewTransform_RejectsSingular(t *testing.T) {
	singular := mgl64.Scale3D(1, 0, 1)
	if _, err := NewTransform(singular); err == nil {
		t.Error("Expected error for singular matrix, got nil")
	}

	if _, err := NewTransform(mgl64.Ident4()); err != nil {
		t.Errorf("Expected identity to be accepted, got %v", err)
	}
}

func TestTransform_ApplyAABB(t *testing.T) {
	box := NewAABB(NewVec3(-1, -1, -1), NewVec3(1, 1, 1))

	rotated := RotateDegrees(45, NewVec3(0, 0, 1)).ApplyAABB(box)
	expected := math.Sqrt2
	if math.Abs(rotated.Max.X-expected) > 1e-9 || math.Abs(rotated.Min.X+expected) > 1e-9 {
		t.Errorf("Expected rotated box to span [-sqrt2, sqrt2] in x, got [%f, %f]",
			rotated.Min.X, rotated.Max.X)
	}

	translated := Translate(5, 0, 0).ApplyAABB(box)
	if !vecsClose(translated.Min, NewVec3(4, -1, -1), 1e-12) {
		t.Errorf("Expected translated min (4,-1,-1), got %v", translated.Min)
	}
}
