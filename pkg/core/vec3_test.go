package core

import (
	"math"
	"testing"
)

func TestVec3_BasicOperations(t *testing.T) {
	a := NewVec3(1, 2, 3)
	b := NewVec3(4, 5, 6)

	tests := []struct {
		name     string
		got      Vec3
		expected Vec3
	}{
		{"add", a.Add(b), NewVec3(5, 7, 9)},
		{"subtract", b.Subtract(a), NewVec3(3, 3, 3)},
		{"multiply scalar", a.Multiply(2), NewVec3(2, 4, 6)},
		{"multiply elementwise", a.MultiplyVec(b), NewVec3(4, 10, 18)},
		{"negate", a.Negate(), NewVec3(-1, -2, -3)},
		{"cross", NewVec3(1, 0, 0).Cross(NewVec3(0, 1, 0)), NewVec3(0, 0, 1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.expected {
				t.Errorf("Expected %v, got %v", tt.expected, tt.got)
			}
		})
	}
}

func TestVec3_DotAndLength(t *testing.T) {
	a := NewVec3(1, 2, 3)
	b := NewVec3(4, 5, 6)

	if dot := a.Dot(b); dot != 32 {
		t.Errorf("Expected dot product 32, got %f", dot)
	}

	v := NewVec3(3, 4, 0)
	if length := v.Length(); math.Abs(length-5) > 1e-12 {
		t.Errorf("Expected length 5, got %f", length)
	}
	if lengthSq := v.LengthSquared(); lengthSq != 25 {
		t.Errorf("Expected squared length 25, got %f", lengthSq)
	}
}

func TestVec3_Normalize(t *testing.T) {
	v := NewVec3(10, 0, 0).Normalize()
	if v != NewVec3(1, 0, 0) {
		t.Errorf("Expected unit x axis, got %v", v)
	}

	n := NewVec3(1, 2, -2).Normalize()
	if math.Abs(n.Length()-1) > 1e-12 {
		t.Errorf("Normalized vector has length %f", n.Length())
	}

	// Normalizing the zero vector must not produce NaN
	zero := NewVec3(0, 0, 0).Normalize()
	if math.IsNaN(zero.X) || math.IsNaN(zero.Y) || math.IsNaN(zero.Z) {
		t.Errorf("Normalizing zero vector produced NaN: %v", zero)
	}
}

func TestVec3_Clamp(t *testing.T) {
	v := NewVec3(-10, 0.5, 300).Clamp(0, 255)
	expected := NewVec3(0, 0.5, 255)
	if v != expected {
		t.Errorf("Expected %v, got %v", expected, v)
	}
}

func TestVec3_NegExp(t *testing.T) {
	v := NewVec3(0, 1, 2).NegExp()

	if v.X != 1 {
		t.Errorf("Expected e^0 = 1, got %f", v.X)
	}
	if math.Abs(v.Y-math.Exp(-1)) > 1e-12 {
		t.Errorf("Expected e^-1, got %f", v.Y)
	}
	if math.Abs(v.Z-math.Exp(-2)) > 1e-12 {
		t.Errorf("Expected e^-2, got %f", v.Z)
	}
}

func TestVec3_Axis(t *testing.T) {
	v := NewVec3(1, 2, 3)
	for axis, expected := range []float64{1, 2, 3} {
		if got := v.Axis(axis); got != expected {
			t.Errorf("Axis(%d): expected %f, got %f", axis, expected, got)
		}
	}
}
