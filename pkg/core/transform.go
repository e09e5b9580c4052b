package core

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Transform is a 4x4 affine transform with its inverse and inverse-transpose
// precomputed at construction. Points, vectors and normals each transform
// differently: points carry the translation, vectors do not, and normals use
// the inverse-transpose so they stay perpendicular under non-uniform scaling.
//
// A Transform is immutable after construction; shapes that share a base
// geometry each own their Transform value.
type Transform struct {
	mat  mgl64.Mat4
	inv  mgl64.Mat4
	invT mgl64.Mat4
}

// NewTransform builds a Transform from a 4x4 matrix. A singular matrix is a
// scene-construction error: there is no object space to intersect in.
func NewTransform(mat mgl64.Mat4) (Transform, error) {
	if math.Abs(mat.Det()) < 1e-12 {
		return Transform{}, fmt.Errorf("transform matrix is not invertible: %v", mat)
	}
	inv := mat.Inv()
	return Transform{mat: mat, inv: inv, invT: inv.Transpose()}, nil
}

// IdentityTransform returns the identity transform
func IdentityTransform() Transform {
	ident := mgl64.Ident4()
	return Transform{mat: ident, inv: ident, invT: ident}
}

// Translate returns a translation transform
func Translate(x, y, z float64) Transform {
	t, _ := NewTransform(mgl64.Translate3D(x, y, z))
	return t
}

// Scale returns a scaling transform. Zero factors are rejected at
// construction via NewTransform; use that directly for untrusted input.
func Scale(x, y, z float64) Transform {
	t, err := NewTransform(mgl64.Scale3D(x, y, z))
	if err != nil {
		panic(err)
	}
	return t
}

// RotateDegrees returns a rotation transform of angle degrees about axis
func RotateDegrees(angle float64, axis Vec3) Transform {
	rad := angle * math.Pi / 180.0
	t, _ := NewTransform(mgl64.HomogRotate3D(rad, mgl64.Vec3{axis.X, axis.Y, axis.Z}))
	return t
}

// Compose returns the transform equivalent to applying other first, then t
func (t Transform) Compose(other Transform) Transform {
	composed, err := NewTransform(t.mat.Mul4(other.mat))
	if err != nil {
		// Both factors are invertible, so the product is too
		panic(err)
	}
	return composed
}

// Matrix returns the underlying 4x4 matrix
func (t Transform) Matrix() mgl64.Mat4 {
	return t.mat
}

// ApplyPoint transforms a point into world space (w = 1)
func (t Transform) ApplyPoint(p Vec3) Vec3 {
	r := t.mat.Mul4x1(mgl64.Vec4{p.X, p.Y, p.Z, 1})
	return Vec3{r[0], r[1], r[2]}
}

// ApplyVector transforms a direction into world space (w = 0, no translation)
func (t Transform) ApplyVector(v Vec3) Vec3 {
	r := t.mat.Mul4x1(mgl64.Vec4{v.X, v.Y, v.Z, 0})
	return Vec3{r[0], r[1], r[2]}
}

// ApplyNormal transforms a surface normal into world space using the
// inverse-transpose, returning a unit vector
func (t Transform) ApplyNormal(n Vec3) Vec3 {
	r := t.invT.Mul4x1(mgl64.Vec4{n.X, n.Y, n.Z, 0})
	return Vec3{r[0], r[1], r[2]}.Normalize()
}

// InversePoint transforms a world-space point into object space
func (t Transform) InversePoint(p Vec3) Vec3 {
	r := t.inv.Mul4x1(mgl64.Vec4{p.X, p.Y, p.Z, 1})
	return Vec3{r[0], r[1], r[2]}
}

// InverseVector transforms a world-space direction into object space.
// The result is deliberately NOT renormalized: keeping the scaled length
// makes object-space t values line up with world-space t values.
func (t Transform) InverseVector(v Vec3) Vec3 {
	r := t.inv.Mul4x1(mgl64.Vec4{v.X, v.Y, v.Z, 0})
	return Vec3{r[0], r[1], r[2]}
}

// ApplyAABB returns a world-space AABB enclosing the transformed box
func (t Transform) ApplyAABB(box AABB) AABB {
	corners := box.Corners()
	world := make([]Vec3, 0, 8)
	for _, c := range corners {
		world = append(world, t.ApplyPoint(c))
	}
	return NewAABBFromPoints(world...)
}
