package scene

import (
	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/lights"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

// NewDefaultScene creates a demo scene: a ground plane, a matte sphere, a
// mirror sphere, a glass sphere and a flat-shaded pyramid mesh, lit by a
// point light and a dim directional fill.
func NewDefaultScene() *Scene {
	materials := []material.Material{
		// 0: gray ground
		material.NewLambertian(core.NewVec3(0.3, 0.3, 0.3), core.NewVec3(0.5, 0.5, 0.5)),
		// 1: red matte
		material.NewDiffuse(core.NewVec3(0.3, 0.1, 0.1), core.NewVec3(0.8, 0.2, 0.2), core.NewVec3(0.6, 0.6, 0.6), 50),
		// 2: mirror
		material.NewMirror(core.NewVec3(0.1, 0.1, 0.1), core.NewVec3(0.1, 0.1, 0.1),
			core.NewVec3(0.4, 0.4, 0.4), core.NewVec3(0.9, 0.9, 0.9), 100),
		// 3: glass
		material.NewDielectric(core.NewVec3(0.05, 0.05, 0.05), core.NewVec3(1, 1, 1), 1.5,
			core.NewVec3(0.01, 0.01, 0.01)),
		// 4: yellow matte for the pyramid
		material.NewDiffuse(core.NewVec3(0.2, 0.2, 0.05), core.NewVec3(0.7, 0.7, 0.15), core.NewVec3(0.3, 0.3, 0.3), 20),
	}

	pyramidVertices := []core.Vec3{
		{X: -3.5, Y: 0, Z: -2},
		{X: -1.5, Y: 0, Z: -2},
		{X: -2.5, Y: 0, Z: -4},
		{X: -2.5, Y: 1.8, Z: -2.7},
	}
	pyramid, err := geometry.NewMesh(pyramidVertices, []int{
		0, 1, 3,
		1, 2, 3,
		2, 0, 3,
		0, 2, 1,
	}, 4, nil)
	if err != nil {
		panic(err)
	}

	lookAt := core.NewVec3(0, 1, -3)

	return &Scene{
		Camera: CameraConfig{
			Position:     core.NewVec3(0, 1.5, 4),
			LookAt:       &lookAt,
			Up:           core.NewVec3(0, 1, 0),
			FovY:         45,
			NearDistance: 1,
			Width:        800,
			Height:       600,
			NumSamples:   1,
		},
		Shapes: []core.Shape{
			geometry.NewPlane(core.NewVec3(0, 0, 0), core.NewVec3(0, 1, 0), 0),
			geometry.NewSphere(core.NewVec3(0, 1, -3), 1, 1),
			geometry.NewSphere(core.NewVec3(2.2, 1, -3.5), 1, 2),
			geometry.NewSphere(core.NewVec3(0.9, 0.6, -1.4), 0.6, 3),
			pyramid,
		},
		Materials: materials,
		Lights: []lights.Light{
			lights.NewPointLight(core.NewVec3(4, 6, 2), core.NewVec3(25000, 25000, 25000)),
			lights.NewDirectionalLight(core.NewVec3(-0.3, -1, -0.4), core.NewVec3(20, 20, 25)),
		},
		Ambient:             core.NewVec3(25, 25, 25),
		Background:          core.NewVec3(30, 30, 40),
		MaxDepth:            6,
		ShadowEpsilon:       1e-3,
		IntersectionEpsilon: 1e-6,
	}
}
