package scene

import (
	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/lights"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

// NewCornellScene creates a Cornell-box style scene: a five-walled box
// built as a triangle mesh (authored with 1-based indices, the external
// format convention), holding a mirror sphere and a glass sphere, both
// expressed as instances of a canonical unit sphere at the origin.
func NewCornellScene() *Scene {
	materials := []material.Material{
		// 0: white walls
		material.NewLambertian(core.NewVec3(0.25, 0.25, 0.25), core.NewVec3(0.7, 0.7, 0.7)),
		// 1: red left wall
		material.NewLambertian(core.NewVec3(0.25, 0.05, 0.05), core.NewVec3(0.7, 0.1, 0.1)),
		// 2: green right wall
		material.NewLambertian(core.NewVec3(0.05, 0.25, 0.05), core.NewVec3(0.1, 0.7, 0.1)),
		// 3: mirror
		material.NewMirror(core.NewVec3(0.05, 0.05, 0.05), core.NewVec3(0.05, 0.05, 0.05),
			core.NewVec3(0.3, 0.3, 0.3), core.NewVec3(0.95, 0.95, 0.95), 200),
		// 4: glass
		material.NewDielectric(core.NewVec3(0.02, 0.02, 0.02), core.NewVec3(1, 1, 1), 1.52,
			core.NewVec3(0.005, 0.02, 0.02)),
	}

	// Box corners: x in [-3,3], y in [0,6], z in [-6,0]; open toward +z
	vertices := []core.Vec3{
		{X: -3, Y: 0, Z: 0},  // 1
		{X: 3, Y: 0, Z: 0},   // 2
		{X: 3, Y: 0, Z: -6},  // 3
		{X: -3, Y: 0, Z: -6}, // 4
		{X: -3, Y: 6, Z: 0},  // 5
		{X: 3, Y: 6, Z: 0},   // 6
		{X: 3, Y: 6, Z: -6},  // 7
		{X: -3, Y: 6, Z: -6}, // 8
	}
	newWall := func(faces []int, materialIndex int) core.Shape {
		wall, err := geometry.NewMesh(vertices, faces, materialIndex, &geometry.MeshOptions{OneBasedIndices: true})
		if err != nil {
			panic(err)
		}
		return wall
	}

	unitSphere := geometry.NewSphere(core.NewVec3(0, 0, 0), 1, 3)
	glassSphere := geometry.NewSphere(core.NewVec3(0, 0, 0), 1, 4)

	mirrorTransform := core.Translate(-1.4, 1.2, -4).Compose(core.Scale(1.2, 1.2, 1.2))
	glassTransform := core.Translate(1.3, 1.0, -2.6)

	lookAt := core.NewVec3(0, 3, -3)

	return &Scene{
		Camera: CameraConfig{
			Position:     core.NewVec3(0, 3, 7),
			LookAt:       &lookAt,
			Up:           core.NewVec3(0, 1, 0),
			FovY:         50,
			NearDistance: 1,
			Width:        600,
			Height:       600,
			NumSamples:   4,
		},
		Shapes: []core.Shape{
			newWall([]int{1, 2, 3, 1, 3, 4}, 0), // floor
			newWall([]int{5, 7, 6, 5, 8, 7}, 0), // ceiling
			newWall([]int{4, 3, 7, 4, 7, 8}, 0), // back
			newWall([]int{1, 4, 8, 1, 8, 5}, 1), // left
			newWall([]int{2, 6, 7, 2, 7, 3}, 2), // right
			geometry.NewInstance(unitSphere, mirrorTransform),
			geometry.NewInstance(glassSphere, glassTransform),
		},
		Materials: materials,
		Lights: []lights.Light{
			lights.NewPointLight(core.NewVec3(0, 5.6, -3), core.NewVec3(18000, 18000, 18000)),
		},
		Ambient:             core.NewVec3(20, 20, 20),
		Background:          core.NewVec3(0, 0, 0),
		MaxDepth:            8,
		ShadowEpsilon:       1e-3,
		IntersectionEpsilon: 1e-6,
	}
}
