package renderer

import (
	"math"
	"testing"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/lights"
	"github.com/df07/go-whitted-raytracer/pkg/material"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

func testCameraConfig() scene.CameraConfig {
	return scene.CameraConfig{
		Position:     core.NewVec3(0, 0, 0),
		Gaze:         core.NewVec3(0, 0, -1),
		Up:           core.NewVec3(0, 1, 0),
		FovY:         45,
		NearDistance: 1,
		Width:        8,
		Height:       8,
		NumSamples:   1,
	}
}

func preprocessed(t *testing.T, s *scene.Scene) *scene.Scene {
	t.Helper()
	if err := s.Preprocess(); err != nil {
		t.Fatalf("Scene preprocessing failed: %v", err)
	}
	return s
}

func TestWhitted_MissReturnsBackgroundExactly(t *testing.T) {
	background := core.NewVec3(12, 34, 56)
	s := preprocessed(t, &scene.Scene{
		Camera: testCameraConfig(),
		Shapes: []core.Shape{
			geometry.NewSphere(core.NewVec3(0, 0, -5), 1, 0),
		},
		Materials: []material.Material{
			material.NewLambertian(core.NewVec3(0, 0, 0), core.NewVec3(0.5, 0.5, 0.5)),
		},
		Background:          background,
		MaxDepth:            5,
		ShadowEpsilon:       1e-3,
		IntersectionEpsilon: 1e-6,
	})

	integrator := NewWhittedIntegrator(s)

	// Ray pointing away from everything
	color := integrator.RayColor(core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, 1)), 0)
	if color != background {
		t.Errorf("Expected exact background %v, got %v", background, color)
	}
}

func TestWhitted_AmbientOnlyWhenLightless(t *testing.T) {
	s := preprocessed(t, &scene.Scene{
		Camera: testCameraConfig(),
		Shapes: []core.Shape{
			geometry.NewSphere(core.NewVec3(0, 0, -5), 1, 0),
		},
		Materials: []material.Material{
			material.NewLambertian(core.NewVec3(0.5, 0.25, 0.1), core.NewVec3(0.5, 0.5, 0.5)),
		},
		Ambient:             core.NewVec3(100, 100, 100),
		Background:          core.NewVec3(0, 0, 0),
		MaxDepth:            5,
		ShadowEpsilon:       1e-3,
		IntersectionEpsilon: 1e-6,
	})

	integrator := NewWhittedIntegrator(s)
	color := integrator.RayColor(core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1)), 0)

	expected := core.NewVec3(50, 25, 10)
	if !vecsClose(color, expected, 1e-9) {
		t.Errorf("Expected pure ambient %v, got %v", expected, color)
	}
}

func TestWhitted_ShadowFullyBlocksLight(t *testing.T) {
	// A large occluder between the shaded sphere and the light
	buildScene := func(withOccluder bool) *scene.Scene {
		shapes := []core.Shape{
			geometry.NewSphere(core.NewVec3(0, 0, -5), 1, 0),
		}
		if withOccluder {
			shapes = append(shapes, geometry.NewSphere(core.NewVec3(0, 5, -4), 2, 0))
		}
		return &scene.Scene{
			Camera:    testCameraConfig(),
			Shapes:    shapes,
			Materials: []material.Material{material.NewLambertian(core.NewVec3(0.1, 0.1, 0.1), core.NewVec3(0.7, 0.7, 0.7))},
			Lights: []lights.Light{
				lights.NewPointLight(core.NewVec3(0, 10, -4), core.NewVec3(5000, 5000, 5000)),
			},
			Ambient:             core.NewVec3(10, 10, 10),
			Background:          core.NewVec3(0, 0, 0),
			MaxDepth:            5,
			ShadowEpsilon:       1e-3,
			IntersectionEpsilon: 1e-6,
		}
	}

	ray := core.NewRay(core.NewVec3(0, 0.5, 0), core.NewVec3(0, 0.1, -1).Normalize())

	lit := NewWhittedIntegrator(preprocessed(t, buildScene(false))).RayColor(ray, 0)
	shadowed := NewWhittedIntegrator(preprocessed(t, buildScene(true))).RayColor(ray, 0)

	// The shadowed render keeps exactly the ambient term
	expectedShadow := core.NewVec3(1, 1, 1) // 0.1 * 10
	if !vecsClose(shadowed, expectedShadow, 1e-9) {
		t.Errorf("Expected shadowed color %v (ambient only), got %v", expectedShadow, shadowed)
	}
	if lit.X <= shadowed.X {
		t.Errorf("Expected lit color %v brighter than shadowed %v", lit, shadowed)
	}
}

func TestWhitted_MirrorSeesReflectedObject(t *testing.T) {
	// Camera ray bounces off a mirror plane at the origin up toward an
	// emissive-looking diffuse sphere lit only by ambient light
	s := preprocessed(t, &scene.Scene{
		Camera: testCameraConfig(),
		Shapes: []core.Shape{
			geometry.NewPlane(core.NewVec3(0, -1, 0), core.NewVec3(0, 1, 0), 0),
			geometry.NewSphere(core.NewVec3(0, 10, -5), 2, 1),
		},
		Materials: []material.Material{
			material.NewMirror(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, 0),
				core.NewVec3(0, 0, 0), core.NewVec3(1, 1, 1), 1),
			material.NewLambertian(core.NewVec3(1, 0, 0), core.NewVec3(0, 0, 0)),
		},
		Ambient:             core.NewVec3(200, 200, 200),
		Background:          core.NewVec3(0, 0, 30),
		MaxDepth:            5,
		ShadowEpsilon:       1e-3,
		IntersectionEpsilon: 1e-6,
	})

	integrator := NewWhittedIntegrator(s)

	// Down toward the mirror so the reflection goes up at the sphere
	toMirror := core.NewVec3(0, -1, -0.5).Normalize()
	reflectedColor := integrator.RayColor(core.NewRay(core.NewVec3(0, 0, 0), toMirror), 0)

	// The sphere shows pure red ambient; the mirror passes it through at
	// full reflectance
	if reflectedColor.X < 100 {
		t.Errorf("Expected strong red via mirror bounce, got %v", reflectedColor)
	}
	if reflectedColor.Y > 1e-9 {
		t.Errorf("Expected no green via mirror bounce, got %v", reflectedColor)
	}

	// With recursion disabled the mirror contributes nothing
	s.MaxDepth = 0
	flat := integrator.RayColor(core.NewRay(core.NewVec3(0, 0, 0), toMirror), 0)
	if !vecsClose(flat, core.NewVec3(0, 0, 0), 1e-9) {
		t.Errorf("Expected black mirror at depth limit, got %v", flat)
	}
}

func TestWhitted_DepthLimitTerminates(t *testing.T) {
	// Two parallel facing mirrors: infinite bounces without a depth cap
	s := preprocessed(t, &scene.Scene{
		Camera: testCameraConfig(),
		Shapes: []core.Shape{
			geometry.NewPlane(core.NewVec3(0, 0, -10), core.NewVec3(0, 0, 1), 0),
			geometry.NewPlane(core.NewVec3(0, 0, 10), core.NewVec3(0, 0, -1), 0),
		},
		Materials: []material.Material{
			material.NewMirror(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, 0),
				core.NewVec3(0, 0, 0), core.NewVec3(0.9, 0.9, 0.9), 1),
		},
		Background:          core.NewVec3(0, 0, 0),
		MaxDepth:            10,
		ShadowEpsilon:       1e-3,
		IntersectionEpsilon: 1e-6,
	})

	integrator := NewWhittedIntegrator(s)
	color := integrator.RayColor(core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1)), 0)

	for _, channel := range []float64{color.X, color.Y, color.Z} {
		if math.IsNaN(channel) || math.IsInf(channel, 0) {
			t.Fatalf("Expected finite color from mirror corridor, got %v", color)
		}
	}
}

func TestWhitted_GlassSphereTransmitsBackground(t *testing.T) {
	// Looking through a clear glass sphere at the background: most energy
	// survives the two interfaces
	s := preprocessed(t, &scene.Scene{
		Camera: testCameraConfig(),
		Shapes: []core.Shape{
			geometry.NewSphere(core.NewVec3(0, 0, -5), 1, 0),
		},
		Materials: []material.Material{
			material.NewDielectric(core.NewVec3(0, 0, 0), core.NewVec3(1, 1, 1), 1.5,
				core.NewVec3(0, 0, 0)),
		},
		Background:          core.NewVec3(100, 100, 100),
		MaxDepth:            8,
		ShadowEpsilon:       1e-3,
		IntersectionEpsilon: 1e-6,
	})

	integrator := NewWhittedIntegrator(s)

	// Straight through the center: no bending, two 4% interface losses
	color := integrator.RayColor(core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1)), 0)
	if color.X < 85 || color.X > 100 {
		t.Errorf("Expected ~92 transmitted through glass, got %v", color)
	}
}
