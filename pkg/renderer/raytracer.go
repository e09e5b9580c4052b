package renderer

import (
	"fmt"
	"image"
	"log"
	"math/rand"
	"runtime"
	"sync"
	"time"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

// RenderConfig contains rendering configuration
type RenderConfig struct {
	TileSize   int   // Tile edge length in pixels
	NumWorkers int   // 0 means one worker per CPU
	Seed       int64 // Base seed for per-tile sampling randomness
}

// DefaultRenderConfig returns sensible default values
func DefaultRenderConfig() RenderConfig {
	return RenderConfig{
		TileSize:   64,
		NumWorkers: 0,
		Seed:       42,
	}
}

// DefaultLogger returns a Logger backed by the standard log package
func DefaultLogger() core.Logger {
	return defaultLogger{}
}

type defaultLogger struct{}

func (defaultLogger) Printf(format string, args ...interface{}) {
	log.Printf(format, args...)
}

// Raytracer renders a preprocessed scene into a framebuffer using a fixed
// pool of workers over pixel tiles. The scene is shared read-only; each
// tile writes a disjoint framebuffer region and owns its own sampling
// random state, so no locking is needed anywhere in the render loop.
type Raytracer struct {
	scene      *scene.Scene
	camera     *Camera
	integrator *WhittedIntegrator
	config     RenderConfig
	logger     core.Logger
}

// NewRaytracer creates a raytracer for a scene. The scene must not have
// construction errors; they surface here, before any pixel is traced.
func NewRaytracer(s *scene.Scene, config RenderConfig, logger core.Logger) (*Raytracer, error) {
	if err := s.Preprocess(); err != nil {
		return nil, fmt.Errorf("scene preprocessing failed: %w", err)
	}

	camera, err := NewCamera(s.Camera)
	if err != nil {
		return nil, err
	}

	if logger == nil {
		logger = DefaultLogger()
	}

	return &Raytracer{
		scene:      s,
		camera:     camera,
		integrator: NewWhittedIntegrator(s),
		config:     config,
		logger:     logger,
	}, nil
}

// Render traces every pixel and returns the filled framebuffer. The call
// blocks until all tiles are complete; rendering the same scene with the
// same seed produces identical output.
func (rt *Raytracer) Render() *Framebuffer {
	width, height := rt.camera.Resolution()
	fb := NewFramebuffer(width, height)

	tiles := tileGrid(width, height, rt.config.TileSize)
	numWorkers := rt.config.NumWorkers
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}

	start := time.Now()
	rt.logger.Printf("rendering %dx%d, %d primitives, %d tiles, %d workers, %d samples/pixel",
		width, height, rt.scene.PrimitiveCount(), len(tiles), numWorkers, rt.camera.Samples())

	tasks := make(chan tile, len(tiles))
	for _, t := range tiles {
		tasks <- t
	}
	close(tasks)

	var wg sync.WaitGroup
	for w := 0; w < numWorkers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for t := range tasks {
				rt.renderTile(t, fb)
			}
		}()
	}
	wg.Wait()

	rt.logger.Printf("render completed in %v", time.Since(start))
	return fb
}

// tile is one rectangular unit of render work
type tile struct {
	id     int
	bounds image.Rectangle
}

// tileGrid partitions the image into tiles of at most tileSize pixels on
// each side, in row-major order
func tileGrid(width, height, tileSize int) []tile {
	if tileSize <= 0 {
		tileSize = 64
	}
	var tiles []tile
	id := 0
	for y := 0; y < height; y += tileSize {
		for x := 0; x < width; x += tileSize {
			tiles = append(tiles, tile{
				id:     id,
				bounds: image.Rect(x, y, min(x+tileSize, width), min(y+tileSize, height)),
			})
			id++
		}
	}
	return tiles
}

// renderTile traces all pixels in one tile. The tile's random state is
// seeded from the base seed and the tile ID, making renders reproducible
// regardless of which worker picks up which tile.
func (rt *Raytracer) renderTile(t tile, fb *Framebuffer) {
	random := rand.New(rand.NewSource(rt.config.Seed + int64(t.id)))
	samples := rt.camera.Samples()
	invSamples := 1.0 / float64(samples)

	for y := t.bounds.Min.Y; y < t.bounds.Max.Y; y++ {
		for x := t.bounds.Min.X; x < t.bounds.Max.X; x++ {
			accum := core.NewVec3(0, 0, 0)
			for s := 0; s < samples; s++ {
				ray := rt.camera.SampleRay(x, y, random)
				accum = accum.Add(rt.integrator.RayColor(ray, 0))
			}
			fb.Set(x, y, accum.Multiply(invSamples))
		}
	}
}
