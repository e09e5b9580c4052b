package main

import (
	"flag"
	"fmt"
	"image/png"
	"os"
	"path/filepath"
	"time"

	"github.com/df07/go-whitted-raytracer/pkg/renderer"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

// createScene returns the named built-in scene
func createScene(sceneType string) (*scene.Scene, error) {
	switch sceneType {
	case "default":
		return scene.NewDefaultScene(), nil
	case "cornell":
		return scene.NewCornellScene(), nil
	default:
		return nil, fmt.Errorf("unknown scene type %q", sceneType)
	}
}

func main() {
	// Parse command line flags
	sceneType := flag.String("scene", "default", "Scene type: 'default' or 'cornell'")
	width := flag.Int("width", 0, "Override image width in pixels")
	height := flag.Int("height", 0, "Override image height in pixels")
	samples := flag.Int("samples", 0, "Override samples per pixel")
	workers := flag.Int("workers", 0, "Number of render workers (0 = one per CPU)")
	tileSize := flag.Int("tile", 64, "Tile edge length in pixels")
	seed := flag.Int64("seed", 42, "Base seed for sampling randomness")
	output := flag.String("out", "", "Output PNG path (default output/<scene>/render_<timestamp>.png)")
	help := flag.Bool("help", false, "Show help information")
	flag.Parse()

	// Show help if requested
	if *help {
		fmt.Println("Whitted Raytracer")
		fmt.Println("Usage: raytracer [options]")
		fmt.Println()
		fmt.Println("Options:")
		flag.PrintDefaults()
		fmt.Println()
		fmt.Println("Available scenes:")
		fmt.Println("  default - Spheres and a pyramid mesh on a ground plane")
		fmt.Println("  cornell - Cornell box with instanced mirror and glass spheres")
		return
	}

	fmt.Println("Starting Whitted Raytracer...")

	selectedScene, err := createScene(*sceneType)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Using %s scene...\n", *sceneType)

	if *width > 0 {
		selectedScene.Camera.Width = *width
	}
	if *height > 0 {
		selectedScene.Camera.Height = *height
	}
	if *samples > 0 {
		selectedScene.Camera.NumSamples = *samples
	}

	config := renderer.RenderConfig{
		TileSize:   *tileSize,
		NumWorkers: *workers,
		Seed:       *seed,
	}

	raytracer, err := renderer.NewRaytracer(selectedScene, config, renderer.DefaultLogger())
	if err != nil {
		fmt.Printf("Error building raytracer: %v\n", err)
		os.Exit(1)
	}

	startTime := time.Now()
	fb := raytracer.Render()
	renderTime := time.Since(startTime)
	fmt.Printf("Render completed in %v\n", renderTime)

	// Create timestamped filename unless an explicit path was given
	filename := *output
	if filename == "" {
		outputDir := filepath.Join("output", *sceneType)
		if err := os.MkdirAll(outputDir, 0755); err != nil {
			fmt.Printf("Error creating output directory: %v\n", err)
			os.Exit(1)
		}
		timestamp := time.Now().Format("20060102_150405")
		filename = filepath.Join(outputDir, fmt.Sprintf("render_%s.png", timestamp))
	}

	file, err := os.Create(filename)
	if err != nil {
		fmt.Printf("Error creating file: %v\n", err)
		os.Exit(1)
	}
	defer file.Close()

	if err := png.Encode(file, fb.ToImage()); err != nil {
		fmt.Printf("Error saving PNG: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Render saved as %s\n", filename)
}
