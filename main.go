package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"

	"github.com/softray/go-raytracer/pkg/renderer"
	"github.com/softray/go-raytracer/pkg/scene"
)

// createScene builds a named scene; the seed drives randomized layouts
func createScene(sceneType string, seed int64) (*scene.Scene, error) {
	switch sceneType {
	case "three-spheres":
		return scene.NewThreeSphereScene(), nil
	case "cover":
		return scene.NewCoverScene(rand.New(rand.NewSource(seed))), nil
	default:
		return nil, fmt.Errorf("unknown scene type: %s", sceneType)
	}
}

func main() {
	sceneType := flag.String("scene", "three-spheres", "Scene type: 'three-spheres' or 'cover'")
	width := flag.Int("width", 0, "Image width in pixels (0 = scene default)")
	samples := flag.Int("samples", 0, "Samples per pixel (0 = scene default)")
	depth := flag.Int("depth", 0, "Maximum ray bounce depth (0 = scene default)")
	seed := flag.Int64("seed", 42, "Base random seed")
	workers := flag.Int("workers", 0, "Number of parallel workers (0 = CPU count)")
	output := flag.String("o", "", "Output file (default stdout)")
	help := flag.Bool("help", false, "Show help information")
	flag.Parse()

	if *help {
		fmt.Println("Ray tracer")
		fmt.Println("Usage: raytracer [options]")
		fmt.Println()
		fmt.Println("Options:")
		flag.PrintDefaults()
		fmt.Println()
		fmt.Println("Available scenes:")
		fmt.Println("  three-spheres - glass, diffuse and metal spheres over a ground sphere")
		fmt.Println("  cover         - randomized sphere field with three feature spheres")
		fmt.Println()
		fmt.Println("The image is emitted as plain PPM (P3) to stdout or the -o file.")
		return
	}

	selectedScene, err := createScene(*sceneType, *seed)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v. Using three-spheres.\n", err)
		selectedScene = scene.NewThreeSphereScene()
	}

	cameraConfig := selectedScene.CameraConfig
	if *width > 0 {
		cameraConfig.ImageWidth = *width
	}
	if *samples > 0 {
		cameraConfig.SamplesPerPixel = *samples
	}
	if *depth > 0 {
		cameraConfig.MaxDepth = *depth
	}

	camera, err := renderer.NewCamera(cameraConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Invalid camera configuration: %v\n", err)
		os.Exit(1)
	}

	out := os.Stdout
	if *output != "" {
		f, err := os.Create(*output)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating output file: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		out = f
	}

	renderConfig := renderer.DefaultRenderConfig()
	renderConfig.Seed = *seed
	renderConfig.NumWorkers = *workers

	r := renderer.NewRenderer(camera, selectedScene.World, renderConfig, renderer.NewDefaultLogger())
	if _, err := r.Render(out); err != nil {
		fmt.Fprintf(os.Stderr, "Render failed: %v\n", err)
		os.Exit(1)
	}
}
