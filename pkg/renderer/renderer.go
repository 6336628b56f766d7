package renderer

import (
	"fmt"
	"io"
	"math/rand"
	"runtime"
	"sync"
	"sync/atomic"
	"time"

	"github.com/softray/go-raytracer/pkg/core"
	"github.com/softray/go-raytracer/pkg/ppm"
)

// RenderConfig controls the parallel execution of a render
type RenderConfig struct {
	NumWorkers int   // Number of parallel workers (0 = use CPU count)
	Seed       int64 // Base seed; row j uses Seed + j
}

// DefaultRenderConfig returns sensible default values
func DefaultRenderConfig() RenderConfig {
	return RenderConfig{
		NumWorkers: 0,
		Seed:       42,
	}
}

// Renderer drives a camera over a scene and emits the image as PPM.
// Workers split the image by scanline; each row is written to its own
// framebuffer slot, so the only shared mutable state is the progress
// counter.
type Renderer struct {
	camera *Camera
	world  core.Hittable
	config RenderConfig
	logger core.Logger
}

// NewRenderer creates a renderer for the given camera and scene
func NewRenderer(camera *Camera, world core.Hittable, config RenderConfig, logger core.Logger) *Renderer {
	if config.NumWorkers <= 0 {
		config.NumWorkers = runtime.NumCPU()
	}
	if logger == nil {
		logger = NewDefaultLogger()
	}
	return &Renderer{
		camera: camera,
		world:  world,
		config: config,
		logger: logger,
	}
}

// Render recomputes the camera's derived state, traces every pixel and
// writes the image to out in row-major order. Rows are rendered in
// parallel; emission happens only after the join, so output order never
// depends on scheduling.
func (rd *Renderer) Render(out io.Writer) (RenderStats, error) {
	start := time.Now()

	if err := rd.camera.Initialize(); err != nil {
		return RenderStats{}, fmt.Errorf("render: %w", err)
	}

	width := rd.camera.ImageWidth()
	height := rd.camera.ImageHeight()

	framebuffer := make([][]core.Color, height)
	for j := range framebuffer {
		framebuffer[j] = make([]core.Color, width)
	}

	rows := make(chan int, height)
	for j := 0; j < height; j++ {
		rows <- j
	}
	close(rows)

	remaining := int64(height)
	var wg sync.WaitGroup
	for w := 0; w < rd.config.NumWorkers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := range rows {
				// Per-row generator keeps the output independent of
				// worker count and scheduling for a fixed seed
				random := rand.New(rand.NewSource(rd.config.Seed + int64(j)))
				rd.renderRow(j, framebuffer[j], random)
				rd.logger.Printf("\rScanlines remaining: %d ", atomic.AddInt64(&remaining, -1))
			}
		}()
	}
	wg.Wait()

	if err := ppm.WriteHeader(out, width, height); err != nil {
		return RenderStats{}, fmt.Errorf("render: %w", err)
	}
	for j := 0; j < height; j++ {
		for i := 0; i < width; i++ {
			if err := ppm.WriteColor(out, framebuffer[j][i]); err != nil {
				return RenderStats{}, fmt.Errorf("render: %w", err)
			}
		}
	}

	stats := RenderStats{
		TotalPixels:  width * height,
		TotalSamples: width * height * rd.camera.Config.SamplesPerPixel,
		Elapsed:      time.Since(start),
	}
	rd.logger.Printf("\rDone. %d pixels, %d samples in %v\n",
		stats.TotalPixels, stats.TotalSamples, stats.Elapsed)
	return stats, nil
}

// renderRow accumulates and averages the samples for one scanline
func (rd *Renderer) renderRow(j int, row []core.Color, random *rand.Rand) {
	samples := rd.camera.Config.SamplesPerPixel
	maxDepth := rd.camera.Config.MaxDepth

	for i := range row {
		pixelColor := core.NewVec3(0, 0, 0)
		for s := 0; s < samples; s++ {
			ray := rd.camera.GetRay(i, j, random)
			pixelColor = pixelColor.Add(rd.camera.RayColor(ray, maxDepth, rd.world, random))
		}
		row[i] = pixelColor.Multiply(rd.camera.PixelSamplesScale())
	}
}
