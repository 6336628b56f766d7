package renderer

import (
	"bytes"
	"fmt"
	"strings"
	"testing"

	"github.com/softray/go-raytracer/pkg/core"
	"github.com/softray/go-raytracer/pkg/geometry"
	"github.com/softray/go-raytracer/pkg/material"
)

func testCamera(t *testing.T, width int, samples int) *Camera {
	t.Helper()
	config := DefaultCameraConfig()
	config.ImageWidth = width
	config.SamplesPerPixel = samples
	config.MaxDepth = 5

	camera, err := NewCamera(config)
	if err != nil {
		t.Fatalf("Unexpected camera error: %v", err)
	}
	return camera
}

func TestRenderer_OutputShape(t *testing.T) {
	camera := testCamera(t, 8, 2)
	world := geometry.NewHittableList()
	world.Add(geometry.NewSphere(core.NewVec3(0, 0, -1), 0.5, material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5))))

	var buf bytes.Buffer
	r := NewRenderer(camera, world, DefaultRenderConfig(), NewSilentLogger())
	stats, err := r.Render(&buf)
	if err != nil {
		t.Fatalf("Unexpected render error: %v", err)
	}

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	width, height := camera.ImageWidth(), camera.ImageHeight()

	if lines[0] != "P3" {
		t.Errorf("Expected P3 magic, got %q", lines[0])
	}
	if lines[1] != fmt.Sprintf("%d %d", width, height) {
		t.Errorf("Expected dimensions %d %d, got %q", width, height, lines[1])
	}
	if lines[2] != "255" {
		t.Errorf("Expected max value 255, got %q", lines[2])
	}

	pixelLines := lines[3:]
	if len(pixelLines) != width*height {
		t.Fatalf("Expected %d pixel lines, got %d", width*height, len(pixelLines))
	}
	for _, line := range pixelLines {
		var r, g, b int
		if _, err := fmt.Sscanf(line, "%d %d %d", &r, &g, &b); err != nil {
			t.Fatalf("Malformed pixel line %q: %v", line, err)
		}
		for _, v := range []int{r, g, b} {
			if v < 0 || v > 255 {
				t.Fatalf("Pixel value %d out of byte range in %q", v, line)
			}
		}
	}

	if stats.TotalPixels != width*height {
		t.Errorf("Expected %d pixels in stats, got %d", width*height, stats.TotalPixels)
	}
	if stats.TotalSamples != width*height*camera.Config.SamplesPerPixel {
		t.Errorf("Expected %d samples in stats, got %d", width*height*camera.Config.SamplesPerPixel, stats.TotalSamples)
	}
}

func TestRenderer_SeededDeterminism(t *testing.T) {
	world := geometry.NewHittableList()
	world.Add(geometry.NewSphere(core.NewVec3(0, 0, -1), 0.5, material.NewLambertian(core.NewVec3(0.1, 0.2, 0.5))))

	render := func(workers int) string {
		camera := testCamera(t, 16, 4)
		config := DefaultRenderConfig()
		config.Seed = 7
		config.NumWorkers = workers

		var buf bytes.Buffer
		r := NewRenderer(camera, world, config, NewSilentLogger())
		if _, err := r.Render(&buf); err != nil {
			t.Fatalf("Unexpected render error: %v", err)
		}
		return buf.String()
	}

	// Per-row seeding makes the image a pure function of the seed,
	// independent of worker count and scheduling
	first := render(1)
	second := render(4)
	if first != second {
		t.Error("Same seed produced different images across worker counts")
	}

	camera := testCamera(t, 16, 4)
	config := DefaultRenderConfig()
	config.Seed = 8
	var buf bytes.Buffer
	if _, err := NewRenderer(camera, world, config, NewSilentLogger()).Render(&buf); err != nil {
		t.Fatalf("Unexpected render error: %v", err)
	}
	if buf.String() == first {
		t.Error("Different seeds produced identical sphere images, jitter appears dead")
	}
}

func TestRenderer_EmptySceneIsBackground(t *testing.T) {
	camera := testCamera(t, 8, 1)
	world := geometry.NewHittableList()

	var buf bytes.Buffer
	r := NewRenderer(camera, world, DefaultRenderConfig(), NewSilentLogger())
	if _, err := r.Render(&buf); err != nil {
		t.Fatalf("Unexpected render error: %v", err)
	}

	// The gradient depends only on direction.Y, so every value must sit
	// between gamma-encoded white and sky blue. Jitter moves values a
	// little within a row; it cannot leave the gradient range.
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")[3:]
	for _, line := range lines {
		var r, g, b int
		if _, err := fmt.Sscanf(line, "%d %d %d", &r, &g, &b); err != nil {
			t.Fatalf("Malformed pixel line %q: %v", line, err)
		}
		// sqrt(0.5)*256 ≈ 181, sqrt(0.7)*256 ≈ 214
		if r < 181 || g < 214 || b < 255 {
			t.Fatalf("Pixel %q fell below the gradient floor", line)
		}
	}
}

func TestRenderer_InvalidConfigFailsFast(t *testing.T) {
	camera := testCamera(t, 8, 1)
	// Corrupt the configuration after construction; Render must refuse
	// to start rather than emit NaNs
	camera.Config.SamplesPerPixel = 0

	var buf bytes.Buffer
	r := NewRenderer(camera, geometry.NewHittableList(), DefaultRenderConfig(), NewSilentLogger())
	if _, err := r.Render(&buf); err == nil {
		t.Error("Expected a configuration error at render start")
	}
	if buf.Len() != 0 {
		t.Error("No output should be emitted for a rejected configuration")
	}
}

type failingWriter struct{}

func (failingWriter) Write(p []byte) (int, error) {
	return 0, fmt.Errorf("stream closed")
}

func TestRenderer_WriteErrorSurfaces(t *testing.T) {
	camera := testCamera(t, 4, 1)
	r := NewRenderer(camera, geometry.NewHittableList(), DefaultRenderConfig(), NewSilentLogger())
	if _, err := r.Render(failingWriter{}); err == nil {
		t.Error("Expected the writer error to surface")
	}
}
