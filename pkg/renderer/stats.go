package renderer

import "time"

// RenderStats contains statistics about a completed render
type RenderStats struct {
	TotalPixels  int           // Number of pixels rendered
	TotalSamples int           // Primary rays traced (pixels * samples per pixel)
	Elapsed      time.Duration // Wall-clock render time
}
