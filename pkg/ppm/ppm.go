// Package ppm encodes linear radiance values as plain-text PPM (P3).
package ppm

import (
	"fmt"
	"io"
	"math"

	"github.com/softray/go-raytracer/pkg/core"
)

// intensity clamps gamma-corrected components before byte quantization
var intensity = core.NewInterval(0.000, 0.999)

// LinearToGamma converts a linear color component to gamma space
// (gamma 2). Non-positive input maps to exactly 0.
func LinearToGamma(linearComponent float64) float64 {
	if linearComponent > 0 {
		return math.Sqrt(linearComponent)
	}
	return 0
}

// WriteHeader writes the P3 header for a width x height image
func WriteHeader(out io.Writer, width, height int) error {
	if _, err := fmt.Fprintf(out, "P3\n%d %d\n255\n", width, height); err != nil {
		return fmt.Errorf("writing ppm header: %w", err)
	}
	return nil
}

// WriteColor writes one pixel as three space-separated decimal bytes.
// Components are gamma-corrected, clamped to [0, 0.999] and scaled by
// 256 with truncation, so the maximum byte value 255 is still reachable.
func WriteColor(out io.Writer, pixelColor core.Color) error {
	r := LinearToGamma(pixelColor.X)
	g := LinearToGamma(pixelColor.Y)
	b := LinearToGamma(pixelColor.Z)

	rByte := int(256 * intensity.Clamp(r))
	gByte := int(256 * intensity.Clamp(g))
	bByte := int(256 * intensity.Clamp(b))

	if _, err := fmt.Fprintf(out, "%d %d %d\n", rByte, gByte, bByte); err != nil {
		return fmt.Errorf("writing pixel: %w", err)
	}
	return nil
}
