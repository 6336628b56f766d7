package material

import (
	"math/rand"

	"github.com/softray/go-raytracer/pkg/core"
)

// Metal represents a metallic material with specular reflection
type Metal struct {
	Albedo core.Color
	Fuzz   float64 // 0.0 = perfect mirror, 1.0 = very fuzzy
}

// NewMetal creates a new metal material, clamping fuzz to [0, 1]
func NewMetal(albedo core.Color, fuzz float64) *Metal {
	if fuzz > 1.0 {
		fuzz = 1.0
	}
	if fuzz < 0.0 {
		fuzz = 0.0
	}
	return &Metal{Albedo: albedo, Fuzz: fuzz}
}

// Scatter reflects the ray about the normal, perturbed by the fuzz
// radius. A perturbed direction that dips below the surface is absorbed,
// which models grazing fuzzy reflections that would self-intersect.
func (m *Metal) Scatter(rayIn core.Ray, hit *core.HitRecord, random *rand.Rand) (core.ScatterResult, bool) {
	reflected := core.Reflect(rayIn.Direction.Normalize(), hit.Normal)
	reflected = reflected.Add(core.RandomUnitVector(random).Multiply(m.Fuzz))

	scattered := core.NewRay(hit.Point, reflected)
	scatters := scattered.Direction.Dot(hit.Normal) > 0

	return core.ScatterResult{
		Attenuation: m.Albedo,
		Scattered:   scattered,
	}, scatters
}
