package material

import (
	"math/rand"

	"github.com/softray/go-raytracer/pkg/core"
)

// Lambertian represents a perfectly diffuse material
type Lambertian struct {
	Albedo core.Color
}

// NewLambertian creates a new lambertian material
func NewLambertian(albedo core.Color) *Lambertian {
	return &Lambertian{Albedo: albedo}
}

// Scatter bounces the ray in a random direction biased toward the normal.
// Lambertian surfaces always scatter; the albedo is the attenuation.
func (l *Lambertian) Scatter(rayIn core.Ray, hit *core.HitRecord, random *rand.Rand) (core.ScatterResult, bool) {
	scatterDirection := hit.Normal.Add(core.RandomUnitVector(random))

	// The random unit vector can cancel the normal almost exactly,
	// leaving a degenerate direction
	if scatterDirection.NearZero() {
		scatterDirection = hit.Normal
	}

	return core.ScatterResult{
		Attenuation: l.Albedo,
		Scattered:   core.NewRay(hit.Point, scatterDirection),
	}, true
}
