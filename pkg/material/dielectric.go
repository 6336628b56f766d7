package material

import (
	"math"
	"math/rand"

	"github.com/softray/go-raytracer/pkg/core"
)

// Dielectric represents a transparent material like glass that can both
// reflect and refract. Attenuation is always white: the medium absorbs
// nothing.
type Dielectric struct {
	RefractionIndex float64 // e.g. 1.5 for glass
}

// NewDielectric creates a new dielectric material
func NewDielectric(refractionIndex float64) *Dielectric {
	return &Dielectric{RefractionIndex: refractionIndex}
}

// Scatter refracts the ray through the surface, falling back to
// reflection on total internal reflection or a Fresnel coin flip.
// Dielectrics never absorb.
func (d *Dielectric) Scatter(rayIn core.Ray, hit *core.HitRecord, random *rand.Rand) (core.ScatterResult, bool) {
	attenuation := core.NewVec3(1.0, 1.0, 1.0)

	// Entering the material crosses from air into glass, exiting the
	// reverse
	var refractionRatio float64
	if hit.FrontFace {
		refractionRatio = 1.0 / d.RefractionIndex
	} else {
		refractionRatio = d.RefractionIndex
	}

	unitDirection := rayIn.Direction.Normalize()
	cosTheta := math.Min(unitDirection.Negate().Dot(hit.Normal), 1.0)
	sinTheta := math.Sqrt(1.0 - cosTheta*cosTheta)

	cannotRefract := refractionRatio*sinTheta > 1.0

	var direction core.Vec3
	if cannotRefract || Reflectance(cosTheta, refractionRatio) > random.Float64() {
		direction = core.Reflect(unitDirection, hit.Normal)
	} else {
		direction = core.Refract(unitDirection, hit.Normal, refractionRatio)
	}

	return core.ScatterResult{
		Attenuation: attenuation,
		Scattered:   core.NewRay(hit.Point, direction),
	}, true
}

// Reflectance calculates the Fresnel reflectance using Schlick's
// approximation
func Reflectance(cosine, refractionRatio float64) float64 {
	r0 := (1 - refractionRatio) / (1 + refractionRatio)
	r0 = r0 * r0
	return r0 + (1-r0)*math.Pow(1-cosine, 5)
}
