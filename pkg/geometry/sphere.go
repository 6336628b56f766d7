package geometry

import (
	"math"

	"github.com/softray/go-raytracer/pkg/core"
)

// Sphere represents a sphere shape. A negative radius flips the outward
// normal, which models the inner surface of a hollow glass shell.
type Sphere struct {
	Center   core.Point3
	Radius   float64
	Material core.Material
}

// NewSphere creates a new sphere
func NewSphere(center core.Point3, radius float64, material core.Material) *Sphere {
	return &Sphere{
		Center:   center,
		Radius:   radius,
		Material: material,
	}
}

// Hit tests if a ray intersects the sphere within rayT
func (s *Sphere) Hit(ray core.Ray, rayT core.Interval) (*core.HitRecord, bool) {
	oc := s.Center.Subtract(ray.Origin)

	// Quadratic in t, half-b form: a*t² - 2h*t + c = 0
	a := ray.Direction.LengthSquared()
	h := ray.Direction.Dot(oc)
	c := oc.LengthSquared() - s.Radius*s.Radius

	discriminant := h*h - a*c
	if discriminant < 0 {
		return nil, false
	}

	sqrtD := math.Sqrt(discriminant)

	// Nearest root first, then the far root
	root := (h - sqrtD) / a
	if !rayT.Surrounds(root) {
		root = (h + sqrtD) / a
		if !rayT.Surrounds(root) {
			return nil, false
		}
	}

	hit := &core.HitRecord{
		T:        root,
		Point:    ray.At(root),
		Material: s.Material,
	}

	// Unit length by construction; negative radius flips it inward
	outwardNormal := hit.Point.Subtract(s.Center).Divide(s.Radius)
	hit.SetFaceNormal(ray, outwardNormal)

	return hit, true
}
