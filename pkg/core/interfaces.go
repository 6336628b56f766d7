package core

import "math/rand"

// Hittable is implemented by anything a ray can intersect
type Hittable interface {
	// Hit returns the nearest intersection whose parameter lies strictly
	// inside rayT, or (nil, false) on a miss.
	Hit(ray Ray, rayT Interval) (*HitRecord, bool)
}

// Material determines whether and how a ray continues after a hit
type Material interface {
	// Scatter returns the continuation ray and its color attenuation.
	// A false result means the ray was absorbed and the path terminates.
	Scatter(rayIn Ray, hit *HitRecord, random *rand.Rand) (ScatterResult, bool)
}

// ScatterResult contains the result of material scattering
type ScatterResult struct {
	Attenuation Color // Color attenuation picked up at this bounce
	Scattered   Ray   // The continuation ray
}

// HitRecord contains information about a ray-object intersection
type HitRecord struct {
	Point     Point3   // Point of intersection
	Normal    Vec3     // Unit surface normal, oriented against the ray
	Material  Material // Material of the hit object, shared read-only
	T         float64  // Parameter t along the ray
	FrontFace bool     // Whether the ray hit the front face
}

// SetFaceNormal orients the stored normal against the incoming ray and
// records which face was struck. outwardNormal must be unit length.
func (h *HitRecord) SetFaceNormal(ray Ray, outwardNormal Vec3) {
	h.FrontFace = ray.Direction.Dot(outwardNormal) < 0
	if h.FrontFace {
		h.Normal = outwardNormal
	} else {
		h.Normal = outwardNormal.Negate()
	}
}

// Logger interface for renderer progress output
type Logger interface {
	Printf(format string, args ...interface{})
}
