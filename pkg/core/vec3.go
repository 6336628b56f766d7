package core

import (
	"math"
	"math/rand"
)

// Vec3 represents a 3D vector
type Vec3 struct {
	X, Y, Z float64
}

// Point3 is a Vec3 used as a position in space
type Point3 = Vec3

// Color is a Vec3 used as an RGB triple
type Color = Vec3

// NewVec3 creates a new Vec3
func NewVec3(x, y, z float64) Vec3 {
	return Vec3{X: x, Y: y, Z: z}
}

// Add returns the sum of two vectors
func (v Vec3) Add(other Vec3) Vec3 {
	return Vec3{v.X + other.X, v.Y + other.Y, v.Z + other.Z}
}

// Subtract returns the difference of two vectors
func (v Vec3) Subtract(other Vec3) Vec3 {
	return Vec3{v.X - other.X, v.Y - other.Y, v.Z - other.Z}
}

// Multiply returns the vector scaled by a scalar
func (v Vec3) Multiply(scalar float64) Vec3 {
	return Vec3{v.X * scalar, v.Y * scalar, v.Z * scalar}
}

// MultiplyVec returns component-wise multiplication of two vectors
func (v Vec3) MultiplyVec(other Vec3) Vec3 {
	return Vec3{v.X * other.X, v.Y * other.Y, v.Z * other.Z}
}

// Divide returns the vector scaled by 1/scalar
func (v Vec3) Divide(scalar float64) Vec3 {
	return v.Multiply(1.0 / scalar)
}

// Negate returns the negative of the vector
func (v Vec3) Negate() Vec3 {
	return Vec3{X: -v.X, Y: -v.Y, Z: -v.Z}
}

// Dot returns the dot product of two vectors
func (v Vec3) Dot(other Vec3) float64 {
	return v.X*other.X + v.Y*other.Y + v.Z*other.Z
}

// Cross returns the cross product of two vectors
func (v Vec3) Cross(other Vec3) Vec3 {
	return Vec3{
		X: v.Y*other.Z - v.Z*other.Y,
		Y: v.Z*other.X - v.X*other.Z,
		Z: v.X*other.Y - v.Y*other.X,
	}
}

// Length returns the magnitude of the vector
func (v Vec3) Length() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

// LengthSquared returns the squared magnitude of the vector
func (v Vec3) LengthSquared() float64 {
	return v.X*v.X + v.Y*v.Y + v.Z*v.Z
}

// Normalize returns a unit vector in the same direction.
// A zero-length input produces NaN components; callers guard
// degenerate directions before normalizing.
func (v Vec3) Normalize() Vec3 {
	return v.Divide(v.Length())
}

// NearZero reports whether every component is close to zero.
// Used to reject degenerate scatter directions.
func (v Vec3) NearZero() bool {
	const s = 1e-8
	return math.Abs(v.X) < s && math.Abs(v.Y) < s && math.Abs(v.Z) < s
}

// Reflect returns v mirrored about the unit normal n: v - 2*dot(v,n)*n
func Reflect(v, n Vec3) Vec3 {
	return v.Subtract(n.Multiply(2 * v.Dot(n)))
}

// Refract bends the unit vector uv through a surface with unit normal n
// using Snell's law, split into components perpendicular and parallel
// to the normal. etaiOverEtat is the ratio of refractive indices.
func Refract(uv, n Vec3, etaiOverEtat float64) Vec3 {
	cosTheta := math.Min(uv.Negate().Dot(n), 1.0)
	rOutPerp := uv.Add(n.Multiply(cosTheta)).Multiply(etaiOverEtat)
	rOutParallel := n.Multiply(-math.Sqrt(math.Abs(1.0 - rOutPerp.LengthSquared())))
	return rOutPerp.Add(rOutParallel)
}

// RandomVec3 generates a vector with each component uniform in [min, max)
func RandomVec3(minVal, maxVal float64, random *rand.Rand) Vec3 {
	return Vec3{
		X: minVal + (maxVal-minVal)*random.Float64(),
		Y: minVal + (maxVal-minVal)*random.Float64(),
		Z: minVal + (maxVal-minVal)*random.Float64(),
	}
}

// RandomUnitVector generates a uniformly distributed unit vector by
// rejection sampling the unit ball. Samples with squared length outside
// (1e-160, 1] are rejected; the lower gate keeps the normalization from
// dividing by a denormal.
func RandomUnitVector(random *rand.Rand) Vec3 {
	for {
		p := RandomVec3(-1, 1, random)
		lensq := p.LengthSquared()
		if 1e-160 < lensq && lensq <= 1.0 {
			return p.Divide(math.Sqrt(lensq))
		}
	}
}

// RandomOnHemisphere generates a uniform unit vector on the hemisphere
// around the given normal
func RandomOnHemisphere(normal Vec3, random *rand.Rand) Vec3 {
	onUnitSphere := RandomUnitVector(random)
	if onUnitSphere.Dot(normal) > 0.0 {
		return onUnitSphere
	}
	return onUnitSphere.Negate()
}

// RandomInUnitDisk generates a random point in the unit disk on the
// z=0 plane (for defocus blur)
func RandomInUnitDisk(random *rand.Rand) Vec3 {
	for {
		p := Vec3{X: 2*random.Float64() - 1, Y: 2*random.Float64() - 1}
		if p.LengthSquared() < 1.0 {
			return p
		}
	}
}
