package geometry

import (
	"github.com/softray/go-raytracer/pkg/core"
)

// HittableList aggregates hittables and reports the nearest intersection
// across all of them
type HittableList struct {
	Objects []core.Hittable
}

// NewHittableList creates an empty list
func NewHittableList() *HittableList {
	return &HittableList{Objects: make([]core.Hittable, 0)}
}

// Add appends an object to the list
func (l *HittableList) Add(object core.Hittable) {
	l.Objects = append(l.Objects, object)
}

// Clear removes all objects from the list
func (l *HittableList) Clear() {
	l.Objects = l.Objects[:0]
}

// Hit performs a linear scan over the members. The acceptance window is
// re-narrowed to the best t after every improvement, so each remaining
// member is only tested against the ray prefix not yet beaten.
func (l *HittableList) Hit(ray core.Ray, rayT core.Interval) (*core.HitRecord, bool) {
	var closestHit *core.HitRecord
	closestSoFar := rayT.Max

	for _, object := range l.Objects {
		if hit, isHit := object.Hit(ray, core.NewInterval(rayT.Min, closestSoFar)); isHit {
			closestSoFar = hit.T
			closestHit = hit
		}
	}

	return closestHit, closestHit != nil
}
