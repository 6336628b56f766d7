// Package scene assembles ready-to-render worlds and their matching
// camera configurations.
package scene

import (
	"math/rand"

	"github.com/softray/go-raytracer/pkg/core"
	"github.com/softray/go-raytracer/pkg/geometry"
	"github.com/softray/go-raytracer/pkg/material"
	"github.com/softray/go-raytracer/pkg/renderer"
)

// Scene pairs a world with the camera configuration it was composed for
type Scene struct {
	World        *geometry.HittableList
	CameraConfig renderer.CameraConfig
}

// NewThreeSphereScene builds the classic trio: a diffuse sphere flanked
// by a hollow glass shell and a fuzzy metal sphere over a large ground
// sphere
func NewThreeSphereScene() *Scene {
	world := geometry.NewHittableList()

	materialGround := material.NewLambertian(core.NewVec3(0.8, 0.8, 0.0))
	materialCenter := material.NewLambertian(core.NewVec3(0.1, 0.2, 0.5))
	materialLeft := material.NewDielectric(1.5)
	materialBubble := material.NewDielectric(1.0 / 1.5)
	materialRight := material.NewMetal(core.NewVec3(0.8, 0.6, 0.2), 1.0)

	world.Add(geometry.NewSphere(core.NewVec3(0, -100.5, -1), 100, materialGround))
	world.Add(geometry.NewSphere(core.NewVec3(0, 0, -1.2), 0.5, materialCenter))
	world.Add(geometry.NewSphere(core.NewVec3(-1, 0, -1), 0.5, materialLeft))
	world.Add(geometry.NewSphere(core.NewVec3(-1, 0, -1), 0.4, materialBubble))
	world.Add(geometry.NewSphere(core.NewVec3(1, 0, -1), 0.5, materialRight))

	cameraConfig := renderer.DefaultCameraConfig()
	cameraConfig.AspectRatio = 16.0 / 9.0
	cameraConfig.ImageWidth = 400
	cameraConfig.SamplesPerPixel = 100
	cameraConfig.MaxDepth = 50
	cameraConfig.VFov = 20
	cameraConfig.LookFrom = core.NewVec3(-2, 2, 1)
	cameraConfig.LookAt = core.NewVec3(0, 0, -1)
	cameraConfig.VUp = core.NewVec3(0, 1, 0)
	cameraConfig.DefocusAngle = 10.0
	cameraConfig.FocusDist = 3.4

	return &Scene{World: world, CameraConfig: cameraConfig}
}

// NewCoverScene builds the randomized sphere field: three feature
// spheres surrounded by a grid of small spheres with randomized
// materials. The supplied generator makes the layout reproducible.
func NewCoverScene(random *rand.Rand) *Scene {
	world := geometry.NewHittableList()

	groundMaterial := material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5))
	world.Add(geometry.NewSphere(core.NewVec3(0, -1000, 0), 1000, groundMaterial))

	for a := -11; a < 11; a++ {
		for b := -11; b < 11; b++ {
			chooseMat := random.Float64()
			center := core.NewVec3(
				float64(a)+0.9*random.Float64(),
				0.2,
				float64(b)+0.9*random.Float64(),
			)

			if center.Subtract(core.NewVec3(4, 0.2, 0)).Length() <= 0.9 {
				continue
			}

			var sphereMaterial core.Material
			switch {
			case chooseMat < 0.8:
				// Diffuse with a squared-color albedo to bias dark
				albedo := core.RandomVec3(0, 1, random).MultiplyVec(core.RandomVec3(0, 1, random))
				sphereMaterial = material.NewLambertian(albedo)
			case chooseMat < 0.95:
				albedo := core.RandomVec3(0.5, 1, random)
				fuzz := 0.5 * random.Float64()
				sphereMaterial = material.NewMetal(albedo, fuzz)
			default:
				sphereMaterial = material.NewDielectric(1.5)
			}
			world.Add(geometry.NewSphere(center, 0.2, sphereMaterial))
		}
	}

	world.Add(geometry.NewSphere(core.NewVec3(0, 1, 0), 1.0, material.NewDielectric(1.5)))
	world.Add(geometry.NewSphere(core.NewVec3(-4, 1, 0), 1.0, material.NewLambertian(core.NewVec3(0.4, 0.2, 0.1))))
	world.Add(geometry.NewSphere(core.NewVec3(4, 1, 0), 1.0, material.NewMetal(core.NewVec3(0.7, 0.6, 0.5), 0.0)))

	cameraConfig := renderer.DefaultCameraConfig()
	cameraConfig.AspectRatio = 16.0 / 9.0
	cameraConfig.ImageWidth = 1200
	cameraConfig.SamplesPerPixel = 500
	cameraConfig.MaxDepth = 50
	cameraConfig.VFov = 20
	cameraConfig.LookFrom = core.NewVec3(13, 2, 3)
	cameraConfig.LookAt = core.NewVec3(0, 0, 0)
	cameraConfig.VUp = core.NewVec3(0, 1, 0)
	cameraConfig.DefocusAngle = 0.6
	cameraConfig.FocusDist = 10.0

	return &Scene{World: world, CameraConfig: cameraConfig}
}
