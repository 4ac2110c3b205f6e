package scene

import (
	"math/rand"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/material"
)

const (
	floorTiles     = 20
	floorTileWidth = 100.0
	cubeSpheres    = 1000
)

// NewFinalScene creates the showcase scene. random drives the floor heights,
// the sphere cube and the noise table; earth textures the large sphere.
func NewFinalScene(random *rand.Rand, earth material.Texture) *Scene {
	camera := standardCamera()
	camera.Center = core.NewVec3(478, 278, -600)

	s := newScene("final", camera, samplingConfig(600, 600, 500))
	exposure := s.Exposure()

	// Box terrain, grouped in its own BVH
	ground := material.NewLambertian(core.NewVec3(0.48, 0.83, 0.53))
	boxes := make([]geometry.Object, 0, floorTiles*floorTiles)
	for i := 0; i < floorTiles; i++ {
		for j := 0; j < floorTiles; j++ {
			c0 := core.NewVec3(-1000+float64(i)*floorTileWidth, 0, -1000+float64(j)*floorTileWidth)
			c1 := c0.Add(core.NewVec3(floorTileWidth, 100*(random.Float64()+0.01), floorTileWidth))
			boxes = append(boxes, geometry.NewBox(c0, c1, ground))
		}
	}
	s.Add(geometry.NewBVH(boxes, exposure))

	light := material.NewDiffuseLight(core.NewVec3(1, 1, 1), 7)
	s.AddLight(geometry.NewRect(core.AxisY, core.NewInterval(123, 423), core.NewInterval(147, 412), 554, light))

	// Brown sphere blurred by motion
	brown := material.NewLambertian(core.NewVec3(0.7, 0.3, 0.1))
	s.Add(geometry.NewLinearMove(core.NewVec3(30, 0, 0), geometry.NewSphere(core.NewVec3(400, 400, 200), 50, brown)))

	glass := material.NewDielectric(1.5)
	s.Add(geometry.NewSphere(core.NewVec3(260, 150, 45), 50, glass))

	s.Add(geometry.NewSphere(core.NewVec3(400, 200, 400), 100, material.NewTexturedLambertian(earth)))

	silver := material.NewMetal(core.NewVec3(0.8, 0.8, 0.9), 1.0)
	s.Add(geometry.NewSphere(core.NewVec3(0, 150, 145), 50, silver))

	// Blue glass: a dielectric shell filled with dense colored fog
	boundary := geometry.NewSphere(core.NewVec3(360, 150, 145), 70, glass)
	s.Add(boundary)
	s.Add(geometry.NewConstantMedium(boundary, 0.2, material.NewIsotropic(core.NewVec3(0.2, 0.4, 0.9))))

	// Thin haze over everything
	haze := geometry.NewSphere(core.NewVec3(0, 0, 0), 5000, glass)
	s.Add(geometry.NewConstantMedium(haze, 0.0001, material.NewIsotropic(core.NewVec3(1, 1, 1))))

	perlin := material.NewPerlin(random)
	marble := material.NewNoiseTexture(material.NoiseMarble, 0.1, perlin)
	s.Add(geometry.NewSphere(core.NewVec3(220, 280, 300), 80, material.NewTexturedLambertian(marble)))

	// Cube of small white spheres
	white := material.NewLambertian(core.NewVec3(0.73, 0.73, 0.73))
	spheres := make([]geometry.Object, cubeSpheres)
	for i := range spheres {
		center := core.NewVec3(random.Float64(), random.Float64(), random.Float64()).Multiply(165)
		spheres[i] = geometry.NewSphere(center, 10, white)
	}
	s.Add(geometry.NewTranslate(core.NewVec3(-100, 270, 395),
		geometry.NewRotateY(15, geometry.NewBVH(spheres, exposure))))

	return s
}

func buildFinal(opts Options) (*Scene, error) {
	earth, err := loadTexture(opts)
	if err != nil {
		return nil, err
	}
	return NewFinalScene(newRandom(opts), earth), nil
}
