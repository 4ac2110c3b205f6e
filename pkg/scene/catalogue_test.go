package scene

import (
	"errors"
	"image"
	"image/color"
	"image/png"
	"io/fs"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/integrator"
	"github.com/df07/go-pathtracer/pkg/renderer"
)

func TestCatalogue_AllScenesBuild(t *testing.T) {
	tests := []struct {
		name   string
		lights int
	}{
		{"cornell", 1},
		{"cornell-boxes", 1},
		{"motion", 1},
		{"volume", 1},
		{"final", 1},
		{"textured", 1},
		{"empty", 0},
	}

	if len(tests) != len(List()) {
		t.Fatalf("Catalogue has %d scenes, test covers %d", len(List()), len(tests))
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := New(tt.name, Options{Seed: 1})
			if err != nil {
				t.Fatalf("Failed to build scene: %v", err)
			}
			if s.Name != tt.name {
				t.Errorf("Expected name %q, got %q", tt.name, s.Name)
			}
			if len(s.Lights) != tt.lights {
				t.Errorf("Expected %d lights, got %d", tt.lights, len(s.Lights))
			}
			if err := s.Config.Validate(); err != nil {
				t.Errorf("Recommended config is invalid: %v", err)
			}
			if s.Config.Seed != 1 {
				t.Errorf("Expected the seed to carry into the config, got %d", s.Config.Seed)
			}
			if s.World() == nil || s.BVH == nil {
				t.Error("Expected World to build the BVH")
			}
		})
	}
}

func TestCatalogue_UnknownScene(t *testing.T) {
	_, err := New("teapot", Options{})
	if !errors.Is(err, ErrUnknownScene) {
		t.Errorf("Expected ErrUnknownScene, got %v", err)
	}
}

func TestCatalogue_Names(t *testing.T) {
	names := Names()
	seen := make(map[string]bool)
	for i, info := range List() {
		if names[i] != info.ID {
			t.Errorf("Names()[%d] = %q, List()[%d].ID = %q", i, names[i], i, info.ID)
		}
		if seen[info.ID] {
			t.Errorf("Duplicate scene %q", info.ID)
		}
		seen[info.ID] = true
		if info.DisplayName == "" || info.Description == "" {
			t.Errorf("Scene %q lacks a display name or description", info.ID)
		}
	}
}

func TestCatalogue_Texture(t *testing.T) {
	_, err := New("final", Options{TexturePath: filepath.Join(t.TempDir(), "missing.png")})
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("Expected a wrapped not-exist error, got %v", err)
	}

	path := filepath.Join(t.TempDir(), "earth.png")
	img := image.NewRGBA(image.Rect(0, 0, 4, 2))
	for i := 0; i < 8; i++ {
		img.Set(i%4, i/4, color.RGBA{R: 10, G: 80, B: 200, A: 255})
	}
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := png.Encode(f, img); err != nil {
		t.Fatal(err)
	}
	f.Close()

	if _, err := New("textured", Options{TexturePath: path}); err != nil {
		t.Errorf("Expected textured scene to load %s: %v", path, err)
	}
}

func TestCatalogue_SeedDeterminesContent(t *testing.T) {
	a, _ := New("final", Options{Seed: 3})
	b, _ := New("final", Options{Seed: 3})
	c, _ := New("final", Options{Seed: 4})

	exposure := core.NewInterval(0, 1)
	boxA := a.Objects[0].BoundingBox(exposure)
	boxB := b.Objects[0].BoundingBox(exposure)
	boxC := c.Objects[0].BoundingBox(exposure)
	if boxA != boxB {
		t.Errorf("Same seed built different terrain: %v vs %v", boxA, boxB)
	}
	if boxA == boxC {
		t.Error("Different seeds built identical terrain")
	}
}

func TestCornell_CenterRay(t *testing.T) {
	origin := core.NewVec3(278, 278, -800)
	ray := core.NewRay(origin, core.NewVec3(0, 0, 1))

	empty := NewCornellScene()
	hit, ok := empty.World().Hit(ray, 0.001, math.Inf(1), core.NewSeededSampler(1))
	if !ok {
		t.Fatal("Expected the center ray to hit the back wall")
	}
	if math.Abs(hit.T-1355) > 1e-9 || hit.Normal != core.NewVec3(0, 0, -1) {
		t.Errorf("Expected back wall at t=1355 facing the camera, got t=%v normal=%v", hit.T, hit.Normal)
	}

	boxes := NewCornellBoxesScene()
	hit, ok = boxes.World().Hit(ray, 0.001, math.Inf(1), core.NewSeededSampler(1))
	if !ok || hit.T >= 1355 {
		t.Errorf("Expected the tall block in front of the back wall, got %+v", hit)
	}
}

func TestMotion_SphereMovesDuringExposure(t *testing.T) {
	world := NewMotionScene().World()
	// Passes above the sphere at shutter open and through it at shutter close
	origin := core.NewVec3(278, 368, -800)

	early, ok := world.Hit(core.NewRayAt(origin, core.NewVec3(0, 0, 1), 0), 0.001, math.Inf(1), core.NewSeededSampler(1))
	if !ok || math.Abs(early.T-1355) > 1e-9 {
		t.Errorf("Expected the early ray to reach the back wall, got %+v", early)
	}

	late, ok := world.Hit(core.NewRayAt(origin, core.NewVec3(0, 0, 1), 1), 0.001, math.Inf(1), core.NewSeededSampler(1))
	if !ok || late.T >= 1355 {
		t.Errorf("Expected the late ray to hit the raised sphere, got %+v", late)
	}
}

func TestScene_RendersSmallImage(t *testing.T) {
	for _, name := range []string{"cornell-boxes", "volume", "empty"} {
		t.Run(name, func(t *testing.T) {
			s, err := New(name, Options{})
			if err != nil {
				t.Fatal(err)
			}
			config := s.Config
			config.Width, config.Height, config.SamplesPerPixel = 6, 6, 2

			integ, err := integrator.New(integrator.KindLight, config.MaxBounces, s.Lights)
			if err != nil {
				t.Fatal(err)
			}
			r, err := renderer.NewRenderer(s.World(), s.NewCamera(config.AspectRatio()), integ, config)
			if err != nil {
				t.Fatal(err)
			}
			img, _ := r.Render()
			for i, p := range img.Pixels {
				if math.IsNaN(p.X) || math.IsNaN(p.Y) || math.IsNaN(p.Z) {
					t.Fatalf("Pixel %d is NaN", i)
				}
			}
			if name == "empty" && img.Mean() != (core.Vec3{}) {
				t.Errorf("Expected the empty scene to render black, got %v", img.Mean())
			}
		})
	}
}
