package scene

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/loaders"
	"github.com/df07/go-pathtracer/pkg/material"
	"github.com/df07/go-pathtracer/pkg/renderer"
)

// ErrUnknownScene is returned by New for a name missing from the catalogue
var ErrUnknownScene = errors.New("scene: unknown scene")

// Options parameterize scene construction
type Options struct {
	Seed        int64  // Seeds random scene content and noise tables
	TexturePath string // Optional image for textured spheres
}

// SceneInfo describes a catalogue entry
type SceneInfo struct {
	ID          string
	DisplayName string
	Description string
	Config      renderer.Config // Recommended render settings
}

type builder func(opts Options) (*Scene, error)

type entry struct {
	info  SceneInfo
	build builder
}

var catalogue = []entry{
	{SceneInfo{"cornell", "Cornell Box", "Empty Cornell box lit by a ceiling light", samplingConfig(500, 500, 100)}, buildCornell},
	{SceneInfo{"cornell-boxes", "Cornell Box with Boxes", "Cornell box with two rotated white blocks", samplingConfig(500, 500, 100)}, buildCornellBoxes},
	{SceneInfo{"motion", "Motion Blur", "Cornell box with a sphere moving upward during the exposure", samplingConfig(500, 500, 100)}, buildMotion},
	{SceneInfo{"volume", "Volume", "Cornell box holding a sphere of blue fog", samplingConfig(500, 500, 100)}, buildVolume},
	{SceneInfo{"final", "Final Scene", "Box terrain, glass, metal, fog, noise and a cube of spheres", samplingConfig(600, 600, 500)}, buildFinal},
	{SceneInfo{"textured", "Textured Sphere", "Glowing textured sphere under a rotated noise sky", samplingConfig(500, 500, 100)}, buildTextured},
	{SceneInfo{"empty", "Empty", "Nothing at all; renders black", samplingConfig(100, 100, 1)}, buildEmpty},
}

// List returns the catalogue in display order
func List() []SceneInfo {
	infos := make([]SceneInfo, len(catalogue))
	for i, e := range catalogue {
		infos[i] = e.info
	}
	return infos
}

// Names returns the catalogue's scene identifiers
func Names() []string {
	names := make([]string, len(catalogue))
	for i, e := range catalogue {
		names[i] = e.info.ID
	}
	return names
}

// New builds the named scene. Textures are loaded here, before any rendering.
func New(name string, opts Options) (*Scene, error) {
	for _, e := range catalogue {
		if e.info.ID != name {
			continue
		}
		s, err := e.build(opts)
		if err != nil {
			return nil, fmt.Errorf("failed to build scene %s: %w", name, err)
		}
		s.Config = e.info.Config
		s.Config.Seed = opts.Seed
		logger.Infof("built scene %s with %d objects and %d lights", name, len(s.Objects), len(s.Lights))
		return s, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownScene, name)
}

// loadTexture returns the image at opts.TexturePath, or a checker when no path is set
func loadTexture(opts Options) (material.Texture, error) {
	if opts.TexturePath == "" {
		return material.NewChecker(
			material.NewSolidColor(core.NewVec3(0.2, 0.3, 0.1)),
			material.NewSolidColor(core.NewVec3(0.9, 0.9, 0.9)),
		), nil
	}
	data, err := loaders.LoadImage(opts.TexturePath)
	if err != nil {
		return nil, err
	}
	return data.Texture(), nil
}

// newRandom returns the generator for random scene content
func newRandom(opts Options) *rand.Rand {
	return rand.New(rand.NewSource(opts.Seed))
}

func buildEmpty(opts Options) (*Scene, error) {
	return newScene("empty", standardCamera(), renderer.Config{}), nil
}
