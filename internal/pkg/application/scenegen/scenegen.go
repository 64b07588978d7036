package scenegen

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/Densaugeo/paragen/pkg/gltf"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
)

var ErrNotFound = errors.New("scene not found")

// SceneProvider hands out exportable scene documents by name.
type SceneProvider interface {
	Scene(ctx context.Context, name string) (gltf.Document, error)
}

type generator struct {
	doc    gltf.Document
	scenes map[string]uint32
}

// New assembles a single document from the declarative configuration and
// resolves all by-name references into list indices. The configuration is
// validated here, at the authoring layer; the document model itself never
// checks indices.
func New(ctx context.Context, cfg *Config) (SceneProvider, error) {
	g := &generator{scenes: map[string]uint32{}}

	doc := gltf.NewDocument()

	if cfg.Asset.Copyright != "" {
		doc.Asset.Copyright = cfg.Asset.Copyright
	}

	if cfg.Asset.Generator != "" {
		doc.Asset.Generator = cfg.Asset.Generator
	}

	materials := map[string]uint32{}
	for _, mc := range cfg.Materials {
		m, err := buildMaterial(mc)
		if err != nil {
			return nil, fmt.Errorf("material %s: %w", mc.Name, err)
		}

		materials[mc.Name] = uint32(len(doc.Materials))
		doc.Materials = append(doc.Materials, m)
	}

	meshes := map[string]uint32{}
	for _, mc := range cfg.Meshes {
		var material *uint32

		if mc.Material != "" {
			idx, ok := materials[mc.Material]
			if !ok {
				return nil, fmt.Errorf("mesh %s references unknown material %s", mc.Name, mc.Material)
			}
			material = gltf.Index(idx)
		}

		var idx uint32
		var err error

		switch mc.Shape {
		case "box":
			size, serr := vec3(mc.Size, [3]float64{1.0, 1.0, 1.0})
			if serr != nil {
				return nil, fmt.Errorf("mesh %s: %w", mc.Name, serr)
			}
			idx = appendBox(&doc, mc.Name, size, material)
		case "quad":
			size, serr := vec2(mc.Size, [2]float64{1.0, 1.0})
			if serr != nil {
				return nil, fmt.Errorf("mesh %s: %w", mc.Name, serr)
			}
			idx = appendQuad(&doc, mc.Name, size, material)
		default:
			err = fmt.Errorf("unknown shape %s", mc.Shape)
		}

		if err != nil {
			return nil, fmt.Errorf("mesh %s: %w", mc.Name, err)
		}

		meshes[mc.Name] = idx
	}

	nodes := map[string]uint32{}
	for i, nc := range cfg.Nodes {
		if nc.Name == "" {
			return nil, fmt.Errorf("node %d has no name", i)
		}
		if _, exists := nodes[nc.Name]; exists {
			return nil, fmt.Errorf("duplicate node name %s", nc.Name)
		}
		nodes[nc.Name] = uint32(i)
	}

	for _, nc := range cfg.Nodes {
		n, err := buildNode(nc, meshes, nodes)
		if err != nil {
			return nil, fmt.Errorf("node %s: %w", nc.Name, err)
		}
		doc.Nodes = append(doc.Nodes, n)
	}

	for _, sc := range cfg.Scenes {
		scene := gltf.NewScene()
		scene.Name = sc.Name

		for _, name := range sc.Nodes {
			idx, ok := nodes[name]
			if !ok {
				return nil, fmt.Errorf("scene %s references unknown node %s", sc.Name, name)
			}
			scene.Nodes = append(scene.Nodes, idx)
		}

		g.scenes[sc.Name] = uint32(len(doc.Scenes))
		doc.Scenes = append(doc.Scenes, scene)
	}

	g.doc = doc

	logging.GetFromContext(ctx).Debug("assembled scene document",
		slog.Int("scenes", len(doc.Scenes)),
		slog.Int("nodes", len(doc.Nodes)),
		slog.Int("meshes", len(doc.Meshes)),
	)

	return g, nil
}

// Scene returns the assembled document with the named scene selected as the
// active one. The returned document shares its entity lists with the
// generator and must be treated as read only.
func (g *generator) Scene(ctx context.Context, name string) (gltf.Document, error) {
	idx, ok := g.scenes[name]
	if !ok {
		return gltf.Document{}, fmt.Errorf("%w: %s", ErrNotFound, name)
	}

	doc := g.doc
	doc.Scene = gltf.Index(idx)

	return doc, nil
}

func buildMaterial(mc MaterialConfig) (gltf.Material, error) {
	m := gltf.NewMaterial()
	m.Name = mc.Name
	m.DoubleSided = mc.DoubleSided

	if len(mc.BaseColorFactor) > 0 {
		c, err := vec4(mc.BaseColorFactor, [4]float64{1.0, 1.0, 1.0, 1.0})
		if err != nil {
			return m, fmt.Errorf("baseColorFactor: %w", err)
		}
		m.PbrMetallicRoughness.BaseColorFactor = gltf.Color4{R: c[0], G: c[1], B: c[2], A: c[3]}
	}

	if mc.MetallicFactor != nil {
		m.PbrMetallicRoughness.MetallicFactor = *mc.MetallicFactor
	}

	if mc.RoughnessFactor != nil {
		m.PbrMetallicRoughness.RoughnessFactor = *mc.RoughnessFactor
	}

	if len(mc.EmissiveFactor) > 0 {
		e, err := vec3(mc.EmissiveFactor, [3]float64{})
		if err != nil {
			return m, fmt.Errorf("emissiveFactor: %w", err)
		}
		m.EmissiveFactor = e
	}

	switch mc.AlphaMode {
	case "":
	case "OPAQUE":
		m.AlphaMode = gltf.AlphaModeOpaque
	case "MASK":
		m.AlphaMode = gltf.AlphaModeMask
	case "BLEND":
		m.AlphaMode = gltf.AlphaModeBlend
	default:
		return m, fmt.Errorf("unknown alphaMode %s", mc.AlphaMode)
	}

	if mc.AlphaCutoff != nil {
		m.AlphaCutoff = *mc.AlphaCutoff
	}

	return m, nil
}

func buildNode(nc NodeConfig, meshes, nodes map[string]uint32) (gltf.Node, error) {
	n := gltf.NewNode()
	n.Name = nc.Name

	if nc.Mesh != "" {
		idx, ok := meshes[nc.Mesh]
		if !ok {
			return n, fmt.Errorf("references unknown mesh %s", nc.Mesh)
		}
		n.Mesh = gltf.Index(idx)
	}

	if len(nc.Translation) > 0 {
		t, err := vec3(nc.Translation, [3]float64{})
		if err != nil {
			return n, fmt.Errorf("translation: %w", err)
		}
		n.Translation = gltf.Translation{X: t[0], Y: t[1], Z: t[2]}
	}

	if len(nc.Rotation) > 0 {
		r, err := vec4(nc.Rotation, [4]float64{0.0, 0.0, 0.0, 1.0})
		if err != nil {
			return n, fmt.Errorf("rotation: %w", err)
		}
		n.Rotation = gltf.Rotation{X: r[0], Y: r[1], Z: r[2], W: r[3]}
	}

	if len(nc.Scale) > 0 {
		s, err := vec3(nc.Scale, [3]float64{1.0, 1.0, 1.0})
		if err != nil {
			return n, fmt.Errorf("scale: %w", err)
		}
		n.Scale = gltf.Scale{X: s[0], Y: s[1], Z: s[2]}
	}

	for _, child := range nc.Children {
		idx, ok := nodes[child]
		if !ok {
			return n, fmt.Errorf("references unknown child %s", child)
		}
		n.Children = append(n.Children, idx)
	}

	return n, nil
}

func vec2(v []float64, def [2]float64) ([2]float64, error) {
	if len(v) == 0 {
		return def, nil
	}
	if len(v) != 2 {
		return def, fmt.Errorf("expected 2 components, got %d", len(v))
	}
	return [2]float64{v[0], v[1]}, nil
}

func vec3(v []float64, def [3]float64) ([3]float64, error) {
	if len(v) == 0 {
		return def, nil
	}
	if len(v) != 3 {
		return def, fmt.Errorf("expected 3 components, got %d", len(v))
	}
	return [3]float64{v[0], v[1], v[2]}, nil
}

func vec4(v []float64, def [4]float64) ([4]float64, error) {
	if len(v) == 0 {
		return def, nil
	}
	if len(v) != 4 {
		return def, fmt.Errorf("expected 4 components, got %d", len(v))
	}
	return [4]float64{v[0], v[1], v[2], v[3]}, nil
}
