package scenegen

import (
	"io"

	yaml "gopkg.in/yaml.v2"
)

// Config is the declarative scene description format. Entities reference
// each other by name; the generator resolves the names into list indices
// when it assembles the document.
type Config struct {
	Asset     AssetConfig      `yaml:"asset"`
	Scenes    []SceneConfig    `yaml:"scenes"`
	Nodes     []NodeConfig     `yaml:"nodes"`
	Materials []MaterialConfig `yaml:"materials"`
	Meshes    []MeshConfig     `yaml:"meshes"`
}

type AssetConfig struct {
	Copyright string `yaml:"copyright"`
	Generator string `yaml:"generator"`
}

type SceneConfig struct {
	Name  string   `yaml:"name"`
	Nodes []string `yaml:"nodes"`
}

type NodeConfig struct {
	Name        string    `yaml:"name"`
	Mesh        string    `yaml:"mesh"`
	Translation []float64 `yaml:"translation"`
	Rotation    []float64 `yaml:"rotation"`
	Scale       []float64 `yaml:"scale"`
	Children    []string  `yaml:"children"`
}

type MaterialConfig struct {
	Name            string    `yaml:"name"`
	BaseColorFactor []float64 `yaml:"baseColorFactor"`
	MetallicFactor  *float64  `yaml:"metallicFactor"`
	RoughnessFactor *float64  `yaml:"roughnessFactor"`
	EmissiveFactor  []float64 `yaml:"emissiveFactor"`
	AlphaMode       string    `yaml:"alphaMode"`
	AlphaCutoff     *float64  `yaml:"alphaCutoff"`
	DoubleSided     bool      `yaml:"doubleSided"`
}

type MeshConfig struct {
	Name     string    `yaml:"name"`
	Shape    string    `yaml:"shape"`
	Size     []float64 `yaml:"size"`
	Material string    `yaml:"material"`
}

func LoadConfiguration(data io.Reader) (*Config, error) {

	buf, err := io.ReadAll(data)
	if err != nil {
		return nil, err
	}

	cfg := &Config{}
	err = yaml.Unmarshal(buf, &cfg)

	return cfg, err
}
