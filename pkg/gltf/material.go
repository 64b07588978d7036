package gltf

import "encoding/json"

// AlphaMode selects how a material's alpha channel is interpreted. It
// serializes as the schema's string tag.
type AlphaMode string

const (
	AlphaModeOpaque AlphaMode = "OPAQUE"
	AlphaModeMask   AlphaMode = "MASK"
	AlphaModeBlend  AlphaMode = "BLEND"
)

// Color4 is an RGBA color factor. The default is opaque white.
type Color4 struct {
	R, G, B, A float64
}

func NewColor4() Color4 {
	return Color4{R: 1.0, G: 1.0, B: 1.0, A: 1.0}
}

func (c Color4) IsDefault() bool {
	return c == NewColor4()
}

func (c Color4) MarshalJSON() ([]byte, error) {
	return json.Marshal([4]float64{c.R, c.G, c.B, c.A})
}

// PBRMetallicRoughness is the metallic roughness parameter block. All of its
// fields default to 1.
type PBRMetallicRoughness struct {
	BaseColorFactor Color4
	MetallicFactor  float64
	RoughnessFactor float64
}

func NewPBRMetallicRoughness() PBRMetallicRoughness {
	return PBRMetallicRoughness{
		BaseColorFactor: NewColor4(),
		MetallicFactor:  1.0,
		RoughnessFactor: 1.0,
	}
}

func (p PBRMetallicRoughness) MarshalJSON() ([]byte, error) {
	out := struct {
		BaseColorFactor *Color4  `json:"baseColorFactor,omitempty"`
		MetallicFactor  *float64 `json:"metallicFactor,omitempty"`
		RoughnessFactor *float64 `json:"roughnessFactor,omitempty"`
	}{}

	if !p.BaseColorFactor.IsDefault() {
		out.BaseColorFactor = &p.BaseColorFactor
	}

	if !isDefaultMetallicFactor(p.MetallicFactor) {
		out.MetallicFactor = &p.MetallicFactor
	}

	if !isDefaultRoughnessFactor(p.RoughnessFactor) {
		out.RoughnessFactor = &p.RoughnessFactor
	}

	return json.Marshal(&out)
}

// Material describes surface appearance. The nested metallic roughness block
// is always serialized.
type Material struct {
	Name                 string
	EmissiveFactor       [3]float64
	AlphaMode            AlphaMode
	AlphaCutoff          float64
	DoubleSided          bool
	PbrMetallicRoughness PBRMetallicRoughness
}

func NewMaterial() Material {
	return Material{
		AlphaMode:            AlphaModeOpaque,
		AlphaCutoff:          0.5,
		PbrMetallicRoughness: NewPBRMetallicRoughness(),
	}
}

func (m Material) MarshalJSON() ([]byte, error) {
	out := struct {
		Name                 string               `json:"name,omitempty"`
		EmissiveFactor       *[3]float64          `json:"emissiveFactor,omitempty"`
		AlphaMode            AlphaMode            `json:"alphaMode,omitempty"`
		AlphaCutoff          *float64             `json:"alphaCutoff,omitempty"`
		DoubleSided          bool                 `json:"doubleSided,omitempty"`
		PbrMetallicRoughness PBRMetallicRoughness `json:"pbrMetallicRoughness"`
	}{
		Name:                 m.Name,
		DoubleSided:          m.DoubleSided,
		PbrMetallicRoughness: m.PbrMetallicRoughness,
	}

	if !isDefaultEmissiveFactor(m.EmissiveFactor) {
		out.EmissiveFactor = &m.EmissiveFactor
	}

	if !isDefaultAlphaMode(m.AlphaMode) {
		out.AlphaMode = m.AlphaMode
	}

	if !isDefaultAlphaCutoff(m.AlphaCutoff) {
		out.AlphaCutoff = &m.AlphaCutoff
	}

	return json.Marshal(&out)
}

// The scalar defaults below use exact equality on purpose. The schema states
// literal default values, so an epsilon comparison would emit or elide the
// wrong fields.

func isDefaultEmissiveFactor(v [3]float64) bool {
	return v == [3]float64{}
}

func isDefaultAlphaMode(v AlphaMode) bool {
	return v == AlphaModeOpaque
}

func isDefaultAlphaCutoff(v float64) bool {
	return v == 0.5
}

func isDefaultMetallicFactor(v float64) bool {
	return v == 1.0
}

func isDefaultRoughnessFactor(v float64) bool {
	return v == 1.0
}
