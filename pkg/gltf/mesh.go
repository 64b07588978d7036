package gltf

import "encoding/json"

// Mode is a primitive topology. It serializes as the schema's integer code.
type Mode int

const (
	ModePoints Mode = iota
	ModeLines
	ModeLineLoop
	ModeLineStrip
	ModeTriangles
	ModeTriangleStrip
	ModeTriangleFan
)

func isDefaultMode(v Mode) bool {
	return v == ModeTriangles
}

// Attributes maps the schema's named attribute slots to accessor indices.
// Slot names serialize in their schema casing (POSITION, TEXCOORD_0, ...).
type Attributes struct {
	Color0    *uint32 `json:"COLOR_0,omitempty"`
	Joints0   *uint32 `json:"JOINTS_0,omitempty"`
	Normal    *uint32 `json:"NORMAL,omitempty"`
	Position  *uint32 `json:"POSITION,omitempty"`
	Tangent   *uint32 `json:"TANGENT,omitempty"`
	TexCoord0 *uint32 `json:"TEXCOORD_0,omitempty"`
	TexCoord1 *uint32 `json:"TEXCOORD_1,omitempty"`
	TexCoord2 *uint32 `json:"TEXCOORD_2,omitempty"`
	TexCoord3 *uint32 `json:"TEXCOORD_3,omitempty"`
	Weights0  *uint32 `json:"WEIGHTS_0,omitempty"`
}

func NewAttributes() Attributes {
	return Attributes{}
}

// Primitive is a single draw call: an attribute set, optional index and
// material references, and a topology mode.
type Primitive struct {
	Attributes Attributes
	Indices    *uint32
	Material   *uint32
	Mode       Mode
}

func NewPrimitive() Primitive {
	return Primitive{Mode: ModeTriangles}
}

func (p Primitive) MarshalJSON() ([]byte, error) {
	out := struct {
		Attributes Attributes `json:"attributes"`
		Indices    *uint32    `json:"indices,omitempty"`
		Material   *uint32    `json:"material,omitempty"`
		Mode       *Mode      `json:"mode,omitempty"`
	}{
		Attributes: p.Attributes,
		Indices:    p.Indices,
		Material:   p.Material,
	}

	if !isDefaultMode(p.Mode) {
		out.Mode = &p.Mode
	}

	return json.Marshal(&out)
}

// Mesh is an ordered list of primitives plus morph target weights. The
// primitives list is always serialized, even when empty; the schema requires
// its presence.
type Mesh struct {
	Name       string
	Primitives []Primitive
	Weights    []float64
}

func NewMesh() Mesh {
	return Mesh{Primitives: []Primitive{}}
}

func (m Mesh) MarshalJSON() ([]byte, error) {
	primitives := m.Primitives
	if primitives == nil {
		primitives = []Primitive{}
	}

	out := struct {
		Name       string      `json:"name,omitempty"`
		Primitives []Primitive `json:"primitives"`
		Weights    []float64   `json:"weights,omitempty"`
	}{
		Name:       m.Name,
		Primitives: primitives,
		Weights:    m.Weights,
	}

	return json.Marshal(&out)
}
