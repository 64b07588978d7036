package gltf

// ComponentType identifies the scalar storage type of an accessor's
// components. It serializes as the schema's integer code.
type ComponentType int

const (
	ComponentTypeByte          ComponentType = 5120
	ComponentTypeUnsignedByte  ComponentType = 5121
	ComponentTypeShort         ComponentType = 5122
	ComponentTypeUnsignedShort ComponentType = 5123
	ComponentTypeUnsignedInt   ComponentType = 5125
	ComponentTypeFloat         ComponentType = 5126
)

// AccessorType is the element shape of an accessor. It serializes as the
// schema's string tag.
type AccessorType string

const (
	TypeScalar AccessorType = "SCALAR"
	TypeVec2   AccessorType = "VEC2"
	TypeVec3   AccessorType = "VEC3"
	TypeVec4   AccessorType = "VEC4"
	TypeMat2   AccessorType = "MAT2"
	TypeMat3   AccessorType = "MAT3"
	TypeMat4   AccessorType = "MAT4"
)

// Accessor is a typed view over (part of) a buffer view. ByteOffset is
// omitted at its default of zero, unlike the byteOffset of a BufferView,
// which the schema always requires.
type Accessor struct {
	Name          string        `json:"name,omitempty"`
	BufferView    *uint32       `json:"bufferView,omitempty"`
	ByteOffset    uint32        `json:"byteOffset,omitempty"`
	ComponentType ComponentType `json:"componentType"`
	Normalized    bool          `json:"normalized,omitempty"`
	Count         uint32        `json:"count"`
	Type          AccessorType  `json:"type"`
	Max           []float64     `json:"max,omitempty"`
	Min           []float64     `json:"min,omitempty"`
}

func NewAccessor() Accessor {
	return Accessor{
		ComponentType: ComponentTypeByte,
		Type:          TypeScalar,
	}
}
