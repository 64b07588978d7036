package gltf

// Target is the intended GPU binding point of a buffer view. It serializes
// as the schema's integer code.
type Target int

const (
	TargetArrayBuffer        Target = 34962
	TargetElementArrayBuffer Target = 34963
)

// BufferView is a byte range within a buffer. ByteOffset is serialized even
// at zero; the schema requires its presence here, in contrast with
// Accessor.ByteOffset.
type BufferView struct {
	Name       string  `json:"name,omitempty"`
	Buffer     uint32  `json:"buffer"`
	ByteLength uint32  `json:"byteLength"`
	ByteOffset uint32  `json:"byteOffset"`
	ByteStride *uint32 `json:"byteStride,omitempty"`
	Target     *Target `json:"target,omitempty"`
}

func NewBufferView() BufferView {
	return BufferView{}
}

// Buffer describes a block of raw binary data, typically carried inline as a
// base64 data URI.
type Buffer struct {
	Name       string `json:"name,omitempty"`
	ByteLength uint32 `json:"byteLength"`
	URI        string `json:"uri,omitempty"`
}

func NewBuffer() Buffer {
	return Buffer{}
}
