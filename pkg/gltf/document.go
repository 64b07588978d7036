// Package gltf models the subset of the glTF 2.0 scene description schema
// that paragen is able to generate, along with a serializer that emits
// spec conformant JSON. Fields whose values equal their schema defined
// defaults are left out of the output, with the handful of exceptions the
// schema mandates (asset.version, mesh.primitives, bufferView.byteOffset).
package gltf

// Document is the root aggregate holding a complete exportable scene
// description.
//
// Any index stored in the document (the active Scene index, node children
// and mesh references, primitive material/indices references, accessor
// bufferView references and bufferView buffer references) must be a valid
// position into the corresponding list. The document does not validate
// this; keeping indices in range is the caller's obligation.
type Document struct {
	Asset       Asset        `json:"asset"`
	Scene       *uint32      `json:"scene,omitempty"`
	Scenes      []Scene      `json:"scenes,omitempty"`
	Nodes       []Node       `json:"nodes,omitempty"`
	Materials   []Material   `json:"materials,omitempty"`
	Meshes      []Mesh       `json:"meshes,omitempty"`
	Accessors   []Accessor   `json:"accessors,omitempty"`
	BufferViews []BufferView `json:"bufferViews,omitempty"`
	Buffers     []Buffer     `json:"buffers,omitempty"`
}

// NewDocument creates an empty document with default asset metadata.
func NewDocument() Document {
	return Document{Asset: NewAsset()}
}

// Asset holds the metadata block that every glTF document must carry.
// Version is serialized even when empty, as required by the schema. All
// other fields are omitted when empty.
type Asset struct {
	Copyright  string `json:"copyright,omitempty"`
	Generator  string `json:"generator,omitempty"`
	Version    string `json:"version"`
	MinVersion string `json:"minVersion,omitempty"`
}

func NewAsset() Asset {
	return Asset{
		Generator:  "Paragen v0.1.0",
		Version:    "2.0",
		MinVersion: "2.0",
	}
}

// Index is a convenience function for the many optional index references in
// the model.
func Index(i uint32) *uint32 {
	return &i
}
