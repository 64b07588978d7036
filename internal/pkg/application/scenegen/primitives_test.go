package scenegen

import (
	"encoding/base64"
	"strings"
	"testing"

	"github.com/Densaugeo/paragen/pkg/gltf"
	"github.com/matryer/is"
)

func TestAppendBoxGeometry(t *testing.T) {
	is := is.New(t)

	doc := gltf.NewDocument()
	idx := appendBox(&doc, "crate", [3]float64{2.0, 1.0, 4.0}, nil)

	is.Equal(idx, uint32(0))
	is.Equal(len(doc.Buffers), 1)
	is.Equal(len(doc.BufferViews), 3)
	is.Equal(len(doc.Accessors), 3)
	is.Equal(len(doc.Meshes), 1)

	// 24 vertices, 36 indices: positions + normals + index payload
	is.Equal(doc.Buffers[0].ByteLength, uint32(24*12+24*12+36*2))

	positions := doc.Accessors[0]
	is.Equal(positions.Count, uint32(24))
	is.Equal(positions.ComponentType, gltf.ComponentTypeFloat)
	is.Equal(positions.Type, gltf.TypeVec3)
	is.Equal(positions.Min, []float64{-1.0, -0.5, -2.0})
	is.Equal(positions.Max, []float64{1.0, 0.5, 2.0})

	indices := doc.Accessors[2]
	is.Equal(indices.Count, uint32(36))
	is.Equal(indices.ComponentType, gltf.ComponentTypeUnsignedShort)
	is.Equal(indices.Type, gltf.TypeScalar)
}

func TestAppendBoxBufferIsValidDataURI(t *testing.T) {
	is := is.New(t)

	doc := gltf.NewDocument()
	appendBox(&doc, "crate", [3]float64{1.0, 1.0, 1.0}, nil)

	uri := doc.Buffers[0].URI
	is.True(strings.HasPrefix(uri, bufferURIPrefix))

	decoded, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(uri, bufferURIPrefix))
	is.NoErr(err)
	is.Equal(len(decoded), int(doc.Buffers[0].ByteLength))
}

func TestBufferViewLayout(t *testing.T) {
	is := is.New(t)

	doc := gltf.NewDocument()
	appendBox(&doc, "crate", [3]float64{1.0, 1.0, 1.0}, nil)

	positionsView := doc.BufferViews[0]
	is.Equal(positionsView.ByteOffset, uint32(0))
	is.Equal(positionsView.ByteLength, uint32(288))
	is.Equal(*positionsView.ByteStride, uint32(12))
	is.Equal(*positionsView.Target, gltf.TargetArrayBuffer)

	normalsView := doc.BufferViews[1]
	is.Equal(normalsView.ByteOffset, uint32(288))
	is.Equal(normalsView.ByteLength, uint32(288))

	indicesView := doc.BufferViews[2]
	is.Equal(indicesView.ByteOffset, uint32(576))
	is.Equal(indicesView.ByteLength, uint32(72))
	is.True(indicesView.ByteStride == nil) // index views are tightly packed
	is.Equal(*indicesView.Target, gltf.TargetElementArrayBuffer)
}

func TestAppendQuadGeometry(t *testing.T) {
	is := is.New(t)

	doc := gltf.NewDocument()
	material := gltf.Index(3)
	appendQuad(&doc, "ground", [2]float64{10.0, 10.0}, material)

	is.Equal(doc.Accessors[0].Count, uint32(4))
	is.Equal(doc.Accessors[2].Count, uint32(6))
	is.Equal(doc.Accessors[0].Min, []float64{-5.0, -5.0, 0.0})
	is.Equal(doc.Accessors[0].Max, []float64{5.0, 5.0, 0.0})

	primitive := doc.Meshes[0].Primitives[0]
	is.Equal(*primitive.Material, uint32(3))
	is.Equal(*primitive.Attributes.Position, uint32(0))
	is.Equal(*primitive.Attributes.Normal, uint32(1))
	is.Equal(*primitive.Indices, uint32(2))
}

func TestGeometryAppendsAfterExistingEntities(t *testing.T) {
	is := is.New(t)

	doc := gltf.NewDocument()
	appendQuad(&doc, "ground", [2]float64{1.0, 1.0}, nil)
	idx := appendBox(&doc, "crate", [3]float64{1.0, 1.0, 1.0}, nil)

	is.Equal(idx, uint32(1))

	primitive := doc.Meshes[1].Primitives[0]
	is.Equal(*primitive.Attributes.Position, uint32(3))
	is.Equal(doc.Accessors[3].BufferView, gltf.Index(3))
}
