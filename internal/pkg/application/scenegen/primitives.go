package scenegen

import (
	"bytes"
	"encoding/base64"
	"encoding/binary"

	"github.com/Densaugeo/paragen/pkg/gltf"
)

const bufferURIPrefix = "data:application/octet-stream;base64,"

// appendBox adds an axis aligned box mesh centered on the origin, with one
// vertex quad per face so that normals stay flat. Returns the mesh index.
func appendBox(doc *gltf.Document, name string, size [3]float64, material *uint32) uint32 {
	hx := float32(size[0] / 2.0)
	hy := float32(size[1] / 2.0)
	hz := float32(size[2] / 2.0)

	faces := [6]struct {
		normal  [3]float32
		corners [4][3]float32
	}{
		{[3]float32{1, 0, 0}, [4][3]float32{{hx, -hy, -hz}, {hx, hy, -hz}, {hx, hy, hz}, {hx, -hy, hz}}},
		{[3]float32{-1, 0, 0}, [4][3]float32{{-hx, -hy, hz}, {-hx, hy, hz}, {-hx, hy, -hz}, {-hx, -hy, -hz}}},
		{[3]float32{0, 1, 0}, [4][3]float32{{-hx, hy, -hz}, {-hx, hy, hz}, {hx, hy, hz}, {hx, hy, -hz}}},
		{[3]float32{0, -1, 0}, [4][3]float32{{-hx, -hy, hz}, {-hx, -hy, -hz}, {hx, -hy, -hz}, {hx, -hy, hz}}},
		{[3]float32{0, 0, 1}, [4][3]float32{{-hx, -hy, hz}, {hx, -hy, hz}, {hx, hy, hz}, {-hx, hy, hz}}},
		{[3]float32{0, 0, -1}, [4][3]float32{{hx, -hy, -hz}, {-hx, -hy, -hz}, {-hx, hy, -hz}, {hx, hy, -hz}}},
	}

	positions := make([][3]float32, 0, 24)
	normals := make([][3]float32, 0, 24)
	indices := make([]uint16, 0, 36)

	for _, face := range faces {
		base := uint16(len(positions))

		for _, corner := range face.corners {
			positions = append(positions, corner)
			normals = append(normals, face.normal)
		}

		indices = append(indices,
			base, base+1, base+2,
			base, base+2, base+3,
		)
	}

	return appendGeometry(doc, name, positions, normals, indices, material)
}

// appendQuad adds a flat rectangle in the XY plane, facing +Z. Returns the
// mesh index.
func appendQuad(doc *gltf.Document, name string, size [2]float64, material *uint32) uint32 {
	hx := float32(size[0] / 2.0)
	hy := float32(size[1] / 2.0)

	positions := [][3]float32{
		{-hx, -hy, 0}, {hx, -hy, 0}, {hx, hy, 0}, {-hx, hy, 0},
	}

	normals := [][3]float32{
		{0, 0, 1}, {0, 0, 1}, {0, 0, 1}, {0, 0, 1},
	}

	indices := []uint16{0, 1, 2, 0, 2, 3}

	return appendGeometry(doc, name, positions, normals, indices, material)
}

// appendGeometry packs vertex and index payloads into an inline buffer and
// wires up the buffer view and accessor chain for a single triangle mesh.
func appendGeometry(doc *gltf.Document, name string, positions, normals [][3]float32, indices []uint16, material *uint32) uint32 {
	var payload bytes.Buffer

	// writing fixed size numeric slices into a bytes.Buffer cannot fail
	_ = binary.Write(&payload, binary.LittleEndian, positions)
	normalsOffset := uint32(payload.Len())
	_ = binary.Write(&payload, binary.LittleEndian, normals)
	indicesOffset := uint32(payload.Len())
	_ = binary.Write(&payload, binary.LittleEndian, indices)

	bufferIndex := uint32(len(doc.Buffers))

	buffer := gltf.NewBuffer()
	buffer.Name = name
	buffer.ByteLength = uint32(payload.Len())
	buffer.URI = bufferURIPrefix + base64.StdEncoding.EncodeToString(payload.Bytes())
	doc.Buffers = append(doc.Buffers, buffer)

	vertexTarget := gltf.TargetArrayBuffer
	indexTarget := gltf.TargetElementArrayBuffer

	positionsView := gltf.NewBufferView()
	positionsView.Buffer = bufferIndex
	positionsView.ByteLength = normalsOffset
	positionsView.ByteStride = gltf.Index(12)
	positionsView.Target = &vertexTarget

	normalsView := gltf.NewBufferView()
	normalsView.Buffer = bufferIndex
	normalsView.ByteOffset = normalsOffset
	normalsView.ByteLength = indicesOffset - normalsOffset
	normalsView.ByteStride = gltf.Index(12)
	normalsView.Target = &vertexTarget

	indicesView := gltf.NewBufferView()
	indicesView.Buffer = bufferIndex
	indicesView.ByteOffset = indicesOffset
	indicesView.ByteLength = uint32(payload.Len()) - indicesOffset
	indicesView.Target = &indexTarget

	viewIndex := uint32(len(doc.BufferViews))
	doc.BufferViews = append(doc.BufferViews, positionsView, normalsView, indicesView)

	minBound, maxBound := bounds(positions)

	positionsAccessor := gltf.NewAccessor()
	positionsAccessor.BufferView = gltf.Index(viewIndex)
	positionsAccessor.ComponentType = gltf.ComponentTypeFloat
	positionsAccessor.Count = uint32(len(positions))
	positionsAccessor.Type = gltf.TypeVec3
	positionsAccessor.Min = minBound
	positionsAccessor.Max = maxBound

	normalsAccessor := gltf.NewAccessor()
	normalsAccessor.BufferView = gltf.Index(viewIndex + 1)
	normalsAccessor.ComponentType = gltf.ComponentTypeFloat
	normalsAccessor.Count = uint32(len(normals))
	normalsAccessor.Type = gltf.TypeVec3

	indicesAccessor := gltf.NewAccessor()
	indicesAccessor.BufferView = gltf.Index(viewIndex + 2)
	indicesAccessor.ComponentType = gltf.ComponentTypeUnsignedShort
	indicesAccessor.Count = uint32(len(indices))
	indicesAccessor.Type = gltf.TypeScalar

	accessorIndex := uint32(len(doc.Accessors))
	doc.Accessors = append(doc.Accessors, positionsAccessor, normalsAccessor, indicesAccessor)

	primitive := gltf.NewPrimitive()
	primitive.Attributes.Position = gltf.Index(accessorIndex)
	primitive.Attributes.Normal = gltf.Index(accessorIndex + 1)
	primitive.Indices = gltf.Index(accessorIndex + 2)
	primitive.Material = material

	mesh := gltf.NewMesh()
	mesh.Name = name
	mesh.Primitives = []gltf.Primitive{primitive}

	meshIndex := uint32(len(doc.Meshes))
	doc.Meshes = append(doc.Meshes, mesh)

	return meshIndex
}

func bounds(positions [][3]float32) (min, max []float64) {
	min = []float64{0, 0, 0}
	max = []float64{0, 0, 0}

	for i, p := range positions {
		for axis := 0; axis < 3; axis++ {
			v := float64(p[axis])
			if i == 0 || v < min[axis] {
				min[axis] = v
			}
			if i == 0 || v > max[axis] {
				max[axis] = v
			}
		}
	}

	return min, max
}
