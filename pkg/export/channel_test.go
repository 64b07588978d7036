package export

import (
	"bytes"
	"context"
	"math"
	"sync"
	"testing"
	"unsafe"

	"github.com/Densaugeo/paragen/pkg/gltf"
	"github.com/matryer/is"
)

func testDocument() gltf.Document {
	doc := gltf.NewDocument()
	doc.Scene = gltf.Index(0)
	doc.Scenes = []gltf.Scene{{Name: "main", Nodes: []uint32{0}}}

	n := gltf.NewNode()
	n.Name = "root"
	n.Translation = gltf.Translation{X: 1.0, Y: 2.0, Z: 3.0}
	doc.Nodes = []gltf.Node{n}

	doc.Materials = []gltf.Material{gltf.NewMaterial()}
	doc.Meshes = []gltf.Mesh{gltf.NewMesh()}

	return doc
}

func TestAccessorsReturnZeroBeforeFirstExport(t *testing.T) {
	is := is.New(t)

	ch := NewChannel()

	is.Equal(ch.Pointer(), uintptr(0))
	is.Equal(ch.Size(), uint32(0))
}

func TestExportPublishesExactlySizedBuffer(t *testing.T) {
	is := is.New(t)

	doc := testDocument()

	var reference bytes.Buffer
	is.NoErr(gltf.Write(&reference, doc))

	ch := NewChannel()
	is.Equal(ch.Export(context.Background(), doc), None)

	is.Equal(int(ch.Size()), reference.Len())
	is.True(bytes.Equal(ch.Bytes(), reference.Bytes()))

	// no growth headroom and no truncation slack
	is.Equal(cap(ch.buf), len(ch.buf))
}

func TestExportedPointerRefersToPublishedBuffer(t *testing.T) {
	is := is.New(t)

	ch := NewChannel()
	is.Equal(ch.Export(context.Background(), testDocument()), None)

	is.Equal(ch.Pointer(), uintptr(unsafe.Pointer(&ch.buf[0])))
	is.Equal(ch.Size(), uint32(len(ch.buf)))
}

func TestRepeatedExportIsByteIdentical(t *testing.T) {
	is := is.New(t)

	doc := testDocument()
	ch := NewChannel()

	is.Equal(ch.Export(context.Background(), doc), None)
	first := append([]byte(nil), ch.Bytes()...)

	is.Equal(ch.Export(context.Background(), doc), None)

	is.True(bytes.Equal(first, ch.Bytes()))
}

func TestConcurrentExportIsRejectedNotSerialized(t *testing.T) {
	is := is.New(t)

	ch := NewChannel()

	// hold the register the way an in flight export would
	ch.mu.Lock()

	var wg sync.WaitGroup
	wg.Add(1)

	var code ErrorCode
	go func() {
		defer wg.Done()
		code = ch.Export(context.Background(), testDocument())
	}()

	wg.Wait()
	ch.mu.Unlock()

	is.Equal(code, Mutex)
	is.Equal(ch.Size(), uint32(0)) // the register was never touched

	is.Equal(ch.Export(context.Background(), testDocument()), None)
	is.True(ch.Size() > 0)
}

func TestFailedExportKeepsLastSuccessfulValue(t *testing.T) {
	is := is.New(t)

	ch := NewChannel()
	is.Equal(ch.Export(context.Background(), testDocument()), None)

	published := append([]byte(nil), ch.Bytes()...)
	pointer := ch.Pointer()

	// NaN is not encodable as JSON, so the sizing pass fails
	bad := gltf.NewDocument()
	m := gltf.NewMesh()
	m.Weights = []float64{math.NaN()}
	bad.Meshes = []gltf.Mesh{m}

	is.Equal(ch.Export(context.Background(), bad), Generation)

	is.Equal(ch.Pointer(), pointer)
	is.True(bytes.Equal(ch.Bytes(), published))
}

func TestCountingWriterOnlyCounts(t *testing.T) {
	is := is.New(t)

	w := &countingWriter{}

	n, err := w.Write([]byte("abcd"))
	is.NoErr(err)
	is.Equal(n, 4)

	n, err = w.Write([]byte("ef"))
	is.NoErr(err)
	is.Equal(n, 2)

	is.Equal(w.count, 6)
}

func TestFixedWriterRefusesToGrow(t *testing.T) {
	is := is.New(t)

	w := &fixedWriter{buf: make([]byte, 0, 4)}

	_, err := w.Write([]byte("abcd"))
	is.NoErr(err)

	_, err = w.Write([]byte("e"))
	is.Equal(err, errBufferFull)
	is.Equal(len(w.buf), 4)
}
