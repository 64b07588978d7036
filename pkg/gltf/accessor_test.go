package gltf

import (
	"encoding/json"
	"testing"

	"github.com/matryer/is"
)

func TestAccessorOmitsDefaultByteOffset(t *testing.T) {
	is := is.New(t)

	a := NewAccessor()
	a.ComponentType = ComponentTypeFloat
	a.Count = 24
	a.Type = TypeVec3

	b, err := json.Marshal(a)

	is.NoErr(err)
	is.Equal(string(b), `{"componentType":5126,"count":24,"type":"VEC3"}`)
}

func TestAccessorWithBoundsAndOffset(t *testing.T) {
	is := is.New(t)

	a := NewAccessor()
	a.Name = "positions"
	a.BufferView = Index(1)
	a.ByteOffset = 288
	a.ComponentType = ComponentTypeFloat
	a.Count = 24
	a.Type = TypeVec3
	a.Max = []float64{0.5, 0.5, 0.5}
	a.Min = []float64{-0.5, -0.5, -0.5}

	b, err := json.Marshal(a)

	is.NoErr(err)
	is.Equal(string(b), `{"name":"positions","bufferView":1,"byteOffset":288,"componentType":5126,"count":24,"type":"VEC3","max":[0.5,0.5,0.5],"min":[-0.5,-0.5,-0.5]}`)
}

func TestAccessorCountIsAlwaysSerialized(t *testing.T) {
	is := is.New(t)

	b, err := json.Marshal(NewAccessor())

	is.NoErr(err)
	is.Equal(string(b), `{"componentType":5120,"count":0,"type":"SCALAR"}`)
}

func TestBufferViewAlwaysSerializesByteOffset(t *testing.T) {
	is := is.New(t)

	// byteOffset stays present at zero here, unlike on an accessor
	b, err := json.Marshal(NewBufferView())

	is.NoErr(err)
	is.Equal(string(b), `{"buffer":0,"byteLength":0,"byteOffset":0}`)
}

func TestBufferViewTargetSerializesAsIntegerCode(t *testing.T) {
	is := is.New(t)

	v := NewBufferView()
	v.ByteLength = 288
	target := TargetArrayBuffer
	v.Target = &target

	b, err := json.Marshal(v)

	is.NoErr(err)
	is.Equal(string(b), `{"buffer":0,"byteLength":288,"byteOffset":0,"target":34962}`)
}

func TestBufferOmitsEmptyURI(t *testing.T) {
	is := is.New(t)

	buf := NewBuffer()
	buf.ByteLength = 360

	b, err := json.Marshal(buf)

	is.NoErr(err)
	is.Equal(string(b), `{"byteLength":360}`)
}
