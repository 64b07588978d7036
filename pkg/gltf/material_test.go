package gltf

import (
	"encoding/json"
	"testing"

	"github.com/matryer/is"
)

func TestDefaultMaterialSerializesMetallicRoughnessOnly(t *testing.T) {
	is := is.New(t)

	b, err := json.Marshal(NewMaterial())

	is.NoErr(err)
	is.Equal(string(b), `{"pbrMetallicRoughness":{}}`)
}

func TestAlphaModeSerializesAsStringTag(t *testing.T) {
	is := is.New(t)

	m := NewMaterial()
	m.AlphaMode = AlphaModeMask

	b, err := json.Marshal(m)

	is.NoErr(err)
	is.Equal(string(b), `{"alphaMode":"MASK","pbrMetallicRoughness":{}}`)
}

func TestAlphaCutoffUsesExactEquality(t *testing.T) {
	is := is.New(t)

	m := NewMaterial()
	m.AlphaCutoff = 0.0

	b, err := json.Marshal(m)

	is.NoErr(err)
	is.Equal(string(b), `{"alphaCutoff":0,"pbrMetallicRoughness":{}}`)
}

func TestNonDefaultMaterialFields(t *testing.T) {
	is := is.New(t)

	m := NewMaterial()
	m.Name = "glow"
	m.EmissiveFactor = [3]float64{0.1, 0.2, 0.3}
	m.DoubleSided = true
	m.PbrMetallicRoughness.BaseColorFactor = Color4{R: 1.0, G: 0.5, B: 0.25, A: 1.0}
	m.PbrMetallicRoughness.MetallicFactor = 0.0

	b, err := json.Marshal(m)

	is.NoErr(err)
	is.Equal(string(b), `{"name":"glow","emissiveFactor":[0.1,0.2,0.3],"doubleSided":true,"pbrMetallicRoughness":{"baseColorFactor":[1,0.5,0.25,1],"metallicFactor":0}}`)
}

func TestColor4DefaultIsOpaqueWhite(t *testing.T) {
	is := is.New(t)

	is.True(NewColor4().IsDefault())
	is.True(!Color4{R: 1, G: 1, B: 1, A: 0.5}.IsDefault())
}
