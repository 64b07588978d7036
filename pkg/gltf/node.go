package gltf

import "encoding/json"

// Translation is a position offset in scene units. The default is the origin.
type Translation struct {
	X, Y, Z float64
}

func NewTranslation() Translation {
	return Translation{}
}

func (t Translation) IsDefault() bool {
	return t == NewTranslation()
}

func (t Translation) MarshalJSON() ([]byte, error) {
	return json.Marshal([3]float64{t.X, t.Y, t.Z})
}

// Rotation is a unit quaternion. The default is the identity rotation.
type Rotation struct {
	X, Y, Z, W float64
}

func NewRotation() Rotation {
	return Rotation{W: 1.0}
}

func (r Rotation) IsDefault() bool {
	return r == NewRotation()
}

func (r Rotation) MarshalJSON() ([]byte, error) {
	return json.Marshal([4]float64{r.X, r.Y, r.Z, r.W})
}

// Scale is a per axis scale factor. The default is no scaling.
type Scale struct {
	X, Y, Z float64
}

func NewScale() Scale {
	return Scale{X: 1.0, Y: 1.0, Z: 1.0}
}

func (s Scale) IsDefault() bool {
	return s == NewScale()
}

func (s Scale) MarshalJSON() ([]byte, error) {
	return json.Marshal([3]float64{s.X, s.Y, s.Z})
}

// Node places an optional mesh in the scene graph with a TRS transform and
// an ordered list of child node indices.
type Node struct {
	Name        string
	Mesh        *uint32
	Translation Translation
	Rotation    Rotation
	Scale       Scale
	Children    []uint32
}

func NewNode() Node {
	return Node{
		Translation: NewTranslation(),
		Rotation:    NewRotation(),
		Scale:       NewScale(),
	}
}

func (n Node) MarshalJSON() ([]byte, error) {
	out := struct {
		Name        string       `json:"name,omitempty"`
		Mesh        *uint32      `json:"mesh,omitempty"`
		Translation *Translation `json:"translation,omitempty"`
		Rotation    *Rotation    `json:"rotation,omitempty"`
		Scale       *Scale       `json:"scale,omitempty"`
		Children    []uint32     `json:"children,omitempty"`
	}{
		Name:     n.Name,
		Mesh:     n.Mesh,
		Children: n.Children,
	}

	// the transform components are compared as whole aggregates, with exact
	// float equality, never component by component
	if !n.Translation.IsDefault() {
		out.Translation = &n.Translation
	}

	if !n.Rotation.IsDefault() {
		out.Rotation = &n.Rotation
	}

	if !n.Scale.IsDefault() {
		out.Scale = &n.Scale
	}

	return json.Marshal(&out)
}
