package gltf

// Scene names an ordered list of root node indices.
type Scene struct {
	Name  string   `json:"name,omitempty"`
	Nodes []uint32 `json:"nodes,omitempty"`
}

func NewScene() Scene {
	return Scene{}
}
