package gltf

import (
	"encoding/json"
	"fmt"
	"io"
)

// Write serializes d to w as pretty printed, UTF-8 encoded glTF JSON.
//
// The output is a pure function of the document: serializing the same
// unmutated document twice produces byte identical output. The export
// channel depends on this to measure with one pass and write with the next.
//
// Write fails only when w fails or when a value violates a JSON encoding
// invariant (such as a NaN float, which the model does not produce by
// construction).
func Write(w io.Writer, d Document) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")

	if err := enc.Encode(d); err != nil {
		return fmt.Errorf("failed to encode document: %w", err)
	}

	return nil
}
