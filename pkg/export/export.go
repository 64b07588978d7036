// Package export serializes scene documents into exactly sized byte buffers
// and publishes the result through a single shared register. The register
// mirrors the pointer/size contract used when results have to cross a
// foreign call boundary that cannot pass complex values: the caller runs an
// export, then reads the buffer's location and length through two scalar
// accessors.
package export

import (
	"context"
	"fmt"

	"github.com/Densaugeo/paragen/pkg/gltf"
)

// ErrorCode is the result of an export attempt, narrow enough to be
// returned across a foreign call boundary.
type ErrorCode int32

const (
	// None means the export succeeded and the register was updated.
	None ErrorCode = iota
	// Mutex means the shared register was unavailable because another
	// export was in flight. The attempt is aborted, never queued.
	Mutex
	// Generation means the serialization engine failed to produce output.
	// The register keeps its last successful value.
	Generation
)

func (e ErrorCode) String() string {
	switch e {
	case None:
		return "none"
	case Mutex:
		return "mutex"
	case Generation:
		return "generation"
	}

	return fmt.Sprintf("unknown error code %d", int32(e))
}

var defaultChannel = NewChannel()

// Export serializes doc through the process wide export channel.
func Export(ctx context.Context, doc gltf.Document) ErrorCode {
	return defaultChannel.Export(ctx, doc)
}

// Pointer returns the memory location of the most recently exported buffer,
// or 0 if no export has succeeded yet.
func Pointer() uintptr {
	return defaultChannel.Pointer()
}

// Size returns the byte length of the most recently exported buffer, or 0
// if no export has succeeded yet.
func Size() uint32 {
	return defaultChannel.Size()
}
