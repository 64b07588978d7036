package export

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"unsafe"

	"github.com/Densaugeo/paragen/pkg/gltf"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
)

// Channel is a single slot mailbox holding the most recent successful
// export. Exactly one export may be in flight at a time; a concurrent
// attempt fails with Mutex instead of being serialized behind the first.
type Channel struct {
	mu  sync.Mutex
	buf []byte
}

func NewChannel() *Channel {
	return &Channel{}
}

// Export serializes doc and publishes the resulting buffer. The document
// must not be mutated while Export runs; the sizing pass and the writing
// pass must observe identical bytes.
//
// On failure the register is left at its last successful value.
func (c *Channel) Export(ctx context.Context, doc gltf.Document) ErrorCode {
	if !c.mu.TryLock() {
		return Mutex
	}
	defer c.mu.Unlock()

	log := logging.GetFromContext(ctx)

	buf, err := render(doc)
	if err != nil {
		log.Error("failed to generate scene document", "err", err.Error())
		return Generation
	}

	c.buf = buf
	log.Debug("exported scene document", slog.Int("bytes", len(buf)))

	return None
}

// render measures the serialized size with a counting pass, then writes a
// second pass into a buffer of exactly that capacity. No growth headroom is
// ever allocated and nothing is truncated afterwards, so the published
// buffer's capacity always equals its length.
func render(doc gltf.Document) (buf []byte, err error) {
	// the model keeps values encodable by construction, but an internal
	// fault must surface as a Generation error at the boundary, not as a
	// panic
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("document serialization panicked: %v", r)
		}
	}()

	cw := &countingWriter{}
	if err := gltf.Write(cw, doc); err != nil {
		return nil, fmt.Errorf("sizing pass failed: %w", err)
	}

	fw := &fixedWriter{buf: make([]byte, 0, cw.count)}
	if err := gltf.Write(fw, doc); err != nil {
		return nil, fmt.Errorf("writing pass failed: %w", err)
	}

	if len(fw.buf) != cap(fw.buf) {
		return nil, fmt.Errorf("pass drift: sized %d bytes but wrote %d", cap(fw.buf), len(fw.buf))
	}

	return fw.buf, nil
}

// Pointer returns the memory location of the held buffer, or 0 if no export
// has succeeded yet. The buffer stays referenced by the channel, so the
// location remains valid until the next successful export replaces it.
func (c *Channel) Pointer() uintptr {
	c.mu.Lock()
	defer c.mu.Unlock()

	if len(c.buf) == 0 {
		return 0
	}

	return uintptr(unsafe.Pointer(&c.buf[0]))
}

// Size returns the byte length of the held buffer, or 0 if no export has
// succeeded yet.
func (c *Channel) Size() uint32 {
	c.mu.Lock()
	defer c.mu.Unlock()

	return uint32(len(c.buf))
}

// Bytes returns the held buffer for callers on the Go side of the boundary.
// The buffer is owned by the channel and must be treated as read only.
func (c *Channel) Bytes() []byte {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.buf
}
