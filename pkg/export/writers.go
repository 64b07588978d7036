package export

import "errors"

// countingWriter accumulates a byte count without storing anything. It is
// the sink for the sizing pass.
type countingWriter struct {
	count int
}

func (w *countingWriter) Write(p []byte) (int, error) {
	w.count += len(p)
	return len(p), nil
}

var errBufferFull = errors.New("fixed size buffer is full")

// fixedWriter appends into a preallocated buffer and refuses to grow past
// its capacity, so any drift between the sizing pass and the writing pass
// surfaces as an error instead of a silent reallocation.
type fixedWriter struct {
	buf []byte
}

func (w *fixedWriter) Write(p []byte) (int, error) {
	if len(w.buf)+len(p) > cap(w.buf) {
		return 0, errBufferFull
	}

	w.buf = append(w.buf, p...)
	return len(p), nil
}
