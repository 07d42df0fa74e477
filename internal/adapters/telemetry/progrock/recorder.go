// Package progrock provides the progrock implementation of the tracer
// adapter.
package progrock

import (
	"sync"

	"github.com/opencontainers/go-digest"
	"github.com/vito/progrock"
	"go.trai.ch/forge/internal/core/domain"
	"go.trai.ch/forge/internal/core/ports"
)

// Recorder implements ports.Tracer using the progrock vertex recorder. Each
// materialized rule becomes one completed vertex keyed by the target's full
// name, so repeated derivations of the same flavored target collapse to a
// single vertex on the tape.
type Recorder struct {
	w   progrock.Writer
	rec *progrock.Recorder

	mu sync.Mutex
}

// New creates a new Recorder with a default tape.
func New() ports.Tracer {
	tape := progrock.NewTape()
	return NewRecorder(tape)
}

// NewRecorder creates a new Recorder with the given writer.
func NewRecorder(w progrock.Writer) *Recorder {
	rec := progrock.NewRecorder(w)
	return &Recorder{
		w:   w,
		rec: rec,
	}
}

// RecordRule records one materialized rule as a completed vertex.
func (r *Recorder) RecordRule(target domain.BuildTarget) {
	name := target.FullName()
	d := digest.FromString(name)

	r.mu.Lock()
	defer r.mu.Unlock()
	v := r.rec.Vertex(d, name)
	v.Done(nil)
}

// Close flushes and closes the recording session.
func (r *Recorder) Close() error {
	if c, ok := r.w.(interface{ Close() error }); ok {
		return c.Close()
	}
	return nil
}
