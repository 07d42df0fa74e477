// Package telemetry provides tracer implementations for rule derivation.
package telemetry

import (
	"go.trai.ch/forge/internal/core/domain"
	"go.trai.ch/forge/internal/core/ports"
)

// NoOpTracer is a no-op implementation of ports.Tracer.
type NoOpTracer struct{}

// NewNoOpTracer creates a new NoOpTracer.
func NewNoOpTracer() *NoOpTracer {
	return &NoOpTracer{}
}

// RecordRule does nothing.
func (t *NoOpTracer) RecordRule(_ domain.BuildTarget) {}

// Close does nothing.
func (t *NoOpTracer) Close() error { return nil }

var _ ports.Tracer = (*NoOpTracer)(nil)
