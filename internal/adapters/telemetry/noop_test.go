package telemetry_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/forge/internal/adapters/telemetry"
	"go.trai.ch/forge/internal/core/domain"
	"go.trai.ch/forge/internal/core/ports"
)

func TestInterfaceSatisfaction(_ *testing.T) {
	var _ ports.Tracer = (*telemetry.NoOpTracer)(nil)
}

func TestNoOpTracer(t *testing.T) {
	tracer := telemetry.NewNoOpTracer()
	assert.NotNil(t, tracer)

	tracer.RecordRule(domain.NewBuildTarget("", "app", "main"))
	assert.NoError(t, tracer.Close())
}
