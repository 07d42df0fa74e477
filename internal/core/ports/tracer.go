package ports

import "go.trai.ch/forge/internal/core/domain"

// Tracer records rule materializations for progress reporting. Rule
// derivation is in-memory and non-blocking, so implementations must be cheap.
//
//go:generate go run go.uber.org/mock/mockgen -source=tracer.go -destination=mocks/mock_tracer.go -package=mocks
type Tracer interface {
	// RecordRule records that the rule for target was materialized.
	RecordRule(target domain.BuildTarget)

	// Close flushes and closes the recording session.
	Close() error
}
