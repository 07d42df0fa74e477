package ports

import "go.trai.ch/forge/internal/core/domain"

// TargetGraph is the parsed, pre-materialization representation of all
// declared build targets. The engine consumes it as a lookup capability; the
// parser producing it is a collaborator.
//
//go:generate go run go.uber.org/mock/mockgen -source=target_graph.go -destination=mocks/mock_target_graph.go -package=mocks
type TargetGraph interface {
	// Lookup returns the node for an unflavored target. A missing node is an
	// internal inconsistency and fails with domain.ErrGraphLookup.
	Lookup(target domain.BuildTarget) (*TargetNode, error)
}
