package domain

import "go.trai.ch/zerr"

var (
	// ErrInvalidTarget is returned when a target string cannot be parsed.
	ErrInvalidTarget = zerr.New("invalid build target")

	// ErrGraphLookup is returned when a required target has no node in the
	// target graph. This indicates an internal inconsistency, not user error.
	ErrGraphLookup = zerr.New("target not in target graph")

	// ErrDuplicateRule is returned when a derivation attempts to register a
	// target key that is already taken by a rule with different content.
	ErrDuplicateRule = zerr.New("duplicate build rule")

	// ErrConflictingHeaders is returned when two contributing sources disagree
	// on what a shared logical header name means.
	ErrConflictingHeaders = zerr.New("conflicting header mappings")

	// ErrUnsupportedPlatform is returned when the selected toolchain lacks a
	// tool required by the declared inputs.
	ErrUnsupportedPlatform = zerr.New("platform does not support input kind")

	// ErrMissingTool is returned when the selected toolchain declares no tool
	// for a required pipeline stage.
	ErrMissingTool = zerr.New("platform missing required tool")

	// ErrDuplicateSourceName is returned when two source-list entries derive
	// the same logical name.
	ErrDuplicateSourceName = zerr.New("duplicate derived source name")

	// ErrUnknownSourceType is returned when a source's type cannot be
	// classified from its extension.
	ErrUnknownSourceType = zerr.New("unknown source type")

	// ErrNoTargetsRequested is returned when a build request names no targets.
	ErrNoTargetsRequested = zerr.New("no targets requested")
)

// WithDetail attaches a key-value pair to err while keeping err itself in the
// unwrap chain. zerr.With on a sentinel returns a detached copy whose Unwrap
// is nil; wrapping first keeps errors.Is classification working. Further
// annotations on the result may use zerr.With directly, since copies of a
// wrapper retain its cause.
func WithDetail(err error, key string, value any) error {
	return zerr.With(zerr.Wrap(err, ""), key, value)
}
