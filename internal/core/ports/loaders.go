package ports

import "go.trai.ch/forge/internal/core/domain"

// BuildFileLoader parses a declarative build description into a target graph.
// The platform is bound into the produced descriptions.
//
//go:generate go run go.uber.org/mock/mockgen -source=loaders.go -destination=mocks/mock_loaders.go -package=mocks
type BuildFileLoader interface {
	// Load reads the build file from the given working directory.
	Load(cwd string, platform domain.CxxPlatform) (TargetGraph, error)
}

// PlatformLoader produces resolved toolchain descriptors. The engine never
// searches the filesystem for tools itself.
type PlatformLoader interface {
	// Load returns the configured platform catalog.
	Load(cwd string) (domain.PlatformCatalog, error)
}
