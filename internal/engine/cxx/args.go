package cxx

import "go.trai.ch/forge/internal/core/domain"

// PlatformFlagRule is one (pattern, flags) pair matched against a platform's
// flavor string. The first matching pattern wins; later matches are ignored.
type PlatformFlagRule struct {
	Pattern string
	Flags   []string
}

// Arg is the constructor-argument surface shared by every cxx description.
// Source-like parameters accept either an ordered list or an explicit name
// mapping; classification resolves the union once.
type Arg struct {
	Srcs     domain.SourceList[domain.SourceWithFlags]
	Headers  domain.SourceList[domain.SourcePath]
	LexSrcs  domain.SourceList[domain.SourcePath]
	YaccSrcs domain.SourceList[domain.SourcePath]

	// HeaderNamespace overrides the namespace headers are projected under;
	// it defaults to the target's base path.
	HeaderNamespace string

	PreprocessorFlags     []string
	LangPreprocessorFlags map[domain.CxxSourceType][]string
	CompilerFlags         []string
	LexFlags              []string
	YaccFlags             []string

	PrefixHeaders        []domain.SourcePath
	FrameworkSearchPaths []string
}

// BinaryArg is the constructor-argument type of cxx_binary targets.
type BinaryArg struct {
	Arg

	LinkerFlags         []string
	PlatformLinkerFlags []PlatformFlagRule
}

// LibraryArg is the constructor-argument type of cxx_library targets.
type LibraryArg struct {
	Arg

	ExportedHeaders           domain.SourceList[domain.SourcePath]
	ExportedPreprocessorFlags []string
}
