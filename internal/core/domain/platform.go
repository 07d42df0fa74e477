package domain

// Tool is a resolved toolchain executable with its default flags. Toolchain
// resolution happens outside the engine; a Tool is consumed as an opaque
// handle.
type Tool struct {
	Path  string
	Flags []string
}

// DebugPathSanitizer is the policy for rewriting absolute paths embedded in
// compiler debug info and diagnostics.
type DebugPathSanitizer struct {
	// SearchPrefix is the path prefix to rewrite, typically the repo root.
	SearchPrefix string
	// Replacement is substituted for SearchPrefix.
	Replacement string
}

// Apply rewrites a single path according to the policy.
func (s DebugPathSanitizer) Apply(p string) string {
	if s.SearchPrefix == "" || len(p) < len(s.SearchPrefix) || p[:len(s.SearchPrefix)] != s.SearchPrefix {
		return p
	}
	return s.Replacement + p[len(s.SearchPrefix):]
}

// CxxPlatform is an externally-resolved toolchain descriptor. It is read-only
// configuration injected into every pipeline stage; the engine never searches
// the filesystem for tools itself. Optional tools are nil when the platform
// does not provide them.
type CxxPlatform struct {
	Flavor Flavor

	As    *Tool // assembler
	Aspp  *Tool // assembler preprocessor
	Cc    *Tool // C compiler
	Cpp   *Tool // C preprocessor
	Cxx   *Tool // C++ compiler
	Cxxpp *Tool // C++ preprocessor
	Ld    *Tool // linker
	Ar    *Tool // archiver

	Lex       *Tool
	LexFlags  []string
	Yacc      *Tool
	YaccFlags []string

	// SharedLibraryExtension is the platform's shared library suffix, without
	// the leading dot (e.g. "so", "dylib").
	SharedLibraryExtension string

	PathSanitizer DebugPathSanitizer
}

// PlatformCatalog is the set of configured platforms plus the flavor selected
// when a request names none.
type PlatformCatalog struct {
	Default   Flavor
	Platforms map[Flavor]CxxPlatform
}

// For returns the platform for the given flavor, falling back to the catalog
// default when the flavor is zero.
func (c PlatformCatalog) For(flavor Flavor) (CxxPlatform, error) {
	if flavor.IsZero() {
		flavor = c.Default
	}
	p, ok := c.Platforms[flavor]
	if !ok {
		return CxxPlatform{}, WithDetail(ErrUnsupportedPlatform, "platform", flavor.String())
	}
	return p, nil
}

// CompilerFor returns the compiler for a source type, or nil when the
// platform declares none.
func (p CxxPlatform) CompilerFor(t CxxSourceType) *Tool {
	switch t {
	case SourceTypeC:
		return p.Cc
	case SourceTypeCxx:
		return p.Cxx
	case SourceTypeAssembler:
		return p.As
	}
	return nil
}

// PreprocessorFor returns the preprocessor for a source type, or nil when the
// platform declares none.
func (p CxxPlatform) PreprocessorFor(t CxxSourceType) *Tool {
	switch t {
	case SourceTypeC:
		return p.Cpp
	case SourceTypeCxx:
		return p.Cxxpp
	case SourceTypeAssembler:
		return p.Aspp
	}
	return nil
}
