package cxx

import (
	"github.com/cespare/xxhash/v2"
	"go.trai.ch/forge/internal/core/domain"
	"go.trai.ch/forge/internal/core/ports"
)

// baseRule carries the parts every derived rule shares: identity, dependency
// sets, inputs, primary output, and a content key. Rules are immutable once
// registered with the resolver.
type baseRule struct {
	target       domain.BuildTarget
	declaredDeps []ports.BuildRule
	extraDeps    []ports.BuildRule
	inputs       []domain.SourcePath
	output       string
	ruleKey      uint64
}

func newBaseRule(
	target domain.BuildTarget,
	declaredDeps, extraDeps []ports.BuildRule,
	inputs []domain.SourcePath,
	output string,
	keyMaterial ...string,
) baseRule {
	r := baseRule{
		target:       target,
		declaredDeps: declaredDeps,
		extraDeps:    extraDeps,
		inputs:       inputs,
		output:       output,
	}
	r.ruleKey = r.computeRuleKey(keyMaterial)
	return r
}

// computeRuleKey hashes the rule's identity, inputs, dependency identities,
// output, and any rule-specific material (tool paths, flags). Two derivations
// landing on the same target key with different rule keys indicate a
// colliding name derivation.
func (r *baseRule) computeRuleKey(keyMaterial []string) uint64 {
	h := xxhash.New()
	sep := []byte{0}

	_, _ = h.WriteString(r.target.FullName())
	_, _ = h.Write(sep)
	for _, in := range r.inputs {
		_, _ = h.WriteString(in.String())
		_, _ = h.Write(sep)
	}
	_, _ = h.Write(sep)
	for _, dep := range r.declaredDeps {
		_, _ = h.WriteString(string(dep.Target().Key()))
		_, _ = h.Write(sep)
	}
	for _, dep := range r.extraDeps {
		_, _ = h.WriteString(string(dep.Target().Key()))
		_, _ = h.Write(sep)
	}
	_, _ = h.Write(sep)
	_, _ = h.WriteString(r.output)
	_, _ = h.Write(sep)
	for _, m := range keyMaterial {
		_, _ = h.WriteString(m)
		_, _ = h.Write(sep)
	}
	return h.Sum64()
}

func (r *baseRule) Target() domain.BuildTarget      { return r.target }
func (r *baseRule) DeclaredDeps() []ports.BuildRule { return r.declaredDeps }
func (r *baseRule) ExtraDeps() []ports.BuildRule    { return r.extraDeps }
func (r *baseRule) Inputs() []domain.SourcePath     { return r.inputs }
func (r *baseRule) OutputPath() string              { return r.output }
func (r *baseRule) RuleKey() uint64                 { return r.ruleKey }

// GenSourceRule runs an external tool (lex or yacc) expanding one input into
// a generated translation unit and a companion header.
type GenSourceRule struct {
	baseRule

	Tool         domain.Tool
	Flags        []string
	OutputSource string
	OutputHeader string
}

var _ ports.BuildRule = (*GenSourceRule)(nil)

// SymlinkTreeRule exposes a header map at a computed root, under both each
// entry's short logical name and, when distinct, its fully-qualified name.
// Consumers include headers by either form without per-target compiler
// special-casing.
type SymlinkTreeRule struct {
	baseRule

	Root string
	// Links maps root-relative short names to sources.
	Links map[string]domain.SourcePath
	// FullLinks maps root-relative fully-qualified names to sources.
	FullLinks map[string]domain.SourcePath
}

var _ ports.BuildRule = (*SymlinkTreeRule)(nil)

// PreprocessRule runs the platform preprocessor over one translation unit.
type PreprocessRule struct {
	baseRule

	Tool  domain.Tool
	Flags []string
	Input domain.CxxSource
}

var _ ports.BuildRule = (*PreprocessRule)(nil)

// CompileRule compiles one preprocessed translation unit into an object file.
type CompileRule struct {
	baseRule

	Tool  domain.Tool
	Flags []string
	Pic   bool
	Input domain.CxxSource
}

var _ ports.BuildRule = (*CompileRule)(nil)

// LinkType selects the kind of linked artifact.
type LinkType int

const (
	// LinkTypeExecutable produces a binary.
	LinkTypeExecutable LinkType = iota
	// LinkTypeSharedLibrary produces a shared library with a soname.
	LinkTypeSharedLibrary
)

// LinkStyle is the preferred way dependencies are linked in.
type LinkStyle int

const (
	// LinkStyleStatic prefers archives.
	LinkStyleStatic LinkStyle = iota
	// LinkStyleShared prefers shared libraries.
	LinkStyleShared
)

// LinkRule links objects into the final artifact.
type LinkRule struct {
	baseRule

	Tool   domain.Tool
	Flags  []string
	Type   LinkType
	Style  LinkStyle
	Soname string
}

var _ ports.BuildRule = (*LinkRule)(nil)

// ArchiveRule packs objects into a static archive.
type ArchiveRule struct {
	baseRule

	Tool  domain.Tool
	Flags []string
}

var _ ports.BuildRule = (*ArchiveRule)(nil)

// LibraryRule is the rule materialized for a cxx_library target. It carries
// the preprocessor input the library contributes to dependents; the actual
// linkable artifacts are separate flavored rules derived on demand.
type LibraryRule struct {
	baseRule

	exportedInput domain.CxxPreprocessorInput
}

var (
	_ ports.BuildRule          = (*LibraryRule)(nil)
	_ ports.CxxPreprocessorDep = (*LibraryRule)(nil)
)

// PreprocessorInput returns the library's locally-exported preprocessor
// input, excluding contributions of its own dependencies.
func (r *LibraryRule) PreprocessorInput(domain.CxxPlatform) (domain.CxxPreprocessorInput, error) {
	return r.exportedInput, nil
}
