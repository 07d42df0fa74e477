// Package cxx implements the derivation pipeline for C/C++-family targets:
// source classification, generated-source rules, header exposure trees,
// transitive preprocessor input merging, and the preprocess/compile/link
// stages.
package cxx

import "go.trai.ch/forge/internal/core/domain"

// Flavors addressing the derived rules of a target.
var (
	// FlavorHeaderSymlinkTree tags the private header exposure tree.
	FlavorHeaderSymlinkTree = domain.InternFlavor("header-symlink-tree")

	// FlavorExportedHeaderSymlinkTree tags the public header exposure tree.
	FlavorExportedHeaderSymlinkTree = domain.InternFlavor("exported-header-symlink-tree")

	// FlavorStatic tags the static library link rule.
	FlavorStatic = domain.InternFlavor("static")

	// FlavorShared tags the shared library link rule.
	FlavorShared = domain.InternFlavor("shared")

	// FlavorLinkBinary tags the executable link rule.
	FlavorLinkBinary = domain.InternFlavor("binary")
)

// HeaderVisibility selects which exposure tree a header map feeds.
type HeaderVisibility int

const (
	// HeaderVisibilityPublic exposes headers to dependents.
	HeaderVisibilityPublic HeaderVisibility = iota
	// HeaderVisibilityPrivate exposes headers to the owning target only.
	HeaderVisibilityPrivate
)

// SymlinkTreeFlavor returns the exposure tree flavor for a visibility.
func SymlinkTreeFlavor(visibility HeaderVisibility) domain.Flavor {
	if visibility == HeaderVisibilityPublic {
		return FlavorExportedHeaderSymlinkTree
	}
	return FlavorHeaderSymlinkTree
}

// LexTarget derives the target of the lex rule generating sources for the
// named input of base.
func LexTarget(base domain.BuildTarget, name string) domain.BuildTarget {
	return base.Unflavored().Derive(domain.SanitizeFlavorName("lex-" + name))
}

// YaccTarget derives the target of the yacc rule generating sources for the
// named input of base.
func YaccTarget(base domain.BuildTarget, name string) domain.BuildTarget {
	return base.Unflavored().Derive(domain.SanitizeFlavorName("yacc-" + name))
}

// preprocessTarget derives the target of the preprocess rule for one source.
func preprocessTarget(base domain.BuildTarget, name string, pic bool) domain.BuildTarget {
	tag := "preprocess-"
	if pic {
		tag += "pic-"
	}
	return base.Derive(domain.SanitizeFlavorName(tag + name))
}

// compileTarget derives the target of the compile rule for one source.
func compileTarget(base domain.BuildTarget, name string, pic bool) domain.BuildTarget {
	tag := "compile-"
	if pic {
		tag += "pic-"
	}
	return base.Derive(domain.SanitizeFlavorName(tag + name))
}
