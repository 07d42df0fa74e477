package cxx

import (
	"path"
	"regexp"
	"strings"

	"go.trai.ch/forge/internal/core/domain"
	"go.trai.ch/forge/internal/core/ports"
	"go.trai.ch/zerr"
)

// StaticLibraryTarget derives the target of a platform's static library rule.
func StaticLibraryTarget(target domain.BuildTarget, platformFlavor domain.Flavor) domain.BuildTarget {
	return target.Derive(platformFlavor, FlavorStatic)
}

// SharedLibraryTarget derives the target of a platform's shared library rule.
func SharedLibraryTarget(target domain.BuildTarget, platformFlavor domain.Flavor) domain.BuildTarget {
	return target.Derive(platformFlavor, FlavorShared)
}

// LinkTarget derives the target of an executable's link rule.
func LinkTarget(target domain.BuildTarget) domain.BuildTarget {
	return target.Derive(FlavorLinkBinary)
}

// StaticLibraryPath returns the archive output path for a target. The path
// is a pure function of the flavored target, so it is predictable without
// executing the build.
func StaticLibraryPath(target domain.BuildTarget, platformFlavor domain.Flavor) string {
	name := "lib" + target.ShortName() + ".a"
	return path.Join(domain.BinPath(StaticLibraryTarget(target, platformFlavor), "%s"), name)
}

// SharedLibraryPath returns the shared library output path for a target.
func SharedLibraryPath(target domain.BuildTarget, platform domain.CxxPlatform) string {
	name := "lib" + target.ShortName() + "." + platform.SharedLibraryExtension
	return path.Join(domain.BinPath(SharedLibraryTarget(target, platform.Flavor), "%s"), name)
}

// SharedLibrarySoname derives the soname embedded in a shared library: the
// target's base path components and short name joined by underscores.
func SharedLibrarySoname(target domain.BuildTarget, platform domain.CxxPlatform) string {
	var parts []string
	for _, p := range strings.Split(target.BasePath(), "/") {
		if p != "" {
			parts = append(parts, p)
		}
	}
	parts = append(parts, target.ShortName())
	return "lib" + strings.Join(parts, "_") + "." + platform.SharedLibraryExtension
}

// BinaryOutputPath returns the executable output path for a target.
func BinaryOutputPath(target domain.BuildTarget) string {
	return domain.BinPath(target, "%s/"+target.ShortNameAndFlavorPostfix())
}

// PlatformFlags matches platform-conditional flag rules against a platform
// name. Rules are tried in declaration order and the first matching pattern's
// flags are returned; matching stops there even if later patterns would also
// match.
func PlatformFlags(rules []PlatformFlagRule, platform string) ([]string, error) {
	for _, rule := range rules {
		re, err := regexp.Compile(rule.Pattern)
		if err != nil {
			return nil, zerr.With(zerr.Wrap(err, "invalid platform flag pattern"), "pattern", rule.Pattern)
		}
		if re.MatchString(platform) {
			return rule.Flags, nil
		}
	}
	return nil, nil
}

// newLinkedBinaryRule constructs the link rule for a target without touching
// the resolver index; callers decide how the rule gets registered.
func newLinkedBinaryRule(
	resolver ports.RuleResolver,
	target domain.BuildTarget,
	platform domain.CxxPlatform,
	extraFlags []string,
	linkType LinkType,
	style LinkStyle,
	objects []domain.SourcePath,
	deps []ports.BuildRule,
) (*LinkRule, error) {
	if platform.Ld == nil {
		return nil, missingTool(platform, "ld")
	}

	var linkTarget domain.BuildTarget
	var output, soname string
	flags := append([]string{}, platform.Ld.Flags...)

	switch linkType {
	case LinkTypeExecutable:
		linkTarget = LinkTarget(target)
		output = BinaryOutputPath(target)
	case LinkTypeSharedLibrary:
		linkTarget = SharedLibraryTarget(target, platform.Flavor)
		output = SharedLibraryPath(target, platform)
		soname = SharedLibrarySoname(target, platform)
		flags = append(flags, "-shared", "-Wl,-soname,"+soname)
	}
	flags = append(flags, extraFlags...)

	return &LinkRule{
		baseRule: newBaseRule(
			linkTarget,
			append(rulesForInputs(resolver, objects), deps...),
			nil,
			objects,
			output,
			append([]string{platform.Ld.Path, soname}, flags...)...,
		),
		Tool:   *platform.Ld,
		Flags:  flags,
		Type:   linkType,
		Style:  style,
		Soname: soname,
	}, nil
}

// CreateLinkedBinary derives the link rule producing the final artifact from
// the given objects. The rule's target is the top-level target plus a
// "binary" or "shared" flavor; output naming is platform-specific
// (executable: short name; shared library: lib<name>.<extension>).
// Re-derivation resolves to the cached rule.
func CreateLinkedBinary(
	resolver ports.RuleResolver,
	target domain.BuildTarget,
	platform domain.CxxPlatform,
	extraFlags []string,
	linkType LinkType,
	style LinkStyle,
	objects []domain.SourcePath,
	deps []ports.BuildRule,
) (*LinkRule, error) {
	if platform.Ld == nil {
		return nil, missingTool(platform, "ld")
	}

	linkTarget := LinkTarget(target)
	if linkType == LinkTypeSharedLibrary {
		linkTarget = SharedLibraryTarget(target, platform.Flavor)
	}

	rule, err := resolver.Materialize(linkTarget, func() (ports.BuildRule, error) {
		return newLinkedBinaryRule(resolver, target, platform, extraFlags, linkType, style, objects, deps)
	})
	if err != nil {
		return nil, err
	}

	link, ok := rule.(*LinkRule)
	if !ok {
		err := domain.WithDetail(domain.ErrDuplicateRule, "target", linkTarget.FullName())
		return nil, zerr.With(err, "existing", "not a link rule")
	}
	return link, nil
}

// newStaticArchiveRule constructs the archive rule for a target without
// touching the resolver index.
func newStaticArchiveRule(
	resolver ports.RuleResolver,
	target domain.BuildTarget,
	platform domain.CxxPlatform,
	objects []domain.SourcePath,
	deps []ports.BuildRule,
) (*ArchiveRule, error) {
	if platform.Ar == nil {
		return nil, missingTool(platform, "ar")
	}

	arTarget := StaticLibraryTarget(target, platform.Flavor)
	output := StaticLibraryPath(target, platform.Flavor)

	return &ArchiveRule{
		baseRule: newBaseRule(
			arTarget,
			append(rulesForInputs(resolver, objects), deps...),
			nil,
			objects,
			output,
			append([]string{platform.Ar.Path}, platform.Ar.Flags...)...,
		),
		Tool:  *platform.Ar,
		Flags: platform.Ar.Flags,
	}, nil
}

// CreateStaticArchive derives the archive rule packing objects into a static
// library (lib<name>.a) for the target. Re-derivation resolves to the cached
// rule.
func CreateStaticArchive(
	resolver ports.RuleResolver,
	target domain.BuildTarget,
	platform domain.CxxPlatform,
	objects []domain.SourcePath,
	deps []ports.BuildRule,
) (*ArchiveRule, error) {
	if platform.Ar == nil {
		return nil, missingTool(platform, "ar")
	}

	arTarget := StaticLibraryTarget(target, platform.Flavor)
	rule, err := resolver.Materialize(arTarget, func() (ports.BuildRule, error) {
		return newStaticArchiveRule(resolver, target, platform, objects, deps)
	})
	if err != nil {
		return nil, err
	}

	archive, ok := rule.(*ArchiveRule)
	if !ok {
		err := domain.WithDetail(domain.ErrDuplicateRule, "target", arTarget.FullName())
		return nil, zerr.With(err, "existing", "not an archive rule")
	}
	return archive, nil
}
