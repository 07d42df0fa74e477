package cxx

import (
	"sort"

	"go.trai.ch/forge/internal/core/domain"
	"go.trai.ch/forge/internal/core/ports"
	"go.trai.ch/zerr"
)

// SymlinkTreeTarget derives the target addressing a header exposure tree.
func SymlinkTreeTarget(
	target domain.BuildTarget,
	platformFlavor domain.Flavor,
	visibility HeaderVisibility,
) domain.BuildTarget {
	return target.Unflavored().Derive(platformFlavor, SymlinkTreeFlavor(visibility))
}

// SymlinkTreeRoot returns the root path the exposure tree materializes under.
func SymlinkTreeRoot(
	target domain.BuildTarget,
	platformFlavor domain.Flavor,
	visibility HeaderVisibility,
) string {
	return domain.GenPath(SymlinkTreeTarget(target, platformFlavor, visibility), "%s")
}

// CreateHeaderSymlinkTree materializes the exposure tree projecting the given
// header map for a target. Every entry is exposed under its short logical
// name and, when distinct, its fully-qualified name, so consumers can include
// by either form. Re-deriving with an identical header map and visibility
// resolves to the cached rule.
func CreateHeaderSymlinkTree(
	resolver ports.RuleResolver,
	target domain.BuildTarget,
	platformFlavor domain.Flavor,
	visibility HeaderVisibility,
	headers domain.HeaderMap,
) (*SymlinkTreeRule, error) {
	treeTarget := SymlinkTreeTarget(target, platformFlavor, visibility)
	root := SymlinkTreeRoot(target, platformFlavor, visibility)

	rule, err := resolver.Materialize(treeTarget, func() (ports.BuildRule, error) {
		links := make(map[string]domain.SourcePath, headers.Len())
		fullLinks := make(map[string]domain.SourcePath, headers.Len())
		inputs := make([]domain.SourcePath, 0, headers.Len())
		keyMaterial := []string{root}

		for _, e := range headers.Entries() {
			if existing, ok := links[e.Name]; ok && !domain.SourcePathsEqual(existing, e.Source) {
				err := domain.WithDetail(domain.ErrConflictingHeaders, "header", e.Name)
				err = zerr.With(err, "first", existing.String())
				err = zerr.With(err, "second", e.Source.String())
				return nil, err
			}
			links[e.Name] = e.Source
			if e.FullName != e.Name {
				fullLinks[e.FullName] = e.Source
			}
			inputs = append(inputs, e.Source)
			keyMaterial = append(keyMaterial, e.Name, e.FullName, e.Source.String())
		}
		sort.Strings(keyMaterial[1:])

		return &SymlinkTreeRule{
			baseRule: newBaseRule(
				treeTarget,
				rulesForInputs(resolver, inputs),
				nil,
				inputs,
				root,
				keyMaterial...,
			),
			Root:      root,
			Links:     links,
			FullLinks: fullLinks,
		}, nil
	})
	if err != nil {
		return nil, err
	}

	tree, ok := rule.(*SymlinkTreeRule)
	if !ok {
		err := domain.WithDetail(domain.ErrDuplicateRule, "target", treeTarget.FullName())
		return nil, zerr.With(err, "existing", "not a symlink tree rule")
	}
	return tree, nil
}
