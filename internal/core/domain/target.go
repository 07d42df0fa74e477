// Package domain contains the core value types for the rule-derivation engine:
// build targets, flavors, source paths, preprocessor input, and toolchains.
package domain

import (
	"slices"
	"strings"
)

// BuildTarget is the identity of a (possibly flavored) build artifact: a cell,
// a base path within the cell, a short name, and an ordered, duplicate-free
// list of flavors. Two targets are equal iff their base identity and flavor
// *set* are equal; flavor application order only affects naming.
//
// BuildTarget is immutable: Derive returns a new value and never mutates the
// receiver.
type BuildTarget struct {
	cell      string
	basePath  string
	shortName string
	flavors   []Flavor
}

// NewBuildTarget creates an unflavored target from its base identity.
func NewBuildTarget(cell, basePath, shortName string) BuildTarget {
	return BuildTarget{
		cell:      cell,
		basePath:  strings.Trim(basePath, "/"),
		shortName: shortName,
	}
}

// ParseBuildTarget parses a target of the form
// "[cell]//base/path:name[#flavor,flavor]".
func ParseBuildTarget(s string) (BuildTarget, error) {
	rest := s

	var flavors []Flavor
	if i := strings.IndexByte(rest, '#'); i >= 0 {
		for _, tag := range strings.Split(rest[i+1:], ",") {
			if tag == "" {
				return BuildTarget{}, WithDetail(ErrInvalidTarget, "target", s)
			}
			flavors = append(flavors, InternFlavor(tag))
		}
		rest = rest[:i]
	}

	sep := strings.Index(rest, "//")
	if sep < 0 {
		return BuildTarget{}, WithDetail(ErrInvalidTarget, "target", s)
	}
	cell := rest[:sep]
	rest = rest[sep+2:]

	colon := strings.LastIndexByte(rest, ':')
	if colon < 0 || rest[colon+1:] == "" {
		return BuildTarget{}, WithDetail(ErrInvalidTarget, "target", s)
	}

	t := NewBuildTarget(cell, rest[:colon], rest[colon+1:])
	return t.Derive(flavors...), nil
}

// Cell returns the cell name; empty for the root cell.
func (t BuildTarget) Cell() string { return t.cell }

// BasePath returns the slash-separated base path within the cell.
func (t BuildTarget) BasePath() string { return t.basePath }

// ShortName returns the target's short name.
func (t BuildTarget) ShortName() string { return t.shortName }

// Flavors returns the flavors in application order. The returned slice must
// not be mutated.
func (t BuildTarget) Flavors() []Flavor { return t.flavors }

// IsFlavored reports whether the target carries any flavors.
func (t BuildTarget) IsFlavored() bool { return len(t.flavors) > 0 }

// HasFlavor reports whether the target carries the given flavor.
func (t BuildTarget) HasFlavor(f Flavor) bool {
	return slices.Contains(t.flavors, f)
}

// Unflavored returns the target's base identity with all flavors stripped.
func (t BuildTarget) Unflavored() BuildTarget {
	return BuildTarget{cell: t.cell, basePath: t.basePath, shortName: t.shortName}
}

// Derive returns a new target with the given flavors appended in call order.
// Flavors already present are skipped, keeping the list duplicate-free.
func (t BuildTarget) Derive(flavors ...Flavor) BuildTarget {
	out := slices.Clone(t.flavors)
	for _, f := range flavors {
		if !slices.Contains(out, f) {
			out = append(out, f)
		}
	}
	return BuildTarget{cell: t.cell, basePath: t.basePath, shortName: t.shortName, flavors: out}
}

// baseName returns "cell//base/path:name" without any flavor postfix.
func (t BuildTarget) baseName() string {
	return t.cell + "//" + t.basePath + ":" + t.shortName
}

// FullName returns the canonical printed form of the target, with flavors in
// application order.
func (t BuildTarget) FullName() string {
	return t.baseName() + t.flavorPostfix(t.flavors)
}

// ShortNameAndFlavorPostfix returns the short name followed by the flavor
// postfix; it is the "%s" substituted into output path templates.
func (t BuildTarget) ShortNameAndFlavorPostfix() string {
	return t.shortName + t.flavorPostfix(t.flavors)
}

func (BuildTarget) flavorPostfix(flavors []Flavor) string {
	if len(flavors) == 0 {
		return ""
	}
	tags := make([]string, len(flavors))
	for i, f := range flavors {
		tags[i] = f.String()
	}
	return "#" + strings.Join(tags, ",")
}

// TargetKey is a total, stable identity key for a flavored target: base
// identity plus the flavor set in canonical (sorted) order. It is the map key
// under which the resolver memoizes rules.
type TargetKey string

// Key returns the target's canonical identity key. Targets whose flavor sets
// are equal produce the same key regardless of flavor application order.
func (t BuildTarget) Key() TargetKey {
	if len(t.flavors) == 0 {
		return TargetKey(t.baseName())
	}
	tags := make([]string, len(t.flavors))
	for i, f := range t.flavors {
		tags[i] = f.String()
	}
	slices.Sort(tags)
	return TargetKey(t.baseName() + "#" + strings.Join(tags, ","))
}

// Equal reports whether two targets share base identity and flavor set.
func (t BuildTarget) Equal(o BuildTarget) bool {
	return t.Key() == o.Key()
}

// String implements fmt.Stringer.
func (t BuildTarget) String() string { return t.FullName() }
