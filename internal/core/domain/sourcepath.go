package domain

import "path"

// SourcePath is a reference to build input. It is polymorphic over two
// variants: a file under version control (PathSourcePath) and the output of
// another build rule (BuildTargetSourcePath). The latter creates an edge in
// the rule DAG: it resolves to a concrete filesystem path only once the
// referenced rule has been materialized.
type SourcePath interface {
	// Resolve returns the concrete filesystem path of the input.
	Resolve() string

	// String returns a stable printed form used for identity comparison.
	String() string
}

// PathSourcePath references a repository file directly.
type PathSourcePath struct {
	FilePath string
}

// Resolve returns the repository-relative file path.
func (p PathSourcePath) Resolve() string { return p.FilePath }

// String implements fmt.Stringer.
func (p PathSourcePath) String() string { return p.FilePath }

// BuildTargetSourcePath references the output of another build rule.
type BuildTargetSourcePath struct {
	Target BuildTarget
	// OutputPath is the rule's fixed output path. Empty means the rule's
	// primary output.
	OutputPath string
}

// Resolve returns the referenced rule's output path.
func (p BuildTargetSourcePath) Resolve() string { return p.OutputPath }

// String implements fmt.Stringer.
func (p BuildTargetSourcePath) String() string {
	return p.Target.FullName() + "(" + p.OutputPath + ")"
}

// SourcePathsEqual reports whether two source paths reference the same input.
func SourcePathsEqual(a, b SourcePath) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.String() == b.String()
}

// FilterBuildRuleInputs extracts the targets of all rule-output paths in the
// given inputs. This is how the resolver derives "which rules do these inputs
// depend on" purely from constructor arguments.
func FilterBuildRuleInputs(paths ...SourcePath) []BuildTarget {
	var targets []BuildTarget
	for _, p := range paths {
		if btsp, ok := p.(BuildTargetSourcePath); ok {
			targets = append(targets, btsp.Target)
		}
	}
	return targets
}

// SourceName derives the logical name of a source path: the file's base name
// with the extension stripped. Distinct paths can derive the same name;
// classification fails fast on such collisions.
func SourceName(p SourcePath) string {
	base := path.Base(p.Resolve())
	ext := path.Ext(base)
	return base[:len(base)-len(ext)]
}
