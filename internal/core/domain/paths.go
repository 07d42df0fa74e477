package domain

import (
	"fmt"
	"path"
)

// Output path derivation. A flavored target maps to exactly one location
// under the output root; the mapping is a pure function of the target and a
// path template, so artifact paths are predictable without executing rules.

// OutputRoot is the directory all derived artifacts live under.
const OutputRoot = "forge-out"

// GenPath returns the generated-file path for a target. The template's "%s"
// is substituted with the target's short name and flavor postfix.
func GenPath(t BuildTarget, template string) string {
	return path.Join(OutputRoot, "gen", t.BasePath(), fmt.Sprintf(template, t.ShortNameAndFlavorPostfix()))
}

// BinPath returns the binary output path for a target. The template's "%s" is
// substituted with the target's short name and flavor postfix.
func BinPath(t BuildTarget, template string) string {
	return path.Join(OutputRoot, "bin", t.BasePath(), fmt.Sprintf(template, t.ShortNameAndFlavorPostfix()))
}
