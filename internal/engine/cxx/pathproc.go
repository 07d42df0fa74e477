package cxx

import "regexp"

var (
	// includeTracePattern matches paths in "In file included from <path>:4:"
	// trace lines and their "        from <path>:2:" continuations.
	includeTracePattern = regexp.MustCompile(`^((?:In file included |\s+)from )([^:]+)([:,](?:\d+[:,](?:\d+[:,])?)?)$`)

	// diagnosticPattern matches the "<path>:line:col: " prefix of compiler
	// diagnostics.
	diagnosticPattern = regexp.MustCompile(`^([^:]+)(:(?:\d+:(?:\d+:)?)? )`)
)

// ErrorMessagePathProcessor returns a line transformer rewriting the paths
// embedded in preprocessor/compiler diagnostics with pathProcessor, typically
// a platform's debug-path sanitizer. Lines without a recognizable path pass
// through unchanged.
func ErrorMessagePathProcessor(pathProcessor func(string) string) func(string) string {
	return func(line string) string {
		if m := includeTracePattern.FindStringSubmatch(line); m != nil {
			return m[1] + pathProcessor(m[2]) + m[3]
		}
		if m := diagnosticPattern.FindStringSubmatch(line); m != nil {
			return pathProcessor(m[1]) + m[2] + line[len(m[0]):]
		}
		return line
	}
}
