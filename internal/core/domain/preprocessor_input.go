package domain

import "go.trai.ch/zerr"

// CxxPreprocessorInput is the accumulated, mergeable preprocessor metadata a
// target contributes to everything compiled against it: header name mappings
// (short and fully-qualified), include and framework roots, per-source-type
// preprocessor flags, and the rules that produced the mapped headers (for
// dependency wiring).
type CxxPreprocessorInput struct {
	// Rules are the targets of the rules that produce this input's headers.
	Rules []BuildTarget

	// Flags are preprocessor flags keyed by source type.
	Flags map[CxxSourceType][]string

	// Headers maps short logical header names to their sources.
	Headers map[string]SourcePath

	// FullHeaders maps fully-qualified header names to their sources.
	FullHeaders map[string]SourcePath

	// PrefixHeaders are force-included before every translation unit.
	PrefixHeaders []SourcePath

	// IncludeRoots are directories added to the include search path.
	IncludeRoots []string

	// FrameworkRoots are directories added to the framework search path.
	FrameworkRoots []string
}

// NewCxxPreprocessorInput creates an empty input value.
func NewCxxPreprocessorInput() CxxPreprocessorInput {
	return CxxPreprocessorInput{
		Flags:       make(map[CxxSourceType][]string),
		Headers:     make(map[string]SourcePath),
		FullHeaders: make(map[string]SourcePath),
	}
}

// mergeHeaderMap folds src into dst. Mapping the same logical name to two
// different sources is an error; mapping it to the same source is idempotent.
func mergeHeaderMap(dst, src map[string]SourcePath) error {
	for name, source := range src {
		existing, ok := dst[name]
		if !ok {
			dst[name] = source
			continue
		}
		if !SourcePathsEqual(existing, source) {
			err := WithDetail(ErrConflictingHeaders, "header", name)
			err = zerr.With(err, "first", existing.String())
			err = zerr.With(err, "second", source.String())
			return err
		}
	}
	return nil
}

// ConcatPreprocessorInput merges inputs left to right into one value. Header
// mappings conflict when the same logical name resolves to different sources;
// the merge fails rather than silently overwriting. Roots, rules, and prefix
// headers are concatenated with order-preserving deduplication.
func ConcatPreprocessorInput(inputs ...CxxPreprocessorInput) (CxxPreprocessorInput, error) {
	out := NewCxxPreprocessorInput()

	seenRules := make(map[TargetKey]struct{})
	seenIncludeRoots := make(map[string]struct{})
	seenFrameworkRoots := make(map[string]struct{})
	seenPrefixHeaders := make(map[string]struct{})

	for _, in := range inputs {
		if err := mergeHeaderMap(out.Headers, in.Headers); err != nil {
			return CxxPreprocessorInput{}, err
		}
		if err := mergeHeaderMap(out.FullHeaders, in.FullHeaders); err != nil {
			return CxxPreprocessorInput{}, err
		}

		for t, flags := range in.Flags {
			out.Flags[t] = append(out.Flags[t], flags...)
		}

		for _, r := range in.Rules {
			if _, ok := seenRules[r.Key()]; ok {
				continue
			}
			seenRules[r.Key()] = struct{}{}
			out.Rules = append(out.Rules, r)
		}

		for _, root := range in.IncludeRoots {
			if _, ok := seenIncludeRoots[root]; ok {
				continue
			}
			seenIncludeRoots[root] = struct{}{}
			out.IncludeRoots = append(out.IncludeRoots, root)
		}

		for _, root := range in.FrameworkRoots {
			if _, ok := seenFrameworkRoots[root]; ok {
				continue
			}
			seenFrameworkRoots[root] = struct{}{}
			out.FrameworkRoots = append(out.FrameworkRoots, root)
		}

		for _, ph := range in.PrefixHeaders {
			if _, ok := seenPrefixHeaders[ph.String()]; ok {
				continue
			}
			seenPrefixHeaders[ph.String()] = struct{}{}
			out.PrefixHeaders = append(out.PrefixHeaders, ph)
		}
	}

	return out, nil
}
