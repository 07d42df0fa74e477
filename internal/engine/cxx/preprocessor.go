package cxx

import (
	"go.trai.ch/forge/internal/core/domain"
	"go.trai.ch/forge/internal/core/ports"
	"go.trai.ch/zerr"
)

// PreprocessorFlagsFromArgs combines generic preprocessor flags (applied to
// every source type) with per-language extras.
func PreprocessorFlagsFromArgs(
	flags []string,
	langFlags map[domain.CxxSourceType][]string,
) map[domain.CxxSourceType][]string {
	out := make(map[domain.CxxSourceType][]string)
	for _, t := range []domain.CxxSourceType{domain.SourceTypeC, domain.SourceTypeCxx, domain.SourceTypeAssembler} {
		combined := append([]string{}, flags...)
		combined = append(combined, langFlags[t]...)
		if len(combined) > 0 {
			out[t] = combined
		}
	}
	return out
}

// collectTransitivePreprocessorInput walks the structural dependency graph,
// gathering preprocessor input from every rule exposing the capability. A
// target reached through multiple paths contributes exactly once.
func collectTransitivePreprocessorInput(
	platform domain.CxxPlatform,
	deps []ports.BuildRule,
) ([]domain.CxxPreprocessorInput, error) {
	var inputs []domain.CxxPreprocessorInput
	seen := make(map[domain.TargetKey]struct{})

	var visit func(rules []ports.BuildRule) error
	visit = func(rules []ports.BuildRule) error {
		for _, rule := range rules {
			key := rule.Target().Key()
			if _, ok := seen[key]; ok {
				continue
			}
			seen[key] = struct{}{}

			if dep, ok := rule.(ports.CxxPreprocessorDep); ok {
				input, err := dep.PreprocessorInput(platform)
				if err != nil {
					return err
				}
				inputs = append(inputs, input)
			}

			if err := visit(rule.DeclaredDeps()); err != nil {
				return err
			}
		}
		return nil
	}

	if err := visit(deps); err != nil {
		return nil, err
	}
	return inputs, nil
}

// CombinePreprocessorInput builds the target's local preprocessor input from
// its exposure trees, prefix headers, and flags, then concatenates it with
// the transitively collected input of its structural dependencies, local
// first. Any logical header name resolving to two different sources anywhere
// in the combined set fails with domain.ErrConflictingHeaders attributed to
// the requesting target.
func CombinePreprocessorInput(
	params ports.BuildRuleParams,
	platform domain.CxxPlatform,
	preprocessorFlags map[domain.CxxSourceType][]string,
	prefixHeaders []domain.SourcePath,
	trees []*SymlinkTreeRule,
	frameworkRoots []string,
) (domain.CxxPreprocessorInput, error) {
	transitive, err := collectTransitivePreprocessorInput(platform, params.DeclaredDeps)
	if err != nil {
		return domain.CxxPreprocessorInput{}, domain.WithDetail(err, "requested_by", params.Target.FullName())
	}

	local := domain.NewCxxPreprocessorInput()
	local.PrefixHeaders = prefixHeaders
	local.FrameworkRoots = frameworkRoots
	for t, flags := range preprocessorFlags {
		local.Flags[t] = flags
	}
	for _, tree := range trees {
		local.Rules = append(local.Rules, tree.Target())
		local.IncludeRoots = append(local.IncludeRoots, tree.Root)
		if err := mergeTreeLinks(local.Headers, tree.Links); err != nil {
			return domain.CxxPreprocessorInput{}, domain.WithDetail(err, "requested_by", params.Target.FullName())
		}
		if err := mergeTreeLinks(local.FullHeaders, tree.FullLinks); err != nil {
			return domain.CxxPreprocessorInput{}, domain.WithDetail(err, "requested_by", params.Target.FullName())
		}
	}

	combined, err := domain.ConcatPreprocessorInput(append([]domain.CxxPreprocessorInput{local}, transitive...)...)
	if err != nil {
		return domain.CxxPreprocessorInput{}, domain.WithDetail(err, "requested_by", params.Target.FullName())
	}
	return combined, nil
}

func mergeTreeLinks(dst, src map[string]domain.SourcePath) error {
	for name, source := range src {
		if existing, ok := dst[name]; ok && !domain.SourcePathsEqual(existing, source) {
			err := domain.WithDetail(domain.ErrConflictingHeaders, "header", name)
			err = zerr.With(err, "first", existing.String())
			return zerr.With(err, "second", source.String())
		}
		dst[name] = source
	}
	return nil
}
