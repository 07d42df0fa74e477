package cxx

import (
	"go.trai.ch/forge/internal/core/domain"
	"go.trai.ch/forge/internal/core/ports"
	"go.trai.ch/zerr"
)

// preprocessedExtension maps a source type to the extension of its
// preprocessed form.
func preprocessedExtension(t domain.CxxSourceType) string {
	switch t {
	case domain.SourceTypeC:
		return ".i"
	case domain.SourceTypeCxx:
		return ".ii"
	default:
		return ".s"
	}
}

func missingTool(platform domain.CxxPlatform, tool string) error {
	err := domain.WithDetail(domain.ErrMissingTool, "platform", platform.Flavor.String())
	return zerr.With(err, "tool", tool)
}

// CreatePreprocessBuildRules derives one preprocess rule per input source,
// feeding it the combined preprocessor input. Rules are keyed by a flavor
// encoding the source's logical name and the pic flag, so re-derivation hits
// the resolver cache. The returned map preserves input order and references
// each rule's output.
func CreatePreprocessBuildRules(
	resolver ports.RuleResolver,
	target domain.BuildTarget,
	platform domain.CxxPlatform,
	input domain.CxxPreprocessorInput,
	pic bool,
	sources *domain.CxxSourceMap,
) (*domain.CxxSourceMap, error) {
	out := domain.NewNamedMap[domain.CxxSource]()

	// Rules producing the headers this target includes are wired in as extra
	// deps of every preprocess rule.
	var headerDeps []ports.BuildRule
	for _, t := range input.Rules {
		if rule, ok := resolver.Rule(t); ok {
			headerDeps = append(headerDeps, rule)
		}
	}

	for name, source := range sources.All() {
		tool := platform.PreprocessorFor(source.Type)
		if tool == nil {
			return nil, missingTool(platform, "preprocessor:"+string(source.Type))
		}

		ppTarget := preprocessTarget(target, name, pic)
		output := domain.GenPath(ppTarget, "%s") + preprocessedExtension(source.Type)

		flags := append([]string{}, tool.Flags...)
		flags = append(flags, input.Flags[source.Type]...)
		for _, root := range input.IncludeRoots {
			flags = append(flags, "-I"+root)
		}
		for _, root := range input.FrameworkRoots {
			flags = append(flags, "-F"+root)
		}
		for _, ph := range input.PrefixHeaders {
			flags = append(flags, "-include", ph.Resolve())
		}

		inputs := append([]domain.SourcePath{source.Path}, input.PrefixHeaders...)
		rule, err := resolver.Materialize(ppTarget, func() (ports.BuildRule, error) {
			return &PreprocessRule{
				baseRule: newBaseRule(
					ppTarget,
					rulesForInputs(resolver, inputs),
					headerDeps,
					inputs,
					output,
					append([]string{tool.Path}, flags...)...,
				),
				Tool:  *tool,
				Flags: flags,
				Input: source,
			}, nil
		})
		if err != nil {
			return nil, err
		}

		out.Put(name, domain.CxxSource{
			Type:  source.Type,
			Path:  domain.BuildTargetSourcePath{Target: rule.Target(), OutputPath: output},
			Flags: source.Flags,
		})
	}

	return out, nil
}

// CreateCompileBuildRules derives one compile rule per input source and
// returns the object file outputs, order-preserving relative to the input
// map. Downstream linking relies on that ordering for determinism.
func CreateCompileBuildRules(
	resolver ports.RuleResolver,
	target domain.BuildTarget,
	platform domain.CxxPlatform,
	compilerFlags []string,
	pic bool,
	sources *domain.CxxSourceMap,
) ([]domain.SourcePath, error) {
	var objects []domain.SourcePath

	for name, source := range sources.All() {
		tool := platform.CompilerFor(source.Type)
		if tool == nil {
			return nil, missingTool(platform, "compiler:"+string(source.Type))
		}

		cTarget := compileTarget(target, name, pic)
		output := domain.GenPath(cTarget, "%s") + "/" + name + ".o"

		flags := append([]string{}, tool.Flags...)
		flags = append(flags, compilerFlags...)
		flags = append(flags, source.Flags...)
		if pic {
			flags = append(flags, "-fPIC")
		}

		inputs := []domain.SourcePath{source.Path}
		rule, err := resolver.Materialize(cTarget, func() (ports.BuildRule, error) {
			return &CompileRule{
				baseRule: newBaseRule(
					cTarget,
					rulesForInputs(resolver, inputs),
					nil,
					inputs,
					output,
					append([]string{tool.Path}, flags...)...,
				),
				Tool:  *tool,
				Flags: flags,
				Pic:   pic,
				Input: source,
			}, nil
		})
		if err != nil {
			return nil, err
		}

		objects = append(objects, domain.BuildTargetSourcePath{
			Target:     rule.Target(),
			OutputPath: output,
		})
	}

	return objects, nil
}
