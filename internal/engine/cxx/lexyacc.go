package cxx

import (
	"strings"

	"go.trai.ch/forge/internal/core/domain"
	"go.trai.ch/forge/internal/core/ports"
	"go.trai.ch/zerr"
)

// HeaderSourceSpec is the bookkeeping result of the generated-source
// pipeline: headers and translation units produced by tool-expansion rules,
// ready to be folded into the target's own header and source tables.
type HeaderSourceSpec struct {
	Headers domain.HeaderMap
	Sources *domain.CxxSourceMap
}

// rulesForInputs maps rule-output source paths back to their already
// registered rules. Every step registers its rules before they are
// referenced, so inputs of pipeline-internal rules resolve here.
func rulesForInputs(resolver ports.RuleResolver, inputs []domain.SourcePath) []ports.BuildRule {
	var deps []ports.BuildRule
	for _, t := range domain.FilterBuildRuleInputs(inputs...) {
		if rule, ok := resolver.Rule(t); ok {
			deps = append(deps, rule)
		}
	}
	return deps
}

// CreateLexYaccBuildRules constructs one tool-expansion rule per lex/yacc
// input of the target. Each rule takes the single declared source as its sole
// file input and declares fixed outputs for the generated translation unit
// and companion header. Generated units are folded into the compilable-source
// map; generated headers are placed under the owning target's base path so
// dependents discover them under the target's namespace.
func CreateLexYaccBuildRules(
	params ports.BuildRuleParams,
	resolver ports.RuleResolver,
	platform domain.CxxPlatform,
	lexFlags []string,
	lexSrcs *domain.SourceMap,
	yaccFlags []string,
	yaccSrcs *domain.SourceMap,
) (HeaderSourceSpec, error) {
	spec := HeaderSourceSpec{
		Headers: domain.NewHeaderMap(),
		Sources: domain.NewNamedMap[domain.CxxSource](),
	}

	if lexSrcs.Len() > 0 && platform.Lex == nil {
		return spec, unsupportedInputs(platform, "lex", lexSrcs)
	}
	if yaccSrcs.Len() > 0 && platform.Yacc == nil {
		return spec, unsupportedInputs(platform, "yacc", yaccSrcs)
	}

	for name, source := range lexSrcs.All() {
		target := LexTarget(params.Target, name)
		outputSource := domain.GenPath(target, "%s/"+name+".cc")
		outputHeader := domain.GenPath(target, "%s/"+name+".h")

		flags := append(append([]string{}, platform.LexFlags...), lexFlags...)
		if err := addGenSourceRule(resolver, &spec, params.Target, target, *platform.Lex, flags, name, source, outputSource, outputHeader); err != nil {
			return spec, err
		}
	}

	for name, source := range yaccSrcs.All() {
		target := YaccTarget(params.Target, name)
		outputSource := domain.GenPath(target, "%s/"+name+".cc")
		outputHeader := domain.GenPath(target, "%s/"+name+".h")

		flags := append(append([]string{}, platform.YaccFlags...), yaccFlags...)
		if err := addGenSourceRule(resolver, &spec, params.Target, target, *platform.Yacc, flags, name, source, outputSource, outputHeader); err != nil {
			return spec, err
		}
	}

	return spec, nil
}

func addGenSourceRule(
	resolver ports.RuleResolver,
	spec *HeaderSourceSpec,
	owner, target domain.BuildTarget,
	tool domain.Tool,
	flags []string,
	name string,
	source domain.SourcePath,
	outputSource, outputHeader string,
) error {
	inputs := []domain.SourcePath{source}
	rule := &GenSourceRule{
		baseRule: newBaseRule(
			target,
			rulesForInputs(resolver, inputs),
			nil,
			inputs,
			outputSource,
			append([]string{tool.Path, outputHeader}, flags...)...,
		),
		Tool:         tool,
		Flags:        flags,
		OutputSource: outputSource,
		OutputHeader: outputHeader,
	}
	if err := resolver.AddToIndex(rule); err != nil {
		return err
	}

	spec.Sources.Put(name, domain.CxxSource{
		Type: domain.SourceTypeCxx,
		Path: domain.BuildTargetSourcePath{Target: target, OutputPath: outputSource},
	})
	// Generated headers live under the owning target's namespace, not the
	// derived rule's.
	spec.Headers.Add(owner.BasePath(), name+".h", domain.BuildTargetSourcePath{
		Target:     target,
		OutputPath: outputHeader,
	})
	return nil
}

func unsupportedInputs(platform domain.CxxPlatform, kind string, srcs *domain.SourceMap) error {
	err := domain.WithDetail(domain.ErrUnsupportedPlatform, "platform", platform.Flavor.String())
	err = zerr.With(err, "tool", kind)
	return zerr.With(err, "inputs", strings.Join(srcs.Names(), ", "))
}
