// Package config provides the YAML build-file loader for forge.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"go.trai.ch/forge/internal/core/domain"
	"go.trai.ch/forge/internal/core/ports"
	"go.trai.ch/forge/internal/engine/cxx"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// DefaultFilename is the build file looked up in the working directory.
const DefaultFilename = "forge.yaml"

var (
	errUnknownTargetType = zerr.New("unknown target type")
	errMissingDependency = zerr.New("dependency not declared in build file")
)

// Loader implements ports.BuildFileLoader using a YAML file.
type Loader struct {
	Filename string

	log ports.Logger
}

// NewLoader creates a Loader reading DefaultFilename.
func NewLoader(log ports.Logger) *Loader {
	return &Loader{Filename: DefaultFilename, log: log}
}

// Load reads the build file from the given working directory.
func (l *Loader) Load(cwd string, platform domain.CxxPlatform) (ports.TargetGraph, error) {
	path := filepath.Join(cwd, l.Filename)
	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	if err != nil {
		return nil, zerr.Wrap(err, "failed to read build file")
	}

	graph, err := Parse(data, platform)
	if err != nil {
		return nil, zerr.With(err, "build_file", path)
	}
	l.log.Info(fmt.Sprintf("loaded %d targets from %s", len(graph.nodes), path))
	return graph, nil
}

// Graph is the in-memory target graph parsed from one build file.
type Graph struct {
	nodes map[domain.TargetKey]*ports.TargetNode
}

// Lookup implements ports.TargetGraph.
func (g *Graph) Lookup(target domain.BuildTarget) (*ports.TargetNode, error) {
	node, ok := g.nodes[target.Unflavored().Key()]
	if !ok {
		return nil, domain.WithDetail(domain.ErrGraphLookup, "target", target.FullName())
	}
	return node, nil
}

// Parse builds a target graph from raw build-file bytes. The platform is
// bound into every description so flavored requests derive against a single
// toolchain.
func Parse(data []byte, platform domain.CxxPlatform) (*Graph, error) {
	var file Forgefile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, zerr.Wrap(err, "failed to parse build file")
	}

	// First pass: parse every declared name so dependency references can be
	// verified against the complete set.
	declared := make(map[domain.TargetKey]domain.BuildTarget, len(file.Targets))
	names := make([]string, 0, len(file.Targets))
	for name := range file.Targets {
		names = append(names, name)
	}
	sort.Strings(names)
	targets := make(map[string]domain.BuildTarget, len(names))
	for _, name := range names {
		target, err := domain.ParseBuildTarget(name)
		if err != nil {
			return nil, err
		}
		if target.IsFlavored() {
			return nil, domain.WithDetail(domain.ErrInvalidTarget, "target", name)
		}
		declared[target.Key()] = target
		targets[name] = target
	}

	g := &Graph{nodes: make(map[domain.TargetKey]*ports.TargetNode, len(names))}
	for _, name := range names {
		node, err := buildNode(targets[name], file.Targets[name], declared, platform)
		if err != nil {
			return nil, zerr.With(err, "target", name)
		}
		g.nodes[targets[name].Key()] = node
	}
	return g, nil
}

func buildNode(
	target domain.BuildTarget,
	dto TargetDTO,
	declared map[domain.TargetKey]domain.BuildTarget,
	platform domain.CxxPlatform,
) (*ports.TargetNode, error) {
	deps, err := parseDeps(dto.Deps, declared)
	if err != nil {
		return nil, err
	}

	arg, err := parseCommonArg(dto)
	if err != nil {
		return nil, err
	}

	node := &ports.TargetNode{Target: target, DeclaredDeps: deps}
	switch dto.Type {
	case "cxx_binary":
		node.Description = &cxx.BinaryDescription{Platform: platform}
		node.Args = &cxx.BinaryArg{
			Arg:                 arg,
			LinkerFlags:         dto.LinkerFlags,
			PlatformLinkerFlags: parsePlatformFlags(dto.PlatformLinkerFlags),
		}
	case "cxx_library":
		exported, err := parseSources(dto.ExportedHeaders)
		if err != nil {
			return nil, err
		}
		node.Description = &cxx.LibraryDescription{Platform: platform}
		node.Args = &cxx.LibraryArg{
			Arg:                       arg,
			ExportedHeaders:           exported,
			ExportedPreprocessorFlags: dto.ExportedPreprocessorFlags,
		}
	default:
		return nil, domain.WithDetail(errUnknownTargetType, "type", dto.Type)
	}
	return node, nil
}

func parseDeps(refs []string, declared map[domain.TargetKey]domain.BuildTarget) ([]domain.BuildTarget, error) {
	deps := make([]domain.BuildTarget, 0, len(refs))
	for _, ref := range refs {
		dep, err := domain.ParseBuildTarget(ref)
		if err != nil {
			return nil, err
		}
		if _, ok := declared[dep.Unflavored().Key()]; !ok {
			return nil, domain.WithDetail(errMissingDependency, "dependency", ref)
		}
		deps = append(deps, dep)
	}
	return deps, nil
}

func parseCommonArg(dto TargetDTO) (cxx.Arg, error) {
	srcs, err := parseSrcs(dto.Srcs)
	if err != nil {
		return cxx.Arg{}, err
	}
	headers, err := parseSources(dto.Headers)
	if err != nil {
		return cxx.Arg{}, err
	}
	lexSrcs, err := parseSources(dto.LexSrcs)
	if err != nil {
		return cxx.Arg{}, err
	}
	yaccSrcs, err := parseSources(dto.YaccSrcs)
	if err != nil {
		return cxx.Arg{}, err
	}
	langFlags, err := parseLangFlags(dto.LangPreprocessorFlags)
	if err != nil {
		return cxx.Arg{}, err
	}

	prefixHeaders := make([]domain.SourcePath, 0, len(dto.PrefixHeaders))
	for _, p := range dto.PrefixHeaders {
		prefixHeaders = append(prefixHeaders, domain.PathSourcePath{FilePath: p})
	}

	return cxx.Arg{
		Srcs:                  srcs,
		Headers:               headers,
		LexSrcs:               lexSrcs,
		YaccSrcs:              yaccSrcs,
		HeaderNamespace:       dto.HeaderNamespace,
		PreprocessorFlags:     dto.PreprocessorFlags,
		LangPreprocessorFlags: langFlags,
		CompilerFlags:         dto.CompilerFlags,
		LexFlags:              dto.LexFlags,
		YaccFlags:             dto.YaccFlags,
		PrefixHeaders:         prefixHeaders,
		FrameworkSearchPaths:  dto.FrameworkSearchPaths,
	}, nil
}

func parseLangFlags(flags map[string][]string) (map[domain.CxxSourceType][]string, error) {
	if len(flags) == 0 {
		return nil, nil
	}
	out := make(map[domain.CxxSourceType][]string, len(flags))
	for lang, fl := range flags {
		switch t := domain.CxxSourceType(lang); t {
		case domain.SourceTypeC, domain.SourceTypeCxx, domain.SourceTypeAssembler:
			out[t] = fl
		default:
			return nil, domain.WithDetail(domain.ErrUnknownSourceType, "language", lang)
		}
	}
	return out, nil
}

func parsePlatformFlags(dtos []PlatformFlagsDTO) []cxx.PlatformFlagRule {
	rules := make([]cxx.PlatformFlagRule, 0, len(dtos))
	for _, dto := range dtos {
		rules = append(rules, cxx.PlatformFlagRule{Pattern: dto.Pattern, Flags: dto.Flags})
	}
	return rules
}

// parseSources converts one of the two declared source-list forms into its
// domain shape, keeping declaration order for the named form.
func parseSources(dto SourcesDTO) (domain.SourceList[domain.SourcePath], error) {
	if dto.Named != nil {
		named := domain.NewNamedMap[domain.SourcePath]()
		for _, entry := range dto.Named {
			named.Put(entry.Name, domain.PathSourcePath{FilePath: entry.Path})
		}
		return domain.NamedSourceListOf(named), nil
	}
	paths := make([]domain.SourcePath, 0, len(dto.List))
	for _, p := range dto.List {
		paths = append(paths, domain.PathSourcePath{FilePath: p})
	}
	return domain.SourceList[domain.SourcePath]{List: paths}, nil
}

func parseSrcs(dto SourcesDTO) (domain.SourceList[domain.SourceWithFlags], error) {
	if dto.Named != nil {
		named := domain.NewNamedMap[domain.SourceWithFlags]()
		for _, entry := range dto.Named {
			named.Put(entry.Name, domain.SourceWithFlags{Path: domain.PathSourcePath{FilePath: entry.Path}})
		}
		return domain.NamedSourceListOf(named), nil
	}
	srcs := make([]domain.SourceWithFlags, 0, len(dto.List))
	for _, p := range dto.List {
		srcs = append(srcs, domain.SourceWithFlags{Path: domain.PathSourcePath{FilePath: p}})
	}
	return domain.SourceList[domain.SourceWithFlags]{List: srcs}, nil
}
