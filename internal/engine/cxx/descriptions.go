package cxx

import (
	"go.trai.ch/forge/internal/core/domain"
	"go.trai.ch/forge/internal/core/ports"
	"go.trai.ch/zerr"
)

var errBadArgType = zerr.New("unexpected constructor argument type")

// classifiedSources is the result of running classification and the
// generated-source pipeline for one target: the complete compilable-source
// map and the complete header map, generated entries folded in.
type classifiedSources struct {
	sources *domain.CxxSourceMap
	headers domain.HeaderMap
}

// classifyAndGenerate parses the declared inputs and folds the outputs of the
// generated-source pipeline back into the source and header tables.
func classifyAndGenerate(
	params ports.BuildRuleParams,
	resolver ports.RuleResolver,
	platform domain.CxxPlatform,
	args Arg,
	headers domain.HeaderMap,
) (classifiedSources, error) {
	srcs, err := ParseCxxSources(params.Target, args)
	if err != nil {
		return classifiedSources{}, err
	}
	lexSrcs, err := ParseLexSources(params.Target, args)
	if err != nil {
		return classifiedSources{}, err
	}
	yaccSrcs, err := ParseYaccSources(params.Target, args)
	if err != nil {
		return classifiedSources{}, err
	}

	spec, err := CreateLexYaccBuildRules(params, resolver, platform, args.LexFlags, lexSrcs, args.YaccFlags, yaccSrcs)
	if err != nil {
		return classifiedSources{}, err
	}

	for name, src := range spec.Sources.All() {
		if existing, ok := srcs.Get(name); ok {
			err := domain.WithDetail(domain.ErrDuplicateSourceName, "name", name)
			err = zerr.With(err, "first", existing.Path.String())
			err = zerr.With(err, "second", src.Path.String())
			return classifiedSources{}, zerr.With(err, "target", params.Target.FullName())
		}
		srcs.Put(name, src)
	}

	all := domain.NewHeaderMap()
	all.AddAll(headers)
	all.AddAll(spec.Headers)

	return classifiedSources{sources: srcs, headers: all}, nil
}

// compileAll runs the private exposure tree, preprocessor merge, preprocess,
// and compile stages, returning the object outputs plus the tree rules that
// fed compilation.
func compileAll(
	params ports.BuildRuleParams,
	resolver ports.RuleResolver,
	platform domain.CxxPlatform,
	args Arg,
	classified classifiedSources,
	extraTrees []*SymlinkTreeRule,
	pic bool,
) ([]domain.SourcePath, error) {
	tree, err := CreateHeaderSymlinkTree(
		resolver, params.Target, platform.Flavor, HeaderVisibilityPrivate, classified.headers)
	if err != nil {
		return nil, err
	}

	input, err := CombinePreprocessorInput(
		params,
		platform,
		PreprocessorFlagsFromArgs(args.PreprocessorFlags, args.LangPreprocessorFlags),
		args.PrefixHeaders,
		append([]*SymlinkTreeRule{tree}, extraTrees...),
		args.FrameworkSearchPaths,
	)
	if err != nil {
		return nil, err
	}

	preprocessed, err := CreatePreprocessBuildRules(
		resolver, params.Target.Unflavored(), platform, input, pic, classified.sources)
	if err != nil {
		return nil, err
	}

	return CreateCompileBuildRules(
		resolver, params.Target.Unflavored(), platform, args.CompilerFlags, pic, preprocessed)
}

// BinaryDescription materializes cxx_binary targets: classification,
// generated sources, header exposure, preprocessing, compilation, and the
// final executable link rule.
type BinaryDescription struct {
	Platform domain.CxxPlatform
}

var _ ports.Description = (*BinaryDescription)(nil)

// CreateBuildRule implements ports.Description.
func (d *BinaryDescription) CreateBuildRule(
	params ports.BuildRuleParams,
	resolver ports.RuleResolver,
	args any,
) (ports.BuildRule, error) {
	arg, ok := args.(*BinaryArg)
	if !ok {
		return nil, domain.WithDetail(errBadArgType, "target", params.Target.FullName())
	}

	headers, err := ParseHeaders(params.Target, arg.Arg)
	if err != nil {
		return nil, err
	}
	classified, err := classifyAndGenerate(params, resolver, d.Platform, arg.Arg, headers)
	if err != nil {
		return nil, err
	}

	objects, err := compileAll(params, resolver, d.Platform, arg.Arg, classified, nil, false)
	if err != nil {
		return nil, err
	}

	platformFlags, err := PlatformFlags(arg.PlatformLinkerFlags, d.Platform.Flavor.String())
	if err != nil {
		return nil, err
	}
	ldFlags := append(append([]string{}, arg.LinkerFlags...), platformFlags...)

	return CreateLinkedBinary(
		resolver,
		params.Target.Unflavored(),
		d.Platform,
		ldFlags,
		LinkTypeExecutable,
		LinkStyleStatic,
		objects,
		params.DeclaredDeps,
	)
}

// LibraryDescription materializes cxx_library targets. The unflavored rule
// carries the preprocessor input the library exports to dependents; "static"
// and "shared" flavored requests derive the corresponding linkable artifact
// on demand.
type LibraryDescription struct {
	Platform domain.CxxPlatform
}

var _ ports.Description = (*LibraryDescription)(nil)

// CreateBuildRule implements ports.Description.
func (d *LibraryDescription) CreateBuildRule(
	params ports.BuildRuleParams,
	resolver ports.RuleResolver,
	args any,
) (ports.BuildRule, error) {
	arg, ok := args.(*LibraryArg)
	if !ok {
		return nil, domain.WithDetail(errBadArgType, "target", params.Target.FullName())
	}

	exported, err := ParseExportedHeaders(params.Target, *arg)
	if err != nil {
		return nil, err
	}
	exportedTree, err := CreateHeaderSymlinkTree(
		resolver, params.Target, d.Platform.Flavor, HeaderVisibilityPublic, exported)
	if err != nil {
		return nil, err
	}

	switch {
	case params.Target.HasFlavor(FlavorStatic):
		return d.createLinkable(params, resolver, arg, exportedTree, false)
	case params.Target.HasFlavor(FlavorShared):
		return d.createLinkable(params, resolver, arg, exportedTree, true)
	}

	return d.createLibraryRule(params, arg, exportedTree)
}

// createLibraryRule builds the unflavored library rule exposing the
// preprocessor-dep capability.
func (d *LibraryDescription) createLibraryRule(
	params ports.BuildRuleParams,
	arg *LibraryArg,
	exportedTree *SymlinkTreeRule,
) (ports.BuildRule, error) {
	input := domain.NewCxxPreprocessorInput()
	input.Rules = []domain.BuildTarget{exportedTree.Target()}
	input.IncludeRoots = []string{exportedTree.Root}
	for t, flags := range PreprocessorFlagsFromArgs(arg.ExportedPreprocessorFlags, nil) {
		input.Flags[t] = flags
	}
	for name, source := range exportedTree.Links {
		input.Headers[name] = source
	}
	for name, source := range exportedTree.FullLinks {
		input.FullHeaders[name] = source
	}

	return &LibraryRule{
		baseRule: newBaseRule(
			params.Target,
			append([]ports.BuildRule{exportedTree}, params.DeclaredDeps...),
			nil,
			exportedTree.Inputs(),
			"",
			exportedTree.Root,
		),
		exportedInput: input,
	}, nil
}

// createLinkable compiles the library's sources and packs them into the
// requested artifact: a static archive, or a shared library (pic objects)
// with a derived soname.
func (d *LibraryDescription) createLinkable(
	params ports.BuildRuleParams,
	resolver ports.RuleResolver,
	arg *LibraryArg,
	exportedTree *SymlinkTreeRule,
	shared bool,
) (ports.BuildRule, error) {
	headers, err := ParseHeaders(params.Target, arg.Arg)
	if err != nil {
		return nil, err
	}
	classified, err := classifyAndGenerate(params, resolver, d.Platform, arg.Arg, headers)
	if err != nil {
		return nil, err
	}

	objects, err := compileAll(
		params, resolver, d.Platform, arg.Arg, classified, []*SymlinkTreeRule{exportedTree}, shared)
	if err != nil {
		return nil, err
	}

	// The resolver is mid-construction for this very flavored target, so the
	// artifact rule is built directly and registered by the caller.
	if shared {
		return newLinkedBinaryRule(
			resolver,
			params.Target.Unflavored(),
			d.Platform,
			nil,
			LinkTypeSharedLibrary,
			LinkStyleShared,
			objects,
			params.DeclaredDeps,
		)
	}
	return newStaticArchiveRule(
		resolver, params.Target.Unflavored(), d.Platform, objects, params.DeclaredDeps)
}
