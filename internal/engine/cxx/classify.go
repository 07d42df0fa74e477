package cxx

import (
	"path"

	"go.trai.ch/forge/internal/core/domain"
	"go.trai.ch/zerr"
)

// resolveSourceNames collapses the list-or-map union into an insertion-ordered
// name mapping. For the list form, each entry's logical name is derived from
// its underlying path by nameOf; two entries deriving the same name fail fast.
func resolveSourceNames[V any](
	target domain.BuildTarget,
	parameter string,
	list domain.SourceList[V],
	pathOf func(V) domain.SourcePath,
	nameOf func(domain.SourcePath) string,
) (*domain.NamedMap[V], error) {
	if list.IsNamed() {
		out := domain.NewNamedMap[V]()
		for name, v := range list.Named.All() {
			out.Put(name, v)
		}
		return out, nil
	}

	out := domain.NewNamedMap[V]()
	for _, v := range list.List {
		name := nameOf(pathOf(v))
		if existing, ok := out.Get(name); ok {
			err := domain.WithDetail(domain.ErrDuplicateSourceName, "parameter", parameter)
			err = zerr.With(err, "name", name)
			err = zerr.With(err, "first", pathOf(existing).String())
			err = zerr.With(err, "second", pathOf(v).String())
			err = zerr.With(err, "target", target.FullName())
			return nil, err
		}
		out.Put(name, v)
	}
	return out, nil
}

// headerName keeps the extension: headers are included by file name.
func headerName(p domain.SourcePath) string {
	return path.Base(p.Resolve())
}

func identityPath(p domain.SourcePath) domain.SourcePath { return p }

// ParseCxxSources normalizes the "srcs" parameter into a canonical mapping
// from logical name (base name, extension stripped) to classified CxxSource.
func ParseCxxSources(target domain.BuildTarget, args Arg) (*domain.CxxSourceMap, error) {
	named, err := resolveSourceNames(
		target,
		"srcs",
		args.Srcs,
		func(s domain.SourceWithFlags) domain.SourcePath { return s.Path },
		domain.SourceName,
	)
	if err != nil {
		return nil, err
	}

	out := domain.NewNamedMap[domain.CxxSource]()
	for name, s := range named.All() {
		src, err := domain.NewCxxSource(s)
		if err != nil {
			return nil, zerr.With(err, "target", target.FullName())
		}
		out.Put(name, src)
	}
	return out, nil
}

// parseHeaderMap projects a headers parameter onto filesystem locations under
// the given namespace (the target's base path unless overridden).
func parseHeaderMap(
	target domain.BuildTarget,
	parameter string,
	namespace string,
	list domain.SourceList[domain.SourcePath],
) (domain.HeaderMap, error) {
	named, err := resolveSourceNames(target, parameter, list, identityPath, headerName)
	if err != nil {
		return domain.HeaderMap{}, err
	}

	if namespace == "" {
		namespace = target.BasePath()
	}
	out := domain.NewHeaderMap()
	for name, source := range named.All() {
		out.Add(namespace, name, source)
	}
	return out, nil
}

// ParseHeaders normalizes the "headers" parameter into a HeaderMap.
func ParseHeaders(target domain.BuildTarget, args Arg) (domain.HeaderMap, error) {
	return parseHeaderMap(target, "headers", args.HeaderNamespace, args.Headers)
}

// ParseExportedHeaders normalizes the "exported_headers" parameter into a
// HeaderMap.
func ParseExportedHeaders(target domain.BuildTarget, args LibraryArg) (domain.HeaderMap, error) {
	return parseHeaderMap(target, "exported_headers", args.HeaderNamespace, args.ExportedHeaders)
}

// ParseLexSources normalizes the "lex_srcs" parameter.
func ParseLexSources(target domain.BuildTarget, args Arg) (*domain.SourceMap, error) {
	return resolveSourceNames(target, "lex_srcs", args.LexSrcs, identityPath, domain.SourceName)
}

// ParseYaccSources normalizes the "yacc_srcs" parameter.
func ParseYaccSources(target domain.BuildTarget, args Arg) (*domain.SourceMap, error) {
	return resolveSourceNames(target, "yacc_srcs", args.YaccSrcs, identityPath, domain.SourceName)
}
