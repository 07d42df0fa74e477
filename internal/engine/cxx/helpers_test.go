package cxx_test

import (
	"go.trai.ch/forge/internal/core/domain"
	"go.trai.ch/forge/internal/core/ports"
	"go.trai.ch/forge/internal/engine/resolver"
)

func tool(path string, flags ...string) *domain.Tool {
	return &domain.Tool{Path: path, Flags: flags}
}

// testPlatform is a fully-equipped toolchain for pipeline tests.
func testPlatform() domain.CxxPlatform {
	return domain.CxxPlatform{
		Flavor:                 domain.InternFlavor("linux-x86_64"),
		As:                     tool("as"),
		Aspp:                   tool("gcc", "-E", "-x", "assembler-with-cpp"),
		Cc:                     tool("gcc"),
		Cpp:                    tool("gcc", "-E"),
		Cxx:                    tool("g++"),
		Cxxpp:                  tool("g++", "-E"),
		Ld:                     tool("g++"),
		Ar:                     tool("ar", "rcs"),
		Lex:                    tool("flex"),
		LexFlags:               []string{"--7bit"},
		Yacc:                   tool("bison"),
		YaccFlags:              []string{"-d"},
		SharedLibraryExtension: "so",
	}
}

// newResolver creates a resolver without a target graph; pipeline stages only
// use the memoization surface.
func newResolver() *resolver.Resolver {
	return resolver.New(nil, nil)
}

func paths(files ...string) []domain.SourcePath {
	out := make([]domain.SourcePath, len(files))
	for i, f := range files {
		out[i] = domain.PathSourcePath{FilePath: f}
	}
	return out
}

func srcList(files ...string) domain.SourceList[domain.SourceWithFlags] {
	entries := make([]domain.SourceWithFlags, len(files))
	for i, f := range files {
		entries[i] = domain.SourceWithFlags{Path: domain.PathSourcePath{FilePath: f}}
	}
	return domain.SourceListOf(entries...)
}

func pathList(files ...string) domain.SourceList[domain.SourcePath] {
	return domain.SourceList[domain.SourcePath]{List: paths(files...)}
}

func params(target domain.BuildTarget, deps ...ports.BuildRule) ports.BuildRuleParams {
	return ports.BuildRuleParams{Target: target, DeclaredDeps: deps}
}
