package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/forge/internal/adapters/config"
	"go.trai.ch/forge/internal/core/domain"
	"go.trai.ch/forge/internal/core/ports/mocks"
	"go.trai.ch/forge/internal/engine/cxx"
	"go.uber.org/mock/gomock"
)

const buildFile = `
version: "1"
targets:
  //app:main:
    type: cxx_binary
    srcs:
      - app/a.cc
      - app/b.cc
    deps:
      - //src/lib:bar
    linker_flags:
      - -pthread
    platform_linker_flags:
      - pattern: "^linux.*$"
        flags: [-ldl]
  //src/lib:bar:
    type: cxx_library
    srcs:
      bar: src/lib/bar.cc
      extra: src/lib/extra.cc
    exported_headers:
      - src/lib/shared.h
    exported_preprocessor_flags:
      - -DBAR
`

func mustParse(t *testing.T, data string) *config.Graph {
	t.Helper()
	graph, err := config.Parse([]byte(data), testPlatform())
	require.NoError(t, err)
	return graph
}

func testPlatform() domain.CxxPlatform {
	return domain.CxxPlatform{Flavor: domain.InternFlavor("linux-x86_64")}
}

func TestParse_BinaryTarget(t *testing.T) {
	graph := mustParse(t, buildFile)

	bin := domain.NewBuildTarget("", "app", "main")
	node, err := graph.Lookup(bin)
	require.NoError(t, err)

	assert.Equal(t, bin.FullName(), node.Target.FullName())
	require.IsType(t, &cxx.BinaryDescription{}, node.Description)

	arg, ok := node.Args.(*cxx.BinaryArg)
	require.True(t, ok)
	require.Len(t, arg.Srcs.List, 2)
	assert.Equal(t, "app/a.cc", arg.Srcs.List[0].Path.Resolve())
	assert.Equal(t, []string{"-pthread"}, arg.LinkerFlags)
	require.Len(t, arg.PlatformLinkerFlags, 1)
	assert.Equal(t, "^linux.*$", arg.PlatformLinkerFlags[0].Pattern)

	require.Len(t, node.DeclaredDeps, 1)
	assert.Equal(t, "//src/lib:bar", node.DeclaredDeps[0].FullName())
}

func TestParse_NamedSourcesKeepOrder(t *testing.T) {
	graph := mustParse(t, buildFile)

	node, err := graph.Lookup(domain.NewBuildTarget("", "src/lib", "bar"))
	require.NoError(t, err)

	arg, ok := node.Args.(*cxx.LibraryArg)
	require.True(t, ok)
	require.NotNil(t, arg.Srcs.Named)
	assert.Equal(t, []string{"bar", "extra"}, arg.Srcs.Named.Names())
	assert.Equal(t, []string{"-DBAR"}, arg.ExportedPreprocessorFlags)

	require.Len(t, arg.ExportedHeaders.List, 1)
	assert.Equal(t, "src/lib/shared.h", arg.ExportedHeaders.List[0].Resolve())
}

func TestParse_FlavoredLookupResolvesDeclaredTarget(t *testing.T) {
	graph := mustParse(t, buildFile)

	flavored := domain.NewBuildTarget("", "src/lib", "bar").
		Derive(domain.InternFlavor("static"))
	node, err := graph.Lookup(flavored)
	require.NoError(t, err)
	assert.Equal(t, "//src/lib:bar", node.Target.FullName())
}

func TestParse_UndeclaredTargetLookupFails(t *testing.T) {
	graph := mustParse(t, buildFile)

	_, err := graph.Lookup(domain.NewBuildTarget("", "src", "missing"))
	assert.ErrorIs(t, err, domain.ErrGraphLookup)
}

func TestParse_MissingDependency(t *testing.T) {
	_, err := config.Parse([]byte(`
targets:
  //app:main:
    type: cxx_binary
    deps: ["//src/lib:nope"]
`), testPlatform())
	require.Error(t, err)
	assert.ErrorContains(t, err, "dependency not declared")
}

func TestParse_UnknownTargetType(t *testing.T) {
	_, err := config.Parse([]byte(`
targets:
  //app:main:
    type: java_library
`), testPlatform())
	require.Error(t, err)
	assert.ErrorContains(t, err, "unknown target type")
}

func TestParse_FlavoredDeclarationRejected(t *testing.T) {
	_, err := config.Parse([]byte(`
targets:
  //app:main#shared:
    type: cxx_binary
`), testPlatform())
	assert.ErrorIs(t, err, domain.ErrInvalidTarget)
}

func TestParse_UnknownLanguageFlag(t *testing.T) {
	_, err := config.Parse([]byte(`
targets:
  //app:main:
    type: cxx_binary
    lang_preprocessor_flags:
      fortran: [-ffree-form]
`), testPlatform())
	assert.ErrorIs(t, err, domain.ErrUnknownSourceType)
}

func TestParse_BadSourceListShape(t *testing.T) {
	_, err := config.Parse([]byte(`
targets:
  //app:main:
    type: cxx_binary
    srcs: 42
`), testPlatform())
	require.Error(t, err)
	assert.ErrorContains(t, err, "sequence or a mapping")
}

func TestLoader_Load(t *testing.T) {
	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Info(gomock.Any())

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, config.DefaultFilename), []byte(buildFile), 0o600))

	graph, err := config.NewLoader(log).Load(dir, testPlatform())
	require.NoError(t, err)

	_, err = graph.Lookup(domain.NewBuildTarget("", "app", "main"))
	assert.NoError(t, err)
}

func TestLoader_LoadMissingFile(t *testing.T) {
	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)

	_, err := config.NewLoader(log).Load(t.TempDir(), testPlatform())
	require.Error(t, err)
	assert.ErrorContains(t, err, "failed to read build file")
}
