package cxx_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/forge/internal/core/domain"
	"go.trai.ch/forge/internal/core/ports"
	"go.trai.ch/forge/internal/engine/cxx"
)

// exportingRule is a stand-in dependency contributing preprocessor input.
type exportingRule struct {
	target domain.BuildTarget
	deps   []ports.BuildRule
	input  domain.CxxPreprocessorInput
}

func (r *exportingRule) Target() domain.BuildTarget      { return r.target }
func (r *exportingRule) DeclaredDeps() []ports.BuildRule { return r.deps }
func (r *exportingRule) ExtraDeps() []ports.BuildRule    { return nil }
func (r *exportingRule) Inputs() []domain.SourcePath     { return nil }
func (r *exportingRule) OutputPath() string              { return "" }
func (r *exportingRule) RuleKey() uint64                 { return 0 }
func (r *exportingRule) PreprocessorInput(domain.CxxPlatform) (domain.CxxPreprocessorInput, error) {
	return r.input, nil
}

func exporting(base, header, source string, deps ...ports.BuildRule) *exportingRule {
	input := domain.NewCxxPreprocessorInput()
	input.Headers[header] = domain.PathSourcePath{FilePath: source}
	input.IncludeRoots = []string{"forge-out/gen/" + base}
	return &exportingRule{
		target: domain.NewBuildTarget("", base, "lib"),
		deps:   deps,
		input:  input,
	}
}

func TestPreprocessorFlagsFromArgs(t *testing.T) {
	flags := cxx.PreprocessorFlagsFromArgs(
		[]string{"-DGENERIC"},
		map[domain.CxxSourceType][]string{domain.SourceTypeCxx: {"-DCXX"}},
	)
	assert.Equal(t, []string{"-DGENERIC"}, flags[domain.SourceTypeC])
	assert.Equal(t, []string{"-DGENERIC", "-DCXX"}, flags[domain.SourceTypeCxx])
	assert.Equal(t, []string{"-DGENERIC"}, flags[domain.SourceTypeAssembler])
}

func TestCombinePreprocessorInput_LocalBeforeTransitive(t *testing.T) {
	res := newResolver()
	platform := testPlatform()
	target := domain.NewBuildTarget("", "app", "main")

	headers := domain.NewHeaderMap()
	headers.Add("app", "local.h", domain.PathSourcePath{FilePath: "app/local.h"})
	tree, err := cxx.CreateHeaderSymlinkTree(
		res, target, platform.Flavor, cxx.HeaderVisibilityPrivate, headers)
	require.NoError(t, err)

	dep := exporting("src/lib", "api.h", "src/lib/api.h")

	combined, err := cxx.CombinePreprocessorInput(
		params(target, dep), platform, nil, nil, []*cxx.SymlinkTreeRule{tree}, nil)
	require.NoError(t, err)

	// The target's own tree root precedes dependency roots.
	require.Len(t, combined.IncludeRoots, 2)
	assert.Equal(t, tree.Root, combined.IncludeRoots[0])
	assert.Equal(t, "forge-out/gen/src/lib", combined.IncludeRoots[1])

	assert.Contains(t, combined.Headers, "local.h")
	assert.Contains(t, combined.Headers, "api.h")
}

func TestCombinePreprocessorInput_DiamondContributesOnce(t *testing.T) {
	platform := testPlatform()
	target := domain.NewBuildTarget("", "app", "main")

	base := exporting("src/base", "base.h", "src/base/base.h")
	left := exporting("src/left", "left.h", "src/left/left.h", base)
	right := exporting("src/right", "right.h", "src/right/right.h", base)

	combined, err := cxx.CombinePreprocessorInput(
		params(target, left, right), platform, nil, nil, nil, nil)
	require.NoError(t, err)

	count := 0
	for _, root := range combined.IncludeRoots {
		if root == "forge-out/gen/src/base" {
			count++
		}
	}
	assert.Equal(t, 1, count, "diamond dependency must contribute exactly once")
}

func TestCombinePreprocessorInput_ConflictNamesRequester(t *testing.T) {
	platform := testPlatform()
	target := domain.NewBuildTarget("", "app", "main")

	first := exporting("src/liba", "shared.h", "src/liba/shared.h")
	second := exporting("src/libb", "shared.h", "src/libb/shared.h")

	_, err := cxx.CombinePreprocessorInput(
		params(target, first, second), platform, nil, nil, nil, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrConflictingHeaders)
	assert.Contains(t, err.Error(), "shared.h")
}

func TestCombinePreprocessorInput_SameSourceTwiceIsFine(t *testing.T) {
	platform := testPlatform()
	target := domain.NewBuildTarget("", "app", "main")

	first := exporting("src/liba", "shared.h", "common/shared.h")
	second := exporting("src/libb", "shared.h", "common/shared.h")

	_, err := cxx.CombinePreprocessorInput(
		params(target, first, second), platform, nil, nil, nil, nil)
	require.NoError(t, err)
}

func TestCombinePreprocessorInput_NonExportingDepsIgnored(t *testing.T) {
	platform := testPlatform()
	target := domain.NewBuildTarget("", "app", "main")

	plain := &fakeBuildRule{target: domain.NewBuildTarget("", "src/other", "other")}

	combined, err := cxx.CombinePreprocessorInput(
		params(target, plain), platform, nil, nil, nil, nil)
	require.NoError(t, err)
	assert.Empty(t, combined.IncludeRoots)
}

// fakeBuildRule implements BuildRule without the preprocessor-dep capability.
type fakeBuildRule struct {
	target domain.BuildTarget
}

func (r *fakeBuildRule) Target() domain.BuildTarget      { return r.target }
func (r *fakeBuildRule) DeclaredDeps() []ports.BuildRule { return nil }
func (r *fakeBuildRule) ExtraDeps() []ports.BuildRule    { return nil }
func (r *fakeBuildRule) Inputs() []domain.SourcePath     { return nil }
func (r *fakeBuildRule) OutputPath() string              { return "" }
func (r *fakeBuildRule) RuleKey() uint64                 { return 0 }
