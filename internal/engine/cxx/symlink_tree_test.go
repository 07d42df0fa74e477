package cxx_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/forge/internal/core/domain"
	"go.trai.ch/forge/internal/engine/cxx"
)

func TestCreateHeaderSymlinkTree_LinksAndRoot(t *testing.T) {
	res := newResolver()
	platform := testPlatform()
	target := domain.NewBuildTarget("", "src/lib", "lib")

	headers := domain.NewHeaderMap()
	headers.Add("src/lib", "api.h", domain.PathSourcePath{FilePath: "src/lib/api.h"})

	tree, err := cxx.CreateHeaderSymlinkTree(
		res, target, platform.Flavor, cxx.HeaderVisibilityPublic, headers)
	require.NoError(t, err)

	assert.Equal(t,
		"forge-out/gen/src/lib/lib#linux-x86_64,exported-header-symlink-tree",
		tree.Root)
	require.Contains(t, tree.Links, "api.h")
	require.Contains(t, tree.FullLinks, "src/lib/api.h")
	assert.Equal(t, "src/lib/api.h", tree.Links["api.h"].Resolve())
}

func TestCreateHeaderSymlinkTree_ShortEqualsFullIsNotDuplicated(t *testing.T) {
	res := newResolver()
	platform := testPlatform()
	target := domain.NewBuildTarget("", "src/lib", "lib")

	headers := domain.NewHeaderMap()
	// Empty namespace: full name equals short name.
	headers.Add("", "api.h", domain.PathSourcePath{FilePath: "src/lib/api.h"})

	tree, err := cxx.CreateHeaderSymlinkTree(
		res, target, platform.Flavor, cxx.HeaderVisibilityPrivate, headers)
	require.NoError(t, err)

	assert.Contains(t, tree.Links, "api.h")
	assert.NotContains(t, tree.FullLinks, "api.h")
}

func TestCreateHeaderSymlinkTree_Idempotent(t *testing.T) {
	res := newResolver()
	platform := testPlatform()
	target := domain.NewBuildTarget("", "src/lib", "lib")

	headers := domain.NewHeaderMap()
	headers.Add("src/lib", "api.h", domain.PathSourcePath{FilePath: "src/lib/api.h"})

	first, err := cxx.CreateHeaderSymlinkTree(
		res, target, platform.Flavor, cxx.HeaderVisibilityPublic, headers)
	require.NoError(t, err)
	second, err := cxx.CreateHeaderSymlinkTree(
		res, target, platform.Flavor, cxx.HeaderVisibilityPublic, headers)
	require.NoError(t, err)

	assert.Same(t, first, second, "re-derivation must hit the resolver cache")
}

func TestCreateHeaderSymlinkTree_VisibilitiesAreDistinctTrees(t *testing.T) {
	res := newResolver()
	platform := testPlatform()
	target := domain.NewBuildTarget("", "src/lib", "lib")

	headers := domain.NewHeaderMap()
	headers.Add("src/lib", "api.h", domain.PathSourcePath{FilePath: "src/lib/api.h"})

	public, err := cxx.CreateHeaderSymlinkTree(
		res, target, platform.Flavor, cxx.HeaderVisibilityPublic, headers)
	require.NoError(t, err)
	private, err := cxx.CreateHeaderSymlinkTree(
		res, target, platform.Flavor, cxx.HeaderVisibilityPrivate, headers)
	require.NoError(t, err)

	assert.NotEqual(t, public.Root, private.Root)
	assert.False(t, public.Target().Equal(private.Target()))
}

func TestCreateHeaderSymlinkTree_ShortNameConflictFails(t *testing.T) {
	res := newResolver()
	platform := testPlatform()
	target := domain.NewBuildTarget("", "src/lib", "lib")

	headers := domain.NewHeaderMap()
	headers.Add("liba", "shared.h", domain.PathSourcePath{FilePath: "liba/shared.h"})
	headers.Add("libb", "shared.h", domain.PathSourcePath{FilePath: "libb/shared.h"})

	_, err := cxx.CreateHeaderSymlinkTree(
		res, target, platform.Flavor, cxx.HeaderVisibilityPrivate, headers)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrConflictingHeaders)
}

func TestSymlinkTreeTarget_StripsRequestFlavors(t *testing.T) {
	target := domain.NewBuildTarget("", "src/lib", "lib").
		Derive(domain.InternFlavor("static"))
	treeTarget := cxx.SymlinkTreeTarget(target, domain.InternFlavor("linux-x86_64"), cxx.HeaderVisibilityPublic)

	assert.False(t, treeTarget.HasFlavor(domain.InternFlavor("static")))
	assert.True(t, treeTarget.HasFlavor(cxx.FlavorExportedHeaderSymlinkTree))
}
