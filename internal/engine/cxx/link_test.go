package cxx_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/forge/internal/core/domain"
	"go.trai.ch/forge/internal/engine/cxx"
)

func TestPlatformFlags_FirstMatchWins(t *testing.T) {
	rules := []cxx.PlatformFlagRule{
		{Pattern: "^macosx.*$", Flags: []string{"-a"}},
		{Pattern: "^macosx-x86_64$", Flags: []string{"-b"}},
		{Pattern: ".*", Flags: []string{"-c"}},
	}

	flags, err := cxx.PlatformFlags(rules, "macosx-x86_64")
	require.NoError(t, err)
	assert.Equal(t, []string{"-a"}, flags)

	flags, err = cxx.PlatformFlags(rules, "linux-x86_64")
	require.NoError(t, err)
	assert.Equal(t, []string{"-c"}, flags)
}

func TestPlatformFlags_NoMatch(t *testing.T) {
	flags, err := cxx.PlatformFlags([]cxx.PlatformFlagRule{
		{Pattern: "^windows.*$", Flags: []string{"-w"}},
	}, "linux-x86_64")
	require.NoError(t, err)
	assert.Empty(t, flags)
}

func TestPlatformFlags_InvalidPattern(t *testing.T) {
	_, err := cxx.PlatformFlags([]cxx.PlatformFlagRule{
		{Pattern: "([", Flags: []string{"-x"}},
	}, "linux-x86_64")
	require.Error(t, err)
}

func TestStaticLibraryPath(t *testing.T) {
	target := domain.NewBuildTarget("", "src/lib", "bar")
	got := cxx.StaticLibraryPath(target, domain.InternFlavor("linux-x86_64"))
	assert.Equal(t, "forge-out/bin/src/lib/bar#linux-x86_64,static/libbar.a", got)
}

func TestSharedLibraryPath(t *testing.T) {
	platform := testPlatform()
	platform.Flavor = domain.InternFlavor("macosx-x86_64")
	platform.SharedLibraryExtension = "dylib"

	target := domain.NewBuildTarget("", "src/lib", "bar")
	got := cxx.SharedLibraryPath(target, platform)
	assert.Equal(t, "forge-out/bin/src/lib/bar#macosx-x86_64,shared/libbar.dylib", got)
}

func TestSharedLibrarySoname(t *testing.T) {
	platform := testPlatform()
	target := domain.NewBuildTarget("", "src/lib", "bar")
	assert.Equal(t, "libsrc_lib_bar.so", cxx.SharedLibrarySoname(target, platform))

	rootTarget := domain.NewBuildTarget("", "", "top")
	assert.Equal(t, "libtop.so", cxx.SharedLibrarySoname(rootTarget, platform))
}

func TestCreateLinkedBinary_Executable(t *testing.T) {
	res := newResolver()
	platform := testPlatform()
	target := domain.NewBuildTarget("", "app", "main")

	link, err := cxx.CreateLinkedBinary(
		res, target, platform, []string{"-pthread"},
		cxx.LinkTypeExecutable, cxx.LinkStyleStatic,
		paths("forge-out/gen/app/main#compile-a/a.o"), nil)
	require.NoError(t, err)

	assert.True(t, link.Target().HasFlavor(cxx.FlavorLinkBinary))
	assert.Equal(t, "forge-out/bin/app/main/main", link.OutputPath())
	assert.Empty(t, link.Soname)
	assert.Contains(t, link.Flags, "-pthread")
	assert.NotContains(t, link.Flags, "-shared")
}

func TestCreateLinkedBinary_SharedLibrary(t *testing.T) {
	res := newResolver()
	platform := testPlatform()
	target := domain.NewBuildTarget("", "src/lib", "bar")

	link, err := cxx.CreateLinkedBinary(
		res, target, platform, nil,
		cxx.LinkTypeSharedLibrary, cxx.LinkStyleShared,
		paths("forge-out/gen/src/lib/bar#compile-pic-a/a.o"), nil)
	require.NoError(t, err)

	assert.True(t, link.Target().HasFlavor(cxx.FlavorShared))
	assert.Equal(t, "libsrc_lib_bar.so", link.Soname)
	assert.Contains(t, link.Flags, "-shared")
	assert.Contains(t, link.Flags, "-Wl,-soname,libsrc_lib_bar.so")
}

func TestCreateLinkedBinary_MissingLinker(t *testing.T) {
	res := newResolver()
	platform := testPlatform()
	platform.Ld = nil
	target := domain.NewBuildTarget("", "app", "main")

	_, err := cxx.CreateLinkedBinary(
		res, target, platform, nil, cxx.LinkTypeExecutable, cxx.LinkStyleStatic, nil, nil)
	assert.ErrorIs(t, err, domain.ErrMissingTool)
}

func TestCreateStaticArchive(t *testing.T) {
	res := newResolver()
	platform := testPlatform()
	target := domain.NewBuildTarget("", "src/lib", "bar")

	archive, err := cxx.CreateStaticArchive(
		res, target, platform, paths("forge-out/gen/src/lib/bar#compile-a/a.o"), nil)
	require.NoError(t, err)

	assert.True(t, archive.Target().HasFlavor(cxx.FlavorStatic))
	assert.Equal(t, "forge-out/bin/src/lib/bar#linux-x86_64,static/libbar.a", archive.OutputPath())
	assert.Equal(t, "ar", archive.Tool.Path)
}

func TestCreateStaticArchive_MissingArchiver(t *testing.T) {
	res := newResolver()
	platform := testPlatform()
	platform.Ar = nil
	target := domain.NewBuildTarget("", "src/lib", "bar")

	_, err := cxx.CreateStaticArchive(res, target, platform, nil, nil)
	assert.ErrorIs(t, err, domain.ErrMissingTool)
}
