package app_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/forge/internal/adapters/config"
	"go.trai.ch/forge/internal/app"
	"go.trai.ch/forge/internal/core/domain"
	"go.trai.ch/forge/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

type appTest struct {
	buildFiles *mocks.MockBuildFileLoader
	platforms  *mocks.MockPlatformLoader
	log        *mocks.MockLogger
	tracer     *mocks.MockTracer
	app        *app.App
}

func setupAppTest(t *testing.T) *appTest {
	t.Helper()
	ctrl := gomock.NewController(t)
	a := &appTest{
		buildFiles: mocks.NewMockBuildFileLoader(ctrl),
		platforms:  mocks.NewMockPlatformLoader(ctrl),
		log:        mocks.NewMockLogger(ctrl),
		tracer:     mocks.NewMockTracer(ctrl),
	}
	a.app = app.New(a.buildFiles, a.platforms, a.log, a.tracer)
	return a
}

func testCatalog() domain.PlatformCatalog {
	flavor := domain.InternFlavor("linux-x86_64")
	return domain.PlatformCatalog{
		Default: flavor,
		Platforms: map[domain.Flavor]domain.CxxPlatform{
			flavor: {
				Flavor: flavor,
				Cxx:    &domain.Tool{Path: "g++"},
				Cxxpp:  &domain.Tool{Path: "g++", Flags: []string{"-E"}},
				Cc:     &domain.Tool{Path: "gcc"},
				Cpp:    &domain.Tool{Path: "gcc", Flags: []string{"-E"}},
				Ld:     &domain.Tool{Path: "g++"},
				Ar:     &domain.Tool{Path: "ar", Flags: []string{"rcs"}},

				SharedLibraryExtension: "so",
			},
		},
	}
}

func TestRun_NoTargets(t *testing.T) {
	a := setupAppTest(t)

	err := a.app.Run(context.Background(), nil, "")
	assert.ErrorIs(t, err, domain.ErrNoTargetsRequested)
}

func TestRun_InvalidTargetName(t *testing.T) {
	a := setupAppTest(t)

	err := a.app.Run(context.Background(), []string{"not a target"}, "")
	assert.ErrorIs(t, err, domain.ErrInvalidTarget)
}

func TestRun_UnknownPlatform(t *testing.T) {
	a := setupAppTest(t)
	a.platforms.EXPECT().Load(".").Return(testCatalog(), nil)

	err := a.app.Run(context.Background(), []string{"//app:main"}, "windows-x86_64")
	assert.ErrorIs(t, err, domain.ErrUnsupportedPlatform)
}

func TestRun_PlatformCatalogError(t *testing.T) {
	a := setupAppTest(t)
	boom := errors.New("catalog unreadable")
	a.platforms.EXPECT().Load(".").Return(domain.PlatformCatalog{}, boom)

	err := a.app.Run(context.Background(), []string{"//app:main"}, "")
	assert.ErrorIs(t, err, boom)
}

func TestRun_BuildFileError(t *testing.T) {
	a := setupAppTest(t)
	boom := errors.New("no build file")
	a.platforms.EXPECT().Load(".").Return(testCatalog(), nil)
	a.buildFiles.EXPECT().Load(".", gomock.Any()).Return(nil, boom)

	err := a.app.Run(context.Background(), []string{"//app:main"}, "")
	assert.ErrorIs(t, err, boom)
}

func TestRun_DerivesRequestedTargets(t *testing.T) {
	a := setupAppTest(t)

	graph, err := config.Parse([]byte(`
targets:
  //app:main:
    type: cxx_binary
    srcs: [app/main.cc]
    deps: ["//src/lib:bar"]
  //src/lib:bar:
    type: cxx_library
    srcs: [src/lib/bar.cc]
    exported_headers: [src/lib/bar.h]
`), testCatalog().Platforms[domain.InternFlavor("linux-x86_64")])
	require.NoError(t, err)

	a.platforms.EXPECT().Load(".").Return(testCatalog(), nil)
	a.buildFiles.EXPECT().Load(".", gomock.Any()).Return(graph, nil)
	a.tracer.EXPECT().RecordRule(gomock.Any()).AnyTimes()
	a.log.EXPECT().Info(gomock.Any()).AnyTimes()

	err = a.app.Run(context.Background(), []string{"//app:main"}, "linux-x86_64")
	require.NoError(t, err)
}

func TestRun_UnknownTargetFails(t *testing.T) {
	a := setupAppTest(t)

	graph, err := config.Parse([]byte(`
targets:
  //src/lib:bar:
    type: cxx_library
`), testCatalog().Platforms[domain.InternFlavor("linux-x86_64")])
	require.NoError(t, err)

	a.platforms.EXPECT().Load(".").Return(testCatalog(), nil)
	a.buildFiles.EXPECT().Load(".", gomock.Any()).Return(graph, nil)

	err = a.app.Run(context.Background(), []string{"//app:missing"}, "")
	assert.ErrorIs(t, err, domain.ErrGraphLookup)
}

func TestRun_CancelledContext(t *testing.T) {
	a := setupAppTest(t)

	graph, err := config.Parse([]byte(`
targets:
  //src/lib:bar:
    type: cxx_library
`), testCatalog().Platforms[domain.InternFlavor("linux-x86_64")])
	require.NoError(t, err)

	a.platforms.EXPECT().Load(".").Return(testCatalog(), nil)
	a.buildFiles.EXPECT().Load(".", gomock.Any()).Return(graph, nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err = a.app.Run(ctx, []string{"//src/lib:bar"}, "")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestClose_DelegatesToTracer(t *testing.T) {
	a := setupAppTest(t)
	a.tracer.EXPECT().Close().Return(nil)

	assert.NoError(t, a.app.Close())
}
