// Package platform provides the YAML toolchain-catalog loader for forge.
package platform

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"go.trai.ch/forge/internal/core/domain"
	"go.trai.ch/forge/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// DefaultFilename is the platform catalog looked up in the working directory.
const DefaultFilename = "forge-platforms.yaml"

var (
	errNoPlatforms  = zerr.New("platform catalog declares no platforms")
	errMissingTool  = zerr.New("platform tool declares no path")
	errBadSharedExt = zerr.New("shared library extension must not contain a dot")
)

// Loader implements ports.PlatformLoader using a YAML file. When the file is
// absent the host default catalog is returned instead.
type Loader struct {
	Filename string
}

// NewLoader creates a Loader reading DefaultFilename.
func NewLoader() *Loader {
	return &Loader{Filename: DefaultFilename}
}

// Load reads the platform catalog from the given working directory.
func (l *Loader) Load(cwd string) (domain.PlatformCatalog, error) {
	path := filepath.Join(cwd, l.Filename)
	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	if errors.Is(err, fs.ErrNotExist) {
		return HostCatalog(cwd), nil
	}
	if err != nil {
		return domain.PlatformCatalog{}, zerr.Wrap(err, "failed to read platform catalog")
	}

	catalog, err := Parse(data)
	if err != nil {
		return domain.PlatformCatalog{}, domain.WithDetail(err, "platform_file", path)
	}
	return catalog, nil
}

// Parse builds a platform catalog from raw catalog bytes.
func Parse(data []byte) (domain.PlatformCatalog, error) {
	var catalog Catalog
	if err := yaml.Unmarshal(data, &catalog); err != nil {
		return domain.PlatformCatalog{}, zerr.Wrap(err, "failed to parse platform catalog")
	}
	if len(catalog.Platforms) == 0 {
		return domain.PlatformCatalog{}, errNoPlatforms
	}

	out := domain.PlatformCatalog{Platforms: make(map[domain.Flavor]domain.CxxPlatform, len(catalog.Platforms))}
	for _, dto := range catalog.Platforms {
		p, err := buildPlatform(dto)
		if err != nil {
			return domain.PlatformCatalog{}, domain.WithDetail(err, "platform", dto.Flavor)
		}
		out.Platforms[p.Flavor] = p
	}

	if catalog.Default != "" {
		out.Default = domain.SanitizeFlavorName(catalog.Default)
	} else {
		out.Default = domain.SanitizeFlavorName(catalog.Platforms[0].Flavor)
	}
	if _, ok := out.Platforms[out.Default]; !ok {
		return domain.PlatformCatalog{}, domain.WithDetail(domain.ErrUnsupportedPlatform, "default", catalog.Default)
	}
	return out, nil
}

func buildPlatform(dto PlatformDTO) (domain.CxxPlatform, error) {
	ext := dto.SharedLibraryExtension
	if ext == "" {
		ext = "so"
	}
	if filepath.Ext(ext) != "" {
		return domain.CxxPlatform{}, domain.WithDetail(errBadSharedExt, "extension", ext)
	}

	p := domain.CxxPlatform{
		Flavor:                 domain.SanitizeFlavorName(dto.Flavor),
		LexFlags:               dto.LexFlags,
		YaccFlags:              dto.YaccFlags,
		SharedLibraryExtension: ext,
		PathSanitizer: domain.DebugPathSanitizer{
			SearchPrefix: dto.DebugPathPrefix,
			Replacement:  dto.DebugPathReplacement,
		},
	}

	tools := []struct {
		dst **domain.Tool
		src *ToolDTO
	}{
		{&p.As, dto.As}, {&p.Aspp, dto.Aspp},
		{&p.Cc, dto.Cc}, {&p.Cpp, dto.Cpp},
		{&p.Cxx, dto.Cxx}, {&p.Cxxpp, dto.Cxxpp},
		{&p.Ld, dto.Ld}, {&p.Ar, dto.Ar},
		{&p.Lex, dto.Lex}, {&p.Yacc, dto.Yacc},
	}
	for _, t := range tools {
		if t.src == nil {
			continue
		}
		if t.src.Path == "" {
			return domain.CxxPlatform{}, errMissingTool
		}
		*t.dst = &domain.Tool{Path: t.src.Path, Flags: t.src.Flags}
	}
	return p, nil
}

// HostCatalog is the fallback catalog used when no platform file exists: a
// single gcc-style toolchain resolved from PATH, with debug paths rewritten
// relative to the repo root.
func HostCatalog(repoRoot string) domain.PlatformCatalog {
	flavor := domain.InternFlavor("default")
	tool := func(path string, flags ...string) *domain.Tool {
		return &domain.Tool{Path: path, Flags: flags}
	}
	host := domain.CxxPlatform{
		Flavor:                 flavor,
		As:                     tool("as"),
		Aspp:                   tool("gcc", "-E", "-x", "assembler-with-cpp"),
		Cc:                     tool("gcc"),
		Cpp:                    tool("gcc", "-E"),
		Cxx:                    tool("g++"),
		Cxxpp:                  tool("g++", "-E"),
		Ld:                     tool("g++"),
		Ar:                     tool("ar", "rcs"),
		SharedLibraryExtension: "so",
		PathSanitizer: domain.DebugPathSanitizer{
			SearchPrefix: repoRoot,
			Replacement:  ".",
		},
	}
	return domain.PlatformCatalog{
		Default:   flavor,
		Platforms: map[domain.Flavor]domain.CxxPlatform{flavor: host},
	}
}

var _ ports.PlatformLoader = (*Loader)(nil)
