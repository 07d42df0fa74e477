package platform

// Catalog represents the structure of the forge-platforms.yaml file.
type Catalog struct {
	Default   string        `yaml:"default"`
	Platforms []PlatformDTO `yaml:"platforms"`
}

// PlatformDTO represents one toolchain declaration.
type PlatformDTO struct {
	Flavor string `yaml:"flavor"`

	As    *ToolDTO `yaml:"as"`
	Aspp  *ToolDTO `yaml:"aspp"`
	Cc    *ToolDTO `yaml:"cc"`
	Cpp   *ToolDTO `yaml:"cpp"`
	Cxx   *ToolDTO `yaml:"cxx"`
	Cxxpp *ToolDTO `yaml:"cxxpp"`
	Ld    *ToolDTO `yaml:"ld"`
	Ar    *ToolDTO `yaml:"ar"`

	Lex       *ToolDTO `yaml:"lex"`
	LexFlags  []string `yaml:"lex_flags"`
	Yacc      *ToolDTO `yaml:"yacc"`
	YaccFlags []string `yaml:"yacc_flags"`

	SharedLibraryExtension string `yaml:"shared_library_extension"`

	DebugPathPrefix      string `yaml:"debug_path_prefix"`
	DebugPathReplacement string `yaml:"debug_path_replacement"`
}

// ToolDTO represents a toolchain executable with its default flags.
type ToolDTO struct {
	Path  string   `yaml:"path"`
	Flags []string `yaml:"flags"`
}
