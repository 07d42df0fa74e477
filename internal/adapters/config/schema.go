package config

import (
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// Forgefile represents the structure of the forge.yaml build file.
type Forgefile struct {
	Version string               `yaml:"version"`
	Targets map[string]TargetDTO `yaml:"targets"`
}

// TargetDTO represents one target declaration in the build file.
type TargetDTO struct {
	Type string `yaml:"type"`

	Srcs            SourcesDTO `yaml:"srcs"`
	Headers         SourcesDTO `yaml:"headers"`
	ExportedHeaders SourcesDTO `yaml:"exported_headers"`
	LexSrcs         SourcesDTO `yaml:"lex_srcs"`
	YaccSrcs        SourcesDTO `yaml:"yacc_srcs"`

	HeaderNamespace string   `yaml:"header_namespace"`
	Deps            []string `yaml:"deps"`

	PreprocessorFlags         []string            `yaml:"preprocessor_flags"`
	LangPreprocessorFlags     map[string][]string `yaml:"lang_preprocessor_flags"`
	CompilerFlags             []string            `yaml:"compiler_flags"`
	LexFlags                  []string            `yaml:"lex_flags"`
	YaccFlags                 []string            `yaml:"yacc_flags"`
	PrefixHeaders             []string            `yaml:"prefix_headers"`
	FrameworkSearchPaths      []string            `yaml:"framework_search_paths"`
	LinkerFlags               []string            `yaml:"linker_flags"`
	PlatformLinkerFlags       []PlatformFlagsDTO  `yaml:"platform_linker_flags"`
	ExportedPreprocessorFlags []string            `yaml:"exported_preprocessor_flags"`
}

// PlatformFlagsDTO is one pattern/flags pair of a platform flag list.
type PlatformFlagsDTO struct {
	Pattern string   `yaml:"pattern"`
	Flags   []string `yaml:"flags"`
}

// NamedSourceDTO is one explicitly-named source entry, in declaration order.
type NamedSourceDTO struct {
	Name string
	Path string
}

// SourcesDTO accepts the two source-list forms a target may declare: a plain
// sequence of paths, or a mapping of logical names to paths. Mapping entries
// keep their declaration order.
type SourcesDTO struct {
	List  []string
	Named []NamedSourceDTO
}

// IsZero reports whether no sources were declared in either form.
func (s SourcesDTO) IsZero() bool {
	return len(s.List) == 0 && len(s.Named) == 0
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (s *SourcesDTO) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.SequenceNode:
		return node.Decode(&s.List)
	case yaml.MappingNode:
		// node.Content holds alternating key/value nodes in file order.
		for i := 0; i+1 < len(node.Content); i += 2 {
			var entry NamedSourceDTO
			if err := node.Content[i].Decode(&entry.Name); err != nil {
				return err
			}
			if err := node.Content[i+1].Decode(&entry.Path); err != nil {
				return err
			}
			s.Named = append(s.Named, entry)
		}
		return nil
	}
	return zerr.With(zerr.New("source list must be a sequence or a mapping"), "line", node.Line)
}
