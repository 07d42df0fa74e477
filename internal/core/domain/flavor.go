package domain

import (
	"strings"
	"unique"
)

// Flavor is an interned tag on a build target selecting a build variant or a
// derived-artifact role (e.g. "static", "header-symlink-tree", "lex-grammar").
// It wraps a unique.Handle so that flavors compare by handle and repeated tags
// share storage across the whole rule graph.
type Flavor struct {
	h unique.Handle[string]
}

// InternFlavor creates a Flavor from a string, interning it.
func InternFlavor(s string) Flavor {
	return Flavor{h: unique.Make(s)}
}

// String returns the underlying tag value.
func (f Flavor) String() string {
	var zero unique.Handle[string]
	if f.h == zero {
		return ""
	}
	return f.h.Value()
}

// IsZero reports whether the flavor is the zero value.
func (f Flavor) IsZero() bool {
	var zero unique.Handle[string]
	return f.h == zero
}

// MarshalText implements encoding.TextMarshaler.
func (f Flavor) MarshalText() ([]byte, error) {
	return []byte(f.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (f *Flavor) UnmarshalText(text []byte) error {
	f.h = unique.Make(string(text))
	return nil
}

// flavorSanitizer rewrites characters that are legal in artifact names but not
// in flavor tags. Distinct names that differ only in these characters collide
// after sanitization; callers detect such collisions when registering rules.
var flavorSanitizer = strings.NewReplacer(
	"/", "-",
	".", "-",
	"+", "-",
	" ", "-",
)

// SanitizeFlavorName turns an arbitrary artifact name (typically a source file
// name) into a valid flavor tag.
func SanitizeFlavorName(name string) Flavor {
	return InternFlavor(flavorSanitizer.Replace(name))
}
