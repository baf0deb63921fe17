// Package render provides output renderers for membench's patterns.
package render

import "github.com/tacit7/membench/pkg/pattern"

// Renderer converts patterns to formatted output.
type Renderer interface {
	Render(patterns []pattern.Pattern) string
}

// Formats lists the concrete output formats ("auto" is resolved by the CLI).
var Formats = []string{"terminal", "llm", "json"}

// ValidFormat reports whether name is a concrete output format.
func ValidFormat(name string) bool {
	for _, f := range Formats {
		if f == name {
			return true
		}
	}
	return false
}
