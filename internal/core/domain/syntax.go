package domain

import "slices"

// Syntax identifies which of the two supported surface syntaxes a file uses.
type Syntax uint8

const (
	// SyntaxSCSS is the brace-delimited syntax stored in ".scss" files.
	SyntaxSCSS Syntax = iota + 1
	// SyntaxSass is the indentation-based syntax stored in ".sass" files.
	SyntaxSass
)

var syntaxExtensions = map[string]Syntax{
	"sass": SyntaxSass,
	"scss": SyntaxSCSS,
}

// SyntaxFromExtension maps a file extension (without the dot) to its syntax.
func SyntaxFromExtension(ext string) (Syntax, bool) {
	s, ok := syntaxExtensions[ext]
	return s, ok
}

// Extensions returns the supported file extensions in lexical order.
func Extensions() []string {
	exts := make([]string, 0, len(syntaxExtensions))
	for ext := range syntaxExtensions {
		exts = append(exts, ext)
	}
	slices.Sort(exts)
	return exts
}

// Extension returns the file extension used by the syntax.
func (s Syntax) Extension() string {
	switch s {
	case SyntaxSCSS:
		return "scss"
	case SyntaxSass:
		return "sass"
	default:
		return ""
	}
}

// String implements fmt.Stringer.
func (s Syntax) String() string {
	if ext := s.Extension(); ext != "" {
		return ext
	}
	return "unknown"
}

// Valid reports whether s is one of the supported syntaxes.
func (s Syntax) Valid() bool {
	return s == SyntaxSCSS || s == SyntaxSass
}
