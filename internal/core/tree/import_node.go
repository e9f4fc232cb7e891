package tree

import (
	"strings"

	"go.trai.ch/quill/internal/core/domain"
)

// ImportNode is a stylesheet @import. The expander fills Resolved and Imported.
type ImportNode struct {
	Base
	Name     string
	Resolved *domain.ResolvedImport
	Imported *RootNode
}

// Kind implements Node.
func (*ImportNode) Kind() Kind { return KindImport }

// IsCSSImport reports whether an import name refers to plain CSS that is passed through
// to the output instead of being resolved.
func IsCSSImport(name string) bool {
	lower := strings.ToLower(strings.TrimSpace(name))
	switch {
	case strings.HasSuffix(lower, ".css"),
		strings.HasPrefix(lower, "http://"),
		strings.HasPrefix(lower, "https://"),
		strings.HasPrefix(lower, "//"),
		strings.HasPrefix(lower, "url("):
		return true
	}
	return false
}
