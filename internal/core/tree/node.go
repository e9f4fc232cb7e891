// Package tree defines the stylesheet syntax tree and the visitor protocol used by every pass.
package tree

import "go.trai.ch/quill/internal/core/domain"

// Kind identifies the node type for visitor dispatch. The set is closed.
type Kind uint8

const (
	KindRoot Kind = iota
	KindRule
	KindProp
	KindVariable
	KindIf
	KindFor
	KindEach
	KindWhile
	KindFunction
	KindMixinDef
	KindMixin
	KindReturn
	KindDebug
	KindWarn
	KindExtend
	KindImport
	KindDirective
	KindComment
)

var kindNames = [...]string{
	KindRoot:      "root",
	KindRule:      "rule",
	KindProp:      "prop",
	KindVariable:  "variable",
	KindIf:        "if",
	KindFor:       "for",
	KindEach:      "each",
	KindWhile:     "while",
	KindFunction:  "function",
	KindMixinDef:  "mixin_def",
	KindMixin:     "mixin",
	KindReturn:    "return",
	KindDebug:     "debug",
	KindWarn:      "warn",
	KindExtend:    "extend",
	KindImport:    "import",
	KindDirective: "directive",
	KindComment:   "comment",
}

// String implements fmt.Stringer.
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// KindFromString is the inverse of Kind.String.
func KindFromString(s string) (Kind, bool) {
	for k, name := range kindNames {
		if name == s {
			return Kind(k), true
		}
	}
	return 0, false
}

// Node is a node of the syntax tree.
type Node interface {
	Kind() Kind
	Children() []Node
	AddChild(child Node)
	Options() *domain.Options
	SetOptions(opts *domain.Options)
	Line() int
}

// Base carries the state shared by every node. Concrete nodes embed it.
type Base struct {
	children []Node
	options  *domain.Options
	line     int
}

// Children returns the child nodes in source order.
func (b *Base) Children() []Node { return b.children }

// AddChild appends a child node.
func (b *Base) AddChild(child Node) { b.children = append(b.children, child) }

// Options returns the options set by the last options pass, or nil.
func (b *Base) Options() *domain.Options { return b.options }

// SetOptions sets the node's own options. Embedded expressions are not touched.
func (b *Base) SetOptions(opts *domain.Options) { b.options = opts }

// Line returns the 1-based source line, or 0 when unknown.
func (b *Base) Line() int { return b.line }

// SetLine records the source line.
func (b *Base) SetLine(line int) { b.line = line }
