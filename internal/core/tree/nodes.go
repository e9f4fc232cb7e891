package tree

import "go.trai.ch/quill/internal/core/script"

// RootNode is the top of a parsed stylesheet.
type RootNode struct {
	Base
}

// NewRoot creates an empty root.
func NewRoot() *RootNode { return &RootNode{} }

// Kind implements Node.
func (*RootNode) Kind() Kind { return KindRoot }

// RuleNode is a selector block.
type RuleNode struct {
	Base
	Rule script.Interpolated
}

// Kind implements Node.
func (*RuleNode) Kind() Kind { return KindRule }

// PropNode is a property declaration.
type PropNode struct {
	Base
	Name  script.Interpolated
	Value script.Expr
}

// Kind implements Node.
func (*PropNode) Kind() Kind { return KindProp }

// VariableNode is a variable assignment.
type VariableNode struct {
	Base
	Name string
	Expr script.Expr
	// Guarded is set for "!default" assignments.
	Guarded bool
}

// Kind implements Node.
func (*VariableNode) Kind() Kind { return KindVariable }

// ForNode is an @for loop.
type ForNode struct {
	Base
	Var       string
	From      script.Expr
	To        script.Expr
	Exclusive bool
}

// Kind implements Node.
func (*ForNode) Kind() Kind { return KindFor }

// EachNode is an @each loop.
type EachNode struct {
	Base
	Var  string
	List script.Expr
}

// Kind implements Node.
func (*EachNode) Kind() Kind { return KindEach }

// WhileNode is an @while loop.
type WhileNode struct {
	Base
	Expr script.Expr
}

// Kind implements Node.
func (*WhileNode) Kind() Kind { return KindWhile }

// FunctionNode is an @function definition.
type FunctionNode struct {
	Base
	Name string
	Args []script.Param
}

// Kind implements Node.
func (*FunctionNode) Kind() Kind { return KindFunction }

// MixinDefNode is an @mixin definition.
type MixinDefNode struct {
	Base
	Name string
	Args []script.Param
}

// Kind implements Node.
func (*MixinDefNode) Kind() Kind { return KindMixinDef }

// MixinNode is an @include.
type MixinNode struct {
	Base
	Name     string
	Args     []script.Expr
	Keywords []script.Keyword
}

// Kind implements Node.
func (*MixinNode) Kind() Kind { return KindMixin }

// ReturnNode is an @return inside a function.
type ReturnNode struct {
	Base
	Expr script.Expr
}

// Kind implements Node.
func (*ReturnNode) Kind() Kind { return KindReturn }

// DebugNode is an @debug statement.
type DebugNode struct {
	Base
	Expr script.Expr
}

// Kind implements Node.
func (*DebugNode) Kind() Kind { return KindDebug }

// WarnNode is an @warn statement.
type WarnNode struct {
	Base
	Expr script.Expr
}

// Kind implements Node.
func (*WarnNode) Kind() Kind { return KindWarn }

// ExtendNode is an @extend statement.
type ExtendNode struct {
	Base
	Selector script.Interpolated
}

// Kind implements Node.
func (*ExtendNode) Kind() Kind { return KindExtend }

// DirectiveNode is an at-rule passed through untouched, e.g. @media or a plain CSS @import.
type DirectiveNode struct {
	Base
	Value string
}

// Kind implements Node.
func (*DirectiveNode) Kind() Kind { return KindDirective }

// CommentNode is a /* */ comment.
type CommentNode struct {
	Base
	Value string
}

// Kind implements Node.
func (*CommentNode) Kind() Kind { return KindComment }
