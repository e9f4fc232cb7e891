// Package script holds the expression objects embedded in tree nodes.
//
// Expressions are not tree nodes: generic child recursion never reaches them, so every
// pass that needs to touch them (option propagation in particular) does so explicitly.
// Evaluation lives outside this module; expressions here keep their source text.
package script

import (
	"strings"

	"go.trai.ch/quill/internal/core/domain"
)

// Expr is an unevaluated expression.
type Expr interface {
	// SetOptions attaches the compile options.
	SetOptions(opts *domain.Options)
	// Options returns the attached options, or nil.
	Options() *domain.Options
	// String returns the expression source.
	String() string
}

type optionsHolder struct {
	opts *domain.Options
}

func (h *optionsHolder) SetOptions(opts *domain.Options) { h.opts = opts }

func (h *optionsHolder) Options() *domain.Options { return h.opts }

// Raw is an expression kept as source text.
type Raw struct {
	optionsHolder
	Text string
}

// NewRaw creates a Raw expression from trimmed source text.
func NewRaw(text string) *Raw {
	return &Raw{Text: strings.TrimSpace(text)}
}

// String implements Expr.
func (r *Raw) String() string { return r.Text }

// Variable is a variable reference such as $width.
type Variable struct {
	optionsHolder
	// Name is the variable name without the leading "$".
	Name string
}

// NewVariable creates a Variable; a leading "$" is stripped.
func NewVariable(name string) *Variable {
	return &Variable{Name: strings.TrimPrefix(strings.TrimSpace(name), "$")}
}

// String implements Expr.
func (v *Variable) String() string { return "$" + v.Name }

// Param is a parameter of a mixin or function definition.
type Param struct {
	Name    *Variable
	Default Expr
}

// Keyword is a keyword argument of a mixin invocation.
type Keyword struct {
	Name  string
	Value Expr
}

// SetOptions propagates options to the expressions of every expression in exprs.
// Nil entries are skipped.
func SetOptions(opts *domain.Options, exprs ...Expr) {
	for _, e := range exprs {
		if e != nil {
			e.SetOptions(opts)
		}
	}
}
