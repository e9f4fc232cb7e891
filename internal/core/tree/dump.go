package tree

import (
	"fmt"
	"io"
	"strings"

	"go.trai.ch/quill/internal/core/script"
)

// Dump writes an indented outline of the tree, one node per line.
func Dump(w io.Writer, n Node) error {
	d := &dumper{w: w}
	d.node(n, 0)
	return d.err
}

type dumper struct {
	w   io.Writer
	err error
}

func (d *dumper) line(depth int, format string, args ...any) {
	if d.err != nil {
		return
	}
	_, d.err = fmt.Fprintf(d.w, "%s%s\n", strings.Repeat("  ", depth), fmt.Sprintf(format, args...))
}

func (d *dumper) children(n Node, depth int) {
	for _, c := range n.Children() {
		d.node(c, depth+1)
	}
}

//nolint:cyclop // one case per node kind
func (d *dumper) node(n Node, depth int) {
	switch v := n.(type) {
	case *RootNode:
		if opts := v.Options(); opts != nil && opts.Filename != "" {
			d.line(depth, "root %s (%s)", opts.Filename, opts.Syntax)
		} else {
			d.line(depth, "root")
		}
	case *RuleNode:
		d.line(depth, "rule %s", v.Rule)
	case *PropNode:
		d.line(depth, "prop %s: %s", v.Name, exprString(v.Value))
	case *VariableNode:
		guard := ""
		if v.Guarded {
			guard = " !default"
		}
		d.line(depth, "variable $%s: %s%s", v.Name, exprString(v.Expr), guard)
	case *IfNode:
		for branch := range v.Chain() {
			switch {
			case branch == v:
				d.line(depth, "if %s", exprString(branch.Expr))
			case branch.IsElse():
				d.line(depth, "else")
			default:
				d.line(depth, "else if %s", exprString(branch.Expr))
			}
			d.children(branch, depth)
		}
		return
	case *ForNode:
		bound := "through"
		if v.Exclusive {
			bound = "to"
		}
		d.line(depth, "for $%s from %s %s %s", v.Var, exprString(v.From), bound, exprString(v.To))
	case *EachNode:
		d.line(depth, "each $%s in %s", v.Var, exprString(v.List))
	case *WhileNode:
		d.line(depth, "while %s", exprString(v.Expr))
	case *FunctionNode:
		d.line(depth, "function %s(%s)", v.Name, paramsString(v.Args))
	case *MixinDefNode:
		d.line(depth, "mixin_def %s(%s)", v.Name, paramsString(v.Args))
	case *MixinNode:
		args := make([]string, 0, len(v.Args)+len(v.Keywords))
		for _, a := range v.Args {
			args = append(args, exprString(a))
		}
		for _, kw := range v.Keywords {
			args = append(args, "$"+kw.Name+": "+exprString(kw.Value))
		}
		d.line(depth, "mixin %s(%s)", v.Name, strings.Join(args, ", "))
	case *ReturnNode:
		d.line(depth, "return %s", exprString(v.Expr))
	case *DebugNode:
		d.line(depth, "debug %s", exprString(v.Expr))
	case *WarnNode:
		d.line(depth, "warn %s", exprString(v.Expr))
	case *ExtendNode:
		d.line(depth, "extend %s", v.Selector)
	case *ImportNode:
		if v.Resolved != nil {
			d.line(depth, "import %q -> %s", v.Name, v.Resolved.Path)
		} else {
			d.line(depth, "import %q", v.Name)
		}
	case *DirectiveNode:
		d.line(depth, "directive %s", v.Value)
	case *CommentNode:
		d.line(depth, "comment %s", v.Value)
	default:
		d.line(depth, "%s", n.Kind())
	}
	d.children(n, depth)
}

func exprString(e script.Expr) string {
	if e == nil {
		return "<nil>"
	}
	return e.String()
}

func paramsString(params []script.Param) string {
	parts := make([]string, 0, len(params))
	for _, p := range params {
		s := ""
		if p.Name != nil {
			s = p.Name.String()
		}
		if p.Default != nil {
			s += ": " + p.Default.String()
		}
		parts = append(parts, s)
	}
	return strings.Join(parts, ", ")
}
