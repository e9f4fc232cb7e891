package tree

import (
	"go.trai.ch/quill/internal/core/domain"
	"go.trai.ch/quill/internal/core/script"
)

// SetOptions propagates opts to every node of the tree and to every expression object
// embedded in those nodes. It runs once per compile, before evaluation.
func SetOptions(root Node, opts *domain.Options) {
	_ = newSetOptions(opts).Visit(root)
}

func newSetOptions(opts *domain.Options) *Visitor {
	v := &Visitor{
		Before: func(n Node) error {
			n.SetOptions(opts)
			return nil
		},
	}

	params := func(args []script.Param) {
		for _, a := range args {
			if a.Name != nil {
				a.Name.SetOptions(opts)
			}
			script.SetOptions(opts, a.Default)
		}
	}

	v.Ops = map[Kind]Op{
		KindDebug: func(n Node, children func() error) error {
			script.SetOptions(opts, n.(*DebugNode).Expr)
			return children()
		},
		KindEach: func(n Node, children func() error) error {
			script.SetOptions(opts, n.(*EachNode).List)
			return children()
		},
		KindExtend: func(n Node, children func() error) error {
			n.(*ExtendNode).Selector.SetOptions(opts)
			return children()
		},
		KindFor: func(n Node, children func() error) error {
			f := n.(*ForNode)
			script.SetOptions(opts, f.From, f.To)
			return children()
		},
		KindFunction: func(n Node, children func() error) error {
			params(n.(*FunctionNode).Args)
			return children()
		},
		KindIf: func(n Node, children func() error) error {
			ifn := n.(*IfNode)
			script.SetOptions(opts, ifn.Expr)
			if ifn.Else != nil {
				if err := v.Visit(ifn.Else); err != nil {
					return err
				}
			}
			return children()
		},
		KindMixinDef: func(n Node, children func() error) error {
			params(n.(*MixinDefNode).Args)
			return children()
		},
		KindMixin: func(n Node, children func() error) error {
			m := n.(*MixinNode)
			script.SetOptions(opts, m.Args...)
			for _, kw := range m.Keywords {
				script.SetOptions(opts, kw.Value)
			}
			return children()
		},
		KindProp: func(n Node, children func() error) error {
			p := n.(*PropNode)
			p.Name.SetOptions(opts)
			script.SetOptions(opts, p.Value)
			return children()
		},
		KindReturn: func(n Node, children func() error) error {
			script.SetOptions(opts, n.(*ReturnNode).Expr)
			return children()
		},
		KindRule: func(n Node, children func() error) error {
			n.(*RuleNode).Rule.SetOptions(opts)
			return children()
		},
		KindVariable: func(n Node, children func() error) error {
			script.SetOptions(opts, n.(*VariableNode).Expr)
			return children()
		},
		KindWarn: func(n Node, children func() error) error {
			script.SetOptions(opts, n.(*WarnNode).Expr)
			return children()
		},
		KindWhile: func(n Node, children func() error) error {
			script.SetOptions(opts, n.(*WhileNode).Expr)
			return children()
		},
	}
	return v
}
