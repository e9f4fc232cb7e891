package tree

import (
	"iter"

	"go.trai.ch/quill/internal/core/script"
)

// IfNode is an @if statement. @else if and @else branches are IfNodes linked through Else.
//
// The head of a chain caches its tail so AddElse never walks the list. The cached tail of
// non-head nodes is not consulted once they are linked.
type IfNode struct {
	Base
	// Expr is the condition; nil marks a terminal @else.
	Expr script.Expr
	// Else is the next branch of the chain, or nil.
	Else *IfNode

	last *IfNode
}

// NewIfNode creates a branch with the given condition. Pass nil for an @else.
func NewIfNode(expr script.Expr) *IfNode {
	n := &IfNode{Expr: expr}
	n.last = n
	return n
}

// Kind implements Node.
func (*IfNode) Kind() Kind { return KindIf }

// AddElse appends a branch after the current tail.
func (n *IfNode) AddElse(node *IfNode) {
	n.tail().Else = node
	n.last = node
}

// IsElse reports whether the node is a terminal @else.
func (n *IfNode) IsElse() bool {
	return n.Expr == nil
}

// Tail returns the last branch of the chain.
func (n *IfNode) Tail() *IfNode {
	return n.tail()
}

func (n *IfNode) tail() *IfNode {
	if n.last == nil {
		n.last = n
	}
	return n.last
}

// relink restores the cached tail after the chain was rebuilt structurally.
// The next node must already be relinked.
func (n *IfNode) relink() {
	if n.Else != nil {
		n.last = n.Else.tail()
		return
	}
	n.last = n
}

// Chain yields the head and every linked branch in order.
func (n *IfNode) Chain() iter.Seq[*IfNode] {
	return func(yield func(*IfNode) bool) {
		for cur := n; cur != nil; cur = cur.Else {
			if !yield(cur) {
				return
			}
		}
	}
}
