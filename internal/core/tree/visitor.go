package tree

// Op is the visit operation for one node kind. children visits the node's children in
// order; the operation decides whether, when and how often to call it.
type Op func(n Node, children func() error) error

// Visitor dispatches nodes to per-kind operations. Kinds without an operation default to
// visiting their children.
type Visitor struct {
	// Before, if set, runs on every node before dispatch.
	Before func(n Node) error
	// Ops holds the per-kind operations.
	Ops map[Kind]Op
}

// Visit visits n and, depending on the operation, its subtree.
func (v *Visitor) Visit(n Node) error {
	if n == nil {
		return nil
	}
	if v.Before != nil {
		if err := v.Before(n); err != nil {
			return err
		}
	}

	children := func() error { return v.VisitChildren(n) }
	if op, ok := v.Ops[n.Kind()]; ok {
		return op(n, children)
	}
	return children()
}

// VisitChildren visits the children of n in order.
func (v *Visitor) VisitChildren(n Node) error {
	for _, child := range n.Children() {
		if err := v.Visit(child); err != nil {
			return err
		}
	}
	return nil
}

// Walk visits every node of the tree in pre-order, following IfNode chains.
// Returning false from fn skips the node's children.
func Walk(root Node, fn func(Node) bool) {
	v := &Visitor{}
	v.Ops = map[Kind]Op{}
	pre := func(n Node, children func() error) error {
		if !fn(n) {
			return nil
		}
		if ifn, ok := n.(*IfNode); ok && ifn.Else != nil {
			if err := children(); err != nil {
				return err
			}
			return v.Visit(ifn.Else)
		}
		return children()
	}
	for k := range kindNames {
		v.Ops[Kind(k)] = pre
	}
	_ = v.Visit(root)
}
