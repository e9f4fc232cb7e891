package script

import (
	"strings"

	"go.trai.ch/quill/internal/core/domain"
)

// Fragment is one piece of interpolated text: either literal text or an expression.
type Fragment struct {
	Text string
	Expr Expr
}

// IsExpr reports whether the fragment is an interpolated expression.
func (f Fragment) IsExpr() bool {
	return f.Expr != nil
}

// Interpolated is text such as a selector or property name that may contain #{...}.
type Interpolated []Fragment

// Literal returns an Interpolated holding only text.
func Literal(text string) Interpolated {
	return Interpolated{{Text: text}}
}

// SetOptions propagates options to every expression fragment.
func (in Interpolated) SetOptions(opts *domain.Options) {
	for _, f := range in {
		if f.Expr != nil {
			f.Expr.SetOptions(opts)
		}
	}
}

// Exprs returns the expression fragments in order.
func (in Interpolated) Exprs() []Expr {
	var exprs []Expr
	for _, f := range in {
		if f.Expr != nil {
			exprs = append(exprs, f.Expr)
		}
	}
	return exprs
}

// String renders the fragments back to source form.
func (in Interpolated) String() string {
	var b strings.Builder
	for _, f := range in {
		if f.Expr != nil {
			b.WriteString("#{")
			b.WriteString(f.Expr.String())
			b.WriteString("}")
			continue
		}
		b.WriteString(f.Text)
	}
	return b.String()
}
