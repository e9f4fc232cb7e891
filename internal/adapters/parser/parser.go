// Package parser turns stylesheet source into trees.
package parser

import (
	"errors"
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/tdewolff/parse/v2/css"
	"go.trai.ch/quill/internal/core/domain"
	"go.trai.ch/quill/internal/core/script"
	"go.trai.ch/quill/internal/core/tree"
	"go.trai.ch/zerr"
)

// Parser implements ports.Parser for both the brace and the indented syntax.
type Parser struct{}

// New creates a new Parser.
func New() *Parser {
	return &Parser{}
}

// Parse builds a tree from src. Indented sources are converted to the brace form first,
// keeping line numbers intact.
func (*Parser) Parse(src []byte, syntax domain.Syntax, filename string) (*tree.RootNode, error) {
	switch syntax {
	case domain.SyntaxSCSS:
	case domain.SyntaxSass:
		converted, err := indentedToBraces(src)
		if err != nil {
			return nil, zerr.With(zerr.Wrap(err, domain.ErrParseFailed.Error()), "file", filename)
		}
		src = converted
	default:
		return nil, zerr.With(domain.ErrUnsupportedSyntax, "syntax", syntax.String())
	}

	p := &parser{s: newScanner(src), filename: filename}
	root := tree.NewRoot()
	if err := p.block(root, false, 0); err != nil {
		return nil, err
	}
	return root, nil
}

type terminator int

const (
	termSemicolon terminator = iota
	termOpen
	termClose
	termEOF
)

type statement struct {
	text    string
	line    int
	at      string
	comment bool
	term    terminator
}

type parser struct {
	s        *scanner
	filename string
}

func (p *parser) errorf(line int, format string, args ...any) error {
	err := zerr.Wrap(fmt.Errorf(format, args...), domain.ErrParseFailed.Error())
	err = zerr.With(err, "file", p.filename)
	return zerr.With(err, "line", line)
}

// statement reads the next statement up to a top-level ';', '{' or '}'.
// A closing brace is left unread.
//
//nolint:cyclop,gocognit // token loop
func (p *parser) statement() (statement, error) {
	for {
		t := p.s.peek()
		if t.tt == css.WhitespaceToken || t.tt == css.SemicolonToken {
			p.s.next()
			continue
		}
		if t.tt == css.CommentToken {
			p.s.next()
			return statement{text: t.text, line: t.line, comment: true, term: termSemicolon}, nil
		}
		break
	}

	var (
		b      strings.Builder
		depth  int
		interp int
		space  bool
		st     = statement{line: p.s.peek().line}
	)
	write := func(text string) {
		if space && b.Len() > 0 {
			b.WriteByte(' ')
		}
		space = false
		b.WriteString(text)
	}
	finish := func(term terminator) (statement, error) {
		st.text = strings.TrimSpace(b.String())
		st.term = term
		return st, nil
	}

	for {
		t := p.s.peek()
		switch t.tt {
		case css.ErrorToken:
			if err := p.s.err(); err != nil && !errors.Is(err, io.EOF) {
				return st, p.errorf(t.line, "%v", err)
			}
			return finish(termEOF)
		case css.WhitespaceToken, css.CommentToken:
			p.s.next()
			space = true
			continue
		case css.AtKeywordToken:
			if b.Len() == 0 {
				st.at = strings.ToLower(t.text)
			}
		case css.SemicolonToken:
			if depth == 0 && interp == 0 {
				p.s.next()
				return finish(termSemicolon)
			}
		case css.LeftBraceToken:
			if interp > 0 {
				interp++
			} else if depth == 0 {
				p.s.next()
				return finish(termOpen)
			}
		case css.RightBraceToken:
			if interp == 0 {
				return finish(termClose)
			}
			interp--
		case css.DelimToken:
			if t.text == "#" {
				p.s.next()
				if p.s.peek().tt == css.LeftBraceToken {
					p.s.next()
					interp++
					write("#{")
					continue
				}
				write(t.text)
				continue
			}
		case css.LeftParenthesisToken, css.LeftBracketToken, css.FunctionToken:
			depth++
		case css.RightParenthesisToken, css.RightBracketToken:
			if depth > 0 {
				depth--
			}
		}
		p.s.next()
		write(t.text)
	}
}

// block parses statements into parent until the closing brace, or EOF at the top level.
func (p *parser) block(parent tree.Node, nested bool, openLine int) error {
	var head *tree.IfNode
	for {
		st, err := p.statement()
		if err != nil {
			return err
		}

		if st.comment {
			parent.AddChild(withLine(&tree.CommentNode{Value: st.text}, st.line))
			continue
		}

		if st.text != "" {
			if head, err = p.node(parent, st, head); err != nil {
				return err
			}
		} else if st.term == termOpen {
			return p.errorf(st.line, "unexpected {")
		}

		switch st.term {
		case termClose:
			t := p.s.next()
			if !nested {
				return p.errorf(t.line, "unexpected }")
			}
			return nil
		case termEOF:
			if nested {
				return p.errorf(openLine, "unclosed block")
			}
			return nil
		default:
		}
	}
}

var (
	forPattern  = regexp.MustCompile(`^\$([\w-]+)\s+from\s+(.+?)\s+(through|to)\s+(.+)$`)
	eachPattern = regexp.MustCompile(`^(.+?)\s+in\s+(.+)$`)
	flagPattern = regexp.MustCompile(`\s*!(default|global)\s*$`)
)

// node builds the node for one statement. head is the @if chain that a following
// @else may extend; the returned chain replaces it.
//
//nolint:cyclop,funlen // one case per directive
func (p *parser) node(parent tree.Node, st statement, head *tree.IfNode) (*tree.IfNode, error) {
	block := st.term == termOpen
	rest := strings.TrimSpace(st.text[len(st.at):])

	if st.at == "@else" {
		if !block {
			return nil, p.errorf(st.line, "@else requires a block")
		}
		if head == nil {
			return nil, p.errorf(st.line, "@else without @if")
		}
		var n *tree.IfNode
		if cond, ok := strings.CutPrefix(rest, "if"); ok && (cond == "" || cond[0] == ' ' || cond[0] == '(') {
			n = tree.NewIfNode(script.NewRaw(cond))
		} else if rest == "" {
			n = tree.NewIfNode(nil)
		} else {
			return nil, p.errorf(st.line, "unexpected %q after @else", rest)
		}
		n.SetLine(st.line)
		head.AddElse(n)
		if err := p.block(n, true, st.line); err != nil {
			return nil, err
		}
		if n.IsElse() {
			return nil, nil
		}
		return head, nil
	}

	var n tree.Node
	switch st.at {
	case "@if":
		if !block {
			return nil, p.errorf(st.line, "@if requires a block")
		}
		ifNode := tree.NewIfNode(script.NewRaw(rest))
		ifNode.SetLine(st.line)
		parent.AddChild(ifNode)
		if err := p.block(ifNode, true, st.line); err != nil {
			return nil, err
		}
		return ifNode, nil
	case "@for":
		m := forPattern.FindStringSubmatch(rest)
		if m == nil || !block {
			return nil, p.errorf(st.line, "invalid @for: %q", rest)
		}
		n = &tree.ForNode{Var: m[1], From: script.NewRaw(m[2]), To: script.NewRaw(m[4]), Exclusive: m[3] == "to"}
	case "@each":
		m := eachPattern.FindStringSubmatch(rest)
		if m == nil || !block {
			return nil, p.errorf(st.line, "invalid @each: %q", rest)
		}
		n = &tree.EachNode{Var: strings.TrimPrefix(strings.TrimSpace(m[1]), "$"), List: script.NewRaw(m[2])}
	case "@while":
		if !block {
			return nil, p.errorf(st.line, "@while requires a block")
		}
		n = &tree.WhileNode{Expr: script.NewRaw(rest)}
	case "@function":
		if !block {
			return nil, p.errorf(st.line, "@function requires a block")
		}
		name, args := callParts(rest)
		n = &tree.FunctionNode{Name: name, Args: params(args)}
	case "@mixin":
		if !block {
			return nil, p.errorf(st.line, "@mixin requires a block")
		}
		name, args := callParts(rest)
		n = &tree.MixinDefNode{Name: name, Args: params(args)}
	case "@include":
		name, args := callParts(rest)
		positional, keywords := arguments(args)
		n = &tree.MixinNode{Name: name, Args: positional, Keywords: keywords}
	case "@return":
		n = &tree.ReturnNode{Expr: script.NewRaw(rest)}
	case "@debug":
		n = &tree.DebugNode{Expr: script.NewRaw(rest)}
	case "@warn":
		n = &tree.WarnNode{Expr: script.NewRaw(rest)}
	case "@extend":
		n = &tree.ExtendNode{Selector: interpolate(rest)}
	case "@import":
		if block {
			return nil, p.errorf(st.line, "@import does not take a block")
		}
		return nil, p.imports(parent, st.line, rest)
	case "":
		var err error
		if n, err = p.plain(st, block); err != nil {
			return nil, err
		}
	default:
		n = &tree.DirectiveNode{Value: st.text}
	}

	parent.AddChild(withLine(n, st.line))
	if block {
		if err := p.block(n, true, st.line); err != nil {
			return nil, err
		}
	}
	return nil, nil
}

// plain builds rules, variable assignments and property declarations.
func (p *parser) plain(st statement, block bool) (tree.Node, error) {
	if block {
		return &tree.RuleNode{Rule: interpolate(st.text)}, nil
	}

	name, value, ok := cutTopLevel(st.text, ':')
	if !ok {
		return nil, p.errorf(st.line, "expected declaration, got %q", st.text)
	}

	if v, isVar := variableName(name); isVar {
		guarded := false
		for {
			m := flagPattern.FindStringSubmatchIndex(value)
			if m == nil {
				break
			}
			if value[m[2]:m[3]] == "default" {
				guarded = true
			}
			value = value[:m[0]]
		}
		return &tree.VariableNode{Name: v, Expr: script.NewRaw(value), Guarded: guarded}, nil
	}

	return &tree.PropNode{Name: interpolate(name), Value: script.NewRaw(value)}, nil
}

// imports adds one node per comma separated import. Plain CSS imports stay directives.
func (p *parser) imports(parent tree.Node, line int, rest string) error {
	if rest == "" {
		return p.errorf(line, "@import requires a file name")
	}
	for _, part := range splitTopLevel(rest, ',') {
		if part == "" {
			return p.errorf(line, "empty @import")
		}
		name, media, quoted := unquote(part)
		if !quoted {
			name = part
		}
		if media != "" || tree.IsCSSImport(name) || (!quoted && strings.ContainsAny(name, " ()")) {
			parent.AddChild(withLine(&tree.DirectiveNode{Value: "@import " + part}, line))
			continue
		}
		parent.AddChild(withLine(&tree.ImportNode{Name: name}, line))
	}
	return nil
}

func withLine(n tree.Node, line int) tree.Node {
	if l, ok := n.(interface{ SetLine(int) }); ok {
		l.SetLine(line)
	}
	return n
}
