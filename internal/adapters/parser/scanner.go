package parser

import (
	"bytes"
	"strings"

	"github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
)

type token struct {
	tt   css.TokenType
	text string
	line int
}

func (t token) is(tt css.TokenType, text string) bool {
	return t.tt == tt && t.text == text
}

// scanner wraps the css lexer with line tracking, lookahead and // comment removal.
type scanner struct {
	lex     *css.Lexer
	line    int
	pending []token
	buf     []token
}

func newScanner(src []byte) *scanner {
	return &scanner{
		lex:  css.NewLexer(parse.NewInput(bytes.NewReader(src))),
		line: 1,
	}
}

func (s *scanner) err() error {
	return s.lex.Err()
}

func (s *scanner) raw() token {
	if len(s.pending) > 0 {
		t := s.pending[0]
		s.pending = s.pending[1:]
		return t
	}
	tt, data := s.lex.Next()
	t := token{tt: tt, text: string(data), line: s.line}
	s.line += strings.Count(t.text, "\n")
	return t
}

func (s *scanner) read() token {
	t := s.raw()
	if !t.is(css.DelimToken, "/") {
		return t
	}
	second := s.raw()
	if !second.is(css.DelimToken, "/") {
		s.pending = append(s.pending, second)
		return t
	}
	for {
		c := s.raw()
		if c.tt == css.ErrorToken {
			return c
		}
		if c.tt == css.WhitespaceToken && strings.Contains(c.text, "\n") {
			return c
		}
	}
}

func (s *scanner) peek() token {
	if len(s.buf) == 0 {
		s.buf = append(s.buf, s.read())
	}
	return s.buf[0]
}

func (s *scanner) next() token {
	t := s.peek()
	s.buf = s.buf[1:]
	return t
}
