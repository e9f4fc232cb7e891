package parser

import (
	"strings"

	"go.trai.ch/quill/internal/core/script"
)

// indexTopLevel returns the index of the first sep in s that is not nested in
// parentheses, brackets, interpolation or quotes, or -1.
func indexTopLevel(s string, sep byte) int {
	depth := 0
	var quote byte
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case quote != 0:
			if c == '\\' {
				i++
			} else if c == quote {
				quote = 0
			}
		case c == '"' || c == '\'':
			quote = c
		case c == '(' || c == '[' || c == '{':
			depth++
		case c == ')' || c == ']' || c == '}':
			if depth > 0 {
				depth--
			}
		case c == sep && depth == 0:
			return i
		}
	}
	return -1
}

// splitTopLevel splits s at every top-level sep and trims the parts.
func splitTopLevel(s string, sep byte) []string {
	var parts []string
	for {
		i := indexTopLevel(s, sep)
		if i < 0 {
			return append(parts, strings.TrimSpace(s))
		}
		parts = append(parts, strings.TrimSpace(s[:i]))
		s = s[i+1:]
	}
}

// cutTopLevel splits s around the first top-level sep.
func cutTopLevel(s string, sep byte) (before, after string, found bool) {
	i := indexTopLevel(s, sep)
	if i < 0 {
		return strings.TrimSpace(s), "", false
	}
	return strings.TrimSpace(s[:i]), strings.TrimSpace(s[i+1:]), true
}

// interpolate splits text into literal runs and #{...} expressions.
func interpolate(text string) script.Interpolated {
	var (
		out script.Interpolated
		lit strings.Builder
	)
	flush := func() {
		if lit.Len() > 0 {
			out = append(out, script.Fragment{Text: lit.String()})
			lit.Reset()
		}
	}
	for i := 0; i < len(text); i++ {
		if text[i] == '#' && i+1 < len(text) && text[i+1] == '{' {
			if end := matchBrace(text, i+1); end > 0 {
				flush()
				out = append(out, script.Fragment{Expr: script.NewRaw(text[i+2 : end])})
				i = end
				continue
			}
		}
		lit.WriteByte(text[i])
	}
	flush()
	return out
}

// matchBrace returns the index of the brace closing the one at open, or -1.
func matchBrace(s string, open int) int {
	depth := 0
	for i := open; i < len(s); i++ {
		switch s[i] {
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return i
			}
		}
	}
	return -1
}

// unquote strips one pair of matching quotes. ok is false if s is not quoted.
func unquote(s string) (inner, rest string, ok bool) {
	if len(s) < 2 || (s[0] != '"' && s[0] != '\'') {
		return s, "", false
	}
	q := s[0]
	for i := 1; i < len(s); i++ {
		switch s[i] {
		case '\\':
			i++
		case q:
			return s[1:i], strings.TrimSpace(s[i+1:]), true
		}
	}
	return s, "", false
}

// callParts splits "name(args)" into its name and the text between the parentheses.
func callParts(s string) (name, args string) {
	open := strings.IndexByte(s, '(')
	if open < 0 {
		return strings.TrimSpace(s), ""
	}
	name = strings.TrimSpace(s[:open])
	rest := s[open+1:]
	if closeIdx := strings.LastIndexByte(rest, ')'); closeIdx >= 0 {
		rest = rest[:closeIdx]
	}
	return name, strings.TrimSpace(rest)
}

// variableName returns the name of a "$name" token, without the sigil.
func variableName(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if len(s) < 2 || s[0] != '$' {
		return "", false
	}
	for i := 1; i < len(s); i++ {
		c := s[i]
		if c != '-' && c != '_' && !isAlnum(c) && c < 0x80 {
			return "", false
		}
	}
	return s[1:], true
}

func isAlnum(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c >= '0' && c <= '9'
}

func params(text string) []script.Param {
	if text == "" {
		return nil
	}
	parts := splitTopLevel(text, ',')
	out := make([]script.Param, 0, len(parts))
	for _, part := range parts {
		if part == "" {
			continue
		}
		name, def, hasDefault := cutTopLevel(part, ':')
		p := script.Param{Name: script.NewVariable(name)}
		if hasDefault {
			p.Default = script.NewRaw(def)
		}
		out = append(out, p)
	}
	return out
}

func arguments(text string) ([]script.Expr, []script.Keyword) {
	if text == "" {
		return nil, nil
	}
	var (
		args     []script.Expr
		keywords []script.Keyword
	)
	for _, part := range splitTopLevel(text, ',') {
		if part == "" {
			continue
		}
		if name, value, ok := cutTopLevel(part, ':'); ok {
			if v, isVar := variableName(name); isVar {
				keywords = append(keywords, script.Keyword{Name: v, Value: script.NewRaw(value)})
				continue
			}
		}
		args = append(args, script.NewRaw(part))
	}
	return args, keywords
}
