package parser

import (
	"strings"

	"go.trai.ch/quill/internal/core/domain"
	"go.trai.ch/zerr"
)

type logicalLine struct {
	first, last int
	indent      int
	body        string
	tail        string
	comment     bool
}

// indentedToBraces rewrites indented source into the brace form. The output has
// exactly one line per input line so that positions stay valid.
func indentedToBraces(src []byte) ([]byte, error) {
	lines := strings.Split(strings.ReplaceAll(string(src), "\r\n", "\n"), "\n")
	out := make([]string, len(lines))

	logical := splitLogical(lines, out)

	stack := []int{0}
	for k, l := range logical {
		closes := 0
		for l.indent < stack[len(stack)-1] {
			stack = stack[:len(stack)-1]
			closes++
		}
		if l.indent != stack[len(stack)-1] {
			return nil, zerr.With(domain.ErrInconsistentIndentation, "line", l.first+1)
		}

		term := ";"
		if l.comment {
			term = ""
		} else if k+1 < len(logical) && logical[k+1].indent > l.indent {
			term = " {"
			stack = append(stack, logical[k+1].indent)
		}

		out[l.first] = strings.Repeat("}", closes) + " " + l.body
		out[l.last] += term
	}

	if len(lines) > 0 {
		out[len(out)-1] += strings.Repeat("}", len(stack)-1)
	}
	return []byte(strings.Join(out, "\n")), nil
}

// splitLogical groups physical lines into statements. Comment bodies are dropped and
// comma continued selectors are kept on their own lines in out.
func splitLogical(lines, out []string) []logicalLine {
	var (
		logical       []logicalLine
		commentIndent = -1
	)
	for i, raw := range lines {
		line := strings.TrimRight(raw, " \t")
		body := strings.TrimLeft(line, " \t")
		indent := len(line) - len(body)
		if body == "" {
			continue
		}

		if commentIndent >= 0 {
			if indent > commentIndent {
				continue
			}
			commentIndent = -1
		}

		switch {
		case strings.HasPrefix(body, "//"):
			commentIndent = indent
			continue
		case strings.HasPrefix(body, "/*"):
			commentIndent = indent
			if !strings.HasSuffix(body, "*/") {
				body += " */"
			}
			logical = append(logical, logicalLine{first: i, last: i, indent: indent, body: body, comment: true})
			continue
		}

		if n := len(logical); n > 0 && !logical[n-1].comment && strings.HasSuffix(logical[n-1].tail, ",") {
			logical[n-1].last = i
			logical[n-1].tail = body
			out[i] = body
			continue
		}

		logical = append(logical, logicalLine{first: i, last: i, indent: indent, body: shorthand(body), tail: body})
	}
	return logical
}

// shorthand expands the indented syntax's mixin shortcuts.
func shorthand(body string) string {
	if len(body) < 2 || !isIdentStart(body[1]) {
		return body
	}
	switch body[0] {
	case '=':
		return "@mixin " + body[1:]
	case '+':
		return "@include " + body[1:]
	}
	return body
}

func isIdentStart(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c == '_' || c == '-'
}
