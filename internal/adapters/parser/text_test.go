package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitTopLevel(t *testing.T) {
	assert.Equal(t, []string{"a", "b(c, d)", `"e, f"`, "#{g, h}"}, splitTopLevel(`a, b(c, d), "e, f", #{g, h}`, ','))
	assert.Equal(t, []string{""}, splitTopLevel("", ','))
}

func TestCutTopLevel(t *testing.T) {
	before, after, ok := cutTopLevel("margin-#{$a ? b : c}: 1px", ':')
	assert.True(t, ok)
	assert.Equal(t, "margin-#{$a ? b : c}", before)
	assert.Equal(t, "1px", after)

	_, _, ok = cutTopLevel("(a: b)", ':')
	assert.False(t, ok)
}

func TestInterpolate(t *testing.T) {
	got := interpolate(".a-#{$i}-b #{$j}")
	assert.Len(t, got, 4)
	assert.Equal(t, ".a-", got[0].Text)
	assert.Equal(t, "$i", got[1].Expr.String())
	assert.Equal(t, "-b ", got[2].Text)
	assert.Equal(t, "$j", got[3].Expr.String())
	assert.Equal(t, ".a-#{$i}-b #{$j}", got.String())

	unterminated := interpolate("a#{b")
	assert.Len(t, unterminated, 1)
	assert.Equal(t, "a#{b", unterminated.String())
}

func TestUnquote(t *testing.T) {
	inner, rest, ok := unquote(`"a\"b" print`)
	assert.True(t, ok)
	assert.Equal(t, `a\"b`, inner)
	assert.Equal(t, "print", rest)

	_, _, ok = unquote("bare")
	assert.False(t, ok)
}

func TestArguments(t *testing.T) {
	args, keywords := arguments("1px, $c: red, fn($x: 1)")
	assert.Len(t, args, 2)
	assert.Equal(t, "1px", args[0].String())
	assert.Equal(t, "fn($x: 1)", args[1].String())
	assert.Len(t, keywords, 1)
	assert.Equal(t, "c", keywords[0].Name)
	assert.Equal(t, "red", keywords[0].Value.String())
}

func TestIndentedToBraces(t *testing.T) {
	src := "a\n  b: c\n\n  d\n    e: f\ng: h\n"
	got, err := indentedToBraces([]byte(src))
	assert.NoError(t, err)
	assert.Equal(t, " a {\n b: c;\n\n d {\n e: f;\n}} g: h;\n", string(got))
}
