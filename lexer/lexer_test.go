package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScanner(t *testing.T) {
	testCases := []string{
		`1`,

		`-1 -2.22`,

		`[ [ [] ] [] []]`,

		`(+ 1 2 3)`,

		`(foo a b c-d-e-f "ghi")`,

		`{:a 1 :b #{1 2} :c #inst "1985-04-12"}`,

		`(foo
			a :b
			c-d-e-f
			"g
			hi"
		)`,

		`#_ (ignored) kept`,

		`(fn1 [:A "😊"])`,

		`"unterminated`,

		`\`,

		`;`,
	}

	for i := range testCases {
		tokens := Tokenize([]byte(testCases[i]))
		t.Logf("tokens: %v", tokens)

		assert.NotNil(t, tokens)
	}
}

type tokenSpec struct {
	tt   TokenType
	text string
}

func getTokenSpecs(tokens []Token) []tokenSpec {
	ret := make([]tokenSpec, 0, len(tokens))
	for i := range tokens {
		ret = append(ret, tokenSpec{tokens[i].Type(), tokens[i].Text()})
	}
	return ret
}

func TestTokenize(t *testing.T) {
	testCases := []struct {
		In  string
		Out []tokenSpec
	}{
		{
			``,
			[]tokenSpec{},
		},
		{
			" \t\r\n ",
			[]tokenSpec{},
		},
		{
			`(1 2 3)`,
			[]tokenSpec{
				{TokenOpenList, "("},
				{TokenAtom, "1"},
				{TokenAtom, "2"},
				{TokenAtom, "3"},
				{TokenCloseList, ")"},
			},
		},
		{
			`(a[b]{c})`,
			[]tokenSpec{
				{TokenOpenList, "("},
				{TokenAtom, "a"},
				{TokenOpenVector, "["},
				{TokenAtom, "b"},
				{TokenCloseVector, "]"},
				{TokenOpenMap, "{"},
				{TokenAtom, "c"},
				{TokenCloseMap, "}"},
				{TokenCloseList, ")"},
			},
		},
		{
			`[:a "b c"]`,
			[]tokenSpec{
				{TokenOpenVector, "["},
				{TokenAtom, ":a"},
				{TokenString, "b c"},
				{TokenCloseVector, "]"},
			},
		},
		{
			`#{1}`,
			[]tokenSpec{
				{TokenAtom, "#"},
				{TokenOpenMap, "{"},
				{TokenAtom, "1"},
				{TokenCloseMap, "}"},
			},
		},
		{
			`#_foo`,
			[]tokenSpec{
				{TokenAtom, "#_"},
				{TokenAtom, "foo"},
			},
		},
		{
			`#_#_1`,
			[]tokenSpec{
				{TokenAtom, "#_"},
				{TokenAtom, "#_"},
				{TokenAtom, "1"},
			},
		},
		{
			`a#_b`,
			[]tokenSpec{
				{TokenAtom, "a#_b"},
			},
		},
		{
			`#inst "1985"`,
			[]tokenSpec{
				{TokenAtom, "#inst"},
				{TokenString, "1985"},
			},
		},
		{
			`\a \"`,
			[]tokenSpec{
				{TokenAtom, `\a`},
				{TokenAtom, `\"`},
			},
		},
		{
			`ab"cd"`,
			[]tokenSpec{
				{TokenString, "cd"},
				{TokenAtom, "ab"},
			},
		},
		{
			`"abc`,
			[]tokenSpec{},
		},
		{
			`""`,
			[]tokenSpec{
				{TokenString, ""},
			},
		},
		{
			`"; (not) [a] comment"`,
			[]tokenSpec{
				{TokenString, "; (not) [a] comment"},
			},
		},
	}

	for i := range testCases {
		tokens := Tokenize([]byte(testCases[i].In))

		assert.NotNil(t, tokens)
		assert.Equal(t, testCases[i].Out, getTokenSpecs(tokens), "input: %q", testCases[i].In)
	}
}

func TestStringEscapes(t *testing.T) {
	testCases := []struct {
		In  string
		Out string
	}{
		{`"a\nb"`, `a\nb`},
		{`"a\tb"`, `a\tb`},
		{`"a\fb"`, `a\fb`},
		{`"a\rb"`, `a\rb`},
		{`"a\"b"`, `a"b`},
		{`"a\\b"`, `a\b`},
		{`"a\\nb"`, `a\nb`},
		{`"a\qb"`, `aqb`},
		{`"\\"`, `\`},
		{"\"multi\nline\"", "multi\nline"},
	}

	for i := range testCases {
		tokens := Tokenize([]byte(testCases[i].In))

		if assert.Len(t, tokens, 1, "input: %q", testCases[i].In) {
			assert.Equal(t, TokenString, tokens[0].Type())
			assert.Equal(t, testCases[i].Out, tokens[0].Text())
		}
	}
}

func TestComments(t *testing.T) {
	testCases := []struct {
		In     string
		Legacy []tokenSpec
		Strict []tokenSpec
	}{
		{
			"1 ; hi\n2",
			[]tokenSpec{
				{TokenAtom, "1"},
				{TokenAtom, ";"},
				{TokenAtom, "hi"},
				{TokenAtom, "2"},
			},
			[]tokenSpec{
				{TokenAtom, "1"},
				{TokenAtom, "2"},
			},
		},
		{
			"abc;x (y)\nz",
			[]tokenSpec{
				{TokenAtom, "abc;x"},
				{TokenOpenList, "("},
				{TokenAtom, "y"},
				{TokenCloseList, ")"},
				{TokenAtom, "z"},
			},
			[]tokenSpec{
				{TokenAtom, "abc"},
				{TokenAtom, "z"},
			},
		},
		{
			`\; 1`,
			[]tokenSpec{
				{TokenAtom, `\;`},
				{TokenAtom, "1"},
			},
			[]tokenSpec{
				{TokenAtom, `\;`},
				{TokenAtom, "1"},
			},
		},
		{
			"; only a comment",
			[]tokenSpec{
				{TokenAtom, ";"},
				{TokenAtom, "only"},
				{TokenAtom, "a"},
				{TokenAtom, "comment"},
			},
			[]tokenSpec{},
		},
	}

	for i := range testCases {
		legacy := Tokenize([]byte(testCases[i].In))
		assert.Equal(t, testCases[i].Legacy, getTokenSpecs(legacy), "input: %q", testCases[i].In)

		strict := TokenizeWithOptions([]byte(testCases[i].In), Options{LineComments: true})
		assert.Equal(t, testCases[i].Strict, getTokenSpecs(strict), "input: %q", testCases[i].In)
	}
}

func TestLines(t *testing.T) {
	testCases := []struct {
		In    string
		Lines []int
	}{
		{
			"1",
			[]int{1},
		},
		{
			"a\nb\r\nc",
			[]int{1, 2, 4},
		},
		{
			"\n\n\n(x\n)",
			[]int{4, 4, 5},
		},
		{
			"\"a\nb\" c",
			[]int{2, 2},
		},
		{
			"x ; note\ny",
			[]int{1, 1, 1, 2},
		},
	}

	getTokenLines := func(tokens []Token) []int {
		ret := make([]int, 0, len(tokens))
		for i := range tokens {
			ret = append(ret, tokens[i].Line())
		}
		return ret
	}

	for i := range testCases {
		tokens := Tokenize([]byte(testCases[i].In))
		assert.Equal(t, testCases[i].Lines, getTokenLines(tokens), "input: %q", testCases[i].In)
	}
}

func TestTokenTypes(t *testing.T) {
	assert.True(t, TokenOpenList.IsOpen())
	assert.True(t, TokenOpenVector.IsDelimiter())
	assert.True(t, TokenCloseMap.IsClose())
	assert.False(t, TokenCloseMap.IsOpen())
	assert.False(t, TokenAtom.IsDelimiter())
	assert.False(t, TokenString.IsClose())

	assert.Equal(t, TokenCloseList, TokenOpenList.Closer())
	assert.Equal(t, TokenCloseVector, TokenOpenVector.Closer())
	assert.Equal(t, TokenCloseMap, TokenOpenMap.Closer())
	assert.Equal(t, TokenInvalid, TokenAtom.Closer())

	assert.Equal(t, "open_map", TokenOpenMap.String())
	assert.Equal(t, "invalid", TokenType(200).String())

	assert.Equal(t, `(:atom "foo" [3])`, NewToken(TokenAtom, "foo", 3).String())
}
