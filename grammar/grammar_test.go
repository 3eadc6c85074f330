package grammar

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/xiam/edn/ast"
)

func TestIsSymbol(t *testing.T) {
	valid := []string{
		"a", "foo", "FOO", "foo-bar", "foo/bar", "/", "+", "-", ".", "-a", "+b", ".c",
		"*earmuffs*", "a.b.c", "ok?", "set!", "$x", "%y", "&rest", "a=b", "a:b", "a#b",
		"x1", "_", "nil", "true", "false",
	}
	for _, s := range valid {
		assert.True(t, IsSymbol(s), "expected %q to be a symbol", s)
	}

	invalid := []string{
		"", "1", "1a", "42", ":foo", "#foo", "/foo", "-1", "+2", ".3",
		"a b", "a;b", "a@b", "a>b", `\a`, "é", "(", `"x"`,
	}
	for _, s := range invalid {
		assert.False(t, IsSymbol(s), "expected %q not to be a symbol", s)
	}
}

func TestIsKeyword(t *testing.T) {
	assert.True(t, IsKeyword(":foo"))
	assert.True(t, IsKeyword(":foo/bar"))
	assert.True(t, IsKeyword(":/"))
	assert.True(t, IsKeyword(":-"))

	assert.False(t, IsKeyword(":"))
	assert.False(t, IsKeyword("::foo"))
	assert.False(t, IsKeyword(":1"))
	assert.False(t, IsKeyword("foo"))
	assert.False(t, IsKeyword(""))
}

func TestScalarPredicates(t *testing.T) {
	assert.True(t, IsNil("nil"))
	assert.False(t, IsNil("Nil"))

	assert.True(t, IsChar(`\a`))
	assert.True(t, IsChar(`\\`))
	assert.False(t, IsChar(`\ab`))
	assert.False(t, IsChar(`a`))

	assert.True(t, IsBool("true"))
	assert.True(t, IsBool("false"))
	assert.False(t, IsBool("True"))

	assert.True(t, IsInt("0"))
	assert.True(t, IsInt("007"))
	assert.True(t, IsInt("123456789012345678901234567890"))
	assert.False(t, IsInt("-1"))
	assert.False(t, IsInt("+1"))
	assert.False(t, IsInt("1.0"))
	assert.False(t, IsInt(""))

	assert.False(t, IsFloat("1.5"))
	assert.False(t, IsFloat("1e10"))
}

func TestClassify(t *testing.T) {
	testCases := []struct {
		Text   string
		Quoted bool
		Type   ast.NodeType
		OK     bool
	}{
		{"nil", false, ast.NodeTypeNil, true},
		{"nil", true, ast.NodeTypeNil, true},
		{"hello", true, ast.NodeTypeString, true},
		{"42", true, ast.NodeTypeString, true},
		{"", true, ast.NodeTypeString, true},
		{":kw", false, ast.NodeTypeKeyword, true},
		{"sym", false, ast.NodeTypeSymbol, true},
		{"true", false, ast.NodeTypeSymbol, true},
		{"false", false, ast.NodeTypeSymbol, true},
		{`\c`, false, ast.NodeTypeChar, true},
		{"42", false, ast.NodeTypeInt, true},
		{"-42", false, ast.NodeTypeInvalid, false},
		{"4.2", false, ast.NodeTypeInvalid, false},
		{"#tag", false, ast.NodeTypeInvalid, false},
		{"::x", false, ast.NodeTypeInvalid, false},
	}

	for _, tc := range testCases {
		nt, ok := Classify(tc.Text, tc.Quoted)
		assert.Equal(t, tc.OK, ok, "text: %q", tc.Text)
		assert.Equal(t, tc.Type, nt, "text: %q", tc.Text)
	}
}
