package ast

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func sampleTree() *Node {
	return NewCollection(NodeTypeMap, 1, []*Node{
		NewScalar(NodeTypeKeyword, ":a", 1),
		NewCollection(NodeTypeVector, 1, []*Node{
			NewScalar(NodeTypeInt, "1", 1),
			NewScalar(NodeTypeString, `say "hi" \n`, 1),
		}),
		NewScalar(NodeTypeKeyword, ":b", 2),
		NewCollection(NodeTypeSet, 2, []*Node{
			NewScalar(NodeTypeSymbol, "x", 2),
			NewTagged(NodeTypeTagged, 2, "inst", NewScalar(NodeTypeString, "1985", 2)),
		}),
		NewScalar(NodeTypeKeyword, ":c", 3),
		NewTagged(NodeTypeDiscard, 3, "_", NewCollection(NodeTypeList, 3, nil)),
	})
}

func TestEncode(t *testing.T) {
	assert.Equal(t,
		`{:a [1 "say \"hi\" \\n"] :b #{x #inst "1985"} :c #_ ()}`,
		string(Encode(sampleTree())),
	)
	assert.Equal(t, "nil", string(Encode(nil)))
}

func TestEncodeUnderscoreTag(t *testing.T) {
	tagged := NewTagged(NodeTypeTagged, 1, "_x", NewScalar(NodeTypeSymbol, "a", 1))
	assert.Equal(t, `"#_x" a`, string(Encode(tagged)))

	discard := NewTagged(NodeTypeDiscard, 1, "_", NewScalar(NodeTypeSymbol, "a", 1))
	assert.Equal(t, `#_ a`, string(Encode(discard)))
}

func TestDebugDiscard(t *testing.T) {
	discard := NewTagged(NodeTypeDiscard, 1, "_", NewScalar(NodeTypeInt, "5", 1))
	assert.Equal(t, "<Other >", Debug(discard))
	assert.Equal(t, "[<Other > <EdnInt 1>]", Debug(NewCollection(NodeTypeVector, 1, []*Node{
		discard,
		NewScalar(NodeTypeInt, "1", 1),
	})))
}

func TestDebug(t *testing.T) {
	assert.Equal(t,
		`{<EdnKeyword :a> [<EdnInt 1> "say "hi" \n"] <EdnKeyword :b> {<EdnSymbol x> #<EdnSymbol inst> "1985"} <EdnKeyword :c> <Other >}`,
		Debug(sampleTree()),
	)

	assert.Equal(t, "<EdnNil nil>", Debug(NewScalar(NodeTypeNil, "nil", 1)))
	assert.Equal(t, `<EdnChar \a>`, Debug(NewScalar(NodeTypeChar, `\a`, 1)))
	assert.Equal(t, "<EdnBool true>", Debug(NewScalar(NodeTypeBool, "true", 1)))
}

func TestFprint(t *testing.T) {
	var buf bytes.Buffer
	Fprint(&buf, NewCollection(NodeTypeList, 1, []*Node{
		NewScalar(NodeTypeInt, "1", 1),
		NewTagged(NodeTypeTagged, 2, "foo", NewScalar(NodeTypeSymbol, "bar", 2)),
	}))

	expected := "(list) [1]\n" +
		"    (int): \"1\" [1]\n" +
		"    (tagged) [2]\n" +
		"        (symbol): \"foo\" [2]\n" +
		"        (symbol): \"bar\" [2]\n"
	assert.Equal(t, expected, buf.String())
}
