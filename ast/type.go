package ast

// NodeType represents the type of the AST node
type NodeType uint16

// Node types
const (
	nodeTypeScalar     NodeType = 128
	nodeTypeCollection NodeType = 256
	nodeTypeTagged     NodeType = 512

	NodeTypeInvalid NodeType = 0

	NodeTypeNil     = nodeTypeScalar | 1
	NodeTypeSymbol  = nodeTypeScalar | 2
	NodeTypeKeyword = nodeTypeScalar | 3
	NodeTypeBool    = nodeTypeScalar | 4
	NodeTypeInt     = nodeTypeScalar | 5
	NodeTypeFloat   = nodeTypeScalar | 6
	NodeTypeString  = nodeTypeScalar | 7
	NodeTypeChar    = nodeTypeScalar | 8

	NodeTypeList   = nodeTypeCollection | 1
	NodeTypeVector = nodeTypeCollection | 2
	NodeTypeMap    = nodeTypeCollection | 3
	NodeTypeSet    = nodeTypeCollection | 4

	NodeTypeDiscard = nodeTypeTagged | 1
	NodeTypeTagged  = nodeTypeTagged | 2
)

func (nt NodeType) String() string {
	s, ok := nodeTypeName[nt]
	if ok {
		return s
	}
	return ""
}

// IsScalar returns true for nil, symbol, keyword, bool, int, float, string
// and char.
func (nt NodeType) IsScalar() bool {
	return nt&nodeTypeScalar > 0
}

// IsCollection returns true for list, vector, map and set.
func (nt NodeType) IsCollection() bool {
	return nt&nodeTypeCollection > 0
}

// IsTagged returns true for tagged and discard.
func (nt NodeType) IsTagged() bool {
	return nt&nodeTypeTagged > 0
}

var nodeTypeName = map[NodeType]string{
	NodeTypeNil:     "nil",
	NodeTypeSymbol:  "symbol",
	NodeTypeKeyword: "keyword",
	NodeTypeBool:    "bool",
	NodeTypeInt:     "int",
	NodeTypeFloat:   "float",
	NodeTypeString:  "string",
	NodeTypeChar:    "char",
	NodeTypeList:    "list",
	NodeTypeVector:  "vector",
	NodeTypeMap:     "map",
	NodeTypeSet:     "set",
	NodeTypeDiscard: "discard",
	NodeTypeTagged:  "tagged",
}

// legacy names used by Debug
var nodeTypeDebugName = map[NodeType]string{
	NodeTypeNil:     "EdnNil",
	NodeTypeSymbol:  "EdnSymbol",
	NodeTypeKeyword: "EdnKeyword",
	NodeTypeBool:    "EdnBool",
	NodeTypeInt:     "EdnInt",
	NodeTypeFloat:   "EdnFloat",
	NodeTypeString:  "EdnString",
	NodeTypeChar:    "EdnChar",
}
