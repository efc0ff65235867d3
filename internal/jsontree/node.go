package jsontree

import (
	"strconv"
	"strings"

	"github.com/tidwall/gjson"
)

// Kind is the JSON type of a node.
type Kind int

const (
	KindNull Kind = iota
	KindBool
	KindNumber
	KindString
	KindArray
	KindObject
)

func (k Kind) String() string {
	switch k {
	case KindBool:
		return "bool"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindArray:
		return "array"
	case KindObject:
		return "object"
	default:
		return "null"
	}
}

// RootID is the ID of the document root.
const RootID = "$"

// Node is one value in a parsed document.
type Node struct {
	ID       string
	ParentID string // empty for the root
	Key      string // member name; empty for array elements and the root
	Index    int    // position within an array parent, -1 otherwise
	Kind     Kind
	Children []*Node

	result gjson.Result
}

// IsBranch reports whether the node is an object or an array.
func (n *Node) IsBranch() bool {
	return n.Kind == KindObject || n.Kind == KindArray
}

// Value converts the node into plain Go values: map[string]any, []any,
// string, float64, bool or nil.
func (n *Node) Value() any {
	return n.result.Value()
}

// Raw returns the node's JSON text exactly as it appeared in the document.
func (n *Node) Raw() string {
	return n.result.Raw
}

// Name returns the label used for the node in a tree: the member name,
// "[i]" for array elements, or "$" for the root.
func (n *Node) Name() string {
	switch {
	case n.ParentID == "":
		return RootID
	case n.Index >= 0:
		return "[" + strconv.Itoa(n.Index) + "]"
	default:
		return n.Key
	}
}

// Summary returns a short rendering of the node's value. Scalars render as
// JSON, containers as a count.
func (n *Node) Summary() string {
	switch n.Kind {
	case KindObject:
		return "{" + strconv.Itoa(len(n.Children)) + "}"
	case KindArray:
		return "[" + strconv.Itoa(len(n.Children)) + "]"
	default:
		return n.result.Raw
	}
}

// Label is the single-line text shown for the node.
func (n *Node) Label() string {
	return n.Name() + ": " + n.Summary()
}

// searchText is the scalar text matched by Search; empty for containers.
func (n *Node) searchText() string {
	switch n.Kind {
	case KindObject, KindArray:
		return ""
	case KindString:
		return n.result.Str
	default:
		return n.result.Raw
	}
}

func kindOf(r gjson.Result) Kind {
	switch r.Type {
	case gjson.True, gjson.False:
		return KindBool
	case gjson.Number:
		return KindNumber
	case gjson.String:
		return KindString
	case gjson.JSON:
		if r.IsArray() {
			return KindArray
		}
		return KindObject
	default:
		return KindNull
	}
}

// escapeSegment escapes a member name the way JSON Pointer does, so "/"
// inside a key cannot be mistaken for a path separator.
func escapeSegment(key string) string {
	if !strings.ContainsAny(key, "~/") {
		return key
	}
	key = strings.ReplaceAll(key, "~", "~0")
	return strings.ReplaceAll(key, "/", "~1")
}
