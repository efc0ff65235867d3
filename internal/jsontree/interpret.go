// Package jsontree interprets response text as JSON and exposes the result
// as an ordered tree keyed by stable path IDs.
package jsontree

import (
	"strconv"
	"strings"

	"github.com/tidwall/gjson"
	"github.com/tidwall/pretty"
)

// Interpretation is the outcome of interpreting a response body. Raw is
// always kept; Tree is nil unless the whole text is valid JSON.
type Interpretation struct {
	Raw  string
	Tree *Tree
}

// Structured reports whether a tree is available.
func (i Interpretation) Structured() bool {
	return i.Tree != nil
}

// Interpret parses text strictly: any syntax error anywhere means no tree.
func Interpret(text string) Interpretation {
	out := Interpretation{Raw: text}
	if strings.TrimSpace(text) == "" || !gjson.Valid(text) {
		return out
	}
	out.Tree = build(gjson.Parse(text))
	return out
}

// Pretty re-indents valid JSON with two spaces and returns other text
// unchanged.
func Pretty(text string) string {
	if !gjson.Valid(text) {
		return text
	}
	return strings.TrimRight(string(pretty.Pretty([]byte(text))), "\n")
}

// Tree is an ordered, immutable view of a JSON document.
type Tree struct {
	Root  *Node
	byID  map[string]*Node
	order []*Node // document order
}

func build(root gjson.Result) *Tree {
	t := &Tree{byID: make(map[string]*Node)}
	t.Root = t.add(root, RootID, "", "", -1)
	return t
}

func (t *Tree) add(r gjson.Result, id, parentID, key string, index int) *Node {
	n := &Node{
		ID:       id,
		ParentID: parentID,
		Key:      key,
		Index:    index,
		Kind:     kindOf(r),
		result:   r,
	}
	t.byID[id] = n
	t.order = append(t.order, n)

	switch n.Kind {
	case KindObject:
		r.ForEach(func(k, v gjson.Result) bool {
			childID := t.uniqueID(id + "/" + escapeSegment(k.Str))
			n.Children = append(n.Children, t.add(v, childID, id, k.Str, -1))
			return true
		})
	case KindArray:
		i := 0
		r.ForEach(func(_, v gjson.Result) bool {
			n.Children = append(n.Children, t.add(v, id+"/"+strconv.Itoa(i), id, "", i))
			i++
			return true
		})
	}
	return n
}

// uniqueID disambiguates repeated member names, which JSON permits.
func (t *Tree) uniqueID(id string) string {
	if _, taken := t.byID[id]; !taken {
		return id
	}
	for i := 2; ; i++ {
		candidate := id + "#" + strconv.Itoa(i)
		if _, taken := t.byID[candidate]; !taken {
			return candidate
		}
	}
}

// Node looks a node up by ID.
func (t *Tree) Node(id string) (*Node, bool) {
	n, ok := t.byID[id]
	return n, ok
}

// ChildIDs returns the IDs of a node's children in document order. The
// empty ID is the tree widget's virtual root, whose only child is RootID.
func (t *Tree) ChildIDs(id string) []string {
	if id == "" {
		return []string{RootID}
	}
	n, ok := t.byID[id]
	if !ok {
		return nil
	}
	ids := make([]string, len(n.Children))
	for i, c := range n.Children {
		ids[i] = c.ID
	}
	return ids
}

// IsBranch reports whether id names an object or array (or the virtual root).
func (t *Tree) IsBranch(id string) bool {
	if id == "" {
		return true
	}
	n, ok := t.byID[id]
	return ok && n.IsBranch()
}

// BranchIDs returns every container node in document order.
func (t *Tree) BranchIDs() []string {
	var ids []string
	for _, n := range t.order {
		if n.IsBranch() {
			ids = append(ids, n.ID)
		}
	}
	return ids
}

// Len returns the number of nodes in the document.
func (t *Tree) Len() int {
	return len(t.order)
}

// Value returns the whole document as plain Go values.
func (t *Tree) Value() any {
	return t.Root.Value()
}

// Ancestors returns the IDs from the root down to id's parent.
func (t *Tree) Ancestors(id string) []string {
	var chain []string
	n, ok := t.byID[id]
	for ok && n.ParentID != "" {
		chain = append(chain, n.ParentID)
		n, ok = t.byID[n.ParentID]
	}
	for i, j := 0, len(chain)-1; i < j; i, j = i+1, j-1 {
		chain[i], chain[j] = chain[j], chain[i]
	}
	return chain
}
