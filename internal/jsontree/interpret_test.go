package jsontree

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInterpret_Object(t *testing.T) {
	got := Interpret(`{"a":1}`)

	assert.Equal(t, `{"a":1}`, got.Raw)
	require.True(t, got.Structured())
	assert.Equal(t, map[string]any{"a": float64(1)}, got.Tree.Value())
}

func TestInterpret_NotJSON(t *testing.T) {
	got := Interpret("not json")

	assert.Equal(t, "not json", got.Raw)
	assert.False(t, got.Structured())
	assert.Nil(t, got.Tree)
}

func TestInterpret_Strict(t *testing.T) {
	tests := []struct {
		name string
		text string
		want bool
	}{
		{"empty", "", false},
		{"whitespace", "   \n", false},
		{"trailing comma", `{"a":1,}`, false},
		{"single quotes", `{'a':1}`, false},
		{"truncated", `{"a":[1,2`, false},
		{"trailing garbage", `{"a":1} x`, false},
		{"scalar number", `42`, true},
		{"scalar string", `"hi"`, true},
		{"null", `null`, true},
		{"array", `[1, "two", {"three": 3}]`, true},
		{"surrounding whitespace", " {\"a\": true}\n", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Interpret(tt.text)
			assert.Equal(t, tt.text, got.Raw)
			assert.Equal(t, tt.want, got.Structured())
		})
	}
}

func TestTree_OrderAndIDs(t *testing.T) {
	tree := Interpret(`{"z":1,"a":{"m":[true,null]},"k/x":"s"}`).Tree
	require.NotNil(t, tree)

	assert.Equal(t, []string{RootID}, tree.ChildIDs(""))
	assert.Equal(t, []string{"$/z", "$/a", "$/k~1x"}, tree.ChildIDs(RootID))
	assert.Equal(t, []string{"$/a/m/0", "$/a/m/1"}, tree.ChildIDs("$/a/m"))
	assert.Nil(t, tree.ChildIDs("$/missing"))
	assert.Equal(t, 7, tree.Len())

	assert.True(t, tree.IsBranch(""))
	assert.True(t, tree.IsBranch("$/a"))
	assert.False(t, tree.IsBranch("$/z"))
	assert.Equal(t, []string{"$", "$/a", "$/a/m"}, tree.BranchIDs())

	n, ok := tree.Node("$/a/m/1")
	require.True(t, ok)
	assert.Equal(t, KindNull, n.Kind)
	assert.Equal(t, 1, n.Index)
	assert.Equal(t, "[1]", n.Name())
	assert.Equal(t, []string{"$", "$/a", "$/a/m"}, tree.Ancestors("$/a/m/1"))

	slash, ok := tree.Node("$/k~1x")
	require.True(t, ok)
	assert.Equal(t, "k/x", slash.Key)
	assert.Equal(t, `k/x: "s"`, slash.Label())
}

func TestTree_DuplicateKeys(t *testing.T) {
	tree := Interpret(`{"a":1,"a":2}`).Tree
	require.NotNil(t, tree)
	assert.Equal(t, []string{"$/a", "$/a#2"}, tree.ChildIDs(RootID))
}

func TestNode_SummaryAndValue(t *testing.T) {
	tree := Interpret(`{"list":[1,2,3],"obj":{"x":"y"},"n":1.5,"b":false}`).Tree
	require.NotNil(t, tree)

	tests := []struct {
		id      string
		summary string
		value   any
		kind    Kind
	}{
		{"$/list", "[3]", []any{float64(1), float64(2), float64(3)}, KindArray},
		{"$/obj", "{1}", map[string]any{"x": "y"}, KindObject},
		{"$/n", "1.5", 1.5, KindNumber},
		{"$/b", "false", false, KindBool},
		{"$/obj/x", `"y"`, "y", KindString},
	}
	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			n, ok := tree.Node(tt.id)
			require.True(t, ok)
			assert.Equal(t, tt.summary, n.Summary())
			assert.Equal(t, tt.value, n.Value())
			assert.Equal(t, tt.kind, n.Kind)
		})
	}
	assert.Equal(t, "$", tree.Root.Name())
}

func TestPretty(t *testing.T) {
	assert.Equal(t, "{\n  \"a\": [1, 2]\n}", Pretty(`{"a":[1,2]}`))
	assert.Equal(t, "not json", Pretty("not json"))
}
