package response

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/shhac/snooze/internal/jsontree"
)

// JSONTree displays a parsed JSON document as a collapsible tree and
// highlights the nodes matching the current search.
type JSONTree struct {
	widget.BaseWidget

	tree       *widget.Tree
	themedTree fyne.CanvasObject // tree wrapped with custom theme

	doc     *jsontree.Tree
	query   string
	result  jsontree.SearchResult
	matches map[string]bool

	// Callbacks
	onNodeSelect func(node *jsontree.Node)
}

// NewJSONTree creates an empty tree widget.
func NewJSONTree() *JSONTree {
	t := &JSONTree{matches: map[string]bool{}}

	t.tree = widget.NewTree(
		t.childUIDs,
		t.isBranch,
		t.create,
		t.update,
	)
	t.tree.OnSelected = t.onTreeSelected

	// Chevron overrides only affect the tree, not the rest of the window.
	t.themedTree = container.NewThemeOverride(t.tree, newTreeTheme(theme.DefaultTheme()))

	t.ExtendBaseWidget(t)
	return t
}

// SetOnNodeSelect sets the callback invoked when a leaf is selected.
func (t *JSONTree) SetOnNodeSelect(fn func(node *jsontree.Node)) {
	t.onNodeSelect = fn
}

// SetDocument replaces the displayed document and applies the default
// expansion for the current search.
func (t *JSONTree) SetDocument(doc *jsontree.Tree) {
	t.doc = doc
	t.tree.UnselectAll()
	t.runSearch()
	t.ResetExpanded()
}

// Document returns the displayed document, nil if none.
func (t *JSONTree) Document() *jsontree.Tree {
	return t.doc
}

// Search records query, recomputes the matches and resets the expansion
// so that every match is visible.
func (t *JSONTree) Search(query string) {
	t.query = query
	t.runSearch()
	t.ResetExpanded()
}

// Query returns the search text currently applied.
func (t *JSONTree) Query() string {
	return t.query
}

// Result returns the outcome of the current search.
func (t *JSONTree) Result() jsontree.SearchResult {
	return t.result
}

// ResetExpanded discards manual expand/collapse changes: with no search
// every branch opens, otherwise exactly the ancestors of the matches.
func (t *JSONTree) ResetExpanded() {
	t.tree.CloseAllBranches()
	if t.doc == nil {
		t.tree.Refresh()
		return
	}
	for _, id := range t.result.Expand {
		t.tree.OpenBranch(id)
	}
	t.tree.Refresh()
}

// Expanded returns the open branches in document order.
func (t *JSONTree) Expanded() []string {
	if t.doc == nil {
		return nil
	}
	var ids []string
	for _, id := range t.doc.BranchIDs() {
		if t.tree.IsBranchOpen(id) {
			ids = append(ids, id)
		}
	}
	return ids
}

// ToggleBranch opens a closed branch or closes an open one.
func (t *JSONTree) ToggleBranch(id string) {
	if t.tree.IsBranchOpen(id) {
		t.tree.CloseBranch(id)
	} else {
		t.tree.OpenBranch(id)
	}
}

func (t *JSONTree) runSearch() {
	t.matches = map[string]bool{}
	if t.doc == nil {
		t.result = jsontree.SearchResult{}
		return
	}
	t.result = t.doc.Search(t.query)
	for _, id := range t.result.Matches {
		t.matches[id] = true
	}
}

// Refresh updates the tree from the current document.
func (t *JSONTree) Refresh() {
	t.tree.Refresh()
}

// CreateRenderer creates the renderer for this widget
func (t *JSONTree) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(t.themedTree)
}

func (t *JSONTree) childUIDs(uid string) []string {
	if t.doc == nil {
		return nil
	}
	return t.doc.ChildIDs(uid)
}

func (t *JSONTree) isBranch(uid string) bool {
	if t.doc == nil {
		return uid == ""
	}
	return t.doc.IsBranch(uid)
}

// create creates a new tree node widget
func (t *JSONTree) create(branch bool) fyne.CanvasObject {
	// Branches and leaves share one structure so rows can be recycled.
	icon := canvas.NewImageFromResource(theme.FileIcon())
	icon.FillMode = canvas.ImageFillContain
	icon.SetMinSize(fyne.NewSize(16, 16))

	label := widget.NewLabel("")
	label.TextStyle = fyne.TextStyle{Monospace: true}
	label.Truncation = fyne.TextTruncateEllipsis

	return container.NewBorder(nil, nil, icon, nil, label)
}

// update updates a tree node widget with the appropriate data
func (t *JSONTree) update(uid string, branch bool, obj fyne.CanvasObject) {
	cont := obj.(*fyne.Container)
	label := cont.Objects[0].(*widget.Label)
	icon := cont.Objects[1].(*canvas.Image)

	if t.doc == nil {
		return
	}
	node, ok := t.doc.Node(uid)
	if !ok {
		label.SetText("")
		return
	}

	icon.Resource = kindIcon(node.Kind)
	icon.Refresh()

	if t.matches[uid] {
		label.TextStyle = fyne.TextStyle{Monospace: true, Bold: true}
		label.Importance = widget.HighImportance
	} else {
		label.TextStyle = fyne.TextStyle{Monospace: true}
		label.Importance = widget.MediumImportance
	}
	label.SetText(node.Label())
}

// kindIcon returns the icon shown next to a node of kind k.
func kindIcon(k jsontree.Kind) fyne.Resource {
	switch k {
	case jsontree.KindObject:
		return theme.FolderIcon()
	case jsontree.KindArray:
		return theme.ListIcon()
	case jsontree.KindString:
		return theme.DocumentIcon()
	case jsontree.KindNull:
		return theme.ContentRemoveIcon()
	default:
		return theme.FileIcon()
	}
}

func (t *JSONTree) onTreeSelected(uid string) {
	// Unselect so clicking the same node again fires OnSelected.
	defer t.tree.UnselectAll()

	if t.doc == nil {
		return
	}
	node, ok := t.doc.Node(uid)
	if !ok {
		return
	}
	if node.IsBranch() {
		t.ToggleBranch(uid)
		return
	}
	if t.onNodeSelect != nil {
		t.onNodeSelect(node)
	}
}
