package response

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/data/binding"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/shhac/snooze/internal/jsontree"
	"github.com/shhac/snooze/internal/model"
	"github.com/shhac/snooze/internal/ui/components"
)

// View modes.
const (
	ModeTree   = "tree"
	ModePretty = "pretty"
	ModeText   = "highlighted"
	ModePlain  = "plain"
)

// maxHeaderRunes is where long header rows are cut off and moved to a hover popup.
const maxHeaderRunes = 96

// ResponsePanel displays response data with reactive binding to state.
type ResponsePanel struct {
	widget.BaseWidget

	state *model.ResponseState

	heading     *widget.Label
	loadingBar  *widget.ProgressBarInfinite
	searchEntry *widget.Entry
	matchLabel  *widget.Label
	clearButton *widget.Button
	resetButton *widget.Button
	pathLabel   *widget.Label
	copyButton  *widget.Button

	tree        *JSONTree
	prettyText  *widget.RichText
	rawText     *widget.RichText
	plainText   *BodyView
	headerRows  *fyne.Container
	headerTitle binding.String

	jsonTabs *components.ModeTabs
	textTabs *components.ModeTabs

	// Container for switching between content views
	contentContainer *fyne.Container
	jsonContent      fyne.CanvasObject
	textContent      fyne.CanvasObject

	selected *jsontree.Node
	rendered renderKey
}

// renderKey identifies what the content views currently show, so that
// listeners firing for the same response do not re-highlight it.
type renderKey struct {
	text        string
	contentType string
	tree        *jsontree.Tree
}

// NewResponsePanel creates a new response panel bound to the application state.
func NewResponsePanel(state *model.ResponseState) *ResponsePanel {
	p := &ResponsePanel{
		state: state,
	}
	p.ExtendBaseWidget(p)
	p.initializeComponents()
	p.setupBindings()
	return p
}

// initializeComponents creates all UI components.
func (p *ResponsePanel) initializeComponents() {
	p.heading = widget.NewLabelWithStyle("response", fyne.TextAlignLeading, fyne.TextStyle{Bold: true})
	p.heading.SizeName = theme.SizeNameSubHeadingText

	// Loading bar (infinite progress)
	p.loadingBar = widget.NewProgressBarInfinite()
	p.loadingBar.Stop()
	p.loadingBar.Hide() // Hidden by default

	// Search row
	p.searchEntry = widget.NewEntryWithData(p.state.Search)
	p.searchEntry.SetPlaceHolder("key or value")
	p.matchLabel = widget.NewLabel("")
	p.matchLabel.Importance = widget.LowImportance
	p.clearButton = widget.NewButton("clear", p.ClearSearch)

	// Tree and its footer
	p.tree = NewJSONTree()
	p.tree.SetOnNodeSelect(p.selectNode)
	p.resetButton = widget.NewButton("reset expanded", p.ResetExpanded)
	p.pathLabel = widget.NewLabel("")
	p.pathLabel.TextStyle = fyne.TextStyle{Monospace: true}
	p.pathLabel.Truncation = fyne.TextTruncateEllipsis
	p.copyButton = widget.NewButtonWithIcon("", theme.ContentCopyIcon(), p.copySelected)
	p.copyButton.Disable()

	p.prettyText = widget.NewRichText()
	p.rawText = widget.NewRichText()
	p.plainText = NewBodyView()

	p.jsonTabs = components.NewModeTabs(
		components.Mode{Name: ModeTree, Content: p.tree},
		components.Mode{Name: ModePretty, Content: container.NewScroll(p.prettyText)},
	)
	p.textTabs = components.NewModeTabs(
		components.Mode{Name: ModeText, Content: container.NewScroll(p.rawText)},
		components.Mode{Name: ModePlain, Content: p.plainText},
	)

	searchRow := container.NewBorder(
		nil, nil,
		widget.NewLabel("search:"),
		container.NewHBox(p.matchLabel, p.clearButton),
		p.searchEntry,
	)
	footerRow := container.NewBorder(
		nil, nil,
		p.resetButton,
		p.copyButton,
		p.pathLabel,
	)

	p.jsonContent = container.NewBorder(searchRow, footerRow, nil, nil, p.jsonTabs)
	p.textContent = p.textTabs

	// Main content container (switches between json and text)
	p.contentContainer = container.NewStack(p.textContent)

	p.headerTitle = binding.NewString()
	_ = p.headerTitle.Set("headers")
	p.headerRows = container.NewVBox()
}

// setupBindings establishes reactive bindings to the state.
func (p *ResponsePanel) setupBindings() {
	content := binding.NewDataListener(p.refreshContent)
	p.state.TextData.AddListener(content)
	p.state.Tree.AddListener(content)
	p.state.ContentType.AddListener(content)
	p.state.Status.AddListener(content)

	// Editing the search text re-applies the default expansion.
	p.state.Search.AddListener(binding.NewDataListener(func() {
		query, _ := p.state.Search.Get()
		if query == p.tree.Query() {
			return
		}
		p.tree.Search(query)
		p.updateMatchLabel()
	}))

	p.state.Headers.AddListener(binding.NewDataListener(p.refreshHeaders))

	// Listen to loading state
	p.state.Loading.AddListener(binding.NewDataListener(func() {
		loading, _ := p.state.Loading.Get()
		if loading {
			p.loadingBar.Start()
			p.loadingBar.Show()
		} else {
			p.loadingBar.Stop()
			p.loadingBar.Hide()
		}
	}))
}

// refreshContent re-renders the body views when the response changes.
func (p *ResponsePanel) refreshContent() {
	text, _ := p.state.TextData.Get()
	status, _ := p.state.Status.Get()
	contentType, _ := p.state.ContentType.Get()
	if status == "" {
		// Placeholders and failures are never syntax highlighted.
		contentType = "text/plain"
	}
	tree := p.state.CurrentTree()

	key := renderKey{text: text, contentType: contentType, tree: tree}
	if key == p.rendered {
		return
	}
	treeChanged := key.tree != p.rendered.tree
	p.rendered = key

	if tree != nil {
		if treeChanged {
			query, _ := p.state.Search.Get()
			p.tree.query = query
			p.tree.SetDocument(tree)
			p.selectNode(nil)
			p.prettyText.Segments = highlight(jsontree.Pretty(text), "application/json")
			p.prettyText.Refresh()
			p.updateMatchLabel()
		}
		p.show(p.jsonContent)
		return
	}

	if treeChanged {
		p.tree.SetDocument(nil)
		p.selectNode(nil)
	}
	p.rawText.Segments = highlight(text, contentType)
	p.rawText.Refresh()
	p.plainText.SetBody(text)
	p.show(p.textContent)
}

func (p *ResponsePanel) show(obj fyne.CanvasObject) {
	if len(p.contentContainer.Objects) == 1 && p.contentContainer.Objects[0] == obj {
		return
	}
	p.contentContainer.Objects = []fyne.CanvasObject{obj}
	p.contentContainer.Refresh()
}

// refreshHeaders rebuilds the response header rows.
func (p *ResponsePanel) refreshHeaders() {
	rows, _ := p.state.Headers.Get()

	objects := make([]fyne.CanvasObject, len(rows))
	for i, row := range rows {
		objects[i] = components.NewHintLabel(row, maxHeaderRunes)
	}
	p.headerRows.Objects = objects
	p.headerRows.Refresh()

	if len(rows) == 0 {
		_ = p.headerTitle.Set("headers")
	} else {
		_ = p.headerTitle.Set(fmt.Sprintf("headers (%d)", len(rows)))
	}
}

func (p *ResponsePanel) updateMatchLabel() {
	if p.tree.Query() == "" || p.tree.Document() == nil {
		p.matchLabel.SetText("")
		return
	}
	result := p.tree.Result()
	switch n := len(result.Matches); {
	case n == 0:
		p.matchLabel.SetText("no matches")
	case result.Fuzzy:
		p.matchLabel.SetText(fmt.Sprintf("%d fuzzy", n))
	case n == 1:
		p.matchLabel.SetText("1 match")
	default:
		p.matchLabel.SetText(fmt.Sprintf("%d matches", n))
	}
}

func (p *ResponsePanel) selectNode(node *jsontree.Node) {
	p.selected = node
	if node == nil {
		p.pathLabel.SetText("")
		p.copyButton.Disable()
		return
	}
	p.pathLabel.SetText(node.ID)
	p.copyButton.Enable()
}

// copySelected puts the selected leaf's JSON text on the clipboard.
func (p *ResponsePanel) copySelected() {
	if p.selected == nil {
		return
	}
	fyne.CurrentApp().Clipboard().SetContent(p.selected.Raw())
}

// ClearSearch empties the search box, which also resets the expansion.
func (p *ResponsePanel) ClearSearch() {
	_ = p.state.Search.Set("")
}

// ResetExpanded discards manual expand/collapse changes in the tree.
func (p *ResponsePanel) ResetExpanded() {
	p.tree.ResetExpanded()
}

// SearchEntry returns the search box so shortcuts can focus it.
func (p *ResponsePanel) SearchEntry() *widget.Entry {
	return p.searchEntry
}

// Tree returns the JSON tree widget.
func (p *ResponsePanel) Tree() *JSONTree {
	return p.tree
}

// ShowingTree reports whether the structured view is active.
func (p *ResponsePanel) ShowingTree() bool {
	return len(p.contentContainer.Objects) == 1 && p.contentContainer.Objects[0] == p.jsonContent
}

// CreateRenderer implements fyne.Widget.
func (p *ResponsePanel) CreateRenderer() fyne.WidgetRenderer {
	top := container.NewVBox(p.heading, widget.NewSeparator())
	headerScroll := container.NewVScroll(p.headerRows)
	headerScroll.SetMinSize(fyne.NewSize(0, 120))
	bottom := container.NewVBox(
		components.NewCollapsibleSection(p.headerTitle, headerScroll, false),
		p.loadingBar,
	)

	content := container.NewBorder(
		top,
		bottom,
		nil,
		nil,
		p.contentContainer,
	)

	return widget.NewSimpleRenderer(content)
}

// MinSize implements fyne.Widget (optional, provides reasonable defaults).
func (p *ResponsePanel) MinSize() fyne.Size {
	return fyne.NewSize(400, 300)
}
