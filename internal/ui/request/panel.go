package request

import (
	"log/slog"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/data/binding"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/shhac/snooze/internal/domain"
	"github.com/shhac/snooze/internal/jsontree"
	"github.com/shhac/snooze/internal/model"
)

// RequestPanel handles request input: method, URL, headers, body and query.
//
// The editor tabs and the state.Tab binding are kept in step with a single
// 'syncing' flag: a tab click sets the binding, and the binding listener
// returns early while the click is being handled.
type RequestPanel struct {
	widget.BaseWidget

	state *model.RequestState

	heading       *widget.Label
	methodButtons map[domain.Method]*widget.Button
	methodRow     *fyne.Container
	urlEntry      *widget.Entry
	sendBtn       *widget.Button

	bodyEditor *widget.Entry
	formatBtn  *widget.Button
	headers    *PairEditor
	query      *PairEditor

	tabs      *container.AppTabs
	tabByName map[string]*container.TabItem
	syncing   bool // Flag to prevent sync loops

	logger *slog.Logger

	onSend func()
}

// NewRequestPanel creates a new request panel
func NewRequestPanel(state *model.RequestState, logger *slog.Logger) *RequestPanel {
	p := &RequestPanel{
		state:         state,
		methodButtons: make(map[domain.Method]*widget.Button),
		tabByName:     make(map[string]*container.TabItem),
		logger:        logger,
	}

	p.heading = widget.NewLabelWithStyle("request", fyne.TextAlignLeading, fyne.TextStyle{Bold: true})
	p.heading.SizeName = theme.SizeNameSubHeadingText

	// One button per method; the selected one is filled with its color.
	p.methodRow = container.NewHBox()
	for _, m := range domain.Methods {
		method := m
		btn := widget.NewButton(method.String(), func() {
			p.SelectMethod(method)
		})
		p.methodButtons[method] = btn
		p.methodRow.Add(container.NewThemeOverride(btn, newMethodTheme(method)))
	}
	state.Method.AddListener(binding.NewDataListener(p.updateMethodButtons))

	p.urlEntry = widget.NewEntryWithData(state.URL)
	p.urlEntry.SetPlaceHolder("url")
	p.urlEntry.TextStyle = fyne.TextStyle{Monospace: true}
	p.urlEntry.OnSubmitted = func(string) { p.handleSend() }

	// Send button
	p.sendBtn = widget.NewButtonWithIcon("send", theme.MailSendIcon(), p.handleSend)
	p.sendBtn.Importance = widget.HighImportance

	// Body editor bound to state.Body
	p.bodyEditor = widget.NewMultiLineEntry()
	p.bodyEditor.SetPlaceHolder(`{"field": "value"}`)
	p.bodyEditor.TextStyle = fyne.TextStyle{Monospace: true}
	p.bodyEditor.Wrapping = fyne.TextWrapOff
	p.bodyEditor.Bind(state.Body)
	p.formatBtn = widget.NewButton("format json", p.FormatBody)

	p.headers = NewPairEditor(state.Headers, ":", "add header", logger)
	p.query = NewPairEditor(state.Query, "=", "add query parameter", logger)

	p.tabs = container.NewAppTabs(
		p.newTab(model.TabHeaders, p.headers),
		p.newTab(model.TabBody, container.NewBorder(
			nil,
			container.NewHBox(layout.NewSpacer(), p.formatBtn),
			nil, nil,
			p.bodyEditor,
		)),
		p.newTab(model.TabQuery, container.NewBorder(
			widget.NewLabel("query parameters:"),
			nil, nil, nil,
			p.query,
		)),
	)

	// Listen for tab changes and sync to state
	p.tabs.OnSelected = func(item *container.TabItem) {
		// Prevent sync loops when the user clicks a tab
		if p.syncing {
			return
		}
		p.syncing = true
		defer func() { p.syncing = false }()

		p.logger.Info("switched editor tab", slog.String("tab", item.Text))
		_ = p.state.Tab.Set(item.Text)
	}

	// Listen for state.Tab changes (programmatic changes)
	state.Tab.AddListener(binding.NewDataListener(func() {
		if p.syncing {
			return
		}
		name, _ := state.Tab.Get()
		if item, ok := p.tabByName[name]; ok && p.tabs.Selected() != item {
			p.syncing = true
			defer func() { p.syncing = false }()
			p.tabs.Select(item)
		}
	}))

	p.ExtendBaseWidget(p)
	return p
}

func (p *RequestPanel) newTab(name string, content fyne.CanvasObject) *container.TabItem {
	item := container.NewTabItem(name, content)
	p.tabByName[name] = item
	return item
}

// SetOnSend sets the callback for when send is clicked
func (p *RequestPanel) SetOnSend(fn func()) {
	p.onSend = fn
}

// SelectMethod makes m the request method.
func (p *RequestPanel) SelectMethod(m domain.Method) {
	p.logger.Info("changed method", slog.String("method", m.String()))
	_ = p.state.Method.Set(m.String())
}

// updateMethodButtons highlights the selected method.
func (p *RequestPanel) updateMethodButtons() {
	name, _ := p.state.Method.Get()
	selected, err := domain.ParseMethod(name)
	if err != nil {
		selected = domain.MethodGet
	}
	for m, btn := range p.methodButtons {
		if m == selected {
			btn.Importance = widget.HighImportance
		} else {
			btn.Importance = widget.MediumImportance
		}
		btn.Refresh()
	}
}

// SelectedMethodButton returns the button of the selected method.
func (p *RequestPanel) SelectedMethodButton() *widget.Button {
	for _, btn := range p.methodButtons {
		if btn.Importance == widget.HighImportance {
			return btn
		}
	}
	return nil
}

// FormatBody re-indents the body when it is valid JSON.
func (p *RequestPanel) FormatBody() {
	body, _ := p.state.Body.Get()
	formatted := jsontree.Pretty(body)
	if formatted != body {
		_ = p.state.Body.Set(formatted)
	}
}

// handleSend invokes the onSend callback
func (p *RequestPanel) handleSend() {
	if p.onSend == nil {
		return
	}
	p.onSend()
}

// TriggerSend programmatically triggers the send action (for keyboard shortcut)
func (p *RequestPanel) TriggerSend() {
	p.handleSend()
}

// SelectTab switches the editor to the named tab (for keyboard shortcuts).
func (p *RequestPanel) SelectTab(name string) {
	if _, ok := p.tabByName[name]; ok {
		_ = p.state.Tab.Set(name)
	}
}

// URLEntry returns the URL entry so shortcuts can focus it.
func (p *RequestPanel) URLEntry() *widget.Entry {
	return p.urlEntry
}

// CreateRenderer returns the widget renderer
func (p *RequestPanel) CreateRenderer() fyne.WidgetRenderer {
	urlRow := container.NewBorder(nil, nil, nil, p.sendBtn, p.urlEntry)

	content := container.NewBorder(
		container.NewVBox(
			p.heading,
			widget.NewSeparator(),
			container.NewHScroll(p.methodRow),
			urlRow,
			widget.NewSeparator(),
		),
		nil, nil, nil,
		p.tabs,
	)

	return widget.NewSimpleRenderer(content)
}
