package request

import (
	"log/slog"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/data/binding"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/shhac/snooze/internal/domain"
	"github.com/shhac/snooze/internal/model"
)

// PairEditor edits an ordered list of key/value rows stored in a
// binding.UntypedList of domain.KeyValue. Rows with an empty key are kept
// here and dropped only when the request is built.
type PairEditor struct {
	widget.BaseWidget

	list      binding.UntypedList
	separator string
	addLabel  string
	logger    *slog.Logger

	rows    []*pairRow
	rowBox  *fyne.Container
	addBtn  *widget.Button
	syncing bool // set while rows are written from the list
}

type pairRow struct {
	deleteBtn *widget.Button
	keyEntry  *widget.Entry
	valEntry  *widget.Entry
	box       *fyne.Container
}

// NewPairEditor creates an editor over list. separator is shown between
// key and value (":" for headers, "=" for query parameters).
func NewPairEditor(list binding.UntypedList, separator, addLabel string, logger *slog.Logger) *PairEditor {
	e := &PairEditor{
		list:      list,
		separator: separator,
		addLabel:  addLabel,
		logger:    logger,
		rowBox:    container.NewVBox(),
	}
	e.addBtn = widget.NewButtonWithIcon(addLabel, theme.ContentAddIcon(), e.AddRow)

	list.AddListener(binding.NewDataListener(e.sync))
	e.sync()

	e.ExtendBaseWidget(e)
	return e
}

// AddRow appends an empty row.
func (e *PairEditor) AddRow() {
	e.logger.Debug("adding row", slog.String("editor", e.addLabel))
	_ = e.list.Append(domain.KeyValue{})
	e.sync()
}

// RemoveRow deletes the row at index.
func (e *PairEditor) RemoveRow(index int) {
	pairs := model.Pairs(e.list)
	if index < 0 || index >= len(pairs) {
		return
	}
	e.logger.Debug("removing row", slog.String("editor", e.addLabel), slog.Int("index", index))
	pairs = append(pairs[:index], pairs[index+1:]...)
	model.SetPairs(e.list, pairs)
	e.sync()
}

// Len returns the number of rows shown.
func (e *PairEditor) Len() int {
	return len(e.rows)
}

// sync makes the rows match the list. Rows are rebuilt only when the count
// changes so an entry being typed into keeps focus.
func (e *PairEditor) sync() {
	e.syncing = true
	defer func() { e.syncing = false }()

	pairs := model.Pairs(e.list)

	if len(pairs) != len(e.rows) {
		e.rows = make([]*pairRow, len(pairs))
		objects := make([]fyne.CanvasObject, len(pairs))
		for i := range pairs {
			e.rows[i] = e.newRow(i)
			objects[i] = e.rows[i].box
		}
		e.rowBox.Objects = objects
		e.rowBox.Refresh()
	}

	for i, kv := range pairs {
		row := e.rows[i]
		if row.keyEntry.Text != kv.Key {
			row.keyEntry.SetText(kv.Key)
		}
		if row.valEntry.Text != kv.Value {
			row.valEntry.SetText(kv.Value)
		}
	}
}

func (e *PairEditor) newRow(index int) *pairRow {
	row := &pairRow{
		keyEntry: widget.NewEntry(),
		valEntry: widget.NewEntry(),
	}
	row.keyEntry.SetPlaceHolder("key")
	row.valEntry.SetPlaceHolder("value")

	row.deleteBtn = widget.NewButton("×", func() { e.RemoveRow(index) })
	row.deleteBtn.Importance = widget.DangerImportance

	update := func(string) {
		if e.syncing {
			return
		}
		_ = e.list.SetValue(index, domain.KeyValue{Key: row.keyEntry.Text, Value: row.valEntry.Text})
	}
	row.keyEntry.OnChanged = update
	row.valEntry.OnChanged = update

	row.box = container.NewBorder(
		nil, nil,
		row.deleteBtn, nil,
		container.NewGridWithColumns(2,
			row.keyEntry,
			container.NewBorder(nil, nil, widget.NewLabel(e.separator), nil, row.valEntry),
		),
	)
	return row
}

// CreateRenderer implements fyne.Widget.
func (e *PairEditor) CreateRenderer() fyne.WidgetRenderer {
	content := container.NewBorder(
		nil,
		container.NewHBox(e.addBtn),
		nil, nil,
		container.NewVScroll(e.rowBox),
	)
	return widget.NewSimpleRenderer(content)
}
