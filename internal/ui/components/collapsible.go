package components

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/data/binding"
	"fyne.io/fyne/v2/widget"
)

// NewCollapsibleSection creates a single-item accordion whose title tracks
// title. Sections start collapsed unless open is set.
func NewCollapsibleSection(title binding.String, content fyne.CanvasObject, open bool) *widget.Accordion {
	initial, _ := title.Get()
	item := widget.NewAccordionItem(initial, content)
	accordion := widget.NewAccordion(item)
	if open {
		accordion.Open(0)
	} else {
		accordion.Close(0)
	}

	title.AddListener(binding.NewDataListener(func() {
		text, _ := title.Get()
		if text == item.Title {
			return
		}
		item.Title = text
		accordion.Refresh()
	}))
	return accordion
}
