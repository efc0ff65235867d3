package request

import (
	"testing"
	"time"

	"fyne.io/fyne/v2/test"
	"fyne.io/fyne/v2/widget"
	"github.com/stretchr/testify/assert"

	"github.com/shhac/snooze/internal/domain"
	"github.com/shhac/snooze/internal/logging"
	"github.com/shhac/snooze/internal/model"
)

func newPanel() (*RequestPanel, *model.RequestState) {
	state := model.NewRequestState()
	return NewRequestPanel(state, logging.NewNopLogger()), state
}

func TestNewRequestPanel(t *testing.T) {
	app := test.NewApp()
	defer app.Quit()

	p, _ := newPanel()

	assert.Len(t, p.methodButtons, len(domain.Methods))
	assert.Len(t, p.tabs.Items, 3)
	assert.Equal(t, model.TabHeaders, p.tabs.Selected().Text)
	assert.Eventually(t, func() bool {
		return p.SelectedMethodButton() == p.methodButtons[domain.MethodGet]
	}, time.Second, 10*time.Millisecond)
	assert.Equal(t, 1, p.headers.Len(), "one empty header row")
	assert.Equal(t, 1, p.query.Len(), "one empty query row")
}

func TestRequestPanel_SelectMethod(t *testing.T) {
	app := test.NewApp()
	defer app.Quit()

	p, state := newPanel()
	test.Tap(p.methodButtons[domain.MethodPatch])

	method, _ := state.Method.Get()
	assert.Equal(t, "PATCH", method)
	assert.Eventually(t, func() bool {
		return p.methodButtons[domain.MethodPatch].Importance == widget.HighImportance &&
			p.methodButtons[domain.MethodGet].Importance == widget.MediumImportance
	}, time.Second, 10*time.Millisecond)
}

func TestRequestPanel_Send(t *testing.T) {
	app := test.NewApp()
	defer app.Quit()

	p, state := newPanel()
	sends := 0
	p.SetOnSend(func() { sends++ })

	test.Type(p.URLEntry(), "http://localhost:8080")
	test.Tap(p.sendBtn)
	p.TriggerSend()

	assert.Equal(t, 2, sends)
	assert.Eventually(t, func() bool {
		url, _ := state.URL.Get()
		return url == "http://localhost:8080"
	}, time.Second, 10*time.Millisecond)
}

func TestRequestPanel_SendWithoutCallback(t *testing.T) {
	app := test.NewApp()
	defer app.Quit()

	p, _ := newPanel()
	assert.NotPanics(t, p.TriggerSend)
}

func TestRequestPanel_TabsFollowState(t *testing.T) {
	app := test.NewApp()
	defer app.Quit()

	p, state := newPanel()

	p.SelectTab(model.TabQuery)
	assert.Eventually(t, func() bool {
		return p.tabs.Selected().Text == model.TabQuery
	}, time.Second, 10*time.Millisecond)

	p.tabs.Select(p.tabByName[model.TabBody])
	tab, _ := state.Tab.Get()
	assert.Equal(t, model.TabBody, tab)

	p.SelectTab("nope")
	tab, _ = state.Tab.Get()
	assert.Equal(t, model.TabBody, tab)
}

func TestRequestPanel_FormatBody(t *testing.T) {
	app := test.NewApp()
	defer app.Quit()

	p, state := newPanel()
	_ = state.Body.Set(`{"a":[1,2]}`)

	test.Tap(p.formatBtn)
	body, _ := state.Body.Get()
	assert.Equal(t, "{\n  \"a\": [1, 2]\n}", body)

	_ = state.Body.Set("not json")
	p.FormatBody()
	body, _ = state.Body.Get()
	assert.Equal(t, "not json", body)
}
