package model

import (
	"testing"
	"time"

	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shhac/snooze/internal/domain"
	"github.com/shhac/snooze/internal/jsontree"
	"github.com/shhac/snooze/internal/session"
)

func TestRequestState_Spec(t *testing.T) {
	test.NewTempApp(t)
	req := NewRequestState()

	_ = req.Method.Set("patch")
	_ = req.URL.Set("http://example.test")
	_ = req.Body.Set(`{"x":1}`)
	SetPairs(req.Headers, []domain.KeyValue{{Key: "A", Value: "1"}, {Key: "", Value: "kept in editor"}})
	SetPairs(req.Query, []domain.KeyValue{{Key: "q", Value: "go"}})

	spec := req.Spec()
	assert.Equal(t, domain.MethodPatch, spec.Method)
	assert.Equal(t, "http://example.test", spec.URL)
	assert.Equal(t, `{"x":1}`, spec.Body)
	assert.Len(t, spec.Headers, 2, "empty keys are dropped at send time, not here")
	assert.Equal(t, []domain.KeyValue{{Key: "q", Value: "go"}}, spec.Query)
}

func TestRequestState_Defaults(t *testing.T) {
	test.NewTempApp(t)
	req := NewRequestState()

	method, _ := req.Method.Get()
	tab, _ := req.Tab.Get()
	assert.Equal(t, "GET", method)
	assert.Equal(t, TabHeaders, tab)
	assert.Equal(t, []domain.KeyValue{{}}, Pairs(req.Headers))
	assert.Equal(t, []domain.KeyValue{{}}, Pairs(req.Query))

	_ = req.Method.Set("BREW")
	assert.Equal(t, domain.MethodGet, req.Spec().Method)
}

func TestResponseState_ApplySuccess(t *testing.T) {
	test.NewTempApp(t)
	resp := NewResponseState()
	d := 1500 * time.Millisecond
	tree := jsontree.Interpret(`{"a":1}`).Tree

	resp.Apply(session.Snapshot{
		Text:       `{"a":1}`,
		Tree:       tree,
		Duration:   &d,
		StatusCode: 200,
		Status:     "200 OK",
		Size:       2048,
		Headers:    []domain.KeyValue{{Key: "Content-Type", Value: "application/json"}},
	})

	text, _ := resp.TextData.Get()
	dur, _ := resp.Duration.Get()
	size, _ := resp.Size.Get()
	status, _ := resp.Status.Get()
	headers, _ := resp.Headers.Get()
	loading, _ := resp.Loading.Get()

	assert.Equal(t, `{"a":1}`, text)
	assert.Equal(t, "request took: 1500 ms", dur)
	assert.Equal(t, "2.0 kB", size)
	assert.Equal(t, "200 OK", status)
	assert.Equal(t, []string{"Content-Type: application/json"}, headers)
	contentType, _ := resp.ContentType.Get()
	assert.Equal(t, "application/json", contentType)
	assert.False(t, loading)
	assert.Same(t, tree, resp.CurrentTree())
	assert.Nil(t, resp.Failure())
}

func TestResponseState_ApplyFailureAndInFlight(t *testing.T) {
	test.NewTempApp(t)
	resp := NewResponseState()

	resp.Apply(session.Snapshot{
		Text:    "invalid url: nope",
		Failure: &domain.Failure{Title: "Invalid URL"},
	})
	errText, _ := resp.Error.Get()
	dur, _ := resp.Duration.Get()
	assert.Equal(t, "Invalid URL", errText)
	assert.Empty(t, dur)
	require.NotNil(t, resp.Failure())
	assert.Nil(t, resp.CurrentTree())

	resp.Apply(session.Snapshot{InFlight: true, Text: "GET http://x"})
	loading, _ := resp.Loading.Get()
	errText, _ = resp.Error.Get()
	assert.True(t, loading)
	assert.Empty(t, errText)
}
