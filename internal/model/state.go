package model

import (
	"fmt"
	"strings"
	"time"

	"fyne.io/fyne/v2/data/binding"
	"github.com/dustin/go-humanize"

	"github.com/shhac/snooze/internal/domain"
	"github.com/shhac/snooze/internal/jsontree"
	"github.com/shhac/snooze/internal/session"
)

// Editor tab names.
const (
	TabHeaders = "headers"
	TabBody    = "body"
	TabQuery   = "query"
)

// ApplicationState represents the centralized application state with Fyne data bindings.
// All UI components bind to these values for reactive updates.
type ApplicationState struct {
	Request  *RequestState
	Response *ResponseState
}

// NewApplicationState creates a new ApplicationState with initialized bindings.
func NewApplicationState() *ApplicationState {
	return &ApplicationState{
		Request:  NewRequestState(),
		Response: NewResponseState(),
	}
}

// RequestState represents the state of the request editor.
type RequestState struct {
	Method  binding.String
	URL     binding.String
	Body    binding.String
	Tab     binding.String      // TabHeaders, TabBody or TabQuery
	Headers binding.UntypedList // []domain.KeyValue
	Query   binding.UntypedList // []domain.KeyValue
}

// NewRequestState creates a new RequestState with initialized bindings.
func NewRequestState() *RequestState {
	method := binding.NewString()
	_ = method.Set(domain.MethodGet.String())

	tab := binding.NewString()
	_ = tab.Set(TabHeaders)

	// Both editors start with one empty row to type into.
	headers := binding.NewUntypedList()
	_ = headers.Append(domain.KeyValue{})
	query := binding.NewUntypedList()
	_ = query.Append(domain.KeyValue{})

	return &RequestState{
		Method:  method,
		URL:     binding.NewString(),
		Body:    binding.NewString(),
		Tab:     tab,
		Headers: headers,
		Query:   query,
	}
}

// Spec snapshots the editor into a RequestSpec. Unknown methods fall back
// to GET.
func (r *RequestState) Spec() domain.RequestSpec {
	methodName, _ := r.Method.Get()
	method, err := domain.ParseMethod(methodName)
	if err != nil {
		method = domain.MethodGet
	}
	url, _ := r.URL.Get()
	body, _ := r.Body.Get()

	return domain.RequestSpec{
		Method:  method,
		URL:     url,
		Headers: Pairs(r.Headers),
		Query:   Pairs(r.Query),
		Body:    body,
	}
}

// Pairs reads the key/value rows stored in list.
func Pairs(list binding.UntypedList) []domain.KeyValue {
	items, _ := list.Get()
	out := make([]domain.KeyValue, 0, len(items))
	for _, it := range items {
		if kv, ok := it.(domain.KeyValue); ok {
			out = append(out, kv)
		}
	}
	return out
}

// SetPairs replaces the rows stored in list.
func SetPairs(list binding.UntypedList, pairs []domain.KeyValue) {
	items := make([]any, len(pairs))
	for i, kv := range pairs {
		items[i] = kv
	}
	_ = list.Set(items)
}

// ResponseState represents the state of the response panel.
type ResponseState struct {
	TextData binding.String     // response text, error text or placeholder
	Tree     binding.Untyped    // *jsontree.Tree, nil when the text is not JSON
	Loading  binding.Bool       // whether a request is in progress
	Error    binding.String     // failure title if the request failed
	Duration binding.String     // e.g. "request took: 123 ms", empty if none
	Size     binding.String     // e.g. "1.2 kB"
	Status   binding.String     // e.g. "200 OK"
	Headers  binding.StringList // "Key: Value" rows
	Search   binding.String     // tree filter text

	// ContentType is the response Content-Type, used to pick a highlighter.
	ContentType binding.String

	failure *domain.Failure
}

// NewResponseState creates a new ResponseState with initialized bindings.
func NewResponseState() *ResponseState {
	loading := binding.NewBool()
	_ = loading.Set(false) // Default to not loading

	return &ResponseState{
		TextData: binding.NewString(),
		Tree:     binding.NewUntyped(),
		Loading:  loading,
		Error:    binding.NewString(),
		Duration: binding.NewString(),
		Size:     binding.NewString(),
		Status:   binding.NewString(),
		Headers:  binding.NewStringList(),
		Search:   binding.NewString(),

		ContentType: binding.NewString(),
	}
}

// Apply copies a session snapshot into the bindings. Must run on the UI
// goroutine.
func (r *ResponseState) Apply(snap session.Snapshot) {
	_ = r.TextData.Set(snap.Text)
	_ = r.Tree.Set(snap.Tree)
	_ = r.Loading.Set(snap.InFlight)

	if snap.Duration != nil {
		_ = r.Duration.Set(FormatDuration(*snap.Duration))
	} else {
		_ = r.Duration.Set("")
	}

	if snap.Failure != nil {
		_ = r.Error.Set(snap.Failure.Title)
	} else {
		_ = r.Error.Set("")
	}
	r.failure = snap.Failure

	if snap.Duration != nil && snap.Failure == nil {
		_ = r.Size.Set(humanize.Bytes(uint64(snap.Size)))
	} else {
		_ = r.Size.Set("")
	}
	_ = r.Status.Set(snap.Status)

	rows := make([]string, len(snap.Headers))
	contentType := ""
	for i, h := range snap.Headers {
		rows[i] = h.Key + ": " + h.Value
		if contentType == "" && strings.EqualFold(h.Key, "Content-Type") {
			contentType = h.Value
		}
	}
	_ = r.Headers.Set(rows)
	_ = r.ContentType.Set(contentType)
}

// Failure returns the classification of the last failure, if any.
func (r *ResponseState) Failure() *domain.Failure {
	return r.failure
}

// CurrentTree returns the parsed tree of the last response, if any.
func (r *ResponseState) CurrentTree() *jsontree.Tree {
	v, _ := r.Tree.Get()
	tree, _ := v.(*jsontree.Tree)
	return tree
}

// FormatDuration renders a duration the way the top bar shows it.
func FormatDuration(d time.Duration) string {
	return fmt.Sprintf("request took: %d ms", d.Milliseconds())
}
