package domain

import (
	"fmt"
	"strings"
)

// Method is an HTTP request method supported by the request editor.
type Method string

const (
	MethodGet     Method = "GET"
	MethodPost    Method = "POST"
	MethodPut     Method = "PUT"
	MethodDelete  Method = "DELETE"
	MethodPatch   Method = "PATCH"
	MethodHead    Method = "HEAD"
	MethodOptions Method = "OPTIONS"
)

// Methods lists every supported method in display order.
var Methods = []Method{
	MethodGet,
	MethodPost,
	MethodPut,
	MethodDelete,
	MethodPatch,
	MethodHead,
	MethodOptions,
}

// ParseMethod converts a case-insensitive method name into a Method.
func ParseMethod(s string) (Method, error) {
	m := Method(strings.ToUpper(strings.TrimSpace(s)))
	for _, known := range Methods {
		if m == known {
			return m, nil
		}
	}
	return "", fmt.Errorf("unsupported method %q", s)
}

// CarriesBody reports whether requests with this method send the body text.
// Only POST, PUT and PATCH do; the body is ignored for every other method.
func (m Method) CarriesBody() bool {
	switch m {
	case MethodPost, MethodPut, MethodPatch:
		return true
	default:
		return false
	}
}

func (m Method) String() string {
	return string(m)
}

// KeyValue is a single ordered header or query parameter row.
type KeyValue struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// RequestSpec is the snapshot of the request editor taken when Send is pressed.
// The worker owns its copy; nothing mutates it after dispatch.
type RequestSpec struct {
	ID      string // correlation ID for logs
	Seq     uint64 // assigned by the session at dispatch
	Method  Method
	URL     string
	Headers []KeyValue
	Query   []KeyValue
	Body    string
}

// Clone returns a deep copy so the caller can keep editing its own slices.
func (r RequestSpec) Clone() RequestSpec {
	out := r
	out.Headers = append([]KeyValue(nil), r.Headers...)
	out.Query = append([]KeyValue(nil), r.Query...)
	return out
}

// SendableHeaders returns the header rows that will actually be transmitted.
func (r RequestSpec) SendableHeaders() []KeyValue {
	return NonEmptyKeys(r.Headers)
}

// SendableQuery returns the query rows that will actually be transmitted.
func (r RequestSpec) SendableQuery() []KeyValue {
	return NonEmptyKeys(r.Query)
}

// NonEmptyKeys drops rows whose key is empty, preserving order.
func NonEmptyKeys(pairs []KeyValue) []KeyValue {
	out := make([]KeyValue, 0, len(pairs))
	for _, kv := range pairs {
		if kv.Key == "" {
			continue
		}
		out = append(out, kv)
	}
	return out
}
