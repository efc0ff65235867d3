package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMethod(t *testing.T) {
	tests := []struct {
		in      string
		want    Method
		wantErr bool
	}{
		{"GET", MethodGet, false},
		{"post", MethodPost, false},
		{" Patch ", MethodPatch, false},
		{"options", MethodOptions, false},
		{"TRACE", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseMethod(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestMethod_CarriesBody(t *testing.T) {
	withBody := map[Method]bool{
		MethodGet:     false,
		MethodHead:    false,
		MethodOptions: false,
		MethodDelete:  false,
		MethodPost:    true,
		MethodPut:     true,
		MethodPatch:   true,
	}
	for m, want := range withBody {
		assert.Equal(t, want, m.CarriesBody(), "method %s", m)
	}
	assert.Len(t, Methods, len(withBody))
}

func TestRequestSpec_SendablePairsDropEmptyKeys(t *testing.T) {
	spec := RequestSpec{
		Headers: []KeyValue{{Key: "", Value: "x"}, {Key: "Accept", Value: "json"}},
		Query:   []KeyValue{{Key: "a", Value: "1"}, {Key: "", Value: ""}, {Key: "b", Value: ""}},
	}

	assert.Equal(t, []KeyValue{{Key: "Accept", Value: "json"}}, spec.SendableHeaders())
	assert.Equal(t, []KeyValue{{Key: "a", Value: "1"}, {Key: "b", Value: ""}}, spec.SendableQuery())
}

func TestRequestSpec_CloneIsIndependent(t *testing.T) {
	orig := RequestSpec{
		Method:  MethodPost,
		URL:     "http://example.com",
		Headers: []KeyValue{{Key: "A", Value: "1"}},
		Query:   []KeyValue{{Key: "q", Value: "x"}},
		Body:    "{}",
	}

	clone := orig.Clone()
	clone.Headers[0].Value = "changed"
	clone.Query = append(clone.Query, KeyValue{Key: "extra"})

	assert.Equal(t, "1", orig.Headers[0].Value)
	assert.Len(t, orig.Query, 1)
	assert.Equal(t, orig.URL, clone.URL)
}

func TestTransportResult_Text(t *testing.T) {
	ok := TransportResult{Body: `{"a":1}`}
	assert.False(t, ok.Failed())
	assert.Equal(t, `{"a":1}`, ok.Text())

	bad := TransportResult{Body: "ignored", Error: "request error: boom"}
	assert.True(t, bad.Failed())
	assert.Equal(t, "request error: boom", bad.Text())
}
