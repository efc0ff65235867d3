package httpclient

import (
	"net/http"
	"testing"

	"github.com/shhac/snooze/internal/echo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeBody_Encodings(t *testing.T) {
	for _, enc := range []string{"gzip", "deflate", "br", "zstd"} {
		t.Run(enc, func(t *testing.T) {
			compressed, err := echo.Encode([]byte(echo.Sample), enc)
			require.NoError(t, err)

			h := http.Header{}
			h.Set("Content-Encoding", enc)
			out, err := decodeBody(compressed, h)
			require.NoError(t, err)
			assert.Equal(t, echo.Sample, string(out))
		})
	}
}

func TestDecodeBody_Stacked(t *testing.T) {
	gz, err := echo.Encode([]byte("layered"), "gzip")
	require.NoError(t, err)
	both, err := echo.Encode(gz, "br")
	require.NoError(t, err)

	h := http.Header{}
	h.Set("Content-Encoding", "gzip, br")
	out, err := decodeBody(both, h)
	require.NoError(t, err)
	assert.Equal(t, "layered", string(out))
}

func TestDecodeBody_IdentityAndUnknown(t *testing.T) {
	h := http.Header{}
	h.Set("Content-Encoding", "identity")
	out, err := decodeBody([]byte("plain"), h)
	require.NoError(t, err)
	assert.Equal(t, "plain", string(out))

	h.Set("Content-Encoding", "compress")
	_, err = decodeBody([]byte("plain"), h)
	assert.Error(t, err)
}

func TestDecodeBody_EmptyWithEncoding(t *testing.T) {
	for _, enc := range []string{"gzip", "deflate", "br", "zstd", "gzip, br"} {
		t.Run(enc, func(t *testing.T) {
			h := http.Header{}
			h.Set("Content-Encoding", enc)
			h.Set("Content-Type", "application/json")
			out, err := decodeBody(nil, h)
			require.NoError(t, err)
			assert.Empty(t, out)
		})
	}
}

func TestHasNoBody(t *testing.T) {
	assert.True(t, hasNoBody(http.MethodHead, http.StatusOK))
	assert.True(t, hasNoBody(http.MethodDelete, http.StatusNoContent))
	assert.True(t, hasNoBody(http.MethodGet, http.StatusNotModified))
	assert.False(t, hasNoBody(http.MethodGet, http.StatusOK))
	assert.False(t, hasNoBody(http.MethodPost, http.StatusCreated))
}

func TestToUTF8(t *testing.T) {
	tests := []struct {
		name        string
		body        []byte
		contentType string
		want        string
	}{
		{"no content type", []byte("abc"), "", "abc"},
		{"utf-8 untouched", []byte("café"), "text/plain; charset=utf-8", "café"},
		{"latin1 converted", []byte{'c', 'a', 'f', 0xe9}, "text/plain; charset=ISO-8859-1", "café"},
		{"unknown label untouched", []byte("abc"), "text/plain; charset=x-made-up", "abc"},
		{"malformed type untouched", []byte("abc"), ";;;", "abc"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := toUTF8(tt.body, tt.contentType)
			require.NoError(t, err)
			assert.Equal(t, tt.want, string(out))
		})
	}
}
