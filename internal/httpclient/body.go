package httpclient

import (
	"bytes"
	"fmt"
	"io"
	"mime"
	"net/http"
	"strings"

	"github.com/andybalholm/brotli"
	"github.com/klauspost/compress/flate"
	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zlib"
	"github.com/klauspost/compress/zstd"
	"golang.org/x/net/html/charset"
)

// decodeBody undoes any Content-Encoding the transport left in place and
// converts a declared non-UTF-8 charset to UTF-8. An empty body is returned
// as is: HEAD, 204 and 304 responses often carry the encoding header of the
// representation they describe without any bytes.
func decodeBody(body []byte, header http.Header) ([]byte, error) {
	if len(body) == 0 {
		return body, nil
	}

	encodings := parseEncodings(header.Get("Content-Encoding"))

	// Codings are listed in the order they were applied.
	for i := len(encodings) - 1; i >= 0; i-- {
		decoded, err := decompress(body, encodings[i])
		if err != nil {
			return nil, fmt.Errorf("decode %s body: %w", encodings[i], err)
		}
		body = decoded
	}

	return toUTF8(body, header.Get("Content-Type"))
}

// hasNoBody reports whether a response to method with status never carries
// content, whatever its headers say.
func hasNoBody(method string, status int) bool {
	return method == http.MethodHead ||
		status == http.StatusNoContent ||
		status == http.StatusNotModified ||
		(status >= 100 && status < 200)
}

func parseEncodings(value string) []string {
	var out []string
	for _, part := range strings.Split(value, ",") {
		enc := strings.ToLower(strings.TrimSpace(part))
		if enc == "" || enc == "identity" {
			continue
		}
		out = append(out, enc)
	}
	return out
}

func decompress(data []byte, encoding string) ([]byte, error) {
	switch encoding {
	case "gzip", "x-gzip":
		r, err := gzip.NewReader(bytes.NewReader(data))
		if err != nil {
			return nil, err
		}
		defer r.Close()
		return io.ReadAll(r)

	case "deflate":
		// Servers disagree on whether deflate means zlib-wrapped or raw.
		if r, err := zlib.NewReader(bytes.NewReader(data)); err == nil {
			defer r.Close()
			return io.ReadAll(r)
		}
		r := flate.NewReader(bytes.NewReader(data))
		defer r.Close()
		return io.ReadAll(r)

	case "br":
		return io.ReadAll(brotli.NewReader(bytes.NewReader(data)))

	case "zstd":
		dec, err := zstd.NewReader(nil)
		if err != nil {
			return nil, err
		}
		defer dec.Close()
		return dec.DecodeAll(data, nil)

	default:
		return nil, fmt.Errorf("unsupported content encoding %q", encoding)
	}
}

// toUTF8 leaves the body untouched unless Content-Type names a known charset
// other than UTF-8.
func toUTF8(body []byte, contentType string) ([]byte, error) {
	if contentType == "" {
		return body, nil
	}
	_, params, err := mime.ParseMediaType(contentType)
	if err != nil {
		return body, nil
	}
	label := strings.ToLower(strings.TrimSpace(params["charset"]))
	if label == "" || label == "utf-8" || label == "utf8" {
		return body, nil
	}

	r, err := charset.NewReaderLabel(label, bytes.NewReader(body))
	if err != nil {
		// Unknown label: show the bytes as they arrived.
		return body, nil
	}
	out, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("convert %s body: %w", label, err)
	}
	return out, nil
}
