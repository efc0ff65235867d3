// Package echo serves a small HTTP API that reflects requests back to the
// caller. Transport tests and testdata/server use it as a known peer.
package echo

import (
	"bytes"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/andybalholm/brotli"
	"github.com/gin-gonic/gin"
	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zlib"
	"github.com/klauspost/compress/zstd"
)

// Echoed is the JSON document returned by /echo.
type Echoed struct {
	Method   string            `json:"method"`
	Path     string            `json:"path"`
	RawQuery string            `json:"raw_query"`
	Headers  map[string]string `json:"headers"`
	Host     string            `json:"host"`
	Body     string            `json:"body"`
}

// maxDelay bounds /delay so a typo cannot hang a test run.
const maxDelay = 10 * time.Second

// Sample is the document served by /json.
const Sample = `{"name":"snooze","version":1,"tags":["http","json"],"owner":{"login":"octo","active":true},"score":null}`

// NewRouter builds the echo API.
func NewRouter(logger *slog.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(requestLogger(logger))

	r.Any("/echo", handleEcho)
	r.GET("/json", func(c *gin.Context) {
		c.Data(http.StatusOK, "application/json", []byte(Sample))
	})
	r.GET("/text", func(c *gin.Context) {
		c.String(http.StatusOK, "plain text response")
	})
	r.GET("/latin1", func(c *gin.Context) {
		// "café" in ISO-8859-1
		c.Data(http.StatusOK, "text/plain; charset=iso-8859-1", []byte{'c', 'a', 'f', 0xe9})
	})
	r.GET("/encoded/:encoding", handleEncoded)
	r.GET("/status/:code", handleStatus)
	r.GET("/delay/:ms", handleDelay)

	return r
}

func handleEcho(c *gin.Context) {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.String(http.StatusBadRequest, "read body: %v", err)
		return
	}

	headers := make(map[string]string, len(c.Request.Header))
	for k := range c.Request.Header {
		headers[k] = c.Request.Header.Get(k)
	}

	c.JSON(http.StatusOK, Echoed{
		Method:   c.Request.Method,
		Path:     c.Request.URL.Path,
		RawQuery: c.Request.URL.RawQuery,
		Headers:  headers,
		Host:     c.Request.Host,
		Body:     string(body),
	})
}

func handleEncoded(c *gin.Context) {
	encoding := c.Param("encoding")
	payload, err := Encode([]byte(Sample), encoding)
	if err != nil {
		c.String(http.StatusBadRequest, "%v", err)
		return
	}
	c.Header("Content-Encoding", encoding)
	c.Data(http.StatusOK, "application/json", payload)
}

func handleStatus(c *gin.Context) {
	code, err := strconv.Atoi(c.Param("code"))
	if err != nil || code < 100 || code > 599 {
		c.String(http.StatusBadRequest, "invalid status code %q", c.Param("code"))
		return
	}
	c.JSON(code, gin.H{"status": code, "text": http.StatusText(code)})
}

func handleDelay(c *gin.Context) {
	ms, err := strconv.Atoi(c.Param("ms"))
	if err != nil || ms < 0 {
		c.String(http.StatusBadRequest, "invalid delay %q", c.Param("ms"))
		return
	}
	d := min(time.Duration(ms)*time.Millisecond, maxDelay)

	select {
	case <-time.After(d):
	case <-c.Request.Context().Done():
		return
	}
	c.JSON(http.StatusOK, gin.H{"delayed_ms": d.Milliseconds()})
}

// Encode compresses data with the named Content-Encoding.
func Encode(data []byte, encoding string) ([]byte, error) {
	var buf bytes.Buffer
	switch encoding {
	case "gzip":
		w := gzip.NewWriter(&buf)
		if _, err := w.Write(data); err != nil {
			return nil, err
		}
		if err := w.Close(); err != nil {
			return nil, err
		}
	case "deflate":
		// HTTP deflate is the zlib format
		w := zlib.NewWriter(&buf)
		if _, err := w.Write(data); err != nil {
			return nil, err
		}
		if err := w.Close(); err != nil {
			return nil, err
		}
	case "br":
		w := brotli.NewWriter(&buf)
		if _, err := w.Write(data); err != nil {
			return nil, err
		}
		if err := w.Close(); err != nil {
			return nil, err
		}
	case "zstd":
		enc, err := zstd.NewWriter(nil)
		if err != nil {
			return nil, err
		}
		defer enc.Close()
		return enc.EncodeAll(data, nil), nil
	default:
		return nil, &UnsupportedEncodingError{Encoding: encoding}
	}
	return buf.Bytes(), nil
}

// UnsupportedEncodingError is returned by Encode for unknown codings.
type UnsupportedEncodingError struct {
	Encoding string
}

func (e *UnsupportedEncodingError) Error() string {
	return "unsupported encoding " + strconv.Quote(e.Encoding)
}

func requestLogger(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		logger.Debug("echo request",
			slog.String("method", c.Request.Method),
			slog.String("path", c.Request.URL.Path),
			slog.Int("status", c.Writer.Status()),
			slog.Duration("duration", time.Since(start)),
		)
	}
}
