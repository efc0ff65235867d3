package httpclient

import (
	"fmt"
	"unicode/utf8"
)

// maxLogBodyLen caps how much of a response body goes into debug logs.
const maxLogBodyLen = 1024

// truncateForLog cuts s to at most maxLogBodyLen bytes, backing off to a
// rune boundary so the log line stays valid UTF-8.
func truncateForLog(s string) string {
	if len(s) <= maxLogBodyLen {
		return s
	}
	cut := maxLogBodyLen
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return fmt.Sprintf("%s... (%d bytes total)", s[:cut], len(s))
}
