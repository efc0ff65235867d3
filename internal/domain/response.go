package domain

import "time"

// Failure describes why a request produced no usable response.
type Failure struct {
	Title    string   // short user-facing title, e.g. "Connection Refused"
	Message  string   // one sentence explanation
	Recovery []string // suggested next steps
}

// TransportResult is delivered exactly once per dispatched request.
// Exactly one of Body (success) or Error (failure) is meaningful.
type TransportResult struct {
	Seq       uint64
	RequestID string

	Body  string // decoded response text on success
	Error string // human-readable failure text, empty on success

	Failure *Failure // classification of Error, nil on success

	StatusCode int
	Status     string // e.g. "200 OK"
	Headers    []KeyValue
	Size       int // decoded body size in bytes

	Duration time.Duration
}

// Failed reports whether the result carries a failure payload.
func (r TransportResult) Failed() bool {
	return r.Error != ""
}

// Text returns the payload shown in the response area.
func (r TransportResult) Text() string {
	if r.Failed() {
		return r.Error
	}
	return r.Body
}
