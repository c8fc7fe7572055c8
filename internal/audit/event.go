// Package audit provides JSON-lines audit logging of proxy exchanges: each
// client mutation or observation forwarded upstream, and its eventual
// response/timeout/error outcome (SPEC_FULL.md §E).
package audit

import (
	"fmt"
	"time"
)

// Event represents one auditable proxy exchange.
type Event struct {
	ID         string        `json:"id"`
	Timestamp  time.Time     `json:"timestamp"`
	Controller string        `json:"controller"`
	Connection uint64        `json:"connection,omitempty"`
	Request    string        `json:"request"`
	Response   string        `json:"response,omitempty"`
	Success    bool          `json:"success"`
	Error      string        `json:"error,omitempty"`
	Duration   time.Duration `json:"duration"`
}

// Filter defines criteria for querying audit events.
type Filter struct {
	Controller  string
	Connection  uint64
	StartTime   time.Time
	EndTime     time.Time
	SuccessOnly bool
	FailureOnly bool
	Limit       int
	Offset      int
}

// NewEvent creates a new audit event for one exchange.
func NewEvent(controller, request string) *Event {
	return &Event{
		ID:         generateID(),
		Timestamp:  time.Now(),
		Controller: controller,
		Request:    request,
	}
}

// WithConnection records which downstream connection originated the
// exchange (zero for exchanges raised internally, e.g. a group's
// broadcast-intent application).
func (e *Event) WithConnection(id uint64) *Event {
	e.Connection = id
	return e
}

// WithResponse records the upstream response bytes and marks success.
func (e *Event) WithResponse(response string) *Event {
	e.Response = response
	e.Success = true
	return e
}

// WithError marks the exchange as failed.
func (e *Event) WithError(err error) *Event {
	e.Success = false
	if err != nil {
		e.Error = err.Error()
	}
	return e
}

// WithDuration sets the exchange's round-trip duration.
func (e *Event) WithDuration(d time.Duration) *Event {
	e.Duration = d
	return e
}

func generateID() string {
	return fmt.Sprintf("%d", time.Now().UnixNano())
}
