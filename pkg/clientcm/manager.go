// Package clientcm implements the Client Command Manager (spec.md §4.2):
// the single owner of the upstream link to the HLX device. It serializes
// at most one outstanding request/response exchange, matches incoming
// upstream bytes against either the in-flight exchange's expected response
// or a registered notification pattern, and fans out link-down errors to
// every queued waiter in FIFO order. A timeout fails only the in-flight
// exchange; the next queued one is then sent.
//
// The "single reactor task" spec.md §5 describes is expressed here as a Go
// actor: one goroutine owns every mutable field, consuming a single event
// channel. Every exported method only ever enqueues an event; all
// reads/writes of manager state happen inside the loop goroutine. This
// reproduces the spec's "no cross-task locking" invariant using Go's
// standard concurrency idiom (goroutine + channel) instead of a literal
// single OS thread, the way spec.md §9 asks reimplementations to translate
// cooperative callback I/O into "the target language's standard async
// vocabulary".
package clientcm

import (
	"context"
	"errors"
	"io"
	"regexp"
	"sync/atomic"
	"time"

	"github.com/openhlx/hlxproxyd/internal/logging"
	"github.com/openhlx/hlxproxyd/internal/protoerr"
	"github.com/openhlx/hlxproxyd/pkg/proto"
)

// Exchange bundles one request/response round trip (spec.md §4.2
// send_command).
type Exchange struct {
	Name            string
	Request         []byte
	ResponsePattern *regexp.Regexp
	ExpectedGroups  int
	Timeout         time.Duration
	OnComplete      func(body []byte, groups []string)
	OnError         func(err error)
}

// NotificationHandler is invoked when upstream bytes match a registered
// notification pattern while no matching exchange is outstanding (spec.md
// §4.2 register_notification).
type NotificationHandler func(body []byte, groups []string)

type notification struct {
	name           string
	pattern        *regexp.Regexp
	expectedGroups int
	handler        NotificationHandler
}

// Manager is the Client Command Manager.
type Manager struct {
	writer         io.Writer
	defaultTimeout time.Duration

	events chan event
	done   chan struct{}

	pending  []*Exchange
	inFlight *Exchange
	timer    *time.Timer
	gen      uint64

	notifications []*notification

	outstanding atomic.Int64
}

type event struct {
	kind evKind
	// payload fields, used depending on kind
	exchange     *Exchange
	body         []byte
	err          error
	notif        *notification
	name         string
	gen          uint64
}

type evKind int

const (
	evSend evKind = iota
	evUpstreamBody
	evTimeout
	evLinkDown
	evRegisterNotification
	evUnregisterNotification
)

// NewManager constructs a Client Command Manager writing requests to w.
func NewManager(w io.Writer, defaultTimeout time.Duration) *Manager {
	return &Manager{
		writer:         w,
		defaultTimeout: defaultTimeout,
		events:         make(chan event, 64),
		done:           make(chan struct{}),
	}
}

// Run drives the manager's event loop until ctx is cancelled or Close is
// called. It must be started exactly once, typically in its own goroutine.
func (m *Manager) Run(ctx context.Context) {
	defer close(m.done)
	for {
		select {
		case <-ctx.Done():
			m.cancelAll(protoerr.ErrLinkDown)
			return
		case ev := <-m.events:
			m.handle(ev)
		}
	}
}

// Wait blocks until Run has returned.
func (m *Manager) Wait() { <-m.done }

// SendCommand submits one request/response exchange (spec.md §4.2). At
// most one exchange is outstanding; additional exchanges queue in FIFO
// order.
func (m *Manager) SendCommand(ex *Exchange) {
	if ex.Timeout == 0 {
		ex.Timeout = m.defaultTimeout
	}
	m.events <- event{kind: evSend, exchange: ex}
}

// RegisterNotification registers a notification pattern (spec.md §4.2
// register_notification).
func (m *Manager) RegisterNotification(name string, pattern *regexp.Regexp, expectedGroups int, handler NotificationHandler) {
	m.events <- event{kind: evRegisterNotification, notif: &notification{
		name: name, pattern: pattern, expectedGroups: expectedGroups, handler: handler,
	}}
}

// UnregisterNotification removes a previously registered notification
// pattern by name.
func (m *Manager) UnregisterNotification(name string) {
	m.events <- event{kind: evUnregisterNotification, name: name}
}

// FeedUpstream delivers one complete record body read from the upstream
// connection (the caller is expected to run a read loop through a
// proto.Framer and call this once per extracted record).
func (m *Manager) FeedUpstream(body []byte) {
	m.events <- event{kind: evUpstreamBody, body: body}
}

// Outstanding reports the number of exchanges currently queued or in
// flight (the in-flight one plus everything still waiting behind it). Safe
// to call from any goroutine; used by internal/health to watch for
// upstream backpressure.
func (m *Manager) Outstanding() int {
	return int(m.outstanding.Load())
}

// LinkDown reports that the upstream connection was lost, cancelling every
// outstanding and queued exchange with *link-down* in FIFO order (spec.md
// §4.2 Cancellation).
func (m *Manager) LinkDown(err error) {
	m.events <- event{kind: evLinkDown, err: err}
}

func (m *Manager) handle(ev event) {
	switch ev.kind {
	case evSend:
		m.enqueue(ev.exchange)
	case evUpstreamBody:
		m.onUpstreamBody(ev.body)
	case evTimeout:
		m.onTimeout(ev.gen)
	case evLinkDown:
		err := ev.err
		if err == nil {
			err = protoerr.ErrLinkDown
		}
		m.cancelAll(err)
	case evRegisterNotification:
		m.notifications = append(m.notifications, ev.notif)
	case evUnregisterNotification:
		for i, n := range m.notifications {
			if n.name == ev.name {
				m.notifications = append(m.notifications[:i], m.notifications[i+1:]...)
				break
			}
		}
	}
}

func (m *Manager) enqueue(ex *Exchange) {
	m.outstanding.Add(1)
	m.pending = append(m.pending, ex)
	if m.inFlight == nil {
		m.dispatchNext()
	}
}

func (m *Manager) dispatchNext() {
	if len(m.pending) == 0 {
		m.inFlight = nil
		return
	}
	ex := m.pending[0]
	m.pending = m.pending[1:]
	m.inFlight = ex
	m.gen++
	gen := m.gen

	logging.WithExchange(gen).Debugf("sending upstream: %s", ex.Request)
	if _, err := m.writer.Write(proto.Wrap(ex.Request)); err != nil {
		m.completeError(ex, err)
		m.dispatchNext()
		return
	}
	m.timer = time.AfterFunc(ex.Timeout, func() {
		m.events <- event{kind: evTimeout, gen: gen}
	})
}

func (m *Manager) onUpstreamBody(body []byte) {
	if m.inFlight != nil {
		groups := m.inFlight.ResponsePattern.FindStringSubmatch(string(body))
		if groups != nil {
			if len(groups) != m.inFlight.ExpectedGroups {
				m.completeError(m.inFlight, errors.New("response group count mismatch"))
				m.stopTimer()
				m.dispatchNext()
				return
			}
			ex := m.inFlight
			m.stopTimer()
			m.inFlight = nil
			m.outstanding.Add(-1)
			if ex.OnComplete != nil {
				ex.OnComplete(body, groups)
			}
			m.dispatchNext()
			return
		}
	}
	for _, n := range m.notifications {
		groups := n.pattern.FindStringSubmatch(string(body))
		if groups == nil {
			continue
		}
		if len(groups) != n.expectedGroups {
			logging.Log.WithField("pattern", n.name).Warn("notification group count mismatch, discarding")
			return
		}
		n.handler(body, groups)
		return
	}
	logging.Log.WithField("body", string(body)).Warn("unmatched upstream bytes discarded")
}

func (m *Manager) onTimeout(gen uint64) {
	if m.inFlight == nil || gen != m.gen {
		return
	}
	ex := m.inFlight
	m.inFlight = nil
	m.completeError(ex, protoerr.ErrTimedOut)
	m.dispatchNext()
}

func (m *Manager) completeError(ex *Exchange, err error) {
	m.outstanding.Add(-1)
	if ex.OnError != nil {
		ex.OnError(err)
	}
}

func (m *Manager) stopTimer() {
	if m.timer != nil {
		m.timer.Stop()
		m.timer = nil
	}
}

// cancelAll cancels the in-flight exchange (if any) and every queued
// exchange, in FIFO order, with err.
func (m *Manager) cancelAll(err error) {
	m.stopTimer()
	if m.inFlight != nil {
		ex := m.inFlight
		m.inFlight = nil
		m.completeError(ex, err)
	}
	pending := m.pending
	m.pending = nil
	for _, ex := range pending {
		m.completeError(ex, err)
	}
}
