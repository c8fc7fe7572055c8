// Package servercm implements the Server Command Manager (spec.md §4.3):
// the owner of every downstream client connection. It receives each
// connection's records already framed by the downstream listener
// (pkg/proxy), matches each record against the
// registered request patterns in registration order, and dispatches the
// first match to its handler. It also exposes broadcast — writing one
// buffer to every connected client, used by the notification fan-out path
// (spec.md §2 component 8).
//
// As with clientcm, the single-reactor-task requirement (spec.md §5) is
// expressed as one actor goroutine serializing all connection-set and
// registration mutation through a single event channel.
package servercm

import (
	"context"
	"regexp"
	"sync/atomic"

	"github.com/openhlx/hlxproxyd/internal/logging"
	"github.com/openhlx/hlxproxyd/pkg/proto"
)

// ConnectionID uniquely identifies a downstream connection for the
// lifetime of the process.
type ConnectionID uint64

var nextConnectionID uint64

// NewConnectionID allocates a fresh connection identifier.
func NewConnectionID() ConnectionID {
	return ConnectionID(atomic.AddUint64(&nextConnectionID, 1))
}

// Connection is the minimal surface the server command manager needs from
// a downstream transport: a per-connection identity and a way to write
// bytes to it. The TCP listener (out of scope per spec.md §1) supplies the
// concrete implementation.
type Connection interface {
	ID() ConnectionID
	Write(p []byte) (int, error)
}

// RequestHandler is invoked when a downstream record matches a registered
// request pattern (spec.md §4.3: "invokes the handler with (connection,
// bytes, length, captured_groups)").
type RequestHandler func(conn Connection, body []byte, groups []string)

type registration struct {
	name           string
	pattern        *regexp.Regexp
	expectedGroups int
	handler        RequestHandler
}

// Manager is the Server Command Manager.
type Manager struct {
	events chan event
	done   chan struct{}

	requests    []*registration
	connections map[ConnectionID]Connection
	connCount   atomic.Int64
}

type event struct {
	kind evKind

	registration *registration
	name         string
	conn         Connection
	connID       ConnectionID
	body         []byte
	buffer       []byte
	replyErr     error
}

type evKind int

const (
	evRegisterRequest evKind = iota
	evUnregisterRequest
	evConnectionOpened
	evConnectionClosed
	evRequestBody
	evBroadcast
)

// NewManager constructs an empty Server Command Manager.
func NewManager() *Manager {
	return &Manager{
		events:      make(chan event, 256),
		done:        make(chan struct{}),
		connections: make(map[ConnectionID]Connection),
	}
}

// Run drives the manager's event loop until ctx is cancelled.
func (m *Manager) Run(ctx context.Context) {
	defer close(m.done)
	for {
		select {
		case <-ctx.Done():
			return
		case ev := <-m.events:
			m.handle(ev)
		}
	}
}

// Wait blocks until Run has returned.
func (m *Manager) Wait() { <-m.done }

// RegisterRequest registers a downstream request pattern (spec.md §4.3
// register_request).
func (m *Manager) RegisterRequest(name string, pattern *regexp.Regexp, expectedGroups int, handler RequestHandler) {
	m.events <- event{kind: evRegisterRequest, registration: &registration{
		name: name, pattern: pattern, expectedGroups: expectedGroups, handler: handler,
	}}
}

// UnregisterRequest removes a previously registered request pattern by
// name.
func (m *Manager) UnregisterRequest(name string) {
	m.events <- event{kind: evUnregisterRequest, name: name}
}

// ConnectionOpened registers a newly accepted downstream connection so it
// participates in broadcasts.
func (m *Manager) ConnectionOpened(conn Connection) {
	m.events <- event{kind: evConnectionOpened, conn: conn}
}

// ConnectionClosed removes a downstream connection.
func (m *Manager) ConnectionClosed(id ConnectionID) {
	m.events <- event{kind: evConnectionClosed, connID: id}
}

// DeliverRequest feeds one complete record body read from a downstream
// connection's framer.
func (m *Manager) DeliverRequest(conn Connection, body []byte) {
	m.events <- event{kind: evRequestBody, conn: conn, body: body}
}

// ConnectionCount reports how many downstream connections are currently
// registered. Backed by an atomic counter rather than the actor's event
// loop so it can be read from any goroutine (internal/health polls it
// without going through the request channel).
func (m *Manager) ConnectionCount() int {
	return int(m.connCount.Load())
}

// Broadcast writes buffer to every connected downstream client (spec.md
// §4.3 send_response(bytes), used for notification fan-out).
func (m *Manager) Broadcast(buffer []byte) {
	m.events <- event{kind: evBroadcast, buffer: buffer}
}

func (m *Manager) handle(ev event) {
	switch ev.kind {
	case evRegisterRequest:
		m.requests = append(m.requests, ev.registration)
	case evUnregisterRequest:
		for i, r := range m.requests {
			if r.name == ev.name {
				m.requests = append(m.requests[:i], m.requests[i+1:]...)
				break
			}
		}
	case evConnectionOpened:
		m.connections[ev.conn.ID()] = ev.conn
		m.connCount.Store(int64(len(m.connections)))
	case evConnectionClosed:
		delete(m.connections, ev.connID)
		m.connCount.Store(int64(len(m.connections)))
	case evRequestBody:
		m.dispatchRequest(ev.conn, ev.body)
	case evBroadcast:
		m.doBroadcast(ev.buffer)
	}
}

func (m *Manager) dispatchRequest(conn Connection, body []byte) {
	for _, r := range m.requests {
		groups := r.pattern.FindStringSubmatch(string(body))
		if groups == nil {
			continue
		}
		if len(groups) != r.expectedGroups {
			m.SendErrorResponse(conn)
			logging.WithConnection(uint64(conn.ID())).WithField("pattern", r.name).
				Warn("bad-command: unexpected group count")
			return
		}
		r.handler(conn, body, groups)
		return
	}
	m.SendErrorResponse(conn)
	logging.WithConnection(uint64(conn.ID())).WithField("body", string(body)).
		Warn("bad-command: no registered pattern matched")
}

func (m *Manager) doBroadcast(buffer []byte) {
	wire := proto.Wrap(buffer)
	for _, conn := range m.connections {
		if _, err := conn.Write(wire); err != nil {
			logging.WithConnection(uint64(conn.ID())).WithError(err).Warn("broadcast write failed")
		}
	}
}

// SendResponse replies to a specific connection with buffer, framed as a
// wire record.
func (m *Manager) SendResponse(conn Connection, buffer []byte) {
	if _, err := conn.Write(proto.Wrap(buffer)); err != nil {
		logging.WithConnection(uint64(conn.ID())).WithError(err).Warn("response write failed")
	}
}

// SendErrorResponse replies to conn with the "(ERROR)" error record
// (spec.md §7: "surface as a single downstream error response frame").
func (m *Manager) SendErrorResponse(conn Connection) {
	if _, err := conn.Write(proto.WrapString("ERROR")); err != nil {
		logging.WithConnection(uint64(conn.ID())).WithError(err).Warn("error response write failed")
	}
}
