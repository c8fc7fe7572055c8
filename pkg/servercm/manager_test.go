package servercm

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/openhlx/hlxproxyd/pkg/proto"
)

type fakeConn struct {
	id      ConnectionID
	mu      sync.Mutex
	written [][]byte
}

func newFakeConn() *fakeConn { return &fakeConn{id: NewConnectionID()} }

func (c *fakeConn) ID() ConnectionID { return c.id }

func (c *fakeConn) Write(p []byte) (int, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	cp := make([]byte, len(p))
	copy(cp, p)
	c.written = append(c.written, cp)
	return len(p), nil
}

func (c *fakeConn) all() [][]byte {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([][]byte, len(c.written))
	copy(out, c.written)
	return out
}

func startServerManager(t *testing.T) (*Manager, context.CancelFunc) {
	t.Helper()
	m := NewManager()
	ctx, cancel := context.WithCancel(context.Background())
	go m.Run(ctx)
	return m, cancel
}

func TestDispatchFirstMatchingPattern(t *testing.T) {
	m, cancel := startServerManager(t)
	defer cancel()

	got := make(chan []string, 1)
	m.RegisterRequest("zone-query-mute", proto.ReqZoneQueryMute, 2, func(conn Connection, body []byte, groups []string) {
		got <- groups
	})
	m.RegisterRequest("zone-query", proto.ReqZoneQuery, 2, func(conn Connection, body []byte, groups []string) {
		t.Error("wrong handler invoked")
	})

	conn := newFakeConn()
	m.ConnectionOpened(conn)
	m.DeliverRequest(conn, []byte("QOM5"))

	select {
	case groups := <-got:
		if groups[1] != "5" {
			t.Fatalf("got %v", groups)
		}
	case <-time.After(time.Second):
		t.Fatal("timed out")
	}
}

func TestNoMatchSendsErrorResponse(t *testing.T) {
	m, cancel := startServerManager(t)
	defer cancel()

	conn := newFakeConn()
	m.ConnectionOpened(conn)
	m.DeliverRequest(conn, []byte("GARBAGE"))

	time.Sleep(20 * time.Millisecond)
	written := conn.all()
	if len(written) != 1 || string(written[0]) != "(ERROR)" {
		t.Fatalf("got %q, want [(ERROR)]", written)
	}
}

func TestBroadcastReachesAllConnections(t *testing.T) {
	m, cancel := startServerManager(t)
	defer cancel()

	a, b, c := newFakeConn(), newFakeConn(), newFakeConn()
	m.ConnectionOpened(a)
	m.ConnectionOpened(b)
	m.ConnectionOpened(c)

	m.Broadcast([]byte("VOL4,22"))
	time.Sleep(20 * time.Millisecond)

	for _, conn := range []*fakeConn{a, b, c} {
		written := conn.all()
		if len(written) != 1 || string(written[0]) != "(VOL4,22)" {
			t.Fatalf("connection %d got %q", conn.ID(), written)
		}
	}
}

func TestConnectionClosedStopsReceivingBroadcasts(t *testing.T) {
	m, cancel := startServerManager(t)
	defer cancel()

	conn := newFakeConn()
	m.ConnectionOpened(conn)
	m.ConnectionClosed(conn.ID())

	m.Broadcast([]byte("VOL1,1"))
	time.Sleep(20 * time.Millisecond)

	if len(conn.all()) != 0 {
		t.Fatalf("expected no writes after close, got %q", conn.all())
	}
}

func TestConnectionCountTracksOpenAndClose(t *testing.T) {
	m, cancel := startServerManager(t)
	defer cancel()

	if got := m.ConnectionCount(); got != 0 {
		t.Fatalf("ConnectionCount() = %d, want 0", got)
	}

	a, b := newFakeConn(), newFakeConn()
	m.ConnectionOpened(a)
	m.ConnectionOpened(b)
	time.Sleep(10 * time.Millisecond)
	if got := m.ConnectionCount(); got != 2 {
		t.Fatalf("ConnectionCount() = %d, want 2", got)
	}

	m.ConnectionClosed(a.ID())
	time.Sleep(10 * time.Millisecond)
	if got := m.ConnectionCount(); got != 1 {
		t.Fatalf("ConnectionCount() = %d, want 1", got)
	}
}
