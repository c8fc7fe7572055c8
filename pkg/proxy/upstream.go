package proxy

import (
	"context"
	"errors"
	"net"
	"sync"
	"time"

	"github.com/openhlx/hlxproxyd/internal/logging"
	"github.com/openhlx/hlxproxyd/pkg/clientcm"
	"github.com/openhlx/hlxproxyd/pkg/proto"
)

// upstream dial retry backoff, grounded on the teacher's SSH tunnel's
// fixed small-sleep accept-error retry (pkg/device/tunnel.go acceptLoop).
const upstreamRedialDelay = 2 * time.Second

var errUpstreamNotConnected = errors.New("upstream: not connected")

// upstreamConn is the io.Writer the client command manager sends exchange
// bytes through. It owns the current upstream net.Conn (if any) behind a
// mutex so SendCommand's writes (from the manager's own goroutine) and the
// connector's own dial/redial loop (a separate goroutine) never race.
// Grounded on the teacher's pkg/device/tunnel.go SSHTunnel: a small owned
// listener/connection handle with its own accept/forward goroutine and a
// done channel for clean shutdown.
type upstreamConn struct {
	addr   string
	client *clientcm.Manager

	mu   sync.Mutex
	conn net.Conn
}

func newUpstreamConn(addr string) *upstreamConn {
	return &upstreamConn{addr: addr}
}

// Write implements io.Writer for the client command manager. Returns
// errUpstreamNotConnected while no upstream link is up, which surfaces to
// the caller as an ordinary exchange completion error (clientcm.Manager
// already handles write failure per-exchange, spec.md §4.2).
func (u *upstreamConn) Write(p []byte) (int, error) {
	u.mu.Lock()
	conn := u.conn
	u.mu.Unlock()
	if conn == nil {
		return 0, errUpstreamNotConnected
	}
	return conn.Write(p)
}

func (u *upstreamConn) setConn(conn net.Conn) {
	u.mu.Lock()
	u.conn = conn
	u.mu.Unlock()
}

func (u *upstreamConn) clearConn() {
	u.mu.Lock()
	u.conn = nil
	u.mu.Unlock()
}

// run dials u.addr, redialing with a fixed backoff on failure, until ctx
// is cancelled. connected is closed the first time a dial succeeds, so the
// caller can gate the bootstrap refresh on the first successful link.
// While connected, a read loop feeds framed records to the client command
// manager; on read error or ctx cancellation the connection is torn down,
// every outstanding exchange is cancelled via LinkDown (spec.md §4.2
// Cancellation), and the loop redials.
func (u *upstreamConn) run(ctx context.Context, connected chan struct{}) {
	first := true
	for {
		if ctx.Err() != nil {
			return
		}

		dialer := net.Dialer{}
		conn, err := dialer.DialContext(ctx, "tcp", u.addr)
		if err != nil {
			logging.Log.WithField("connect", u.addr).WithError(err).Warn("upstream dial failed, retrying")
			select {
			case <-ctx.Done():
				return
			case <-time.After(upstreamRedialDelay):
				continue
			}
		}

		u.setConn(conn)
		if first {
			first = false
			close(connected)
		}

		u.readLoop(ctx, conn)

		u.clearConn()
		u.client.LinkDown(errors.New("upstream connection lost"))
		conn.Close()

		select {
		case <-ctx.Done():
			return
		case <-time.After(upstreamRedialDelay):
		}
	}
}

func (u *upstreamConn) readLoop(ctx context.Context, conn net.Conn) {
	framer := proto.NewFramer()
	buf := make([]byte, 4096)
	for {
		if ctx.Err() != nil {
			return
		}
		n, err := conn.Read(buf)
		if n > 0 {
			for _, body := range framer.Feed(buf[:n]) {
				u.client.FeedUpstream(body)
			}
		}
		if err != nil {
			if ctx.Err() == nil {
				logging.Log.WithError(err).Warn("upstream read failed")
			}
			return
		}
	}
}
