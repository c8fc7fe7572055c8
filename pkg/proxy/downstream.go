package proxy

import (
	"context"
	"net"
	"sync"

	"github.com/openhlx/hlxproxyd/internal/logging"
	"github.com/openhlx/hlxproxyd/pkg/proto"
	"github.com/openhlx/hlxproxyd/pkg/servercm"
)

// downstreamListener accepts client TCP connections and feeds each one's
// framed records to the server command manager (spec.md §4.3). Grounded on
// the teacher's pkg/device/tunnel.go acceptLoop: a listener plus a done
// channel and WaitGroup for clean shutdown, one goroutine per accepted
// connection.
type downstreamListener struct {
	addr   string
	server *servercm.Manager

	listener net.Listener
	done     chan struct{}
	wg       sync.WaitGroup
}

func newDownstreamListener(addr string, server *servercm.Manager) *downstreamListener {
	return &downstreamListener{addr: addr, server: server, done: make(chan struct{})}
}

// start opens the listener and begins accepting connections in the
// background. It returns once the listener is bound, so bind failures
// surface immediately to the caller (spec.md §6: non-zero exit on bind
// failure).
func (d *downstreamListener) start(ctx context.Context) error {
	ln, err := net.Listen("tcp", d.addr)
	if err != nil {
		return err
	}
	d.listener = ln
	logging.Log.WithField("listen", d.addr).Info("downstream listener started")

	d.wg.Add(1)
	go d.acceptLoop(ctx)
	return nil
}

// stop closes the listener and waits for every connection goroutine to
// finish.
func (d *downstreamListener) stop() {
	close(d.done)
	d.listener.Close()
	d.wg.Wait()
}

func (d *downstreamListener) acceptLoop(ctx context.Context) {
	defer d.wg.Done()
	for {
		conn, err := d.listener.Accept()
		if err != nil {
			select {
			case <-d.done:
				return
			default:
				logging.Log.WithError(err).Warn("downstream accept failed")
				continue
			}
		}
		d.wg.Add(1)
		go d.serve(ctx, conn)
	}
}

// downstreamConn adapts a net.Conn to servercm.Connection.
type downstreamConn struct {
	id   servercm.ConnectionID
	conn net.Conn
}

func (c *downstreamConn) ID() servercm.ConnectionID { return c.id }
func (c *downstreamConn) Write(p []byte) (int, error) { return c.conn.Write(p) }

func (d *downstreamListener) serve(ctx context.Context, conn net.Conn) {
	defer d.wg.Done()
	defer conn.Close()

	c := &downstreamConn{id: servercm.NewConnectionID(), conn: conn}
	d.server.ConnectionOpened(c)
	defer d.server.ConnectionClosed(c.id)

	logging.WithConnection(uint64(c.id)).Info("downstream connection opened")
	defer logging.WithConnection(uint64(c.id)).Info("downstream connection closed")

	framer := proto.NewFramer()
	buf := make([]byte, 4096)
	for {
		n, err := conn.Read(buf)
		if n > 0 {
			for _, body := range framer.Feed(buf[:n]) {
				d.server.DeliverRequest(c, body)
			}
		}
		if err != nil {
			return
		}
		if ctx.Err() != nil {
			return
		}
	}
}
