package proxy

import (
	"context"
	"net"
	"testing"
	"time"

	"github.com/openhlx/hlxproxyd/pkg/proto"
	"github.com/openhlx/hlxproxyd/pkg/servercm"
)

func TestDownstreamListener_DeliversFramedRequests(t *testing.T) {
	server := servercm.NewManager()

	received := make(chan []byte, 1)
	server.RegisterRequest("test", proto.ReqZoneSetVolume, 3, func(conn servercm.Connection, body []byte, groups []string) {
		received <- body
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go server.Run(ctx)

	d := newDownstreamListener("127.0.0.1:0", server)
	if err := d.start(ctx); err != nil {
		t.Fatalf("start: %v", err)
	}
	defer d.stop()

	conn, err := net.Dial("tcp", d.listener.Addr().String())
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	defer conn.Close()

	conn.Write(proto.Wrap([]byte("VZ1,10")))

	select {
	case body := <-received:
		if string(body) != "VZ1,10" {
			t.Fatalf("expected body VZ1,10, got %q", body)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("request never delivered")
	}

	if got := server.ConnectionCount(); got != 1 {
		t.Fatalf("expected 1 connection, got %d", got)
	}
}

func TestDownstreamListener_DeregistersOnClose(t *testing.T) {
	server := servercm.NewManager()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go server.Run(ctx)

	d := newDownstreamListener("127.0.0.1:0", server)
	if err := d.start(ctx); err != nil {
		t.Fatalf("start: %v", err)
	}
	defer d.stop()

	conn, err := net.Dial("tcp", d.listener.Addr().String())
	if err != nil {
		t.Fatalf("dial: %v", err)
	}

	deadline := time.After(2 * time.Second)
	for server.ConnectionCount() == 0 {
		select {
		case <-deadline:
			t.Fatal("connection never registered")
		case <-time.After(10 * time.Millisecond):
		}
	}

	conn.Close()

	deadline = time.After(2 * time.Second)
	for server.ConnectionCount() != 0 {
		select {
		case <-deadline:
			t.Fatal("connection never deregistered after close")
		case <-time.After(10 * time.Millisecond):
		}
	}
}
