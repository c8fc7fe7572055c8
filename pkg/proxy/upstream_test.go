package proxy

import (
	"context"
	"net"
	"testing"
	"time"

	"github.com/openhlx/hlxproxyd/pkg/clientcm"
	"github.com/openhlx/hlxproxyd/pkg/proto"
)

func TestUpstreamConn_WriteFailsUntilConnected(t *testing.T) {
	u := newUpstreamConn("127.0.0.1:0")
	if _, err := u.Write([]byte("x")); err != errUpstreamNotConnected {
		t.Fatalf("expected errUpstreamNotConnected, got %v", err)
	}
}

func TestUpstreamConn_RunClosesConnectedOnFirstDial(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	defer ln.Close()

	accepted := make(chan net.Conn, 1)
	go func() {
		conn, err := ln.Accept()
		if err == nil {
			accepted <- conn
		}
	}()

	u := newUpstreamConn(ln.Addr().String())
	u.client = clientcm.NewManager(u, 50*time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	connected := make(chan struct{})
	go u.run(ctx, connected)

	select {
	case <-connected:
	case <-time.After(2 * time.Second):
		t.Fatal("connected channel never closed")
	}

	select {
	case conn := <-accepted:
		defer conn.Close()
	case <-time.After(2 * time.Second):
		t.Fatal("device never accepted a connection")
	}

	if _, err := u.Write([]byte("ping")); err != nil {
		t.Fatalf("expected write to succeed once connected, got %v", err)
	}
}

func TestUpstreamConn_FeedsFramedRecordsToClientManager(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	defer ln.Close()

	serverConn := make(chan net.Conn, 1)
	go func() {
		conn, err := ln.Accept()
		if err == nil {
			serverConn <- conn
		}
	}()

	u := newUpstreamConn(ln.Addr().String())
	u.client = clientcm.NewManager(u, 200*time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go u.client.Run(ctx)

	connected := make(chan struct{})
	go u.run(ctx, connected)

	<-connected
	conn := <-serverConn
	defer conn.Close()

	done := make(chan []string, 1)
	u.client.SendCommand(&clientcm.Exchange{
		Name:            "test-volume",
		Request:         []byte("VZ1,10"),
		ResponsePattern: proto.RespZoneVolume,
		ExpectedGroups:  3,
		OnComplete: func(body []byte, groups []string) {
			done <- groups
		},
	})

	conn.Write(proto.Wrap([]byte("VOL1,10")))

	select {
	case groups := <-done:
		if len(groups) != 3 {
			t.Fatalf("expected 3 groups, got %v", groups)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("exchange never completed")
	}
}
