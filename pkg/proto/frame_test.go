package proto

import (
	"bytes"
	"testing"
)

func TestFramerSingleRecord(t *testing.T) {
	f := NewFramer()
	bodies := f.Feed([]byte("(MZ3)"))
	if len(bodies) != 1 || string(bodies[0]) != "MZ3" {
		t.Fatalf("got %q, want [MZ3]", bodies)
	}
}

func TestFramerTrailingCRLF(t *testing.T) {
	f := NewFramer()
	bodies := f.Feed([]byte("(VZ1,10)\r\n(VZ2,20)\r\n"))
	if len(bodies) != 2 {
		t.Fatalf("got %d bodies, want 2", len(bodies))
	}
	if string(bodies[0]) != "VZ1,10" || string(bodies[1]) != "VZ2,20" {
		t.Fatalf("got %q", bodies)
	}
}

func TestFramerSplitAcrossFeeds(t *testing.T) {
	f := NewFramer()
	if bodies := f.Feed([]byte("(VZ1,")); len(bodies) != 0 {
		t.Fatalf("expected no complete record yet, got %q", bodies)
	}
	bodies := f.Feed([]byte("10)"))
	if len(bodies) != 1 || string(bodies[0]) != "VZ1,10" {
		t.Fatalf("got %q", bodies)
	}
}

func TestFramerDiscardsStrayBytes(t *testing.T) {
	f := NewFramer()
	bodies := f.Feed([]byte("garbage(QO5)"))
	if len(bodies) != 1 || string(bodies[0]) != "QO5" {
		t.Fatalf("got %q", bodies)
	}
}

func TestWrap(t *testing.T) {
	got := Wrap([]byte("VOL1,10"))
	if !bytes.Equal(got, []byte("(VOL1,10)")) {
		t.Fatalf("got %q", got)
	}
}
