package events

import (
	"testing"

	"github.com/openhlx/hlxproxyd/pkg/model"
)

func TestPublishSubscribeRoundTrip(t *testing.T) {
	b := NewBus()
	got := make([]GroupVolumeIntent, 0, 1)
	Subscribe(b, func(e GroupVolumeIntent) {
		got = append(got, e)
	})

	Publish(b, GroupVolumeIntent{Group: model.Identifier(2), Volume: 10})

	if len(got) != 1 || got[0].Group != 2 || got[0].Volume != 10 {
		t.Fatalf("got %v", got)
	}
}

func TestPublishDoesNotCrossTypes(t *testing.T) {
	b := NewBus()
	var volumeCalls, muteCalls int
	Subscribe(b, func(GroupVolumeIntent) { volumeCalls++ })
	Subscribe(b, func(GroupMuteIntent) { muteCalls++ })

	Publish(b, GroupMuteIntent{Group: 1, Action: 'M'})

	if volumeCalls != 0 || muteCalls != 1 {
		t.Fatalf("volumeCalls=%d muteCalls=%d", volumeCalls, muteCalls)
	}
}

func TestMultipleSubscribersAllCalled(t *testing.T) {
	b := NewBus()
	var a, c int
	Subscribe(b, func(DidRefresh) { a++ })
	Subscribe(b, func(DidRefresh) { c++ })

	Publish(b, DidRefresh{})

	if a != 1 || c != 1 {
		t.Fatalf("a=%d c=%d", a, c)
	}
}
