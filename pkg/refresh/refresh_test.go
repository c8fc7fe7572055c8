package refresh

import (
	"context"
	"errors"
	"testing"

	"github.com/openhlx/hlxproxyd/pkg/events"
)

type fakeRefreshable struct {
	name string
	err  error
	ran  bool
}

func (f *fakeRefreshable) Name() string { return f.name }
func (f *fakeRefreshable) Refresh(ctx context.Context) error {
	f.ran = true
	return f.err
}

func TestOrchestrator_RunsEveryControllerInOrder(t *testing.T) {
	bus := events.NewBus()
	var order []string
	events.Subscribe(bus, func(e events.RefreshControllerDone) {
		order = append(order, e.Controller)
	})

	zones := &fakeRefreshable{name: "zones"}
	sources := &fakeRefreshable{name: "sources"}
	o := NewOrchestrator(bus, zones, sources)

	if err := o.Run(context.Background()); err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	if !zones.ran || !sources.ran {
		t.Fatal("expected both controllers to run")
	}
	if len(order) != 2 || order[0] != "zones" || order[1] != "sources" {
		t.Fatalf("order = %v, want [zones sources]", order)
	}
}

func TestOrchestrator_PublishesDidRefreshOnce(t *testing.T) {
	bus := events.NewBus()
	var count int
	events.Subscribe(bus, func(events.DidRefresh) { count++ })

	o := NewOrchestrator(bus, &fakeRefreshable{name: "zones"})
	if err := o.Run(context.Background()); err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	if count != 1 {
		t.Fatalf("DidRefresh published %d times, want 1", count)
	}
	if !o.DidRefresh() {
		t.Error("DidRefresh() should report true after a successful run")
	}
	if o.LastCompletedAt().IsZero() {
		t.Error("LastCompletedAt() should be set after a successful run")
	}
}

func TestOrchestrator_AbortsOnFirstError(t *testing.T) {
	bus := events.NewBus()
	var done []string
	events.Subscribe(bus, func(e events.RefreshControllerDone) {
		done = append(done, e.Controller)
	})
	var didRefresh int
	events.Subscribe(bus, func(events.DidRefresh) { didRefresh++ })

	zones := &fakeRefreshable{name: "zones", err: errors.New("upstream timeout")}
	sources := &fakeRefreshable{name: "sources"}
	o := NewOrchestrator(bus, zones, sources)

	err := o.Run(context.Background())
	if err == nil {
		t.Fatal("expected error from failing controller")
	}
	if sources.ran {
		t.Error("sources should not run after zones fails")
	}
	if len(done) != 0 {
		t.Errorf("expected no RefreshControllerDone events, got %v", done)
	}
	if didRefresh != 0 {
		t.Error("DidRefresh should not publish on a failed cycle")
	}
	if o.DidRefresh() {
		t.Error("DidRefresh() should report false after a failed run")
	}
}

func TestOrchestrator_InProgressDuringRun(t *testing.T) {
	bus := events.NewBus()
	o := NewOrchestrator(bus, &fakeRefreshable{name: "zones"})

	if o.InProgress() {
		t.Error("InProgress() should be false before Run")
	}
	if err := o.Run(context.Background()); err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if o.InProgress() {
		t.Error("InProgress() should be false after Run returns")
	}
}
