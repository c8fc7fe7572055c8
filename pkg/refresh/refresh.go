// Package refresh implements the Refresh Orchestrator (spec.md §2
// component 7): the bootstrap walk that forces every object controller to
// populate its model from the upstream device once, immediately after the
// upstream link comes up. The downstream listener is already accepting
// requests while the walk runs.
package refresh

import (
	"context"
	"sync"
	"time"

	"github.com/openhlx/hlxproxyd/internal/logging"
	"github.com/openhlx/hlxproxyd/pkg/events"
)

// Refreshable is implemented by every object controller's refresh step: a
// blocking call that issues whatever upstream observations are needed to
// populate that controller's model fully (spec.md §4.5: each controller's
// own query-everything request, e.g. Zones issues QO<n> for every zone in
// range).
type Refreshable interface {
	Name() string
	Refresh(ctx context.Context) error
}

// Orchestrator drives one refresh walk across every registered controller,
// in registration order, and publishes progress and completion events
// (spec.md §2 component 7, §3 Invariants: "did-refresh fires exactly once
// per cycle").
type Orchestrator struct {
	bus         *events.Bus
	controllers []Refreshable

	mu          sync.Mutex
	inProgress  bool
	didRefresh  bool
	completedAt time.Time
}

// NewOrchestrator constructs an Orchestrator over the given controllers, in
// the order their Refresh steps should run.
func NewOrchestrator(bus *events.Bus, controllers ...Refreshable) *Orchestrator {
	return &Orchestrator{bus: bus, controllers: controllers}
}

// InProgress reports whether a refresh walk is currently running.
func (o *Orchestrator) InProgress() bool {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.inProgress
}

// DidRefresh reports whether at least one refresh walk has ever completed.
func (o *Orchestrator) DidRefresh() bool {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.didRefresh
}

// LastCompletedAt returns the time the most recent refresh walk finished
// successfully, the zero Time if none ever has.
func (o *Orchestrator) LastCompletedAt() time.Time {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.completedAt
}

// Run performs one refresh walk, calling Refresh on every controller in
// order and stopping at the first error, which it returns; the walk is not
// retried, and controllers after the failing one are left unrefreshed. It
// publishes
// RefreshControllerDone after each controller and DidRefresh once after the
// last.
func (o *Orchestrator) Run(ctx context.Context) error {
	o.mu.Lock()
	o.inProgress = true
	o.mu.Unlock()
	defer func() {
		o.mu.Lock()
		o.inProgress = false
		o.mu.Unlock()
	}()

	log := logging.Log.WithField("component", "refresh")
	log.Info("refresh cycle starting")

	for _, controller := range o.controllers {
		if err := controller.Refresh(ctx); err != nil {
			log.WithField("controller", controller.Name()).WithError(err).Warn("refresh failed")
			return err
		}
		events.Publish(o.bus, events.RefreshControllerDone{Controller: controller.Name()})
		log.WithField("controller", controller.Name()).Debug("refresh step complete")
	}

	o.mu.Lock()
	o.didRefresh = true
	o.completedAt = time.Now()
	o.mu.Unlock()
	events.Publish(o.bus, events.DidRefresh{})
	log.Info("refresh cycle complete")
	return nil
}
