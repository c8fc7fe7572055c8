// Package proxy is the composition root: it builds the model, both
// command managers, every object controller, the refresh orchestrator, and
// the health checker, wires them together, and drives the upstream
// connector and downstream listener for the lifetime of the process
// (spec.md §2, §5). Grounded on the teacher's cmd/newtron/main.go +
// pkg/device composition-root style — construct every collaborator once at
// startup, then run one blocking loop — re-keyed from a one-shot CLI tool
// to a long-running daemon.
package proxy

import (
	"context"
	"fmt"
	"time"

	"github.com/openhlx/hlxproxyd/internal/config"
	"github.com/openhlx/hlxproxyd/internal/health"
	"github.com/openhlx/hlxproxyd/internal/logging"
	"github.com/openhlx/hlxproxyd/pkg/clientcm"
	"github.com/openhlx/hlxproxyd/pkg/controller"
	"github.com/openhlx/hlxproxyd/pkg/events"
	"github.com/openhlx/hlxproxyd/pkg/model"
	"github.com/openhlx/hlxproxyd/pkg/refresh"
	"github.com/openhlx/hlxproxyd/pkg/servercm"
)

// Proxy is the running daemon: the upstream command manager, the
// downstream command manager, the model they both mutate, and every
// controller bridging the two (spec.md §2).
type Proxy struct {
	cfg *config.Config

	model  *model.Model
	bus    *events.Bus
	client *clientcm.Manager
	server *servercm.Manager

	controllers []controller.Controller
	refreshable []refresh.Refreshable
	refresher   *refresh.Orchestrator
	health      *health.Checker

	upstream   *upstreamConn
	downstream *downstreamListener
}

// New constructs a Proxy from cfg. It wires every object controller's
// request and notification registrations but does not yet dial upstream
// or accept downstream connections — call Run for that.
func New(cfg *config.Config) *Proxy {
	m := model.New(cfg.Sizes())
	bus := events.NewBus()

	upstream := newUpstreamConn(cfg.Connect)
	client := clientcm.NewManager(upstream, cfg.Timeout())
	server := servercm.NewManager()
	upstream.client = client

	p := &Proxy{
		cfg:      cfg,
		model:    m,
		bus:      bus,
		client:   client,
		server:   server,
		health:   health.NewChecker(),
		upstream: upstream,
	}

	zones := controller.NewZones(controller.NewBasis("zones", client, server, bus, 0), m)
	groups := controller.NewGroups(controller.NewBasis("groups", client, server, bus, 0), m)
	sources := controller.NewSources(controller.NewBasis("sources", client, server, bus, 0), m)
	favorites := controller.NewFavorites(controller.NewBasis("favorites", client, server, bus, 0), m)
	presets := controller.NewPresets(controller.NewBasis("presets", client, server, bus, 0), m)
	frontPanel := controller.NewFrontPanel(controller.NewBasis("frontpanel", client, server, bus, 0), m)
	infrared := controller.NewInfrared(controller.NewBasis("infrared", client, server, bus, 0), m)
	network := controller.NewNetwork(controller.NewBasis("network", client, server, bus, 0), m)
	configuration := controller.NewConfiguration(
		controller.NewBasis("configuration", client, server, bus, 0),
		favorites, sources, presets, frontPanel, infrared, network, zones, groups,
	)

	p.controllers = []controller.Controller{
		zones, groups, sources, favorites, presets, frontPanel, infrared, network, configuration,
	}
	// Refresh order follows spec.md §4.5 Configuration's own fixed dump
	// order, so the bootstrap walk populates dependents (Configuration
	// reads every other controller) only after everything it depends on.
	p.refreshable = []refresh.Refreshable{
		favorites, sources, presets, frontPanel, infrared, network, zones, groups,
	}

	for _, c := range p.controllers {
		if init, ok := c.(interface{ Init() }); ok {
			init.Init()
		}
	}
	controller.SubscribeZoneApplication(bus, m, zones)

	p.refresher = refresh.NewOrchestrator(bus, p.refreshable...)
	p.downstream = newDownstreamListener(cfg.Listen, server)

	return p
}

// Run dials upstream, starts both command managers and the downstream
// listener, runs the bootstrap refresh once the upstream link is up, and
// blocks until ctx is cancelled (spec.md §5: one reactor task per command
// manager, driven for the life of the process).
func (p *Proxy) Run(ctx context.Context) error {
	go p.client.Run(ctx)
	go p.server.Run(ctx)

	if err := p.downstream.start(ctx); err != nil {
		return fmt.Errorf("starting downstream listener: %w", err)
	}
	defer p.downstream.stop()

	connected := make(chan struct{})
	go p.upstream.run(ctx, connected)

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-connected:
	}

	logging.Log.WithField("connect", p.cfg.Connect).Info("upstream link established")
	if err := p.refresher.Run(ctx); err != nil {
		logging.Log.WithError(err).Warn("bootstrap refresh failed, proxy will continue serving stale state")
	}

	<-ctx.Done()
	return ctx.Err()
}

// HealthChecker exposes the configured health.Checker. No `hlxproxyd`
// subcommand calls it or RunHealthCheck.
func (p *Proxy) HealthChecker() *health.Checker { return p.health }

// RunHealthCheck runs every health check against this proxy right now.
func (p *Proxy) RunHealthCheck(ctx context.Context) *health.Report {
	return p.health.Run(ctx, p)
}

// The following methods satisfy health.Target (SPEC_FULL.md §E), backed
// directly by the command managers and refresh orchestrator this proxy
// already owns — no separate bookkeeping.

func (p *Proxy) OutstandingExchanges() int { return p.client.Outstanding() }
func (p *Proxy) ConnectionCount() int      { return p.server.ConnectionCount() }
func (p *Proxy) RefreshInProgress() bool   { return p.refresher.InProgress() }
func (p *Proxy) DidRefresh() bool          { return p.refresher.DidRefresh() }
func (p *Proxy) LastRefreshAt() time.Time  { return p.refresher.LastCompletedAt() }
