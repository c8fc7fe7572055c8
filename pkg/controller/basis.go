// Package controller implements the Object Controller Basis (spec.md §4.4)
// and the nine object controllers built on it (spec.md §4.5): Zones,
// Groups, Sources, Favorites, EqualizerPresets, FrontPanel, Infrared,
// Network, and Configuration.
package controller

import (
	"context"
	"regexp"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/openhlx/hlxproxyd/internal/audit"
	"github.com/openhlx/hlxproxyd/internal/logging"
	"github.com/openhlx/hlxproxyd/pkg/clientcm"
	"github.com/openhlx/hlxproxyd/pkg/events"
	"github.com/openhlx/hlxproxyd/pkg/servercm"
)

// DefaultTimeout is the exchange timeout used when a controller does not
// override it (spec.md §5: "default 5 seconds, configurable at init").
const DefaultTimeout = 5 * time.Second

// Controller is implemented by every object controller so the
// Configuration controller can iterate a fixed set of them (spec.md §4.5
// Configuration).
type Controller interface {
	Name() string
	QueryCurrentConfiguration() []byte
}

// Basis is the reusable engine every object controller embeds (spec.md
// §4.4). It owns references to both command managers, a default timeout,
// and the internal event bus, and exposes the four primitives every
// controller composes its behavior from.
type Basis struct {
	ControllerName string
	Client         *clientcm.Manager
	Server         *servercm.Manager
	Bus            *events.Bus
	Timeout        time.Duration
}

// NewBasis constructs a Basis for the named controller. timeout of zero
// uses DefaultTimeout (spec.md §5: per-controller timeout override).
func NewBasis(name string, client *clientcm.Manager, server *servercm.Manager, bus *events.Bus, timeout time.Duration) Basis {
	if timeout == 0 {
		timeout = DefaultTimeout
	}
	return Basis{ControllerName: name, Client: client, Server: server, Bus: bus, Timeout: timeout}
}

// Name returns the controller's name, used in log fields and error
// messages (SPEC_FULL.md §C.2: controller-qualified logging).
func (b *Basis) Name() string { return b.ControllerName }

// log returns a logger pre-populated with this controller's name.
func (b *Basis) log() *logrus.Entry { return logging.WithController(b.ControllerName) }

// ProxyMutation forwards a mutation verbatim upstream (spec.md §4.4
// primitive 1). On upstream completion it invokes onClientComplete (which
// parses the response as an unsolicited notification to update the local
// model), then delivers the upstream response bytes as the reply. On
// upstream error it sends a downstream error response.
//
// conn is nilable. When non-nil (an external client directly requested
// this mutation), the reply and any error go only to conn (spec.md §4.4:
// "copies the upstream response bytes back to the originating downstream
// connection"). When nil, this mutation was raised internally — by the
// Zones controller applying a Group's broadcast-intent event rather than
// answering a particular client's request (spec.md §4.5 Groups, §9) — and
// there is no originating connection to reply to, so the response is
// broadcast to every downstream connection instead, the way an unsolicited
// notification would be. This is how one client's group-volume request
// (spec.md §8 scenario 2) ends up delivering individual per-zone VOL
// notifications to every connected client.
func (b *Basis) ProxyMutation(
	conn servercm.Connection,
	requestBody []byte,
	responsePattern *regexp.Regexp,
	expectedGroups int,
	onClientComplete func(body []byte, groups []string),
) {
	ev := audit.NewEvent(b.ControllerName, string(requestBody)).WithConnection(connectionID(conn))
	start := time.Now()
	b.Client.SendCommand(&clientcm.Exchange{
		Name:            b.ControllerName + ":mutation",
		Request:         requestBody,
		ResponsePattern: responsePattern,
		ExpectedGroups:  expectedGroups,
		Timeout:         b.Timeout,
		OnComplete: func(body []byte, groups []string) {
			if onClientComplete != nil {
				onClientComplete(body, groups)
			}
			audit.Log(ev.WithResponse(string(body)).WithDuration(time.Since(start)))
			if conn != nil {
				b.Server.SendResponse(conn, body)
			} else {
				b.Server.Broadcast(body)
			}
		},
		OnError: func(err error) {
			b.log().WithField("request", string(requestBody)).WithError(err).Warn("mutation failed upstream")
			audit.Log(ev.WithError(err).WithDuration(time.Since(start)))
			if conn != nil {
				b.Server.SendErrorResponse(conn)
			}
		},
	})
}

// ProxyObservation forwards an observation the controller cannot satisfy
// locally (spec.md §4.4 primitive 2). On upstream completion it invokes
// onClientComplete to populate the model, then re-invokes
// onRequestReceived so the original request handler can now satisfy the
// request locally from the freshly-populated model.
func (b *Basis) ProxyObservation(
	conn servercm.Connection,
	requestBody []byte,
	responsePattern *regexp.Regexp,
	expectedGroups int,
	onClientComplete func(body []byte, groups []string),
	onRequestReceived func(conn servercm.Connection, requestBody []byte),
) {
	ev := audit.NewEvent(b.ControllerName, string(requestBody)).WithConnection(connectionID(conn))
	start := time.Now()
	b.Client.SendCommand(&clientcm.Exchange{
		Name:            b.ControllerName + ":observation",
		Request:         requestBody,
		ResponsePattern: responsePattern,
		ExpectedGroups:  expectedGroups,
		Timeout:         b.Timeout,
		OnComplete: func(body []byte, groups []string) {
			if onClientComplete != nil {
				onClientComplete(body, groups)
			}
			audit.Log(ev.WithResponse(string(body)).WithDuration(time.Since(start)))
			onRequestReceived(conn, requestBody)
		},
		OnError: func(err error) {
			b.log().WithField("request", string(requestBody)).WithError(err).Warn("observation fallback failed upstream")
			audit.Log(ev.WithError(err).WithDuration(time.Since(start)))
			b.Server.SendErrorResponse(conn)
		},
	})
}

// connectionID extracts conn's identifier for audit logging, 0 for a nil
// connection (an exchange raised internally rather than by a client
// request — see ProxyMutation's broadcast path).
func connectionID(conn servercm.Connection) uint64 {
	if conn == nil {
		return 0
	}
	return uint64(conn.ID())
}

// ProxyNotification relays an upstream notification the controller cares
// about (spec.md §4.4 primitive 3): first invokes the notification
// handler (model update plus a typed state-change event), then broadcasts
// the original bytes verbatim to every downstream connection.
func (b *Basis) ProxyNotification(
	body []byte,
	groups []string,
	onNotificationReceived func(body []byte, groups []string),
) {
	if onNotificationReceived != nil {
		onNotificationReceived(body, groups)
	}
	b.Server.Broadcast(body)
}

// RefreshObservation issues one request/response exchange upstream and
// blocks until it completes, errors, or ctx is cancelled (spec.md §2
// component 7: the Refresh Orchestrator's bootstrap walk is a synchronous
// sequence of upstream queries, unlike every other controller entry point
// which is callback-driven). onComplete runs on the manager's event-loop
// goroutine exactly as it would for an ordinary exchange, so it can apply
// the response to the model the same way a mutation or observation
// completion handler would.
func (b *Basis) RefreshObservation(
	ctx context.Context,
	requestBody []byte,
	responsePattern *regexp.Regexp,
	expectedGroups int,
	onComplete func(body []byte, groups []string),
) error {
	done := make(chan error, 1)
	b.Client.SendCommand(&clientcm.Exchange{
		Name:            b.ControllerName + ":refresh",
		Request:         requestBody,
		ResponsePattern: responsePattern,
		ExpectedGroups:  expectedGroups,
		Timeout:         b.Timeout,
		OnComplete: func(body []byte, groups []string) {
			if onComplete != nil {
				onComplete(body, groups)
			}
			done <- nil
		},
		OnError: func(err error) {
			done <- err
		},
	})
	select {
	case <-ctx.Done():
		return ctx.Err()
	case err := <-done:
		return err
	}
}
