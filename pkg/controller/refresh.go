package controller

import (
	"context"

	"github.com/openhlx/hlxproxyd/pkg/proto"
)

// Refresh implementations for the Refresh Orchestrator's bootstrap walk
// (spec.md §2 component 7): one blocking upstream round trip per object
// needing population, issued in identifier order. Every controller's own
// notification handlers (registered in Init) already update the model as
// each intervening record arrives; Refresh only needs to wait for the
// terminator of the last exchange it issues.

// Refresh walks every zone, forcing a full QO<n> query upstream.
func (c *Zones) Refresh(ctx context.Context) error {
	for _, zone := range c.model.Zones() {
		id := itoaID(zone.ID())
		if err := c.RefreshObservation(ctx, []byte("QO"+id), proto.RespZoneQueryComplete, 2, nil); err != nil {
			return err
		}
	}
	return nil
}

// Refresh is a no-op for Groups: membership and the echoed
// volume/mute/source fields are purely local state with no upstream
// representation (spec.md §4.5 Groups).
func (c *Groups) Refresh(ctx context.Context) error { return nil }

// Refresh walks every source, forcing a full QS<n> query upstream.
func (c *Sources) Refresh(ctx context.Context) error {
	for _, source := range c.model.Sources() {
		id := itoaID(source.ID())
		if err := c.RefreshObservation(ctx, []byte("QS"+id), proto.RespSourceQueryComplete, 2, nil); err != nil {
			return err
		}
	}
	return nil
}

// Refresh walks every favorite, forcing a full QC<n> query upstream.
func (c *Favorites) Refresh(ctx context.Context) error {
	for _, fav := range c.model.Favorites() {
		id := itoaID(fav.ID())
		if err := c.RefreshObservation(ctx, []byte("QC"+id), proto.RespFavoriteQueryComplete, 2, nil); err != nil {
			return err
		}
	}
	return nil
}

// Refresh walks every equalizer preset, forcing a full QEP<n> query
// upstream.
func (c *Presets) Refresh(ctx context.Context) error {
	for _, preset := range c.model.Presets() {
		id := itoaID(preset.ID())
		if err := c.RefreshObservation(ctx, []byte("QEP"+id), proto.RespPresetQueryComplete, 2, nil); err != nil {
			return err
		}
	}
	return nil
}

// Refresh forces the front panel's lock and brightness state upstream.
func (c *FrontPanel) Refresh(ctx context.Context) error {
	if err := c.RefreshObservation(ctx, []byte("QFPL"), proto.RespFrontPanelLocked, 2, c.notifyLocked); err != nil {
		return err
	}
	return c.RefreshObservation(ctx, []byte("QFPB"), proto.RespFrontPanelBrightness, 2, c.notifyBrightness)
}

// Refresh forces the infrared disabled state upstream.
func (c *Infrared) Refresh(ctx context.Context) error {
	return c.RefreshObservation(ctx, []byte("QIRL"), proto.RespInfraredDisabled, 2, c.notifyDisabled)
}

// Refresh forces the network interface bundle upstream; the SDDP
// notification doubles as the completion pattern (spec.md §6: SDDP is
// always the last of the six fixed-order records).
func (c *Network) Refresh(ctx context.Context) error {
	return c.RefreshObservation(ctx, []byte("QE"), proto.RespNetworkSDDP, 2, c.notifySDDP)
}
