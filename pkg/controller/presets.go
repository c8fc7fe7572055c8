package controller

import (
	"github.com/openhlx/hlxproxyd/pkg/model"
	"github.com/openhlx/hlxproxyd/pkg/proto"
	"github.com/openhlx/hlxproxyd/pkg/servercm"
)

// Presets implements the EqualizerPresetsController (spec.md §4.5
// EqualizerPresets): stored named band sets zones can be assigned
// wholesale (see Zones.notifyEQPreset).
type Presets struct {
	Basis
	model *model.Model
}

// NewPresets constructs a presets controller over the shared model.
func NewPresets(basis Basis, m *model.Model) *Presets {
	return &Presets{Basis: basis, model: m}
}

// Init registers the preset request patterns and notifications. The
// EQB<n>,<b>,<lvl> notification form is shared on the wire with the Zones
// controller's own equalizer-band notification (spec.md §6); this
// controller only ever issues preset-scoped requests (`EP`/`EPU`/`EPD`),
// so any EQB reply received while a preset exchange is in flight is
// unambiguous in context even though the bytes alone don't carry which
// object family they address (see pkg/proto presets.go).
func (c *Presets) Init() {
	c.Server.RegisterRequest("preset:query", proto.ReqPresetQuery, 2, c.onQuery)
	c.Server.RegisterRequest("preset:set-band", proto.ReqPresetSetBand, 4, c.onSetBand)
	c.Server.RegisterRequest("preset:band-up", proto.ReqPresetBandUp, 3, c.onBandUp)
	c.Server.RegisterRequest("preset:band-down", proto.ReqPresetBandDown, 3, c.onBandDown)
	c.Server.RegisterRequest("preset:set-name", proto.ReqPresetSetName, 3, c.onSetName)

	c.Client.RegisterNotification("preset:name", proto.RespPresetName, 3, c.notifyName)
}

func (c *Presets) resolve(conn servercm.Connection, idGroup string) (*model.EqualizerPreset, bool) {
	n, err := proto.ParseInt(idGroup)
	if err != nil {
		c.Server.SendErrorResponse(conn)
		return nil, false
	}
	preset, err := c.model.Preset(model.Identifier(n))
	if err != nil {
		c.Server.SendErrorResponse(conn)
		return nil, false
	}
	return preset, true
}

func (c *Presets) onQuery(conn servercm.Connection, body []byte, groups []string) {
	preset, ok := c.resolve(conn, groups[1])
	if !ok {
		return
	}
	if !preset.Initialized() {
		c.ProxyObservation(conn, body, proto.RespPresetQueryComplete, 2, nil, c.onQuery)
		return
	}
	id := int(preset.ID())
	c.Server.SendResponse(conn, proto.FormatPresetName(id, preset.Name()))
	for band := 0; band < model.EqualizerBandCount; band++ {
		level, _ := preset.Band(band)
		c.Server.SendResponse(conn, proto.FormatEQBand(id, band, level))
	}
	c.Server.SendResponse(conn, []byte("QEP"+itoaInt(id)))
}

// onSetBand, onBandUp, and onBandDown forward to the upstream device; the
// reply is matched against the shared EQB pattern and applied to this
// preset's band directly rather than through a Zone (the preset exchange's
// own response handler, not a registered notification, since it only
// fires while a preset-scoped exchange is outstanding).
func (c *Presets) onSetBand(conn servercm.Connection, body []byte, groups []string) {
	preset, ok := c.resolve(conn, groups[1])
	if !ok {
		return
	}
	c.ProxyMutation(conn, body, proto.RespZoneEQBand, 4, c.applyBand(preset))
}

func (c *Presets) onBandUp(conn servercm.Connection, body []byte, groups []string) {
	preset, ok := c.resolve(conn, groups[1])
	if !ok {
		return
	}
	c.ProxyMutation(conn, body, proto.RespZoneEQBand, 4, c.applyBand(preset))
}

func (c *Presets) onBandDown(conn servercm.Connection, body []byte, groups []string) {
	preset, ok := c.resolve(conn, groups[1])
	if !ok {
		return
	}
	c.ProxyMutation(conn, body, proto.RespZoneEQBand, 4, c.applyBand(preset))
}

func (c *Presets) applyBand(preset *model.EqualizerPreset) func(body []byte, groups []string) {
	return func(body []byte, groups []string) {
		band, level, err := atoi2(groups[2], groups[3])
		if err != nil {
			return
		}
		preset.SetBand(band, level)
	}
}

func (c *Presets) onSetName(conn servercm.Connection, body []byte, groups []string) {
	if _, ok := c.resolve(conn, groups[1]); !ok {
		return
	}
	c.ProxyMutation(conn, body, proto.RespPresetName, 3, c.notifyName)
}

func (c *Presets) notifyName(body []byte, groups []string) {
	id, err := proto.ParseInt(groups[1])
	if err != nil {
		return
	}
	preset, err := c.model.Preset(model.Identifier(id))
	if err != nil {
		return
	}
	preset.SetName(groups[2])
}

// QueryCurrentConfiguration synthesizes every preset's current state for
// the Configuration controller's QX dump.
func (c *Presets) QueryCurrentConfiguration() []byte {
	var out []byte
	for _, preset := range c.model.Presets() {
		id := int(preset.ID())
		out = append(out, proto.Wrap(proto.FormatPresetName(id, preset.Name()))...)
		for band := 0; band < model.EqualizerBandCount; band++ {
			level, _ := preset.Band(band)
			out = append(out, proto.Wrap(proto.FormatEQBand(id, band, level))...)
		}
	}
	return out
}
