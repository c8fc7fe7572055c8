package controller

import (
	"github.com/openhlx/hlxproxyd/pkg/events"
	"github.com/openhlx/hlxproxyd/pkg/model"
	"github.com/openhlx/hlxproxyd/pkg/proto"
	"github.com/openhlx/hlxproxyd/pkg/servercm"
)

// Zones implements the ZonesController (spec.md §4.5 Zones): the largest
// and most behaviorally rich of the object controllers.
type Zones struct {
	Basis
	model *model.Model
}

// NewZones constructs the zones controller over the shared model.
func NewZones(basis Basis, m *model.Model) *Zones {
	return &Zones{Basis: basis, model: m}
}

// Init registers every zone request pattern on the server command manager
// and every zone notification pattern on the client command manager.
func (c *Zones) Init() {
	c.Server.RegisterRequest("zone:query", proto.ReqZoneQuery, 2, c.onQuery)
	c.Server.RegisterRequest("zone:query-mute", proto.ReqZoneQueryMute, 2, c.onQueryMute)
	c.Server.RegisterRequest("zone:query-source", proto.ReqZoneQuerySource, 2, c.onQuerySource)
	c.Server.RegisterRequest("zone:query-volume", proto.ReqZoneQueryVolume, 2, c.onQueryVolume)

	c.Server.RegisterRequest("zone:set-volume", proto.ReqZoneSetVolume, 3, c.onSetVolume)
	c.Server.RegisterRequest("zone:volume-up", proto.ReqZoneVolumeUp, 2, c.onVolumeUp)
	c.Server.RegisterRequest("zone:volume-down", proto.ReqZoneVolumeDown, 2, c.onVolumeDown)
	c.Server.RegisterRequest("zone:volume-all", proto.ReqZoneVolumeAll, 2, c.onVolumeAll)
	c.Server.RegisterRequest("zone:volume-fixed", proto.ReqZoneVolumeFixed, 3, c.onSetVolumeFixed)

	c.Server.RegisterRequest("zone:mute", proto.ReqZoneMute, 2, c.onMute)
	c.Server.RegisterRequest("zone:unmute", proto.ReqZoneUnmute, 2, c.onUnmute)
	c.Server.RegisterRequest("zone:mute-toggle", proto.ReqZoneMuteToggle, 2, c.onMuteToggle)

	c.Server.RegisterRequest("zone:set-source", proto.ReqZoneSetSource, 3, c.onSetSource)
	c.Server.RegisterRequest("zone:source-all", proto.ReqZoneSourceAll, 2, c.onSourceAll)

	c.Server.RegisterRequest("zone:set-balance", proto.ReqZoneSetBalance, 4, c.onSetBalance)
	c.Server.RegisterRequest("zone:balance-up", proto.ReqZoneBalanceUp, 2, c.onBalanceUp)
	c.Server.RegisterRequest("zone:balance-down", proto.ReqZoneBalanceDown, 2, c.onBalanceDown)

	c.Server.RegisterRequest("zone:set-tone", proto.ReqZoneSetTone, 4, c.onSetTone)
	c.Server.RegisterRequest("zone:bass-up", proto.ReqZoneBassUp, 2, c.onBassUp)
	c.Server.RegisterRequest("zone:bass-down", proto.ReqZoneBassDown, 2, c.onBassDown)
	c.Server.RegisterRequest("zone:treble-up", proto.ReqZoneTrebleUp, 2, c.onTrebleUp)
	c.Server.RegisterRequest("zone:treble-down", proto.ReqZoneTrebleDown, 2, c.onTrebleDown)

	c.Server.RegisterRequest("zone:set-eq-band", proto.ReqZoneSetEQBand, 4, c.onSetEQBand)
	c.Server.RegisterRequest("zone:eq-band-up", proto.ReqZoneEQBandUp, 3, c.onEQBandUp)
	c.Server.RegisterRequest("zone:eq-band-down", proto.ReqZoneEQBandDown, 3, c.onEQBandDown)
	c.Server.RegisterRequest("zone:set-eq-preset", proto.ReqZoneSetEQPreset, 3, c.onSetEQPreset)

	c.Server.RegisterRequest("zone:set-highpass", proto.ReqZoneSetHighpass, 3, c.onSetHighpass)
	c.Server.RegisterRequest("zone:set-lowpass", proto.ReqZoneSetLowpass, 3, c.onSetLowpass)

	c.Server.RegisterRequest("zone:set-sound-mode", proto.ReqZoneSetSoundMode, 3, c.onSetSoundMode)
	c.Server.RegisterRequest("zone:set-name", proto.ReqZoneSetName, 3, c.onSetName)

	c.Client.RegisterNotification("zone:volume", proto.RespZoneVolume, 3, c.notifyVolume)
	c.Client.RegisterNotification("zone:mute", proto.RespZoneMute, 3, c.notifyMute)
	c.Client.RegisterNotification("zone:source", proto.RespZoneSource, 3, c.notifySource)
	c.Client.RegisterNotification("zone:balance", proto.RespZoneBalance, 4, c.notifyBalance)
	c.Client.RegisterNotification("zone:tone", proto.RespZoneTone, 4, c.notifyTone)
	c.Client.RegisterNotification("zone:eq-band", proto.RespZoneEQBand, 4, c.notifyEQBand)
	c.Client.RegisterNotification("zone:eq-preset", proto.RespZoneEQPreset, 3, c.notifyEQPreset)
	c.Client.RegisterNotification("zone:highpass", proto.RespZoneHighpass, 3, c.notifyHighpass)
	c.Client.RegisterNotification("zone:lowpass", proto.RespZoneLowpass, 3, c.notifyLowpass)
	c.Client.RegisterNotification("zone:sound-mode", proto.RespZoneSoundMode, 3, c.notifySoundMode)
	c.Client.RegisterNotification("zone:name", proto.RespZoneName, 3, c.notifyName)
	c.Client.RegisterNotification("zone:volume-fixed", proto.RespZoneVolumeFixed, 3, c.notifyVolumeFixed)
}

// --- observations ---

func (c *Zones) onQuery(conn servercm.Connection, body []byte, groups []string) {
	id, zone, ok := c.resolve(conn, groups[1])
	if !ok {
		return
	}
	if !zone.Initialized() {
		c.ProxyObservation(conn, body, proto.RespZoneQueryComplete, 2, nil, c.onQuery)
		return
	}
	c.sendFullState(conn, zone)
	c.Server.SendResponse(conn, []byte("QO"+itoaID(id)))
}

func (c *Zones) onQueryMute(conn servercm.Connection, body []byte, groups []string) {
	id, zone, ok := c.resolve(conn, groups[1])
	if !ok {
		return
	}
	if !zone.MuteInitialized() {
		c.ProxyObservation(conn, body, proto.RespZoneQueryMuteComplete, 2, nil, c.onQueryMute)
		return
	}
	c.Server.SendResponse(conn, proto.FormatMute(int(id), zone.Muted()))
	c.Server.SendResponse(conn, []byte("QOM"+itoaID(id)))
}

func (c *Zones) onQuerySource(conn servercm.Connection, body []byte, groups []string) {
	id, zone, ok := c.resolve(conn, groups[1])
	if !ok {
		return
	}
	if !zone.SourceInitialized() {
		c.ProxyObservation(conn, body, proto.RespZoneQuerySourceComplete, 2, nil, c.onQuerySource)
		return
	}
	c.Server.SendResponse(conn, proto.FormatSource(int(id), int(zone.Source())))
	c.Server.SendResponse(conn, []byte("QOS"+itoaID(id)))
}

func (c *Zones) onQueryVolume(conn servercm.Connection, body []byte, groups []string) {
	id, zone, ok := c.resolve(conn, groups[1])
	if !ok {
		return
	}
	if !zone.VolumeInitialized() {
		c.ProxyObservation(conn, body, proto.RespZoneQueryVolumeComplete, 2, nil, c.onQueryVolume)
		return
	}
	c.Server.SendResponse(conn, proto.FormatVolume(int(id), zone.Volume()))
	c.Server.SendResponse(conn, []byte("QOV"+itoaID(id)))
}

func (c *Zones) sendFullState(conn servercm.Connection, zone *model.Zone) {
	id := int(zone.ID())
	c.Server.SendResponse(conn, proto.FormatVolume(id, zone.Volume()))
	c.Server.SendResponse(conn, proto.FormatMute(id, zone.Muted()))
	c.Server.SendResponse(conn, proto.FormatSource(id, int(zone.Source())))
	c.Server.SendResponse(conn, proto.FormatBalance(id, zone.Balance()))
	bass, treble := zone.Tone()
	c.Server.SendResponse(conn, proto.FormatTone(id, bass, treble))
	c.Server.SendResponse(conn, proto.FormatSoundMode(id, int(zone.SoundMode())))
	for band := 0; band < model.EqualizerBandCount; band++ {
		level, _ := zone.EqualizerBand(band)
		c.Server.SendResponse(conn, proto.FormatEQBand(id, band, level))
	}
	c.Server.SendResponse(conn, proto.FormatHighpass(id, zone.Highpass()))
	c.Server.SendResponse(conn, proto.FormatLowpass(id, zone.Lowpass()))
	c.Server.SendResponse(conn, proto.FormatVolumeFixed(id, zone.VolumeFixed()))
}

// --- mutations ---

func (c *Zones) onSetVolume(conn servercm.Connection, body []byte, groups []string) {
	_, _, ok := c.resolve(conn, groups[1])
	if !ok {
		return
	}
	if _, err := proto.ParseInt(groups[2]); err != nil {
		c.Server.SendErrorResponse(conn)
		return
	}
	c.ProxyMutation(conn, body, proto.RespZoneVolume, 3, c.notifyVolume)
}

func (c *Zones) onVolumeUp(conn servercm.Connection, body []byte, groups []string) {
	if _, _, ok := c.resolve(conn, groups[1]); !ok {
		return
	}
	c.ProxyMutation(conn, body, proto.RespZoneVolume, 3, c.notifyVolume)
}

func (c *Zones) onVolumeDown(conn servercm.Connection, body []byte, groups []string) {
	if _, _, ok := c.resolve(conn, groups[1]); !ok {
		return
	}
	c.ProxyMutation(conn, body, proto.RespZoneVolume, 3, c.notifyVolume)
}

func (c *Zones) onVolumeAll(conn servercm.Connection, body []byte, groups []string) {
	if _, err := proto.ParseInt(groups[1]); err != nil {
		c.Server.SendErrorResponse(conn)
		return
	}
	// "volume-all" fans out one VOL line per zone; the client command
	// manager only matches one response per exchange, so the request is
	// forwarded with the first zone's VOL line as the exchange terminator
	// and every zone's line (including the first) still reaches every
	// downstream connection through the per-zone notification handler.
	c.ProxyMutation(conn, body, proto.RespZoneVolume, 3, c.notifyVolume)
}

func (c *Zones) onSetVolumeFixed(conn servercm.Connection, body []byte, groups []string) {
	if _, _, ok := c.resolve(conn, groups[1]); !ok {
		return
	}
	c.ProxyMutation(conn, body, proto.RespZoneVolumeFixed, 3, c.notifyVolumeFixed)
}

func (c *Zones) onMute(conn servercm.Connection, body []byte, groups []string) {
	if _, _, ok := c.resolve(conn, groups[1]); !ok {
		return
	}
	c.ProxyMutation(conn, body, proto.RespZoneMute, 3, c.notifyMute)
}

func (c *Zones) onUnmute(conn servercm.Connection, body []byte, groups []string) {
	if _, _, ok := c.resolve(conn, groups[1]); !ok {
		return
	}
	c.ProxyMutation(conn, body, proto.RespZoneMute, 3, c.notifyMute)
}

func (c *Zones) onMuteToggle(conn servercm.Connection, body []byte, groups []string) {
	if _, _, ok := c.resolve(conn, groups[1]); !ok {
		return
	}
	c.ProxyMutation(conn, body, proto.RespZoneMute, 3, c.notifyMute)
}

func (c *Zones) onSetSource(conn servercm.Connection, body []byte, groups []string) {
	if _, _, ok := c.resolve(conn, groups[1]); !ok {
		return
	}
	source, err := proto.ParseInt(groups[2])
	if err != nil {
		c.Server.SendErrorResponse(conn)
		return
	}
	if err := c.model.SourceRange().Validate(model.Identifier(source)); err != nil {
		c.Server.SendErrorResponse(conn)
		return
	}
	c.ProxyMutation(conn, body, proto.RespZoneSource, 3, c.notifySource)
}

func (c *Zones) onSourceAll(conn servercm.Connection, body []byte, groups []string) {
	source, err := proto.ParseInt(groups[1])
	if err != nil {
		c.Server.SendErrorResponse(conn)
		return
	}
	if err := c.model.SourceRange().Validate(model.Identifier(source)); err != nil {
		c.Server.SendErrorResponse(conn)
		return
	}
	c.ProxyMutation(conn, body, proto.RespZoneSource, 3, c.notifySource)
}

func (c *Zones) onSetBalance(conn servercm.Connection, body []byte, groups []string) {
	if _, _, ok := c.resolve(conn, groups[1]); !ok {
		return
	}
	c.ProxyMutation(conn, body, proto.RespZoneBalance, 4, c.notifyBalance)
}

func (c *Zones) onBalanceUp(conn servercm.Connection, body []byte, groups []string) {
	if _, _, ok := c.resolve(conn, groups[1]); !ok {
		return
	}
	c.ProxyMutation(conn, body, proto.RespZoneBalance, 4, c.notifyBalance)
}

func (c *Zones) onBalanceDown(conn servercm.Connection, body []byte, groups []string) {
	if _, _, ok := c.resolve(conn, groups[1]); !ok {
		return
	}
	c.ProxyMutation(conn, body, proto.RespZoneBalance, 4, c.notifyBalance)
}

func (c *Zones) onSetTone(conn servercm.Connection, body []byte, groups []string) {
	if _, _, ok := c.resolve(conn, groups[1]); !ok {
		return
	}
	c.ProxyMutation(conn, body, proto.RespZoneTone, 4, c.notifyTone)
}

// onBassUp, onBassDown, onTrebleUp, onTrebleDown forward an adjust request
// unchanged in its own wire form (the device applies the delta internally)
// and complete on the combined TON<n>,<bass>,<treble> response, which sets
// both tone fields. The controller has no bass-only or treble-only set
// request and never composes a set-tone request or substitutes a flat
// default for an uninitialized tone field.

func (c *Zones) onBassUp(conn servercm.Connection, body []byte, groups []string) {
	if _, _, ok := c.resolve(conn, groups[1]); !ok {
		return
	}
	c.ProxyMutation(conn, body, proto.RespZoneTone, 4, c.notifyTone)
}

func (c *Zones) onBassDown(conn servercm.Connection, body []byte, groups []string) {
	if _, _, ok := c.resolve(conn, groups[1]); !ok {
		return
	}
	c.ProxyMutation(conn, body, proto.RespZoneTone, 4, c.notifyTone)
}

func (c *Zones) onTrebleUp(conn servercm.Connection, body []byte, groups []string) {
	if _, _, ok := c.resolve(conn, groups[1]); !ok {
		return
	}
	c.ProxyMutation(conn, body, proto.RespZoneTone, 4, c.notifyTone)
}

func (c *Zones) onTrebleDown(conn servercm.Connection, body []byte, groups []string) {
	if _, _, ok := c.resolve(conn, groups[1]); !ok {
		return
	}
	c.ProxyMutation(conn, body, proto.RespZoneTone, 4, c.notifyTone)
}

func (c *Zones) onSetEQBand(conn servercm.Connection, body []byte, groups []string) {
	if _, _, ok := c.resolve(conn, groups[1]); !ok {
		return
	}
	c.ProxyMutation(conn, body, proto.RespZoneEQBand, 4, c.notifyEQBand)
}

func (c *Zones) onEQBandUp(conn servercm.Connection, body []byte, groups []string) {
	if _, _, ok := c.resolve(conn, groups[1]); !ok {
		return
	}
	c.ProxyMutation(conn, body, proto.RespZoneEQBand, 4, c.notifyEQBand)
}

func (c *Zones) onEQBandDown(conn servercm.Connection, body []byte, groups []string) {
	if _, _, ok := c.resolve(conn, groups[1]); !ok {
		return
	}
	c.ProxyMutation(conn, body, proto.RespZoneEQBand, 4, c.notifyEQBand)
}

func (c *Zones) onSetEQPreset(conn servercm.Connection, body []byte, groups []string) {
	if _, _, ok := c.resolve(conn, groups[1]); !ok {
		return
	}
	preset, err := proto.ParseInt(groups[2])
	if err != nil {
		c.Server.SendErrorResponse(conn)
		return
	}
	if err := c.model.PresetRange().Validate(model.Identifier(preset)); err != nil {
		c.Server.SendErrorResponse(conn)
		return
	}
	c.ProxyMutation(conn, body, proto.RespZoneEQPreset, 3, c.notifyEQPreset)
}

func (c *Zones) onSetHighpass(conn servercm.Connection, body []byte, groups []string) {
	if _, _, ok := c.resolve(conn, groups[1]); !ok {
		return
	}
	c.ProxyMutation(conn, body, proto.RespZoneHighpass, 3, c.notifyHighpass)
}

func (c *Zones) onSetLowpass(conn servercm.Connection, body []byte, groups []string) {
	if _, _, ok := c.resolve(conn, groups[1]); !ok {
		return
	}
	c.ProxyMutation(conn, body, proto.RespZoneLowpass, 3, c.notifyLowpass)
}

func (c *Zones) onSetSoundMode(conn servercm.Connection, body []byte, groups []string) {
	if _, _, ok := c.resolve(conn, groups[1]); !ok {
		return
	}
	c.ProxyMutation(conn, body, proto.RespZoneSoundMode, 3, c.notifySoundMode)
}

func (c *Zones) onSetName(conn servercm.Connection, body []byte, groups []string) {
	if _, _, ok := c.resolve(conn, groups[1]); !ok {
		return
	}
	c.ProxyMutation(conn, body, proto.RespZoneName, 3, c.notifyName)
}

// --- notification handlers (also reused as mutation completion handlers) ---

func (c *Zones) notifyVolume(body []byte, groups []string) {
	id, level, err := atoi2(groups[1], groups[2])
	if err != nil {
		return
	}
	zone, err := c.model.Zone(model.Identifier(id))
	if err != nil {
		return
	}
	if changed, _ := zone.SetVolume(level); changed {
		events.Publish(c.Bus, events.ZoneChanged{Zone: model.Identifier(id), Field: "volume"})
	}
}

func (c *Zones) notifyMute(body []byte, groups []string) {
	state := groups[1] == "1"
	id, err := proto.ParseInt(groups[2])
	if err != nil {
		return
	}
	zone, err := c.model.Zone(model.Identifier(id))
	if err != nil {
		return
	}
	if zone.SetMute(state) {
		events.Publish(c.Bus, events.ZoneChanged{Zone: model.Identifier(id), Field: "mute"})
	}
}

func (c *Zones) notifySource(body []byte, groups []string) {
	id, source, err := atoi2(groups[1], groups[2])
	if err != nil {
		return
	}
	zone, err := c.model.Zone(model.Identifier(id))
	if err != nil {
		return
	}
	if zone.SetSource(model.Identifier(source)) {
		events.Publish(c.Bus, events.ZoneChanged{Zone: model.Identifier(id), Field: "source"})
	}
}

func (c *Zones) notifyBalance(body []byte, groups []string) {
	id, err := proto.ParseInt(groups[1])
	if err != nil {
		return
	}
	mag, err := proto.ParseInt(groups[3])
	if err != nil {
		return
	}
	balance := proto.DecodeBalance(groups[2][0], mag)
	zone, err := c.model.Zone(model.Identifier(id))
	if err != nil {
		return
	}
	if changed, _ := zone.SetBalance(balance); changed {
		events.Publish(c.Bus, events.ZoneChanged{Zone: model.Identifier(id), Field: "balance"})
	}
}

func (c *Zones) notifyTone(body []byte, groups []string) {
	id, err := proto.ParseInt(groups[1])
	if err != nil {
		return
	}
	bass, err := proto.ParseInt(groups[2])
	if err != nil {
		return
	}
	treble, err := proto.ParseInt(groups[3])
	if err != nil {
		return
	}
	zone, err := c.model.Zone(model.Identifier(id))
	if err != nil {
		return
	}
	if changed, _ := zone.SetTone(bass, treble); changed {
		events.Publish(c.Bus, events.ZoneChanged{Zone: model.Identifier(id), Field: "tone"})
	}
}

func (c *Zones) notifyEQBand(body []byte, groups []string) {
	id, err := proto.ParseInt(groups[1])
	if err != nil {
		return
	}
	band, err := proto.ParseInt(groups[2])
	if err != nil {
		return
	}
	level, err := proto.ParseInt(groups[3])
	if err != nil {
		return
	}
	zone, err := c.model.Zone(model.Identifier(id))
	if err != nil {
		return
	}
	if changed, _ := zone.SetEqualizerBand(band, level); changed {
		events.Publish(c.Bus, events.ZoneChanged{Zone: model.Identifier(id), Field: "equalizer"})
	}
}

func (c *Zones) notifyEQPreset(body []byte, groups []string) {
	id, preset, err := atoi2(groups[1], groups[2])
	if err != nil {
		return
	}
	zone, err := c.model.Zone(model.Identifier(id))
	if err != nil {
		return
	}
	presetModel, err := c.model.Preset(model.Identifier(preset))
	if err != nil {
		return
	}
	zone.SetSoundMode(model.SoundModePresetEqualizer)
	for band := 0; band < model.EqualizerBandCount; band++ {
		level, err := presetModel.Band(band)
		if err != nil {
			continue
		}
		zone.SetEqualizerBand(band, level)
	}
	events.Publish(c.Bus, events.ZoneChanged{Zone: model.Identifier(id), Field: "equalizer-preset"})
}

func (c *Zones) notifyHighpass(body []byte, groups []string) {
	id, freq, err := atoi2(groups[1], groups[2])
	if err != nil {
		return
	}
	zone, err := c.model.Zone(model.Identifier(id))
	if err != nil {
		return
	}
	if changed, _ := zone.SetHighpass(freq); changed {
		events.Publish(c.Bus, events.ZoneChanged{Zone: model.Identifier(id), Field: "highpass"})
	}
}

func (c *Zones) notifyLowpass(body []byte, groups []string) {
	id, freq, err := atoi2(groups[1], groups[2])
	if err != nil {
		return
	}
	zone, err := c.model.Zone(model.Identifier(id))
	if err != nil {
		return
	}
	if changed, _ := zone.SetLowpass(freq); changed {
		events.Publish(c.Bus, events.ZoneChanged{Zone: model.Identifier(id), Field: "lowpass"})
	}
}

func (c *Zones) notifySoundMode(body []byte, groups []string) {
	id, mode, err := atoi2(groups[1], groups[2])
	if err != nil {
		return
	}
	zone, err := c.model.Zone(model.Identifier(id))
	if err != nil {
		return
	}
	if zone.SetSoundMode(model.SoundMode(mode)) {
		events.Publish(c.Bus, events.ZoneChanged{Zone: model.Identifier(id), Field: "sound-mode"})
	}
}

func (c *Zones) notifyName(body []byte, groups []string) {
	id, err := proto.ParseInt(groups[1])
	if err != nil {
		return
	}
	zone, err := c.model.Zone(model.Identifier(id))
	if err != nil {
		return
	}
	if changed, _ := zone.SetName(groups[2]); changed {
		events.Publish(c.Bus, events.ZoneChanged{Zone: model.Identifier(id), Field: "name"})
	}
}

func (c *Zones) notifyVolumeFixed(body []byte, groups []string) {
	id, err := proto.ParseInt(groups[1])
	if err != nil {
		return
	}
	zone, err := c.model.Zone(model.Identifier(id))
	if err != nil {
		return
	}
	if zone.SetVolumeFixed(groups[2] == "1") {
		events.Publish(c.Bus, events.ZoneChanged{Zone: model.Identifier(id), Field: "volume-fixed"})
	}
}

// --- helpers ---

// resolve parses and validates a zone identifier, replying with an error
// response and returning ok=false on any failure.
func (c *Zones) resolve(conn servercm.Connection, idGroup string) (model.Identifier, *model.Zone, bool) {
	n, err := proto.ParseInt(idGroup)
	if err != nil {
		c.Server.SendErrorResponse(conn)
		return 0, nil, false
	}
	zone, err := c.model.Zone(model.Identifier(n))
	if err != nil {
		c.Server.SendErrorResponse(conn)
		return 0, nil, false
	}
	return model.Identifier(n), zone, true
}

// ApplyVolume applies a group's broadcast-intent volume change to a single
// member zone by issuing the normal VZ mutation upstream with no
// originating connection (spec.md §4.5 Groups, §9).
func (c *Zones) ApplyVolume(zone model.Identifier, volume int) {
	body := []byte("VZ" + itoaID(zone) + "," + itoaInt(volume))
	c.ProxyMutation(nil, body, proto.RespZoneVolume, 3, c.notifyVolume)
}

// ApplyMute applies a group's broadcast-intent mute action to a single
// member zone.
func (c *Zones) ApplyMute(zone model.Identifier, action byte) {
	var body []byte
	switch action {
	case 'M':
		body = []byte("MZ" + itoaID(zone))
	case 'U':
		body = []byte("MU" + itoaID(zone))
	default:
		body = []byte("MT" + itoaID(zone))
	}
	c.ProxyMutation(nil, body, proto.RespZoneMute, 3, c.notifyMute)
}

// ApplySource applies a group's broadcast-intent source selection to a
// single member zone.
func (c *Zones) ApplySource(zone, source model.Identifier) {
	body := []byte("CZ" + itoaID(zone) + "," + itoaID(source))
	c.ProxyMutation(nil, body, proto.RespZoneSource, 3, c.notifySource)
}

// QueryCurrentConfiguration synthesizes every zone's current state in the
// same framed form the device uses for unsolicited notifications (spec.md
// §4.4 primitive 4), for use by the Configuration controller's QX dump.
func (c *Zones) QueryCurrentConfiguration() []byte {
	var out []byte
	for _, zone := range c.model.Zones() {
		id := int(zone.ID())
		out = append(out, proto.Wrap(proto.FormatVolume(id, zone.Volume()))...)
		out = append(out, proto.Wrap(proto.FormatMute(id, zone.Muted()))...)
		out = append(out, proto.Wrap(proto.FormatSource(id, int(zone.Source())))...)
		out = append(out, proto.Wrap(proto.FormatBalance(id, zone.Balance()))...)
		bass, treble := zone.Tone()
		out = append(out, proto.Wrap(proto.FormatTone(id, bass, treble))...)
		out = append(out, proto.Wrap(proto.FormatSoundMode(id, int(zone.SoundMode())))...)
		for band := 0; band < model.EqualizerBandCount; band++ {
			level, _ := zone.EqualizerBand(band)
			out = append(out, proto.Wrap(proto.FormatEQBand(id, band, level))...)
		}
		out = append(out, proto.Wrap(proto.FormatHighpass(id, zone.Highpass()))...)
		out = append(out, proto.Wrap(proto.FormatLowpass(id, zone.Lowpass()))...)
		out = append(out, proto.Wrap(proto.FormatVolumeFixed(id, zone.VolumeFixed()))...)
	}
	return out
}
