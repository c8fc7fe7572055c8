package statuscli

import (
	"fmt"

	"github.com/openhlx/hlxproxyd/internal/config"
	"github.com/openhlx/hlxproxyd/internal/health"
	"github.com/openhlx/hlxproxyd/pkg/model"
)

// PrintZones writes one row per zone: identifier, name, volume, mute,
// source, sound mode. Uninitialized fields print as "-" rather than a
// misleading zero value.
func PrintZones(zones []*model.Zone) {
	t := NewTable("ID", "NAME", "VOLUME", "MUTE", "SOURCE", "SOUND MODE")
	for _, z := range zones {
		name := z.Name()
		if name == "" {
			name = "-"
		}
		t.Row(
			fmt.Sprintf("%d", z.ID()),
			name,
			orDashInt(z.VolumeInitialized, z.Volume),
			boolCell(z.MuteInitialized(), z.Muted()),
			orDashID(z.SourceInitialized, z.Source),
			soundModeCell(z.SoundModeInitialized(), z.SoundMode()),
		)
	}
	t.Flush()
}

// PrintSources writes one row per source: identifier, name.
func PrintSources(sources []*model.Source) {
	t := NewTable("ID", "NAME")
	for _, s := range sources {
		t.Row(fmt.Sprintf("%d", s.ID()), orDash(s.NameInitialized, s.Name))
	}
	t.Flush()
}

// PrintFavorites writes one row per favorite: identifier, name.
func PrintFavorites(favs []*model.Favorite) {
	t := NewTable("ID", "NAME")
	for _, f := range favs {
		t.Row(fmt.Sprintf("%d", f.ID()), orDash(f.NameInitialized, f.Name))
	}
	t.Flush()
}

// PrintGroups writes one row per group: identifier, name, member count.
func PrintGroups(groups []*model.Group) {
	t := NewTable("ID", "NAME", "MEMBERS")
	for _, g := range groups {
		name := g.Name()
		if name == "" {
			name = "-"
		}
		t.Row(fmt.Sprintf("%d", g.ID()), name, fmt.Sprintf("%d", len(g.Members())))
	}
	t.Flush()
}

// PrintConfig writes the resolved daemon configuration as a table
// (`hlxproxyd config show`, SPEC_FULL.md §D).
func PrintConfig(cfg *config.Config) {
	t := NewTable("SETTING", "VALUE")
	t.Row("listen", cfg.Listen)
	t.Row("connect", cfg.Connect)
	t.Row("timeout_ms", fmt.Sprintf("%d", cfg.TimeoutMS))
	t.Row("log_level", cfg.LogLevel)
	t.Row("model.max_zones", fmt.Sprintf("%d", cfg.Model.MaxZones))
	t.Row("model.max_groups", fmt.Sprintf("%d", cfg.Model.MaxGroups))
	t.Row("model.max_sources", fmt.Sprintf("%d", cfg.Model.MaxSources))
	t.Row("model.max_favorites", fmt.Sprintf("%d", cfg.Model.MaxFavorites))
	t.Row("model.max_equalizer_presets", fmt.Sprintf("%d", cfg.Model.MaxEqualizerPresets))
	t.Row("model.zone_equalizer_bands", fmt.Sprintf("%d", model.EqualizerBandCount))
	t.Flush()
}

// PrintHealthReport writes one row per health check result plus the
// overall status. No `hlxproxyd` subcommand calls it.
func PrintHealthReport(report *health.Report) {
	t := NewTable("CHECK", "STATUS", "MESSAGE")
	for _, r := range report.Results {
		t.Row(r.Check, string(r.Status), r.Message)
	}
	t.Row("overall", string(report.Overall), fmt.Sprintf("checked in %s", report.Duration))
	t.Flush()
}

func orDash(initialized func() bool, value func() string) string {
	if !initialized() {
		return "-"
	}
	return value()
}

func orDashInt(initialized func() bool, value func() int) string {
	if !initialized() {
		return "-"
	}
	return fmt.Sprintf("%d", value())
}

func orDashID(initialized func() bool, value func() model.Identifier) string {
	if !initialized() {
		return "-"
	}
	return fmt.Sprintf("%d", value())
}

func boolCell(initialized, value bool) string {
	if !initialized {
		return "-"
	}
	if value {
		return "yes"
	}
	return "no"
}

func soundModeCell(initialized bool, mode model.SoundMode) string {
	if !initialized {
		return "-"
	}
	return mode.String()
}
