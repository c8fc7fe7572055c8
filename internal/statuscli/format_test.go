package statuscli

import (
	"testing"

	"github.com/openhlx/hlxproxyd/internal/config"
	"github.com/openhlx/hlxproxyd/internal/health"
	"github.com/openhlx/hlxproxyd/pkg/model"
)

func TestPrintZones_UninitializedFieldsShowDash(t *testing.T) {
	z := model.NewZone(model.Identifier(1))
	// No Set* calls: everything should render as "-" except ID.
	PrintZones([]*model.Zone{z})
}

func TestPrintZones_InitializedFields(t *testing.T) {
	z := model.NewZone(model.Identifier(1))
	if _, err := z.SetName("Living Room"); err != nil {
		t.Fatal(err)
	}
	if _, err := z.SetVolume(10); err != nil {
		t.Fatal(err)
	}
	z.SetMute(true)
	PrintZones([]*model.Zone{z})
}

func TestPrintSources(t *testing.T) {
	s := model.NewSource(model.Identifier(1))
	if _, err := s.SetName("Tuner"); err != nil {
		t.Fatal(err)
	}
	PrintSources([]*model.Source{s})
}

func TestPrintSources_UnnamedShowsDash(t *testing.T) {
	s := model.NewSource(model.Identifier(2))
	PrintSources([]*model.Source{s})
}

func TestPrintFavorites(t *testing.T) {
	f := model.NewFavorite(model.Identifier(1))
	if _, err := f.SetName("Morning Mix"); err != nil {
		t.Fatal(err)
	}
	PrintFavorites([]*model.Favorite{f})
}

func TestPrintGroups(t *testing.T) {
	g := model.NewGroup(model.Identifier(1))
	if _, err := g.SetName("Downstairs"); err != nil {
		t.Fatal(err)
	}
	PrintGroups([]*model.Group{g})
}

func TestPrintGroups_UnnamedShowsDash(t *testing.T) {
	g := model.NewGroup(model.Identifier(2))
	PrintGroups([]*model.Group{g})
}

func TestPrintConfig(t *testing.T) {
	cfg := config.Default()
	PrintConfig(cfg)
}

func TestPrintHealthReport(t *testing.T) {
	report := &health.Report{
		Overall: health.StatusOK,
		Results: []health.Result{
			{Check: "bootstrap", Status: health.StatusOK, Message: "refresh complete"},
			{Check: "backlog", Status: health.StatusOK, Message: "0 outstanding"},
		},
	}
	PrintHealthReport(report)
}

func TestBoolCell(t *testing.T) {
	if got := boolCell(false, true); got != "-" {
		t.Errorf("boolCell(false, true) = %q, want -", got)
	}
	if got := boolCell(true, true); got != "yes" {
		t.Errorf("boolCell(true, true) = %q, want yes", got)
	}
	if got := boolCell(true, false); got != "no" {
		t.Errorf("boolCell(true, false) = %q, want no", got)
	}
}

func TestSoundModeCell(t *testing.T) {
	if got := soundModeCell(false, model.SoundModeTone); got != "-" {
		t.Errorf("soundModeCell(false, ...) = %q, want -", got)
	}
	if got := soundModeCell(true, model.SoundModeTone); got != model.SoundModeTone.String() {
		t.Errorf("soundModeCell(true, Tone) = %q, want %q", got, model.SoundModeTone.String())
	}
}
