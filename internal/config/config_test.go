package config

import (
	"os"
	"path/filepath"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Listen != DefaultListen {
		t.Errorf("Listen = %q, want %q", cfg.Listen, DefaultListen)
	}
	if cfg.Model.MaxZones != DefaultMaxZones {
		t.Errorf("MaxZones = %d, want %d", cfg.Model.MaxZones, DefaultMaxZones)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate: %v", err)
	}
}

func TestLoad_EmptyPathReturnsDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Listen != DefaultListen {
		t.Errorf("Listen = %q, want %q", cfg.Listen, DefaultListen)
	}
}

func TestLoad_OverlaysFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "hlxproxyd.yaml")

	data, err := yaml.Marshal(map[string]interface{}{
		"listen":     "0.0.0.0:9999",
		"timeout_ms": 2000,
		"model": map[string]int{
			"max_zones": 4,
		},
	})
	if err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Listen != "0.0.0.0:9999" {
		t.Errorf("Listen = %q, want overridden value", cfg.Listen)
	}
	if cfg.TimeoutMS != 2000 {
		t.Errorf("TimeoutMS = %d, want 2000", cfg.TimeoutMS)
	}
	if cfg.Model.MaxZones != 4 {
		t.Errorf("MaxZones = %d, want 4", cfg.Model.MaxZones)
	}
}

func TestLoad_NonExistentFile(t *testing.T) {
	_, err := Load("/nonexistent/hlxproxyd.yaml")
	if err == nil {
		t.Error("expected error loading nonexistent file")
	}
}

func TestValidate_RejectsNonPositiveSizes(t *testing.T) {
	cfg := Default()
	cfg.Model.MaxZones = 0
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for zero max_zones")
	}
}

func TestValidate_RejectsWrongBandCount(t *testing.T) {
	cfg := Default()
	cfg.Model.ZoneEqualizerBands = 7
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for mismatched zone_equalizer_bands")
	}
}

func TestValidate_RejectsEmptyAddresses(t *testing.T) {
	cfg := Default()
	cfg.Listen = ""
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for empty listen address")
	}

	cfg = Default()
	cfg.Connect = ""
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for empty connect address")
	}
}

func TestApplyFlags_OverridesWinOverDefaults(t *testing.T) {
	cfg := Default()
	cfg.ApplyFlags("0.0.0.0:1111", "", 0, "debug")

	if cfg.Listen != "0.0.0.0:1111" {
		t.Errorf("Listen = %q, want flag override", cfg.Listen)
	}
	if cfg.Connect != DefaultConnect {
		t.Errorf("Connect = %q, want unchanged default", cfg.Connect)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("LogLevel = %q, want debug", cfg.LogLevel)
	}
}

func TestSizes(t *testing.T) {
	cfg := Default()
	sizes := cfg.Sizes()
	if sizes.MaxZones != cfg.Model.MaxZones {
		t.Errorf("Sizes().MaxZones = %d, want %d", sizes.MaxZones, cfg.Model.MaxZones)
	}
}

func TestTimeout(t *testing.T) {
	cfg := Default()
	cfg.TimeoutMS = 3000
	if got, want := cfg.Timeout().Milliseconds(), int64(3000); got != want {
		t.Errorf("Timeout() = %dms, want %dms", got, want)
	}
}
