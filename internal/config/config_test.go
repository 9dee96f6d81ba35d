package config

import (
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Calculator != "bond" {
		t.Errorf("expected calculator bond, got %s", cfg.Calculator)
	}
	if cfg.Bond.Frequency <= 0 {
		t.Error("bond frequency should be positive")
	}
	if cfg.Bond.Periods <= 0 {
		t.Error("bond periods should be positive")
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	cfg := GetPreset("credit_risk", "basel")
	if cfg == nil {
		t.Fatal("expected preset, got nil")
	}

	path := filepath.Join(t.TempDir(), "scenario.yaml")
	if err := Save(path, cfg); err != nil {
		t.Fatal(err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if loaded.Calculator != "credit_risk" {
		t.Errorf("expected calculator credit_risk, got %s", loaded.Calculator)
	}
	if loaded.CreditRisk.PD != "0.02" {
		t.Errorf("expected PD 0.02, got %s", loaded.CreditRisk.PD)
	}
	if loaded.CreditRisk.Confidence != "0.999" {
		t.Errorf("expected confidence 0.999, got %s", loaded.CreditRisk.Confidence)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestGetPreset(t *testing.T) {
	cfg := GetPreset("bond", "par")
	if cfg == nil {
		t.Fatal("expected preset, got nil")
	}
	if cfg.Bond.CouponRate != "0.06" {
		t.Errorf("expected coupon 0.06, got %s", cfg.Bond.CouponRate)
	}
}

func TestGetPreset_NotFound(t *testing.T) {
	if cfg := GetPreset("bond", "nonexistent"); cfg != nil {
		t.Error("expected nil for nonexistent preset")
	}
	if cfg := GetPreset("nonexistent", "par"); cfg != nil {
		t.Error("expected nil for nonexistent calculator")
	}
}

func TestListPresets(t *testing.T) {
	presets := ListPresets("bond")
	if len(presets) == 0 {
		t.Error("expected presets for bond")
	}

	if presets := ListPresets("nonexistent"); presets != nil {
		t.Error("expected nil for nonexistent calculator")
	}
}

func TestPresetsAreParseable(t *testing.T) {
	for calcName, group := range Presets {
		for presetName, cfg := range group {
			if cfg.Calculator != calcName {
				t.Errorf("%s/%s: calculator %s does not match group",
					calcName, presetName, cfg.Calculator)
			}
		}
	}
	if _, err := ParseDec("pd", Presets["credit_risk"]["basel"].CreditRisk.PD); err != nil {
		t.Errorf("preset decimal failed to parse: %v", err)
	}
}

func TestParseDec(t *testing.T) {
	d, err := ParseDec("x", "")
	if err != nil {
		t.Fatal(err)
	}
	if !d.IsZero() {
		t.Errorf("empty string should parse to zero, got %s", d)
	}

	if _, err := ParseDec("x", "abc"); err == nil {
		t.Error("expected error for junk input")
	}

	vals, err := ParseDecSlice("noi", []string{"1.5", "2.5"})
	if err != nil {
		t.Fatal(err)
	}
	if len(vals) != 2 || vals[1].String() != "2.5" {
		t.Errorf("unexpected slice result: %v", vals)
	}
}
