package main

import (
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"fractalmcp/fractal"
)

func noEnv(string) string { return "" }

func TestLoadConfigDefaults(t *testing.T) {
	cfg, rest, err := loadConfig([]string{"preset"}, noEnv, io.Discard)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Port != "axe-fx" || cfg.Channel != 1 || cfg.Timeout.Duration != 2*time.Second || cfg.Debug {
		t.Errorf("unexpected defaults %+v", cfg)
	}
	if len(rest) != 1 || rest[0] != "preset" {
		t.Errorf("unexpected remaining args %v", rest)
	}
}

func TestLoadConfigLayering(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fractal.json")
	conf := `{"port": "AX8", "model": "ax8", "channel": 4, "timeout": "500ms"}`
	if err := os.WriteFile(path, []byte(conf), 0o644); err != nil {
		t.Fatal(err)
	}

	env := func(key string) string {
		if key == "FRACTAL_PORT" {
			return "Axe-Fx III"
		}
		return ""
	}

	cfg, rest, err := loadConfig([]string{"-config", path, "-channel", "9", "-debug", "scene", "3"}, env, io.Discard)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Port != "Axe-Fx III" {
		t.Errorf("FRACTAL_PORT should override the file, got %q", cfg.Port)
	}
	if cfg.Model != "ax8" || cfg.Timeout.Duration != 500*time.Millisecond {
		t.Errorf("file values lost: %+v", cfg)
	}
	if cfg.Channel != 9 || !cfg.Debug {
		t.Errorf("flags should override the file: %+v", cfg)
	}
	if len(rest) != 2 || rest[0] != "scene" || rest[1] != "3" {
		t.Errorf("unexpected remaining args %v", rest)
	}

	cfg, _, err = loadConfig([]string{"-port", "XL+", "preset"}, env, io.Discard)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Port != "XL+" {
		t.Errorf("-port should override FRACTAL_PORT, got %q", cfg.Port)
	}
}

func TestLoadConfigRejectsBadValues(t *testing.T) {
	bad := [][]string{
		{"-channel", "0"},
		{"-channel", "17"},
		{"-channel", "256"},
		{"-channel", "257"},
		{"-timeout", "0s"},
		{"-config", filepath.Join(t.TempDir(), "missing.json")},
		{"-nope"},
	}
	for _, args := range bad {
		if _, _, err := loadConfig(args, noEnv, io.Discard); err == nil {
			t.Errorf("%v: expected an error", args)
		}
	}
}

func TestGuessModel(t *testing.T) {
	cases := []struct {
		port string
		want fractal.Model
		ok   bool
	}{
		{"Axe-Fx II", fractal.ModelII, true},
		{"AXE-FX II MIDI In", fractal.ModelII, true},
		{"Axe-Fx III MIDI Out", fractal.ModelIII, true},
		{"Axe-Fx II XL", fractal.ModelIIXL, true},
		{"Axe-Fx II XL+", fractal.ModelIIXLPlus, true},
		{"AX8 MIDI 1", fractal.ModelAX8, true},
		{"FX8", fractal.ModelFX8, true},
		{"IAC Driver Bus 1", 0, false},
	}
	for _, c := range cases {
		got, ok := guessModel(c.port)
		if ok != c.ok || (ok && got != c.want) {
			t.Errorf("%q: expected %s/%v, got %s/%v", c.port, c.want, c.ok, got, ok)
		}
	}
}

func TestResolveModel(t *testing.T) {
	m, err := Config{Model: "Axe-Fx III"}.resolveModel("AX8")
	if err != nil || m != fractal.ModelIII {
		t.Errorf("explicit model should win, got %s, %v", m, err)
	}

	m, err = Config{}.resolveModel("Axe-Fx II XL+")
	if err != nil || m != fractal.ModelIIXLPlus {
		t.Errorf("expected a guess from the port name, got %s, %v", m, err)
	}

	if _, err := (Config{}).resolveModel("USB MIDI"); err == nil {
		t.Error("expected an error for an unrecognizable port")
	}
	if _, err := (Config{Model: "Kemper"}).resolveModel("Axe-Fx II"); err == nil {
		t.Error("expected an error for an unknown model name")
	}
}
