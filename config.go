package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"fractalmcp/fractal"
)

// Config holds the connection settings. Values are layered: defaults, then
// the JSON file named by -config, then FRACTAL_PORT, then explicit flags.
type Config struct {
	Port string `json:"port"`
	// Model overrides the guess made from the port name.
	Model   string   `json:"model"`
	Channel uint8    `json:"channel"`
	Timeout duration `json:"timeout"`
	Debug   bool     `json:"debug"`
}

type duration struct{ time.Duration }

func (d *duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	d.Duration = v
	return nil
}

func (d duration) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

func defaultConfig() Config {
	return Config{
		Port:    "axe-fx",
		Channel: 1,
		Timeout: duration{2 * time.Second},
	}
}

// loadConfig parses the global flags in args and returns the resulting
// configuration and the remaining arguments.
func loadConfig(args []string, getenv func(string) string, stderr io.Writer) (Config, []string, error) {
	cfg := defaultConfig()

	fs := flag.NewFlagSet("fractalmcp", flag.ContinueOnError)
	fs.SetOutput(stderr)
	path := fs.String("config", "", "JSON configuration file")
	port := fs.String("port", cfg.Port, "MIDI port name fragment")
	model := fs.String("model", "", "device model (guessed from the port name when empty)")
	channel := fs.Uint("channel", uint(cfg.Channel), "MIDI channel 1-16 for tuner and metronome")
	timeout := fs.Duration("timeout", cfg.Timeout.Duration, "reply timeout")
	debug := fs.Bool("debug", false, "dump every frame to stderr")
	if err := fs.Parse(args); err != nil {
		return Config{}, nil, err
	}

	if *path != "" {
		raw, err := os.ReadFile(*path)
		if err != nil {
			return Config{}, nil, fmt.Errorf("reading config: %w", err)
		}
		if err := json.Unmarshal(raw, &cfg); err != nil {
			return Config{}, nil, fmt.Errorf("parsing config %s: %w", *path, err)
		}
	}

	if v := getenv("FRACTAL_PORT"); v != "" {
		cfg.Port = v
	}

	if *channel < 1 || *channel > 16 {
		return Config{}, nil, fmt.Errorf("MIDI channel %d out of range 1-16", *channel)
	}

	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "port":
			cfg.Port = *port
		case "model":
			cfg.Model = *model
		case "channel":
			cfg.Channel = uint8(*channel)
		case "timeout":
			cfg.Timeout.Duration = *timeout
		case "debug":
			cfg.Debug = *debug
		}
	})

	if cfg.Channel < 1 || cfg.Channel > 16 {
		return Config{}, nil, fmt.Errorf("MIDI channel %d out of range 1-16", cfg.Channel)
	}
	if cfg.Timeout.Duration <= 0 {
		return Config{}, nil, fmt.Errorf("timeout must be positive, got %s", cfg.Timeout)
	}
	return cfg, fs.Args(), nil
}

func (c Config) resolveModel(portName string) (fractal.Model, error) {
	if c.Model != "" {
		return fractal.ParseModel(c.Model)
	}
	if m, ok := guessModel(portName); ok {
		return m, nil
	}
	return 0, fmt.Errorf("cannot tell the model from port %q, pass -model", portName)
}

// guessModel recognizes the port names the processors register with the
// operating system.
func guessModel(portName string) (fractal.Model, bool) {
	name := strings.ToLower(portName)
	switch {
	case strings.Contains(name, "iii"):
		return fractal.ModelIII, true
	case strings.Contains(name, "xl+"):
		return fractal.ModelIIXLPlus, true
	case strings.Contains(name, "xl"):
		return fractal.ModelIIXL, true
	case strings.Contains(name, "ax8"):
		return fractal.ModelAX8, true
	case strings.Contains(name, "fx8"):
		return fractal.ModelFX8, true
	case strings.Contains(name, "axe-fx ii"), strings.Contains(name, "axefx ii"):
		return fractal.ModelII, true
	}
	return 0, false
}
