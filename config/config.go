// Package config loads game settings from YAML layered over built-in defaults
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"

	"github.com/lixenwraith/reelspin/parameter"
	"github.com/lixenwraith/reelspin/reel"
)

// ErrInvalidConfig wraps every validation failure
var ErrInvalidConfig = errors.New("invalid config")

// Environment overrides
const (
	EnvAudioEnabled = "REELSPIN_AUDIO_ENABLED"
	EnvMasterVolume = "REELSPIN_MASTER_VOLUME"
)

// Config is the full game configuration
type Config struct {
	Layout  Layout          `yaml:"layout"`
	Timing  Timing          `yaml:"timing"`
	Symbols []Symbol        `yaml:"symbols"`
	Clouds  Clouds          `yaml:"clouds"`
	Balance decimal.Decimal `yaml:"balance"`
	Seed    uint64          `yaml:"seed"`
	Audio   Audio           `yaml:"audio"`
	Log     Log             `yaml:"log"`
	Metrics Metrics         `yaml:"metrics"`
}

// Layout is the reel grid geometry in world units
type Layout struct {
	Reels        int     `yaml:"reels"`
	Rows         int     `yaml:"rows"`
	SymbolHeight float64 `yaml:"symbol_height"`
	ReelWidth    float64 `yaml:"reel_width"`
}

// Timing holds reel motion and sequencing durations
type Timing struct {
	Tick           time.Duration `yaml:"tick"`
	SpinSpeed      float64       `yaml:"spin_speed"`
	SpinUp         time.Duration `yaml:"spin_up"`
	Settle         time.Duration `yaml:"settle"`
	SpinDwell      time.Duration `yaml:"spin_dwell"`
	StopStagger    time.Duration `yaml:"stop_stagger"`
	WinRevealPause time.Duration `yaml:"win_reveal_pause"`
	WinHoldPause   time.Duration `yaml:"win_hold_pause"`
}

// Symbol registers a reel symbol kind, Value is shown on the paytable only
type Symbol struct {
	ID    int             `yaml:"id"`
	Name  string          `yaml:"name"`
	Value decimal.Decimal `yaml:"value"`
}

// Clouds configures the background cloud field, scales are in tenths
type Clouds struct {
	Count    int `yaml:"count"`
	MinX     int `yaml:"min_x"`
	MaxX     int `yaml:"max_x"`
	MinY     int `yaml:"min_y"`
	MaxY     int `yaml:"max_y"`
	MinSpeed int `yaml:"min_speed"`
	MaxSpeed int `yaml:"max_speed"`
	MinScale int `yaml:"min_scale"`
	MaxScale int `yaml:"max_scale"`
}

// Audio toggles sound output
type Audio struct {
	Enabled      bool    `yaml:"enabled"`
	MasterVolume float64 `yaml:"master_volume"`
}

// Log configures the rotating file logger, the terminal is never written to
type Log struct {
	Enabled    bool   `yaml:"enabled"`
	Path       string `yaml:"path"`
	Level      string `yaml:"level"`
	MaxSizeMB  int    `yaml:"max_size_mb"`
	MaxBackups int    `yaml:"max_backups"`
	MaxAgeDays int    `yaml:"max_age_days"`
	Compress   bool   `yaml:"compress"`
}

// Metrics configures the optional debug HTTP server, empty Addr disables it
type Metrics struct {
	Addr string `yaml:"addr"`
}

var defaultSymbols = []string{"h2", "h3", "h4", "ace", "king", "queen", "jack", "ten", "nine"}

// Default returns the built-in configuration
func Default() Config {
	symbols := make([]Symbol, len(defaultSymbols))
	for i, name := range defaultSymbols {
		// Higher ranked symbols first, values descend
		symbols[i] = Symbol{ID: i, Name: name, Value: decimal.NewFromInt(int64(len(defaultSymbols) - i)).Mul(decimal.NewFromInt(5))}
	}

	return Config{
		Layout: Layout{
			Reels:        parameter.ReelCount,
			Rows:         parameter.SymbolsInView,
			SymbolHeight: parameter.SymbolHeight,
			ReelWidth:    parameter.ReelWidth,
		},
		Timing: Timing{
			Tick:           parameter.TickInterval,
			SpinSpeed:      parameter.SpinSpeed,
			SpinUp:         parameter.SpinUpDuration,
			Settle:         parameter.SettleDuration,
			SpinDwell:      parameter.SpinDwell,
			StopStagger:    parameter.StopStagger,
			WinRevealPause: parameter.WinRevealPause,
			WinHoldPause:   parameter.WinHoldPause,
		},
		Symbols: symbols,
		Clouds: Clouds{
			Count:    parameter.CloudCount,
			MinX:     parameter.CloudMinX,
			MaxX:     parameter.CloudMaxX,
			MinY:     parameter.CloudMinY,
			MaxY:     parameter.CloudMaxY,
			MinSpeed: parameter.CloudMinSpeed,
			MaxSpeed: parameter.CloudMaxSpeed,
			MinScale: parameter.CloudMinScale,
			MaxScale: parameter.CloudMaxScale,
		},
		Balance: decimal.RequireFromString(parameter.StartingBalance),
		Audio: Audio{
			Enabled:      true,
			MasterVolume: 0.5,
		},
		Log: Log{
			Path:       "logs/reelspin.log",
			Level:      "info",
			MaxSizeMB:  10,
			MaxBackups: 3,
			MaxAgeDays: 7,
		},
	}
}

// Load overlays the YAML file at path on the defaults, applies environment overrides and validates
// An empty path skips the file
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("read config: %w", err)
		}
		if err := cfg.decode(bytes.NewReader(data)); err != nil {
			return cfg, fmt.Errorf("parse config %s: %w", path, err)
		}
	}
	cfg.ApplyEnv(os.Getenv)
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Parse overlays YAML from r on the defaults and validates, environment is not consulted
func Parse(r io.Reader) (Config, error) {
	cfg := Default()
	if err := cfg.decode(r); err != nil {
		return cfg, err
	}
	return cfg, cfg.Validate()
}

func (c *Config) decode(r io.Reader) error {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(c); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

// ApplyEnv applies environment overrides using lookup, malformed values are ignored
func (c *Config) ApplyEnv(lookup func(string) string) {
	if enabled := lookup(EnvAudioEnabled); enabled != "" {
		if val, err := strconv.ParseBool(enabled); err == nil {
			c.Audio.Enabled = val
		}
	}

	// Volume is 0-100 in the environment, 0-1 in the config
	if volume := lookup(EnvMasterVolume); volume != "" {
		if val, err := strconv.Atoi(volume); err == nil {
			c.Audio.MasterVolume = min(max(float64(val)/100.0, 0), 1)
		}
	}
}

// Marshal renders the config as YAML
func (c Config) Marshal() ([]byte, error) {
	return yaml.Marshal(c)
}

// Validate reports the first inconsistency found, wrapped in ErrInvalidConfig
func (c Config) Validate() error {
	l := c.Layout
	switch {
	case l.Reels <= 0 || l.Rows <= 0:
		return fmt.Errorf("%w: layout needs positive reels and rows, got %dx%d", ErrInvalidConfig, l.Reels, l.Rows)
	case l.SymbolHeight <= 0 || l.ReelWidth <= 0:
		return fmt.Errorf("%w: symbol_height and reel_width must be positive", ErrInvalidConfig)
	}

	t := c.Timing
	switch {
	case t.Tick <= 0:
		return fmt.Errorf("%w: tick must be positive", ErrInvalidConfig)
	case t.SpinSpeed <= 0:
		return fmt.Errorf("%w: spin_speed must be positive", ErrInvalidConfig)
	case t.SpinUp < 0 || t.Settle < 0 || t.SpinDwell < 0 || t.StopStagger < 0 || t.WinRevealPause < 0 || t.WinHoldPause < 0:
		return fmt.Errorf("%w: durations must not be negative", ErrInvalidConfig)
	}

	if len(c.Symbols) == 0 {
		return fmt.Errorf("%w: no symbols", ErrInvalidConfig)
	}
	ids := make(map[int]bool, len(c.Symbols))
	names := make(map[string]bool, len(c.Symbols))
	for _, s := range c.Symbols {
		if s.Name == "" {
			return fmt.Errorf("%w: symbol %d has no name", ErrInvalidConfig, s.ID)
		}
		if ids[s.ID] || names[s.Name] {
			return fmt.Errorf("%w: duplicate symbol %d %q", ErrInvalidConfig, s.ID, s.Name)
		}
		if s.Value.IsNegative() {
			return fmt.Errorf("%w: symbol %q has negative value", ErrInvalidConfig, s.Name)
		}
		ids[s.ID] = true
		names[s.Name] = true
	}
	if total, demand := len(c.Symbols)*l.Reels*l.Rows, reel.MaxInFlight(l.Reels, l.Rows); total < demand {
		return fmt.Errorf("%w: %d symbols cannot stock %d reels: %w", ErrInvalidConfig, len(c.Symbols), l.Reels, reel.ErrPoolUndersized)
	}

	cl := c.Clouds
	switch {
	case cl.Count < 0:
		return fmt.Errorf("%w: cloud count must not be negative", ErrInvalidConfig)
	case cl.MinX > cl.MaxX || cl.MinY > cl.MaxY || cl.MinSpeed > cl.MaxSpeed || cl.MinScale > cl.MaxScale:
		return fmt.Errorf("%w: cloud minimums exceed maximums", ErrInvalidConfig)
	case cl.MinScale < 0:
		return fmt.Errorf("%w: cloud scale must not be negative", ErrInvalidConfig)
	}

	if c.Balance.IsNegative() {
		return fmt.Errorf("%w: negative balance", ErrInvalidConfig)
	}
	if c.Audio.MasterVolume < 0 || c.Audio.MasterVolume > 1 {
		return fmt.Errorf("%w: master_volume must be within 0-1", ErrInvalidConfig)
	}
	if _, err := zapcore.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("%w: log level: %w", ErrInvalidConfig, err)
	}
	if c.Log.Enabled && c.Log.Path == "" {
		return fmt.Errorf("%w: log path required when logging is enabled", ErrInvalidConfig)
	}
	return nil
}

// Kinds converts configured symbols to reel kinds in declaration order
func (c Config) Kinds() []reel.Kind {
	kinds := make([]reel.Kind, len(c.Symbols))
	for i, s := range c.Symbols {
		kinds[i] = reel.Kind{ID: s.ID, Name: s.Name, Value: s.Value}
	}
	return kinds
}

// ReelLayout returns the grid geometry for the reel set
func (c Config) ReelLayout() reel.Layout {
	return reel.Layout{
		Reels:        c.Layout.Reels,
		Rows:         c.Layout.Rows,
		SymbolHeight: c.Layout.SymbolHeight,
		ReelWidth:    c.Layout.ReelWidth,
	}
}

// ReelTiming merges configured durations into the reel defaults
func (c Config) ReelTiming() reel.Timing {
	t := reel.DefaultTiming()
	t.SpinSpeed = c.Timing.SpinSpeed
	t.SpinUp = c.Timing.SpinUp
	t.Settle = c.Timing.Settle
	t.StopStagger = c.Timing.StopStagger
	t.WinRevealPause = c.Timing.WinRevealPause
	t.WinHoldPause = c.Timing.WinHoldPause
	return t
}
