package app

import (
	"encoding/json"
	"flag"
	"io"
	"os"
	"time"

	"github.com/pkg/errors"

	"golife/pkg/grid"
)

// Config holds the parameters shared by the front ends. Values layer in
// order: defaults, then an optional JSON config file, then command-line
// flags, which win.
type Config struct {
	Height  int     `json:"height"`
	Width   int     `json:"width"`
	Scale   int     `json:"scale"`
	TPS     int     `json:"tps"`
	Seed    int64   `json:"seed"`
	Rule    string  `json:"rule"`
	Pattern string  `json:"pattern"`
	Density float64 `json:"density"`
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Height:  64,
		Width:   64,
		Scale:   10,
		TPS:     20,
		Rule:    "conway",
		Density: grid.DefaultDensity,
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Height, "height", c.Height, "board height in cells")
	fs.IntVar(&c.Width, "width", c.Width, "board width in cells")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "generations per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "random fill seed (0 uses the wall clock)")
	fs.StringVar(&c.Rule, "rule", c.Rule, "rule preset name")
	fs.StringVar(&c.Pattern, "pattern", c.Pattern, "pattern file to load")
	fs.Float64Var(&c.Density, "density", c.Density, "random fill density")
}

// LoadFile overlays values from a JSON config file onto the receiver.
func (c *Config) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return errors.Wrapf(err, "read config %q", path)
	}
	if err := json.Unmarshal(data, c); err != nil {
		return errors.Wrapf(err, "parse config %q", path)
	}
	return nil
}

// EffectiveSeed resolves the configured seed, substituting the wall clock
// when it is zero.
func (c *Config) EffectiveSeed() int64 {
	if c.Seed != 0 {
		return c.Seed
	}
	return time.Now().UnixNano()
}

// Load resolves a front end's configuration from its arguments. The
// -config flag names an optional JSON file; explicit flags override file
// values, which override defaults. extra, when non-nil, binds additional
// front-end specific flags.
func Load(name string, args []string, extra func(fs *flag.FlagSet)) (*Config, error) {
	path, err := configPath(name, args, extra)
	if err != nil {
		return nil, err
	}

	cfg := NewConfig()
	if path != "" {
		if err := cfg.LoadFile(path); err != nil {
			return nil, err
		}
	}

	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.String("config", path, "JSON config file")
	cfg.Bind(fs)
	if extra != nil {
		extra(fs)
	}
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	return cfg, nil
}

// configPath runs a silent first parse just to discover the -config flag.
func configPath(name string, args []string, extra func(fs *flag.FlagSet)) (string, error) {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	path := fs.String("config", "", "JSON config file")
	NewConfig().Bind(fs)
	if extra != nil {
		extra(fs)
	}
	if err := fs.Parse(args); err != nil {
		// Let the second parse report help and usage errors visibly.
		if errors.Is(err, flag.ErrHelp) {
			return "", nil
		}
		return "", err
	}
	return *path, nil
}
