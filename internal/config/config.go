package config

import (
	"flag"
	"fmt"
	"io"
	"strings"
)

// Environment overrides, applied when the matching flag is not given.
const (
	EnvTheme = "PACKING_THEME"
	EnvSeed  = "PACKING_SEED"
	EnvLog   = "PACKING_LOG"
)

// Config carries the root flags (they apply to every subcommand).
type Config struct {
	Theme    string // classic | neon | mono
	Seed     string // none | demo
	SeedFile string // JSON seed, read once at startup
	Group    bool   // ls output grouped by unpacked/packed
	LogPath  string // empty disables logging
	LogLevel string
	Dump     bool // print the final list as JSON on exit
	Color    bool // force color even when stdout is not a TTY
	NoColor  bool
}

// Load parses root flags from args and returns the config plus the
// remaining (subcommand) args. getenv is usually os.Getenv.
func Load(args []string, getenv func(string) string, errOut io.Writer) (Config, []string, error) {
	var cfg Config
	fs := flag.NewFlagSet("packing", flag.ContinueOnError)
	fs.SetOutput(errOut)
	fs.StringVar(&cfg.Theme, "theme", "classic", "color theme: classic, neon or mono")
	fs.StringVar(&cfg.Seed, "seed", "none", "starting list: none or demo")
	fs.StringVar(&cfg.SeedFile, "seed-file", "", "read the starting list from a JSON file")
	fs.BoolVar(&cfg.Group, "group", false, "group ls output by unpacked/packed")
	fs.StringVar(&cfg.LogPath, "log", "", "write logs to this file")
	fs.StringVar(&cfg.LogLevel, "log-level", "info", "log level: debug, info, warn or error")
	fs.BoolVar(&cfg.Dump, "dump", false, "print the final list as JSON on exit")
	fs.BoolVar(&cfg.Color, "color", false, "force colored output")
	fs.BoolVar(&cfg.NoColor, "no-color", false, "disable colored output")
	if err := fs.Parse(args); err != nil {
		return Config{}, nil, err
	}

	set := map[string]bool{}
	fs.Visit(func(f *flag.Flag) { set[f.Name] = true })
	override := func(name, env string, dst *string) {
		if set[name] {
			return
		}
		if v := strings.TrimSpace(getenv(env)); v != "" {
			*dst = v
		}
	}
	override("theme", EnvTheme, &cfg.Theme)
	override("seed", EnvSeed, &cfg.Seed)
	override("log", EnvLog, &cfg.LogPath)

	if err := cfg.validate(); err != nil {
		return Config{}, nil, err
	}
	return cfg, fs.Args(), nil
}

func (c *Config) validate() error {
	c.Theme = strings.ToLower(c.Theme)
	switch c.Theme {
	case "classic", "neon", "mono":
	default:
		return fmt.Errorf("unknown theme %q", c.Theme)
	}
	c.Seed = strings.ToLower(c.Seed)
	switch c.Seed {
	case "none", "demo":
	default:
		return fmt.Errorf("unknown seed %q", c.Seed)
	}
	if c.SeedFile != "" && c.Seed == "demo" {
		return fmt.Errorf("-seed demo and -seed-file are mutually exclusive")
	}
	if c.Color && c.NoColor {
		return fmt.Errorf("-color and -no-color are mutually exclusive")
	}
	return nil
}
