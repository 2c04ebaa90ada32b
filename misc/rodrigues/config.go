package main

import (
	"errors"
	"flag"
	"fmt"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/shabbyrobe/go-hyperdual/rodrigues"
)

// Config holds the table command configuration. Environment variables supply
// the defaults; flags override them.
type Config struct {
	Points    int      `env:"HYPERDUAL_POINTS"           envDefault:"101"`
	Step      float64  `env:"HYPERDUAL_STEP"             envDefault:"0.01"`
	H1        float64  `env:"HYPERDUAL_H1"               envDefault:"1e-14"`
	H2        float64  `env:"HYPERDUAL_H2"               envDefault:"1e-14"`
	Modes     []string `env:"HYPERDUAL_MODES"            envDefault:"direct,hyperdual,series" envSeparator:","`
	Precision int      `env:"HYPERDUAL_PRECISION"        envDefault:"64"`
	Threshold float64  `env:"HYPERDUAL_SERIES_THRESHOLD" envDefault:"0.25"`
	FDStep    float64  `env:"HYPERDUAL_FD_STEP"`
	Dump      bool     `env:"HYPERDUAL_DUMP"`
	Verbose   bool     `env:"HYPERDUAL_VERBOSE"`
}

type modeList struct{ modes *[]string }

func (m modeList) String() string {
	if m.modes == nil {
		return ""
	}
	return strings.Join(*m.modes, ",")
}

func (m modeList) Set(v string) error {
	var out []string
	for _, s := range strings.Split(v, ",") {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	*m.modes = out
	return nil
}

// ParseConfig reads the environment, then parses args into fs.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}

	fs.IntVar(&cfg.Points, "points", cfg.Points, "number of evaluation points, centred on zero")
	fs.Float64Var(&cfg.Step, "step", cfg.Step, "distance between evaluation points")
	fs.Float64Var(&cfg.H1, "h1", cfg.H1, "hyper-dual seed step along eps1")
	fs.Float64Var(&cfg.H2, "h2", cfg.H2, "hyper-dual seed step along eps2")
	fs.Var(modeList{&cfg.Modes}, "modes", "comma separated modes: "+modeNames())
	fs.IntVar(&cfg.Precision, "precision", cfg.Precision, "floating point width, 32 or 64")
	fs.Float64Var(&cfg.Threshold, "threshold", cfg.Threshold, "|theta| at or below which the series expansion is used")
	fs.Float64Var(&cfg.FDStep, "fd-step", cfg.FDStep, "finite difference step (0 for the formula default)")
	fs.BoolVar(&cfg.Dump, "dump", cfg.Dump, "dump the config and raw hyper-dual evaluations to stderr")
	fs.BoolVar(&cfg.Verbose, "verbose", cfg.Verbose, "log progress to stderr")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (cfg Config) validate() error {
	if cfg.Points <= 0 {
		return fmt.Errorf("points must be > 0, found %d", cfg.Points)
	}
	if cfg.Precision != 32 && cfg.Precision != 64 {
		return fmt.Errorf("precision must be 32 or 64, found %d", cfg.Precision)
	}
	if len(cfg.Modes) == 0 {
		return errors.New("at least one mode is required")
	}
	for _, m := range cfg.Modes {
		if _, err := rodrigues.ParseMode(m); err != nil {
			return err
		}
	}
	return nil
}

func modeNames() string {
	names := make([]string, len(rodrigues.Modes))
	for i, m := range rodrigues.Modes {
		names[i] = string(m)
	}
	return strings.Join(names, ", ")
}
