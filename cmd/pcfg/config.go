package main

import (
	"fmt"
	"os"
	"runtime"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/pcfg/grammar"
)

// Config carries the settings shared across verbs. Sources, in rising
// precedence: built-in defaults, the YAML file named by PCFG_CONFIG, PCFG_*
// environment variables, and finally command-line flags (flag defaults are
// seeded from this struct, so a flag set on the command line always wins).
type Config struct {
	Grammar   string  // default grammar file path
	Start     string  // start symbol override, empty keeps the grammar's own
	Workers   int     // concurrent sentences in parse
	Tolerance float64 // relative tolerance for check --strict
}

// fileConfig is the YAML shape of a config file. Zero fields leave the
// corresponding setting untouched.
type fileConfig struct {
	Grammar   string  `yaml:"grammar"`
	Start     string  `yaml:"start"`
	Workers   int     `yaml:"workers"`
	Tolerance float64 `yaml:"tolerance"`
}

// loadConfig resolves defaults, YAML, and environment in that order.
// A missing or malformed YAML file named by path is a hard error: a config
// the user pointed at explicitly must not be half-applied.
func loadConfig(path string) (Config, error) {
	cfg := Config{
		Workers:   runtime.GOMAXPROCS(0),
		Tolerance: grammar.DefaultTolerance,
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("pcfg: config: %w", err)
		}
		var fc fileConfig
		if err := yaml.Unmarshal(data, &fc); err != nil {
			return Config{}, fmt.Errorf("pcfg: config %s: %w", path, err)
		}
		if fc.Grammar != "" {
			cfg.Grammar = fc.Grammar
		}
		if fc.Start != "" {
			cfg.Start = fc.Start
		}
		if fc.Workers != 0 {
			cfg.Workers = fc.Workers
		}
		if fc.Tolerance != 0 {
			cfg.Tolerance = fc.Tolerance
		}
	}

	cfg.Grammar = getenv("PCFG_GRAMMAR", cfg.Grammar)
	cfg.Start = getenv("PCFG_START", cfg.Start)
	cfg.Workers = getenvInt("PCFG_WORKERS", cfg.Workers)
	cfg.Tolerance = getenvFloat("PCFG_TOLERANCE", cfg.Tolerance)
	return cfg, nil
}

func getenv(k, fallback string) string {
	v := os.Getenv(k)
	if v == "" {
		return fallback
	}
	return v
}

func getenvInt(k string, fallback int) int {
	v := os.Getenv(k)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}

func getenvFloat(k string, fallback float64) float64 {
	v := os.Getenv(k)
	if v == "" {
		return fallback
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return fallback
	}
	return f
}
