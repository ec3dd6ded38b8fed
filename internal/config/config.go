// Copyright (c) Peter Newcomb. All rights reserved.
// Licensed under the MIT License.

// Package config loads the settings shared by the command line tool and the
// HTTP API. Settings come from built-in defaults, an optional YAML file, and
// CPUSCHED_* environment variables, in increasing order of precedence. Command
// line flags are applied on top by the caller.
//
// A file looks like:
//
//	scheduler:
//	  round_robin:
//	    time_quantum: 4
//	  coalesce_segments: true
//	log:
//	  level: debug
//	  format: json
//	server:
//	  addr: ":9095"
package config

import (
	"fmt"
	"strings"

	"github.com/petenewcomb/cpusched-go"
	"github.com/spf13/viper"
)

type constError string

func (e constError) Error() string {
	return string(e)
}

// ErrInvalidConfig is wrapped by every error that reports a setting with an
// unusable value.
const ErrInvalidConfig = constError("invalid configuration")

const (
	KeyQuantum   = "scheduler.round_robin.time_quantum"
	KeyCoalesce  = "scheduler.coalesce_segments"
	KeyLogLevel  = "log.level"
	KeyLogFormat = "log.format"
	KeyAddr      = "server.addr"

	envPrefix = "CPUSCHED"
)

// Config holds the resolved settings.
type Config struct {
	Quantum   int
	Coalesce  bool
	LogLevel  string
	LogFormat string
	Addr      string
}

// Default returns the settings used when nothing overrides them.
func Default() Config {
	return Config{
		Quantum:   cpusched.DefaultQuantum,
		LogLevel:  "info",
		LogFormat: "text",
		Addr:      ":9095",
	}
}

// Options returns the scheduling options implied by the settings.
func (c Config) Options() cpusched.Options {
	return cpusched.Options{Quantum: c.Quantum, Coalesce: c.Coalesce}
}

// Validate reports settings that no scheduler could use.
func (c Config) Validate() error {
	if c.Quantum < 1 {
		return fmt.Errorf("%w: %s must be at least 1, got %d", ErrInvalidConfig, KeyQuantum, c.Quantum)
	}
	switch strings.ToLower(c.LogFormat) {
	case "text", "json":
	default:
		return fmt.Errorf("%w: %s must be text or json, got %q", ErrInvalidConfig, KeyLogFormat, c.LogFormat)
	}
	return nil
}

// Load resolves the settings. An empty path skips the file.
func Load(path string) (Config, error) {
	v := viper.New()
	def := Default()
	v.SetDefault(KeyQuantum, def.Quantum)
	v.SetDefault(KeyCoalesce, def.Coalesce)
	v.SetDefault(KeyLogLevel, def.LogLevel)
	v.SetDefault(KeyLogFormat, def.LogFormat)
	v.SetDefault(KeyAddr, def.Addr)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("reading config %s: %w", path, err)
		}
	}

	c := Config{
		Quantum:   v.GetInt(KeyQuantum),
		Coalesce:  v.GetBool(KeyCoalesce),
		LogLevel:  v.GetString(KeyLogLevel),
		LogFormat: v.GetString(KeyLogFormat),
		Addr:      v.GetString(KeyAddr),
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}
