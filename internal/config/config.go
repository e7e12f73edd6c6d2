// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package config loads the zipseq command configuration.
package config

import (
	"errors"
	"fmt"
	"os"
	"slices"

	"github.com/rs/zerolog"
	"github.com/samber/lo"
	"gopkg.in/yaml.v3"
)

// DefaultFilename is read when no config file is named. It may be absent.
const DefaultFilename = "zipseq.yaml"

const (
	EnvLogLevel  = "ZIPSEQ_LOG_LEVEL"
	EnvLogFormat = "ZIPSEQ_LOG_FORMAT"
)

type Config struct {
	Log    Log    `yaml:"log"`
	Output Output `yaml:"output"`
}

func (c *Config) ToDict() *zerolog.Event {
	return zerolog.Dict().
		Dict("log", c.Log.ToDict()).
		Dict("output", c.Output.ToDict())
}

func (c *Config) setDefaults() {
	c.Log.setDefaults()
	c.Output.setDefaults()
}

func (c *Config) validate() error {
	if err := c.Log.validate(); nil != err {
		return fmt.Errorf("log config validation failed: %v", err)
	}

	if err := c.Output.validate(); nil != err {
		return fmt.Errorf("output config validation failed: %v", err)
	}

	return nil
}

type Log struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

func (c *Log) ToDict() *zerolog.Event {
	return zerolog.Dict().
		Str("level", c.Level).
		Str("format", c.Format)
}

func (c *Log) setDefaults() {
	if c.Level == "" {
		c.Level = "info"
	}

	if c.Format == "" {
		c.Format = "auto"
	}
}

func (c *Log) validate() error {
	if !slices.Contains([]string{"trace", "debug", "info", "warn", "error", "fatal", "panic"}, c.Level) {
		return fmt.Errorf(
			"level must be one of: trace, debug, info, warn, error, fatal, panic, got: %s",
			c.Level,
		)
	}

	if !slices.Contains([]string{"auto", "json", "pretty"}, c.Format) {
		return fmt.Errorf("format must be 'auto', 'json' or 'pretty', got: %s", c.Format)
	}

	return nil
}

type Output struct {
	Format    string `yaml:"format"`
	Delimiter string `yaml:"delimiter"`
}

func (c *Output) ToDict() *zerolog.Event {
	return zerolog.Dict().
		Str("format", c.Format).
		Str("delimiter", c.Delimiter)
}

func (c *Output) setDefaults() {
	if c.Format == "" {
		c.Format = "plain"
	}

	if c.Delimiter == "" {
		c.Delimiter = "\t"
	}
}

func (c *Output) validate() error {
	if !slices.Contains([]string{"plain", "table"}, c.Format) {
		return fmt.Errorf("format must be 'plain' or 'table', got: %s", c.Format)
	}

	return nil
}

// Load reads filename, or DefaultFilename when filename is empty, then
// applies environment overrides and defaults. A missing default file is not
// an error.
func Load(filename string) (*Config, error) {
	name := lo.Ternary(len(filename) > 0, filename, DefaultFilename)

	var conf Config
	data, err := os.ReadFile(name)
	switch {
	case nil == err:
		if err := yaml.Unmarshal(data, &conf); nil != err {
			return nil, fmt.Errorf("failed to parse config file %s: %v", name, err)
		}
	case errors.Is(err, os.ErrNotExist) && len(filename) == 0:
	default:
		return nil, fmt.Errorf("failed to read config file %s: %v", name, err)
	}

	if v := os.Getenv(EnvLogLevel); v != "" {
		conf.Log.Level = v
	}
	if v := os.Getenv(EnvLogFormat); v != "" {
		conf.Log.Format = v
	}
	conf.setDefaults()

	if err := conf.validate(); nil != err {
		return nil, fmt.Errorf("configuration validation failed: %v", err)
	}

	return &conf, nil
}
