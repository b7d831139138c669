/*
 * Copyright (c) 2020 Siemens AG
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy of
 * this software and associated documentation files (the "Software"), to deal in
 * the Software without restriction, including without limitation the rights to
 * use, copy, modify, merge, publish, distribute, sublicense, and/or sell copies of
 * the Software, and to permit persons to whom the Software is furnished to do so,
 * subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY, FITNESS
 * FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE AUTHORS OR
 * COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER LIABILITY, WHETHER
 * IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM, OUT OF OR IN
 * CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE SOFTWARE.
 *
 * Author(s): Jonas Plum
 */

// Package config loads the wxtimeline settings from flags, environment
// variables and an optional config file.
package config

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/forensicanalysis/wxtimeline"
	"github.com/forensicanalysis/wxtimeline/export"
	"github.com/forensicanalysis/wxtimeline/guidmap"
)

// EnvPrefix is the prefix of environment variables, e.g. WXT_DT.
const EnvPrefix = "WXT"

// Config holds the settings of a parse run.
type Config struct {
	// DateTimeFormat is a Go time layout.
	DateTimeFormat string            `mapstructure:"dt"`
	OnRowError     string            `mapstructure:"on_row_error"`
	GUIDs          map[string]string `mapstructure:"guids"`
	Debug          bool              `mapstructure:"debug"`
	Trace          bool              `mapstructure:"trace"`
	JSON           bool              `mapstructure:"json"`
}

// flag names per config key
var flagNames = map[string]string{ // nolint:gochecknoglobals
	"dt":           "dt",
	"on_row_error": "on-row-error",
	"debug":        "debug",
	"trace":        "trace",
	"json":         "json",
}

// Load reads the configuration. Explicitly set flags take precedence over
// environment variables, which take precedence over the config file. If file
// is empty, a wxtimeline.yaml in the working directory is used when present.
func Load(flags *pflag.FlagSet, file string) (*Config, error) {
	v := viper.New()

	v.SetDefault("dt", export.DefaultLayout)
	v.SetDefault("on_row_error", string(wxtimeline.AbortTable))
	v.SetDefault("guids", map[string]string{})
	v.SetDefault("debug", false)
	v.SetDefault("trace", false)
	v.SetDefault("json", false)

	if file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.Wrapf(err, "could not read config %s", file)
		}
	} else {
		v.SetConfigName("wxtimeline")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
				return nil, errors.Wrap(err, "could not read config")
			}
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if flags != nil {
		for key, name := range flagNames {
			if flag := flags.Lookup(name); flag != nil {
				if err := v.BindPFlag(key, flag); err != nil {
					return nil, err
				}
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrap(err, "could not decode config")
	}

	if cfg.DateTimeFormat == "" {
		return nil, errors.New("config: dt must not be empty")
	}
	if _, err := wxtimeline.ParseRowErrorPolicy(cfg.OnRowError); err != nil {
		return nil, errors.Wrap(err, "config: on_row_error")
	}
	return &cfg, nil
}

// RowErrorPolicy returns the parsed on_row_error setting.
func (c *Config) RowErrorPolicy() wxtimeline.RowErrorPolicy {
	policy, err := wxtimeline.ParseRowErrorPolicy(c.OnRowError)
	if err != nil {
		return wxtimeline.AbortTable
	}
	return policy
}

// Names builds the GUID table including the configured overrides.
func (c *Config) Names() (*guidmap.Table, error) {
	return guidmap.New(c.GUIDs)
}

// Format returns the configured output format.
func (c *Config) Format() export.Format {
	if c.JSON {
		return export.JSONLines
	}
	return export.CSV
}
