// Copyright 2026 The Lexical Analyzer Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package config loads clex settings from config files, environment
// variables, and flags, with viper's usual precedence: explicit flags win
// over environment variables, which win over config file values, which win
// over defaults.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/mitchellh/mapstructure"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/eliasdeallmeida/lexical-analyzer/go/report"
)

// EnvPrefix is the prefix for environment variable overrides, so
// CLEX_LOG_LEVEL maps to the log-level key.
const EnvPrefix = "CLEX"

// Settings are the tunable defaults a config file (or environment) may set
// for scan commands. Flags still override all of them.
type Settings struct {
	Format      report.Format `mapstructure:"format"`
	Concurrency int           `mapstructure:"concurrency"`
	Summary     bool          `mapstructure:"summary"`
	FailOnError bool          `mapstructure:"fail-on-error"`
	LogLevel    string        `mapstructure:"log-level"`
	LogFormat   string        `mapstructure:"log-format"`
	LogOutput   string        `mapstructure:"log-output"`
}

// Config drives config file discovery and loading.
type Config struct {
	configPath       []string
	configName       string
	configFile       string
	notFoundHandling ConfigFileNotFoundHandling

	v  *viper.Viper
	fs *pflag.FlagSet
}

// NewConfig returns a Config that searches the working directory for a
// clex.{yaml,json,...} file and silently proceeds when none exists.
func NewConfig() *Config {
	v := viper.New()
	v.SetDefault("format", "grid")
	v.SetDefault("concurrency", 0)
	v.SetDefault("summary", false)
	v.SetDefault("fail-on-error", false)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	v.AutomaticEnv()

	return &Config{
		configPath:       []string{"."},
		configName:       "clex",
		notFoundHandling: IgnoreConfigFileNotFound,
		v:                v,
	}
}

// RegisterFlags installs the flags that control config-loading behavior.
// Every flag already registered on fs (and any registered later, before
// LoadConfig) participates in viper's precedence through BindPFlags.
func (c *Config) RegisterFlags(fs *pflag.FlagSet) {
	fs.StringSliceVar(&c.configPath, "config-path", c.configPath, "Paths to search for config files in.")
	fs.StringVar(&c.configName, "config-name", c.configName, "Name of the config file (without extension) to search for.")
	fs.StringVar(&c.configFile, "config-file", c.configFile, "Full path of the config file (with extension) to use. If set, --config-path and --config-name are ignored.")
	fs.Var(&c.notFoundHandling, "config-file-not-found-handling", fmt.Sprintf("Behavior when a config file is not found. (Options: %s)", strings.Join(handlingNames, ", ")))

	c.fs = fs
}

// LoadConfig attempts to find, and then load, a config file for the
// process to use.
//
// Config searching follows the behavior used by viper, namely:
//   - --config-file (full path, including extension) if set will be used to
//     the exclusion of all other flags.
//   - otherwise --config-name is searched for in each --config-path, with
//     the extension inferred from the file found.
//
// The --config-file-not-found-handling flag controls how to treat the
// situation where no config file exists in any of the provided paths (users
// may want to exit immediately if a config file that should exist doesn't,
// or may wish to operate with flags and environment variables alone).
func (c *Config) LoadConfig() error {
	if c.fs != nil {
		if err := c.v.BindPFlags(c.fs); err != nil {
			return fmt.Errorf("failed to bind flags: %w", err)
		}
	}

	var err error
	switch file := c.configFile; file {
	case "":
		if name := c.configName; name != "" {
			c.v.SetConfigName(name)

			for _, path := range c.configPath {
				c.v.AddConfigPath(path)
			}

			err = c.v.ReadInConfig()
		}
	default:
		c.v.SetConfigFile(file)
		err = c.v.ReadInConfig()
	}

	if err != nil && isConfigFileNotFoundError(err) {
		msg := "failed to read in config %s: %s"
		switch c.notFoundHandling {
		case IgnoreConfigFileNotFound:
			return nil
		case WarnOnConfigFileNotFound:
			slog.Warn(fmt.Sprintf(msg, c.v.ConfigFileUsed(), err.Error()))
			return nil
		case ErrorOnConfigFileNotFound:
			slog.Error(fmt.Sprintf(msg, c.v.ConfigFileUsed(), err.Error()))
		case ExitOnConfigFileNotFound:
			slog.Error(fmt.Sprintf(msg, c.v.ConfigFileUsed(), err.Error()))
			os.Exit(1)
		}
	}

	return err
}

// Unmarshal decodes the resolved configuration into settings. Format fields
// decode from their string names through the report decode hook.
func (c *Config) Unmarshal(settings *Settings) error {
	err := c.v.Unmarshal(settings, viper.DecodeHook(mapstructure.ComposeDecodeHookFunc(
		report.DecodeFormat,
	)))
	if err != nil {
		return fmt.Errorf("failed to unmarshal settings: %w", err)
	}
	return nil
}

// Viper exposes the underlying viper instance for direct key access.
func (c *Config) Viper() *viper.Viper {
	return c.v
}

// ConfigFileUsed reports which config file was loaded, if any.
func (c *Config) ConfigFileUsed() string {
	return c.v.ConfigFileUsed()
}

// isConfigFileNotFoundError checks if the error is caused because the file
// wasn't found.
func isConfigFileNotFoundError(err error) bool {
	if errors.As(err, &viper.ConfigFileNotFoundError{}) {
		return true
	}
	return errors.Is(err, os.ErrNotExist)
}
