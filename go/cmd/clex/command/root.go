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

package command

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/eliasdeallmeida/lexical-analyzer/go/config"
	"github.com/eliasdeallmeida/lexical-analyzer/go/logutil"
	"github.com/eliasdeallmeida/lexical-analyzer/go/report"
)

// ClexCommand holds the configuration shared by all clex subcommands.
type ClexCommand struct {
	cfg *config.Config
	lg  *logutil.Logger

	// Flag storage; resolved values live in settings after the
	// persistent pre-run.
	format      report.Format
	concurrency int
	summary     bool
	failOnError bool

	// settings is the flag/env/config-file resolution of the scan options.
	settings config.Settings
}

// GetRootCommand creates and returns the root command for clex with all
// subcommands attached.
func GetRootCommand() (*cobra.Command, *ClexCommand) {
	pc := &ClexCommand{
		cfg:    config.NewConfig(),
		lg:     logutil.NewLogger(),
		format: report.FormatGrid,
	}

	root := &cobra.Command{
		Use:   "clex",
		Short: "Lexical analyzer for a C-like language",
		Long: `clex scans C-like source files into a classified token stream.

Each token carries its line and column, identifiers are collected into a
symbol table with first-occurrence ids and occurrence counts, and lexical
errors become tokens of their own so one pass reports every problem in the
input. Reports render as terminal tables, JSON, or YAML.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return pc.setup()
		},
	}

	root.PersistentFlags().Var(&pc.format, "format",
		fmt.Sprintf("Report format. (Options: %s)", strings.Join(report.FormatNames(), ", ")))
	root.PersistentFlags().IntVar(&pc.concurrency, "concurrency", 0,
		"Number of inputs scanned in parallel (0 means the CPU count).")
	root.PersistentFlags().BoolVar(&pc.summary, "summary", false,
		"Append a per-input summary after the reports.")
	root.PersistentFlags().BoolVar(&pc.failOnError, "fail-on-error", false,
		"Exit non-zero when any input holds lexical errors.")
	pc.cfg.RegisterFlags(root.PersistentFlags())
	pc.lg.RegisterFlags(root.PersistentFlags())

	// Add all subcommands
	AddScanCommand(root, pc)
	AddWatchCommand(root, pc)
	AddKeywordsCommand(root, pc)
	AddVersionCommand(root, pc)

	return root, pc
}

// setup loads configuration and initializes logging. It runs before every
// subcommand.
func (pc *ClexCommand) setup() error {
	if err := pc.cfg.LoadConfig(); err != nil {
		return err
	}
	if err := pc.cfg.Unmarshal(&pc.settings); err != nil {
		return err
	}

	pc.lg.Configure(pc.settings.LogLevel, pc.settings.LogFormat, pc.settings.LogOutput)
	pc.lg.SetupLogging()

	if file := pc.cfg.ConfigFileUsed(); file != "" {
		pc.GetLogger().Debug("loaded config file", "path", file)
	}
	return nil
}

// GetLogger returns the configured logger instance.
func (pc *ClexCommand) GetLogger() *slog.Logger {
	return pc.lg.GetLogger()
}

// Settings returns the resolved scan settings. Only valid after setup has
// run.
func (pc *ClexCommand) Settings() config.Settings {
	return pc.settings
}
