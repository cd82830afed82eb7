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
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/eliasdeallmeida/lexical-analyzer/go/lexer"
	"github.com/eliasdeallmeida/lexical-analyzer/go/report"
	"github.com/eliasdeallmeida/lexical-analyzer/go/sourceio"
)

// ClexWatchCmd holds the watch command configuration
type ClexWatchCmd struct {
	clexCmd  *ClexCommand
	interval time.Duration
}

// AddWatchCommand adds the watch subcommand to the root command
func AddWatchCommand(root *cobra.Command, pc *ClexCommand) {
	watchCmd := &ClexWatchCmd{
		clexCmd: pc,
	}
	root.AddCommand(watchCmd.createCommand())
}

func (s *ClexWatchCmd) createCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watch <file>...",
		Short: "Rescan source files whenever they change",
		Long: `Watch source files and reprint their reports on every change.

Each file is scanned once at startup and again after it changes on disk.
Changes arriving in a burst (editor save hooks, formatters) are coalesced
by the debounce interval. Watching runs until interrupted.

Examples:
  # Rescan on every save
  clex watch main.c

  # Watch several files with a JSON report stream
  clex watch --format json src/a.c src/b.c

  # Calmer rescans while a formatter churns the file
  clex watch --interval 2s main.c`,
		Args: cobra.MinimumNArgs(1),
		RunE: s.runWatch,
	}
	cmd.Flags().DurationVar(&s.interval, "interval", 500*time.Millisecond,
		"Debounce interval between a change and its rescan.")
	return cmd
}

func (s *ClexWatchCmd) runWatch(cmd *cobra.Command, args []string) error {
	for _, path := range args {
		if path == sourceio.StdinPath {
			return fmt.Errorf("cannot watch standard input")
		}
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer watcher.Close()

	for _, path := range args {
		if err := watcher.Add(path); err != nil {
			return fmt.Errorf("failed to watch %s: %w", path, err)
		}
	}

	loader := sourceio.NewLoader()
	logger := s.clexCmd.GetLogger()
	format := s.clexCmd.Settings().Format
	out := cmd.OutOrStdout()

	for _, path := range args {
		if err := s.scanAndRender(out, loader, path, format); err != nil {
			logger.Warn("initial scan failed", "path", path, "error", err)
		}
	}

	logger.Info("watching for changes", "inputs", len(args), "interval", s.interval)

	pending := make(map[string]struct{})
	var timer *time.Timer
	var timerC <-chan time.Time

	for {
		select {
		case <-ctx.Done():
			return nil

		case ev, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create) != 0 {
				pending[ev.Name] = struct{}{}
			}
			if ev.Op&(fsnotify.Remove|fsnotify.Rename) != 0 {
				// Editors often save by replacing the file, which drops
				// the inotify watch; re-arm it and rescan.
				pending[ev.Name] = struct{}{}
				if err := watcher.Add(ev.Name); err != nil {
					logger.Warn("lost watch on input", "path", ev.Name, "error", err)
				}
			}
			if len(pending) > 0 {
				if timer != nil {
					timer.Stop()
				}
				timer = time.NewTimer(s.interval)
				timerC = timer.C
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warn("watcher error", "error", err)

		case <-timerC:
			timer = nil
			timerC = nil
			for path := range pending {
				delete(pending, path)
				if format == report.FormatGrid {
					fmt.Fprintln(out)
				}
				if err := s.scanAndRender(out, loader, path, format); err != nil {
					logger.Warn("rescan failed", "path", path, "error", err)
				} else {
					logger.Debug("rescanned input", "path", path)
				}
			}
		}
	}
}

func (s *ClexWatchCmd) scanAndRender(w io.Writer, loader *sourceio.Loader, path string, format report.Format) error {
	data, err := loader.Load(path)
	if err != nil {
		return err
	}
	doc := report.NewDocument(sourceio.DisplayName(path), lexer.Scan(data))
	return report.Render(w, doc, format)
}
