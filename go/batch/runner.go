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

// Package batch scans many source inputs concurrently while keeping
// results in input order.
package batch

import (
	"context"
	"log/slog"
	"runtime"
	"sync"

	"github.com/eliasdeallmeida/lexical-analyzer/go/lexer"
	"github.com/eliasdeallmeida/lexical-analyzer/go/sourceio"
)

// Result is the outcome for one input path. Exactly one of Scan and ReadErr
// is set: ReadErr reports inputs that could not be loaded, Scan holds the
// token stream for inputs that could. Lexical errors are not ReadErrs; they
// live inside Scan.
type Result struct {
	Path    string
	Scan    *lexer.Result
	ReadErr error
}

// Runner scans inputs with a bounded worker pool.
type Runner struct {
	// Loader reads the inputs.
	Loader *sourceio.Loader
	// Concurrency is the worker count. Values below 1 fall back to
	// runtime.NumCPU at Run time.
	Concurrency int
	// Logger receives per-input progress and failures.
	Logger *slog.Logger
}

// NewRunner returns a Runner with the default concurrency.
func NewRunner(loader *sourceio.Loader, logger *slog.Logger) *Runner {
	if logger == nil {
		logger = slog.Default()
	}
	return &Runner{
		Loader:      loader,
		Concurrency: runtime.NumCPU(),
		Logger:      logger,
	}
}

// Run scans every path and returns one Result per input, in input order.
// Scanning is independent per input; a failed read never stops the batch.
// When ctx is canceled, dispatch stops, in-flight work finishes, and
// unprocessed entries carry the context error as their ReadErr.
func (r *Runner) Run(ctx context.Context, paths []string) ([]Result, error) {
	if len(paths) == 0 {
		return nil, nil
	}

	workers := r.Concurrency
	if workers < 1 {
		workers = runtime.NumCPU()
	}
	if workers > len(paths) {
		workers = len(paths)
	}

	results := make([]Result, len(paths))
	for i, path := range paths {
		results[i] = Result{Path: path}
	}

	jobs := make(chan int)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range jobs {
				r.scanOne(ctx, &results[idx])
			}
		}()
	}

dispatch:
	for i := range paths {
		select {
		case jobs <- i:
		case <-ctx.Done():
			break dispatch
		}
	}
	close(jobs)
	wg.Wait()

	if err := ctx.Err(); err != nil {
		for i := range results {
			if results[i].Scan == nil && results[i].ReadErr == nil {
				results[i].ReadErr = err
			}
		}
		return results, err
	}
	return results, nil
}

func (r *Runner) scanOne(ctx context.Context, result *Result) {
	if err := ctx.Err(); err != nil {
		result.ReadErr = err
		return
	}

	data, err := r.Loader.Load(result.Path)
	if err != nil {
		r.Logger.Warn("skipping unreadable input", "path", result.Path, "error", err)
		result.ReadErr = err
		return
	}

	result.Scan = lexer.Scan(data)
	r.Logger.Debug("scanned input",
		"path", result.Path,
		"tokens", len(result.Scan.Tokens),
		"symbols", result.Scan.Symbols.Len(),
		"errors", len(result.Scan.Errors),
	)
}

// CountReadFailures reports how many inputs could not be loaded.
func CountReadFailures(results []Result) int {
	n := 0
	for _, res := range results {
		if res.ReadErr != nil {
			n++
		}
	}
	return n
}

// CountLexicalErrors reports the total recovered lexical errors across all
// scanned inputs.
func CountLexicalErrors(results []Result) int {
	n := 0
	for _, res := range results {
		if res.Scan != nil {
			n += len(res.Scan.Errors)
		}
	}
	return n
}
