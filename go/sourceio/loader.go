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

// Package sourceio reads source files for scanning. Reads go through an
// afero filesystem so commands and tests can swap in an in-memory fs.
package sourceio

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/afero"
)

// StdinPath is the pseudo-path that reads from standard input.
const StdinPath = "-"

// DefaultMaxSize caps how much source a single Load will accept.
const DefaultMaxSize = 16 << 20 // 16 MiB

// Loader reads source inputs. The zero value is not usable; construct with
// NewLoader and override fields as needed.
type Loader struct {
	// FS is the filesystem reads go through.
	FS afero.Fs
	// Stdin backs the "-" pseudo-path.
	Stdin io.Reader
	// MaxSize is the per-input size limit in bytes.
	MaxSize int64
}

// NewLoader returns a Loader backed by the OS filesystem and real stdin.
func NewLoader() *Loader {
	return &Loader{
		FS:      afero.NewOsFs(),
		Stdin:   os.Stdin,
		MaxSize: DefaultMaxSize,
	}
}

// NewMemLoader returns a Loader over an empty in-memory filesystem, for
// tests and tooling.
func NewMemLoader() *Loader {
	return &Loader{
		FS:      afero.NewMemMapFs(),
		Stdin:   nil,
		MaxSize: DefaultMaxSize,
	}
}

// Load reads one input. The path "-" (or an empty path) reads standard
// input; anything else is a file path on the loader's filesystem.
func (l *Loader) Load(path string) ([]byte, error) {
	if path == StdinPath || path == "" {
		return l.loadStdin()
	}

	info, err := l.FS.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("failed to stat source file %s: %w", path, err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("source path %s is a directory", path)
	}
	if info.Size() > l.MaxSize {
		return nil, fmt.Errorf("source file %s is %d bytes, exceeding the %d byte limit", path, info.Size(), l.MaxSize)
	}

	data, err := afero.ReadFile(l.FS, path)
	if err != nil {
		return nil, fmt.Errorf("failed to read source file %s: %w", path, err)
	}
	return data, nil
}

func (l *Loader) loadStdin() ([]byte, error) {
	if l.Stdin == nil {
		return nil, fmt.Errorf("no standard input available")
	}

	// Read one byte past the cap to tell "exactly at limit" from "over it".
	data, err := io.ReadAll(io.LimitReader(l.Stdin, l.MaxSize+1))
	if err != nil {
		return nil, fmt.Errorf("failed to read standard input: %w", err)
	}
	if int64(len(data)) > l.MaxSize {
		return nil, fmt.Errorf("standard input exceeds the %d byte limit", l.MaxSize)
	}
	return data, nil
}

// DisplayName returns the name reports should use for an input path.
func DisplayName(path string) string {
	if path == StdinPath || path == "" {
		return "<stdin>"
	}
	return path
}
