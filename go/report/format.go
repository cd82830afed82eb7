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

package report

import (
	"fmt"
	"reflect"
	"sort"
	"strings"
)

// Format is an enum selecting how a scan report is rendered.
type Format int

const (
	// FormatGrid renders aligned text tables for terminals.
	FormatGrid Format = iota
	// FormatJSON renders a single indented JSON document.
	FormatJSON
	// FormatYAML renders a YAML document.
	FormatYAML
)

var (
	formatNames         []string
	formatNamesToValues = map[string]int{
		"grid": int(FormatGrid),
		"json": int(FormatJSON),
		"yaml": int(FormatYAML),
	}
	formatValuesToNames map[int]string
)

func init() {
	formatNames = make([]string, 0, len(formatNamesToValues))
	formatValuesToNames = make(map[int]string, len(formatNamesToValues))

	for name, val := range formatNamesToValues {
		formatValuesToNames[val] = name
		formatNames = append(formatNames, name)
	}

	sort.Slice(formatNames, func(i, j int) bool {
		return formatNames[i] < formatNames[j]
	})
}

// FormatNames returns the accepted format names in sorted order, for flag
// usage strings.
func FormatNames() []string {
	names := make([]string, len(formatNames))
	copy(names, formatNames)
	return names
}

func (f *Format) Set(arg string) error {
	larg := strings.ToLower(arg)
	if v, ok := formatNamesToValues[larg]; ok {
		*f = Format(v)
		return nil
	}

	return fmt.Errorf("unknown format name %s", arg)
}

func (f *Format) String() string {
	if name, ok := formatValuesToNames[int(*f)]; ok {
		return name
	}

	return "<UNKNOWN>"
}

func (f *Format) Type() string { return "Format" }

// DecodeFormat is a mapstructure decode hook so Format fields can be
// unmarshaled from config files, where they arrive as strings or ints.
func DecodeFormat(from, to reflect.Type, data any) (any, error) {
	var f Format
	if to != reflect.TypeOf(f) {
		return data, nil
	}

	switch {
	case from == reflect.TypeOf(f):
		return data.(Format), nil
	case from.Kind() == reflect.Int:
		return Format(data.(int)), nil
	case from.Kind() == reflect.String:
		if err := f.Set(data.(string)); err != nil {
			return f, err
		}

		return f, nil
	}

	return data, fmt.Errorf("invalid value for Format: %v", data)
}
