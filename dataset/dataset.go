// Copyright 2026 The FrameCheck Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package dataset defines the tabular collaborator validated by the engine
// and provides an in-memory implementation plus loaders that materialize
// database query results.
package dataset

import (
	"fmt"
	"sort"
)

// Dataset is the read-only tabular handle checks evaluate against. The
// engine never mutates a Dataset.
type Dataset interface {
	// RowCount returns the total number of rows.
	RowCount() int

	// ColumnNames returns the column names in a stable order.
	ColumnNames() []string

	// Column returns every value of the named column in row order. Null
	// cells are represented as nil.
	Column(name string) ([]any, error)
}

// Frame is the built-in columnar Dataset. Columns share a single row count
// and are immutable once the frame is constructed.
type Frame struct {
	names []string
	cols  map[string][]any
	rows  int
}

// NewFrame builds a Frame from named columns. All columns must have the same
// length. Column order is normalized to lexicographic so iteration is
// deterministic regardless of map ordering.
func NewFrame(columns map[string][]any) (*Frame, error) {
	f := &Frame{cols: make(map[string][]any, len(columns))}

	for name := range columns {
		f.names = append(f.names, name)
	}
	sort.Strings(f.names)

	for i, name := range f.names {
		values := columns[name]
		if i == 0 {
			f.rows = len(values)
		} else if len(values) != f.rows {
			return nil, fmt.Errorf("column %q has %d rows, expected %d", name, len(values), f.rows)
		}
		f.cols[name] = values
	}

	return f, nil
}

// FromRecords builds a Frame from row-shaped data. Missing cells become nil.
func FromRecords(columnNames []string, records []map[string]any) (*Frame, error) {
	if len(columnNames) == 0 {
		return nil, fmt.Errorf("at least one column name is required")
	}

	cols := make(map[string][]any, len(columnNames))
	for _, name := range columnNames {
		if _, ok := cols[name]; ok {
			return nil, fmt.Errorf("duplicate column name %q", name)
		}
		values := make([]any, len(records))
		for i, record := range records {
			values[i] = record[name]
		}
		cols[name] = values
	}

	return NewFrame(cols)
}

func (f *Frame) RowCount() int {
	return f.rows
}

func (f *Frame) ColumnNames() []string {
	names := make([]string, len(f.names))
	copy(names, f.names)
	return names
}

func (f *Frame) Column(name string) ([]any, error) {
	values, ok := f.cols[name]
	if !ok {
		return nil, fmt.Errorf("column %q not found", name)
	}
	return values, nil
}
