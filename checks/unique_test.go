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

package checks

import "testing"

func TestColumnUniquePair(t *testing.T) {
	frame := mustFrame(t, map[string][]any{
		"first_name": {"John", "Jane", "John", "Alice", "John"},
		"city":       {"NY", "LA", "NY", "Chicago", "NY"},
		"age":        {30, 25, 35, 28, 42},
	})

	tests := []struct {
		name           string
		columns        []string
		expectedFailed int
	}{
		{name: "duplicated pair", columns: []string{"first_name", "city"}, expectedFailed: 3},
		{name: "unique pair", columns: []string{"first_name", "age"}, expectedFailed: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := NewColumnUniquePair(tt.columns, Options{})
			if err != nil {
				t.Fatalf("unexpected construction error: %v", err)
			}

			groups, err := c.Evaluate(frame)
			if err != nil {
				t.Fatalf("unexpected evaluation error: %v", err)
			}
			if got := failedRows(groups); got != tt.expectedFailed {
				t.Errorf("expected %d failing rows, got %d", tt.expectedFailed, got)
			}
		})
	}
}

func TestColumnUniquePairRequiresTwoColumns(t *testing.T) {
	if _, err := NewColumnUniquePair([]string{"only"}, Options{}); err == nil {
		t.Fatal("expected a construction error for a single column")
	}
}

func TestColumnUniqueValueCountToBeBetween(t *testing.T) {
	frame := mustFrame(t, map[string][]any{
		"a": {"x", "x", "x", "y", "z"},
	})

	tests := []struct {
		name           string
		minCount       *int
		maxCount       *int
		expectedFailed int
	}{
		{name: "all counts in range", minCount: Ptr(1), maxCount: Ptr(3), expectedFailed: 0},
		{name: "over-represented value", minCount: Ptr(1), maxCount: Ptr(2), expectedFailed: 3},
		{name: "under-represented values", minCount: Ptr(2), maxCount: Ptr(5), expectedFailed: 2},
		{name: "no bounds fails everything", expectedFailed: 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := NewColumnUniqueValueCountToBeBetween("a", tt.minCount, tt.maxCount, Options{})
			if err != nil {
				t.Fatalf("unexpected construction error: %v", err)
			}

			groups, err := c.Evaluate(frame)
			if err != nil {
				t.Fatalf("unexpected evaluation error: %v", err)
			}
			if got := failedRows(groups); got != tt.expectedFailed {
				t.Errorf("expected %d failing rows, got %d", tt.expectedFailed, got)
			}
		})
	}
}

func TestColumnUniqueValuesToBeInList(t *testing.T) {
	frame := mustFrame(t, map[string][]any{
		"status": {"open", "closed", "open", "unknown"},
	})

	c, err := NewColumnUniqueValuesToBeInList("status", []any{"open", "closed"}, Options{})
	if err != nil {
		t.Fatalf("unexpected construction error: %v", err)
	}

	groups, err := c.Evaluate(frame)
	if err != nil {
		t.Fatalf("unexpected evaluation error: %v", err)
	}
	if got := failedRows(groups); got != 1 {
		t.Errorf("expected 1 failing row, got %d", got)
	}
}

func TestColumnUniqueValuesToBeInListNumericCoercion(t *testing.T) {
	frame := mustFrame(t, map[string][]any{
		"code": {1, 2, 3},
	})

	// allowed values decoded from config arrive as floats
	c, err := NewColumnUniqueValuesToBeInList("code", []any{1.0, 2.0}, Options{})
	if err != nil {
		t.Fatalf("unexpected construction error: %v", err)
	}

	groups, err := c.Evaluate(frame)
	if err != nil {
		t.Fatalf("unexpected evaluation error: %v", err)
	}
	if got := failedRows(groups); got != 1 {
		t.Errorf("expected only the value 3 to fail, got %d failing rows", got)
	}
}

func TestColumnUniqueValuesToBeInListRequiresValues(t *testing.T) {
	if _, err := NewColumnUniqueValuesToBeInList("status", nil, Options{}); err == nil {
		t.Fatal("expected a construction error for an empty allowed list")
	}
}
