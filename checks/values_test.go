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

import (
	"testing"

	"github.com/framecheck/framecheck/dataset"
)

func mustFrame(t *testing.T, columns map[string][]any) *dataset.Frame {
	t.Helper()
	frame, err := dataset.NewFrame(columns)
	if err != nil {
		t.Fatalf("failed to build frame: %v", err)
	}
	return frame
}

func failedRows(groups []FailingGroup) int {
	total := 0
	for _, g := range groups {
		total += g.Count
	}
	return total
}

func TestColumnValuesToBeBetween(t *testing.T) {
	frame := mustFrame(t, map[string][]any{
		"a": {1, 2, 3, 4, 5},
	})

	tests := []struct {
		name           string
		minValue       *float64
		maxValue       *float64
		expectedFailed int
	}{
		{
			name:           "all in range",
			minValue:       Ptr(1.0),
			maxValue:       Ptr(5.0),
			expectedFailed: 0,
		},
		{
			name:           "values above max",
			minValue:       Ptr(1.0),
			maxValue:       Ptr(2.0),
			expectedFailed: 3,
		},
		{
			name:           "min only",
			minValue:       Ptr(3.0),
			expectedFailed: 2,
		},
		{
			name:           "max only",
			maxValue:       Ptr(3.0),
			expectedFailed: 2,
		},
		{
			name:           "no bounds fails everything",
			expectedFailed: 5,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := NewColumnValuesToBeBetween("a", tt.minValue, tt.maxValue, Options{})
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

func TestColumnValuesToBeBetweenNonNumericFails(t *testing.T) {
	frame := mustFrame(t, map[string][]any{
		"a": {1, "oops", 3},
	})

	c, err := NewColumnValuesToBeBetween("a", Ptr(0.0), Ptr(10.0), Options{})
	if err != nil {
		t.Fatalf("unexpected construction error: %v", err)
	}

	groups, err := c.Evaluate(frame)
	if err != nil {
		t.Fatalf("unexpected evaluation error: %v", err)
	}
	if got := failedRows(groups); got != 1 {
		t.Errorf("expected the non-numeric cell to fail, got %d failing rows", got)
	}
}

func TestColumnValuesToBeBetweenInvertedBounds(t *testing.T) {
	_, err := NewColumnValuesToBeBetween("a", Ptr(10.0), Ptr(1.0), Options{})
	if err == nil {
		t.Fatal("expected a construction error for min > max")
	}
}

func TestColumnsSumChecks(t *testing.T) {
	frame := mustFrame(t, map[string][]any{
		"x": {1, 2, 3},
		"y": {1.0, 2.0, 3.0},
	})
	// row sums: 2, 4, 6

	tests := []struct {
		name           string
		build          func() (Check, error)
		expectedFailed int
	}{
		{
			name: "sum between",
			build: func() (Check, error) {
				return NewColumnsSumToBeBetween([]string{"x", "y"}, Ptr(2.0), Ptr(4.0), Options{})
			},
			expectedFailed: 1,
		},
		{
			name: "sum between no bounds",
			build: func() (Check, error) {
				return NewColumnsSumToBeBetween([]string{"x", "y"}, nil, nil, Options{})
			},
			expectedFailed: 3,
		},
		{
			name: "sum equal",
			build: func() (Check, error) {
				return NewColumnsSumToBeEqualTo([]string{"x", "y"}, 4, Options{})
			},
			expectedFailed: 2,
		},
		{
			name: "sum greater or equal",
			build: func() (Check, error) {
				return NewColumnsSumToBeGreaterOrEqualTo([]string{"x", "y"}, 4, Options{})
			},
			expectedFailed: 1,
		},
		{
			name: "sum less or equal",
			build: func() (Check, error) {
				return NewColumnsSumToBeLessOrEqualTo([]string{"x", "y"}, 4, Options{})
			},
			expectedFailed: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := tt.build()
			if err != nil {
				t.Fatalf("unexpected construction error: %v", err)
			}

			if c.Column() != "x - y" {
				t.Errorf("expected compound column identifier \"x - y\", got %q", c.Column())
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

func TestColumnsSumRequiresColumns(t *testing.T) {
	if _, err := NewColumnsSumToBeEqualTo(nil, 1, Options{}); err == nil {
		t.Fatal("expected a construction error for an empty column list")
	}
}
