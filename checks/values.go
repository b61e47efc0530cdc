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
	"fmt"

	"github.com/framecheck/framecheck/dataset"
)

// ColumnValuesToBeBetween checks that numeric values of a column fall
// inside [min, max]. A single supplied bound is applied alone.
//
// When neither bound is supplied the check constructs successfully but
// marks every row as failing. This mirrors the documented behavior of the
// range checks and is intentional; an unconfigured range is treated as "no
// value can satisfy it", not as "anything goes".
type ColumnValuesToBeBetween struct {
	baseCheck
	minValue *float64
	maxValue *float64
}

func NewColumnValuesToBeBetween(column string, minValue, maxValue *float64, opts Options) (*ColumnValuesToBeBetween, error) {
	if column == "" {
		return nil, &ConstructionError{Validation: "ColumnValuesToBeBetween", Reason: "column is required"}
	}
	if minValue != nil && maxValue != nil && *minValue > *maxValue {
		return nil, &ConstructionError{Validation: "ColumnValuesToBeBetween", Reason: "min_value is greater than max_value"}
	}

	return &ColumnValuesToBeBetween{
		baseCheck: newBase(column, opts),
		minValue:  minValue,
		maxValue:  maxValue,
	}, nil
}

func (c *ColumnValuesToBeBetween) Name() string { return "ColumnValuesToBeBetween" }

func (c *ColumnValuesToBeBetween) FailMessage() string {
	return fmt.Sprintf("The column '%s' has values that are not between %s and %s.",
		c.column, formatBound(c.minValue), formatBound(c.maxValue))
}

func (c *ColumnValuesToBeBetween) Evaluate(ds dataset.Dataset) ([]FailingGroup, error) {
	values, err := ds.Column(c.column)
	if err != nil {
		return nil, err
	}
	if c.minValue == nil && c.maxValue == nil {
		return groupAll(values), nil
	}

	return groupFailing(values, func(v any) bool {
		f, ok := asFloat(v)
		if !ok {
			return true
		}
		return outOfRange(f, c.minValue, c.maxValue)
	}), nil
}

// ColumnsSumToBeBetween checks that the row-wise sum of the listed columns
// falls inside [min, max]. Shares the "no bounds, everything fails" policy
// of ColumnValuesToBeBetween.
type ColumnsSumToBeBetween struct {
	baseCheck
	columns  []string
	minValue *float64
	maxValue *float64
}

func NewColumnsSumToBeBetween(columns []string, minValue, maxValue *float64, opts Options) (*ColumnsSumToBeBetween, error) {
	if len(columns) == 0 {
		return nil, &ConstructionError{Validation: "ColumnsSumToBeBetween", Reason: "at least one column is required"}
	}
	if minValue != nil && maxValue != nil && *minValue > *maxValue {
		return nil, &ConstructionError{Validation: "ColumnsSumToBeBetween", Reason: "min_value is greater than max_value"}
	}

	return &ColumnsSumToBeBetween{
		baseCheck: newBase(compoundColumn(columns), opts),
		columns:   columns,
		minValue:  minValue,
		maxValue:  maxValue,
	}, nil
}

func (c *ColumnsSumToBeBetween) Name() string { return "ColumnsSumToBeBetween" }

func (c *ColumnsSumToBeBetween) FailMessage() string {
	return fmt.Sprintf("The sum of columns [%s] has values that are not between %s and %s.",
		c.column, formatBound(c.minValue), formatBound(c.maxValue))
}

func (c *ColumnsSumToBeBetween) Evaluate(ds dataset.Dataset) ([]FailingGroup, error) {
	sums, err := rowSums(ds, c.columns)
	if err != nil {
		return nil, err
	}
	if c.minValue == nil && c.maxValue == nil {
		return groupAll(sums), nil
	}

	return groupFailing(sums, func(v any) bool {
		f, ok := asFloat(v)
		if !ok {
			return true
		}
		return outOfRange(f, c.minValue, c.maxValue)
	}), nil
}

// ColumnsSumToBeEqualTo checks that the row-wise sum of the listed columns
// equals the expected value.
type ColumnsSumToBeEqualTo struct {
	baseCheck
	columns []string
	sum     float64
}

func NewColumnsSumToBeEqualTo(columns []string, sum float64, opts Options) (*ColumnsSumToBeEqualTo, error) {
	if len(columns) == 0 {
		return nil, &ConstructionError{Validation: "ColumnsSumToBeEqualTo", Reason: "at least one column is required"}
	}

	return &ColumnsSumToBeEqualTo{
		baseCheck: newBase(compoundColumn(columns), opts),
		columns:   columns,
		sum:       sum,
	}, nil
}

func (c *ColumnsSumToBeEqualTo) Name() string { return "ColumnsSumToBeEqualTo" }

func (c *ColumnsSumToBeEqualTo) FailMessage() string {
	return fmt.Sprintf("The sum of columns [%s] has values that are not equal to %v.", c.column, c.sum)
}

func (c *ColumnsSumToBeEqualTo) Evaluate(ds dataset.Dataset) ([]FailingGroup, error) {
	sums, err := rowSums(ds, c.columns)
	if err != nil {
		return nil, err
	}

	return groupFailing(sums, func(v any) bool {
		f, ok := asFloat(v)
		return !ok || f != c.sum
	}), nil
}

// ColumnsSumToBeGreaterOrEqualTo checks that the row-wise sum of the listed
// columns is at least the expected value.
type ColumnsSumToBeGreaterOrEqualTo struct {
	baseCheck
	columns []string
	sum     float64
}

func NewColumnsSumToBeGreaterOrEqualTo(columns []string, sum float64, opts Options) (*ColumnsSumToBeGreaterOrEqualTo, error) {
	if len(columns) == 0 {
		return nil, &ConstructionError{Validation: "ColumnsSumToBeGreaterOrEqualTo", Reason: "at least one column is required"}
	}

	return &ColumnsSumToBeGreaterOrEqualTo{
		baseCheck: newBase(compoundColumn(columns), opts),
		columns:   columns,
		sum:       sum,
	}, nil
}

func (c *ColumnsSumToBeGreaterOrEqualTo) Name() string { return "ColumnsSumToBeGreaterOrEqualTo" }

func (c *ColumnsSumToBeGreaterOrEqualTo) FailMessage() string {
	return fmt.Sprintf("The sum of columns [%s] has values that are below %v.", c.column, c.sum)
}

func (c *ColumnsSumToBeGreaterOrEqualTo) Evaluate(ds dataset.Dataset) ([]FailingGroup, error) {
	sums, err := rowSums(ds, c.columns)
	if err != nil {
		return nil, err
	}

	return groupFailing(sums, func(v any) bool {
		f, ok := asFloat(v)
		return !ok || f < c.sum
	}), nil
}

// ColumnsSumToBeLessOrEqualTo checks that the row-wise sum of the listed
// columns is at most the expected value.
type ColumnsSumToBeLessOrEqualTo struct {
	baseCheck
	columns []string
	sum     float64
}

func NewColumnsSumToBeLessOrEqualTo(columns []string, sum float64, opts Options) (*ColumnsSumToBeLessOrEqualTo, error) {
	if len(columns) == 0 {
		return nil, &ConstructionError{Validation: "ColumnsSumToBeLessOrEqualTo", Reason: "at least one column is required"}
	}

	return &ColumnsSumToBeLessOrEqualTo{
		baseCheck: newBase(compoundColumn(columns), opts),
		columns:   columns,
		sum:       sum,
	}, nil
}

func (c *ColumnsSumToBeLessOrEqualTo) Name() string { return "ColumnsSumToBeLessOrEqualTo" }

func (c *ColumnsSumToBeLessOrEqualTo) FailMessage() string {
	return fmt.Sprintf("The sum of columns [%s] has values that are above %v.", c.column, c.sum)
}

func (c *ColumnsSumToBeLessOrEqualTo) Evaluate(ds dataset.Dataset) ([]FailingGroup, error) {
	sums, err := rowSums(ds, c.columns)
	if err != nil {
		return nil, err
	}

	return groupFailing(sums, func(v any) bool {
		f, ok := asFloat(v)
		return !ok || f > c.sum
	}), nil
}

// rowSums computes the per-row sum across columns. A row with any
// non-numeric cell yields a nil sum, which every sum predicate treats as
// failing.
func rowSums(ds dataset.Dataset, columns []string) ([]any, error) {
	cols := make([][]any, len(columns))
	for i, name := range columns {
		values, err := ds.Column(name)
		if err != nil {
			return nil, err
		}
		cols[i] = values
	}

	sums := make([]any, ds.RowCount())
	for row := range sums {
		total := 0.0
		valid := true
		for _, values := range cols {
			f, ok := asFloat(values[row])
			if !ok {
				valid = false
				break
			}
			total += f
		}
		if valid {
			sums[row] = total
		}
	}
	return sums, nil
}

func outOfRange(f float64, minValue, maxValue *float64) bool {
	if minValue != nil && f < *minValue {
		return true
	}
	if maxValue != nil && f > *maxValue {
		return true
	}
	return false
}

func formatBound(bound *float64) string {
	if bound == nil {
		return "unbounded"
	}
	return fmt.Sprintf("%v", *bound)
}
