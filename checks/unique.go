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
	"strings"

	"github.com/framecheck/framecheck/dataset"
)

// ColumnUniquePair checks that the combination of values across the listed
// columns is unique per row. A failing group is a duplicated combination
// with its occurrence count.
type ColumnUniquePair struct {
	baseCheck
	columns []string
}

func NewColumnUniquePair(columns []string, opts Options) (*ColumnUniquePair, error) {
	if len(columns) < 2 {
		return nil, &ConstructionError{Validation: "ColumnUniquePair", Reason: "at least two columns are required"}
	}

	return &ColumnUniquePair{
		baseCheck: newBase(compoundColumn(columns), opts),
		columns:   columns,
	}, nil
}

func (c *ColumnUniquePair) Name() string { return "ColumnUniquePair" }

func (c *ColumnUniquePair) FailMessage() string {
	return fmt.Sprintf("Duplicate entries found: The combination of columns [%s] contains non-unique values.", c.column)
}

func (c *ColumnUniquePair) Evaluate(ds dataset.Dataset) ([]FailingGroup, error) {
	keys, err := combinedKeys(ds, c.columns)
	if err != nil {
		return nil, err
	}

	counts := make(map[string]int, len(keys))
	for _, key := range keys {
		counts[key]++
	}

	var groups []FailingGroup
	seen := make(map[string]bool)
	for _, key := range keys {
		if counts[key] > 1 && !seen[key] {
			seen[key] = true
			groups = append(groups, FailingGroup{Value: key, Count: counts[key]})
		}
	}
	return groups, nil
}

// ColumnUniqueValueCountToBeBetween checks that each distinct value of a
// column occurs between min and max times. Follows the range-check policy:
// neither bound supplied means every row fails.
type ColumnUniqueValueCountToBeBetween struct {
	baseCheck
	minCount *int
	maxCount *int
}

func NewColumnUniqueValueCountToBeBetween(column string, minCount, maxCount *int, opts Options) (*ColumnUniqueValueCountToBeBetween, error) {
	if column == "" {
		return nil, &ConstructionError{Validation: "ColumnUniqueValueCountToBeBetween", Reason: "column is required"}
	}
	if minCount != nil && maxCount != nil && *minCount > *maxCount {
		return nil, &ConstructionError{Validation: "ColumnUniqueValueCountToBeBetween", Reason: "min_count is greater than max_count"}
	}

	return &ColumnUniqueValueCountToBeBetween{
		baseCheck: newBase(column, opts),
		minCount:  minCount,
		maxCount:  maxCount,
	}, nil
}

func (c *ColumnUniqueValueCountToBeBetween) Name() string { return "ColumnUniqueValueCountToBeBetween" }

func (c *ColumnUniqueValueCountToBeBetween) FailMessage() string {
	return fmt.Sprintf("The column '%s' has values with occurrence counts outside the expected range.", c.column)
}

func (c *ColumnUniqueValueCountToBeBetween) Evaluate(ds dataset.Dataset) ([]FailingGroup, error) {
	values, err := ds.Column(c.column)
	if err != nil {
		return nil, err
	}
	if c.minCount == nil && c.maxCount == nil {
		return groupAll(values), nil
	}

	groups := groupAll(values)
	failing := groups[:0]
	for _, g := range groups {
		if c.minCount != nil && g.Count < *c.minCount {
			failing = append(failing, g)
			continue
		}
		if c.maxCount != nil && g.Count > *c.maxCount {
			failing = append(failing, g)
		}
	}
	return failing, nil
}

// ColumnUniqueValuesToBeInList checks that every distinct value of a column
// is a member of the allowed list. Null cells are allowed members only when
// the list contains nil.
type ColumnUniqueValuesToBeInList struct {
	baseCheck
	allowed map[any]bool
	display []string
}

func NewColumnUniqueValuesToBeInList(column string, values []any, opts Options) (*ColumnUniqueValuesToBeInList, error) {
	if column == "" {
		return nil, &ConstructionError{Validation: "ColumnUniqueValuesToBeInList", Reason: "column is required"}
	}
	if len(values) == 0 {
		return nil, &ConstructionError{Validation: "ColumnUniqueValuesToBeInList", Reason: "at least one allowed value is required"}
	}

	allowed := make(map[any]bool, len(values))
	display := make([]string, 0, len(values))
	for _, v := range values {
		allowed[listKey(v)] = true
		s, _ := asString(v)
		display = append(display, s)
	}

	return &ColumnUniqueValuesToBeInList{
		baseCheck: newBase(column, opts),
		allowed:   allowed,
		display:   display,
	}, nil
}

func (c *ColumnUniqueValuesToBeInList) Name() string { return "ColumnUniqueValuesToBeInList" }

func (c *ColumnUniqueValuesToBeInList) FailMessage() string {
	return fmt.Sprintf("The column '%s' has values that are not in the allowed list [%s].",
		c.column, strings.Join(c.display, ", "))
}

func (c *ColumnUniqueValuesToBeInList) Evaluate(ds dataset.Dataset) ([]FailingGroup, error) {
	values, err := ds.Column(c.column)
	if err != nil {
		return nil, err
	}

	return groupFailing(values, func(v any) bool {
		return !c.allowed[listKey(v)]
	}), nil
}

// listKey canonicalizes numerics to float64 so an int column can match
// allowed values decoded from YAML as floats, and vice versa.
func listKey(v any) any {
	switch v.(type) {
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64, float32, float64:
		f, _ := asFloat(v)
		return f
	default:
		return groupKey(v)
	}
}

// combinedKeys renders the per-row join of the listed columns' values.
func combinedKeys(ds dataset.Dataset, columns []string) ([]string, error) {
	cols := make([][]any, len(columns))
	for i, name := range columns {
		values, err := ds.Column(name)
		if err != nil {
			return nil, err
		}
		cols[i] = values
	}

	keys := make([]string, ds.RowCount())
	parts := make([]string, len(columns))
	for row := range keys {
		for i, values := range cols {
			parts[i], _ = asString(values[row])
		}
		keys[row] = strings.Join(parts, " - ")
	}
	return keys, nil
}
