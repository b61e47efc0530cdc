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
	"time"

	"github.com/framecheck/framecheck/dataset"
)

// ColumnMatchDateFormat checks that string entries of a column parse with
// the given Go reference layout (e.g. "2006-01-02"). Cells that already
// hold a time.Time pass; null cells are skipped.
type ColumnMatchDateFormat struct {
	baseCheck
	layout string
}

func NewColumnMatchDateFormat(column, layout string, opts Options) (*ColumnMatchDateFormat, error) {
	if column == "" {
		return nil, &ConstructionError{Validation: "ColumnMatchDateFormat", Reason: "column is required"}
	}
	if layout == "" {
		return nil, &ConstructionError{Validation: "ColumnMatchDateFormat", Reason: "date format is required"}
	}

	return &ColumnMatchDateFormat{baseCheck: newBase(column, opts), layout: layout}, nil
}

func (c *ColumnMatchDateFormat) Name() string { return "ColumnMatchDateFormat" }

func (c *ColumnMatchDateFormat) FailMessage() string {
	return fmt.Sprintf("The column '%s' has values that do not match the date format '%s'.", c.column, c.layout)
}

func (c *ColumnMatchDateFormat) Evaluate(ds dataset.Dataset) ([]FailingGroup, error) {
	values, err := ds.Column(c.column)
	if err != nil {
		return nil, err
	}

	return groupFailing(values, func(v any) bool {
		if v == nil {
			return false
		}
		if _, ok := v.(time.Time); ok {
			return false
		}
		s, ok := asString(v)
		if !ok {
			return true
		}
		_, parseErr := time.Parse(c.layout, s)
		return parseErr != nil
	}), nil
}

// DateToBeBetween checks that dates of a column fall inside [min, max].
// String cells are parsed as RFC 3339 or plain dates; unparseable cells
// fail. Shares the range-check policy: neither bound supplied means every
// row fails.
type DateToBeBetween struct {
	baseCheck
	minDate *time.Time
	maxDate *time.Time
}

func NewDateToBeBetween(column string, minDate, maxDate *time.Time, opts Options) (*DateToBeBetween, error) {
	if column == "" {
		return nil, &ConstructionError{Validation: "DateToBeBetween", Reason: "column is required"}
	}
	if minDate != nil && maxDate != nil && minDate.After(*maxDate) {
		return nil, &ConstructionError{Validation: "DateToBeBetween", Reason: "min_date is after max_date"}
	}

	return &DateToBeBetween{
		baseCheck: newBase(column, opts),
		minDate:   minDate,
		maxDate:   maxDate,
	}, nil
}

func (c *DateToBeBetween) Name() string { return "DateToBeBetween" }

func (c *DateToBeBetween) FailMessage() string {
	format := func(t *time.Time) string {
		if t == nil {
			return "unbounded"
		}
		return t.Format(time.DateOnly)
	}
	return fmt.Sprintf("The column '%s' has dates that are not between %s and %s.",
		c.column, format(c.minDate), format(c.maxDate))
}

func (c *DateToBeBetween) Evaluate(ds dataset.Dataset) ([]FailingGroup, error) {
	values, err := ds.Column(c.column)
	if err != nil {
		return nil, err
	}
	if c.minDate == nil && c.maxDate == nil {
		return groupAll(values), nil
	}

	return groupFailing(values, func(v any) bool {
		t, ok := asTime(v)
		if !ok {
			return true
		}
		if c.minDate != nil && t.Before(*c.minDate) {
			return true
		}
		if c.maxDate != nil && t.After(*c.maxDate) {
			return true
		}
		return false
	}), nil
}
