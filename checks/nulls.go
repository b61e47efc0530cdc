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

// ColumnNotBeNull checks that a column has no null cells.
type ColumnNotBeNull struct {
	baseCheck
}

func NewColumnNotBeNull(column string, opts Options) (*ColumnNotBeNull, error) {
	if column == "" {
		return nil, &ConstructionError{Validation: "ColumnNotBeNull", Reason: "column is required"}
	}
	return &ColumnNotBeNull{baseCheck: newBase(column, opts)}, nil
}

func (c *ColumnNotBeNull) Name() string { return "ColumnNotBeNull" }

func (c *ColumnNotBeNull) FailMessage() string {
	return fmt.Sprintf("The column '%s' contains null values.", c.column)
}

func (c *ColumnNotBeNull) Evaluate(ds dataset.Dataset) ([]FailingGroup, error) {
	values, err := ds.Column(c.column)
	if err != nil {
		return nil, err
	}

	return groupFailing(values, func(v any) bool {
		return v == nil
	}), nil
}

// ColumnBeNull checks that every cell of a column is null.
type ColumnBeNull struct {
	baseCheck
}

func NewColumnBeNull(column string, opts Options) (*ColumnBeNull, error) {
	if column == "" {
		return nil, &ConstructionError{Validation: "ColumnBeNull", Reason: "column is required"}
	}
	return &ColumnBeNull{baseCheck: newBase(column, opts)}, nil
}

func (c *ColumnBeNull) Name() string { return "ColumnBeNull" }

func (c *ColumnBeNull) FailMessage() string {
	return fmt.Sprintf("The column '%s' contains non-null values.", c.column)
}

func (c *ColumnBeNull) Evaluate(ds dataset.Dataset) ([]FailingGroup, error) {
	values, err := ds.Column(c.column)
	if err != nil {
		return nil, err
	}

	return groupFailing(values, func(v any) bool {
		return v != nil
	}), nil
}
