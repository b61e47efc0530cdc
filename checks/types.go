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

// ColumnType names the dynamic type a TypeCheck expects.
type ColumnType string

const (
	TypeString ColumnType = "string"
	TypeInt    ColumnType = "int"
	TypeFloat  ColumnType = "float"
	TypeBool   ColumnType = "bool"
	TypeTime   ColumnType = "time"
)

// TypeCheck checks that every cell of a column holds a value of the
// expected dynamic type. Null cells fail: a null carries no type evidence.
type TypeCheck struct {
	baseCheck
	expected ColumnType
}

func NewTypeCheck(column string, expected ColumnType, opts Options) (*TypeCheck, error) {
	if column == "" {
		return nil, &ConstructionError{Validation: "TypeCheck", Reason: "column is required"}
	}
	switch expected {
	case TypeString, TypeInt, TypeFloat, TypeBool, TypeTime:
	default:
		return nil, &ConstructionError{Validation: "TypeCheck", Reason: fmt.Sprintf("unknown column type %q", expected)}
	}

	return &TypeCheck{baseCheck: newBase(column, opts), expected: expected}, nil
}

func (c *TypeCheck) Name() string { return "TypeCheck" }

func (c *TypeCheck) FailMessage() string {
	return fmt.Sprintf("The column '%s' has values that are not of type '%s'.", c.column, c.expected)
}

func (c *TypeCheck) Evaluate(ds dataset.Dataset) ([]FailingGroup, error) {
	values, err := ds.Column(c.column)
	if err != nil {
		return nil, err
	}

	return groupFailing(values, func(v any) bool {
		return !matchesType(v, c.expected)
	}), nil
}

func matchesType(v any, expected ColumnType) bool {
	switch expected {
	case TypeString:
		_, ok := v.(string)
		return ok
	case TypeInt:
		switch v.(type) {
		case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
			return true
		}
		return false
	case TypeFloat:
		switch v.(type) {
		case float32, float64:
			return true
		}
		return false
	case TypeBool:
		_, ok := v.(bool)
		return ok
	case TypeTime:
		_, ok := v.(time.Time)
		return ok
	}
	return false
}
