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

package framecheck

import (
	"time"

	"github.com/framecheck/framecheck/checks"
)

// The fluent builder groups the catalogue into fixed category namespaces.
// Every method constructs a check, queues it, and returns the validator so
// calls chain:
//
//	v := framecheck.New(frame, nil)
//	v.Values().ColumnValuesToBeBetween("age", checks.Ptr(18.0), checks.Ptr(100.0), checks.Options{}).
//		Nulls().ColumnNotBeNull("email", checks.Options{Impact: checks.ImpactHigh})
//	err := v.Validate()
//
// A construction error is recorded on the validator immediately and
// surfaces from Err and the next Run.

// ValuesValidation builds numeric value and sum checks.
type ValuesValidation struct{ v *Validator }

func (v *Validator) Values() ValuesValidation { return ValuesValidation{v} }

func (b ValuesValidation) ColumnValuesToBeBetween(column string, minValue, maxValue *float64, opts checks.Options) *Validator {
	c, err := checks.NewColumnValuesToBeBetween(column, minValue, maxValue, opts)
	return b.v.addConstructed(c, err)
}

func (b ValuesValidation) ColumnsSumToBeBetween(columns []string, minValue, maxValue *float64, opts checks.Options) *Validator {
	c, err := checks.NewColumnsSumToBeBetween(columns, minValue, maxValue, opts)
	return b.v.addConstructed(c, err)
}

func (b ValuesValidation) ColumnsSumToBeEqualTo(columns []string, sum float64, opts checks.Options) *Validator {
	c, err := checks.NewColumnsSumToBeEqualTo(columns, sum, opts)
	return b.v.addConstructed(c, err)
}

func (b ValuesValidation) ColumnsSumToBeGreaterOrEqualTo(columns []string, sum float64, opts checks.Options) *Validator {
	c, err := checks.NewColumnsSumToBeGreaterOrEqualTo(columns, sum, opts)
	return b.v.addConstructed(c, err)
}

func (b ValuesValidation) ColumnsSumToBeLessOrEqualTo(columns []string, sum float64, opts checks.Options) *Validator {
	c, err := checks.NewColumnsSumToBeLessOrEqualTo(columns, sum, opts)
	return b.v.addConstructed(c, err)
}

// StringValidation builds pattern and length checks.
type StringValidation struct{ v *Validator }

func (v *Validator) Strings() StringValidation { return StringValidation{v} }

func (b StringValidation) PatternMatch(column, pattern string, opts checks.Options) *Validator {
	c, err := checks.NewPatternMatch(column, pattern, opts)
	return b.v.addConstructed(c, err)
}

func (b StringValidation) NotPatternMatch(column, pattern string, opts checks.Options) *Validator {
	c, err := checks.NewNotPatternMatch(column, pattern, opts)
	return b.v.addConstructed(c, err)
}

func (b StringValidation) LengthToBeBetween(column string, minLength, maxLength *int, opts checks.Options) *Validator {
	c, err := checks.NewLengthToBeBetween(column, minLength, maxLength, opts)
	return b.v.addConstructed(c, err)
}

func (b StringValidation) LengthToBeEqualTo(column string, length int, opts checks.Options) *Validator {
	c, err := checks.NewLengthToBeEqualTo(column, length, opts)
	return b.v.addConstructed(c, err)
}

func (b StringValidation) LengthToBeGreaterOrEqualTo(column string, length int, opts checks.Options) *Validator {
	c, err := checks.NewLengthToBeGreaterOrEqualTo(column, length, opts)
	return b.v.addConstructed(c, err)
}

func (b StringValidation) LengthToBeLessOrEqualTo(column string, length int, opts checks.Options) *Validator {
	c, err := checks.NewLengthToBeLessOrEqualTo(column, length, opts)
	return b.v.addConstructed(c, err)
}

// NullValidation builds null presence checks.
type NullValidation struct{ v *Validator }

func (v *Validator) Nulls() NullValidation { return NullValidation{v} }

func (b NullValidation) ColumnNotBeNull(column string, opts checks.Options) *Validator {
	c, err := checks.NewColumnNotBeNull(column, opts)
	return b.v.addConstructed(c, err)
}

func (b NullValidation) ColumnBeNull(column string, opts checks.Options) *Validator {
	c, err := checks.NewColumnBeNull(column, opts)
	return b.v.addConstructed(c, err)
}

// DateValidation builds date format and range checks.
type DateValidation struct{ v *Validator }

func (v *Validator) Dates() DateValidation { return DateValidation{v} }

func (b DateValidation) ColumnMatchDateFormat(column, layout string, opts checks.Options) *Validator {
	c, err := checks.NewColumnMatchDateFormat(column, layout, opts)
	return b.v.addConstructed(c, err)
}

func (b DateValidation) DateToBeBetween(column string, minDate, maxDate *time.Time, opts checks.Options) *Validator {
	c, err := checks.NewDateToBeBetween(column, minDate, maxDate, opts)
	return b.v.addConstructed(c, err)
}

// EqualityValidation builds cross-column comparison checks.
type EqualityValidation struct{ v *Validator }

func (v *Validator) Equality() EqualityValidation { return EqualityValidation{v} }

func (b EqualityValidation) PairColumnEquality(column, targetColumn string, opts checks.Options) *Validator {
	c, err := checks.NewPairColumnEquality(column, targetColumn, opts)
	return b.v.addConstructed(c, err)
}

// TypeValidation builds dynamic type checks.
type TypeValidation struct{ v *Validator }

func (v *Validator) Types() TypeValidation { return TypeValidation{v} }

func (b TypeValidation) TypeCheck(column string, expected checks.ColumnType, opts checks.Options) *Validator {
	c, err := checks.NewTypeCheck(column, expected, opts)
	return b.v.addConstructed(c, err)
}

// UniqueValidation builds uniqueness and membership checks.
type UniqueValidation struct{ v *Validator }

func (v *Validator) Uniques() UniqueValidation { return UniqueValidation{v} }

func (b UniqueValidation) ColumnUniquePair(columns []string, opts checks.Options) *Validator {
	c, err := checks.NewColumnUniquePair(columns, opts)
	return b.v.addConstructed(c, err)
}

func (b UniqueValidation) ColumnUniqueValueCountToBeBetween(column string, minCount, maxCount *int, opts checks.Options) *Validator {
	c, err := checks.NewColumnUniqueValueCountToBeBetween(column, minCount, maxCount, opts)
	return b.v.addConstructed(c, err)
}

func (b UniqueValidation) ColumnUniqueValuesToBeInList(column string, values []any, opts checks.Options) *Validator {
	c, err := checks.NewColumnUniqueValuesToBeInList(column, values, opts)
	return b.v.addConstructed(c, err)
}
