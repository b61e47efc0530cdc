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
	"regexp"
	"unicode/utf8"

	"github.com/framecheck/framecheck/dataset"
)

// PatternMatch checks that every non-null entry of a column matches the
// regular expression. Null cells are skipped, not counted as violations.
type PatternMatch struct {
	baseCheck
	pattern *regexp.Regexp
}

func NewPatternMatch(column, pattern string, opts Options) (*PatternMatch, error) {
	if column == "" {
		return nil, &ConstructionError{Validation: "PatternMatch", Reason: "column is required"}
	}
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, &ConstructionError{Validation: "PatternMatch", Reason: fmt.Sprintf("invalid pattern %q: %v", pattern, err)}
	}

	return &PatternMatch{baseCheck: newBase(column, opts), pattern: re}, nil
}

func (c *PatternMatch) Name() string { return "PatternMatch" }

func (c *PatternMatch) FailMessage() string {
	return fmt.Sprintf("The column '%s' has entries that do not match the pattern '%s'.", c.column, c.pattern)
}

func (c *PatternMatch) Evaluate(ds dataset.Dataset) ([]FailingGroup, error) {
	values, err := ds.Column(c.column)
	if err != nil {
		return nil, err
	}

	return groupFailing(values, func(v any) bool {
		s, ok := asString(v)
		return ok && !c.pattern.MatchString(s)
	}), nil
}

// NotPatternMatch checks that no non-null entry of a column matches the
// regular expression.
type NotPatternMatch struct {
	baseCheck
	pattern *regexp.Regexp
}

func NewNotPatternMatch(column, pattern string, opts Options) (*NotPatternMatch, error) {
	if column == "" {
		return nil, &ConstructionError{Validation: "NotPatternMatch", Reason: "column is required"}
	}
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, &ConstructionError{Validation: "NotPatternMatch", Reason: fmt.Sprintf("invalid pattern %q: %v", pattern, err)}
	}

	return &NotPatternMatch{baseCheck: newBase(column, opts), pattern: re}, nil
}

func (c *NotPatternMatch) Name() string { return "NotPatternMatch" }

func (c *NotPatternMatch) FailMessage() string {
	return fmt.Sprintf("The column '%s' has entries that match the pattern '%s'.", c.column, c.pattern)
}

func (c *NotPatternMatch) Evaluate(ds dataset.Dataset) ([]FailingGroup, error) {
	values, err := ds.Column(c.column)
	if err != nil {
		return nil, err
	}

	return groupFailing(values, func(v any) bool {
		s, ok := asString(v)
		return ok && c.pattern.MatchString(s)
	}), nil
}

// LengthToBeBetween checks that the character length of each entry falls
// inside [min, max]. Follows the range-check policy: neither bound supplied
// means every row fails.
type LengthToBeBetween struct {
	baseCheck
	minLength *int
	maxLength *int
}

func NewLengthToBeBetween(column string, minLength, maxLength *int, opts Options) (*LengthToBeBetween, error) {
	if column == "" {
		return nil, &ConstructionError{Validation: "LengthToBeBetween", Reason: "column is required"}
	}
	if minLength != nil && maxLength != nil && *minLength > *maxLength {
		return nil, &ConstructionError{Validation: "LengthToBeBetween", Reason: "min_length is greater than max_length"}
	}

	return &LengthToBeBetween{
		baseCheck: newBase(column, opts),
		minLength: minLength,
		maxLength: maxLength,
	}, nil
}

func (c *LengthToBeBetween) Name() string { return "LengthToBeBetween" }

func (c *LengthToBeBetween) FailMessage() string {
	return fmt.Sprintf("The column '%s' has entries with length outside the expected range.", c.column)
}

func (c *LengthToBeBetween) Evaluate(ds dataset.Dataset) ([]FailingGroup, error) {
	values, err := ds.Column(c.column)
	if err != nil {
		return nil, err
	}
	if c.minLength == nil && c.maxLength == nil {
		return groupAll(values), nil
	}

	return groupFailing(values, func(v any) bool {
		s, ok := asString(v)
		if !ok {
			return false
		}
		length := utf8.RuneCountInString(s)
		if c.minLength != nil && length < *c.minLength {
			return true
		}
		if c.maxLength != nil && length > *c.maxLength {
			return true
		}
		return false
	}), nil
}

// LengthToBeEqualTo checks that the character length of each entry equals
// the expected length.
type LengthToBeEqualTo struct {
	baseCheck
	length int
}

func NewLengthToBeEqualTo(column string, length int, opts Options) (*LengthToBeEqualTo, error) {
	if column == "" {
		return nil, &ConstructionError{Validation: "LengthToBeEqualTo", Reason: "column is required"}
	}
	if length < 0 {
		return nil, &ConstructionError{Validation: "LengthToBeEqualTo", Reason: "length must not be negative"}
	}

	return &LengthToBeEqualTo{baseCheck: newBase(column, opts), length: length}, nil
}

func (c *LengthToBeEqualTo) Name() string { return "LengthToBeEqualTo" }

func (c *LengthToBeEqualTo) FailMessage() string {
	return fmt.Sprintf("The column '%s' has entries with length not equal to %d.", c.column, c.length)
}

func (c *LengthToBeEqualTo) Evaluate(ds dataset.Dataset) ([]FailingGroup, error) {
	values, err := ds.Column(c.column)
	if err != nil {
		return nil, err
	}

	return groupFailing(values, func(v any) bool {
		s, ok := asString(v)
		return ok && utf8.RuneCountInString(s) != c.length
	}), nil
}

// LengthToBeGreaterOrEqualTo checks that the character length of each entry
// is at least the expected length.
type LengthToBeGreaterOrEqualTo struct {
	baseCheck
	length int
}

func NewLengthToBeGreaterOrEqualTo(column string, length int, opts Options) (*LengthToBeGreaterOrEqualTo, error) {
	if column == "" {
		return nil, &ConstructionError{Validation: "LengthToBeGreaterOrEqualTo", Reason: "column is required"}
	}

	return &LengthToBeGreaterOrEqualTo{baseCheck: newBase(column, opts), length: length}, nil
}

func (c *LengthToBeGreaterOrEqualTo) Name() string { return "LengthToBeGreaterOrEqualTo" }

func (c *LengthToBeGreaterOrEqualTo) FailMessage() string {
	return fmt.Sprintf("The column '%s' has entries with length below %d.", c.column, c.length)
}

func (c *LengthToBeGreaterOrEqualTo) Evaluate(ds dataset.Dataset) ([]FailingGroup, error) {
	values, err := ds.Column(c.column)
	if err != nil {
		return nil, err
	}

	return groupFailing(values, func(v any) bool {
		s, ok := asString(v)
		return ok && utf8.RuneCountInString(s) < c.length
	}), nil
}

// LengthToBeLessOrEqualTo checks that the character length of each entry is
// at most the expected length.
type LengthToBeLessOrEqualTo struct {
	baseCheck
	length int
}

func NewLengthToBeLessOrEqualTo(column string, length int, opts Options) (*LengthToBeLessOrEqualTo, error) {
	if column == "" {
		return nil, &ConstructionError{Validation: "LengthToBeLessOrEqualTo", Reason: "column is required"}
	}

	return &LengthToBeLessOrEqualTo{baseCheck: newBase(column, opts), length: length}, nil
}

func (c *LengthToBeLessOrEqualTo) Name() string { return "LengthToBeLessOrEqualTo" }

func (c *LengthToBeLessOrEqualTo) FailMessage() string {
	return fmt.Sprintf("The column '%s' has entries with length above %d.", c.column, c.length)
}

func (c *LengthToBeLessOrEqualTo) Evaluate(ds dataset.Dataset) ([]FailingGroup, error) {
	values, err := ds.Column(c.column)
	if err != nil {
		return nil, err
	}

	return groupFailing(values, func(v any) bool {
		s, ok := asString(v)
		return ok && utf8.RuneCountInString(s) > c.length
	}), nil
}
