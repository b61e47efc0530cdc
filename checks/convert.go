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
	"strconv"
	"time"
)

// Ptr returns a pointer to v. Range-style constructors take optional bounds
// as pointers; Ptr keeps call sites short.
func Ptr[T any](v T) *T {
	return &v
}

// groupFailing partitions column values by equality and keeps the groups
// the predicate marks as failing. Group order follows first appearance so
// failing-item samples are deterministic.
func groupFailing(values []any, failing func(v any) bool) []FailingGroup {
	var order []any
	counts := make(map[any]int)

	for _, v := range values {
		if !failing(v) {
			continue
		}
		key := groupKey(v)
		if _, seen := counts[key]; !seen {
			order = append(order, key)
		}
		counts[key]++
	}

	groups := make([]FailingGroup, 0, len(order))
	for _, key := range order {
		groups = append(groups, FailingGroup{Value: key, Count: counts[key]})
	}
	return groups
}

// groupAll marks every row as failing. Used by the "no constraint supplied"
// policy of range-style checks.
func groupAll(values []any) []FailingGroup {
	return groupFailing(values, func(any) bool { return true })
}

// groupKey normalizes a value into something usable as a map key. Scalars
// pass through; anything unhashable is keyed by its string rendering.
func groupKey(v any) any {
	switch v.(type) {
	case nil, bool, string, int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64, float32, float64, time.Time:
		return v
	default:
		return fmt.Sprint(v)
	}
}

// asFloat coerces numeric values, including numeric strings, to float64.
func asFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	case float32:
		return float64(n), true
	case float64:
		return n, true
	case string:
		f, err := strconv.ParseFloat(n, 64)
		return f, err == nil
	default:
		return 0, false
	}
}

// asString returns the string form of a cell. Nil cells report ok=false so
// string checks can skip nulls instead of matching against "<nil>".
func asString(v any) (string, bool) {
	if v == nil {
		return "", false
	}
	if s, ok := v.(string); ok {
		return s, true
	}
	return fmt.Sprint(v), true
}

// asTime coerces a cell to a timestamp. Strings are tried against RFC 3339
// and the plain date form.
func asTime(v any) (time.Time, bool) {
	switch t := v.(type) {
	case time.Time:
		return t, true
	case string:
		for _, layout := range []string{time.RFC3339, time.DateTime, time.DateOnly} {
			if parsed, err := time.Parse(layout, t); err == nil {
				return parsed, true
			}
		}
		return time.Time{}, false
	default:
		return time.Time{}, false
	}
}

// equalValues compares two cells loosely: numerics compare by value so an
// int64 column can match a float64 one, everything else by string form.
// Nil only equals nil.
func equalValues(a, b any) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	fa, aok := asFloat(a)
	fb, bok := asFloat(b)
	if aok && bok {
		return fa == fb
	}
	sa, _ := asString(a)
	sb, _ := asString(b)
	return sa == sb
}
