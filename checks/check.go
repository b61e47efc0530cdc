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

// Package checks contains the validation rule catalogue and the capability
// contract a rule must satisfy to be runnable by the engine. Externally
// authored rules only need to implement Check.
package checks

import (
	"fmt"
	"strings"

	"github.com/framecheck/framecheck/dataset"
)

// Impact classifies how severe a failing check is. Only high-impact
// failures can abort a run; low and medium failures are recorded only.
type Impact string

const (
	ImpactLow    Impact = "low"
	ImpactMedium Impact = "medium"
	ImpactHigh   Impact = "high"
)

// ParseImpact maps a config string to an Impact. The empty string defaults
// to low.
func ParseImpact(s string) (Impact, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "":
		return ImpactLow, nil
	case string(ImpactLow):
		return ImpactLow, nil
	case string(ImpactMedium):
		return ImpactMedium, nil
	case string(ImpactHigh):
		return ImpactHigh, nil
	default:
		return "", fmt.Errorf("unknown impact %q, expected low, medium or high", s)
	}
}

// FailingGroup is one entry of a check's failing subset: a violating value
// (or derived group key) and how many rows carry it.
type FailingGroup struct {
	Value any
	Count int
}

// Check is the capability contract for a single validation rule.
type Check interface {
	// Name is the stable validation type name, used as the first half of
	// the report key.
	Name() string

	// Column is the target column identifier. Multi-column rules derive a
	// compound identifier.
	Column() string

	Impact() Impact

	// Threshold is the tolerated failing-row fraction in [0,1].
	Threshold() float64

	// FailMessage is the human-readable message reported when the rule
	// fails past its threshold.
	FailMessage() string

	// Evaluate inspects the dataset and returns the failing subset. It
	// must not mutate the dataset and must return an empty subset for an
	// empty dataset.
	Evaluate(ds dataset.Dataset) ([]FailingGroup, error)
}

// Options carries the tolerance settings shared by every catalogue check.
type Options struct {
	// Threshold is clamped into [0,1] at construction.
	Threshold float64

	// Impact defaults to low when left empty.
	Impact Impact
}

// ConstructionError reports invalid or missing check parameters. It is
// raised at construction time, never deferred to the run.
type ConstructionError struct {
	Validation string
	Reason     string
}

func (e *ConstructionError) Error() string {
	return fmt.Sprintf("cannot construct %s: %s", e.Validation, e.Reason)
}

// baseCheck holds the identity attributes common to all catalogue checks.
type baseCheck struct {
	column    string
	impact    Impact
	threshold float64
}

func newBase(column string, opts Options) baseCheck {
	impact := opts.Impact
	if impact == "" {
		impact = ImpactLow
	}

	threshold := opts.Threshold
	if threshold < 0 {
		threshold = 0
	} else if threshold > 1 {
		threshold = 1
	}

	return baseCheck{column: column, impact: impact, threshold: threshold}
}

func (b baseCheck) Column() string     { return b.column }
func (b baseCheck) Impact() Impact     { return b.impact }
func (b baseCheck) Threshold() float64 { return b.threshold }

// compoundColumn derives the identifier for multi-column checks.
func compoundColumn(columns []string) string {
	return strings.Join(columns, " - ")
}
