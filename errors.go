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
	"errors"
	"fmt"
	"strings"
)

// ErrNoChecks is returned by Run when the queue is empty.
var ErrNoChecks = errors.New("no validation checks were added")

// EvaluationError wraps an unexpected failure while a check inspected the
// dataset, such as a missing column. It aborts the run with no recovery.
type EvaluationError struct {
	Validation string
	Column     string
	Err        error
}

func (e *EvaluationError) Error() string {
	return fmt.Sprintf("evaluation of %s on column %q failed: %v", e.Validation, e.Column, e.Err)
}

func (e *EvaluationError) Unwrap() error {
	return e.Err
}

// FailedValidation identifies one high-impact check that failed past its
// threshold.
type FailedValidation struct {
	Key     string
	Column  string
	Message string
}

// PolicyFailure is returned by Run when high-impact escalation is requested
// and at least one high-impact check failed. It enumerates every such
// check, not just the first.
type PolicyFailure struct {
	Failures []FailedValidation

	// ReportJSON optionally carries the full report rendering, populated
	// when the run was asked to embed it.
	ReportJSON string
}

func (e *PolicyFailure) Error() string {
	parts := make([]string, len(e.Failures))
	for i, f := range e.Failures {
		parts[i] = fmt.Sprintf("%s (column %q): %s", f.Key, f.Column, f.Message)
	}

	msg := "failed high impact validation(s): " + strings.Join(parts, "; ")
	if e.ReportJSON != "" {
		msg += "\n" + e.ReportJSON
	}
	return msg
}
