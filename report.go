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
	"encoding/json"

	"github.com/framecheck/framecheck/checks"
)

// Status is the pass/fail outcome of a single check.
type Status string

const (
	StatusSuccess Status = "Success"
	StatusFail    Status = "Fail"
)

// Result holds the threshold arithmetic of one executed check. The failure
// fields are only populated when the check failed past its threshold.
type Result struct {
	Status           Status   `json:"status"`
	ThresholdPass    bool     `json:"threshold_pass"`
	Message          string   `json:"message"`
	FailingItems     []any    `json:"failing_items,omitempty"`
	FailedCount      *int     `json:"failed_number,omitempty"`
	FrameRowCount    int      `json:"frame_row_number"`
	Threshold        float64  `json:"threshold"`
	FailedPercentage *float64 `json:"failed_percentage,omitempty"`
}

// ResultRecord is the per-check report fragment.
type ResultRecord struct {
	Validation string        `json:"validation"`
	Impact     checks.Impact `json:"impact"`
	Timestamp  string        `json:"timestamp"`
	Column     string        `json:"column"`
	Result     Result        `json:"result"`
}

// Summary aggregates one run.
type Summary struct {
	RunID string `json:"run_id"`

	// Passed is true only when every executed check passed its threshold.
	Passed bool `json:"passed"`

	// Validations lists the report keys in execution order, one entry per
	// executed check, including re-executions of a colliding key.
	Validations []string `json:"validations"`

	FailedValidations []string `json:"failed_validation,omitempty"`
}

// Report maps derived check keys to their result records. Keys collide when
// two queued checks share a validation name and column identifier; the
// later execution overwrites the earlier record.
type Report struct {
	summary Summary
	order   []string
	records map[string]ResultRecord
}

func newReport(runID string) *Report {
	return &Report{
		summary: Summary{RunID: runID},
		records: make(map[string]ResultRecord),
	}
}

func (r *Report) add(key string, rec ResultRecord) {
	if _, exists := r.records[key]; !exists {
		r.order = append(r.order, key)
	}
	r.records[key] = rec
	r.summary.Validations = append(r.summary.Validations, key)
}

// finalize computes the aggregate pass flag once every queued check ran.
func (r *Report) finalize() {
	r.summary.Passed = true
	r.summary.FailedValidations = nil
	for _, key := range r.order {
		if !r.records[key].Result.ThresholdPass {
			r.summary.Passed = false
			r.summary.FailedValidations = append(r.summary.FailedValidations, key)
		}
	}
}

// Summary returns the run summary. Before the run completes the aggregate
// flags are zero values.
func (r *Report) Summary() Summary {
	return r.summary
}

// Get returns the record stored under the derived key.
func (r *Report) Get(key string) (ResultRecord, bool) {
	rec, ok := r.records[key]
	return rec, ok
}

// Keys returns the record keys in first-execution order.
func (r *Report) Keys() []string {
	keys := make([]string, len(r.order))
	copy(keys, r.order)
	return keys
}

// Passed reports whether every executed check passed.
func (r *Report) Passed() bool {
	return r.summary.Passed
}

// MarshalJSON renders the report as a single object holding the Summary
// plus one entry per derived key.
func (r *Report) MarshalJSON() ([]byte, error) {
	out := make(map[string]any, len(r.records)+1)
	out["Summary"] = r.summary
	for key, rec := range r.records {
		out[key] = rec
	}
	return json.Marshal(out)
}
