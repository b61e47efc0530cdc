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

// Package framecheck runs declarative data-quality checks against a tabular
// dataset and aggregates the outcomes into a keyed report with per-check
// failure tolerance and severity escalation.
package framecheck

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/framecheck/framecheck/checks"
	"github.com/framecheck/framecheck/dataset"
)

// RunOptions configures one validation run.
type RunOptions struct {
	// RaiseOnHighImpact makes the run return a PolicyFailure when at least
	// one high-impact check failed past its threshold. Low and medium
	// failures are recorded only, never raised.
	RaiseOnHighImpact bool

	// ReportInError embeds the full JSON report in a PolicyFailure.
	ReportInError bool
}

// Validator owns an ordered queue of checks bound to one dataset and the
// report of the latest run. It is not safe for concurrent mutation; a run
// is a plain sequential loop.
type Validator struct {
	ds     dataset.Dataset
	logger *slog.Logger
	queue  []checks.Check
	report *Report
	err    error
}

// New binds a validator to a dataset. A nil logger disables logging.
func New(ds dataset.Dataset, logger *slog.Logger) *Validator {
	if logger == nil {
		// noop logger by default
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	return &Validator{
		ds:     ds,
		logger: logger,
		report: newReport(uuid.NewString()),
	}
}

// AddValidation queues an externally authored check. Any value satisfying
// checks.Check is accepted; this is the extension point for custom rules.
func (v *Validator) AddValidation(c checks.Check) *Validator {
	v.queue = append(v.queue, c)
	return v
}

// addConstructed queues a catalogue check built by a fluent builder call.
// A construction error is recorded immediately and fails the next Run
// before any check evaluates.
func (v *Validator) addConstructed(c checks.Check, err error) *Validator {
	if err != nil {
		v.logger.Error("check construction failed", "error", err.Error())
		if v.err == nil {
			v.err = err
		}
		return v
	}
	return v.AddValidation(c)
}

// Err returns the first construction error produced by builder calls, if
// any.
func (v *Validator) Err() error {
	return v.err
}

// GetReport returns the accumulated report. During a run it exposes the
// records stored so far.
func (v *Validator) GetReport() *Report {
	return v.report
}

// Run executes every queued check in insertion order against the dataset
// and rebuilds the report from scratch. An unexpected check error aborts
// the run immediately with an EvaluationError; results of checks that
// already ran stay visible through GetReport. With RaiseOnHighImpact set,
// a PolicyFailure enumerating every failing high-impact check is returned
// after all checks ran.
func (v *Validator) Run(opts RunOptions) error {
	if v.err != nil {
		return v.err
	}
	if len(v.queue) == 0 {
		return ErrNoChecks
	}

	v.report = newReport(uuid.NewString())

	for _, c := range v.queue {
		key := fmt.Sprintf("%s_%s", c.Name(), c.Column())

		v.logger.Debug("running validation", "validation", key)
		startTime := time.Now()
		rec, err := evaluateCheck(c, v.ds, time.Now().UTC())
		if err != nil {
			return err
		}
		elapsed := time.Since(startTime).Milliseconds()
		v.logger.Debug("validation completed", "validation", key, "duration_ms", elapsed)

		v.report.add(key, rec)
		v.logOutcome(key, rec)
	}

	v.report.finalize()

	if opts.RaiseOnHighImpact {
		if failure := v.highImpactFailure(opts.ReportInError); failure != nil {
			return failure
		}
	}
	return nil
}

// Validate is the convenience entrypoint matching the common batch usage:
// run everything and escalate high-impact failures.
func (v *Validator) Validate() error {
	return v.Run(RunOptions{RaiseOnHighImpact: true})
}

func (v *Validator) logOutcome(key string, rec ResultRecord) {
	if rec.Result.ThresholdPass {
		v.logger.Debug("passed validation", "validation", key)
		return
	}

	switch rec.Impact {
	case checks.ImpactHigh:
		v.logger.Error("failed validation", "validation", key, "impact", rec.Impact, "message", rec.Result.Message)
	default:
		v.logger.Warn("failed validation", "validation", key, "impact", rec.Impact, "message", rec.Result.Message)
	}
}

func (v *Validator) highImpactFailure(includeReport bool) *PolicyFailure {
	var failures []FailedValidation
	for _, key := range v.report.Keys() {
		rec, _ := v.report.Get(key)
		if rec.Impact == checks.ImpactHigh && !rec.Result.ThresholdPass {
			failures = append(failures, FailedValidation{
				Key:     key,
				Column:  rec.Column,
				Message: rec.Result.Message,
			})
		}
	}
	if len(failures) == 0 {
		return nil
	}

	failure := &PolicyFailure{Failures: failures}
	if includeReport {
		if data, err := json.Marshal(v.report); err == nil {
			failure.ReportJSON = string(data)
		}
	}
	return failure
}
