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
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/framecheck/framecheck/checks"
	"github.com/framecheck/framecheck/dataset"
)

func usersFrame(t *testing.T) *dataset.Frame {
	t.Helper()
	frame, err := dataset.NewFrame(map[string][]any{
		"age":   {25, 30, 15, 40, 45},
		"email": {"a@x.io", "b@x.io", "not-an-email", "d@x.io", "e@x.io"},
	})
	require.NoError(t, err)
	return frame
}

func TestRunRecordsFailuresWithoutRaising(t *testing.T) {
	v := New(usersFrame(t), nil)
	v.Values().ColumnValuesToBeBetween("age", checks.Ptr(18.0), checks.Ptr(100.0), checks.Options{}).
		Nulls().ColumnNotBeNull("email", checks.Options{})

	err := v.Run(RunOptions{})
	require.NoError(t, err)

	report := v.GetReport()
	require.False(t, report.Passed())
	require.Equal(t, []string{"ColumnValuesToBeBetween_age", "ColumnNotBeNull_email"}, report.Keys())

	summary := report.Summary()
	require.False(t, summary.Passed)
	require.Equal(t, []string{"ColumnValuesToBeBetween_age"}, summary.FailedValidations)
	require.NotEmpty(t, summary.RunID)
}

func TestRunRaisesOnHighImpactFailure(t *testing.T) {
	v := New(usersFrame(t), nil)
	v.Strings().PatternMatch("email", `^[^@\s]+@[^@\s]+$`, checks.Options{Impact: checks.ImpactHigh})

	err := v.Run(RunOptions{RaiseOnHighImpact: true})
	require.Error(t, err)

	var pf *PolicyFailure
	require.ErrorAs(t, err, &pf)
	require.Len(t, pf.Failures, 1)
	require.Equal(t, "PatternMatch_email", pf.Failures[0].Key)
	require.Contains(t, err.Error(), "PatternMatch_email")
}

func TestRunEnumeratesEveryHighImpactFailure(t *testing.T) {
	v := New(usersFrame(t), nil)
	v.Strings().PatternMatch("email", `^[^@\s]+@[^@\s]+$`, checks.Options{Impact: checks.ImpactHigh}).
		Values().ColumnValuesToBeBetween("age", checks.Ptr(18.0), checks.Ptr(100.0), checks.Options{Impact: checks.ImpactHigh})

	err := v.Run(RunOptions{RaiseOnHighImpact: true})

	var pf *PolicyFailure
	require.ErrorAs(t, err, &pf)
	require.Len(t, pf.Failures, 2)
}

func TestRunLowImpactFailureDoesNotRaise(t *testing.T) {
	v := New(usersFrame(t), nil)
	v.Values().ColumnValuesToBeBetween("age", checks.Ptr(18.0), checks.Ptr(100.0), checks.Options{}).
		Nulls().ColumnNotBeNull("email", checks.Options{})

	err := v.Run(RunOptions{RaiseOnHighImpact: true})
	require.NoError(t, err)
	require.False(t, v.GetReport().Passed())
}

func TestRunEmbedsReportInPolicyFailure(t *testing.T) {
	v := New(usersFrame(t), nil)
	v.Strings().PatternMatch("email", `^[^@\s]+@[^@\s]+$`, checks.Options{Impact: checks.ImpactHigh})

	err := v.Run(RunOptions{RaiseOnHighImpact: true, ReportInError: true})

	var pf *PolicyFailure
	require.ErrorAs(t, err, &pf)
	require.NotEmpty(t, pf.ReportJSON)

	var decoded map[string]json.RawMessage
	require.NoError(t, json.Unmarshal([]byte(pf.ReportJSON), &decoded))
	require.Contains(t, decoded, "Summary")
	require.Contains(t, decoded, "PatternMatch_email")
}

func TestRunIsIdempotent(t *testing.T) {
	v := New(usersFrame(t), nil)
	v.Values().ColumnValuesToBeBetween("age", checks.Ptr(18.0), checks.Ptr(100.0), checks.Options{})

	require.NoError(t, v.Run(RunOptions{}))
	first, ok := v.GetReport().Get("ColumnValuesToBeBetween_age")
	require.True(t, ok)

	require.NoError(t, v.Run(RunOptions{}))
	second, ok := v.GetReport().Get("ColumnValuesToBeBetween_age")
	require.True(t, ok)

	first.Timestamp = ""
	second.Timestamp = ""
	require.Equal(t, first, second)
}

func TestRunKeyCollisionLastWriteWins(t *testing.T) {
	v := New(usersFrame(t), nil)
	// same derived key, different thresholds: first fails, second passes
	v.Values().ColumnValuesToBeBetween("age", checks.Ptr(18.0), checks.Ptr(100.0), checks.Options{}).
		Values().ColumnValuesToBeBetween("age", checks.Ptr(18.0), checks.Ptr(100.0), checks.Options{Threshold: 0.5})

	require.NoError(t, v.Run(RunOptions{}))

	report := v.GetReport()
	rec, ok := report.Get("ColumnValuesToBeBetween_age")
	require.True(t, ok)
	require.Equal(t, StatusSuccess, rec.Result.Status)

	// both executions appear in the summary list, the record key only once
	require.Len(t, report.Summary().Validations, 2)
	require.Len(t, report.Keys(), 1)
}

func TestRunEmptyQueue(t *testing.T) {
	v := New(usersFrame(t), nil)
	require.ErrorIs(t, v.Run(RunOptions{}), ErrNoChecks)
}

func TestBuilderConstructionErrorFailsFast(t *testing.T) {
	v := New(usersFrame(t), nil)
	v.Strings().PatternMatch("email", `([`, checks.Options{})

	require.Error(t, v.Err())

	var ce *checks.ConstructionError
	require.ErrorAs(t, v.Err(), &ce)
	require.Equal(t, "PatternMatch", ce.Validation)

	// the run refuses to start
	require.ErrorAs(t, v.Run(RunOptions{}), &ce)
}

func TestRunAbortsOnEvaluationError(t *testing.T) {
	v := New(usersFrame(t), nil)
	v.Nulls().ColumnNotBeNull("missing", checks.Options{}).
		Nulls().ColumnNotBeNull("email", checks.Options{})

	err := v.Run(RunOptions{})

	var ee *EvaluationError
	require.ErrorAs(t, err, &ee)

	// nothing after the failing check ran
	_, ok := v.GetReport().Get("ColumnNotBeNull_email")
	require.False(t, ok)
}

// rowCountCheck is a minimal custom rule exercising the AddValidation
// extension point.
type rowCountCheck struct {
	maxRows int
}

func (c rowCountCheck) Name() string          { return "RowCountBelow" }
func (c rowCountCheck) Column() string        { return "*" }
func (c rowCountCheck) Impact() checks.Impact { return checks.ImpactMedium }
func (c rowCountCheck) Threshold() float64    { return 0 }
func (c rowCountCheck) FailMessage() string   { return "The dataset has too many rows." }

func (c rowCountCheck) Evaluate(ds dataset.Dataset) ([]checks.FailingGroup, error) {
	if ds.RowCount() <= c.maxRows {
		return nil, nil
	}
	return []checks.FailingGroup{{Value: "row_count", Count: ds.RowCount()}}, nil
}

func TestAddValidationCustomCheck(t *testing.T) {
	v := New(usersFrame(t), nil)
	v.AddValidation(rowCountCheck{maxRows: 3})

	require.NoError(t, v.Run(RunOptions{RaiseOnHighImpact: true}))

	rec, ok := v.GetReport().Get("RowCountBelow_*")
	require.True(t, ok)
	require.Equal(t, StatusFail, rec.Result.Status)
	require.Equal(t, checks.ImpactMedium, rec.Impact)
}
