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
	"github.com/framecheck/framecheck/dataset"
)

// maxFailingItems bounds the diagnostic sample included in a failing
// record.
const maxFailingItems = 100

// evaluateCheck runs one check against the dataset and renders its result
// record. Threshold comparison is boundary inclusive: a failure ratio
// exactly equal to the threshold still passes. Zero failing rows always
// pass, including on an empty dataset.
func evaluateCheck(c checks.Check, ds dataset.Dataset, ts time.Time) (ResultRecord, error) {
	groups, err := c.Evaluate(ds)
	if err != nil {
		return ResultRecord{}, &EvaluationError{Validation: c.Name(), Column: c.Column(), Err: err}
	}

	failedCount := 0
	for _, g := range groups {
		failedCount += g.Count
	}

	frameRowCount := ds.RowCount()
	failedPercentage := 0.0
	if frameRowCount > 0 {
		failedPercentage = float64(failedCount) / float64(frameRowCount)
	}

	thresholdPass := failedCount == 0 || failedPercentage <= c.Threshold()

	rec := ResultRecord{
		Validation: c.Name(),
		Impact:     c.Impact(),
		Timestamp:  ts.Format(time.RFC3339),
		Column:     c.Column(),
		Result: Result{
			ThresholdPass: thresholdPass,
			FrameRowCount: frameRowCount,
			Threshold:     c.Threshold(),
		},
	}

	if thresholdPass {
		rec.Result.Status = StatusSuccess
		rec.Result.Message = "All items passed the validation."
		return rec, nil
	}

	rec.Result.Status = StatusFail
	rec.Result.Message = c.FailMessage()
	rec.Result.FailedCount = &failedCount
	rec.Result.FailedPercentage = &failedPercentage
	rec.Result.FailingItems = sampleFailingItems(groups)
	return rec, nil
}

func sampleFailingItems(groups []checks.FailingGroup) []any {
	n := len(groups)
	if n > maxFailingItems {
		n = maxFailingItems
	}

	items := make([]any, n)
	for i := 0; i < n; i++ {
		items[i] = groups[i].Value
	}
	return items
}
