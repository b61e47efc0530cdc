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

	"github.com/framecheck/framecheck/dataset"
)

// PairColumnEquality checks that two columns hold equal values row by row.
// Numeric cells compare by value, so an integer column can match a float
// one. The report identifier is the compound "column - target" pair.
type PairColumnEquality struct {
	baseCheck
	sourceColumn string
	targetColumn string
}

func NewPairColumnEquality(column, targetColumn string, opts Options) (*PairColumnEquality, error) {
	if column == "" || targetColumn == "" {
		return nil, &ConstructionError{Validation: "PairColumnEquality", Reason: "both column and target_column are required"}
	}

	return &PairColumnEquality{
		baseCheck:    newBase(compoundColumn([]string{column, targetColumn}), opts),
		sourceColumn: column,
		targetColumn: targetColumn,
	}, nil
}

func (c *PairColumnEquality) Name() string { return "PairColumnEquality" }

func (c *PairColumnEquality) FailMessage() string {
	return fmt.Sprintf("The columns '%s' and '%s' contain entries that are not equal.",
		c.sourceColumn, c.targetColumn)
}

func (c *PairColumnEquality) Evaluate(ds dataset.Dataset) ([]FailingGroup, error) {
	source, err := ds.Column(c.sourceColumn)
	if err != nil {
		return nil, err
	}
	target, err := ds.Column(c.targetColumn)
	if err != nil {
		return nil, err
	}

	var failingPairs []any
	for i := range source {
		if equalValues(source[i], target[i]) {
			continue
		}
		sv, _ := asString(source[i])
		tv, _ := asString(target[i])
		failingPairs = append(failingPairs, sv+" - "+tv)
	}

	return groupAll(failingPairs), nil
}
