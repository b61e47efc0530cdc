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
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/framecheck/framecheck/checks"
)

const usersSuiteYAML = `
version: "1"
suites:
  - name: users
    checks:
      - column_values_to_be_between:
          column: age
          min_value: 18
          max_value: 100
          threshold: 0.2
          impact: medium
      - pattern_match:
          column: email
          pattern: "^[^@]+@[^@]+$"
          impact: high
      - column_not_be_null:
          column: email
`

func writeSuiteFile(t *testing.T, content string) string {
	t.Helper()
	fileName := filepath.Join(t.TempDir(), "checks.yaml")
	require.NoError(t, os.WriteFile(fileName, []byte(content), 0o644))
	return fileName
}

func TestLoadSuiteFile(t *testing.T) {
	cfg, err := LoadSuiteFile(writeSuiteFile(t, usersSuiteYAML))
	require.NoError(t, err)

	require.Equal(t, "1", cfg.Version)
	require.Len(t, cfg.Suites, 1)

	suite := cfg.Suites[0]
	require.Equal(t, "users", suite.Name)
	require.Len(t, suite.Checks, 3)
	require.Equal(t, "column_values_to_be_between", suite.Checks[0].Type)
	require.Equal(t, "pattern_match", suite.Checks[1].Type)
	require.Equal(t, "column_not_be_null", suite.Checks[2].Type)
}

func TestSuiteBuildAndRun(t *testing.T) {
	cfg, err := LoadSuiteFile(writeSuiteFile(t, usersSuiteYAML))
	require.NoError(t, err)

	v, err := cfg.Suites[0].Build(usersFrame(t), nil)
	require.NoError(t, err)

	runErr := v.Run(RunOptions{RaiseOnHighImpact: true})

	// the malformed email fails the high-impact pattern check
	var pf *PolicyFailure
	require.ErrorAs(t, runErr, &pf)
	require.Equal(t, "PatternMatch_email", pf.Failures[0].Key)

	// the between check tolerates 1/5 via its 0.2 threshold
	rec, ok := v.GetReport().Get("ColumnValuesToBeBetween_age")
	require.True(t, ok)
	require.True(t, rec.Result.ThresholdPass)
	require.Equal(t, checks.ImpactMedium, rec.Impact)
}

func TestSuiteBuildUnknownCheckType(t *testing.T) {
	cfg, err := LoadSuiteFile(writeSuiteFile(t, `
version: "1"
suites:
  - name: users
    checks:
      - no_such_check:
          column: age
`))
	require.NoError(t, err)

	_, buildErr := cfg.Suites[0].Build(usersFrame(t), nil)

	var ce *checks.ConstructionError
	require.ErrorAs(t, buildErr, &ce)
	require.Equal(t, "no_such_check", ce.Validation)
}

func TestSuiteBuildInvalidParams(t *testing.T) {
	cfg, err := LoadSuiteFile(writeSuiteFile(t, `
version: "1"
suites:
  - name: users
    checks:
      - pattern_match:
          column: email
          pattern: "(["
`))
	require.NoError(t, err)

	_, buildErr := cfg.Suites[0].Build(usersFrame(t), nil)

	var ce *checks.ConstructionError
	require.ErrorAs(t, buildErr, &ce)
}

func TestSuiteBuildInvalidImpact(t *testing.T) {
	cfg, err := LoadSuiteFile(writeSuiteFile(t, `
version: "1"
suites:
  - name: users
    checks:
      - column_not_be_null:
          column: email
          impact: catastrophic
`))
	require.NoError(t, err)

	_, buildErr := cfg.Suites[0].Build(usersFrame(t), nil)
	require.Error(t, buildErr)
	require.Contains(t, buildErr.Error(), "catastrophic")
}
