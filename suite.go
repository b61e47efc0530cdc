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
	"fmt"
	"log/slog"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/framecheck/framecheck/checks"
	"github.com/framecheck/framecheck/dataset"
)

// SuiteFileConfig is a YAML-defined collection of validation suites:
//
//	version: "1"
//	suites:
//	  - name: users
//	    checks:
//	      - column_values_to_be_between:
//	          column: age
//	          min_value: 18
//	          max_value: 100
//	          threshold: 0.1
//	          impact: medium
//	      - column_not_be_null:
//	          column: email
//	          impact: high
type SuiteFileConfig struct {
	Version string        `yaml:"version"`
	Suites  []SuiteConfig `yaml:"suites"`
}

// SuiteConfig is one named set of checks targeting one dataset.
type SuiteConfig struct {
	Name   string        `yaml:"name"`
	Checks []CheckConfig `yaml:"checks"`
}

// CheckConfig is a single check entry in keyed-map form: the mapping key is
// the snake_case check type, the value holds its parameters. Parameter
// decoding is deferred to Build so every type gets its own typed struct.
type CheckConfig struct {
	Type   string
	params *yaml.Node
}

func (c *CheckConfig) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode || len(node.Content) < 2 {
		return fmt.Errorf("check entry must be a single-key mapping of check type to parameters")
	}

	c.Type = node.Content[0].Value
	c.params = node.Content[1]
	return nil
}

// LoadSuiteFile reads and parses a suite definition file.
func LoadSuiteFile(fileName string) (*SuiteFileConfig, error) {
	file, err := os.Open(fileName)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	var cfg SuiteFileConfig
	decoder := yaml.NewDecoder(file)
	if err := decoder.Decode(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Build constructs a ready-to-run validator from the suite definition.
// Unknown check types and invalid parameters fail here, before anything
// evaluates.
func (s *SuiteConfig) Build(ds dataset.Dataset, logger *slog.Logger) (*Validator, error) {
	v := New(ds, logger)
	for i, cc := range s.Checks {
		factory, ok := checkFactories[cc.Type]
		if !ok {
			return nil, &checks.ConstructionError{Validation: cc.Type, Reason: "unknown check type"}
		}
		if cc.params == nil {
			return nil, &checks.ConstructionError{Validation: cc.Type, Reason: "missing parameters"}
		}

		chk, err := factory(cc.params)
		if err != nil {
			return nil, fmt.Errorf("suite %q check %d (%s): %w", s.Name, i, cc.Type, err)
		}
		v.AddValidation(chk)
	}
	return v, nil
}

// commonParams are the tolerance fields every catalogue check accepts.
type commonParams struct {
	Threshold float64 `yaml:"threshold"`
	Impact    string  `yaml:"impact"`
}

func (p commonParams) options() (checks.Options, error) {
	impact, err := checks.ParseImpact(p.Impact)
	if err != nil {
		return checks.Options{}, err
	}
	return checks.Options{Threshold: p.Threshold, Impact: impact}, nil
}

type checkFactory func(node *yaml.Node) (checks.Check, error)

var checkFactories = map[string]checkFactory{
	// values
	"column_values_to_be_between": func(node *yaml.Node) (checks.Check, error) {
		var p struct {
			Column   string       `yaml:"column"`
			MinValue *float64     `yaml:"min_value"`
			MaxValue *float64     `yaml:"max_value"`
			Common   commonParams `yaml:",inline"`
		}
		if err := node.Decode(&p); err != nil {
			return nil, err
		}
		opts, err := p.Common.options()
		if err != nil {
			return nil, err
		}
		return checks.NewColumnValuesToBeBetween(p.Column, p.MinValue, p.MaxValue, opts)
	},
	"columns_sum_to_be_between": func(node *yaml.Node) (checks.Check, error) {
		var p struct {
			Columns  []string     `yaml:"columns"`
			MinValue *float64     `yaml:"min_value"`
			MaxValue *float64     `yaml:"max_value"`
			Common   commonParams `yaml:",inline"`
		}
		if err := node.Decode(&p); err != nil {
			return nil, err
		}
		opts, err := p.Common.options()
		if err != nil {
			return nil, err
		}
		return checks.NewColumnsSumToBeBetween(p.Columns, p.MinValue, p.MaxValue, opts)
	},
	"columns_sum_to_be_equal_to": func(node *yaml.Node) (checks.Check, error) {
		var p struct {
			Columns []string     `yaml:"columns"`
			Sum     float64      `yaml:"sum"`
			Common  commonParams `yaml:",inline"`
		}
		if err := node.Decode(&p); err != nil {
			return nil, err
		}
		opts, err := p.Common.options()
		if err != nil {
			return nil, err
		}
		return checks.NewColumnsSumToBeEqualTo(p.Columns, p.Sum, opts)
	},
	"columns_sum_to_be_greater_or_equal_to": func(node *yaml.Node) (checks.Check, error) {
		var p struct {
			Columns []string     `yaml:"columns"`
			Sum     float64      `yaml:"sum"`
			Common  commonParams `yaml:",inline"`
		}
		if err := node.Decode(&p); err != nil {
			return nil, err
		}
		opts, err := p.Common.options()
		if err != nil {
			return nil, err
		}
		return checks.NewColumnsSumToBeGreaterOrEqualTo(p.Columns, p.Sum, opts)
	},
	"columns_sum_to_be_less_or_equal_to": func(node *yaml.Node) (checks.Check, error) {
		var p struct {
			Columns []string     `yaml:"columns"`
			Sum     float64      `yaml:"sum"`
			Common  commonParams `yaml:",inline"`
		}
		if err := node.Decode(&p); err != nil {
			return nil, err
		}
		opts, err := p.Common.options()
		if err != nil {
			return nil, err
		}
		return checks.NewColumnsSumToBeLessOrEqualTo(p.Columns, p.Sum, opts)
	},

	// strings
	"pattern_match": func(node *yaml.Node) (checks.Check, error) {
		var p struct {
			Column  string       `yaml:"column"`
			Pattern string       `yaml:"pattern"`
			Common  commonParams `yaml:",inline"`
		}
		if err := node.Decode(&p); err != nil {
			return nil, err
		}
		opts, err := p.Common.options()
		if err != nil {
			return nil, err
		}
		return checks.NewPatternMatch(p.Column, p.Pattern, opts)
	},
	"not_pattern_match": func(node *yaml.Node) (checks.Check, error) {
		var p struct {
			Column  string       `yaml:"column"`
			Pattern string       `yaml:"pattern"`
			Common  commonParams `yaml:",inline"`
		}
		if err := node.Decode(&p); err != nil {
			return nil, err
		}
		opts, err := p.Common.options()
		if err != nil {
			return nil, err
		}
		return checks.NewNotPatternMatch(p.Column, p.Pattern, opts)
	},
	"length_to_be_between": func(node *yaml.Node) (checks.Check, error) {
		var p struct {
			Column    string       `yaml:"column"`
			MinLength *int         `yaml:"min_length"`
			MaxLength *int         `yaml:"max_length"`
			Common    commonParams `yaml:",inline"`
		}
		if err := node.Decode(&p); err != nil {
			return nil, err
		}
		opts, err := p.Common.options()
		if err != nil {
			return nil, err
		}
		return checks.NewLengthToBeBetween(p.Column, p.MinLength, p.MaxLength, opts)
	},
	"length_to_be_equal_to": func(node *yaml.Node) (checks.Check, error) {
		var p struct {
			Column string       `yaml:"column"`
			Length int          `yaml:"length"`
			Common commonParams `yaml:",inline"`
		}
		if err := node.Decode(&p); err != nil {
			return nil, err
		}
		opts, err := p.Common.options()
		if err != nil {
			return nil, err
		}
		return checks.NewLengthToBeEqualTo(p.Column, p.Length, opts)
	},
	"length_to_be_greater_or_equal_to": func(node *yaml.Node) (checks.Check, error) {
		var p struct {
			Column string       `yaml:"column"`
			Length int          `yaml:"length"`
			Common commonParams `yaml:",inline"`
		}
		if err := node.Decode(&p); err != nil {
			return nil, err
		}
		opts, err := p.Common.options()
		if err != nil {
			return nil, err
		}
		return checks.NewLengthToBeGreaterOrEqualTo(p.Column, p.Length, opts)
	},
	"length_to_be_less_or_equal_to": func(node *yaml.Node) (checks.Check, error) {
		var p struct {
			Column string       `yaml:"column"`
			Length int          `yaml:"length"`
			Common commonParams `yaml:",inline"`
		}
		if err := node.Decode(&p); err != nil {
			return nil, err
		}
		opts, err := p.Common.options()
		if err != nil {
			return nil, err
		}
		return checks.NewLengthToBeLessOrEqualTo(p.Column, p.Length, opts)
	},

	// nulls
	"column_not_be_null": func(node *yaml.Node) (checks.Check, error) {
		var p struct {
			Column string       `yaml:"column"`
			Common commonParams `yaml:",inline"`
		}
		if err := node.Decode(&p); err != nil {
			return nil, err
		}
		opts, err := p.Common.options()
		if err != nil {
			return nil, err
		}
		return checks.NewColumnNotBeNull(p.Column, opts)
	},
	"column_be_null": func(node *yaml.Node) (checks.Check, error) {
		var p struct {
			Column string       `yaml:"column"`
			Common commonParams `yaml:",inline"`
		}
		if err := node.Decode(&p); err != nil {
			return nil, err
		}
		opts, err := p.Common.options()
		if err != nil {
			return nil, err
		}
		return checks.NewColumnBeNull(p.Column, opts)
	},

	// dates
	"column_match_date_format": func(node *yaml.Node) (checks.Check, error) {
		var p struct {
			Column string       `yaml:"column"`
			Format string       `yaml:"format"`
			Common commonParams `yaml:",inline"`
		}
		if err := node.Decode(&p); err != nil {
			return nil, err
		}
		opts, err := p.Common.options()
		if err != nil {
			return nil, err
		}
		return checks.NewColumnMatchDateFormat(p.Column, p.Format, opts)
	},
	"date_to_be_between": func(node *yaml.Node) (checks.Check, error) {
		var p struct {
			Column  string       `yaml:"column"`
			MinDate *time.Time   `yaml:"min_date"`
			MaxDate *time.Time   `yaml:"max_date"`
			Common  commonParams `yaml:",inline"`
		}
		if err := node.Decode(&p); err != nil {
			return nil, err
		}
		opts, err := p.Common.options()
		if err != nil {
			return nil, err
		}
		return checks.NewDateToBeBetween(p.Column, p.MinDate, p.MaxDate, opts)
	},

	// equality
	"pair_column_equality": func(node *yaml.Node) (checks.Check, error) {
		var p struct {
			Column       string       `yaml:"column"`
			TargetColumn string       `yaml:"target_column"`
			Common       commonParams `yaml:",inline"`
		}
		if err := node.Decode(&p); err != nil {
			return nil, err
		}
		opts, err := p.Common.options()
		if err != nil {
			return nil, err
		}
		return checks.NewPairColumnEquality(p.Column, p.TargetColumn, opts)
	},

	// types
	"type_check": func(node *yaml.Node) (checks.Check, error) {
		var p struct {
			Column string       `yaml:"column"`
			Type   string       `yaml:"type"`
			Common commonParams `yaml:",inline"`
		}
		if err := node.Decode(&p); err != nil {
			return nil, err
		}
		opts, err := p.Common.options()
		if err != nil {
			return nil, err
		}
		return checks.NewTypeCheck(p.Column, checks.ColumnType(p.Type), opts)
	},

	// unique
	"column_unique_pair": func(node *yaml.Node) (checks.Check, error) {
		var p struct {
			Columns []string     `yaml:"columns"`
			Common  commonParams `yaml:",inline"`
		}
		if err := node.Decode(&p); err != nil {
			return nil, err
		}
		opts, err := p.Common.options()
		if err != nil {
			return nil, err
		}
		return checks.NewColumnUniquePair(p.Columns, opts)
	},
	"column_unique_value_count_to_be_between": func(node *yaml.Node) (checks.Check, error) {
		var p struct {
			Column   string       `yaml:"column"`
			MinCount *int         `yaml:"min_count"`
			MaxCount *int         `yaml:"max_count"`
			Common   commonParams `yaml:",inline"`
		}
		if err := node.Decode(&p); err != nil {
			return nil, err
		}
		opts, err := p.Common.options()
		if err != nil {
			return nil, err
		}
		return checks.NewColumnUniqueValueCountToBeBetween(p.Column, p.MinCount, p.MaxCount, opts)
	},
	"column_unique_values_to_be_in_list": func(node *yaml.Node) (checks.Check, error) {
		var p struct {
			Column string       `yaml:"column"`
			Values []any        `yaml:"values"`
			Common commonParams `yaml:",inline"`
		}
		if err := node.Decode(&p); err != nil {
			return nil, err
		}
		opts, err := p.Common.options()
		if err != nil {
			return nil, err
		}
		return checks.NewColumnUniqueValuesToBeInList(p.Column, p.Values, opts)
	},
}
