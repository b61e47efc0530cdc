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

package dataset

import (
	"context"
	"fmt"
	"reflect"

	"github.com/ClickHouse/clickhouse-go/v2/lib/driver"
)

// FromClickHouse runs the query over a native ClickHouse connection and
// materializes the result set into a Frame. Scan destinations are derived
// from the reported column types, so any scannable ClickHouse type works.
func FromClickHouse(ctx context.Context, cnn driver.Conn, query string) (*Frame, error) {
	rows, err := cnn.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to execute dataset query: %w", err)
	}
	defer rows.Close()

	columnTypes := rows.ColumnTypes()
	columnNames := rows.Columns()

	var records []map[string]any
	for rows.Next() {
		dest := make([]any, len(columnTypes))
		for i, ct := range columnTypes {
			dest[i] = reflect.New(ct.ScanType()).Interface()
		}
		if err := rows.Scan(dest...); err != nil {
			return nil, fmt.Errorf("failed to scan row %d: %w", len(records), err)
		}

		record := make(map[string]any, len(columnNames))
		for i, name := range columnNames {
			record[name] = derefClickhouseValue(dest[i])
		}
		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate result set: %w", err)
	}

	return FromRecords(columnNames, records)
}

// derefClickhouseValue unwraps the pointer scan destination. Nullable
// columns scan into a double pointer whose nil inner pointer maps to a nil
// cell.
func derefClickhouseValue(dest any) any {
	v := reflect.ValueOf(dest).Elem()
	if v.Kind() == reflect.Ptr {
		if v.IsNil() {
			return nil
		}
		v = v.Elem()
	}
	return v.Interface()
}
