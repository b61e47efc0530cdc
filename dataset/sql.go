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
	"database/sql"
	"fmt"
)

// FromSQL runs the query and materializes the full result set into a Frame.
// The query defines the dataset snapshot; validation never goes back to the
// database afterwards.
func FromSQL(ctx context.Context, db *sql.DB, query string) (*Frame, error) {
	rows, err := db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to execute dataset query: %w", err)
	}
	defer rows.Close()

	return FromSQLRows(rows)
}

// FromSQLRows materializes an already-open database/sql result set into a
// Frame. The caller keeps ownership of the rows handle.
func FromSQLRows(rows *sql.Rows) (*Frame, error) {
	columnNames, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("failed to read result columns: %w", err)
	}

	var records []map[string]any
	for rows.Next() {
		dest := make([]any, len(columnNames))
		for i := range dest {
			dest[i] = new(any)
		}
		if err := rows.Scan(dest...); err != nil {
			return nil, fmt.Errorf("failed to scan row %d: %w", len(records), err)
		}

		record := make(map[string]any, len(columnNames))
		for i, name := range columnNames {
			record[name] = normalizeSQLValue(*dest[i].(*any))
		}
		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate result set: %w", err)
	}

	return FromRecords(columnNames, records)
}

// normalizeSQLValue converts driver byte slices to strings so checks can
// compare and group values without caring which driver produced them.
func normalizeSQLValue(v any) any {
	if b, ok := v.([]byte); ok {
		return string(b)
	}
	return v
}
