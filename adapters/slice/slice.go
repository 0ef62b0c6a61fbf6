// Copyright 2025 Magnus Pierre
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package slice loads in-memory records and JSON documents into a datatable.
package slice

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"sort"

	"github.com/magpierre/fyne-keyedtable/adapters"
	"github.com/magpierre/fyne-keyedtable/datatable"
)

// ErrEmpty is returned for JSON input without records.
var ErrEmpty = errors.New("no records")

// Config controls column selection and row identity.
type Config struct {
	// Columns fixes the column order and labels. When empty, columns are the
	// union of the record keys in first-seen order, each record's keys
	// taken in sorted order.
	Columns []datatable.Column

	// RowIDKey names the field holding the row identity. Empty selects the
	// record index.
	RowIDKey string
}

// NewFromMaps builds a dataset from records. The records are copied.
func NewFromMaps(data []map[string]interface{}, cfg Config) (*adapters.Dataset, error) {
	rows := make([]datatable.Row, len(data))
	for i, rec := range data {
		row := make(datatable.Row, len(rec))
		for k, v := range rec {
			row[k] = v
		}
		rows[i] = row
	}

	columns := cfg.Columns
	if len(columns) == 0 {
		columns = adapters.ColumnsFromKeys(inferKeys(data))
	}
	return adapters.NewDataset(columns, rows, cfg.RowIDKey)
}

// NewFromJSON reads a JSON array of objects. A single object is read as one
// record.
func NewFromJSON(r io.Reader, cfg Config) (*adapters.Dataset, error) {
	content, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read JSON: %w", err)
	}

	var data []map[string]interface{}
	if err := json.Unmarshal(content, &data); err != nil {
		var single map[string]interface{}
		if err := json.Unmarshal(content, &single); err != nil {
			return nil, fmt.Errorf("failed to parse JSON: %w", err)
		}
		data = []map[string]interface{}{single}
	}
	if len(data) == 0 {
		return nil, ErrEmpty
	}

	d, err := NewFromMaps(data, cfg)
	if err != nil {
		return nil, err
	}
	d.Metadata["format"] = "json"
	return d, nil
}

func inferKeys(data []map[string]interface{}) []string {
	seen := make(map[string]bool)
	var keys []string
	for _, rec := range data {
		recKeys := make([]string, 0, len(rec))
		for k := range rec {
			if !seen[k] {
				recKeys = append(recKeys, k)
			}
		}
		sort.Strings(recKeys)
		for _, k := range recKeys {
			seen[k] = true
			keys = append(keys, k)
		}
	}
	return keys
}
