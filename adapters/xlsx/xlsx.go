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

// Package xlsx loads an Excel worksheet into a datatable.
package xlsx

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/magpierre/fyne-keyedtable/adapters"
	"github.com/magpierre/fyne-keyedtable/datatable"
)

// ErrNoSheet is returned when the workbook has no sheet of the requested name.
var ErrNoSheet = errors.New("sheet not found")

// Config selects the sheet and row identity.
type Config struct {
	// Sheet names the worksheet. Empty selects the first sheet.
	Sheet string

	// HasHeaders reads column keys from the first row. Otherwise columns are
	// keyed by their letters.
	HasHeaders bool

	// RowIDKey names the field holding the row identity. Empty selects the
	// record index.
	RowIDKey string
}

// DefaultConfig reads the first sheet with a header row.
func DefaultConfig() Config {
	return Config{HasHeaders: true}
}

// NewFromReader reads a workbook.
func NewFromReader(r io.Reader, cfg Config) (*adapters.Dataset, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()

	sheet := cfg.Sheet
	if sheet == "" {
		sheet = f.GetSheetName(0)
	}
	if idx, err := f.GetSheetIndex(sheet); err != nil || idx < 0 {
		return nil, fmt.Errorf("%w: %q", ErrNoSheet, sheet)
	}

	records, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q: %w", sheet, err)
	}

	var keys []string
	if cfg.HasHeaders && len(records) > 0 {
		keys, records = headerKeys(records[0]), records[1:]
	}
	for _, rec := range records {
		for len(keys) < len(rec) {
			name, err := excelize.ColumnNumberToName(len(keys) + 1)
			if err != nil {
				return nil, err
			}
			keys = append(keys, name)
		}
	}

	rows := make([]datatable.Row, 0, len(records))
	for _, rec := range records {
		if blank(rec) {
			continue
		}
		row := make(datatable.Row, len(keys))
		for i, v := range rec {
			if v != "" {
				row[keys[i]] = v
			}
		}
		rows = append(rows, row)
	}

	d, err := adapters.NewDataset(adapters.ColumnsFromKeys(keys), rows, cfg.RowIDKey)
	if err != nil {
		return nil, err
	}
	d.Metadata["format"] = "xlsx"
	d.Metadata["sheet"] = sheet
	return d, nil
}

// headerKeys trims the header cells; empty cells take their column letters.
func headerKeys(header []string) []string {
	keys := make([]string, len(header))
	for i, h := range header {
		h = strings.TrimSpace(h)
		if h == "" {
			h, _ = excelize.ColumnNumberToName(i + 1)
		}
		keys[i] = h
	}
	return keys
}

func blank(rec []string) bool {
	for _, v := range rec {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}
