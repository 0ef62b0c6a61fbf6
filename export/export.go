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

// Package export writes the displayed projection of a table. Column keys are
// used as field names and every value is the cell's display text, so an
// export reads back through the adapters with the same column keys.
package export

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/array"
	"github.com/apache/arrow-go/v18/arrow/memory"
	"github.com/apache/arrow-go/v18/parquet"
	"github.com/apache/arrow-go/v18/parquet/compress"
	"github.com/apache/arrow-go/v18/parquet/pqarrow"
	"github.com/xuri/excelize/v2"

	"github.com/magpierre/fyne-keyedtable/datatable"
)

// Format represents the supported export formats
type Format int

const (
	FormatParquet Format = iota
	FormatCSV
	FormatJSON
	FormatXLSX
)

// ErrUnknownFormat is returned for names and extensions with no writer.
var ErrUnknownFormat = errors.New("unknown export format")

var formatNames = map[string]Format{
	"parquet": FormatParquet,
	"csv":     FormatCSV,
	"json":    FormatJSON,
	"xlsx":    FormatXLSX,
}

func (f Format) String() string {
	for name, v := range formatNames {
		if v == f {
			return name
		}
	}
	return fmt.Sprintf("Format(%d)", int(f))
}

// ParseFormat parses a format name such as "csv".
func ParseFormat(s string) (Format, error) {
	if f, ok := formatNames[strings.ToLower(strings.TrimSpace(s))]; ok {
		return f, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownFormat, s)
}

// FormatFromPath selects the format from a file extension.
func FormatFromPath(path string) (Format, error) {
	return ParseFormat(strings.TrimPrefix(filepath.Ext(path), "."))
}

// Write exports src to w in format.
func Write(w io.Writer, src datatable.DataSource, format Format) error {
	switch format {
	case FormatParquet:
		return ToParquet(w, src)
	case FormatCSV:
		return ToCSV(w, src)
	case FormatJSON:
		return ToJSON(w, src)
	case FormatXLSX:
		return ToXLSX(w, src)
	default:
		return fmt.Errorf("%w: %v", ErrUnknownFormat, format)
	}
}

// ToCSV writes a header of column keys followed by one line per row.
func ToCSV(w io.Writer, src datatable.DataSource) error {
	keys, records, err := project(src)
	if err != nil {
		return err
	}

	writer := csv.NewWriter(w)
	if err := writer.Write(keys); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}
	for _, rec := range records {
		if err := writer.Write(rec); err != nil {
			return fmt.Errorf("failed to write CSV row: %w", err)
		}
	}
	writer.Flush()
	return writer.Error()
}

// ToJSON writes an indented array with one object per row.
func ToJSON(w io.Writer, src datatable.DataSource) error {
	keys, records, err := project(src)
	if err != nil {
		return err
	}

	objects := make([]map[string]string, len(records))
	for i, rec := range records {
		obj := make(map[string]string, len(keys))
		for j, k := range keys {
			obj[k] = rec[j]
		}
		objects[i] = obj
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(objects); err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}
	return nil
}

// ToParquet writes a Snappy compressed file with one string column per
// table column.
func ToParquet(w io.Writer, src datatable.DataSource) error {
	rec, err := ToArrowRecord(src, memory.NewGoAllocator())
	if err != nil {
		return err
	}
	defer rec.Release()

	props := parquet.NewWriterProperties(parquet.WithCompression(compress.Codecs.Snappy))
	arrowProps := pqarrow.NewArrowWriterProperties(pqarrow.WithStoreSchema())

	writer, err := pqarrow.NewFileWriter(rec.Schema(), w, props, arrowProps)
	if err != nil {
		return fmt.Errorf("failed to create parquet writer: %w", err)
	}
	if err := writer.Write(rec); err != nil {
		writer.Close()
		return fmt.Errorf("failed to write table to parquet: %w", err)
	}
	return writer.Close()
}

// ToArrowRecord converts src to a record of string columns.
func ToArrowRecord(src datatable.DataSource, mem memory.Allocator) (arrow.Record, error) {
	keys, records, err := project(src)
	if err != nil {
		return nil, err
	}

	fields := make([]arrow.Field, len(keys))
	for i, k := range keys {
		fields[i] = arrow.Field{Name: k, Type: arrow.BinaryTypes.String, Nullable: true}
	}
	schema := arrow.NewSchema(fields, nil)

	b := array.NewRecordBuilder(mem, schema)
	defer b.Release()
	for _, rec := range records {
		for j, v := range rec {
			b.Field(j).(*array.StringBuilder).Append(v)
		}
	}
	return b.NewRecord(), nil
}

// ToXLSX writes a workbook with a single sheet.
func ToXLSX(w io.Writer, src datatable.DataSource) error {
	keys, records, err := project(src)
	if err != nil {
		return err
	}

	f := excelize.NewFile()
	defer f.Close()
	sheet := f.GetSheetName(0)

	if err := writeSheetRow(f, sheet, 1, keys); err != nil {
		return err
	}
	for i, rec := range records {
		if err := writeSheetRow(f, sheet, i+2, rec); err != nil {
			return err
		}
	}
	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	return nil
}

func writeSheetRow(f *excelize.File, sheet string, row int, values []string) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	if err := f.SetSheetRow(sheet, cell, &values); err != nil {
		return fmt.Errorf("failed to write sheet row %d: %w", row, err)
	}
	return nil
}

// project reads the column keys and the display text of every cell.
func project(src datatable.DataSource) ([]string, [][]string, error) {
	keys := make([]string, src.ColumnCount())
	for i := range keys {
		c, err := src.Column(i)
		if err != nil {
			return nil, nil, err
		}
		keys[i] = c.Key
	}

	records := make([][]string, src.RowCount())
	for i := range records {
		cells, err := src.Row(i)
		if err != nil {
			return nil, nil, err
		}
		rec := make([]string, len(keys))
		for j := range rec {
			if j < len(cells) {
				rec[j] = cells[j].Display.String()
			}
		}
		records[i] = rec
	}
	return keys, records, nil
}
