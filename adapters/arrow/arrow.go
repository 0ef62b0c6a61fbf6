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

// Package arrow loads Arrow tables, Parquet files and CSV files into a
// datatable.
package arrow

import (
	"context"
	"fmt"
	"io"

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/array"
	"github.com/apache/arrow-go/v18/arrow/csv"
	"github.com/apache/arrow-go/v18/arrow/memory"
	"github.com/apache/arrow-go/v18/parquet"
	"github.com/apache/arrow-go/v18/parquet/file"
	"github.com/apache/arrow-go/v18/parquet/pqarrow"

	"github.com/magpierre/fyne-keyedtable/adapters"
	"github.com/magpierre/fyne-keyedtable/datatable"
)

// Config controls how Arrow data is turned into columns and rows.
type Config struct {
	// RowIDKey names the field holding the row identity. Empty selects the
	// record index.
	RowIDKey string

	// TypedColumns sets each column's Type to the Arrow type name so hosts
	// can register a formatter per Arrow type.
	TypedColumns bool

	// Allocator used while reading. Nil selects the Go allocator.
	Allocator memory.Allocator
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{}
}

func (c Config) allocator() memory.Allocator {
	if c.Allocator != nil {
		return c.Allocator
	}
	return memory.NewGoAllocator()
}

// CSVConfig controls CSV parsing.
type CSVConfig struct {
	Config

	Delimiter  rune
	HasHeaders bool
	ChunkSize  int
}

// DefaultCSVConfig returns a comma separated configuration with headers.
func DefaultCSVConfig() CSVConfig {
	return CSVConfig{
		Delimiter:  ',',
		HasHeaders: true,
		ChunkSize:  1024,
	}
}

// NewFromArrowTable reads every record of table.
func NewFromArrowTable(table arrow.Table, cfg Config) (*adapters.Dataset, error) {
	columns := columnsFromSchema(table.Schema(), cfg)

	tr := array.NewTableReader(table, table.NumRows())
	defer tr.Release()

	rows := make([]datatable.Row, 0, table.NumRows())
	for tr.Next() {
		rows = appendRecord(rows, tr.Record())
	}
	if err := tr.Err(); err != nil {
		return nil, fmt.Errorf("error reading table: %w", err)
	}
	return newDataset(columns, rows, table.Schema(), cfg)
}

// NewFromRecords reads records that share schema.
func NewFromRecords(schema *arrow.Schema, records []arrow.Record, cfg Config) (*adapters.Dataset, error) {
	var rows []datatable.Row
	for _, rec := range records {
		rows = appendRecord(rows, rec)
	}
	return newDataset(columnsFromSchema(schema, cfg), rows, schema, cfg)
}

// NewFromParquet reads a Parquet file.
func NewFromParquet(ctx context.Context, r parquet.ReaderAtSeeker, cfg Config) (*adapters.Dataset, error) {
	pf, err := file.NewParquetReader(r, file.WithReadProps(parquet.NewReaderProperties(cfg.allocator())))
	if err != nil {
		return nil, fmt.Errorf("failed to create parquet reader: %w", err)
	}
	defer pf.Close()

	arrowReader, err := pqarrow.NewFileReader(pf, pqarrow.ArrowReadProperties{}, cfg.allocator())
	if err != nil {
		return nil, fmt.Errorf("failed to create arrow reader: %w", err)
	}

	table, err := arrowReader.ReadTable(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read parquet data: %w", err)
	}
	defer table.Release()

	d, err := NewFromArrowTable(table, cfg)
	if err != nil {
		return nil, err
	}
	d.Metadata["format"] = "parquet"
	d.Metadata["rowGroups"] = pf.NumRowGroups()
	return d, nil
}

// NewFromCSV reads CSV, inferring column types from the data.
func NewFromCSV(r io.Reader, cfg CSVConfig) (*adapters.Dataset, error) {
	reader := csv.NewInferringReader(r,
		csv.WithComma(cfg.Delimiter),
		csv.WithHeader(cfg.HasHeaders),
		csv.WithChunk(cfg.ChunkSize),
		csv.WithNullReader(true, ""),
		csv.WithAllocator(cfg.allocator()),
	)
	defer reader.Release()

	var rows []datatable.Row
	for reader.Next() {
		rows = appendRecord(rows, reader.Record())
	}
	if err := reader.Err(); err != nil {
		return nil, fmt.Errorf("failed to read CSV: %w", err)
	}

	schema := reader.Schema()
	if schema == nil {
		return adapters.NewDataset(nil, nil, "")
	}
	d, err := newDataset(columnsFromSchema(schema, cfg.Config), rows, schema, cfg.Config)
	if err != nil {
		return nil, err
	}
	d.Metadata["format"] = "csv"
	d.Metadata["delimiter"] = string(cfg.Delimiter)
	return d, nil
}

func columnsFromSchema(schema *arrow.Schema, cfg Config) []datatable.Column {
	columns := make([]datatable.Column, schema.NumFields())
	for i, f := range schema.Fields() {
		columns[i] = datatable.Column{Key: f.Name, Label: f.Name}
		if cfg.TypedColumns {
			columns[i].Type = f.Type.Name()
		}
	}
	return columns
}

func appendRecord(rows []datatable.Row, rec arrow.Record) []datatable.Row {
	schema := rec.Schema()
	for i := 0; i < int(rec.NumRows()); i++ {
		row := make(datatable.Row, rec.NumCols())
		for j, col := range rec.Columns() {
			row[schema.Field(j).Name] = Value(col, i)
		}
		rows = append(rows, row)
	}
	return rows
}

func newDataset(columns []datatable.Column, rows []datatable.Row, schema *arrow.Schema, cfg Config) (*adapters.Dataset, error) {
	d, err := adapters.NewDataset(columns, rows, cfg.RowIDKey)
	if err != nil {
		return nil, err
	}
	d.Metadata["schema"] = schema.String()
	return d, nil
}
