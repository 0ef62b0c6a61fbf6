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

// Package adapters holds the result type shared by the bulk loaders under
// adapters/.
package adapters

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/magpierre/fyne-keyedtable/datatable"
)

// RowIndexKey is the row field adapters fill with the record index when no
// row id field is configured. It is not a column and is never displayed.
const RowIndexKey = "_row"

// ErrRowIDKeyNotFound is returned when the configured row id field is not
// one of the loaded columns.
var ErrRowIDKeyNotFound = errors.New("row id key not found in source columns")

// Dataset is the columns and rows read from an external source.
type Dataset struct {
	Columns  []datatable.Column
	Rows     []datatable.Row
	RowIDKey string
	Metadata datatable.Metadata
}

// NewDataset validates rowIDKey against columns. An empty rowIDKey selects
// RowIndexKey and fills it in every row.
func NewDataset(columns []datatable.Column, rows []datatable.Row, rowIDKey string) (*Dataset, error) {
	d := &Dataset{
		Columns:  columns,
		Rows:     rows,
		RowIDKey: rowIDKey,
		Metadata: datatable.Metadata{},
	}
	if rowIDKey == "" {
		d.RowIDKey = RowIndexKey
		for i, r := range rows {
			r[RowIndexKey] = strconv.Itoa(i)
		}
		return d, nil
	}
	for _, c := range columns {
		if c.Key == rowIDKey {
			return d, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrRowIDKeyNotFound, rowIDKey)
}

// NewTable loads the dataset into a new table. opts are applied after the
// dataset's row id key, so they may override it.
func (d *Dataset) NewTable(ctx context.Context, opts ...datatable.Option) (*datatable.Table, error) {
	opts = append([]datatable.Option{datatable.WithRowIDKey(d.RowIDKey)}, opts...)
	return datatable.NewWithData(ctx, d.Columns, d.Rows, opts...)
}

// Load replaces the columns and rows of an existing table with the dataset.
func (d *Dataset) Load(ctx context.Context, t *datatable.Table) error {
	t.SetRowIDKey(d.RowIDKey)
	if err := t.SetColumns(ctx, d.Columns, datatable.WithoutUpdate()); err != nil {
		return err
	}
	if err := t.SetRows(ctx, d.Rows, datatable.WithoutUpdate()); err != nil {
		return err
	}
	return t.Update(ctx)
}

// ColumnsFromKeys builds text columns labelled with their keys.
func ColumnsFromKeys(keys []string) []datatable.Column {
	columns := make([]datatable.Column, len(keys))
	for i, k := range keys {
		columns[i] = datatable.Column{Key: k, Label: k}
	}
	return columns
}
