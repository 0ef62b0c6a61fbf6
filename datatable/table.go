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

package datatable

import (
	"context"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/magpierre/fyne-keyedtable/internal/order"
)

// Table holds the column order, the rows and their cells.
//
// A Table is not safe for concurrent use. Operations that call into a
// blocking formatter or row updater must not be interleaved with other
// operations on the same table.
type Table struct {
	rowIDKey    string
	noRowsLabel string

	columns     *order.List[string, *column]
	rows        *order.List[string, *row]
	placeholder *placeholder

	formatter      Formatter
	typeFormatters map[string]Formatter
	rowUpdater     RowUpdater
	styles         StyleSheet
	log            logrus.FieldLogger

	listeners []func()
}

type column struct {
	Column
}

func (c *column) key() string {
	return c.Key
}

type row struct {
	id    string
	cells *order.List[string, *Cell]
}

func newRow(id string) *row {
	return &row{
		id:    id,
		cells: order.New(func(c *Cell) string { return c.ColumnKey }),
	}
}

type placeholder struct {
	cell *Cell
	span int
}

// New creates an empty table.
func New(opts ...Option) *Table {
	t := &Table{
		columns:   order.New((*column).key),
		rows:      order.New(func(r *row) string { return r.id }),
		formatter: DefaultFormatter,
		typeFormatters: map[string]Formatter{
			TypeActions: ActionsFormatter,
		},
		styles: NewColumnWidths(),
		log:    logrus.StandardLogger(),
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// NewWithData creates a table and loads columns and rows, running a single
// update at the end.
func NewWithData(ctx context.Context, columns []Column, rows []Row, opts ...Option) (*Table, error) {
	t := New(opts...)
	if err := t.SetColumns(ctx, columns, WithoutUpdate()); err != nil {
		return nil, err
	}
	if err := t.SetRows(ctx, rows, WithoutUpdate()); err != nil {
		return nil, err
	}
	if err := t.Update(ctx); err != nil {
		return nil, err
	}
	return t, nil
}

// RowIDKey returns the row field holding the row identity.
func (t *Table) RowIDKey() string {
	return t.rowIDKey
}

// SetRowIDKey changes the row field holding the row identity. Rows already
// in the table keep their ids.
func (t *Table) SetRowIDKey(key string) {
	t.rowIDKey = key
}

// NoRowsLabel returns the placeholder label, "" if none is set.
func (t *Table) NoRowsLabel() string {
	return t.noRowsLabel
}

// SetNoRowsLabel changes the placeholder label. An empty label is formatted
// as an absent value.
func (t *Table) SetNoRowsLabel(ctx context.Context, label string, opts ...UpdateOption) error {
	return t.mutate(ctx, "set no rows label", opts, func() error {
		t.noRowsLabel = label
		return nil
	})
}

// SetTypeFormatter registers f for the type tag typ, or removes the
// registration when f is nil. Cells already in the table keep their display
// values until their rows are set again.
func (t *Table) SetTypeFormatter(typ string, f Formatter) {
	WithTypeFormatter(typ, f)(t)
}

// OnChanged registers fn to run after every completed mutation.
func (t *Table) OnChanged(fn func()) {
	if fn != nil {
		t.listeners = append(t.listeners, fn)
	}
}

// Update runs the derived-state passes: the placeholder row, the row action
// states, then the row updater for columns flagged UpdateRows.
func (t *Table) Update(ctx context.Context) error {
	err := t.update(ctx)
	t.notify()
	return err
}

func (t *Table) update(ctx context.Context) error {
	if err := t.updateNoRowsRow(ctx); err != nil {
		return err
	}
	t.updateRowActionStates()
	return t.updateRows(ctx)
}

// Columns returns the columns in order.
func (t *Table) Columns() []Column {
	columns := make([]Column, t.columns.Len())
	for i := range columns {
		columns[i] = t.projectColumn(t.columns.At(i))
	}
	return columns
}

// Rows returns the rows in order. Only the row id round-trips: each row
// holds the id under the row id key and nothing else.
func (t *Table) Rows() []Row {
	rows := make([]Row, t.rows.Len())
	for i := range rows {
		rows[i] = Row{t.rowIDKey: t.rows.At(i).id}
	}
	return rows
}

// RowIDs returns the row ids in order.
func (t *Table) RowIDs() []string {
	return t.rows.Keys()
}

// CellByKey returns the cell of row id in column key.
func (t *Table) CellByKey(id, key string) (Cell, bool) {
	r, ok := t.rows.Get(id)
	if !ok {
		return Cell{}, false
	}
	c, ok := r.cells.Get(key)
	if !ok {
		return Cell{}, false
	}
	return *c, true
}

// CellKeys returns the column keys of the cells of row id, in order.
func (t *Table) CellKeys(id string) []string {
	r, ok := t.rows.Get(id)
	if !ok {
		return nil
	}
	return r.cells.Keys()
}

func (t *Table) projectColumn(c *column) Column {
	projected := c.Column
	projected.Width = t.styles.ColumnWidth(c.Key)
	return projected
}

// rowID extracts the id of data. Missing, nil and empty ids are rejected.
func (t *Table) rowID(data Row) (string, bool) {
	v, ok := data[t.rowIDKey]
	if !ok || v == nil {
		return "", false
	}
	id := fmt.Sprintf("%v", v)
	return id, id != ""
}

// mutate runs fn as one public operation. Ignored requests are logged and
// skip the derived-state pass.
func (t *Table) mutate(ctx context.Context, op string, opts []UpdateOption, fn func() error) error {
	err := fn()

	var rej *rejection
	if errors.As(err, &rej) {
		t.logRejection(rej)
		return nil
	}
	if err == nil && autoUpdate(opts) {
		err = t.update(ctx)
	}
	if err != nil {
		t.log.WithError(err).WithField("operation", op).Warn("Table operation failed")
	}

	t.notify()
	return err
}

// tolerate drops a rejection from a nested operation.
func (t *Table) tolerate(err error) error {
	var rej *rejection
	if errors.As(err, &rej) {
		t.logRejection(rej)
		return nil
	}
	return err
}

func (t *Table) logRejection(rej *rejection) {
	t.log.WithFields(logrus.Fields{
		"operation": rej.op,
		"key":       rej.key,
		"reason":    rej.reason.Error(),
	}).Debug("Ignored table operation")
}

func (t *Table) notify() {
	for _, fn := range t.listeners {
		fn()
	}
}

// place inserts v into l according to at, appending when no neighbor is given.
func place[V any](l *order.List[string, V], v V, at Placement) error {
	switch {
	case at.Before != "":
		return l.InsertBefore(v, at.Before)
	case at.After != "":
		return l.InsertAfter(v, at.After)
	default:
		return l.Append(v)
	}
}
