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
	"fmt"

	"github.com/sirupsen/logrus"
)

// AddColumn adds column at the given placement. An existing column with the
// same key is replaced. Every existing row gains a cell for the column at the
// same relative position, formatted from an absent value.
//
// The request is ignored when the placement names both neighbors, names the
// column itself, or names a column that does not exist.
func (t *Table) AddColumn(ctx context.Context, c Column, at Placement, opts ...UpdateOption) error {
	return t.mutate(ctx, "add column", opts, func() error {
		return t.addColumn(ctx, c, at)
	})
}

// DeleteColumn removes the column and the matching cell of every row.
// It is a no-op if key is absent.
func (t *Table) DeleteColumn(ctx context.Context, key string, opts ...UpdateOption) error {
	return t.mutate(ctx, "delete column", opts, func() error {
		t.deleteColumn(key)
		return nil
	})
}

// MoveColumnLeft swaps the column with its left neighbor.
func (t *Table) MoveColumnLeft(ctx context.Context, key string, opts ...UpdateOption) error {
	return t.mutate(ctx, "move column left", opts, func() error {
		return t.moveColumnAdjacent(key, -1)
	})
}

// MoveColumnRight swaps the column with its right neighbor.
func (t *Table) MoveColumnRight(ctx context.Context, key string, opts ...UpdateOption) error {
	return t.mutate(ctx, "move column right", opts, func() error {
		return t.moveColumnAdjacent(key, 1)
	})
}

// MoveColumnTo moves the column before or after another column. Exactly one
// neighbor must be given and it must differ from key.
func (t *Table) MoveColumnTo(ctx context.Context, key string, at Placement, opts ...UpdateOption) error {
	return t.mutate(ctx, "move column", opts, func() error {
		return t.moveColumnTo(key, at)
	})
}

// SetColumns removes every row and column, then adds columns in order.
func (t *Table) SetColumns(ctx context.Context, columns []Column, opts ...UpdateOption) error {
	return t.mutate(ctx, "set columns", opts, func() error {
		t.rows.Clear()
		for _, c := range t.columns.Values() {
			t.styles.DeleteColumnWidth(c.Key)
		}
		t.columns.Clear()

		for _, c := range columns {
			if err := t.tolerate(t.addColumn(ctx, c, AtEnd)); err != nil {
				return err
			}
		}
		return nil
	})
}

func (t *Table) addColumn(ctx context.Context, c Column, at Placement) error {
	if err := at.check(c.Key); err != nil {
		return reject("add column", c.Key, err)
	}

	t.deleteColumn(c.Key)

	if neighbor, ok := at.neighbor(); ok && !t.columns.Has(neighbor) {
		return reject("add column", c.Key, fmt.Errorf("%w: %s", ErrColumnNotFound, neighbor))
	}

	// Cells are formatted before anything is inserted so that a failing
	// formatter leaves the header and every row untouched.
	rows := t.rows.Values()
	cells := make([]*Cell, len(rows))
	for i, r := range rows {
		cell := &Cell{ColumnKey: c.Key}
		if err := t.formatValueToCell(ctx, cell, nil, c.Type, r, c.Key); err != nil {
			return err
		}
		cells[i] = cell
	}

	col := &column{Column: c}
	col.Width = ""
	if err := place(t.columns, col, at); err != nil {
		return reject("add column", c.Key, err)
	}
	if c.Width != "" {
		t.styles.SetColumnWidth(c.Key, c.Width)
	}

	for i, r := range rows {
		if err := place(r.cells, cells[i], at); err != nil {
			t.skipRow("add column", c.Key, r.id, err)
		}
	}
	return nil
}

func (t *Table) deleteColumn(key string) {
	t.columns.Remove(key)
	for i := 0; i < t.rows.Len(); i++ {
		t.rows.At(i).cells.Remove(key)
	}
	t.styles.DeleteColumnWidth(key)
}

func (t *Table) moveColumnAdjacent(key string, direction int) error {
	op := "move column left"
	move := t.columns.MoveUp
	if direction > 0 {
		op = "move column right"
		move = t.columns.MoveDown
	}

	if err := move(key); err != nil {
		return reject(op, key, err)
	}

	for i := 0; i < t.rows.Len(); i++ {
		r := t.rows.At(i)
		var err error
		if direction > 0 {
			err = r.cells.MoveDown(key)
		} else {
			err = r.cells.MoveUp(key)
		}
		if err != nil {
			t.skipRow(op, key, r.id, err)
		}
	}
	return nil
}

func (t *Table) moveColumnTo(key string, at Placement) error {
	if err := at.checkMove(key); err != nil {
		return reject("move column", key, err)
	}

	col, ok := t.columns.Get(key)
	if !ok {
		return reject("move column", key, ErrColumnNotFound)
	}
	if err := place(t.columns, col, at); err != nil {
		return reject("move column", key, err)
	}

	for i := 0; i < t.rows.Len(); i++ {
		r := t.rows.At(i)
		cell, ok := r.cells.Get(key)
		if !ok {
			t.skipRow("move column", key, r.id, ErrColumnNotFound)
			continue
		}
		if err := place(r.cells, cell, at); err != nil {
			t.skipRow("move column", key, r.id, err)
		}
	}
	return nil
}

func (t *Table) skipRow(op, key, id string, err error) {
	t.log.WithFields(logrus.Fields{
		"operation": op,
		"key":       key,
		"row":       id,
		"reason":    err.Error(),
	}).Debug("Skipped row")
}
