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
)

// AddRow adds data as a row at the given placement. An existing row with the
// same id is replaced. One cell is built per column, in column order.
//
// The request is ignored when the row has no id, when the placement names
// both neighbors or the row itself, or when the named neighbor does not
// exist; in the last case the built row is discarded.
func (t *Table) AddRow(ctx context.Context, data Row, at Placement, opts ...UpdateOption) error {
	return t.mutate(ctx, "add row", opts, func() error {
		return t.addRow(ctx, data, at)
	})
}

// DeleteRow removes the row with the given id.
func (t *Table) DeleteRow(ctx context.Context, id string, opts ...UpdateOption) error {
	return t.mutate(ctx, "delete row", opts, func() error {
		if _, ok := t.rows.Remove(id); !ok {
			return reject("delete row", id, ErrRowNotFound)
		}
		return nil
	})
}

// MoveRowUp swaps the row with its previous row. The first row stays put.
func (t *Table) MoveRowUp(ctx context.Context, id string, opts ...UpdateOption) error {
	return t.mutate(ctx, "move row up", opts, func() error {
		if err := t.rows.MoveUp(id); err != nil {
			return reject("move row up", id, err)
		}
		return nil
	})
}

// MoveRowDown swaps the row with its next row. The last row stays put.
func (t *Table) MoveRowDown(ctx context.Context, id string, opts ...UpdateOption) error {
	return t.mutate(ctx, "move row down", opts, func() error {
		if err := t.rows.MoveDown(id); err != nil {
			return reject("move row down", id, err)
		}
		return nil
	})
}

// MoveRowTo moves the row before or after another row. Exactly one neighbor
// must be given and it must differ from id.
func (t *Table) MoveRowTo(ctx context.Context, id string, at Placement, opts ...UpdateOption) error {
	return t.mutate(ctx, "move row", opts, func() error {
		if err := at.checkMove(id); err != nil {
			return reject("move row", id, err)
		}
		r, ok := t.rows.Get(id)
		if !ok {
			return reject("move row", id, ErrRowNotFound)
		}
		if err := place(t.rows, r, at); err != nil {
			return reject("move row", id, err)
		}
		return nil
	})
}

// SetRows removes every row, then adds rows in order.
func (t *Table) SetRows(ctx context.Context, rows []Row, opts ...UpdateOption) error {
	return t.mutate(ctx, "set rows", opts, func() error {
		t.rows.Clear()
		for _, data := range rows {
			if err := t.tolerate(t.addRow(ctx, data, AtEnd)); err != nil {
				return err
			}
		}
		return nil
	})
}

func (t *Table) addRow(ctx context.Context, data Row, at Placement) error {
	id, ok := t.rowID(data)
	if !ok {
		return reject("add row", t.rowIDKey, ErrMissingRowID)
	}
	if err := at.check(id); err != nil {
		return reject("add row", id, err)
	}

	t.rows.Remove(id)

	r := newRow(id)
	for i := 0; i < t.columns.Len(); i++ {
		col := t.columns.At(i)
		cell := &Cell{ColumnKey: col.Key}
		if err := t.formatValueToCell(ctx, cell, data[col.Key], col.Type, r, col.Key); err != nil {
			return err
		}
		if err := r.cells.Append(cell); err != nil {
			return fmt.Errorf("build row %q: %w", id, err)
		}
	}

	if err := place(t.rows, r, at); err != nil {
		return reject("add row", id, err)
	}
	return nil
}
