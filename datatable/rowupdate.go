package datatable

import (
	"context"
	"fmt"
)

// RowUpdater receives the displayed value of every cell in a column flagged
// UpdateRows, so the host can resynchronize its own state.
type RowUpdater interface {
	UpdateRow(ctx context.Context, display Formatted, typ string, rowIndex int, rowID, columnKey string) error
}

// RowUpdaterFunc adapts a function to the RowUpdater interface.
type RowUpdaterFunc func(ctx context.Context, display Formatted, typ string, rowIndex int, rowID, columnKey string) error

// UpdateRow implements RowUpdater.
func (f RowUpdaterFunc) UpdateRow(ctx context.Context, display Formatted, typ string, rowIndex int, rowID, columnKey string) error {
	return f(ctx, display, typ, rowIndex, rowID, columnKey)
}

// updateRows calls the row updater in row order, and within a row in
// column order, for each column flagged UpdateRows.
func (t *Table) updateRows(ctx context.Context) error {
	if t.rowUpdater == nil {
		return nil
	}

	var flagged []*column
	for _, c := range t.columns.Values() {
		if c.UpdateRows {
			flagged = append(flagged, c)
		}
	}
	if len(flagged) == 0 {
		return nil
	}

	for index, r := range t.rows.Values() {
		for _, c := range flagged {
			cell, ok := r.cells.Get(c.Key)
			if !ok {
				continue
			}
			if err := t.rowUpdater.UpdateRow(ctx, cell.Display, c.Type, index, r.id, c.Key); err != nil {
				return fmt.Errorf("update row %q column %q: %w", r.id, c.Key, err)
			}
		}
	}
	return nil
}
