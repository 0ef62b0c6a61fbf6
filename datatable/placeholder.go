package datatable

import "context"

// Placeholder returns the "no rows" cell and the number of columns it spans.
// ok is false when the placeholder row is absent.
func (t *Table) Placeholder() (cell Cell, span int, ok bool) {
	if t.placeholder == nil {
		return Cell{}, 0, false
	}
	return *t.placeholder.cell, t.placeholder.span, true
}

// updateNoRowsRow keeps exactly one placeholder row while there are columns
// but no rows, and none otherwise. An existing placeholder cell is reused.
func (t *Table) updateNoRowsRow(ctx context.Context) error {
	columns := t.columns.Len()
	if t.rows.Len() > 0 || columns == 0 {
		t.placeholder = nil
		return nil
	}

	p := t.placeholder
	if p == nil {
		p = &placeholder{cell: &Cell{}}
	}
	p.span = columns

	var label interface{}
	if t.noRowsLabel != "" {
		label = t.noRowsLabel
	}
	if err := t.formatValueToCell(ctx, p.cell, label, "", nil, ""); err != nil {
		return err
	}

	t.placeholder = p
	return nil
}
