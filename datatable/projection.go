package datatable

import "fmt"

var _ DataSource = (*Table)(nil)

// RowCount implements DataSource.
func (t *Table) RowCount() int {
	return t.rows.Len()
}

// ColumnCount implements DataSource.
func (t *Table) ColumnCount() int {
	return t.columns.Len()
}

// Column implements DataSource.
func (t *Table) Column(col int) (Column, error) {
	if col < 0 || col >= t.columns.Len() {
		return Column{}, fmt.Errorf("%w: %d", ErrInvalidColumn, col)
	}
	return t.projectColumn(t.columns.At(col)), nil
}

// ColumnName implements DataSource.
func (t *Table) ColumnName(col int) (string, error) {
	c, err := t.Column(col)
	if err != nil {
		return "", err
	}
	return c.Label, nil
}

// ColumnType implements DataSource.
func (t *Table) ColumnType(col int) (string, error) {
	c, err := t.Column(col)
	if err != nil {
		return "", err
	}
	return c.Type, nil
}

// RowID implements DataSource.
func (t *Table) RowID(i int) (string, error) {
	if i < 0 || i >= t.rows.Len() {
		return "", fmt.Errorf("%w: %d", ErrInvalidRow, i)
	}
	return t.rows.At(i).id, nil
}

// Cell implements DataSource. Cells are addressed by the column's position
// in the header; a row missing that cell yields an empty Cell.
func (t *Table) Cell(i, col int) (Cell, error) {
	if i < 0 || i >= t.rows.Len() {
		return Cell{}, fmt.Errorf("%w: %d", ErrInvalidRow, i)
	}
	if col < 0 || col >= t.columns.Len() {
		return Cell{}, fmt.Errorf("%w: %d", ErrInvalidColumn, col)
	}

	key := t.columns.At(col).Key
	c, ok := t.rows.At(i).cells.Get(key)
	if !ok {
		return Cell{ColumnKey: key}, nil
	}
	return *c, nil
}

// Row implements DataSource.
func (t *Table) Row(i int) ([]Cell, error) {
	if i < 0 || i >= t.rows.Len() {
		return nil, fmt.Errorf("%w: %d", ErrInvalidRow, i)
	}
	cells := make([]Cell, t.columns.Len())
	for col := range cells {
		c, err := t.Cell(i, col)
		if err != nil {
			return nil, err
		}
		cells[col] = c
	}
	return cells, nil
}

// Metadata implements DataSource.
func (t *Table) Metadata() Metadata {
	return Metadata{
		"rowIDKey":    t.rowIDKey,
		"noRowsLabel": t.noRowsLabel,
	}
}
