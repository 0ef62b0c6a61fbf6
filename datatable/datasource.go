package datatable

// DataSource provides read-only access to the displayed projection of a table.
// Rendering surfaces and exporters read through it; it never mutates.
type DataSource interface {
	// RowCount returns the number of data rows, excluding the placeholder row.
	RowCount() int

	// ColumnCount returns the number of columns.
	ColumnCount() int

	// Column returns the column at the given index.
	// Returns ErrInvalidColumn if col is out of range.
	Column(col int) (Column, error)

	// ColumnName returns the header label of the column at the given index.
	// Returns ErrInvalidColumn if col is out of range.
	ColumnName(col int) (string, error)

	// ColumnType returns the format type tag of the column at the given index.
	// Returns ErrInvalidColumn if col is out of range.
	ColumnType(col int) (string, error)

	// RowID returns the id of the row at the given index.
	// Returns ErrInvalidRow if row is out of range.
	RowID(row int) (string, error)

	// Cell returns the cell at the specified row and column.
	// Returns ErrInvalidRow if row is out of range.
	// Returns ErrInvalidColumn if col is out of range.
	Cell(row, col int) (Cell, error)

	// Row returns all cells of the specified row in column order.
	// Returns ErrInvalidRow if row is out of range.
	Row(row int) ([]Cell, error)

	// Placeholder returns the "no rows" cell and the number of columns it
	// spans. ok is false when no placeholder row is present.
	Placeholder() (cell Cell, span int, ok bool)

	// Metadata returns optional metadata about the data source.
	// Returns an empty Metadata map if no metadata is available.
	Metadata() Metadata
}
