package datatable

// StyleSheet receives the per-column width registrations of a table.
// The table never reads anything else from it.
type StyleSheet interface {
	SetColumnWidth(key, width string)
	ColumnWidth(key string) string
	DeleteColumnWidth(key string)
}

// ColumnWidths is the default StyleSheet: an in-memory map of width tokens.
type ColumnWidths struct {
	widths map[string]string
}

// NewColumnWidths creates an empty width registry.
func NewColumnWidths() *ColumnWidths {
	return &ColumnWidths{widths: make(map[string]string)}
}

// SetColumnWidth registers the width token for key.
func (c *ColumnWidths) SetColumnWidth(key, width string) {
	c.widths[key] = width
}

// ColumnWidth returns the width token for key, or "" when none is registered.
func (c *ColumnWidths) ColumnWidth(key string) string {
	return c.widths[key]
}

// DeleteColumnWidth releases the registration for key.
func (c *ColumnWidths) DeleteColumnWidth(key string) {
	delete(c.widths, key)
}
