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

package termview

import (
	"context"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/magpierre/fyne-keyedtable/datatable"
)

var errorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))

// Browser is an interactive bubbletea model over a datatable.Table. Row and
// column moves go through the table; the view is rebuilt from the table
// after every change.
type Browser struct {
	ctx    context.Context
	table  *datatable.Table
	view   table.Model
	help   help.Model
	keys   KeyMap
	column int
	height int
	err    error
}

var _ tea.Model = (*Browser)(nil)

// NewBrowser creates a browser for t. ctx is passed to every table call.
func NewBrowser(ctx context.Context, t *datatable.Table) *Browser {
	styles := table.DefaultStyles()
	styles.Header = headerStyle
	styles.Cell = cellStyle

	b := &Browser{
		ctx:    ctx,
		table:  t,
		help:   help.New(),
		keys:   DefaultKeyMap(),
		height: 20,
		view: table.New(
			table.WithFocused(true),
			table.WithStyles(styles),
		),
	}
	t.OnChanged(b.sync)
	b.sync()
	return b
}

// Init implements tea.Model.
func (b *Browser) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (b *Browser) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		b.height = msg.Height - 2
		b.help.Width = msg.Width
		b.view.SetHeight(b.height)
		return b, nil
	case tea.KeyMsg:
		b.err = nil
		switch {
		case key.Matches(msg, b.keys.Quit):
			return b, tea.Quit
		case key.Matches(msg, b.keys.RowUp):
			b.moveRow(b.table.MoveRowUp, -1)
			return b, nil
		case key.Matches(msg, b.keys.RowDown):
			b.moveRow(b.table.MoveRowDown, 1)
			return b, nil
		case key.Matches(msg, b.keys.ColumnLeft):
			b.selectColumn(b.column - 1)
			return b, nil
		case key.Matches(msg, b.keys.ColumnRight):
			b.selectColumn(b.column + 1)
			return b, nil
		case key.Matches(msg, b.keys.MoveLeft):
			b.moveColumn(b.table.MoveColumnLeft, -1)
			return b, nil
		case key.Matches(msg, b.keys.MoveRight):
			b.moveColumn(b.table.MoveColumnRight, 1)
			return b, nil
		case key.Matches(msg, b.keys.Delete):
			if id, ok := b.SelectedRow(); ok {
				b.err = b.table.DeleteRow(b.ctx, id)
			}
			return b, nil
		}
	}

	var cmd tea.Cmd
	b.view, cmd = b.view.Update(msg)
	return b, cmd
}

// View implements tea.Model.
func (b *Browser) View() string {
	var footer string
	if b.err != nil {
		footer = errorStyle.Render(b.err.Error())
	} else {
		footer = b.help.View(b.keys)
	}
	body := b.view.View()
	if cell, _, ok := b.table.Placeholder(); ok {
		body = lipgloss.JoinVertical(lipgloss.Left, body, placeholderStyle.Render(cell.Display.String()))
	}
	return lipgloss.JoinVertical(lipgloss.Left, body, footer)
}

// SelectedRow returns the id of the row under the cursor.
func (b *Browser) SelectedRow() (string, bool) {
	id, err := b.table.RowID(b.view.Cursor())
	if err != nil {
		return "", false
	}
	return id, true
}

// SelectedColumn returns the key of the selected column.
func (b *Browser) SelectedColumn() (string, bool) {
	c, err := b.table.Column(b.column)
	if err != nil {
		return "", false
	}
	return c.Key, true
}

func (b *Browser) moveRow(move func(context.Context, string, ...datatable.UpdateOption) error, delta int) {
	id, ok := b.SelectedRow()
	if !ok {
		return
	}
	before := b.view.Cursor()
	if b.err = move(b.ctx, id); b.err != nil {
		return
	}
	if after, err := b.table.RowID(before + delta); err == nil && after == id {
		b.view.SetCursor(before + delta)
	}
}

func (b *Browser) moveColumn(move func(context.Context, string, ...datatable.UpdateOption) error, delta int) {
	k, ok := b.SelectedColumn()
	if !ok {
		return
	}
	before := b.column
	if b.err = move(b.ctx, k); b.err != nil {
		return
	}
	if c, err := b.table.Column(before + delta); err == nil && c.Key == k {
		b.selectColumn(before + delta)
	}
}

func (b *Browser) selectColumn(i int) {
	if i < 0 || i >= b.table.ColumnCount() {
		return
	}
	b.column = i
	b.sync()
}

// sync rebuilds the bubbles table from the datatable.
func (b *Browser) sync() {
	if n := b.table.ColumnCount(); b.column >= n {
		b.column = max(n-1, 0)
	}
	columns, rows := project(b.table, b.column)

	// Rows must be cleared first since SetColumns renders the current rows
	// against the new column count.
	b.view.SetRows(nil)
	b.view.SetColumns(columns)
	b.view.SetRows(rows)
	b.view.SetHeight(min(b.height, len(rows)+lipgloss.Height(headerStyle.Render(""))))
	if c := b.view.Cursor(); c >= len(rows) && len(rows) > 0 {
		b.view.SetCursor(len(rows) - 1)
	}
}
