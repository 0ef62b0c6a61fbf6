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

package widget

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
	ttwidget "github.com/dweymouth/fyne-tooltip/widget"

	"github.com/magpierre/fyne-keyedtable/datatable"
)

// KeyedTable renders a datatable.Table. The table stays the single source of
// truth; the widget rebuilds its rows whenever the table reports a change.
//
// Action tooltips need the window content wrapped with
// fynetooltip.AddWindowToolTipLayer.
type KeyedTable struct {
	widget.BaseWidget

	table  *datatable.Table
	config Config
}

// NewKeyedTable creates a widget for table using DefaultConfig.
func NewKeyedTable(table *datatable.Table) *KeyedTable {
	return NewKeyedTableWithConfig(table, DefaultConfig())
}

// NewKeyedTableWithConfig creates a widget for table.
func NewKeyedTableWithConfig(table *datatable.Table, config Config) *KeyedTable {
	k := &KeyedTable{
		table:  table,
		config: config,
	}
	k.ExtendBaseWidget(k)
	table.OnChanged(k.Refresh)
	return k
}

// Table returns the projected table.
func (k *KeyedTable) Table() *datatable.Table {
	return k.table
}

// CreateRenderer implements fyne.Widget.
func (k *KeyedTable) CreateRenderer() fyne.WidgetRenderer {
	r := &keyedTableRenderer{
		k:       k,
		content: container.NewVBox(),
	}
	r.rebuild()
	return r
}

type keyedTableRenderer struct {
	k       *KeyedTable
	content *fyne.Container
}

func (r *keyedTableRenderer) Layout(size fyne.Size) {
	r.content.Resize(size)
}

func (r *keyedTableRenderer) MinSize() fyne.Size {
	return r.content.MinSize()
}

func (r *keyedTableRenderer) Refresh() {
	r.rebuild()
	r.content.Refresh()
}

func (r *keyedTableRenderer) Objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{r.content}
}

func (r *keyedTableRenderer) Destroy() {}

// rebuild projects the table: header, data rows, then the placeholder.
func (r *keyedTableRenderer) rebuild() {
	cfg := r.k.config
	columns := r.k.table.Columns()

	tokens := make([]string, len(columns))
	header := make([]fyne.CanvasObject, len(columns))
	for i, c := range columns {
		tokens[i] = c.Width
		header[i] = r.headerCell(c)
	}

	var cells [][]fyne.CanvasObject
	for i := 0; i < r.k.table.RowCount(); i++ {
		row, err := r.k.table.Row(i)
		if err != nil {
			continue
		}
		objs := make([]fyne.CanvasObject, len(row))
		for j, cell := range row {
			_, fixed := ParseWidth(tokens[j])
			objs[j] = r.cellObject(cell, fixed)
		}
		cells = append(cells, objs)
	}

	measured := cells
	if cfg.ShowHeader {
		measured = append([][]fyne.CanvasObject{header}, cells...)
	}
	layout := &columnLayout{widths: measure(tokens, measured, cfg.MinColumnWidth)}

	var objects []fyne.CanvasObject
	if cfg.ShowHeader && len(columns) > 0 {
		objects = append(objects, container.New(layout, header...))
	}
	for i, objs := range cells {
		row := container.New(layout, objs...)
		if cfg.StripedRows && i%2 == 1 {
			bg := canvas.NewRectangle(themeColor(ColorNameStripedRowBackground, r.k))
			objects = append(objects, container.NewStack(bg, row))
			continue
		}
		objects = append(objects, row)
	}
	if cell, _, ok := r.k.table.Placeholder(); ok {
		objects = append(objects, container.NewStack(r.placeholderObject(cell)))
	}
	r.content.Objects = objects
}

func (r *keyedTableRenderer) headerCell(c datatable.Column) fyne.CanvasObject {
	bg := canvas.NewRectangle(themeColor(ColorNameHeaderRowBackground, r.k))
	text := canvas.NewText(c.Label, themeColor(ColorNameHeaderRowForeground, r.k))
	text.TextStyle = fyne.TextStyle{Bold: true}
	return container.NewStack(bg, container.NewPadded(text))
}

func (r *keyedTableRenderer) placeholderObject(cell datatable.Cell) fyne.CanvasObject {
	if obj, ok := cell.Display.Fragment.(fyne.CanvasObject); ok {
		return obj
	}
	label := widget.NewLabel(cell.Display.String())
	label.Alignment = fyne.TextAlignCenter
	label.Importance = widget.LowImportance
	return label
}

func (r *keyedTableRenderer) cellObject(cell datatable.Cell, fixed bool) fyne.CanvasObject {
	switch f := cell.Display.Fragment.(type) {
	case *datatable.ActionList:
		return r.actionButtons(f)
	case fyne.CanvasObject:
		return f
	}
	label := widget.NewLabel(cell.Display.String())
	if fixed {
		label.Truncation = fyne.TextTruncateEllipsis
	}
	return label
}

// actionButtons renders one button per control, disabled as the table
// computed, with the action title as tooltip.
func (r *keyedTableRenderer) actionButtons(list *datatable.ActionList) fyne.CanvasObject {
	box := container.NewHBox()
	for _, c := range list.Controls() {
		b := ttwidget.NewButton(c.Label(), func() { c.Invoke() })
		if c.Title() != "" {
			b.SetToolTip(c.Title())
		}
		if c.Disabled() {
			b.Disable()
		}
		box.Add(b)
	}
	return box
}
