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
	"context"
	"image/color"
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/test"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	ttwidget "github.com/dweymouth/fyne-tooltip/widget"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/magpierre/fyne-keyedtable/datatable"
)

func newTable(t *testing.T) *datatable.Table {
	t.Helper()
	logger, _ := logtest.NewNullLogger()
	return datatable.New(
		datatable.WithRowIDKey("id"),
		datatable.WithNoRowsLabel("Nothing here"),
		datatable.WithLogger(logger),
	)
}

// walk visits obj and every object below it.
func walk(obj fyne.CanvasObject, fn func(fyne.CanvasObject)) {
	fn(obj)
	if c, ok := obj.(*fyne.Container); ok {
		for _, child := range c.Objects {
			walk(child, fn)
		}
	}
}

func rows(k *KeyedTable) []fyne.CanvasObject {
	r := test.WidgetRenderer(k)
	return r.Objects()[0].(*fyne.Container).Objects
}

func texts(obj fyne.CanvasObject) []string {
	var out []string
	walk(obj, func(o fyne.CanvasObject) {
		switch v := o.(type) {
		case *widget.Label:
			out = append(out, v.Text)
		case *canvas.Text:
			out = append(out, v.Text)
		}
	})
	return out
}

func buttons(obj fyne.CanvasObject) []*ttwidget.Button {
	var out []*ttwidget.Button
	walk(obj, func(o fyne.CanvasObject) {
		if b, ok := o.(*ttwidget.Button); ok {
			out = append(out, b)
		}
	})
	return out
}

func TestKeyedTableProjectsRowsInOrder(t *testing.T) {
	test.NewTempApp(t)
	ctx := context.Background()
	tbl := newTable(t)
	k := NewKeyedTable(tbl)

	require.NoError(t, tbl.SetColumns(ctx, []datatable.Column{
		{Key: "name", Label: "Name"},
		{Key: "qty", Label: "Qty", Width: "80px"},
	}))
	require.NoError(t, tbl.SetRows(ctx, []datatable.Row{
		{"id": "a", "name": "apple", "qty": 3},
		{"id": "b", "name": "pear", "qty": 5},
	}))

	objs := rows(k)
	require.Len(t, objs, 3)
	assert.Equal(t, []string{"Name", "Qty"}, texts(objs[0]))
	assert.Equal(t, []string{"apple", "3"}, texts(objs[1]))
	assert.Equal(t, []string{"pear", "5"}, texts(objs[2]))

	require.NoError(t, tbl.MoveRowUp(ctx, "b"))
	objs = rows(k)
	assert.Equal(t, []string{"pear", "5"}, texts(objs[1]))

	require.NoError(t, tbl.MoveColumnLeft(ctx, "qty"))
	objs = rows(k)
	assert.Equal(t, []string{"Qty", "Name"}, texts(objs[0]))
	assert.Equal(t, []string{"5", "pear"}, texts(objs[1]))
}

func TestKeyedTablePlaceholder(t *testing.T) {
	test.NewTempApp(t)
	ctx := context.Background()
	tbl := newTable(t)
	k := NewKeyedTable(tbl)

	assert.Empty(t, rows(k))

	require.NoError(t, tbl.AddColumn(ctx, datatable.Column{Key: "name", Label: "Name"}, datatable.AtEnd))
	objs := rows(k)
	require.Len(t, objs, 2)
	assert.Equal(t, []string{"Nothing here"}, texts(objs[1]))

	require.NoError(t, tbl.AddRow(ctx, datatable.Row{"id": "a", "name": "apple"}, datatable.AtEnd))
	objs = rows(k)
	require.Len(t, objs, 2)
	assert.Equal(t, []string{"apple"}, texts(objs[1]))
}

func TestKeyedTableActionButtons(t *testing.T) {
	test.NewTempApp(t)
	ctx := context.Background()
	tbl := newTable(t)
	k := NewKeyedTable(tbl)

	actions := func(id string) *datatable.ActionList {
		return datatable.NewActionList(
			datatable.Action{Label: "Up", Title: "Move up", UpdateType: datatable.UpdateDisableOnFirstRow,
				Action: func() { _ = tbl.MoveRowUp(ctx, id) }},
			datatable.Action{Label: "Down", Title: "Move down", UpdateType: datatable.UpdateDisableOnLastRow,
				Action: func() { _ = tbl.MoveRowDown(ctx, id) }},
		)
	}
	require.NoError(t, tbl.SetColumns(ctx, []datatable.Column{
		{Key: "name", Label: "Name"},
		{Key: "move", Label: "", Type: datatable.TypeActions},
	}))
	require.NoError(t, tbl.SetRows(ctx, []datatable.Row{
		{"id": "a", "name": "apple", "move": actions("a")},
		{"id": "b", "name": "pear", "move": actions("b")},
	}))

	first := buttons(rows(k)[1])
	require.Len(t, first, 2)
	assert.True(t, first[0].Disabled())
	assert.False(t, first[1].Disabled())

	test.Tap(first[1])
	assert.Equal(t, []string{"b", "a"}, tbl.RowIDs())

	first = buttons(rows(k)[1])
	last := buttons(rows(k)[2])
	assert.True(t, first[0].Disabled())
	assert.False(t, last[0].Disabled())
	assert.True(t, last[1].Disabled())
}

func TestKeyedTableHostFragment(t *testing.T) {
	test.NewTempApp(t)
	ctx := context.Background()
	tbl := newTable(t)
	k := NewKeyedTableWithConfig(tbl, Config{MinColumnWidth: 10})

	swatch := canvas.NewRectangle(color.Black)
	require.NoError(t, tbl.SetColumns(ctx, []datatable.Column{{Key: "c", Label: "Color"}}))
	require.NoError(t, tbl.AddRow(ctx, datatable.Row{"id": "a", "c": swatch}, datatable.AtEnd))

	objs := rows(k)
	require.Len(t, objs, 1, "header hidden")
	found := false
	walk(objs[0], func(o fyne.CanvasObject) {
		if o == swatch {
			found = true
		}
	})
	assert.True(t, found)
}

func TestParseWidth(t *testing.T) {
	tests := []struct {
		token string
		want  float32
		fixed bool
	}{
		{"120", 120, true},
		{"120px", 120, true},
		{" 64 PX ", 64, true},
		{"auto", 0, false},
		{"", 0, false},
		{"wide", 0, false},
		{"-3", 0, false},
	}
	for _, tt := range tests {
		got, fixed := ParseWidth(tt.token)
		assert.Equal(t, tt.fixed, fixed, tt.token)
		assert.Equal(t, tt.want, got, tt.token)
	}
}

func TestColumnLayoutUsesFixedWidths(t *testing.T) {
	test.NewTempApp(t)
	a := widget.NewLabel("a")
	b := widget.NewLabel("b")
	l := &columnLayout{widths: []float32{100, 50}}

	size := l.MinSize([]fyne.CanvasObject{a, b})
	assert.Equal(t, float32(150)+theme.Padding(), size.Width)

	l.Layout([]fyne.CanvasObject{a, b}, fyne.NewSize(300, 40))
	assert.Equal(t, float32(100), a.Size().Width)
	assert.Equal(t, 100+theme.Padding(), b.Position().X)
	assert.Equal(t, 300-100-theme.Padding(), b.Size().Width, "last column fills")
}

func TestThemeColorNames(t *testing.T) {
	base := test.NewTheme()
	th := NewTheme(base)

	assert.Equal(t, base.Color(theme.ColorNamePrimary, theme.VariantLight),
		th.Color(ColorNameHeaderRowBackground, theme.VariantLight))

	th.SetColor(theme.ColorNamePrimary, color.Black)
	assert.Equal(t, color.Black, th.Color(ColorNameHeaderRowBackground, theme.VariantLight),
		"table colors follow overridden base colors")

	th.SetColor(ColorNameHeaderRowBackground, color.White)
	assert.Equal(t, color.White, th.Color(ColorNameHeaderRowBackground, theme.VariantDark))

	red := color.NRGBA{R: 0xff, A: 0xff}
	th.SetVariantColor(ColorNameHeaderRowBackground, theme.VariantDark, red)
	assert.Equal(t, red, th.Color(ColorNameHeaderRowBackground, theme.VariantDark))
	assert.Equal(t, color.White, th.Color(ColorNameHeaderRowBackground, theme.VariantLight))

	assert.Equal(t, base.Color(theme.ColorNameError, theme.VariantDark),
		th.Color(theme.ColorNameError, theme.VariantDark))

	th.SetSize(theme.SizeNamePadding, 6)
	assert.Equal(t, float32(6), th.Size(theme.SizeNamePadding))
	assert.Equal(t, float32(1), th.Size(theme.SizeNameSeparatorThickness))
}
