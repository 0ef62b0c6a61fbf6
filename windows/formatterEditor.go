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
package windows

import (
	"fmt"
	"slices"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/magpierre/fyne-keyedtable/datatable"
	"github.com/magpierre/fyne-keyedtable/formatter/script"
)

const formatterTemplate = `package cells

import "strings"

// Format returns the displayed text of one cell.
func Format(value, typ, rowID, columnKey string) string {
	return strings.TrimSpace(value)
}
`

// FormatterEditor edits a formatter script and applies it to one column
// type of the main window's table.
type FormatterEditor struct {
	main      *MainWindow
	code      *widget.Entry
	preview   *widget.TextGrid
	typ       *widget.SelectEntry
	output    *widget.RichText
	apply     *widget.Button
	container *fyne.Container
}

func newFormatterEditor(m *MainWindow) *FormatterEditor {
	e := &FormatterEditor{main: m}

	e.preview = widget.NewTextGrid()
	e.preview.ShowLineNumbers = true

	e.code = widget.NewMultiLineEntry()
	e.code.Wrapping = fyne.TextWrapOff
	e.code.SetText(formatterTemplate)
	e.code.OnChanged = e.highlight
	e.highlight(e.code.Text)

	e.typ = widget.NewSelectEntry(m.columnTypes())
	e.typ.SetText(datatable.TypeText)

	e.output = widget.NewRichText()
	e.output.Wrapping = fyne.TextWrapWord
	e.setOutput("Output will appear here...", false)

	e.apply = widget.NewButtonWithIcon("Apply", theme.MediaPlayIcon(), e.Apply)

	editor := container.NewVSplit(
		container.NewBorder(widget.NewLabel("Script:"), nil, nil, nil, container.NewScroll(e.code)),
		container.NewBorder(widget.NewLabel("Preview:"), nil, nil, nil, container.NewScroll(e.preview)),
	)
	editor.SetOffset(0.5)

	controls := container.NewBorder(nil, nil, widget.NewLabel("Column type:"), e.apply, e.typ)
	split := container.NewHSplit(
		widget.NewCard("", "", editor),
		widget.NewCard("", "Result:", container.NewScroll(e.output)),
	)
	split.SetOffset(0.65)

	e.container = container.NewBorder(controls, nil, nil, nil, split)
	return e
}

// Apply compiles the script and registers it for the selected column type.
func (e *FormatterEditor) Apply() {
	typ := strings.TrimSpace(e.typ.Text)
	f, err := e.main.ApplyFormatter(typ, e.code.Text)
	if err != nil {
		e.setOutput(fmt.Sprintf("Error: %v\n", err), false)
		return
	}

	if typ == "" {
		typ = datatable.TypeText
	}
	e.setOutput(fmt.Sprintf("Applied formatter for type %q\n", typ), false)
	if out := f.Output(); out != "" {
		e.appendOutput(out, true)
	}
}

// SetCode replaces the script.
func (e *FormatterEditor) SetCode(code string) {
	e.code.SetText(code)
	e.highlight(code)
}

func (e *FormatterEditor) highlight(text string) {
	e.preview.Rows = highlight(text)
	e.preview.Refresh()
}

func (e *FormatterEditor) setOutput(text string, bold bool) {
	e.output.Segments = nil
	e.appendOutput(text, bold)
}

func (e *FormatterEditor) appendOutput(text string, bold bool) {
	style := widget.RichTextStyleInline
	style.TextStyle = fyne.TextStyle{Bold: bold, Monospace: true}
	e.output.Segments = append(e.output.Segments, &widget.TextSegment{Text: text, Style: style})
	e.output.Refresh()
}

// ShowFormatterEditor opens the formatter script editor in its own window.
func (t *MainWindow) ShowFormatterEditor() {
	e := newFormatterEditor(t)
	w := t.a.NewWindow("Formatter script")
	w.SetContent(e.container)
	w.Resize(fyne.NewSize(900, 600))
	w.Show()
}

// columnTypes lists the formatter types of the current columns, TypeText
// first. Actions columns are left out.
func (t *MainWindow) columnTypes() []string {
	types := []string{datatable.TypeText}
	for _, c := range t.table.Columns() {
		if c.Type == "" || c.Type == datatable.TypeActions || slices.Contains(types, c.Type) {
			continue
		}
		types = append(types, c.Type)
	}
	return types
}

// ApplyFormatter compiles src as a formatter script and registers it for the
// column type typ. A loaded file is read again so that every cell is
// formatted with the new script.
func (t *MainWindow) ApplyFormatter(typ, src string) (*script.Formatter, error) {
	if typ == "" {
		typ = datatable.TypeText
	}

	ctx, cancel := createTimeoutContext(t.config.TimeoutSeconds)
	defer cancel()

	f, err := script.New(ctx, src)
	if err != nil {
		return nil, err
	}
	t.table.SetTypeFormatter(typ, f)
	t.log.WithField("type", typ).Info("Applied formatter script")

	if t.source != "" {
		if err := t.LoadDataFile(t.source); err != nil {
			return nil, err
		}
	}
	t.SetStatus(fmt.Sprintf("Applied formatter for type %s", typ))
	return f, nil
}
