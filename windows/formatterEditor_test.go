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
	"testing"

	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/magpierre/fyne-keyedtable/datatable"
)

const shoutScript = `package cells

import "strings"

func Format(value, typ, rowID, columnKey string) string {
	return strings.ToUpper(value)
}
`

func TestApplyFormatterReformatsLoadedFile(t *testing.T) {
	w := newTestWindow(t)
	require.NoError(t, w.LoadDataFile(writeCSV(t)))

	_, err := w.ApplyFormatter("", shoutScript)
	require.NoError(t, err)

	assert.Equal(t, []string{"a", "b", "c"}, w.Table().RowIDs())
	cell, ok := w.Table().CellByKey("b", "name")
	require.True(t, ok)
	assert.Equal(t, "PEAR", cell.Display.Text)
	assert.Len(t, actionControls(t, w.Table(), "b"), 3)
	assert.Equal(t, "Applied formatter for type text", w.statusBar.Text)
}

func TestFormatterEditorApply(t *testing.T) {
	w := newTestWindow(t)
	require.NoError(t, w.LoadDataFile(writeCSV(t)))

	e := newFormatterEditor(w)
	assert.Equal(t, []string{datatable.TypeText}, w.columnTypes())

	e.SetCode("not go")
	test.Tap(e.apply)
	assert.Contains(t, e.output.String(), "Error:")
	cell, _ := w.Table().CellByKey("a", "name")
	assert.Equal(t, "apple", cell.Display.Text)

	e.SetCode(shoutScript)
	assert.Len(t, e.preview.Rows, 8)
	test.Tap(e.apply)
	assert.Contains(t, e.output.String(), `Applied formatter for type "text"`)
	cell, _ = w.Table().CellByKey("a", "name")
	assert.Equal(t, "APPLE", cell.Display.Text)
}

func TestHighlightLine(t *testing.T) {
	row := highlightLine(`func Format(v string) int { return 42 // done`)
	styleAt := func(i int) interface{} { return row.Cells[i].Style }

	assert.Equal(t, syntaxStyles[classKeyword], styleAt(0))   // func
	assert.Equal(t, syntaxStyles[classFunction], styleAt(5))  // Format
	assert.Equal(t, syntaxStyles[classOperator], styleAt(11)) // (
	assert.Nil(t, styleAt(12))                                // v
	assert.Equal(t, syntaxStyles[classBuiltin], styleAt(14))  // string
	assert.Equal(t, syntaxStyles[classNumber], styleAt(35))   // 42
	assert.Equal(t, syntaxStyles[classComment], styleAt(38))  // comment
	assert.Equal(t, len([]rune(`func Format(v string) int { return 42 // done`)), len(row.Cells))
}
