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

package export

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	arrowadapter "github.com/magpierre/fyne-keyedtable/adapters/arrow"
	xlsxadapter "github.com/magpierre/fyne-keyedtable/adapters/xlsx"
	"github.com/magpierre/fyne-keyedtable/datatable"
)

func fruitTable(t *testing.T) *datatable.Table {
	t.Helper()
	logger, _ := logtest.NewNullLogger()
	tbl, err := datatable.NewWithData(context.Background(),
		[]datatable.Column{
			{Key: "id", Label: "ID"},
			{Key: "name", Label: "Name"},
			{Key: "move", Type: datatable.TypeActions},
		},
		[]datatable.Row{
			{"id": "a", "name": "apple", "move": []datatable.Action{{Label: "Up"}, {Label: "Down"}}},
			{"id": "b"},
		},
		datatable.WithRowIDKey("id"),
		datatable.WithLogger(logger),
	)
	require.NoError(t, err)
	return tbl
}

func TestToCSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, ToCSV(&buf, fruitTable(t)))
	assert.Equal(t, "id,name,move\na,apple,\"Up, Down\"\nb,-,-\n", buf.String())
}

func TestToJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, ToJSON(&buf, fruitTable(t)))

	var got []map[string]string
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, []map[string]string{
		{"id": "a", "name": "apple", "move": "Up, Down"},
		{"id": "b", "name": "-", "move": "-"},
	}, got)
}

func TestToParquetReadsBack(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, ToParquet(&buf, fruitTable(t)))

	d, err := arrowadapter.NewFromParquet(context.Background(), bytes.NewReader(buf.Bytes()),
		arrowadapter.Config{RowIDKey: "id"})
	require.NoError(t, err)
	require.Len(t, d.Rows, 2)
	assert.Equal(t, "apple", d.Rows[0]["name"])
	assert.Equal(t, "b", d.Rows[1]["id"])
}

func TestToXLSXReadsBack(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, ToXLSX(&buf, fruitTable(t)))

	d, err := xlsxadapter.NewFromReader(&buf, xlsxadapter.Config{HasHeaders: true, RowIDKey: "id"})
	require.NoError(t, err)
	require.Len(t, d.Columns, 3)
	assert.Equal(t, "move", d.Columns[2].Key)
	assert.Equal(t, "Up, Down", d.Rows[0]["move"])
}

func TestEmptyTableWritesHeaderOnly(t *testing.T) {
	logger, _ := logtest.NewNullLogger()
	tbl := datatable.New(datatable.WithLogger(logger), datatable.WithNoRowsLabel("none"))
	require.NoError(t, tbl.AddColumn(context.Background(), datatable.Column{Key: "x"}, datatable.AtEnd))

	var buf bytes.Buffer
	require.NoError(t, ToCSV(&buf, tbl))
	assert.Equal(t, "x\n", buf.String(), "placeholder is not exported")
}

func TestParseFormat(t *testing.T) {
	f, err := ParseFormat("CSV")
	require.NoError(t, err)
	assert.Equal(t, FormatCSV, f)

	f, err = FormatFromPath("/tmp/out.parquet")
	require.NoError(t, err)
	assert.Equal(t, FormatParquet, f)
	assert.Equal(t, "parquet", f.String())

	_, err = FormatFromPath("out.txt")
	assert.ErrorIs(t, err, ErrUnknownFormat)

	assert.ErrorIs(t, Write(&bytes.Buffer{}, fruitTable(t), Format(42)), ErrUnknownFormat)
}
