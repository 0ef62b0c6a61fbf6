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

package adapters

import (
	"context"
	"testing"

	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/magpierre/fyne-keyedtable/datatable"
)

func TestNewDatasetSyntheticIDs(t *testing.T) {
	rows := []datatable.Row{{"name": "a"}, {"name": "b"}}
	d, err := NewDataset(ColumnsFromKeys([]string{"name"}), rows, "")
	require.NoError(t, err)
	assert.Equal(t, RowIndexKey, d.RowIDKey)

	logger, _ := logtest.NewNullLogger()
	tbl, err := d.NewTable(context.Background(), datatable.WithLogger(logger))
	require.NoError(t, err)
	assert.Equal(t, []string{"0", "1"}, tbl.RowIDs())
	assert.Equal(t, 1, tbl.ColumnCount(), "row index is not a column")
}

func TestNewDatasetUnknownRowIDKey(t *testing.T) {
	_, err := NewDataset(ColumnsFromKeys([]string{"name"}), nil, "id")
	assert.ErrorIs(t, err, ErrRowIDKeyNotFound)
}

func TestDatasetLoadReplacesTable(t *testing.T) {
	ctx := context.Background()
	logger, _ := logtest.NewNullLogger()
	tbl := datatable.New(datatable.WithLogger(logger), datatable.WithRowIDKey("x"))
	require.NoError(t, tbl.AddColumn(ctx, datatable.Column{Key: "old"}, datatable.AtEnd))

	d, err := NewDataset(ColumnsFromKeys([]string{"id", "name"}),
		[]datatable.Row{{"id": "k1", "name": "a"}}, "id")
	require.NoError(t, err)
	require.NoError(t, d.Load(ctx, tbl))

	assert.Equal(t, "id", tbl.RowIDKey())
	assert.Equal(t, []string{"k1"}, tbl.RowIDs())
	cell, ok := tbl.CellByKey("k1", "name")
	require.True(t, ok)
	assert.Equal(t, "a", cell.Display.Text)
}
