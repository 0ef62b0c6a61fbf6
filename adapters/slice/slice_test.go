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

package slice

import (
	"context"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/magpierre/fyne-keyedtable/datatable"
)

func TestNewFromMapsInfersColumns(t *testing.T) {
	data := []map[string]interface{}{
		{"name": "apple", "id": "a"},
		{"id": "b", "name": "pear", "color": "green"},
	}
	d, err := NewFromMaps(data, Config{RowIDKey: "id"})
	require.NoError(t, err)

	var keys []string
	for _, c := range d.Columns {
		keys = append(keys, c.Key)
	}
	if diff := cmp.Diff([]string{"id", "name", "color"}, keys); diff != "" {
		t.Errorf("columns mismatch (-want +got):\n%s", diff)
	}

	data[0]["name"] = "changed"
	assert.Equal(t, "apple", d.Rows[0]["name"], "records are copied")
}

func TestNewFromMapsExplicitColumns(t *testing.T) {
	cols := []datatable.Column{{Key: "name", Label: "Fruit", Width: "120px"}}
	d, err := NewFromMaps([]map[string]interface{}{{"name": "apple", "id": "a"}}, Config{Columns: cols})
	require.NoError(t, err)
	assert.Equal(t, cols, d.Columns)
}

func TestNewFromJSON(t *testing.T) {
	logger, _ := logtest.NewNullLogger()
	ctx := context.Background()

	d, err := NewFromJSON(strings.NewReader(`[{"id":"a","qty":1},{"id":"b"}]`), Config{RowIDKey: "id"})
	require.NoError(t, err)
	tbl, err := d.NewTable(ctx, datatable.WithLogger(logger))
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, tbl.RowIDs())

	cell, ok := tbl.CellByKey("b", "qty")
	require.True(t, ok)
	assert.Equal(t, datatable.NoValueText, cell.Display.Text)

	d, err = NewFromJSON(strings.NewReader(`{"id":"only"}`), Config{RowIDKey: "id"})
	require.NoError(t, err)
	assert.Len(t, d.Rows, 1)

	_, err = NewFromJSON(strings.NewReader(`[]`), Config{})
	assert.ErrorIs(t, err, ErrEmpty)

	_, err = NewFromJSON(strings.NewReader(`not json`), Config{})
	assert.Error(t, err)
}
