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

package script

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/magpierre/fyne-keyedtable/datatable"
)

const upperScript = `package cells

import "strings"

func Format(value, typ, rowID, columnKey string) string {
	if value == "" {
		return ""
	}
	return strings.ToUpper(columnKey + ":" + value)
}
`

func TestScriptFormatter(t *testing.T) {
	ctx := context.Background()
	f, err := New(ctx, upperScript)
	require.NoError(t, err)

	got, err := f.Format(ctx, "abc", "text", "r1", "name")
	require.NoError(t, err)
	assert.Equal(t, "NAME:ABC", got.Text)
	assert.False(t, got.IsFragment())

	got, err = f.Format(ctx, nil, "", "", "")
	require.NoError(t, err)
	assert.Equal(t, datatable.NoValueText, got.Text)
}

func TestScriptFormatterInTable(t *testing.T) {
	ctx := context.Background()
	f, err := New(ctx, upperScript)
	require.NoError(t, err)

	tbl, err := datatable.NewWithData(ctx,
		[]datatable.Column{{Key: "name", Label: "Name", Type: "shout"}, {Key: "plain", Label: "Plain"}},
		[]datatable.Row{{"id": "r1", "name": "ada", "plain": "ada"}},
		datatable.WithRowIDKey("id"),
		datatable.WithTypeFormatter("shout", f),
	)
	require.NoError(t, err)

	shout, _ := tbl.CellByKey("r1", "name")
	plain, _ := tbl.CellByKey("r1", "plain")
	assert.Equal(t, "NAME:ADA", shout.Display.Text)
	assert.Equal(t, "ada", plain.Display.Text)
}

func TestScriptErrors(t *testing.T) {
	ctx := context.Background()

	_, err := New(ctx, "not go")
	assert.Error(t, err)

	_, err = New(ctx, "package cells\n\nfunc Other() string { return \"\" }\n")
	assert.ErrorIs(t, err, ErrNoFormatFunc)

	_, err = New(ctx, "package cells\n\nfunc Format(v int) int { return v }\n")
	assert.ErrorIs(t, err, ErrNoFormatFunc)

	cancelled, cancel := context.WithCancel(ctx)
	cancel()
	f, err := New(ctx, upperScript)
	require.NoError(t, err)
	_, err = f.Format(cancelled, "x", "", "", "")
	assert.ErrorIs(t, err, context.Canceled)
}
