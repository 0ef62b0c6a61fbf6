package datatable

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func actionTable(t *testing.T, ids ...string) *Table {
	t.Helper()
	ctx := context.Background()
	tbl, _ := newTestTable(t)
	require.NoError(t, tbl.SetColumns(ctx, []Column{
		{Key: "name", Label: "Name"},
		{Key: "actions", Label: "", Type: TypeActions},
	}))

	rows := make([]Row, len(ids))
	for i, id := range ids {
		rows[i] = Row{
			"id":   id,
			"name": id,
			"actions": []Action{
				{Label: "Up", UpdateType: UpdateDisableOnFirstRow},
				{Label: "Down", UpdateType: UpdateDisableOnLastRow},
				{Label: "Delete"},
			},
		}
	}
	require.NoError(t, tbl.SetRows(ctx, rows))
	return tbl
}

func controls(t *testing.T, tbl *Table, id string) []*ActionControl {
	t.Helper()
	cell, ok := tbl.CellByKey(id, "actions")
	require.True(t, ok)
	list, ok := cell.Display.Fragment.(*ActionList)
	require.True(t, ok, "actions cell of %s holds an action list", id)
	return list.Controls()
}

func TestActionEnablementAfterMove(t *testing.T) {
	ctx := context.Background()
	tbl := actionTable(t, "r1", "r2", "r3")

	assert.True(t, controls(t, tbl, "r1")[0].Disabled())
	assert.False(t, controls(t, tbl, "r2")[0].Disabled())
	assert.True(t, controls(t, tbl, "r3")[1].Disabled())

	require.NoError(t, tbl.MoveRowUp(ctx, "r2"))
	assert.Equal(t, []string{"r2", "r1", "r3"}, tbl.RowIDs())

	assert.True(t, controls(t, tbl, "r2")[0].Disabled())
	assert.False(t, controls(t, tbl, "r1")[0].Disabled())
	assert.False(t, controls(t, tbl, "r3")[0].Disabled())

	assert.False(t, controls(t, tbl, "r2")[1].Disabled())
	assert.True(t, controls(t, tbl, "r3")[1].Disabled())

	for _, id := range tbl.RowIDs() {
		assert.False(t, controls(t, tbl, id)[2].Disabled(), "untagged action on %s", id)
	}
}

func TestActionStatesRecomputedAfterDelete(t *testing.T) {
	ctx := context.Background()
	tbl := actionTable(t, "r1", "r2")

	require.NoError(t, tbl.DeleteRow(ctx, "r1"))
	up := controls(t, tbl, "r2")[0]
	down := controls(t, tbl, "r2")[1]
	assert.True(t, up.Disabled())
	assert.True(t, down.Disabled())

	require.NoError(t, tbl.AddRow(ctx, Row{"id": "r0", "name": "r0"}, Before("r2")))
	assert.False(t, up.Disabled())
	assert.True(t, down.Disabled())
}

func TestActionControlBackReference(t *testing.T) {
	tbl := actionTable(t, "r1", "r2")

	for _, id := range tbl.RowIDs() {
		for _, c := range controls(t, tbl, id) {
			assert.Equal(t, id, c.RowID())
		}
	}
}

func TestActionInvoke(t *testing.T) {
	ctx := context.Background()
	tbl, _ := newTestTable(t)
	require.NoError(t, tbl.SetColumns(ctx, []Column{{Key: "actions", Type: TypeActions}}))

	moved := 0
	require.NoError(t, tbl.AddRow(ctx, Row{
		"id": "r1",
		"actions": []Action{{
			Label:      "Up",
			Title:      "Move up",
			UpdateType: UpdateDisableOnFirstRow,
			Action:     func() { moved++ },
		}},
	}, AtEnd))

	c := controls(t, tbl, "r1")[0]
	assert.Equal(t, "Move up", c.Title())
	assert.False(t, c.Invoke(), "disabled control does not run")
	assert.Equal(t, 0, moved)

	require.NoError(t, tbl.AddRow(ctx, Row{"id": "r0"}, Before("r1")))
	assert.True(t, c.Invoke())
	assert.Equal(t, 1, moved)
}

func TestEmptyActionListRendersNoValue(t *testing.T) {
	ctx := context.Background()
	tbl, _ := newTestTable(t)
	require.NoError(t, tbl.SetColumns(ctx, []Column{{Key: "actions", Type: TypeActions}}))
	require.NoError(t, tbl.SetRows(ctx, []Row{
		{"id": "empty", "actions": []Action{}},
		{"id": "absent"},
	}))

	for _, id := range []string{"empty", "absent"} {
		cell, ok := tbl.CellByKey(id, "actions")
		require.True(t, ok)
		assert.False(t, cell.HasFragment())
		assert.Equal(t, NoValueText, cell.Display.Text)
	}
}

func TestParseUpdateType(t *testing.T) {
	tests := []struct {
		in   string
		want UpdateType
	}{
		{"", UpdateNone},
		{"none", UpdateNone},
		{"disable-on-first", UpdateDisableOnFirstRow},
		{"disable-on-first-row", UpdateDisableOnFirstRow},
		{"Disable-On-Last-Row", UpdateDisableOnLastRow},
	}
	for _, tt := range tests {
		got, err := ParseUpdateType(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}

	_, err := ParseUpdateType("sideways")
	assert.Error(t, err)
	assert.Equal(t, "disable-on-last-row", UpdateDisableOnLastRow.String())
}
