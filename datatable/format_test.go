package datatable

import (
	"context"
	"testing"

	"fyne.io/fyne/v2/canvas"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultFormatter(t *testing.T) {
	ctx := context.Background()
	text := canvas.NewText("fragment", nil)

	tests := []struct {
		name         string
		value        interface{}
		wantText     string
		wantFragment interface{}
	}{
		{name: "nil", value: nil, wantText: NoValueText},
		{name: "empty string", value: "", wantText: NoValueText},
		{name: "string", value: "hello", wantText: "hello"},
		{name: "int", value: 42, wantText: "42"},
		{name: "zero", value: 0, wantText: "0"},
		{name: "bool", value: false, wantText: "false"},
		{name: "canvas object", value: text, wantFragment: text},
		{name: "formatted passthrough", value: TextValue("as is"), wantText: "as is"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DefaultFormatter.Format(ctx, tt.value, "", "", "")
			require.NoError(t, err)
			assert.Equal(t, tt.wantText, got.Text)
			assert.Equal(t, tt.wantFragment, got.Fragment)
		})
	}
}

func TestTypeFormatterPrecedence(t *testing.T) {
	ctx := context.Background()
	upper := FormatterFunc(func(_ context.Context, value interface{}, _, _, _ string) (Formatted, error) {
		return TextValue("typed"), nil
	})
	general := FormatterFunc(func(_ context.Context, value interface{}, _, _, _ string) (Formatted, error) {
		return TextValue("general"), nil
	})

	tbl, _ := newTestTable(t, WithFormatter(general), WithTypeFormatter("special", upper))
	require.NoError(t, tbl.SetColumns(ctx, []Column{
		{Key: "a", Type: "special"},
		{Key: "b"},
		{Key: "c", Type: TypeActions},
	}))
	require.NoError(t, tbl.AddRow(ctx, Row{"id": "r1", "c": []Action{{Label: "Go"}}}, AtEnd))

	a, _ := tbl.CellByKey("r1", "a")
	b, _ := tbl.CellByKey("r1", "b")
	c, _ := tbl.CellByKey("r1", "c")
	assert.Equal(t, "typed", a.Display.Text)
	assert.Equal(t, "general", b.Display.Text)
	assert.True(t, c.HasFragment(), "built-in actions type wins over the general formatter")
}

func TestSetTypeFormatterText(t *testing.T) {
	ctx := context.Background()
	text := FormatterFunc(func(_ context.Context, value interface{}, _, _, _ string) (Formatted, error) {
		return TextValue("text"), nil
	})

	tbl, _ := newTestTable(t)
	require.NoError(t, tbl.SetColumns(ctx, []Column{{Key: "a"}, {Key: "b", Type: TypeText}}))
	require.NoError(t, tbl.AddRow(ctx, Row{"id": "r1", "a": "x", "b": "y"}, AtEnd))

	tbl.SetTypeFormatter(TypeText, text)
	a, _ := tbl.CellByKey("r1", "a")
	assert.Equal(t, "x", a.Display.Text, "existing cells keep their display")

	require.NoError(t, tbl.AddRow(ctx, Row{"id": "r2", "a": "x", "b": "y"}, AtEnd))
	a, _ = tbl.CellByKey("r2", "a")
	b, _ := tbl.CellByKey("r2", "b")
	assert.Equal(t, "text", a.Display.Text)
	assert.Equal(t, "text", b.Display.Text)

	tbl.SetTypeFormatter(TypeText, nil)
	require.NoError(t, tbl.AddRow(ctx, Row{"id": "r3", "a": "x"}, AtEnd))
	a, _ = tbl.CellByKey("r3", "a")
	assert.Equal(t, "x", a.Display.Text)
}

func TestPlacementString(t *testing.T) {
	assert.Equal(t, "at end", AtEnd.String())
	assert.Equal(t, `before "a"`, Before("a").String())
	assert.Equal(t, `after "b"`, After("b").String())
}
