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

package datatable

import (
	"context"
	"fmt"

	"fyne.io/fyne/v2"
)

// Formatter turns a raw value into its display form.
// rowID and columnKey are empty when the value does not belong to a row
// or column, as for the placeholder row. Implementations may block; the
// context is the one passed to the table operation.
type Formatter interface {
	Format(ctx context.Context, value interface{}, typ, rowID, columnKey string) (Formatted, error)
}

// FormatterFunc adapts a function to the Formatter interface.
type FormatterFunc func(ctx context.Context, value interface{}, typ, rowID, columnKey string) (Formatted, error)

// Format implements Formatter.
func (f FormatterFunc) Format(ctx context.Context, value interface{}, typ, rowID, columnKey string) (Formatted, error) {
	return f(ctx, value, typ, rowID, columnKey)
}

// DefaultFormatter passes fragments through unchanged, renders NoValueText
// for nil and empty values and the value's text form otherwise.
var DefaultFormatter Formatter = FormatterFunc(func(_ context.Context, value interface{}, _, _, _ string) (Formatted, error) {
	return formatValue(value), nil
})

// ActionsFormatter renders []Action values as an *ActionList fragment.
// An empty list renders as NoValueText.
var ActionsFormatter Formatter = FormatterFunc(func(_ context.Context, value interface{}, _, _, _ string) (Formatted, error) {
	var actions []Action
	switch v := value.(type) {
	case *ActionList:
		if v != nil && len(v.controls) > 0 {
			return FragmentValue(v), nil
		}
	case []Action:
		actions = v
	case []*Action:
		for _, a := range v {
			if a != nil {
				actions = append(actions, *a)
			}
		}
	case Action:
		actions = []Action{v}
	case nil:
	default:
		return formatValue(value), nil
	}

	if len(actions) == 0 {
		return formatValue(nil), nil
	}
	return FragmentValue(NewActionList(actions...)), nil
})

// formatValue converts a raw value to its default display form.
func formatValue(raw interface{}) Formatted {
	switch v := raw.(type) {
	case nil:
		return TextValue(NoValueText)
	case Formatted:
		return v
	case *ActionList:
		if v == nil {
			return TextValue(NoValueText)
		}
		return FragmentValue(v)
	case fyne.CanvasObject:
		return FragmentValue(v)
	case string:
		if v == "" {
			return TextValue(NoValueText)
		}
		return TextValue(v)
	}

	return TextValue(fmt.Sprintf("%v", raw))
}

// formatterFor selects the formatter for a type tag: a type-specific
// registration first, then the injected formatter. An empty tag looks up
// TypeText.
func (t *Table) formatterFor(typ string) Formatter {
	if typ == "" {
		typ = TypeText
	}
	if f, ok := t.typeFormatters[typ]; ok {
		return f
	}
	return t.formatter
}

// formatValueToCell formats value into cell. r is nil for cells outside a
// row; action controls inside the result are bound to r.
func (t *Table) formatValueToCell(ctx context.Context, cell *Cell, value interface{}, typ string, r *row, columnKey string) error {
	rowID := ""
	if r != nil {
		rowID = r.id
	}

	formatted, err := t.formatterFor(typ).Format(ctx, value, typ, rowID, columnKey)
	if err != nil {
		return fmt.Errorf("format value of row %q column %q: %w", rowID, columnKey, err)
	}

	if list, ok := formatted.Fragment.(*ActionList); ok && r != nil {
		list.bind(r)
	}

	cell.Display = formatted
	return nil
}
