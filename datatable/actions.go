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
	"fmt"
	"strings"
)

// UpdateType selects how an action's enablement follows its row's position.
type UpdateType int

const (
	// UpdateNone leaves the action enabled.
	UpdateNone UpdateType = iota
	// UpdateDisableOnFirstRow disables the action while its row is first.
	UpdateDisableOnFirstRow
	// UpdateDisableOnLastRow disables the action while its row is last.
	UpdateDisableOnLastRow
)

// String returns the string representation of an UpdateType.
func (u UpdateType) String() string {
	switch u {
	case UpdateNone:
		return "none"
	case UpdateDisableOnFirstRow:
		return "disable-on-first-row"
	case UpdateDisableOnLastRow:
		return "disable-on-last-row"
	default:
		return fmt.Sprintf("unknown(%d)", u)
	}
}

// ParseUpdateType parses the string form of an UpdateType.
// "disable-on-first" and "disable-on-last" are accepted as well.
func ParseUpdateType(s string) (UpdateType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "none":
		return UpdateNone, nil
	case "disable-on-first", "disable-on-first-row":
		return UpdateDisableOnFirstRow, nil
	case "disable-on-last", "disable-on-last-row":
		return UpdateDisableOnLastRow, nil
	default:
		return UpdateNone, fmt.Errorf("invalid action update type: %q", s)
	}
}

// Action is a labeled affordance attached to a row.
type Action struct {
	Label      string
	Title      string
	Action     func()
	UpdateType UpdateType
}

// ActionList is the fragment produced for the TypeActions type:
// one control per action.
type ActionList struct {
	controls []*ActionControl
}

// NewActionList creates one control per action, all enabled.
func NewActionList(actions ...Action) *ActionList {
	list := &ActionList{controls: make([]*ActionControl, len(actions))}
	for i, a := range actions {
		list.controls[i] = &ActionControl{action: a}
	}
	return list
}

// Controls returns the controls in order.
func (l *ActionList) Controls() []*ActionControl {
	return l.controls
}

// Labels returns the control labels in order.
func (l *ActionList) Labels() []string {
	labels := make([]string, len(l.controls))
	for i, c := range l.controls {
		labels[i] = c.action.Label
	}
	return labels
}

func (l *ActionList) bind(r *row) {
	for _, c := range l.controls {
		c.row = r
	}
}

// ActionControl is the rendered state of one Action.
type ActionControl struct {
	action   Action
	disabled bool

	// row is the owning row, set once when the cell is formatted.
	row *row
}

// Label returns the action label.
func (c *ActionControl) Label() string {
	return c.action.Label
}

// Title returns the action title.
func (c *ActionControl) Title() string {
	return c.action.Title
}

// UpdateType returns the action's position rule.
func (c *ActionControl) UpdateType() UpdateType {
	return c.action.UpdateType
}

// Disabled reports whether the control is currently disabled.
func (c *ActionControl) Disabled() bool {
	return c.disabled
}

// RowID returns the id of the owning row, or "" if unbound.
func (c *ActionControl) RowID() string {
	if c.row == nil {
		return ""
	}
	return c.row.id
}

// Invoke runs the action callback unless the control is disabled.
// It reports whether the callback ran.
func (c *ActionControl) Invoke() bool {
	if c.disabled || c.action.Action == nil {
		return false
	}
	c.action.Action()
	return true
}

// updateRowActionStates recomputes every position-tagged control from the
// current row order.
func (t *Table) updateRowActionStates() {
	for i := 0; i < t.rows.Len(); i++ {
		r := t.rows.At(i)
		for j := 0; j < r.cells.Len(); j++ {
			list, ok := r.cells.At(j).Display.Fragment.(*ActionList)
			if !ok {
				continue
			}
			for _, c := range list.controls {
				t.updateActionState(c)
			}
		}
	}
}

func (t *Table) updateActionState(c *ActionControl) {
	if c.row == nil {
		return
	}
	if current, ok := t.rows.Get(c.row.id); !ok || current != c.row {
		return
	}

	switch c.action.UpdateType {
	case UpdateDisableOnFirstRow:
		_, hasPrevious := t.rows.Previous(c.row.id)
		c.disabled = !hasPrevious
	case UpdateDisableOnLastRow:
		_, hasNext := t.rows.Next(c.row.id)
		c.disabled = !hasNext
	}
}
