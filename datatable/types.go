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

// Package datatable provides a keyed table model that keeps its column order
// and the cell order of every row consistent while columns and rows are added,
// moved and removed at runtime.
package datatable

import (
	"fmt"
	"strings"
)

// Built-in format type tags.
const (
	// TypeText is the plain-text type. It is also what an empty type selects.
	TypeText = "text"
	// TypeActions renders a list of Action values as interactive controls.
	TypeActions = "actions"
)

// NoValueText is displayed for absent or empty values.
const NoValueText = "-"

// Column describes one keyed column of the table.
type Column struct {
	// Key identifies the column. It is unique within a table.
	Key string `json:"key" yaml:"key" mapstructure:"key"`

	// Label is the header text.
	Label string `json:"label" yaml:"label" mapstructure:"label"`

	// Type selects the formatter used for the column's cells.
	Type string `json:"type,omitempty" yaml:"type,omitempty" mapstructure:"type"`

	// UpdateRows marks the column's displayed values to be pushed back
	// to the host through the RowUpdater on every update.
	UpdateRows bool `json:"update-rows,omitempty" yaml:"update-rows,omitempty" mapstructure:"update-rows"`

	// Width is an optional size token such as "120", "120px" or "auto".
	Width string `json:"width,omitempty" yaml:"width,omitempty" mapstructure:"width"`
}

// Row is one data record. Its identity is the value stored under the
// table's row id key.
type Row map[string]interface{}

// Formatted is the display form of a value: plain text or an opaque
// rendered fragment.
type Formatted struct {
	Text string

	// Fragment is set when the value was rendered to something that cannot
	// be read back as text, such as a fyne.CanvasObject or an *ActionList.
	Fragment interface{}
}

// TextValue wraps plain text.
func TextValue(text string) Formatted {
	return Formatted{Text: text}
}

// FragmentValue wraps a rendered fragment.
func FragmentValue(fragment interface{}) Formatted {
	return Formatted{Fragment: fragment}
}

// IsFragment reports whether the value holds a fragment rather than text.
func (f Formatted) IsFragment() bool {
	return f.Fragment != nil
}

// String returns the text, or a best-effort text for known fragments.
func (f Formatted) String() string {
	if !f.IsFragment() {
		return f.Text
	}
	if list, ok := f.Fragment.(*ActionList); ok {
		return strings.Join(list.Labels(), ", ")
	}
	return ""
}

// Cell is a single row/column intersection.
type Cell struct {
	ColumnKey string
	Display   Formatted
}

// HasFragment reports whether the cell displays a fragment.
func (c Cell) HasFragment() bool {
	return c.Display.IsFragment()
}

// Metadata holds optional metadata about a data source.
type Metadata map[string]interface{}

// Placement positions a column or row relative to a neighbor.
// At most one of Before and After may be set; the zero value appends.
type Placement struct {
	Before string
	After  string
}

// AtEnd appends at the end.
var AtEnd = Placement{}

// Before places directly before the neighbor with the given key or id.
func Before(key string) Placement {
	return Placement{Before: key}
}

// After places directly after the neighbor with the given key or id.
func After(key string) Placement {
	return Placement{After: key}
}

// String returns a readable form used in log fields.
func (p Placement) String() string {
	switch {
	case p.Before != "" && p.After != "":
		return fmt.Sprintf("before %q and after %q", p.Before, p.After)
	case p.Before != "":
		return fmt.Sprintf("before %q", p.Before)
	case p.After != "":
		return fmt.Sprintf("after %q", p.After)
	default:
		return "at end"
	}
}

func (p Placement) neighbor() (string, bool) {
	if p.Before != "" {
		return p.Before, true
	}
	if p.After != "" {
		return p.After, true
	}
	return "", false
}

// check validates a placement used for an insertion of self.
func (p Placement) check(self string) error {
	if p.Before != "" && p.After != "" {
		return ErrConflictingPlacement
	}
	if self != "" && (p.Before == self || p.After == self) {
		return ErrSelfReference
	}
	return nil
}

// checkMove validates a placement used to move self; a neighbor is required.
func (p Placement) checkMove(self string) error {
	if p.Before == "" && p.After == "" {
		return ErrNoPlacement
	}
	return p.check(self)
}
