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

package termview

import "github.com/charmbracelet/bubbles/key"

// KeyMap holds the browser bindings. Cursor movement within the rows is
// handled by the embedded bubbles table.
type KeyMap struct {
	RowUp       key.Binding
	RowDown     key.Binding
	ColumnLeft  key.Binding
	ColumnRight key.Binding
	MoveLeft    key.Binding
	MoveRight   key.Binding
	Delete      key.Binding
	Quit        key.Binding
}

// DefaultKeyMap returns the default bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		RowUp: key.NewBinding(
			key.WithKeys("K", "shift+up"),
			key.WithHelp("K", "move row up"),
		),
		RowDown: key.NewBinding(
			key.WithKeys("J", "shift+down"),
			key.WithHelp("J", "move row down"),
		),
		ColumnLeft: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "prev column"),
		),
		ColumnRight: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "next column"),
		),
		MoveLeft: key.NewBinding(
			key.WithKeys("H", "shift+left"),
			key.WithHelp("H", "move column left"),
		),
		MoveRight: key.NewBinding(
			key.WithKeys("L", "shift+right"),
			key.WithHelp("L", "move column right"),
		),
		Delete: key.NewBinding(
			key.WithKeys("x", "delete"),
			key.WithHelp("x", "delete row"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.RowUp, k.RowDown, k.MoveLeft, k.MoveRight, k.Delete, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.RowUp, k.RowDown, k.Delete},
		{k.ColumnLeft, k.ColumnRight, k.MoveLeft, k.MoveRight},
		{k.Quit},
	}
}
