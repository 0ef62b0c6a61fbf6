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

// Package widget provides a Fyne widget that renders a datatable.Table.
package widget

// Config holds the presentation options of a KeyedTable.
type Config struct {
	// ShowHeader shows the header row.
	ShowHeader bool

	// StripedRows shades every other data row.
	StripedRows bool

	// MinColumnWidth is the narrowest an auto-sized column may become.
	MinColumnWidth float32
}

// DefaultConfig returns the default presentation options.
func DefaultConfig() Config {
	return Config{
		ShowHeader:     true,
		StripedRows:    true,
		MinColumnWidth: 60,
	}
}
