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

import "github.com/sirupsen/logrus"

// Option configures a Table.
type Option func(*Table)

// WithFormatter replaces the default formatter.
func WithFormatter(f Formatter) Option {
	return func(t *Table) {
		if f != nil {
			t.formatter = f
		}
	}
}

// WithTypeFormatter registers a formatter for one type tag. It takes
// precedence over the formatter set with WithFormatter, including for the
// built-in TypeActions tag.
func WithTypeFormatter(typ string, f Formatter) Option {
	return func(t *Table) {
		if f == nil {
			delete(t.typeFormatters, typ)
			return
		}
		t.typeFormatters[typ] = f
	}
}

// WithRowUpdater injects the callback receiving the displayed values of
// columns flagged UpdateRows.
func WithRowUpdater(u RowUpdater) Option {
	return func(t *Table) {
		t.rowUpdater = u
	}
}

// WithRowIDKey selects the row field holding the row identity.
func WithRowIDKey(key string) Option {
	return func(t *Table) {
		t.rowIDKey = key
	}
}

// WithNoRowsLabel sets the label shown by the placeholder row.
func WithNoRowsLabel(label string) Option {
	return func(t *Table) {
		t.noRowsLabel = label
	}
}

// WithLogger sets the logger. The default is the logrus standard logger.
func WithLogger(log logrus.FieldLogger) Option {
	return func(t *Table) {
		if log != nil {
			t.log = log
		}
	}
}

// WithStyleSheet sets the registry receiving column widths.
func WithStyleSheet(s StyleSheet) Option {
	return func(t *Table) {
		if s != nil {
			t.styles = s
		}
	}
}

// UpdateOption controls the derived-state pass run after a mutation.
type UpdateOption func(*updateConfig)

type updateConfig struct {
	update bool
}

// WithoutUpdate suppresses the derived-state pass after a mutation.
// The caller is expected to call Update once its batch is done.
func WithoutUpdate() UpdateOption {
	return func(c *updateConfig) {
		c.update = false
	}
}

func autoUpdate(opts []UpdateOption) bool {
	c := updateConfig{update: true}
	for _, opt := range opts {
		opt(&c)
	}
	return c.update
}
