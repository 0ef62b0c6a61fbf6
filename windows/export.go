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

package windows

import (
	"fmt"

	"github.com/magpierre/fyne-keyedtable/datatable"
)

// exportSource returns the displayed table without the actions column.
func (t *MainWindow) exportSource() datatable.DataSource {
	var keep []int
	for i := 0; i < t.table.ColumnCount(); i++ {
		c, err := t.table.Column(i)
		if err == nil && c.Key != ActionsColumnKey {
			keep = append(keep, i)
		}
	}
	return &columnSubset{src: t.table, keep: keep}
}

// columnSubset projects a subset of the columns of src.
type columnSubset struct {
	src  datatable.DataSource
	keep []int
}

var _ datatable.DataSource = (*columnSubset)(nil)

func (s *columnSubset) RowCount() int {
	return s.src.RowCount()
}

func (s *columnSubset) ColumnCount() int {
	return len(s.keep)
}

func (s *columnSubset) index(col int) (int, error) {
	if col < 0 || col >= len(s.keep) {
		return 0, fmt.Errorf("%w: %d", datatable.ErrInvalidColumn, col)
	}
	return s.keep[col], nil
}

func (s *columnSubset) Column(col int) (datatable.Column, error) {
	i, err := s.index(col)
	if err != nil {
		return datatable.Column{}, err
	}
	return s.src.Column(i)
}

func (s *columnSubset) ColumnName(col int) (string, error) {
	i, err := s.index(col)
	if err != nil {
		return "", err
	}
	return s.src.ColumnName(i)
}

func (s *columnSubset) ColumnType(col int) (string, error) {
	i, err := s.index(col)
	if err != nil {
		return "", err
	}
	return s.src.ColumnType(i)
}

func (s *columnSubset) RowID(row int) (string, error) {
	return s.src.RowID(row)
}

func (s *columnSubset) Cell(row, col int) (datatable.Cell, error) {
	i, err := s.index(col)
	if err != nil {
		return datatable.Cell{}, err
	}
	return s.src.Cell(row, i)
}

func (s *columnSubset) Row(row int) ([]datatable.Cell, error) {
	all, err := s.src.Row(row)
	if err != nil {
		return nil, err
	}
	cells := make([]datatable.Cell, 0, len(s.keep))
	for _, i := range s.keep {
		if i < len(all) {
			cells = append(cells, all[i])
		}
	}
	return cells, nil
}

func (s *columnSubset) Placeholder() (datatable.Cell, int, bool) {
	cell, _, ok := s.src.Placeholder()
	return cell, len(s.keep), ok
}

func (s *columnSubset) Metadata() datatable.Metadata {
	return s.src.Metadata()
}
