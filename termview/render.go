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

// Package termview renders a datatable in a terminal, either once as text or
// as an interactive browser that drives row and column moves.
package termview

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/magpierre/fyne-keyedtable/datatable"
)

const (
	// pixelsPerCell converts fixed pixel width tokens to terminal cells.
	pixelsPerCell = 8
	minCellWidth  = 3
	maxCellWidth  = 40
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Padding(0, 1).
			BorderStyle(lipgloss.NormalBorder()).
			BorderBottom(true)
	cellStyle        = lipgloss.NewStyle().Padding(0, 1)
	placeholderStyle = lipgloss.NewStyle().Faint(true).Italic(true).Align(lipgloss.Center)
)

// Render formats src as a static text table. When src reports a placeholder
// row it is rendered centered under the header.
func Render(src datatable.DataSource) string {
	columns, rows := project(src, -1)
	if len(columns) == 0 {
		return ""
	}

	styles := table.DefaultStyles()
	styles.Header = headerStyle
	styles.Cell = cellStyle
	styles.Selected = lipgloss.NewStyle()

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithStyles(styles),
	)
	t.SetHeight(len(rows) + lipgloss.Height(headerStyle.Render("")))

	view := t.View()
	if cell, _, ok := src.Placeholder(); ok {
		placeholder := placeholderStyle.
			Width(totalWidth(columns, styles)).
			Render(cell.Display.String())
		view = lipgloss.JoinVertical(lipgloss.Left, view, placeholder)
	}
	return view
}

// project converts src to bubbles columns and rows. selected marks the
// header of one column; -1 marks none.
func project(src datatable.DataSource, selected int) ([]table.Column, []table.Row) {
	n := src.ColumnCount()
	columns := make([]table.Column, 0, n)
	var tokens []string
	for i := 0; i < n; i++ {
		c, err := src.Column(i)
		if err != nil {
			continue
		}
		title := c.Label
		if i == selected {
			title = "[" + title + "]"
		}
		columns = append(columns, table.Column{Title: title, Width: runewidth.StringWidth(title)})
		tokens = append(tokens, c.Width)
	}

	rows := make([]table.Row, 0, src.RowCount())
	for i := 0; i < src.RowCount(); i++ {
		cells, err := src.Row(i)
		if err != nil {
			continue
		}
		record := make(table.Row, len(columns))
		for j := range record {
			if j < len(cells) {
				record[j] = cellText(cells[j])
			}
		}
		rows = append(rows, record)
	}

	for i := range columns {
		if w, ok := fixedWidth(tokens[i]); ok {
			columns[i].Width = w
			continue
		}
		w := max(columns[i].Width, minCellWidth)
		for _, r := range rows {
			w = max(w, runewidth.StringWidth(r[i]))
		}
		columns[i].Width = min(w, maxCellWidth)
	}
	return columns, rows
}

// cellText renders a cell as one line. Action controls show as "[Label]"
// when enabled and "(Label)" when disabled.
func cellText(cell datatable.Cell) string {
	list, ok := cell.Display.Fragment.(*datatable.ActionList)
	if !ok {
		return cell.Display.String()
	}
	labels := make([]string, 0, len(list.Controls()))
	for _, c := range list.Controls() {
		if c.Disabled() {
			labels = append(labels, "("+c.Label()+")")
		} else {
			labels = append(labels, "["+c.Label()+"]")
		}
	}
	if len(labels) == 0 {
		return datatable.NoValueText
	}
	return strings.Join(labels, " ")
}

// fixedWidth converts a "120" or "120px" token to terminal cells.
func fixedWidth(token string) (int, bool) {
	token = strings.TrimSuffix(strings.ToLower(strings.TrimSpace(token)), "px")
	px, err := strconv.Atoi(strings.TrimSpace(token))
	if err != nil || px <= 0 {
		return 0, false
	}
	return max(px/pixelsPerCell, minCellWidth), true
}

func totalWidth(columns []table.Column, styles table.Styles) int {
	pad := lipgloss.Width(styles.Cell.Render(""))
	w := 0
	for _, c := range columns {
		w += c.Width + pad
	}
	return w
}
