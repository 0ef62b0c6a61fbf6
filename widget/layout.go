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

package widget

import (
	"strconv"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// ParseWidth converts a column width token to a size. Plain numbers and
// "px" values are fixed widths; "", "auto" and anything unparseable size
// the column to its content.
func ParseWidth(token string) (float32, bool) {
	token = strings.ToLower(strings.TrimSpace(token))
	token = strings.TrimSpace(strings.TrimSuffix(token, "px"))
	if token == "" || token == "auto" {
		return 0, false
	}
	v, err := strconv.ParseFloat(token, 32)
	if err != nil || v <= 0 {
		return 0, false
	}
	return float32(v), true
}

// columnLayout places one object per column at the shared column widths, so
// that every row using the same layout lines up with the header.
type columnLayout struct {
	widths []float32
}

var _ fyne.Layout = (*columnLayout)(nil)

func (l *columnLayout) width(i int) float32 {
	if i < len(l.widths) {
		return l.widths[i]
	}
	return 0
}

func (l *columnLayout) Layout(objects []fyne.CanvasObject, size fyne.Size) {
	pad := theme.Padding()
	x := float32(0)
	for i, o := range objects {
		w := l.width(i)
		if i == len(objects)-1 && size.Width-x > w {
			w = size.Width - x
		}
		o.Move(fyne.NewPos(x, 0))
		o.Resize(fyne.NewSize(w, size.Height))
		x += w + pad
	}
}

func (l *columnLayout) MinSize(objects []fyne.CanvasObject) fyne.Size {
	pad := theme.Padding()
	var w, h float32
	for i, o := range objects {
		if i > 0 {
			w += pad
		}
		w += l.width(i)
		h = max(h, o.MinSize().Height)
	}
	return fyne.NewSize(w, h)
}

// measure resolves the column widths: fixed tokens are used verbatim,
// auto columns take the widest cell in the column.
func measure(tokens []string, cells [][]fyne.CanvasObject, minWidth float32) []float32 {
	widths := make([]float32, len(tokens))
	for i, token := range tokens {
		if w, ok := ParseWidth(token); ok {
			widths[i] = w
			continue
		}
		w := minWidth
		for _, row := range cells {
			if i < len(row) {
				w = max(w, row[i].MinSize().Width)
			}
		}
		widths[i] = w
	}
	return widths
}
