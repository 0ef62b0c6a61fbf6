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
	"go/scanner"
	"go/token"
	"image/color"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/widget"
)

type tokenClass int

const (
	classPlain tokenClass = iota
	classKeyword
	classString
	classComment
	classNumber
	classOperator
	classBuiltin
	classFunction
)

// syntaxStyles maps a token class to its grid style. Plain text uses the
// theme color.
var syntaxStyles = map[tokenClass]widget.TextGridStyle{
	classKeyword: &widget.CustomTextGridStyle{
		FGColor:   color.NRGBA{R: 255, G: 20, B: 147, A: 255},
		TextStyle: fyne.TextStyle{Bold: true},
	},
	classString: &widget.CustomTextGridStyle{
		FGColor: color.NRGBA{R: 0, G: 180, B: 0, A: 255},
	},
	classComment: &widget.CustomTextGridStyle{
		FGColor:   color.NRGBA{R: 128, G: 128, B: 128, A: 255},
		TextStyle: fyne.TextStyle{Italic: true},
	},
	classNumber: &widget.CustomTextGridStyle{
		FGColor: color.NRGBA{R: 0, G: 150, B: 255, A: 255},
	},
	classOperator: &widget.CustomTextGridStyle{
		FGColor: color.NRGBA{R: 120, G: 120, B: 120, A: 255},
	},
	classBuiltin: &widget.CustomTextGridStyle{
		FGColor:   color.NRGBA{R: 0, G: 180, B: 180, A: 255},
		TextStyle: fyne.TextStyle{Bold: true},
	},
	classFunction: &widget.CustomTextGridStyle{
		FGColor: color.NRGBA{R: 255, G: 140, B: 0, A: 255},
	},
}

var builtinIdents = map[string]bool{
	"bool": true, "byte": true, "complex64": true, "complex128": true,
	"error": true, "float32": true, "float64": true, "int": true,
	"int8": true, "int16": true, "int32": true, "int64": true,
	"rune": true, "string": true, "uint": true, "uint8": true,
	"uint16": true, "uint32": true, "uint64": true, "uintptr": true,
	"any": true, "nil": true, "true": true, "false": true,
}

// highlight returns one styled grid row per line of src.
func highlight(src string) []widget.TextGridRow {
	lines := strings.Split(src, "\n")
	rows := make([]widget.TextGridRow, len(lines))
	for i, line := range lines {
		rows[i] = highlightLine(line)
	}
	return rows
}

// highlightLine styles one line of Go source. Lines are scanned on their
// own, so a block comment spanning several lines is styled on its first
// line only.
func highlightLine(line string) widget.TextGridRow {
	classes := make([]tokenClass, len(line))

	fset := token.NewFileSet()
	file := fset.AddFile("", fset.Base(), len(line))
	var s scanner.Scanner
	s.Init(file, []byte(line), func(token.Position, string) {}, scanner.ScanComments)

	afterFunc := false
	for {
		pos, tok, lit := s.Scan()
		if tok == token.EOF {
			break
		}
		if tok == token.SEMICOLON && lit == "\n" {
			continue
		}

		text := lit
		if text == "" {
			text = tok.String()
		}
		class := classify(tok, lit, afterFunc)
		afterFunc = tok == token.FUNC

		start := file.Offset(pos)
		for i := start; i < start+len(text) && i < len(classes); i++ {
			classes[i] = class
		}
	}

	row := widget.TextGridRow{Cells: make([]widget.TextGridCell, 0, len(line))}
	for i, r := range line {
		row.Cells = append(row.Cells, widget.TextGridCell{Rune: r, Style: syntaxStyles[classes[i]]})
	}
	return row
}

func classify(tok token.Token, lit string, afterFunc bool) tokenClass {
	switch {
	case tok.IsKeyword():
		return classKeyword
	case tok == token.STRING || tok == token.CHAR:
		return classString
	case tok == token.COMMENT:
		return classComment
	case tok == token.INT || tok == token.FLOAT || tok == token.IMAG:
		return classNumber
	case tok == token.IDENT && afterFunc:
		return classFunction
	case tok == token.IDENT && builtinIdents[lit]:
		return classBuiltin
	case tok.IsOperator():
		return classOperator
	default:
		return classPlain
	}
}
