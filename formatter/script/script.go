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

// Package script provides a cell formatter written in Go source and run by
// the yaegi interpreter, so hosts can ship formatting rules as configuration.
//
// The source must declare a package with a function
//
//	func Format(value, typ, rowID, columnKey string) string
//
// value is the text form of the raw value, empty for absent values.
package script

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"go/parser"
	"go/token"
	"sync"

	"github.com/traefik/yaegi/interp"
	"github.com/traefik/yaegi/stdlib"

	"github.com/magpierre/fyne-keyedtable/datatable"
)

// FuncName is the function the script must declare.
const FuncName = "Format"

// ErrNoFormatFunc is returned when the script does not declare FuncName
// with the expected signature.
var ErrNoFormatFunc = errors.New("script does not declare func Format(string, string, string, string) string")

type formatFunc = func(value, typ, rowID, columnKey string) string

// Formatter is a datatable.Formatter backed by an interpreted script.
type Formatter struct {
	mu     sync.Mutex
	fn     formatFunc
	output bytes.Buffer
}

var _ datatable.Formatter = (*Formatter)(nil)

// New compiles src. Script output written to stdout or stderr is captured
// and available through Output.
func New(ctx context.Context, src string) (*Formatter, error) {
	pkg, err := packageName(src)
	if err != nil {
		return nil, err
	}

	f := &Formatter{}
	i := interp.New(interp.Options{
		Stdout: &f.output,
		Stderr: &f.output,
	})
	if err := i.Use(stdlib.Symbols); err != nil {
		return nil, fmt.Errorf("load stdlib symbols: %w", err)
	}

	if _, err := i.EvalWithContext(ctx, src); err != nil {
		return nil, fmt.Errorf("compile format script: %w", err)
	}

	v, err := i.EvalWithContext(ctx, pkg+"."+FuncName)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNoFormatFunc, err)
	}
	fn, ok := v.Interface().(formatFunc)
	if !ok {
		return nil, ErrNoFormatFunc
	}
	f.fn = fn
	return f, nil
}

// Format implements datatable.Formatter. The script always produces text;
// a nil or empty result is displayed as datatable.NoValueText.
func (f *Formatter) Format(ctx context.Context, value interface{}, typ, rowID, columnKey string) (datatable.Formatted, error) {
	if err := ctx.Err(); err != nil {
		return datatable.Formatted{}, err
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	raw := ""
	if value != nil {
		raw = fmt.Sprintf("%v", value)
	}

	text, err := f.call(raw, typ, rowID, columnKey)
	if err != nil {
		return datatable.Formatted{}, err
	}
	if text == "" {
		text = datatable.NoValueText
	}
	return datatable.TextValue(text), nil
}

// Output returns what the script printed so far.
func (f *Formatter) Output() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.output.String()
}

// call runs the interpreted function, turning a panic inside the script
// into an error.
func (f *Formatter) call(value, typ, rowID, columnKey string) (text string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("format script panicked: %v", r)
		}
	}()
	return f.fn(value, typ, rowID, columnKey), nil
}

func packageName(src string) (string, error) {
	file, err := parser.ParseFile(token.NewFileSet(), "format.go", src, parser.PackageClauseOnly)
	if err != nil {
		return "", fmt.Errorf("parse format script: %w", err)
	}
	return file.Name.Name, nil
}
