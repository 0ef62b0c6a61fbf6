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

// Package loader detects data file types and reads them through the matching
// adapter.
package loader

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/magpierre/fyne-keyedtable/adapters"
	arrowadapter "github.com/magpierre/fyne-keyedtable/adapters/arrow"
	sliceadapter "github.com/magpierre/fyne-keyedtable/adapters/slice"
	xlsxadapter "github.com/magpierre/fyne-keyedtable/adapters/xlsx"
)

// FileType represents the type of data file
type FileType int

const (
	FileTypeUnknown FileType = iota
	FileTypeCSV
	FileTypeParquet
	FileTypeJSON
	FileTypeXLSX
)

func (t FileType) String() string {
	switch t {
	case FileTypeCSV:
		return "csv"
	case FileTypeParquet:
		return "parquet"
	case FileTypeJSON:
		return "json"
	case FileTypeXLSX:
		return "xlsx"
	default:
		return "unknown"
	}
}

// ErrUnsupportedFileType is returned for files no adapter can read.
var ErrUnsupportedFileType = errors.New("unsupported file type")

// Options control how a file is read.
type Options struct {
	// RowIDKey names the field holding the row identity. Empty selects the
	// record index.
	RowIDKey string

	// Delimiter for CSV files. Zero detects it from the first line.
	Delimiter rune

	// Sheet for workbooks. Empty selects the first sheet.
	Sheet string

	Logger logrus.FieldLogger
}

// DetectFileType determines the type of file based on its extension
func DetectFileType(filePath string) FileType {
	switch strings.ToLower(filepath.Ext(filePath)) {
	case ".csv", ".tsv", ".txt":
		return FileTypeCSV
	case ".parquet":
		return FileTypeParquet
	case ".json":
		return FileTypeJSON
	case ".xlsx":
		return FileTypeXLSX
	default:
		return FileTypeUnknown
	}
}

// DetectCSVSeparator picks the most frequent of the common separators in the
// first line, defaulting to comma.
func DetectCSVSeparator(firstLine string) rune {
	separators := []rune{',', ';', '\t', '|'}

	maxCount := 0
	detected := ','
	for _, sep := range separators {
		if count := strings.Count(firstLine, string(sep)); count > maxCount {
			maxCount = count
			detected = sep
		}
	}
	return detected
}

// SeparatorName returns a human-readable name for the separator
func SeparatorName(sep rune) string {
	switch sep {
	case ',':
		return "comma"
	case ';':
		return "semicolon"
	case '\t':
		return "tab"
	case '|':
		return "pipe"
	default:
		return string(sep)
	}
}

// LoadFile reads filePath with the adapter matching its extension.
func LoadFile(ctx context.Context, filePath string, opts Options) (*adapters.Dataset, error) {
	typ := DetectFileType(filePath)
	if typ == FileTypeUnknown {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFileType, filepath.Base(filePath))
	}

	f, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer f.Close()

	d, err := Load(ctx, f, typ, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", filepath.Base(filePath), err)
	}
	d.Metadata["file"] = filePath
	return d, nil
}

// Load reads r as typ. Parquet needs random access, so a reader without
// io.ReaderAt and io.Seeker is buffered first.
func Load(ctx context.Context, r io.Reader, typ FileType, opts Options) (*adapters.Dataset, error) {
	log := opts.Logger
	if log == nil {
		log = logrus.StandardLogger()
	}
	log = log.WithField("type", typ.String())

	var (
		d   *adapters.Dataset
		err error
	)
	switch typ {
	case FileTypeCSV:
		d, err = loadCSV(r, opts, log)
	case FileTypeParquet:
		d, err = loadParquet(ctx, r, opts)
	case FileTypeJSON:
		d, err = sliceadapter.NewFromJSON(r, sliceadapter.Config{RowIDKey: opts.RowIDKey})
	case FileTypeXLSX:
		d, err = xlsxadapter.NewFromReader(r, xlsxadapter.Config{
			Sheet:      opts.Sheet,
			HasHeaders: true,
			RowIDKey:   opts.RowIDKey,
		})
	default:
		return nil, fmt.Errorf("%w: %v", ErrUnsupportedFileType, typ)
	}
	if err != nil {
		return nil, err
	}

	log.WithFields(logrus.Fields{
		"rows":    len(d.Rows),
		"columns": len(d.Columns),
	}).Debug("Loaded data")
	return d, nil
}

func loadCSV(r io.Reader, opts Options, log logrus.FieldLogger) (*adapters.Dataset, error) {
	br := bufio.NewReader(r)

	sep := opts.Delimiter
	if sep == 0 {
		line, err := br.Peek(4096)
		if err != nil && !errors.Is(err, io.EOF) && !errors.Is(err, bufio.ErrBufferFull) {
			return nil, err
		}
		first, _, _ := bytes.Cut(line, []byte("\n"))
		sep = DetectCSVSeparator(string(first))
		log.WithField("separator", SeparatorName(sep)).Debug("Detected CSV separator")
	}

	cfg := arrowadapter.DefaultCSVConfig()
	cfg.Delimiter = sep
	cfg.RowIDKey = opts.RowIDKey
	return arrowadapter.NewFromCSV(br, cfg)
}

func loadParquet(ctx context.Context, r io.Reader, opts Options) (*adapters.Dataset, error) {
	ra, ok := r.(interface {
		io.ReaderAt
		io.Seeker
		io.Reader
	})
	if !ok {
		content, err := io.ReadAll(r)
		if err != nil {
			return nil, err
		}
		ra = bytes.NewReader(content)
	}
	return arrowadapter.NewFromParquet(ctx, ra, arrowadapter.Config{RowIDKey: opts.RowIDKey})
}
