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

package loader

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/magpierre/fyne-keyedtable/datatable"
	"github.com/magpierre/fyne-keyedtable/export"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestDetectFileType(t *testing.T) {
	tests := map[string]FileType{
		"a.csv":         FileTypeCSV,
		"A.TSV":         FileTypeCSV,
		"data.parquet":  FileTypeParquet,
		"rows.json":     FileTypeJSON,
		"book.xlsx":     FileTypeXLSX,
		"profile.share": FileTypeUnknown,
		"no-extension":  FileTypeUnknown,
	}
	for path, want := range tests {
		assert.Equal(t, want, DetectFileType(path), path)
	}
}

func TestDetectCSVSeparator(t *testing.T) {
	assert.Equal(t, ';', DetectCSVSeparator("a;b;c"))
	assert.Equal(t, '\t', DetectCSVSeparator("a\tb"))
	assert.Equal(t, '|', DetectCSVSeparator("a|b|c,d"))
	assert.Equal(t, ',', DetectCSVSeparator("single"))
	assert.Equal(t, "semicolon", SeparatorName(';'))
}

func TestLoadFileCSV(t *testing.T) {
	logger, hook := logtest.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)
	path := writeFile(t, "fruit.csv", "id;name\nk1;apple\nk2;pear\n")

	d, err := LoadFile(context.Background(), path, Options{RowIDKey: "id", Logger: logger})
	require.NoError(t, err)
	require.Len(t, d.Rows, 2)
	assert.Equal(t, "pear", d.Rows[1]["name"])
	assert.Equal(t, path, d.Metadata["file"])

	var detected bool
	for _, e := range hook.AllEntries() {
		if e.Data["separator"] == "semicolon" {
			detected = true
		}
	}
	assert.True(t, detected)
}

func TestLoadFileJSON(t *testing.T) {
	path := writeFile(t, "fruit.json", `[{"id":"a","name":"apple"}]`)
	d, err := LoadFile(context.Background(), path, Options{RowIDKey: "id"})
	require.NoError(t, err)
	assert.Equal(t, "id", d.RowIDKey)
	assert.Len(t, d.Rows, 1)
}

func TestLoadExportedFormats(t *testing.T) {
	logger, _ := logtest.NewNullLogger()
	ctx := context.Background()
	src, err := datatable.NewWithData(ctx,
		[]datatable.Column{{Key: "id"}, {Key: "name"}},
		[]datatable.Row{{"id": "a", "name": "apple"}, {"id": "b", "name": "pear"}},
		datatable.WithRowIDKey("id"),
		datatable.WithLogger(logger),
	)
	require.NoError(t, err)

	for _, typ := range []FileType{FileTypeParquet, FileTypeXLSX} {
		t.Run(typ.String(), func(t *testing.T) {
			format, err := export.ParseFormat(typ.String())
			require.NoError(t, err)

			var buf bytes.Buffer
			require.NoError(t, export.Write(&buf, src, format))

			d, err := Load(ctx, &buf, typ, Options{RowIDKey: "id", Logger: logger})
			require.NoError(t, err)

			tbl, err := d.NewTable(ctx, datatable.WithLogger(logger))
			require.NoError(t, err)
			assert.Equal(t, []string{"a", "b"}, tbl.RowIDs())
		})
	}
}

func TestLoadFileUnsupported(t *testing.T) {
	_, err := LoadFile(context.Background(), "profile.share", Options{})
	assert.ErrorIs(t, err, ErrUnsupportedFileType)

	_, err = Load(context.Background(), strings.NewReader(""), FileTypeUnknown, Options{})
	assert.ErrorIs(t, err, ErrUnsupportedFileType)
}
