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

// Package windows is the desktop host for a keyed table: it loads data files,
// shows them with row actions and exports the displayed projection.
package windows

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	fynetooltip "github.com/dweymouth/fyne-tooltip"
	"github.com/sirupsen/logrus"

	"github.com/magpierre/fyne-keyedtable/datatable"
	"github.com/magpierre/fyne-keyedtable/export"
	"github.com/magpierre/fyne-keyedtable/internal/loader"
	kwidget "github.com/magpierre/fyne-keyedtable/widget"
)

// ActionsColumnKey is the column holding the per-row move and delete actions.
const ActionsColumnKey = "_actions"

// Config holds the window settings.
type Config struct {
	Title       string
	Width       float32
	Height      float32
	NoRowsLabel string

	// RowIDKey names the field holding the row identity in loaded files.
	// Empty selects the record index.
	RowIDKey string

	// Columns replaces the columns read from loaded files when set.
	Columns []datatable.Column

	// RowActions adds the move and delete actions column.
	RowActions bool

	// TimeoutSeconds bounds loads and exports.
	TimeoutSeconds int

	// TableOptions are applied when the table is created, after the
	// window's own options.
	TableOptions []datatable.Option

	Table  kwidget.Config
	Logger logrus.FieldLogger
}

// DefaultConfig returns the default window settings.
func DefaultConfig() Config {
	return Config{
		Title:          "Keyed Table",
		Width:          900,
		Height:         600,
		NoRowsLabel:    "No rows",
		RowActions:     true,
		TimeoutSeconds: 60,
		Table:          kwidget.DefaultConfig(),
	}
}

type MainWindow struct {
	a      fyne.App
	w      fyne.Window
	config Config
	log    logrus.FieldLogger

	table     *datatable.Table
	view      *kwidget.KeyedTable
	statusBar *widget.Label
	source    string
}

// NewMainWindow builds the window on a. The window is not shown.
func NewMainWindow(a fyne.App, cfg Config) *MainWindow {
	t := &MainWindow{
		a:      a,
		config: cfg,
		log:    cfg.Logger,
	}
	if t.log == nil {
		t.log = logrus.StandardLogger()
	}

	a.Settings().SetTheme(newAppTheme())

	opts := append([]datatable.Option{
		datatable.WithNoRowsLabel(cfg.NoRowsLabel),
		datatable.WithLogger(t.log),
	}, cfg.TableOptions...)
	t.table = datatable.New(opts...)
	t.view = kwidget.NewKeyedTableWithConfig(t.table, cfg.Table)

	t.statusBar = widget.NewLabel("Ready")
	t.statusBar.TextStyle = fyne.TextStyle{Italic: true}

	toolbar := widget.NewToolbar(
		widget.NewToolbarAction(theme.FolderOpenIcon(), t.showOpenDialog),
		widget.NewToolbarAction(theme.DocumentSaveIcon(), t.showExportDialog),
		widget.NewToolbarSeparator(),
		widget.NewToolbarAction(theme.DocumentCreateIcon(), t.ShowFormatterEditor),
		widget.NewToolbarAction(theme.ContentClearIcon(), t.clearRows),
	)

	t.w = a.NewWindow(cfg.Title)
	t.w.Resize(fyne.NewSize(cfg.Width, cfg.Height))

	content := container.NewBorder(toolbar, container.NewHBox(t.statusBar), nil, nil,
		container.NewScroll(t.view))
	t.w.SetContent(fynetooltip.AddWindowToolTipLayer(content, t.w.Canvas()))
	return t
}

// ShowAndRun shows the window and runs the application.
func (t *MainWindow) ShowAndRun() {
	t.w.ShowAndRun()
}

// Window returns the host window.
func (t *MainWindow) Window() fyne.Window {
	return t.w
}

// Table returns the displayed table.
func (t *MainWindow) Table() *datatable.Table {
	return t.table
}

// SetStatus updates the status bar message
func (t *MainWindow) SetStatus(message string) {
	if t.statusBar != nil {
		t.statusBar.SetText(message)
	}
}

// LoadDataFile replaces the table content with the file at filePath.
func (t *MainWindow) LoadDataFile(filePath string) error {
	ctx, cancel := createTimeoutContext(t.config.TimeoutSeconds)
	defer cancel()

	t.SetStatus("Loading file: " + filepath.Base(filePath))
	d, err := loader.LoadFile(ctx, filePath, loader.Options{
		RowIDKey: t.config.RowIDKey,
		Logger:   t.log,
	})
	if err != nil {
		t.SetStatus("Error loading file")
		return err
	}

	if len(t.config.Columns) > 0 {
		d.Columns = t.config.Columns
	}
	if t.config.RowActions {
		d.Columns = append(d.Columns, datatable.Column{Key: ActionsColumnKey, Type: datatable.TypeActions})
		for _, row := range d.Rows {
			row[ActionsColumnKey] = t.rowActions(ctx, fmt.Sprintf("%v", row[d.RowIDKey]))
		}
	}

	if err := d.Load(ctx, t.table); err != nil {
		t.SetStatus("Error loading file")
		return fmt.Errorf("failed to load %s: %w", filepath.Base(filePath), err)
	}

	t.source = filePath
	t.SetStatus(fmt.Sprintf("Loaded %s (%d rows, %d columns)",
		filepath.Base(filePath), t.table.RowCount(), t.table.ColumnCount()))
	return nil
}

// Export writes the displayed table to filePath in the format matching its
// extension. The actions column is not exported.
func (t *MainWindow) Export(filePath string) error {
	format, err := export.FormatFromPath(filePath)
	if err != nil {
		return err
	}

	f, err := os.Create(filePath)
	if err != nil {
		return fmt.Errorf("failed to create export file: %w", err)
	}
	defer f.Close()

	if err := export.Write(f, t.exportSource(), format); err != nil {
		return fmt.Errorf("export failed: %w", err)
	}
	t.SetStatus(fmt.Sprintf("Exported %d rows to %s", t.table.RowCount(), filepath.Base(filePath)))
	return nil
}

// rowActions builds the actions shown in the row with the given id. The
// table disables Up on the first row and Down on the last.
func (t *MainWindow) rowActions(ctx context.Context, id string) []datatable.Action {
	// The load context is cancelled once loading returns.
	ctx = context.WithoutCancel(ctx)
	return []datatable.Action{
		{
			Label:      "▲",
			Title:      "Move row up",
			UpdateType: datatable.UpdateDisableOnFirstRow,
			Action:     func() { t.report(t.table.MoveRowUp(ctx, id)) },
		},
		{
			Label:      "▼",
			Title:      "Move row down",
			UpdateType: datatable.UpdateDisableOnLastRow,
			Action:     func() { t.report(t.table.MoveRowDown(ctx, id)) },
		},
		{
			Label:  "✕",
			Title:  "Delete row",
			Action: func() { t.report(t.table.DeleteRow(ctx, id)) },
		},
	}
}

func (t *MainWindow) report(err error) {
	if err != nil {
		dialog.ShowError(err, t.w)
	}
}

func (t *MainWindow) clearRows() {
	t.report(t.table.SetRows(context.Background(), nil))
	t.SetStatus("Cleared rows")
}

func (t *MainWindow) showOpenDialog() {
	open := dialog.NewFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil {
			dialog.ShowError(err, t.w)
			return
		}
		if reader == nil {
			return
		}
		path := reader.URI().Path()
		reader.Close()

		if err := t.LoadDataFile(path); err != nil {
			dialog.ShowError(err, t.w)
		}
	}, t.w)
	open.SetFilter(storage.NewExtensionFileFilter([]string{".csv", ".tsv", ".txt", ".json", ".parquet", ".xlsx"}))
	open.Resize(fyne.NewSize(800, 600))
	open.Show()
}

func (t *MainWindow) showExportDialog() {
	save := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil {
			dialog.ShowError(err, t.w)
			return
		}
		if writer == nil {
			return
		}
		path := writer.URI().Path()
		writer.Close()

		if err := t.Export(path); err != nil {
			dialog.ShowError(err, t.w)
			return
		}
		dialog.ShowInformation("Export Successful",
			fmt.Sprintf("Data exported successfully to:\n%s", path), t.w)
	}, t.w)
	save.SetFileName(exportFileName(t.source, ".csv"))
	save.Resize(fyne.NewSize(800, 600))
	save.Show()
}
