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

package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/magpierre/fyne-keyedtable/adapters"
	"github.com/magpierre/fyne-keyedtable/datatable"
	"github.com/magpierre/fyne-keyedtable/formatter/script"
	"github.com/magpierre/fyne-keyedtable/internal/loader"
	"github.com/magpierre/fyne-keyedtable/internal/logging"
)

const envPrefix = "KEYEDTABLE"

// config is read from flags, KEYEDTABLE_* variables and the config file, in
// that order of precedence.
type config struct {
	RowID       string             `mapstructure:"row-id"`
	NoRowsLabel string             `mapstructure:"no-rows-label"`
	LogLevel    string             `mapstructure:"log-level"`
	LogFormat   string             `mapstructure:"log-format"`
	Delimiter   string             `mapstructure:"delimiter"`
	Sheet       string             `mapstructure:"sheet"`
	Timeout     int                `mapstructure:"timeout"`
	Columns     []datatable.Column `mapstructure:"columns"`

	// Scripts maps a column type to a Go source file declaring the
	// formatter for that type.
	Scripts map[string]string `mapstructure:"scripts"`
}

type cli struct {
	v      *viper.Viper
	cfg    config
	log    *logrus.Logger
	stdout io.Writer
	stderr io.Writer
}

func newRootCommand(stdout, stderr io.Writer) *cobra.Command {
	c := &cli{
		v:      viper.New(),
		stdout: stdout,
		stderr: stderr,
	}

	root := &cobra.Command{
		Use:          "keyedtable",
		Short:        "Keyed table viewer",
		Long:         "Show, print, browse and export CSV, JSON, Parquet and Excel files as a keyed table.",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return c.init(cmd)
		},
	}
	root.SetOut(stdout)
	root.SetErr(stderr)

	flags := root.PersistentFlags()
	flags.String("config", "", "YAML config file with columns and script formatters")
	flags.String("row-id", "", "field holding the row identity (default: record index)")
	flags.String("no-rows-label", "No rows", "text shown when the table has columns but no rows")
	flags.String("log-level", "info", "log level (debug, info, warn, error)")
	flags.String("log-format", "text", "log format (text, json, json-pretty)")
	flags.String("delimiter", "", "CSV delimiter, detected from the first line when empty")
	flags.String("sheet", "", "Excel sheet name (default: first sheet)")
	flags.Int("timeout", 60, "load and export timeout in seconds")

	root.AddCommand(
		newShowCommand(c),
		newPrintCommand(c),
		newBrowseCommand(c),
		newExportCommand(c),
	)
	return root
}

func (c *cli) init(cmd *cobra.Command) error {
	c.v.SetEnvPrefix(envPrefix)
	c.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	c.v.AutomaticEnv()
	if err := c.v.BindPFlags(cmd.Flags()); err != nil {
		return err
	}

	if path := c.v.GetString("config"); path != "" {
		c.v.SetConfigFile(path)
		if err := c.v.ReadInConfig(); err != nil {
			return fmt.Errorf("failed to read config: %w", err)
		}
	}
	if err := c.v.Unmarshal(&c.cfg); err != nil {
		return fmt.Errorf("failed to decode config: %w", err)
	}

	log, err := logging.New(c.cfg.LogLevel, c.cfg.LogFormat, c.stderr)
	if err != nil {
		return err
	}
	c.log = log
	return nil
}

func (c *cli) timeoutContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if ctx == nil {
		ctx = context.Background()
	}
	timeout := c.cfg.Timeout
	if timeout <= 0 {
		timeout = 60
	}
	return context.WithTimeout(ctx, time.Duration(timeout)*time.Second)
}

// delimiter reads the delimiter setting; "tab" and "\t" select a tab.
func (c *cli) delimiter() rune {
	switch d := c.cfg.Delimiter; d {
	case "":
		return 0
	case "tab", `\t`:
		return '\t'
	default:
		return []rune(d)[0]
	}
}

// tableOptions returns the options shared by every command: logger,
// placeholder label and the script formatters.
func (c *cli) tableOptions(ctx context.Context) ([]datatable.Option, error) {
	opts := []datatable.Option{
		datatable.WithLogger(c.log),
		datatable.WithNoRowsLabel(c.cfg.NoRowsLabel),
	}
	for typ, path := range c.cfg.Scripts {
		src, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read formatter for type %q: %w", typ, err)
		}
		f, err := script.New(ctx, string(src))
		if err != nil {
			return nil, fmt.Errorf("formatter for type %q: %w", typ, err)
		}
		opts = append(opts, datatable.WithTypeFormatter(typ, f))
		c.log.WithFields(logrus.Fields{"type": typ, "script": path}).Debug("Registered script formatter")
	}
	return opts, nil
}

func (c *cli) loadDataset(ctx context.Context, path string) (*adapters.Dataset, error) {
	d, err := loader.LoadFile(ctx, path, loader.Options{
		RowIDKey:  c.cfg.RowID,
		Delimiter: c.delimiter(),
		Sheet:     c.cfg.Sheet,
		Logger:    c.log,
	})
	if err != nil {
		return nil, err
	}
	if len(c.cfg.Columns) > 0 {
		d.Columns = c.cfg.Columns
	}
	return d, nil
}

// loadTable reads path into a new table.
func (c *cli) loadTable(ctx context.Context, path string) (*datatable.Table, error) {
	d, err := c.loadDataset(ctx, path)
	if err != nil {
		return nil, err
	}
	opts, err := c.tableOptions(ctx)
	if err != nil {
		return nil, err
	}
	return d.NewTable(ctx, opts...)
}
