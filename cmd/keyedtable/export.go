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
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/magpierre/fyne-keyedtable/datatable"
	"github.com/magpierre/fyne-keyedtable/export"
)

type exportParams struct {
	format string
}

func newExportCommand(c *cli) *cobra.Command {
	params := exportParams{}

	cmd := &cobra.Command{
		Use:   "export <input> <output>",
		Short: "Convert a data file through the table",
		Long: `Load a data file into a keyed table and write the displayed values.

The output format is taken from --format or from the output file extension
(.parquet, .csv, .json, .xlsx).`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := c.timeoutContext(cmd.Context())
			defer cancel()

			tbl, err := c.loadTable(ctx, args[0])
			if err != nil {
				return err
			}
			return writeExport(ctx, c, tbl, args[1], params.format)
		},
	}

	cmd.Flags().StringVar(&params.format, "format", "", "output format (parquet, csv, json, xlsx)")
	return cmd
}

func writeExport(ctx context.Context, c *cli, src datatable.DataSource, path, format string) error {
	var (
		f   export.Format
		err error
	)
	if format != "" {
		f, err = export.ParseFormat(format)
	} else {
		f, err = export.FormatFromPath(path)
	}
	if err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	if err := export.Write(out, src, f); err != nil {
		out.Close()
		return err
	}
	if err := out.Close(); err != nil {
		return err
	}

	c.log.WithFields(logrus.Fields{
		"file":   path,
		"format": f.String(),
		"rows":   src.RowCount(),
	}).Info("Exported table")
	return nil
}
