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
	"fyne.io/fyne/v2/app"
	"github.com/spf13/cobra"

	"github.com/magpierre/fyne-keyedtable/windows"
)

const appID = "com.magpierre.keyedtable"

type showParams struct {
	title   string
	actions bool
	striped bool
}

func newShowCommand(c *cli) *cobra.Command {
	params := showParams{}

	cmd := &cobra.Command{
		Use:   "show [file]",
		Short: "Open a data file in the table window",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := c.tableOptions(cmd.Context())
			if err != nil {
				return err
			}

			cfg := windows.DefaultConfig()
			cfg.Title = params.title
			cfg.NoRowsLabel = c.cfg.NoRowsLabel
			cfg.RowIDKey = c.cfg.RowID
			cfg.Columns = c.cfg.Columns
			cfg.RowActions = params.actions
			cfg.TimeoutSeconds = c.cfg.Timeout
			cfg.TableOptions = opts
			cfg.Table.StripedRows = params.striped
			cfg.Logger = c.log

			w := windows.NewMainWindow(app.NewWithID(appID), cfg)
			if len(args) == 1 {
				if err := w.LoadDataFile(args[0]); err != nil {
					return err
				}
			}
			w.ShowAndRun()
			return nil
		},
	}

	cmd.Flags().StringVar(&params.title, "title", "Keyed Table", "window title")
	cmd.Flags().BoolVar(&params.actions, "actions", true, "add the move and delete actions column")
	cmd.Flags().BoolVar(&params.striped, "striped", true, "stripe alternate rows")
	return cmd
}
