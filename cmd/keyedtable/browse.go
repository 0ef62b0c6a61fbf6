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

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/magpierre/fyne-keyedtable/termview"
)

type browseParams struct {
	save string
}

func newBrowseCommand(c *cli) *cobra.Command {
	params := browseParams{}

	cmd := &cobra.Command{
		Use:   "browse <file>",
		Short: "Reorder and delete rows and columns in the terminal",
		Long: `Browse a data file in the terminal.

Rows move with K and J, columns are selected with h and l and moved with H
and L, x deletes the selected row. With --save the table is exported on quit.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := c.timeoutContext(cmd.Context())
			tbl, err := c.loadTable(ctx, args[0])
			cancel()
			if err != nil {
				return err
			}

			// Edits happen interactively, after the load deadline.
			browser := termview.NewBrowser(context.WithoutCancel(cmd.Context()), tbl)
			p := tea.NewProgram(browser, tea.WithInput(cmd.InOrStdin()), tea.WithOutput(c.stdout))
			if _, err := p.Run(); err != nil {
				return fmt.Errorf("browser failed: %w", err)
			}

			if params.save == "" {
				return nil
			}
			ctx, cancel = c.timeoutContext(cmd.Context())
			defer cancel()
			return writeExport(ctx, c, tbl, params.save, "")
		},
	}

	cmd.Flags().StringVar(&params.save, "save", "", "export the edited table to this file on quit")
	return cmd
}
