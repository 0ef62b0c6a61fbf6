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
	"fmt"

	"github.com/spf13/cobra"

	"github.com/magpierre/fyne-keyedtable/termview"
)

func newPrintCommand(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "print <file>",
		Short: "Print a data file as a table",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := c.timeoutContext(cmd.Context())
			defer cancel()

			tbl, err := c.loadTable(ctx, args[0])
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(c.stdout, termview.Render(tbl))
			return err
		},
	}
}
