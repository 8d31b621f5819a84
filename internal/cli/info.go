/*
 * info.go, part of gtno.
 *
 * Copyright 2026 The gtno authors
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

package cli

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/luke-a-thompson/gtno/chemstat"
	"github.com/spf13/cobra"
)

func newInfoCmd(g *globalFlags) *cobra.Command {
	var verbose bool
	cmd := &cobra.Command{
		Use:   "info FILE",
		Short: "Summarize a trajectory table",
		Long:  `Show the column groups, energy and force statistics, skipped cells and inconsistent records of a trajectory table.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := g.initContext(cmd)
			if err != nil {
				return err
			}
			D, err := c.load(args[0])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			yellow := color.New(color.FgYellow)
			red := color.New(color.FgRed)

			yellow.Fprintf(out, "file %s\n", D.FileName())
			groups := D.Groups()
			fmt.Fprintf(out, "Columns: %d charge, %d coordinate, %d force\n", len(groups.Charges), len(groups.Coords), len(groups.Forces))
			if !groups.Aligned() {
				red.Fprintln(out, "Column groups differ in size")
			}
			if D.Len() == 0 {
				fmt.Fprintln(out, "No records")
				return nil
			}
			S, err := chemstat.Summarize(D)
			if err != nil {
				return err
			}
			fmt.Fprintln(out, S.String())

			diags := D.Diagnostics()
			problems := D.Validate()
			fmt.Fprintf(out, "Skipped cells: %d\n", len(diags))
			fmt.Fprintf(out, "Inconsistent records: %d\n", len(problems))
			if verbose {
				for _, d := range diags {
					red.Fprintf(out, "  %s\n", d.String())
				}
				for _, p := range problems {
					red.Fprintf(out, "  %v\n", p)
				}
			}
			return nil
		},
	}
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "List every skipped cell and inconsistent record")
	return cmd
}
