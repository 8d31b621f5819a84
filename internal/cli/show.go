/*
 * show.go, part of gtno.
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

	"github.com/spf13/cobra"
)

func newShowCmd(g *globalFlags) *cobra.Command {
	var index int
	cmd := &cobra.Command{
		Use:   "show FILE",
		Short: "Print one record of a trajectory table",
		Long: `Print one record of a trajectory table: its timestep, energy, nuclear
charges, coordinates and forces. The record printed by default is set
by the index key of the [output] section of the configuration.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := g.initContext(cmd)
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("index") {
				index = c.Config.Output.Index
			}
			D, err := c.load(args[0])
			if err != nil {
				return err
			}
			r, ok := D.Get(index)
			if !ok {
				return fmt.Errorf("no record %d: %s has %d records", index, args[0], D.Len())
			}
			fmt.Fprint(cmd.OutOrStdout(), r.String())
			return nil
		},
	}
	cmd.Flags().IntVarP(&index, "index", "i", 4, "Index of the record to print")
	return cmd
}
