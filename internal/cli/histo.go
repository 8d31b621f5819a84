/*
 * histo.go, part of gtno.
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
	"encoding/json"
	"fmt"

	"github.com/luke-a-thompson/gtno/histo"
	"github.com/spf13/cobra"
)

func newHistoCmd(g *globalFlags) *cobra.Command {
	var bins int
	var normalize, asJSON bool
	cmd := &cobra.Command{
		Use:   "histo FILE",
		Short: "Print the energy histogram of a trajectory table",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := g.initContext(cmd)
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("bins") {
				bins = c.Config.Output.Bins
			}
			D, err := c.load(args[0])
			if err != nil {
				return err
			}
			h := histo.Energies(D, bins)
			if h == nil {
				return fmt.Errorf("%s has no records", args[0])
			}
			if normalize {
				h.Normalize()
			}
			if asJSON {
				raw, err := json.MarshalIndent(h, "", "  ")
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), string(raw))
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), h.String())
			return nil
		},
	}
	cmd.Flags().IntVarP(&bins, "bins", "b", 20, "Number of bins")
	cmd.Flags().BoolVarP(&normalize, "normalize", "n", false, "Print fractions instead of counts")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the histogram as JSON")
	return cmd
}
