package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matthewbaird/catalogview/internal/fqn"
)

func newFQNCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fqn",
		Short: "Inspect fully qualified names",
	}

	split := &cobra.Command{
		Use:   "split <fqn>",
		Short: "Print each segment of an FQN on its own line",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			segments, err := fqn.Split(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), strings.Join(segments, "\n"))
			return nil
		},
	}

	table := &cobra.Command{
		Use:   "table <column-fqn>",
		Short: "Print the table FQN and column name of a column FQN",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := fqn.TableFQNFromColumnFQN(args[0])
			if err != nil {
				return err
			}
			c, err := fqn.ColumnNameFromColumnFQN(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "table:  %s\ncolumn: %s\n", t, c)
			return nil
		},
	}

	var parts []string
	partial := &cobra.Command{
		Use:   "partial <fqn>",
		Short: "Print selected hierarchy parts of an FQN",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			want := make([]fqn.Part, 0, len(parts))
			for _, p := range parts {
				part, err := fqn.ParsePart(p)
				if err != nil {
					return err
				}
				want = append(want, part)
			}
			fmt.Fprintln(cmd.OutOrStdout(), fqn.PartialName(args[0], want, fqn.Separator))
			return nil
		},
	}
	partial.Flags().StringSliceVar(&parts, "part", []string{"table"}, "parts to extract (service, database, schema, table, column, ...)")

	cmd.AddCommand(split, table, partial)
	return cmd
}
