package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matthewbaird/catalogview/internal/entitylink"
)

func newLinkCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "link",
		Short: "Generate and parse entity link tokens",
	}

	var column bool
	generate := &cobra.Command{
		Use:   "generate <fqn>",
		Short: "Print the entity link of a table, or of a column with --column",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			token, err := entitylink.Generate(args[0], column)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), token)
			return nil
		},
	}
	generate.Flags().BoolVar(&column, "column", false, "treat the FQN as a column FQN")

	var lenient, withColumn bool
	parse := &cobra.Command{
		Use:   "parse <token>",
		Short: "Decode an entity link",
		Long: `Decode an entity link and print it as JSON.

Passing --column prints only the entity FQN instead: the table FQN with
--column=false, table.column with --column. --lenient prints the entity FQN
the way the UI decodes it and never fails.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			switch {
			case lenient:
				fmt.Fprintln(out, entitylink.LenientEntityFQN(args[0], withColumn))
				return nil
			case cmd.Flags().Changed("column"):
				name, err := entitylink.EntityFQN(args[0], withColumn)
				if err != nil {
					return err
				}
				fmt.Fprintln(out, name)
				return nil
			}
			link, err := entitylink.Parse(args[0])
			if err != nil {
				return err
			}
			enc := json.NewEncoder(out)
			enc.SetIndent("", "  ")
			return enc.Encode(link)
		},
	}
	parse.Flags().BoolVar(&lenient, "lenient", false, "best-effort decoding, empty output instead of errors")
	parse.Flags().BoolVar(&withColumn, "column", false, "print the entity FQN, with the column appended when set")

	cmd.AddCommand(generate, parse)
	return cmd
}
