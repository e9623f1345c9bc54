package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matthewbaird/catalogview/internal/routes"
)

func newPathCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "path <entity-type|search-index> <fqn>",
		Short: "Print the detail page path of an entity",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), routes.EntityPath(args[0], args[1]))
			return nil
		},
	}
}
