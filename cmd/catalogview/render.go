package main

import (
	"encoding/json"

	"github.com/spf13/cobra"

	"github.com/matthewbaird/catalogview/internal/render"
	"github.com/matthewbaird/catalogview/internal/widget"
)

func newRenderCmd(a *app) *cobra.Command {
	var (
		asJSON bool
		opts   widget.Options
	)
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render a widget from fixture data",
	}
	cmd.PersistentFlags().BoolVar(&asJSON, "json", false, "print the view model as JSON instead of HTML")
	cmd.PersistentFlags().BoolVar(&opts.Loading, "loading", false, "render the loading state")

	sub := func(name, short string) *cobra.Command {
		return &cobra.Command{
			Use:   name,
			Short: short,
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				b, err := a.builder()
				if err != nil {
					return err
				}
				m, err := b.Build(name, opts)
				if err != nil {
					return err
				}
				if asJSON {
					enc := json.NewEncoder(cmd.OutOrStdout())
					enc.SetIndent("", "  ")
					return enc.Encode(m)
				}
				return render.Widget(cmd.OutOrStdout(), name, m)
			},
		}
	}

	stats := sub(render.WidgetStats, "Render the asset stats panel")

	resolution := sub(render.WidgetResolution, "Render the resolution center table")
	resolution.Flags().IntVar(&opts.Page.Limit, "page-size", 0, "test cases per page")
	resolution.Flags().IntVar(&opts.Page.Offset, "offset", 0, "test cases to skip")
	resolution.Flags().BoolVar(&opts.ShowPagination, "pagination", true, "show pagination controls")

	sidebar := sub(render.WidgetSidebar, "Render the lineage sidebar")
	sidebar.Flags().BoolVar(&opts.ShowSidebar, "show", true, "render the sidebar open")

	columns := sub(render.WidgetColumns, "Render the schema tab of the fixture table")
	columns.Flags().BoolVar(&opts.ExpandColumns, "expand", false, "show nested columns")
	columns.Flags().BoolVar(&opts.DragColumns, "drag", false, "show column drag handles")

	cmd.AddCommand(stats, resolution, sidebar, columns)
	return cmd
}
