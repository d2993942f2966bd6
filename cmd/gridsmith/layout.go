package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/gridsmith/internal/app/studio"
	"github.com/alexisbeaulieu97/gridsmith/internal/domain/layout"
)

func newLayoutCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "layout <site-type>",
		Short: "Replace the layout with a fresh one for a site type",
		Long:  "Replace the layout with a fresh one for a site type. Placed parts, the selection and undo history are discarded; the theme is kept.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			siteType, err := layout.ParseSiteType(args[0])
			if err != nil {
				return newCommandError("generate layout", "parsing site type", err,
					"Run 'gridsmith catalog --sites' to list supported site types.")
			}
			return app.mutate("generate layout", func(svc *studio.Service) error {
				l := svc.GenerateLayout(siteType)
				fmt.Fprintf(cmd.OutOrStdout(), "Generated %s layout %s\n", l.SiteType, l.ID)
				for _, area := range l.Areas {
					fmt.Fprintf(cmd.OutOrStdout(), "  %s (%s)\n", area.Label, area.ID)
				}
				return nil
			})
		},
	}
	return cmd
}
