package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/gridsmith/internal/app/studio"
	"github.com/alexisbeaulieu97/gridsmith/internal/domain/layout"
	"github.com/alexisbeaulieu97/gridsmith/internal/project"
)

type newOptions struct {
	site   string
	output string
	force  bool
}

func newNewCmd(app *AppContext) *cobra.Command {
	opts := &newOptions{}

	cmd := &cobra.Command{
		Use:   "new [name]",
		Short: "Create a project with a fresh layout and the default theme",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := ""
			if len(args) == 1 {
				name = args[0]
			}
			return runNew(cmd, app, name, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.site, "site", "s", "", "Site type (landing-page, blog, corporate, app, dashboard, portfolio, ecommerce)")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "Project file to create (defaults to --project)")
	cmd.Flags().BoolVarP(&opts.force, "force", "f", false, "Overwrite an existing project file")

	return cmd
}

func runNew(cmd *cobra.Command, app *AppContext, name string, opts *newOptions) error {
	if opts.output != "" {
		app.ProjectPath = opts.output
	}

	siteType := app.Settings.ParsedSiteType()
	if opts.site != "" {
		parsed, err := layout.ParseSiteType(opts.site)
		if err != nil {
			return newCommandError("create project", "parsing site type", err,
				"Run 'gridsmith catalog --sites' to list supported site types.")
		}
		siteType = parsed
	}

	if project.Exists(app.ProjectPath) && !opts.force {
		return newCommandError("create project", fmt.Sprintf("writing %s", app.ProjectPath),
			errors.New("project file already exists"), "Pass --force to overwrite it or choose another path with -o.")
	}

	svcOpts := append(app.studioOptions(), studio.WithTheme(app.Settings.Theme()))
	if name != "" {
		svcOpts = append(svcOpts, studio.WithName(name))
	}
	svc := studio.New(siteType, svcOpts...)

	if err := app.save("create project", svc); err != nil {
		return err
	}

	snap := svc.Snapshot()
	fmt.Fprintf(cmd.OutOrStdout(), "Created %s: %q (%s layout, %d areas)\n",
		app.ProjectPath, snap.Meta.Name, snap.Layout.SiteType, len(snap.Layout.Areas))
	return nil
}
