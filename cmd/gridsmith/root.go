package main

import (
	"github.com/spf13/cobra"
)

// standaloneAnnotation marks commands that run without settings or a project.
const standaloneAnnotation = "gridsmith/standalone"

type rootFlags struct {
	project    string
	configPath string
	verbose    bool
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}
	app := &AppContext{}

	cmd := &cobra.Command{
		Use:           "gridsmith",
		Short:         "Gridsmith composes page layouts and color themes from the terminal",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Annotations[standaloneAnnotation] != "" {
				return nil
			}
			return app.init(cmd, flags)
		},
	}

	cmd.PersistentFlags().StringVarP(&flags.project, "project", "p", "", "Project file (defaults to the configured project)")
	cmd.PersistentFlags().StringVar(&flags.configPath, "config", "", "Settings file (defaults to gridsmith.yaml in the config dir or working dir)")
	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable debug logging")

	cmd.AddCommand(newNewCmd(app))
	cmd.AddCommand(newShowCmd(app))
	cmd.AddCommand(newLayoutCmd(app))
	cmd.AddCommand(newPartCmd(app))
	cmd.AddCommand(newUndoCmd(app))
	cmd.AddCommand(newRedoCmd(app))
	cmd.AddCommand(newColorsCmd(app))
	cmd.AddCommand(newThemeCmd(app))
	cmd.AddCommand(newRunCmd(app))
	cmd.AddCommand(newExportCmd(app))
	cmd.AddCommand(newEditCmd(app))
	cmd.AddCommand(newCatalogCmd())
	cmd.AddCommand(newVersionCmd())

	return cmd
}
