package main

import (
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/gridsmith/internal/app/studio"
)

func newUndoCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "undo",
		Short: "Undo the last layout change",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.mutate("undo", func(svc *studio.Service) error {
				reportApplied(cmd, svc.Undo(), "Undone", "Nothing to undo")
				return nil
			})
		},
	}
}

func newRedoCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "redo",
		Short: "Redo the last undone layout change",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.mutate("redo", func(svc *studio.Service) error {
				reportApplied(cmd, svc.Redo(), "Redone", "Nothing to redo")
				return nil
			})
		},
	}
}

