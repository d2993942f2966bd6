package main

import (
	"errors"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/alexisbeaulieu97/gridsmith/internal/logger"
	"github.com/alexisbeaulieu97/gridsmith/internal/tui"
)

var termIsTerminal = func(fd int) bool {
	return term.IsTerminal(fd)
}

func newEditCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "edit",
		Short: "Open the interactive layout editor",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !termIsTerminal(int(os.Stdout.Fd())) || !termIsTerminal(int(os.Stdin.Fd())) {
				return newCommandError("open editor", "checking terminal", errors.New("stdin and stdout must be a terminal"),
					"Use the part, colors and run commands for non-interactive edits.")
			}

			svc, err := app.open("open editor")
			if err != nil {
				return err
			}

			final, err := tea.NewProgram(tui.NewModel(svc), tea.WithAltScreen()).Run()
			if err != nil {
				return newCommandError("open editor", "running editor", err, "Check that your terminal supports full-screen programs.")
			}

			changes := 0
			if m, ok := final.(tui.Model); ok {
				changes = m.Changes()
			}
			app.Log.Info("editor closed", logger.Fields{"changes": changes})
			if changes == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No changes")
				return nil
			}
			if err := app.save("open editor", svc); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Saved %d changes to %s\n", changes, app.ProjectPath)
			return nil
		},
	}
}
