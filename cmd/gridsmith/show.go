package main

import (
	"fmt"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/gridsmith/internal/app/studio"
	"github.com/alexisbeaulieu97/gridsmith/internal/domain/color"
	"github.com/alexisbeaulieu97/gridsmith/internal/export"
)

type showOptions struct {
	jsonOutput bool
}

func newShowCmd(app *AppContext) *cobra.Command {
	opts := &showOptions{}

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show the layout, parts and theme of the project",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := app.open("show project")
			if err != nil {
				return err
			}
			if opts.jsonOutput {
				data, err := export.Render(svc.Snapshot(), export.FormatJSON)
				if err != nil {
					return newCommandError("show project", "encoding json", err, "Report this as a bug.")
				}
				_, err = cmd.OutOrStdout().Write(data)
				return err
			}
			return renderShow(cmd, svc.Snapshot())
		},
	}

	cmd.Flags().BoolVar(&opts.jsonOutput, "json", false, "Output the export document as JSON")

	return cmd
}

func renderShow(cmd *cobra.Command, snap studio.ReadModel) error {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Design:   %s\n", snap.Meta.Name)
	fmt.Fprintf(out, "Site:     %s\n", snap.Layout.SiteType)
	fmt.Fprintf(out, "Layout:   %s\n", snap.Layout.ID)
	fmt.Fprintf(out, "Updated:  %s\n", snap.Meta.UpdatedAt.Format(time.RFC3339))
	fmt.Fprintf(out, "History:  undo %s, redo %s\n", availability(snap.CanUndo), availability(snap.CanRedo))

	fmt.Fprintln(out, "\nAreas:")
	for _, area := range snap.Layout.Areas {
		fmt.Fprintf(out, "  %s (%s)\n", area.Label, area.ID)
		if len(area.Components) == 0 {
			fmt.Fprintln(out, "    (empty)")
			continue
		}
		for _, id := range area.Components {
			part := snap.Parts[id]
			marker := " "
			if id == snap.SelectedPartID {
				marker = "*"
			}
			fmt.Fprintf(out, "   %s %s  %s [%s]\n", marker, part.ID, part.Label, part.Type)
		}
	}

	fmt.Fprintln(out, "\nTheme:")
	writer := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	locks := color.NewLocks(snap.Locks...)
	for _, role := range color.Roles {
		lock := ""
		if locks.Has(role) {
			lock = "locked"
		}
		fmt.Fprintf(writer, "  %s\t%s\t%s\n", role, snap.Theme.Colors.Get(role), lock)
	}
	if err := writer.Flush(); err != nil {
		return err
	}
	fmt.Fprintf(out, "  radius %s, shadow %s, fonts %s/%s\n",
		snap.Theme.Radius, snap.Theme.Shadow, snap.Theme.Typography.HeadingFont, snap.Theme.Typography.BodyFont)
	if len(snap.Concept) > 0 {
		fmt.Fprintf(out, "  concept %s\n", strings.Join(snap.Concept, " "))
	}
	return nil
}

func availability(ok bool) string {
	if ok {
		return "available"
	}
	return "empty"
}
