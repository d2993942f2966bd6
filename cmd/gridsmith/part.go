package main

import (
	"errors"
	"fmt"
	"maps"
	"math"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/alexisbeaulieu97/gridsmith/internal/app/studio"
	"github.com/alexisbeaulieu97/gridsmith/internal/domain/design"
	"github.com/alexisbeaulieu97/gridsmith/internal/domain/layout"
)

func newPartCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "part",
		Short: "Add, edit and arrange parts in the layout",
	}

	cmd.AddCommand(newPartAddCmd(app))
	cmd.AddCommand(newPartRemoveCmd(app))
	cmd.AddCommand(newPartUpdateCmd(app))
	cmd.AddCommand(newPartMoveCmd(app))
	cmd.AddCommand(newPartDropCmd(app))

	return cmd
}

type partAddOptions struct {
	area  string
	label string
}

func newPartAddCmd(app *AppContext) *cobra.Command {
	opts := &partAddOptions{}

	cmd := &cobra.Command{
		Use:   "add <type>",
		Short: "Append a catalog part to an area",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.mutate("add part", func(svc *studio.Service) error {
				var edits []studio.PartEdit
				if opts.label != "" {
					edits = append(edits, studio.PartLabel(opts.label))
				}
				part, err := svc.AddCatalogPart(args[0], layout.AreaID(opts.area), edits...)
				if err != nil {
					return newCommandError("add part", fmt.Sprintf("placing %q in %q", args[0], opts.area), err,
						"Run 'gridsmith catalog' for part types and 'gridsmith show' for area ids.")
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Added %s %s to %s\n", part.Type, part.ID, part.AreaID)
				return nil
			})
		},
	}

	cmd.Flags().StringVarP(&opts.area, "area", "a", "", "Area id to place the part in")
	cmd.Flags().StringVarP(&opts.label, "label", "l", "", "Label to use instead of the catalog label")
	cmd.MarkFlagRequired("area") //nolint:errcheck

	return cmd
}

func newPartRemoveCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:     "remove <part-id>",
		Aliases: []string{"rm"},
		Short:   "Remove a part from the layout",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.mutate("remove part", func(svc *studio.Service) error {
				reportApplied(cmd, svc.RemovePart(args[0]), "Removed "+args[0], "No part "+args[0])
				return nil
			})
		},
	}
}

type partUpdateOptions struct {
	label string
	props []string
}

func newPartUpdateCmd(app *AppContext) *cobra.Command {
	opts := &partUpdateOptions{}

	cmd := &cobra.Command{
		Use:   "update <part-id>",
		Short: "Change the label or properties of a part",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("label") && len(opts.props) == 0 {
				return newCommandError("update part", "reading flags", errors.New("nothing to update"),
					"Pass --label and/or --prop key=value.")
			}
			return app.mutate("update part", func(svc *studio.Service) error {
				id := args[0]
				patch := design.Patch{}
				if cmd.Flags().Changed("label") {
					patch.Label = &opts.label
				}
				if len(opts.props) > 0 {
					current, ok := svc.Snapshot().Parts[id]
					if !ok {
						reportApplied(cmd, false, "", "No part "+id)
						return nil
					}
					props, err := mergeProps(current.Props, opts.props)
					if err != nil {
						return newCommandError("update part", "parsing --prop", err, "Use key=value, where value is YAML.")
					}
					patch.Props = props
				}
				reportApplied(cmd, svc.UpdatePart(id, patch), "Updated "+id, "No part "+id)
				return nil
			})
		},
	}

	cmd.Flags().StringVarP(&opts.label, "label", "l", "", "New label")
	cmd.Flags().StringArrayVar(&opts.props, "prop", nil, "Property as key=value; the value is parsed as YAML (repeatable)")

	return cmd
}

// mergeProps overlays key=value assignments on a copy of props.
func mergeProps(props map[string]any, assignments []string) (map[string]any, error) {
	merged := make(map[string]any, len(props)+len(assignments))
	maps.Copy(merged, props)
	for _, assignment := range assignments {
		key, raw, ok := strings.Cut(assignment, "=")
		key = strings.TrimSpace(key)
		if !ok || key == "" {
			return nil, fmt.Errorf("invalid property %q", assignment)
		}
		var value any
		if err := yaml.Unmarshal([]byte(raw), &value); err != nil {
			return nil, fmt.Errorf("invalid value for %q: %w", key, err)
		}
		merged[key] = value
	}
	return merged, nil
}

type partMoveOptions struct {
	area  string
	index int
}

func newPartMoveCmd(app *AppContext) *cobra.Command {
	opts := &partMoveOptions{}

	cmd := &cobra.Command{
		Use:   "move <part-id>",
		Short: "Move a part to a position in an area",
		Long:  "Move a part to a position in an area. The index is clamped to the area; omit it to append.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			index := opts.index
			if !cmd.Flags().Changed("index") {
				index = math.MaxInt32
			}
			return app.mutate("move part", func(svc *studio.Service) error {
				ok := svc.MovePart(args[0], layout.AreaID(opts.area), index)
				reportApplied(cmd, ok, fmt.Sprintf("Moved %s to %s", args[0], opts.area),
					fmt.Sprintf("Nothing moved: no part %s or no area %s", args[0], opts.area))
				return nil
			})
		},
	}

	cmd.Flags().StringVarP(&opts.area, "area", "a", "", "Target area id")
	cmd.Flags().IntVarP(&opts.index, "index", "i", 0, "Position within the area (0 based)")
	cmd.MarkFlagRequired("area") //nolint:errcheck

	return cmd
}

func newPartDropCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "drop <part-id> <over-id>",
		Short: "Drop a part onto an area or onto another part",
		Long:  "Drop a part onto an area (appends) or onto another part (takes that part's place).",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.mutate("drop part", func(svc *studio.Service) error {
				reportApplied(cmd, svc.Drop(args[0], args[1]),
					fmt.Sprintf("Dropped %s onto %s", args[0], args[1]),
					fmt.Sprintf("Nothing moved: cannot drop %s onto %s", args[0], args[1]))
				return nil
			})
		},
	}
}

func reportApplied(cmd *cobra.Command, applied bool, done, ignored string) {
	if applied {
		fmt.Fprintln(cmd.OutOrStdout(), done)
		return
	}
	fmt.Fprintln(cmd.OutOrStdout(), ignored)
}
