package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/gridsmith/internal/app/studio"
	"github.com/alexisbeaulieu97/gridsmith/internal/domain/color"
)

func newColorsCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "colors",
		Short: "Randomize, set and lock theme colors",
	}

	cmd.AddCommand(newColorsRandomizeCmd(app))
	cmd.AddCommand(newColorsSetCmd(app))
	cmd.AddCommand(newColorsLockCmd(app))

	return cmd
}

type randomizeOptions struct {
	locks []string
}

func newColorsRandomizeCmd(app *AppContext) *cobra.Command {
	opts := &randomizeOptions{}

	cmd := &cobra.Command{
		Use:   "randomize",
		Short: "Generate a concept palette and derive new theme colors",
		Long:  "Generate a concept palette and derive new theme colors. Locked roles keep their color; --lock overrides the project's locks for this run.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var locks color.Locks
			if cmd.Flags().Changed("lock") {
				parsed, err := parseRoles(opts.locks)
				if err != nil {
					return newCommandError("randomize colors", "parsing --lock", err, rolesSuggestion)
				}
				locks = color.NewLocks(parsed...)
			}
			return app.mutate("randomize colors", func(svc *studio.Service) error {
				result := svc.RandomizeColors(locks)
				printPalette(cmd, result.Colors, svc.Locks())
				return nil
			})
		},
	}

	cmd.Flags().StringSliceVar(&opts.locks, "lock", nil, "Roles to keep for this run (repeatable or comma separated)")

	return cmd
}

func newColorsSetCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "set <role> <hex>",
		Short: "Assign a color to a theme role",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			role, err := color.ParseRole(args[0])
			if err != nil {
				return newCommandError("set color", "parsing role", err, rolesSuggestion)
			}
			return app.mutate("set color", func(svc *studio.Service) error {
				if err := svc.SetColor(role, args[1]); err != nil {
					return newCommandError("set color", fmt.Sprintf("parsing %q", args[1]), err, "Use a hex color such as #2563eb.")
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s = %s\n", role, svc.Snapshot().Theme.Colors.Get(role))
				return nil
			})
		},
	}
}

func newColorsLockCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "lock [role...]",
		Short: "Set the roles kept by randomize; no roles clears every lock",
		RunE: func(cmd *cobra.Command, args []string) error {
			roles, err := parseRoles(args)
			if err != nil {
				return newCommandError("lock colors", "parsing roles", err, rolesSuggestion)
			}
			return app.mutate("lock colors", func(svc *studio.Service) error {
				svc.SetLocks(color.NewLocks(roles...))
				if len(roles) == 0 {
					fmt.Fprintln(cmd.OutOrStdout(), "All roles unlocked")
					return nil
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Locked: %s\n", svc.Locks())
				return nil
			})
		},
	}
}

const rolesSuggestion = "Use background, text, primary, secondary, accent or surface."

func parseRoles(names []string) ([]color.Role, error) {
	roles := make([]color.Role, 0, len(names))
	for _, name := range names {
		role, err := color.ParseRole(name)
		if err != nil {
			return nil, err
		}
		roles = append(roles, role)
	}
	return roles, nil
}

func printPalette(cmd *cobra.Command, p color.Palette, locks color.Locks) {
	for _, role := range color.Roles {
		suffix := ""
		if locks.Has(role) {
			suffix = " (locked)"
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%-10s %s%s\n", role, p.Get(role), suffix)
	}
}
