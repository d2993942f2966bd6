package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/gridsmith/internal/app/studio"
	"github.com/alexisbeaulieu97/gridsmith/internal/domain/theme"
)

func newThemeCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "theme",
		Short: "Set radius, shadow, font and background effect tokens",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "radius <none|sm|md|lg|full>",
		Short: "Set the corner radius token",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.mutate("set radius", func(svc *studio.Service) error {
				if err := svc.SetRadius(theme.Radius(args[0])); err != nil {
					return newCommandError("set radius", "parsing radius", err, "Use none, sm, md, lg or full.")
				}
				fmt.Fprintf(cmd.OutOrStdout(), "radius = %s\n", svc.Snapshot().Theme.Radius)
				return nil
			})
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "shadow <none|sm|md|lg>",
		Short: "Set the shadow token",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.mutate("set shadow", func(svc *studio.Service) error {
				if err := svc.SetShadow(theme.Shadow(args[0])); err != nil {
					return newCommandError("set shadow", "parsing shadow", err, "Use none, sm, md or lg.")
				}
				fmt.Fprintf(cmd.OutOrStdout(), "shadow = %s\n", svc.Snapshot().Theme.Shadow)
				return nil
			})
		},
	})

	cmd.AddCommand(newThemeFontsCmd(app))
	cmd.AddCommand(newThemeEffectCmd(app))

	return cmd
}

type fontsOptions struct {
	heading string
	body    string
}

func newThemeFontsCmd(app *AppContext) *cobra.Command {
	opts := &fontsOptions{}

	cmd := &cobra.Command{
		Use:   "fonts",
		Short: "Set the heading and body fonts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.mutate("set fonts", func(svc *studio.Service) error {
				if err := svc.SetFonts(opts.heading, opts.body); err != nil {
					return newCommandError("set fonts", "looking up fonts", err, "Run 'gridsmith catalog --fonts' to list fonts.")
				}
				typo := svc.Snapshot().Theme.Typography
				fmt.Fprintf(cmd.OutOrStdout(), "heading = %s\nbody = %s\n", typo.HeadingFont, typo.BodyFont)
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&opts.heading, "heading", "", "Heading font id (unchanged when empty)")
	cmd.Flags().StringVar(&opts.body, "body", "", "Body font id (unchanged when empty)")

	return cmd
}

type effectOptions struct {
	kind        string
	enabled     bool
	animated    bool
	interactive bool
	colorMode   string
	intensity   float64
	speed       float64
}

func newThemeEffectCmd(app *AppContext) *cobra.Command {
	opts := &effectOptions{}

	cmd := &cobra.Command{
		Use:   "effect",
		Short: "Change the background effect",
		Long:  "Change the background effect. Only the flags given are changed; the rest keep their current value.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.mutate("set effect", func(svc *studio.Service) error {
				effect := svc.Snapshot().Theme.Effect
				flags := cmd.Flags()
				if flags.Changed("type") {
					effect.Type = opts.kind
				}
				if flags.Changed("enabled") {
					effect.Enabled = opts.enabled
				}
				if flags.Changed("animated") {
					effect.Animated = opts.animated
				}
				if flags.Changed("interactive") {
					effect.Interactive = opts.interactive
				}
				if flags.Changed("color-mode") {
					effect.ColorMode = opts.colorMode
				}
				if flags.Changed("intensity") {
					effect.Intensity = opts.intensity
				}
				if flags.Changed("speed") {
					effect.Speed = opts.speed
				}
				if effect.Intensity < 0 || effect.Speed < 0 {
					return newCommandError("set effect", "checking effect", errors.New("intensity and speed must not be negative"),
						"Use 0 or a positive number for --intensity and --speed.")
				}

				svc.SetEffect(effect)
				fmt.Fprintf(cmd.OutOrStdout(), "effect = %s (enabled=%t animated=%t interactive=%t color_mode=%s intensity=%g speed=%g)\n",
					effect.Type, effect.Enabled, effect.Animated, effect.Interactive, effect.ColorMode, effect.Intensity, effect.Speed)
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&opts.kind, "type", "", "Effect type, or none")
	cmd.Flags().BoolVar(&opts.enabled, "enabled", false, "Show the effect")
	cmd.Flags().BoolVar(&opts.animated, "animated", false, "Animate the effect")
	cmd.Flags().BoolVar(&opts.interactive, "interactive", false, "React to the pointer")
	cmd.Flags().StringVar(&opts.colorMode, "color-mode", "", "Color source for the effect")
	cmd.Flags().Float64Var(&opts.intensity, "intensity", 0, "Effect intensity")
	cmd.Flags().Float64Var(&opts.speed, "speed", 0, "Animation speed")

	return cmd
}
