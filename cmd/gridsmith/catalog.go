package main

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/gridsmith/internal/domain/design"
	"github.com/alexisbeaulieu97/gridsmith/internal/domain/layout"
	"github.com/alexisbeaulieu97/gridsmith/internal/domain/theme"
)

type catalogOptions struct {
	sites bool
	fonts bool
}

func newCatalogCmd() *cobra.Command {
	opts := &catalogOptions{}

	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "List part types, site types or fonts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			writer := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			switch {
			case opts.sites:
				fmt.Fprintln(writer, "SITE TYPE\tAREAS")
				for _, siteType := range layout.SiteTypes {
					areas := lo.Map(layout.Generate(siteType).Areas, func(a layout.Area, _ int) string { return string(a.ID) })
					fmt.Fprintf(writer, "%s\t%s\n", siteType, strings.Join(areas, ", "))
				}
			case opts.fonts:
				fmt.Fprintln(writer, "FONT\tFAMILY\tSTACK")
				for _, f := range theme.Fonts() {
					fmt.Fprintf(writer, "%s\t%s\t%s\n", f.ID, f.Family, f.Stack())
				}
			default:
				fmt.Fprintln(writer, "TYPE\tLABEL\tCATEGORY\tSUGGESTED AREAS")
				for _, e := range design.DefaultCatalog().Entries() {
					areas := lo.Map(e.Areas, func(a layout.AreaID, _ int) string { return string(a) })
					fmt.Fprintf(writer, "%s\t%s\t%s\t%s\n", e.Type, e.Label, e.Category, valueOrFallback(strings.Join(areas, ", "), "any"))
				}
			}
			return writer.Flush()
		},
	}

	cmd.Flags().BoolVar(&opts.sites, "sites", false, "List site types and their areas")
	cmd.Flags().BoolVar(&opts.fonts, "fonts", false, "List available fonts")
	cmd.MarkFlagsMutuallyExclusive("sites", "fonts")

	cmd.Annotations = map[string]string{standaloneAnnotation: "true"}

	return cmd
}

func valueOrFallback(value, fallback string) string {
	if strings.TrimSpace(value) == "" {
		return fallback
	}
	return value
}
