package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/gridsmith/internal/export"
)

type exportOptions struct {
	format string
	output string
	diff   string
}

func newExportCmd(app *AppContext) *cobra.Command {
	opts := &exportOptions{}

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the design as JSON, YAML or CSS",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExport(cmd, app, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.format, "format", "f", "json", "Output format: json, yaml or css")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "Write to a file instead of stdout")
	cmd.Flags().StringVar(&opts.diff, "diff", "", "Show a unified diff against an earlier export instead of the export itself")

	return cmd
}

func runExport(cmd *cobra.Command, app *AppContext, opts *exportOptions) error {
	format, err := export.ParseFormat(opts.format)
	if err != nil {
		return newCommandError("export design", "parsing --format", err, "Use json, yaml or css.")
	}

	svc, err := app.open("export design")
	if err != nil {
		return err
	}
	snap := svc.Snapshot()

	if opts.diff != "" {
		previous, err := os.ReadFile(opts.diff)
		if err != nil {
			return newCommandError("export design", fmt.Sprintf("reading %s", opts.diff), err, "Pass an existing export file to --diff.")
		}
		out, err := export.DiffAgainst(previous, opts.diff, snap, format)
		if err != nil {
			return newCommandError("export design", "rendering export", err, "Report this as a bug.")
		}
		if out == "" {
			fmt.Fprintf(cmd.OutOrStdout(), "No changes since %s\n", opts.diff)
			return nil
		}
		fmt.Fprint(cmd.OutOrStdout(), out)
		return nil
	}

	data, err := export.Render(snap, format)
	if err != nil {
		return newCommandError("export design", "rendering export", err, "Report this as a bug.")
	}

	if opts.output == "" {
		_, err = cmd.OutOrStdout().Write(data)
		return err
	}
	if err := os.WriteFile(opts.output, data, 0o644); err != nil {
		return newCommandError("export design", fmt.Sprintf("writing %s", opts.output), err, "Check that the directory exists and is writable.")
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Exported %s to %s\n", format, opts.output)
	return nil
}
