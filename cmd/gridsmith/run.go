package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/gridsmith/internal/app/studio"
	"github.com/alexisbeaulieu97/gridsmith/internal/config"
)

type runOptions struct {
	dryRun bool
}

func newRunCmd(app *AppContext) *cobra.Command {
	opts := &runOptions{}

	cmd := &cobra.Command{
		Use:   "run <script.yaml>",
		Short: "Apply an operation script to the project",
		Long:  "Apply an operation script to the project. Ops run in order and the run stops at the first invalid op; the project is only saved when every op succeeds.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runScript(cmd, app, args[0], opts)
		},
	}

	cmd.Flags().BoolVar(&opts.dryRun, "dry-run", false, "Report what the script does without saving")

	return cmd
}

func runScript(cmd *cobra.Command, app *AppContext, path string, opts *runOptions) error {
	script, err := config.ParseScript(path)
	if err != nil {
		return newCommandError("run script", fmt.Sprintf("parsing %s", path), err, "Fix the script and try again.")
	}

	svc, err := app.open("run script")
	if err != nil {
		return err
	}

	report, runErr := svc.Run(script)
	if err := renderReport(cmd, report); err != nil {
		return err
	}
	if runErr != nil {
		return newCommandError("run script", fmt.Sprintf("applying %s", path), runErr,
			"Earlier ops were not saved. Fix the failing op and run the script again.")
	}

	fmt.Fprintf(cmd.OutOrStdout(), "\n%d applied, %d ignored\n", report.Applied(), report.Ignored())
	if opts.dryRun {
		fmt.Fprintln(cmd.OutOrStdout(), "Dry run: project not saved")
		return nil
	}
	return app.save("run script", svc)
}

func renderReport(cmd *cobra.Command, report studio.RunReport) error {
	writer := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(writer, "#\tOP\tRESULT\tDETAIL")
	for _, res := range report.Results {
		result := "ignored"
		if res.Applied {
			result = "applied"
		}
		fmt.Fprintf(writer, "%d\t%s\t%s\t%s\n", res.Index+1, res.Op, result, res.Detail)
	}
	return writer.Flush()
}
