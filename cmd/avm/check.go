package main

import (
	"github.com/sarchlab/avm/api"
	"github.com/sarchlab/avm/core"
	"github.com/sarchlab/avm/verify"
	"github.com/spf13/cobra"
)

// discardReporter drops diagnostics; the check command prints them as part
// of its report.
type discardReporter struct{}

func (discardReporter) Report(api.Source, *core.Diagnostic) {}

func (a *app) checkCmd() *cobra.Command {
	var reportPath string

	cmd := &cobra.Command{
		Use:   "check [file|program]...",
		Short: "Check programs without running them",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			driver := a.driverBuilder(cmd).
				WithReporter(discardReporter{}).
				Build("Checker")

			report := &verify.VerificationReport{}
			for _, src := range classify(args) {
				res, err := driver.Check(src)
				report.Add(src.Name, src.Origin.String(), res, err)
			}

			report.WriteReport(cmd.OutOrStdout())

			if reportPath != "" {
				if err := report.SaveReportToFile(reportPath); err != nil {
					return err
				}
			}

			if report.Failed() > 0 {
				a.exitCode = 1
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&reportPath, "report", "", "also write the report to this file")

	return cmd
}
