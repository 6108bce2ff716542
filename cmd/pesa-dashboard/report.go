package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/ucb-pesa/pesa-dashboard/pkg/constants"
	"github.com/ucb-pesa/pesa-dashboard/pkg/output"
	"github.com/ucb-pesa/pesa-dashboard/pkg/validation"
	"go.uber.org/zap"
)

func newReportCmd(a *app) *cobra.Command {
	var (
		selection    selectionFlags
		outputFormat string
	)

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Print the dashboard as a text or CSV report",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			// CLI override takes precedence over config
			format := a.conf.Output.Format
			if outputFormat != "" {
				format = outputFormat
			}
			if format == "" {
				format = constants.OutputFormatPretty
			}
			if err := validation.ValidateOutputFormat(format); err != nil {
				return err
			}

			snap, err := selection.view(cmd, a.logger, a.conf).Snapshot()
			if err != nil {
				return fmt.Errorf("failed to render dashboard: %w", err)
			}

			a.logger.Debug("rendering report",
				zap.String("op", "main.report"),
				zap.String("format", format),
			)

			switch format {
			case constants.OutputFormatPretty:
				output.PrettyFormat(cmd.OutOrStdout(), snap)
			case constants.OutputFormatCSV:
				return output.CsvFormat(cmd.OutOrStdout(), snap)
			}
			return nil
		},
	}

	selection.register(cmd)
	cmd.Flags().StringVar(&outputFormat, "output-format", "", "type of output override: pretty, csv")
	_ = cmd.RegisterFlagCompletionFunc("output-format", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return []string{constants.OutputFormatPretty, constants.OutputFormatCSV}, cobra.ShellCompDirectiveDefault
	})
	return cmd
}
