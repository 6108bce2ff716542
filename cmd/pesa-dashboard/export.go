package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/ucb-pesa/pesa-dashboard/pkg/constants"
	"github.com/ucb-pesa/pesa-dashboard/pkg/export"
	"github.com/ucb-pesa/pesa-dashboard/pkg/validation"
	"go.uber.org/zap"
)

func newExportCmd(a *app) *cobra.Command {
	var (
		selection selectionFlags
		format    string
		out       string
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the dashboard to an xlsx, pdf, yaml or csv file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := validation.ValidateExportFormat(format); err != nil {
				return err
			}

			snap, err := selection.view(cmd, a.logger, a.conf).Snapshot()
			if err != nil {
				return fmt.Errorf("failed to render dashboard: %w", err)
			}

			if out == "-" {
				return export.Write(cmd.OutOrStdout(), format, snap)
			}
			if out == "" {
				out = export.FileName(format, snap.State)
			}

			file, err := os.Create(out)
			if err != nil {
				return fmt.Errorf("failed to create %s: %w", out, err)
			}
			if err := export.Write(file, format, snap); err != nil {
				_ = file.Close()
				return err
			}
			if err := file.Close(); err != nil {
				return fmt.Errorf("failed to close %s: %w", out, err)
			}

			a.logger.Info("report exported",
				zap.String("op", "main.export"),
				zap.String("format", format),
				zap.String("path", out),
			)
			fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		},
	}

	selection.register(cmd)
	flags := cmd.Flags()
	flags.StringVar(&format, "format", constants.ExportFormatXLSX, "export format: xlsx, pdf, yaml, csv")
	flags.StringVar(&out, "out", "", "output file, or - for stdout (default pesa-dashboard[-year].<format>)")
	_ = cmd.RegisterFlagCompletionFunc("format", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return []string{constants.ExportFormatXLSX, constants.ExportFormatPDF, constants.ExportFormatYAML, constants.ExportFormatCSV}, cobra.ShellCompDirectiveDefault
	})
	return cmd
}
