package main

import (
	"foodcart/internal/report"
	"foodcart/internal/usecase"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

func newReportCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "report",
		Short: "Run one matching batch and print the ranked restaurants of every open order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var matching usecase.MatchingUsecase
			stop, err := startApp(cmd.Context(), &matching)
			if err != nil {
				return err
			}
			defer stop()

			results, err := matching.Run(cmd.Context())
			if err != nil {
				return errors.Wrap(err, "matching batch failed")
			}

			return report.Write(cmd.OutOrStdout(), results)
		},
	}
}
