package main

import (
	"context"

	"foodcart/internal/app"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/fx"
)

func newRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "matchctl",
		Short:         "Operator tools for order matching",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.AddCommand(newReportCommand())
	cmd.AddCommand(newMigrateCommand())
	cmd.AddCommand(newIssueTokenCommand())

	return cmd
}

// startApp builds the same graph as the API server without any delivery,
// fills targets and starts the lifecycle hooks. The returned stop must be called.
func startApp(ctx context.Context, targets ...any) (func(), error) {
	fxApp := fx.New(
		fx.NopLogger,
		app.Infra(),
		app.Repositories(),
		app.Services(),
		app.Usecases(),
		fx.Populate(targets...),
	)
	if err := fxApp.Err(); err != nil {
		return nil, errors.Wrap(err, "failed to build application")
	}

	if err := fxApp.Start(ctx); err != nil {
		return nil, errors.Wrap(err, "failed to start application")
	}

	return func() {
		_ = fxApp.Stop(context.Background())
	}, nil
}
