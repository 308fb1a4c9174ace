package main

import (
	"fmt"

	"foodcart/config"
	"foodcart/internal/domain/constants"
	"foodcart/internal/infra/auth"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

type issueTokenOptions struct {
	Subject string
	Roles   []string
}

func newIssueTokenCommand() *cobra.Command {
	opts := &issueTokenOptions{}

	cmd := &cobra.Command{
		Use:   "issue-token",
		Short: "Sign an access token for a back-office manager",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			subject := uuid.New()
			if opts.Subject != "" {
				parsed, err := uuid.Parse(opts.Subject)
				if err != nil {
					return errors.Wrap(err, "invalid --subject")
				}
				subject = parsed
			}

			cfg, err := config.New()
			if err != nil {
				return err
			}

			tokenSvc, err := auth.NewJWTService(cfg)
			if err != nil {
				return err
			}

			token, err := tokenSvc.IssueAccessToken(subject, opts.Roles)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), token)

			return nil
		},
	}

	cmd.Flags().StringVar(&opts.Subject, "subject", "", "subject UUID (random when empty)")
	cmd.Flags().StringSliceVar(&opts.Roles, "role", []string{constants.RoleManager}, "roles carried by the token")

	return cmd
}
