package main

import (
	"fmt"
	"forumaccount/internal/app/deps"
	"forumaccount/internal/app/services"
	coreservices "forumaccount/internal/core/services"
	tokenissuance "forumaccount/internal/core/services/token_issuance"

	"github.com/spf13/cobra"
)

type issueKind struct {
	use     string
	short   string
	purpose tokenissuance.Purpose
	service func(s *services.Services) coreservices.Service[tokenissuance.Input, tokenissuance.Result]
}

var (
	issuePasswordReset = issueKind{
		use:     "reset <username or email>",
		short:   "Issue a password reset token and queue the email",
		purpose: tokenissuance.PasswordReset,
		service: func(s *services.Services) coreservices.Service[tokenissuance.Input, tokenissuance.Result] {
			return s.IssuePasswordResetToken
		},
	}
	issueReactivation = issueKind{
		use:     "reactivate <username or email>",
		short:   "Issue an account activation token and queue the email",
		purpose: tokenissuance.Reactivation,
		service: func(s *services.Services) coreservices.Service[tokenissuance.Input, tokenissuance.Result] {
			return s.IssueReactivationToken
		},
	}
)

func newIssueCommand(kind issueKind) *cobra.Command {
	return &cobra.Command{
		Use:   kind.use,
		Short: kind.short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			deps, shutdownDeps := deps.InitDeps()
			defer shutdownDeps()

			result, err := kind.service(services.InitServices(deps)).Run(
				cmd.Context(),
				tokenissuance.Input{Identifier: args[0]},
			)
			if err != nil {
				return err
			}
			return printOutcome(cmd, kind.purpose, result.Outcome)
		},
	}
}

func printOutcome(cmd *cobra.Command, purpose tokenissuance.Purpose, outcome tokenissuance.Outcome) error {
	fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", outcome, outcome.Message(purpose))
	if !outcome.IsOK() {
		return fmt.Errorf("%s token was not sent: %s", purpose.Name, outcome)
	}
	return nil
}
