package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"pillbox/internal/adapters/identity"
)

func (a *app) tokenCmd() *cobra.Command {
	var (
		memberID int64
		email    string
	)

	cmd := &cobra.Command{
		Use:   "token",
		Short: "Print a signed bearer token for a member",
		Long: `token signs a token with CORE_AUTH_JWT_SECRET. It does not check that the
member exists; the API does that on every request.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if memberID <= 0 {
				return fmt.Errorf("--member must be positive")
			}
			m, err := identity.New(identity.FromConfig(a.cfg))
			if err != nil {
				return err
			}
			tok, claims, err := m.Issue(memberID, email)
			if err != nil {
				return err
			}
			a.log.Info().Int64("member_id", memberID).Time("expires_at", claims.ExpiresAt).Msg("token issued")
			fmt.Fprintln(cmd.OutOrStdout(), tok)
			return nil
		},
	}
	cmd.Flags().Int64Var(&memberID, "member", 0, "member id")
	cmd.Flags().StringVar(&email, "email", "", "email claim")
	_ = cmd.MarkFlagRequired("member")
	return cmd
}
