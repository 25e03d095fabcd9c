package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"pillbox/internal/services/api/members/domain"
	memrepo "pillbox/internal/services/api/members/repo"
	memsvc "pillbox/internal/services/api/members/service"
)

func (a *app) memberCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "member",
		Short: "Manage members",
	}
	cmd.AddCommand(a.memberAddCmd())
	return cmd
}

func (a *app) memberAddCmd() *cobra.Command {
	var in domain.UpsertInput

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create a member, or update name and picture when the email exists",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			st, err := a.openStore(ctx, false)
			if err != nil {
				return err
			}
			defer a.closeStore(st)

			id, err := memsvc.New(st.PG, memrepo.NewPG(), memsvc.Counters{}).Upsert(ctx, in)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), id)
			return nil
		},
	}
	cmd.Flags().StringVar(&in.Email, "email", "", "member email (unique)")
	cmd.Flags().StringVar(&in.Name, "name", "", "display name")
	cmd.Flags().StringVar(&in.Picture, "picture", "", "profile picture url")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("name")
	return cmd
}
