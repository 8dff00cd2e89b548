package cmd

import (
	"github.com/soulgarden/cbpro/service"
	"github.com/spf13/cobra"
)

func newAccountsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "accounts [account-id]",
		Short: "List trading accounts, or show one",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, _, svc := newAccountSvc()

			if len(args) == 1 {
				account, err := svc.GetAccount(cmd.Context(), args[0])
				if err != nil {
					return err
				}

				return printJSON(account)
			}

			accounts, err := svc.GetAccounts(cmd.Context())
			if err != nil {
				return err
			}

			heading("%d accounts", len(accounts))

			for _, a := range accounts {
				if err := printJSON(a); err != nil {
					return err
				}
			}

			return nil
		},
	}
}

func newHistoryCmd() *cobra.Command {
	var (
		page service.PageParams
		max  int
	)

	cmd := &cobra.Command{
		Use:   "history <account-id>",
		Short: "List ledger entries of an account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, _, svc := newAccountSvc()

			return printPages(cmd.Context(), svc.GetAccountHistory(args[0], page), max)
		},
	}

	pageFlags(cmd, &page, &max)

	return cmd
}

func newHoldsCmd() *cobra.Command {
	var (
		page service.PageParams
		max  int
	)

	cmd := &cobra.Command{
		Use:   "holds <account-id>",
		Short: "List holds of an account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, _, svc := newAccountSvc()

			return printPages(cmd.Context(), svc.GetAccountHolds(args[0], page), max)
		},
	}

	pageFlags(cmd, &page, &max)

	return cmd
}
