package main

import (
	"fmt"
	"text/tabwriter"

	"userreg/internal/domain/entity"
	"userreg/internal/errors"
	"userreg/internal/infra/persistence/postgres"

	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

var promoteCmd = &cobra.Command{
	Use:   "promote <username>",
	Short: "Grant the Admin role",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return setRole(cmd, args[0], entity.RoleAdmin)
	},
}

var demoteCmd = &cobra.Command{
	Use:   "demote <username>",
	Short: "Revoke the Admin role",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return setRole(cmd, args[0], entity.RoleUser)
	},
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List accounts with their roles",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return withDB(cmd.Context(), func(db *gorm.DB) error {
			accounts, err := postgres.NewAccountRepository(db).ListAll(cmd.Context())
			if err != nil {
				return errors.Wrap(err, "failed to list accounts")
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tUSERNAME\tROLE")
			for _, account := range accounts {
				fmt.Fprintf(w, "%s\t%s\t%s\n", account.ID, account.Username, account.Role)
			}

			return w.Flush()
		})
	},
}

func init() {
	rootCmd.AddCommand(promoteCmd, demoteCmd, listCmd)
}

func setRole(cmd *cobra.Command, username string, role entity.Role) error {
	ctx := cmd.Context()

	return withDB(ctx, func(db *gorm.DB) error {
		repo := postgres.NewAccountRepository(db)

		account, err := repo.FindByUsername(ctx, username)
		if err != nil {
			return errors.Wrapf(err, "failed to find %q", username)
		}

		if account.Role == role {
			fmt.Fprintf(cmd.OutOrStdout(), "%s already has role %s\n", username, role)

			return nil
		}

		if err := repo.UpdateRole(ctx, account.ID, role); err != nil {
			return errors.Wrapf(err, "failed to set role of %q", username)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "%s: %s -> %s\n", username, account.Role, role)

		return nil
	})
}
