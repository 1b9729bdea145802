package main

import (
	"userreg/internal/errors"
	"userreg/internal/infra/persistence/model"

	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or update the account tables",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return withDB(cmd.Context(), func(db *gorm.DB) error {
			// Parents first so the foreign keys resolve.
			err := db.WithContext(cmd.Context()).AutoMigrate(
				&model.AccountModel{},
				&model.PersonalInfoModel{},
				&model.AddressModel{},
			)

			return errors.Wrap(err, "failed to migrate schema")
		})
	},
}

func init() {
	rootCmd.AddCommand(migrateCmd)
}
