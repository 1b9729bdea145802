package main

import (
	"context"

	"userreg/config"
	"userreg/internal/errors"
	logs "userreg/internal/infra/log"
	"userreg/internal/infra/persistence/postgres"

	"github.com/spf13/cobra"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:           "accountctl",
	Short:         "Operator tool for user registration accounts",
	SilenceUsage:  true,
}

// withDB opens the configured database for the duration of fn.
func withDB(ctx context.Context, fn func(db *gorm.DB) error) (err error) {
	var db *gorm.DB
	app := fx.New(
		fx.NopLogger,
		fx.Provide(
			config.New,
			logs.New,
			postgres.New,
		),
		fx.Populate(&db),
	)
	if err := app.Err(); err != nil {
		return errors.Wrap(err, "failed to build application")
	}

	if err := app.Start(ctx); err != nil {
		return errors.Wrap(err, "failed to connect")
	}
	defer func() {
		err = errors.Join(err, app.Stop(ctx))
	}()

	return fn(db)
}
