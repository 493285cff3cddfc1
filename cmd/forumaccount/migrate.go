package main

import (
	"fmt"
	"forumaccount/internal/config"
	"forumaccount/internal/db"

	"github.com/spf13/cobra"
)

func newMigrateCommand() *cobra.Command {
	var migrationsPath string

	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending database migrations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			config, err := config.Load()
			if err != nil {
				return err
			}
			if migrationsPath == "" {
				migrationsPath = config.MigrationsPath
			}
			version, err := db.Migrate(migrationsPath, config.PostgresqlURL)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Database is at version %d.\n", version)
			return nil
		},
	}

	cmd.Flags().StringVar(&migrationsPath, "path", "", "Directory with migrations, MIGRATIONS_PATH by default")
	return cmd
}
