package main

import (
	"fmt"
	"forumaccount/internal/config"
	dbcontent "forumaccount/internal/db/content"
	templatefile "forumaccount/internal/implementations/template_file"

	"github.com/jackc/pgx/v4/pgxpool"
	"github.com/spf13/cobra"
)

func newTemplatesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "templates",
		Short: "Email template operations",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	cmd.AddCommand(newTemplatesImportCommand())
	return cmd
}

func newTemplatesImportCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "import <file.yaml>",
		Short: "Create or replace email templates from a YAML file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			templates, err := templatefile.LoadFile(args[0])
			if err != nil {
				return err
			}

			config, err := config.Load()
			if err != nil {
				return err
			}
			pool, err := pgxpool.Connect(cmd.Context(), config.PostgresqlURL)
			if err != nil {
				return fmt.Errorf("could not connect to DB: %w", err)
			}
			defer pool.Close()

			count, err := templatefile.Import(cmd.Context(), dbcontent.NewPgxRepository(pool), templates)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Imported %d templates.\n", count)
			return nil
		},
	}
}
