package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	var envFile string

	cmd := &cobra.Command{
		Use:           "forumaccount",
		Short:         "Issues forum password reset and account reactivation tokens",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return loadEnvFile(envFile)
		},
	}
	cmd.PersistentFlags().StringVar(&envFile, "env-file", ".env", "Optional file with environment variables")

	cmd.AddCommand(newServeCommand())
	cmd.AddCommand(newIssueCommand(issuePasswordReset))
	cmd.AddCommand(newIssueCommand(issueReactivation))
	cmd.AddCommand(newMigrateCommand())
	cmd.AddCommand(newTemplatesCommand())
	return cmd
}

// loadEnvFile loads variables from path unless they are already set.
// A missing file is not an error.
func loadEnvFile(path string) error {
	if path == "" {
		return nil
	}
	err := godotenv.Load(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("could not load %s: %w", path, err)
	}
	return nil
}
