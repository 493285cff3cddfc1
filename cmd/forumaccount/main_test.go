package main

import (
	"bytes"
	tokenissuance "forumaccount/internal/core/services/token_issuance"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"
)

func TestCommands(t *testing.T) {
	root := newRootCommand()
	names := make([]string, 0)
	for _, c := range root.Commands() {
		names = append(names, c.Name())
	}
	require.ElementsMatch(t, []string{"serve", "reset", "reactivate", "migrate", "templates"}, names)
}

func TestIssueRequiresIdentifier(t *testing.T) {
	root := newRootCommand()
	root.SetArgs([]string{"reset", "--env-file", ""})
	root.SetOut(&bytes.Buffer{})
	root.SetErr(&bytes.Buffer{})
	require.NotNil(t, root.Execute())
}

func TestLoadEnvFile(t *testing.T) {
	assert := require.New(t)
	path := filepath.Join(t.TempDir(), ".env")
	assert.Nil(os.WriteFile(path, []byte("FORUMACCOUNT_TEST_VAR=loaded\n"), 0o600))
	t.Setenv("FORUMACCOUNT_TEST_VAR", "")
	os.Unsetenv("FORUMACCOUNT_TEST_VAR")

	assert.Nil(loadEnvFile(path))
	assert.Equal("loaded", os.Getenv("FORUMACCOUNT_TEST_VAR"))
}

func TestLoadMissingEnvFile(t *testing.T) {
	require.Nil(t, loadEnvFile(filepath.Join(t.TempDir(), "missing.env")))
	require.Nil(t, loadEnvFile(""))
}

func TestPrintOutcome(t *testing.T) {
	assert := require.New(t)
	out := &bytes.Buffer{}
	cmd := &cobra.Command{}
	cmd.SetOut(out)

	assert.Nil(printOutcome(cmd, tokenissuance.PasswordReset, tokenissuance.OutcomeOK))
	assert.Contains(out.String(), "OK: ")

	out.Reset()
	assert.NotNil(printOutcome(cmd, tokenissuance.Reactivation, tokenissuance.OutcomeNoEmail))
	assert.Contains(out.String(), "NO_EMAIL: ")
}
