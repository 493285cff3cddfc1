package templatefile

import (
	"context"
	"forumaccount/internal/core/domain/content"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

const VALID = `
templates:
  - key: email-pass
    topic: "{forum} password reset"
    body: |
      Reset your password: {link}
  - key: email-react
    topic: "{forum} account activation"
    body: "Activate: {link}"
`

func TestLoad(t *testing.T) {
	assert := require.New(t)
	templates, err := Load(strings.NewReader(VALID))
	assert.Nil(err)
	assert.Equal([]content.Template{
		{Key: content.EmailPasswordReset, Topic: "{forum} password reset", Body: "Reset your password: {link}\n"},
		{Key: content.EmailReactivation, Topic: "{forum} account activation", Body: "Activate: {link}"},
	}, templates)
}

func TestLoadInvalid(t *testing.T) {
	cases := []struct {
		id  string
		doc string
	}{
		{id: "no key", doc: "templates:\n  - topic: t\n    body: b\n"},
		{id: "duplicate", doc: "templates:\n  - {key: a, topic: t, body: b}\n  - {key: a, topic: t, body: b}\n"},
		{id: "no body", doc: "templates:\n  - {key: a, topic: t}\n"},
	}
	for _, testCase := range cases {
		t.Run(testCase.id, func(t *testing.T) {
			_, err := Load(strings.NewReader(testCase.doc))
			require.ErrorIs(t, err, ErrInvalidTemplate)
		})
	}
}

func TestLoadUnknownField(t *testing.T) {
	_, err := Load(strings.NewReader("templates:\n  - {key: a, topic: t, body: b, subject: s}\n"))
	require.NotNil(t, err)
}

func TestLoadDefaultTemplates(t *testing.T) {
	assert := require.New(t)
	_, file, _, _ := runtime.Caller(0)
	path := filepath.Join(filepath.Dir(file), "..", "..", "..", "templates", "default.yaml")

	templates, err := LoadFile(path)
	assert.Nil(err)
	keys := make([]content.Key, 0)
	for _, t := range templates {
		keys = append(keys, t.Key)
		assert.Contains(t.Body, content.PlaceholderLink)
	}
	assert.ElementsMatch([]content.Key{content.EmailPasswordReset, content.EmailReactivation}, keys)
}

func TestLoadFileMissing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestImport(t *testing.T) {
	assert := require.New(t)
	templates, err := Load(strings.NewReader(VALID))
	assert.Nil(err)

	repo := content.NewFakeRepository()
	count, err := Import(context.Background(), repo, templates)
	assert.Nil(err)
	assert.Equal(2, count)
	assert.Equal(templates[0], repo.Templates[content.EmailPasswordReset])

	repo.ReturnError = true
	count, err = Import(context.Background(), repo, templates)
	assert.NotNil(err)
	assert.Equal(0, count)
}
