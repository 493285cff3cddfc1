package contentcache

import (
	"context"
	"forumaccount/internal/core/domain/content"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

var TEMPLATE = content.Template{Key: content.EmailPasswordReset, Topic: "{forum}", Body: "{link}"}

func TestTemplateIsCached(t *testing.T) {
	assert := require.New(t)
	inner := content.NewFakeRepository(TEMPLATE)
	repo := New(inner, time.Minute)

	for i := 0; i < 3; i++ {
		template, err := repo.GetByKey(context.Background(), content.EmailPasswordReset)
		assert.Nil(err)
		assert.Equal(TEMPLATE, template)
	}
	assert.Equal(1, inner.GetCalls)
}

func TestMissingTemplateIsNotCached(t *testing.T) {
	assert := require.New(t)
	inner := content.NewFakeRepository()
	repo := New(inner, time.Minute)

	_, err := repo.GetByKey(context.Background(), content.EmailReactivation)
	assert.ErrorIs(err, content.ErrTemplateDoesNotExist)
	_, err = repo.GetByKey(context.Background(), content.EmailReactivation)
	assert.ErrorIs(err, content.ErrTemplateDoesNotExist)
	assert.Equal(2, inner.GetCalls)
}

func TestUpsertInvalidatesCache(t *testing.T) {
	assert := require.New(t)
	inner := content.NewFakeRepository(TEMPLATE)
	repo := New(inner, time.Minute)

	_, err := repo.GetByKey(context.Background(), content.EmailPasswordReset)
	assert.Nil(err)

	updated := TEMPLATE
	updated.Body = "new {link}"
	assert.Nil(repo.Upsert(context.Background(), updated))

	template, err := repo.GetByKey(context.Background(), content.EmailPasswordReset)
	assert.Nil(err)
	assert.Equal("new {link}", template.Body)
	assert.Equal(2, inner.GetCalls)
}

func TestCacheExpires(t *testing.T) {
	assert := require.New(t)
	inner := content.NewFakeRepository(TEMPLATE)
	repo := New(inner, 10*time.Millisecond)

	_, err := repo.GetByKey(context.Background(), content.EmailPasswordReset)
	assert.Nil(err)
	time.Sleep(30 * time.Millisecond)
	_, err = repo.GetByKey(context.Background(), content.EmailPasswordReset)
	assert.Nil(err)
	assert.Equal(2, inner.GetCalls)
}
