package contentcache

import (
	"context"
	"forumaccount/internal/core/domain/content"
	e "forumaccount/internal/core/domain/errors"
	"time"

	gocache "github.com/patrickmn/go-cache"
)

// Repository caches templates read from the wrapped repository for ttl.
// Missing templates are not cached, so a template imported later is picked up
// on the next read.
type Repository struct {
	inner content.Repository
	cache *gocache.Cache
}

func New(inner content.Repository, ttl time.Duration) *Repository {
	if inner == nil {
		panic(e.NewNilArgumentError("inner"))
	}
	return &Repository{inner: inner, cache: gocache.New(ttl, 2*ttl)}
}

func (r *Repository) GetByKey(ctx context.Context, key content.Key) (content.Template, error) {
	if cached, ok := r.cache.Get(string(key)); ok {
		return cached.(content.Template), nil
	}
	template, err := r.inner.GetByKey(ctx, key)
	if err != nil {
		return template, err
	}
	r.cache.SetDefault(string(key), template)
	return template, nil
}

func (r *Repository) Upsert(ctx context.Context, template content.Template) error {
	err := r.inner.Upsert(ctx, template)
	r.cache.Delete(string(template.Key))
	return err
}
