package content

import (
	"context"
	"fmt"
	"sync"
)

type FakeRepository struct {
	Templates   map[Key]Template
	GetCalls    int
	ReturnError bool
	lock        sync.Mutex
}

func NewFakeRepository(templates ...Template) *FakeRepository {
	r := &FakeRepository{Templates: make(map[Key]Template)}
	for _, t := range templates {
		r.Templates[t.Key] = t
	}
	return r
}

func (r *FakeRepository) GetByKey(ctx context.Context, key Key) (t Template, err error) {
	r.lock.Lock()
	defer r.lock.Unlock()
	r.GetCalls++
	if r.ReturnError {
		return t, fmt.Errorf("could not get template %s", key)
	}
	t, ok := r.Templates[key]
	if !ok {
		return t, ErrTemplateDoesNotExist
	}
	return t, nil
}

func (r *FakeRepository) Upsert(ctx context.Context, t Template) error {
	r.lock.Lock()
	defer r.lock.Unlock()
	if r.ReturnError {
		return fmt.Errorf("could not save template %s", t.Key)
	}
	r.Templates[t.Key] = t
	return nil
}
