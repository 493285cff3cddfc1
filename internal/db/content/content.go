package content

import (
	"context"
	"errors"
	"fmt"
	"forumaccount/internal/core/domain/content"
	e "forumaccount/internal/core/domain/errors"
	"forumaccount/internal/db"

	"github.com/jackc/pgx/v4"
)

const getByKey = `SELECT key, topic, body FROM content WHERE key = $1`

const upsert = `
INSERT INTO content (key, topic, body) VALUES ($1, $2, $3)
ON CONFLICT (key) DO UPDATE SET topic = EXCLUDED.topic, body = EXCLUDED.body`

type PgxContentRepository struct {
	db db.DBTX
}

func NewPgxRepository(db db.DBTX) *PgxContentRepository {
	if db == nil {
		panic(e.NewNilArgumentError("db"))
	}
	return &PgxContentRepository{db: db}
}

func (r *PgxContentRepository) GetByKey(ctx context.Context, key content.Key) (t content.Template, err error) {
	var rawKey string
	err = r.db.QueryRow(ctx, getByKey, string(key)).Scan(&rawKey, &t.Topic, &t.Body)
	if errors.Is(err, pgx.ErrNoRows) {
		return t, fmt.Errorf("%w: %s", content.ErrTemplateDoesNotExist, key)
	}
	if err != nil {
		return t, err
	}
	t.Key = content.Key(rawKey)
	return t, nil
}

func (r *PgxContentRepository) Upsert(ctx context.Context, template content.Template) error {
	if template.Key == "" {
		return errors.New("template key must not be empty")
	}
	_, err := r.db.Exec(ctx, upsert, string(template.Key), template.Topic, template.Body)
	return err
}
