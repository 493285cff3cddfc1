package content

import (
	"context"
	"errors"
	"strings"
)

type Key string

const (
	EmailPasswordReset Key = "email-pass"
	EmailReactivation  Key = "email-react"
)

const (
	PlaceholderForum = "{forum}"
	PlaceholderLink  = "{link}"
)

var ErrTemplateDoesNotExist = errors.New("template does not exist")

type Template struct {
	Key   Key
	Topic string
	Body  string
}

// Fill substitutes {forum} and {link} in both topic and body. Substitution is
// done in a single pass, so placeholders appearing inside the substituted
// values are left as is.
func (t Template) Fill(forum string, link string) Template {
	replacer := strings.NewReplacer(PlaceholderForum, forum, PlaceholderLink, link)
	return Template{
		Key:   t.Key,
		Topic: replacer.Replace(t.Topic),
		Body:  replacer.Replace(t.Body),
	}
}

type Repository interface {
	GetByKey(ctx context.Context, key Key) (Template, error)
	Upsert(ctx context.Context, template Template) error
}
