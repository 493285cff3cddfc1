package link

import (
	"errors"
	"fmt"
	"forumaccount/internal/core/domain/link"
	"net/url"
)

var ErrEmptyToken = errors.New("token must not be empty")

// URLBuilder builds absolute links to the forum's account routes.
type URLBuilder struct {
	base url.URL
}

func NewURLBuilder(base url.URL) *URLBuilder {
	if !base.IsAbs() {
		panic(fmt.Sprintf("base url must be absolute, got %q", base.String()))
	}
	return &URLBuilder{base: base}
}

func (b *URLBuilder) AbsoluteURL(route link.Route, token string) (string, error) {
	if token == "" {
		return "", ErrEmptyToken
	}
	u := b.base.JoinPath(string(route))
	query := url.Values{}
	query.Set(link.TokenParam, token)
	u.RawQuery = query.Encode()
	return u.String(), nil
}

// Path returns the router path of route, e.g. /account/password.
func Path(route link.Route) string {
	return "/" + string(route)
}
