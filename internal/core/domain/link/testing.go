package link

import "fmt"

// FakeBuilder builds links against a fixed base without any validation.
type FakeBuilder struct {
	Base        string
	ReturnError bool
}

func NewFakeBuilder(base string) *FakeBuilder {
	return &FakeBuilder{Base: base}
}

func (b *FakeBuilder) AbsoluteURL(route Route, token string) (string, error) {
	if b.ReturnError {
		return "", fmt.Errorf("could not build url for route %s", route)
	}
	return fmt.Sprintf("%s/%s?%s=%s", b.Base, route, TokenParam, token), nil
}

