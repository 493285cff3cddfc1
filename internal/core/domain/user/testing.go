package user

import (
	"context"
	"fmt"
	c "forumaccount/internal/core/domain/common"
	"sync"
)

type FakeUserRepository struct {
	Users            []User
	FindCalls        int
	SaveCalls        int
	FindReturnsError bool
	SaveReturnsError bool
	lock             sync.Mutex
}

func NewFakeUserRepository() *FakeUserRepository {
	return &FakeUserRepository{Users: make([]User, 0, 10)}
}

func (r *FakeUserRepository) Add(u User) User {
	r.lock.Lock()
	defer r.lock.Unlock()
	if u.ID == 0 {
		u.ID = ID(len(r.Users) + 1)
	}
	r.Users = append(r.Users, u)
	return u
}

func (r *FakeUserRepository) GetByID(id ID) (User, bool) {
	r.lock.Lock()
	defer r.lock.Unlock()
	for _, u := range r.Users {
		if u.ID == id {
			return u, true
		}
	}
	return User{}, false
}

func (r *FakeUserRepository) FindByKeyfield(ctx context.Context, keyfield string, status Status) (u User, err error) {
	r.lock.Lock()
	defer r.lock.Unlock()
	r.FindCalls++
	if r.FindReturnsError {
		return u, fmt.Errorf("could not find user %q", keyfield)
	}
	for _, u := range r.Users {
		if u.Status != status {
			continue
		}
		if u.Username.IsPresent && string(u.Username.Value) == keyfield {
			return u, nil
		}
		if u.Email.IsPresent && string(u.Email.Value) == keyfield {
			return u, nil
		}
	}
	return u, ErrUserDoesNotExist
}

func (r *FakeUserRepository) SaveTokens(ctx context.Context, u User) (User, error) {
	r.lock.Lock()
	defer r.lock.Unlock()
	r.SaveCalls++
	if r.SaveReturnsError {
		return u, fmt.Errorf("could not save user %d", u.ID)
	}
	for ix := range r.Users {
		if r.Users[ix].ID == u.ID {
			r.Users[ix].PasswordResetToken = u.PasswordResetToken
			r.Users[ix].ActivationToken = u.ActivationToken
			r.Users[ix].UpdatedAt = u.UpdatedAt
			return r.Users[ix], nil
		}
	}
	return u, ErrUserDoesNotExist
}

// FakeTokenGenerator returns Prefix followed by a sequence number, so every
// call yields a new token.
type FakeTokenGenerator struct {
	Prefix    string
	Generated []Token
	lock      sync.Mutex
}

func NewFakeTokenGenerator(prefix string) *FakeTokenGenerator {
	return &FakeTokenGenerator{Prefix: prefix}
}

func (g *FakeTokenGenerator) GenerateToken() Token {
	g.lock.Lock()
	defer g.lock.Unlock()
	token := Token(fmt.Sprintf("%s%d", g.Prefix, len(g.Generated)+1))
	g.Generated = append(g.Generated, token)
	return token
}

func (g *FakeTokenGenerator) Last() Token {
	g.lock.Lock()
	defer g.lock.Unlock()
	l := len(g.Generated)
	if l == 0 {
		panic("Generated count is 0.")
	}
	return g.Generated[l-1]
}

func NewActiveUser(username string, email string) User {
	return User{
		Username: c.NewOptional(Username(username), username != ""),
		Email:    c.NewOptional(c.Email(email), email != ""),
		Status:   StatusActive,
	}
}

func NewRegisteredUser(username string, email string) User {
	u := NewActiveUser(username, email)
	u.Status = StatusRegistered
	return u
}
