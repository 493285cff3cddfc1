package user

import (
	"context"
	c "forumaccount/internal/core/domain/common"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGenerateTokensOverwrite(t *testing.T) {
	assert := require.New(t)
	generator := NewFakeTokenGenerator("t-")
	u := NewActiveUser("alice", "alice@x.com")

	first := u.GeneratePasswordResetToken(generator)
	second := u.GeneratePasswordResetToken(generator)
	assert.NotEqual(first, second)
	assert.Equal(c.NewOptional(second, true), u.PasswordResetToken)
	assert.False(u.ActivationToken.IsPresent)

	activation := u.GenerateActivationToken(generator)
	assert.Equal(c.NewOptional(activation, true), u.ActivationToken)
	assert.Equal(c.NewOptional(second, true), u.PasswordResetToken)
}

func TestValidate(t *testing.T) {
	cases := []struct {
		id      string
		user    User
		isValid bool
	}{
		{id: "username only", user: NewActiveUser("alice", ""), isValid: true},
		{id: "email only", user: NewActiveUser("", "alice@x.com"), isValid: true},
		{id: "neither", user: NewActiveUser("", ""), isValid: false},
		{
			id: "empty reset token",
			user: User{
				Username:           c.NewOptional(Username("alice"), true),
				PasswordResetToken: c.NewOptional(Token(""), true),
			},
			isValid: false,
		},
		{
			id: "empty activation token",
			user: User{
				Username:        c.NewOptional(Username("alice"), true),
				ActivationToken: c.NewOptional(Token(""), true),
			},
			isValid: false,
		},
	}
	for _, testCase := range cases {
		t.Run(testCase.id, func(t *testing.T) {
			err := testCase.user.Validate()
			if testCase.isValid {
				require.Nil(t, err)
			} else {
				require.NotNil(t, err)
			}
		})
	}
}

func TestHasEmail(t *testing.T) {
	assert := require.New(t)

	u := NewActiveUser("alice", "")
	assert.False(u.HasEmail())

	u.Email = c.NewOptional(c.Email(" "), true)
	assert.False(u.HasEmail())

	u.Email = c.NewOptional(c.Email("alice@x.com"), true)
	assert.True(u.HasEmail())
}

func TestStatusString(t *testing.T) {
	assert := require.New(t)
	assert.Equal("active", StatusActive.String())
	assert.Equal("registered", StatusRegistered.String())
	assert.Equal("banned", StatusBanned.String())
	assert.Equal("status(3)", Status(3).String())
}

func TestFakeRepositoryRespectsStatus(t *testing.T) {
	assert := require.New(t)
	repo := NewFakeUserRepository()
	repo.Add(NewRegisteredUser("bob", "bob@x.com"))

	_, err := repo.FindByKeyfield(context.Background(), "bob", StatusActive)
	assert.ErrorIs(err, ErrUserDoesNotExist)

	u, err := repo.FindByKeyfield(context.Background(), "bob@x.com", StatusRegistered)
	assert.Nil(err)
	assert.Equal(Username("bob"), u.Username.Value)
}

func TestValidateRequiresUsernameOrEmail(t *testing.T) {
	u := User{ID: 7, Status: StatusActive}
	require.ErrorIs(t, u.Validate(), ErrUsernameOrEmailRequired)
}
