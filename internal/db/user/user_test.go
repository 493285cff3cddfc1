package user

import (
	"context"
	c "forumaccount/internal/core/domain/common"
	"forumaccount/internal/core/domain/user"
	"forumaccount/internal/db"
	"testing"
	"time"

	"github.com/jackc/pgx/v4/pgxpool"
	"github.com/stretchr/testify/suite"
)

const (
	USERNAME = "alice"
	EMAIL    = "alice@test.test"
)

var NOW time.Time = time.Date(2020, 6, 6, 15, 30, 30, 0, time.UTC)

type testSuite struct {
	suite.Suite
	pool *pgxpool.Pool
	repo *PgxUserRepository
}

func (suite *testSuite) SetupSuite() {
	suite.pool = db.CreateTestPool()
	suite.repo = NewPgxRepository(suite.pool)
}

func (suite *testSuite) TearDownSuite() {
	suite.pool.Close()
}

func (suite *testSuite) TearDownTest() {
	db.TruncateTables(suite.pool)
}

func TestPgxUserRepository(t *testing.T) {
	db.SkipWithoutTestDB(t)
	suite.Run(t, new(testSuite))
}

func (s *testSuite) TestFindByUsernameAndEmail() {
	id := s.createUser(USERNAME, EMAIL, user.StatusActive)

	for _, keyfield := range []string{USERNAME, EMAIL} {
		u, err := s.repo.FindByKeyfield(context.Background(), keyfield, user.StatusActive)
		s.Nil(err, keyfield)
		s.Equal(id, u.ID)
		s.Equal(c.Some(user.Username(USERNAME)), u.Username)
		s.Equal(c.Some(c.Email(EMAIL)), u.Email)
		s.Equal(user.StatusActive, u.Status)
		s.False(u.PasswordResetToken.IsPresent)
		s.False(u.ActivationToken.IsPresent)
		s.True(NOW.Equal(u.CreatedAt))
	}
}

func (s *testSuite) TestFindRequiresStatus() {
	s.createUser(USERNAME, EMAIL, user.StatusRegistered)

	_, err := s.repo.FindByKeyfield(context.Background(), USERNAME, user.StatusActive)
	s.ErrorIs(err, user.ErrUserDoesNotExist)

	_, err = s.repo.FindByKeyfield(context.Background(), USERNAME, user.StatusBanned)
	s.ErrorIs(err, user.ErrUserDoesNotExist)

	u, err := s.repo.FindByKeyfield(context.Background(), USERNAME, user.StatusRegistered)
	s.Nil(err)
	s.Equal(user.StatusRegistered, u.Status)
}

func (s *testSuite) TestFindUnknown() {
	s.createUser(USERNAME, EMAIL, user.StatusActive)

	_, err := s.repo.FindByKeyfield(context.Background(), "bob", user.StatusActive)
	s.ErrorIs(err, user.ErrUserDoesNotExist)
}

func (s *testSuite) TestFindUserWithoutEmail() {
	id := s.createUser(USERNAME, "", user.StatusActive)

	u, err := s.repo.FindByKeyfield(context.Background(), USERNAME, user.StatusActive)
	s.Nil(err)
	s.Equal(id, u.ID)
	s.False(u.Email.IsPresent)
	s.False(u.HasEmail())
}

func (s *testSuite) TestSaveTokens() {
	s.createUser(USERNAME, EMAIL, user.StatusActive)
	u, err := s.repo.FindByKeyfield(context.Background(), USERNAME, user.StatusActive)
	s.Nil(err)

	later := NOW.Add(time.Hour)
	u.PasswordResetToken = c.Some(user.Token("reset_1"))
	u.UpdatedAt = later
	saved, err := s.repo.SaveTokens(context.Background(), u)
	s.Nil(err)
	s.Equal(c.Some(user.Token("reset_1")), saved.PasswordResetToken)
	s.False(saved.ActivationToken.IsPresent)
	s.True(later.Equal(saved.UpdatedAt))

	u.PasswordResetToken = c.Some(user.Token("reset_2"))
	_, err = s.repo.SaveTokens(context.Background(), u)
	s.Nil(err)

	read, err := s.repo.FindByKeyfield(context.Background(), EMAIL, user.StatusActive)
	s.Nil(err)
	s.Equal(c.Some(user.Token("reset_2")), read.PasswordResetToken)
}

func (s *testSuite) TestSaveTokensClearsToken() {
	s.createUser(USERNAME, EMAIL, user.StatusRegistered)
	u, err := s.repo.FindByKeyfield(context.Background(), USERNAME, user.StatusRegistered)
	s.Nil(err)

	u.ActivationToken = c.Some(user.Token("act_1"))
	u, err = s.repo.SaveTokens(context.Background(), u)
	s.Nil(err)
	s.True(u.ActivationToken.IsPresent)

	u.ActivationToken = c.None[user.Token]()
	u, err = s.repo.SaveTokens(context.Background(), u)
	s.Nil(err)
	s.False(u.ActivationToken.IsPresent)
}

func (s *testSuite) TestSaveTokensUnknownUser() {
	u := user.User{
		ID:                 999,
		Username:           c.Some(user.Username(USERNAME)),
		PasswordResetToken: c.Some(user.Token("reset_1")),
		UpdatedAt:          NOW,
	}
	_, err := s.repo.SaveTokens(context.Background(), u)
	s.ErrorIs(err, user.ErrUserDoesNotExist)
}

func (s *testSuite) TestSaveTokensRejectsInvalidUser() {
	u := user.User{ID: 1, PasswordResetToken: c.Some(user.Token("reset_1"))}
	_, err := s.repo.SaveTokens(context.Background(), u)
	s.ErrorIs(err, user.ErrUsernameOrEmailRequired)
}

func (s *testSuite) createUser(username string, email string, status user.Status) user.ID {
	s.T().Helper()
	var emailValue interface{}
	if email != "" {
		emailValue = email
	}
	var id int64
	err := s.pool.QueryRow(
		context.Background(),
		`INSERT INTO "user" (username, email, status, created_at, updated_at) VALUES ($1, $2, $3, $4, $4) RETURNING id`,
		username, emailValue, int16(status), NOW,
	).Scan(&id)
	if err != nil {
		s.FailNow(err.Error())
	}
	return user.ID(id)
}
