package user

import (
	"context"
	"errors"
	"fmt"
	c "forumaccount/internal/core/domain/common"
	e "forumaccount/internal/core/domain/errors"
	"forumaccount/internal/core/domain/user"
	"forumaccount/internal/db"
	"time"

	"github.com/jackc/pgtype"
	"github.com/jackc/pgx/v4"
)

const userColumns = `id, username, email, status, password_reset_token, activation_token, created_at, updated_at`

const findByKeyfield = `
SELECT ` + userColumns + ` FROM "user"
WHERE (username = $1 OR email = $1) AND status = $2
ORDER BY id
LIMIT 1`

const saveTokens = `
UPDATE "user"
SET password_reset_token = $2, activation_token = $3, updated_at = $4
WHERE id = $1
RETURNING ` + userColumns

type PgxUserRepository struct {
	db db.DBTX
}

func NewPgxRepository(db db.DBTX) *PgxUserRepository {
	if db == nil {
		panic(e.NewNilArgumentError("db"))
	}
	return &PgxUserRepository{db: db}
}

func (r *PgxUserRepository) FindByKeyfield(ctx context.Context, keyfield string, status user.Status) (u user.User, err error) {
	row := r.db.QueryRow(ctx, findByKeyfield, keyfield, int16(status))
	u, err = scanUser(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return u, user.ErrUserDoesNotExist
	}
	if err != nil {
		return u, err
	}
	return u, nil
}

func (r *PgxUserRepository) SaveTokens(ctx context.Context, input user.User) (u user.User, err error) {
	if err := input.Validate(); err != nil {
		return u, err
	}
	row := r.db.QueryRow(
		ctx,
		saveTokens,
		int64(input.ID),
		encodeToken(input.PasswordResetToken),
		encodeToken(input.ActivationToken),
		input.UpdatedAt,
	)
	u, err = scanUser(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return u, fmt.Errorf("could not save tokens of user %d: %w", input.ID, user.ErrUserDoesNotExist)
	}
	if err != nil {
		return u, err
	}
	return u, nil
}

func scanUser(row pgx.Row) (u user.User, err error) {
	var (
		id                 int64
		username           pgtype.Varchar
		email              pgtype.Varchar
		status             int16
		passwordResetToken pgtype.Varchar
		activationToken    pgtype.Varchar
		createdAt          time.Time
		updatedAt          time.Time
	)
	err = row.Scan(&id, &username, &email, &status, &passwordResetToken, &activationToken, &createdAt, &updatedAt)
	if err != nil {
		return u, err
	}
	return user.User{
		ID:                 user.ID(id),
		Username:           c.NewOptional(user.Username(username.String), username.Status == pgtype.Present),
		Email:              c.NewOptional(c.Email(email.String), email.Status == pgtype.Present),
		Status:             user.Status(status),
		PasswordResetToken: decodeToken(passwordResetToken),
		ActivationToken:    decodeToken(activationToken),
		CreatedAt:          createdAt,
		UpdatedAt:          updatedAt,
	}, nil
}

func encodeToken(token c.Optional[user.Token]) pgtype.Varchar {
	if !token.IsPresent {
		return pgtype.Varchar{Status: pgtype.Null}
	}
	return pgtype.Varchar{String: string(token.Value), Status: pgtype.Present}
}

func decodeToken(token pgtype.Varchar) c.Optional[user.Token] {
	return c.NewOptional(user.Token(token.String), token.Status == pgtype.Present)
}
