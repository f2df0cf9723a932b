package store

import (
	"context"

	"github.com/Masterminds/squirrel"
	"github.com/ougirez/ecotrack/internal/domain"
	"github.com/ougirez/ecotrack/internal/pkg/store/xpgx"
)

var userColumns = []string{"id", "username", "email", "password_hash", "password_salt", "name", "lastname", "birthdate", "profile_photo", "created_at", "updated_at"}

func (s *store) CreateUser(ctx context.Context, user *domain.User) error {
	query := builder().Insert(tableUsers).
		Columns("username", "email", "password_hash", "password_salt").
		Values(user.Username, user.Email, user.UserPassword.Hash, user.UserPassword.Salt).
		Suffix("RETURNING id")

	id, err := xpgx.GetScalarx[int64](ctx, s.pool, query)
	if err != nil {
		return wrapErr(err)
	}

	user.ID = id
	return nil
}

func (s *store) GetUserByID(ctx context.Context, id int64) (*domain.User, error) {
	query := builder().Select(userColumns...).
		From(tableUsers).
		Where(squirrel.Eq{"id": id})

	selected, err := xpgx.Getx[domain.User](ctx, s.pool, query)
	if err != nil {
		return nil, wrapErr(err)
	}

	return selected, nil
}

func (s *store) GetUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	query := builder().Select(userColumns...).
		From(tableUsers).
		Where(squirrel.Eq{"email": email})

	selected, err := xpgx.Getx[domain.User](ctx, s.pool, query)
	if err != nil {
		return nil, wrapErr(err)
	}

	return selected, nil
}

func (s *store) ListUsers(ctx context.Context) ([]*domain.User, error) {
	query := builder().Select(userColumns...).
		From(tableUsers).
		OrderBy("id")

	selected, err := xpgx.Selectx[domain.User](ctx, s.pool, query)
	if err != nil {
		return nil, wrapErr(err)
	}

	return selected, nil
}

func (s *store) UpdateUser(ctx context.Context, user *domain.User) error {
	query := builder().Update(tableUsers).
		Set("username", user.Username).
		Set("email", user.Email).
		Set("password_hash", user.UserPassword.Hash).
		Set("password_salt", user.UserPassword.Salt).
		Set("name", user.Name).
		Set("lastname", user.Lastname).
		Set("birthdate", user.Birthdate).
		Set("profile_photo", user.ProfilePhoto).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": user.ID})

	if _, err := s.pool.Execx(ctx, query); err != nil {
		return wrapErr(err)
	}

	return nil
}

func (s *store) DeleteUser(ctx context.Context, id int64) error {
	query := builder().Delete(tableUsers).
		Where(squirrel.Eq{"id": id})

	if _, err := s.pool.Execx(ctx, query); err != nil {
		return wrapErr(err)
	}

	return nil
}
