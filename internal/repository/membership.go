package repository

import (
	"context"
	"database/sql"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/bibliotek/lending-service/internal/errs"
	"github.com/bibliotek/lending-service/internal/model"
)

func (r *repository) CreateUser(ctx context.Context, username, passwordHash string, isAdmin bool) (model.User, error) {
	q, args, err := qb.Insert(usersTableName).
		Columns("username", "password", "is_admin").
		Values(username, passwordHash, isAdmin).
		Suffix("returning id, username, password, is_admin").
		ToSql()
	if err != nil {
		return model.User{}, err
	}

	var user model.User
	if err := r.db.GetContext(ctx, &user, q, args...); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return model.User{}, errs.ErrConflict
		}
		r.log.Error("CreateUser", zap.String("q", q), zap.String("username", username))
		return model.User{}, err
	}
	return user, nil
}

func (r *repository) GetUser(ctx context.Context, username string) (model.User, error) {
	q, args, err := qb.Select("id", "username", "password", "is_admin").
		From(usersTableName).
		Where(sq.Eq{"username": username}).
		Limit(1).
		ToSql()
	if err != nil {
		return model.User{}, err
	}

	var user model.User
	if err := r.db.GetContext(ctx, &user, q, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.User{}, errs.ErrNotFound
		}
		return model.User{}, err
	}
	return user, nil
}

func (r *repository) GetUserByID(ctx context.Context, id int) (model.User, error) {
	q, args, err := qb.Select("id", "username", "password", "is_admin").
		From(usersTableName).
		Where(sq.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return model.User{}, err
	}

	var user model.User
	if err := r.db.GetContext(ctx, &user, q, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.User{}, errs.ErrNotFound
		}
		return model.User{}, err
	}
	return user, nil
}
