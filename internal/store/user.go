package store

import (
	"context"
	"errors"
	"time"

	"basegraph.app/helpdesk/core/db/sqlc"
	"basegraph.app/helpdesk/internal/model"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

const uniqueViolation = "23505"

type userStore struct {
	queries *sqlc.Queries
}

func newUserStore(queries *sqlc.Queries) UserStore {
	return &userStore{queries: queries}
}

func (s *userStore) GetByID(ctx context.Context, id int64) (*model.User, error) {
	row, err := s.queries.GetUser(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return toUserModel(row), nil
}

func (s *userStore) GetByUsername(ctx context.Context, username string) (*model.User, error) {
	row, err := s.queries.GetUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return toUserModel(row), nil
}

func (s *userStore) Create(ctx context.Context, user *model.User) error {
	row, err := s.queries.CreateUser(ctx, sqlc.CreateUserParams{
		ID:           user.ID,
		Username:     user.Username,
		PasswordHash: user.PasswordHash,
		LastActiveAt: timeToPgTimestamptz(user.LastActiveAt),
	})
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return ErrDuplicate
		}
		return err
	}
	*user = *toUserModel(row)
	return nil
}

func (s *userStore) TouchLastActive(ctx context.Context, id int64, at time.Time) error {
	return s.queries.TouchUserLastActive(ctx, sqlc.TouchUserLastActiveParams{
		ID:           id,
		LastActiveAt: timeToPgTimestamptz(&at),
	})
}

func toUserModel(row sqlc.User) *model.User {
	return &model.User{
		ID:           row.ID,
		Username:     row.Username,
		PasswordHash: row.PasswordHash,
		LastActiveAt: pgTimestamptzToTime(row.LastActiveAt),
		CreatedAt:    row.CreatedAt.Time,
		UpdatedAt:    row.UpdatedAt.Time,
	}
}
