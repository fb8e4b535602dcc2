package repository

import (
	"context"
	"errors"
	"time"

	"coworking-booking/internal/domain/user"
	"coworking-booking/internal/infra"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// uniqueViolation is the PostgreSQL error code for duplicate keys.
const uniqueViolation = "23505"

type UserRepository struct {
	db infra.DBTX
}

func NewUserRepository(db infra.DBTX) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Insert(ctx context.Context, u *user.User) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO users (id, name, email, password_hash, created_at)
		VALUES ($1, $2, $3, $4, now())
	`, u.ID(), u.Name(), u.Email().Value(), u.PasswordHash())
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return infra.WrapRepoErr("email already registered", err, infra.KindConflict)
		}
		return infra.WrapRepoErr("failed to insert user", err)
	}
	return nil
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*user.User, error) {
	return r.findBy(ctx, `email = $1`, email)
}

func (r *UserRepository) FindByID(ctx context.Context, id uuid.UUID) (*user.User, error) {
	return r.findBy(ctx, `id = $1`, id)
}

func (r *UserRepository) findBy(ctx context.Context, where string, arg any) (*user.User, error) {
	row := r.db.QueryRow(ctx, `
		SELECT id, name, email, password_hash, created_at
		FROM users
		WHERE `+where, arg)

	var (
		id           uuid.UUID
		name         string
		emailRaw     string
		passwordHash string
		createdAt    time.Time
	)
	if err := row.Scan(&id, &name, &emailRaw, &passwordHash, &createdAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find user", err)
	}

	email, err := user.NewEmail(emailRaw)
	if err != nil {
		return nil, infra.WrapRepoErr("corrupt user email", err)
	}
	return user.ReconstructUser(id, name, email, passwordHash, createdAt), nil
}
