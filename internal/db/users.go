package db

import (
	"context"

	"github.com/devlink/backend/internal/model"
)

func (db *Postgres) CreateUser(ctx context.Context, user *model.User) error {
	query := `
		INSERT INTO users (id, name, email, avatar, password_hash, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, NOW(), NOW())
		RETURNING created_at, updated_at
	`
	return db.Pool.QueryRow(ctx, query,
		user.ID,
		user.Name,
		user.Email,
		user.Avatar,
		user.Password,
	).Scan(&user.CreatedAt, &user.UpdatedAt)
}

func (db *Postgres) GetUserByEmail(ctx context.Context, email string) (*model.User, error) {
	query := `
		SELECT id, name, email, avatar, password_hash, created_at, updated_at
		FROM users
		WHERE email = $1
	`
	return db.scanUser(ctx, query, email)
}

func (db *Postgres) GetUserByID(ctx context.Context, id string) (*model.User, error) {
	query := `
		SELECT id, name, email, avatar, password_hash, created_at, updated_at
		FROM users
		WHERE id = $1
	`
	return db.scanUser(ctx, query, id)
}

func (db *Postgres) DeleteUser(ctx context.Context, id string) error {
	_, err := db.Pool.Exec(ctx, `DELETE FROM users WHERE id = $1`, id)
	return err
}

func (db *Postgres) scanUser(ctx context.Context, query string, arg any) (*model.User, error) {
	var user model.User
	err := db.Pool.QueryRow(ctx, query, arg).Scan(
		&user.ID,
		&user.Name,
		&user.Email,
		&user.Avatar,
		&user.Password,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &user, nil
}
