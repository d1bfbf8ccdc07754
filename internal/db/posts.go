package db

import (
	"context"
	"encoding/json"

	"github.com/jackc/pgx/v5"

	"github.com/devlink/backend/internal/model"
)

const postColumns = `id, user_id, text, name, avatar, likes, comments, created_at, updated_at`

func (db *Postgres) CreatePost(ctx context.Context, post *model.Post) error {
	query := `
		INSERT INTO posts (id, user_id, text, name, avatar, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, NOW(), NOW())
	`
	_, err := db.Pool.Exec(ctx, query,
		post.ID,
		post.UserID,
		post.Text,
		post.Name,
		post.Avatar,
	)
	return err
}

func (db *Postgres) GetPostByID(ctx context.Context, id string) (*model.Post, error) {
	query := `SELECT ` + postColumns + ` FROM posts WHERE id = $1`
	return scanPost(db.Pool.QueryRow(ctx, query, id))
}

func (db *Postgres) ListPosts(ctx context.Context) ([]model.Post, error) {
	query := `SELECT ` + postColumns + ` FROM posts ORDER BY created_at DESC`
	return db.queryPosts(ctx, query)
}

func (db *Postgres) ListPostsByUser(ctx context.Context, userID string) ([]model.Post, error) {
	query := `SELECT ` + postColumns + ` FROM posts WHERE user_id = $1 ORDER BY created_at DESC`
	return db.queryPosts(ctx, query, userID)
}

// UpdatePostText only touches the caller's own post; a row miss covers
// both an unknown id and someone else's post.
func (db *Postgres) UpdatePostText(ctx context.Context, id, userID, text string) error {
	query := `
		UPDATE posts
		SET text = $3, updated_at = NOW()
		WHERE id = $1 AND user_id = $2
	`
	tag, err := db.Pool.Exec(ctx, query, id, userID, text)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (db *Postgres) DeletePost(ctx context.Context, id, userID string) (*model.Post, error) {
	query := `
		DELETE FROM posts
		WHERE id = $1 AND user_id = $2
		RETURNING ` + postColumns
	return scanPost(db.Pool.QueryRow(ctx, query, id, userID))
}

func (db *Postgres) DeletePostsByUser(ctx context.Context, userID string) error {
	_, err := db.Pool.Exec(ctx, `DELETE FROM posts WHERE user_id = $1`, userID)
	return err
}

// AddLike has set semantics: liking a post twice leaves a single entry.
func (db *Postgres) AddLike(ctx context.Context, postID, userID string) error {
	entry, err := json.Marshal(userID)
	if err != nil {
		return err
	}

	query := `
		UPDATE posts
		SET likes = CASE
			WHEN likes @> $2::jsonb THEN likes
			ELSE likes || $2::jsonb
		END, updated_at = NOW()
		WHERE id = $1
	`
	tag, err := db.Pool.Exec(ctx, query, postID, string(entry))
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (db *Postgres) RemoveLike(ctx context.Context, postID, userID string) error {
	query := `
		UPDATE posts
		SET likes = likes - $2::text, updated_at = NOW()
		WHERE id = $1
	`
	tag, err := db.Pool.Exec(ctx, query, postID, userID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (db *Postgres) AddComment(ctx context.Context, postID string, comment model.Comment) error {
	encoded, err := json.Marshal([]model.Comment{comment})
	if err != nil {
		return err
	}

	query := `
		UPDATE posts
		SET comments = comments || $2::jsonb, updated_at = NOW()
		WHERE id = $1
	`
	tag, err := db.Pool.Exec(ctx, query, postID, string(encoded))
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (db *Postgres) RemoveComment(ctx context.Context, postID, commentID string) error {
	query := `
		UPDATE posts
		SET comments = COALESCE(
			(SELECT jsonb_agg(c) FROM jsonb_array_elements(comments) c WHERE c->>'id' <> $2),
			'[]'::jsonb
		), updated_at = NOW()
		WHERE id = $1
	`
	tag, err := db.Pool.Exec(ctx, query, postID, commentID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (db *Postgres) queryPosts(ctx context.Context, query string, args ...any) ([]model.Post, error) {
	rows, err := db.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	posts := []model.Post{}
	for rows.Next() {
		post, err := scanPost(rows)
		if err != nil {
			return nil, err
		}
		posts = append(posts, *post)
	}
	return posts, rows.Err()
}

func scanPost(row pgx.Row) (*model.Post, error) {
	var (
		post     model.Post
		likes    []byte
		comments []byte
	)
	err := row.Scan(
		&post.ID,
		&post.UserID,
		&post.Text,
		&post.Name,
		&post.Avatar,
		&likes,
		&comments,
		&post.CreatedAt,
		&post.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal(likes, &post.Likes); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(comments, &post.Comments); err != nil {
		return nil, err
	}
	return &post, nil
}
