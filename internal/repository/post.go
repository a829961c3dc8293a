package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"socialnet/internal/model"
)

type postRepository struct {
	db *sqlx.DB
}

func NewPostRepository(db *sqlx.DB) PostRepository {
	return &postRepository{db: db}
}

func (r *postRepository) Create(ctx context.Context, userID int64, content string) (*model.Post, error) {
	query := `
		INSERT INTO posts (user_id, content, created_at, updated_at)
		VALUES ($1, $2, NOW(), NOW())
		RETURNING id, user_id, content, created_at, updated_at
	`

	var p model.Post
	err := r.db.GetContext(ctx, &p, query, userID, content)
	if err != nil {
		return nil, fmt.Errorf("failed to insert post: %w", err)
	}

	return &p, nil
}

func (r *postRepository) GetByID(ctx context.Context, postID int64) (*model.Post, error) {
	query := `
		SELECT id, user_id, content, created_at, updated_at
		FROM posts
		WHERE id = $1
	`

	var p model.Post
	err := r.db.GetContext(ctx, &p, query, postID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, model.ErrPostNotFound
		}
		return nil, fmt.Errorf("failed to get post: %w", err)
	}

	return &p, nil
}

func (r *postRepository) GetByUserID(ctx context.Context, userID int64) ([]model.Post, error) {
	query := `
		SELECT id, user_id, content, created_at, updated_at
		FROM posts
		WHERE user_id = $1
		ORDER BY created_at DESC
	`

	var posts []model.Post
	err := r.db.SelectContext(ctx, &posts, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get user posts: %w", err)
	}

	return posts, nil
}

// GetByAuthors returns posts authored by any of the given users, newest first.
func (r *postRepository) GetByAuthors(ctx context.Context, authorIDs []int64) ([]model.Post, error) {
	if len(authorIDs) == 0 {
		return []model.Post{}, nil
	}

	query := `
		SELECT id, user_id, content, created_at, updated_at
		FROM posts
		WHERE user_id = ANY($1)
		ORDER BY created_at DESC
	`

	var posts []model.Post
	err := r.db.SelectContext(ctx, &posts, query, pq.Array(authorIDs))
	if err != nil {
		return nil, fmt.Errorf("failed to get posts by authors: %w", err)
	}

	return posts, nil
}

// Update changes content for the owner only. The compound WHERE means a post
// owned by another user matches no row, indistinguishable from a missing post.
func (r *postRepository) Update(ctx context.Context, postID, userID int64, content string) (*model.Post, error) {
	query := `
		UPDATE posts
		SET content = $3, updated_at = NOW()
		WHERE id = $1 AND user_id = $2
		RETURNING id, user_id, content, created_at, updated_at
	`

	var p model.Post
	err := r.db.GetContext(ctx, &p, query, postID, userID, content)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, model.ErrPostNotFound
		}
		return nil, fmt.Errorf("failed to update post: %w", err)
	}

	return &p, nil
}

// Delete removes a post with the same owner-scoped predicate used for updates.
func (r *postRepository) Delete(ctx context.Context, postID, userID int64) (*model.Post, error) {
	query := `
		DELETE FROM posts
		WHERE id = $1 AND user_id = $2
		RETURNING id, user_id, content, created_at, updated_at
	`

	var p model.Post
	err := r.db.GetContext(ctx, &p, query, postID, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, model.ErrPostNotFound
		}
		return nil, fmt.Errorf("failed to delete post: %w", err)
	}

	return &p, nil
}

// DeleteAny removes a post by id with no ownership predicate (permissive mode).
func (r *postRepository) DeleteAny(ctx context.Context, postID int64) (*model.Post, error) {
	query := `
		DELETE FROM posts
		WHERE id = $1
		RETURNING id, user_id, content, created_at, updated_at
	`

	var p model.Post
	err := r.db.GetContext(ctx, &p, query, postID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, model.ErrPostNotFound
		}
		return nil, fmt.Errorf("failed to delete post: %w", err)
	}

	return &p, nil
}

// Search performs a case-insensitive substring search over post content.
func (r *postRepository) Search(ctx context.Context, content string) ([]model.Post, error) {
	query := `
		SELECT id, user_id, content, created_at, updated_at
		FROM posts
		WHERE content ILIKE '%' || $1 || '%'
		ORDER BY created_at DESC
	`

	var posts []model.Post
	err := r.db.SelectContext(ctx, &posts, query, content)
	if err != nil {
		return nil, fmt.Errorf("failed to search posts: %w", err)
	}

	return posts, nil
}

func (r *postRepository) Exists(ctx context.Context, postID int64) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM posts WHERE id = $1)`

	var exists bool
	err := r.db.GetContext(ctx, &exists, query, postID)
	if err != nil {
		return false, fmt.Errorf("failed to check post existence: %w", err)
	}

	return exists, nil
}
