package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"socialnet/internal/model"
)

type likeRepository struct {
	db *sqlx.DB
}

func NewLikeRepository(db *sqlx.DB) LikeRepository {
	return &likeRepository{db: db}
}

// Create inserts a like. The likes table carries a unique (post_id, user_id)
// constraint, so a duplicate insert matches no RETURNING row and is reported
// as ErrAlreadyLiked.
func (r *likeRepository) Create(ctx context.Context, postID, userID int64) (*model.Like, error) {
	query := `
		INSERT INTO likes (post_id, user_id, created_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (post_id, user_id) DO NOTHING
		RETURNING id, post_id, user_id, created_at
	`

	var l model.Like
	err := r.db.GetContext(ctx, &l, query, postID, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, model.ErrAlreadyLiked
		}
		return nil, fmt.Errorf("failed to create like: %w", err)
	}

	return &l, nil
}

// Delete removes the like and returns it, or (nil, nil) when none existed.
func (r *likeRepository) Delete(ctx context.Context, postID, userID int64) (*model.Like, error) {
	query := `
		DELETE FROM likes
		WHERE post_id = $1 AND user_id = $2
		RETURNING id, post_id, user_id, created_at
	`

	var l model.Like
	err := r.db.GetContext(ctx, &l, query, postID, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to delete like: %w", err)
	}

	return &l, nil
}

func (r *likeRepository) GetByPostID(ctx context.Context, postID int64) ([]model.Like, error) {
	query := `
		SELECT id, post_id, user_id, created_at
		FROM likes
		WHERE post_id = $1
		ORDER BY created_at DESC
	`

	var likes []model.Like
	err := r.db.SelectContext(ctx, &likes, query, postID)
	if err != nil {
		return nil, fmt.Errorf("failed to get post likes: %w", err)
	}

	return likes, nil
}

func (r *likeRepository) GetByUserID(ctx context.Context, userID int64) ([]model.Like, error) {
	query := `
		SELECT id, post_id, user_id, created_at
		FROM likes
		WHERE user_id = $1
		ORDER BY created_at DESC
	`

	var likes []model.Like
	err := r.db.SelectContext(ctx, &likes, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get user likes: %w", err)
	}

	return likes, nil
}
