package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"socialnet/internal/model"
)

type followRepository struct {
	db *sqlx.DB
}

func NewFollowRepository(db *sqlx.DB) FollowRepository {
	return &followRepository{db: db}
}

// Create inserts a directed edge. The follows table carries a unique
// (follower_id, followee_id) constraint, so a duplicate insert matches no
// RETURNING row and is reported as ErrAlreadyFollowing.
func (r *followRepository) Create(ctx context.Context, followerID, followeeID int64) (*model.Follow, error) {
	query := `
		INSERT INTO follows (follower_id, followee_id, created_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (follower_id, followee_id) DO NOTHING
		RETURNING id, follower_id, followee_id, created_at
	`

	var f model.Follow
	err := r.db.GetContext(ctx, &f, query, followerID, followeeID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, model.ErrAlreadyFollowing
		}
		return nil, fmt.Errorf("failed to create follow: %w", err)
	}

	return &f, nil
}

// Delete removes the matching edge and returns it. When no edge exists the
// result is (nil, nil); callers treat that as "nothing to unfollow".
func (r *followRepository) Delete(ctx context.Context, followerID, followeeID int64) (*model.Follow, error) {
	query := `
		DELETE FROM follows
		WHERE follower_id = $1 AND followee_id = $2
		RETURNING id, follower_id, followee_id, created_at
	`

	var f model.Follow
	err := r.db.GetContext(ctx, &f, query, followerID, followeeID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to delete follow: %w", err)
	}

	return &f, nil
}

// GetFollowing returns the out-edges of userID. The result doubles as the
// seed set for feed assembly; its length is the following count.
func (r *followRepository) GetFollowing(ctx context.Context, userID int64) ([]model.Follow, error) {
	query := `
		SELECT id, follower_id, followee_id, created_at
		FROM follows
		WHERE follower_id = $1
		ORDER BY created_at DESC
	`

	var follows []model.Follow
	err := r.db.SelectContext(ctx, &follows, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get following: %w", err)
	}

	return follows, nil
}

// GetFollowers returns the in-edges of userID.
func (r *followRepository) GetFollowers(ctx context.Context, userID int64) ([]model.Follow, error) {
	query := `
		SELECT id, follower_id, followee_id, created_at
		FROM follows
		WHERE followee_id = $1
		ORDER BY created_at DESC
	`

	var follows []model.Follow
	err := r.db.SelectContext(ctx, &follows, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get followers: %w", err)
	}

	return follows, nil
}
