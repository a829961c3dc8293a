package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"socialnet/internal/model"
)

type commentRepository struct {
	db *sqlx.DB
}

func NewCommentRepository(db *sqlx.DB) CommentRepository {
	return &commentRepository{db: db}
}

func (r *commentRepository) Create(ctx context.Context, postID, userID int64, content string) (*model.Comment, error) {
	query := `
		INSERT INTO comments (post_id, user_id, content, created_at)
		VALUES ($1, $2, $3, NOW())
		RETURNING id, post_id, user_id, content, created_at
	`

	var c model.Comment
	err := r.db.GetContext(ctx, &c, query, postID, userID, content)
	if err != nil {
		return nil, fmt.Errorf("failed to insert comment: %w", err)
	}

	return &c, nil
}

func (r *commentRepository) GetByID(ctx context.Context, commentID int64) (*model.Comment, error) {
	query := `
		SELECT id, post_id, user_id, content, created_at
		FROM comments
		WHERE id = $1
	`

	var c model.Comment
	err := r.db.GetContext(ctx, &c, query, commentID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, model.ErrCommentNotFound
		}
		return nil, fmt.Errorf("failed to get comment: %w", err)
	}

	return &c, nil
}

func (r *commentRepository) GetByPostID(ctx context.Context, postID int64) ([]model.Comment, error) {
	query := `
		SELECT id, post_id, user_id, content, created_at
		FROM comments
		WHERE post_id = $1
		ORDER BY created_at ASC
	`

	var comments []model.Comment
	err := r.db.SelectContext(ctx, &comments, query, postID)
	if err != nil {
		return nil, fmt.Errorf("failed to get post comments: %w", err)
	}

	return comments, nil
}

// Update changes content for the author only. The compound WHERE means a
// comment authored by another user matches no row, indistinguishable from a
// missing comment.
func (r *commentRepository) Update(ctx context.Context, commentID, userID int64, content string) (*model.Comment, error) {
	query := `
		UPDATE comments
		SET content = $3
		WHERE id = $1 AND user_id = $2
		RETURNING id, post_id, user_id, content, created_at
	`

	var c model.Comment
	err := r.db.GetContext(ctx, &c, query, commentID, userID, content)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, model.ErrCommentNotFound
		}
		return nil, fmt.Errorf("failed to update comment: %w", err)
	}

	return &c, nil
}

// Delete removes a comment with the same author-scoped predicate used for
// updates.
func (r *commentRepository) Delete(ctx context.Context, commentID, userID int64) (*model.Comment, error) {
	query := `
		DELETE FROM comments
		WHERE id = $1 AND user_id = $2
		RETURNING id, post_id, user_id, content, created_at
	`

	var c model.Comment
	err := r.db.GetContext(ctx, &c, query, commentID, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, model.ErrCommentNotFound
		}
		return nil, fmt.Errorf("failed to delete comment: %w", err)
	}

	return &c, nil
}

// DeleteAny removes a comment by id with no ownership predicate (permissive
// mode).
func (r *commentRepository) DeleteAny(ctx context.Context, commentID int64) (*model.Comment, error) {
	query := `
		DELETE FROM comments
		WHERE id = $1
		RETURNING id, post_id, user_id, content, created_at
	`

	var c model.Comment
	err := r.db.GetContext(ctx, &c, query, commentID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, model.ErrCommentNotFound
		}
		return nil, fmt.Errorf("failed to delete comment: %w", err)
	}

	return &c, nil
}
