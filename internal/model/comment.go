package model

import (
	"errors"
	"time"
)

// Comment represents a comment on a post.
type Comment struct {
	ID        int64     `db:"id" json:"id"`
	PostID    int64     `db:"post_id" json:"post_id"`
	UserID    int64     `db:"user_id" json:"user_id"`
	Content   string    `db:"content" json:"content"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

// CreateCommentRequest is the request body for POST /api/comments.
type CreateCommentRequest struct {
	PostID  int64  `json:"post_id" validate:"required,gt=0"`
	Content string `json:"content" validate:"required,max=2000"`
}

// UpdateCommentRequest is the request body for PUT /api/comments/{comment_id}.
type UpdateCommentRequest struct {
	Content string `json:"content" validate:"required,max=2000"`
}

var (
	// ErrCommentNotFound also covers owner-scoped updates that matched no row
	// because the caller is not the author.
	ErrCommentNotFound = errors.New("comment not found")
)
