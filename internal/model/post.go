package model

import (
	"errors"
	"time"
)

// Post represents a user's post. A post is owned exclusively by its creator.
type Post struct {
	ID        int64     `db:"id" json:"id"`
	UserID    int64     `db:"user_id" json:"user_id"`
	Content   string    `db:"content" json:"content"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

// CreatePostRequest is the request body for POST /api/posts.
type CreatePostRequest struct {
	Content string `json:"content" validate:"required,max=5000"`
}

// UpdatePostRequest is the request body for PUT /api/posts/{post_id}.
type UpdatePostRequest struct {
	Content string `json:"content" validate:"required,max=5000"`
}

var (
	// ErrPostNotFound covers both a missing post and a post owned by someone
	// else: owner-scoped mutations use a compound WHERE, so the two cases are
	// indistinguishable from the result set.
	ErrPostNotFound = errors.New("post not found")
)
