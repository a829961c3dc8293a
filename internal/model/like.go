package model

import (
	"errors"
	"time"
)

// Like represents a user's endorsement of a post. A user likes a post at most
// once; the storage layer enforces this with a unique (post_id, user_id) pair.
type Like struct {
	ID        int64     `db:"id" json:"id"`
	PostID    int64     `db:"post_id" json:"post_id"`
	UserID    int64     `db:"user_id" json:"user_id"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

var (
	ErrAlreadyLiked = errors.New("post already liked")
)
