package model

import (
	"errors"
	"time"
)

// Follow is a directed edge: the follower's feed includes the followee's posts.
// Edges are immutable once created; they are only ever inserted or deleted.
type Follow struct {
	ID         int64     `db:"id" json:"id"`
	FollowerID int64     `db:"follower_id" json:"follower_id"`
	FolloweeID int64     `db:"followee_id" json:"followee_id"`
	CreatedAt  time.Time `db:"created_at" json:"created_at"`
}

// FollowStats holds counts derived from the live edge set. They are computed
// on read and never stored, so they can never go stale.
type FollowStats struct {
	Following int `json:"following"`
	Followers int `json:"followers"`
}

var (
	ErrAlreadyFollowing = errors.New("already following this user")
)
