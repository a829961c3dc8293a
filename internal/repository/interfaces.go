package repository

import (
	"context"

	"socialnet/internal/model"
)

type UserRepository interface {
	Create(ctx context.Context, user *model.User) error
	GetByID(ctx context.Context, id int64) (*model.User, error)
	GetByUsername(ctx context.Context, username string) (*model.User, error)
	ExistsByUsername(ctx context.Context, username string) (bool, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	SearchByName(ctx context.Context, name string) ([]model.User, error)
	// UpdateProfile updates username/email/full_name and returns the updated
	// row, or ErrUserNotFound if no row matched.
	UpdateProfile(ctx context.Context, id int64, username, email, fullName string) (*model.User, error)
}

type FollowRepository interface {
	// Create inserts a directed edge and returns it. A duplicate edge is
	// rejected by the storage layer's uniqueness constraint and surfaces as
	// ErrAlreadyFollowing.
	Create(ctx context.Context, followerID, followeeID int64) (*model.Follow, error)
	// Delete removes the matching edge and returns it, or (nil, nil) when no
	// edge existed. Callers treat nil as "nothing to unfollow", not an error.
	Delete(ctx context.Context, followerID, followeeID int64) (*model.Follow, error)
	// GetFollowing returns the edges where userID is the follower.
	GetFollowing(ctx context.Context, userID int64) ([]model.Follow, error)
	// GetFollowers returns the edges where userID is the followee.
	GetFollowers(ctx context.Context, userID int64) ([]model.Follow, error)
}

type PostRepository interface {
	Create(ctx context.Context, userID int64, content string) (*model.Post, error)
	GetByID(ctx context.Context, postID int64) (*model.Post, error)
	GetByUserID(ctx context.Context, userID int64) ([]model.Post, error)
	// GetByAuthors returns posts authored by any of the given users, newest
	// first. Used by the feed assembler.
	GetByAuthors(ctx context.Context, authorIDs []int64) ([]model.Post, error)
	// Update changes content with an owner-scoped predicate; a row owned by
	// another user matches nothing and surfaces as ErrPostNotFound.
	Update(ctx context.Context, postID, userID int64, content string) (*model.Post, error)
	// Delete removes a post with the owner-scoped predicate.
	Delete(ctx context.Context, postID, userID int64) (*model.Post, error)
	// DeleteAny removes a post by id regardless of owner (permissive mode).
	DeleteAny(ctx context.Context, postID int64) (*model.Post, error)
	Search(ctx context.Context, content string) ([]model.Post, error)
	Exists(ctx context.Context, postID int64) (bool, error)
}

type CommentRepository interface {
	Create(ctx context.Context, postID, userID int64, content string) (*model.Comment, error)
	GetByID(ctx context.Context, commentID int64) (*model.Comment, error)
	GetByPostID(ctx context.Context, postID int64) ([]model.Comment, error)
	// Update changes content with an author-scoped predicate; a row authored
	// by another user matches nothing and surfaces as ErrCommentNotFound.
	Update(ctx context.Context, commentID, userID int64, content string) (*model.Comment, error)
	Delete(ctx context.Context, commentID, userID int64) (*model.Comment, error)
	DeleteAny(ctx context.Context, commentID int64) (*model.Comment, error)
}

type LikeRepository interface {
	// Create inserts a like; a duplicate (post_id, user_id) pair is rejected
	// by the storage layer's uniqueness constraint and surfaces as
	// ErrAlreadyLiked.
	Create(ctx context.Context, postID, userID int64) (*model.Like, error)
	// Delete removes the like and returns it, or (nil, nil) when none existed.
	Delete(ctx context.Context, postID, userID int64) (*model.Like, error)
	GetByPostID(ctx context.Context, postID int64) ([]model.Like, error)
	GetByUserID(ctx context.Context, userID int64) ([]model.Like, error)
}

type RefreshTokenRepository interface {
	Create(ctx context.Context, token *model.RefreshToken) error
	FindByTokenHash(ctx context.Context, tokenHash string) (*model.RefreshToken, error)
	Revoke(ctx context.Context, id string, replacedBy *string) error
	RevokeAllForUser(ctx context.Context, userID int64) error
}
