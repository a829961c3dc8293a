package service

import (
	"context"

	log "github.com/sirupsen/logrus"

	"socialnet/internal/model"
	"socialnet/internal/repository"
)

// LikeService handles business logic for like operations.
type LikeService struct {
	likeRepo repository.LikeRepository
	postRepo repository.PostRepository
}

func NewLikeService(likeRepo repository.LikeRepository, postRepo repository.PostRepository) *LikeService {
	return &LikeService{
		likeRepo: likeRepo,
		postRepo: postRepo,
	}
}

// Like records the caller's endorsement of a post. A second like of the same
// post surfaces as ErrAlreadyLiked from the storage layer's uniqueness
// constraint.
func (s *LikeService) Like(ctx context.Context, postID, userID int64) (*model.Like, error) {
	exists, err := s.postRepo.Exists(ctx, postID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, model.ErrPostNotFound
	}

	like, err := s.likeRepo.Create(ctx, postID, userID)
	if err != nil {
		return nil, err
	}

	log.WithFields(log.Fields{"user_id": userID, "post_id": postID}).Info("Post liked")
	return like, nil
}

// Unlike removes the caller's like and returns it, or (nil, nil) when the
// post was not liked.
func (s *LikeService) Unlike(ctx context.Context, postID, userID int64) (*model.Like, error) {
	return s.likeRepo.Delete(ctx, postID, userID)
}

// GetPostLikes returns the likes on a post. The like count is the length of
// this set, never a stored counter.
func (s *LikeService) GetPostLikes(ctx context.Context, postID int64) ([]model.Like, error) {
	return s.likeRepo.GetByPostID(ctx, postID)
}

// GetUserLikes returns the likes a user has given.
func (s *LikeService) GetUserLikes(ctx context.Context, userID int64) ([]model.Like, error) {
	return s.likeRepo.GetByUserID(ctx, userID)
}
