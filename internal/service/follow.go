package service

import (
	"context"

	log "github.com/sirupsen/logrus"

	"socialnet/internal/model"
	"socialnet/internal/repository"
)

// FollowService maintains the directed follow graph and answers adjacency
// queries over it.
type FollowService struct {
	followRepo repository.FollowRepository
	userRepo   repository.UserRepository
}

func NewFollowService(followRepo repository.FollowRepository, userRepo repository.UserRepository) *FollowService {
	return &FollowService{
		followRepo: followRepo,
		userRepo:   userRepo,
	}
}

// Follow inserts an edge from follower to followee and returns it. The
// followee must exist; a duplicate edge surfaces as ErrAlreadyFollowing from
// the storage layer's uniqueness constraint. Self-follows are permitted: a
// user who follows themselves sees their own posts in their feed.
func (s *FollowService) Follow(ctx context.Context, followerID, followeeID int64) (*model.Follow, error) {
	if _, err := s.userRepo.GetByID(ctx, followeeID); err != nil {
		return nil, err
	}

	follow, err := s.followRepo.Create(ctx, followerID, followeeID)
	if err != nil {
		return nil, err
	}

	log.WithFields(log.Fields{"follower_id": followerID, "followee_id": followeeID}).Info("User followed")
	return follow, nil
}

// Unfollow deletes the matching edge and returns it. When no edge existed the
// result is (nil, nil): nothing to unfollow is not an error, and no other
// edge is touched.
func (s *FollowService) Unfollow(ctx context.Context, followerID, followeeID int64) (*model.Follow, error) {
	follow, err := s.followRepo.Delete(ctx, followerID, followeeID)
	if err != nil {
		return nil, err
	}

	if follow != nil {
		log.WithFields(log.Fields{"follower_id": followerID, "followee_id": followeeID}).Info("User unfollowed")
	}
	return follow, nil
}

// Following returns the edges where userID is the follower.
func (s *FollowService) Following(ctx context.Context, userID int64) ([]model.Follow, error) {
	return s.followRepo.GetFollowing(ctx, userID)
}

// Followers returns the edges where userID is the followee.
func (s *FollowService) Followers(ctx context.Context, userID int64) ([]model.Follow, error) {
	return s.followRepo.GetFollowers(ctx, userID)
}

// Stats derives both counts from the live edge sets. Counts are never stored,
// so they always equal the cardinality of the corresponding adjacency query.
func (s *FollowService) Stats(ctx context.Context, userID int64) (*model.FollowStats, error) {
	following, err := s.followRepo.GetFollowing(ctx, userID)
	if err != nil {
		return nil, err
	}

	followers, err := s.followRepo.GetFollowers(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &model.FollowStats{
		Following: len(following),
		Followers: len(followers),
	}, nil
}
