package service

import (
	"context"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"

	"socialnet/internal/model"
	"socialnet/internal/repository"
)

// FeedService derives a user's home feed from their follow edges. The feed is
// the union of posts authored by direct followees, one hop only, recomputed
// from scratch on every request.
type FeedService struct {
	followRepo repository.FollowRepository
	postRepo   repository.PostRepository
}

func NewFeedService(followRepo repository.FollowRepository, postRepo repository.PostRepository) *FeedService {
	return &FeedService{
		followRepo: followRepo,
		postRepo:   postRepo,
	}
}

// GetFeed resolves the requesting user's following set and fetches posts
// authored by any followee, newest first. An empty following set yields an
// empty feed without touching the posts table. The requester's own posts
// appear only if they follow themselves.
func (s *FeedService) GetFeed(ctx context.Context, userID int64) ([]model.Post, error) {
	startTime := time.Now()

	following, err := s.followRepo.GetFollowing(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve following set: %w", err)
	}

	if len(following) == 0 {
		return []model.Post{}, nil
	}

	followeeIDs := make([]int64, len(following))
	for i, f := range following {
		followeeIDs[i] = f.FolloweeID
	}

	posts, err := s.postRepo.GetByAuthors(ctx, followeeIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch feed posts: %w", err)
	}

	log.WithFields(log.Fields{
		"user_id":   userID,
		"followees": len(followeeIDs),
		"posts":     len(posts),
		"duration":  time.Since(startTime),
	}).Debug("Feed assembled")

	return posts, nil
}
