package service

import (
	"context"
	"errors"
	"testing"

	"socialnet/internal/model"
)

// A follows B and C. B has one post, C has two, D has one. A's feed is the
// union of B's and C's posts and never includes D's or A's own.
func TestFeedService_GetFeed_UnionOfFollowees(t *testing.T) {
	postsByAuthor := map[int64][]model.Post{
		2: {{ID: 1, UserID: 2, Content: "p1"}},
		3: {{ID: 2, UserID: 3, Content: "p2"}, {ID: 3, UserID: 3, Content: "p3"}},
		4: {{ID: 4, UserID: 4, Content: "p4"}},
	}

	followRepo := &mockFollowRepository{
		getFollowingFn: func(ctx context.Context, userID int64) ([]model.Follow, error) {
			return []model.Follow{
				{FollowerID: userID, FolloweeID: 2},
				{FollowerID: userID, FolloweeID: 3},
			}, nil
		},
	}
	postRepo := &mockPostRepository{
		getByAuthorsFn: func(ctx context.Context, authorIDs []int64) ([]model.Post, error) {
			var out []model.Post
			for _, id := range authorIDs {
				out = append(out, postsByAuthor[id]...)
			}
			return out, nil
		},
	}
	svc := NewFeedService(followRepo, postRepo)

	posts, err := svc.GetFeed(context.Background(), 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(posts) != 3 {
		t.Fatalf("feed size = %d, want 3", len(posts))
	}
	for _, p := range posts {
		if p.UserID != 2 && p.UserID != 3 {
			t.Errorf("feed contains post by user %d, want only followees 2 and 3", p.UserID)
		}
	}

	if len(postRepo.getByAuthorsCalls) != 1 {
		t.Fatalf("GetByAuthors called %d times, want 1", len(postRepo.getByAuthorsCalls))
	}
	if got := postRepo.getByAuthorsCalls[0]; len(got) != 2 || got[0] != 2 || got[1] != 3 {
		t.Errorf("author IDs = %v, want [2 3]", got)
	}
}

func TestFeedService_GetFeed_EmptyFollowing(t *testing.T) {
	postRepo := &mockPostRepository{}
	svc := NewFeedService(&mockFollowRepository{}, postRepo)

	posts, err := svc.GetFeed(context.Background(), 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if posts == nil {
		t.Fatal("expected empty slice, got nil")
	}
	if len(posts) != 0 {
		t.Errorf("feed size = %d, want 0", len(posts))
	}

	// No followees means the posts table is never queried
	if len(postRepo.getByAuthorsCalls) != 0 {
		t.Errorf("GetByAuthors called %d times, want 0", len(postRepo.getByAuthorsCalls))
	}
}

func TestFeedService_GetFeed_FollowRepoError(t *testing.T) {
	dbError := errors.New("connection lost")
	followRepo := &mockFollowRepository{
		getFollowingFn: func(ctx context.Context, userID int64) ([]model.Follow, error) {
			return nil, dbError
		},
	}
	svc := NewFeedService(followRepo, &mockPostRepository{})

	_, err := svc.GetFeed(context.Background(), 1)
	if !errors.Is(err, dbError) {
		t.Errorf("error should wrap repo error, got %v", err)
	}
}

func TestFeedService_GetFeed_PostRepoError(t *testing.T) {
	dbError := errors.New("query timeout")
	followRepo := &mockFollowRepository{
		getFollowingFn: func(ctx context.Context, userID int64) ([]model.Follow, error) {
			return []model.Follow{{FollowerID: userID, FolloweeID: 2}}, nil
		},
	}
	postRepo := &mockPostRepository{
		getByAuthorsFn: func(ctx context.Context, authorIDs []int64) ([]model.Post, error) {
			return nil, dbError
		},
	}
	svc := NewFeedService(followRepo, postRepo)

	_, err := svc.GetFeed(context.Background(), 1)
	if !errors.Is(err, dbError) {
		t.Errorf("error should wrap repo error, got %v", err)
	}
}
