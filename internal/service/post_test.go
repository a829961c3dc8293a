package service

import (
	"context"
	"errors"
	"testing"

	"socialnet/internal/model"
)

func TestPostService_Create(t *testing.T) {
	postRepo := &mockPostRepository{
		createFn: func(ctx context.Context, userID int64, content string) (*model.Post, error) {
			return &model.Post{ID: 10, UserID: userID, Content: content}, nil
		},
	}
	svc := NewPostService(postRepo, false)

	post, err := svc.Create(context.Background(), 1, &model.CreatePostRequest{Content: "hello"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if post.UserID != 1 || post.Content != "hello" {
		t.Errorf("post = %+v, want user 1, content %q", post, "hello")
	}
}

func TestPostService_Update_OwnershipScoped(t *testing.T) {
	owned := &model.Post{ID: 10, UserID: 1, Content: "original"}
	postRepo := &mockPostRepository{
		updateFn: func(ctx context.Context, postID, userID int64, content string) (*model.Post, error) {
			if postID == owned.ID && userID == owned.UserID {
				return &model.Post{ID: postID, UserID: userID, Content: content}, nil
			}
			// Foreign or missing rows match nothing
			return nil, model.ErrPostNotFound
		},
	}
	svc := NewPostService(postRepo, false)
	ctx := context.Background()

	post, err := svc.Update(ctx, 10, 1, &model.UpdatePostRequest{Content: "edited"})
	if err != nil {
		t.Fatalf("owner update failed: %v", err)
	}
	if post.Content != "edited" {
		t.Errorf("content = %q, want %q", post.Content, "edited")
	}

	// Another user targeting the same post gets not-found
	_, err = svc.Update(ctx, 10, 2, &model.UpdatePostRequest{Content: "hijacked"})
	if !errors.Is(err, model.ErrPostNotFound) {
		t.Errorf("error = %v, want %v", err, model.ErrPostNotFound)
	}
}

func TestPostService_Delete_OwnershipModes(t *testing.T) {
	tests := []struct {
		name            string
		permissive      bool
		wantDeleteCalls int
		wantAnyCalls    int
	}{
		{name: "hardened uses owner-scoped delete", permissive: false, wantDeleteCalls: 1, wantAnyCalls: 0},
		{name: "permissive deletes by id only", permissive: true, wantDeleteCalls: 0, wantAnyCalls: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			postRepo := &mockPostRepository{
				deleteFn: func(ctx context.Context, postID, userID int64) (*model.Post, error) {
					return &model.Post{ID: postID, UserID: userID}, nil
				},
				deleteAnyFn: func(ctx context.Context, postID int64) (*model.Post, error) {
					return &model.Post{ID: postID}, nil
				},
			}
			svc := NewPostService(postRepo, tt.permissive)

			if _, err := svc.Delete(context.Background(), 10, 1); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if postRepo.deleteCalls != tt.wantDeleteCalls {
				t.Errorf("Delete calls = %d, want %d", postRepo.deleteCalls, tt.wantDeleteCalls)
			}
			if postRepo.deleteAnyCalls != tt.wantAnyCalls {
				t.Errorf("DeleteAny calls = %d, want %d", postRepo.deleteAnyCalls, tt.wantAnyCalls)
			}
		})
	}
}

func TestPostService_Delete_NotOwner(t *testing.T) {
	svc := NewPostService(&mockPostRepository{}, false)

	_, err := svc.Delete(context.Background(), 10, 2)
	if !errors.Is(err, model.ErrPostNotFound) {
		t.Errorf("error = %v, want %v", err, model.ErrPostNotFound)
	}
}

func TestPostService_Search(t *testing.T) {
	postRepo := &mockPostRepository{
		searchFn: func(ctx context.Context, content string) ([]model.Post, error) {
			if content == "go" {
				return []model.Post{{ID: 1, Content: "Going out"}, {ID: 2, Content: "learning GO"}}, nil
			}
			return nil, nil
		},
	}
	svc := NewPostService(postRepo, false)

	posts, err := svc.Search(context.Background(), "go")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(posts) != 2 {
		t.Errorf("got %d posts, want 2", len(posts))
	}
}
