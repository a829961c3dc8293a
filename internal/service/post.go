package service

import (
	"context"

	log "github.com/sirupsen/logrus"

	"socialnet/internal/model"
	"socialnet/internal/repository"
)

// PostService handles business logic for post operations.
type PostService struct {
	postRepo          repository.PostRepository
	permissiveDeletes bool
}

func NewPostService(postRepo repository.PostRepository, permissiveDeletes bool) *PostService {
	return &PostService{
		postRepo:          postRepo,
		permissiveDeletes: permissiveDeletes,
	}
}

func (s *PostService) Create(ctx context.Context, userID int64, req *model.CreatePostRequest) (*model.Post, error) {
	post, err := s.postRepo.Create(ctx, userID, req.Content)
	if err != nil {
		return nil, err
	}

	log.WithFields(log.Fields{"user_id": userID, "post_id": post.ID}).Info("Post created")
	return post, nil
}

func (s *PostService) GetByID(ctx context.Context, postID int64) (*model.Post, error) {
	return s.postRepo.GetByID(ctx, postID)
}

func (s *PostService) GetUserPosts(ctx context.Context, userID int64) ([]model.Post, error) {
	return s.postRepo.GetByUserID(ctx, userID)
}

// Update changes a post's content. Only the owner's rows match; a post owned
// by someone else surfaces as ErrPostNotFound.
func (s *PostService) Update(ctx context.Context, postID, userID int64, req *model.UpdatePostRequest) (*model.Post, error) {
	return s.postRepo.Update(ctx, postID, userID, req.Content)
}

// Delete removes a post. With permissive deletes enabled the ownership check
// is skipped and any authenticated caller may delete any post by id.
func (s *PostService) Delete(ctx context.Context, postID, userID int64) (*model.Post, error) {
	var post *model.Post
	var err error
	if s.permissiveDeletes {
		post, err = s.postRepo.DeleteAny(ctx, postID)
	} else {
		post, err = s.postRepo.Delete(ctx, postID, userID)
	}
	if err != nil {
		return nil, err
	}

	log.WithFields(log.Fields{"post_id": postID, "user_id": userID}).Info("Post deleted")
	return post, nil
}

// Search performs a case-insensitive substring search over post content.
func (s *PostService) Search(ctx context.Context, content string) ([]model.Post, error) {
	return s.postRepo.Search(ctx, content)
}
