package service

import (
	"context"

	log "github.com/sirupsen/logrus"

	"socialnet/internal/model"
	"socialnet/internal/repository"
)

// CommentService handles business logic for comment operations.
type CommentService struct {
	commentRepo       repository.CommentRepository
	postRepo          repository.PostRepository
	permissiveDeletes bool
}

func NewCommentService(commentRepo repository.CommentRepository, postRepo repository.PostRepository, permissiveDeletes bool) *CommentService {
	return &CommentService{
		commentRepo:       commentRepo,
		postRepo:          postRepo,
		permissiveDeletes: permissiveDeletes,
	}
}

// Create adds a comment to an existing post.
func (s *CommentService) Create(ctx context.Context, userID int64, req *model.CreateCommentRequest) (*model.Comment, error) {
	exists, err := s.postRepo.Exists(ctx, req.PostID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, model.ErrPostNotFound
	}

	comment, err := s.commentRepo.Create(ctx, req.PostID, userID, req.Content)
	if err != nil {
		return nil, err
	}

	log.WithFields(log.Fields{"user_id": userID, "post_id": req.PostID, "comment_id": comment.ID}).Info("Comment created")
	return comment, nil
}

func (s *CommentService) GetByID(ctx context.Context, commentID int64) (*model.Comment, error) {
	return s.commentRepo.GetByID(ctx, commentID)
}

func (s *CommentService) GetPostComments(ctx context.Context, postID int64) ([]model.Comment, error) {
	return s.commentRepo.GetByPostID(ctx, postID)
}

// Update changes a comment's content. Only the author's rows match; a comment
// authored by someone else surfaces as ErrCommentNotFound and storage is left
// unchanged.
func (s *CommentService) Update(ctx context.Context, commentID, userID int64, req *model.UpdateCommentRequest) (*model.Comment, error) {
	return s.commentRepo.Update(ctx, commentID, userID, req.Content)
}

// Delete removes a comment. With permissive deletes enabled the ownership
// check is skipped and any authenticated caller may delete any comment by id.
func (s *CommentService) Delete(ctx context.Context, commentID, userID int64) (*model.Comment, error) {
	var comment *model.Comment
	var err error
	if s.permissiveDeletes {
		comment, err = s.commentRepo.DeleteAny(ctx, commentID)
	} else {
		comment, err = s.commentRepo.Delete(ctx, commentID, userID)
	}
	if err != nil {
		return nil, err
	}

	log.WithFields(log.Fields{"comment_id": commentID, "user_id": userID}).Info("Comment deleted")
	return comment, nil
}
