package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	log "github.com/sirupsen/logrus"

	"socialnet/internal/httputil"
	"socialnet/internal/model"
	"socialnet/internal/service"
	"socialnet/internal/transport/http/middleware"
	"socialnet/internal/validate"
)

type CommentHandler struct {
	commentService *service.CommentService
}

func NewCommentHandler(commentService *service.CommentService) *CommentHandler {
	return &CommentHandler{
		commentService: commentService,
	}
}

// Create handles POST /api/comments
func (h *CommentHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		httputil.WriteUnauthorized(w, "Authentication required")
		return
	}

	var req model.CreateCommentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.WriteBadRequest(w, "Invalid request body")
		return
	}

	if err := validate.Struct(&req); err != nil {
		httputil.WriteBadRequest(w, err.Error())
		return
	}

	comment, err := h.commentService.Create(r.Context(), userID, &req)
	if err != nil {
		if errors.Is(err, model.ErrPostNotFound) {
			httputil.WriteNotFound(w, "Post not found")
			return
		}
		log.WithError(err).Error("Create comment handler failed")
		httputil.WriteInternalError(w, "Failed to create comment")
		return
	}

	httputil.WriteJSON(w, http.StatusCreated, map[string]interface{}{"comment": comment})
}

// Update handles PUT /api/comments/{comment_id}. Only the author's comments
// match; a comment authored by someone else reads as not found and storage is
// unchanged.
func (h *CommentHandler) Update(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		httputil.WriteUnauthorized(w, "Authentication required")
		return
	}

	commentID, err := strconv.ParseInt(chi.URLParam(r, "comment_id"), 10, 64)
	if err != nil {
		httputil.WriteBadRequest(w, "Invalid comment ID")
		return
	}

	var req model.UpdateCommentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.WriteBadRequest(w, "Invalid request body")
		return
	}

	if err := validate.Struct(&req); err != nil {
		httputil.WriteBadRequest(w, err.Error())
		return
	}

	comment, err := h.commentService.Update(r.Context(), commentID, userID, &req)
	if err != nil {
		if errors.Is(err, model.ErrCommentNotFound) {
			httputil.WriteNotFound(w, "Comment not found")
			return
		}
		log.WithError(err).Error("Update comment handler failed")
		httputil.WriteInternalError(w, "Failed to update comment")
		return
	}

	httputil.WriteJSON(w, http.StatusOK, map[string]interface{}{"comment": comment})
}

// Delete handles DELETE /api/comments/{comment_id}
func (h *CommentHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		httputil.WriteUnauthorized(w, "Authentication required")
		return
	}

	commentID, err := strconv.ParseInt(chi.URLParam(r, "comment_id"), 10, 64)
	if err != nil {
		httputil.WriteBadRequest(w, "Invalid comment ID")
		return
	}

	comment, err := h.commentService.Delete(r.Context(), commentID, userID)
	if err != nil {
		if errors.Is(err, model.ErrCommentNotFound) {
			httputil.WriteNotFound(w, "Comment not found")
			return
		}
		log.WithError(err).Error("Delete comment handler failed")
		httputil.WriteInternalError(w, "Failed to delete comment")
		return
	}

	httputil.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"message": "Comment deleted successfully",
		"comment": comment,
	})
}

// GetPostComments handles GET /api/comments/post/{post_id}
func (h *CommentHandler) GetPostComments(w http.ResponseWriter, r *http.Request) {
	postID, err := strconv.ParseInt(chi.URLParam(r, "post_id"), 10, 64)
	if err != nil {
		httputil.WriteBadRequest(w, "Invalid post ID")
		return
	}

	comments, err := h.commentService.GetPostComments(r.Context(), postID)
	if err != nil {
		log.WithError(err).Error("GetPostComments handler failed")
		httputil.WriteInternalError(w, "Failed to get comments")
		return
	}
	if comments == nil {
		comments = []model.Comment{}
	}

	httputil.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"comments": comments,
		"count":    len(comments),
	})
}

// GetByID handles GET /api/comments/{comment_id}
func (h *CommentHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	commentID, err := strconv.ParseInt(chi.URLParam(r, "comment_id"), 10, 64)
	if err != nil {
		httputil.WriteBadRequest(w, "Invalid comment ID")
		return
	}

	comment, err := h.commentService.GetByID(r.Context(), commentID)
	if err != nil {
		if errors.Is(err, model.ErrCommentNotFound) {
			httputil.WriteNotFound(w, "Comment not found")
			return
		}
		log.WithError(err).Error("GetByID comment handler failed")
		httputil.WriteInternalError(w, "Failed to get comment")
		return
	}

	httputil.WriteJSON(w, http.StatusOK, map[string]interface{}{"comment": comment})
}
