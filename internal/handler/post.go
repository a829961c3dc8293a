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

type PostHandler struct {
	postService *service.PostService
}

func NewPostHandler(postService *service.PostService) *PostHandler {
	return &PostHandler{
		postService: postService,
	}
}

// Create handles POST /api/posts
func (h *PostHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		httputil.WriteUnauthorized(w, "Authentication required")
		return
	}

	var req model.CreatePostRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.WriteBadRequest(w, "Invalid request body")
		return
	}

	if err := validate.Struct(&req); err != nil {
		httputil.WriteBadRequest(w, err.Error())
		return
	}

	post, err := h.postService.Create(r.Context(), userID, &req)
	if err != nil {
		log.WithError(err).Error("Create post handler failed")
		httputil.WriteInternalError(w, "Failed to create post")
		return
	}

	httputil.WriteJSON(w, http.StatusCreated, map[string]interface{}{
		"message": "Post created successfully",
		"post":    post,
	})
}

// GetByID handles GET /api/posts/post/{post_id}
func (h *PostHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	postID, err := strconv.ParseInt(chi.URLParam(r, "post_id"), 10, 64)
	if err != nil {
		httputil.WriteBadRequest(w, "Invalid post ID")
		return
	}

	post, err := h.postService.GetByID(r.Context(), postID)
	if err != nil {
		if errors.Is(err, model.ErrPostNotFound) {
			httputil.WriteNotFound(w, "Post not found")
			return
		}
		log.WithError(err).Error("GetByID post handler failed")
		httputil.WriteInternalError(w, "Failed to get post")
		return
	}

	httputil.WriteJSON(w, http.StatusOK, map[string]interface{}{"post": post})
}

// GetUserPosts handles GET /api/posts/user/{user_id}
func (h *PostHandler) GetUserPosts(w http.ResponseWriter, r *http.Request) {
	userID, err := strconv.ParseInt(chi.URLParam(r, "user_id"), 10, 64)
	if err != nil {
		httputil.WriteBadRequest(w, "Invalid user ID")
		return
	}

	h.writePosts(w, r, userID)
}

// GetMyPosts handles GET /api/posts/my
func (h *PostHandler) GetMyPosts(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		httputil.WriteUnauthorized(w, "Authentication required")
		return
	}

	h.writePosts(w, r, userID)
}

func (h *PostHandler) writePosts(w http.ResponseWriter, r *http.Request, userID int64) {
	posts, err := h.postService.GetUserPosts(r.Context(), userID)
	if err != nil {
		log.WithError(err).Error("GetUserPosts handler failed")
		httputil.WriteInternalError(w, "Failed to get posts")
		return
	}
	if posts == nil {
		posts = []model.Post{}
	}

	httputil.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"posts": posts,
		"count": len(posts),
	})
}

// Update handles PUT /api/posts/{post_id}. Only the owner's posts match; a
// post owned by someone else reads as not found.
func (h *PostHandler) Update(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		httputil.WriteUnauthorized(w, "Authentication required")
		return
	}

	postID, err := strconv.ParseInt(chi.URLParam(r, "post_id"), 10, 64)
	if err != nil {
		httputil.WriteBadRequest(w, "Invalid post ID")
		return
	}

	var req model.UpdatePostRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.WriteBadRequest(w, "Invalid request body")
		return
	}

	if err := validate.Struct(&req); err != nil {
		httputil.WriteBadRequest(w, err.Error())
		return
	}

	post, err := h.postService.Update(r.Context(), postID, userID, &req)
	if err != nil {
		if errors.Is(err, model.ErrPostNotFound) {
			httputil.WriteNotFound(w, "Post not found")
			return
		}
		log.WithError(err).Error("Update post handler failed")
		httputil.WriteInternalError(w, "Failed to update post")
		return
	}

	httputil.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"message": "Post updated successfully",
		"post":    post,
	})
}

// Delete handles DELETE /api/posts/{post_id}
func (h *PostHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		httputil.WriteUnauthorized(w, "Authentication required")
		return
	}

	postID, err := strconv.ParseInt(chi.URLParam(r, "post_id"), 10, 64)
	if err != nil {
		httputil.WriteBadRequest(w, "Invalid post ID")
		return
	}

	post, err := h.postService.Delete(r.Context(), postID, userID)
	if err != nil {
		if errors.Is(err, model.ErrPostNotFound) {
			httputil.WriteNotFound(w, "Post not found")
			return
		}
		log.WithError(err).Error("Delete post handler failed")
		httputil.WriteInternalError(w, "Failed to delete post")
		return
	}

	httputil.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"message": "Post deleted successfully",
		"post":    post,
	})
}

// Search handles GET /api/posts/search/{search}
func (h *PostHandler) Search(w http.ResponseWriter, r *http.Request) {
	search := chi.URLParam(r, "search")
	if search == "" {
		httputil.WriteBadRequest(w, "Search term is required")
		return
	}

	posts, err := h.postService.Search(r.Context(), search)
	if err != nil {
		log.WithError(err).Error("Search posts handler failed")
		httputil.WriteInternalError(w, "Failed to search posts")
		return
	}
	if posts == nil {
		posts = []model.Post{}
	}

	httputil.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"posts": posts,
		"count": len(posts),
	})
}
