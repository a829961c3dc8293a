package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	log "github.com/sirupsen/logrus"

	"socialnet/internal/httputil"
	"socialnet/internal/model"
	"socialnet/internal/service"
	"socialnet/internal/transport/http/middleware"
)

type FollowHandler struct {
	followService *service.FollowService
}

func NewFollowHandler(followService *service.FollowService) *FollowHandler {
	return &FollowHandler{
		followService: followService,
	}
}

// Follow handles POST /api/users/follow/{id}
func (h *FollowHandler) Follow(w http.ResponseWriter, r *http.Request) {
	followerID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		httputil.WriteUnauthorized(w, "Authentication required")
		return
	}

	followeeID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		httputil.WriteBadRequest(w, "Invalid user ID")
		return
	}

	follow, err := h.followService.Follow(r.Context(), followerID, followeeID)
	if err != nil {
		switch {
		case errors.Is(err, model.ErrAlreadyFollowing):
			httputil.WriteConflict(w, "Already following this user")
		case errors.Is(err, model.ErrUserNotFound):
			httputil.WriteNotFound(w, "User not found")
		default:
			log.WithError(err).Error("Follow handler failed")
			httputil.WriteInternalError(w, "Failed to follow user")
		}
		return
	}

	httputil.WriteJSON(w, http.StatusCreated, map[string]interface{}{
		"message": "Followed successfully",
		"follow":  follow,
	})
}

// Unfollow handles DELETE /api/users/unfollow/{id}. A missing edge is not an
// error: the response carries a null follow and nothing else changes.
func (h *FollowHandler) Unfollow(w http.ResponseWriter, r *http.Request) {
	followerID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		httputil.WriteUnauthorized(w, "Authentication required")
		return
	}

	followeeID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		httputil.WriteBadRequest(w, "Invalid user ID")
		return
	}

	follow, err := h.followService.Unfollow(r.Context(), followerID, followeeID)
	if err != nil {
		log.WithError(err).Error("Unfollow handler failed")
		httputil.WriteInternalError(w, "Failed to unfollow user")
		return
	}

	message := "Unfollowed successfully"
	if follow == nil {
		message = "Nothing to unfollow"
	}

	httputil.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"message": message,
		"follow":  follow,
	})
}

// GetFollowing handles GET /api/users/following/{id}
func (h *FollowHandler) GetFollowing(w http.ResponseWriter, r *http.Request) {
	userID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		httputil.WriteBadRequest(w, "Invalid user ID")
		return
	}

	follows, err := h.followService.Following(r.Context(), userID)
	if err != nil {
		log.WithError(err).Error("GetFollowing handler failed")
		httputil.WriteInternalError(w, "Failed to get following")
		return
	}
	if follows == nil {
		follows = []model.Follow{}
	}

	httputil.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"message": "success",
		"follow":  follows,
	})
}

// GetFollowers handles GET /api/users/followers/{id}
func (h *FollowHandler) GetFollowers(w http.ResponseWriter, r *http.Request) {
	userID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		httputil.WriteBadRequest(w, "Invalid user ID")
		return
	}

	follows, err := h.followService.Followers(r.Context(), userID)
	if err != nil {
		log.WithError(err).Error("GetFollowers handler failed")
		httputil.WriteInternalError(w, "Failed to get followers")
		return
	}
	if follows == nil {
		follows = []model.Follow{}
	}

	httputil.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"message": "success",
		"follow":  follows,
	})
}

// GetStats handles GET /api/users/stats/{id} — counts derived from the live
// edge sets.
func (h *FollowHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	userID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		httputil.WriteBadRequest(w, "Invalid user ID")
		return
	}

	stats, err := h.followService.Stats(r.Context(), userID)
	if err != nil {
		log.WithError(err).Error("GetStats handler failed")
		httputil.WriteInternalError(w, "Failed to get stats")
		return
	}

	httputil.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"message": "Number of following and followers",
		"stats":   stats,
	})
}
