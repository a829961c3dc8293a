package handler

import (
	"net/http"

	log "github.com/sirupsen/logrus"

	"socialnet/internal/httputil"
	"socialnet/internal/model"
	"socialnet/internal/service"
	"socialnet/internal/transport/http/middleware"
)

type FeedHandler struct {
	feedService *service.FeedService
}

func NewFeedHandler(feedService *service.FeedService) *FeedHandler {
	return &FeedHandler{
		feedService: feedService,
	}
}

// GetFeed handles GET /api/posts/feed — posts authored by the caller's direct
// followees, recomputed per request.
func (h *FeedHandler) GetFeed(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		httputil.WriteUnauthorized(w, "Authentication required")
		return
	}

	posts, err := h.feedService.GetFeed(r.Context(), userID)
	if err != nil {
		log.WithField("user_id", userID).WithError(err).Error("GetFeed handler failed")
		httputil.WriteInternalError(w, "Failed to get feed")
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
