package adaptor

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"cinelog/internal/realtime"
	"cinelog/internal/usecase"
	"cinelog/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// RealtimeHandler exposes the change feed over SSE. One event stream per
// review's comments, one per comment's votes. Streams only open for content
// that is publicly visible at subscribe time.
type RealtimeHandler struct {
	hub      *realtime.Hub
	reviews  usecase.ReviewService
	comments usecase.CommentService
	log      *zap.Logger
}

func NewRealtimeHandler(hub *realtime.Hub, reviews usecase.ReviewService, comments usecase.CommentService, log *zap.Logger) *RealtimeHandler {
	return &RealtimeHandler{
		hub:      hub,
		reviews:  reviews,
		comments: comments,
		log:      log.With(zap.String("handler", "realtime")),
	}
}

// StreamReviewComments handles GET /api/reviews/{id}/comments/stream (public).
// Emits one SSE "comment" event per comment inserted on the review.
func (h *RealtimeHandler) StreamReviewComments(w http.ResponseWriter, r *http.Request) {
	reviewID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid review ID", nil)
		return
	}

	// Hidden reviews don't stream, matching the detail endpoint.
	if _, err := h.reviews.GetReviewByID(r.Context(), reviewID.String()); err != nil {
		if strings.Contains(err.Error(), "not found") {
			utils.ResponseNotFound(w, "Review not found")
		} else {
			h.log.Error("Failed to resolve review for stream", zap.Error(err))
			utils.ResponseInternalError(w, "Failed to open stream")
		}
		return
	}

	flusher, ok := w.(http.Flusher)
	if !ok {
		utils.ResponseInternalError(w, "Streaming unsupported")
		return
	}

	// Hub handlers must not block, so events go through a buffered channel.
	// A client too slow to drain it loses events, not the connection.
	events := make(chan realtime.CommentRow, 16)
	sub := h.hub.SubscribeReviewComments(reviewID, func(row realtime.CommentRow) {
		select {
		case events <- row:
		default:
			h.log.Warn("Dropping comment event, slow SSE client",
				zap.String("review_id", reviewID.String()))
		}
	})
	defer sub.Unsubscribe()

	h.writeSSEHeaders(w)
	flusher.Flush()

	h.log.Info("Comment stream opened", zap.String("review_id", reviewID.String()))

	for {
		select {
		case <-r.Context().Done():
			h.log.Info("Comment stream closed", zap.String("review_id", reviewID.String()))
			return
		case row := <-events:
			if err := writeSSEEvent(w, "comment", row); err != nil {
				h.log.Warn("Failed to write comment event", zap.Error(err))
				return
			}
			flusher.Flush()
		}
	}
}

// StreamCommentVotes handles GET /api/comments/{id}/votes/stream (public).
// Emits one SSE "vote" event per insert/update/delete on the comment's votes.
func (h *RealtimeHandler) StreamCommentVotes(w http.ResponseWriter, r *http.Request) {
	commentID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid comment ID", nil)
		return
	}

	visible, err := h.comments.CommentVisible(r.Context(), commentID.String())
	if err != nil {
		h.log.Error("Failed to resolve comment for stream", zap.Error(err))
		utils.ResponseInternalError(w, "Failed to open stream")
		return
	}
	if !visible {
		utils.ResponseNotFound(w, "Comment not found")
		return
	}

	flusher, ok := w.(http.Flusher)
	if !ok {
		utils.ResponseInternalError(w, "Streaming unsupported")
		return
	}

	events := make(chan realtime.VoteEvent, 16)
	sub := h.hub.SubscribeCommentVotes(commentID, func(event realtime.VoteEvent) {
		select {
		case events <- event:
		default:
			h.log.Warn("Dropping vote event, slow SSE client",
				zap.String("comment_id", commentID.String()))
		}
	})
	defer sub.Unsubscribe()

	h.writeSSEHeaders(w)
	flusher.Flush()

	h.log.Info("Vote stream opened", zap.String("comment_id", commentID.String()))

	for {
		select {
		case <-r.Context().Done():
			h.log.Info("Vote stream closed", zap.String("comment_id", commentID.String()))
			return
		case event := <-events:
			if err := writeSSEEvent(w, "vote", event); err != nil {
				h.log.Warn("Failed to write vote event", zap.Error(err))
				return
			}
			flusher.Flush()
		}
	}
}

func (h *RealtimeHandler) writeSSEHeaders(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)
}

func writeSSEEvent(w http.ResponseWriter, event string, data any) error {
	payload, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("marshal SSE payload: %w", err)
	}

	_, err = fmt.Fprintf(w, "event: %s\ndata: %s\n\n", event, payload)
	return err
}
