package realtime

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type Operation string

const (
	OpInsert Operation = "INSERT"
	OpUpdate Operation = "UPDATE"
	OpDelete Operation = "DELETE"
)

// notification is the JSON payload emitted by the notify triggers.
type notification struct {
	Table string          `json:"table"`
	Op    Operation       `json:"op"`
	Row   json.RawMessage `json:"row"`
	Old   json.RawMessage `json:"old"`
}

// CommentRow is a freshly inserted comment as carried by the change feed.
type CommentRow struct {
	ID          uuid.UUID `json:"id"`
	ReviewID    uuid.UUID `json:"review_id"`
	UserID      uuid.UUID `json:"user_id"`
	CommentText string    `json:"comment_text"`
	CreatedAt   time.Time `json:"created_at"`
}

// VoteRow is the partial vote state carried by the change feed.
type VoteRow struct {
	ID        uuid.UUID `json:"id"`
	CommentID uuid.UUID `json:"comment_id"`
	UserID    uuid.UUID `json:"user_id"`
	VoteType  int       `json:"vote_type"`
}

// VoteEvent is one change to a comment's votes. Old is nil on insert,
// New is nil on delete.
type VoteEvent struct {
	Op  Operation `json:"op"`
	New *VoteRow  `json:"new,omitempty"`
	Old *VoteRow  `json:"old,omitempty"`
}

type CommentHandler func(CommentRow)
type VoteHandler func(VoteEvent)

// Subscription is a live feed handle. Unsubscribe tears the feed down;
// it is safe to call more than once.
type Subscription struct {
	once   sync.Once
	cancel func()
}

func (s *Subscription) Unsubscribe() {
	s.once.Do(s.cancel)
}

// Hub fans change-feed payloads out to per-entity subscriptions. It carries
// no reconnect logic: whoever feeds Dispatch owns the connection lifecycle.
type Hub struct {
	mu     sync.RWMutex
	nextID uint64

	commentSubs map[uuid.UUID]map[uint64]CommentHandler // keyed by review id
	voteSubs    map[uuid.UUID]map[uint64]VoteHandler    // keyed by comment id

	log *zap.Logger
}

func NewHub(log *zap.Logger) *Hub {
	return &Hub{
		commentSubs: make(map[uuid.UUID]map[uint64]CommentHandler),
		voteSubs:    make(map[uuid.UUID]map[uint64]VoteHandler),
		log:         log.With(zap.String("component", "realtime_hub")),
	}
}

// SubscribeReviewComments delivers every comment inserted on the given
// review, for as long as the subscription stays open.
func (h *Hub) SubscribeReviewComments(reviewID uuid.UUID, handler CommentHandler) *Subscription {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.nextID++
	id := h.nextID

	if h.commentSubs[reviewID] == nil {
		h.commentSubs[reviewID] = make(map[uint64]CommentHandler)
	}
	h.commentSubs[reviewID][id] = handler

	return &Subscription{cancel: func() {
		h.mu.Lock()
		defer h.mu.Unlock()
		delete(h.commentSubs[reviewID], id)
		if len(h.commentSubs[reviewID]) == 0 {
			delete(h.commentSubs, reviewID)
		}
	}}
}

// SubscribeCommentVotes delivers every insert/update/delete on the given
// comment's votes.
func (h *Hub) SubscribeCommentVotes(commentID uuid.UUID, handler VoteHandler) *Subscription {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.nextID++
	id := h.nextID

	if h.voteSubs[commentID] == nil {
		h.voteSubs[commentID] = make(map[uint64]VoteHandler)
	}
	h.voteSubs[commentID][id] = handler

	return &Subscription{cancel: func() {
		h.mu.Lock()
		defer h.mu.Unlock()
		delete(h.voteSubs[commentID], id)
		if len(h.voteSubs[commentID]) == 0 {
			delete(h.voteSubs, commentID)
		}
	}}
}

// Dispatch decodes one notify payload and invokes matching handlers.
// Handlers run on the caller's goroutine, in commit order; they must not block.
func (h *Hub) Dispatch(payload []byte) {
	var n notification
	if err := json.Unmarshal(payload, &n); err != nil {
		h.log.Warn("Failed to decode change-feed payload", zap.Error(err))
		return
	}

	switch n.Table {
	case "comments":
		h.dispatchComment(n)
	case "comment_votes":
		h.dispatchVote(n)
	default:
		h.log.Debug("Ignoring change-feed table", zap.String("table", n.Table))
	}
}

func (h *Hub) dispatchComment(n notification) {
	if n.Op != OpInsert {
		return
	}

	var row CommentRow
	if err := json.Unmarshal(n.Row, &row); err != nil {
		h.log.Warn("Failed to decode comment row", zap.Error(err))
		return
	}

	h.mu.RLock()
	handlers := make([]CommentHandler, 0, len(h.commentSubs[row.ReviewID]))
	for _, handler := range h.commentSubs[row.ReviewID] {
		handlers = append(handlers, handler)
	}
	h.mu.RUnlock()

	for _, handler := range handlers {
		handler(row)
	}
}

func (h *Hub) dispatchVote(n notification) {
	event := VoteEvent{Op: n.Op}

	if len(n.Row) > 0 {
		var row VoteRow
		if err := json.Unmarshal(n.Row, &row); err != nil {
			h.log.Warn("Failed to decode vote row", zap.Error(err))
			return
		}
		event.New = &row
	}
	if len(n.Old) > 0 {
		var old VoteRow
		if err := json.Unmarshal(n.Old, &old); err != nil {
			h.log.Warn("Failed to decode old vote row", zap.Error(err))
			return
		}
		event.Old = &old
	}

	commentID := uuid.Nil
	if event.New != nil {
		commentID = event.New.CommentID
	} else if event.Old != nil {
		commentID = event.Old.CommentID
	}
	if commentID == uuid.Nil {
		return
	}

	h.mu.RLock()
	handlers := make([]VoteHandler, 0, len(h.voteSubs[commentID]))
	for _, handler := range h.voteSubs[commentID] {
		handlers = append(handlers, handler)
	}
	h.mu.RUnlock()

	for _, handler := range handlers {
		handler(event)
	}
}
