package realtime

import (
	"encoding/json"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func commentPayload(t *testing.T, reviewID uuid.UUID, text string) []byte {
	t.Helper()

	payload, err := json.Marshal(map[string]any{
		"table": "comments",
		"op":    "INSERT",
		"row": map[string]any{
			"id":           uuid.New(),
			"review_id":    reviewID,
			"user_id":      uuid.New(),
			"comment_text": text,
		},
	})
	require.NoError(t, err)
	return payload
}

func votePayload(t *testing.T, op Operation, commentID uuid.UUID, voteType int) []byte {
	t.Helper()

	row := map[string]any{
		"id":         uuid.New(),
		"comment_id": commentID,
		"user_id":    uuid.New(),
		"vote_type":  voteType,
	}

	body := map[string]any{"table": "comment_votes", "op": op}
	switch op {
	case OpInsert:
		body["row"] = row
	case OpDelete:
		body["old"] = row
	default:
		body["row"] = row
		body["old"] = row
	}

	payload, err := json.Marshal(body)
	require.NoError(t, err)
	return payload
}

func TestSubscribeReviewComments(t *testing.T) {
	hub := NewHub(zap.NewNop())
	reviewID := uuid.New()

	var got []CommentRow
	sub := hub.SubscribeReviewComments(reviewID, func(row CommentRow) {
		got = append(got, row)
	})
	defer sub.Unsubscribe()

	hub.Dispatch(commentPayload(t, reviewID, "first"))
	hub.Dispatch(commentPayload(t, reviewID, "second"))

	require.Len(t, got, 2)
	assert.Equal(t, "first", got[0].CommentText)
	assert.Equal(t, "second", got[1].CommentText)
	assert.Equal(t, reviewID, got[0].ReviewID)
}

// Events for another review must not reach the subscription.
func TestCommentDispatchFiltersByReview(t *testing.T) {
	hub := NewHub(zap.NewNop())
	reviewID := uuid.New()

	var got []CommentRow
	sub := hub.SubscribeReviewComments(reviewID, func(row CommentRow) {
		got = append(got, row)
	})
	defer sub.Unsubscribe()

	hub.Dispatch(commentPayload(t, uuid.New(), "elsewhere"))

	assert.Empty(t, got)
}

func TestUnsubscribeStopsDelivery(t *testing.T) {
	hub := NewHub(zap.NewNop())
	reviewID := uuid.New()

	var got []CommentRow
	sub := hub.SubscribeReviewComments(reviewID, func(row CommentRow) {
		got = append(got, row)
	})

	hub.Dispatch(commentPayload(t, reviewID, "before"))
	sub.Unsubscribe()
	sub.Unsubscribe() // safe to call twice
	hub.Dispatch(commentPayload(t, reviewID, "after"))

	require.Len(t, got, 1)
	assert.Equal(t, "before", got[0].CommentText)
}

func TestFanOutToMultipleSubscribers(t *testing.T) {
	hub := NewHub(zap.NewNop())
	reviewID := uuid.New()

	counts := make([]int, 3)
	for i := range counts {
		i := i
		sub := hub.SubscribeReviewComments(reviewID, func(CommentRow) {
			counts[i]++
		})
		defer sub.Unsubscribe()
	}

	hub.Dispatch(commentPayload(t, reviewID, "hello"))

	for i, count := range counts {
		assert.Equal(t, 1, count, fmt.Sprintf("subscriber %d", i))
	}
}

func TestSubscribeCommentVotes(t *testing.T) {
	hub := NewHub(zap.NewNop())
	commentID := uuid.New()

	var got []VoteEvent
	sub := hub.SubscribeCommentVotes(commentID, func(event VoteEvent) {
		got = append(got, event)
	})
	defer sub.Unsubscribe()

	hub.Dispatch(votePayload(t, OpInsert, commentID, 1))
	hub.Dispatch(votePayload(t, OpUpdate, commentID, -1))
	hub.Dispatch(votePayload(t, OpDelete, commentID, -1))

	require.Len(t, got, 3)

	assert.Equal(t, OpInsert, got[0].Op)
	require.NotNil(t, got[0].New)
	assert.Equal(t, 1, got[0].New.VoteType)
	assert.Nil(t, got[0].Old)

	assert.Equal(t, OpUpdate, got[1].Op)
	require.NotNil(t, got[1].New)
	require.NotNil(t, got[1].Old)

	assert.Equal(t, OpDelete, got[2].Op)
	assert.Nil(t, got[2].New)
	require.NotNil(t, got[2].Old)
	assert.Equal(t, commentID, got[2].Old.CommentID)
}

func TestVoteDispatchFiltersByComment(t *testing.T) {
	hub := NewHub(zap.NewNop())
	commentID := uuid.New()

	var got []VoteEvent
	sub := hub.SubscribeCommentVotes(commentID, func(event VoteEvent) {
		got = append(got, event)
	})
	defer sub.Unsubscribe()

	hub.Dispatch(votePayload(t, OpInsert, uuid.New(), 1))

	assert.Empty(t, got)
}

// Updates on comments are not part of the feed contract, only inserts.
func TestCommentDispatchIgnoresUpdates(t *testing.T) {
	hub := NewHub(zap.NewNop())
	reviewID := uuid.New()

	var got []CommentRow
	sub := hub.SubscribeReviewComments(reviewID, func(row CommentRow) {
		got = append(got, row)
	})
	defer sub.Unsubscribe()

	payload, err := json.Marshal(map[string]any{
		"table": "comments",
		"op":    "UPDATE",
		"row": map[string]any{
			"id":        uuid.New(),
			"review_id": reviewID,
		},
	})
	require.NoError(t, err)

	hub.Dispatch(payload)

	assert.Empty(t, got)
}

func TestDispatchMalformedPayload(t *testing.T) {
	hub := NewHub(zap.NewNop())

	sub := hub.SubscribeReviewComments(uuid.New(), func(CommentRow) {
		t.Fatal("handler must not fire")
	})
	defer sub.Unsubscribe()

	hub.Dispatch([]byte("not json"))
	hub.Dispatch([]byte(`{"table": "unknown_table", "op": "INSERT"}`))
}
