package usecase

import (
	"context"
	"testing"

	"cinelog/internal/dto/request"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// Voting twice leaves one row holding the last polarity.
func TestVoteOnCommentReplacesPolarity(t *testing.T) {
	votes := newFakeVoteRepo()
	service := NewVoteService(votes, zap.NewNop())

	commentID := uuid.New().String()
	userID := uuid.New().String()

	first, err := service.VoteOnComment(context.Background(), commentID, userID, &request.VoteRequest{VoteType: 1})
	require.NoError(t, err)
	assert.Equal(t, 1, first.VoteType)

	second, err := service.VoteOnComment(context.Background(), commentID, userID, &request.VoteRequest{VoteType: -1})
	require.NoError(t, err)
	assert.Equal(t, -1, second.VoteType)
	assert.Equal(t, first.ID, second.ID)

	require.Len(t, votes.votes, 1)

	counts, err := service.GetCommentVotes(context.Background(), commentID)
	require.NoError(t, err)
	assert.Equal(t, int64(0), counts.Upvotes)
	assert.Equal(t, int64(1), counts.Downvotes)
}

func TestVoteOnCommentRejectsZero(t *testing.T) {
	service := NewVoteService(newFakeVoteRepo(), zap.NewNop())

	_, err := service.VoteOnComment(context.Background(), uuid.New().String(), uuid.New().String(),
		&request.VoteRequest{VoteType: 0})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "validation failed")
}

func TestGetCommentVotesAggregates(t *testing.T) {
	votes := newFakeVoteRepo()
	service := NewVoteService(votes, zap.NewNop())
	commentID := uuid.New().String()

	for i := 0; i < 3; i++ {
		_, err := service.VoteOnComment(context.Background(), commentID, uuid.New().String(),
			&request.VoteRequest{VoteType: 1})
		require.NoError(t, err)
	}
	_, err := service.VoteOnComment(context.Background(), commentID, uuid.New().String(),
		&request.VoteRequest{VoteType: -1})
	require.NoError(t, err)

	counts, err := service.GetCommentVotes(context.Background(), commentID)
	require.NoError(t, err)
	assert.Equal(t, int64(3), counts.Upvotes)
	assert.Equal(t, int64(1), counts.Downvotes)
}

func TestRemoveVote(t *testing.T) {
	votes := newFakeVoteRepo()
	service := NewVoteService(votes, zap.NewNop())

	commentID := uuid.New().String()
	userID := uuid.New().String()

	_, err := service.VoteOnComment(context.Background(), commentID, userID, &request.VoteRequest{VoteType: 1})
	require.NoError(t, err)

	require.NoError(t, service.RemoveVote(context.Background(), commentID, userID))
	assert.Empty(t, votes.votes)

	err = service.RemoveVote(context.Background(), commentID, userID)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "vote not found")
}
