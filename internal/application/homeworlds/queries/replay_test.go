package queries_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrescamacho/spacetraders-go/internal/application/homeworlds/queries"
	"github.com/andrescamacho/spacetraders-go/internal/application/homeworlds/wire"
	"github.com/andrescamacho/spacetraders-go/internal/domain/homeworlds"
)

func TestReplayHandler_StopsAtFirstRejectedAction(t *testing.T) {
	// Arrange
	h := queries.NewReplayHandler()
	q := &queries.ReplayQuery{
		Actions: []wire.ActionDTO{
			{Kind: "setup", Player: "player2", PieceID: "red-1-0", Role: "star1"},
		},
	}

	// Act
	resp, err := h.Handle(context.Background(), q)

	// Assert
	require.NoError(t, err)
	replayResp, ok := resp.(*queries.ReplayResponse)
	require.True(t, ok)
	require.Error(t, replayResp.Err)
	assert.Equal(t, 0, replayResp.FailedIndex)
}

func TestReplayHandler_AppliesLegalSequence(t *testing.T) {
	// Arrange
	h := queries.NewReplayHandler()
	q := &queries.ReplayQuery{
		Actions: []wire.ActionDTO{
			{Kind: "setup", Player: "player1", PieceID: "yellow-3-0", Role: "star1"},
		},
	}

	// Act
	resp, err := h.Handle(context.Background(), q)

	// Assert
	require.NoError(t, err)
	replayResp, ok := resp.(*queries.ReplayResponse)
	require.True(t, ok)
	require.NoError(t, replayResp.Err)
	assert.Equal(t, string(homeworlds.PhaseSetup), replayResp.State.Phase)
}
