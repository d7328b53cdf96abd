package queries_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrescamacho/spacetraders-go/internal/application/homeworlds/queries"
	"github.com/andrescamacho/spacetraders-go/internal/domain/homeworlds"
)

func TestGetStateHandler_RendersWireForm(t *testing.T) {
	// Arrange
	h := queries.NewGetStateHandler()
	q := &queries.GetStateQuery{State: homeworlds.Initial()}

	// Act
	resp, err := h.Handle(context.Background(), q)

	// Assert
	require.NoError(t, err)
	getResp, ok := resp.(*queries.GetStateResponse)
	require.True(t, ok)
	assert.Equal(t, string(homeworlds.PhaseSetup), getResp.State.Phase)
	assert.Len(t, getResp.State.Bank, 36)
}

func TestGetStateHandler_RejectsWrongRequestType(t *testing.T) {
	// Arrange
	h := queries.NewGetStateHandler()

	// Act
	_, err := h.Handle(context.Background(), 42)

	// Assert
	require.Error(t, err)
}
