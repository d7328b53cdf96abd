// Package queries holds the mediator-dispatched read side of the
// homeworlds application layer: rendering a GameState to its wire form, and
// replaying a full action log, without ever mutating engine state.
package queries

import (
	"context"
	"fmt"

	"github.com/andrescamacho/spacetraders-go/internal/application/common"
	"github.com/andrescamacho/spacetraders-go/internal/application/homeworlds/wire"
	"github.com/andrescamacho/spacetraders-go/internal/domain/homeworlds"
)

// GetStateQuery asks for the wire form of a GameState the caller already
// holds (e.g. the result of a prior ApplyAction).
type GetStateQuery struct {
	State homeworlds.GameState
}

// GetStateResponse carries the rendered state DTO.
type GetStateResponse struct {
	State wire.StateDTO
}

// GetStateHandler renders a GameState to its wire form.
type GetStateHandler struct{}

// NewGetStateHandler creates a new GetStateHandler.
func NewGetStateHandler() *GetStateHandler {
	return &GetStateHandler{}
}

// Handle executes the GetState query.
func (h *GetStateHandler) Handle(ctx context.Context, request common.Request) (common.Response, error) {
	query, ok := request.(*GetStateQuery)
	if !ok {
		return nil, fmt.Errorf("invalid request type: expected *GetStateQuery")
	}
	return &GetStateResponse{State: wire.StateToDTO(query.State)}, nil
}
