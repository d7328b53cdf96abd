package queries

import (
	"context"
	"fmt"

	"github.com/andrescamacho/spacetraders-go/internal/application/common"
	"github.com/andrescamacho/spacetraders-go/internal/application/homeworlds/wire"
	"github.com/andrescamacho/spacetraders-go/internal/domain/homeworlds"
)

// ReplayQuery asks for the state reached by applying Actions, in order, to
// Initial(), stopping at the first rejection.
type ReplayQuery struct {
	Actions []wire.ActionDTO
}

// ReplayResponse carries the final reachable state. If Err is set, State is
// the state as of just before the rejected action, and FailedIndex names its
// position in Actions.
type ReplayResponse struct {
	State       wire.StateDTO
	FailedIndex int
	Err         error
}

// ReplayHandler replays a wire-form action log from scratch.
type ReplayHandler struct{}

// NewReplayHandler creates a new ReplayHandler.
func NewReplayHandler() *ReplayHandler {
	return &ReplayHandler{}
}

// Handle executes the Replay query.
func (h *ReplayHandler) Handle(ctx context.Context, request common.Request) (common.Response, error) {
	query, ok := request.(*ReplayQuery)
	if !ok {
		return nil, fmt.Errorf("invalid request type: expected *ReplayQuery")
	}

	actions := make([]homeworlds.Action, 0, len(query.Actions))
	for i, dto := range query.Actions {
		a, err := wire.DecodeAction(dto)
		if err != nil {
			return nil, fmt.Errorf("action %d: %w", i, err)
		}
		actions = append(actions, a)
	}

	final, err := homeworlds.Replay(actions)
	resp := &ReplayResponse{State: wire.StateToDTO(final)}
	if err != nil {
		var replayErr *homeworlds.ReplayError
		if asReplayError(err, &replayErr) {
			resp.FailedIndex = replayErr.Index
		}
		resp.Err = err
	}
	return resp, nil
}

func asReplayError(err error, target **homeworlds.ReplayError) bool {
	re, ok := err.(*homeworlds.ReplayError)
	if !ok {
		return false
	}
	*target = re
	return true
}
