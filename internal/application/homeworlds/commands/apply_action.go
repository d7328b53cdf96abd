// Package commands holds the mediator-dispatched write side of the
// homeworlds application layer: one command, ApplyAction, wrapping the
// engine's façade so a host can Send it through internal/application/
// common.Mediator alongside every other command in the module.
package commands

import (
	"context"
	"fmt"

	"github.com/andrescamacho/spacetraders-go/internal/application/common"
	"github.com/andrescamacho/spacetraders-go/internal/application/homeworlds/wire"
	"github.com/andrescamacho/spacetraders-go/internal/domain/homeworlds"
)

// ApplyActionCommand carries one wire-form action plus the state to apply it
// against.
type ApplyActionCommand struct {
	State  homeworlds.GameState
	Action wire.ActionDTO
}

// ApplyActionResponse carries the resulting state. When the action is
// rejected, Handle returns no response, only the error.
type ApplyActionResponse struct {
	State homeworlds.GameState
}

// ApplyActionHandler decodes the wire action and runs it through the pure
// engine façade. It holds no state of its own — the command carries the
// GameState explicitly, consistent with apply() being a pure function
// (spec.md §5: no hidden session state).
type ApplyActionHandler struct{}

// NewApplyActionHandler creates a new ApplyActionHandler.
func NewApplyActionHandler() *ApplyActionHandler {
	return &ApplyActionHandler{}
}

// Handle executes the ApplyAction command.
func (h *ApplyActionHandler) Handle(ctx context.Context, request common.Request) (common.Response, error) {
	cmd, ok := request.(*ApplyActionCommand)
	if !ok {
		return nil, fmt.Errorf("invalid request type: expected *ApplyActionCommand")
	}

	action, err := wire.DecodeAction(cmd.Action)
	if err != nil {
		return nil, err
	}

	next, err := homeworlds.ApplyAction(cmd.State, action)
	if err != nil {
		return nil, err
	}

	return &ApplyActionResponse{State: next}, nil
}
