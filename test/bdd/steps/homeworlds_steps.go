// Package steps holds godog step definitions for the seed scenarios in
// spec.md §8. Each scenario supplies a literal action log (the wire form the
// `homeworlds replay` command also consumes) and asserts on the resulting
// state or the rejection it produces.
package steps

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"

	"github.com/cucumber/godog"
	"github.com/stretchr/testify/require"

	"github.com/andrescamacho/spacetraders-go/internal/application/homeworlds/wire"
	"github.com/andrescamacho/spacetraders-go/internal/domain/homeworlds"
)

type gameContext struct {
	t         *testing.T
	actionLog []wire.ActionDTO
	state     homeworlds.GameState
	replayErr error
}

func (gc *gameContext) reset() {
	gc.t = &testing.T{}
	gc.actionLog = nil
	gc.state = homeworlds.GameState{}
	gc.replayErr = nil
}

func (gc *gameContext) theFollowingActionLog(doc *godog.DocString) error {
	var dtos []wire.ActionDTO
	if err := json.Unmarshal([]byte(doc.Content), &dtos); err != nil {
		return fmt.Errorf("parse action log: %w", err)
	}
	gc.actionLog = dtos
	return nil
}

func (gc *gameContext) iReplayTheActionLog() error {
	gc.state, gc.replayErr = wire.ReplayDTO(gc.actionLog)
	return nil
}

func (gc *gameContext) replayShouldSucceed() error {
	require.NoError(gc.t, gc.replayErr)
	return nil
}

func (gc *gameContext) replayShouldFailAtActionWithErrorContaining(index int, substr string) error {
	require.Error(gc.t, gc.replayErr)
	var replayErr *homeworlds.ReplayError
	require.ErrorAs(gc.t, gc.replayErr, &replayErr)
	require.Equal(gc.t, index, replayErr.Index)
	require.Contains(gc.t, replayErr.Error(), substr)
	return nil
}

func (gc *gameContext) thePhaseShouldBe(phase string) error {
	require.Equal(gc.t, homeworlds.Phase(phase), gc.state.Phase())
	return nil
}

func (gc *gameContext) theActivePlayerShouldBe(player string) error {
	require.Equal(gc.t, homeworlds.Player(player), gc.state.CurrentPlayer())
	return nil
}

func (gc *gameContext) theWinnerShouldBe(player string) error {
	winner, ok := gc.state.Winner()
	require.True(gc.t, ok, "expected a winner")
	require.Equal(gc.t, homeworlds.Player(player), winner)
	return nil
}

func (gc *gameContext) theBankShouldContainPieces(expected int) error {
	require.Len(gc.t, gc.state.BankPieces(), expected)
	return nil
}

func (gc *gameContext) everyHomeworldShouldHaveStarsAndOneShipOwnedByItsPlayer() error {
	found := 0
	for _, sys := range gc.state.AllSystems() {
		if !sys.Homeworld {
			continue
		}
		found++
		require.Len(gc.t, sys.Stars, 2, "homeworld %s should have 2 stars", sys.ID)
		ownShips := 0
		for _, sh := range sys.Ships {
			if sh.Owner == sys.Owner {
				ownShips++
			}
		}
		require.Equal(gc.t, 1, ownShips, "homeworld %s should have exactly 1 ship owned by its player", sys.ID)
	}
	require.Equal(gc.t, 2, found, "expected exactly two homeworlds")
	return nil
}

// InitializeGameScenario registers the step definitions above.
func InitializeGameScenario(sc *godog.ScenarioContext) {
	gc := &gameContext{}

	sc.Before(func(ctx context.Context, s *godog.Scenario) (context.Context, error) {
		gc.reset()
		return ctx, nil
	})

	sc.Step(`^the following action log:$`, gc.theFollowingActionLog)
	sc.Step(`^I replay the action log$`, gc.iReplayTheActionLog)
	sc.Step(`^replay should succeed$`, gc.replayShouldSucceed)
	sc.Step(`^replay should fail at action (\d+) with an error containing "([^"]*)"$`, gc.replayShouldFailAtActionWithErrorContaining)
	sc.Step(`^the phase should be "([^"]*)"$`, gc.thePhaseShouldBe)
	sc.Step(`^the active player should be "([^"]*)"$`, gc.theActivePlayerShouldBe)
	sc.Step(`^the winner should be "([^"]*)"$`, gc.theWinnerShouldBe)
	sc.Step(`^the bank should contain (\d+) pieces$`, gc.theBankShouldContainPieces)
	sc.Step(`^every homeworld should have two stars and one ship owned by its player$`, gc.everyHomeworldShouldHaveStarsAndOneShipOwnedByItsPlayer)
}
