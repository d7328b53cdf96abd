package wire_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrescamacho/spacetraders-go/internal/application/homeworlds/wire"
	"github.com/andrescamacho/spacetraders-go/internal/domain/homeworlds"
)

func TestDecodeAction_Move_RequiresExactlyOneDestination(t *testing.T) {
	// Arrange
	dto := wire.ActionDTO{
		Kind:   "move",
		Player: "player1",
		ShipID: "yellow-1-0",
		From:   "player1-home",
	}

	// Act
	_, err := wire.DecodeAction(dto)

	// Assert
	require.Error(t, err)
}

func TestDecodeAction_Move_ToExistingSystem(t *testing.T) {
	// Arrange
	dto := wire.ActionDTO{
		Kind:   "move",
		Player: "player1",
		ShipID: "yellow-1-0",
		From:   "player1-home",
		To:     "player2-home",
	}

	// Act
	action, err := wire.DecodeAction(dto)

	// Assert
	require.NoError(t, err)
	move, ok := action.(homeworlds.MoveAction)
	require.True(t, ok)
	assert.Equal(t, homeworlds.SystemID("player2-home"), *move.To)
	assert.Nil(t, move.NewStarPieceID)
}

func TestDecodeAction_RejectsMalformedPieceID(t *testing.T) {
	// Arrange
	dto := wire.ActionDTO{
		Kind:    "setup",
		Player:  "player1",
		PieceID: "not-a-piece",
		Role:    "star1",
	}

	// Act
	_, err := wire.DecodeAction(dto)

	// Assert
	require.Error(t, err)
}

func TestDecodeAction_RejectsUnknownKind(t *testing.T) {
	// Arrange
	dto := wire.ActionDTO{Kind: "teleport", Player: "player1"}

	// Act
	_, err := wire.DecodeAction(dto)

	// Assert
	require.Error(t, err)
}

func TestEncodeDecodeAction_SacrificeRoundTrips(t *testing.T) {
	// Arrange
	newStar := homeworlds.PieceID{Color: homeworlds.Blue, Size: homeworlds.Small, Ordinal: 1}
	original := homeworlds.SacrificeAction{
		Player: homeworlds.Player1,
		ShipID: homeworlds.PieceID{Color: homeworlds.Yellow, Size: homeworlds.Small, Ordinal: 0},
		System: homeworlds.SystemID("player1-home"),
		Followups: []homeworlds.Action{
			homeworlds.MoveAction{
				Player:         homeworlds.Player1,
				ShipID:         homeworlds.PieceID{Color: homeworlds.Yellow, Size: homeworlds.Small, Ordinal: 1},
				From:           homeworlds.SystemID("player1-home"),
				NewStarPieceID: &newStar,
			},
		},
	}

	// Act
	dto := wire.EncodeAction(original)
	decoded, err := wire.DecodeAction(dto)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, original, decoded)
}

func TestDecodeAction_RejectsMismatchedPlayerValue(t *testing.T) {
	// Arrange
	dto := wire.ActionDTO{Kind: "overpopulation", Player: "player3", System: "player1-home", Color: "yellow"}

	// Act
	_, err := wire.DecodeAction(dto)

	// Assert
	require.Error(t, err)
}
