package wire_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrescamacho/spacetraders-go/internal/application/homeworlds/wire"
	"github.com/andrescamacho/spacetraders-go/internal/domain/homeworlds"
)

func playSixSetupActions(t *testing.T) homeworlds.GameState {
	t.Helper()
	s := homeworlds.Initial()
	steps := []homeworlds.SetupAction{
		{Player: homeworlds.Player1, PieceID: homeworlds.PieceID{Color: homeworlds.Yellow, Size: homeworlds.Large, Ordinal: 0}, Role: homeworlds.RoleStar1},
		{Player: homeworlds.Player2, PieceID: homeworlds.PieceID{Color: homeworlds.Blue, Size: homeworlds.Large, Ordinal: 0}, Role: homeworlds.RoleStar1},
		{Player: homeworlds.Player1, PieceID: homeworlds.PieceID{Color: homeworlds.Green, Size: homeworlds.Medium, Ordinal: 0}, Role: homeworlds.RoleStar2},
		{Player: homeworlds.Player2, PieceID: homeworlds.PieceID{Color: homeworlds.Green, Size: homeworlds.Medium, Ordinal: 1}, Role: homeworlds.RoleStar2},
		{Player: homeworlds.Player1, PieceID: homeworlds.PieceID{Color: homeworlds.Yellow, Size: homeworlds.Small, Ordinal: 0}, Role: homeworlds.RoleShip},
		{Player: homeworlds.Player2, PieceID: homeworlds.PieceID{Color: homeworlds.Red, Size: homeworlds.Small, Ordinal: 1}, Role: homeworlds.RoleShip},
	}
	for _, step := range steps {
		ns, err := homeworlds.ApplyAction(s, step)
		require.NoError(t, err)
		s = ns
	}
	return s
}

func TestMarshalUnmarshalState_RoundTripsViaReplay(t *testing.T) {
	// Arrange
	s := playSixSetupActions(t)

	// Act
	data, err := wire.MarshalState(s)
	require.NoError(t, err)
	rebuilt, err := wire.UnmarshalState(data)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, s.Phase(), rebuilt.Phase())
	assert.Equal(t, s.CurrentPlayer(), rebuilt.CurrentPlayer())
	assert.Equal(t, s.BankPieces(), rebuilt.BankPieces())
}

func TestStateToDTO_OmitsActivePlayerWhenGameEnded(t *testing.T) {
	// Arrange
	s := playSixSetupActions(t)
	home1ID, _ := s.HomeSystemID(homeworlds.Player1)
	home1, _ := s.HomeSystem(homeworlds.Player1)
	ship1 := home1.Ships[0].ID
	ended, err := homeworlds.ApplyAction(s, homeworlds.SacrificeAction{
		Player: homeworlds.Player1, ShipID: ship1, System: home1ID,
	})
	require.NoError(t, err)
	require.Equal(t, homeworlds.PhaseEnded, ended.Phase())

	// Act
	dto := wire.StateToDTO(ended)

	// Assert
	assert.Empty(t, dto.ActivePlayer)
	assert.Equal(t, "player2", dto.Winner)
}

func TestUnmarshalState_RejectsInvalidJSON(t *testing.T) {
	// Act
	_, err := wire.UnmarshalState([]byte("not json"))

	// Assert
	require.Error(t, err)
}
