package homeworlds_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrescamacho/spacetraders-go/internal/domain/homeworlds"
)

func TestNewFullBank_HasThirtySixPieces(t *testing.T) {
	// Arrange / Act
	b := homeworlds.NewFullBank()

	// Assert
	assert.Equal(t, 36, b.Total())
	for _, c := range homeworlds.Colors {
		for _, s := range homeworlds.Sizes {
			assert.Equal(t, 3, b.Inventory(c, s))
		}
	}
}

func TestBank_Take_RemovesExactPiece(t *testing.T) {
	// Arrange
	b := homeworlds.NewFullBank()
	id := homeworlds.PieceID{Color: homeworlds.Red, Size: homeworlds.Small, Ordinal: 0}

	// Act
	b2, piece, err := b.Take(id)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, id, piece.ID)
	assert.False(t, b2.Has(id))
	assert.True(t, b.Has(id), "Take must not mutate the receiver")
	assert.Equal(t, 35, b2.Total())
}

func TestBank_Take_UnknownPiece(t *testing.T) {
	// Arrange
	b := homeworlds.NewEmptyBank()
	id := homeworlds.PieceID{Color: homeworlds.Blue, Size: homeworlds.Large, Ordinal: 2}

	// Act
	_, _, err := b.Take(id)

	// Assert
	require.Error(t, err)
	var notInBank *homeworlds.PieceNotInBankError
	assert.ErrorAs(t, err, &notInBank)
}

func TestBank_TakeSmallest_TiesResolveByFirstOrdinal(t *testing.T) {
	// Arrange
	b := homeworlds.NewFullBank()

	// Act
	b2, piece, err := b.TakeSmallest(homeworlds.Green)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, homeworlds.Small, piece.Size())
	assert.Equal(t, 0, piece.ID.Ordinal)
	assert.Equal(t, 2, b2.Inventory(homeworlds.Green, homeworlds.Small))
}

func TestBank_Return_RoundTripsIdentity(t *testing.T) {
	// Arrange
	b := homeworlds.NewFullBank()
	id := homeworlds.PieceID{Color: homeworlds.Yellow, Size: homeworlds.Medium, Ordinal: 1}
	b2, piece, err := b.Take(id)
	require.NoError(t, err)

	// Act
	b3 := b2.Return(piece)

	// Assert
	assert.True(t, b3.Has(id))
	assert.Equal(t, 36, b3.Total())
}

func TestBank_Return_PanicsOnCapViolation(t *testing.T) {
	// Arrange: a full bucket already holds all 3 copies.
	b := homeworlds.NewFullBank()
	extra := homeworlds.Piece{ID: homeworlds.PieceID{Color: homeworlds.Red, Size: homeworlds.Small, Ordinal: 2}}

	// Act / Assert
	assert.Panics(t, func() { b.Return(extra) })
}
