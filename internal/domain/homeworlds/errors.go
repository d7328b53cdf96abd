package homeworlds

import "fmt"

// DomainError is the base error type for every rule violation the engine can
// report. Concrete kinds embed it so callers can errors.As to a specific
// kind while still getting a stable, host-displayable message.
type DomainError struct {
	Kind    string
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

func newDomainError(kind, message string) *DomainError {
	return &DomainError{Kind: kind, Message: message}
}

// GameEndedError — any action submitted after winner is set.
type GameEndedError struct{ *DomainError }

func NewGameEndedError() *GameEndedError {
	return &GameEndedError{newDomainError("GameEnded", "game has already ended")}
}

// WrongPhaseError — setup-in-normal or vice versa.
type WrongPhaseError struct{ *DomainError }

func NewWrongPhaseError(want, got Phase) *WrongPhaseError {
	return &WrongPhaseError{newDomainError("WrongPhase",
		fmt.Sprintf("action requires phase %s, game is in phase %s", want, got))}
}

// NotYourTurnError — action.player != active_player.
type NotYourTurnError struct{ *DomainError }

func NewNotYourTurnError() *NotYourTurnError {
	return &NotYourTurnError{newDomainError("NotYourTurn", "not your turn")}
}

// PieceNotInBankError — piece identity not present in the bank.
type PieceNotInBankError struct{ *DomainError }

func NewPieceNotInBankError(id PieceID) *PieceNotInBankError {
	return &PieceNotInBankError{newDomainError("PieceNotInBank",
		fmt.Sprintf("piece %s not found in bank", id))}
}

// ShipNotFoundError — referenced ship id missing.
type ShipNotFoundError struct{ *DomainError }

func NewShipNotFoundError(id PieceID) *ShipNotFoundError {
	return &ShipNotFoundError{newDomainError("ShipNotFound",
		fmt.Sprintf("ship %s not found", id))}
}

// SystemNotFoundError — referenced system id missing.
type SystemNotFoundError struct{ *DomainError }

func NewSystemNotFoundError(id SystemID) *SystemNotFoundError {
	return &SystemNotFoundError{newDomainError("SystemNotFound",
		fmt.Sprintf("system %s not found", id))}
}

// WrongOwnerError — acting on a ship not owned by the acting player.
type WrongOwnerError struct{ *DomainError }

func NewWrongOwnerError(id PieceID) *WrongOwnerError {
	return &WrongOwnerError{newDomainError("WrongOwner",
		fmt.Sprintf("ship %s is not owned by the acting player", id))}
}

// ColorUnavailableError — required ability's color not accessible at the system.
type ColorUnavailableError struct {
	*DomainError
	Color Color
}

func NewColorUnavailableError(c Color) *ColorUnavailableError {
	names := map[Color]string{Yellow: "Yellow (move)", Green: "Green (grow)", Blue: "Blue (trade)", Red: "Red (capture)"}
	return &ColorUnavailableError{
		DomainError: newDomainError("ColorUnavailable", fmt.Sprintf("%s action not available", names[c])),
		Color:       c,
	}
}

// MoveSizeConflictError — origin and destination star-size sets intersect.
type MoveSizeConflictError struct{ *DomainError }

func NewMoveSizeConflictError() *MoveSizeConflictError {
	return &MoveSizeConflictError{newDomainError("MoveSizeConflict",
		"origin and destination systems must have different sizes")}
}

// MoveDestinationAmbiguousError — both or neither destination forms supplied.
type MoveDestinationAmbiguousError struct{ *DomainError }

func NewMoveDestinationAmbiguousError() *MoveDestinationAmbiguousError {
	return &MoveDestinationAmbiguousError{newDomainError("MoveDestinationAmbiguous",
		"move must specify exactly one of to_system or new_star_piece_id")}
}

// CaptureOwnShipError — attacker tried to capture their own ship.
type CaptureOwnShipError struct{ *DomainError }

func NewCaptureOwnShipError() *CaptureOwnShipError {
	return &CaptureOwnShipError{newDomainError("CaptureOwnShip", "Cannot capture your own ship")}
}

// CaptureSizeTooSmallError — attacker smaller than target.
type CaptureSizeTooSmallError struct{ *DomainError }

func NewCaptureSizeTooSmallError() *CaptureSizeTooSmallError {
	return &CaptureSizeTooSmallError{newDomainError("CaptureSizeTooSmall",
		"attacking ship must be at least as large as the target")}
}

// GrowWrongColorError — grown piece's color doesn't match the acting ship's color.
type GrowWrongColorError struct{ *DomainError }

func NewGrowWrongColorError() *GrowWrongColorError {
	return &GrowWrongColorError{newDomainError("GrowWrongColor", "same color as acting ship required")}
}

// GrowNotSmallestError — grown piece isn't the smallest available of its color.
type GrowNotSmallestError struct{ *DomainError }

func NewGrowNotSmallestError() *GrowNotSmallestError {
	return &GrowNotSmallestError{newDomainError("GrowNotSmallest",
		"must grow the smallest available size of that color")}
}

// TradeSameColorError — new piece's color equals the old ship's color.
type TradeSameColorError struct{ *DomainError }

func NewTradeSameColorError() *TradeSameColorError {
	return &TradeSameColorError{newDomainError("TradeSameColor", "different color required")}
}

// TradeSizeMismatchError — new piece's size differs from the old ship's size.
type TradeSizeMismatchError struct{ *DomainError }

func NewTradeSizeMismatchError() *TradeSizeMismatchError {
	return &TradeSizeMismatchError{newDomainError("TradeSizeMismatch", "same size required")}
}

// SacrificeFollowupColorMismatchError — a followup's ability doesn't match the
// sacrificed color.
type SacrificeFollowupColorMismatchError struct{ *DomainError }

func NewSacrificeFollowupColorMismatchError(c Color) *SacrificeFollowupColorMismatchError {
	return &SacrificeFollowupColorMismatchError{newDomainError("SacrificeFollowupColorMismatch",
		fmt.Sprintf("followup must be a %s action", c.Ability()))}
}

// SacrificeFollowupCountMismatchError — len(followups) != sacrificed ship's size.
type SacrificeFollowupCountMismatchError struct{ *DomainError }

func NewSacrificeFollowupCountMismatchError(want, got int) *SacrificeFollowupCountMismatchError {
	return &SacrificeFollowupCountMismatchError{newDomainError("SacrificeFollowupCountMismatch",
		fmt.Sprintf("expected %d followup actions, got %d", want, got))}
}

// SacrificeTerminalFollowupsPresentError — followups present on a terminal sacrifice.
type SacrificeTerminalFollowupsPresentError struct{ *DomainError }

func NewSacrificeTerminalFollowupsPresentError() *SacrificeTerminalFollowupsPresentError {
	return &SacrificeTerminalFollowupsPresentError{newDomainError("SacrificeTerminalFollowupsPresent",
		"sacrifice that ends the game must have zero followup actions")}
}

// OverpopulationNotPresentError — declared color isn't overpopulated there.
type OverpopulationNotPresentError struct {
	*DomainError
	Color Color
}

func NewOverpopulationNotPresentError(c Color) *OverpopulationNotPresentError {
	return &OverpopulationNotPresentError{
		DomainError: newDomainError("OverpopulationNotPresent",
			fmt.Sprintf("%s is not overpopulated in that system", c)),
		Color: c,
	}
}

// ValidationError reports malformed action data unrelated to game rules
// (e.g. a gate check on an action's own shape before rules are consulted).
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}
