package homeworlds

// ActionKind discriminates the seven action shapes the wire form defines in
// spec.md §6.
type ActionKind string

const (
	KindSetup         ActionKind = "setup"
	KindMove          ActionKind = "move"
	KindCapture       ActionKind = "capture"
	KindGrow          ActionKind = "grow"
	KindTrade         ActionKind = "trade"
	KindSacrifice     ActionKind = "sacrifice"
	KindOverpopulation ActionKind = "overpopulation"
)

// Action is the discriminated sum type of everything a player (or, for
// Overpopulation, either player) can submit to apply(). Concrete action
// structs implement it; ActionValidator and TransitionKernel both type-switch
// over the concrete structs rather than relying on interface polymorphism, so
// each field stays concretely typed end to end (spec.md §9).
type Action interface {
	Kind() ActionKind
	Actor() Player
}

// SetupAction places one home star or starting ship during Setup.
type SetupAction struct {
	Player  Player
	PieceID PieceID
	Role    SetupRole
}

func (a SetupAction) Kind() ActionKind { return KindSetup }
func (a SetupAction) Actor() Player    { return a.Player }

// MoveAction exercises yellow: relocate a ship to an existing system or to a
// brand-new one seeded by a bank piece. Exactly one of To/NewStarPieceID is
// set.
type MoveAction struct {
	Player         Player
	ShipID         PieceID
	From           SystemID
	To             *SystemID
	NewStarPieceID *PieceID
}

func (a MoveAction) Kind() ActionKind { return KindMove }
func (a MoveAction) Actor() Player    { return a.Player }

// CaptureAction exercises red: reassign a smaller-or-equal enemy ship to the
// acting player.
type CaptureAction struct {
	Player     Player
	AttackerID PieceID
	TargetID   PieceID
	System     SystemID
}

func (a CaptureAction) Kind() ActionKind { return KindCapture }
func (a CaptureAction) Actor() Player    { return a.Player }

// GrowAction exercises green: add a new ship of the acting ship's color, at
// the smallest size currently available in the bank for that color.
type GrowAction struct {
	Player         Player
	ActingShipID   PieceID
	System         SystemID
	NewShipPieceID PieceID
}

func (a GrowAction) Kind() ActionKind { return KindGrow }
func (a GrowAction) Actor() Player    { return a.Player }

// TradeAction exercises blue: swap a ship's identity for a bank piece of a
// different color and the same size.
type TradeAction struct {
	Player     Player
	ShipID     PieceID
	System     SystemID
	NewPieceID PieceID
}

func (a TradeAction) Kind() ActionKind { return KindTrade }
func (a TradeAction) Actor() Player    { return a.Player }

// SacrificeAction spends a ship to perform N (its size) followup actions of
// the ability keyed to its color, bypassing the local color-availability
// check for those followups. Followups must themselves be Move, Capture,
// Grow, or Trade — never Setup, Overpopulation, or a nested Sacrifice.
type SacrificeAction struct {
	Player    Player
	ShipID    PieceID
	System    SystemID
	Followups []Action
}

func (a SacrificeAction) Kind() ActionKind { return KindSacrifice }
func (a SacrificeAction) Actor() Player    { return a.Player }

// OverpopulationAction declares a catastrophe: every piece of Color at
// System returns to the bank. Either player may declare one.
type OverpopulationAction struct {
	Player Player
	System SystemID
	Color  Color
}

func (a OverpopulationAction) Kind() ActionKind { return KindOverpopulation }
func (a OverpopulationAction) Actor() Player    { return a.Player }

// advancesTurn reports whether a successfully applied action of this kind
// toggles the active player (every kind except Overpopulation does).
func advancesTurn(k ActionKind) bool {
	return k != KindOverpopulation
}

// followupAllowed reports whether a given action kind may appear as a
// Sacrifice followup at all (the color-match itself is checked separately).
func followupAllowed(k ActionKind) bool {
	switch k {
	case KindMove, KindCapture, KindGrow, KindTrade:
		return true
	default:
		return false
	}
}

// followupAbility returns the ability a followup action of this kind
// exercises, used to check it against the sacrificed ship's color.
func followupAbility(a Action) Ability {
	switch a.Kind() {
	case KindMove:
		return AbilityMove
	case KindCapture:
		return AbilityCapture
	case KindGrow:
		return AbilityGrow
	case KindTrade:
		return AbilityTrade
	default:
		return ""
	}
}
