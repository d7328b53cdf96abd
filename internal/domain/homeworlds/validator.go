package homeworlds

// ValidateAction runs the gate rules common to every action (spec.md §4.5)
// plus the kind-specific checks, against a read-only GameState. It never
// mutates state and is safe to call speculatively (e.g. by a host UI
// deciding whether to enable an affordance) without committing anything.
func ValidateAction(s GameState, a Action) error {
	if s.phase == PhaseEnded {
		return NewGameEndedError()
	}

	if a.Kind() != KindOverpopulation && a.Actor() != s.active {
		return NewNotYourTurnError()
	}

	if err := checkPhaseMatchesKind(s.phase, a.Kind()); err != nil {
		return err
	}

	switch act := a.(type) {
	case SetupAction:
		return validateSetup(s, act)
	case MoveAction:
		return validateMove(s, act, "")
	case CaptureAction:
		return validateCapture(s, act, "")
	case GrowAction:
		return validateGrow(s, act, "")
	case TradeAction:
		return validateTrade(s, act, "")
	case SacrificeAction:
		return validateSacrificeShape(s, act)
	case OverpopulationAction:
		return validateOverpopulation(s, act)
	default:
		return NewValidationError("action", "unrecognized action kind")
	}
}

func checkPhaseMatchesKind(phase Phase, k ActionKind) error {
	switch k {
	case KindSetup:
		if phase != PhaseSetup {
			return NewWrongPhaseError(PhaseSetup, phase)
		}
	case KindMove, KindCapture, KindGrow, KindTrade, KindSacrifice, KindOverpopulation:
		if phase != PhaseNormal {
			return NewWrongPhaseError(PhaseNormal, phase)
		}
	default:
		return NewValidationError("kind", "unrecognized action kind")
	}
	return nil
}

func validateSetup(s GameState, a SetupAction) error {
	if !s.bank.Has(a.PieceID) {
		return NewPieceNotInBankError(a.PieceID)
	}
	if s.setupIndex >= len(setupSchedule) {
		return NewWrongPhaseError(PhaseSetup, s.phase)
	}
	expected := setupSchedule[s.setupIndex]
	if a.Player != expected.Player {
		return NewNotYourTurnError()
	}
	if a.Role != expected.Role {
		return NewValidationError("role", "setup actions must proceed star1, star2, ship, alternating players")
	}
	return nil
}

// validateMove validates a Move action. skipColor, when equal to Yellow, is
// the Sacrifice relaxation: the local color-availability check is bypassed
// because the sacrifice itself grants the ability.
func validateMove(s GameState, a MoveAction, skipColor Color) error {
	from, ok := s.SystemByID(a.From)
	if !ok {
		return NewSystemNotFoundError(a.From)
	}
	ship, ok := from.FindShip(a.ShipID)
	if !ok {
		return NewShipNotFoundError(a.ShipID)
	}
	if ship.Owner != a.Player {
		return NewWrongOwnerError(a.ShipID)
	}
	if skipColor != Yellow && !from.ColorAvailable(Yellow, a.Player) {
		return NewColorUnavailableError(Yellow)
	}

	hasTo := a.To != nil
	hasNew := a.NewStarPieceID != nil
	if hasTo == hasNew {
		return NewMoveDestinationAmbiguousError()
	}

	var destSizes map[Size]bool
	if hasTo {
		to, ok := s.SystemByID(*a.To)
		if !ok {
			return NewSystemNotFoundError(*a.To)
		}
		destSizes = to.StarSizes()
	} else {
		if !s.bank.Has(*a.NewStarPieceID) {
			return NewPieceNotInBankError(*a.NewStarPieceID)
		}
		destSizes = map[Size]bool{a.NewStarPieceID.Size: true}
	}

	for size := range from.StarSizes() {
		if destSizes[size] {
			return NewMoveSizeConflictError()
		}
	}
	return nil
}

func validateCapture(s GameState, a CaptureAction, skipColor Color) error {
	sys, ok := s.SystemByID(a.System)
	if !ok {
		return NewSystemNotFoundError(a.System)
	}
	attacker, ok := sys.FindShip(a.AttackerID)
	if !ok {
		return NewShipNotFoundError(a.AttackerID)
	}
	target, ok := sys.FindShip(a.TargetID)
	if !ok {
		return NewShipNotFoundError(a.TargetID)
	}
	if attacker.Owner != a.Player {
		return NewWrongOwnerError(a.AttackerID)
	}
	if target.Owner == a.Player {
		return NewCaptureOwnShipError()
	}
	if attacker.Size() < target.Size() {
		return NewCaptureSizeTooSmallError()
	}
	if skipColor != Red && !sys.ColorAvailable(Red, a.Player) {
		return NewColorUnavailableError(Red)
	}
	return nil
}

func validateGrow(s GameState, a GrowAction, skipColor Color) error {
	sys, ok := s.SystemByID(a.System)
	if !ok {
		return NewSystemNotFoundError(a.System)
	}
	acting, ok := sys.FindShip(a.ActingShipID)
	if !ok {
		return NewShipNotFoundError(a.ActingShipID)
	}
	if acting.Owner != a.Player {
		return NewWrongOwnerError(a.ActingShipID)
	}
	if skipColor != Green && !sys.ColorAvailable(Green, a.Player) {
		return NewColorUnavailableError(Green)
	}
	if !s.bank.Has(a.NewShipPieceID) {
		return NewPieceNotInBankError(a.NewShipPieceID)
	}
	if a.NewShipPieceID.Color != acting.Color() {
		return NewGrowWrongColorError()
	}
	smallest, err := smallestAvailableSize(s.bank, acting.Color())
	if err != nil || a.NewShipPieceID.Size != smallest {
		return NewGrowNotSmallestError()
	}
	return nil
}

// smallestAvailableSize returns the smallest size of color c currently in
// the bank, without consuming anything. Only the size is checked: any copy
// (ordinal) of that size is accepted by validateGrow.
func smallestAvailableSize(b Bank, c Color) (Size, error) {
	for _, sz := range Sizes {
		if b.Inventory(c, sz) > 0 {
			return sz, nil
		}
	}
	return 0, errBankExhausted
}

var errBankExhausted = NewValidationError("bank", "no pieces of that color remain in the bank")

func validateTrade(s GameState, a TradeAction, skipColor Color) error {
	sys, ok := s.SystemByID(a.System)
	if !ok {
		return NewSystemNotFoundError(a.System)
	}
	ship, ok := sys.FindShip(a.ShipID)
	if !ok {
		return NewShipNotFoundError(a.ShipID)
	}
	if ship.Owner != a.Player {
		return NewWrongOwnerError(a.ShipID)
	}
	if skipColor != Blue && !sys.ColorAvailable(Blue, a.Player) {
		return NewColorUnavailableError(Blue)
	}
	if !s.bank.Has(a.NewPieceID) {
		return NewPieceNotInBankError(a.NewPieceID)
	}
	if a.NewPieceID.Color == ship.Color() {
		return NewTradeSameColorError()
	}
	if a.NewPieceID.Size != ship.Size() {
		return NewTradeSizeMismatchError()
	}
	return nil
}

// validateSacrificeShape performs the submission-time checks for a Sacrifice
// that don't depend on intermediate state: that the sacrificed ship exists
// and is owned by the player, and that every followup is the action kind
// keyed to the sacrificed color. The per-followup legality (evaluated
// against the state as it exists when each followup actually runs) and the
// followup-count-vs-terminal check are the kernel's job (spec.md §4.6),
// since they depend on state this function doesn't have.
func validateSacrificeShape(s GameState, a SacrificeAction) error {
	sys, ok := s.SystemByID(a.System)
	if !ok {
		return NewSystemNotFoundError(a.System)
	}
	ship, ok := sys.FindShip(a.ShipID)
	if !ok {
		return NewShipNotFoundError(a.ShipID)
	}
	if ship.Owner != a.Player {
		return NewWrongOwnerError(a.ShipID)
	}

	color := ship.Color()
	ability := color.Ability()
	for _, f := range a.Followups {
		if !followupAllowed(f.Kind()) {
			return NewSacrificeFollowupColorMismatchError(color)
		}
		if followupAbility(f) != ability {
			return NewSacrificeFollowupColorMismatchError(color)
		}
		if f.Actor() != a.Player {
			return NewWrongOwnerError(a.ShipID)
		}
	}
	return nil
}

func validateOverpopulation(s GameState, a OverpopulationAction) error {
	if !a.Player.Valid() {
		return NewValidationError("player", "unknown player")
	}
	sys, ok := s.SystemByID(a.System)
	if !ok {
		return NewSystemNotFoundError(a.System)
	}
	if !sys.Overpopulated(a.Color) {
		return NewOverpopulationNotPresentError(a.Color)
	}
	return nil
}

// validateFollowup validates one Sacrifice followup against the
// intermediate state at the moment it runs, skipping the color-availability
// check for the sacrificed color only.
func validateFollowup(s GameState, a Action, skipColor Color) error {
	switch act := a.(type) {
	case MoveAction:
		return validateMove(s, act, skipColor)
	case CaptureAction:
		return validateCapture(s, act, skipColor)
	case GrowAction:
		return validateGrow(s, act, skipColor)
	case TradeAction:
		return validateTrade(s, act, skipColor)
	default:
		return NewSacrificeFollowupColorMismatchError(skipColor)
	}
}
