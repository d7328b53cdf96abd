package homeworlds

// Apply validates action a against state s and, if legal, returns the
// deterministic successor state. On any validation failure it returns s
// unchanged alongside the error (spec.md §4.6 atomicity: a single top-level
// apply either fully succeeds or leaves the prior state untouched).
//
// Apply does not append to history — the replay façade owns that, so that
// history records exactly the top-level actions submitted, Sacrifice
// followups included as a single entry.
func Apply(s GameState, a Action) (GameState, error) {
	if err := ValidateAction(s, a); err != nil {
		return s, err
	}

	switch act := a.(type) {
	case SetupAction:
		return executeSetup(s, act)
	case SacrificeAction:
		return executeSacrifice(s, act)
	case OverpopulationAction:
		ns, err := executeOverpopulation(s, act)
		return finishNonSetup(s, act, ns, err)
	case MoveAction:
		ns, err := executeMove(s, act)
		return finishNonSetup(s, act, ns, err)
	case CaptureAction:
		ns, err := executeCapture(s, act)
		return finishNonSetup(s, act, ns, err)
	case GrowAction:
		ns, err := executeGrow(s, act)
		return finishNonSetup(s, act, ns, err)
	case TradeAction:
		ns, err := executeTrade(s, act)
		return finishNonSetup(s, act, ns, err)
	default:
		return s, NewValidationError("action", "unrecognized action kind")
	}
}

// finishNonSetup applies the shared post-effect bookkeeping for every
// top-level action except Setup and Sacrifice (which manage their own turn
// advancement and end-of-game timing): turn toggling, then a single
// end-of-game check.
func finishNonSetup(orig GameState, a Action, ns GameState, err error) (GameState, error) {
	if err != nil {
		return orig, err
	}
	if advancesTurn(a.Kind()) {
		ns.active = ns.active.Opponent()
	}
	return runEndOfGameDetection(ns, a.Actor()), nil
}

func executeSetup(s GameState, a SetupAction) (GameState, error) {
	bank2, piece, err := s.bank.Take(a.PieceID)
	if err != nil {
		return s, err
	}
	ns := s
	ns.bank = bank2

	switch a.Role {
	case RoleStar1:
		sys := newSystem(HomeID(a.Player))
		sys.Homeworld = true
		sys.Owner = a.Player
		sys = sys.AddStar(piece)
		ns = ns.setSystem(sys)
		ns.homeworlds[a.Player] = sys.ID
	case RoleStar2:
		homeID := ns.homeworlds[a.Player]
		sys, ok := ns.SystemByID(homeID)
		if !ok {
			return s, NewSystemNotFoundError(homeID)
		}
		ns = ns.setSystem(sys.AddStar(piece))
	case RoleShip:
		homeID := ns.homeworlds[a.Player]
		sys, ok := ns.SystemByID(homeID)
		if !ok {
			return s, NewSystemNotFoundError(homeID)
		}
		ns = ns.setSystem(sys.AddShip(Ship{ID: piece.ID, Owner: a.Player}))
	}

	ns.setupIndex++
	if ns.setupIndex >= len(setupSchedule) {
		ns.phase = PhaseNormal
		ns.active = Player1
	} else {
		ns.active = setupSchedule[ns.setupIndex].Player
	}
	return ns, nil
}

func executeMove(s GameState, a MoveAction) (GameState, error) {
	from, _ := s.SystemByID(a.From)
	from2, sh, _ := from.RemoveShip(a.ShipID)
	ns := s.setSystem(from2)

	if a.To != nil {
		to, ok := ns.SystemByID(*a.To)
		if !ok {
			return s, NewSystemNotFoundError(*a.To)
		}
		ns = ns.setSystem(to.AddShip(Ship{ID: sh.ID, Owner: a.Player}))
	} else {
		bank2, piece, err := ns.bank.Take(*a.NewStarPieceID)
		if err != nil {
			return s, err
		}
		ns.bank = bank2
		newSys := newSystem(ns.nextFreeSystemID())
		newSys = newSys.AddStar(piece)
		newSys = newSys.AddShip(Ship{ID: sh.ID, Owner: a.Player})
		ns = ns.setSystem(newSys)
	}

	ns = cleanupSystem(ns, a.From)
	return ns, nil
}

func executeCapture(s GameState, a CaptureAction) (GameState, error) {
	sys, _ := s.SystemByID(a.System)
	sys2, ok := sys.ChangeOwner(a.TargetID, a.Player)
	if !ok {
		return s, NewShipNotFoundError(a.TargetID)
	}
	return s.setSystem(sys2), nil
}

func executeGrow(s GameState, a GrowAction) (GameState, error) {
	sys, _ := s.SystemByID(a.System)
	bank2, piece, err := s.bank.Take(a.NewShipPieceID)
	if err != nil {
		return s, err
	}
	ns := s
	ns.bank = bank2
	ns = ns.setSystem(sys.AddShip(Ship{ID: piece.ID, Owner: a.Player}))
	return ns, nil
}

func executeTrade(s GameState, a TradeAction) (GameState, error) {
	sys, _ := s.SystemByID(a.System)
	ship, ok := sys.FindShip(a.ShipID)
	if !ok {
		return s, NewShipNotFoundError(a.ShipID)
	}
	bank2, piece, err := s.bank.Take(a.NewPieceID)
	if err != nil {
		return s, err
	}
	bank3 := bank2.Return(Piece{ID: ship.ID})
	sys2, ok := sys.ReplaceShipIdentity(a.ShipID, piece.ID)
	if !ok {
		return s, NewShipNotFoundError(a.ShipID)
	}
	ns := s
	ns.bank = bank3
	ns = ns.setSystem(sys2)
	return ns, nil
}

func executeOverpopulation(s GameState, a OverpopulationAction) (GameState, error) {
	sys, _ := s.SystemByID(a.System)
	sys2, removed := sys.RemoveAllOfColor(a.Color)
	ns := s
	for _, p := range removed {
		ns.bank = ns.bank.Return(p)
	}
	ns = ns.setSystem(sys2)
	ns = cleanupSystem(ns, a.System)
	return ns, nil
}

// executeSacrifice implements the Sacrifice expansion algorithm of
// spec.md §4.6: remove and bank the sacrificed ship, clean up its system,
// check for an immediate terminal loss, and otherwise run each followup
// against the intermediate state before running end-of-game detection once.
func executeSacrifice(s GameState, a SacrificeAction) (GameState, error) {
	sys, ok := s.SystemByID(a.System)
	if !ok {
		return s, NewSystemNotFoundError(a.System)
	}
	ship, ok := sys.FindShip(a.ShipID)
	if !ok {
		return s, NewShipNotFoundError(a.ShipID)
	}
	color := ship.Color()
	size := int(ship.Size())

	sys2, _, _ := sys.RemoveShip(a.ShipID)
	ns := s.setSystem(sys2)
	ns.bank = ns.bank.Return(Piece{ID: a.ShipID})
	ns = cleanupSystem(ns, a.System)

	if playerLost(ns, a.Player) {
		if len(a.Followups) != 0 {
			return s, NewSacrificeTerminalFollowupsPresentError()
		}
		ns.active = ns.active.Opponent()
		return runEndOfGameDetection(ns, a.Player), nil
	}

	if len(a.Followups) != size {
		return s, NewSacrificeFollowupCountMismatchError(size, len(a.Followups))
	}

	for _, f := range a.Followups {
		if err := validateFollowup(ns, f, color); err != nil {
			return s, err
		}
		executed, err := executeFollowup(ns, f)
		if err != nil {
			return s, err
		}
		ns = executed
	}

	ns.active = ns.active.Opponent()
	return runEndOfGameDetection(ns, a.Player), nil
}

func executeFollowup(s GameState, f Action) (GameState, error) {
	switch act := f.(type) {
	case MoveAction:
		return executeMove(s, act)
	case CaptureAction:
		return executeCapture(s, act)
	case GrowAction:
		return executeGrow(s, act)
	case TradeAction:
		return executeTrade(s, act)
	default:
		return s, NewValidationError("followup", "unsupported sacrifice followup kind")
	}
}

// cleanupSystem applies spec.md §4.3's cleanup rule after any mutation of
// the named system: destroy it (returning its remaining pieces to the bank)
// if it has no stars; otherwise destroy it if it has no ships, unless it is
// a homeworld (a homeworld with stars but no ships lingers until end-of-game
// resolution, per spec.md §4.3).
func cleanupSystem(s GameState, id SystemID) GameState {
	sys, ok := s.systems[id]
	if !ok {
		return s
	}

	if !sys.HasStars() {
		ns := s
		for _, sh := range sys.Ships {
			ns.bank = ns.bank.Return(Piece{ID: sh.ID})
		}
		return ns.deleteSystem(id)
	}

	if !sys.HasShips() {
		if sys.Homeworld {
			return s
		}
		ns := s
		for _, star := range sys.Stars {
			ns.bank = ns.bank.Return(star)
		}
		return ns.deleteSystem(id)
	}

	return s
}

// playerLost reports whether p currently meets a losing condition: their
// homeworld is gone, has no stars, or has none of their ships.
func playerLost(s GameState, p Player) bool {
	home, ok := s.HomeSystem(p)
	if !ok {
		return true
	}
	if !home.HasStars() {
		return true
	}
	return len(home.ShipsOwnedBy(p)) == 0
}

// runEndOfGameDetection implements spec.md §4.6's end-of-game check. If
// exactly one player has lost, the other wins. If both have lost at once
// (e.g. a mutual Overpopulation), the player who did not just act wins —
// actingPlayer is the Overpopulation declarer or the mover/sacrificer.
func runEndOfGameDetection(s GameState, actingPlayer Player) GameState {
	p1Lost := playerLost(s, Player1)
	p2Lost := playerLost(s, Player2)
	if !p1Lost && !p2Lost {
		return s
	}

	var winner Player
	switch {
	case p1Lost && p2Lost:
		winner = actingPlayer.Opponent()
	case p1Lost:
		winner = Player2
	default:
		winner = Player1
	}

	s.phase = PhaseEnded
	w := winner
	s.winner = &w
	return s
}
