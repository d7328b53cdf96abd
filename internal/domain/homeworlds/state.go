package homeworlds

import (
	"sort"
	"strconv"
)

// Phase is one of the three phases a game passes through.
type Phase string

const (
	PhaseSetup  Phase = "setup"
	PhaseNormal Phase = "normal"
	PhaseEnded  Phase = "ended"
)

// SetupRole is the role of a Setup action: a player's two home stars, then
// their single starting ship.
type SetupRole string

const (
	RoleStar1 SetupRole = "star1"
	RoleStar2 SetupRole = "star2"
	RoleShip  SetupRole = "ship"
)

type setupStep struct {
	Role   SetupRole
	Player Player
}

// setupSchedule is the fixed alternation spec.md §4.6 requires: both
// players' first stars, then both second stars, then both starting ships.
var setupSchedule = [6]setupStep{
	{RoleStar1, Player1}, {RoleStar1, Player2},
	{RoleStar2, Player1}, {RoleStar2, Player2},
	{RoleShip, Player1}, {RoleShip, Player2},
}

// OverpopulatedEntry names one (system, color) pair currently overpopulated.
type OverpopulatedEntry struct {
	System SystemID
	Color  Color
}

// GameState is the immutable snapshot of the whole game: phase, active
// player, the bank, every system (homeworlds and free), and the action
// history. Every field is read through an accessor; mutation always goes
// through TransitionKernel, which produces a new GameState rather than
// modifying one in place.
type GameState struct {
	phase      Phase
	active     Player
	homeworlds map[Player]SystemID
	freeOrder  []SystemID
	systems    map[SystemID]System
	bank       Bank
	winner     *Player
	history    []Action
	setupIndex int
	nextFreeID int
}

// Initial returns the starting state: Setup phase, Player1 active, no
// homeworlds yet, no free systems, and a full 36-piece bank.
func Initial() GameState {
	return GameState{
		phase:      PhaseSetup,
		active:     Player1,
		homeworlds: make(map[Player]SystemID),
		systems:    make(map[SystemID]System),
		bank:       NewFullBank(),
	}
}

func (s GameState) clone() GameState {
	homeworlds := make(map[Player]SystemID, len(s.homeworlds))
	for k, v := range s.homeworlds {
		homeworlds[k] = v
	}
	systems := make(map[SystemID]System, len(s.systems))
	for k, v := range s.systems {
		systems[k] = v
	}
	freeOrder := make([]SystemID, len(s.freeOrder))
	copy(freeOrder, s.freeOrder)
	history := make([]Action, len(s.history))
	copy(history, s.history)
	var winner *Player
	if s.winner != nil {
		w := *s.winner
		winner = &w
	}
	return GameState{
		phase:      s.phase,
		active:     s.active,
		homeworlds: homeworlds,
		freeOrder:  freeOrder,
		systems:    systems,
		bank:       s.bank,
		winner:     winner,
		history:    history,
		setupIndex: s.setupIndex,
		nextFreeID: s.nextFreeID,
	}
}

// Phase returns the current game phase.
func (s GameState) Phase() Phase { return s.phase }

// CurrentPlayer returns the active player.
func (s GameState) CurrentPlayer() Player { return s.active }

// Winner returns the winning player and true, or the zero Player and false
// if the game has not ended.
func (s GameState) Winner() (Player, bool) {
	if s.winner == nil {
		return "", false
	}
	return *s.winner, true
}

// BankPieces returns every piece identity currently in the bank.
func (s GameState) BankPieces() []PieceID { return s.bank.Pieces() }

// Bank returns the current bank.
func (s GameState) Bank() Bank { return s.bank }

// History returns the ordered sequence of actions applied so far.
func (s GameState) History() []Action {
	out := make([]Action, len(s.history))
	copy(out, s.history)
	return out
}

// SystemByID returns the system with the given id, if it exists.
func (s GameState) SystemByID(id SystemID) (System, bool) {
	sys, ok := s.systems[id]
	return sys, ok
}

// HomeSystem returns the given player's homeworld system, if it has been
// established (it may not exist yet during Setup).
func (s GameState) HomeSystem(p Player) (System, bool) {
	id, ok := s.homeworlds[p]
	if !ok {
		return System{}, false
	}
	return s.SystemByID(id)
}

// HomeSystemID returns the given player's homeworld system id, if set.
func (s GameState) HomeSystemID(p Player) (SystemID, bool) {
	id, ok := s.homeworlds[p]
	return id, ok
}

// Systems returns every free system (i.e. excluding homeworlds), in stable
// creation order.
func (s GameState) Systems() []System {
	out := make([]System, 0, len(s.freeOrder))
	for _, id := range s.freeOrder {
		if sys, ok := s.systems[id]; ok {
			out = append(out, sys)
		}
	}
	return out
}

// AllSystems returns every system, homeworlds included, in stable order:
// player1's home, player2's home, then free systems in creation order.
func (s GameState) AllSystems() []System {
	out := make([]System, 0, len(s.systems))
	for _, p := range []Player{Player1, Player2} {
		if sys, ok := s.HomeSystem(p); ok {
			out = append(out, sys)
		}
	}
	out = append(out, s.Systems()...)
	return out
}

// FindShip locates a ship by identity across every system in the game.
func (s GameState) FindShip(id PieceID) (Ship, System, bool) {
	for _, sys := range s.AllSystems() {
		if sh, ok := sys.FindShip(id); ok {
			return sh, sys, true
		}
	}
	return Ship{}, System{}, false
}

// OverpopulatedSystems returns every (system, color) pair currently at or
// above the overpopulation threshold, in stable system order.
func (s GameState) OverpopulatedSystems() []OverpopulatedEntry {
	var out []OverpopulatedEntry
	for _, sys := range s.AllSystems() {
		for _, c := range sys.OverpopulatedColors() {
			out = append(out, OverpopulatedEntry{System: sys.ID, Color: c})
		}
	}
	return out
}

// nextFreeSystemID deterministically allocates the next free system id.
// Ids are sequence-based, not randomly generated, so that replay is
// byte-identical for identical input (spec.md §8 property 7); a UUID would
// make the kernel's own output depend on an external source of randomness.
func (s *GameState) nextFreeSystemID() SystemID {
	s.nextFreeID++
	return SystemID(sysIDPrefix + strconv.Itoa(s.nextFreeID))
}

const sysIDPrefix = "sys-"

// setSystem replaces (or inserts) a system in place, registering it in
// freeOrder if it's new and not a homeworld.
func (s GameState) setSystem(sys System) GameState {
	n := s.clone()
	_, existed := n.systems[sys.ID]
	n.systems[sys.ID] = sys
	if !existed && !sys.Homeworld {
		n.freeOrder = append(n.freeOrder, sys.ID)
	}
	return n
}

// deleteSystem removes a system entirely (used by cleanup when a free
// system is destroyed).
func (s GameState) deleteSystem(id SystemID) GameState {
	n := s.clone()
	delete(n.systems, id)
	out := n.freeOrder[:0]
	for _, existing := range n.freeOrder {
		if existing != id {
			out = append(out, existing)
		}
	}
	n.freeOrder = out
	return n
}

// sortedSystemIDs returns every system id in deterministic (lexicographic)
// order. Nothing in the package calls it; rule evaluation never uses it.
func (s GameState) sortedSystemIDs() []SystemID {
	ids := make([]SystemID, 0, len(s.systems))
	for id := range s.systems {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}
