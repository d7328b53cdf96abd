package homeworlds

// SystemID is the opaque, stable identifier of a system. Homeworlds use the
// fixed ids "player1-home"/"player2-home"; free systems get generated ids
// (see GameState.nextFreeSystemID) that are still stable once assigned.
type SystemID string

const (
	Player1HomeID SystemID = "player1-home"
	Player2HomeID SystemID = "player2-home"
)

// HomeID returns the fixed homeworld system id for a player.
func HomeID(p Player) SystemID {
	if p == Player1 {
		return Player1HomeID
	}
	return Player2HomeID
}

// Ship is a piece on the board, owned by one of the two players.
type Ship struct {
	ID    PieceID
	Owner Player
}

func (s Ship) Color() Color { return s.ID.Color }
func (s Ship) Size() Size   { return s.ID.Size }

// System is a star system: one or two stars plus zero or more ships,
// co-located. System is an immutable value — every mutating-looking method
// returns a new System, leaving the receiver untouched.
type System struct {
	ID        SystemID
	Homeworld bool
	Owner     Player // meaningful only when Homeworld is true
	Stars     []Piece
	Ships     []Ship
}

func newSystem(id SystemID) System {
	return System{ID: id}
}

func (s System) clone() System {
	stars := make([]Piece, len(s.Stars))
	copy(stars, s.Stars)
	ships := make([]Ship, len(s.Ships))
	copy(ships, s.Ships)
	return System{ID: s.ID, Homeworld: s.Homeworld, Owner: s.Owner, Stars: stars, Ships: ships}
}

// AddStar returns a copy of the system with the given star added.
func (s System) AddStar(p Piece) System {
	n := s.clone()
	n.Stars = append(n.Stars, p)
	return n
}

// AddShip returns a copy of the system with the given ship added.
func (s System) AddShip(sh Ship) System {
	n := s.clone()
	n.Ships = append(n.Ships, sh)
	return n
}

// FindShip returns the ship with the given identity, if present.
func (s System) FindShip(id PieceID) (Ship, bool) {
	for _, sh := range s.Ships {
		if sh.ID == id {
			return sh, true
		}
	}
	return Ship{}, false
}

// RemoveShip returns a copy of the system with the given ship removed, along
// with the removed ship.
func (s System) RemoveShip(id PieceID) (System, Ship, bool) {
	sh, ok := s.FindShip(id)
	if !ok {
		return s, Ship{}, false
	}
	n := s.clone()
	out := n.Ships[:0]
	for _, existing := range n.Ships {
		if existing.ID != id {
			out = append(out, existing)
		}
	}
	n.Ships = out
	return n, sh, true
}

// ChangeOwner returns a copy of the system with the given ship reassigned to
// a new owner.
func (s System) ChangeOwner(id PieceID, newOwner Player) (System, bool) {
	n := s.clone()
	for i, sh := range n.Ships {
		if sh.ID == id {
			n.Ships[i] = Ship{ID: sh.ID, Owner: newOwner}
			return n, true
		}
	}
	return s, false
}

// ReplaceShipIdentity returns a copy of the system with one ship's identity
// swapped (used by Trade: the old piece returns to the bank, the ship object
// is re-identified to the new piece, owner unchanged).
func (s System) ReplaceShipIdentity(oldID PieceID, newID PieceID) (System, bool) {
	n := s.clone()
	for i, sh := range n.Ships {
		if sh.ID == oldID {
			n.Ships[i] = Ship{ID: newID, Owner: sh.Owner}
			return n, true
		}
	}
	return s, false
}

// RemoveAllOfColor returns a copy of the system with every star and ship of
// the given color removed, plus the pieces removed (stars first, then
// ships, in their original order) for return to the bank.
func (s System) RemoveAllOfColor(c Color) (System, []Piece) {
	n := s.clone()
	var removed []Piece

	keptStars := n.Stars[:0]
	for _, star := range n.Stars {
		if star.Color() == c {
			removed = append(removed, star)
		} else {
			keptStars = append(keptStars, star)
		}
	}
	n.Stars = keptStars

	keptShips := n.Ships[:0]
	for _, sh := range n.Ships {
		if sh.Color() == c {
			removed = append(removed, Piece{ID: sh.ID})
		} else {
			keptShips = append(keptShips, sh)
		}
	}
	n.Ships = keptShips

	return n, removed
}

// StarSizes returns the set of star sizes present in the system.
func (s System) StarSizes() map[Size]bool {
	out := make(map[Size]bool, len(s.Stars))
	for _, star := range s.Stars {
		out[star.Size()] = true
	}
	return out
}

// ColorAvailable reports whether player p can use the ability keyed to color
// c at this system: a star of that color grants access to both players; a
// ship of that color grants access only to its owner.
func (s System) ColorAvailable(c Color, p Player) bool {
	for _, star := range s.Stars {
		if star.Color() == c {
			return true
		}
	}
	for _, sh := range s.Ships {
		if sh.Color() == c && sh.Owner == p {
			return true
		}
	}
	return false
}

// Overpopulated reports whether color c has reached the catastrophe count
// (stars + ships of that color >= 4) in this system.
func (s System) Overpopulated(c Color) bool {
	n := 0
	for _, star := range s.Stars {
		if star.Color() == c {
			n++
		}
	}
	for _, sh := range s.Ships {
		if sh.Color() == c {
			n++
		}
	}
	return n >= 4
}

// OverpopulatedColors returns every color currently overpopulated here.
func (s System) OverpopulatedColors() []Color {
	var out []Color
	for _, c := range Colors {
		if s.Overpopulated(c) {
			out = append(out, c)
		}
	}
	return out
}

// ShipsOwnedBy returns the ships in this system owned by p.
func (s System) ShipsOwnedBy(p Player) []Ship {
	var out []Ship
	for _, sh := range s.Ships {
		if sh.Owner == p {
			out = append(out, sh)
		}
	}
	return out
}

// HasStars reports whether the system still has at least one star.
func (s System) HasStars() bool { return len(s.Stars) > 0 }

// HasShips reports whether the system still has at least one ship.
func (s System) HasShips() bool { return len(s.Ships) > 0 }

// AllPieces returns every piece (star or ship) currently in the system, as
// bare Piece values, for conservation bookkeeping.
func (s System) AllPieces() []Piece {
	out := make([]Piece, 0, len(s.Stars)+len(s.Ships))
	out = append(out, s.Stars...)
	for _, sh := range s.Ships {
		out = append(out, Piece{ID: sh.ID})
	}
	return out
}
