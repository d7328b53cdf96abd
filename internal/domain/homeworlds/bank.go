package homeworlds

import "fmt"

type bankKey struct {
	Color Color
	Size  Size
}

// Bank is the shared pool of unused pieces, partitioned by (color, size).
// Every bucket holds at most MaxOrdinal entries. Bank is an immutable value:
// every operation returns a new Bank, never mutating the receiver, which is
// what lets GameState snapshots be shared freely across apply/replay.
//
// Ordinals within a bucket are kept in ascending order. That order is what
// makes take_smallest's "ties resolved by first ordinal" deterministic, and
// it is preserved purely for replay stability — it carries no game meaning.
type Bank struct {
	buckets map[bankKey][]int
}

// NewFullBank returns a Bank containing all 36 pieces: 3 copies of each of
// the 4 colors x 3 sizes.
func NewFullBank() Bank {
	buckets := make(map[bankKey][]int, len(Colors)*len(Sizes))
	for _, c := range Colors {
		for _, s := range Sizes {
			ords := make([]int, MaxOrdinal)
			for i := range ords {
				ords[i] = i
			}
			buckets[bankKey{c, s}] = ords
		}
	}
	return Bank{buckets: buckets}
}

// NewEmptyBank returns a Bank with no pieces.
func NewEmptyBank() Bank {
	return Bank{buckets: make(map[bankKey][]int)}
}

func (b Bank) clone() Bank {
	nb := make(map[bankKey][]int, len(b.buckets))
	for k, v := range b.buckets {
		cp := make([]int, len(v))
		copy(cp, v)
		nb[k] = cp
	}
	return Bank{buckets: nb}
}

// Inventory returns how many of (color, size) currently sit in the bank.
func (b Bank) Inventory(c Color, s Size) int {
	return len(b.buckets[bankKey{c, s}])
}

// Has reports whether the given piece identity is currently in the bank.
func (b Bank) Has(id PieceID) bool {
	for _, o := range b.buckets[bankKey{id.Color, id.Size}] {
		if o == id.Ordinal {
			return true
		}
	}
	return false
}

// Pieces returns every piece identity currently in the bank, in stable
// (color, size, ordinal) order.
func (b Bank) Pieces() []PieceID {
	var out []PieceID
	for _, c := range Colors {
		for _, s := range Sizes {
			for _, o := range b.buckets[bankKey{c, s}] {
				out = append(out, PieceID{Color: c, Size: s, Ordinal: o})
			}
		}
	}
	return out
}

// Total returns the number of pieces currently in the bank.
func (b Bank) Total() int {
	n := 0
	for _, v := range b.buckets {
		n += len(v)
	}
	return n
}

// Take removes a specific piece identity from the bank, returning the
// resulting Bank and the removed Piece.
func (b Bank) Take(id PieceID) (Bank, Piece, error) {
	if !b.Has(id) {
		return b, Piece{}, NewPieceNotInBankError(id)
	}
	nb := b.clone()
	key := bankKey{id.Color, id.Size}
	ords := nb.buckets[key]
	out := make([]int, 0, len(ords)-1)
	for _, o := range ords {
		if o != id.Ordinal {
			out = append(out, o)
		}
	}
	nb.buckets[key] = out
	return nb, Piece{ID: id}, nil
}

// TakeSmallest removes the smallest-size piece of the given color present in
// the bank, ties resolved by first ordinal in the bucket (spec.md §9 pins
// this for replay stability).
func (b Bank) TakeSmallest(c Color) (Bank, Piece, error) {
	for _, s := range Sizes {
		ords := b.buckets[bankKey{c, s}]
		if len(ords) > 0 {
			return b.Take(PieceID{Color: c, Size: s, Ordinal: ords[0]})
		}
	}
	return b, Piece{}, fmt.Errorf("bank exhausted for color %s", c)
}

// Return reinserts a piece into the bank. It panics if doing so would exceed
// the bucket's cap of MaxOrdinal or reintroduce a duplicate ordinal — both
// are internal invariant violations (conservation is broken elsewhere), not
// user-triggerable conditions, per spec.md §7.
func (b Bank) Return(p Piece) Bank {
	key := bankKey{p.ID.Color, p.ID.Size}
	ords := b.buckets[key]
	for _, o := range ords {
		if o == p.ID.Ordinal {
			panic(fmt.Sprintf("bank invariant violated: piece %s already in bank", p.ID))
		}
	}
	if len(ords) >= MaxOrdinal {
		panic(fmt.Sprintf("bank invariant violated: bucket (%s,%d) would exceed cap %d", p.ID.Color, p.ID.Size, MaxOrdinal))
	}
	nb := b.clone()
	newOrds := append(append([]int{}, ords...), p.ID.Ordinal)
	// keep ascending order for deterministic take_smallest ties.
	for i := len(newOrds) - 1; i > 0 && newOrds[i] < newOrds[i-1]; i-- {
		newOrds[i], newOrds[i-1] = newOrds[i-1], newOrds[i]
	}
	nb.buckets[key] = newOrds
	return nb
}
