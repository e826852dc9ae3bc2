package deck

import "fmt"

const (
	Suits    = 4
	Faces    = 13
	DeckSize = Suits * Faces
)

// Deck assigns a shuffle order number in 1..DeckSize to every
// (suit, face) slot of a standard 52-card deck. The slot with order
// number 1 is the first card dealt. Order 0 marks a slot that has not
// been assigned yet.
type Deck struct {
	grid [Suits][Faces]int
}

// New returns an unshuffled deck with every slot unassigned.
func New() *Deck {
	return &Deck{}
}

// OrderOf returns the shuffle order number currently assigned to the
// slot, 0 if the deck has not been shuffled.
func (d *Deck) OrderOf(suit, face int) (int, error) {
	if suit < 0 || suit >= Suits || face < 0 || face >= Faces {
		return 0, fmt.Errorf("invalid slot %d, %d", suit, face)
	}
	return d.grid[suit][face], nil
}

// Find scans the grid for the slot holding the given order number and
// returns its suit and face indices.
func (d *Deck) Find(order int) (suit, face int, err error) {
	if order < 1 || order > DeckSize {
		return 0, 0, fmt.Errorf("order %d is outside 1..%d", order, DeckSize)
	}
	for s := 0; s < Suits; s++ {
		for f := 0; f < Faces; f++ {
			if d.grid[s][f] == order {
				return s, f, nil
			}
		}
	}
	return 0, 0, fmt.Errorf("order %d is not assigned, deck not shuffled", order)
}

// Validate checks that the assigned order numbers form a bijection
// onto 1..DeckSize.
func (d *Deck) Validate() error {
	var seen [DeckSize + 1]bool
	for s := 0; s < Suits; s++ {
		for f := 0; f < Faces; f++ {
			order := d.grid[s][f]
			if order < 1 || order > DeckSize {
				return fmt.Errorf("slot %d, %d holds order %d, want 1..%d", s, f, order, DeckSize)
			}
			if seen[order] {
				return fmt.Errorf("order %d assigned to more than one slot", order)
			}
			seen[order] = true
		}
	}
	return nil
}
