package poker

import (
	"fmt"

	"github.com/fivecard/showdown/deck"
)

// Deal extracts the five cards whose shuffle order numbers are
// start..start+4, in increasing order of order number, and builds
// their count tables. The deck is only read.
func Deal(d *deck.Deck, start int) (Hand, error) {
	if start < 1 || start+HandSize-1 > deck.DeckSize {
		return Hand{}, fmt.Errorf("order range %d..%d is outside 1..%d", start, start+HandSize-1, deck.DeckSize)
	}

	var cards [HandSize]Card
	for i := 0; i < HandSize; i++ {
		suit, face, err := d.Find(start + i)
		if err != nil {
			return Hand{}, fmt.Errorf("dealing order %d: %w", start+i, err)
		}
		rank, err := RankFromFace(face)
		if err != nil {
			return Hand{}, fmt.Errorf("dealing order %d: %w", start+i, err)
		}
		card, err := NewCard(uint8(suit), rank)
		if err != nil {
			return Hand{}, fmt.Errorf("dealing order %d: %w", start+i, err)
		}
		cards[i] = card
	}

	return NewHand(cards)
}
