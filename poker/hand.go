package poker

import "fmt"

// HandSize is the number of cards in a drawn hand.
const HandSize = 5

// RankCounts counts occurrences per rank within one hand. Indices
// 2..14 are the valid ranks; 0 and 1 stay unused.
type RankCounts [Ace + 1]int

// SuitCounts counts occurrences per suit within one hand.
type SuitCounts [Spade + 1]int

// Add records one occurrence of the rank.
func (rc *RankCounts) Add(rank uint8) error {
	if rank < 2 || rank > Ace {
		return fmt.Errorf("rank %d is outside 2..%d", rank, Ace)
	}
	rc[rank]++
	return nil
}

// WithCount reports how many ranks appear exactly n times.
func (rc RankCounts) WithCount(n int) int {
	found := 0
	for r := 2; r <= Ace; r++ {
		if rc[r] == n {
			found++
		}
	}
	return found
}

// Total is the sum of all rank counts, HandSize for a full hand.
func (rc RankCounts) Total() int {
	total := 0
	for r := 2; r <= Ace; r++ {
		total += rc[r]
	}
	return total
}

// Add records one occurrence of the suit.
func (sc *SuitCounts) Add(suit uint8) error {
	if suit > Spade {
		return fmt.Errorf("suit %d is outside 0..%d", suit, Spade)
	}
	sc[suit]++
	return nil
}

// Total is the sum of all suit counts, HandSize for a full hand.
func (sc SuitCounts) Total() int {
	total := 0
	for _, n := range sc {
		total += n
	}
	return total
}

// Hand is an ordered five-card draw together with the count tables
// the classifier works from.
type Hand struct {
	Cards [HandSize]Card
	Ranks RankCounts
	Suits SuitCounts
}

// NewHand builds a hand and its frequency tables from five cards.
func NewHand(cards [HandSize]Card) (Hand, error) {
	h := Hand{Cards: cards}
	for _, c := range cards {
		if err := h.Ranks.Add(c.Rank()); err != nil {
			return Hand{}, err
		}
		if err := h.Suits.Add(c.Suit()); err != nil {
			return Hand{}, err
		}
	}
	return h, nil
}

// String joins the cards in deal order.
func (h Hand) String() string {
	s := ""
	for i, c := range h.Cards {
		if i > 0 {
			s += " "
		}
		s += c.String()
	}
	return s
}
